package domain

import "time"

type QuoteStatus string

const (
	QuoteStatusPending         QuoteStatus = "pending"
	QuoteStatusQuoted          QuoteStatus = "quoted"
	QuoteStatusAccepted        QuoteStatus = "accepted"
	QuoteStatusRejected        QuoteStatus = "rejected"
	QuoteStatusInPreparation   QuoteStatus = "in_preparation"
	QuoteStatusInTransit       QuoteStatus = "in_transit"
	QuoteStatusDelivered       QuoteStatus = "delivered"
	QuoteStatusReturnRequested QuoteStatus = "return_requested"
	QuoteStatusPickupScheduled QuoteStatus = "pickup_scheduled"
	QuoteStatusReturned        QuoteStatus = "returned"
	QuoteStatusCompleted       QuoteStatus = "completed"
)

// quoteTransitions lists the legal successors for each status. Statuses
// absent from the map (rejected, completed) are terminal.
var quoteTransitions = map[QuoteStatus][]QuoteStatus{
	QuoteStatusPending:         {QuoteStatusQuoted, QuoteStatusRejected},
	QuoteStatusQuoted:          {QuoteStatusAccepted, QuoteStatusRejected},
	QuoteStatusAccepted:        {QuoteStatusInPreparation},
	QuoteStatusInPreparation:   {QuoteStatusInTransit, QuoteStatusDelivered},
	QuoteStatusInTransit:       {QuoteStatusDelivered},
	QuoteStatusDelivered:       {QuoteStatusReturnRequested},
	QuoteStatusReturnRequested: {QuoteStatusPickupScheduled},
	QuoteStatusPickupScheduled: {QuoteStatusReturned},
	QuoteStatusReturned:        {QuoteStatusCompleted},
}

// ValidQuoteStatus reports whether s is a member of the status enumeration.
func ValidQuoteStatus(s QuoteStatus) bool {
	switch s {
	case QuoteStatusPending, QuoteStatusQuoted, QuoteStatusAccepted, QuoteStatusRejected,
		QuoteStatusInPreparation, QuoteStatusInTransit, QuoteStatusDelivered,
		QuoteStatusReturnRequested, QuoteStatusPickupScheduled, QuoteStatusReturned,
		QuoteStatusCompleted:
		return true
	}
	return false
}

// CanTransition reports whether a quote may move from one status to another.
func CanTransition(from, to QuoteStatus) bool {
	for _, next := range quoteTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AddressSnapshot is the delivery address copied into a quote at creation
// time. Later edits to the address book never change a submitted quote.
type AddressSnapshot struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement,omitempty"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zip_code"`
}

// Quote is a rental request from a requester to a machine owner, moving
// through the lifecycle above.
type Quote struct {
	ID          string          `json:"id"`
	MachineID   string          `json:"machine_id"`
	MachineName string          `json:"machine_name"`
	RequesterID string          `json:"requester_id"`
	OwnerID     string          `json:"owner_id"`
	Status      QuoteStatus     `json:"status"`
	Purpose     string          `json:"purpose"`
	Address     AddressSnapshot `json:"address"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     *time.Time      `json:"end_date,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	ValueCents  int32           `json:"value_cents"`
	Conditions  string          `json:"conditions,omitempty"`
	CreatedOn   time.Time       `json:"created_on"`
	UpdatedOn   time.Time       `json:"updated_on"`
}
