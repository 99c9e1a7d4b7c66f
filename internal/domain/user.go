package domain

import "time"

// User ids come from the external auth provider; this backend never mints
// credentials of its own.
type User struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	DeviceToken string    `json:"device_token,omitempty"`
	CreatedOn   time.Time `json:"created_on"`
}

// Address is a delivery address in a user's address book. Quotes embed a
// snapshot of one of these, never a reference.
type Address struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Label      string    `json:"label"`
	Street     string    `json:"street"`
	Number     string    `json:"number"`
	Complement string    `json:"complement,omitempty"`
	District   string    `json:"district"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	ZipCode    string    `json:"zip_code"`
	CreatedOn  time.Time `json:"created_on"`
}

// Snapshot copies the address fields that belong inside a quote.
func (a *Address) Snapshot() AddressSnapshot {
	return AddressSnapshot{
		Street:     a.Street,
		Number:     a.Number,
		Complement: a.Complement,
		District:   a.District,
		City:       a.City,
		State:      a.State,
		ZipCode:    a.ZipCode,
	}
}
