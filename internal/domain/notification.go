package domain

import "time"

type NotificationType string

const (
	NotificationTypeQuote    NotificationType = "quote"
	NotificationTypeDelivery NotificationType = "delivery"
	NotificationTypeReturn   NotificationType = "return"
	NotificationTypeInfo     NotificationType = "info"
)

type Notification struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	Type      NotificationType  `json:"type"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Data      map[string]string `json:"data,omitempty"`
	Read      bool              `json:"read"`
	CreatedOn time.Time         `json:"created_on"`
}

// MaxNotificationRetries is the ceiling on reattempts for a failed
// notification write before the retry record is dead-lettered.
const MaxNotificationRetries int32 = 3

// NotificationRetry is a durable record of a notification that could not be
// written on the eager path. The retry sweep resolves it (deletes it) on
// success or when the quote is gone, and increments RetryCount on failure.
type NotificationRetry struct {
	ID          string      `json:"id"`
	QuoteID     string      `json:"quote_id"`
	QuoteStatus QuoteStatus `json:"quote_status"`
	RetryCount  int32       `json:"retry_count"`
	LastError   string      `json:"last_error,omitempty"`
	LastRetry   *time.Time  `json:"last_retry,omitempty"`
	CreatedOn   time.Time   `json:"created_on"`
}

// DeadLetter is a retry record that exhausted its retry budget. It exists so
// abandonment is operator-visible instead of a silent query exclusion.
type DeadLetter struct {
	ID          string      `json:"id"`
	QuoteID     string      `json:"quote_id"`
	QuoteStatus QuoteStatus `json:"quote_status"`
	RetryCount  int32       `json:"retry_count"`
	LastError   string      `json:"last_error,omitempty"`
	AbandonedOn time.Time   `json:"abandoned_on"`
}
