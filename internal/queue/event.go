// Package queue defines message payloads exchanged over the message
// broker and the background consumer that records them.
package queue

// TicketPurchasedEvent is published after a purchase commits. It
// carries enough context for downstream consumers to log or notify
// without querying the primary database.
type TicketPurchasedEvent struct {
	TicketID    string `json:"ticket_id"`
	ClientID    string `json:"client_id"`
	Username    string `json:"username"`
	Price       string `json:"price"`
	Place       string `json:"place"`
	Time        string `json:"time"`
	ShowingID   string `json:"showing_id,omitempty"`
	PurchasedAt string `json:"purchased_at"`
}
