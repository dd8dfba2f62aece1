// Package queue defines message payloads published to the message broker.
package queue

// AccountApprovedEvent is published when a pending registration is promoted.
type AccountApprovedEvent struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Department string `json:"department"`
	ApprovedAt string `json:"approved_at"`
}

// TicketApprovedEvent is published when an admin approves a ticket.
type TicketApprovedEvent struct {
	TicketID      string `json:"ticket_id"`
	ProjectNumber string `json:"project_number"`
	ProjectName   string `json:"project_name"`
	Username      string `json:"username"`
	ApprovedAt    string `json:"approved_at"`
}
