package models

type TicketStatus string

const (
	TicketOpen     TicketStatus = "Open"
	TicketResolved TicketStatus = "Resolved"
)

// Ticket is a maintenance request raised from a cleaner visit where an
// issue was found. Status moves Open -> Resolved exactly once; tickets
// are never deleted. IssuePhoto is an inline base64 blob.
type Ticket struct {
	ID               string       `json:"id"`
	CleanerLogID     string       `json:"cleanerLogId"`
	PropertyID       string       `json:"propertyId"`
	IssueDescription string       `json:"issueDescription"`
	IssuePhoto       string       `json:"issuePhoto"`
	Status           TicketStatus `json:"status"`
	DateCreated      string       `json:"dateCreated"`
}
