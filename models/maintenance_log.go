package models

// MaintenanceLog documents the resolution of one ticket. BeforePhoto is
// copied verbatim from the ticket's IssuePhoto at resolution time.
type MaintenanceLog struct {
	ID                    string `json:"id"`
	TicketID              string `json:"ticketId"`
	MaintenancePersonName string `json:"maintenancePersonName"`
	DateFixed             string `json:"dateFixed"`
	BeforePhoto           string `json:"beforePhoto"`
	AfterPhoto            string `json:"afterPhoto"`
	Notes                 string `json:"notes"`
}
