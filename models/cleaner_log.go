package models

// CleanerLog records a single cleaner visit to a property. Logs are
// append-only: once written they are never mutated or deleted.
type CleanerLog struct {
	ID             string `json:"id"`
	PropertyID     string `json:"propertyId"`
	CleanerName    string `json:"cleanerName"`
	Date           string `json:"date"`
	TimeStarted    string `json:"timeStarted"`
	TimeFinished   string `json:"timeFinished"`
	WorkPhotosLink string `json:"workPhotosLink"`
	IssuesFound    bool   `json:"issuesFound"`
}
