package models

// Property is static reference data, seeded once at first startup and
// never modified afterwards.
type Property struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}
