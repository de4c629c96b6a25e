package models

// Team is a static FBS team table entry
type Team struct {
	ID             string `json:"id"` // ESPN team id
	Slug           string `json:"slug"`
	Name           string `json:"name"`      // "Alabama Crimson Tide"
	ShortName      string `json:"shortName"` // "Alabama"
	Abbreviation   string `json:"abbreviation"`
	Conference     string `json:"conference"` // "sec"
	ConferenceName string `json:"conferenceName"`
	Logo           string `json:"logo"`
}
