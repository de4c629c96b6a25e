package models

import "time"

// TransferPlayer is one row of the transfer portal sheet
type TransferPlayer struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Position    string `json:"position"`
	Class       string `json:"class,omitempty"`
	Stars       int    `json:"stars,omitempty"`
	Rating      string `json:"rating,omitempty"`
	Status      string `json:"status"` // "Entered", "Committed", "Withdrawn", "Signed"
	FromSchool  string `json:"fromSchool"`
	ToSchool    string `json:"toSchool,omitempty"`
	EnteredDate string `json:"enteredDate,omitempty"`
	CommitDate  string `json:"commitDate,omitempty"`
	Eligibility string `json:"eligibility,omitempty"`
}

// TransferPortalResponse is the /api/transfer-portal body
type TransferPortalResponse struct {
	Players      []TransferPlayer `json:"players"`
	UpdatedTime  time.Time        `json:"updatedTime"`
	TotalPlayers int              `json:"totalPlayers"`
}
