package models

// CachedPlayer is one athlete flattened out of a team roster
type CachedPlayer struct {
	ID             string `json:"id"`
	Slug           string `json:"slug"`
	Name           string `json:"name"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Jersey         string `json:"jersey,omitempty"`
	Position       string `json:"position"`         // "QB"
	PositionName   string `json:"positionName"`     // "Quarterback"
	PositionGroup  string `json:"positionGroup"`    // "offense", "defense", "specialTeam"
	Height         string `json:"height,omitempty"` // "6' 2\""
	Weight         string `json:"weight,omitempty"` // "215 lbs"
	Class          string `json:"class,omitempty"`  // "Junior"
	Hometown       string `json:"hometown,omitempty"`
	Headshot       string `json:"headshot,omitempty"`
	TeamID         string `json:"teamId"`
	TeamSlug       string `json:"teamSlug"`
	TeamName       string `json:"teamName"`
	TeamAbbr       string `json:"teamAbbr"`
	Conference     string `json:"conference"`
	ConferenceName string `json:"conferenceName"`
}

// PlayerProfile is the detail view of a single player
type PlayerProfile struct {
	CachedPlayer
	TeamLogo string          `json:"teamLogo,omitempty"`
	Transfer *TransferPlayer `json:"transfer,omitempty"`
}

// Pagination describes one page of a filtered list
type Pagination struct {
	Page         int  `json:"page"`
	Limit        int  `json:"limit"`
	TotalPlayers int  `json:"totalPlayers"`
	TotalPages   int  `json:"totalPages"`
	HasNextPage  bool `json:"hasNextPage"`
	HasPrevPage  bool `json:"hasPrevPage"`
}

// PlayersPage is the /api/players response body
type PlayersPage struct {
	Players    []CachedPlayer `json:"players"`
	Pagination Pagination     `json:"pagination"`
}
