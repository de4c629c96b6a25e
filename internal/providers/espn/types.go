package espn

// Every field is optional: ESPN omits keys freely between endpoints and
// seasons, and decoding leaves missing fields at their zero value.

// RosterResponse is the body of /teams/{id}/roster
type RosterResponse struct {
	Team     RosterTeam    `json:"team"`
	Athletes []RosterGroup `json:"athletes"`
}

// RosterTeam is the team block of a roster response
type RosterTeam struct {
	ID           string `json:"id"`
	Abbreviation string `json:"abbreviation"`
	DisplayName  string `json:"displayName"`
	Logo         string `json:"logo"`
}

// RosterGroup is a position group ("offense", "defense", "specialTeam")
type RosterGroup struct {
	Position string    `json:"position"`
	Items    []Athlete `json:"items"`
}

// Athlete is one roster entry
type Athlete struct {
	ID            string     `json:"id"`
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	FullName      string     `json:"fullName"`
	DisplayName   string     `json:"displayName"`
	Jersey        string     `json:"jersey"`
	DisplayHeight string     `json:"displayHeight"`
	DisplayWeight string     `json:"displayWeight"`
	Position      Position   `json:"position"`
	Experience    Experience `json:"experience"`
	BirthPlace    BirthPlace `json:"birthPlace"`
	Headshot      Link       `json:"headshot"`
}

// Name returns the best available display name
func (a Athlete) Name() string {
	switch {
	case a.DisplayName != "":
		return a.DisplayName
	case a.FullName != "":
		return a.FullName
	default:
		if a.FirstName == "" {
			return a.LastName
		}
		if a.LastName == "" {
			return a.FirstName
		}
		return a.FirstName + " " + a.LastName
	}
}

// Position is an athlete's position
type Position struct {
	Abbreviation string `json:"abbreviation"`
	DisplayName  string `json:"displayName"`
}

// Experience is the class year ("Freshman", "Junior")
type Experience struct {
	Years        int    `json:"years"`
	DisplayValue string `json:"displayValue"`
}

// BirthPlace is an athlete's hometown
type BirthPlace struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// Link is a bare href wrapper
type Link struct {
	Href string `json:"href"`
}

// ScoreboardResponse is the body of /scoreboard
type ScoreboardResponse struct {
	Events []Event `json:"events"`
}

// Event is one game on the scoreboard
type Event struct {
	ID           string        `json:"id"`
	Date         string        `json:"date"` // "2025-09-06T16:00Z"
	Name         string        `json:"name"`
	ShortName    string        `json:"shortName"`
	Week         Week          `json:"week"`
	Season       Season        `json:"season"`
	Status       Status        `json:"status"`
	Competitions []Competition `json:"competitions"`
}

// Week is the week block of an event
type Week struct {
	Number int `json:"number"`
}

// Season is the season block of an event
type Season struct {
	Year int `json:"year"`
	Type int `json:"type"` // 1 preseason, 2 regular, 3 postseason
}

// Status is an event or competition status
type Status struct {
	Type StatusType `json:"type"`
}

// StatusType describes the game state
type StatusType struct {
	State       string `json:"state"` // "pre", "in", "post"
	Completed   bool   `json:"completed"`
	Detail      string `json:"detail"`
	ShortDetail string `json:"shortDetail"`
}

// Competition is the single matchup inside an event
type Competition struct {
	ID                    string       `json:"id"`
	NeutralSite           bool         `json:"neutralSite"`
	ConferenceCompetition bool         `json:"conferenceCompetition"`
	Venue                 Venue        `json:"venue"`
	Broadcasts            []Broadcast  `json:"broadcasts"`
	Competitors           []Competitor `json:"competitors"`
}

// Venue is where a game is played
type Venue struct {
	FullName string  `json:"fullName"`
	Address  Address `json:"address"`
}

// Address is a venue address
type Address struct {
	City  string `json:"city"`
	State string `json:"state"`
}

// Broadcast lists the networks carrying a game
type Broadcast struct {
	Market string   `json:"market"`
	Names  []string `json:"names"`
}

// Competitor is one side of a competition
type Competitor struct {
	ID          string      `json:"id"`
	HomeAway    string      `json:"homeAway"`
	Winner      bool        `json:"winner"`
	Score       string      `json:"score"`
	CuratedRank CuratedRank `json:"curatedRank"`
	Records     []Record    `json:"records"`
	Team        EventTeam   `json:"team"`
}

// CuratedRank is a poll rank; ESPN uses 99 for unranked
type CuratedRank struct {
	Current int `json:"current"`
}

// Record is a win-loss summary
type Record struct {
	Type    string `json:"type"`
	Summary string `json:"summary"`
}

// EventTeam is the team block of a competitor
type EventTeam struct {
	ID               string `json:"id"`
	DisplayName      string `json:"displayName"`
	ShortDisplayName string `json:"shortDisplayName"`
	Abbreviation     string `json:"abbreviation"`
	Logo             string `json:"logo"`
}

// RankingsResponse is the body of /rankings
type RankingsResponse struct {
	Rankings []Ranking `json:"rankings"`
}

// Ranking is one poll
type Ranking struct {
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Ranks     []Rank `json:"ranks"`
}

// Rank is one ranked team
type Rank struct {
	Current         int      `json:"current"`
	Previous        int      `json:"previous"`
	Points          float64  `json:"points"`
	FirstPlaceVotes int      `json:"firstPlaceVotes"`
	Trend           string   `json:"trend"`
	RecordSummary   string   `json:"recordSummary"`
	Team            RankTeam `json:"team"`
}

// RankTeam is the team block of a rank
type RankTeam struct {
	ID           string `json:"id"`
	Location     string `json:"location"`
	Name         string `json:"name"`
	Nickname     string `json:"nickname"`
	Abbreviation string `json:"abbreviation"`
	Logo         string `json:"logo"`
	Logos        []Link `json:"logos"`
}
