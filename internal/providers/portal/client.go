package portal

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/goccy/go-json"

	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/slug"
	"github.com/pfsn365/transfer-portal-tracker-sub001/internal/upstream"
	"github.com/pfsn365/transfer-portal-tracker-sub001/pkg/models"
)

// Sheet is the spreadsheet JSON export: the first row holds column headers
type Sheet struct {
	Range  string   `json:"range"`
	Values [][]Cell `json:"values"`
}

// Rows returns the sheet values as plain strings
func (s Sheet) Rows() [][]string {
	rows := make([][]string, len(s.Values))
	for i, row := range s.Values {
		rows[i] = make([]string, len(row))
		for j, c := range row {
			rows[i][j] = string(c)
		}
	}
	return rows
}

// Cell is one sheet value. Numbers and booleans keep their JSON text and
// null becomes empty.
type Cell string

func (c *Cell) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*c = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Cell(s)
	default:
		*c = Cell(data)
	}
	return nil
}

// Client reads the transfer portal sheet
type Client struct {
	url  string
	http *upstream.Client
}

// New creates a transfer portal feed client
func New(feedURL string, http *upstream.Client) *Client {
	return &Client{url: feedURL, http: http}
}

// FetchPlayers downloads the sheet and converts its rows
func (c *Client) FetchPlayers(ctx context.Context) ([]models.TransferPlayer, error) {
	var sheet Sheet
	if err := c.http.GetJSON(ctx, c.url, &sheet); err != nil {
		return nil, fmt.Errorf("fetching transfer portal: %w", err)
	}
	if len(sheet.Values) == 0 {
		return nil, fmt.Errorf("transfer portal sheet has no header row")
	}
	return RowsToPlayers(sheet.Rows()), nil
}

type column int

const (
	colName column = iota
	colPosition
	colClass
	colStars
	colRating
	colStatus
	colFrom
	colTo
	colEntered
	colCommitted
	colEligibility
	numColumns
)

var headerAliases = map[string]column{
	"name":                  colName,
	"player":                colName,
	"player name":           colName,
	"position":              colPosition,
	"pos":                   colPosition,
	"class":                 colClass,
	"year":                  colClass,
	"stars":                 colStars,
	"rating":                colRating,
	"grade":                 colRating,
	"status":                colStatus,
	"from":                  colFrom,
	"from school":           colFrom,
	"previous school":       colFrom,
	"origin":                colFrom,
	"to":                    colTo,
	"to school":             colTo,
	"new school":            colTo,
	"destination":           colTo,
	"committed to":          colTo,
	"entered":               colEntered,
	"entry date":            colEntered,
	"date entered":          colEntered,
	"commit date":           colCommitted,
	"date committed":        colCommitted,
	"eligibility":           colEligibility,
	"remaining eligibility": colEligibility,
}

// RowsToPlayers maps sheet rows onto players by header name. Header
// matching is case-insensitive; unknown columns are ignored, short rows are
// padded, and rows without a name are dropped.
func RowsToPlayers(rows [][]string) []models.TransferPlayer {
	players := make([]models.TransferPlayer, 0, len(rows))
	if len(rows) == 0 {
		return players
	}

	index := make([]int, numColumns)
	for i := range index {
		index[i] = -1
	}
	for i, h := range rows[0] {
		if col, ok := headerAliases[strings.ToLower(strings.TrimSpace(h))]; ok && index[col] < 0 {
			index[col] = i
		}
	}

	for _, row := range rows[1:] {
		cell := func(col column) string {
			i := index[col]
			if i < 0 || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		name := cell(colName)
		if name == "" {
			continue
		}

		players = append(players, models.TransferPlayer{
			Name:        name,
			Slug:        slug.Make(name),
			Position:    strings.ToUpper(cell(colPosition)),
			Class:       cell(colClass),
			Stars:       parseStars(cell(colStars)),
			Rating:      cell(colRating),
			Status:      normalizeStatus(cell(colStatus), cell(colTo)),
			FromSchool:  cell(colFrom),
			ToSchool:    cell(colTo),
			EnteredDate: cell(colEntered),
			CommitDate:  cell(colCommitted),
			Eligibility: cell(colEligibility),
		})
	}
	return players
}

// parseStars reads the leading digits of "4", "4★" or "4 stars"
func parseStars(s string) int {
	end := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })
	if end == 0 {
		// "★★★" style
		return strings.Count(s, "★")
	}
	if end > 0 {
		s = s[:end]
	}
	n, _ := strconv.Atoi(s)
	return n
}

func normalizeStatus(status, to string) string {
	switch strings.ToLower(status) {
	case "committed", "commit":
		return "Committed"
	case "withdrawn", "withdrew", "returning":
		return "Withdrawn"
	case "signed", "enrolled":
		return "Signed"
	case "entered", "available", "uncommitted", "":
		if to != "" {
			return "Committed"
		}
		return "Entered"
	default:
		return status
	}
}
