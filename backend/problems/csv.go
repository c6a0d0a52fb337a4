// Package problems serves the company problem catalog. Problem tables live
// upstream as one CSV file per company; column layout varies between files,
// so headers are resolved through a fixed alias table rather than trusted
// positionally.
package problems

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Problem is one row of a company's problem table.
type Problem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Frequency  string `json:"frequency"`
	Difficulty string `json:"difficulty"`
}

type column int

const (
	colName column = iota
	colFrequency
	colDifficulty
	colID
	numColumns
)

// columnAliases maps each canonical field to the header spellings seen in
// the upstream files. Substring aliases use a case-insensitive contains
// test against the header row; exact aliases must match the whole header.
var columnAliases = []struct {
	col       column
	substring []string
	exact     []string
}{
	{col: colName, substring: []string{"name", "title", "problem"}},
	{col: colFrequency, substring: []string{"frequency", "occurrences", "occ", "count"}},
	{col: colDifficulty, substring: []string{"difficulty"}},
	{col: colID, substring: []string{"id", "number"}, exact: []string{"no", "#"}},
}

// Defaults applied when a file has no recognizable column for a field.
const (
	defaultFrequency  = "1"
	defaultDifficulty = "Unknown"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchCompany downloads and parses the company's problem table.
func (c *Client) FetchCompany(ctx context.Context, company string) ([]Problem, error) {
	csvURL := c.BaseURL + "/" + url.PathEscape(company) + ".csv"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, csvURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s problems: %w", company, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s problems: upstream returned %s", company, resp.Status)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s problems: %w", company, err)
	}

	return parseRecords(records), nil
}

func parseRecords(records [][]string) []Problem {
	if len(records) == 0 {
		return nil
	}

	indexes := resolveColumns(records[0])

	var problems []Problem
	for i, row := range records[1:] {
		if emptyRow(row) {
			continue
		}
		p := Problem{
			ID:         cell(row, indexes[colID]),
			Name:       cell(row, indexes[colName]),
			Frequency:  cell(row, indexes[colFrequency]),
			Difficulty: cell(row, indexes[colDifficulty]),
		}
		if p.ID == "" {
			p.ID = strconv.Itoa(i + 1)
		}
		if p.Frequency == "" {
			p.Frequency = defaultFrequency
		}
		if p.Difficulty == "" {
			p.Difficulty = defaultDifficulty
		}
		problems = append(problems, p)
	}
	return problems
}

// resolveColumns maps each canonical field to a header index, or -1 when no
// header matches any alias. Later headers win, matching the original's
// behavior of keeping the last matching field.
func resolveColumns(header []string) [numColumns]int {
	var indexes [numColumns]int
	for i := range indexes {
		indexes[i] = -1
	}
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		if h == "" {
			continue
		}
		for _, ca := range columnAliases {
			if matchesAlias(h, ca.substring, ca.exact) {
				indexes[ca.col] = i
			}
		}
	}
	return indexes
}

func matchesAlias(header string, substring, exact []string) bool {
	for _, alias := range substring {
		if strings.Contains(header, alias) {
			return true
		}
	}
	for _, alias := range exact {
		if header == alias {
			return true
		}
	}
	return false
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func emptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// LeetCodeURL converts a problem title to its leetcode.com problem URL.
func LeetCodeURL(title string) string {
	if title == "" {
		return ""
	}
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune(' ')
		}
	}
	slug := strings.Join(strings.Fields(b.String()), "-")
	return "https://leetcode.com/problems/" + slug + "/"
}
