package bank

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// ErrEmptySource is returned when the source has a header row but no
// usable question rows.
var ErrEmptySource = errors.New("question source contains no questions")

// Client fetches a question bank from a remote delimited-text source.
// The source is expected to have a header row naming the columns
// question, option1..option4, answer and explanation.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a Client for the given source URL.
func NewClient(url string) *Client {
	return &Client{
		url:        url,
		httpClient: http.DefaultClient,
	}
}

// Fetch downloads and parses the question source. There is no retry and
// no timeout beyond what ctx carries; a failed attempt is terminal.
func (c *Client) Fetch(ctx context.Context) ([]Question, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch question source: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch question source: unexpected status %s", resp.Status)
	}

	r := csv.NewReader(resp.Body)
	r.FieldsPerRecord = -1 // rows are passed through as-is, no schema layer

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse question source: %w", err)
	}

	questions := Parse(rows)
	if len(questions) == 0 {
		return nil, ErrEmptySource
	}
	return questions, nil
}

// Parse converts raw delimited rows into questions. The first row is a
// header mapping column names to positions; rows without question text
// are dropped, everything else is kept as-is and handled defensively
// downstream.
func Parse(rows [][]string) []Question {
	if len(rows) < 2 {
		return nil
	}

	cols := headerIndex(rows[0])
	questions := make([]Question, 0, len(rows)-1)

	for _, row := range rows[1:] {
		text := strings.TrimSpace(field(row, cols, "question"))
		if text == "" {
			continue
		}

		q := Question{
			Text:        text,
			Explanation: field(row, cols, "explanation"),
		}
		for i := 1; i <= OptionCount; i++ {
			q.Options = append(q.Options, field(row, cols, "option"+strconv.Itoa(i)))
		}
		// A malformed answer parses to 0 and falls outside 1..4;
		// CorrectText covers that with a placeholder.
		q.Correct, _ = strconv.Atoi(strings.TrimSpace(field(row, cols, "answer")))

		questions = append(questions, q)
	}
	return questions
}

func headerIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

func field(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
