package bank

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleCSV = `question,option1,option2,option3,option4,answer,explanation
What is 2+2?,3,4,5,6,2,Basic addition.
Capital of France?,London,Berlin,Paris,Rome,3,Paris is the capital.
Largest planet?,Jupiter,Mars,Venus,Earth,1,
`

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	questions, err := NewClient(srv.URL).Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(questions))
	}

	q := questions[1]
	if q.Text != "Capital of France?" {
		t.Errorf("text = %q", q.Text)
	}
	if q.Correct != 3 {
		t.Errorf("correct = %d, want 3", q.Correct)
	}
	if q.CorrectText() != "Paris" {
		t.Errorf("correct text = %q, want Paris", q.CorrectText())
	}
	if q.Explanation != "Paris is the capital." {
		t.Errorf("explanation = %q", q.Explanation)
	}
}

func TestFetch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Fetch(context.Background())
	if err == nil {
		t.Fatal("expected error on 500 response")
	}
}

func TestFetch_HeaderOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("question,option1,option2,option3,option4,answer,explanation\n"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Fetch(context.Background())
	if err != ErrEmptySource {
		t.Fatalf("err = %v, want ErrEmptySource", err)
	}
}

func TestParse_MalformedRows(t *testing.T) {
	rows := [][]string{
		{"question", "option1", "option2", "option3", "option4", "answer", "explanation"},
		{"", "a", "b", "c", "d", "1", "dropped: no text"},
		{"Short row?", "a", "b"},
		{"Bad answer?", "a", "b", "c", "d", "seven", ""},
	}

	questions := Parse(rows)
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}

	short := questions[0]
	if len(short.Options) != OptionCount {
		t.Errorf("short row options = %d, want %d", len(short.Options), OptionCount)
	}
	if short.CorrectText() != UnavailableAnswer {
		t.Errorf("short row correct text = %q, want placeholder", short.CorrectText())
	}

	bad := questions[1]
	if bad.Correct != 0 {
		t.Errorf("unparseable answer = %d, want 0", bad.Correct)
	}
	if bad.CorrectText() != UnavailableAnswer {
		t.Errorf("correct text = %q, want placeholder", bad.CorrectText())
	}
}

func TestSubset(t *testing.T) {
	c := NewCache()
	c.Replace([]Question{
		{Text: "q1"}, {Text: "q2"}, {Text: "q3"}, {Text: "q4"}, {Text: "q5"},
	})

	for k := 1; k <= 5; k++ {
		sub := c.Subset(k)
		if len(sub) != k {
			t.Fatalf("Subset(%d) len = %d", k, len(sub))
		}
		seen := make(map[string]bool)
		for _, q := range sub {
			if seen[q.Text] {
				t.Fatalf("Subset(%d) returned duplicate %q", k, q.Text)
			}
			seen[q.Text] = true
		}
	}

	if got := c.Subset(99); len(got) != 5 {
		t.Errorf("oversized request: len = %d, want 5", len(got))
	}
	if got := c.Subset(0); got != nil {
		t.Errorf("Subset(0) = %v, want nil", got)
	}
}

func TestSubset_DoesNotMutateCache(t *testing.T) {
	c := NewCache()
	c.Replace([]Question{{Text: "q1"}, {Text: "q2"}, {Text: "q3"}})

	for range 20 {
		c.Subset(2)
	}

	want := []string{"q1", "q2", "q3"}
	for i, q := range c.Questions() {
		if q.Text != want[i] {
			t.Fatalf("cache order changed: %v", c.Questions())
		}
	}
}
