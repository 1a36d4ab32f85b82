package bank

import "github.com/saransh/quizdeck/internal/shuffle"

// Cache holds the question set loaded at startup. A failed or empty load
// leaves the cache empty; the menu treats that as a degraded state where
// a quiz cannot start.
type Cache struct {
	questions []Question
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// Replace swaps in a freshly loaded question set.
func (c *Cache) Replace(questions []Question) {
	c.questions = questions
}

// Questions returns the held set. Callers must not mutate it.
func (c *Cache) Questions() []Question {
	return c.questions
}

// Len returns the number of loaded questions.
func (c *Cache) Len() int {
	return len(c.questions)
}

// Subset returns a random selection of min(count, Len()) distinct
// questions in random order. count must be >= 1; the menu validates
// user input before calling through.
func (c *Cache) Subset(count int) []Question {
	if count < 1 {
		return nil
	}
	shuffled := shuffle.Slice(c.questions)
	if count < len(shuffled) {
		return shuffled[:count]
	}
	return shuffled
}
