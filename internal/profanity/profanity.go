package profanity

import (
	goaway "github.com/TwiN/go-away"
)

// ContainsBadLanguage reports whether the text trips the profanity filter.
// Applied to item names, descriptions and question text before they are
// stored; answers are deliberately not filtered.
func ContainsBadLanguage(text string) bool {
	return goaway.IsProfane(text)
}
