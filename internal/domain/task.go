package domain

import (
	"strings"
	"unicode/utf8"
)

// MinTitleLength is the minimum number of characters a trimmed title must contain.
const MinTitleLength = 3

// Task is a single entry in the task list.
// ID is assigned by the store on creation and never changes afterwards.
type Task struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// NormalizeTitle trims surrounding whitespace from a raw title and checks it
// against the title rules. It returns the trimmed title on success.
//
// The checks run in order: an empty result fails with ReasonTitleRequired,
// a result shorter than MinTitleLength fails with ReasonTitleTooShort.
func NormalizeTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", NewValidationError("title", ReasonTitleRequired)
	}
	if utf8.RuneCountInString(title) < MinTitleLength {
		return "", NewValidationError("title", ReasonTitleTooShort)
	}
	return title, nil
}
