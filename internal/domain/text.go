package domain

import (
	"fmt"
	"unicode/utf8"
)

// Length bounds shared by todo lists and todo items.
const (
	TitleMaxLen       = 100
	DescriptionMaxLen = 200
)

// CheckTitle returns a field message when title is empty or longer than
// TitleMaxLen characters, or "" when it is acceptable.
func CheckTitle(title string) string {
	n := utf8.RuneCountInString(title)
	if n == 0 {
		return MsgRequired
	}
	if n > TitleMaxLen {
		return fmt.Sprintf("must be at most %d characters, got %d", TitleMaxLen, n)
	}
	return ""
}

// CheckDescription returns a field message when a present description is
// empty or longer than DescriptionMaxLen characters.
func CheckDescription(description string) string {
	n := utf8.RuneCountInString(description)
	if n == 0 {
		return "must not be empty"
	}
	if n > DescriptionMaxLen {
		return fmt.Sprintf("must be at most %d characters, got %d", DescriptionMaxLen, n)
	}
	return ""
}
