package odata

import (
	"fmt"
)

// EmptyParseError is returned when a top-level combinator cannot match at
// index 0 of the input.
type EmptyParseError struct {
	Rule string
}

func (e EmptyParseError) Error() string {
	return fmt.Sprintf("%s: input does not match the grammar", e.Rule)
}

// TrailingInputError is returned when a top-level combinator matched a
// prefix of the input but left code units unread. Position is the first
// unconsumed index.
type TrailingInputError struct {
	Rule     string
	Position int
}

func (e TrailingInputError) Error() string {
	return fmt.Sprintf("%s: unexpected trailing input at position %d", e.Rule, e.Position)
}
