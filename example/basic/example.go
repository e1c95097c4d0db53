package example

import (
	odata "github.com/uevc/odata.v4.parser"
	"github.com/uevc/odata.v4.parser/odataparser"
)

// LiteralRaws parses a $filter expression and returns the raw text of every
// primitive literal in it, in source order.
func LiteralRaws(filter string) ([]string, error) {
	tok, err := odata.ParseFilter(filter)
	if err != nil {
		return nil, err
	}
	var raws []string
	odataparser.Walk(tok, func(t *odataparser.Token) bool {
		if t.Type == odataparser.Literal {
			raws = append(raws, t.Raw)
		}
		return true
	})
	return raws, nil
}
