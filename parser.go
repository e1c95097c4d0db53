// Package odata is the public entry point to the OData v4 URI parser. It
// fronts the combinators in odataparser with entry points that demand the
// whole input is consumed, turning a non-match into EmptyParseError and a
// partial match into TrailingInputError.
package odata

import (
	"github.com/uevc/odata.v4.parser/edm"
	"github.com/uevc/odata.v4.parser/odataparser"
)

// Parser carries the optional metadata context. The zero value parses
// without metadata; Parser is stateless apart from the schema reference and
// safe for concurrent use.
type Parser struct {
	Schema *edm.Schema
}

// NewParser returns a parser bound to the given schema; schema may be nil.
func NewParser(schema *edm.Schema) *Parser {
	return &Parser{Schema: schema}
}

func finish(rule, input string, t *odataparser.Token) (*odataparser.Token, error) {
	if t == nil {
		return nil, EmptyParseError{Rule: rule}
	}
	if t.Next < len(input) {
		return nil, TrailingInputError{Rule: rule, Position: t.Next}
	}
	return t, nil
}

// ODataUri parses a full OData URI (service root, resource path, query
// options).
func (p *Parser) ODataUri(input string) (*odataparser.Token, error) {
	return finish("odataUri", input, odataparser.ODataUriToken(input, 0, p.Schema))
}

// ResourcePath parses a resource path without service root.
func (p *Parser) ResourcePath(input string) (*odataparser.Token, error) {
	return finish("resourcePath", input, odataparser.ResourcePathToken(input, 0, p.Schema))
}

// QueryOptions parses the portion of a URI after '?'.
func (p *Parser) QueryOptions(input string) (*odataparser.Token, error) {
	return finish("queryOptions", input, odataparser.QueryOptionsToken(input, 0, p.Schema))
}

// Filter parses a boolean expression as used in $filter.
func (p *Parser) Filter(input string) (*odataparser.Token, error) {
	return finish("filter", input, odataparser.BoolCommonExpr(input, 0))
}

// Keys parses a parenthesised key predicate.
func (p *Parser) Keys(input string) (*odataparser.Token, error) {
	return finish("keys", input, odataparser.KeyPredicateToken(input, 0, p.Schema))
}

// Literal parses a single primitive literal.
func (p *Parser) Literal(input string) (*odataparser.Token, error) {
	return finish("literal", input, odataparser.PrimitiveLiteral(input, 0))
}

var defaultParser = &Parser{}

// ParseODataUri parses a full OData URI without metadata.
func ParseODataUri(input string) (*odataparser.Token, error) {
	return defaultParser.ODataUri(input)
}

// ParseResourcePath parses a resource path without metadata.
func ParseResourcePath(input string) (*odataparser.Token, error) {
	return defaultParser.ResourcePath(input)
}

// ParseQueryOptions parses query options without metadata.
func ParseQueryOptions(input string) (*odataparser.Token, error) {
	return defaultParser.QueryOptions(input)
}

// ParseFilter parses a $filter expression.
func ParseFilter(input string) (*odataparser.Token, error) {
	return defaultParser.Filter(input)
}

// ParseKeys parses a key predicate.
func ParseKeys(input string) (*odataparser.Token, error) {
	return defaultParser.Keys(input)
}

// ParseLiteral parses a primitive literal.
func ParseLiteral(input string) (*odataparser.Token, error) {
	return defaultParser.Literal(input)
}
