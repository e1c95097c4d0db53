package odata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uevc/odata.v4.parser/edm"
	"github.com/uevc/odata.v4.parser/odataparser"
)

func TestParseFilter(t *testing.T) {
	tok, err := ParseFilter("Name eq 'John'")
	require.NoError(t, err)
	require.Equal(t, odataparser.EqualsExpression, tok.Type)
	v := tok.Value.(odataparser.BinaryValue)
	assert.Equal(t, "Name", v.Left.Raw)
	assert.Equal(t, odataparser.Literal, v.Right.Type)
	assert.Equal(t, "Edm.String", v.Right.Value)
	assert.Equal(t, "'John'", v.Right.Raw)
}

func TestParseFilterErrors(t *testing.T) {
	_, err := ParseFilter("???invalid???")
	require.Error(t, err)
	var empty EmptyParseError
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, "filter", empty.Rule)

	_, err = ParseFilter("")
	assert.ErrorAs(t, err, &empty)

	_, err = ParseFilter("Name eq 'John' garbage")
	var trailing TrailingInputError
	require.ErrorAs(t, err, &trailing)
	assert.Equal(t, len("Name eq 'John'"), trailing.Position)
}

func TestParseQueryOptions(t *testing.T) {
	tok, err := ParseQueryOptions("$top=10&$skip=20")
	require.NoError(t, err)
	options := tok.Value.(odataparser.OptionsValue).Options
	require.Len(t, options, 2)
	assert.Equal(t, odataparser.Top, options[0].Type)
	assert.Equal(t, odataparser.Skip, options[1].Type)

	// unknown $-option never sneaks through as custom
	_, err = ParseQueryOptions("$foo=123")
	var empty EmptyParseError
	assert.ErrorAs(t, err, &empty)

	// a single stray character yields the correct trailing position
	_, err = ParseQueryOptions("$top=10x")
	var trailing TrailingInputError
	require.ErrorAs(t, err, &trailing)
	assert.Equal(t, 7, trailing.Position)
}

func TestParseKeys(t *testing.T) {
	tok, err := ParseKeys("(OrderID=1,Lang='no')")
	require.NoError(t, err)
	require.Equal(t, odataparser.KeyPredicate, tok.Type)
	items := tok.Value.(odataparser.ListValue).Items
	require.Len(t, items, 2)

	_, err = ParseKeys("()")
	assert.Error(t, err)
}

func TestParseLiteral(t *testing.T) {
	tok, err := ParseLiteral("2012-09-10T12:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "Edm.DateTimeOffset", tok.Value)

	_, err = ParseLiteral("'O''Neil' ")
	var trailing TrailingInputError
	require.ErrorAs(t, err, &trailing)
	assert.Equal(t, len("'O''Neil'"), trailing.Position)
}

func TestParseResourcePath(t *testing.T) {
	tok, err := ParseResourcePath("Customers('ALFKI')/Orders")
	require.NoError(t, err)
	assert.Equal(t, odataparser.ResourcePath, tok.Type)

	_, err = ParseResourcePath("")
	assert.Error(t, err)
}

func TestParseODataUri(t *testing.T) {
	tok, err := ParseODataUri("http://example.com/svc/Products?$filter=Price gt 20")
	require.NoError(t, err)
	assert.Equal(t, odataparser.ODataUri, tok.Type)
	assert.Equal(t, 0, tok.Position)
	assert.Equal(t, len("http://example.com/svc/Products?$filter=Price gt 20"), tok.Next)
}

func TestParserWithSchema(t *testing.T) {
	schema := &edm.Schema{
		EntitySets: []edm.EntitySet{{Name: "Products", EntityType: "Product"}},
	}
	p := NewParser(schema)

	_, err := p.ResourcePath("Products(1)")
	require.NoError(t, err)

	_, err = p.ResourcePath("Unknown(1)")
	var empty EmptyParseError
	assert.ErrorAs(t, err, &empty)
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "filter: input does not match the grammar",
		EmptyParseError{Rule: "filter"}.Error())
	assert.Equal(t, "filter: unexpected trailing input at position 7",
		TrailingInputError{Rule: "filter", Position: 7}.Error())
}
