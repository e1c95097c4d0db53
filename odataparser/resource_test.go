package odataparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uevc/odata.v4.parser/edm"
)

func mustPath(t *testing.T, input string, schema *edm.Schema) []*Token {
	t.Helper()
	tok := ResourcePathToken(input, 0, schema)
	require.NotNil(t, tok)
	require.Equal(t, len(input), tok.Next, "full input must be consumed")
	require.Equal(t, ResourcePath, tok.Type)
	return tok.Value.(ListValue).Items
}

func TestResourcePathEntitySet(t *testing.T) {
	segments := mustPath(t, "Products", nil)
	require.Len(t, segments, 1)
	assert.Equal(t, EntitySetName, segments[0].Type)
	assert.Equal(t, "Products", segments[0].Raw)
}

func TestResourcePathWithKey(t *testing.T) {
	segments := mustPath(t, "Products(5)", nil)
	require.Len(t, segments, 2)
	assert.Equal(t, KeyPredicate, segments[1].Type)
	items := segments[1].Value.(ListValue).Items
	require.Len(t, items, 1)
	assert.Equal(t, Literal, items[0].Type)
	assert.Equal(t, "Edm.Int32", items[0].Value)
}

func TestResourcePathNavigation(t *testing.T) {
	segments := mustPath(t, "Customers('ALFKI')/Orders(10248)/Total", nil)
	require.Len(t, segments, 5)
	assert.Equal(t, EntitySetName, segments[0].Type)
	assert.Equal(t, KeyPredicate, segments[1].Type)
	assert.Equal(t, PropertyPath, segments[2].Type)
	assert.Equal(t, "Orders", segments[2].Raw)
	assert.Equal(t, KeyPredicate, segments[3].Type)
	assert.Equal(t, PropertyPath, segments[4].Type)
}

func TestResourcePathTypeCast(t *testing.T) {
	segments := mustPath(t, "People/Sales.Manager", nil)
	require.Len(t, segments, 2)
	assert.Equal(t, TypeCastSegment, segments[1].Type)
	assert.Equal(t, "Sales.Manager", segments[1].Raw)
}

func TestResourcePathTypeCastPrefix(t *testing.T) {
	segments := mustPath(t, "Sales.Container/Products(5)", nil)
	require.Len(t, segments, 3)
	assert.Equal(t, TypeCastSegment, segments[0].Type)
	assert.Equal(t, EntitySetName, segments[1].Type)
	assert.Equal(t, KeyPredicate, segments[2].Type)
}

func TestKeyPredicates(t *testing.T) {
	t.Run("simple integer", func(t *testing.T) {
		tok := KeyPredicateToken("(5)", 0, nil)
		require.NotNil(t, tok)
		require.Equal(t, 3, tok.Next)
		items := tok.Value.(ListValue).Items
		require.Len(t, items, 1)
		assert.Equal(t, "5", items[0].Raw)
	})

	t.Run("simple string", func(t *testing.T) {
		tok := KeyPredicateToken("('ALFKI')", 0, nil)
		require.NotNil(t, tok)
		items := tok.Value.(ListValue).Items
		assert.Equal(t, "Edm.String", items[0].Value)
	})

	t.Run("compound", func(t *testing.T) {
		tok := KeyPredicateToken("(OrderID=1,ProductID=2)", 0, nil)
		require.NotNil(t, tok)
		items := tok.Value.(ListValue).Items
		require.Len(t, items, 2)
		require.Equal(t, KeyValuePair, items[0].Type)
		pair := items[0].Value.(KeyPairValue)
		assert.Equal(t, "OrderID", pair.Key.Raw)
		assert.Equal(t, "1", pair.Value.Raw)
	})

	t.Run("guid key", func(t *testing.T) {
		tok := KeyPredicateToken("(0050568D-35B2-4B0F-a88d-90274DC5BFC6)", 0, nil)
		require.NotNil(t, tok)
		items := tok.Value.(ListValue).Items
		assert.Equal(t, "Edm.Guid", items[0].Value)
	})

	t.Run("failures", func(t *testing.T) {
		assert.Nil(t, KeyPredicateToken("()", 0, nil))
		assert.Nil(t, KeyPredicateToken("(Name=)", 0, nil))
		assert.Nil(t, KeyPredicateToken("(5", 0, nil))
	})
}

func TestFunctionImportCallWithoutMetadata(t *testing.T) {
	// name=value arguments that are not primitive literals force the
	// function-call reading
	segments := mustPath(t, "GetNearestAirport(lat=Latitude,lon=Longitude)", nil)
	require.Len(t, segments, 2)
	assert.Equal(t, FunctionImportCall, segments[0].Type)
	require.Equal(t, FunctionImportCall, segments[1].Type)
	params := segments[1].Value.(ListValue).Items
	require.Len(t, params, 2)
	assert.Equal(t, FunctionParameter, params[0].Type)
}

func testSchema() *edm.Schema {
	return &edm.Schema{
		Namespace: "Sales",
		EntitySets: []edm.EntitySet{
			{Name: "Products", EntityType: "Product"},
			{Name: "Customers", EntityType: "Customer"},
		},
		Singletons: []edm.Singleton{
			{Name: "Me", EntityType: "Customer"},
		},
		FunctionImports: []edm.FunctionImport{
			{Name: "GetTopProduct"},
		},
	}
}

func TestResourcePathWithMetadata(t *testing.T) {
	schema := testSchema()

	segments := mustPath(t, "Products(5)", schema)
	assert.Equal(t, EntitySetName, segments[0].Type)

	segments = mustPath(t, "Me", schema)
	assert.Equal(t, SingletonEntity, segments[0].Type)

	segments = mustPath(t, "GetTopProduct(count=3)", schema)
	assert.Equal(t, FunctionImportCall, segments[0].Type)

	// unknown first segment is rejected when metadata is present
	assert.Nil(t, ResourcePathToken("Nope", 0, schema))
}

func TestResourcePathFailures(t *testing.T) {
	assert.Nil(t, ResourcePathToken("", 0, nil))
	assert.Nil(t, ResourcePathToken("$metadata", 0, nil))
	assert.Nil(t, ResourcePathToken("123", 0, nil))
}
