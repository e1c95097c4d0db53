package edm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	schema, err := Load(strings.NewReader(`
namespace: Sales
entityTypes:
  - name: Product
    key: [ID]
    properties: [ID, Name, Price]
    navigationProperties: [Category]
entitySets:
  - name: Products
    entityType: Product
singletons:
  - name: Me
    entityType: Customer
functionImports:
  - name: GetTopProduct
    parameters: [count]
`))
	require.NoError(t, err)

	assert.Equal(t, "Sales", schema.Namespace)
	assert.True(t, schema.HasEntitySet("Products"))
	assert.False(t, schema.HasEntitySet("Nope"))
	assert.True(t, schema.HasSingleton("Me"))
	assert.True(t, schema.HasFunctionImport("GetTopProduct"))

	et := schema.EntityType("Product")
	require.NotNil(t, et)
	assert.Equal(t, []string{"ID"}, et.Key)
	assert.Nil(t, schema.EntityType("Nope"))
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(strings.NewReader(`{not yaml`))
	assert.Error(t, err)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("does-not-exist.yaml")
	assert.Error(t, err)
}
