// Package edm holds the optional metadata descriptor threaded through the
// parser. The descriptor is read-only during parsing; combinators use it
// only to classify and validate names, and a nil *Schema is always legal.
package edm

// EntityType describes a named entity type and its properties.
type EntityType struct {
	Name                 string   `yaml:"name"`
	Key                  []string `yaml:"key"`
	Properties           []string `yaml:"properties"`
	NavigationProperties []string `yaml:"navigationProperties"`
}

// ComplexType describes a named complex type.
type ComplexType struct {
	Name       string   `yaml:"name"`
	Properties []string `yaml:"properties"`
}

// EnumType describes a named enumeration type.
type EnumType struct {
	Name    string   `yaml:"name"`
	Members []string `yaml:"members"`
}

// EntitySet binds a name in the service namespace to an entity type.
type EntitySet struct {
	Name       string `yaml:"name"`
	EntityType string `yaml:"entityType"`
}

// Singleton binds a name to a single entity instance.
type Singleton struct {
	Name       string `yaml:"name"`
	EntityType string `yaml:"entityType"`
}

// FunctionImport names an unbound function exposed in the service root.
type FunctionImport struct {
	Name       string   `yaml:"name"`
	Parameters []string `yaml:"parameters"`
}

// Schema is the EDM descriptor for one service.
type Schema struct {
	Namespace       string           `yaml:"namespace"`
	EntityTypes     []EntityType     `yaml:"entityTypes"`
	ComplexTypes    []ComplexType    `yaml:"complexTypes"`
	EnumTypes       []EnumType       `yaml:"enumTypes"`
	EntitySets      []EntitySet      `yaml:"entitySets"`
	Singletons      []Singleton      `yaml:"singletons"`
	FunctionImports []FunctionImport `yaml:"functionImports"`
}

func (s *Schema) HasEntitySet(name string) bool {
	for _, es := range s.EntitySets {
		if es.Name == name {
			return true
		}
	}
	return false
}

func (s *Schema) HasSingleton(name string) bool {
	for _, sg := range s.Singletons {
		if sg.Name == name {
			return true
		}
	}
	return false
}

func (s *Schema) HasFunctionImport(name string) bool {
	for _, fi := range s.FunctionImports {
		if fi.Name == name {
			return true
		}
	}
	return false
}

// EntityType looks up an entity type by unqualified name.
func (s *Schema) EntityType(name string) *EntityType {
	for i := range s.EntityTypes {
		if s.EntityTypes[i].Name == name {
			return &s.EntityTypes[i]
		}
	}
	return nil
}
