// Hand-written recursive descent parser for the OData v4 URI grammar
// (OASIS ABNF). Each combinator is a pure function (source, index) -> *Token,
// returning nil when the grammar does not match at that index. There is no
// separate tokenizer; combinators peek by index arithmetic and backtrack by
// simply not advancing.
package odataparser

// TokenType discriminates the kind of an AST node. The set is closed;
// consumers are expected to switch exhaustively over it.
type TokenType int

const (
	// Lexical and literal nodes
	Literal TokenType = iota + 1
	Enum
	EnumValue
	ODataIdentifier
	Namespace
	QualifiedEntityTypeName
	QualifiedComplexTypeName
	QualifiedTypeName
	PrimitiveTypeName

	// Expression nodes
	OrExpression
	AndExpression
	EqualsExpression
	NotEqualsExpression
	LesserThanExpression
	LesserOrEqualsExpression
	GreaterThanExpression
	GreaterOrEqualsExpression
	HasExpression
	InExpression
	AddExpression
	SubExpression
	MulExpression
	DivExpression
	ModExpression
	NotExpression
	NegateExpression
	ParenExpression
	ListExpression
	MethodCallExpression
	CastExpression
	IsOfExpression
	FirstMemberExpression
	PropertyPathExpression
	RootExpression
	LambdaVariableExpression
	LambdaPredicateExpression
	AnyExpression
	AllExpression

	// Resource path nodes
	ResourcePath
	ServiceRoot
	EntitySetName
	SingletonEntity
	PropertyPath
	TypeCastSegment
	KeyPredicate
	SimpleKey
	CompoundKey
	KeyValuePair
	FunctionImportCall
	FunctionParameter
	BoundOperation

	// Query option nodes
	QueryOptions
	CustomQueryOption
	Filter
	Select
	SelectItem
	Expand
	ExpandItem
	ExpandPath
	OrderBy
	OrderByItem
	Top
	Skip
	InlineCount
	Format
	SkipToken
	Levels
	Search
	SearchExpression
	SearchWord
	SearchPhrase
	SearchAndExpression
	SearchOrExpression
	SearchNotExpression

	// URI assembly
	ODataUri

	endOfTokenTypes // keep last
)

func (tt TokenType) GoString() string {
	return tokenTypeToDescription[tt]
}

func (tt TokenType) String() string {
	return tokenTypeToDescription[tt]
}

func init() {
	// make sure we panic if a description isn't declared
	for tt := TokenType(1); tt != endOfTokenTypes; tt++ {
		if tokenTypeToDescription[tt] == "" {
			panic("you have not updated tokenTypeToDescription")
		}
	}
}

var tokenTypeToDescription = map[TokenType]string{
	Literal:                  "Literal",
	Enum:                     "Enum",
	EnumValue:                "EnumValue",
	ODataIdentifier:          "ODataIdentifier",
	Namespace:                "Namespace",
	QualifiedEntityTypeName:  "QualifiedEntityTypeName",
	QualifiedComplexTypeName: "QualifiedComplexTypeName",
	QualifiedTypeName:        "QualifiedTypeName",
	PrimitiveTypeName:        "PrimitiveTypeName",

	OrExpression:              "OrExpression",
	AndExpression:             "AndExpression",
	EqualsExpression:          "EqualsExpression",
	NotEqualsExpression:       "NotEqualsExpression",
	LesserThanExpression:      "LesserThanExpression",
	LesserOrEqualsExpression:  "LesserOrEqualsExpression",
	GreaterThanExpression:     "GreaterThanExpression",
	GreaterOrEqualsExpression: "GreaterOrEqualsExpression",
	HasExpression:             "HasExpression",
	InExpression:              "InExpression",
	AddExpression:             "AddExpression",
	SubExpression:             "SubExpression",
	MulExpression:             "MulExpression",
	DivExpression:             "DivExpression",
	ModExpression:             "ModExpression",
	NotExpression:             "NotExpression",
	NegateExpression:          "NegateExpression",
	ParenExpression:           "ParenExpression",
	ListExpression:            "ListExpression",
	MethodCallExpression:      "MethodCallExpression",
	CastExpression:            "CastExpression",
	IsOfExpression:            "IsOfExpression",
	FirstMemberExpression:     "FirstMemberExpression",
	PropertyPathExpression:    "PropertyPathExpression",
	RootExpression:            "RootExpression",
	LambdaVariableExpression:  "LambdaVariableExpression",
	LambdaPredicateExpression: "LambdaPredicateExpression",
	AnyExpression:             "AnyExpression",
	AllExpression:             "AllExpression",

	ResourcePath:       "ResourcePath",
	ServiceRoot:        "ServiceRoot",
	EntitySetName:      "EntitySetName",
	SingletonEntity:    "SingletonEntity",
	PropertyPath:       "PropertyPath",
	TypeCastSegment:    "TypeCastSegment",
	KeyPredicate:       "KeyPredicate",
	SimpleKey:          "SimpleKey",
	CompoundKey:        "CompoundKey",
	KeyValuePair:       "KeyValuePair",
	FunctionImportCall: "FunctionImportCall",
	FunctionParameter:  "FunctionParameter",
	BoundOperation:     "BoundOperation",

	QueryOptions:        "QueryOptions",
	CustomQueryOption:   "CustomQueryOption",
	Filter:              "Filter",
	Select:              "Select",
	SelectItem:          "SelectItem",
	Expand:              "Expand",
	ExpandItem:          "ExpandItem",
	ExpandPath:          "ExpandPath",
	OrderBy:             "OrderBy",
	OrderByItem:         "OrderByItem",
	Top:                 "Top",
	Skip:                "Skip",
	InlineCount:         "InlineCount",
	Format:              "Format",
	SkipToken:           "SkipToken",
	Levels:              "Levels",
	Search:              "Search",
	SearchExpression:    "SearchExpression",
	SearchWord:          "SearchWord",
	SearchPhrase:        "SearchPhrase",
	SearchAndExpression: "SearchAndExpression",
	SearchOrExpression:  "SearchOrExpression",
	SearchNotExpression: "SearchNotExpression",

	ODataUri: "ODataUri",
}

// Token is a node of the AST. Position/Next are byte offsets into the source
// buffer; Raw is the exact slice [Position, Next). Value holds a payload whose
// shape is fixed per Type (see the *Value structs below); for Literal tokens
// it is the EDM type name as a string.
type Token struct {
	Position int
	Next     int
	Type     TokenType
	Raw      string
	Value    any
}

// BinaryValue is the payload of binary expressions; the operator is implied
// by the token type.
type BinaryValue struct {
	Left  *Token
	Right *Token
}

// UnaryValue is the payload of single-child wrappers (NotExpression,
// NegateExpression, ParenExpression, Filter, Search).
type UnaryValue struct {
	Operand *Token
}

// ListValue is the payload of order-significant collections (Select, Expand,
// OrderBy, KeyPredicate, path segments, list expressions).
type ListValue struct {
	Items []*Token
}

// OptionsValue is the payload of a QueryOptions container; Options preserves
// source order and permits duplicates at parse time.
type OptionsValue struct {
	Options []*Token
}

// OptionValue is the payload of scalar query options (Top, Skip, InlineCount)
// wrapping their inner literal.
type OptionValue struct {
	Value *Token
}

// CustomValue is the payload of a CustomQueryOption.
type CustomValue struct {
	Key   string
	Value string
}

// MethodValue is the payload of MethodCallExpression, CastExpression and
// IsOfExpression.
type MethodValue struct {
	Method     string
	Parameters []*Token
}

// LambdaValue is the payload of AnyExpression/AllExpression. Collection is
// the navigation path preceding any()/all(); Variable and Predicate are nil
// for the empty form any().
type LambdaValue struct {
	Collection *Token
	Variable   *Token
	Predicate  *Token
}

// OrderByItemValue is the payload of a single OrderByItem. Direction defaults
// to ascending when absent in the source.
type OrderByItemValue struct {
	Expr       *Token
	Descending bool
}

// ExpandItemValue is the payload of an ExpandItem; Options holds the nested
// options from the parenthesised list, in source order.
type ExpandItemValue struct {
	Path    *Token
	Options []*Token
}

// KeyPairValue is the payload of a compound-key KeyValuePair.
type KeyPairValue struct {
	Key   *Token
	Value *Token
}

// tokenize is the single Token constructor used by all combinators, so that
// the Raw invariant (Raw == src[start:next]) holds by construction.
func tokenize(src string, start, next int, value any, typ TokenType) *Token {
	return &Token{
		Position: start,
		Next:     next,
		Type:     typ,
		Raw:      src[start:next],
		Value:    value,
	}
}
