package odataparser

import (
	"github.com/uevc/odata.v4.parser/edm"
)

// Resource path layer: entity-set / singleton prefix, key predicates,
// navigation tails, type cast segments and function import calls. The
// metadata context is optional; without it any well-formed name is accepted
// and the first segment defaults to an entity set reference.

// ResourcePathToken parses a resource path at pos. The token's payload is a
// flat ListValue of segment tokens in source order.
func ResourcePathToken(src string, pos int, schema *edm.Schema) *Token {
	var prefix *Token
	start := pos
	if q := QualifiedName(src, pos); q != nil {
		// optional type-cast prefix before the entity set reference
		if i := match(src, q.Next, "/"); i >= 0 {
			q.Type = TypeCastSegment
			prefix = q
			pos = i
		}
	}
	first := Identifier(src, pos)
	if first == nil {
		return nil
	}
	if schema != nil {
		switch {
		case schema.HasSingleton(first.Raw):
			first.Type = SingletonEntity
		case schema.HasEntitySet(first.Raw):
			first.Type = EntitySetName
		case schema.HasFunctionImport(first.Raw):
			first.Type = FunctionImportCall
		default:
			return nil
		}
	} else {
		first.Type = EntitySetName
	}
	segments := []*Token{first}
	if prefix != nil {
		segments = []*Token{prefix, first}
	}
	i := first.Next

	switch first.Type {
	case FunctionImportCall:
		if call := functionCallArgs(src, i); call != nil {
			segments = append(segments, call)
			i = call.Next
		}
	case EntitySetName:
		// without metadata the key-predicate reading wins over the
		// function-call reading of name(...)
		if key := KeyPredicateToken(src, i, schema); key != nil {
			segments = append(segments, key)
			i = key.Next
		} else if call := functionCallArgs(src, i); call != nil {
			first.Type = FunctionImportCall
			segments = append(segments, call)
			i = call.Next
		}
	}

	for {
		j := match(src, i, "/")
		if j < 0 {
			break
		}
		if q := QualifiedName(src, j); q != nil {
			q.Type = TypeCastSegment
			segments = append(segments, q)
			i = q.Next
			continue
		}
		seg := Identifier(src, j)
		if seg == nil {
			break
		}
		seg.Type = PropertyPath
		segments = append(segments, seg)
		i = seg.Next
		if key := KeyPredicateToken(src, i, schema); key != nil {
			segments = append(segments, key)
			i = key.Next
		} else if call := functionCallArgs(src, i); call != nil {
			seg.Type = BoundOperation
			segments = append(segments, call)
			i = call.Next
		}
	}
	return tokenize(src, start, i, ListValue{Items: segments}, ResourcePath)
}

// KeyPredicateToken parses "(" ( simpleKey | compoundKey ) ")". The payload
// is always a ListValue: a single Literal for a simple key, KeyValuePair
// tokens for a compound key. The compound form is tried first since its
// prefix (an identifier followed by =) can never be a primitive literal.
func KeyPredicateToken(src string, pos int, schema *edm.Schema) *Token {
	i := match(src, pos, "(")
	if i < 0 {
		return nil
	}
	i = bws(src, i)

	if items, end, ok := compoundKey(src, i); ok {
		end = bws(src, end)
		if end = match(src, end, ")"); end >= 0 {
			return tokenize(src, pos, end, ListValue{Items: items}, KeyPredicate)
		}
	}

	lit := PrimitiveLiteral(src, i)
	if lit == nil {
		return nil
	}
	i = bws(src, lit.Next)
	if i = match(src, i, ")"); i < 0 {
		return nil
	}
	return tokenize(src, pos, i, ListValue{Items: []*Token{lit}}, KeyPredicate)
}

func compoundKey(src string, pos int) (items []*Token, end int, ok bool) {
	i := pos
	for {
		key := Identifier(src, i)
		if key == nil {
			return nil, 0, false
		}
		j := bws(src, key.Next)
		if j = match(src, j, "="); j < 0 {
			return nil, 0, false
		}
		j = bws(src, j)
		value := PrimitiveLiteral(src, j)
		if value == nil {
			return nil, 0, false
		}
		items = append(items, tokenize(src, key.Position, value.Next,
			KeyPairValue{Key: key, Value: value}, KeyValuePair))
		i = bws(src, value.Next)
		if j = match(src, i, ","); j >= 0 {
			i = bws(src, j)
			continue
		}
		return items, i, true
	}
}

// functionCallArgs parses "(" name=commonExpr *( "," name=commonExpr ) ")"
// after a function import or bound operation name. The empty parameter list
// "()" is allowed.
func functionCallArgs(src string, pos int) *Token {
	i := match(src, pos, "(")
	if i < 0 {
		return nil
	}
	i = bws(src, i)
	var params []*Token
	if j := match(src, i, ")"); j >= 0 {
		return tokenize(src, pos, j, ListValue{}, FunctionImportCall)
	}
	for {
		name := Identifier(src, i)
		if name == nil {
			return nil
		}
		j := bws(src, name.Next)
		if j = match(src, j, "="); j < 0 {
			return nil
		}
		j = bws(src, j)
		value := CommonExpr(src, j)
		if value == nil {
			return nil
		}
		params = append(params, tokenize(src, name.Position, value.Next,
			KeyPairValue{Key: name, Value: value}, FunctionParameter))
		i = bws(src, value.Next)
		if j = match(src, i, ","); j >= 0 {
			i = bws(src, j)
			continue
		}
		break
	}
	if i = match(src, i, ")"); i < 0 {
		return nil
	}
	return tokenize(src, pos, i, ListValue{Items: params}, FunctionImportCall)
}
