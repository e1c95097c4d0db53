package odataparser

import (
	"github.com/uevc/odata.v4.parser/edm"
)

// Query option layer. queryOptions ::= option *( "&" option ); each option
// is tried as a system option first, then as a custom option. Custom option
// names must not start with the reserved '$' prefix (nor with '@' or '!',
// which belong to parameter aliases and vendor extensions), so an unknown
// $-option fails the whole option rather than sneaking through as custom.

// QueryOptionsToken parses the string after '?'. The payload keeps the
// options in source order; duplicates are permitted at parse time.
func QueryOptionsToken(src string, pos int, schema *edm.Schema) *Token {
	first := queryOption(src, pos, schema)
	if first == nil {
		return nil
	}
	options := []*Token{first}
	i := first.Next
	for {
		j := match(src, i, "&")
		if j < 0 {
			break
		}
		opt := queryOption(src, j, schema)
		if opt == nil {
			break
		}
		options = append(options, opt)
		i = opt.Next
	}
	return tokenize(src, pos, i, OptionsValue{Options: options}, QueryOptions)
}

func queryOption(src string, pos int, schema *edm.Schema) *Token {
	if t := systemQueryOption(src, pos, schema); t != nil {
		return t
	}
	return customQueryOption(src, pos)
}

func systemQueryOption(src string, pos int, schema *edm.Schema) *Token {
	if t := filterOption(src, pos); t != nil {
		return t
	}
	if t := selectOption(src, pos); t != nil {
		return t
	}
	if t := expandOption(src, pos, schema); t != nil {
		return t
	}
	if t := orderByOption(src, pos); t != nil {
		return t
	}
	if t := integerOption(src, pos, "$top=", Top); t != nil {
		return t
	}
	if t := integerOption(src, pos, "$skip=", Skip); t != nil {
		return t
	}
	if t := inlineCountOption(src, pos); t != nil {
		return t
	}
	if t := searchOption(src, pos); t != nil {
		return t
	}
	if t := formatOption(src, pos); t != nil {
		return t
	}
	if t := skipTokenOption(src, pos); t != nil {
		return t
	}
	if t := levelsOption(src, pos); t != nil {
		return t
	}
	return nil
}

func filterOption(src string, pos int) *Token {
	i := match(src, pos, "$filter=")
	if i < 0 {
		return nil
	}
	expr := BoolCommonExpr(src, i)
	if expr == nil {
		return nil
	}
	return tokenize(src, pos, expr.Next, UnaryValue{Operand: expr}, Filter)
}

func selectOption(src string, pos int) *Token {
	i := match(src, pos, "$select=")
	if i < 0 {
		return nil
	}
	first := selectItem(src, i)
	if first == nil {
		return nil
	}
	items := []*Token{first}
	i = first.Next
	for {
		j := match(src, i, ",")
		if j < 0 {
			break
		}
		item := selectItem(src, j)
		if item == nil {
			break
		}
		items = append(items, item)
		i = item.Next
	}
	return tokenize(src, pos, i, ListValue{Items: items}, Select)
}

// selectItem ::= "*" | identifier *( "/" identifier-or-qualified-name )
func selectItem(src string, pos int) *Token {
	if i := match(src, pos, "*"); i >= 0 {
		return tokenize(src, pos, i, ListValue{}, SelectItem)
	}
	segments, end := pathSegments(src, pos)
	if segments == nil {
		return nil
	}
	return tokenize(src, pos, end, ListValue{Items: segments}, SelectItem)
}

// pathSegments scans identifier ( "/" (qualifiedName|identifier) )*.
func pathSegments(src string, pos int) ([]*Token, int) {
	first := Identifier(src, pos)
	if first == nil {
		return nil, 0
	}
	segments := []*Token{first}
	i := first.Next
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
		segments = append(segments, seg)
		i = seg.Next
	}
	return segments, i
}

func expandOption(src string, pos int, schema *edm.Schema) *Token {
	i := match(src, pos, "$expand=")
	if i < 0 {
		return nil
	}
	first := expandItem(src, i, schema)
	if first == nil {
		return nil
	}
	items := []*Token{first}
	i = first.Next
	for {
		j := match(src, i, ",")
		if j < 0 {
			break
		}
		item := expandItem(src, j, schema)
		if item == nil {
			break
		}
		items = append(items, item)
		i = item.Next
	}
	return tokenize(src, pos, i, ListValue{Items: items}, Expand)
}

// expandItem ::= path [ "(" expandNestedOption *( ";" expandNestedOption ) ")" ].
// $count= inside the parentheses is not supported.
func expandItem(src string, pos int, schema *edm.Schema) *Token {
	segments, end := pathSegments(src, pos)
	if segments == nil {
		return nil
	}
	path := tokenize(src, pos, end, ListValue{Items: segments}, ExpandPath)
	i := end
	var options []*Token
	if j := match(src, i, "("); j >= 0 {
		for {
			opt := expandNestedOption(src, j, schema)
			if opt == nil {
				return nil
			}
			options = append(options, opt)
			j = opt.Next
			if k := match(src, j, ";"); k >= 0 {
				j = k
				continue
			}
			break
		}
		if j = match(src, j, ")"); j < 0 {
			return nil
		}
		i = j
	}
	return tokenize(src, pos, i, ExpandItemValue{Path: path, Options: options}, ExpandItem)
}

// expandNestedOption is the subset of system options allowed inside an
// expand item's parentheses.
func expandNestedOption(src string, pos int, schema *edm.Schema) *Token {
	if t := filterOption(src, pos); t != nil {
		return t
	}
	if t := selectOption(src, pos); t != nil {
		return t
	}
	if t := expandOption(src, pos, schema); t != nil {
		return t
	}
	if t := orderByOption(src, pos); t != nil {
		return t
	}
	if t := integerOption(src, pos, "$top=", Top); t != nil {
		return t
	}
	if t := integerOption(src, pos, "$skip=", Skip); t != nil {
		return t
	}
	if t := levelsOption(src, pos); t != nil {
		return t
	}
	return searchOption(src, pos)
}

func orderByOption(src string, pos int) *Token {
	i := match(src, pos, "$orderby=")
	if i < 0 {
		return nil
	}
	first := orderByItem(src, i)
	if first == nil {
		return nil
	}
	items := []*Token{first}
	i = first.Next
	for {
		j := match(src, i, ",")
		if j < 0 {
			break
		}
		item := orderByItem(src, j)
		if item == nil {
			break
		}
		items = append(items, item)
		i = item.Next
	}
	return tokenize(src, pos, i, ListValue{Items: items}, OrderBy)
}

// orderByItem ::= commonExpr [ RWS ("asc"|"desc") ]; ascending by default.
func orderByItem(src string, pos int) *Token {
	expr := CommonExpr(src, pos)
	if expr == nil {
		return nil
	}
	end := expr.Next
	descending := false
	if i := rws(src, end); i > end {
		if j := match(src, i, "desc"); j >= 0 && wordBoundary(src, j) {
			end = j
			descending = true
		} else if j := match(src, i, "asc"); j >= 0 && wordBoundary(src, j) {
			end = j
		}
	}
	return tokenize(src, pos, end, OrderByItemValue{Expr: expr, Descending: descending}, OrderByItem)
}

// integerOption handles $top= and $skip=, which require a non-negative
// integer literal.
func integerOption(src string, pos int, prefix string, typ TokenType) *Token {
	i := match(src, pos, prefix)
	if i < 0 {
		return nil
	}
	end := digits(src, i)
	if end < 0 {
		return nil
	}
	inner := tokenize(src, i, end, "Edm.Int32", Literal)
	if !fitsInt32(src[i:end]) {
		inner.Value = "Edm.Int64"
	}
	return tokenize(src, pos, end, OptionValue{Value: inner}, typ)
}

func fitsInt32(s string) bool {
	var v int64
	for i := 0; i < len(s); i++ {
		v = v*10 + int64(s[i]-'0')
		if v > 1<<31-1 {
			return false
		}
	}
	return true
}

func inlineCountOption(src string, pos int) *Token {
	i := match(src, pos, "$count=")
	if i < 0 {
		return nil
	}
	j := matchOneOf(src, i, "true", "false")
	if j < 0 {
		return nil
	}
	inner := tokenize(src, i, j, "Edm.Boolean", Literal)
	return tokenize(src, pos, j, OptionValue{Value: inner}, InlineCount)
}

func searchOption(src string, pos int) *Token {
	i := match(src, pos, "$search=")
	if i < 0 {
		return nil
	}
	expr := SearchExpr(src, i)
	if expr == nil {
		return nil
	}
	return tokenize(src, pos, expr.Next, UnaryValue{Operand: expr}, Search)
}

// formatOption accepts the short format words only; media types such as
// application/json are not supported.
func formatOption(src string, pos int) *Token {
	i := match(src, pos, "$format=")
	if i < 0 {
		return nil
	}
	j := matchOneOf(src, i, "atom", "json", "xml")
	if j < 0 || !wordBoundary(src, j) {
		return nil
	}
	return tokenize(src, pos, j, src[i:j], Format)
}

func skipTokenOption(src string, pos int) *Token {
	i := match(src, pos, "$skiptoken=")
	if i < 0 {
		return nil
	}
	end := optionValueEnd(src, i)
	if end == i {
		return nil
	}
	return tokenize(src, pos, end, src[i:end], SkipToken)
}

func levelsOption(src string, pos int) *Token {
	i := match(src, pos, "$levels=")
	if i < 0 {
		return nil
	}
	if j := match(src, i, "max"); j >= 0 && wordBoundary(src, j) {
		return tokenize(src, pos, j, "max", Levels)
	}
	end := digits(src, i)
	if end < 0 {
		return nil
	}
	return tokenize(src, pos, end, src[i:end], Levels)
}

// customQueryOption parses key=value where key does not carry a reserved
// prefix. The value may be empty and runs to the next '&'.
func customQueryOption(src string, pos int) *Token {
	if pos < len(src) {
		switch src[pos] {
		case '$', '@', '!':
			return nil
		}
	}
	keyEnd := pos
	for keyEnd < len(src) && src[keyEnd] != '=' && src[keyEnd] != '&' {
		keyEnd++
	}
	if keyEnd == pos || keyEnd >= len(src) || src[keyEnd] != '=' {
		return nil
	}
	valueEnd := optionValueEnd(src, keyEnd+1)
	return tokenize(src, pos, valueEnd,
		CustomValue{Key: src[pos:keyEnd], Value: src[keyEnd+1 : valueEnd]}, CustomQueryOption)
}

// optionValueEnd scans to the end of an opaque option value (next '&' or
// end of input).
func optionValueEnd(src string, pos int) int {
	i := pos
	for i < len(src) && src[i] != '&' {
		i++
	}
	return i
}
