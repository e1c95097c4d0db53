package odataparser

import (
	"strings"
	"unicode/utf8"

	"github.com/smasher164/xid"
)

// Identifier and name layer. odataIdentifier per ABNF is (ALPHA / "_")
// followed by up to 127 identifier characters, where identifier characters
// are Unicode letters, digits, marks and underscore. The XID classes cover
// the Unicode part.

const maxIdentifierLength = 128

func isIdentifierStart(src string, pos int) bool {
	if pos >= len(src) {
		return false
	}
	if src[pos] == '_' {
		return true
	}
	r, _ := utf8.DecodeRuneInString(src[pos:])
	if r == utf8.RuneError {
		return false
	}
	return xid.Start(r)
}

func isIdentifierContinue(src string, pos int) bool {
	if pos >= len(src) {
		return false
	}
	if src[pos] == '_' {
		return true
	}
	r, _ := utf8.DecodeRuneInString(src[pos:])
	if r == utf8.RuneError {
		return false
	}
	return xid.Continue(r)
}

// identifier scans an odataIdentifier and returns the end index, or -1.
func identifier(src string, pos int) int {
	if !isIdentifierStart(src, pos) {
		return -1
	}
	_, w := utf8.DecodeRuneInString(src[pos:])
	i := pos + w
	count := 1
	for count < maxIdentifierLength && isIdentifierContinue(src, i) {
		_, w = utf8.DecodeRuneInString(src[i:])
		i += w
		count++
	}
	return i
}

// Identifier parses an odataIdentifier token; Value is the name string.
func Identifier(src string, pos int) *Token {
	next := identifier(src, pos)
	if next < 0 {
		return nil
	}
	return tokenize(src, pos, next, src[pos:next], ODataIdentifier)
}

// QualifiedName parses namespace "." odataIdentifier (at least one dot).
// Value is the full dotted name. The token type is the generic
// QualifiedTypeName; callers with a metadata context may refine it.
func QualifiedName(src string, pos int) *Token {
	i := identifier(src, pos)
	if i < 0 {
		return nil
	}
	parts := 1
	for i < len(src) && src[i] == '.' {
		j := identifier(src, i+1)
		if j < 0 {
			break
		}
		i = j
		parts++
	}
	if parts < 2 {
		return nil
	}
	return tokenize(src, pos, i, src[pos:i], QualifiedTypeName)
}

// primitiveTypeNames is the fixed set of EDM primitive type names accepted
// by cast/isof. Geo types are listed with their concrete subtypes.
var primitiveTypeNames = []string{
	"Edm.Binary", "Edm.Boolean", "Edm.Byte", "Edm.Date", "Edm.DateTimeOffset",
	"Edm.Decimal", "Edm.Double", "Edm.Duration", "Edm.Guid", "Edm.Int16",
	"Edm.Int32", "Edm.Int64", "Edm.SByte", "Edm.Single", "Edm.Stream",
	"Edm.String", "Edm.TimeOfDay",
	"Edm.GeographyPoint", "Edm.GeographyLineString", "Edm.GeographyPolygon",
	"Edm.GeographyMultiPoint", "Edm.GeographyMultiLineString",
	"Edm.GeographyMultiPolygon", "Edm.GeographyCollection",
	"Edm.GeometryPoint", "Edm.GeometryLineString", "Edm.GeometryPolygon",
	"Edm.GeometryMultiPoint", "Edm.GeometryMultiLineString",
	"Edm.GeometryMultiPolygon", "Edm.GeometryCollection",
}

// PrimitiveTypeNameToken parses one of the fixed Edm.* type names. Every name
// is tried and the longest one ending at a word boundary wins, so a name is
// never masked by a shorter prefix.
func PrimitiveTypeNameToken(src string, pos int) *Token {
	best := -1
	for _, n := range primitiveTypeNames {
		if i := match(src, pos, n); i > best && wordBoundary(src, i) {
			best = i
		}
	}
	if best < 0 {
		return nil
	}
	return tokenize(src, pos, best, src[pos:best], PrimitiveTypeName)
}

// typeNameToken parses either a primitive type name or a qualified
// namespace-prefixed type name, preferring the primitive form for Edm.*.
func typeNameToken(src string, pos int) *Token {
	if strings.HasPrefix(src[pos:], "Edm.") {
		if t := PrimitiveTypeNameToken(src, pos); t != nil {
			return t
		}
	}
	return QualifiedName(src, pos)
}
