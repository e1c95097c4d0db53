package odataparser

import (
	"strconv"
	"strings"
)

// Primitive literal layer. PrimitiveLiteral tries the alternatives in an
// order that guarantees longest-match: GUIDs before numbers (a GUID may start
// with a digit), DateTimeOffset before Date (the latter is a strict prefix of
// the former), and the keyword literals null/true/false only when followed by
// a word boundary, so a longer identifier or enum name is never masked.
func PrimitiveLiteral(src string, pos int) *Token {
	if t := nullValue(src, pos); t != nil {
		return t
	}
	if t := booleanValue(src, pos); t != nil {
		return t
	}
	if t := guidValue(src, pos); t != nil {
		return t
	}
	if t := dateTimeOffsetValue(src, pos); t != nil {
		return t
	}
	if t := dateValue(src, pos); t != nil {
		return t
	}
	if t := timeOfDayValue(src, pos); t != nil {
		return t
	}
	if t := durationValue(src, pos); t != nil {
		return t
	}
	if t := binaryValue(src, pos); t != nil {
		return t
	}
	if t := stringValue(src, pos); t != nil {
		return t
	}
	if t := geoValue(src, pos); t != nil {
		return t
	}
	if t := enumValue(src, pos); t != nil {
		return t
	}
	return numberValue(src, pos)
}

func nullValue(src string, pos int) *Token {
	if i := match(src, pos, "null"); i >= 0 && wordBoundary(src, i) {
		return tokenize(src, pos, i, "null", Literal)
	}
	return nil
}

func booleanValue(src string, pos int) *Token {
	if i := matchOneOf(src, pos, "true", "false"); i >= 0 && wordBoundary(src, i) {
		return tokenize(src, pos, i, "Edm.Boolean", Literal)
	}
	return nil
}

// guidValue scans the 8-4-4-4-12 hex form.
func guidValue(src string, pos int) *Token {
	i := hexDigits(src, pos, 8)
	for _, n := range []int{4, 4, 4, 12} {
		if i < 0 {
			return nil
		}
		if i = match(src, i, "-"); i < 0 {
			return nil
		}
		i = hexDigits(src, i, n)
	}
	if i < 0 {
		return nil
	}
	return tokenize(src, pos, i, "Edm.Guid", Literal)
}

// yearMonthDay scans YYYY-MM-DD (year may be negative and longer than four
// digits); returns the end index or -1. Month and day get a cheap range
// check so that e.g. 2020-13-01 does not scan as a date.
func yearMonthDay(src string, pos int) int {
	i := pos
	if i < len(src) && src[i] == '-' {
		i++
	}
	j := digits(src, i)
	if j < 0 || j-i < 4 {
		return -1
	}
	i = j
	if i = match(src, i, "-"); i < 0 {
		return -1
	}
	monthStart := i
	if i = fixedDigits(src, i, 2); i < 0 {
		return -1
	}
	if m := src[monthStart:i]; m < "01" || m > "12" {
		return -1
	}
	if i = match(src, i, "-"); i < 0 {
		return -1
	}
	dayStart := i
	if i = fixedDigits(src, i, 2); i < 0 {
		return -1
	}
	if d := src[dayStart:i]; d < "01" || d > "31" {
		return -1
	}
	return i
}

// hourMinuteSecond scans hh:mm[:ss[.fraction]]; seconds are required when
// secondsRequired is set (TimeOfDay requires them, DateTimeOffset does not).
func hourMinuteSecond(src string, pos int, secondsRequired bool) int {
	i := fixedDigits(src, pos, 2)
	if i < 0 {
		return -1
	}
	if i = match(src, i, ":"); i < 0 {
		return -1
	}
	if i = fixedDigits(src, i, 2); i < 0 {
		return -1
	}
	j := match(src, i, ":")
	if j < 0 {
		if secondsRequired {
			return -1
		}
		return i
	}
	if j = fixedDigits(src, j, 2); j < 0 {
		if secondsRequired {
			return -1
		}
		return i
	}
	i = j
	if j = match(src, i, "."); j >= 0 {
		if j = digits(src, j); j >= 0 {
			i = j
		}
	}
	return i
}

func dateValue(src string, pos int) *Token {
	i := yearMonthDay(src, pos)
	if i < 0 {
		return nil
	}
	return tokenize(src, pos, i, "Edm.Date", Literal)
}

func dateTimeOffsetValue(src string, pos int) *Token {
	i := yearMonthDay(src, pos)
	if i < 0 {
		return nil
	}
	if i = match(src, i, "T"); i < 0 {
		return nil
	}
	if i = hourMinuteSecond(src, i, false); i < 0 {
		return nil
	}
	// zone designator: Z or +hh:mm / -hh:mm
	if j := matchOneOf(src, i, "Z", "z"); j >= 0 {
		return tokenize(src, pos, j, "Edm.DateTimeOffset", Literal)
	}
	j := matchOneOf(src, i, "+", "-")
	if j < 0 {
		return nil
	}
	if j = fixedDigits(src, j, 2); j < 0 {
		return nil
	}
	if j = match(src, j, ":"); j < 0 {
		return nil
	}
	if j = fixedDigits(src, j, 2); j < 0 {
		return nil
	}
	return tokenize(src, pos, j, "Edm.DateTimeOffset", Literal)
}

func timeOfDayValue(src string, pos int) *Token {
	i := hourMinuteSecond(src, pos, true)
	if i < 0 {
		return nil
	}
	return tokenize(src, pos, i, "Edm.TimeOfDay", Literal)
}

// durationValue scans duration'[+-]PnDTnHnMn.nS'. At least one component is
// required after the P.
func durationValue(src string, pos int) *Token {
	i := match(src, pos, "duration")
	if i < 0 {
		return nil
	}
	if i = squote(src, i); i < 0 {
		return nil
	}
	i = sign(src, i)
	if i = matchOneOf(src, i, "P"); i < 0 {
		return nil
	}
	components := 0
	if j := digits(src, i); j >= 0 {
		if j = match(src, j, "D"); j >= 0 {
			i = j
			components++
		}
	}
	if j := match(src, i, "T"); j >= 0 {
		i = j
		timeComponents := 0
		for _, unit := range []string{"H", "M"} {
			if k := digits(src, i); k >= 0 {
				if k = match(src, k, unit); k >= 0 {
					i = k
					timeComponents++
				}
			}
		}
		if k := digits(src, i); k >= 0 {
			if l := match(src, k, "."); l >= 0 {
				if l = digits(src, l); l >= 0 {
					k = l
				}
			}
			if k = match(src, k, "S"); k >= 0 {
				i = k
				timeComponents++
			}
		}
		if timeComponents == 0 {
			return nil
		}
		components += timeComponents
	}
	if components == 0 {
		return nil
	}
	if i = squote(src, i); i < 0 {
		return nil
	}
	return tokenize(src, pos, i, "Edm.Duration", Literal)
}

// binaryValue scans binary'<base64url>' or the legacy X'<hex>' form.
func binaryValue(src string, pos int) *Token {
	if i := match(src, pos, "binary"); i >= 0 {
		if i = squote(src, i); i < 0 {
			return nil
		}
		for i < len(src) {
			c := src[i]
			if isAlphaNum(c) || c == '-' || c == '_' || c == '=' {
				i++
				continue
			}
			break
		}
		if i = squote(src, i); i < 0 {
			return nil
		}
		return tokenize(src, pos, i, "Edm.Binary", Literal)
	}
	if i := match(src, pos, "X"); i >= 0 {
		if i = squote(src, i); i < 0 {
			return nil
		}
		start := i
		for i < len(src) && isHexDigit(src[i]) {
			i++
		}
		if i == start || (i-start)%2 != 0 {
			return nil
		}
		if i = squote(src, i); i < 0 {
			return nil
		}
		return tokenize(src, pos, i, "Edm.Binary", Literal)
	}
	return nil
}

// stringValue scans a single-quote delimited string. A doubled quote (either
// literal '' or percent-encoded %27%27, or a mix) is the escape for one
// quote character.
func stringValue(src string, pos int) *Token {
	i := squote(src, pos)
	if i < 0 {
		return nil
	}
	for i < len(src) {
		if j := squote(src, i); j >= 0 {
			if k := squote(src, j); k >= 0 {
				// doubled quote, escaped
				i = k
				continue
			}
			return tokenize(src, pos, j, "Edm.String", Literal)
		}
		if src[i] < 0x20 {
			// control characters are not legal inside string literals
			return nil
		}
		i++
	}
	return nil
}

// enumValue scans Namespace.EnumType'member[,member...]'; members are
// identifiers or integers. The literal is typed "Edm.Enum"; the concrete
// enum type name is recovered from Raw.
func enumValue(src string, pos int) *Token {
	name := QualifiedName(src, pos)
	if name == nil {
		return nil
	}
	i := squote(src, name.Next)
	if i < 0 {
		return nil
	}
	for {
		if j := identifier(src, i); j >= 0 {
			i = j
		} else if j := digits(src, sign(src, i)); j >= 0 {
			i = j
		} else {
			return nil
		}
		if j := match(src, i, ","); j >= 0 {
			i = j
			continue
		}
		break
	}
	if i = squote(src, i); i < 0 {
		return nil
	}
	return tokenize(src, pos, i, "Edm.Enum", Literal)
}

// Well-known-text bodies inside geography'...' / geometry'...'.

type wktShape struct {
	tag  string
	edm  string
	body func(src string, pos int) int
}

var wktShapes []wktShape

func init() {
	// longer tags first so MultiLineString is not masked by LineString etc.
	wktShapes = []wktShape{
		{"MultiLineString", "MultiLineString", wktLineStringList},
		{"MultiPolygon", "MultiPolygon", wktPolygonList},
		{"MultiPoint", "MultiPoint", wktPointList},
		{"LineString", "LineString", wktPositions},
		{"Polygon", "Polygon", wktRings},
		{"Point", "Point", wktSinglePosition},
		{"Collection", "Collection", wktCollectionBody},
	}
}

func wktNumber(src string, pos int) int {
	i := sign(src, pos)
	j := digits(src, i)
	if j < 0 {
		return -1
	}
	i = j
	if j = match(src, i, "."); j >= 0 {
		if j = digits(src, j); j >= 0 {
			i = j
		}
	}
	return i
}

// position = number SP number
func wktPosition(src string, pos int) int {
	i := wktNumber(src, pos)
	if i < 0 {
		return -1
	}
	if i = match(src, i, " "); i < 0 {
		return -1
	}
	return wktNumber(src, i)
}

func wktCommaList(src string, pos int, elem func(string, int) int) int {
	i := match(src, pos, "(")
	if i < 0 {
		return -1
	}
	for {
		j := elem(src, i)
		if j < 0 {
			return -1
		}
		i = j
		if j = match(src, i, ","); j >= 0 {
			i = j
			continue
		}
		break
	}
	return match(src, i, ")")
}

func wktSinglePosition(src string, pos int) int {
	i := match(src, pos, "(")
	if i < 0 {
		return -1
	}
	if i = wktPosition(src, i); i < 0 {
		return -1
	}
	return match(src, i, ")")
}

func wktPositions(src string, pos int) int {
	return wktCommaList(src, pos, wktPosition)
}

func wktRings(src string, pos int) int {
	return wktCommaList(src, pos, wktPositions)
}

func wktPointList(src string, pos int) int {
	return wktCommaList(src, pos, wktSinglePosition)
}

func wktLineStringList(src string, pos int) int {
	return wktCommaList(src, pos, wktPositions)
}

func wktPolygonList(src string, pos int) int {
	return wktCommaList(src, pos, wktRings)
}

func wktCollectionBody(src string, pos int) int {
	return wktCommaList(src, pos, func(src string, pos int) int {
		for _, s := range wktShapes {
			if s.tag == "Collection" {
				continue
			}
			if i := matchTag(src, pos, s.tag); i >= 0 {
				if j := s.body(src, i); j >= 0 {
					return j
				}
			}
		}
		return -1
	})
}

// matchTag matches a WKT tag case-insensitively.
func matchTag(src string, pos int, tag string) int {
	if pos+len(tag) > len(src) {
		return -1
	}
	if !strings.EqualFold(src[pos:pos+len(tag)], tag) {
		return -1
	}
	return pos + len(tag)
}

// geoValue scans geography'...' / geometry'...' with an optional SRID=n;
// prefix before the WKT body.
func geoValue(src string, pos int) *Token {
	var prefix string
	i := match(src, pos, "geography")
	if i >= 0 {
		prefix = "Edm.Geography"
	} else {
		if i = match(src, pos, "geometry"); i < 0 {
			return nil
		}
		prefix = "Edm.Geometry"
	}
	if i = squote(src, i); i < 0 {
		return nil
	}
	if j := matchTag(src, i, "SRID"); j >= 0 {
		if j = match(src, j, "="); j < 0 {
			return nil
		}
		if j = digits(src, j); j < 0 {
			return nil
		}
		if j = match(src, j, ";"); j < 0 {
			return nil
		}
		i = j
	}
	for _, s := range wktShapes {
		j := matchTag(src, i, s.tag)
		if j < 0 {
			continue
		}
		j = s.body(src, j)
		if j < 0 {
			continue
		}
		if j = squote(src, j); j < 0 {
			return nil
		}
		return tokenize(src, pos, j, prefix+s.edm, Literal)
	}
	return nil
}

// numberValue scans the numeric literals, including the special float tokens
// INF, -INF and NaN. The EDM type is the minimum-precision one: integers in
// int32 range are Edm.Int32, wider ones Edm.Int64, wider still Edm.Decimal.
// A fraction without exponent is Edm.Decimal; an exponent makes Edm.Double;
// an explicit f/F or d/D suffix forces Edm.Single / Edm.Double.
func numberValue(src string, pos int) *Token {
	if i := matchOneOf(src, pos, "INF", "-INF", "NaN"); i >= 0 && wordBoundary(src, i) {
		return tokenize(src, pos, i, "Edm.Double", Literal)
	}
	i := sign(src, pos)
	j := digits(src, i)
	if j < 0 {
		return nil
	}
	i = j
	hasFraction := false
	hasExponent := false
	if j = match(src, i, "."); j >= 0 {
		if j = digits(src, j); j >= 0 {
			i = j
			hasFraction = true
		}
	}
	if j = matchOneOf(src, i, "e", "E"); j >= 0 {
		if j = digits(src, sign(src, j)); j >= 0 {
			i = j
			hasExponent = true
		}
	}
	if j = matchOneOf(src, i, "f", "F"); j >= 0 && wordBoundary(src, j) {
		return tokenize(src, pos, j, "Edm.Single", Literal)
	}
	if j = matchOneOf(src, i, "d", "D"); j >= 0 && wordBoundary(src, j) {
		return tokenize(src, pos, j, "Edm.Double", Literal)
	}
	switch {
	case hasExponent:
		return tokenize(src, pos, i, "Edm.Double", Literal)
	case hasFraction:
		return tokenize(src, pos, i, "Edm.Decimal", Literal)
	}
	raw := src[pos:i]
	if _, err := strconv.ParseInt(raw, 10, 32); err == nil {
		return tokenize(src, pos, i, "Edm.Int32", Literal)
	}
	if _, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return tokenize(src, pos, i, "Edm.Int64", Literal)
	}
	return tokenize(src, pos, i, "Edm.Decimal", Literal)
}
