package odataparser

import (
	"strings"

	"github.com/uevc/odata.v4.parser/edm"
)

// URI assembly: odataUri ::= serviceRoot [ "/" resourcePath ] [ "?" queryOptions ].
// The service root is everything up to and including the last '/' before the
// query string; the remaining path segment is the resource path. A URI whose
// path ends in '/' addresses the service document and has no resource path.

// ODataUriToken parses a full OData URI at pos.
func ODataUriToken(src string, pos int, schema *edm.Schema) *Token {
	q := strings.IndexByte(src[pos:], '?')
	if q < 0 {
		q = len(src)
	} else {
		q += pos
	}

	slash := strings.LastIndexByte(src[pos:q], '/')
	if slash < 0 {
		return nil
	}
	slash += pos

	rootEnd := slash + 1
	root := serviceRoot(src, pos, rootEnd)
	if root == nil {
		// no path after the authority: the whole prefix is the service root
		root = serviceRoot(src, pos, q)
		if root == nil {
			return nil
		}
		rootEnd = q
	}
	segments := []*Token{root}
	i := rootEnd

	if i < q {
		rp := ResourcePathToken(src, i, schema)
		if rp == nil || rp.Next != q {
			return nil
		}
		segments = append(segments, rp)
		i = rp.Next
	}

	if j := match(src, i, "?"); j >= 0 {
		qo := QueryOptionsToken(src, j, schema)
		if qo == nil {
			return nil
		}
		segments = append(segments, qo)
		i = qo.Next
	}
	return tokenize(src, pos, i, ListValue{Items: segments}, ODataUri)
}

// serviceRoot validates scheme "://" authority at [pos, end) and builds the
// ServiceRoot token over that span.
func serviceRoot(src string, pos, end int) *Token {
	if end <= pos || end > len(src) {
		return nil
	}
	i := pos
	if i >= len(src) || !isAlpha(src[i]) {
		return nil
	}
	for i < end && (isAlphaNum(src[i]) || src[i] == '+' || src[i] == '-' || src[i] == '.') {
		i++
	}
	j := match(src, i, "://")
	if j < 0 || j >= end {
		return nil
	}
	// at least one authority character before the terminating slash
	if end-1 <= j {
		return nil
	}
	return tokenize(src, pos, end, src[pos:end], ServiceRoot)
}
