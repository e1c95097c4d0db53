package odataparser

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
)

// Literal value recovery: materialise the Go value of a Literal token from
// its Raw text. The mapping per EDM type:
//
//	Edm.String          string (quotes stripped, escapes decoded)
//	Edm.Boolean         bool
//	Edm.Int32           int32
//	Edm.Int64           int64
//	Edm.Single          float32
//	Edm.Double          float64 (INF/-INF/NaN included)
//	Edm.Decimal         decimal.Decimal
//	Edm.Guid            uuid.UUID
//	Edm.Date            time.Time (midnight UTC)
//	Edm.DateTimeOffset  time.Time
//	Edm.TimeOfDay       time.Duration since midnight
//	Edm.Duration        time.Duration
//	Edm.Binary          []byte
//	Edm.Enum            string (the member list between the quotes)
//	Edm.Geography*/Edm.Geometry*  string (the WKT body between the quotes)
//	null                nil

// LiteralValue decodes the value of a Literal token. Tokens of any other
// type are an error.
func LiteralValue(t *Token) (any, error) {
	if t == nil || t.Type != Literal {
		return nil, fmt.Errorf("not a literal token")
	}
	edmType, ok := t.Value.(string)
	if !ok {
		return nil, fmt.Errorf("literal token carries no EDM type name")
	}
	raw := t.Raw
	switch edmType {
	case "null":
		return nil, nil
	case "Edm.Boolean":
		return raw == "true", nil
	case "Edm.String":
		return decodeString(raw)
	case "Edm.Int32":
		v, err := strconv.ParseInt(raw, 10, 32)
		return int32(v), err
	case "Edm.Int64":
		v, err := strconv.ParseInt(raw, 10, 64)
		return v, err
	case "Edm.Single":
		v, err := strconv.ParseFloat(strings.TrimRight(raw, "fF"), 32)
		return float32(v), err
	case "Edm.Double":
		return decodeDouble(raw)
	case "Edm.Decimal":
		return decimal.NewFromString(raw)
	case "Edm.Guid":
		return uuid.FromString(raw)
	case "Edm.Date":
		return time.Parse("2006-01-02", raw)
	case "Edm.DateTimeOffset":
		return decodeDateTimeOffset(raw)
	case "Edm.TimeOfDay":
		return decodeTimeOfDay(raw)
	case "Edm.Duration":
		return decodeDuration(quotedBody(raw))
	case "Edm.Binary":
		return decodeBinary(raw)
	case "Edm.Enum":
		return quotedBody(raw), nil
	}
	if strings.HasPrefix(edmType, "Edm.Geography") || strings.HasPrefix(edmType, "Edm.Geometry") {
		return quotedBody(raw), nil
	}
	return nil, fmt.Errorf("no value decoding for %s", edmType)
}

// quotedBody returns the text between the first and last single quote of a
// prefixed literal such as duration'P1D'.
func quotedBody(raw string) string {
	open := strings.IndexByte(raw, '\'')
	close := strings.LastIndexByte(raw, '\'')
	if open < 0 || close <= open {
		return raw
	}
	return raw[open+1 : close]
}

func decodeString(raw string) (string, error) {
	var b strings.Builder
	i := squote(raw, 0)
	if i < 0 {
		return "", fmt.Errorf("malformed string literal: %q", raw)
	}
	for i < len(raw) {
		if j := squote(raw, i); j >= 0 {
			if k := squote(raw, j); k >= 0 {
				b.WriteByte('\'')
				i = k
				continue
			}
			return b.String(), nil
		}
		b.WriteByte(raw[i])
		i++
	}
	return "", fmt.Errorf("unterminated string literal: %q", raw)
}

func decodeDouble(raw string) (float64, error) {
	switch raw {
	case "INF":
		return math.Inf(1), nil
	case "-INF":
		return math.Inf(-1), nil
	case "NaN":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(strings.TrimRight(raw, "dD"), 64)
}

var dateTimeOffsetLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04Z07:00",
}

func decodeDateTimeOffset(raw string) (time.Time, error) {
	var firstErr error
	for _, layout := range dateTimeOffsetLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

func decodeTimeOfDay(raw string) (time.Duration, error) {
	parts := strings.SplitN(raw, ":", 3)
	if len(parts) != 3 {
		return 0, fmt.Errorf("malformed time-of-day: %q", raw)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, err
	}
	s, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return 0, err
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute +
		time.Duration(s*float64(time.Second)), nil
}

// decodeDuration parses the ISO 8601 body of a duration literal (days and
// time components only, per the EDM model).
func decodeDuration(body string) (time.Duration, error) {
	rest := body
	negative := false
	switch {
	case strings.HasPrefix(rest, "-"):
		negative = true
		rest = rest[1:]
	case strings.HasPrefix(rest, "+"):
		rest = rest[1:]
	}
	if !strings.HasPrefix(rest, "P") {
		return 0, fmt.Errorf("malformed duration: %q", body)
	}
	rest = rest[1:]
	var total time.Duration
	if i := strings.IndexByte(rest, 'D'); i >= 0 {
		days, err := strconv.Atoi(rest[:i])
		if err != nil {
			return 0, err
		}
		total += time.Duration(days) * 24 * time.Hour
		rest = rest[i+1:]
	}
	if strings.HasPrefix(rest, "T") {
		rest = rest[1:]
		for _, unit := range []struct {
			suffix byte
			d      time.Duration
		}{{'H', time.Hour}, {'M', time.Minute}} {
			if i := strings.IndexByte(rest, unit.suffix); i >= 0 {
				n, err := strconv.Atoi(rest[:i])
				if err != nil {
					return 0, err
				}
				total += time.Duration(n) * unit.d
				rest = rest[i+1:]
			}
		}
		if i := strings.IndexByte(rest, 'S'); i >= 0 {
			secs, err := strconv.ParseFloat(rest[:i], 64)
			if err != nil {
				return 0, err
			}
			total += time.Duration(secs * float64(time.Second))
			rest = rest[i+1:]
		}
	}
	if rest != "" {
		return 0, fmt.Errorf("malformed duration: %q", body)
	}
	if negative {
		total = -total
	}
	return total, nil
}

func decodeBinary(raw string) ([]byte, error) {
	body := quotedBody(raw)
	if strings.HasPrefix(raw, "X") {
		return hex.DecodeString(body)
	}
	// base64url, with or without padding
	if b, err := base64.URLEncoding.DecodeString(body); err == nil {
		return b, nil
	}
	return base64.RawURLEncoding.DecodeString(body)
}
