package odataparser

import (
	"math"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, input string) any {
	t.Helper()
	tok := PrimitiveLiteral(input, 0)
	require.NotNil(t, tok)
	require.Equal(t, len(input), tok.Next)
	v, err := LiteralValue(tok)
	require.NoError(t, err)
	return v
}

func TestLiteralValues(t *testing.T) {
	assert.Equal(t, nil, decode(t, "null"))
	assert.Equal(t, true, decode(t, "true"))
	assert.Equal(t, false, decode(t, "false"))

	assert.Equal(t, int32(42), decode(t, "42"))
	assert.Equal(t, int32(-2147483648), decode(t, "-2147483648"))
	assert.Equal(t, int64(2147483648), decode(t, "2147483648"))
	assert.Equal(t, float32(1.5), decode(t, "1.5f"))
	assert.Equal(t, 150.0, decode(t, "1.5e2"))
	assert.True(t, math.IsInf(decode(t, "INF").(float64), 1))
	assert.True(t, math.IsInf(decode(t, "-INF").(float64), -1))
	assert.True(t, math.IsNaN(decode(t, "NaN").(float64)))

	d := decode(t, "3.14").(decimal.Decimal)
	assert.Equal(t, "3.14", d.String())

	assert.Equal(t, "hello", decode(t, "'hello'"))
	assert.Equal(t, "O'Neil", decode(t, "'O''Neil'"))
	assert.Equal(t, "'", decode(t, "''''"))
	assert.Equal(t, "a'b", decode(t, "'a%27%27b'"))

	g := decode(t, "0050568D-35B2-4B0F-a88d-90274DC5BFC6").(uuid.UUID)
	assert.Equal(t, "0050568d-35b2-4b0f-a88d-90274dc5bfc6", g.String())

	date := decode(t, "2012-09-10").(time.Time)
	assert.Equal(t, 2012, date.Year())
	assert.Equal(t, time.September, date.Month())

	dto := decode(t, "2012-09-10T12:30:00Z").(time.Time)
	assert.Equal(t, 12, dto.Hour())

	tod := decode(t, "12:30:05").(time.Duration)
	assert.Equal(t, 12*time.Hour+30*time.Minute+5*time.Second, tod)

	dur := decode(t, "duration'P1DT2H3M4.5S'").(time.Duration)
	assert.Equal(t, 26*time.Hour+3*time.Minute+4500*time.Millisecond, dur)
	neg := decode(t, "duration'-PT30M'").(time.Duration)
	assert.Equal(t, -30*time.Minute, neg)

	assert.Equal(t, []byte("foobar"), decode(t, "binary'Zm9vYmFy'"))
	assert.Equal(t, []byte{0x1a, 0x2b}, decode(t, "X'1A2B'"))

	assert.Equal(t, "Red,Blue", decode(t, "Sales.Pattern'Red,Blue'"))
	assert.Equal(t, "SRID=4326;Point(-122.2 47.6)", decode(t, "geography'SRID=4326;Point(-122.2 47.6)'"))
}

func TestLiteralValueErrors(t *testing.T) {
	_, err := LiteralValue(nil)
	assert.Error(t, err)

	ident := Identifier("Name", 0)
	_, err = LiteralValue(ident)
	assert.Error(t, err)
}
