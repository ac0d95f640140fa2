package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChar(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	s := New("ab")
	c, ok := s.Char()
	a.True(ok)
	a.Equal(byte('a'), c)

	// Char does not consume.
	c, ok = s.Char()
	a.True(ok)
	a.Equal(byte('a'), c)

	s.Next()
	c, ok = s.Char()
	a.True(ok)
	a.Equal(byte('b'), c)

	s.Next()
	_, ok = s.Char()
	a.False(ok)

	// Advancing past the end is a no-op.
	s.Next()
	_, ok = s.Char()
	a.False(ok)
}

func TestCharEmpty(t *testing.T) {
	t.Parallel()
	_, ok := New("").Char()
	assert.False(t, ok)
}

func TestReadDigits(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name    string
		src     string
		value   uint64
		ndigits int
		ok      bool
	}{
		{name: "empty", src: "", ok: false},
		{name: "no_digits", src: "abc", ok: false},
		{name: "single", src: "7", value: 7, ndigits: 1, ok: true},
		{name: "zero_padded", src: "007", value: 7, ndigits: 3, ok: true},
		{name: "year", src: "2012-03", value: 2012, ndigits: 4, ok: true},
		{name: "compact_date", src: "20120304", value: 20120304, ndigits: 8, ok: true},
		{name: "long_run", src: "890123456789", value: 890123456789, ndigits: 12, ok: true},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)

			s := New(tc.src)
			value, ok := s.ReadDigits()
			a.Equal(tc.ok, ok)
			if !tc.ok {
				return
			}
			a.Equal(tc.value, value)
			a.Equal(tc.ndigits, s.NDigits())
		})
	}
}

func TestScanWalk(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	// Walk a timestamp-shaped string the way the parser does.
	s := New("2012-03-04")

	value, ok := s.ReadDigits()
	a.True(ok)
	a.Equal(uint64(2012), value)
	a.Equal(4, s.NDigits())

	c, ok := s.Char()
	a.True(ok)
	a.Equal(byte('-'), c)
	s.Next()

	value, ok = s.ReadDigits()
	a.True(ok)
	a.Equal(uint64(3), value)
	a.Equal(2, s.NDigits())

	s.Next()
	value, ok = s.ReadDigits()
	a.True(ok)
	a.Equal(uint64(4), value)
	a.Equal(2, s.NDigits())

	_, ok = s.Char()
	a.False(ok)

	// A failed read does not disturb NDigits.
	_, ok = s.ReadDigits()
	a.False(ok)
	a.Equal(2, s.NDigits())
}
