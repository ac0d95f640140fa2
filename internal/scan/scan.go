// Package scan provides a forward-only cursor over ASCII text.
//
// It exists to support single-pass parsing of datetime literals, which
// need nothing more than peeking at the current byte, advancing, and
// consuming runs of decimal digits. There is no backtracking.
package scan

// Scanner is a forward-only cursor over a string. The zero value is not
// usable; construct one with New.
type Scanner struct {
	src     string
	pos     int
	ndigits int
}

// New returns a Scanner positioned at the start of src.
func New(src string) *Scanner {
	return &Scanner{src: src}
}

// Char returns the byte at the current position without consuming it.
// Returns false when the input is exhausted.
func (s *Scanner) Char() (byte, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	return s.src[s.pos], true
}

// Next advances the cursor one byte. Advancing past the end of the input
// is a no-op.
func (s *Scanner) Next() {
	if s.pos < len(s.src) {
		s.pos++
	}
}

// ReadDigits consumes a maximal run of ASCII decimal digits and returns
// their accumulated value. Returns false without consuming anything when
// the current byte is not a digit. The length of the run is available
// from NDigits until the next call.
func (s *Scanner) ReadDigits() (uint64, bool) {
	var val uint64
	start := s.pos
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if c < '0' || c > '9' {
			break
		}
		val = val*10 + uint64(c-'0')
		s.pos++
	}
	if s.pos == start {
		return 0, false
	}
	s.ndigits = s.pos - start
	return val, true
}

// NDigits returns the number of digits consumed by the most recent
// successful ReadDigits call.
func (s *Scanner) NDigits() int {
	return s.ndigits
}
