package types

import (
	"fmt"

	"github.com/theory/oradt/internal/scan"
)

// parseError returns the error reported for any malformed timestamp
// literal. Parsing distinguishes no finer failure kinds.
func parseError(src string) error {
	return fmt.Errorf("%w: Cannot parse %q as Timestamp", ErrOraType, src)
}

// Parse decodes a timestamp literal into a Timestamp. It accepts the
// canonical layout produced by [Timestamp.String] as well as a number of
// relaxed and compact variants:
//
//   - a bare year ("2012"), a year and month ("2012-03"), or a full date
//     ("2012-03-04", "20120304")
//   - an optional time separated by "T" or a space ("05:06:07",
//     "05:06", "050607")
//   - an optional fractional second; digits past the ninth are dropped
//   - an optional time zone, either "Z" or a signed offset ("+08:45",
//     "+0845", "-08:45"), optionally preceded by a single space
//
// The input is consumed in a single forward pass with no backtracking;
// compact digit-run forms are recognized by digit count alone. Calendar
// fields are not validated. Any structural violation, including
// unconsumed trailing characters, reports the same malformed-timestamp
// error wrapping [ErrOraType].
func Parse(src string) (Timestamp, error) {
	s := scan.New(src)

	minus := false
	if c, ok := s.Char(); ok && c == '-' {
		s.Next()
		minus = true
	}
	year, ok := s.ReadDigits()
	if !ok {
		return Timestamp{}, parseError(src)
	}
	month, day := uint64(1), uint64(1)
	switch c, ok := s.Char(); {
	case !ok || c == 'T' || c == ' ':
		if year > 10000 {
			// 20120304 -> 2012-03-04
			day = year % 100
			month = (year / 100) % 100
			year /= 10000
		}
	case c == '-':
		s.Next()
		if month, ok = s.ReadDigits(); !ok {
			return Timestamp{}, parseError(src)
		}
		if c, ok := s.Char(); ok && c == '-' {
			s.Next()
			if day, ok = s.ReadDigits(); !ok {
				return Timestamp{}, parseError(src)
			}
		}
	default:
		return Timestamp{}, parseError(src)
	}

	var hour, minute, second, nsec uint64
	var tzHour, tzMinute int
	precision := 0
	withTZ := false
	if c, ok := s.Char(); ok {
		if c != 'T' && c != ' ' {
			return Timestamp{}, parseError(src)
		}
		s.Next()
		if hour, ok = s.ReadDigits(); !ok {
			return Timestamp{}, parseError(src)
		}
		if c, ok := s.Char(); ok && c == ':' {
			s.Next()
			if minute, ok = s.ReadDigits(); !ok {
				return Timestamp{}, parseError(src)
			}
			if c, ok := s.Char(); ok && c == ':' {
				s.Next()
				if second, ok = s.ReadDigits(); !ok {
					return Timestamp{}, parseError(src)
				}
			}
		} else if s.NDigits() == 6 {
			// 123456 -> 12:34:56
			second = hour % 100
			minute = (hour / 100) % 100
			hour /= 10000
		} else {
			return Timestamp{}, parseError(src)
		}

		if c, ok := s.Char(); ok && c == '.' {
			s.Next()
			if nsec, ok = s.ReadDigits(); !ok {
				return Timestamp{}, parseError(src)
			}
			precision = s.NDigits()
			if precision < 9 {
				nsec *= pow10(9 - precision)
			} else if precision > 9 {
				// Truncate, don't round.
				nsec /= pow10(precision - 9)
				precision = 9
			}
		}

		// A single space is tolerated before the time zone.
		if c, ok := s.Char(); ok && c == ' ' {
			s.Next()
		}
		switch c, ok := s.Char(); {
		case ok && (c == '+' || c == '-'):
			s.Next()
			raw, ok := s.ReadDigits()
			if !ok {
				return Timestamp{}, parseError(src)
			}
			tzHour = int(raw)
			if c2, ok := s.Char(); ok && c2 == ':' {
				s.Next()
				raw, ok := s.ReadDigits()
				if !ok {
					return Timestamp{}, parseError(src)
				}
				tzMinute = int(raw)
			} else {
				// 0845 -> 08:45
				tzMinute = tzHour % 100
				tzHour /= 100
			}
			if c == '-' {
				tzHour = -tzHour
				tzMinute = -tzMinute
			}
			withTZ = true
		case ok && c == 'Z':
			s.Next()
			withTZ = true
		}

		if _, ok := s.Char(); ok {
			return Timestamp{}, parseError(src)
		}
	}

	signedYear := int32(year)
	if minus {
		signedYear = -signedYear
	}
	ts := New(
		signedYear, uint32(month), uint32(day),
		uint32(hour), uint32(minute), uint32(second), uint32(nsec),
	)
	ts.Precision = uint8(precision)
	if withTZ {
		ts = ts.WithTZHMOffset(tzHour, tzMinute)
	}
	return ts, nil
}
