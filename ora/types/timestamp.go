package types

import (
	"fmt"
	"strings"
	"time"
)

// Timestamp represents an Oracle datetime value broken out into its
// calendar fields. None of the fields are validated against the
// calendar; a Timestamp stores whatever it was given. Nanosecond always
// holds the fractional second at full nanosecond scale; Precision only
// controls how many fractional digits String renders.
//
// Timestamp is a plain comparable value. The builder methods return a
// modified copy rather than mutating in place.
type Timestamp struct {
	Year           int32
	Month          uint32
	Day            uint32
	Hour           uint32
	Minute         uint32
	Second         uint32
	Nanosecond     uint32
	TZHourOffset   int32
	TZMinuteOffset int32
	Precision      uint8
	WithTZ         bool
}

// New returns a Timestamp with the given calendar fields, precision
// zero, and no time zone.
func New(year int32, month, day, hour, minute, second, nanosecond uint32) Timestamp {
	return Timestamp{
		Year:       year,
		Month:      month,
		Day:        day,
		Hour:       hour,
		Minute:     minute,
		Second:     second,
		Nanosecond: nanosecond,
	}
}

// WithTZOffset returns a copy of ts carrying a time zone offset of the
// given number of seconds east of UTC. The hour and minute components
// always share the sign of offset.
func (ts Timestamp) WithTZOffset(offset int) Timestamp {
	ts.TZHourOffset = int32(offset / secondsPerHour)
	ts.TZMinuteOffset = int32((offset % secondsPerHour) / 60)
	ts.WithTZ = true
	return ts
}

// WithTZHMOffset returns a copy of ts carrying the given time zone
// offset components. For offsets west of UTC both hour and minute must
// be negative.
func (ts Timestamp) WithTZHMOffset(hour, minute int) Timestamp {
	ts.TZHourOffset = int32(hour)
	ts.TZMinuteOffset = int32(minute)
	ts.WithTZ = true
	return ts
}

// TZOffset returns the time zone offset of ts in seconds east of UTC.
func (ts Timestamp) TZOffset() int {
	return int(ts.TZHourOffset)*secondsPerHour + int(ts.TZMinuteOffset)*60
}

// pow10 returns 10**n.
func pow10(n int) uint64 {
	p := uint64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}

// String returns the canonical string representation of ts: the year as
// a plain signed decimal, two-digit month, day, hour, minute, and
// second, then Precision fractional digits when Precision is nonzero,
// then the time zone offset as a signed hour and unsigned minute when
// WithTZ is set. For example "2012-03-04 05:06:07.890 +08:45".
func (ts Timestamp) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d-%02d-%02d %02d:%02d:%02d",
		ts.Year, ts.Month, ts.Day, ts.Hour, ts.Minute, ts.Second)
	if p := int(ts.Precision); 1 <= p && p <= 9 {
		fmt.Fprintf(&b, ".%0*d", p, ts.Nanosecond/uint32(pow10(9-p)))
	}
	if ts.WithTZ {
		minute := ts.TZMinuteOffset
		if minute < 0 {
			minute = -minute
		}
		fmt.Fprintf(&b, " %+03d:%02d", ts.TZHourOffset, minute)
	}
	return b.String()
}

// GoTime returns ts as a time.Time. The location is a fixed zone with
// the offset of ts when WithTZ is set and UTC otherwise. Out-of-range
// calendar fields are normalized by the time package.
func (ts Timestamp) GoTime() time.Time {
	loc := time.UTC
	if ts.WithTZ {
		loc = time.FixedZone("", ts.TZOffset())
	}
	return time.Date(
		int(ts.Year), time.Month(ts.Month), int(ts.Day),
		int(ts.Hour), int(ts.Minute), int(ts.Second), int(ts.Nanosecond),
		loc,
	)
}

// FromGoTime coerces t into a Timestamp with the given fractional-second
// precision. When withTZ is set the offset of t's zone is carried over;
// otherwise the offset fields are zero and the zone of t is ignored.
func FromGoTime(t time.Time, precision uint8, withTZ bool) Timestamp {
	ts := New(
		int32(t.Year()), uint32(t.Month()), uint32(t.Day()),
		uint32(t.Hour()), uint32(t.Minute()), uint32(t.Second()),
		uint32(t.Nanosecond()),
	)
	ts.Precision = precision
	if withTZ {
		_, offset := t.Zone()
		ts = ts.WithTZOffset(offset)
	}
	return ts
}

// MarshalJSON implements the json.Marshaler interface. The timestamp is
// a quoted string in the canonical format returned by String.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	str := ts.String()
	b := make([]byte, 0, len(str)+len(`""`))
	b = append(b, '"')
	b = append(b, str...)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The timestamp
// must be a quoted string in any of the layouts accepted by Parse.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}
