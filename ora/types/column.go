package types

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// Kind identifies an Oracle datetime column type.
type Kind uint8

const (
	// DateKind identifies the DATE column type.
	DateKind Kind = iota
	// TimestampKind identifies the TIMESTAMP column type.
	TimestampKind
	// TimestampTZKind identifies the TIMESTAMP WITH TIME ZONE column
	// type.
	TimestampTZKind
	// TimestampLTZKind identifies the TIMESTAMP WITH LOCAL TIME ZONE
	// column type.
	TimestampLTZKind
)

//nolint:gochecknoglobals
var kindNames = map[Kind]string{
	DateKind:         "DATE",
	TimestampKind:    "TIMESTAMP",
	TimestampTZKind:  "TIMESTAMP WITH TIME ZONE",
	TimestampLTZKind: "TIMESTAMP WITH LOCAL TIME ZONE",
}

// String returns the Oracle name of k.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Kinds returns the known column kinds in ascending order.
func Kinds() []Kind {
	kinds := maps.Keys(kindNames) // Switch to maps when go 1.22 dropped
	slices.Sort(kinds)
	return kinds
}

// ColumnType describes a datetime column: its kind and, for the
// timestamp kinds, the declared fractional-second precision. The
// precision of a DATE column is ignored.
type ColumnType struct {
	Kind        Kind
	FSPrecision uint8
}

// NativeTimestamp is the fixed-layout datetime record exchanged with the
// native driver. FSecond holds the fractional second in nanoseconds.
type NativeTimestamp struct {
	Year           int16
	Month          uint8
	Day            uint8
	Hour           uint8
	Minute         uint8
	Second         uint8
	FSecond        uint32
	TZHourOffset   int8
	TZMinuteOffset int8
}

// FromNative converts a native driver record into a Timestamp. The
// column type determines the precision and time zone presence: a DATE
// column yields precision zero and no time zone, a TIMESTAMP column the
// declared precision and no time zone, and the two time zone kinds the
// declared precision with the record's offset. The offset fields are
// copied regardless.
func FromNative(rec NativeTimestamp, col ColumnType) Timestamp {
	var precision uint8
	var withTZ bool
	switch col.Kind {
	case TimestampKind:
		precision = col.FSPrecision
	case TimestampTZKind, TimestampLTZKind:
		precision, withTZ = col.FSPrecision, true
	case DateKind:
	}
	return Timestamp{
		Year:           int32(rec.Year),
		Month:          uint32(rec.Month),
		Day:            uint32(rec.Day),
		Hour:           uint32(rec.Hour),
		Minute:         uint32(rec.Minute),
		Second:         uint32(rec.Second),
		Nanosecond:     rec.FSecond,
		TZHourOffset:   int32(rec.TZHourOffset),
		TZMinuteOffset: int32(rec.TZMinuteOffset),
		Precision:      precision,
		WithTZ:         withTZ,
	}
}
