// Package types provides Oracle-compatible datetime value types.
//
// It duplicates the textual behavior of the Oracle datetime column types
// DATE, TIMESTAMP, TIMESTAMP WITH TIME ZONE, and TIMESTAMP WITH LOCAL
// TIME ZONE: a single Timestamp value type carries the broken-out
// calendar fields, a fractional-second precision, and an optional fixed
// UTC offset, and converts exactly between its in-memory form and the
// textual literals the database accepts and emits.
package types

import "errors"

// ErrOraType wraps errors returned by the types package.
var ErrOraType = errors.New("oratype")

// secondsPerHour contains the number of seconds in an hour (excluding
// leap seconds).
const secondsPerHour = 60 * 60
