// Package dtype enumerates the scalar types Argus signals carry (spec
// §3, component A) and the numeric promotion rule for mixed-type
// arithmetic and comparison.
package dtype

import "fmt"

// DType tags the scalar type of a Signal or an Expression leaf.
type DType uint8

const (
	Bool DType = iota
	Int64
	UInt64
	Float64
)

// String renders the textual tag used for serialization and error
// messages; the ordinal above is stable and must not be renumbered.
func (d DType) String() string {
	switch d {
	case Bool:
		return "bool"
	case Int64:
		return "int64"
	case UInt64:
		return "uint64"
	case Float64:
		return "float64"
	default:
		return fmt.Sprintf("dtype(%d)", uint8(d))
	}
}

// Parse converts a textual tag back to a DType, the inverse of String
// for the three numeric kinds and Bool.
func Parse(s string) (DType, bool) {
	switch s {
	case "bool":
		return Bool, true
	case "int64":
		return Int64, true
	case "uint64":
		return UInt64, true
	case "float64":
		return Float64, true
	default:
		return 0, false
	}
}

// IsNumeric reports whether d participates in arithmetic; Bool does not.
func (d DType) IsNumeric() bool { return d != Bool }

// Promote implements the mixed-type arithmetic/comparison promotion rule
// of spec §3: Float64 dominates, then Int64, then UInt64. Bool must not
// be passed here — callers are expected to have already rejected Bool
// operands for arithmetic/comparison at the AST-construction layer.
func Promote(a, b DType) DType {
	if a == Float64 || b == Float64 {
		return Float64
	}
	if a == Int64 || b == Int64 {
		return Int64
	}
	return UInt64
}
