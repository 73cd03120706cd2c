// Package query implements field-scoped search over the consumables
// catalog. A query targets exactly one record field per invocation;
// matching is case-insensitive throughout.
package query

import (
	"strconv"
	"strings"

	"github.com/hfranco/xcl/internal/catalog"
)

// Field selects which record field a query runs against.
type Field string

const (
	FieldModel  Field = "model"  // printer_model, substring
	FieldPart   Field = "part"   // part_number, substring
	FieldColor  Field = "color"  // color, exact
	FieldType   Field = "type"   // consumable_type, exact
	FieldIOT    Field = "iot"    // iot_codename, substring
	FieldRegion Field = "region" // region_zone, exact
	FieldYield  Field = "yield"  // yield, numeric expression
)

// Fields lists the valid selectors in display order.
func Fields() []Field {
	return []Field{
		FieldModel, FieldPart, FieldColor, FieldType,
		FieldIOT, FieldRegion, FieldYield,
	}
}

// Query is a parsed, runnable search.
type Query struct {
	Field Field
	term  string
	yield yieldExpr
}

// Parse builds a Query from a field selector and a raw query string.
//
// Text fields take a plain term; model, part and iot match as
// substrings, color, type and region must match the whole value.
//
// The yield field takes a numeric expression:
//   - "LOW-HIGH"  → inclusive range, requires LOW ≤ HIGH
//   - ">N"        → strictly greater than N
//   - "<N"        → strictly less than N
//   - "N"         → exactly N
//
// Errors: ErrEmptyQuery for an empty or all-whitespace query,
// *UnknownFieldError for a bad selector, *InvalidRangeError for a
// yield expression that does not parse.
func Parse(field, raw string) (Query, error) {
	f := Field(strings.ToLower(strings.TrimSpace(field)))
	switch f {
	case FieldModel, FieldPart, FieldColor, FieldType, FieldIOT, FieldRegion, FieldYield:
	default:
		return Query{}, &UnknownFieldError{Field: field}
	}

	term := strings.TrimSpace(raw)
	if term == "" {
		return Query{}, ErrEmptyQuery
	}

	q := Query{Field: f, term: term}
	if f == FieldYield {
		expr, err := parseYieldExpr(term)
		if err != nil {
			return Query{}, err
		}
		q.yield = expr
	}
	return q, nil
}

// Term returns the trimmed query text.
func (q Query) Term() string {
	return q.term
}

// Matches checks the query against a single record.
//
// Records whose yield is not numeric (after comma stripping) never
// match a yield query; they are skipped, not an error.
func (q Query) Matches(r catalog.Record) bool {
	switch q.Field {
	case FieldModel:
		return containsFold(r.PrinterModel, q.term)
	case FieldPart:
		return containsFold(r.PartNumber, q.term)
	case FieldColor:
		return strings.EqualFold(r.Color, q.term)
	case FieldType:
		return strings.EqualFold(r.ConsumableType, q.term)
	case FieldIOT:
		return containsFold(r.IOTCodename, q.term)
	case FieldRegion:
		return strings.EqualFold(r.RegionZone, q.term)
	case FieldYield:
		n, err := catalog.ParseYield(r.Yield)
		if err != nil {
			return false
		}
		return q.yield.matches(n)
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

type yieldOp int

const (
	opRange yieldOp = iota
	opGreater
	opLess
	opExact
)

type yieldExpr struct {
	op        yieldOp
	low, high int
}

func (e yieldExpr) matches(n int) bool {
	switch e.op {
	case opRange:
		return n >= e.low && n <= e.high
	case opGreater:
		return n > e.low
	case opLess:
		return n < e.low
	case opExact:
		return n == e.low
	}
	return false
}

func parseYieldExpr(s string) (yieldExpr, error) {
	switch {
	case strings.HasPrefix(s, ">"):
		n, err := parseBound(s[1:])
		if err != nil {
			return yieldExpr{}, &InvalidRangeError{Input: s, Reason: "bound is not an integer"}
		}
		return yieldExpr{op: opGreater, low: n}, nil

	case strings.HasPrefix(s, "<"):
		n, err := parseBound(s[1:])
		if err != nil {
			return yieldExpr{}, &InvalidRangeError{Input: s, Reason: "bound is not an integer"}
		}
		return yieldExpr{op: opLess, low: n}, nil

	case strings.Contains(s, "-"):
		parts := strings.Split(s, "-")
		if len(parts) != 2 {
			return yieldExpr{}, &InvalidRangeError{Input: s, Reason: "range must be LOW-HIGH"}
		}
		low, errLow := parseBound(parts[0])
		high, errHigh := parseBound(parts[1])
		if errLow != nil || errHigh != nil {
			return yieldExpr{}, &InvalidRangeError{Input: s, Reason: "bounds must be integers"}
		}
		if low > high {
			// Reject rather than swap: a reversed range is a typo the
			// user should see, not silently reinterpret.
			return yieldExpr{}, &InvalidRangeError{Input: s, Reason: "lower bound exceeds upper bound"}
		}
		return yieldExpr{op: opRange, low: low, high: high}, nil

	default:
		n, err := parseBound(s)
		if err != nil {
			return yieldExpr{}, &InvalidRangeError{Input: s, Reason: "expected N, LOW-HIGH, >N or <N"}
		}
		return yieldExpr{op: opExact, low: n}, nil
	}
}

func parseBound(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
