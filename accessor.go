package glide

import (
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// PropertyValue is an accessor's internal representation of one property
// value at a point in time. It is opaque to the animation loop; only the
// owning accessor interprets it.
type PropertyValue any

// Accessor is the pluggable strategy for one kind of property value: how to
// parse a raw style string, how to interpolate between two parsed values,
// and how to write an interpolated value back to an element.
type Accessor interface {
	// Parse converts a raw style string into the accessor's internal
	// representation. ok is false when the string cannot be interpreted;
	// the property is then skipped for the whole animation.
	Parse(raw string) (v PropertyValue, ok bool)

	// Interpolate computes the value at the given eased progress. It must
	// be pure: same inputs, same output.
	Interpolate(start, target PropertyValue, progress float64) PropertyValue

	// Apply writes current to the element. start is passed alongside so the
	// accessor can carry invariants (such as the unit) from the origin
	// value.
	Apply(el Element, property string, start, current PropertyValue)
}

// accessors maps property names to registered accessors. Populated at setup
// time and read-only while animations run; unregistered names resolve to
// Numeric.
var accessors = make(map[string]Accessor)

// RegisterAccessor installs a custom accessor for a property name, replacing
// any previous registration. Call during setup, not while animations are
// running.
func RegisterAccessor(property string, a Accessor) {
	accessors[property] = a
}

// accessorFor resolves the accessor for a property name.
func accessorFor(property string) Accessor {
	if a, ok := accessors[property]; ok {
		return a
	}
	return Numeric
}

// NumericValue is the Numeric accessor's representation: a magnitude plus an
// optional unit suffix ("px", "%", "em", or "" for unitless values).
type NumericValue struct {
	Value float64
	Unit  string
}

// Numeric is the default accessor. It parses a leading signed decimal number
// with an optional unit suffix, interpolates linearly, and always carries
// the unit of the start value (mismatched units are not reconciled; that is
// the caller's responsibility).
var Numeric Accessor = numericAccessor{}

type numericAccessor struct{}

// Parse tokenizes the raw string with the CSS lexer and accepts a leading
// number, percentage, or dimension token. The magnitude is parsed as a full
// float; "12.5px" yields 12.5, not a truncated 12.
func (numericAccessor) Parse(raw string) (PropertyValue, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, false
	}
	lex := css.NewLexer(parse.NewInputString(trimmed))
	tt, data := lex.Next()

	switch tt {
	case css.NumberToken:
		v, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return nil, false
		}
		return NumericValue{Value: v}, true

	case css.PercentageToken:
		v, err := strconv.ParseFloat(strings.TrimSuffix(string(data), "%"), 64)
		if err != nil {
			return nil, false
		}
		return NumericValue{Value: v, Unit: "%"}, true

	case css.DimensionToken:
		n, m := parse.Dimension(data)
		v, err := strconv.ParseFloat(string(data[:n]), 64)
		if err != nil {
			return nil, false
		}
		return NumericValue{Value: v, Unit: string(data[n : n+m])}, true
	}
	return nil, false
}

// Interpolate returns start + (target-start)*progress. The formula reduces
// algebraically to the endpoints at progress 0 and 1, so those are exact.
func (numericAccessor) Interpolate(start, target PropertyValue, progress float64) PropertyValue {
	s, sok := start.(NumericValue)
	t, tok := target.(NumericValue)
	if !sok || !tok {
		return start
	}
	return NumericValue{
		Value: s.Value + (t.Value-s.Value)*progress,
		Unit:  s.Unit,
	}
}

// Apply writes current's magnitude with the start value's unit suffix.
func (numericAccessor) Apply(el Element, property string, start, current PropertyValue) {
	c, ok := current.(NumericValue)
	if !ok {
		return
	}
	unit := ""
	if s, ok := start.(NumericValue); ok {
		unit = s.Unit
	}
	el.SetStyle(property, strconv.FormatFloat(c.Value, 'f', -1, 64)+unit)
}
