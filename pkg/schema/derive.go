package schema

import (
	"reflect"

	"github.com/dmitrymomot/ruleset/pkg/metadata"
	"github.com/dmitrymomot/ruleset/pkg/rule"
)

// Integral precision ceilings: the decimal digits a signed value of each width
// needs, sign included.
const (
	precision64 = 20
	precision32 = 11
	precision16 = 5
	precision8  = 3
)

// Derive returns the rules implied by a column for a field of type goType.
func Derive(c Column, goType reflect.Type) []rule.Rule {
	if c.ColumnCount != 1 {
		return nil
	}
	t := metadata.Indirect(goType)
	if t == nil {
		return nil
	}

	switch {
	case t.Kind() == reflect.String:
		if c.Length > 0 {
			return []rule.Rule{&rule.LengthRule{Max: c.Length}}
		}
		return nil

	case metadata.IsTime(t):
		if !c.Nullable {
			return []rule.Rule{rule.Required()}
		}
		return nil

	case isNumeric(t):
		var out []rule.Rule
		if !c.Nullable {
			out = append(out, rule.Required())
		}
		precision, scale := EffectivePrecision(t, c.Precision, c.Scale)
		if scale >= 0 && precision > scale {
			out = append(out, &rule.DecimalRule{Precision: precision, Scale: scale})
		}
		return out
	}
	return nil
}

// EffectivePrecision caps precision for integral kinds and forces their
// scale to zero. Other kinds keep the column values.
func EffectivePrecision(t reflect.Type, precision, scale int) (int, int) {
	limit, integral := integralCeiling(t.Kind())
	if !integral {
		return precision, scale
	}
	return min(precision, limit), 0
}

func integralCeiling(k reflect.Kind) (int, bool) {
	switch k {
	case reflect.Int64, reflect.Uint64, reflect.Int, reflect.Uint, reflect.Uintptr:
		return precision64, true
	case reflect.Int32, reflect.Uint32:
		return precision32, true
	case reflect.Int16, reflect.Uint16:
		return precision16, true
	case reflect.Int8, reflect.Uint8:
		return precision8, true
	}
	return 0, false
}

func isNumeric(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
