// Copyright (c) 2026 Raphaël Scherrer
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package readpars

import (
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// ReadAll reads a whole parameter file into a map. Lines with a single
// value token map the parameter name to a float64, lines with several
// map it to a []float64. When a name occurs on more than one line, the
// last occurrence wins. Tokenization and parsing are as strict as in
// the streaming API; only the destination-type policing is deferred,
// since a map carries no destination types.
func ReadAll(filename string, opts ...Option) (map[string]any, error) {
	r := New(filename, opts...)
	if err := r.Open(); err != nil {
		return nil, err
	}
	defer r.Close()

	params := make(map[string]any)
	for !r.EOF() {
		if err := r.ReadLine(); err != nil {
			return nil, err
		}
		if r.Empty() || r.Comment() {
			continue
		}
		var vals []float64
		for !r.cur.endOfLine() {
			var v float64
			if err := read(r, &v, nil); err != nil {
				return nil, err
			}
			vals = append(vals, v)
		}
		if len(vals) == 1 {
			params[r.Name()] = vals[0]
		} else {
			params[r.Name()] = vals
		}
	}
	return params, nil
}

// Unmarshal reads a whole parameter file into a struct. Fields are
// matched by their `param` tag (untagged fields match their name
// case-insensitively), scalar fields take single-value lines and slice
// fields take
// the full run of values on their line. Destination-type policing is
// the same as in [ReadValue]; parameters matching no field are
// rejected. If the destination implements
//
//	interface{ Validate() error }
//
// its Validate method runs after decoding.
//
// File-level failures keep their streaming error types; per-field
// coercion failures are reported with the offending key but without a
// line number, which the map form no longer carries.
func Unmarshal(filename string, v any, opts ...Option) error {
	params, err := ReadAll(filename, opts...)
	if err != nil {
		return err
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "param",
		Result:      v,
		ErrorUnused: true,
		DecodeHook:  paramDecodeHook(),
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(params); err != nil {
		return err
	}

	if val, ok := v.(interface{ Validate() error }); ok {
		return val.Validate()
	}
	return nil
}

// paramDecodeHook converts the float64 and []float64 values produced by
// [ReadAll] into the destination field types, applying the same
// representability rules as the streaming reads.
func paramDecodeHook() mapstructure.DecodeHookFuncValue {
	return func(f, t reflect.Value) (any, error) {
		switch f.Kind() {
		case reflect.Float64:
			if t.Kind() == reflect.Slice {
				return convertVector([]float64{f.Float()}, t.Type())
			}
			return convertScalar(f.Float(), t.Type())
		case reflect.Slice:
			if t.Kind() == reflect.Slice {
				return convertVector(f.Interface().([]float64), t.Type())
			}
			if t.Kind() == reflect.Interface {
				return f.Interface(), nil
			}
			return nil, fmt.Errorf("expected a single value, got %d", f.Len())
		default:
			return f.Interface(), nil
		}
	}
}

func convertScalar(x float64, t reflect.Type) (any, error) {
	k := t.Kind()
	if k == reflect.Interface || k == reflect.Float64 {
		return x, nil
	}
	if !coercible(k) {
		return nil, fmt.Errorf("unsupported destination type %s", t)
	}
	if !representable(x, k) {
		return nil, fmt.Errorf("cannot represent %v as %s", x, t)
	}
	v := reflect.New(t).Elem()
	store(v, x)
	return v.Interface(), nil
}

func convertVector(xs []float64, t reflect.Type) (any, error) {
	out := reflect.MakeSlice(t, len(xs), len(xs))
	for i, x := range xs {
		elem, err := convertScalar(x, t.Elem())
		if err != nil {
			return nil, err
		}
		out.Index(i).Set(reflect.ValueOf(elem))
	}
	return out.Interface(), nil
}

// coercible reports whether a field kind belongs to the closed set of
// supported destinations.
func coercible(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
