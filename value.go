// Copyright (c) 2026 Raphaël Scherrer
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package readpars

import (
	"math"
	"reflect"
	"strconv"
)

// Scalar is the closed set of destination types a value token can be
// coerced into.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~bool
}

// Checker validates a parsed value. An empty return means the value is
// valid; any other return is a human-readable reason which gets wrapped
// with the parameter, line and file context into a [CheckError]. A nil
// Checker accepts everything.
type Checker[T any] func(T) string

// ReadValue reads the single value of the current parameter into dst.
// After the value is stored and checked, any token left on the line
// fails with [TooManyValuesError].
func ReadValue[T Scalar](r *Reader, dst *T, check Checker[T]) error {
	if err := read(r, dst, check); err != nil {
		return err
	}
	if !r.cur.endOfLine() {
		return TooManyValuesError{File: r.filename, Line: r.count, Name: r.cur.name}
	}
	return nil
}

// ReadValues reads exactly n values of the current parameter into dst,
// preserving their order on the line. Each value goes through the same
// coercion and per-value check as [ReadValue]; once all n are
// collected, a non-nil checks receives the full vector. On any failure
// dst is left untouched, so a partially read vector is never published.
//
// The caller must know the expected count in advance; n < 1 is a
// programming error and panics.
func ReadValues[T Scalar](r *Reader, dst *[]T, n int, check Checker[T], checks Checker[[]T]) error {
	if n < 1 {
		panic("readpars: ReadValues needs a size of at least 1")
	}

	out := make([]T, 0, n)
	for !r.cur.endOfLine() {
		if len(out) == n {
			return TooManyValuesError{File: r.filename, Line: r.count, Name: r.cur.name}
		}
		var v T
		if err := read(r, &v, check); err != nil {
			return err
		}
		out = append(out, v)
	}
	if len(out) != n {
		return TooFewValuesError{File: r.filename, Line: r.count, Name: r.cur.name}
	}

	if checks != nil {
		if msg := checks(out); msg != "" {
			return CheckError{File: r.filename, Line: r.count, Name: r.cur.name, Message: msg}
		}
	}

	*dst = out
	return nil
}

// read fetches the next token, coerces it into dst and runs the check.
func read[T Scalar](r *Reader, dst *T, check Checker[T]) error {
	tok, ok := r.cur.next()
	if !ok {
		return ReadValueError{File: r.filename, Line: r.count, Name: r.cur.name}
	}

	// Every token is parsed as a double first, whole token consumed.
	x, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return ParseValueError{File: r.filename, Line: r.count, Name: r.cur.name}
	}

	v := reflect.ValueOf(dst).Elem()
	if !representable(x, v.Kind()) {
		return ParseValueError{File: r.filename, Line: r.count, Name: r.cur.name}
	}
	store(v, x)

	if check != nil {
		if msg := check(*dst); msg != "" {
			return CheckError{File: r.filename, Line: r.count, Name: r.cur.name, Message: msg}
		}
	}
	return nil
}

// representable reports whether the parsed double can be narrowed into
// the destination kind without losing meaning. Integral destinations
// require a finite value equal to its own floor, unsigned destinations
// additionally require non-negativity, and boolean destinations accept
// only 0 and 1. Floating-point destinations accept any parsed value.
//
// Negative text would otherwise wrap into a huge unsigned integer, and
// any positive number would silently coerce to true; this is where both
// are caught, before conversion.
func representable(x float64, kind reflect.Kind) bool {
	switch kind {
	case reflect.Bool:
		return x == 0 || x == 1
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return integral(x)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return integral(x) && x >= 0
	default:
		return true
	}
}

func integral(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x) && math.Floor(x) == x
}

// store narrows a validated double into the destination.
func store(v reflect.Value, x float64) {
	switch v.Kind() {
	case reflect.Bool:
		v.SetBool(x == 1)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(int64(x))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v.SetUint(uint64(x))
	default:
		v.SetFloat(x)
	}
}
