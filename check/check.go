// Copyright (c) 2026 Raphaël Scherrer
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package check provides reusable checkers for the readpars read
// functions. The simple predicates are generic functions that can be
// passed directly, instantiated with the destination type:
//
//	readpars.ReadValue(r, &ngenes, check.StrictlyPositive[int])
//
// The parameterized ones are factories returning a [readpars.Checker].
package check

import (
	"fmt"
	"strings"

	"github.com/rscherrer/readpars"
)

// Real is the set of value types the numeric checkers apply to.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Positive accepts zero and above.
func Positive[T Real](x T) string {
	if x >= 0 {
		return ""
	}
	return "must be positive"
}

// StrictlyPositive accepts values above zero.
func StrictlyPositive[T Real](x T) string {
	if x > 0 {
		return ""
	}
	return "must be strictly positive"
}

// Proportion accepts values between zero and one inclusive.
func Proportion[T Real](x T) string {
	if x >= 0 && x <= 1 {
		return ""
	}
	return "must be between zero and one"
}

// Between returns a checker accepting values in [lo, hi].
func Between[T Real](lo, hi T) readpars.Checker[T] {
	return func(x T) string {
		if x >= lo && x <= hi {
			return ""
		}
		return fmt.Sprintf("must be between %v and %v", lo, hi)
	}
}

// OneOf returns a checker accepting only the listed values.
func OneOf[T comparable](allowed ...T) readpars.Checker[T] {
	return func(x T) string {
		for _, a := range allowed {
			if x == a {
				return ""
			}
		}
		parts := make([]string, len(allowed))
		for i, a := range allowed {
			parts[i] = fmt.Sprint(a)
		}
		return "must be one of " + strings.Join(parts, ", ")
	}
}

// All returns a checker that applies every given checker in order and
// reports the first failure.
func All[T any](checks ...readpars.Checker[T]) readpars.Checker[T] {
	return func(x T) string {
		for _, c := range checks {
			if c == nil {
				continue
			}
			if msg := c(x); msg != "" {
				return msg
			}
		}
		return ""
	}
}
