// Copyright (c) 2026 Raphaël Scherrer
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package readpars reads line-oriented parameter files into strongly
// typed destinations.
//
// A parameter file is newline-delimited text where each data line is a
// parameter name followed by one or more values, separated by runs of
// whitespace. Lines starting with '#' are comments and zero-length
// lines are blank; both are skipped by callers. Every value is parsed
// strictly: text that does not cleanly represent the requested type
// fails with a descriptive error instead of being silently coerced,
// e.g. "-1" never wraps around into a large unsigned integer.
//
// # Basic Usage
//
// Callers drive a [Reader] line by line and dispatch on the parameter
// name:
//
//	r := readpars.New("parameters.txt")
//	if err := r.Open(); err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	for !r.EOF() {
//	    if err := r.ReadLine(); err != nil {
//	        return err
//	    }
//	    if r.Empty() || r.Comment() {
//	        continue
//	    }
//	    switch r.Name() {
//	    case "ngenes":
//	        err = readpars.ReadValue(r, &ngenes, check.StrictlyPositive[int])
//	    case "genes":
//	        err = readpars.ReadValues(r, &genes, ngenes, nil, nil)
//	    default:
//	        err = r.Unknown()
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
//
// # Validation
//
// [ReadValue] and [ReadValues] accept an optional [Checker]: a
// predicate returning an empty string for valid values and a
// human-readable reason otherwise. The reason is wrapped with the
// parameter name, line number and file name before being returned, so
// a checker only has to say what is wrong ("must be strictly
// positive"), not where.
//
// # Error Handling
//
// Every failure is a dedicated error type ([OpenError],
// [ParseValueError], [TooFewValuesError], ...) carrying the file, line
// and parameter context it was raised with. Failures are terminal: the
// Reader never retries or substitutes defaults, and a vector read that
// fails leaves its destination untouched.
//
// # Batch Mode
//
// [ReadAll] and [Unmarshal] read a whole file in one call, the latter
// decoding into a struct with `param` tags. The streaming API remains
// the primary surface; batch mode trades per-line error context for
// convenience.
package readpars
