// Copyright (c) 2026 Raphaël Scherrer
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package readpars

import "fmt"

// OpenError occurs when the parameter file cannot be opened.
type OpenError struct {
	File  string
	Cause error
}

// Error implements the error interface.
func (e OpenError) Error() string {
	return "Unable to open file " + e.File
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e OpenError) Unwrap() error {
	return e.Cause
}

// EmptyFileError occurs when the parameter file contains zero bytes.
type EmptyFileError struct {
	File string
}

// Error implements the error interface.
func (e EmptyFileError) Error() string {
	return "File " + e.File + " is empty"
}

// ReadNameError occurs when no valid parameter name can be extracted
// from a data line, e.g. the line holds only whitespace or the name
// contains a character outside the allowed set.
type ReadNameError struct {
	File string
	Line int
}

// Error implements the error interface.
func (e ReadNameError) Error() string {
	return fmt.Sprintf("Could not read parameter name in line %d of file %s", e.Line, e.File)
}

// NoValueError occurs when a data line carries a parameter name but no
// value tokens. A parameter without at least one value is always an
// error.
type NoValueError struct {
	File string
	Line int
	Name string
}

// Error implements the error interface.
func (e NoValueError) Error() string {
	return fmt.Sprintf("No value for parameter %s in line %d of file %s", e.Name, e.Line, e.File)
}

// ReadValueError occurs when the next value token cannot be read, e.g.
// it contains a character outside the allowed set.
type ReadValueError struct {
	File string
	Line int
	Name string
}

// Error implements the error interface.
func (e ReadValueError) Error() string {
	return fmt.Sprintf("Could not read value for parameter %s in line %d of file %s", e.Name, e.Line, e.File)
}

// ParseValueError occurs when a value token does not cleanly represent
// the requested destination type: it is not a number, or it has a
// fractional part for an integral destination, or it is negative for an
// unsigned destination, or it is anything other than 0 or 1 for a
// boolean destination.
type ParseValueError struct {
	File string
	Line int
	Name string
}

// Error implements the error interface.
func (e ParseValueError) Error() string {
	return fmt.Sprintf("Invalid value type for parameter %s in line %d of file %s", e.Name, e.Line, e.File)
}

// TooManyValuesError occurs when a line holds more value tokens than
// the read requested.
type TooManyValuesError struct {
	File string
	Line int
	Name string
}

// Error implements the error interface.
func (e TooManyValuesError) Error() string {
	return fmt.Sprintf("Too many values for parameter %s in line %d of file %s", e.Name, e.Line, e.File)
}

// TooFewValuesError occurs when a line holds fewer value tokens than
// the read requested.
type TooFewValuesError struct {
	File string
	Line int
	Name string
}

// Error implements the error interface.
func (e TooFewValuesError) Error() string {
	return fmt.Sprintf("Too few values for parameter %s in line %d of file %s", e.Name, e.Line, e.File)
}

// InvalidParameterError occurs when the caller does not recognize the
// parameter name on the current line. It is raised by [Reader.Unknown].
type InvalidParameterError struct {
	File string
	Line int
	Name string
}

// Error implements the error interface.
func (e InvalidParameterError) Error() string {
	return fmt.Sprintf("Invalid parameter: %s in line %d of file %s", e.Name, e.Line, e.File)
}

// CheckError wraps the reason returned by a [Checker] with the
// parameter name, line number and file name it was raised for.
type CheckError struct {
	File    string
	Line    int
	Name    string
	Message string
}

// Error implements the error interface.
func (e CheckError) Error() string {
	return fmt.Sprintf("Parameter %s %s in line %d of file %s", e.Name, e.Message, e.Line, e.File)
}
