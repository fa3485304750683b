// Copyright (c) 2026 Raphaël Scherrer
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package readpars

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// readOne reads the single line "name <token>" into dst.
func readOne[T Scalar](t *testing.T, token string, dst *T) error {
	t.Helper()

	r := openReader(t, "name "+token)
	require.NoError(t, r.ReadLine())
	return ReadValue(r, dst, nil)
}

func TestReadValue_Int(t *testing.T) {
	testCases := []struct {
		name      string
		token     string
		expect    int
		expectErr bool
	}{
		{name: "plain integer", token: "4", expect: 4},
		{name: "negative integer", token: "-3", expect: -3},
		{name: "float spelling of an integer", token: "4.0", expect: 4},
		{name: "scientific notation", token: "1e3", expect: 1000},
		{name: "fractional part", token: "1.5", expectErr: true},
		{name: "not a number", token: "abc", expectErr: true},
		{name: "trailing garbage", token: "4x", expectErr: true},
		{name: "not finite", token: "inf", expectErr: true},
		{name: "not a number literal", token: "nan", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var v int
			err := readOne(t, tc.token, &v)
			if tc.expectErr {
				var perr ParseValueError
				require.ErrorAs(t, err, &perr)
				require.EqualError(t, err, "Invalid value type for parameter name in line 1 of file parameters.txt")
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expect, v)
		})
	}
}

func TestReadValue_Uint(t *testing.T) {
	testCases := []struct {
		name      string
		token     string
		expect    uint
		expectErr bool
	}{
		{name: "plain integer", token: "4", expect: 4},
		{name: "zero", token: "0", expect: 0},
		{name: "negative must not wrap around", token: "-1", expectErr: true},
		{name: "fractional part", token: "0.5", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var v uint
			err := readOne(t, tc.token, &v)
			if tc.expectErr {
				var perr ParseValueError
				require.ErrorAs(t, err, &perr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expect, v)
		})
	}
}

func TestReadValue_Bool(t *testing.T) {
	testCases := []struct {
		name      string
		token     string
		expect    bool
		expectErr bool
	}{
		{name: "zero is false", token: "0", expect: false},
		{name: "one is true", token: "1", expect: true},
		{name: "float spelling of one", token: "1.0", expect: true},
		{name: "above one must not coerce to true", token: "2", expectErr: true},
		{name: "fraction", token: "0.5", expectErr: true},
		{name: "negative", token: "-1", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var v bool
			err := readOne(t, tc.token, &v)
			if tc.expectErr {
				var perr ParseValueError
				require.ErrorAs(t, err, &perr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expect, v)
		})
	}
}

func TestReadValue_Float(t *testing.T) {
	var v float64
	require.NoError(t, readOne(t, "0.01", &v))
	require.Equal(t, 0.01, v)

	require.NoError(t, readOne(t, "-2.5e-3", &v))
	require.Equal(t, -2.5e-3, v)

	// Floating-point destinations are not policed for finiteness.
	require.NoError(t, readOne(t, "inf", &v))
	require.True(t, math.IsInf(v, 1))
}

func TestReadValue_TokenWithForbiddenCharacter(t *testing.T) {
	var v float64
	err := readOne(t, "1,5", &v)

	var rerr ReadValueError
	require.ErrorAs(t, err, &rerr)
	require.EqualError(t, err, "Could not read value for parameter name in line 1 of file parameters.txt")
}

func TestReadValue_TooManyValues(t *testing.T) {
	r := openReader(t, "ngenes 4 5")
	require.NoError(t, r.ReadLine())

	var v int
	err := ReadValue(r, &v, nil)

	var terr TooManyValuesError
	require.ErrorAs(t, err, &terr)
	require.EqualError(t, err, "Too many values for parameter ngenes in line 1 of file parameters.txt")
}

func TestReadValue_TrailingWhitespaceIsEndOfLine(t *testing.T) {
	r := openReader(t, "ngenes 4  \t ")
	require.NoError(t, r.ReadLine())

	var v int
	require.NoError(t, ReadValue(r, &v, nil))
	require.Equal(t, 4, v)
}

func TestReadValue_Checker(t *testing.T) {
	strictlyPositive := func(x int) string {
		if x > 0 {
			return ""
		}
		return "must be strictly positive"
	}

	t.Run("passing value", func(t *testing.T) {
		r := openReader(t, "ngenes 4")
		require.NoError(t, r.ReadLine())

		var v int
		require.NoError(t, ReadValue(r, &v, strictlyPositive))
		require.Equal(t, 4, v)
	})

	t.Run("failing value", func(t *testing.T) {
		r := openReader(t, "ngenes 0")
		require.NoError(t, r.ReadLine())

		var v int
		err := ReadValue(r, &v, strictlyPositive)

		var cerr CheckError
		require.ErrorAs(t, err, &cerr)
		require.EqualError(t, err, "Parameter ngenes must be strictly positive in line 1 of file parameters.txt")
	})
}

func TestReadValues(t *testing.T) {
	t.Run("preserves order", func(t *testing.T) {
		r := openReader(t, "genes 1.0 1.2 3.5 2.0")
		require.NoError(t, r.ReadLine())

		var genes []float64
		require.NoError(t, ReadValues(r, &genes, 4, nil, nil))
		require.Equal(t, []float64{1.0, 1.2, 3.5, 2.0}, genes)
	})

	t.Run("too few values", func(t *testing.T) {
		r := openReader(t, "genes 1.0 1.2")
		require.NoError(t, r.ReadLine())

		var genes []float64
		err := ReadValues(r, &genes, 4, nil, nil)

		var ferr TooFewValuesError
		require.ErrorAs(t, err, &ferr)
		require.EqualError(t, err, "Too few values for parameter genes in line 1 of file parameters.txt")
		require.Nil(t, genes)
	})

	t.Run("too many values", func(t *testing.T) {
		r := openReader(t, "genes 1.0 1.2 3.5")
		require.NoError(t, r.ReadLine())

		var genes []float64
		err := ReadValues(r, &genes, 2, nil, nil)

		var merr TooManyValuesError
		require.ErrorAs(t, err, &merr)
		require.Nil(t, genes)
	})

	t.Run("destination untouched on element failure", func(t *testing.T) {
		r := openReader(t, "genes 1.0 abc 3.5")
		require.NoError(t, r.ReadLine())

		genes := []float64{9.9}
		err := ReadValues(r, &genes, 3, nil, nil)

		var perr ParseValueError
		require.ErrorAs(t, err, &perr)
		require.Equal(t, []float64{9.9}, genes)
	})

	t.Run("per element checker", func(t *testing.T) {
		positive := func(x float64) string {
			if x >= 0 {
				return ""
			}
			return "must be positive"
		}

		r := openReader(t, "genes 1.0 -1.2 3.5")
		require.NoError(t, r.ReadLine())

		var genes []float64
		err := ReadValues(r, &genes, 3, positive, nil)
		require.EqualError(t, err, "Parameter genes must be positive in line 1 of file parameters.txt")
	})

	t.Run("vector checker", func(t *testing.T) {
		sumToOne := func(xs []float64) string {
			var sum float64
			for _, x := range xs {
				sum += x
			}
			if sum == 1 {
				return ""
			}
			return "must sum to one"
		}

		r := openReader(t, "weights 0.5 0.4")
		require.NoError(t, r.ReadLine())

		var weights []float64
		err := ReadValues(r, &weights, 2, nil, sumToOne)

		var cerr CheckError
		require.ErrorAs(t, err, &cerr)
		require.EqualError(t, err, "Parameter weights must sum to one in line 1 of file parameters.txt")
		require.Nil(t, weights)
	})

	t.Run("panics on zero size", func(t *testing.T) {
		r := openReader(t, "genes 1.0")
		require.NoError(t, r.ReadLine())

		var genes []float64
		require.Panics(t, func() {
			ReadValues(r, &genes, 0, nil, nil)
		})
	})
}
