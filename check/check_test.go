// Copyright (c) 2026 Raphaël Scherrer
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package check_test

import (
	"testing"
	"testing/fstest"

	"github.com/rscherrer/readpars"
	"github.com/rscherrer/readpars/check"

	"github.com/stretchr/testify/require"
)

func TestPositive(t *testing.T) {
	require.Empty(t, check.Positive(0.0))
	require.Empty(t, check.Positive(3))
	require.Equal(t, "must be positive", check.Positive(-0.5))
}

func TestStrictlyPositive(t *testing.T) {
	require.Empty(t, check.StrictlyPositive(1))
	require.Equal(t, "must be strictly positive", check.StrictlyPositive(0))
	require.Equal(t, "must be strictly positive", check.StrictlyPositive(-2.5))
}

func TestProportion(t *testing.T) {
	require.Empty(t, check.Proportion(0.0))
	require.Empty(t, check.Proportion(0.5))
	require.Empty(t, check.Proportion(1.0))
	require.Equal(t, "must be between zero and one", check.Proportion(1.01))
	require.Equal(t, "must be between zero and one", check.Proportion(-0.01))
}

func TestBetween(t *testing.T) {
	between := check.Between(2, 5)
	require.Empty(t, between(2))
	require.Empty(t, between(5))
	require.Equal(t, "must be between 2 and 5", between(6))
}

func TestOneOf(t *testing.T) {
	oneOf := check.OneOf(1, 2, 4)
	require.Empty(t, oneOf(2))
	require.Equal(t, "must be one of 1, 2, 4", oneOf(3))
}

func TestAll(t *testing.T) {
	all := check.All[int](check.Positive[int], check.Between(0, 10), nil)
	require.Empty(t, all(5))
	require.Equal(t, "must be positive", all(-1))
	require.Equal(t, "must be between 0 and 10", all(11))
}

func TestCheckersWithReader(t *testing.T) {
	fsys := fstest.MapFS{
		"parameters.txt": &fstest.MapFile{Data: []byte("ngenes 0")},
	}

	r := readpars.New("parameters.txt", readpars.WithFS(fsys))
	require.NoError(t, r.Open())
	defer r.Close()

	require.NoError(t, r.ReadLine())

	var ngenes int
	err := readpars.ReadValue(r, &ngenes, check.StrictlyPositive[int])
	require.EqualError(t, err, "Parameter ngenes must be strictly positive in line 1 of file parameters.txt")
}
