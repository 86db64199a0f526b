// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stride_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/stride"
)

func TestFold(t *testing.T) {
	sum := func(acc, v uint) uint { return acc + v }
	require.Equal(t, uint(0+3+6+9), stride.Fold(stride.New(stride.NewRange[uint](0, 10), 3), 0, sum))
	require.Equal(t, uint(0+3+6+9), stride.Fold(stride.New(stride.Slice(rangeValues[uint](0, 10)), 3), 0, sum))
	// Fallback path without a ForEacher inner.
	require.Equal(t, uint(9+8+7), stride.Fold[uint](&onewayIter{n: 10}, 0, func(acc, v uint) uint {
		if v < 7 {
			return acc
		}
		return acc + v
	}))
}

func TestFoldRespectsPriorPulls(t *testing.T) {
	s := stride.New(stride.NewRange[uint](0, 10), 3)
	s.Next()
	require.Equal(t, uint(3+6+9), stride.Fold[uint](s, 0, func(acc, v uint) uint { return acc + v }))
}

var errStop = errors.New("stop")

func TestTryFoldShortCircuit(t *testing.T) {
	for name, s := range map[string]stride.DoubleEndedIterator[uint]{
		"range": stride.New(stride.NewRange[uint](0, 20), 3),
		"slice": stride.New(stride.Slice(rangeValues[uint](0, 20)), 3),
	} {
		var seen []uint
		acc, err := stride.TryFold[uint](s, uint(0), func(acc, v uint) (uint, error) {
			seen = append(seen, v)
			if v >= 6 {
				return acc, errStop
			}
			return acc + v, nil
		})
		require.ErrorIs(t, err, errStop, name)
		require.Equal(t, []uint{0, 3, 6}, seen, name)
		require.Equal(t, uint(3), acc, name)
		// The fold stopped at the failing element, not past it.
		v, ok := s.Next()
		require.True(t, ok, name)
		require.Equal(t, uint(9), v, name)
	}
}

func TestTryFoldComplete(t *testing.T) {
	acc, err := stride.TryFold(stride.New(stride.NewRange[uint](0, 10), 3), uint(0),
		func(acc, v uint) (uint, error) { return acc + v, nil })
	require.NoError(t, err)
	require.Equal(t, uint(18), acc)
}

func TestRFold(t *testing.T) {
	order := stride.RFold(stride.New(stride.NewRange[uint](0, 10), 3), []uint(nil),
		func(acc []uint, v uint) []uint { return append(acc, v) })
	require.Equal(t, []uint{9, 6, 3, 0}, order)
}

func TestTryRFoldShortCircuit(t *testing.T) {
	s := stride.New(stride.Slice(rangeValues[uint](0, 10)), 3)
	var seen []uint
	_, err := stride.TryRFold[uint](s, uint(0), func(acc, v uint) (uint, error) {
		seen = append(seen, v)
		if v <= 6 {
			return acc, errStop
		}
		return acc, nil
	})
	require.ErrorIs(t, err, errStop)
	require.Equal(t, []uint{9, 6}, seen)
	v, ok := s.NextBack()
	require.True(t, ok)
	require.Equal(t, uint(3), v)
}

func TestCollectEmpty(t *testing.T) {
	require.Empty(t, stride.Collect(stride.NewRange[uint](4, 4)))
	require.Empty(t, stride.CollectBack(stride.Slice([]int(nil))))
}

func TestValuesRangeOver(t *testing.T) {
	var got []uint
	for v := range stride.Values(stride.New(stride.NewRange[uint](0, 10), 3)) {
		got = append(got, v)
	}
	require.Equal(t, []uint{0, 3, 6, 9}, got)
}

func TestValuesBreak(t *testing.T) {
	s := stride.New(stride.NewRange[uint](0, 30), 3)
	var got []uint
	for v := range stride.Values[uint](s) {
		got = append(got, v)
		if v >= 6 {
			break
		}
	}
	require.Equal(t, []uint{0, 3, 6}, got)
	// Breaking the loop leaves the adapter usable.
	v, ok := s.Next()
	require.True(t, ok)
	require.Equal(t, uint(9), v)
}

func TestValuesFallbackPath(t *testing.T) {
	var got []uint
	for v := range stride.Values[uint](&onewayIter{n: 3}) {
		got = append(got, v)
	}
	require.Equal(t, []uint{2, 1, 0}, got)
}
