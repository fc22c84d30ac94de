package batch

import (
	"context"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapPreservesInputOrder(t *testing.T) {
	items := []int{5, 3, 8, 1, 9, 2}

	results := Map(context.Background(), items, 0, func(_ context.Context, n int) (string, error) {
		return strconv.Itoa(n * 10), nil
	})

	require.Len(t, results, len(items))
	for i, n := range items {
		assert.Equal(t, i, results[i].Index)
		assert.Equal(t, strconv.Itoa(n*10), results[i].Value)
		assert.NoError(t, results[i].Err)
	}
}

func TestMapIsolatesFailures(t *testing.T) {
	items := []string{"ok-1", "boom", "ok-2"}

	results := Map(context.Background(), items, 0, func(_ context.Context, s string) (string, error) {
		if s == "boom" {
			return "", errors.New("exploded")
		}
		return s + "!", nil
	})

	assert.NoError(t, results[0].Err)
	assert.Equal(t, "ok-1!", results[0].Value)
	assert.Error(t, results[1].Err)
	assert.NoError(t, results[2].Err)
	assert.Equal(t, "ok-2!", results[2].Value)
}

func TestMapRespectsLimit(t *testing.T) {
	const limit = 2

	var inFlight, peak atomic.Int32
	items := make([]int, 20)

	Map(context.Background(), items, limit, func(_ context.Context, _ int) (struct{}, error) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		return struct{}{}, nil
	})

	assert.LessOrEqual(t, peak.Load(), int32(limit))
}

func TestMapEmptyInput(t *testing.T) {
	results := Map(context.Background(), nil, 4, func(_ context.Context, _ int) (int, error) {
		t.Fatal("fn must not be called")
		return 0, nil
	})
	assert.Empty(t, results)
}
