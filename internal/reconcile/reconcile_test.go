package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name            string
		current         []uint
		desired         []uint
		expectedAdded   []uint
		expectedRemoved []uint
	}{
		{"both empty", nil, nil, nil, nil},
		{"all new", nil, []uint{3, 1}, []uint{1, 3}, nil},
		{"all gone", []uint{2, 1}, nil, nil, []uint{1, 2}},
		{"overlap", []uint{1, 2, 3}, []uint{2, 3, 4}, []uint{4}, []uint{1}},
		{"same set", []uint{1, 2}, []uint{2, 1}, nil, nil},
		{"duplicates ignored", []uint{1, 1}, []uint{2, 2, 1}, []uint{2}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			added, removed := Diff(tt.current, tt.desired)
			assert.Equal(t, tt.expectedAdded, added)
			assert.Equal(t, tt.expectedRemoved, removed)
		})
	}
}

func TestLinks_RemovesThenAdds(t *testing.T) {
	var calls []string
	add := func(_ context.Context, k uint) error {
		calls = append(calls, "add")
		return nil
	}
	remove := func(_ context.Context, k uint) error {
		calls = append(calls, "remove")
		return nil
	}

	res, err := Links(context.Background(), []uint{1, 2}, []uint{2, 3}, add, remove)
	require.NoError(t, err)
	assert.Equal(t, []string{"remove", "add"}, calls)
	assert.Equal(t, []uint{3}, res.Added)
	assert.Equal(t, []uint{1}, res.Removed)
	assert.True(t, res.Changed())
}

func TestLinks_SecondRunIsNoOp(t *testing.T) {
	persisted := map[uint]bool{1: true}
	add := func(_ context.Context, k uint) error { persisted[k] = true; return nil }
	remove := func(_ context.Context, k uint) error { delete(persisted, k); return nil }
	keys := func() []uint {
		out := make([]uint, 0, len(persisted))
		for k := range persisted {
			out = append(out, k)
		}
		return out
	}

	_, err := Links(context.Background(), keys(), []uint{2, 3}, add, remove)
	require.NoError(t, err)

	res, err := Links(context.Background(), keys(), []uint{2, 3}, add, remove)
	require.NoError(t, err)
	assert.False(t, res.Changed())
}

func TestLinks_StopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	added := 0
	add := func(_ context.Context, k uint) error { added++; return nil }
	remove := func(_ context.Context, k uint) error { return boom }

	res, err := Links(context.Background(), []uint{1}, []uint{2}, add, remove)
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, added)
	assert.False(t, res.Changed())
}

func TestWeighted(t *testing.T) {
	upserts := map[uint]int{}
	var removed []uint
	upsert := func(_ context.Context, k uint, v int) error { upserts[k] = v; return nil }
	remove := func(_ context.Context, k uint) error { removed = append(removed, k); return nil }

	current := map[uint]int{1: 5, 2: 1, 3: 2}
	desired := map[uint]int{1: 5, 2: 4, 4: 1}

	res, err := Weighted(context.Background(), current, desired, upsert, remove)
	require.NoError(t, err)

	assert.Equal(t, map[uint]int{2: 4, 4: 1}, upserts)
	assert.Equal(t, []uint{3}, removed)
	assert.Equal(t, []uint{2, 4}, res.Added)
	assert.Equal(t, []uint{3}, res.Removed)
}

func TestWeighted_Unchanged(t *testing.T) {
	fail := func(_ context.Context, k uint, v int) error { return errors.New("unexpected upsert") }
	failRemove := func(_ context.Context, k uint) error { return errors.New("unexpected remove") }

	res, err := Weighted(context.Background(), map[uint]int{1: 2}, map[uint]int{1: 2}, fail, failRemove)
	require.NoError(t, err)
	assert.False(t, res.Changed())
}
