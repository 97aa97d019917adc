// Package reconcile turns a desired set of links into the add/remove calls
// needed to reach it from the persisted set.
package reconcile

import (
	"cmp"
	"context"
	"slices"
)

// Diff returns the members of desired missing from current (added) and the
// members of current missing from desired (removed). Duplicates are ignored and
// both results are sorted.
func Diff[K cmp.Ordered](current, desired []K) (added, removed []K) {
	have := make(map[K]struct{}, len(current))
	for _, k := range current {
		have[k] = struct{}{}
	}
	want := make(map[K]struct{}, len(desired))
	for _, k := range desired {
		want[k] = struct{}{}
	}

	for k := range want {
		if _, ok := have[k]; !ok {
			added = append(added, k)
		}
	}
	for k := range have {
		if _, ok := want[k]; !ok {
			removed = append(removed, k)
		}
	}
	slices.Sort(added)
	slices.Sort(removed)
	return added, removed
}

// Result reports what a reconciliation changed.
type Result[K cmp.Ordered] struct {
	Added   []K `json:"added"`
	Removed []K `json:"removed"`
}

// Changed reports whether anything was added or removed.
func (r Result[K]) Changed() bool {
	return len(r.Added) > 0 || len(r.Removed) > 0
}

// Links removes the stale members then adds the new ones, stopping at the first
// error. Callers run it inside a transaction so a failure leaves nothing half-applied.
func Links[K cmp.Ordered](
	ctx context.Context,
	current, desired []K,
	add func(ctx context.Context, k K) error,
	remove func(ctx context.Context, k K) error,
) (Result[K], error) {
	added, removed := Diff(current, desired)
	res := Result[K]{}
	for _, k := range removed {
		if err := remove(ctx, k); err != nil {
			return res, err
		}
		res.Removed = append(res.Removed, k)
	}
	for _, k := range added {
		if err := add(ctx, k); err != nil {
			return res, err
		}
		res.Added = append(res.Added, k)
	}
	return res, nil
}

// Weighted reconciles links carrying a value, such as a quantity. Keys absent
// from desired are removed; keys that are new or whose value changed are upserted.
// Unchanged keys are left alone.
func Weighted[K cmp.Ordered, V comparable](
	ctx context.Context,
	current, desired map[K]V,
	upsert func(ctx context.Context, k K, v V) error,
	remove func(ctx context.Context, k K) error,
) (Result[K], error) {
	res := Result[K]{}

	removed := make([]K, 0)
	for k := range current {
		if _, ok := desired[k]; !ok {
			removed = append(removed, k)
		}
	}
	slices.Sort(removed)
	for _, k := range removed {
		if err := remove(ctx, k); err != nil {
			return res, err
		}
		res.Removed = append(res.Removed, k)
	}

	keys := make([]K, 0, len(desired))
	for k := range desired {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		v := desired[k]
		if old, ok := current[k]; ok && old == v {
			continue
		}
		if err := upsert(ctx, k, v); err != nil {
			return res, err
		}
		res.Added = append(res.Added, k)
	}
	return res, nil
}
