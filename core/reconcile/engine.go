package reconcile

import (
	"context"
	"sort"
)

const defaultCheckEvery = 1000

// keyIndex maps, per key slot, each key value to the ascending catalog positions holding it.
type keyIndex []map[string][]int

func newKeyIndex(slots int) keyIndex {
	idx := make(keyIndex, slots)
	for i := range idx {
		idx[i] = make(map[string][]int)
	}
	return idx
}

func (idx keyIndex) add(keys []string, pos int) {
	for slot, value := range keys {
		if slot >= len(idx) || value == "" {
			continue
		}
		positions := idx[slot][value]
		at := sort.SearchInts(positions, pos)
		positions = append(positions, 0)
		copy(positions[at+1:], positions[at:])
		positions[at] = pos
		idx[slot][value] = positions
	}
}

func (idx keyIndex) remove(keys []string, pos int) {
	for slot, value := range keys {
		if slot >= len(idx) || value == "" {
			continue
		}
		positions := idx[slot][value]
		at := sort.SearchInts(positions, pos)
		if at < len(positions) && positions[at] == pos {
			positions = append(positions[:at], positions[at+1:]...)
		}
		if len(positions) == 0 {
			delete(idx[slot], value)
		} else {
			idx[slot][value] = positions
		}
	}
}

// lookup returns the lowest position matching any non-empty key of the candidate,
// with the slot that matched. On a tie the earlier slot wins.
func (idx keyIndex) lookup(keys []string) (pos, slot int) {
	pos, slot = -1, -1
	for s, value := range keys {
		if s >= len(idx) || value == "" {
			continue
		}
		positions := idx[s][value]
		if len(positions) == 0 {
			continue
		}
		if pos == -1 || positions[0] < pos {
			pos, slot = positions[0], s
		}
	}
	return pos, slot
}

// Reconcile integrates incoming into existing and returns the resulting plan.
// Neither input slice is modified.
func Reconcile[T any](ctx context.Context, adapter Adapter[T], existing, incoming []T, opts Options) (*Plan[T], error) {
	mode := opts.Mode
	if mode == "" {
		mode = ModeMerge
	}
	if mode != ModeMerge && mode != ModeReplace {
		return nil, ErrInvalidMode
	}
	checkEvery := opts.CheckEvery
	if checkEvery <= 0 {
		checkEvery = defaultCheckEvery
	}

	plan := &Plan[T]{
		Mode:    mode,
		Actions: make([]Action, 0, len(incoming)),
		Summary: PlanSummary{Incoming: len(incoming), Existing: len(existing)},
	}

	base := existing
	if mode == ModeReplace {
		base = nil
	}

	catalog := make([]T, len(base), len(base)+len(incoming))
	copy(catalog, base)

	names := adapter.KeyNames()
	idx := newKeyIndex(len(names))
	nextID := 0
	for pos, item := range catalog {
		idx.add(adapter.Keys(item), pos)
		if id := adapter.ID(item); id > nextID {
			nextID = id
		}
	}
	plan.DuplicateKeys = findDuplicates(adapter, catalog, idx, names)

	for i, candidate := range incoming {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		keys := adapter.Keys(candidate)

		if mode == ModeMerge {
			if pos, slot := idx.lookup(keys); pos >= 0 {
				current := catalog[pos]
				merged := adapter.WithID(adapter.Merge(current, candidate), adapter.ID(current))
				idx.remove(adapter.Keys(current), pos)
				catalog[pos] = merged
				idx.add(adapter.Keys(merged), pos)

				plan.Actions = append(plan.Actions, Action{
					Type:   ActionUpdate,
					Key:    keys[slot],
					ID:     adapter.ID(merged),
					Reason: names[slot] + " match",
				})
				plan.Summary.Updated++
				continue
			}
		}

		nextID++
		added := adapter.WithID(candidate, nextID)
		catalog = append(catalog, added)
		idx.add(adapter.Keys(added), len(catalog)-1)

		reason := "no match"
		if mode == ModeReplace {
			reason = "replace"
		}
		plan.Actions = append(plan.Actions, Action{
			Type:   ActionAdd,
			Key:    firstKey(keys),
			ID:     nextID,
			Reason: reason,
		})
		plan.Summary.Added++
	}

	plan.Catalog = catalog
	plan.Summary.Total = len(catalog)
	return plan, nil
}

func firstKey(keys []string) string {
	for _, k := range keys {
		if k != "" {
			return k
		}
	}
	return ""
}

// findDuplicates lists key values held by more than one record, sorted by field then value.
func findDuplicates[T any](adapter Adapter[T], catalog []T, idx keyIndex, names []string) []DuplicateKey {
	var dups []DuplicateKey
	for slot, values := range idx {
		for value, positions := range values {
			if len(positions) < 2 {
				continue
			}
			ids := make([]int, len(positions))
			for i, pos := range positions {
				ids[i] = adapter.ID(catalog[pos])
			}
			dups = append(dups, DuplicateKey{Field: names[slot], Value: value, IDs: ids})
		}
	}
	sort.Slice(dups, func(i, j int) bool {
		if dups[i].Field != dups[j].Field {
			return dups[i].Field < dups[j].Field
		}
		return dups[i].Value < dups[j].Value
	})
	return dups
}
