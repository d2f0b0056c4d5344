package statechange

// Keyed is satisfied by any value with a stable identity string. Both
// simplex.Simplex and *cmap.Cycle qualify, so SetDifference serves both of
// StateChange's diffs without duplicating the add/remove logic per type.
type Keyed interface {
	Key() string
}

// SetDifference holds two snapshots of a Keyed collection and derives
// add/remove deltas from their Key() sets on demand.
type SetDifference[T Keyed] struct {
	NewList []T
	OldList []T
}

// NewSetDifference pairs a new and an old snapshot for later diffing.
func NewSetDifference[T Keyed](newList, oldList []T) SetDifference[T] {
	return SetDifference[T]{NewList: newList, OldList: oldList}
}

// Added returns every element of NewList whose key is absent from OldList.
func (sd SetDifference[T]) Added() []T {
	old := keySet(sd.OldList)
	var out []T
	for _, v := range sd.NewList {
		if _, ok := old[v.Key()]; !ok {
			out = append(out, v)
		}
	}

	return out
}

// Removed returns every element of OldList whose key is absent from NewList.
func (sd SetDifference[T]) Removed() []T {
	cur := keySet(sd.NewList)
	var out []T
	for _, v := range sd.OldList {
		if _, ok := cur[v.Key()]; !ok {
			out = append(out, v)
		}
	}

	return out
}

func keySet[T Keyed](list []T) map[string]struct{} {
	out := make(map[string]struct{}, len(list))
	for _, v := range list {
		out[v.Key()] = struct{}{}
	}

	return out
}
