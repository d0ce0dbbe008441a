package dbc

// OrderedMap is a map that remembers the order keys were first inserted,
// used throughout the Network aggregate wherever spec.md requires
// declaration-order (not sorted-order) re-emission: Nodes, Message.Signals,
// AttributeDefinitions, and similar collections. No library in the retrieval
// pack provides an ordered map; Go's map plus a key slice is the standard
// idiomatic substitute (see DESIGN.md).
type OrderedMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewOrderedMap returns an empty OrderedMap.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{values: map[K]V{}}
}

// Set inserts or updates the value for k, recording k's position the first
// time it is seen.
func (m *OrderedMap[K, V]) Set(k K, v V) {
	if _, exists := m.values[k]; !exists {
		m.keys = append(m.keys, k)
	}
	m.values[k] = v
}

// Get looks up the value for k.
func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.values[k]
	return v, ok
}

// Delete removes k, if present.
func (m *OrderedMap[K, V]) Delete(k K) {
	if _, exists := m.values[k]; !exists {
		return
	}
	delete(m.values, k)
	for i, kk := range m.keys {
		if kk == k {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order.
func (m *OrderedMap[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// Values returns the values in the insertion order of their keys.
func (m *OrderedMap[K, V]) Values() []V {
	out := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.values[k])
	}
	return out
}

// Len reports the number of entries.
func (m *OrderedMap[K, V]) Len() int { return len(m.keys) }
