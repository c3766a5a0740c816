package wavl

import "encoding/json"

// MarshalJSON renders the map as a JSON array of [key, value] pairs, in
// ascending key order. An object is not used because keys need not be
// strings.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	pairs := make([][2]any, 0, m.Len())
	m.ForEach(func(key K, value V) bool {
		pairs = append(pairs, [2]any{key, value})
		return true
	})
	return json.Marshal(pairs)
}
