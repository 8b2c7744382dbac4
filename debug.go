package go_chained_hash_map

import "strings"

// String renders the bucket array for debugging: one line per bucket in
// index order, pairs in chain order.
func (m *Map[K, V]) String() string {
	var sb strings.Builder
	for i := 0; i < m.buckets.Size(); i++ {
		chain := m.buckets.Ref(i)
		for pos := chain.Begin(); pos.Valid(); pos = pos.Next() {
			sb.WriteString(pos.Value().String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
