// internal/store/ids.go
package store

// NextID returns the identifier for the next record inserted into records:
// one past the highest id currently present, or 1 for an empty collection.
// The allocator only looks at the current maximum, so deleting the
// highest-id record makes its id allocatable again.
func NextID[T Identifiable](records []T) int {
	maxID := 0
	for _, r := range records {
		if id := r.Identity(); id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}
