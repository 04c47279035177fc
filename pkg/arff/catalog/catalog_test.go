package catalog

import "testing"

func TestIDGeneratorUniqueAndSortable(t *testing.T) {
	g := NewIDGenerator()

	seen := make(map[string]struct{})
	prev := ""
	for i := 0; i < 100; i++ {
		id := g.Next()
		if len(id) != 26 {
			t.Fatalf("ULID should be 26 chars, got %q", id)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("Duplicate ID %q", id)
		}
		seen[id] = struct{}{}
		if id <= prev {
			t.Fatalf("IDs should be monotonically increasing: %q after %q", id, prev)
		}
		prev = id
	}
}
