package interpose

import "testing"

// Fuzzes the per-signal callback table with interleaved upsert and
// remove under arbitrary names, checking the ordering invariants the
// dispatcher relies on.
func FuzzEntryNameOperations(f *testing.F) {
	f.Add("a", "b", "a")
	f.Add("", "x", "")
	f.Add("dup", "dup", "dup")

	f.Fuzz(func(t *testing.T, n1, n2, n3 string) {
		e := &entry{}
		e.upsert(n1, HandlerFunc(func(Signal) {}))
		e.upsert(n2, HandlerFunc(func(Signal) {}))
		e.upsert(n3, HandlerFunc(func(Signal) {}))

		seen := make(map[string]bool)
		for _, nh := range e.snapshot() {
			if seen[nh.name] {
				t.Fatalf("duplicate name %q after upserts", nh.name)
			}
			seen[nh.name] = true
		}
		for _, n := range []string{n1, n2, n3} {
			if !seen[n] {
				t.Fatalf("name %q missing after upsert", n)
			}
		}

		if !e.remove(n2) {
			t.Fatalf("remove(%q) reported absent after upsert", n2)
		}
		if e.remove(n2) {
			t.Fatalf("remove(%q) twice reported present", n2)
		}
		for _, nh := range e.snapshot() {
			if nh.name == n2 {
				t.Fatalf("name %q still present after remove", n2)
			}
		}
	})
}
