package basic

import "testing"

func TestUUIDRoundtrip(t *testing.T) {
	u := NewUUID()
	if u.IsNil() {
		t.Fatalf("freshly generated UUID should not be nil")
	}
	b := u.Bytes()
	got := UUIDFromBytes(b)
	if got != u {
		t.Fatalf("roundtrip mismatch: got %v, want %v", got, u)
	}
}

func TestUUIDNilIsZero(t *testing.T) {
	if !Nil.IsNil() {
		t.Fatalf("Nil should report IsNil")
	}
	var zero UUID
	if zero != Nil {
		t.Fatalf("zero value UUID should equal Nil")
	}
}

func TestUUIDDistinct(t *testing.T) {
	seen := make(map[UUID]bool)
	for i := 0; i < 1000; i++ {
		u := NewUUID()
		if seen[u] {
			t.Fatalf("collision generating UUID #%d", i)
		}
		seen[u] = true
	}
}

func TestRange(t *testing.T) {
	r := Range(5)
	if len(r) != 5 {
		t.Fatalf("expected 5 elements, got %d", len(r))
	}
	for i, v := range r {
		if v != Index(i) {
			t.Fatalf("element %d: got %d", i, v)
		}
	}
	if Range(0) != nil {
		t.Fatalf("Range(0) should be nil/empty")
	}
}
