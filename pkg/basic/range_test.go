package basic

import "testing"

func TestOrderedMapInsertionOrder(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Set("c", 3)
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 10) // update, should not move position

	var keys []string
	m.Range(func(k string, v int) bool {
		keys = append(keys, k)
		return true
	})
	want := []string{"c", "a", "b"}
	for i, k := range want {
		if keys[i] != k {
			t.Fatalf("position %d: got %s want %s", i, keys[i], k)
		}
	}

	v, ok := m.Get("a")
	if !ok || v != 10 {
		t.Fatalf("expected updated value 10, got %d ok=%v", v, ok)
	}
}

func TestOrderedMapDelete(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)
	m.Delete("b")

	if m.Len() != 2 {
		t.Fatalf("expected length 2 after delete, got %d", m.Len())
	}
	if _, ok := m.Get("b"); ok {
		t.Fatalf("b should be gone")
	}
	keys := m.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "c" {
		t.Fatalf("unexpected keys after delete: %v", keys)
	}
}

func TestVersionTableUpgrade(t *testing.T) {
	table := NewVersionTable(3)
	table.Register(1, func(p []byte) ([]byte, error) {
		return append(p, 'A'), nil
	})
	table.Register(2, func(p []byte) ([]byte, error) {
		return append(p, 'B'), nil
	})

	got, err := table.Upgrade(1, []byte("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "xAB" {
		t.Fatalf("got %q", got)
	}

	// Already current: unchanged.
	got, err = table.Upgrade(3, []byte("y"))
	if err != nil || string(got) != "y" {
		t.Fatalf("got %q err %v", got, err)
	}
}

func TestVersionTableMissingMigration(t *testing.T) {
	table := NewVersionTable(2)
	_, err := table.Upgrade(0, []byte("x"))
	if err == nil {
		t.Fatalf("expected error for missing migration")
	}
}
