package keycodec_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rishavk/scoped-ttl-cache/keycodec"
)

func TestCanonicalForms(t *testing.T) {
	type userKey struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}

	tests := []struct {
		name string
		key  any
		want string
	}{
		{"plain string", "hello", "s:hello"},
		{"empty string", "", "s:"},
		{"int", 5, "j:5"},
		{"string that looks like an int", "5", "s:5"},
		{"bool", true, "j:true"},
		{"struct", userKey{ID: 7, Name: "ada"}, `j:{"id":7,"name":"ada"}`},
		{"slice", []int{1, 2, 3}, "j:[1,2,3]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := keycodec.Canonical(tt.key)
			if err != nil {
				t.Fatalf("canonical failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("canonical form mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStringAndIntNeverCollide(t *testing.T) {
	s, err := keycodec.Canonical("5")
	if err != nil {
		t.Fatalf("canonical failed: %v", err)
	}
	n, err := keycodec.Canonical(5)
	if err != nil {
		t.Fatalf("canonical failed: %v", err)
	}
	if s == n {
		t.Fatalf("string %q and int 5 share canonical form %q", "5", s)
	}
}

func TestMapKeysAreOrderIndependent(t *testing.T) {
	// Build two equal maps in opposite insertion order. Their canonical
	// forms must match, or logically identical keys would miss.
	m1 := map[string]int{}
	m1["alpha"] = 1
	m1["beta"] = 2
	m1["gamma"] = 3

	m2 := map[string]int{}
	m2["gamma"] = 3
	m2["beta"] = 2
	m2["alpha"] = 1

	c1, err := keycodec.Canonical(m1)
	if err != nil {
		t.Fatalf("canonical failed: %v", err)
	}
	c2, err := keycodec.Canonical(m2)
	if err != nil {
		t.Fatalf("canonical failed: %v", err)
	}

	if diff := cmp.Diff(c1, c2); diff != "" {
		t.Fatalf("equal maps produced different canonical forms:\n%s", diff)
	}
}

func TestCanonicalIsStableAcrossCalls(t *testing.T) {
	key := map[string]any{"b": []int{2, 1}, "a": "x"}

	first, err := keycodec.Canonical(key)
	if err != nil {
		t.Fatalf("canonical failed: %v", err)
	}

	for i := 0; i < 100; i++ {
		again, err := keycodec.Canonical(key)
		if err != nil {
			t.Fatalf("canonical failed on call %d: %v", i, err)
		}
		if again != first {
			t.Fatalf("canonical form changed between calls: %q vs %q", first, again)
		}
	}
}

func TestUnsupportedKeys(t *testing.T) {
	type node struct {
		Next *node
	}
	cyclic := &node{}
	cyclic.Next = cyclic

	tests := []struct {
		name string
		key  any
	}{
		{"nil", nil},
		{"channel", make(chan int)},
		{"function", func() {}},
		{"cyclic structure", cyclic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := keycodec.Canonical(tt.key)
			if !errors.Is(err, keycodec.ErrUnsupportedKey) {
				t.Fatalf("expected ErrUnsupportedKey, got %v", err)
			}
		})
	}
}
