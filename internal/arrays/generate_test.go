package arrays

import (
	"sort"
	"testing"
)

func TestGenerateDeterministic(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(kind, func(t *testing.T) {
			a, err := Generate(kind, 50, 42)
			if err != nil {
				t.Fatalf("generate failed: %v", err)
			}
			b, err := Generate(kind, 50, 42)
			if err != nil {
				t.Fatalf("generate failed: %v", err)
			}
			if len(a) != 50 || len(b) != 50 {
				t.Fatalf("lengths %d, %d, want 50", len(a), len(b))
			}
			for i := range a {
				if a[i] != b[i] {
					t.Fatalf("same seed diverged at index %d: %d vs %d", i, a[i], b[i])
				}
			}
		})
	}
}

func TestGenerateSorted(t *testing.T) {
	out, err := Generate(KindSorted, 10, 1)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range out {
		if v != i+1 {
			t.Errorf("index %d = %d, want %d", i, v, i+1)
		}
	}
}

func TestGenerateReversed(t *testing.T) {
	out, err := Generate(KindReversed, 10, 1)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range out {
		if v != 10-i {
			t.Errorf("index %d = %d, want %d", i, v, 10-i)
		}
	}
}

func TestGenerateNearlySorted(t *testing.T) {
	out, err := Generate(KindNearlySorted, 100, 3)
	if err != nil {
		t.Fatal(err)
	}
	// A permutation of 1..100, mostly in place.
	sorted := append([]int(nil), out...)
	sort.Ints(sorted)
	for i, v := range sorted {
		if v != i+1 {
			t.Fatalf("not a permutation of 1..100: %v", sorted)
		}
	}
	inPlace := 0
	for i, v := range out {
		if v == i+1 {
			inPlace++
		}
	}
	if inPlace < 50 {
		t.Errorf("only %d of 100 elements in place, expected mostly sorted", inPlace)
	}
}

func TestGenerateFewUnique(t *testing.T) {
	out, err := Generate(KindFewUnique, 100, 7)
	if err != nil {
		t.Fatal(err)
	}
	distinct := make(map[int]bool)
	for _, v := range out {
		distinct[v] = true
	}
	if len(distinct) > 5 {
		t.Errorf("got %d distinct values, want at most 5", len(distinct))
	}
}

func TestGenerateErrors(t *testing.T) {
	if _, err := Generate(KindRandom, 0, 1); err == nil {
		t.Error("expected error for zero size")
	}
	if _, err := Generate(KindRandom, -5, 1); err == nil {
		t.Error("expected error for negative size")
	}
	if _, err := Generate("bogus", 10, 1); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestGenerateEmptyKindDefaultsToRandom(t *testing.T) {
	a, err := Generate("", 20, 9)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Generate(KindRandom, 20, 9)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("empty kind diverged from random at index %d", i)
		}
	}
}
