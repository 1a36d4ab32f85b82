package shuffle

import (
	"sort"
	"testing"
)

func TestSlice_IsPermutation(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}

	for range 50 {
		out := Slice(in)
		if len(out) != len(in) {
			t.Fatalf("len = %d, want %d", len(out), len(in))
		}
		sorted := make([]int, len(out))
		copy(sorted, out)
		sort.Ints(sorted)
		for i, v := range sorted {
			if v != i+1 {
				t.Fatalf("not a permutation: %v", out)
			}
		}
	}
}

func TestSlice_DoesNotMutateInput(t *testing.T) {
	in := []string{"a", "b", "c", "d"}
	want := []string{"a", "b", "c", "d"}

	for range 20 {
		Slice(in)
	}
	for i := range in {
		if in[i] != want[i] {
			t.Fatalf("input mutated: %v", in)
		}
	}
}

func TestSlice_SmallInputs(t *testing.T) {
	if out := Slice([]int(nil)); len(out) != 0 {
		t.Errorf("nil input: got %v", out)
	}
	if out := Slice([]int{42}); len(out) != 1 || out[0] != 42 {
		t.Errorf("single element: got %v", out)
	}
}

func TestSlice_EventuallyReorders(t *testing.T) {
	// With 8 elements the chance of 100 identity shuffles in a row is
	// vanishingly small; treat it as a broken generator.
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}
	for range 100 {
		out := Slice(in)
		for i := range out {
			if out[i] != in[i] {
				return
			}
		}
	}
	t.Fatal("shuffle returned the identity permutation 100 times")
}
