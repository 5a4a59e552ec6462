package cmp_test

import (
	"testing"

	"github.com/taskhive/taskhive/pkg/cmp"
)

func TestSliceEq(t *testing.T) {
	t.Run("it detects two slices with same content in same order are equal", func(t *testing.T) {
		a := []string{"pending", "in_progress", "completed"}
		b := []string{"pending", "in_progress", "completed"}
		if !cmp.SliceEq(a, b) {
			t.Error("a != b, unexpectedly.")
		}
		if !cmp.SliceEq(b, a) {
			t.Error("b != a, unexpectedly.")
		}
	})
	t.Run("it detects two slices with same content in different order are not equal", func(t *testing.T) {
		a := []string{"pending", "in_progress", "completed"}
		b := []string{"completed", "in_progress", "pending"}
		if cmp.SliceEq(a, b) {
			t.Error("a == b, unexpectedly.")
		}
	})
	t.Run("it detects slices with different length are not equal", func(t *testing.T) {
		a := []int{1, 2, 3}
		b := []int{1, 2}
		if cmp.SliceEq(a, b) {
			t.Error("a == b, unexpectedly.")
		}
	})
}

func TestSliceContentEq(t *testing.T) {
	t.Run("it ignores ordering", func(t *testing.T) {
		a := []string{"a", "b", "c"}
		b := []string{"c", "b", "a"}
		if !cmp.SliceContentEq(a, b) {
			t.Error("a != b (as bag), unexpectedly.")
		}
	})
	t.Run("it counts duplicates", func(t *testing.T) {
		a := []string{"a", "b", "c", "c"}
		b := []string{"a", "b", "c"}
		if cmp.SliceContentEq(a, b) {
			t.Error("a == b (as bag), unexpectedly.")
		}
	})
	t.Run("it compares with a predicator", func(t *testing.T) {
		a := []int{1, 2, 3}
		b := []int{5, 4, 3}
		if !cmp.SliceContentEqWith(a, b, func(x, y int) bool { return x%2 == y%2 }) {
			t.Error("a != b (mod 2, as bag), unexpectedly.")
		}
	})
}
