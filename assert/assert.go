// Package assert provides an incredibly simple assertion framework,
// that relies on generics and simplicity. All assertions are "fatal"
// and cause the test to abort at the failure line (rather than
// continue on error).
package assert

import (
	"cmp"
	"errors"
	"strings"
	"testing"
)

// True causes a test to fail if the condition is false.
func True(t testing.TB, cond bool) {
	t.Helper()
	if !cond {
		t.Fatal("assertion failure")
	}
}

// Equal causes a test to fail if the two (comparable) values are not
// equal. Be aware that two different pointers and objects passed as
// interfaces that are implemented by pointer receivers are comparable
// as equal and will fail this assertion even if their *values* are
// equal.
func Equal[T comparable](t testing.TB, valOne, valTwo T) {
	t.Helper()
	if valOne != valTwo {
		t.Fatalf("unequal: <%v> != <%v>", valOne, valTwo)
	}
}

// NotEqual causes a test to fail if two (comparable) values are
// equal.
func NotEqual[T comparable](t testing.TB, valOne, valTwo T) {
	t.Helper()
	if valOne == valTwo {
		t.Fatalf("equal: <%v>", valOne)
	}
}

// NilPtr asserts that the pointer value is nil.
func NilPtr[T any](t testing.TB, val *T) { t.Helper(); Equal(t, val, nil) }

// NotNilPtr asserts that the pointer value is not equal to nil.
func NotNilPtr[T any](t testing.TB, val *T) { t.Helper(); NotEqual(t, val, nil) }

// Zero fails a test if the value is not the zero-value for its type.
func Zero[T comparable](t testing.TB, val T) {
	t.Helper()

	var zero T
	if zero != val {
		t.Fatalf("expected zero for value of type %T <%v>", val, val)
	}
}

// NotZero fails a test if the value is the zero for its type.
func NotZero[T comparable](t testing.TB, val T) {
	t.Helper()
	var zero T
	if zero == val {
		t.Fatalf("expected non-zero for value of type %T", val)
	}
}

// Error fails the test if the error is nil.
func Error(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected non-nil error")
	}
}

// NotError fails the test if the error is non-nil.
func NotError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

// ErrorIs is an assertion form of errors.Is, and fails the test if
// the error (or its wrapped values) are not equal to the target
// error.
func ErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error <%v>, is not <%v>", err, target)
	}
}

// NotErrorIs is an assertion form of !errors.Is, and fails the test if
// the error (or its wrapped values) are equal to the target error.
func NotErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if errors.Is(err, target) {
		t.Fatalf("error <%v>, is <%v>", err, target)
	}
}

// NotPanic asserts that the function does not panic.
func NotPanic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if r := recover(); r != nil {
			t.Fatal("panic: ", r)
		}
	}()
	fn()
}

// Contains asserts that the item is in the slice provided. Empty or
// nil slices always cause failure.
func Contains[T comparable](t testing.TB, slice []T, item T) {
	t.Helper()
	if len(slice) == 0 {
		t.Fatal("slice was empty")
	}

	for _, it := range slice {
		if it == item {
			return
		}
	}

	t.Fatalf("item <%v> is not in %v", item, slice)
}

// NotContains asserts that the item is *not* in the slice provided. If
// the input slice is empty, this assertion will never error.
func NotContains[T comparable](t testing.TB, slice []T, item T) {
	t.Helper()

	for _, it := range slice {
		if it == item {
			t.Fatalf("item <%v> is in %v", item, slice)
		}
	}
}

// EqualItems compares the values in two slices and creates an error
// if all items are not equal.
func EqualItems[T comparable](t testing.TB, one, two []T) {
	t.Helper()
	if len(one) != len(two) {
		t.Fatalf("slices are of different lengths [%d vs %d]: %v vs %v", len(one), len(two), one, two)
	}

	for idx := range one {
		if one[idx] != two[idx] {
			t.Fatalf("items at index %d [%v vs %v] are not equal", idx, one[idx], two[idx])
		}
	}
}

// NotEqualItems fails the test if the two slices hold identical
// items in identical order.
func NotEqualItems[T comparable](t testing.TB, one, two []T) {
	t.Helper()
	if len(one) != len(two) {
		return
	}

	for idx := range one {
		if one[idx] != two[idx] {
			return
		}
	}
	t.Fatal("slices have identical items")
}

// SameItems fails the test unless both slices hold the same items
// with the same multiplicity, in any order.
func SameItems[T comparable](t testing.TB, one, two []T) {
	t.Helper()
	if len(one) != len(two) {
		t.Fatalf("slices are of different lengths [%d vs %d]", len(one), len(two))
	}

	counts := make(map[T]int, len(one))
	for _, it := range one {
		counts[it]++
	}
	for _, it := range two {
		counts[it]--
	}
	for it, n := range counts {
		if n != 0 {
			t.Fatalf("item <%v> count differs by %d", it, n)
		}
	}
}

// Ordered fails the test unless the items are in non-decreasing
// order, or non-increasing order when descend is true.
func Ordered[T cmp.Ordered](t testing.TB, items []T, descend bool) {
	t.Helper()
	for idx := 1; idx < len(items); idx++ {
		c := cmp.Compare(items[idx-1], items[idx])
		if (!descend && c > 0) || (descend && c < 0) {
			t.Fatalf("items at index %d and %d [%v, %v] are out of order", idx-1, idx, items[idx-1], items[idx])
		}
	}
}

// Substring asserts that the substring is present in the string.
func Substring(t testing.TB, str, substr string) {
	t.Helper()
	if !strings.Contains(str, substr) {
		t.Fatalf("expected %q to contain substring %q", str, substr)
	}
}

// Failing asserts that the specified test fails. This was required
// for validating the behavior of the assertion, and may be useful in
// your own testing.
func Failing[T testing.TB](t T, test func(T)) {
	t.Helper()
	sig := make(chan bool)
	go func() {
		defer close(sig)

		var tt testing.TB

		switch testing.TB(t).(type) {
		case *testing.T:
			tt = &testing.T{}
		case *testing.B:
			tt = &testing.B{}
		}

		test(tt.(T))

		if !tt.Failed() {
			sig <- true
		}
	}()

	if <-sig {
		t.Fatalf("expected test to fail in %s", t.Name())
	}
}
