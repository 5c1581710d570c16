// Package assert provides the small set of test helpers used across the
// repository. All helpers stop the test on the first failure.
package assert

import (
	"reflect"
)

// Tester is the part of testing.TB the helpers need.
type Tester interface {
	Helper()
	Fatal(...interface{})
	Fatalf(string, ...interface{})
}

// Nil fails the test if given value is not nil. Typed nil pointers, maps,
// slices and similar are nil as well.
func Nil(t Tester, value interface{}) {
	t.Helper()
	if !isNil(value) {
		// %+v prints the stack of wrapped errors
		t.Fatalf("want a nil value, got %+v", value)
	}
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}

// Equal fails the test if two values are not deeply equal.
func Equal(t Tester, want, got interface{}) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("values not equal \nwant %T %v\n got %T %v", want, want, got, got)
	}
}

// Panics fails the test if fn returns without panicking.
func Panics(t Tester, fn func()) {
	t.Helper()
	panicked := func() (p bool) {
		defer func() { p = recover() != nil }()
		fn()
		return false
	}()
	if !panicked {
		t.Fatal("panic expected")
	}
}

// IsErr fails the test unless got is want, or is matched by the Is method
// of want.
func IsErr(t Tester, want, got error) {
	t.Helper()
	if want == got {
		return
	}
	if is, ok := want.(interface{ Is(error) bool }); ok && is.Is(got) {
		return
	}
	t.Fatalf("want %q, got %+v", want, got)
}
