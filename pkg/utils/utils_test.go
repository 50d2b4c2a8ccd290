package utils

import (
	"reflect"
	"testing"
)

func TestDeduplicate(t *testing.T) {
	got := Deduplicate([]string{"b", "a", "b", "c", "a"})
	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Deduplicate() = %v, want %v", got, want)
	}

	if got := Deduplicate(nil); len(got) != 0 {
		t.Errorf("Deduplicate(nil) = %v, want empty", got)
	}
}

func TestPtr(t *testing.T) {
	p := Ptr("x")
	if p == nil || *p != "x" {
		t.Errorf("Ptr(\"x\") = %v, want pointer to \"x\"", p)
	}
}
