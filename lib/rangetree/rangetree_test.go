package rangetree

import (
	"reflect"
	"testing"
)

func TestAddFindIntersectsItems(t *testing.T) {
	tr := New()
	if err := tr.Add(0, 5, "A"); err != nil {
		t.Fatal(err)
	}
	if err := tr.Add(20, 25, "B"); err != nil {
		t.Fatal(err)
	}
	if err := tr.Add(10, 15, "M"); err != nil {
		t.Fatal(err)
	}
	if err := tr.Add(30, 40, "C"); err != nil {
		t.Fatal(err)
	}

	if got := tr.Intersects(17, 26); got != "B" {
		t.Errorf("Intersects(17,26) = %v, want B", got)
	}

	var names []string
	for _, it := range tr.Items() {
		names = append(names, it.Value.(string))
	}
	want := []string{"A", "M", "B", "C"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Items() = %v, want %v", names, want)
	}

	if got := tr.Find(22); got != "B" {
		t.Errorf("Find(22) = %v, want B", got)
	}
	if got := tr.Find(16); got != nil {
		t.Errorf("Find(16) = %v, want nil", got)
	}
}

func TestAddConflict(t *testing.T) {
	tr := New()
	if err := tr.Add(0, 10, "A"); err != nil {
		t.Fatal(err)
	}
	if err := tr.Add(5, 15, "B"); err == nil {
		t.Error("expected RangeConflict error for overlapping interval")
	}
}
