package ref

import "testing"

type thing struct {
	Name string
}

func TestBareRef(t *testing.T) {
	r := ID[thing]("abc")
	if r.ID() != "abc" {
		t.Errorf("ID() = %q, want %q", r.ID(), "abc")
	}
	if _, ok := r.Entity(); ok {
		t.Error("bare reference should not narrow to an entity")
	}
	if r.IsZero() {
		t.Error("reference with an id is not zero")
	}
}

func TestPopulatedRef(t *testing.T) {
	r := Populated("abc", &thing{Name: "x"})
	if r.ID() != "abc" {
		t.Errorf("ID() = %q, want %q", r.ID(), "abc")
	}
	e, ok := r.Entity()
	if !ok || e.Name != "x" {
		t.Errorf("Entity() = %v, %v", e, ok)
	}
}

func TestZeroRef(t *testing.T) {
	var r Ref[thing]
	if !r.IsZero() {
		t.Error("zero value should report IsZero")
	}
}
