package model

import "testing"

func TestStringArray_ScanPostgresForm(t *testing.T) {
	var a StringArray
	if err := a.Scan(`{"Développement logiciel","Design UX / UI"}`); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(a) != 2 || a[0] != "Développement logiciel" {
		t.Errorf("unexpected parse result: %v", a)
	}
}

func TestStringArray_ScanEmpty(t *testing.T) {
	var a StringArray
	if err := a.Scan("{}"); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if a == nil || len(a) != 0 {
		t.Errorf("empty array must scan to an empty slice, got %v", a)
	}
}

func TestStringArray_ScanNil(t *testing.T) {
	a := StringArray{"x"}
	if err := a.Scan(nil); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if a != nil {
		t.Errorf("nil source must clear the array, got %v", a)
	}
}

func TestStringArray_Value(t *testing.T) {
	a := StringArray{"a", "b"}
	v, err := a.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if v != `{"a","b"}` {
		t.Errorf("unexpected wire form: %v", v)
	}
}
