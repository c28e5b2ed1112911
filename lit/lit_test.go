package lit

import "testing"

func TestNewFromInt(t *testing.T) {
	if l := NewFromInt(12); l.Var() != 12 {
		t.Fatalf("TestNewFromInt() failed, got: %d", l.Var())
	}
	if l := NewFromInt(-12); l.Var() != 12 || !l.Sign() {
		t.Fatalf("TestNewFromInt() failed, got: %d", l.Var())
	}
}

func TestNot(t *testing.T) {
	if l := New(12, false).Not(); l != New(12, true) {
		t.Fatalf("TestNot() failed, got: %d", l.Var())
	}
	if l := New(12, true).Not(); l != New(12, false) {
		t.Fatalf("TestNot() failed, got: %d", l.Var())
	}
}

func TestSign(t *testing.T) {
	if l := New(12, true); l.Sign() != true {
		t.Fatalf("TestSign() failed, got: %d", l.Var())
	}
	if l := New(12, false); l.Sign() != false {
		t.Fatalf("TestSign() failed, got: %d", l.Var())
	}
}

func TestVar(t *testing.T) {
	if l := New(23, false); l.Var() != 24 {
		t.Fatalf("TestVar() failed: %d", l.Var())
	}
	if l := New(23, true); l.Var() != 24 {
		t.Fatalf("TestVar() failed: %d", l.Var())
	}
}

func TestInt(t *testing.T) {
	if p := NewFromInt(7).Int(); p != 7 {
		t.Fatalf("TestInt() failed: %d", p)
	}
	if p := NewFromInt(-7).Int(); p != -7 {
		t.Fatalf("TestInt() failed: %d", p)
	}
}
