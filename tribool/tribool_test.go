package tribool

import "testing"

func TestNewFromBool(t *testing.T) {
	if tb := NewFromBool(true); !tb.True() {
		t.Fatalf("TestNewFromBool() failed: %s", tb)
	}
	if tb := NewFromBool(false); !tb.False() {
		t.Fatalf("TestNewFromBool() failed: %s", tb)
	}
}

func TestNot(t *testing.T) {
	if tb := True.Not(); !tb.False() {
		t.Fatalf("TestNot() failed: %s", tb)
	}
	if tb := False.Not(); !tb.True() {
		t.Fatalf("TestNot() failed: %s", tb)
	}
	if tb := Undef.Not(); !tb.Undef() {
		t.Fatalf("TestNot() failed: %s", tb)
	}
}

func TestBool(t *testing.T) {
	if True.Bool() != true {
		t.Fatal("True.Bool() != true")
	}
	if False.Bool() != false {
		t.Fatal("False.Bool() != false")
	}
	if Undef.Bool() != false {
		t.Fatal("Undef.Bool() != false")
	}
}

func TestString(t *testing.T) {
	for tb, want := range map[Tribool]string{True: "true", False: "false", Undef: "undef"} {
		if got := tb.String(); got != want {
			t.Fatalf("String() = %q, want %q", got, want)
		}
	}
}
