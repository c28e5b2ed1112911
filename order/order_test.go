package order

import (
	"testing"

	"github.com/ole-thoeb/rusty-solver/tribool"
)

func TestOrderChooseHighestActivity(t *testing.T) {
	assigns := []tribool.Tribool{tribool.Undef, tribool.Undef, tribool.Undef}
	activity := []float64{1, 5, 3}

	ord := New(&assigns, &activity)
	ord.NewVar()
	ord.NewVar()
	ord.NewVar()
	ord.Init()

	if v := ord.Choose(); v != 1 {
		t.Fatalf("Chosen var is wrong: %v", v)
	}
	if v := ord.Choose(); v != 2 {
		t.Fatalf("Chosen var is wrong: %v", v)
	}
}

func TestOrderSkipsAssigned(t *testing.T) {
	assigns := []tribool.Tribool{tribool.Undef, tribool.True}
	activity := []float64{1, 2}

	ord := New(&assigns, &activity)
	ord.NewVar()
	ord.NewVar()
	ord.Init()

	if v := ord.Choose(); v != 0 {
		t.Fatalf("Chosen var is wrong: %v", v)
	}
	if v := ord.Choose(); v != -1 {
		t.Fatalf("Exhausted order did not return -1: %v", v)
	}
}

func TestOrderPush(t *testing.T) {
	assigns := []tribool.Tribool{tribool.Undef, tribool.Undef}
	activity := []float64{2, 1}

	ord := New(&assigns, &activity)
	ord.NewVar()
	ord.NewVar()
	ord.Init()

	if v := ord.Choose(); v != 0 {
		t.Fatalf("Chosen var is wrong: %v", v)
	}
	ord.Push(0)
	// Pushing a contained var must not duplicate it.
	ord.Push(1)

	if v := ord.Choose(); v != 0 {
		t.Fatalf("Pushed var was not chosen again: %v", v)
	}
	if v := ord.Choose(); v != 1 {
		t.Fatalf("Chosen var is wrong: %v", v)
	}
	if !ord.Empty() {
		t.Fatalf("Order not empty after choosing all vars")
	}
}

func TestOrderFix(t *testing.T) {
	assigns := []tribool.Tribool{tribool.Undef, tribool.Undef}
	activity := []float64{2, 1}

	ord := New(&assigns, &activity)
	ord.NewVar()
	ord.NewVar()
	ord.Init()

	activity[1] = 10
	ord.Fix(1)

	if v := ord.Choose(); v != 1 {
		t.Fatalf("Fixed var not chosen first: %v", v)
	}
}
