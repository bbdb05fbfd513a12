package intr

import "testing"

func TestFireWhileEnabled(t *testing.T) {
	var c Controller
	ran := false
	c.Fire(func() { ran = true })
	if !ran {
		t.Error("Expected handler to run immediately while enabled")
	}
}

func TestFireWhileMaskedIsDeferred(t *testing.T) {
	var c Controller
	ran := false

	c.Disable()
	c.Fire(func() { ran = true })
	if ran {
		t.Fatal("Handler ran while delivery was masked")
	}
	c.Enable()

	if !ran {
		t.Error("Expected handler delivered on Enable")
	}
}

func TestNestedDisable(t *testing.T) {
	var c Controller
	ran := false

	c.Disable()
	c.Disable()
	c.Fire(func() { ran = true })

	c.Enable()
	if ran {
		t.Fatal("Handler delivered before the outermost Enable")
	}
	if c.Enabled() {
		t.Fatal("Expected delivery still masked after inner Enable")
	}

	c.Enable()
	if !ran {
		t.Error("Expected handler delivered after the outermost Enable")
	}
	if !c.Enabled() {
		t.Error("Expected delivery unmasked")
	}
}

func TestPendingOrderPreserved(t *testing.T) {
	var c Controller
	var order []int

	c.Without(func() {
		c.Fire(func() { order = append(order, 1) })
		c.Fire(func() { order = append(order, 2) })
		c.Fire(func() { order = append(order, 3) })
	})

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("Expected handlers in arrival order, got %v", order)
	}
}

func TestWithoutRestoresMask(t *testing.T) {
	var c Controller
	c.Without(func() {
		if c.Enabled() {
			t.Error("Expected delivery masked inside Without")
		}
	})
	if !c.Enabled() {
		t.Error("Expected delivery restored after Without")
	}
}
