package compositor

import "testing"

func TestDispatch_UnknownObjectLogsAndSkips(t *testing.T) {
	c := New()
	out := Dispatch(c, 999, 0, nil)
	if out != nil {
		t.Errorf("expected nil for unknown object, got %v", out)
	}
}

func TestDispatch_UnknownOpcodeLogsAndSkips(t *testing.T) {
	c := New()
	// object 1 is wl_display; opcode 99 doesn't exist on it.
	out := Dispatch(c, 1, 99, nil)
	if out != nil {
		t.Errorf("expected nil for unknown opcode, got %v", out)
	}
}

func TestDispatch_RoutesToRegisteredHandler(t *testing.T) {
	c := New()
	out := Dispatch(c, 1, 1, payloadU32s(2)) // wl_display.get_registry(id=2)
	if len(out) != len(globals) {
		t.Fatalf("expected %d global events, got %d", len(globals), len(out))
	}
}
