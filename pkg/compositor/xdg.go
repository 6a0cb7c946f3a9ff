package compositor

import "waylink/pkg/wire"

const (
	toplevelDefaultWidth  = 800
	toplevelDefaultHeight = 600
)

func init() {
	register("xdg_wm_base", 2, handleXdgWmBaseGetXdgSurface)
	register("xdg_surface", 1, handleXdgSurfaceGetToplevel)

	// xdg_toplevel: every request is accepted and ignored (no-op); the
	// proxy never throttles sizing, menus, or move/resize grabs.
	for _, op := range []uint16{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13} {
		register("xdg_toplevel", op, handleSurfaceNoop)
	}
}

// handleXdgWmBaseGetXdgSurface implements xdg_wm_base.get_xdg_surface
// (op 2).
func handleXdgWmBaseGetXdgSurface(c *Connection, objectID uint32, payload []byte) [][]byte {
	r := wire.NewReader(payload)
	xdgID, err := r.Uint()
	if err != nil {
		return nil
	}
	// surface id argument follows but is not needed beyond registration.
	c.Objects.Insert(xdgID, "xdg_surface", 3)
	return nil
}

// handleXdgSurfaceGetToplevel implements xdg_surface.get_toplevel
// (op 1): register the toplevel, immediately configure it with a
// fixed size and no states, ack with xdg_surface.configure, and
// attempt to focus the client.
func handleXdgSurfaceGetToplevel(c *Connection, objectID uint32, payload []byte) [][]byte {
	r := wire.NewReader(payload)
	toplevelID, err := r.Uint()
	if err != nil {
		return nil
	}

	c.Objects.Insert(toplevelID, "xdg_toplevel", 3)

	out := [][]byte{
		wire.Encode(toplevelID, 0,
			wire.Int(toplevelDefaultWidth), wire.Int(toplevelDefaultHeight), wire.RawArray(nil)),
		wire.Encode(objectID, 0, wire.Uint(c.NextSerial())),
	}
	out = append(out, c.FocusAttempt()...)
	return out
}
