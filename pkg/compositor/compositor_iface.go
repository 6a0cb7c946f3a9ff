package compositor

import "waylink/pkg/wire"

func init() {
	register("wl_compositor", 0, handleCompositorCreateSurface)
	register("wl_compositor", 1, handleCompositorCreateRegion)
}

// handleCompositorCreateSurface implements wl_compositor.create_surface
// (op 0): register the surface and attempt to focus it.
func handleCompositorCreateSurface(c *Connection, objectID uint32, payload []byte) [][]byte {
	r := wire.NewReader(payload)
	sid, err := r.Uint()
	if err != nil {
		return nil
	}

	c.Objects.Insert(sid, "wl_surface", 4)
	c.Surfaces[sid] = 0
	return c.FocusAttempt()
}

// handleCompositorCreateRegion implements wl_compositor.create_region
// (op 1).
func handleCompositorCreateRegion(c *Connection, objectID uint32, payload []byte) [][]byte {
	r := wire.NewReader(payload)
	rid, err := r.Uint()
	if err != nil {
		return nil
	}
	c.Objects.Insert(rid, "wl_region", 1)
	return nil
}
