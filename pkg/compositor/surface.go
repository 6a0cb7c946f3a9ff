package compositor

import (
	"waylink/pkg/frame"
	"waylink/pkg/wire"
)

func init() {
	register("wl_surface", 0, handleSurfaceDestroy)
	register("wl_surface", 1, handleSurfaceAttach)
	register("wl_surface", 2, handleSurfaceNoop) // damage
	register("wl_surface", 3, handleSurfaceFrame)
	register("wl_surface", 4, handleSurfaceNoop) // set_opaque_region
	register("wl_surface", 5, handleSurfaceNoop) // set_input_region
	register("wl_surface", 6, handleSurfaceCommit)
	register("wl_surface", 7, handleSurfaceNoop)  // set_buffer_transform
	register("wl_surface", 8, handleSurfaceNoop)  // set_buffer_scale
	register("wl_surface", 9, handleSurfaceNoop)  // damage_buffer
	register("wl_surface", 10, handleSurfaceNoop) // offset
}

func handleSurfaceNoop(c *Connection, objectID uint32, payload []byte) [][]byte {
	return nil
}

// handleSurfaceDestroy implements wl_surface.destroy (op 0).
func handleSurfaceDestroy(c *Connection, objectID uint32, payload []byte) [][]byte {
	c.Objects.Remove(objectID)
	delete(c.Surfaces, objectID)
	return nil
}

// handleSurfaceAttach implements wl_surface.attach (op 1). A payload
// shorter than 12 bytes is tolerated: if at least 4 bytes are present,
// only the buffer id is read; a zero buffer id means "detach".
func handleSurfaceAttach(c *Connection, objectID uint32, payload []byte) [][]byte {
	if len(payload) < 4 {
		return nil
	}
	r := wire.NewReader(payload)
	bufID, err := r.Uint()
	if err != nil {
		return nil
	}
	c.Surfaces[objectID] = bufID
	return nil
}

// handleSurfaceFrame implements wl_surface.frame (op 3): immediately
// fire the done callback, since the proxy does not throttle to a
// refresh cycle.
func handleSurfaceFrame(c *Connection, objectID uint32, payload []byte) [][]byte {
	if len(payload) < 4 {
		return nil
	}
	r := wire.NewReader(payload)
	cbID, err := r.Uint()
	if err != nil {
		return nil
	}

	c.Objects.Insert(cbID, "wl_callback", 1)
	msg := wire.Encode(cbID, 0, wire.Uint(c.nowMillis()))
	c.Objects.Remove(cbID)
	return [][]byte{msg}
}

// handleSurfaceCommit implements wl_surface.commit (op 6): if the
// surface has an attached, live buffer, extract its pixels to the host
// sink, then emit wl_buffer.release — strictly after the extraction,
// per the release-ordering invariant. A commit with no attached or no
// longer live buffer is silently skipped, not an error.
func handleSurfaceCommit(c *Connection, objectID uint32, payload []byte) [][]byte {
	bufID, attached := c.Surfaces[objectID]
	if !attached || bufID == 0 {
		return nil
	}

	buf, ok := c.Buffers[bufID]
	if !ok {
		return nil
	}

	if pool, ok := c.Pools.Lookup(buf.PoolID); ok && c.HostSink != nil {
		_ = frame.Extract(c.HostSink, objectID, buf.Width, buf.Height, buf.Offset, buf.Stride, buf.Format, pool.Mapping, pool.Size)
	}

	return [][]byte{wire.Encode(bufID, 0)}
}
