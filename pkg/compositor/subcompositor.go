package compositor

import "waylink/pkg/wire"

func init() {
	register("wl_subcompositor", 0, handleSubcompositorDestroy)
	register("wl_subcompositor", 1, handleSubcompositorGetSubsurface)
}

func handleSubcompositorDestroy(c *Connection, objectID uint32, payload []byte) [][]byte {
	c.Objects.Remove(objectID)
	return nil
}

// handleSubcompositorGetSubsurface implements
// wl_subcompositor.get_subsurface (op 1). Composition into the parent
// surface is out of scope (no-goal); only the object is registered.
func handleSubcompositorGetSubsurface(c *Connection, objectID uint32, payload []byte) [][]byte {
	r := wire.NewReader(payload)
	subID, err := r.Uint()
	if err != nil {
		return nil
	}
	c.Objects.Insert(subID, "wl_subsurface", 1)
	return nil
}
