package compositor

import "waylink/pkg/wire"

func init() {
	register("wl_display", 0, handleDisplaySync)
	register("wl_display", 1, handleDisplayGetRegistry)
}

// global is one compositor-advertised name/interface/version triple,
// fixed for the lifetime of the proxy.
type global struct {
	name    uint32
	iface   string
	version uint32
}

var globals = []global{
	{1, "wl_compositor", 4},
	{2, "wl_subcompositor", 1},
	{3, "wl_shm", 1},
	{4, "xdg_wm_base", 1},
	{5, "wl_seat", 5},
	{6, "wl_output", 3},
	{7, "wl_data_device_manager", 3},
}

// handleDisplaySync implements wl_display.sync (op 0): register the
// callback, immediately fire wl_callback.done, then remove it — the
// proxy never actually defers on a real frame boundary.
func handleDisplaySync(c *Connection, objectID uint32, payload []byte) [][]byte {
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

// handleDisplayGetRegistry implements wl_display.get_registry (op 1):
// register the registry object, then advertise every fixed global.
func handleDisplayGetRegistry(c *Connection, objectID uint32, payload []byte) [][]byte {
	r := wire.NewReader(payload)
	regID, err := r.Uint()
	if err != nil {
		return nil
	}

	c.Objects.Insert(regID, "wl_registry", 1)

	out := make([][]byte, 0, len(globals))
	for _, g := range globals {
		out = append(out, wire.Encode(regID, 0,
			wire.Uint(g.name), wire.Str(g.iface), wire.Uint(g.version)))
	}
	return out
}
