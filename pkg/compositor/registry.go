package compositor

import "waylink/pkg/wire"

const (
	shmFormatARGB8888 = 0
	shmFormatXRGB8888 = 1

	seatCapPointerKeyboard = 0x3
	seatName               = "win-way-seat"

	outputWidth   = 1920
	outputHeight  = 1080
	outputRefresh = 60000
	outputMake    = "WinWay"
	outputModel   = "Monitor"
	// modeCurrentPreferred is current(0x1) | preferred(0x2).
	modeCurrentPreferred = 0x3
)

func init() {
	register("wl_registry", 0, handleRegistryBind)
}

// handleRegistryBind implements wl_registry.bind (op 0): register the
// bound interface under the client-supplied new_id, then for a fixed
// set of interfaces emit their initial advertisement events.
func handleRegistryBind(c *Connection, objectID uint32, payload []byte) [][]byte {
	r := wire.NewReader(payload)
	_, err := r.Uint() // name, unused beyond the bind itself
	if err != nil {
		return nil
	}
	iface, err := r.String()
	if err != nil {
		return nil
	}
	version, err := r.Uint()
	if err != nil {
		return nil
	}
	newID, err := r.Uint()
	if err != nil {
		return nil
	}

	c.Objects.Insert(newID, iface, version)

	switch iface {
	case "wl_shm":
		return [][]byte{
			wire.Encode(newID, 0, wire.Uint(shmFormatARGB8888)),
			wire.Encode(newID, 0, wire.Uint(shmFormatXRGB8888)),
		}
	case "wl_seat":
		return [][]byte{
			wire.Encode(newID, 0, wire.Uint(seatCapPointerKeyboard)),
			wire.Encode(newID, 1, wire.Str(seatName)),
		}
	case "wl_output":
		out := [][]byte{
			wire.Encode(newID, 0,
				wire.Int(0), wire.Int(0), wire.Int(outputWidth), wire.Int(outputHeight),
				wire.Int(0), wire.Str(outputMake), wire.Str(outputModel), wire.Int(0)),
			wire.Encode(newID, 1,
				wire.Uint(modeCurrentPreferred), wire.Int(outputWidth), wire.Int(outputHeight), wire.Int(outputRefresh)),
		}
		if version >= 2 {
			out = append(out, wire.Encode(newID, 3, wire.Int(1)))
			out = append(out, wire.Encode(newID, 2))
		}
		return out
	}
	return nil
}
