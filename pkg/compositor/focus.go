package compositor

import (
	"waylink/pkg/objects"
	"waylink/pkg/wire"
)

// focusEnterOpcode is the wl_pointer/wl_keyboard "enter" event, op 4 on
// both interfaces.
const focusEnterOpcode = 4

// FocusAttempt fires a bogus-but-plausible initial focus event at every
// live pointer/keyboard object, addressed at an arbitrary current
// surface. It is required to unblock clients that refuse to render
// until focused, and is idempotent: calling it repeatedly (as happens
// whenever a new surface or input object appears) just re-sends enter
// events, which is harmless.
func (c *Connection) FocusAttempt() [][]byte {
	sid, ok := c.firstSurface()
	if !ok {
		return nil
	}

	var out [][]byte
	c.Objects.Each(func(id uint32, obj objects.Object) {
		switch obj.Interface {
		case "wl_keyboard":
			out = append(out, wire.Encode(id, focusEnterOpcode,
				wire.Uint(c.NextSerial()), wire.ObjectArg(sid), wire.RawArray(nil)))
		case "wl_pointer":
			out = append(out, wire.Encode(id, focusEnterOpcode,
				wire.Uint(c.NextSerial()), wire.ObjectArg(sid), wire.Fixed(0), wire.Fixed(0)))
		}
	})
	return out
}
