package input

import (
	"waylink/pkg/compositor"
	"waylink/pkg/objects"
	"waylink/pkg/wire"
)

const (
	keyboardKeyOpcode  = 3
	pointerMotionOpcode = 2
	pointerButtonOpcode = 3
)

// Broadcast translates one decoded INPT record into events on every
// live keyboard/pointer object across every given connection, returning
// the per-connection outbound messages keyed by connection. Unrecognized
// type codes broadcast nothing.
func Broadcast(rec Record, conns []*compositor.Connection) map[*compositor.Connection][][]byte {
	out := make(map[*compositor.Connection][][]byte)
	for _, c := range conns {
		msgs := broadcastOne(rec, c)
		if len(msgs) > 0 {
			out[c] = msgs
		}
	}
	return out
}

func broadcastOne(rec Record, c *compositor.Connection) [][]byte {
	var out [][]byte
	now := c.NowMillis()

	c.Objects.Each(func(id uint32, obj objects.Object) {
		switch rec.Type {
		case TypeKey:
			if obj.Interface == "wl_keyboard" {
				out = append(out, wire.Encode(id, keyboardKeyOpcode,
					wire.Uint(c.NextSerial()), wire.Uint(now), wire.Uint(rec.Param2), wire.Uint(rec.Param1)))
			}
		case TypeMotion:
			if obj.Interface == "wl_pointer" {
				out = append(out, wire.Encode(id, pointerMotionOpcode,
					wire.Uint(now), wire.Fixed(int32(rec.Param1)*256), wire.Fixed(int32(rec.Param2)*256)))
			}
		case TypeButton:
			if obj.Interface == "wl_pointer" {
				out = append(out, wire.Encode(id, pointerButtonOpcode,
					wire.Uint(c.NextSerial()), wire.Uint(now), wire.Uint(rec.Param2), wire.Uint(rec.Param1)))
			}
		}
	})
	return out
}
