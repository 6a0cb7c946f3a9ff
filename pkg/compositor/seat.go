package compositor

import "waylink/pkg/wire"

func init() {
	register("wl_seat", 0, handleSeatGetPointer)
	register("wl_seat", 1, handleSeatGetKeyboard)
}

// handleSeatGetPointer implements wl_seat.get_pointer (op 0).
func handleSeatGetPointer(c *Connection, objectID uint32, payload []byte) [][]byte {
	r := wire.NewReader(payload)
	nid, err := r.Uint()
	if err != nil {
		return nil
	}
	c.Objects.Insert(nid, "wl_pointer", 1)
	return c.FocusAttempt()
}

// handleSeatGetKeyboard implements wl_seat.get_keyboard (op 1).
func handleSeatGetKeyboard(c *Connection, objectID uint32, payload []byte) [][]byte {
	r := wire.NewReader(payload)
	nid, err := r.Uint()
	if err != nil {
		return nil
	}
	c.Objects.Insert(nid, "wl_keyboard", 1)
	return c.FocusAttempt()
}
