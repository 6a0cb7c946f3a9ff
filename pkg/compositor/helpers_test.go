package compositor

import "encoding/binary"

// encodeStringArg mirrors wire's string argument encoding (u32 length
// incl. NUL, bytes, NUL, pad to 4) for building synthetic payloads.
func encodeStringArg(s string) []byte {
	raw := append([]byte(s), 0)
	length := len(raw)
	padded := (length + 3) &^ 3
	buf := make([]byte, 4+padded)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(length))
	copy(buf[4:], raw)
	return buf
}

func concatBytes(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// payloadU32s builds a request payload out of raw uint32 arguments, the
// shape every handler under test expects before it runs its own
// wire.Reader over the bytes.
func payloadU32s(vals ...uint32) []byte {
	buf := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(buf[i*4:], v)
	}
	return buf
}

// decodeEvent splits one encoded outbound message back into its object
// id, opcode, and argument payload for assertions.
func decodeEvent(msg []byte) (objectID uint32, opcode uint16, payload []byte) {
	objectID = binary.LittleEndian.Uint32(msg[0:4])
	sizeOpcode := binary.LittleEndian.Uint32(msg[4:8])
	opcode = uint16(sizeOpcode & 0xffff)
	payload = msg[8:]
	return
}
