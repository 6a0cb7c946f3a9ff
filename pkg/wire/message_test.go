package wire

import "testing"

func TestEncode_SizeFieldConsistency(t *testing.T) {
	tests := []struct {
		name     string
		objectID uint32
		opcode   uint16
		args     []Arg
	}{
		{"no args", 1, 0, nil},
		{"one uint", 2, 1, []Arg{Uint(42)}},
		{"string", 3, 0, []Arg{Str("wl_compositor")}},
		{"mixed", 4, 5, []Arg{Uint(7), Str("xdg_wm_base"), Int(-3)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := Encode(tt.objectID, tt.opcode, tt.args...)
			if len(buf)%4 != 0 {
				t.Errorf("len(buf) = %d, not a multiple of 4", len(buf))
			}
			size := int(le.Uint32(buf[4:8]) >> 16)
			if size != len(buf) {
				t.Errorf("header size = %d, want %d (actual length)", size, len(buf))
			}
		})
	}
}

func TestTryDecode_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		objectID uint32
		opcode   uint16
		args     []Arg
	}{
		{"uint arg", 10, 2, []Arg{Uint(0xdeadbeef)}},
		{"int arg", 11, 3, []Arg{Int(-1234)}},
		{"string arg", 12, 0, []Arg{Str("wl_shm")}},
		{"array arg", 13, 4, []Arg{RawArray([]byte{1, 2, 3, 4, 5})}},
		{"empty string", 14, 0, []Arg{Str("")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := Encode(tt.objectID, tt.opcode, tt.args...)

			msg, consumed, status := TryDecode(encoded)
			if status != OK {
				t.Fatalf("status = %v, want OK", status)
			}
			if consumed != len(encoded) {
				t.Errorf("consumed = %d, want %d", consumed, len(encoded))
			}
			if msg.ObjectID != tt.objectID {
				t.Errorf("ObjectID = %d, want %d", msg.ObjectID, tt.objectID)
			}
			if msg.Opcode != tt.opcode {
				t.Errorf("Opcode = %d, want %d", msg.Opcode, tt.opcode)
			}
		})
	}
}

func TestTryDecode_NeedMore(t *testing.T) {
	full := Encode(1, 0, Str("wl_registry"))

	for n := 0; n < len(full); n++ {
		_, consumed, status := TryDecode(full[:n])
		if status != NeedMore {
			t.Fatalf("with %d/%d bytes: status = %v, want NeedMore", n, len(full), status)
		}
		if consumed != 0 {
			t.Errorf("with %d bytes: consumed = %d, want 0", n, consumed)
		}
	}
}

func TestTryDecode_MalformedAdvancesOneByte(t *testing.T) {
	// Header with size field 4 (< 8) is malformed.
	buf := make([]byte, 8)
	le.PutUint32(buf[0:4], 99)
	le.PutUint32(buf[4:8], uint32(4)<<16|0)

	_, consumed, status := TryDecode(buf)
	if status != Malformed {
		t.Fatalf("status = %v, want Malformed", status)
	}
	if consumed != 1 {
		t.Errorf("consumed = %d, want 1", consumed)
	}
}

func TestTryDecode_DesyncRecovery(t *testing.T) {
	// One garbage byte prepended to an otherwise-valid message.
	valid := Encode(1, 1, NewID(2))
	stream := append([]byte{0xff}, valid...)

	_, consumed, status := TryDecode(stream)
	if status != Malformed {
		t.Fatalf("first decode status = %v, want Malformed", status)
	}
	stream = stream[consumed:]

	msg, consumed, status := TryDecode(stream)
	if status != OK {
		t.Fatalf("second decode status = %v, want OK", status)
	}
	if msg.ObjectID != 1 || msg.Opcode != 1 {
		t.Errorf("decoded message = %+v, want get_registry on object 1", msg)
	}
	if consumed != len(valid) {
		t.Errorf("consumed = %d, want %d", consumed, len(valid))
	}
}

func TestReader_StringAndArrayRoundTrip(t *testing.T) {
	payload := append(encodeString("xdg_wm_base"), Uint(4).encode()...)
	r := NewReader(payload)

	s, err := r.String()
	if err != nil {
		t.Fatalf("String() error = %v", err)
	}
	if s != "xdg_wm_base" {
		t.Errorf("String() = %q, want %q", s, "xdg_wm_base")
	}

	v, err := r.Uint()
	if err != nil {
		t.Fatalf("Uint() error = %v", err)
	}
	if v != 4 {
		t.Errorf("Uint() = %d, want 4", v)
	}
}
