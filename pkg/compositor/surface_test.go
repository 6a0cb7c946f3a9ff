package compositor

import (
	"bytes"
	"testing"
)

func TestHandleSurfaceAttach_TracksBufferAndToleratesShortPayload(t *testing.T) {
	c := New()
	c.Surfaces[6] = 0

	handleSurfaceAttach(c, 6, payloadU32s(9))
	if c.Surfaces[6] != 9 {
		t.Errorf("Surfaces[6] = %d, want 9", c.Surfaces[6])
	}

	// Too short to carry even the buffer id: no panic, no mutation.
	handleSurfaceAttach(c, 6, nil)
	if c.Surfaces[6] != 9 {
		t.Errorf("short attach payload should be a no-op, got %d", c.Surfaces[6])
	}
}

func TestHandleSurfaceFrame_FiresDoneImmediately(t *testing.T) {
	c := New()
	out := handleSurfaceFrame(c, 6, payloadU32s(20))
	if len(out) != 1 {
		t.Fatalf("expected 1 event, got %d", len(out))
	}
	objID, opcode, _ := decodeEvent(out[0])
	if objID != 20 || opcode != 0 {
		t.Errorf("got (obj=%d, op=%d), want (obj=20, op=0)", objID, opcode)
	}
	if _, ok := c.Objects.Lookup(20); ok {
		t.Error("frame callback should not remain registered after done")
	}
}

// TestHandleSurfaceCommit_EmitsPIXLThenRelease verifies the commit
// ordering invariant: a 400x300 XRGB buffer pre-filled with 0xAA
// committed to a surface produces one PIXL record to the host sink
// before the wl_buffer.release event reaches the client stream.
func TestHandleSurfaceCommit_EmitsPIXLThenRelease(t *testing.T) {
	c := New()
	var hostSink bytes.Buffer
	c.HostSink = &hostSink

	fd := tempFdFilledWith(t, 0xAA, 400*300*4)
	c.PushFd(fd)
	handleShmCreatePool(c, 7, payloadU32s(8, uint32(400*300*4)))
	handleShmPoolCreateBuffer(c, 8, payloadU32s(9, 0, 400, 300, 1600, 1))
	c.Surfaces[6] = 0
	handleSurfaceAttach(c, 6, payloadU32s(9))

	out := handleSurfaceCommit(c, 6, nil)

	if len(out) != 1 {
		t.Fatalf("expected 1 release event, got %d", len(out))
	}
	objID, opcode, _ := decodeEvent(out[0])
	if objID != 9 || opcode != 0 {
		t.Errorf("release event: got (obj=%d, op=%d), want (obj=9, op=0)", objID, opcode)
	}

	got := hostSink.Bytes()
	if len(got) < 24 || string(got[0:4]) != "PIXL" {
		t.Fatalf("expected PIXL header at the start of host sink, got %q (len=%d)", got[:min(4, len(got))], len(got))
	}
	wantTotal := 400 * 300 * 4
	if len(got) != 24+wantTotal {
		t.Errorf("host sink length = %d, want %d", len(got), 24+wantTotal)
	}
}

func TestHandleSurfaceCommit_NoAttachedBufferIsNoop(t *testing.T) {
	c := New()
	c.Surfaces[6] = 0
	out := handleSurfaceCommit(c, 6, nil)
	if out != nil {
		t.Errorf("expected nil for a commit with no attached buffer, got %v", out)
	}
}
