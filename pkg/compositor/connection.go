// Package compositor implements the interface handlers that carry a
// client from wl_display.get_registry through wl_surface.commit: the
// per-connection aggregate, the static interface/opcode dispatch
// table, and the focus-attempt heuristic that unblocks clients waiting
// on pointer/keyboard enter events.
package compositor

import (
	"io"
	"syscall"
	"time"

	"github.com/google/uuid"

	"waylink/pkg/objects"
	"waylink/pkg/shmpool"
)

// BufferMeta is the metadata recorded for a wl_buffer: a rectangular
// view into a pool at a byte offset.
type BufferMeta struct {
	PoolID uint32
	Offset int32
	Width  int32
	Height int32
	Stride int32
	Format uint32
}

// Connection is the single owned aggregate for one client session,
// passed by unique reference into every handler. Handlers mutate it
// directly and return the outbound messages to enqueue, rather than
// writing to the socket themselves, so handlers stay unit-testable.
type Connection struct {
	ID uuid.UUID

	Objects  *objects.Table
	Pools    *shmpool.Registry
	Surfaces map[uint32]uint32 // surface id -> attached buffer id (0 = detached)
	Buffers  map[uint32]BufferMeta

	ConnectedAt time.Time

	// HostSink is where wl_surface.commit writes PIXL records. Set by
	// pkg/server at connection setup; nil is tolerated (commit becomes
	// a no-op release) so handlers stay testable without a real sink.
	HostSink io.Writer

	pendingFds []int
	serial     uint32

	// Clock is overridable for tests; defaults to time.Now.
	Clock func() time.Time
}

// New returns a freshly initialized Connection: an object table with
// only wl_display registered, empty pool/surface/buffer registries.
func New() *Connection {
	return &Connection{
		ID:          uuid.New(),
		Objects:     objects.New(),
		Pools:       shmpool.New(),
		Surfaces:    make(map[uint32]uint32),
		Buffers:     make(map[uint32]BufferMeta),
		ConnectedAt: time.Now(),
	}
}

// NextSerial returns the next monotonically increasing serial number
// for this connection.
func (c *Connection) NextSerial() uint32 {
	c.serial++
	return c.serial
}

// PushFd enqueues an fd received via ancillary data, to be popped in
// argument order by the handler that declared the fd argument.
func (c *Connection) PushFd(fd int) {
	c.pendingFds = append(c.pendingFds, fd)
}

// PopFd dequeues the oldest pending fd. ok is false if the queue is
// empty, which a handler must treat as "no fd arrived" rather than panic.
func (c *Connection) PopFd() (fd int, ok bool) {
	if len(c.pendingFds) == 0 {
		return 0, false
	}
	fd = c.pendingFds[0]
	c.pendingFds = c.pendingFds[1:]
	return fd, true
}

// Close tears down every resource this connection owns, in order:
// unmap and close every pool (mapped views released before fds), close
// any received fd that no handler popped, then drop the object table.
func (c *Connection) Close() {
	c.Pools.Close()
	for _, fd := range c.pendingFds {
		_ = syscall.Close(fd)
	}
	c.pendingFds = nil
	c.Objects = objects.New()
	c.Surfaces = nil
	c.Buffers = nil
}

func (c *Connection) nowMillis() uint32 {
	return c.NowMillis()
}

// NowMillis returns the current time in milliseconds, truncated to 32
// bits, using c.Clock if set (tests) or time.Now otherwise. Exported so
// pkg/input can stamp injected events with the same clock.
func (c *Connection) NowMillis() uint32 {
	clock := c.Clock
	if clock == nil {
		clock = time.Now
	}
	return uint32(clock().UnixMilli() & 0xFFFFFFFF)
}

// firstSurface returns an arbitrary live surface id — Go's randomized
// map iteration satisfies the spec's "arbitrary current surface" focus
// heuristic without extra bookkeeping.
func (c *Connection) firstSurface() (uint32, bool) {
	for sid := range c.Surfaces {
		return sid, true
	}
	return 0, false
}
