package server

import "waylink/pkg/compositor"

// client is one accepted connection: its raw fd, inbound byte buffer
// awaiting a complete wire message, and the compositor state it drives.
type client struct {
	fd   int
	conn *compositor.Connection
	in   []byte

	framesSent int64
	bytesSent  int64
}
