// Package hostchannel is the only place that knows whether the external
// presentation host is reached over stdio or TCP. The rest of the proxy
// sees only the Sink and Source files: pkg/compositor writes PIXL
// through an io.Writer, and pkg/server polls and reads Source by its fd,
// so neither knows which transport is behind them.
package hostchannel

import (
	"fmt"
	"net"
	"os"

	"waylink/pkg/config"
	"waylink/pkg/errors"
	"waylink/pkg/logger"
)

// Channel is the host-facing byte boundary: PIXL records are written to
// Sink, INPT records are read from Source. In "tcp" mode Sink and
// Source are the same accepted connection.
type Channel struct {
	Sink   *os.File
	Source *os.File

	conn     net.Conn
	listener net.Listener
}

// Open establishes the host channel per cfg.Mode. "stdio" binds to the
// process's own stdin/stdout immediately. "tcp" listens on cfg.TCPPort
// and blocks until the host dials in, using that single connection as
// both sink and source.
func Open(cfg *config.Config) (*Channel, error) {
	switch cfg.Mode {
	case "stdio":
		return &Channel{Sink: os.Stdout, Source: os.Stdin}, nil
	case "tcp":
		return openTCP(cfg.TCPPort)
	default:
		return nil, errors.ConfigError(fmt.Sprintf("unsupported host channel mode: %s", cfg.Mode))
	}
}

func openTCP(port int) (*Channel, error) {
	addr := fmt.Sprintf(":%d", port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.HostChannelError("tcp", err)
	}
	logger.Info().Str("addr", addr).Msg("host channel: waiting for presentation host")

	conn, err := ln.Accept()
	if err != nil {
		_ = ln.Close()
		return nil, errors.HostChannelError("tcp", err)
	}
	logger.Info().Str("remote", conn.RemoteAddr().String()).Msg("host channel: presentation host connected")

	tc, ok := conn.(*net.TCPConn)
	if !ok {
		_ = conn.Close()
		_ = ln.Close()
		return nil, errors.HostChannelError("tcp", fmt.Errorf("unexpected connection type %T", conn))
	}
	f, err := tc.File()
	if err != nil {
		_ = conn.Close()
		_ = ln.Close()
		return nil, errors.HostChannelError("tcp", err)
	}

	return &Channel{Sink: f, Source: f, conn: conn, listener: ln}, nil
}

// Close tears down the underlying transport, if any.
func (ch *Channel) Close() error {
	if ch.conn != nil {
		_ = ch.conn.Close()
		// Sink and Source are a dup of the connection's fd; close it too,
		// or the socket stays open.
		_ = ch.Sink.Close()
	}
	if ch.listener != nil {
		_ = ch.listener.Close()
	}
	return nil
}
