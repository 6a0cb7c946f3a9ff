// Package server implements the single-threaded, cooperative accept
// loop: a readiness multiplexer (golang.org/x/sys/unix.Poll) over the
// listening socket, every connected client fd, and the host channel's
// readable fd. Each readiness tick services every ready fd once (at
// most one receive per client) before polling again, so no client can
// starve the others.
package server

import (
	"waylink/pkg/config"
	"waylink/pkg/history"
	"waylink/pkg/hostchannel"
)

// Server is the proxy's top-level runtime: the listening socket, every
// live client connection, and the host channel.
type Server struct {
	cfg     *config.Config
	host    *hostchannel.Channel
	history *history.Manager

	listenFd int
	clients  map[int]*client
}

// New constructs a Server bound to cfg's listening endpoint and an
// already-open host channel. hist may be nil to disable session
// recording — it is purely observational and never consulted for
// protocol decisions.
func New(cfg *config.Config, host *hostchannel.Channel, hist *history.Manager) *Server {
	return &Server{
		cfg:     cfg,
		host:    host,
		history: hist,
		clients: make(map[int]*client),
	}
}
