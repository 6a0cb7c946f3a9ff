package server

import (
	"os"
	"time"

	"golang.org/x/sys/unix"

	"waylink/pkg/compositor"
	"waylink/pkg/input"
	"waylink/pkg/logger"
	"waylink/pkg/wire"
)

// Run binds the listening socket and drives the accept loop until the
// host channel reaches EOF (clean exit, returns nil) or a fatal poll
// error occurs.
func (s *Server) Run() error {
	if err := s.bind(); err != nil {
		return err
	}
	defer unix.Close(s.listenFd)
	defer os.Remove(s.cfg.ListenPath())

	hostFd := int(s.host.Source.Fd())

	for {
		fds := make([]unix.PollFd, 0, 2+len(s.clients))
		fds = append(fds, unix.PollFd{Fd: int32(s.listenFd), Events: unix.POLLIN})
		fds = append(fds, unix.PollFd{Fd: int32(hostFd), Events: unix.POLLIN})

		order := make([]int, 0, len(s.clients))
		for fd := range s.clients {
			order = append(order, fd)
			fds = append(fds, unix.PollFd{Fd: int32(fd), Events: unix.POLLIN})
		}

		_, err := unix.Poll(fds, -1)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return err
		}

		if fds[0].Revents&unix.POLLIN != 0 {
			s.acceptOne()
		}
		if fds[1].Revents&(unix.POLLIN|unix.POLLHUP) != 0 {
			if s.readHost() {
				return nil
			}
		}
		for i, fd := range order {
			pf := fds[2+i]
			if pf.Revents&(unix.POLLIN|unix.POLLHUP|unix.POLLERR) != 0 {
				s.readClient(fd)
			}
		}
	}
}

func (s *Server) acceptOne() {
	fd, _, err := unix.Accept(s.listenFd)
	if err != nil {
		logger.Warn().Err(err).Msg("accept failed")
		return
	}

	conn := compositor.New()
	cl := &client{fd: fd, conn: conn}
	conn.HostSink = &frameCountingWriter{w: s.host.Sink, client: cl}
	s.clients[fd] = cl

	logger.WithConn(conn.ID.String()).Info().Msg("client connected")
	if s.history != nil {
		_ = s.history.RecordConnect(conn.ID.String(), conn.ConnectedAt, "")
	}
}

// readClient drains one readiness notification: receive available
// bytes plus any ancillary fds, then decode and dispatch every complete
// message now sitting in the client's buffer. A framing desync (status
// Malformed) drops exactly one byte and keeps going, never the
// connection itself.
func (s *Server) readClient(fd int) {
	cl, ok := s.clients[fd]
	if !ok {
		return
	}

	buf := make([]byte, 4096)
	oob := make([]byte, unix.CmsgSpace(4*8))
	n, oobn, _, _, err := unix.Recvmsg(fd, buf, oob, 0)
	if err != nil || n == 0 {
		s.closeClient(fd)
		return
	}
	cl.in = append(cl.in, buf[:n]...)

	if oobn > 0 {
		if scms, parseErr := unix.ParseSocketControlMessage(oob[:oobn]); parseErr == nil {
			for _, scm := range scms {
				if rights, parseErr := unix.ParseUnixRights(&scm); parseErr == nil {
					for _, rfd := range rights {
						cl.conn.PushFd(rfd)
					}
				}
			}
		}
	}

	for {
		msg, consumed, status := wire.TryDecode(cl.in)
		switch status {
		case wire.NeedMore:
			return
		case wire.Malformed:
			logger.WithConn(cl.conn.ID.String()).Warn().Msg("malformed frame header, resynchronizing")
			cl.in = cl.in[consumed:]
		case wire.OK:
			cl.in = cl.in[consumed:]
			out := compositor.Dispatch(cl.conn, msg.ObjectID, msg.Opcode, msg.Payload)
			s.writeAll(cl, out)
		}
	}
}

func (s *Server) writeAll(cl *client, msgs [][]byte) {
	for _, m := range msgs {
		if _, err := unix.Write(cl.fd, m); err != nil {
			logger.WithConn(cl.conn.ID.String()).Warn().Err(err).Msg("write to client failed")
			return
		}
	}
}

func (s *Server) closeClient(fd int) {
	cl, ok := s.clients[fd]
	if !ok {
		return
	}
	delete(s.clients, fd)

	logger.WithConn(cl.conn.ID.String()).Info().Msg("client disconnected")
	if s.history != nil {
		_ = s.history.RecordDisconnect(cl.conn.ID.String(), time.Now(), cl.framesSent, cl.bytesSent)
	}

	cl.conn.Close()
	unix.Close(fd)
}

// readHost reads one INPT record from the host channel and broadcasts
// it to every live connection's pointer/keyboard objects. Returns true
// when the host channel has reached EOF or a read error, signaling a
// clean shutdown.
func (s *Server) readHost() bool {
	buf := make([]byte, 20)
	n, err := unix.Read(int(s.host.Source.Fd()), buf)
	if err != nil {
		logger.Warn().Err(err).Msg("host channel read error")
		return true
	}
	if n == 0 {
		logger.Info().Msg("host channel EOF, shutting down")
		return true
	}
	if n < 20 {
		return false
	}

	rec, ok := input.Decode(buf[:n])
	if !ok {
		return false
	}

	conns := make([]*compositor.Connection, 0, len(s.clients))
	for _, cl := range s.clients {
		conns = append(conns, cl.conn)
	}

	perConn := input.Broadcast(rec, conns)
	for _, cl := range s.clients {
		if msgs, ok := perConn[cl.conn]; ok {
			s.writeAll(cl, msgs)
		}
	}
	return false
}
