package server

import (
	"os"

	"golang.org/x/sys/unix"

	"waylink/pkg/errors"
	"waylink/pkg/logger"
)

// bind removes a stale socket file left by a previous, uncleanly
// terminated run, then creates, binds, and listens on the configured
// UNIX endpoint.
func (s *Server) bind() error {
	path := s.cfg.ListenPath()

	if _, err := os.Stat(path); err == nil {
		logger.Warn().Str("path", path).Msg("removing stale socket file")
		_ = os.Remove(path)
	}

	fd, err := unix.Socket(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err != nil {
		return errors.BindError(path, err)
	}

	if err := unix.Bind(fd, &unix.SockaddrUnix{Name: path}); err != nil {
		unix.Close(fd)
		return errors.BindError(path, err)
	}
	if err := unix.Listen(fd, 16); err != nil {
		unix.Close(fd)
		return errors.BindError(path, err)
	}

	logger.Info().Str("path", path).Msg("listening")
	s.listenFd = fd
	return nil
}
