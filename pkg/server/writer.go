package server

import "io"

// frameCountingWriter wraps the host channel sink so per-client session
// counters (used only by pkg/history, never by protocol logic) stay
// accurate without every call site threading counts through by hand.
type frameCountingWriter struct {
	w      io.Writer
	client *client
}

func (f *frameCountingWriter) Write(p []byte) (int, error) {
	n, err := f.w.Write(p)
	if err == nil {
		f.client.bytesSent += int64(n)
		if len(p) >= 4 && string(p[0:4]) == "PIXL" {
			f.client.framesSent++
		}
	}
	return n, err
}
