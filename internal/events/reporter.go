package events

import (
	"encoding/json"
	"net"
	"time"
)

const emitDeadline = 50 * time.Millisecond

// Reporter sends navigation events to the watch collector's datagram
// socket. Emission is strictly best-effort: a missing socket, a full
// buffer, or a slow peer must never delay or fail a navigation.
type Reporter struct {
	path string
}

func NewReporter(socketPath string) *Reporter {
	return &Reporter{path: socketPath}
}

// Emit fires one event at the socket and ignores every error.
func (r *Reporter) Emit(e Event) {
	if r == nil || r.path == "" {
		return
	}
	payload, err := json.Marshal(e)
	if err != nil {
		return
	}

	addr, err := net.ResolveUnixAddr("unixgram", r.path)
	if err != nil {
		return
	}
	conn, err := net.DialUnix("unixgram", nil, addr)
	if err != nil {
		return
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(emitDeadline))
	_, _ = conn.Write(payload)
}
