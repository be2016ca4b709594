package receiver

import (
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"gbtap/internal/shared"
	"gbtap/internal/shared/logger"
	"gbtap/internal/shared/types"
)

const defaultBufferSize = 256

// Receiver attaches to the configured debug endpoint and drains the
// stream into its sink. One Receiver owns one connection for its
// whole lifetime.
type Receiver struct {
	cfg       *types.Config
	sink      Sink
	sessionID string
	log       zerolog.Logger
}

// New creates a Receiver. Each instance carries a fresh session ID
// that tags all of its log events.
func New(cfg *types.Config, sink Sink) *Receiver {
	id := uuid.NewString()
	l := logger.WithComponent("receiver").With().Str("session_id", id).Logger()
	return &Receiver{
		cfg:       cfg,
		sink:      sink,
		sessionID: id,
		log:       l,
	}
}

// SessionID returns the identifier tagging this session's log events.
func (r *Receiver) SessionID() string {
	return r.sessionID
}

// Run dials the endpoint and reads until the peer closes the stream or
// a read error occurs. The returned error is non-nil only when the
// connection could not be established; a failed read is reported and
// then handled like a close, so both paths reach teardown and exit 0.
func (r *Receiver) Run() error {
	conn, err := dial(r.cfg)
	if err != nil {
		return err
	}

	counted := shared.NewCountedConn(conn)
	chunks := 0
	defer func() {
		_ = counted.Close()
		_, rx := counted.Stats()
		r.log.Info().Uint64("rx_bytes", rx).Int("chunks", chunks).Msg("Session closed")
	}()

	r.log.Info().
		Str("remote_addr", conn.RemoteAddr().String()).
		Str("transport", r.cfg.Transport).
		Msg("Connected to debug stream")

	size := r.cfg.BufferSize
	if size <= 0 {
		size = defaultBufferSize
	}
	buf := make([]byte, size)
	readTimeout := time.Duration(r.cfg.TimeoutConf.Read) * time.Second

	for {
		if readTimeout > 0 {
			_ = counted.SetReadDeadline(time.Now().Add(readTimeout))
		}

		n, err := counted.Read(buf)
		if n > 0 {
			// Emit exactly the bytes of this read; the payload is not
			// guaranteed to be text or terminated.
			if serr := r.sink.Chunk(buf[:n]); serr != nil {
				r.log.Error().Err(serr).Msg("Failed to emit chunk")
				return nil
			}
			chunks++
			r.log.Debug().Int("size", n).Msg("Chunk received")
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				r.log.Info().Msg("Peer closed the stream")
			} else {
				r.log.Error().Err(err).Msg("Receive failed")
			}
			return nil
		}
	}
}
