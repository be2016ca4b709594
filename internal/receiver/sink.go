package receiver

import "io"

// Sink consumes each chunk read from the stream, in arrival order.
// The slice is only valid for the duration of the call.
type Sink interface {
	Chunk(p []byte) error
}

// LineSink emits each chunk as one line: exactly the received bytes
// followed by a newline. The byte count is taken from the read, never
// from a terminator inside the payload.
type LineSink struct {
	w io.Writer
}

// NewLineSink creates a LineSink writing to w.
func NewLineSink(w io.Writer) *LineSink {
	return &LineSink{w: w}
}

func (s *LineSink) Chunk(p []byte) error {
	if _, err := s.w.Write(p); err != nil {
		return err
	}
	_, err := s.w.Write([]byte{'\n'})
	return err
}
