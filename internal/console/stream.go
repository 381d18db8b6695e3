// internal/console/stream.go
package console

import (
	"io"
)

const streamBuffer = 256

// Stream turns a blocking reader (stdin, a pipe) into a Port.
// A goroutine pumps bytes into a buffered channel; TryReadByte never blocks.
// LF is delivered as CR so line-buffered terminals end a line on Enter.
type Stream struct {
	in  chan byte
	out io.Writer
}

// NewStream starts pumping r. The pump exits when r returns an error.
func NewStream(r io.Reader, w io.Writer) *Stream {
	s := &Stream{
		in:  make(chan byte, streamBuffer),
		out: w,
	}
	go s.pump(r)
	return s
}

func (s *Stream) pump(r io.Reader) {
	defer close(s.in)

	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			if b == '\n' {
				b = '\r'
			}
			s.in <- b
		}
		if err != nil {
			return
		}
	}
}

func (s *Stream) TryReadByte() (byte, bool) {
	select {
	case b, ok := <-s.in:
		return b, ok
	default:
		return 0, false
	}
}

func (s *Stream) Write(p []byte) (int, error) {
	return s.out.Write(p)
}
