// internal/console/readline.go
package console

import (
	"context"
	"time"
)

// MaskChar is echoed in place of every byte when masking is enabled.
const MaskChar = '*'

const (
	drainPause = 5 * time.Millisecond
	pollPause  = 10 * time.Millisecond
)

// ReadLine prompts, then reads a line into dst one byte at a time.
//
// Reading ends when dst is full, a CR is received, or timeout elapses
// (timeout 0 waits forever; ctx cancellation behaves like a timeout).
// Whatever was entered so far is kept. A terminating CR is not stored.
// dst[n] is set to NUL when there is room; a full dst is left unterminated.
// A CRLF is always printed before returning.
//
// ok is false only when dst has no capacity, in which case no IO happens.
func ReadLine(ctx context.Context, p Port, clk Clock, dst []byte, prompt string, timeout time.Duration, mask bool) (n int, ok bool) {
	if len(dst) <= 0 {
		return 0, false
	}

	begin := clk.Now()

	// Drop stale keystrokes before showing the prompt.
	for {
		if _, ok := p.TryReadByte(); !ok {
			break
		}
		clk.Sleep(drainPause)
	}

	Print(p, prompt)

	for n < len(dst) {
		c, got := waitByte(ctx, p, clk, begin, timeout)
		if !got {
			break
		}

		dst[n] = c
		n++

		if mask {
			_, _ = p.Write([]byte{MaskChar})
		} else {
			_, _ = p.Write([]byte{c})
		}

		if c == '\r' {
			break
		}
		if expired(clk, begin, timeout) {
			break
		}
	}

	if n > 0 && dst[n-1] == '\r' {
		n--
	}

	if n < len(dst) {
		dst[n] = 0
	}

	Println(p, "")
	return n, true
}

// waitByte polls until a byte arrives, the timeout elapses, or ctx ends.
func waitByte(ctx context.Context, p Port, clk Clock, begin time.Time, timeout time.Duration) (byte, bool) {
	for {
		if c, ok := p.TryReadByte(); ok {
			return c, true
		}
		if ctx.Err() != nil {
			return 0, false
		}
		clk.Sleep(pollPause)
		if expired(clk, begin, timeout) {
			return 0, false
		}
	}
}

func expired(clk Clock, begin time.Time, timeout time.Duration) bool {
	return timeout > 0 && clk.Now().Sub(begin) >= timeout
}
