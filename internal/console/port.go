// internal/console/port.go
package console

import (
	"io"
	"time"
)

// Port abstracts the byte-oriented console the device talks through.
// TryReadByte never blocks longer than the underlying transport's poll window;
// ok=false means nothing is available right now.
type Port interface {
	TryReadByte() (b byte, ok bool)
	io.Writer
}

// Clock is the time source used for polling and timeout accounting.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the wall clock. time.Now carries a monotonic reading,
// so elapsed-time math is immune to clock jumps.
type SystemClock struct{}

func (SystemClock) Now() time.Time        { return time.Now() }
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// Print writes s to the console. Console output is best-effort.
func Print(p Port, s string) {
	_, _ = io.WriteString(p, s)
}

// Println writes s followed by CRLF.
func Println(p Port, s string) {
	Print(p, s+"\r\n")
}
