package levlog

import (
	"io"
	"os"
	"sync"
)

// Destination is the interface describing a log sink.
// The dispatcher calls Emit once for each message whose severity the
// destination was registered for, passing the severity display name.
// Identity must be stable and unique per logical sink; two destinations
// with equal identities count as the same registration.
// Emit must not panic or block for long; delivery failures are the
// destination's own concern.
type Destination interface {
	Identity() string
	Emit(level, message string)
}

// NullDestination discards everything. Registering it keeps the
// bookkeeping intact while disabling output.
var NullDestination Destination = nullDestination{}

type nullDestination struct{}

func (nullDestination) Identity() string { return "levlog.null" }

func (nullDestination) Emit(level, message string) {}

// ConsoleIdentity is the identity of the destination returned by
// NewConsoleDestination.
const ConsoleIdentity = "levlog.console"

// NewConsoleDestination returns a destination writing formatted lines to
// standard output.
func NewConsoleDestination() *WriterDestination {
	return NewWriterDestination(ConsoleIdentity, os.Stdout)
}

// NewWriterDestination returns a destination with identity id that writes
// one formatted line per message to w. Writes are serialized, so w need
// not be safe for concurrent use.
func NewWriterDestination(id string, w io.Writer) *WriterDestination {
	return &WriterDestination{id: id, out: w}
}

// WriterDestination writes "<timestamp>: <LEVEL> - <message>" lines to an
// io.Writer. Write errors are counted, never returned.
type WriterDestination struct {
	mu       sync.Mutex
	id       string
	out      io.Writer
	failures int
}

func (d *WriterDestination) Identity() string {
	return d.id
}

func (d *WriterDestination) Emit(level, message string) {
	line := FormatMessage(timenow(), level, message) + "\n"
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, err := io.WriteString(d.out, line); err != nil {
		d.failures++
	}
}

// Failures reports how many writes to the underlying writer failed.
func (d *WriterDestination) Failures() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.failures
}
