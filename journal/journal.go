// Package journal provides a levlog destination that writes to the systemd
// journal.
package journal

import (
	"sync"

	sdjournal "github.com/coreos/go-systemd/v22/journal"
	"github.com/pkg/errors"
)

// IdentityPrefix is prepended to the subsystem to form the identity of a
// journal destination.
const IdentityPrefix = "levlog.system."

var priorities = map[string]sdjournal.Priority{
	"INFO":  sdjournal.PriInfo,
	"DEBUG": sdjournal.PriDebug,
	"WARN":  sdjournal.PriNotice,
	"ERROR": sdjournal.PriErr,
	"FATAL": sdjournal.PriCrit,
}

// Priority translates a severity display name to a journal priority.
// Unknown names map to PriNotice.
func Priority(level string) sdjournal.Priority {
	if p, ok := priorities[level]; ok {
		return p
	}
	return sdjournal.PriNotice
}

// Destination sends messages to the systemd journal, tagged with a
// subsystem and category. If the journal is unavailable messages are
// dropped; the most recent failure is available from Err.
type Destination struct {
	id       string
	vars     map[string]string
	enabled  func() bool
	send     func(message string, p sdjournal.Priority, vars map[string]string) error
	mu       sync.Mutex
	lastErr  error
	failures int
}

// New returns a journal destination for subsystem, with identity
// "levlog.system.<subsystem>".
func New(subsystem, category string) *Destination {
	return &Destination{
		id: IdentityPrefix + subsystem,
		vars: map[string]string{
			"SYSLOG_IDENTIFIER": subsystem,
			"CATEGORY":          category,
		},
		enabled: sdjournal.Enabled,
		send:    sdjournal.Send,
	}
}

func (d *Destination) Identity() string {
	return d.id
}

func (d *Destination) Emit(level, message string) {
	if !d.enabled() {
		d.fail(errors.New("journal not available"))
		return
	}
	if err := d.send(message, Priority(level), d.vars); err != nil {
		d.fail(errors.Wrapf(err, "send %s message", level))
	}
}

func (d *Destination) fail(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lastErr = err
	d.failures++
}

// Err returns the most recent delivery failure, or nil.
func (d *Destination) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastErr
}

// Failures reports how many messages could not be delivered.
func (d *Destination) Failures() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.failures
}
