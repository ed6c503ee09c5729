package levlog

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// fallback receives the dispatcher's own advisory lines. It is not a
// Destination and cannot be configured; it is a variable only so tests can
// capture it.
var fallback io.Writer = os.Stdout

// Dispatcher routes messages to the destinations registered for their
// severity. Messages below the threshold are dropped. A single lock guards
// both the registry and the threshold, so a Dispatcher is safe for
// concurrent use.
type Dispatcher struct {
	mu        sync.RWMutex
	threshold Severity
	registry  map[Severity][]Destination
}

// New returns a dispatcher with no destinations and a threshold of
// ErrorLevel.
func New() *Dispatcher {
	return &Dispatcher{
		threshold: ErrorLevel,
		registry:  make(map[Severity][]Destination),
	}
}

// SetThreshold sets the minimum severity for dispatch.
func (d *Dispatcher) SetThreshold(s Severity) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.threshold = s
}

// SetThresholdName sets the threshold from a severity display name, e.g.
// "warn". The threshold is unchanged if the name is not recognised.
func (d *Dispatcher) SetThresholdName(name string) error {
	s, err := ParseSeverity(name)
	if err != nil {
		return err
	}
	d.SetThreshold(s)
	return nil
}

// Threshold returns the current minimum severity.
func (d *Dispatcher) Threshold() Severity {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.threshold
}

// Register appends dst to the destinations for s, unless a destination
// with the same identity is already registered there.
func (d *Dispatcher) Register(s Severity, dst Destination) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.register(s, dst)
}

func (d *Dispatcher) register(s Severity, dst Destination) {
	if indexOf(d.registry[s], dst.Identity()) >= 0 {
		return
	}
	d.registry[s] = append(d.registry[s], dst)
}

// Unregister removes the destination with dst's identity from s.
// Nothing happens if no such destination is registered.
func (d *Dispatcher) Unregister(s Severity, dst Destination) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.unregister(s, dst)
}

func (d *Dispatcher) unregister(s Severity, dst Destination) {
	list, ok := d.registry[s]
	if !ok {
		return
	}
	i := indexOf(list, dst.Identity())
	if i < 0 {
		return
	}
	// copy so that snapshots taken by Write are never modified
	n := make([]Destination, 0, len(list)-1)
	n = append(n, list[:i]...)
	d.registry[s] = append(n, list[i+1:]...)
}

func indexOf(list []Destination, id string) int {
	for i, dst := range list {
		if dst.Identity() == id {
			return i
		}
	}
	return -1
}

// RegisterAll registers dst for every severity.
func (d *Dispatcher) RegisterAll(dst Destination) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, s := range Severities {
		d.register(s, dst)
	}
}

// UnregisterAll removes dst from every severity.
func (d *Dispatcher) UnregisterAll(dst Destination) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, s := range Severities {
		d.unregister(s, dst)
	}
}

// RegisterForErrorLevels registers dst for ErrorLevel and FatalLevel only.
func (d *Dispatcher) RegisterForErrorLevels(dst Destination) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.register(ErrorLevel, dst)
	d.register(FatalLevel, dst)
}

// HasDestinations reports whether any destination is registered for s.
func (d *Dispatcher) HasDestinations(s Severity) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.registry[s]) > 0
}

// Destinations returns the destinations registered for s, in dispatch order.
func (d *Dispatcher) Destinations(s Severity) []Destination {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]Destination(nil), d.registry[s]...)
}

// enabled returns the destinations a message of severity s should go to.
// ok is false when s is below the threshold.
func (d *Dispatcher) enabled(s Severity) (list []Destination, ok bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if s < d.threshold {
		return nil, false
	}
	return d.registry[s], true
}

// Write sends message to every destination registered for s, in
// registration order. Nothing happens if s is below the threshold. If no
// destination is registered for s, a single advisory line is printed to
// standard output instead.
// Destinations are called without the dispatcher lock held, so they may
// register or unregister destinations themselves.
func (d *Dispatcher) Write(s Severity, message string) {
	list, ok := d.enabled(s)
	if !ok {
		return
	}
	d.dispatch(s, list, message)
}

func (d *Dispatcher) dispatch(s Severity, list []Destination, message string) {
	if len(list) == 0 {
		fmt.Fprintf(fallback, "No destination registered for %s\n", s)
		return
	}
	level := s.String()
	for _, dst := range list {
		emit(dst, level, message)
	}
}

// emit isolates a misbehaving destination from the rest of the fan-out.
func emit(dst Destination, level, message string) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(fallback, "Destination %s panicked: %v\n", dst.Identity(), r)
		}
	}()
	dst.Emit(level, message)
}

func (d *Dispatcher) writef(s Severity, format string, args ...interface{}) {
	list, ok := d.enabled(s)
	if !ok {
		return
	}
	d.dispatch(s, list, fmt.Sprintf(format, args...))
}

// Fatal writes message with severity FatalLevel. Unlike the standard log
// package, it does not exit.
func (d *Dispatcher) Fatal(message string) {
	d.Write(FatalLevel, message)
}

// Fatalf writes with severity FatalLevel.
// Arguments are handled in the same manner as fmt.Printf.
func (d *Dispatcher) Fatalf(format string, args ...interface{}) {
	d.writef(FatalLevel, format, args...)
}

// Error writes message with severity ErrorLevel.
func (d *Dispatcher) Error(message string) {
	d.Write(ErrorLevel, message)
}

// Errorf writes with severity ErrorLevel.
// Arguments are handled in the same manner as fmt.Printf.
func (d *Dispatcher) Errorf(format string, args ...interface{}) {
	d.writef(ErrorLevel, format, args...)
}

// Warn writes message with severity WarnLevel.
func (d *Dispatcher) Warn(message string) {
	d.Write(WarnLevel, message)
}

// Warnf writes with severity WarnLevel.
// Arguments are handled in the same manner as fmt.Printf.
func (d *Dispatcher) Warnf(format string, args ...interface{}) {
	d.writef(WarnLevel, format, args...)
}

// Debug writes message with severity DebugLevel.
func (d *Dispatcher) Debug(message string) {
	d.Write(DebugLevel, message)
}

// Debugf writes with severity DebugLevel.
// Arguments are handled in the same manner as fmt.Printf.
func (d *Dispatcher) Debugf(format string, args ...interface{}) {
	d.writef(DebugLevel, format, args...)
}

// Info writes message with severity InfoLevel.
func (d *Dispatcher) Info(message string) {
	d.Write(InfoLevel, message)
}

// Infof writes with severity InfoLevel.
// Arguments are handled in the same manner as fmt.Printf.
func (d *Dispatcher) Infof(format string, args ...interface{}) {
	d.writef(InfoLevel, format, args...)
}
