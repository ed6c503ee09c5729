package levlog

import (
	"bytes"
	"log"
)

// CaptureStandardLog hooks into the standard go log package and redirects
// its output to d at severity s. Standard log flags are cleared, as the
// destinations add their own timestamps.
func CaptureStandardLog(d *Dispatcher, s Severity) {
	log.SetFlags(0)
	log.SetOutput(bridge{d: d, severity: s})
}

type bridge struct {
	d        *Dispatcher
	severity Severity
}

func (b bridge) Write(p []byte) (n int, err error) {
	msg := string(bytes.TrimRight(p, "\r\n"))
	b.d.Write(b.severity, msg)
	return len(p), nil
}
