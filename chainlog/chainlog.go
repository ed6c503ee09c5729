// Package chainlog provides a levlog destination that forwards messages to
// a named mx-chain-logger-go logger, so levlog output joins the log streams,
// level settings and observers configured there.
package chainlog

import (
	logger "github.com/multiversx/mx-chain-logger-go"
)

// IdentityPrefix is prepended to the logger name to form the identity of a
// chainlog destination.
const IdentityPrefix = "levlog.chain."

type leveledLogger interface {
	Debug(message string, args ...interface{})
	Info(message string, args ...interface{})
	Warn(message string, args ...interface{})
	Error(message string, args ...interface{})
}

// Destination writes to an mx-chain logger. FATAL maps to Error as the
// chain logger has no more severe level.
type Destination struct {
	id  string
	log leveledLogger
}

// New returns a destination writing to the chain logger called name,
// creating that logger if needed.
func New(name string) *Destination {
	return &Destination{
		id:  IdentityPrefix + name,
		log: logger.GetOrCreate(name),
	}
}

func (d *Destination) Identity() string {
	return d.id
}

func (d *Destination) Emit(level, message string) {
	switch level {
	case "DEBUG":
		d.log.Debug(message)
	case "WARN":
		d.log.Warn(message)
	case "ERROR", "FATAL":
		d.log.Error(message)
	default:
		d.log.Info(message)
	}
}
