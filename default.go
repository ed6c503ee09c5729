package levlog

var std = New()

// Default returns the process-wide dispatcher used by the package-level
// functions.
func Default() *Dispatcher {
	return std
}

// SetThreshold sets the minimum severity of the default dispatcher.
// The initial threshold is ErrorLevel.
func SetThreshold(s Severity) {
	std.SetThreshold(s)
}

// SetThresholdName sets the default dispatcher's threshold by name.
func SetThresholdName(name string) error {
	return std.SetThresholdName(name)
}

// Register adds dst to severity s of the default dispatcher.
func Register(s Severity, dst Destination) {
	std.Register(s, dst)
}

// Unregister removes dst from severity s of the default dispatcher.
func Unregister(s Severity, dst Destination) {
	std.Unregister(s, dst)
}

// RegisterAll adds dst to every severity of the default dispatcher.
func RegisterAll(dst Destination) {
	std.RegisterAll(dst)
}

// UnregisterAll removes dst from every severity of the default dispatcher.
func UnregisterAll(dst Destination) {
	std.UnregisterAll(dst)
}

// RegisterForErrorLevels adds dst to the ErrorLevel and FatalLevel
// severities of the default dispatcher.
func RegisterForErrorLevels(dst Destination) {
	std.RegisterForErrorLevels(dst)
}

// HasDestinations reports whether the default dispatcher has a destination
// for s.
func HasDestinations(s Severity) bool {
	return std.HasDestinations(s)
}

// Write dispatches message at severity s through the default dispatcher.
func Write(s Severity, message string) {
	std.Write(s, message)
}

// The severity helpers below write through the default dispatcher.

func Fatal(message string) { std.Fatal(message) }

func Error(message string) { std.Error(message) }

func Warn(message string) { std.Warn(message) }

func Debug(message string) { std.Debug(message) }

func Info(message string) { std.Info(message) }

func Fatalf(format string, args ...interface{}) { std.Fatalf(format, args...) }

func Errorf(format string, args ...interface{}) { std.Errorf(format, args...) }

func Warnf(format string, args ...interface{}) { std.Warnf(format, args...) }

func Debugf(format string, args ...interface{}) { std.Debugf(format, args...) }

func Infof(format string, args ...interface{}) { std.Infof(format, args...) }
