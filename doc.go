// Package levlog is a leveled logging facade. Messages carry one of five
// severities and are dispatched to every destination registered for that
// severity, provided the severity is not below the dispatcher's threshold.
// Destinations are registered per severity and identified by a string
// identity, so registering the same identity twice has no effect. The
// package-level functions use a process-wide default dispatcher whose
// threshold starts at ErrorLevel; independent dispatchers can be created
// with New.
//
// Typical setup:
//  levlog.RegisterAll(levlog.NewConsoleDestination())
//  levlog.SetThreshold(levlog.WarnLevel)
//  levlog.Warn("cache miss rate above 50%")
package levlog
