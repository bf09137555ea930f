package report

// Reporter tracks the process-wide log level. At LogLevelSilent, ReportFatal
// and ReportCompileError exit without printing; internal compiler errors
// are always printed. Compilation is strictly single-threaded (the
// pipeline runs one source file per process), so unlike the ambient
// reporter this was adapted from, no synchronization is needed here.
type Reporter struct {
	// The selected log level.  Must be one of the enumerated log levels.
	logLevel int
}

// Enumeration of the possible log levels.
const (
	LogLevelSilent  = iota // Displays no informational output.
	LogLevelError          // Displays only errors.
	LogLevelVerbose        // Displays all informational messages (default).
)

// rep is the global reporter instance, defaulted to verbose so a caller
// that never runs InitReporter still sees diagnostics.
var rep = &Reporter{logLevel: LogLevelVerbose}

// InitReporter sets the global reporter's log level.
func InitReporter(logLevel int) {
	rep.logLevel = logLevel
}
