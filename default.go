package xlogs

// defaultRegistry is the process-wide registry. It is created once at package
// initialization and lives for the rest of the process; there is no teardown.
var defaultRegistry = NewRegistry()

// Default returns the process-wide Registry used by the package-level
// helpers and by NewLogger.
func Default() *Registry { return defaultRegistry }
