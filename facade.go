package xlogs

// Facade helpers over the process-wide Registry.
// Usage: xlogs.MustGet("billing").Warn("retrying %s", id)

func Get(name string) (*Logger, error) { return defaultRegistry.Get(name) }
func MustGet(name string) *Logger      { return defaultRegistry.MustGet(name) }
func AsObservable() *Stream            { return defaultRegistry.AsObservable() }
