package pillarbar

// Options configures enumeration behavior.
type Options struct {
	// DefaultGridlineWidth is emitted for the category axis gridline stroke
	// width when the state carries no value.
	DefaultGridlineWidth float64
}

// DefaultOptions returns default enumeration options.
func DefaultOptions() Options {
	return Options{
		DefaultGridlineWidth: 1,
	}
}
