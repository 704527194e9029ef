package configs

// Configurable is implemented by types whose value may come from config files.
// ConfigExpr names the field in the cue files.
type Configurable interface {
	ConfigExpr() string
}

// Get returns the first value of T found under T's ConfigExpr.
func Get[T Configurable](loader Loader) T {
	var zero T
	return First[T](loader, zero.ConfigExpr())
}
