package reconcile

// Option is a functional option for configuring a Reconciler.
type Option func(*Reconciler)

// WithLabels sets the display labels for the source and target datasets.
// Labels appear in presence classifications, report headers, and sheet
// names. Empty labels are ignored.
func WithLabels(source, target string) Option {
	return func(r *Reconciler) {
		if source != "" {
			r.sourceLabel = source
		}
		if target != "" {
			r.targetLabel = target
		}
	}
}

// WithSeparator sets the string joining dimension values into unified keys.
func WithSeparator(sep string) Option {
	return func(r *Reconciler) {
		if sep != "" {
			r.separator = sep
		}
	}
}

// WithMode selects full reconciliation or structure-only comparison.
func WithMode(mode Mode) Option {
	return func(r *Reconciler) {
		r.mode = mode
	}
}
