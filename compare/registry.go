package compare

// ============================================================================
// FORMATTER REGISTRY — Capability-based dispatch
// ============================================================================
// Holds all formatter variants in registration order. Selection filters
// to those whose CanFormat accepts the input, then picks the highest
// Priority; exact ties go to the first-registered variant, so selection
// is stable and deterministic.
//
// The default registry is process-wide, populated once at init and never
// mutated afterwards — safe to share across concurrent callers without
// locking.
// ============================================================================

// Registry selects the best formatter for a tool name and result shape.
type Registry struct {
	formatters []Formatter
}

// NewRegistry builds a registry. With no arguments it registers the
// built-in formatter set, generic catch-all last.
func NewRegistry(formatters ...Formatter) *Registry {
	if len(formatters) == 0 {
		formatters = []Formatter{
			&LoadFormatter{},
			&CVUFormatter{},
			&ElectricalFormatter{},
			&FlowFormatter{},
			&GenericFormatter{},
		}
	}
	return &Registry{formatters: formatters}
}

// DefaultRegistry is the shared registry used by NewOrchestrator unless
// a caller injects its own.
var DefaultRegistry = NewRegistry()

// Select returns the accepting formatter with the highest priority.
// It always returns a formatter: the generic catch-all accepts any
// tool name and shape.
func (r *Registry) Select(toolName string, sample map[string]any) Formatter {
	var best Formatter
	bestPriority := -1
	for _, f := range r.formatters {
		if !f.CanFormat(toolName, sample) {
			continue
		}
		// strict > keeps the first-registered winner on exact ties
		if f.Priority() > bestPriority {
			best = f
			bestPriority = f.Priority()
		}
	}
	if best == nil {
		// Unreachable with the built-in set, but a custom registry may
		// lack a catch-all.
		return &GenericFormatter{}
	}
	return best
}

// Formatters exposes the registration list, mostly for tests.
func (r *Registry) Formatters() []Formatter {
	return r.formatters
}
