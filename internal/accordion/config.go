package accordion

// State is the enumerated visibility state persisted per container.
type State int

const (
	// StateCollapsed hides the container's content.
	StateCollapsed State = iota
	// StateVisible shows the container's content.
	StateVisible
)

// String returns the canonical persisted form of the state.
func (s State) String() string {
	if s == StateVisible {
		return "visible"
	}
	return "collapsed"
}

// Marker classes applied to discovered nodes for external styling and
// observation.
const (
	// ClassContainer is always present on a bound container.
	ClassContainer = "is-accordion"
	// ClassCollapsed is present on a container iff its state is collapsed.
	// It is toggled on every transition.
	ClassCollapsed = "is-accordion--collapsed"
	// ClassTrigger is always present on a tagged trigger.
	ClassTrigger = "is-accordion-trigger"
	// ClassContent is always present on a tagged content element.
	ClassContent = "is-accordion-content"
)

// Config is the immutable configuration for one accordion feature: the
// structural marker names, the enumerated states, and which state key applies
// by default. Construct it once and pass it by value.
type Config struct {
	// ContainerMarker identifies an accordion root.
	ContainerMarker string
	// TriggerMarker identifies the activation sub-element.
	TriggerMarker string
	// ContentMarker identifies the collapsible sub-element.
	ContentMarker string
	// StateKey is the dataset key under which state is persisted on the
	// container node.
	StateKey string
	// States enumerates the recognized state keys.
	States map[string]State
	// DefaultKey selects the state applied when a container has none
	// persisted. It must name an entry of States; resolving an unknown key
	// is a fatal configuration error.
	DefaultKey string
}

// DefaultConfig returns the stock accordion configuration: markers
// "accordion"/"accordion-trigger"/"accordion-content", state persisted under
// "accordion-state", and a collapsed default.
func DefaultConfig() Config {
	return Config{
		ContainerMarker: "accordion",
		TriggerMarker:   "accordion-trigger",
		ContentMarker:   "accordion-content",
		StateKey:        "accordion-state",
		States: map[string]State{
			"visible":   StateVisible,
			"collapsed": StateCollapsed,
		},
		DefaultKey: "collapsed",
	}
}
