package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeString denotes free-form or enumerated parameters.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single value exposed by a simulation.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the current set of parameters exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParametersProvider is implemented by sims that can describe their settings.
type ParametersProvider interface {
	Parameters() ParameterSnapshot
}

// ParameterControl describes an adjustable integer parameter and its bounds.
// Step is the distance between neighbouring valid values.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step int64

	Min    int64
	Max    int64
	HasMin bool
	HasMax bool
}

// ParameterControlsProvider exposes the list of adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter allows callers to update integer parameters. It reports
// false when the key is unknown or the value was rejected.
type IntParameterSetter interface {
	SetIntParameter(key string, value int64) bool
}
