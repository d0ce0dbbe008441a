package dbc

// EnvironmentVariable is a network-wide named value independent of any
// message payload, declared by an EV_ statement (and optionally refined by
// an ENVVAR_DATA_ statement for the Data type).
type EnvironmentVariable struct {
	Name         string
	Type         EnvVarType
	Minimum      float64
	Maximum      float64
	Unit         string
	InitialValue float64
	// NumericID is the small integer DBC assigns each env var for legacy
	// tooling; it carries no semantic weight in this library.
	NumericID uint32
	AccessType EnvVarAccessType
	// AccessNodes is the set of node names granted AccessType rights, in
	// declaration order.
	AccessNodes []string

	ValueDescriptions ValueDescriptions

	// DataSize is set by ENVVAR_DATA_ for Type == EnvVarData; it is the byte
	// length of the variable's opaque payload.
	DataSize uint32

	Comment         string
	AttributeValues map[string]*AttributeValue
}

// NewEnvironmentVariable builds an EnvironmentVariable with initialized
// collections, ready for a caller to fill in via the exported fields.
func NewEnvironmentVariable(name string) *EnvironmentVariable {
	return &EnvironmentVariable{
		Name:            name,
		AttributeValues: map[string]*AttributeValue{},
	}
}
