package dbc

// ValueTable is a named, reusable value→label mapping registered by a
// VAL_TABLE_ statement. Signals and environment variables carry their own
// inline ValueDescriptions; a ValueTable is the separately-named, shared
// form referenced by SignalTypeRef-style lookups in some DBC dialects and
// always re-emitted verbatim regardless of whether any signal still points
// at it.
type ValueTable struct {
	Name        string
	Descriptions ValueDescriptions
}
