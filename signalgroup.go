package dbc

// SignalGroup records that a set of signals within a message form a
// functional group, per a SIG_GROUP_ statement. Grouping has no effect on
// the bit codec; it is purely descriptive metadata some tooling uses for
// display layout.
type SignalGroup struct {
	MessageID   uint32
	Name        string
	RepetitionCount uint32
	SignalNames []string
}
