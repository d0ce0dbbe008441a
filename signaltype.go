package dbc

// SignalType is a named, reusable bit-layout/physical-range template
// registered by a SGTYPE_ definition statement (`SGTYPE_ name : size@order...`).
// A Signal may reference one by name via SignalTypeRef, set by the
// alternate `SGTYPE_ <msgId> <signalName> : <typeName> ;` form.
type SignalType struct {
	Name              string
	BitSize           uint16
	ByteOrder         ByteOrder
	ValueType         ValueType
	Factor            float64
	Offset            float64
	Minimum           float64
	Maximum           float64
	Unit              string
	DefaultValue      float64
	ValueTableName    string
}
