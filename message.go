package dbc

// extendedFrameFlag is the high bit of a BO_ message id, marking it as an
// extended (29-bit) CAN identifier rather than a standard (11-bit) one.
const extendedFrameFlag uint32 = 0x8000_0000

// Message is a CAN frame description declared by a BO_ statement: its
// identifier, payload size, and the Signals packed into that payload.
type Message struct {
	// ID carries the extended-frame-flag (bit 31) alongside the 11- or
	// 29-bit CAN identifier, matching the wire representation BO_ stores it
	// in; use IsExtended/CANID to decompose it.
	ID           uint32
	Name         string
	Size         uint8
	Transmitter  string
	Signals      *OrderedMap[string, *Signal]
	// AdditionalTransmitters is the BO_TX_BU_ set of node names, beyond
	// Transmitter, that may also send this message.
	AdditionalTransmitters []string
	SignalGroups           *OrderedMap[string, *SignalGroup]
	Comment                string
	AttributeValues        map[string]*AttributeValue
}

// NewMessage builds a Message with initialized collections.
func NewMessage(id uint32, name string, size uint8) *Message {
	return &Message{
		ID:              id,
		Name:            name,
		Size:            size,
		Signals:         NewOrderedMap[string, *Signal](),
		SignalGroups:    NewOrderedMap[string, *SignalGroup](),
		AttributeValues: map[string]*AttributeValue{},
	}
}

// IsExtended reports whether this message uses a 29-bit extended CAN
// identifier (ID's high bit set).
func (m *Message) IsExtended() bool {
	return m.ID&extendedFrameFlag != 0
}

// CANID returns the wire CAN identifier with the extended-frame-flag bit
// stripped off.
func (m *Message) CANID() uint32 {
	return m.ID &^ extendedFrameFlag
}

// Signal looks up a signal by name.
func (m *Message) Signal(name string) (*Signal, bool) {
	return m.Signals.Get(name)
}

// AddSignal registers a signal, appending it to Signals in insertion order
// (the order SG_ lines are re-emitted in, per spec.md §4.3).
func (m *Message) AddSignal(s *Signal) {
	m.Signals.Set(s.Name, s)
}

// Decode decodes every signal in the message against payload, returning a
// map of signal name to raw value. Signals whose layout reaches beyond
// len(payload) still decode (missing bits read as 0); see Signal.Decode.
func (m *Message) Decode(payload []byte) map[string]uint64 {
	out := make(map[string]uint64, m.Signals.Len())
	for _, s := range m.Signals.Values() {
		out[s.Name] = s.Decode(payload)
	}
	return out
}
