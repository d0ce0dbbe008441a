package dbc

import (
	"math"

	"github.com/dbcgo/dbc/internal/utils"
)

// Multiplexing describes a Signal's participation in its Message's
// multiplexing scheme. See MultiplexerKind for the shape this replaces.
type Multiplexing struct {
	Kind MultiplexerKind
	// SwitchValue is the value the outer multiplexor switch must hold for
	// this signal to be active. Meaningful only for MultiplexerIsMultiplexed
	// and MultiplexerIsMultiplexedSwitch.
	SwitchValue uint32
}

// ValueDescription maps one raw signal/env-var value to a human label, the
// payload of a VAL_ statement entry.
type ValueDescription struct {
	Value uint64
	Label string
}

// ValueDescriptions is an ordered list of ValueDescription entries, in the
// order they appeared in (or are to be emitted in) the VAL_ statement.
type ValueDescriptions []ValueDescription

// Label returns the label for a raw value, if one is defined.
func (vds ValueDescriptions) Label(raw uint64) (string, bool) {
	for _, vd := range vds {
		if vd.Value == raw {
			return vd.Label, true
		}
	}
	return "", false
}

// ExtendedMultiplexor attaches a set of switch-value ranges to a signal,
// registered by a SIG_MUL_VAL_ statement. A signal may be active for several
// disjoint ranges of its switch signal's value instead of a single value.
type ExtendedMultiplexor struct {
	SwitchSignalName string
	Ranges           []ValueRange
}

// ValueRange is an inclusive [Min, Max] range of raw switch values.
type ValueRange struct {
	Min uint32
	Max uint32
}

// Contains reports whether v falls within any of the multiplexor's ranges.
func (m ExtendedMultiplexor) Contains(v uint32) bool {
	for _, r := range m.Ranges {
		if v >= r.Min && v <= r.Max {
			return true
		}
	}
	return false
}

// Signal is a named bitfield within a Message's payload, with an affine
// mapping from its raw integer encoding to a physical floating-point value.
type Signal struct {
	Name              string
	Multiplexer       Multiplexing
	StartBit          uint16
	BitSize           uint16
	ByteOrder         ByteOrder
	ValueType         ValueType
	Factor            float64
	Offset            float64
	Minimum           float64
	Maximum           float64
	Unit              string
	Receivers         []string
	ExtendedValueType ExtendedValueType
	ValueDescriptions ValueDescriptions
	SignalTypeRef     string
	Comment           string
	AttributeValues   map[string]*AttributeValue

	// ExtendedMultiplexors maps a switch-signal name to the value ranges it
	// must satisfy for this signal to be active. It is a plain map and keeps
	// no insertion order; the serializer emits its entries sorted by switch
	// name.
	ExtendedMultiplexors map[string]*ExtendedMultiplexor
}

// NewSignal builds a Signal with MultiplexerNone and zero-valued numeric
// fields, ready for a caller to fill in via the exported fields.
func NewSignal(name string) *Signal {
	return &Signal{
		Name:                 name,
		ByteOrder:            LittleEndian,
		ValueType:            Unsigned,
		Factor:               1,
		AttributeValues:      map[string]*AttributeValue{},
		ExtendedMultiplexors: map[string]*ExtendedMultiplexor{},
	}
}

// bitPositions returns, for value bit index i (0 = least significant bit of
// the raw value, BitSize-1 = most significant), the absolute bit position
// within the payload byte array that carries it. Position = byteIndex*8 +
// bitIndexWithinByte, bit 0 of a byte being its least significant bit.
//
// LittleEndian signals lay out sequentially from StartBit. BigEndian signals
// use the Motorola "sawtooth" layout: MSB at StartBit, each following bit
// one position lower within the byte, rolling over to bit 7 of the next byte
// when the intra-byte counter underflows (see spec.md §4.1; re-derived from
// first principles per the Open Questions note in §9, not ported from the
// original source's srcBit arithmetic).
func bitPositions(order ByteOrder, startBit, bitSize uint16) []uint16 {
	positions := make([]uint16, bitSize)
	if order == LittleEndian {
		for i := uint16(0); i < bitSize; i++ {
			positions[i] = startBit + i
		}
		return positions
	}

	srcBit := int(startBit)
	for j := uint16(0); j < bitSize; j++ {
		// j walks MSB (j=0) to LSB (j=bitSize-1); value bit index is the
		// mirror of j since value bit 0 is the LSB.
		positions[bitSize-1-j] = uint16(srcBit)
		if srcBit%8 == 0 {
			srcBit += 15
		} else {
			srcBit--
		}
	}
	return positions
}

// Decode extracts this signal's raw integer value from a CAN payload.
// Bits that would fall outside payload return 0 for that bit position
// instead of erroring (see spec.md §4.1 edge cases); callers that need to
// detect truncated big-endian reads should check len(payload) against
// Message.Size themselves.
func (s *Signal) Decode(payload []byte) uint64 {
	if s.BitSize == 0 {
		return 0
	}
	positions := bitPositions(s.ByteOrder, s.StartBit, s.BitSize)

	var result uint64
	for i, pos := range positions {
		byteIdx := int(pos / 8)
		if byteIdx >= len(payload) {
			continue
		}
		bitIdx := pos % 8
		if (payload[byteIdx]>>bitIdx)&1 != 0 {
			result |= uint64(1) << uint(i)
		}
	}

	if s.ValueType == Signed && s.BitSize < 64 {
		signBit := uint64(1) << (s.BitSize - 1)
		if result&signBit != 0 {
			result |= ^uint64(0) << s.BitSize
		}
	}
	return result
}

// Encode deposits this signal's raw integer value into payload, preserving
// every bit not claimed by the signal. payload must be at least as large as
// the owning Message's declared size; Encode never allocates or resizes it.
// A BigEndian signal whose layout reaches a byte beyond len(payload) writes
// as many bits as fit and returns a Warn.BitOverflow status for the rest.
func (s *Signal) Encode(payload []byte, raw uint64) Status {
	if s.BitSize == 0 {
		return StatusOK
	}
	positions := bitPositions(s.ByteOrder, s.StartBit, s.BitSize)

	overflowed := !utils.FitsInBits(raw, s.BitSize, s.ValueType == Signed)
	for i, pos := range positions {
		byteIdx := int(pos / 8)
		if byteIdx >= len(payload) {
			overflowed = true
			continue
		}
		bitIdx := pos % 8
		if (raw>>uint(i))&1 != 0 {
			payload[byteIdx] |= 1 << bitIdx
		} else {
			payload[byteIdx] &^= 1 << bitIdx
		}
	}
	if overflowed {
		return NewStatus(KindWarnBitOverflow)
	}
	return StatusOK
}

// RawToPhysical converts a raw integer reading to its physical value:
// physical = raw*factor + offset.
func (s *Signal) RawToPhysical(raw float64) float64 {
	return raw*s.Factor + s.Offset
}

// PhysicalToRaw inverts RawToPhysical: raw = (physical-offset)/factor. ok is
// false when Factor is zero, since the inverse is then undefined.
func (s *Signal) PhysicalToRaw(physical float64) (raw float64, ok bool) {
	if s.Factor == 0 {
		return 0, false
	}
	return (physical - s.Offset) / s.Factor, true
}

// MinRaw returns the smallest representable raw value for this signal's bit
// width, signedness, and extended value type.
func (s *Signal) MinRaw() float64 {
	switch s.ExtendedValueType {
	case ValueTypeFloat:
		return -math.MaxFloat32
	case ValueTypeDouble:
		return -math.MaxFloat64
	default:
		if s.ValueType == Signed && s.BitSize > 0 {
			return -math.Pow(2, float64(s.BitSize-1))
		}
		return 0
	}
}

// MaxRaw returns the largest representable raw value for this signal's bit
// width, signedness, and extended value type.
func (s *Signal) MaxRaw() float64 {
	switch s.ExtendedValueType {
	case ValueTypeFloat:
		return math.MaxFloat32
	case ValueTypeDouble:
		return math.MaxFloat64
	default:
		if s.BitSize == 0 {
			return 0
		}
		if s.ValueType == Signed {
			return math.Pow(2, float64(s.BitSize-1)) - 1
		}
		return math.Pow(2, float64(s.BitSize)) - 1
	}
}

// PhysicalValue decodes payload and converts the result through
// RawToPhysical, additionally reinterpreting the raw bits per
// ExtendedValueType for Float/Double signals.
func (s *Signal) PhysicalValue(payload []byte) float64 {
	raw := s.Decode(payload)
	switch s.ExtendedValueType {
	case ValueTypeFloat:
		return float64(math.Float32frombits(uint32(raw)))
	case ValueTypeDouble:
		return math.Float64frombits(raw)
	default:
		var signedRaw float64
		if s.ValueType == Signed {
			signedRaw = float64(int64(raw))
		} else {
			signedRaw = float64(raw)
		}
		return s.RawToPhysical(signedRaw)
	}
}
