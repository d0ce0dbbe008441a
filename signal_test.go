package dbc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignal_Decode(t *testing.T) {
	var testCases = []struct {
		name      string
		signal    *Signal
		payload   []byte
		expectRaw uint64
	}{
		{
			name: "ok, little-endian unsigned 8 bit",
			signal: &Signal{
				StartBit: 0, BitSize: 8, ByteOrder: LittleEndian, ValueType: Unsigned,
			},
			payload:   []byte{0xAB, 0x00},
			expectRaw: 0xAB,
		},
		{
			name: "ok, little-endian signed 4 bit, negative",
			signal: &Signal{
				StartBit: 0, BitSize: 4, ByteOrder: LittleEndian, ValueType: Signed,
			},
			payload:   []byte{0x0F},
			expectRaw: 0xFFFFFFFFFFFFFFFF,
		},
		{
			name: "ok, big-endian unsigned 16 bit",
			signal: &Signal{
				StartBit: 7, BitSize: 16, ByteOrder: BigEndian, ValueType: Unsigned,
			},
			payload:   []byte{0x12, 0x34, 0x00},
			expectRaw: 0x1234,
		},
		{
			name: "ok, big-endian unsigned 12 bit",
			signal: &Signal{
				StartBit: 7, BitSize: 12, ByteOrder: BigEndian, ValueType: Unsigned,
			},
			payload:   []byte{0x12, 0x30},
			expectRaw: 0x123,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectRaw, tc.signal.Decode(tc.payload))
		})
	}
}

func TestSignal_Encode(t *testing.T) {
	t.Run("ok, little-endian unsigned 8 bit", func(t *testing.T) {
		s := &Signal{StartBit: 0, BitSize: 8, ByteOrder: LittleEndian, ValueType: Unsigned}
		payload := []byte{0x00, 0x00}
		status := s.Encode(payload, 0x55)

		assert.True(t, status.IsOK())
		assert.Equal(t, []byte{0x55, 0x00}, payload)
	})

	t.Run("ok, big-endian unsigned 16 bit", func(t *testing.T) {
		s := &Signal{StartBit: 7, BitSize: 16, ByteOrder: BigEndian, ValueType: Unsigned}
		payload := []byte{0x00, 0x00, 0x00}
		status := s.Encode(payload, 0xABCD)

		assert.True(t, status.IsOK())
		assert.Equal(t, []byte{0xAB, 0xCD, 0x00}, payload)
	})

	t.Run("ok, only claimed bytes change", func(t *testing.T) {
		s := &Signal{StartBit: 8, BitSize: 8, ByteOrder: LittleEndian, ValueType: Unsigned}
		payload := []byte{0xFF, 0x00, 0xFF}
		status := s.Encode(payload, 0x42)

		assert.True(t, status.IsOK())
		assert.Equal(t, []byte{0xFF, 0x42, 0xFF}, payload)
	})

	t.Run("warn, raw value overflows bit size", func(t *testing.T) {
		s := &Signal{StartBit: 0, BitSize: 4, ByteOrder: LittleEndian, ValueType: Unsigned}
		payload := []byte{0x00}
		status := s.Encode(payload, 0xFF)

		assert.True(t, status.IsWarning())
		assert.Equal(t, KindWarnBitOverflow, status.Kind())
	})
}

func TestSignal_RawToPhysical_PhysicalToRaw(t *testing.T) {
	s := &Signal{Factor: 0.1, Offset: -40}

	physical := s.RawToPhysical(500)
	assert.InDelta(t, 10.0, physical, 1e-9)

	raw, ok := s.PhysicalToRaw(physical)
	assert.True(t, ok)
	assert.InDelta(t, 500.0, raw, 1e-9)
}

func TestSignal_PhysicalToRaw_ZeroFactor(t *testing.T) {
	s := &Signal{Factor: 0}
	_, ok := s.PhysicalToRaw(10)
	assert.False(t, ok)
}

func TestSignal_DecodeEncode_RoundTrip(t *testing.T) {
	s := NewSignal("RPM")
	s.StartBit = 8
	s.BitSize = 12
	s.ByteOrder = LittleEndian
	s.ValueType = Unsigned

	payload := make([]byte, 4)
	status := s.Encode(payload, 0x0ABC)
	assert.True(t, status.IsOK())
	assert.Equal(t, uint64(0x0ABC), s.Decode(payload))
}

func TestSignal_DecodeEncode_RoundTrip_SignedNegative(t *testing.T) {
	s := &Signal{StartBit: 0, BitSize: 4, ByteOrder: LittleEndian, ValueType: Signed}
	payload := []byte{0x00}

	raw := s.Decode([]byte{0x0F})
	assert.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), raw)

	status := s.Encode(payload, raw)
	assert.True(t, status.IsOK())
	assert.Equal(t, raw, s.Decode(payload))
}

func TestMultiplexerKind_String(t *testing.T) {
	assert.Equal(t, "Switch", MultiplexerIsSwitch.String())
	assert.Equal(t, "Multiplexed", MultiplexerIsMultiplexed.String())
	assert.Equal(t, "MultiplexedSwitch", MultiplexerIsMultiplexedSwitch.String())
	assert.Equal(t, "None", MultiplexerNone.String())
}
