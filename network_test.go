package dbc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetwork_MessagesSortedByID(t *testing.T) {
	net := NewNetwork()
	net.AddMessage(NewMessage(300, "Third", 8))
	net.AddMessage(NewMessage(100, "First", 8))
	net.AddMessage(NewMessage(200, "Second", 8))

	msgs := net.MessagesSortedByID()
	assert.Len(t, msgs, 3)
	assert.Equal(t, []uint32{100, 200, 300}, []uint32{msgs[0].ID, msgs[1].ID, msgs[2].ID})
}

func TestNetwork_LookupSignal(t *testing.T) {
	net := NewNetwork()
	msg := NewMessage(100, "Msg", 8)
	msg.AddSignal(NewSignal("Speed"))
	net.AddMessage(msg)

	sig, ok := net.LookupSignal(100, "Speed")
	assert.True(t, ok)
	assert.Equal(t, "Speed", sig.Name)

	_, ok = net.LookupSignal(100, "Missing")
	assert.False(t, ok)

	_, ok = net.LookupSignal(999, "Speed")
	assert.False(t, ok)
}

func TestMessage_IsExtended_CANID(t *testing.T) {
	msg := NewMessage(extendedFrameFlag|0x1FFFFFFF, "Ext", 8)
	assert.True(t, msg.IsExtended())
	assert.Equal(t, uint32(0x1FFFFFFF), msg.CANID())

	std := NewMessage(100, "Std", 8)
	assert.False(t, std.IsExtended())
	assert.Equal(t, uint32(100), std.CANID())
}
