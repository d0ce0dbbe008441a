package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitsInBits(t *testing.T) {
	assert.True(t, FitsInBits(0xFF, 8, false))
	assert.False(t, FitsInBits(0x100, 8, false))

	assert.True(t, FitsInBits(0xFFFFFFFFFFFFFFFF, 4, true), "sign-extended -1 fits in 4 signed bits")
	assert.True(t, FitsInBits(0x7, 4, true), "max positive 4-bit signed value fits")
	assert.False(t, FitsInBits(0x8, 4, true), "0x8 is out of the signed 4-bit range as a positive value")

	assert.True(t, FitsInBits(1<<63, 64, true))
}
