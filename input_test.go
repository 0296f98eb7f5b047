package periodic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyRepeated(t *testing.T) {
	in := NewInputState()
	in.SetKey(KeyBackspace, true)
	in.UpdateKeyRepeat(0)
	assert.True(t, in.KeyRepeated(KeyBackspace), "initial press")
	in.Reset()

	in.UpdateKeyRepeat(0.2)
	assert.False(t, in.KeyRepeated(KeyBackspace), "before the delay")

	in.UpdateKeyRepeat(0.25)
	assert.True(t, in.KeyRepeated(KeyBackspace), "crossing the delay")

	in.UpdateKeyRepeat(0.005)
	assert.False(t, in.KeyRepeated(KeyBackspace), "within one interval")

	in.UpdateKeyRepeat(0.02)
	assert.True(t, in.KeyRepeated(KeyBackspace), "next interval")

	in.SetKey(KeyBackspace, false)
	in.UpdateKeyRepeat(1)
	assert.False(t, in.KeyRepeated(KeyBackspace))
}

func TestKeyPressedOnce(t *testing.T) {
	in := NewInputState()
	in.SetKey(KeyFreeze, true)
	assert.True(t, in.KeyPressed(KeyFreeze))

	in.Reset()
	in.SetKey(KeyFreeze, true)
	assert.False(t, in.KeyPressed(KeyFreeze), "still held")

	in.SetKey(KeyFreeze, false)
	in.SetKey(KeyFreeze, true)
	assert.True(t, in.KeyPressed(KeyFreeze))
}

func TestInputIgnoresUnknown(t *testing.T) {
	in := NewInputState()
	in.SetKey(KeyNone, true)
	in.SetKey(KeyCount, true)
	in.SetMouseButton(MouseButtonCount, true)

	assert.False(t, in.KeyPressed(KeyNone))
	assert.False(t, in.KeyRepeated(KeyCount))
	assert.False(t, in.MouseDown(MouseButtonCount))
}

func TestInputReset(t *testing.T) {
	in := NewInputState()
	in.SetMouseButton(MouseButtonLeft, true)
	in.SetMouseWheel(2)
	in.AddInputChar('a')

	in.Reset()
	assert.True(t, in.MouseDown(MouseButtonLeft))
	assert.Zero(t, in.MouseWheelY)
	assert.Empty(t, in.InputChars)
}
