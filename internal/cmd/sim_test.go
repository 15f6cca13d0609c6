package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/KEYPER/keycode"
	"github.com/Alia5/KEYPER/keymap"
)

func TestCharToKey(t *testing.T) {
	tests := []struct {
		char byte
		want keycode.KeyCode
	}{
		{'a', keycode.A},
		{'z', keycode.Z},
		{'A', keycode.A},
		{'1', keycode.Num1},
		{'9', keycode.Num9},
		{'0', keycode.Num0},
		{' ', keycode.Space},
		{'\r', keycode.Enter},
		{'\n', keycode.Enter},
		{'\t', keycode.Tab},
		{0x1B, keycode.Escape},
		{0x7F, keycode.Backspace},
		{';', keycode.Semicolon},
		{0x01, keycode.Empty},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, charToKey(tt.char), "char %#02x", tt.char)
	}
}

func TestPositionIndex(t *testing.T) {
	index := positionIndex(&keymap.Default.Normal)

	pos, ok := index[keycode.Q]
	require.True(t, ok)
	assert.Equal(t, keymap.Pos{Col: 1, Row: 2}, pos)

	pos, ok = index[keycode.Escape]
	require.True(t, ok)
	assert.Equal(t, keymap.BootloaderPos, pos)

	_, ok = index[keycode.Empty]
	assert.False(t, ok, "empty cells are not addressable")
}

func TestReportKeyNames(t *testing.T) {
	assert.Equal(t, "-", reportKeyNames([6]byte{}))
	assert.Equal(t, "Q", reportKeyNames([6]byte{byte(keycode.Q)}))
	assert.Equal(t, "A+B", reportKeyNames([6]byte{byte(keycode.A), byte(keycode.B)}))
}
