package keycode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alia5/KEYPER/keycode"
)

func TestClass(t *testing.T) {
	cases := []struct {
		name     string
		kc       keycode.KeyCode
		expected keycode.Class
	}{
		{"empty", keycode.Empty, keycode.ClassEmpty},
		{"rollover", keycode.ErrorRollOver, keycode.ClassError},
		{"post fail", keycode.POSTFail, keycode.ClassError},
		{"undefined", keycode.ErrorUndefined, keycode.ClassError},
		{"letter", keycode.A, keycode.ClassKey},
		{"escape", keycode.Escape, keycode.ClassKey},
		{"left ctrl", keycode.LeftCtrl, keycode.ClassModifier},
		{"right gui", keycode.RightGUI, keycode.ClassModifier},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kc.Class())
		})
	}
}

func TestModifierBits(t *testing.T) {
	mods := []keycode.KeyCode{
		keycode.LeftCtrl, keycode.LeftShift, keycode.LeftAlt, keycode.LeftGUI,
		keycode.RightCtrl, keycode.RightShift, keycode.RightAlt, keycode.RightGUI,
	}

	var all uint8
	for i, m := range mods {
		mask, ok := m.ModifierBit()
		assert.True(t, ok)
		assert.Equal(t, uint8(1)<<i, mask, "modifier %s", m)
		assert.Zero(t, all&mask, "mask for %s overlaps another modifier", m)
		all |= mask
	}
	assert.Equal(t, uint8(0xFF), all)

	_, ok := keycode.A.ModifierBit()
	assert.False(t, ok)
}

func TestNames(t *testing.T) {
	assert.Equal(t, "A", keycode.A.String())
	assert.Equal(t, "LeftShift", keycode.LeftShift.String())

	// Unnamed codes render as Empty rather than inventing identifiers.
	assert.Equal(t, "Empty", keycode.KeyCode(0xD0).String())

	for kc, name := range keycode.Name {
		parsed, ok := keycode.Parse(name)
		assert.True(t, ok, "name %q does not parse", name)
		assert.Equal(t, kc, parsed)
	}

	_, ok := keycode.Parse("NotAKey")
	assert.False(t, ok)
}
