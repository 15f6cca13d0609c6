package keymap_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/KEYPER/keymap"
)

func TestExportLoadRoundtrip(t *testing.T) {
	for _, format := range []string{"json", "yaml", "toml"} {
		t.Run(format, func(t *testing.T) {
			data, err := keymap.Export(&keymap.Default, format)
			require.NoError(t, err)

			path := filepath.Join(t.TempDir(), "keymap."+format)
			require.NoError(t, os.WriteFile(path, data, 0o644))

			km, err := keymap.Load(path)
			require.NoError(t, err)
			assert.Equal(t, keymap.Default, *km)
		})
	}
}

func TestExportUnsupportedFormat(t *testing.T) {
	_, err := keymap.Export(&keymap.Default, "xml")
	assert.Error(t, err)
}

func TestLoadErrors(t *testing.T) {
	writeKeymap := func(t *testing.T, name, content string) string {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := keymap.Load(writeKeymap(t, "keymap.ini", ""))
		assert.ErrorContains(t, err, "unsupported keymap format")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := keymap.Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})

	t.Run("malformed document", func(t *testing.T) {
		_, err := keymap.Load(writeKeymap(t, "keymap.json", "{"))
		assert.ErrorContains(t, err, "parse keymap")
	})

	t.Run("wrong row count", func(t *testing.T) {
		_, err := keymap.Load(writeKeymap(t, "keymap.json", `{"layers":{"normal":[["A"]],"fn":[["A"]]}}`))
		assert.ErrorContains(t, err, "expected 6 rows")
	})

	t.Run("unknown key name", func(t *testing.T) {
		data, err := keymap.Export(&keymap.Default, "json")
		require.NoError(t, err)
		broken := strings.Replace(string(data), `"Escape"`, `"Escapee"`, 1)
		_, err = keymap.Load(writeKeymap(t, "keymap.json", broken))
		assert.ErrorContains(t, err, `unknown key "Escapee"`)
	})
}
