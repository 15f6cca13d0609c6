package keymap

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/KEYPER/keycode"
	"github.com/Alia5/KEYPER/matrix"
)

// File is the on-disk keymap representation: each layer is a row-major grid
// of key names (Rows x Cols, top row first) as defined by keycode.Name.
type File struct {
	Layers struct {
		Normal [][]string `json:"normal" yaml:"normal" toml:"normal"`
		FN     [][]string `json:"fn" yaml:"fn" toml:"fn"`
	} `json:"layers" yaml:"layers" toml:"layers"`
}

// Load reads a keymap file; the format is picked by extension
// (.json/.yaml/.yml/.toml).
func Load(path string) (*Keymap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &f)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	case ".toml":
		err = toml.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("unsupported keymap format: %s", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("parse keymap %s: %w", path, err)
	}

	var km Keymap
	if km.Normal, err = layerFromNames(f.Layers.Normal); err != nil {
		return nil, fmt.Errorf("normal layer: %w", err)
	}
	if km.FN, err = layerFromNames(f.Layers.FN); err != nil {
		return nil, fmt.Errorf("fn layer: %w", err)
	}
	return &km, nil
}

// Export renders the keymap in the given format ("json", "yaml" or "toml").
func Export(km *Keymap, format string) ([]byte, error) {
	var f File
	f.Layers.Normal = layerToNames(&km.Normal)
	f.Layers.FN = layerToNames(&km.FN)

	switch strings.ToLower(format) {
	case "json":
		return json.MarshalIndent(f, "", "  ")
	case "yaml", "yml":
		return yaml.Marshal(f)
	case "toml":
		return toml.Marshal(f)
	default:
		return nil, fmt.Errorf("unsupported keymap format: %s", format)
	}
}

// layerFromNames validates the grid dimensions against the compiled matrix
// geometry and resolves every name. Unknown names are errors, not Empty,
// so a typo cannot silently dead-key a switch.
func layerFromNames(rows [][]string) (Layer, error) {
	var grid [matrix.Rows][matrix.Cols]keycode.KeyCode
	if len(rows) != matrix.Rows {
		return Layer{}, fmt.Errorf("expected %d rows, got %d", matrix.Rows, len(rows))
	}
	for r, row := range rows {
		if len(row) != matrix.Cols {
			return Layer{}, fmt.Errorf("row %d: expected %d columns, got %d", r, matrix.Cols, len(row))
		}
		for c, name := range row {
			k, ok := keycode.Parse(name)
			if !ok {
				return Layer{}, fmt.Errorf("row %d col %d: unknown key %q", r, c, name)
			}
			grid[r][c] = k
		}
	}
	return layerFromRows(grid), nil
}

func layerToNames(l *Layer) [][]string {
	out := make([][]string, matrix.Rows)
	for r := 0; r < matrix.Rows; r++ {
		out[r] = make([]string, matrix.Cols)
		for c := 0; c < matrix.Cols; c++ {
			out[r][c] = l[c][r].String()
		}
	}
	return out
}
