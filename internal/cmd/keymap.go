package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Alia5/KEYPER/internal/configpaths"
	"github.com/Alia5/KEYPER/keymap"
)

// Keymap groups keymap file subcommands.
type Keymap struct {
	Export KeymapExport `cmd:"" help:"Write the built-in keymap as a template file"`
	Check  KeymapCheck  `cmd:"" help:"Validate a keymap file against the matrix geometry"`
}

// KeymapExport renders the default layer tables so users can edit a copy
// instead of writing a grid from scratch.
type KeymapExport struct {
	Format string `help:"Output format" enum:"json,yaml,toml" default:"toml"`
	Output string `help:"Destination file path (stdout when empty)"`
	Force  bool   `help:"Overwrite if the file already exists"`
}

func (c *KeymapExport) Run(logger *slog.Logger) error {
	data, err := keymap.Export(&keymap.Default, c.Format)
	if err != nil {
		return err
	}
	if c.Output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if !c.Force {
		if _, err := os.Stat(c.Output); err == nil {
			return fmt.Errorf("destination exists; use --force to overwrite")
		}
	}
	if err := configpaths.EnsureDir(c.Output); err != nil {
		return err
	}
	if err := os.WriteFile(c.Output, data, 0o644); err != nil {
		return err
	}
	logger.Info("keymap written", "path", c.Output, "format", c.Format)
	return nil
}

// KeymapCheck loads a keymap file and reports whether it is usable.
type KeymapCheck struct {
	Path string `arg:"" help:"Keymap file to validate (.json/.yaml/.toml)"`
}

func (c *KeymapCheck) Run(logger *slog.Logger) error {
	if _, err := keymap.Load(c.Path); err != nil {
		return err
	}
	logger.Info("keymap is valid", "path", c.Path)
	return nil
}
