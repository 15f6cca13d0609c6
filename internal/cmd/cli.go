// Package cmd defines the keyper CLI command structs wired up by kong.
package cmd

// CLI is the root command tree.
type CLI struct {
	Config string    `help:"Configuration file path (.json/.yaml/.toml)" type:"path" env:"KEYPER_CONFIG"`
	Log    LogConfig `embed:"" prefix:"log."`

	Sim        Sim        `cmd:"" help:"Run the firmware pipeline against an interactive terminal-driven matrix"`
	Descriptor Descriptor `cmd:"" help:"Dump the keyboard's USB and HID report descriptors"`
	Keymap     Keymap     `cmd:"" help:"Export or validate keymap files"`
}

// LogConfig carries the logging flags shared by all commands.
type LogConfig struct {
	Level   string `help:"Log level (trace, debug, info, warn, error)" default:"info" env:"KEYPER_LOG_LEVEL"`
	File    string `help:"Log file path (logs to stdout/stderr when empty)" env:"KEYPER_LOG_FILE"`
	RawFile string `help:"Raw report traffic log file path" env:"KEYPER_LOG_RAW_FILE"`
}
