// Package config parses the host's command-line invocation into a
// HostConfig, in the teacher's flag-based style (no cobra/viper: the
// teacher's own cmd/ entrypoints use the standard flag package).
package config

import (
	"flag"
	"fmt"
)

// HostConfig is everything main needs to open a plugin, load a game,
// and lay out its persistence paths (spec.md §3).
type HostConfig struct {
	PluginPath string
	RomPath    string

	Tag      string // console tag, e.g. "gba"; selects the path layout
	SDCard   string // root directory standing in for the device's SD card
	Platform string // platform tag folded into sys_dir naming

	ScaleKernel string // "plain", "lcd-grid", or "dmg-ghost"

	ScreenWidth  int
	ScreenHeight int

	SaveStateSlot int // 0-9; MENU+L1/R1 always targets this slot
}

// ParseFlags parses args (normally os.Args[1:]) into a HostConfig.
// plugin_path and rom_path are positional; everything else is a flag.
func ParseFlags(progName string, args []string) (*HostConfig, error) {
	fs := flag.NewFlagSet(progName, flag.ContinueOnError)

	cfg := &HostConfig{}
	fs.StringVar(&cfg.Tag, "tag", "core", "console tag used for save/state path layout")
	fs.StringVar(&cfg.SDCard, "sdcard", ".", "root directory standing in for the device SD card")
	fs.StringVar(&cfg.Platform, "platform", "host", "platform tag folded into the system directory name")
	fs.StringVar(&cfg.ScaleKernel, "scale-kernel", "plain", "scaler kernel: plain, lcd-grid, or dmg-ghost")
	fs.IntVar(&cfg.ScreenWidth, "screen-width", 320, "fixed host screen width in pixels")
	fs.IntVar(&cfg.ScreenHeight, "screen-height", 240, "fixed host screen height in pixels")
	fs.IntVar(&cfg.SaveStateSlot, "state-slot", 0, "save-state slot the MENU hotkeys read/write (0-9)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	rest := fs.Args()
	if len(rest) != 2 {
		return nil, fmt.Errorf("config: usage: %s [flags] plugin_path rom_path", progName)
	}
	cfg.PluginPath = rest[0]
	cfg.RomPath = rest[1]

	return cfg, nil
}
