// Command retrohost loads a retro-plugin-ABI shared object, drives it
// frame-by-frame against a loaded game image, and presents its video
// and audio output through SDL2 (spec.md §1).
package main

import (
	"flag"
	"os"

	"github.com/golang/glog"

	"retrohost/internal/audio"
	"retrohost/internal/config"
	"retrohost/internal/diag"
	"retrohost/internal/environment"
	"retrohost/internal/game"
	"retrohost/internal/host"
	"retrohost/internal/inputdevice"
	"retrohost/internal/inputmap"
	"retrohost/internal/paths"
	"retrohost/internal/persistence"
	"retrohost/internal/plugin"
	"retrohost/internal/scaler"
	"retrohost/internal/video"
)

func main() {
	flag.Parse()
	defer glog.Flush()

	cfg, err := config.ParseFlags(os.Args[0], flag.Args())
	if err != nil {
		glog.Fatalf("retrohost: %v", err)
	}

	if err := run(cfg); err != nil {
		glog.Fatalf("retrohost: %v", err)
	}
}

func run(cfg *config.HostConfig) error {
	logger := diag.NewLogger(512)
	layout := paths.Layout{SDCard: cfg.SDCard, Platform: cfg.Platform}

	kernel, err := scaler.KernelByName(cfg.ScaleKernel)
	if err != nil {
		return err
	}

	// init graphics
	screen, err := video.NewSDLSurface("retrohost", cfg.ScreenWidth, cfg.ScreenHeight)
	if err != nil {
		return err
	}
	defer screen.Close()

	// open plugin
	binding, err := plugin.Open(cfg.PluginPath, logger)
	if err != nil {
		return err
	}
	defer binding.Close()
	sysInfo := binding.GetSystemInfo()
	binding.Tag = cfg.Tag
	binding.SysDir = layout.SysDir(cfg.Tag, binding.Name)
	if err := os.MkdirAll(binding.SysDir, 0o755); err != nil {
		return err
	}
	logger.Logf(diag.ComponentCore, diag.LevelInfo, "loaded plugin %s (%s)", sysInfo.LibraryName, sysInfo.LibraryVersion)

	store := environment.NewStore()
	broker := environment.NewBroker(store, logger, binding.SysDir, 60.0)

	// plugin init
	binding.Init(broker)
	defer binding.Deinit()

	// open game
	rom, err := game.Open(cfg.RomPath)
	if err != nil {
		return err
	}

	// plugin load_game
	if !binding.LoadGame(rom.Path, rom.Bytes) {
		return errLoadGameFailed{path: rom.Path}
	}
	defer binding.UnloadGame()

	persist := &persistence.Store{Layout: layout, Logger: logger}

	// SRAM_read
	persist.ReadSRAM(binding, cfg.Tag, rom.Basename)
	defer persist.WriteSRAM(binding, cfg.Tag, rom.Basename)

	// get_system_av_info
	avInfo := binding.GetSystemAVInfo()
	logger.Logf(diag.ComponentCore, diag.LevelInfo, "geometry=%dx%d fps=%.3f sample_rate=%.0f",
		avInfo.Geometry.BaseWidth, avInfo.Geometry.BaseHeight, avInfo.Timing.FPS, avInfo.Timing.SampleRate)

	// init audio sink
	sink, err := audio.NewSDLSink(avInfo.Timing.SampleRate)
	if err != nil {
		return err
	}
	defer sink.Close()

	device := inputdevice.NewSDLDevice()
	inputMap := &inputmap.Map{Device: device}
	inputMap.Hotkeys = inputmap.HotkeyActions{
		StateRead: func() {
			persist.ReadState(binding, cfg.Tag, binding.Name, rom.Basename, cfg.SaveStateSlot)
		},
		StateWrite: func() {
			persist.WriteState(binding, cfg.Tag, binding.Name, rom.Basename, cfg.SaveStateSlot)
		},
	}

	facade := &host.Facade{
		Kernel: kernel,
		Surface: &scaler.Surface{
			Pixels: make([]byte, cfg.ScreenWidth*cfg.ScreenHeight*2),
			Width:  cfg.ScreenWidth,
			Height: cfg.ScreenHeight,
			Pitch:  cfg.ScreenWidth * 2,
		},
		Screen: screen,
		Audio:  sink,
		Input:  inputMap,
		Logger: logger,
	}
	binding.Video = facade
	binding.Audio = facade
	binding.Input = facade

	loop := &host.FrameLoop{Binding: binding, Input: inputMap, Logger: logger}
	loop.Run()

	return nil
}

type errLoadGameFailed struct{ path string }

func (e errLoadGameFailed) Error() string {
	return "plugin rejected game: " + e.path
}
