package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagRows       = flag.Int("rows", 0, "Side length of the house grid")
	flagStrictGL   = flag.Bool("strict-gl", false, "Treat OpenGL errors as fatal")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagRows > 0 {
		cfg.Scene.HouseRows = *flagRows
	}
	if *flagStrictGL {
		cfg.Debug.StrictGL = true
	}
}
