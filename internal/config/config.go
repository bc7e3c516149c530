// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// SceneConfig holds scene assembly and render pipeline settings.
type SceneConfig struct {
	// HouseRows is the side length of the house grid (HouseRows^2 houses).
	HouseRows int `yaml:"house_rows"`
	// MaxInstancesPerDraw caps how many instances a single draw call may
	// carry; larger batches are split, never truncated.
	MaxInstancesPerDraw int  `yaml:"max_instances_per_draw"`
	Skybox              bool `yaml:"skybox"`
	LightGizmos         bool `yaml:"light_gizmos"`
	// Background is the viewport clear color (RGB, 0-1 range).
	Background [3]float32 `yaml:"background"`
}

// DebugConfig holds debugging settings.
type DebugConfig struct {
	// StrictGL polls the GL error state every frame and treats any error
	// as fatal instead of logging it.
	StrictGL bool `yaml:"strict_gl"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Scene: SceneConfig{
			HouseRows:           50,
			MaxInstancesPerDraw: 1024,
			Skybox:              true,
			LightGizmos:         true,
			Background:          [3]float32{0.0, 1.0, 1.0},
		},
		Debug: DebugConfig{
			StrictGL: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
