// Package config loads mentor configuration from a JSON file backend with
// environment-variable overrides.
package config

type Config struct {
	Server ServerConfig
	Engine EngineConfig
	Chat   ChatConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port int
}

type EngineConfig struct {
	Model string
	// StreamDelayMs is the artificial per-word pause (milliseconds) used by
	// the stub engine when streaming.
	StreamDelayMs int
}

type ChatConfig struct {
	DefaultProfile string
}

type LogConfig struct {
	Level string
}

func defaults() Config {
	return Config{
		Server: ServerConfig{
			Port: 4700,
		},
		Engine: EngineConfig{
			Model:         "stub-legendary-model",
			StreamDelayMs: 20,
		},
		Chat: ChatConfig{
			DefaultProfile: "balanced_expert",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from the JSON file backend
// ($XDG_CONFIG_HOME/mentor/config.json) and applies MENTOR_* environment
// overrides on top.
func Load() (Config, error) {
	return loadWith(newFileBackend())
}

func loadWith(b Backend) (Config, error) {
	cfg := defaults()

	if err := applyBackend(&cfg, b); err != nil {
		return Config{}, err
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}
