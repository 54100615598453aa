// Package config resolves runtime settings from defaults, an optional TOML or
// YAML file, and TASKSOULS_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"

	"github.com/sandeepkv93/tasksouls/internal/model"
)

var ErrUnknownFormat = errors.New("config: unknown file format")

type RuntimeConfig struct {
	StartMode            model.Mode `toml:"start_mode" yaml:"start_mode"`
	SoundEnabled         bool       `toml:"sound" yaml:"sound"`
	SoundPath            string     `toml:"sound_path" yaml:"sound_path"`
	SoundVolume          float64    `toml:"sound_volume" yaml:"sound_volume"`
	DesktopNotifications bool       `toml:"desktop_notifications" yaml:"desktop_notifications"`
	NotificationMillis   int        `toml:"notification_ms" yaml:"notification_ms"`
	BonfireMillis        int        `toml:"bonfire_ms" yaml:"bonfire_ms"`
	TimerBuffer          int        `toml:"timer_buffer" yaml:"timer_buffer"`
	LogLevel             string     `toml:"log_level" yaml:"log_level"`
	LogFile              string     `toml:"log_file" yaml:"log_file"`
	Seed                 uint64     `toml:"seed" yaml:"seed"`
}

func Default() RuntimeConfig {
	return RuntimeConfig{
		StartMode:            model.ModePlain,
		SoundEnabled:         true,
		SoundPath:            "success.mp3",
		SoundVolume:          0.5,
		DesktopNotifications: false,
		NotificationMillis:   3000,
		BonfireMillis:        500,
		TimerBuffer:          16,
		LogLevel:             "info",
		LogFile:              "",
		Seed:                 0,
	}
}

func (c RuntimeConfig) NotificationTTL() time.Duration {
	return time.Duration(c.NotificationMillis) * time.Millisecond
}

func (c RuntimeConfig) BonfirePulse() time.Duration {
	return time.Duration(c.BonfireMillis) * time.Millisecond
}

// Load applies an optional file on top of Default and then the environment.
// An empty path skips the file layer; a missing file is an error.
func Load(path string) (RuntimeConfig, error) {
	cfg := Default()
	if strings.TrimSpace(path) != "" {
		fromFile, err := LoadFile(cfg, path)
		if err != nil {
			return RuntimeConfig{}, err
		}
		cfg = fromFile
	}
	return FromEnv(cfg), nil
}

// LoadFile decodes path over base. Fields absent from the file keep their
// base values.
func LoadFile(base RuntimeConfig, path string) (RuntimeConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return RuntimeConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := base
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(raw), &cfg); err != nil {
			return RuntimeConfig{}, fmt.Errorf("decode toml %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return RuntimeConfig{}, fmt.Errorf("decode yaml %s: %w", path, err)
		}
	default:
		return RuntimeConfig{}, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	return cfg.normalize(base), nil
}

func (c RuntimeConfig) normalize(fallback RuntimeConfig) RuntimeConfig {
	if !c.StartMode.IsValid() {
		c.StartMode = fallback.StartMode
	}
	if c.SoundVolume < 0 || c.SoundVolume > 1 {
		c.SoundVolume = fallback.SoundVolume
	}
	if c.NotificationMillis <= 0 {
		c.NotificationMillis = fallback.NotificationMillis
	}
	if c.BonfireMillis <= 0 {
		c.BonfireMillis = fallback.BonfireMillis
	}
	if c.TimerBuffer <= 0 {
		c.TimerBuffer = fallback.TimerBuffer
	}
	return c
}

func FromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("TASKSOULS_START_MODE")); v != "" {
		if mode, err := model.ParseMode(v); err == nil {
			cfg.StartMode = mode
		}
	}
	if v, ok := getEnvBool("TASKSOULS_START_GAMIFIED"); ok {
		if v {
			cfg.StartMode = model.ModeGamified
		} else {
			cfg.StartMode = model.ModePlain
		}
	}
	if v, ok := getEnvBool("TASKSOULS_SOUND"); ok {
		cfg.SoundEnabled = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKSOULS_SOUND_PATH")); v != "" {
		cfg.SoundPath = v
	}
	if v, ok := getEnvFloat("TASKSOULS_SOUND_VOLUME"); ok && v >= 0 && v <= 1 {
		cfg.SoundVolume = v
	}
	if v, ok := getEnvBool("TASKSOULS_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	if v, ok := getEnvInt("TASKSOULS_NOTIFICATION_MS"); ok && v > 0 {
		cfg.NotificationMillis = v
	}
	if v, ok := getEnvInt("TASKSOULS_BONFIRE_MS"); ok && v > 0 {
		cfg.BonfireMillis = v
	}
	if v, ok := getEnvInt("TASKSOULS_TIMER_BUFFER"); ok && v > 0 {
		cfg.TimerBuffer = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKSOULS_LOG_LEVEL")); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("TASKSOULS_LOG_FILE")); v != "" {
		cfg.LogFile = v
	}
	if raw := strings.TrimSpace(os.Getenv("TASKSOULS_SEED")); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 64); err == nil {
			cfg.Seed = v
		}
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvFloat(name string) (float64, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
