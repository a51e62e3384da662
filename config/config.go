package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/hell-escape/parameter"
)

// DefaultFileName is read from the working directory when no path is given
const DefaultFileName = "hell-escape.toml"

// DefaultEnvFile is the dotenv file merged under the process environment
const DefaultEnvFile = ".env"

// EnvPrefix namespaces every environment override
const EnvPrefix = "HELL_ESCAPE_"

// ErrInvalid reports a value outside its accepted range
var ErrInvalid = errors.New("invalid config")

// Paths locates assets and persisted state
type Paths struct {
	Assets string `toml:"assets"`
	Saves  string `toml:"saves"`
}

// Audio holds startup mixer preferences; persisted settings win when present
type Audio struct {
	Enabled   bool    `toml:"enabled"`
	BGMVolume float64 `toml:"bgm_volume"`
	SFXVolume float64 `toml:"sfx_volume"`
}

// Leaderboard selects the remote score backend; an empty URL disables it
type Leaderboard struct {
	URL       string `toml:"url"`
	Namespace string `toml:"namespace"`
	TimeoutMs int    `toml:"timeout_ms"`
}

// Timeout returns the per-request bound
func (l Leaderboard) Timeout() time.Duration {
	return time.Duration(l.TimeoutMs) * time.Millisecond
}

// Debug controls the diagnostics HTTP surface and log file
type Debug struct {
	Enabled bool   `toml:"enabled"`
	Addr    string `toml:"addr"`
	Log     bool   `toml:"log"`
}

// Input tunes the terminal key-hold emulation
type Input struct {
	Keymap        string `toml:"keymap"`
	HoldInitialMs int    `toml:"hold_initial_ms"`
	HoldRepeatMs  int    `toml:"hold_repeat_ms"`
}

// HoldInitial returns the first hold window
func (i Input) HoldInitial() time.Duration {
	return time.Duration(i.HoldInitialMs) * time.Millisecond
}

// HoldRepeat returns the repeat hold window
func (i Input) HoldRepeat() time.Duration {
	return time.Duration(i.HoldRepeatMs) * time.Millisecond
}

// Config is the merged runtime configuration
type Config struct {
	Locale      string           `toml:"locale"`
	Paths       Paths            `toml:"paths"`
	Physics     parameter.Tuning `toml:"physics"`
	Audio       Audio            `toml:"audio"`
	Leaderboard Leaderboard      `toml:"leaderboard"`
	Debug       Debug            `toml:"debug"`
	Input       Input            `toml:"input"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Paths: Paths{
			Assets: "assets",
			Saves:  "saves",
		},
		Physics: parameter.DefaultTuning(),
		Audio: Audio{
			Enabled:   true,
			BGMVolume: parameter.AudioDefaultBGM,
			SFXVolume: parameter.AudioDefaultSFX,
		},
		Leaderboard: Leaderboard{
			Namespace: "hell-escape",
			TimeoutMs: int(parameter.LeaderboardTimeout / time.Millisecond),
		},
		Debug: Debug{
			Addr: "127.0.0.1:8089",
		},
		Input: Input{
			HoldInitialMs: int(parameter.KeyHoldInitial / time.Millisecond),
			HoldRepeatMs:  int(parameter.KeyHoldRepeat / time.Millisecond),
		},
	}
}

// Load layers defaults, the TOML file, the dotenv file and the process environment
// An empty path tries DefaultFileName and tolerates its absence; an explicit path must exist
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	file, required := path, true
	if file == "" {
		file, required = DefaultFileName, false
	}
	if _, err := toml.DecodeFile(file, &cfg); err != nil {
		if required || !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("config %s: %w", file, err)
		}
	} else {
		log.Printf("[config] loaded %s", file)
	}

	dotenv := map[string]string{}
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			dotenv = m
		case !errors.Is(err, fs.ErrNotExist):
			return cfg, fmt.Errorf("config %s: %w", envFile, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overrides fields from HELL_ESCAPE_* variables
// Volumes are given as 0-100, matching the in-game sliders
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			*dst = v
		}
	}
	var errs []error
	boolean := func(name string, dst *bool) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = b
		}
	}
	percent := func(name string, dst *float64) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = min(1, max(0, float64(n)/100))
		}
	}
	millis := func(name string, dst *int) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = n
		}
	}

	str("LOCALE", &c.Locale)
	str("ASSETS", &c.Paths.Assets)
	str("SAVES", &c.Paths.Saves)
	boolean("AUDIO_ENABLED", &c.Audio.Enabled)
	percent("BGM_VOLUME", &c.Audio.BGMVolume)
	percent("SFX_VOLUME", &c.Audio.SFXVolume)
	str("LEADERBOARD_URL", &c.Leaderboard.URL)
	str("LEADERBOARD_NAMESPACE", &c.Leaderboard.Namespace)
	millis("LEADERBOARD_TIMEOUT_MS", &c.Leaderboard.TimeoutMs)
	boolean("DEBUG", &c.Debug.Enabled)
	str("DEBUG_ADDR", &c.Debug.Addr)
	boolean("DEBUG_LOG", &c.Debug.Log)
	str("KEYMAP", &c.Input.Keymap)
	millis("HOLD_INITIAL_MS", &c.Input.HoldInitialMs)
	millis("HOLD_REPEAT_MS", &c.Input.HoldRepeatMs)

	return errors.Join(errs...)
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	p := c.Physics
	switch {
	case p.Gravity <= 0 || p.TerminalVelocity <= 0:
		return fmt.Errorf("%w: gravity and terminal velocity must be positive", ErrInvalid)
	case p.MaxSpeed <= 0 || p.MaxSpeedAir <= 0 || p.Acceleration <= 0 || p.AccelerationAir <= 0:
		return fmt.Errorf("%w: speeds and accelerations must be positive", ErrInvalid)
	case p.Friction <= 0 || p.Friction >= 1 || p.AirResistance <= 0 || p.AirResistance >= 1:
		return fmt.Errorf("%w: friction and air resistance must be in (0, 1)", ErrInvalid)
	case p.JumpChargeMin <= 0 || p.JumpChargeMax < p.JumpChargeMin || p.JumpChargeRate <= 0:
		return fmt.Errorf("%w: jump charge range", ErrInvalid)
	case c.Audio.BGMVolume < 0 || c.Audio.BGMVolume > 1 || c.Audio.SFXVolume < 0 || c.Audio.SFXVolume > 1:
		return fmt.Errorf("%w: volumes must be in [0, 1]", ErrInvalid)
	case c.Leaderboard.TimeoutMs <= 0:
		return fmt.Errorf("%w: leaderboard timeout must be positive", ErrInvalid)
	case c.Input.HoldInitialMs <= 0 || c.Input.HoldRepeatMs <= 0:
		return fmt.Errorf("%w: key hold windows must be positive", ErrInvalid)
	}
	return nil
}

// LocaleFromEnv derives a language tag from a POSIX locale such as ko_KR.UTF-8
func LocaleFromEnv(lang string) string {
	if i := strings.IndexAny(lang, ".@"); i >= 0 {
		lang = lang[:i]
	}
	if lang == "C" || lang == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(lang, "_", "-")
}
