package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Environment variables read by Load.
const (
	EnvWidth        = "BLOCKFALL_WIDTH"
	EnvHeight       = "BLOCKFALL_HEIGHT"
	EnvBaseInterval = "BLOCKFALL_BASE_INTERVAL"
	EnvLevelSpeedup = "BLOCKFALL_LEVEL_SPEEDUP"
	EnvMinInterval  = "BLOCKFALL_MIN_INTERVAL"
	EnvSeed         = "BLOCKFALL_SEED"
	EnvLogFile      = "BLOCKFALL_LOG"
)

const (
	minFieldSize = 4

	DefaultEnvFile = ".env"
)

type Config struct {
	Width  int
	Height int

	// Gravity interval at level 0, shortened by LevelSpeedup per level and
	// never below MinInterval.
	BaseInterval time.Duration
	LevelSpeedup time.Duration
	MinInterval  time.Duration

	// Seed for the piece bag; 0 seeds from the clock.
	Seed int64

	// LogFile receives debug logs. Empty disables logging.
	LogFile string
}

func Default() Config {
	return Config{
		Width:        10,
		Height:       20,
		BaseInterval: 1000 * time.Millisecond,
		LevelSpeedup: 80 * time.Millisecond,
		MinInterval:  100 * time.Millisecond,
	}
}

// Load builds a Config from the defaults, the optional dotenv file at path
// and the process environment, in increasing order of precedence. A missing
// file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	vars := map[string]string{}
	if path != "" {
		fileVars, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("read %s: %w", path, err)
		}
		for k, v := range fileVars {
			vars[k] = v
		}
	}
	for _, key := range []string{EnvWidth, EnvHeight, EnvBaseInterval, EnvLevelSpeedup, EnvMinInterval, EnvSeed, EnvLogFile} {
		if v, ok := os.LookupEnv(key); ok {
			vars[key] = v
		}
	}

	if err := cfg.apply(vars); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) apply(vars map[string]string) error {
	var err error
	if v, ok := vars[EnvWidth]; ok {
		if c.Width, err = strconv.Atoi(strings.TrimSpace(v)); err != nil {
			return fmt.Errorf("%s: %w", EnvWidth, err)
		}
	}
	if v, ok := vars[EnvHeight]; ok {
		if c.Height, err = strconv.Atoi(strings.TrimSpace(v)); err != nil {
			return fmt.Errorf("%s: %w", EnvHeight, err)
		}
	}
	if v, ok := vars[EnvBaseInterval]; ok {
		if c.BaseInterval, err = ParseInterval(v); err != nil {
			return fmt.Errorf("%s: %w", EnvBaseInterval, err)
		}
	}
	if v, ok := vars[EnvLevelSpeedup]; ok {
		if c.LevelSpeedup, err = ParseInterval(v); err != nil {
			return fmt.Errorf("%s: %w", EnvLevelSpeedup, err)
		}
	}
	if v, ok := vars[EnvMinInterval]; ok {
		if c.MinInterval, err = ParseInterval(v); err != nil {
			return fmt.Errorf("%s: %w", EnvMinInterval, err)
		}
	}
	if v, ok := vars[EnvSeed]; ok {
		if c.Seed, err = strconv.ParseInt(strings.TrimSpace(v), 10, 64); err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
	}
	if v, ok := vars[EnvLogFile]; ok {
		c.LogFile = strings.TrimSpace(v)
	}
	return nil
}

// ParseInterval accepts a Go duration ("750ms") or a bare number of
// milliseconds ("750").
func ParseInterval(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	return time.ParseDuration(s)
}

func (c Config) Validate() error {
	if c.Width < minFieldSize || c.Height < minFieldSize {
		return fmt.Errorf("%w: field %dx%d is smaller than %dx%d", ErrInvalid, c.Width, c.Height, minFieldSize, minFieldSize)
	}
	if c.BaseInterval <= 0 {
		return fmt.Errorf("%w: base interval %v must be positive", ErrInvalid, c.BaseInterval)
	}
	if c.MinInterval <= 0 {
		return fmt.Errorf("%w: min interval %v must be positive", ErrInvalid, c.MinInterval)
	}
	if c.LevelSpeedup < 0 {
		return fmt.Errorf("%w: level speedup %v is negative", ErrInvalid, c.LevelSpeedup)
	}
	if c.MinInterval > c.BaseInterval {
		return fmt.Errorf("%w: min interval %v exceeds base interval %v", ErrInvalid, c.MinInterval, c.BaseInterval)
	}
	return nil
}

// ResolveSeed returns Seed, or a clock-derived seed when Seed is zero.
func (c Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
