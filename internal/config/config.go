// Package config loads sample settings from defaults, an optional dotenv
// file and the process environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/jakecoffman/cpdraw"
	"github.com/joho/godotenv"
)

const prefix = "CPDRAW_"

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Width          int
	Height         int
	Bubbles        int
	PointsPerMeter float64
	DebugFlags     cpdraw.Flags
	ShowDebug      bool
	Seed           int64
	LogLevel       slog.Level
}

func Default() Config {
	return Config{
		Width:          1024,
		Height:         768,
		Bubbles:        29,
		PointsPerMeter: cpdraw.DefaultPointsPerMeter,
		DebugFlags:     cpdraw.DefaultFlags,
		Seed:           0,
		LogLevel:       slog.LevelInfo,
	}
}

// Load reads envFile if it exists and then the process environment. A
// missing envFile is not an error.
func Load(envFile string) (Config, error) {
	file := map[string]string{}
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			file = m
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("config: read %s: %w", envFile, err)
		}
	}
	return FromLookup(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	})
}

// FromLookup builds a Config from Default and the CPDRAW_ variables lookup
// returns.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	c := Default()
	var errs []error
	get := func(name string) (string, bool) {
		v, ok := lookup(prefix + name)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}
	invalid := func(name, v string, err error) {
		errs = append(errs, fmt.Errorf("%w: %s%s=%q: %w", ErrInvalid, prefix, name, v, err))
	}
	positive := func(name string, dst *int) {
		v, ok := get(name)
		if !ok {
			return
		}
		n, err := strconv.Atoi(v)
		if err == nil && n <= 0 {
			err = errors.New("must be positive")
		}
		if err != nil {
			invalid(name, v, err)
			return
		}
		*dst = n
	}

	positive("WIDTH", &c.Width)
	positive("HEIGHT", &c.Height)

	if v, ok := get("BUBBLES"); ok {
		n, err := strconv.Atoi(v)
		if err == nil && n < 0 {
			err = errors.New("must not be negative")
		}
		if err != nil {
			invalid("BUBBLES", v, err)
		} else {
			c.Bubbles = n
		}
	}

	if v, ok := get("POINTS_PER_METER"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil && f <= 0 {
			err = errors.New("must be positive")
		}
		if err != nil {
			invalid("POINTS_PER_METER", v, err)
		} else {
			c.PointsPerMeter = f
		}
	}

	if v, ok := get("DEBUG_FLAGS"); ok {
		f, err := cpdraw.ParseFlags(v)
		if err != nil {
			invalid("DEBUG_FLAGS", v, err)
		} else {
			c.DebugFlags = f
		}
	}

	if v, ok := get("SHOW_DEBUG"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			invalid("SHOW_DEBUG", v, err)
		} else {
			c.ShowDebug = b
		}
	}

	if v, ok := get("SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			invalid("SEED", v, err)
		} else {
			c.Seed = n
		}
	}

	if v, ok := get("LOG_LEVEL"); ok {
		var level slog.Level
		if err := level.UnmarshalText([]byte(v)); err != nil {
			invalid("LOG_LEVEL", v, err)
		} else {
			c.LogLevel = level
		}
	}

	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}
	return c, nil
}
