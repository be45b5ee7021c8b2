// Package config reads the simulation settings from a TOML file, with
// overrides from a .env file and the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"elevator-fsm/pkg/fsm"
	"elevator-fsm/pkg/logger"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Elevator Elevator `toml:"elevator"`
	Driver   Driver   `toml:"driver"`
	Log      Log      `toml:"log"`
}

type Elevator struct {
	StartFloor  int      `toml:"start_floor"`
	FloorTravel Duration `toml:"floor_travel"`
	DoorOpen    Duration `toml:"door_open"`
	DoorClose   Duration `toml:"door_close"`
	Pacing      bool     `toml:"pacing"`
}

type Driver struct {
	Requests []int `toml:"requests"`
}

type Log struct {
	Level   string `toml:"level"`
	Console bool   `toml:"console"`
}

// Duration is a time.Duration written as a string, e.g. "1.5s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default matches the behaviour of the program without a config file.
func Default() *Config {
	return &Config{
		Elevator: Elevator{
			StartFloor:  fsm.DefaultStartFloor,
			FloorTravel: Duration{fsm.DefaultTiming.FloorTravel},
			DoorOpen:    Duration{fsm.DefaultTiming.DoorOpen},
			DoorClose:   Duration{fsm.DefaultTiming.DoorClose},
			Pacing:      true,
		},
		Driver: Driver{
			Requests: []int{3, 1, 4, 2, 5, 7, 2, 8, 1},
		},
		Log: Log{
			Level:   "info",
			Console: true,
		},
	}
}

// LoadFile decodes filename on top of the defaults. Unknown keys are
// rejected.
func LoadFile(filename string) (*Config, error) {
	c := Default()
	md, err := toml.DecodeFile(filename, c)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", filename, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %q: %w", filename, undecoded[0].String(), ErrInvalid)
	}
	return c, c.Validate()
}

// Load reads filename and envFile, either of which may be missing. Values
// in the process environment take precedence over envFile.
func Load(filename, envFile string) (*Config, error) {
	c, err := LoadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Get().Debug().Str("file", filename).Msg("no config file, using defaults")
		c, err = Default(), nil
	}
	if err != nil {
		return nil, err
	}

	env := make(map[string]string)
	if envFile != "" {
		env, err = godotenv.Read(envFile)
		if errors.Is(err, fs.ErrNotExist) {
			env, err = make(map[string]string), nil
		}
		if err != nil {
			return nil, fmt.Errorf("env %s: %w", envFile, err)
		}
	}
	for _, key := range envKeys {
		if v, ok := os.LookupEnv(key); ok {
			env[key] = v
		}
	}

	if err := c.ApplyEnv(env); err != nil {
		return nil, err
	}
	return c, c.Validate()
}

const (
	EnvStartFloor = "ELEVATOR_START_FLOOR"
	EnvPacing     = "ELEVATOR_PACING"
	EnvLogLevel   = "ELEVATOR_LOG_LEVEL"
	EnvRequests   = "ELEVATOR_REQUESTS"
)

var envKeys = []string{EnvStartFloor, EnvPacing, EnvLogLevel, EnvRequests}

// ApplyEnv overrides c with the recognised keys of env.
func (c *Config) ApplyEnv(env map[string]string) error {
	if v, ok := env[EnvStartFloor]; ok {
		floor, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvStartFloor, err)
		}
		c.Elevator.StartFloor = floor
	}
	if v, ok := env[EnvPacing]; ok {
		pacing, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPacing, err)
		}
		c.Elevator.Pacing = pacing
	}
	if v, ok := env[EnvLogLevel]; ok {
		c.Log.Level = strings.TrimSpace(v)
	}
	if v, ok := env[EnvRequests]; ok {
		floors, err := parseFloors(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRequests, err)
		}
		c.Driver.Requests = floors
	}
	return nil
}

func parseFloors(s string) ([]int, error) {
	var floors []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		floors = append(floors, n)
	}
	return floors, nil
}

func (c *Config) Validate() error {
	for name, d := range map[string]Duration{
		"elevator.floor_travel": c.Elevator.FloorTravel,
		"elevator.door_open":    c.Elevator.DoorOpen,
		"elevator.door_close":   c.Elevator.DoorClose,
	} {
		if d.Duration < 0 {
			return fmt.Errorf("%s is negative (%v): %w", name, d, ErrInvalid)
		}
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level %q: %w", c.Log.Level, ErrInvalid)
	}
	return nil
}

func (c *Config) Timing() fsm.Timing {
	return fsm.Timing{
		FloorTravel: c.Elevator.FloorTravel.Duration,
		DoorOpen:    c.Elevator.DoorOpen.Duration,
		DoorClose:   c.Elevator.DoorClose.Duration,
	}
}

// Options returns the controller options described by c.
func (c *Config) Options() []fsm.Option {
	var pacer fsm.Pacer = fsm.TimerPacer{}
	if !c.Elevator.Pacing {
		pacer = fsm.NoPacer{}
	}
	return []fsm.Option{
		fsm.WithStartFloor(c.Elevator.StartFloor),
		fsm.WithTiming(c.Timing()),
		fsm.WithPacer(pacer),
	}
}
