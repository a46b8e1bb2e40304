package dungeon

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the file form of Options. JSON documents parse too, being valid YAML.
//
//	width: 101
//	height: 61
//	room_attempts: 200
//	connection_chance: 10
type Config struct {
	Width            int   `yaml:"width" json:"width"`
	Height           int   `yaml:"height" json:"height"`
	RoomAttempts     int   `yaml:"room_attempts" json:"room_attempts"`
	SizeModifier     int   `yaml:"size_modifier" json:"size_modifier"`
	DirectionChance  int   `yaml:"direction_chance" json:"direction_chance"`
	ConnectionChance int   `yaml:"connection_chance" json:"connection_chance"`
	Seed             int64 `yaml:"seed" json:"seed"`
}

// DefaultConfig mirrors DefaultOptions.
func DefaultConfig() Config {
	o := DefaultOptions()

	return Config{
		Width:            o.Width,
		Height:           o.Height,
		RoomAttempts:     o.RoomAttempts,
		SizeModifier:     o.SizeModifier,
		DirectionChance:  o.DirectionChance,
		ConnectionChance: o.ConnectionChance,
		Seed:             o.Seed,
	}
}

// ParseConfig decodes data over DefaultConfig, so omitted keys keep their defaults,
// and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if err := cfg.toOptions().Validate(); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	return cfg, nil
}

// LoadConfig reads and parses a YAML or JSON configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	return ParseConfig(data)
}

// Options converts cfg into generator options.
func (c Config) Options() []Option {
	return []Option{
		WithSize(c.Width, c.Height),
		WithRoomAttempts(c.RoomAttempts),
		WithSizeModifier(c.SizeModifier),
		WithDirectionChance(c.DirectionChance),
		WithConnectionChance(c.ConnectionChance),
		WithSeed(c.Seed),
	}
}

func (c Config) toOptions() Options {
	o := DefaultOptions()
	for _, opt := range c.Options() {
		opt(&o)
	}

	return o
}
