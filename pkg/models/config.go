package models

import "fmt"

// Settings holds the tunable constants of every day plus runtime options.
type Settings struct {
	InputsDir string `mapstructure:"inputs_dir"`
	DataDir   string `mapstructure:"data_dir"`
	LogLevel  string `mapstructure:"log_level"`
	Record    bool   `mapstructure:"record"`

	Calories CaloriesSettings `mapstructure:"calories"`
	Tuning   TuningSettings   `mapstructure:"tuning"`
	NoSpace  NoSpaceSettings  `mapstructure:"nospace"`
	Rope     RopeSettings     `mapstructure:"rope"`
}

// CaloriesSettings configures day 1
type CaloriesSettings struct {
	TopN int `mapstructure:"top_n"`
}

// TuningSettings configures day 6
type TuningSettings struct {
	PacketWindow  int `mapstructure:"packet_window"`
	MessageWindow int `mapstructure:"message_window"`
}

// NoSpaceSettings configures day 7
type NoSpaceSettings struct {
	Capacity     int `mapstructure:"capacity"`
	RequiredFree int `mapstructure:"required_free"`
	SmallLimit   int `mapstructure:"small_limit"`
}

// RopeSettings configures day 9
type RopeSettings struct {
	Knots int `mapstructure:"knots"`
}

// DefaultSettings mirrors the puzzle statements.
func DefaultSettings() Settings {
	return Settings{
		LogLevel: "warn",
		Calories: CaloriesSettings{TopN: 3},
		Tuning: TuningSettings{
			PacketWindow:  4,
			MessageWindow: 14,
		},
		NoSpace: NoSpaceSettings{
			Capacity:     70_000_000,
			RequiredFree: 30_000_000,
			SmallLimit:   100_000,
		},
		Rope: RopeSettings{Knots: 10},
	}
}

// Validate rejects settings no solver can run with.
func (s Settings) Validate() error {
	switch {
	case s.Calories.TopN < 1:
		return fmt.Errorf("calories.top_n must be positive, got %d", s.Calories.TopN)
	case s.Tuning.PacketWindow < 1:
		return fmt.Errorf("tuning.packet_window must be positive, got %d", s.Tuning.PacketWindow)
	case s.Tuning.MessageWindow < 1:
		return fmt.Errorf("tuning.message_window must be positive, got %d", s.Tuning.MessageWindow)
	case s.NoSpace.Capacity < s.NoSpace.RequiredFree:
		return fmt.Errorf("nospace.capacity %d is below nospace.required_free %d", s.NoSpace.Capacity, s.NoSpace.RequiredFree)
	case s.NoSpace.RequiredFree < 0:
		return fmt.Errorf("nospace.required_free must not be negative, got %d", s.NoSpace.RequiredFree)
	case s.Rope.Knots < 2:
		return fmt.Errorf("rope.knots must be at least 2, got %d", s.Rope.Knots)
	}
	return nil
}
