package fount

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/Fount-Gallery/fount-contracts/fount/auction"
	"github.com/Fount-Gallery/fount-contracts/fount/database"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type Config struct {
	Log     LogConfig         `toml:"log"`
	DB      database.DBConfig `toml:"db"`
	Auction AuctionConfig     `toml:"auction"`
	House   HouseConfig       `toml:"house"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

type AuctionConfig struct {
	ReservePrice        int64  `toml:"reserve_price"`
	Duration            string `toml:"duration"`
	TimeBuffer          string `toml:"time_buffer"`
	IncrementPercentage int64  `toml:"increment_percentage"`
}

type HouseConfig struct {
	Custodian     string `toml:"custodian"`
	SweepInterval string `toml:"sweep_interval"`
}

// AuctionSettings converts the duration strings into an engine config,
// falling back to defaults for anything left unset.
func (c *Config) AuctionSettings() (auction.Config, error) {
	cfg := auction.DefaultConfig()

	if c.Auction.ReservePrice > 0 {
		cfg.ReservePrice = c.Auction.ReservePrice
	}
	if c.Auction.IncrementPercentage > 0 {
		cfg.IncrementPercentage = c.Auction.IncrementPercentage
	}
	if c.Auction.Duration != "" {
		d, err := time.ParseDuration(c.Auction.Duration)
		if err != nil {
			return cfg, fmt.Errorf("invalid auction duration: %w", err)
		}
		cfg.Duration = d
	}
	if c.Auction.TimeBuffer != "" {
		d, err := time.ParseDuration(c.Auction.TimeBuffer)
		if err != nil {
			return cfg, fmt.Errorf("invalid auction time buffer: %w", err)
		}
		cfg.TimeBuffer = d
	}

	return cfg, nil
}

// SweepInterval returns the settlement sweep cadence, defaulting to a minute.
func (c *Config) SweepInterval() (time.Duration, error) {
	if c.House.SweepInterval == "" {
		return time.Minute, nil
	}
	d, err := time.ParseDuration(c.House.SweepInterval)
	if err != nil {
		return 0, fmt.Errorf("invalid sweep interval: %w", err)
	}
	return d, nil
}
