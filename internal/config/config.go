package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Addr      string `mapstructure:"addr"`
	DBDSN     string `mapstructure:"db_dsn"`
	LogFile   string `mapstructure:"log_file"`
	SeedCount int    `mapstructure:"seed_count"`
}

// Load reads configuration from edshop.yaml (optional) and EDSHOP_*
// environment variables, falling back to defaults that run out of the box.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("edshop")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("addr", ":8080")
	v.SetDefault("db_dsn", "eds.db") // sqlite file in project root
	v.SetDefault("log_file", "")
	v.SetDefault("seed_count", 50)

	v.SetEnvPrefix("EDSHOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	log.Printf("[config] ADDR=%s DB_DSN=%s LOG_FILE=%s SEED_COUNT=%d",
		cfg.Addr, cfg.DBDSN, cfg.LogFile, cfg.SeedCount)
	return cfg, nil
}
