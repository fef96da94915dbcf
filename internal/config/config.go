package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	// Path is the SQLite DSN. The default ":memory:" keeps all state in
	// process memory; point it at a file to get a real database.
	Path    string `mapstructure:"path"`
	LogMode bool   `mapstructure:"log_mode"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	Issuer      string `mapstructure:"issuer"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

type AppConfig struct {
	// DemoUsername identifies the principal used for unauthenticated
	// requests. Seeded at startup when missing.
	DemoUsername   string `mapstructure:"demo_username"`
	SeedDemoData   bool   `mapstructure:"seed_demo_data"`
	ImportMaxBytes int64  `mapstructure:"import_max_bytes"`
	RecentLimit    int    `mapstructure:"recent_limit"`
	UpcomingLimit  int    `mapstructure:"upcoming_limit"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	App      AppConfig      `mapstructure:"app"`
	Log      LogConfig      `mapstructure:"log"`
}

var (
	appConfig *Config
	once      sync.Once
)

// Load loads configuration from given file path (e.g. "config.yaml").
// If path is empty, it defaults to "config.yaml" in current working directory.
func Load(path string) (*Config, error) {
	var err error
	once.Do(func() {
		v := viper.New()

		if path == "" {
			v.SetConfigName("config")
			v.SetConfigType("yaml")
			v.AddConfigPath(".")
		} else {
			v.SetConfigFile(path)
		}

		setDefaults(v)

		// environment overrides, e.g. OF_SERVER_PORT=9000
		v.SetEnvPrefix("OF")
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		if err = v.ReadInConfig(); err != nil {
			err = fmt.Errorf("read config: %w", err)
			return
		}

		var c Config
		if err = v.Unmarshal(&c); err != nil {
			err = fmt.Errorf("unmarshal config: %w", err)
			return
		}

		appConfig = &c
	})

	if err != nil {
		return nil, err
	}
	return appConfig, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("database.path", ":memory:")
	v.SetDefault("jwt.issuer", "organizofinanceiro")
	v.SetDefault("jwt.expire_hours", 24)
	v.SetDefault("app.demo_username", "joaosilva")
	v.SetDefault("app.seed_demo_data", true)
	v.SetDefault("app.import_max_bytes", 5*1024*1024)
	v.SetDefault("app.recent_limit", 5)
	v.SetDefault("app.upcoming_limit", 4)
	v.SetDefault("log.level", "info")
}

// Get returns the loaded global configuration.
// Call Load() once at application startup.
func Get() *Config {
	return appConfig
}
