package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config structure principale de configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	Fusion     FusionConfig     `mapstructure:"fusion"`
	Battle     BattleConfig     `mapstructure:"battle"`
	Rating     RatingConfig     `mapstructure:"rating"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// ServerConfig configuration du serveur HTTP
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Environment  string        `mapstructure:"environment"`
	Debug        bool          `mapstructure:"debug"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// DatabaseConfig configuration de la base de données
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Name            string        `mapstructure:"name"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// JWTConfig configuration JWT
type JWTConfig struct {
	Secret         string        `mapstructure:"secret"`
	ExpirationTime time.Duration `mapstructure:"expiration_time"`
}

// FusionConfig configuration spécifique à la fusion
type FusionConfig struct {
	MaxNameLength    int  `mapstructure:"max_name_length"`
	AllowPreview     bool `mapstructure:"allow_preview"`
	MaxFusionsPerDay int  `mapstructure:"max_fusions_per_day"`
}

// BattleConfig configuration spécifique au combat
type BattleConfig struct {
	MaxRosterSize    int           `mapstructure:"max_roster_size"`
	TurnTimeout      time.Duration `mapstructure:"turn_timeout"`
	MaxConcurrent    int           `mapstructure:"max_concurrent"`
	ActionsPerMinute int           `mapstructure:"actions_per_minute"`
	ActionBurstSize  int           `mapstructure:"action_burst_size"`
}

// RatingConfig configuration du système de cotation
type RatingConfig struct {
	LeaderboardSize int  `mapstructure:"leaderboard_size"`
	EnableDecay     bool `mapstructure:"enable_decay"`
}

// RateLimitConfig configuration du rate limiting
type RateLimitConfig struct {
	RequestsPerMinute int           `mapstructure:"requests_per_minute"`
	BurstSize         int           `mapstructure:"burst_size"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
}

// MonitoringConfig configuration du monitoring
type MonitoringConfig struct {
	MetricsPath string `mapstructure:"metrics_path"`
	HealthPath  string `mapstructure:"health_path"`
}

// LoggingConfig configuration des logs
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig charge la configuration depuis les variables d'environnement
func LoadConfig() (*Config, error) {
	// Configuration par défaut
	config := &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8085,
			Environment:  "development",
			Debug:        true,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			Name:            "gameserver_creatures",
			User:            "postgres",
			Password:        "postgres",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300 * time.Second,
		},
		JWT: JWTConfig{
			Secret:         "your-super-secret-jwt-key-change-in-production-minimum-64-characters",
			ExpirationTime: 24 * time.Hour,
		},
		Fusion: FusionConfig{
			MaxNameLength:    48,
			AllowPreview:     true,
			MaxFusionsPerDay: 50,
		},
		Battle: BattleConfig{
			MaxRosterSize:    4,
			TurnTimeout:      30 * time.Second,
			MaxConcurrent:    1000,
			ActionsPerMinute: 60,
			ActionBurstSize:  10,
		},
		Rating: RatingConfig{
			LeaderboardSize: 100,
			EnableDecay:     true,
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 100,
			BurstSize:         20,
			CleanupInterval:   5 * time.Minute,
		},
		Monitoring: MonitoringConfig{
			MetricsPath: "/metrics",
			HealthPath:  "/health",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	// Configuration Viper
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Mapping des variables d'environnement
	viper.BindEnv("server.host", "SERVER_HOST")
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.environment", "SERVER_ENVIRONMENT")
	viper.BindEnv("server.debug", "SERVER_DEBUG")
	viper.BindEnv("server.read_timeout", "SERVER_READ_TIMEOUT")
	viper.BindEnv("server.write_timeout", "SERVER_WRITE_TIMEOUT")

	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.name", "DATABASE_NAME")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.ssl_mode", "DATABASE_SSL_MODE")
	viper.BindEnv("database.max_open_conns", "DATABASE_MAX_OPEN_CONNS")
	viper.BindEnv("database.max_idle_conns", "DATABASE_MAX_IDLE_CONNS")
	viper.BindEnv("database.conn_max_lifetime", "DATABASE_CONN_MAX_LIFETIME")

	viper.BindEnv("jwt.secret", "JWT_SECRET")
	viper.BindEnv("jwt.expiration_time", "JWT_EXPIRATION_TIME")

	viper.BindEnv("fusion.max_name_length", "FUSION_MAX_NAME_LENGTH")
	viper.BindEnv("fusion.allow_preview", "FUSION_ALLOW_PREVIEW")
	viper.BindEnv("fusion.max_fusions_per_day", "FUSION_MAX_FUSIONS_PER_DAY")

	viper.BindEnv("battle.max_roster_size", "BATTLE_MAX_ROSTER_SIZE")
	viper.BindEnv("battle.turn_timeout", "BATTLE_TURN_TIMEOUT")
	viper.BindEnv("battle.max_concurrent", "BATTLE_MAX_CONCURRENT")
	viper.BindEnv("battle.actions_per_minute", "BATTLE_ACTIONS_PER_MINUTE")
	viper.BindEnv("battle.action_burst_size", "BATTLE_ACTION_BURST_SIZE")

	viper.BindEnv("rating.leaderboard_size", "RATING_LEADERBOARD_SIZE")
	viper.BindEnv("rating.enable_decay", "RATING_ENABLE_DECAY")

	viper.BindEnv("rate_limit.requests_per_minute", "RATE_LIMIT_REQUESTS_PER_MINUTE")
	viper.BindEnv("rate_limit.burst_size", "RATE_LIMIT_BURST_SIZE")

	viper.BindEnv("monitoring.metrics_path", "MONITORING_METRICS_PATH")
	viper.BindEnv("monitoring.health_path", "MONITORING_HEALTH_PATH")

	viper.BindEnv("logging.level", "LOG_LEVEL")
	viper.BindEnv("logging.format", "LOG_FORMAT")

	// Charger le fichier de configuration s'il existe
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Merger avec la configuration par défaut
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validation
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Validate valide la configuration
func (c *Config) Validate() error {
	// Validation serveur
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	// Validation JWT
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters long")
	}

	// Validation database
	if c.Database.Name == "" {
		return fmt.Errorf("database name is required")
	}

	// Validation combat
	if c.Battle.MaxRosterSize < 1 || c.Battle.MaxRosterSize > 4 {
		return fmt.Errorf("battle roster size must be between 1 and 4")
	}
	if c.Battle.ActionsPerMinute <= 0 {
		return fmt.Errorf("battle actions per minute must be positive")
	}

	// Validation fusion
	if c.Fusion.MaxNameLength <= 0 {
		return fmt.Errorf("fusion max name length must be positive")
	}

	return nil
}

// GetDSN retourne la chaîne de connection PostgreSQL
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}
