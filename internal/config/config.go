// internal/config/config.go
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	JWT struct {
		SecretKey    string `mapstructure:"secret_key"`
		ExpiresInHrs int    `mapstructure:"expires_in_hours"`
	} `mapstructure:"jwt"`
	Mailer struct {
		Type string `mapstructure:"type"` // "log", "smtp", "ses"
	} `mapstructure:"mailer"`
	SMTP SMTPConfig `mapstructure:"smtp"`
	SES  SESConfig  `mapstructure:"ses"`
	App  struct {
		XPPerCompletion int    `mapstructure:"xp_per_completion"`
		LevelDivisor    int    `mapstructure:"level_divisor"`
		HeatmapWeeks    int    `mapstructure:"heatmap_weeks"`
		TopStreakCount  int    `mapstructure:"top_streak_count"`
		Timezone        string `mapstructure:"timezone"` // 暦日境界のIANAタイムゾーン名。空ならプロセスのローカル時刻
	} `mapstructure:"app"`
}

type SMTPConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	From string `mapstructure:"from"`
}

type SESConfig struct {
	Region          string `mapstructure:"region"`
	AuthType        string `mapstructure:"auth_type"` // "static_credentials" or "iam_role"
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	From            string `mapstructure:"from"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	err := viper.Unmarshal(&Cfg)
	if err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.JWT.ExpiresInHrs <= 0 {
		Cfg.JWT.ExpiresInHrs = DefaultJWTExpiresInHrs
	}
	if Cfg.App.XPPerCompletion <= 0 {
		Cfg.App.XPPerCompletion = DefaultXPPerCompletion
	}
	if Cfg.App.LevelDivisor <= 0 {
		Cfg.App.LevelDivisor = DefaultLevelDivisor
	}
	if Cfg.App.HeatmapWeeks <= 0 {
		Cfg.App.HeatmapWeeks = DefaultHeatmapWeeks
	}
	if Cfg.App.TopStreakCount <= 0 {
		Cfg.App.TopStreakCount = DefaultTopStreakCount
	}
	if Cfg.Mailer.Type == "" {
		Cfg.Mailer.Type = "log"
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if Cfg.JWT.SecretKey == "" {
		log.Println("Warning: JWT secret key is not set in config.")
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("XP Per Completion: %d", Cfg.App.XPPerCompletion)
	log.Printf("Heatmap Weeks: %d", Cfg.App.HeatmapWeeks)
	log.Printf("Day Boundary Timezone: %s", timezoneLabel(Cfg.App.Timezone))

	return nil
}

// DayBoundaryLocation は暦日境界 (「今日」の判定) に使うタイムゾーンを返します。
// 書き込み側 (完了の重複チェック) と読み取り側 (ストリーク計算・ヒートマップ) の
// 両方が必ずここを経由することで、日境界のズレを防ぎます。
func (c *Config) DayBoundaryLocation() *time.Location {
	if c.App.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		log.Printf("Warning: invalid app.timezone %q, falling back to local time: %v", c.App.Timezone, err)
		return time.Local
	}
	return loc
}

func timezoneLabel(tz string) string {
	if tz == "" {
		return "(process local)"
	}
	return tz
}
