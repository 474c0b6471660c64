// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type JWTConfig struct {
	SecretKey    string `mapstructure:"secret_key"`
	ExpiresHours int    `mapstructure:"expires_hours"`
}

// AppConfig はテスト生成・文生成まわりの調整値です
type AppConfig struct {
	// テスト作成時のデフォルト値（リクエストで未指定の場合）
	TestCount     int     `mapstructure:"test_count"`
	VocabRatio    float64 `mapstructure:"vocab_ratio"`
	SentenceRatio float64 `mapstructure:"sentence_ratio"`
	ReadingRatio  float64 `mapstructure:"reading_ratio"`
	// 文の自動生成の上限（コスト抑制のための調整値であり、厳密な仕様ではない）
	GeneratedSentenceLimit int `mapstructure:"generated_sentence_limit"`
	UnitScanLimit          int `mapstructure:"unit_scan_limit"`
	// セッション履歴の取得件数
	SessionHistoryLimit int `mapstructure:"session_history_limit"`
}

type MailerConfig struct {
	Type string `mapstructure:"type"` // "log", "smtp", "ses"
}

type SMTPConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	From string `mapstructure:"from"`
}

type SESConfig struct {
	Region          string `mapstructure:"region"`
	From            string `mapstructure:"from"`
	AuthType        string `mapstructure:"auth_type"` // "iam_role" or "static_credentials"
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

type FrontendConfig struct {
	BaseURL string `mapstructure:"base_url"` // 確認メールのリンク生成用
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	App      AppConfig      `mapstructure:"app"`
	Mailer   MailerConfig   `mapstructure:"mailer"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
	SES      SESConfig      `mapstructure:"ses"`
	Frontend FrontendConfig `mapstructure:"frontend"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 環境変数からの上書き (例: APP_DATABASE_URL)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
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
	if Cfg.App.TestCount <= 0 {
		Cfg.App.TestCount = DefaultTestCount
	}
	if Cfg.App.VocabRatio <= 0 {
		Cfg.App.VocabRatio = DefaultVocabRatio
	}
	if Cfg.App.SentenceRatio <= 0 {
		Cfg.App.SentenceRatio = DefaultSentenceRatio
	}
	if Cfg.App.ReadingRatio <= 0 {
		Cfg.App.ReadingRatio = DefaultReadingRatio
	}
	if Cfg.App.GeneratedSentenceLimit <= 0 {
		Cfg.App.GeneratedSentenceLimit = DefaultGeneratedSentenceLimit
	}
	if Cfg.App.UnitScanLimit <= 0 {
		Cfg.App.UnitScanLimit = DefaultUnitScanLimit
	}
	if Cfg.App.SessionHistoryLimit <= 0 {
		Cfg.App.SessionHistoryLimit = DefaultSessionHistoryLimit
	}
	if Cfg.JWT.ExpiresHours <= 0 {
		Cfg.JWT.ExpiresHours = DefaultJWTExpiresHours
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Test defaults: count=%d ratios=%.2f/%.2f/%.2f",
		Cfg.App.TestCount, Cfg.App.VocabRatio, Cfg.App.SentenceRatio, Cfg.App.ReadingRatio)

	return nil
}
