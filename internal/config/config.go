package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config carries all startup configuration. It is built once in main and
// passed into constructors; nothing reads viper after Load returns.
type Config struct {
	Port     string
	LogLevel string
	DB       DB
	Auth     Auth
	SMTP     SMTP
	Storage  Storage
	Mail     Mail
}

type DB struct {
	Path string
}

// Auth holds token-signing configuration. TokenTTL is the default lifetime
// for issued tokens; AccessTokenTTL is the longer lifetime used by the
// signup/login endpoints.
type Auth struct {
	SigningKey     string
	TokenTTL       time.Duration
	AccessTokenTTL time.Duration
}

type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
}

// Storage selects the upload backend: "local" or "s3".
type Storage struct {
	Backend  string
	LocalDir string
	S3       S3
}

type S3 struct {
	Region    string
	Bucket    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// Mail holds addressing for contact-form notifications.
type Mail struct {
	From         string
	AdminAddress string
	TemplatesDir string
}

const (
	defaultTokenTTL       = 15 * time.Minute
	defaultAccessTokenTTL = 90 * time.Minute
)

// ErrNoSigningKey is returned when AUTH_SIGNING_KEY is absent; the service
// refuses to start with an empty secret.
var ErrNoSigningKey = errors.New("auth.signing_key is not set")

// Load reads configs/config.yml plus environment (a .env file is honored if
// present) and returns the assembled Config.
func Load() (*Config, error) {
	// Missing .env is fine; env vars may come from the real environment.
	_ = godotenv.Load()

	viper.AddConfigPath("configs")
	viper.SetConfigName("config")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("port", "8080")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("db.path", "app.db")
	viper.SetDefault("auth.token_ttl", defaultTokenTTL)
	viper.SetDefault("auth.access_token_ttl", defaultAccessTokenTTL)
	viper.SetDefault("smtp.port", 25)
	viper.SetDefault("storage.backend", "local")
	viper.SetDefault("storage.local_dir", "uploads")
	viper.SetDefault("mail.templates_dir", "templates/email")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{
		Port:     viper.GetString("port"),
		LogLevel: viper.GetString("log.level"),
		DB: DB{
			Path: viper.GetString("db.path"),
		},
		Auth: Auth{
			SigningKey:     viper.GetString("auth.signing_key"),
			TokenTTL:       viper.GetDuration("auth.token_ttl"),
			AccessTokenTTL: viper.GetDuration("auth.access_token_ttl"),
		},
		SMTP: SMTP{
			Host:     viper.GetString("smtp.host"),
			Port:     viper.GetInt("smtp.port"),
			Username: viper.GetString("smtp.user"),
			Password: viper.GetString("smtp.pass"),
		},
		Storage: Storage{
			Backend:  viper.GetString("storage.backend"),
			LocalDir: viper.GetString("storage.local_dir"),
			S3: S3{
				Region:    viper.GetString("s3.region"),
				Bucket:    viper.GetString("s3.bucket"),
				Endpoint:  viper.GetString("s3.endpoint"),
				AccessKey: viper.GetString("s3.access_key"),
				SecretKey: viper.GetString("s3.secret_key"),
			},
		},
		Mail: Mail{
			From:         viper.GetString("mail.from"),
			AdminAddress: viper.GetString("mail.admin_address"),
			TemplatesDir: viper.GetString("mail.templates_dir"),
		},
	}

	if cfg.Auth.SigningKey == "" {
		return nil, ErrNoSigningKey
	}
	return cfg, nil
}
