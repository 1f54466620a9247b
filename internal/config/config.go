package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every key when read from the environment:
// remote.save_url becomes STOREADMIN_REMOTE_SAVE_URL.
const EnvPrefix = "STOREADMIN"

type Config struct {
	Addr        string `mapstructure:"addr"`
	LogLevel    string `mapstructure:"log_level"`
	UploadLimit int64  `mapstructure:"upload_limit"`

	Remote RemoteConfig `mapstructure:"remote"`
	Admin  AdminConfig  `mapstructure:"admin"`
	Store  StoreConfig  `mapstructure:"store"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

type RemoteConfig struct {
	SaveURL string        `mapstructure:"save_url"`
	DataURL string        `mapstructure:"data_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type AdminConfig struct {
	Password     string        `mapstructure:"password"`
	PasswordHash string        `mapstructure:"password_hash"`
	CookieSecret string        `mapstructure:"cookie_secret"`
	CookieSecure bool          `mapstructure:"cookie_secure"`
	SessionTTL   time.Duration `mapstructure:"session_ttl"`

	// SecretGenerated is set when no cookie secret was configured and a
	// random one was minted. Logins then do not survive a restart.
	SecretGenerated bool `mapstructure:"-"`
}

type StoreConfig struct {
	Driver     string `mapstructure:"driver"`
	LocalDir   string `mapstructure:"local_dir"`
	MySQLDSN   string `mapstructure:"mysql_dsn"`
	S3Region   string `mapstructure:"s3_region"`
	S3Bucket   string `mapstructure:"s3_bucket"`
	S3Prefix   string `mapstructure:"s3_prefix"`
	S3Endpoint string `mapstructure:"s3_endpoint"`
}

var defaults = map[string]any{
	"addr":         ":8080",
	"log_level":    "info",
	"upload_limit": int64(2 << 20),

	"remote.save_url": "",
	"remote.data_url": "",
	"remote.timeout":  "15s",

	"admin.password":      "",
	"admin.password_hash": "",
	"admin.cookie_secret": "",
	"admin.cookie_secure": false,
	"admin.session_ttl":   "12h",

	"store.driver":      "local",
	"store.local_dir":   "./storage/data",
	"store.mysql_dsn":   "",
	"store.s3_region":   "",
	"store.s3_bucket":   "",
	"store.s3_prefix":   "storeadmin/",
	"store.s3_endpoint": "",
}

// Load reads .env, then the optional config file, then STOREADMIN_* env
// vars, then the flags bound to config keys, when set explicitly. Later
// sources win. An empty file means ./config.yaml if it exists.
func Load(file string, flags map[string]*pflag.Flag) (Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, f := range flags {
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return Config{}, fmt.Errorf("bind flag %s: %w", f.Name, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if cfg.Admin.CookieSecret == "" {
		secret, err := randomSecret()
		if err != nil {
			return Config{}, err
		}
		cfg.Admin.CookieSecret = secret
		cfg.Admin.SecretGenerated = true
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("addr must not be empty"))
	}
	if c.UploadLimit <= 0 {
		errs = append(errs, errors.New("upload_limit must be positive"))
	}
	if c.Remote.Timeout <= 0 {
		errs = append(errs, errors.New("remote.timeout must be positive"))
	}
	if c.Admin.SessionTTL <= 0 {
		errs = append(errs, errors.New("admin.session_ttl must be positive"))
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// SlogLevel returns the configured level, info when it does not parse.
func (c Config) SlogLevel() slog.Level {
	l, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level %q: %w", s, err)
	}
	return l, nil
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate cookie secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}
