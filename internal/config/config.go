package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// placeholderSecret is the value shipped in the sample config.
const placeholderSecret = "CHANGE_ME"

var (
	ErrJWTSecretMissing     = errors.New("admin jwt secret key is empty")
	ErrJWTSecretPlaceholder = errors.New("admin jwt secret key is still the sample placeholder")
)

type Config struct {
	LogLevel          string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort          string        `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	CORSOrigins       []string      `yaml:"cors-origins" env:"CORS_ORIGINS" env-default:"http://localhost:5173"`
	Timezone          string        `yaml:"timezone" env:"TIMEZONE" env-default:"UTC"`
	SessionTTL        time.Duration `yaml:"session-ttl" env:"SESSION_TTL" env-default:"24h"`
	DefaultDifficulty string        `yaml:"default-difficulty" env:"DEFAULT_DIFFICULTY" env-default:"medium"`
	SQLiteStoragePath string        `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:"./data/app.db"`

	Redis    Redis    `yaml:"redis"`
	Promo    Promo    `yaml:"promo"`
	Telegram Telegram `yaml:"telegram"`
	Admin    Admin    `yaml:"admin"`
}

type Redis struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type Promo struct {
	TTLHours   int           `yaml:"ttl-hours" env:"PROMO_TTL_HOURS" env-default:"72"`
	DailyLimit int           `yaml:"daily-limit" env:"PROMO_DAILY_LIMIT" env-default:"500"`
	CodeLength int           `yaml:"code-length" env:"PROMO_CODE_LENGTH" env-default:"8"`
	ClaimTTL   time.Duration `yaml:"claim-ttl" env:"PROMO_CLAIM_TTL" env-default:"720h"`
}

type Telegram struct {
	Enabled      bool          `yaml:"enabled" env:"TELEGRAM_ENABLED" env-default:"false"`
	BotToken     string        `yaml:"bot-token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
	ChatID       string        `yaml:"chat-id" env:"TELEGRAM_CHAT_ID" env-default:""`
	ChatUsername string        `yaml:"chat-username" env:"TELEGRAM_CHAT_USERNAME" env-default:""`
	APIURL       string        `yaml:"api-url" env:"TELEGRAM_API_URL" env-default:"https://api.telegram.org"`
	Timeout      time.Duration `yaml:"timeout" env:"TELEGRAM_TIMEOUT" env-default:"5s"`
	TemplateWin  string        `yaml:"template-win" env:"TELEGRAM_TEMPLATE_WIN" env-default:"Победа! Промокод выдан: {code}"`
	TemplateLose string        `yaml:"template-lose" env:"TELEGRAM_TEMPLATE_LOSE" env-default:"Проигрыш"`
}

type Admin struct {
	Username        string        `yaml:"username" env:"ADMIN_USERNAME" env-default:"admin"`
	InitialPassword string        `yaml:"initial-password" env:"ADMIN_INITIAL_PASSWORD" env-default:""`
	JWTSecretKey    string        `yaml:"jwt-secret-key" env:"ADMIN_JWT_SECRET_KEY" env-default:""`
	TokenTTL        time.Duration `yaml:"token-ttl" env:"ADMIN_TOKEN_TTL" env-default:"12h"`
	RouteSecret     string        `yaml:"route-secret" env:"ADMIN_ROUTE_SECRET" env-default:""`
	SecureCookie    bool          `yaml:"secure-cookie" env:"ADMIN_SECURE_COOKIE" env-default:"false"`
	LoginPerMinute  int           `yaml:"login-per-minute" env:"ADMIN_LOGIN_PER_MINUTE" env-default:"5"`
}

// MustLoad - load all configurations from the config file, or from the environment when the file is absent.
func MustLoad(path string) *Config {
	config := &Config{}

	var err error
	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}

	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// Location returns the timezone that defines the calendar day of the daily promo limit.
func (that *Config) Location() (*time.Location, error) {
	location, err := time.LoadLocation(that.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", that.Timezone, err)
	}

	return location, nil
}

// SigningKey returns the admin JWT secret, refusing an empty or sample value.
func (that *Admin) SigningKey() (string, error) {
	switch that.JWTSecretKey {
	case "":
		return "", ErrJWTSecretMissing
	case placeholderSecret:
		return "", ErrJWTSecretPlaceholder
	}

	return that.JWTSecretKey, nil
}
