// Package config предоставляет структуры и функцию для загрузки конфигурации
// из переменных окружения. Отсутствие обязательной переменной — фатальная
// ошибка на старте приложения.
package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек.
type Config struct {
	Env                     string `env:"ENV" env-default:"local"`
	StorageConnectionString string `env:"STORAGE_CONNECTION_STRING" env-required:"true"`
	MigrationsPath          string `env:"MIGRATIONS_PATH" env-default:"./migrations"`
	RedisConnection
	HTTPServer
	JWTToken
	GoogleOAuth
}

// HTTPServer структура для настройки сервера.
type HTTPServer struct {
	AddressHTTP string        `env:"HTTP_ADDRESS" env-default:":8080"`
	TimeoutHTTP time.Duration `env:"HTTP_TIMEOUT" env-default:"10s"`
	IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// RedisConnection структура для настройки подключения к redis.
type RedisConnection struct {
	AddressRedis string        `env:"REDIS_ADDRESS" env-default:"localhost:6379"`
	Password     string        `env:"REDIS_PASSWORD" env-default:""`
	User         string        `env:"REDIS_USER" env-default:""`
	DB           int           `env:"REDIS_DB" env-default:"0"`
	MaxRetries   int           `env:"REDIS_MAX_RETRIES" env-default:"3"`
	DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" env-default:"5s"`
	TimeoutRedis time.Duration `env:"REDIS_TIMEOUT" env-default:"5s"`
}

// JWTToken структура для работы с jwt-токеном.
type JWTToken struct {
	JWTSecretKey string        `env:"JWT_SECRET_KEY" env-required:"true"`
	TokenTTL     time.Duration `env:"TOKEN_TTL" env-default:"24h"`
}

// GoogleOAuth хранит реквизиты внешнего провайдера идентификации.
// Поля опциональны: сам OAuth-флоу выполняет внешний провайдер.
type GoogleOAuth struct {
	ClientID     string `env:"GOOGLE_OAUTH_CLIENT_ID" env-default:""`
	ClientSecret string `env:"GOOGLE_OAUTH_CLIENT_SECRET" env-default:""`
}

// MustLoad загружает конфигурацию из окружения.
// Завершает процесс, если обязательная переменная не задана.
func MustLoad() *Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}
