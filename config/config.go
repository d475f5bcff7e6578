package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	DB     DBConfig
	Redis  RedisConfig
	JWT    JWTConfig
	Cookie CookieConfig
	CORS   CORSConfig
	Asset  AssetConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

type CookieConfig struct {
	// ExpireDays is the Max-Age of the session cookies, in days.
	ExpireDays int
}

type CORSConfig struct {
	// AllowedOrigins holds the portal and dashboard origins allowed to send
	// credentialed requests.
	AllowedOrigins []string
}

type AssetConfig struct {
	// BaseURL of the external asset host doctor avatars are relayed to.
	BaseURL string
	APIKey  string
	// UploadTimeout bounds a single relay round trip.
	UploadTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	jwtExpiry, err := time.ParseDuration(viper.GetString("JWT_EXPIRY"))
	if err != nil {
		jwtExpiry = 7 * 24 * time.Hour
	}

	uploadTimeout, err := time.ParseDuration(viper.GetString("ASSET_UPLOAD_TIMEOUT"))
	if err != nil {
		uploadTimeout = 30 * time.Second
	}

	cookieDays := viper.GetInt("COOKIE_EXPIRE")
	if cookieDays <= 0 {
		cookieDays = 7
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
			Expiry: jwtExpiry,
		},
		Cookie: CookieConfig{
			ExpireDays: cookieDays,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitOrigins(viper.GetString("ALLOWED_ORIGINS")),
		},
		Asset: AssetConfig{
			BaseURL:       viper.GetString("ASSET_HOST_URL"),
			APIKey:        viper.GetString("ASSET_HOST_KEY"),
			UploadTimeout: uploadTimeout,
		},
	}

	return config, nil
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
