package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPAddr        = ":8080"
	defaultDatabaseURL     = "companyprofile.db"
	defaultJWTSecret       = "your-secret-key"
	defaultJWTTTL          = "1h"
	defaultCORSOrigins     = "http://localhost:3000"
	defaultMaxUploadSize   = "10485760"
	defaultLogLevel        = "info"
	defaultMediaDriver     = "imagekit"
	defaultImageKitUpload  = "https://upload.imagekit.io/api/v1/files/upload"
	defaultImageKitAPI     = "https://api.imagekit.io"
	defaultS3Region        = "us-east-1"
	defaultRecaptchaVerify = "https://www.google.com/recaptcha/api/siteverify"
)

const (
	MediaDriverImageKit = "imagekit"
	MediaDriverS3       = "s3"
	MediaDriverMemory   = "memory"
)

type Config struct {
	AppEnv        string
	HTTPAddr      string
	DatabaseURL   string
	JWTSecret     string
	JWTTTL        time.Duration
	CORSOrigins   []string
	MaxUploadSize int64
	LogLevel      string
	LogPretty     bool

	Media     MediaConfig
	Recaptcha RecaptchaConfig
	Redis     RedisConfig
}

type MediaConfig struct {
	Driver   string
	ImageKit ImageKitConfig
	S3       S3Config
}

type ImageKitConfig struct {
	PrivateKey  string
	URLEndpoint string
	UploadURL   string
	APIURL      string
}

type S3Config struct {
	Endpoint      string
	Region        string
	Bucket        string
	AccessKey     string
	SecretKey     string
	PathStyle     bool
	PublicBaseURL string
}

// RecaptchaConfig is disabled when Secret is empty.
type RecaptchaConfig struct {
	Secret    string
	VerifyURL string
}

// RedisConfig is disabled when Addr is empty.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Load reads an optional .env file and then the process environment.
func Load(files ...string) (*Config, error) {
	_ = godotenv.Load(files...)
	return FromEnv(os.Getenv)
}

// FromEnv builds the config from an arbitrary lookup so tests don't have to
// touch the process environment.
func FromEnv(lookup func(string) string) (*Config, error) {
	get := func(name, fallback string) string {
		if v := strings.TrimSpace(lookup(name)); v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{}
	cfg.AppEnv = strings.ToLower(get("APP_ENV", "dev"))
	cfg.HTTPAddr = get("HTTP_ADDR", defaultHTTPAddr)
	if port := lookup("PORT"); port != "" && lookup("HTTP_ADDR") == "" {
		cfg.HTTPAddr = ":" + strings.TrimSpace(port)
	}
	cfg.DatabaseURL = get("DATABASE_URL", defaultDatabaseURL)
	cfg.JWTSecret = get("JWT_SECRET", defaultJWTSecret)
	cfg.LogLevel = strings.ToLower(get("LOG_LEVEL", defaultLogLevel))
	cfg.LogPretty = parseBool(get("LOG_PRETTY", "false"))

	var err error
	cfg.JWTTTL, err = parseDuration("JWT_TTL", get("JWT_TTL", defaultJWTTTL))
	if err != nil {
		return nil, err
	}

	cfg.MaxUploadSize, err = strconv.ParseInt(get("MAX_UPLOAD_SIZE", defaultMaxUploadSize), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_UPLOAD_SIZE value: %w", err)
	}

	for _, o := range strings.Split(get("CORS_ALLOWED_ORIGINS", defaultCORSOrigins), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	cfg.Media = MediaConfig{
		Driver: strings.ToLower(get("MEDIA_DRIVER", defaultMediaDriver)),
		ImageKit: ImageKitConfig{
			PrivateKey:  get("IMAGEKIT_PRIVATE_KEY", ""),
			URLEndpoint: strings.TrimRight(get("IMAGEKIT_URL_ENDPOINT", ""), "/"),
			UploadURL:   get("IMAGEKIT_UPLOAD_URL", defaultImageKitUpload),
			APIURL:      strings.TrimRight(get("IMAGEKIT_API_URL", defaultImageKitAPI), "/"),
		},
		S3: S3Config{
			Endpoint:      get("S3_ENDPOINT", ""),
			Region:        get("S3_REGION", defaultS3Region),
			Bucket:        get("S3_BUCKET", ""),
			AccessKey:     get("S3_ACCESS_KEY", ""),
			SecretKey:     get("S3_SECRET_KEY", ""),
			PathStyle:     parseBool(get("S3_PATH_STYLE", "false")),
			PublicBaseURL: strings.TrimRight(get("S3_PUBLIC_BASE_URL", ""), "/"),
		},
	}

	cfg.Recaptcha = RecaptchaConfig{
		Secret:    get("RECAPTCHA_SECRET_KEY", ""),
		VerifyURL: get("RECAPTCHA_VERIFY_URL", defaultRecaptchaVerify),
	}

	cfg.Redis = RedisConfig{
		Addr:     get("REDIS_ADDR", ""),
		Password: get("REDIS_PASSWORD", ""),
	}
	if db := get("REDIS_DB", ""); db != "" {
		cfg.Redis.DB, err = strconv.Atoi(db)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value %q: %w", db, err)
		}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsProdLike reports whether defaults for secrets must be rejected.
func (c *Config) IsProdLike() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production" || c.AppEnv == "release"
}

func validate(cfg *Config) error {
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.MaxUploadSize <= 0 {
		return fmt.Errorf("MAX_UPLOAD_SIZE must be > 0")
	}
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}

	switch cfg.Media.Driver {
	case MediaDriverImageKit:
		if cfg.Media.ImageKit.PrivateKey == "" {
			return fmt.Errorf("IMAGEKIT_PRIVATE_KEY must be set when MEDIA_DRIVER=imagekit")
		}
		if cfg.Media.ImageKit.URLEndpoint == "" {
			return fmt.Errorf("IMAGEKIT_URL_ENDPOINT must be set when MEDIA_DRIVER=imagekit")
		}
	case MediaDriverS3:
		if cfg.Media.S3.Bucket == "" {
			return fmt.Errorf("S3_BUCKET must be set when MEDIA_DRIVER=s3")
		}
		if cfg.Media.S3.PublicBaseURL == "" {
			return fmt.Errorf("S3_PUBLIC_BASE_URL must be set when MEDIA_DRIVER=s3")
		}
	case MediaDriverMemory:
	default:
		return fmt.Errorf("MEDIA_DRIVER must be one of: imagekit, s3, memory")
	}

	if cfg.IsProdLike() {
		if cfg.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if cfg.Media.Driver == MediaDriverMemory {
			return fmt.Errorf("in prod/release MEDIA_DRIVER must not be memory")
		}
	}
	return nil
}

func parseDuration(name, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseBool(value string) bool {
	value = strings.ToLower(strings.TrimSpace(value))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}
