package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"resume-screener/internal/domain/matching"
	"resume-screener/internal/textsim"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Matching matching.Config
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout time.Duration
	PoolMaxConns   int32
	PoolMinConns   int32
}

type AuthConfig struct {
	JWTAccessSecret  string
	JWTAccessExpiry  time.Duration
	OperatorEmail    string
	OperatorPassHash string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:         opt("DB_HOST"),
		DBPort:         opt("DB_PORT"),
		DBName:         opt("DB_NAME"),
		DBUser:         opt("DB_USER"),
		DBPassword:     opt("DB_PASSWORD"),
		DBSSLMode:      opt("DB_SSL_MODE"),
		ConnectTimeout: optDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:   int32(optInt("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:   int32(optInt("DB_POOL_MIN_CONNS", 0)),
	}

	cfg.Auth = AuthConfig{
		JWTAccessSecret:  req("JWT_ACCESS_SECRET"),
		JWTAccessExpiry:  optDuration("JWT_ACCESS_EXPIRES_IN", 15*time.Minute),
		OperatorEmail:    opt("OPERATOR_EMAIL"),
		OperatorPassHash: opt("OPERATOR_PASSWORD_HASH"),
	}

	cfg.Matching = loadMatching()

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	// Bad thresholds or weights fail startup rather than producing
	// silently wrong scores later.
	if err := cfg.Matching.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadMatching() matching.Config {
	m := matching.DefaultConfig()

	m.PotentialThreshold = optFloat("MATCH_POTENTIAL_THRESHOLD", m.PotentialThreshold)
	m.ReviewThreshold = optFloat("MATCH_REVIEW_THRESHOLD", m.ReviewThreshold)

	m.Weights = matching.Weights{
		SkillMatch:      optFloat("MATCH_WEIGHT_SKILL", m.Weights.SkillMatch),
		TextSimilarity:  optFloat("MATCH_WEIGHT_TEXT", m.Weights.TextSimilarity),
		ExperienceMatch: optFloat("MATCH_WEIGHT_EXPERIENCE", m.Weights.ExperienceMatch),
	}

	m.Vectorizer = textsim.Params{
		MaxFeatures: optInt("VECTORIZER_MAX_FEATURES", m.Vectorizer.MaxFeatures),
		NgramMin:    optInt("VECTORIZER_NGRAM_MIN", m.Vectorizer.NgramMin),
		NgramMax:    optInt("VECTORIZER_NGRAM_MAX", m.Vectorizer.NgramMax),
		MinDF:       optInt("VECTORIZER_MIN_DF", m.Vectorizer.MinDF),
		MaxDF:       optFloat("VECTORIZER_MAX_DF", m.Vectorizer.MaxDF),
	}

	return m
}

func optInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func optFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

func optDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	if v, err := time.ParseDuration(raw); err == nil && v > 0 {
		return v
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return def
}
