// Package config reads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"delivery-time-service/internal/platform/logger"

	"github.com/joho/godotenv"
)

// Load reads .env files into the environment without overriding variables
// that are already set. A missing file is not an error.
// Load runs before logger.Init so LOG_* values from .env take effect; it must not log.
func Load(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load config: %w", err)
	}
	return nil
}

func lookup(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// Get returns the trimmed value of key or fallback when unset.
func Get(key, fallback string) string {
	if v := lookup(key); v != "" {
		return v
	}
	return fallback
}

// MustGet returns the value of key or an error when it is unset.
func MustGet(key string) (string, error) {
	v := lookup(key)
	if v == "" {
		return "", fmt.Errorf("config: %s is required", key)
	}
	return v, nil
}

// GetInt returns fallback when key is unset or not an integer.
func GetInt(key string, fallback int) int {
	s := lookup(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		logger.Get().Warn().Str("key", key).Str("value", s).Int("default", fallback).Msg("invalid int; using default")
		return fallback
	}
	return v
}

// GetBool returns fallback when key is unset or not a bool.
func GetBool(key string, fallback bool) bool {
	s := lookup(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		logger.Get().Warn().Str("key", key).Str("value", s).Bool("default", fallback).Msg("invalid bool; using default")
		return fallback
	}
	return v
}

// GetDuration returns fallback when key is unset or not a duration.
func GetDuration(key string, fallback time.Duration) time.Duration {
	s := lookup(key)
	if s == "" {
		return fallback
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		logger.Get().Warn().Str("key", key).Str("value", s).Dur("default", fallback).Msg("invalid duration; using default")
		return fallback
	}
	return v
}

// GetList splits a comma-separated value, dropping empty items.
func GetList(key string, fallback []string) []string {
	s := lookup(key)
	if s == "" {
		return fallback
	}
	out := make([]string, 0, 4)
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

// GetEnum returns the value of key if it is one of allowed (case-insensitive),
// fallback when unset, and an error otherwise.
func GetEnum(key, fallback string, allowed ...string) (string, error) {
	v := strings.ToLower(Get(key, fallback))
	for _, a := range allowed {
		if v == strings.ToLower(a) {
			return v, nil
		}
	}
	return "", fmt.Errorf("config: %s=%q must be one of %s", key, v, strings.Join(allowed, "|"))
}
