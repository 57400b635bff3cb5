// Package config provides shared configuration utilities.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt parses the variable as an integer. Unset or empty yields
// fallback; a bad value yields fallback and an error naming the key.
func GetEnvInt(key string, fallback int) (int, error) {
	return getEnvParsed(key, fallback, strconv.Atoi)
}

// GetEnvFloat parses the variable as a float64.
func GetEnvFloat(key string, fallback float64) (float64, error) {
	return getEnvParsed(key, fallback, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

// GetEnvBool parses the variable with strconv.ParseBool, also accepting
// on/off and yes/no.
func GetEnvBool(key string, fallback bool) (bool, error) {
	return getEnvParsed(key, fallback, func(s string) (bool, error) {
		switch strings.ToLower(s) {
		case "on", "yes", "y":
			return true, nil
		case "off", "no", "n":
			return false, nil
		}
		return strconv.ParseBool(s)
	})
}

// GetEnvDuration parses the variable with time.ParseDuration.
func GetEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	return getEnvParsed(key, fallback, time.ParseDuration)
}

func getEnvParsed[T any](key string, fallback T, parse func(string) (T, error)) (T, error) {
	raw := strings.TrimSpace(GetEnv(key, ""))
	if raw == "" {
		return fallback, nil
	}
	v, err := parse(raw)
	if err != nil {
		return fallback, fmt.Errorf("config: %s=%q: %w", key, raw, err)
	}
	return v, nil
}
