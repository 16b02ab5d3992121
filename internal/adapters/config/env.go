package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Unset, empty and malformed variables fall back to the default.

func getStringEnv(key string, defaultValue string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	intValue, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return intValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return boolValue
}

// getDurationEnv reads a whole number of units, e.g. seconds.
func getDurationEnv(key string, unit time.Duration, defaultValue int) time.Duration {
	return time.Duration(getIntEnv(key, defaultValue)) * unit
}
