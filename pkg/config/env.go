package config

import (
	"os"
	"strings"
)

// GetEnv returns the environment variable value for key, or def if unset or empty.
func GetEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// GetEnvList returns the comma-separated environment variable value for key
// as a trimmed list, or def if unset. A variable set to "-" yields an empty list.
func GetEnvList(key string, def []string) []string {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return def
	}
	if val == "-" {
		return []string{}
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// GetEnvFields returns the environment variable value for key split on
// whitespace (a command line without shell quoting), or def if unset or empty.
func GetEnvFields(key string, def []string) []string {
	if val := os.Getenv(key); val != "" {
		if fields := strings.Fields(val); len(fields) > 0 {
			return fields
		}
	}
	return def
}
