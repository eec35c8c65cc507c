package config

import (
	"os"
	"strings"
)

// EnvFileVar names the variable that points the binaries at a dotenv file.
const EnvFileVar = "ENV_FILE"

// EnvFile returns the dotenv path the binaries load: ENV_FILE when set,
// otherwise .env in the working directory.
func EnvFile() string {
	return GetEnv(EnvFileVar, ".env")
}

// GetEnv returns the trimmed value of key, or fallback when key is unset or
// blank.
func GetEnv(key, fallback string) string {
	if v, ok := lookupEnv(key); ok {
		return v
	}
	return fallback
}

// IsEnvSet reports whether key holds a non-blank value. A whitespace-only
// DATABASE_URL therefore still selects the local SQLite file.
func IsEnvSet(key string) bool {
	_, ok := lookupEnv(key)
	return ok
}

func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
