package main

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the host's configuration values.
type Config struct {
	Maze    string // Built-in maze shown at start-up
	File    string // Custom maze file; wins over Maze when set
	Speed   string // Speed preset name: fast, normal or slow
	LogPath string // Log file; logging is discarded when empty
}

// loadConfig reads the environment, loading a .env file first if present.
// The returned error only reports a missing or unreadable .env file.
func loadConfig() (Config, error) {
	envErr := godotenv.Load()

	return Config{
		Maze:    getEnvWithDefault("MAZEVIZ_MAZE", "corridors"),
		File:    getEnvWithDefault("MAZEVIZ_FILE", ""),
		Speed:   getEnvWithDefault("MAZEVIZ_SPEED", "normal"),
		LogPath: getEnvWithDefault("MAZEVIZ_LOG", ""),
	}, envErr
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
