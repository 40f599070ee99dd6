package config

import (
	"path/filepath"

	"github.com/joho/godotenv"
)

const maxEnvSearchDepth = 3

// LoadDotEnv loads name from dir or up to three parent directories.
// Variables already present in the environment are not overridden.
// It returns the file that was loaded, or "" when none was found.
func LoadDotEnv(dir, name string) (string, error) {
	if name == "" {
		return "", nil
	}
	if filepath.IsAbs(name) {
		if err := godotenv.Load(name); err != nil {
			return "", err
		}
		return name, nil
	}

	current := dir
	for i := 0; i <= maxEnvSearchDepth; i++ {
		candidate := filepath.Join(current, name)
		if err := godotenv.Load(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}
	return "", nil
}
