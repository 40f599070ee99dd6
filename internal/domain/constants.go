package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// ArtifactPermissions is the permission for generated source files (rw-r--r--)
	ArtifactPermissions = 0o644
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// Timeout and duration constants
const (
	// DefaultGenerationTimeout bounds one generation run when preferences.timeout is unset
	DefaultGenerationTimeout = 120 * time.Second
)

// Generation defaults
const (
	DefaultModelName        = "gemini-flash"
	DefaultGeminiModelID    = "gemini-2.5-flash"
	DefaultSourceLanguage   = "python"
	DefaultArtifactFileName = "app.py"
	DefaultMaxTokens        = 8192

	ArtifactNamingFixed  = "fixed"
	ArtifactNamingUnique = "unique"
)

// Environment variables
const (
	EnvConfigPath = "APPGEN_CONFIG"
	EnvDebug      = "APPGEN_DEBUG"
	EnvAPIKey     = "APPGEN_API_KEY"
	// EnvLegacyCredential is the .env key the first prototype read the Gemini key from.
	EnvLegacyCredential = "gem"
)
