package config

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration settings for the dashboard server.
type Config struct {
	// Server settings
	ListenAddress string
	ListenPort    string

	// Storage settings
	DataDir      string // Holds brands.json, vouchers.json, coupons.json
	PublicDir    string // Public root; uploads land in PublicDir/uploads
	EnableBackup bool

	// Upstream backend API for the resources not stored locally
	BackendURL string

	// Authentication settings
	JwtSecret         string // The actual secret key
	JwtSecretFile     string // Path to the file containing the secret
	AdminEmail        string
	AdminPasswordHash string // bcrypt hash
	TokenLifetime     time.Duration
}

const (
	envPrefix = "REWARDSADMIN_"

	defaultAddress       = "0.0.0.0"
	defaultPort          = "3000"
	defaultDataDir       = "./data"
	defaultPublicDir     = "./public"
	defaultEnableBackup  = false
	defaultBackendURL    = ""
	defaultJwtSecretFile = ""
	defaultJwtKeyFile    = "./rewardsadmin.key" // Written if we have to generate a key
	defaultAdminEmail    = ""
	defaultTokenLifetime = 24 * time.Hour

	dotEnvFile = ".env"
)

// LoadConfig loads configuration from defaults, an optional .env file, environment variables
// and command-line flags. Flags win over environment variables, which win over .env entries,
// which win over defaults.
func LoadConfig() (*Config, error) {
	// godotenv.Load never overrides variables that are already set, so the real environment
	// keeps precedence over the file.
	if err := godotenv.Load(dotEnvFile); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("WARN: Failed to load %s file: %v. Relying on environment variables.", dotEnvFile, err)
		}
	} else {
		log.Printf("INFO: Loaded environment overrides from %s", dotEnvFile)
	}

	cfg := &Config{}

	flag.StringVar(&cfg.ListenAddress, "address", getEnv("LISTEN_ADDRESS", defaultAddress), "Server listen address (Env: REWARDSADMIN_LISTEN_ADDRESS)")
	flag.StringVar(&cfg.ListenPort, "port", getEnv("LISTEN_PORT", defaultPort), "Server listen port (Env: REWARDSADMIN_LISTEN_PORT)")
	flag.StringVar(&cfg.DataDir, "data-dir", getEnv("DATA_DIR", defaultDataDir), "Directory holding the JSON record files (Env: REWARDSADMIN_DATA_DIR)")
	flag.StringVar(&cfg.PublicDir, "public-dir", getEnv("PUBLIC_DIR", defaultPublicDir), "Public directory for uploads and the dashboard export (Env: REWARDSADMIN_PUBLIC_DIR)")
	flag.BoolVar(&cfg.EnableBackup, "enable-backup", getEnvBool("ENABLE_BACKUP", defaultEnableBackup), "Keep a .bak copy of each record file before overwriting (Env: REWARDSADMIN_ENABLE_BACKUP)")
	flag.StringVar(&cfg.BackendURL, "backend-url", getEnv("BACKEND_URL", defaultBackendURL), "Base URL of the upstream backend API (Env: REWARDSADMIN_BACKEND_URL)")
	flag.StringVar(&cfg.JwtSecretFile, "jwt-secret-file", getEnv("JWT_SECRET_FILE", defaultJwtSecretFile), "Path to file containing the session signing key (Env: REWARDSADMIN_JWT_SECRET_FILE)")
	flag.StringVar(&cfg.AdminEmail, "admin-email", getEnv("ADMIN_EMAIL", defaultAdminEmail), "Email of the local admin account (Env: REWARDSADMIN_ADMIN_EMAIL)")

	// Only settable through the environment; a hash on the command line ends up in shell history.
	cfg.AdminPasswordHash = strings.TrimSpace(getEnv("ADMIN_PASSWORD_HASH", ""))

	cfg.TokenLifetime = defaultTokenLifetime

	flag.Parse()

	secretSource, err := resolveJwtSecret(cfg)
	if err != nil {
		return nil, err
	}

	// --- Path Validation ---
	if cfg.DataDir, err = resolveDir("data-dir", cfg.DataDir); err != nil {
		return nil, err
	}
	if cfg.PublicDir, err = resolveDir("public-dir", cfg.PublicDir); err != nil {
		return nil, err
	}

	cfg.BackendURL = strings.TrimRight(strings.TrimSpace(cfg.BackendURL), "/")
	if cfg.BackendURL != "" {
		if err := validateBackendURL(cfg.BackendURL); err != nil {
			return nil, err
		}
	}

	if cfg.AdminEmail != "" && cfg.AdminPasswordHash == "" {
		log.Printf("WARN: Admin email '%s' configured without REWARDSADMIN_ADMIN_PASSWORD_HASH. Local login stays disabled.", cfg.AdminEmail)
	}

	logConfiguration(cfg, secretSource)

	return cfg, nil
}

// LoginEnabled reports whether the local admin login endpoint can authenticate anyone.
func (c *Config) LoginEnabled() bool {
	return c.AdminEmail != "" && c.AdminPasswordHash != ""
}

// resolveJwtSecret fills cfg.JwtSecret and returns a human readable description of its source.
// Priority: File (flag/env) > Env Var > Default Key File > Generate.
func resolveJwtSecret(cfg *Config) (string, error) {
	if cfg.JwtSecretFile != "" {
		secretBytes, err := os.ReadFile(cfg.JwtSecretFile)
		if err == nil {
			cfg.JwtSecret = strings.TrimSpace(string(secretBytes))
			if cfg.JwtSecret != "" {
				log.Printf("INFO: Loaded session secret from specified file: %s", cfg.JwtSecretFile)
				return fmt.Sprintf("File (%s)", cfg.JwtSecretFile), nil
			}
			log.Printf("WARN: Specified secret file '%s' is empty. Ignoring.", cfg.JwtSecretFile)
		} else {
			log.Printf("WARN: Failed to read specified secret file '%s': %v. Checking other sources.", cfg.JwtSecretFile, err)
		}
	}

	if envSecret := strings.TrimSpace(getEnv("JWT_SECRET", "")); envSecret != "" {
		cfg.JwtSecret = envSecret
		return "Environment Variable (REWARDSADMIN_JWT_SECRET)", nil
	}

	secretBytes, err := os.ReadFile(defaultJwtKeyFile)
	if err == nil {
		cfg.JwtSecret = strings.TrimSpace(string(secretBytes))
		if cfg.JwtSecret != "" {
			return fmt.Sprintf("Default Key File (%s)", defaultJwtKeyFile), nil
		}
		log.Printf("WARN: Default key file '%s' is empty. Will generate a new secret.", defaultJwtKeyFile)
	} else if !os.IsNotExist(err) {
		log.Printf("WARN: Failed to read default key file '%s': %v. Will generate a new secret.", defaultJwtKeyFile, err)
	}

	log.Printf("INFO: No session secret configured. Generating a new one...")
	newSecret, err := generateRandomKey(32)
	if err != nil {
		return "", fmt.Errorf("failed to generate session secret: %w", err)
	}
	cfg.JwtSecret = newSecret

	if err := os.WriteFile(defaultJwtKeyFile, []byte(newSecret), 0600); err != nil {
		log.Printf("WARN: Failed to save generated secret to '%s': %v. Sessions will not survive a restart.", defaultJwtKeyFile, err)
		return "Generated (In Memory)", nil
	}
	return fmt.Sprintf("Generated & Saved (%s)", defaultJwtKeyFile), nil
}

// resolveDir makes a directory setting absolute and rejects paths that point at a regular file.
// A missing directory is fine; the store and the upload sidecar create it on first write.
func resolveDir(name, dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("could not determine absolute path for %s '%s': %w", name, dir, err)
	}
	info, err := os.Stat(abs)
	if err == nil && !info.IsDir() {
		return "", fmt.Errorf("%s '%s' points to a file, not a directory", name, abs)
	}
	return abs, nil
}

func validateBackendURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid backend-url '%s': %w", raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid backend-url '%s': must be an absolute http(s) URL", raw)
	}
	return nil
}

// getEnv retrieves a REWARDSADMIN_ prefixed environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(envPrefix + key); exists {
		return value
	}
	return fallback
}

// getEnvBool retrieves a boolean environment variable or returns a default value.
// Recognizes "true", "1", "yes" and "false", "0", "no" (case-insensitive).
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(envPrefix + key); exists {
		switch strings.ToLower(value) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
		log.Printf("WARN: Invalid boolean value for environment variable %s%s: '%s'. Using default: %t", envPrefix, key, value, fallback)
	}
	return fallback
}

// logConfiguration prints the loaded configuration settings. The secret itself is never logged.
func logConfiguration(cfg *Config, secretSource string) {
	backend := cfg.BackendURL
	if backend == "" {
		backend = "(disabled)"
	}
	log.Println("--- Configuration ---")
	log.Printf("Server Address: %s", cfg.ListenAddress)
	log.Printf("Server Port: %s", cfg.ListenPort)
	log.Printf("Data Directory: %s", cfg.DataDir)
	log.Printf("Public Directory: %s", cfg.PublicDir)
	log.Printf("Record File Backup Enabled: %t", cfg.EnableBackup)
	log.Printf("Backend URL: %s", backend)
	log.Printf("Session Secret Source: %s", secretSource)
	log.Printf("Local Admin Login Enabled: %t", cfg.LoginEnabled())
	log.Printf("Session Lifetime: %s", cfg.TokenLifetime)
	log.Println("---------------------")
}

// generateRandomKey returns a hex-encoded cryptographically secure random key of length bytes.
func generateRandomKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
