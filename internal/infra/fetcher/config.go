// Package fetcher provides the HTTP probe used to verify that article
// images are reachable before an article is accepted.
package fetcher

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// ImageCheckConfig holds the configuration for image reachability checks.
//
// Security settings:
//   - DenyPrivateIPs: Prevents SSRF attacks by blocking private IP addresses
//   - MaxRedirects: Prevents infinite redirect loops
//   - Timeout: Prevents resource starvation from slow servers
//
// Feature toggle:
//   - Enabled: Allows the check to be disabled without code changes
type ImageCheckConfig struct {
	// Enabled controls whether the reachability check runs at all.
	// When false, every image URL is accepted without a request.
	// Default: true
	Enabled bool

	// Timeout is the maximum duration for a single probe request.
	// Default: 10s
	Timeout time.Duration

	// MaxRedirects is the maximum number of HTTP redirects to follow.
	// Each redirect target is validated for security (SSRF check).
	// Default: 5
	MaxRedirects int

	// DenyPrivateIPs controls whether to block access to private IP addresses.
	// When true, URLs resolving to private/loopback/link-local IPs are rejected.
	// Should always be true in production.
	// Default: true
	DenyPrivateIPs bool
}

// DefaultConfig returns the default configuration for image checks.
func DefaultConfig() ImageCheckConfig {
	return ImageCheckConfig{
		Enabled:        true,
		Timeout:        10 * time.Second,
		MaxRedirects:   5,
		DenyPrivateIPs: true,
	}
}

// Validate checks if the configuration values are valid and safe.
func (c *ImageCheckConfig) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}

	if c.MaxRedirects < 0 || c.MaxRedirects > 10 {
		return fmt.Errorf("max redirects must be between 0 and 10, got %d", c.MaxRedirects)
	}

	return nil
}

// LoadConfigFromEnv loads configuration from environment variables.
// If a variable is not set, the default value is used.
//
// Environment variables:
//   - IMAGE_CHECK_ENABLED: "true" or "false" (default: true)
//   - IMAGE_CHECK_TIMEOUT: duration string, e.g., "10s" (default: 10s)
//   - IMAGE_CHECK_MAX_REDIRECTS: integer (default: 5)
//   - IMAGE_CHECK_DENY_PRIVATE_IPS: "true" or "false" (default: true)
func LoadConfigFromEnv() (ImageCheckConfig, error) {
	cfg := DefaultConfig()

	if val := os.Getenv("IMAGE_CHECK_ENABLED"); val != "" {
		cfg.Enabled = val == "true"
	}

	if val := os.Getenv("IMAGE_CHECK_TIMEOUT"); val != "" {
		parsed, err := time.ParseDuration(val)
		if err != nil {
			return cfg, fmt.Errorf("invalid IMAGE_CHECK_TIMEOUT: %v (expected format: '10s', '1m')", err)
		}
		cfg.Timeout = parsed
	}

	if val := os.Getenv("IMAGE_CHECK_MAX_REDIRECTS"); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			return cfg, fmt.Errorf("invalid IMAGE_CHECK_MAX_REDIRECTS: %v", err)
		}
		cfg.MaxRedirects = parsed
	}

	if val := os.Getenv("IMAGE_CHECK_DENY_PRIVATE_IPS"); val != "" {
		cfg.DenyPrivateIPs = val == "true"
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
