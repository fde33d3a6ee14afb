package config

import (
	"fmt"
	"net/url"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if err := c.Digest.validate(); err != nil {
		return fmt.Errorf("digest: %w", err)
	}
	if err := c.Messaging.validate(); err != nil {
		return fmt.Errorf("messaging: %w", err)
	}

	if c.RateLimit.AuthPerMinute < 0 {
		return fmt.Errorf("rate_limit.auth_per_minute must be >= 0 (got %d)", c.RateLimit.AuthPerMinute)
	}

	return nil
}

func (d *DigestConfig) validate() error {
	if _, err := time.LoadLocation(d.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", d.Timezone, err)
	}
	if d.TickInterval <= 0 {
		return fmt.Errorf("tick_interval must be > 0 (got %v)", d.TickInterval)
	}
	if d.PerUserTimeout <= 0 {
		return fmt.Errorf("per_user_timeout must be > 0 (got %v)", d.PerUserTimeout)
	}
	if d.Workers <= 0 {
		return fmt.Errorf("workers must be > 0 (got %d)", d.Workers)
	}
	return nil
}

func (m *MessagingConfig) validate() error {
	switch m.Driver {
	case MessagingDriverLog:
		return nil
	case MessagingDriverWebhook:
		u, err := url.Parse(m.WebhookURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("webhook_url must be an absolute URL (got %q)", m.WebhookURL)
		}
		return nil
	default:
		return fmt.Errorf("driver must be %q or %q (got %q)", MessagingDriverLog, MessagingDriverWebhook, m.Driver)
	}
}
