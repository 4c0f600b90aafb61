package config

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	defaultIssuerPrefix = "https://securetoken.google.com/"
	defaultCertsURL     = "https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com"
)

// Validate checks cross-field constraints and fills derived defaults.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}

	if c.Identity.Issuer == "" {
		c.Identity.Issuer = defaultIssuerPrefix + c.Identity.ProjectID
	}
	if c.Identity.CertsURL == "" {
		c.Identity.CertsURL = defaultCertsURL
	}

	if _, err := url.Parse(c.Payment.BaseURL); err != nil {
		return fmt.Errorf("payment.base_url: %w", err)
	}
	if !strings.HasPrefix(c.Payment.ClientDomain, "http://") &&
		!strings.HasPrefix(c.Payment.ClientDomain, "https://") {
		return fmt.Errorf("payment.client_domain must be an absolute URL: %s", c.Payment.ClientDomain)
	}
	c.Payment.ClientDomain = strings.TrimRight(c.Payment.ClientDomain, "/")
	c.Payment.Currency = strings.ToLower(c.Payment.Currency)

	return nil
}
