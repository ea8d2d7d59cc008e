package management

import (
	"fmt"
	"strings"

	"github.com/dev-mohitbeniwal/idconsole/config"
	idc_errors "github.com/dev-mohitbeniwal/idconsole/errors"
)

// Config is the tenant and machine-to-machine client the gateway acts as.
type Config struct {
	Domain       string
	ClientID     string
	ClientSecret string

	// Audience defaults to the tenant's v2 API identifier.
	Audience string

	PasswordConnectionID     string
	PasswordResetRedirectURL string

	// BaseURL overrides https://{Domain}. Tests point it at a local server.
	BaseURL string
}

// ConfigFrom maps the loaded Auth0 settings onto a gateway config.
func ConfigFrom(c config.Auth0Configuration) Config {
	return Config{
		Domain:                   c.Domain,
		ClientID:                 c.M2MClientID,
		ClientSecret:             c.M2MClientSecret,
		Audience:                 c.ManagementAudience,
		PasswordConnectionID:     c.PasswordConnectionID,
		PasswordResetRedirectURL: c.PasswordResetRedirectURL,
	}
}

// Validate reports the first required setting that is missing, named by its
// environment variable.
func (c Config) Validate() error {
	switch {
	case c.Domain == "" && c.BaseURL == "":
		return fmt.Errorf("%w: AUTH0_DOMAIN", idc_errors.ErrMissingConfiguration)
	case c.ClientID == "":
		return fmt.Errorf("%w: AUTH0_M2M_CLIENT_ID", idc_errors.ErrMissingConfiguration)
	case c.ClientSecret == "":
		return fmt.Errorf("%w: AUTH0_M2M_CLIENT_SECRET", idc_errors.ErrMissingConfiguration)
	}
	return nil
}

func (c Config) baseURL() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	return "https://" + c.Domain
}

func (c Config) audience() string {
	if c.Audience != "" {
		return c.Audience
	}
	return config.Auth0Configuration{Domain: c.Domain}.ManagementAPIAudience()
}
