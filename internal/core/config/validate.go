package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/hay-kot/criterio"
)

// ValidateDeep performs comprehensive validation of the configuration. The
// configPath argument specifies the config file location to validate (empty
// string skips the config file check). This calls Validate() first for basic
// structural validation.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("api.base_url", c.API.BaseURL, httpURL),
		c.validateFields(),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// validateFields checks the login path and every timeout.
func (c *Config) validateFields() error {
	var errs criterio.FieldErrorsBuilder

	if !strings.HasPrefix(c.API.LoginPath, "/") {
		errs = errs.Append("api.login_path", fmt.Errorf("must start with '/', got %q", c.API.LoginPath))
	}
	if err := positiveDuration(c.API.Timeout); err != nil {
		errs = errs.Append("api.timeout", err)
	}
	if err := positiveDuration(c.Toast.Duration); err != nil {
		errs = errs.Append("toast.duration", err)
	}

	return errs.ToError()
}

func httpURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host in %q", raw)
	}
	return nil
}

func positiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("must be greater than zero, got %s", d)
	}
	return nil
}
