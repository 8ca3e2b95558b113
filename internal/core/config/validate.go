package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/threads/internal/core/styles"
)

// MaxIndentWidth bounds display.indent_width.
const MaxIndentWidth = 8

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// Validate checks that the configuration is valid. All field errors are
// collected into a criterio.FieldErrors.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("server.url", c.Server.URL, serverURL),
		criterio.Run("display.theme", c.Display.Theme, knownTheme),
		c.validateLimits(),
		c.validateKeybindings(),
	)
}

// ValidateDeep runs Validate and additionally checks that configPath, when
// it exists, is a regular file.
func (c *Config) ValidateDeep(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		c.Validate(),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if u, err := url.Parse(c.Server.URL); err == nil && u.Scheme == "http" && u.Hostname() != "localhost" && u.Hostname() != "127.0.0.1" {
		warnings = append(warnings, ValidationWarning{
			Category: "Server",
			Item:     "server.url",
			Message:  "comment service is reached over plain http",
		})
	}

	seen := make(map[string]string)
	for key, kb := range c.Keybindings {
		if kb.Intent == "" {
			continue
		}
		if other, ok := seen[kb.Intent]; ok {
			a, b := other, key
			if b < a {
				a, b = b, a
			}
			warnings = append(warnings, ValidationWarning{
				Category: "Keybindings",
				Item:     kb.Intent,
				Message:  fmt.Sprintf("bound to both %q and %q", a, b),
			})
			continue
		}
		seen[kb.Intent] = key
	}

	return warnings
}

func (c *Config) validateLimits() error {
	var errs criterio.FieldErrorsBuilder
	if c.Server.Timeout <= 0 {
		errs = errs.Append("server.timeout", fmt.Errorf("must be greater than zero"))
	}
	if c.Display.IndentWidth < 0 || c.Display.IndentWidth > MaxIndentWidth {
		errs = errs.Append("display.indent_width", fmt.Errorf("must be between 0 and %d", MaxIndentWidth))
	}
	return errs.ToError()
}

func (c *Config) validateKeybindings() error {
	var errs criterio.FieldErrorsBuilder
	for key, kb := range c.Keybindings {
		field := fmt.Sprintf("keybindings[%q]", key)
		switch {
		case kb.Intent == "":
			errs = errs.Append(field, fmt.Errorf("intent is required"))
		case !isValidIntent(kb.Intent):
			errs = errs.Append(field, fmt.Errorf("unknown intent %q", kb.Intent))
		case kb.Confirm != "" && kb.Intent != IntentDelete:
			errs = errs.Append(field, fmt.Errorf("confirm is only supported for %q", IntentDelete))
		}
	}
	return errs.ToError()
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

func serverURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https")
	}
	if u.Host == "" {
		return fmt.Errorf("host is required")
	}
	return nil
}

func knownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q", name)
	}
	return nil
}
