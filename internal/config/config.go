// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/PRO-2684/jiu/internal/issue"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "jiu"
	// EnvPrefix is the prefix of every environment variable read by Load.
	EnvPrefix = "JIU"
)

// load builds Settings from defaults overlaid with the environment.
func load(ctx context.Context) (*Settings, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load settings canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// JIU_DEBUG= (set but empty) still enables debugging.
	v.AllowEmptyEnv(true)

	defaults := DefaultSettings()
	v.SetDefault("color", string(defaults.Color))

	for _, key := range []string{"debug", "color", "config"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s_%s: %w", EnvPrefix, strings.ToUpper(key), err)
		}
	}

	settings := &Settings{
		// Presence, not truthiness: any value enables debug output.
		Debug:      v.IsSet("debug"),
		Color:      ColorMode(strings.ToLower(strings.TrimSpace(v.GetString("color")))),
		RecipeFile: v.GetString("config"),
	}
	if settings.Color == "" {
		settings.Color = ColorAuto
	}

	if err := settings.Validate(); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("load settings").
			WithIssue(issue.SettingsInvalidId).
			WithSuggestion("Set " + EnvPrefix + "_COLOR to auto, always or never").
			Wrap(err).
			BuildError()
	}

	return settings, nil
}
