package config

import (
	"fmt"
	"slices"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

const (
	maxUsageWindowDays  = 365
	maxUsageConcurrency = 64
)

// Validate checks the configuration for correctness and returns every
// problem found as a *ValidationErrors.
func Validate(cfg *Config) error {
	var errs []ValidationError

	errs = append(errs, validateLaunch(&cfg.Launch)...)
	errs = append(errs, validateUsage(&cfg.Usage)...)
	errs = append(errs, validateWindow(&cfg.Window)...)
	errs = append(errs, validateSystem(&cfg.System)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

func validateLaunch(lc *LaunchConfig) []ValidationError {
	var errs []ValidationError
	if lc.Command == "" {
		errs = append(errs, ValidationError{
			Field:   "launch.command",
			Message: "required field is empty; set the assistant executable (example: command: claude)",
			Wrapped: ErrInvalidConfig,
		})
	}
	if !lc.Mode.IsValid() {
		errs = append(errs, ValidationError{
			Field:   "launch.mode",
			Message: "must be one of: terminal, tmux",
			Value:   string(lc.Mode),
			Wrapped: ErrInvalidLaunchMode,
		})
	}
	return errs
}

func validateUsage(uc *UsageConfig) []ValidationError {
	var errs []ValidationError
	if uc.WindowDays < 1 || uc.WindowDays > maxUsageWindowDays {
		errs = append(errs, ValidationError{
			Field:   "usage.window_days",
			Message: fmt.Sprintf("must be between 1 and %d", maxUsageWindowDays),
			Value:   uc.WindowDays,
			Wrapped: ErrInvalidConfig,
		})
	}
	if uc.Concurrency < 1 || uc.Concurrency > maxUsageConcurrency {
		errs = append(errs, ValidationError{
			Field:   "usage.concurrency",
			Message: fmt.Sprintf("must be between 1 and %d", maxUsageConcurrency),
			Value:   uc.Concurrency,
			Wrapped: ErrInvalidConfig,
		})
	}
	return errs
}

func validateWindow(wc *WindowConfig) []ValidationError {
	var errs []ValidationError
	if wc.DebounceMS < 0 {
		errs = append(errs, ValidationError{
			Field:   "window.debounce_ms",
			Message: "must not be negative",
			Value:   wc.DebounceMS,
			Wrapped: ErrInvalidConfig,
		})
	}
	for i, d := range wc.Displays {
		if d.Width <= 0 || d.Height <= 0 {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("window.displays[%d]", i),
				Message: "width and height must be positive",
				Value:   fmt.Sprintf("%dx%d", d.Width, d.Height),
				Wrapped: ErrInvalidConfig,
			})
		}
	}
	return errs
}

func validateSystem(sc *SystemConfig) []ValidationError {
	var errs []ValidationError
	if !slices.Contains(validLogLevels, sc.LogLevel) {
		errs = append(errs, ValidationError{
			Field:   "system.log_level",
			Message: "must be one of: debug, info, warn, error",
			Value:   sc.LogLevel,
			Wrapped: ErrInvalidConfig,
		})
	}
	if !slices.Contains(validLogFormats, sc.LogFormat) {
		errs = append(errs, ValidationError{
			Field:   "system.log_format",
			Message: "must be one of: text, json",
			Value:   sc.LogFormat,
			Wrapped: ErrInvalidConfig,
		})
	}
	return errs
}
