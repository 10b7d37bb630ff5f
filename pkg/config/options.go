package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptStartPage sets the first page requested from the list endpoint.
func OptStartPage(i int) Option {
	return func(c *Config) {
		if isValidInt("Start Page", i) {
			c.Fetch.StartPage = i
		}
	}
}

// OptPageRetries sets the number of attempts for a non-200 list page
// before the collection aborts.
func OptPageRetries(i int) Option {
	return func(c *Config) {
		if isValidInt("Page Retries", i) {
			c.Fetch.PageRetries = i
		}
	}
}

// OptTimeoutSec sets the per-request HTTP timeout in seconds.
func OptTimeoutSec(i int) Option {
	return func(c *Config) {
		if isValidInt("Timeout", i) {
			c.Fetch.TimeoutSec = i
		}
	}
}

// OptLanguage sets the language of the detail documents.
func OptLanguage(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Language", s) {
			c.Fetch.Language = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogLevel sets the minimal reported log level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogDestination sets where log entries go.
// Valid values: "file", "stdout", "stderr".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptCleanLogs sets removal of empty error logs after a run.
func OptCleanLogs(b bool) Option {
	return func(c *Config) {
		c.CleanLogs = b
	}
}

// OptCleanTemp sets removal of stage checkpoints after a run.
func OptCleanTemp(b bool) Option {
	return func(c *Config) {
		c.CleanTemp = b
	}
}

// OptWorkDir sets the working directory for data and log artifacts.
// Runtime-only field - not in ToOptions().
func OptWorkDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Work Dir", s) {
			c.WorkDir = s
		}
	}
}
