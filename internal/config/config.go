// Package config loads grid master connection settings from an ini file.
//
// The file layout matches the gm.ini format used by the existing tooling:
//
//	[NIOS]
//	gm = 'gm.example.com'
//	api_version = 'v2.12'
//	valid_cert = 'false'
//	user = 'admin'
//	pass = 'infoblox'
//
// Missing keys are warned about and default to empty; certificate
// validation is enabled only when valid_cert is the literal string "true".
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/ini.v1"
)

// Section is the ini section holding the grid master settings.
const Section = "NIOS"

// Environment variables that override the credential keys from the file.
const (
	EnvUser = "NIOS_USER"
	EnvPass = "NIOS_PASS"
)

var iniKeys = []string{"gm", "api_version", "valid_cert", "user", "pass"}

// Config holds the grid master connection settings. It is loaded once and
// treated as immutable afterwards.
type Config struct {
	GridMaster   string
	APIVersion   string
	Username     string
	Password     string
	ValidateCert bool
}

// Load parses the ini file at path. Missing sections or keys degrade to
// empty values with a warning; only an unreadable file is an error.
func Load(path string, logger *slog.Logger) (Config, error) {
	if logger == nil {
		logger = slog.Default()
	}

	file, err := ini.Load(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if !file.HasSection(Section) {
		logger.Warn("no NIOS section in config file", "config", path)
		return Config{}, nil
	}

	section := file.Section(Section)
	values := make(map[string]string, len(iniKeys))
	for _, key := range iniKeys {
		if !section.HasKey(key) {
			logger.Warn("key not found in NIOS section", "key", key, "config", path)
			values[key] = ""
			continue
		}
		values[key] = unquote(section.Key(key).String())
		logger.Debug("config key loaded", "key", key, "config", path)
	}

	cfg := Config{
		GridMaster:   values["gm"],
		APIVersion:   values["api_version"],
		Username:     values["user"],
		Password:     values["pass"],
		ValidateCert: values["valid_cert"] == "true",
	}

	if user := os.Getenv(EnvUser); user != "" {
		cfg.Username = user
	}
	if pass := os.Getenv(EnvPass); pass != "" {
		cfg.Password = pass
	}

	return cfg, nil
}

// unquote strips a single level of surrounding single or double quotes,
// matching how the ini values are written in existing gm.ini files.
func unquote(value string) string {
	return strings.Trim(value, `'"`)
}
