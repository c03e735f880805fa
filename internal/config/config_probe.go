// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
)

const (
	DefaultProbeURL     = "http://127.0.0.1:8000"
	DefaultProbeTimeout = 3 * time.Second
)

// ProbeConfig configures the healthcheck probe binary.
type ProbeConfig struct {
	// URL is the base URL of the instance to probe.
	// Env: HEALTHCHECK_URL
	URL string `env:"HEALTHCHECK_URL"`

	// Timeout bounds the whole probe.
	// Env: HEALTHCHECK_TIMEOUT
	Timeout time.Duration `env:"HEALTHCHECK_TIMEOUT"`

	// LogLevel is a zerolog level name.
	// Env: LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// ReportVersion makes a healthy probe also fetch and log /version.
	// Env: HEALTHCHECK_VERSION
	ReportVersion bool `env:"HEALTHCHECK_VERSION"`
}

// GetProbeConfig merges flags (-url, -timeout, -log-level, -version), environment
// variables and defaults, in that order of precedence.
func GetProbeConfig(args []string) (*ProbeConfig, error) {
	flags, err := parseProbeFlags(args)
	if err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	envCfg := &ProbeConfig{}
	if err = parseEnv(envCfg); err != nil {
		return nil, err
	}

	cfg := new(ProbeConfig)
	for _, src := range []*ProbeConfig{flags, envCfg, defaultProbeConfig()} {
		if err = mergo.Merge(cfg, src); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("%w: negative probe timeout %s", ErrInvalidServerConfigs, cfg.Timeout)
	}
	if err = validateLogLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultProbeConfig() *ProbeConfig {
	return &ProbeConfig{
		URL:      DefaultProbeURL,
		Timeout:  DefaultProbeTimeout,
		LogLevel: DefaultLogLevel,
	}
}

func parseProbeFlags(args []string) (*ProbeConfig, error) {
	cfg := &ProbeConfig{}

	fs := flag.NewFlagSet("healthcheck", flag.ContinueOnError)
	fs.StringVar(&cfg.URL, "url", "", "Base URL of the instance to probe")
	fs.DurationVar(&cfg.Timeout, "timeout", 0, "Probe timeout (e.g., 3s)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level")
	fs.BoolVar(&cfg.ReportVersion, "version", false, "Also report the instance version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return cfg, nil
}
