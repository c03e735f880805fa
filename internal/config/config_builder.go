package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs  []*StructuredConfig
	explicit []explicitValues
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs:  make([]*StructuredConfig, 0, 4),
		explicit: make([]explicitValues, 0, 4),
	}
}

// explicitValues holds the settings whose zero value is a valid choice
// ("false", "0", "0s"). mergo treats zero as unset, so each source also
// reports what it set explicitly. A nil field means the source is silent.
type explicitValues struct {
	RequestTimeout    *time.Duration `env:"SERVER_REQUEST_TIMEOUT"`
	ReadHeaderTimeout *time.Duration `env:"SERVER_READ_HEADER_TIMEOUT"`
	ShutdownTimeout   *time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT"`
	AllowCredentials  *bool          `env:"CORS_ALLOW_CREDENTIALS"`
	MaxAge            *int           `env:"CORS_MAX_AGE"`
}

// applyExplicit writes the explicitly set values over the merged config.
// sets is in precedence order, so it is walked backwards and the first
// source wins.
func (cfg *StructuredConfig) applyExplicit(sets []explicitValues) {
	for i := len(sets) - 1; i >= 0; i-- {
		set := sets[i]
		if set.RequestTimeout != nil {
			cfg.Server.RequestTimeout = *set.RequestTimeout
		}
		if set.ReadHeaderTimeout != nil {
			cfg.Server.ReadHeaderTimeout = *set.ReadHeaderTimeout
		}
		if set.ShutdownTimeout != nil {
			cfg.Server.ShutdownTimeout = *set.ShutdownTimeout
		}
		if set.AllowCredentials != nil {
			cfg.CORS.AllowCredentials = *set.AllowCredentials
		}
		if set.MaxAge != nil {
			cfg.CORS.MaxAge = *set.MaxAge
		}
	}
}

// build merges the collected configs in order: a field already set by an
// earlier source is kept. Defaults fill the rest, explicitly set zero
// values are restored, then the result is normalized and validated.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range append(b.configs, defaultConfig()) {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	config.applyExplicit(b.explicit)
	config.normalize()
	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	var explicit explicitValues
	if err := parseEnv(&explicit); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	b.explicit = append(b.explicit, explicit)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, explicit, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error parsing flags: %w", err))
		return b
	}

	b.configs = append(b.configs, flags)
	b.explicit = append(b.explicit, explicit)
	return b
}

// withJSON loads the JSON file named by the first source that set one.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
			break
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, explicit, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)
	b.explicit = append(b.explicit, explicit)

	return b
}
