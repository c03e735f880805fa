package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations. Settings whose zero value is meaningful are
// pointers so an omitted key differs from an explicit false or 0.
type StructuredJSONConfig struct {
	App struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Version     string `json:"version"`
	} `json:"app"`

	Server struct {
		HTTPAddress       string    `json:"http_address"`
		GRPCAddress       string    `json:"grpc_address"`
		RequestTimeout    *Duration `json:"request_timeout"`
		ReadHeaderTimeout *Duration `json:"read_header_timeout"`
		ShutdownTimeout   *Duration `json:"shutdown_timeout"`
	} `json:"server"`

	CORS struct {
		AllowOrigins     []string `json:"allow_origins"`
		AllowCredentials *bool    `json:"allow_credentials"`
		AllowMethods     []string `json:"allow_methods"`
		AllowHeaders     []string `json:"allow_headers"`
		ExposeHeaders    []string `json:"expose_headers"`
		MaxAge           *int     `json:"max_age"`
	} `json:"cors"`

	Log struct {
		Level string `json:"level"`
	} `json:"log"`

	Metrics struct {
		Path string `json:"path"`
	} `json:"metrics"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, explicitValues, error) {
	var explicit explicitValues

	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, explicit, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, explicit, fmt.Errorf("error decoding json configs: %w", err)
	}

	explicit = explicitValues{
		RequestTimeout:    jsonCfg.Server.RequestTimeout.duration(),
		ReadHeaderTimeout: jsonCfg.Server.ReadHeaderTimeout.duration(),
		ShutdownTimeout:   jsonCfg.Server.ShutdownTimeout.duration(),
		AllowCredentials:  jsonCfg.CORS.AllowCredentials,
		MaxAge:            jsonCfg.CORS.MaxAge,
	}

	cfg := &StructuredConfig{
		App: App{
			Title:       jsonCfg.App.Title,
			Description: jsonCfg.App.Description,
			Version:     jsonCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:       jsonCfg.Server.HTTPAddress,
			GRPCAddress:       jsonCfg.Server.GRPCAddress,
			RequestTimeout:    valueOf(explicit.RequestTimeout),
			ReadHeaderTimeout: valueOf(explicit.ReadHeaderTimeout),
			ShutdownTimeout:   valueOf(explicit.ShutdownTimeout),
		},
		CORS: CORS{
			AllowOrigins:     jsonCfg.CORS.AllowOrigins,
			AllowCredentials: valueOf(jsonCfg.CORS.AllowCredentials),
			AllowMethods:     jsonCfg.CORS.AllowMethods,
			AllowHeaders:     jsonCfg.CORS.AllowHeaders,
			ExposeHeaders:    jsonCfg.CORS.ExposeHeaders,
			MaxAge:           valueOf(jsonCfg.CORS.MaxAge),
		},
		Log:          Log{Level: jsonCfg.Log.Level},
		Metrics:      Metrics{Path: jsonCfg.Metrics.Path},
		JSONFilePath: "",
	}

	return cfg, explicit, nil
}

func valueOf[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

// duration returns nil when the key was absent from the file.
func (d *Duration) duration() *time.Duration {
	if d == nil {
		return nil
	}
	v := time.Duration(*d)
	return &v
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
