package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// stringList is a comma-separated flag.Value. Repeating the flag appends.
type stringList []string

func (l *stringList) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

func (l *stringList) Set(s string) error {
	*l = append(*l, strings.Split(s, ",")...)
	return nil
}

// ParseFlags parses the process command line into a *StructuredConfig.
// See parseFlags for the flag list.
func ParseFlags() (*StructuredConfig, error) {
	cfg, _, err := parseFlags(os.Args[1:])
	return cfg, err
}

// parseFlags parses args on a private flag set. The returned explicitValues
// records the zero-meaningful flags that appeared in args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address gRPC health server address in format [host]:[port]
//	-c/-config json file path with configs
//	-title, -description, -version service metadata
//	-request-timeout, -read-header-timeout, -shutdown-timeout (e.g. "30s")
//	-cors-allow-origins, -cors-allow-methods, -cors-allow-headers,
//	-cors-expose-headers comma-separated lists
//	-cors-allow-credentials enable credentialed requests
//	-cors-max-age preflight cache lifetime in seconds
//	-log-level zerolog level name
//	-metrics-path Prometheus exposition path
func parseFlags(args []string) (*StructuredConfig, explicitValues, error) {
	var serverAddress, grpcServerAddress NetAddress
	var jsonConfigPath string
	var title, description, version string
	var requestTimeout, readHeaderTimeout, shutdownTimeout time.Duration
	var allowOrigins, allowMethods, allowHeaders, exposeHeaders stringList
	var allowCredentials bool
	var maxAge int
	var logLevel string
	var metricsPath string

	fs := flag.NewFlagSet("ssl-monitor", flag.ContinueOnError)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net gRPC health server address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&title, "title", "", "Service title")
	fs.StringVar(&description, "description", "", "Service description")
	fs.StringVar(&version, "version", "", "Service version")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&readHeaderTimeout, "read-header-timeout", 0, "Read header timeout (e.g., 5s)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.Var(&allowOrigins, "cors-allow-origins", "Comma-separated allowed origins, * for any")
	fs.Var(&allowMethods, "cors-allow-methods", "Comma-separated allowed methods, * for any")
	fs.Var(&allowHeaders, "cors-allow-headers", "Comma-separated allowed headers, * for any")
	fs.Var(&exposeHeaders, "cors-expose-headers", "Comma-separated exposed response headers")
	fs.BoolVar(&allowCredentials, "cors-allow-credentials", false, "Allow credentialed cross-origin requests")
	fs.IntVar(&maxAge, "cors-max-age", 0, "Preflight cache lifetime in seconds")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&metricsPath, "metrics-path", "", "Prometheus metrics path")

	var explicit explicitValues
	if err := fs.Parse(args); err != nil {
		return nil, explicit, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "request-timeout":
			explicit.RequestTimeout = &requestTimeout
		case "read-header-timeout":
			explicit.ReadHeaderTimeout = &readHeaderTimeout
		case "shutdown-timeout":
			explicit.ShutdownTimeout = &shutdownTimeout
		case "cors-allow-credentials":
			explicit.AllowCredentials = &allowCredentials
		case "cors-max-age":
			explicit.MaxAge = &maxAge
		}
	})

	return &StructuredConfig{
		App: App{
			Title:       title,
			Description: description,
			Version:     version,
		},
		Server: Server{
			HTTPAddress:       serverAddress.String(),
			GRPCAddress:       grpcServerAddress.String(),
			RequestTimeout:    requestTimeout,
			ReadHeaderTimeout: readHeaderTimeout,
			ShutdownTimeout:   shutdownTimeout,
		},
		CORS: CORS{
			AllowOrigins:     allowOrigins,
			AllowCredentials: allowCredentials,
			AllowMethods:     allowMethods,
			AllowHeaders:     allowHeaders,
			ExposeHeaders:    exposeHeaders,
			MaxAge:           maxAge,
		},
		Log:          Log{Level: logLevel},
		Metrics:      Metrics{Path: metricsPath},
		JSONFilePath: jsonConfigPath,
	}, explicit, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means every interface. Any other host must be "localhost"
// or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portString, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portString)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
