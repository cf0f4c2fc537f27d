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

// ParseFlags parses all configuration flags of the process command line.
//
// Flags:
//
//	-a site address in format [host]:[port]
//	-api backend base URL
//	-env runtime environment (production|development)
//	-d SQLite DSN of the admin console
//	-c/-config json file path with configs
//	-request-timeout backend request timeout (e.g., "15s")
//	-cache-ttl site cache TTL (e.g., "30s")
//	-rotation-interval testimonial rotation interval (e.g., "5s")
//	-origins comma separated CORS origins
func ParseFlags() *StructuredConfig {
	cfg, _ := parseFlagSet(flag.CommandLine, os.Args[1:])
	return cfg
}

func parseFlagSet(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var siteAddress NetAddress
	var apiBaseURL, appEnv, databaseDSN, jsonConfigPath, origins string
	var requestTimeout, cacheTTL, rotationInterval time.Duration

	fs.Var(&siteAddress, "a", "Site net address host:port")
	fs.StringVar(&apiBaseURL, "api", "", "Backend base URL")
	fs.StringVar(&appEnv, "env", "", "Runtime environment (production|development)")
	fs.StringVar(&databaseDSN, "d", "", "SQLite DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Backend request timeout (e.g., 15s)")
	fs.DurationVar(&cacheTTL, "cache-ttl", 0, "Site cache TTL (e.g., 30s)")
	fs.DurationVar(&rotationInterval, "rotation-interval", 0, "Testimonial rotation interval (e.g., 5s)")
	fs.StringVar(&origins, "origins", "", "Comma separated CORS origins")

	err := fs.Parse(args)

	return &StructuredConfig{
		App: App{
			Env: appEnv,
		},
		Adapter: Adapter{
			APIBaseURL:     apiBaseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Site: Site{
			Address:          siteAddress.String(),
			CacheTTL:         cacheTTL,
			RotationInterval: rotationInterval,
			AllowedOrigins:   splitList(origins),
		},
		JSONFilePath: jsonConfigPath,
	}, err
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
