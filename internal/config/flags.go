package config

import (
	"errors"
	"flag"
	"net"
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

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-request-timeout inbound request timeout (e.g., "30s")
//	-allowed-origin Access-Control-Allow-Origin value
//	-log-level zerolog level name
//	-api-origin commerce backend origin
//	-api-org commerce backend organisation
//	-api-site commerce backend site
//	-api-token commerce backend service token
//	-api-timeout outbound request timeout (e.g., "15s")
//	-webhook-tolerance accepted webhook signature age (e.g., "5m")
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		serverAddress    NetAddress
		jsonConfigPath   string
		requestTimeout   time.Duration
		allowedOrigin    string
		logLevel         string
		apiOrigin        string
		apiOrg           string
		apiSite          string
		apiToken         string
		apiTimeout       time.Duration
		webhookTolerance time.Duration
	)

	fs := flag.NewFlagSet("edge-server", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&allowedOrigin, "allowed-origin", "", "Access-Control-Allow-Origin value")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&apiOrigin, "api-origin", "", "Commerce API origin")
	fs.StringVar(&apiOrg, "api-org", "", "Commerce API organisation")
	fs.StringVar(&apiSite, "api-site", "", "Commerce API site")
	fs.StringVar(&apiToken, "api-token", "", "Commerce API service token")
	fs.DurationVar(&apiTimeout, "api-timeout", 0, "Commerce API timeout (e.g., 15s)")
	fs.DurationVar(&webhookTolerance, "webhook-tolerance", 0, "Webhook signature tolerance (e.g., 5m)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			AllowedOrigin: allowedOrigin,
			LogLevel:      logLevel,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		API: API{
			Origin:  apiOrigin,
			Org:     apiOrg,
			Site:    apiSite,
			Token:   apiToken,
			Timeout: apiTimeout,
		},
		Stripe: Stripe{
			WebhookTolerance: webhookTolerance,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither part is set.
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
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
