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

// ParseFlags parses configuration flags from args (usually os.Args[1:]).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-db-driver database driver (postgres|sqlite)
//	-c/-config json file path with configs
//	-public-url externally reachable base URL
//	-upstream-url vendor store API base URL
//	-upstream-timeout upstream request timeout (e.g., "30s")
//	-no-upstream disable the vendor proxy
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "8760h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level zerolog level
//	-page-size entitlements per sync round
//	-reading-threshold percent moving a book to READING
//	-finished-threshold percent moving a book to READ
//	-kepub declare EPUB downloads as KEPUB
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-kobo-sync", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, databaseDriver string
	var jsonConfigPath string
	var publicURL, upstreamURL string
	var upstreamTimeout time.Duration
	var upstreamDisabled bool
	var tokenSignKey, tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var logLevel string
	var pageSize int
	var readingThreshold, finishedThreshold float64
	var convertToKepub bool

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "db-driver", "", "Database driver (postgres|sqlite)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&publicURL, "public-url", "", "Externally reachable base URL")
	fs.StringVar(&upstreamURL, "upstream-url", "", "Vendor store API base URL")
	fs.DurationVar(&upstreamTimeout, "upstream-timeout", 0, "Upstream request timeout (e.g., 30s)")
	fs.BoolVar(&upstreamDisabled, "no-upstream", false, "Disable the vendor proxy")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 8760h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.IntVar(&pageSize, "page-size", 0, "Entitlements per sync round")
	fs.Float64Var(&readingThreshold, "reading-threshold", 0, "Progress percent moving a book to READING")
	fs.Float64Var(&finishedThreshold, "finished-threshold", 0, "Progress percent moving a book to READ")
	fs.BoolVar(&convertToKepub, "kepub", false, "Declare EPUB downloads as KEPUB")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
			Sync: Sync{
				PageSize:          pageSize,
				ReadingThreshold:  readingThreshold,
				FinishedThreshold: finishedThreshold,
				ConvertToKepub:    convertToKepub,
			},
		},
		Auth: Auth{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			PublicURL:      publicURL,
		},
		Adapter: Adapter{
			UpstreamURL:    upstreamURL,
			RequestTimeout: upstreamTimeout,
			Disabled:       upstreamDisabled,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
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
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
