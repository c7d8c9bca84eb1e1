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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN (server: postgres, client: sqlite cache path)
//	-f audio attachment storage directory
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-quran-api base URL of the verse text API
//	-translation translation edition identifier
//	-public-url externally reachable base URL for share links
//	-server-url tadabbur server base URL (client)
//	-sync-interval client sync job interval (e.g., "5m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var audioDir string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var quranAPI string
	var translation string
	var publicURL string
	var serverURL string
	var syncInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&audioDir, "f", "", "Audio attachment storage directory")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&quranAPI, "quran-api", "", "Verse text API base URL")
	flag.StringVar(&translation, "translation", "", "Translation edition (e.g., en.sahih)")
	flag.StringVar(&publicURL, "public-url", "", "Public base URL for share links")
	flag.StringVar(&serverURL, "server-url", "", "tadabbur server base URL (client)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Client sync interval (e.g., 5m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				AudioDir: audioDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Quran: Quran{
			APIBaseURL:         quranAPI,
			TranslationEdition: translation,
		},
		Share: Share{
			PublicBaseURL: publicURL,
		},
		Adapter: Adapter{
			HTTPAddress:    serverURL,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns the address in "host:port" form, or the empty string when
// the flag was never set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses a "[host]:[port]" flag value into the receiver.
// Implements the flag.Value interface.
func (a *NetAddress) Set(value string) error {
	host, portString, err := net.SplitHostPort(strings.TrimSpace(value))
	if err != nil {
		return errors.New("need address in a form host:port")
	}

	port, err := strconv.Atoi(portString)
	if err != nil {
		return errors.New("port must be an integer")
	}

	a.Host = host
	a.Port = port

	return nil
}
