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
//	-d database DSN
//	-base-url public base URL used to build reveal links
//	-sign-key media URL signing key
//	-signed-url-ttl signed media URL lifetime (e.g., "15m", "1h")
//	-s3-bucket S3 bucket for uploaded media
//	-s3-region S3 bucket region
//	-s3-endpoint S3-compatible endpoint override
//	-media-dir local media directory used when no bucket is set
//	-adapter-address server base URL for the client
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-cleanup-interval expired record cleanup interval (e.g., "10m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var publicBaseURL string
	var urlSignKey string
	var signedURLTTL time.Duration
	var s3Bucket string
	var s3Region string
	var s3Endpoint string
	var mediaDir string
	var adapterAddress string
	var requestTimeout time.Duration
	var cleanupInterval time.Duration
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&publicBaseURL, "base-url", "", "Public base URL")
	flag.StringVar(&urlSignKey, "sign-key", "", "Media URL signing key")
	flag.DurationVar(&signedURLTTL, "signed-url-ttl", 0, "Signed media URL lifetime (e.g., 15m, 1h)")
	flag.StringVar(&s3Bucket, "s3-bucket", "", "S3 bucket for uploaded media")
	flag.StringVar(&s3Region, "s3-region", "", "S3 bucket region")
	flag.StringVar(&s3Endpoint, "s3-endpoint", "", "S3-compatible endpoint override")
	flag.StringVar(&mediaDir, "media-dir", "", "Local media directory")
	flag.StringVar(&adapterAddress, "adapter-address", "", "Server base URL for the client")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&cleanupInterval, "cleanup-interval", 0, "Expired record cleanup interval (e.g., 10m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			PublicBaseURL: publicBaseURL,
			URLSignKey:    urlSignKey,
			SignedURLTTL:  signedURLTTL,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Media: Media{
				S3Bucket:   s3Bucket,
				S3Region:   s3Region,
				S3Endpoint: s3Endpoint,
				LocalDir:   mediaDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			CleanupInterval: cleanupInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// Returns an empty string when neither Host nor Port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is empty or
// "localhost", and returns an error if the format or values are invalid.
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

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
