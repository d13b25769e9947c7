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
//	-ledger ledger backend name (memory, redis, sqlite, http)
//	-safe-index serialize concurrent index appends where supported
//	-redis-address redis address in format [host]:[port]
//	-sqlite-path sqlite database file path
//	-gateway-url remote ledger gateway base URL
//	-c/-config json file path with configs
//	-contract-address access challenge contract address
//	-chain-id access challenge chain id
//	-duration-days decryption session window length in days
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var ledgerBackend string
	var safeIndex bool
	var redisAddress string
	var sqlitePath string
	var gatewayURL string
	var jsonConfigPath string
	var contractAddress string
	var chainID int64
	var durationDays int
	var requestTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&ledgerBackend, "ledger", "", "Ledger backend (memory, redis, sqlite, http)")
	flag.BoolVar(&safeIndex, "safe-index", false, "Serialize concurrent index appends where supported")
	flag.StringVar(&redisAddress, "redis-address", "", "Redis address host:port")
	flag.StringVar(&sqlitePath, "sqlite-path", "", "SQLite database file path")
	flag.StringVar(&gatewayURL, "gateway-url", "", "Remote ledger gateway base URL")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&contractAddress, "contract-address", "", "Access challenge contract address")
	flag.Int64Var(&chainID, "chain-id", 0, "Access challenge chain id")
	flag.IntVar(&durationDays, "duration-days", 0, "Decryption session window length in days")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		Ledger: Ledger{
			Backend:   ledgerBackend,
			SafeIndex: safeIndex,
			Redis: Redis{
				Address: redisAddress,
			},
			SQLitePath: sqlitePath,
			GatewayURL: gatewayURL,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Access: Access{
			ContractAddress: contractAddress,
			ChainID:         chainID,
			DurationDays:    durationDays,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
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
