package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/insider-vault/internal/access"
	"github.com/MKhiriev/insider-vault/internal/codec"
	"github.com/MKhiriev/insider-vault/internal/config"
	"github.com/MKhiriev/insider-vault/internal/handler"
	"github.com/MKhiriev/insider-vault/internal/index"
	"github.com/MKhiriev/insider-vault/internal/ledger"
	"github.com/MKhiriev/insider-vault/internal/logger"
	"github.com/MKhiriev/insider-vault/internal/server"
	"github.com/MKhiriev/insider-vault/internal/service"
	"github.com/MKhiriev/insider-vault/internal/session"
	"github.com/MKhiriev/insider-vault/internal/store"
	"github.com/MKhiriev/insider-vault/internal/workers"
	"github.com/MKhiriev/insider-vault/internal/workflow"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// codecSalt keys the sealed codec's KDF. Changing it invalidates every
// sealed value already in the ledger.
var codecSalt = []byte("insider-vault.codec.v1")

func main() {
	printBuildInfo()

	log := logger.NewLogger("insider-vault")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	client, err := newLedgerClient(cfg.Ledger)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ledger client")
	}

	records := store.NewRecords(client, newIndexManager(client, cfg.Ledger, log), newCodec(cfg.App), log)

	signer, err := access.NewKeypairSigner()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating signer")
	}

	sess := session.New()
	gate := access.NewGate(access.GateConfig{
		PublicKey:       signer.PublicKeyHex(),
		ContractAddress: cfg.Access.ContractAddress,
		ChainID:         cfg.Access.ChainID,
		DurationDays:    cfg.Access.DurationDays,
	}, newCodec(cfg.App), sess, log)

	services, err := service.NewServices(records, workflow.New(records, log), gate, signer, sess, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workersCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	workers.NewWorkers(workersCtx, services.RecordService, cfg.Workers, log).Run()

	srv.RunServer()
}

func newLedgerClient(cfg config.Ledger) (ledger.Client, error) {
	switch cfg.Backend {
	case config.BackendRedis:
		return ledger.NewRedis(ledger.RedisConfig{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}), nil

	case config.BackendSQLite:
		return ledger.NewSQLite(cfg.SQLitePath)

	case config.BackendHTTP:
		return ledger.NewHTTP(ledger.HTTPConfig{BaseURL: cfg.GatewayURL}), nil

	default:
		return ledger.NewMemory(), nil
	}
}

// newIndexManager picks the compare-and-swap index when asked for and the
// backend can serve it; everything else runs the plain read-modify-write
// index.
func newIndexManager(client ledger.Client, cfg config.Ledger, log *logger.Logger) index.Manager {
	if cfg.SafeIndex {
		if conditional, ok := client.(ledger.ConditionalClient); ok {
			return index.NewConditional(conditional, log)
		}
		log.Warn().Str("backend", cfg.Backend).Msg("safe index requested but backend has no conditional write")
	}

	return index.New(client, log)
}

func newCodec(cfg config.App) codec.Codec {
	if cfg.CodecPassphrase != "" {
		return codec.NewSealed(cfg.CodecPassphrase, codecSalt)
	}
	return codec.NewMask()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
