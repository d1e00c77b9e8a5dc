// Slate Logic Core - Device Automation Runtime
//
// This is the main entry point for the Slate Logic Core application.
// Slate Logic bridges a zigbee2mqtt gateway into an internal device
// abstraction and runs a trigger/condition/conduct automation pipeline
// over it:
//   - Offline-first operation (no cloud dependency)
//   - Gateway-agnostic device model with typed contacts
//   - Automation definitions stored locally in SQLite
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/nerrad567/slate-logic-core/migrations"

	"github.com/nerrad567/slate-logic-core/internal/api"
	"github.com/nerrad567/slate-logic-core/internal/automation"
	"github.com/nerrad567/slate-logic-core/internal/bridges/zigbee"
	"github.com/nerrad567/slate-logic-core/internal/conduct"
	"github.com/nerrad567/slate-logic-core/internal/device"
	"github.com/nerrad567/slate-logic-core/internal/infrastructure/config"
	"github.com/nerrad567/slate-logic-core/internal/infrastructure/database"
	"github.com/nerrad567/slate-logic-core/internal/infrastructure/influxdb"
	"github.com/nerrad567/slate-logic-core/internal/infrastructure/logging"
	"github.com/nerrad567/slate-logic-core/internal/infrastructure/mqtt"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for
// testability. Returning an error allows main to handle exit codes
// consistently.
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting Slate Logic Core",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Open database and run migrations
	db, err := database.Open(ctx, database.Config{
		Path:        cfg.Database.Path,
		WALMode:     cfg.Database.WALMode,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		log.Info("closing database")
		if closeErr := db.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()
	log.Info("database connected", "path", cfg.Database.Path)

	if migrateErr := db.Migrate(ctx); migrateErr != nil {
		return fmt.Errorf("running migrations: %w", migrateErr)
	}
	log.Info("database migrations complete")

	// Connect to InfluxDB (optional state history)
	var influxClient *influxdb.Client
	var history device.HistoryWriter
	if cfg.InfluxDB.Enabled {
		influxClient, err = influxdb.Connect(cfg.InfluxDB)
		if err != nil {
			return fmt.Errorf("connecting to InfluxDB: %w", err)
		}
		defer func() {
			log.Info("closing InfluxDB connection")
			if closeErr := influxClient.Close(); closeErr != nil {
				log.Error("error closing InfluxDB", "error", closeErr)
			}
		}()
		influxClient.SetOnError(func(err error) {
			log.Error("InfluxDB write error", "error", err)
		})
		history = influxClient
		log.Info("InfluxDB connected",
			"url", cfg.InfluxDB.URL,
			"bucket", cfg.InfluxDB.Bucket,
		)
	} else {
		log.Info("InfluxDB disabled, state history off")
	}

	// Device registry and state manager
	registry := device.NewRegistry(log)
	states := device.NewStates(registry, history, log)
	log.Info("device registry initialised")

	// Automation: store, engine, conduct bus
	processRepo := automation.NewSQLiteRepository(db.DB)
	bus := conduct.NewBus(log)
	engine := automation.NewEngine(processRepo, automation.LiteralEvaluator{}, bus, log)
	states.Subscribe(engine.OnStateChange)

	// Connect to MQTT broker
	mqttClient, err := mqtt.Connect(cfg.MQTT)
	if err != nil {
		return fmt.Errorf("connecting to MQTT: %w", err)
	}
	defer func() {
		log.Info("disconnecting from MQTT")
		if closeErr := mqttClient.Close(); closeErr != nil {
			log.Error("error closing MQTT", "error", closeErr)
		}
	}()
	mqttClient.SetLogger(log)
	mqttClient.SetOnConnect(func() {
		log.Info("MQTT reconnected")
	})
	mqttClient.SetOnDisconnect(func(err error) {
		log.Warn("MQTT disconnected", "error", err)
	})
	log.Info("MQTT connected",
		"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
		"client_id", cfg.MQTT.Broker.ClientID,
	)

	// Gateway bridge: inbound state + discovery, outbound commands
	bridge := zigbee.New(zigbee.Config{
		BaseTopic:  cfg.Bridge.BaseTopic,
		QoS:        byte(cfg.MQTT.QoS),
		PermitJoin: cfg.Bridge.PermitJoin,
	}, mqttClient, registry, states, log)
	if err := bridge.Start(ctx); err != nil {
		return fmt.Errorf("starting gateway bridge: %w", err)
	}
	log.Info("gateway bridge started", "base_topic", cfg.Bridge.BaseTopic)

	// Conduct publisher closes the loop: engine output back to devices
	bus.Subscribe(conduct.NewPublisher(bridge, log).Handle)

	// Read-only HTTP API (optional)
	if cfg.API.Enabled {
		server, apiErr := api.New(api.Deps{
			Config: cfg.API,
			Timeouts: api.ServerTimeouts{
				Read:  cfg.GetReadTimeout(),
				Write: cfg.GetWriteTimeout(),
				Idle:  cfg.GetIdleTimeout(),
			},
			Logger:      log,
			Registry:    registry,
			ProcessRepo: processRepo,
			MQTT:        mqttClient,
			Database:    db,
			Version:     version,
		})
		if apiErr != nil {
			return fmt.Errorf("creating API server: %w", apiErr)
		}
		if startErr := server.Start(ctx); startErr != nil {
			return fmt.Errorf("starting API server: %w", startErr)
		}
		defer func() {
			if closeErr := server.Close(); closeErr != nil {
				log.Error("error closing API server", "error", closeErr)
			}
		}()
	} else {
		log.Info("API server disabled")
	}

	// Verify all connections are healthy
	if err := healthCheck(ctx, db, mqttClient, influxClient); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	log.Info("all health checks passed")

	log.Info("initialisation complete, waiting for shutdown signal")

	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")

	// Deferred Close() calls run in reverse order:
	// 1. API server
	// 2. MQTT
	// 3. InfluxDB (if enabled)
	// 4. Database

	log.Info("Slate Logic Core stopped")
	return nil
}

// getConfigPath returns the configuration file path.
// Uses SLATELOGIC_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("SLATELOGIC_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}

// healthCheck verifies all infrastructure connections are healthy.
func healthCheck(ctx context.Context, db *database.DB, mqttClient *mqtt.Client, influxClient *influxdb.Client) error {
	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := mqttClient.HealthCheck(ctx); err != nil {
		return fmt.Errorf("mqtt: %w", err)
	}
	if influxClient != nil {
		if err := influxClient.HealthCheck(ctx); err != nil {
			return fmt.Errorf("influxdb: %w", err)
		}
	}
	return nil
}
