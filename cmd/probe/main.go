// Command probe connects to the configured database once and prints the same
// diagnostic report GET /test serves. It exits non-zero when the database is
// not working, so it doubles as a container health check.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"os"
	"time"

	"github.com/doctorprofile/profile-api/internal/config"
	"github.com/doctorprofile/profile-api/internal/database"
	"github.com/doctorprofile/profile-api/internal/diagnostics"
	"github.com/doctorprofile/profile-api/internal/store"
	"github.com/doctorprofile/profile-api/pkg/logger"
)

func main() {
	attempts := flag.Int("attempts", 1, "connection attempts before giving up")
	flag.Parse()
	if !run(*attempts, os.Stdout) {
		os.Exit(1)
	}
}

// run prints the report to out and reports whether the database is working.
func run(attempts int, out io.Writer) bool {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.Timeout*time.Duration(attempts+1))
	defer cancel()

	var handle store.Handle
	if cfg.Database.URL != "" {
		client, err := database.ConnectWithRetry(ctx, cfg.Database.URL, cfg.Database.Timeout, attempts, time.Second)
		if err != nil {
			logger.Errorf("%v", err)
		} else {
			defer func() { _ = client.Disconnect(context.Background()) }()
			handle = store.NewMongoStore(client.Database(cfg.Database.Name))
		}
	}

	rep := diagnostics.Probe(ctx, handle, cfg.Database.URL != "")
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		logger.Fatalf("encode report: %v", err)
	}
	return rep.Working()
}
