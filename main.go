package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/doctorprofile/profile-api/internal/api"
	"github.com/doctorprofile/profile-api/internal/assets"
	"github.com/doctorprofile/profile-api/internal/config"
	"github.com/doctorprofile/profile-api/internal/database"
	"github.com/doctorprofile/profile-api/internal/store"
	"github.com/doctorprofile/profile-api/pkg/logger"
	"github.com/doctorprofile/profile-api/pkg/metrics"
	"github.com/doctorprofile/profile-api/pkg/middleware"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	// LOG_LEVEL: debug|info|warn|error|fatal
	logger.Init(cfg.LogLevel)
	logger.Infof("config loaded: mongo=%v redis=%v minio=%v rate_limit=%v",
		cfg.Database.URL != "", cfg.Redis.Host != "", cfg.MinIO.Endpoint != "", cfg.RateLimit.Enabled)

	ctx := context.Background()
	deps := api.Deps{DatabaseURLSet: cfg.Database.URL != ""}

	var closeStore func()
	deps.Store, deps.Handle, closeStore = openStore(ctx, cfg)
	defer closeStore()

	if cfg.RateLimit.Enabled {
		var rdb *redis.Client
		if cfg.RateLimit.UseRedis && cfg.Redis.Host != "" {
			rdb = redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			if err := rdb.Ping(ctx).Err(); err != nil {
				logger.Warnf("failed to connect to Redis (%s:%s), using in-process limiter: %v", cfg.Redis.Host, cfg.Redis.Port, err)
				_ = rdb.Close()
				rdb = nil
			} else {
				defer rdb.Close()
				logger.Infof("connected to Redis for rate limiting: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
			}
		}
		win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
		deps.WriteLimiter = middleware.RedisRateLimitMiddleware(rdb, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win)
	}

	if cfg.MinIO.Endpoint != "" {
		a, err := assets.NewMinIOStorage(ctx, cfg.MinIO)
		if err != nil {
			logger.Warnf("photo storage disabled: %v", err)
		} else {
			deps.Assets = a
		}
	}

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := api.NewRouter(deps)

	addr := cfg.Addr()
	logger.Infof("starting doctor profile API on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}

// openStore picks the document store for this process. A reachable DATABASE_URL
// gives MongoDB; otherwise the in-process store when the fallback is enabled, or
// a store that refuses every write with a nil handle.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, store.Handle, func()) {
	noop := func() {}
	if cfg.Database.URL != "" {
		client, err := database.ConnectWithRetry(ctx, cfg.Database.URL, cfg.Database.Timeout, cfg.Database.ConnectAttempts, time.Second)
		if err == nil {
			ms := store.NewMongoStore(client.Database(cfg.Database.Name))
			logger.With("database", cfg.Database.Name).Infof("connected to MongoDB")
			return ms, ms, func() {
				dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = client.Disconnect(dctx)
			}
		}
		logger.Warnf("MongoDB unavailable: %v", err)
	}
	if cfg.Database.MemoryFallback {
		logger.Warnf("using in-process store; submissions will not survive a restart")
		mem := store.NewMemoryStore(fmt.Sprintf("%s (memory)", cfg.Database.Name))
		return mem, mem, noop
	}
	logger.Warnf("no document store configured; submissions will fail")
	return store.Unavailable{}, nil, noop
}
