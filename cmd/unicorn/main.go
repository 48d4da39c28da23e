package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pagardi95/ironunicorn/internal/avatar"
	"github.com/pagardi95/ironunicorn/internal/cache"
	"github.com/pagardi95/ironunicorn/internal/config"
	"github.com/pagardi95/ironunicorn/internal/logging"
	"github.com/pagardi95/ironunicorn/internal/progression"
	"github.com/pagardi95/ironunicorn/internal/storage"
	"github.com/pagardi95/ironunicorn/internal/telemetry/metrics"
	"github.com/pagardi95/ironunicorn/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %s\n", err)
		os.Exit(1)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "iron-unicorn",
	})
	log.Debugf("running in [%s] environment", cfg.Environment)

	ctx, cancel := context.WithCancel(context.Background())
	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)
	go func() {
		receivedSig, ok := <-chOsInterrupt
		if !ok {
			return
		}
		log.Warnf("signal [%s] received, stopping ...", receivedSig)
		cancel()
	}()

	a, shutdown, err := setup(ctx, cfg)
	if err != nil {
		log.Errorf("setup: %s", err)
		fmt.Fprintf(os.Stderr, "setup: %s\n", err)
		cancel()
		os.Exit(1)
	}

	runErr := a.run(ctx, flag.Args())
	a.engine.Wait()

	shutdown()
	signal.Stop(chOsInterrupt)
	close(chOsInterrupt)
	cancel()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "%s\n", runErr)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: unicorn [-env dev] [-config ./config.toml] <command> [args]

commands:
  status                          show level, xp, evolution and challenges
  onboard -bodyweight -squat ...  complete onboarding with your lifts
  workout [-plan id] [-day n]     finish a workout of the selected plan
  challenge <id>                  complete a challenge
  quest <id> [-yes]               confirm a side quest
  drill <id>                      log a targeted body part drill
  plans                           list training plans and their lock state
  plan <id>                       select a training plan
  avatar [-force]                 resolve the avatar for the current level
  regen-all [-from n] [-to n]     generate every level avatar into the asset dir
  reset [-yes]                    start over
`)
}

// setup wires the app from config. The returned func releases everything it opened.
func setup(ctx context.Context, cfg *config.Config) (*app, func(), error) {
	var closers []func()
	shutdown := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	honeycombEnabled := cfg.HoneycombEnabled || os.Getenv("HONEYCOMB_ENABLED") == "true"
	if honeycombEnabled && os.Getenv("HONEYCOMB_API_KEY") == "" {
		log.Warnln("HONEYCOMB_API_KEY env var not set")
	}
	otelShutdown, err := tracing.HoneycombSetup(honeycombEnabled, "iron-unicorn")
	if err != nil {
		return nil, shutdown, fmt.Errorf("tracing setup: %w", err)
	}
	closers = append(closers, otelShutdown)

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("ironunicorn", "cli", promRegistry)
	if cfg.MetricsPort > 0 {
		metricsServer := metrics.NewServer(cfg.MetricsHost, cfg.MetricsPort, promRegistry)
		go func() {
			log.Debugf(" > metrics listening on: [%s]", metricsServer.Addr)
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Errorf("metrics server, listen and serve: %s", err)
			}
		}()
		closers = append(closers, func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				log.Errorf("metrics server shutdown: %s", err)
			}
		})
	}

	var rdb *redis.Client
	if cfg.StorageBackend == storage.BackendRedis || cfg.GenerationPerMinute > 0 {
		redisPassword := os.Getenv("REDIS_PASS")
		if redisPassword == "" {
			log.Debugln("redis password not set, use REDIS_PASS")
		}
		rdb, err = storage.NewRedisClient(ctx, storage.NewRedisClientParams{
			Host:           cfg.RedisHost,
			Port:           cfg.RedisPort,
			Password:       redisPassword,
			TracingEnabled: honeycombEnabled,
		})
		if err != nil {
			return nil, shutdown, err
		}
		closers = append(closers, func() {
			if err := rdb.Close(); err != nil {
				log.Errorf("failed to close redis client conn: %s", err)
			}
		})
	}

	store, err := storage.Open(ctx, storage.OpenParams{
		Backend: cfg.StorageBackend,
		Path:    cfg.StoragePath,
		Slot:    cfg.StorageSlot,
		Redis:   rdb,
	})
	if err != nil {
		return nil, shutdown, fmt.Errorf("open storage: %w", err)
	}
	closers = append(closers, func() {
		if err := store.Close(); err != nil {
			log.Errorf("close storage: %s", err)
		}
	})

	resolver, err := newResolver(cfg, rdb, metricsManager)
	if err != nil {
		return nil, shutdown, err
	}

	engine, err := progression.NewEngine(ctx, progression.NewEngineParams{
		Store:   store,
		Avatars: resolver,
		Metrics: metricsManager,
	})
	if err != nil {
		return nil, shutdown, err
	}

	metricsManager.GaugeLifeSignal.Set(1)
	closers = append(closers, func() {
		metricsManager.GaugeLifeSignal.Set(0)
	})

	return &app{
		engine:     engine,
		resolver:   resolver,
		assetDir:   cfg.AssetOutputDir,
		batchDelay: cfg.BatchDelay,
		out:        os.Stdout,
		in:         os.Stdin,
	}, shutdown, nil
}

func newResolver(cfg *config.Config, rdb *redis.Client, metricsManager *metrics.Manager) (*avatar.Resolver, error) {
	static, err := avatar.NewStaticStore(avatar.StaticStrategy(cfg.StaticStrategy), cfg.StaticAssetRoot)
	if err != nil {
		return nil, err
	}

	params := avatar.NewResolverParams{
		Mode:    avatar.Mode(cfg.AvatarMode),
		Static:  static,
		Metrics: metricsManager,
		Policy: avatar.RetryPolicy{
			MaxAttempts: cfg.GenerationMaxAttempts,
			BaseDelay:   cfg.GenerationBaseDelay,
			Multiplier:  cfg.GenerationMultiplier,
		},
	}

	apiKey := os.Getenv("IMAGE_API_KEY")
	if apiKey == "" {
		if params.Mode == avatar.ModeGenerate {
			log.Warnln("image API key not set, use IMAGE_API_KEY env var; falling back to static avatars")
			params.Mode = avatar.ModeStatic
		}
	} else {
		params.Generator = avatar.NewClient(avatar.NewClientParams{
			BaseURL:     cfg.ImageAPIURL,
			APIKey:      apiKey,
			Model:       cfg.ImageModel,
			AspectRatio: cfg.ImageAspectRatio,
		})
		assets, err := avatar.NewDiskSink(cfg.AssetOutputDir)
		if err != nil {
			return nil, err
		}
		params.Assets = assets
	}

	if rdb != nil && cfg.GenerationPerMinute > 0 {
		params.Limiter = avatar.NewRedisLimiter(rdb, "", cfg.GenerationPerMinute)
	}
	if cfg.AvatarCacheMB > 0 {
		params.Cache = cache.NewImageCache(cfg.AvatarCacheMB, cfg.AvatarCacheTTL)
	}

	return avatar.NewResolver(params)
}
