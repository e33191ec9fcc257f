package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/bwmarrin/discordgo"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/SawshaDev/Aswo/app/health"
	"github.com/SawshaDev/Aswo/app/ordr"
	"github.com/SawshaDev/Aswo/app/ordr/notify"
	"github.com/SawshaDev/Aswo/app/osuapi"
	"github.com/SawshaDev/Aswo/app/render"
	"github.com/SawshaDev/Aswo/app/shared/metrics"
	"github.com/SawshaDev/Aswo/app/shared/storage"
	cache "github.com/SawshaDev/Aswo/bigcache"
	"github.com/SawshaDev/Aswo/bot"
	"github.com/SawshaDev/Aswo/config"
	"github.com/SawshaDev/Aswo/discord"
	renderrouter "github.com/SawshaDev/Aswo/router/render"

	appdiscord "github.com/SawshaDev/Aswo/app/discordgo"
	osudiscord "github.com/SawshaDev/Aswo/app/osu/discord"
	prefixdiscord "github.com/SawshaDev/Aswo/app/prefix/discord"
	replaydiscord "github.com/SawshaDev/Aswo/app/replay/discord"
)

// skinCacheTTL bounds how stale the memoized o!rdr skin catalogue may get.
const skinCacheTTL = time.Hour

// version is stamped at build time via -ldflags.
var version = "dev"

func main() {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metrics.Init()

	// Preference store.
	pool, err := pgxpool.New(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("Failed to create postgres pool: %v", err)
	}
	defer pool.Close()

	store := storage.NewPgStore(pool, logger)
	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	prefixCache := storage.NewPrefixCache(cfg.Discord.DefaultPrefix)
	if err := prefixCache.Load(ctx, store, logger); err != nil {
		log.Fatalf("Failed to load guild prefixes: %v", err)
	}

	// Internal message bus for render completion events.
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	watermillRouter, err := message.NewRouter(message.RouterConfig{}, watermill.NopLogger{})
	if err != nil {
		log.Fatalf("Failed to create Watermill router: %v", err)
	}

	// Render pipeline: client, correlator, completion router, event stream.
	skinMemo, err := cache.NewCache(ctx, skinCacheTTL)
	if err != nil {
		log.Fatalf("Failed to create skin cache: %v", err)
	}
	ordrClient := ordr.NewClient(cfg.Ordr.APIURL, cfg.Ordr.VerificationKey, skinMemo, logger)

	correlator := render.NewCorrelator(ctx, cfg.Ordr.RenderTimeout(), logger)

	renderRouter := renderrouter.NewRenderRouter(logger, watermillRouter, pubSub, correlator)
	if err := renderRouter.Configure(); err != nil {
		log.Fatalf("Failed to configure render router: %v", err)
	}
	go func() {
		if err := renderRouter.Run(ctx); err != nil {
			logger.ErrorContext(ctx, "Render router stopped", slog.Any("error", err))
			cancel()
		}
	}()

	notifyChannel := notify.NewChannel(cfg.Ordr.WebsocketURL, pubSub, logger)
	go notifyChannel.Run(ctx)

	// osu! API client.
	osuClient := osuapi.New(cfg.Osu.ClientID, cfg.Osu.ClientSecret, cfg.Osu.TokenURL, cfg.Osu.APIURL)

	// Discord session.
	discordSession, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}
	discordSession.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	sessionWrapper := appdiscord.NewDiscordSession(discordSession, logger)

	osuManager := osudiscord.NewOsuManager(sessionWrapper, osuClient, store, logger)
	replayManager := replaydiscord.NewReplayManager(sessionWrapper, ordrClient, store, correlator, func() notify.State {
		return notifyChannel.State()
	}, cfg, logger)
	prefixManager := prefixdiscord.NewPrefixManager(sessionWrapper, store, prefixCache, logger)

	gatewayHandler := discord.NewGatewayEventHandler(sessionWrapper, osuManager, replayManager, prefixManager, logger)

	discordBot, err := bot.NewDiscordBot(sessionWrapper, cfg, gatewayHandler, logger, watermillRouter)
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	go func() {
		if err := discordBot.Run(ctx); err != nil && err != context.Canceled {
			logger.ErrorContext(ctx, "Discord bot error", slog.Any("error", err))
			cancel()
		}
	}()

	// Ops listener: Prometheus metrics plus health endpoints.
	opsMux := http.NewServeMux()
	opsMux.Handle("/metrics", metrics.Handler())
	healthHandler := health.NewHandler(version,
		func() string { return notifyChannel.State().String() },
		correlator.Pending,
	)
	healthHandler.Register(opsMux)

	metricsServer := &http.Server{Addr: cfg.Metrics.Addr, Handler: opsMux}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Metrics server stopped", slog.Any("error", err))
		}
	}()

	// Graceful shutdown.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down gracefully...")
	cancel()

	discordBot.Close()
	_ = metricsServer.Shutdown(context.Background())

	logger.Info("Shutdown complete.")
}
