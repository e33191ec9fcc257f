// Package bot assembles the Discord-facing pieces and owns their lifecycle.
package bot

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/bwmarrin/discordgo"

	"github.com/SawshaDev/Aswo/config"
	"github.com/SawshaDev/Aswo/discord"

	appdiscord "github.com/SawshaDev/Aswo/app/discordgo"
)

type DiscordBot struct {
	Session         appdiscord.Session
	Logger          *slog.Logger
	Config          *config.Config
	GatewayHandler  discord.GatewayEventHandler
	WatermillRouter *message.Router
}

func NewDiscordBot(
	session appdiscord.Session,
	cfg *config.Config,
	gatewayHandler discord.GatewayEventHandler,
	logger *slog.Logger,
	router *message.Router,
) (*DiscordBot, error) {
	return &DiscordBot{
		Session:         session,
		Logger:          logger,
		Config:          cfg,
		GatewayHandler:  gatewayHandler,
		WatermillRouter: router,
	}, nil
}

// Run registers slash commands and gateway handlers, then opens the session.
// It returns once the bot is connected; shutdown is driven by ctx.
func (bot *DiscordBot) Run(ctx context.Context) error {
	// Register slash commands BEFORE opening the session.
	err := discord.RegisterCommands(bot.Session, bot.Config.Discord.AppID, bot.Config.Discord.GuildID, bot.Logger)
	if err != nil {
		bot.Logger.ErrorContext(ctx, "Failed to register slash commands", slog.Any("error", err))
		return err
	}
	bot.Logger.InfoContext(ctx, "Slash commands registered successfully.")

	bot.GatewayHandler.RegisterHandlers()

	bot.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		bot.Logger.InfoContext(ctx, "Discord bot is connected and ready.",
			slog.String("username", r.User.Username),
		)
	})

	if err := bot.Session.Open(); err != nil {
		bot.Logger.ErrorContext(ctx, "Error opening discord connection", slog.Any("error", err))
		return err
	}

	bot.Logger.InfoContext(ctx, "Discord bot is now running.")

	// Graceful shutdown
	go func() {
		<-ctx.Done()
		bot.Logger.Info("Shutting down Discord bot...")
		bot.Close()
	}()

	return nil
}

func (b *DiscordBot) Close() {
	b.Logger.Info("Closing bot")

	if b.WatermillRouter != nil {
		if err := b.WatermillRouter.Close(); err != nil {
			b.Logger.Error("Failed to close Watermill router", slog.Any("error", err))
		}
	}

	if err := b.Session.Close(); err != nil {
		b.Logger.Error("Failed to close Discord session", slog.Any("error", err))
	}
}
