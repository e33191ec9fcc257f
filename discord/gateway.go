// Package discord owns the gateway surface: slash command registration and
// the dispatch from raw gateway events to the per-domain managers.
package discord

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	osudiscord "github.com/SawshaDev/Aswo/app/osu/discord"
	prefixdiscord "github.com/SawshaDev/Aswo/app/prefix/discord"
	replaydiscord "github.com/SawshaDev/Aswo/app/replay/discord"

	appdiscord "github.com/SawshaDev/Aswo/app/discordgo"
)

// GatewayEventHandler handles incoming events from the Discord Gateway.
type GatewayEventHandler interface {
	RegisterHandlers()
}

type gatewayEventHandler struct {
	session appdiscord.Session
	osu     osudiscord.OsuManager
	replay  replaydiscord.ReplayManager
	prefix  prefixdiscord.PrefixManager
	logger  *slog.Logger
}

// NewGatewayEventHandler creates a new GatewayEventHandler.
func NewGatewayEventHandler(
	session appdiscord.Session,
	osu osudiscord.OsuManager,
	replay replaydiscord.ReplayManager,
	prefix prefixdiscord.PrefixManager,
	logger *slog.Logger,
) GatewayEventHandler {
	return &gatewayEventHandler{
		session: session,
		osu:     osu,
		replay:  replay,
		prefix:  prefix,
		logger:  logger,
	}
}

// RegisterHandlers registers all the Discord gateway event handlers.
func (h *gatewayEventHandler) RegisterHandlers() {
	h.session.AddHandler(h.interactionCreate)
	h.session.AddHandler(h.messageCreate)
}

// interactionCreate routes an interaction to its manager. Handlers report
// errors through their own results; a dispatch miss is only logged.
func (h *gatewayEventHandler) interactionCreate(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.dispatchCommand(ctx, i)

	case discordgo.InteractionApplicationCommandAutocomplete:
		if i.ApplicationCommandData().Name == CommandReplay {
			if _, err := h.replay.HandleSkinAutocomplete(ctx, i); err != nil {
				h.logger.ErrorContext(ctx, "Skin autocomplete failed", slog.Any("error", err))
			}
		}

	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		if strings.HasPrefix(customID, osudiscord.RecentSelectPrefix) {
			if _, err := h.osu.HandleRecentSelect(ctx, i); err != nil {
				h.logger.ErrorContext(ctx, "Recent score select failed", slog.Any("error", err))
			}
			return
		}
		if strings.HasPrefix(customID, osudiscord.ProfileSelectPrefix) {
			if _, err := h.osu.HandleProfileSelect(ctx, i); err != nil {
				h.logger.ErrorContext(ctx, "Profile select failed", slog.Any("error", err))
			}
			return
		}
		h.logger.DebugContext(ctx, "Unhandled component interaction", slog.String("custom_id", customID))
	}
}

func (h *gatewayEventHandler) dispatchCommand(ctx context.Context, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()

	var err error
	switch data.Name {
	case CommandUser:
		_, err = h.osu.HandleUserCommand(ctx, i)
	case CommandRecent:
		_, err = h.osu.HandleRecentCommand(ctx, i)
	case CommandBeatmap:
		_, err = h.osu.HandleBeatmapCommand(ctx, i)
	case CommandSetUser:
		_, err = h.osu.HandleSetUserCommand(ctx, i)
	case CommandPrefix:
		_, err = h.prefix.HandlePrefixCommand(ctx, i)
	case CommandReplay:
		err = h.dispatchReplaySubcommand(ctx, i, &data)
	default:
		h.logger.WarnContext(ctx, "Unknown command", slog.String("command", data.Name))
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "Command handler failed",
			slog.String("command", data.Name),
			slog.Any("error", err),
		)
	}
}

func (h *gatewayEventHandler) dispatchReplaySubcommand(ctx context.Context, i *discordgo.InteractionCreate, data *discordgo.ApplicationCommandInteractionData) error {
	if len(data.Options) == 0 {
		return nil
	}

	var err error
	switch data.Options[0].Name {
	case SubcommandReplayConfig:
		_, err = h.replay.HandleReplayConfig(ctx, i)
	case SubcommandReplayUpload:
		_, err = h.replay.HandleReplayUpload(ctx, i)
	}
	return err
}

// messageCreate feeds guild messages through the replay observer so posted
// .osr files get rendered without a command. Messages starting with the
// guild's command prefix are addressed to a bot, not shared replays, and
// skip the observer; the prefix comes from the in-memory cache.
func (h *gatewayEventHandler) messageCreate(_ *discordgo.Session, mc *discordgo.MessageCreate) {
	ctx := context.Background()

	if p := h.prefix.Prefix(mc.GuildID); p != "" && strings.HasPrefix(mc.Content, p) {
		return
	}

	if _, err := h.replay.HandleMessageCreate(ctx, mc); err != nil {
		h.logger.ErrorContext(ctx, "Replay observer failed", slog.Any("error", err))
	}
}
