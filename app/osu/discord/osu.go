// Package osudiscord implements the osu! lookup slash commands: /user,
// /recent, /beatmap and /set_user. These are plain request/format/respond
// commands with no asynchronous follow-up.
package osudiscord

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	discord "github.com/SawshaDev/Aswo/app/discordgo"
	"github.com/SawshaDev/Aswo/app/osuapi"
	"github.com/SawshaDev/Aswo/app/shared/storage"
)

// OsuManager defines the interface for the osu! lookup commands.
type OsuManager interface {
	HandleUserCommand(ctx context.Context, i *discordgo.InteractionCreate) (OsuOperationResult, error)
	HandleProfileSelect(ctx context.Context, i *discordgo.InteractionCreate) (OsuOperationResult, error)
	HandleRecentCommand(ctx context.Context, i *discordgo.InteractionCreate) (OsuOperationResult, error)
	HandleRecentSelect(ctx context.Context, i *discordgo.InteractionCreate) (OsuOperationResult, error)
	HandleBeatmapCommand(ctx context.Context, i *discordgo.InteractionCreate) (OsuOperationResult, error)
	HandleSetUserCommand(ctx context.Context, i *discordgo.InteractionCreate) (OsuOperationResult, error)
}

// OsuOperationResult represents the result of an osu! command operation.
type OsuOperationResult struct {
	Success interface{}
	Failure interface{}
	Error   error
}

type osuManager struct {
	session          discord.Session
	osu              osuapi.Client
	store            storage.Store
	logger           *slog.Logger
	operationWrapper func(ctx context.Context, opName string, fn func(ctx context.Context) (OsuOperationResult, error)) (OsuOperationResult, error)
}

// NewOsuManager creates a new OsuManager instance.
func NewOsuManager(session discord.Session, osu osuapi.Client, store storage.Store, logger *slog.Logger) OsuManager {
	return &osuManager{
		session: session,
		osu:     osu,
		store:   store,
		logger:  logger,
		operationWrapper: func(ctx context.Context, opName string, fn func(ctx context.Context) (OsuOperationResult, error)) (OsuOperationResult, error) {
			return operationWrapper(ctx, opName, fn, logger)
		},
	}
}

// operationWrapper handles common logging for osu! command operations.
func operationWrapper(
	ctx context.Context,
	opName string,
	fn func(ctx context.Context) (OsuOperationResult, error),
	logger *slog.Logger,
) (result OsuOperationResult, err error) {
	logger.InfoContext(ctx, opName+" triggered", slog.String("operation", opName))

	result, err = fn(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Error in "+opName, slog.Any("error", err))
		return result, err
	}
	return result, nil
}

// interactionUserID extracts the acting user's id from either guild or DM
// interactions.
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// interactionDisplayName returns the name used as the last-resort username
// guess when nothing is stored and no option was given.
func interactionDisplayName(i *discordgo.InteractionCreate) string {
	if i.Member != nil {
		if i.Member.Nick != "" {
			return i.Member.Nick
		}
		if i.Member.User != nil {
			return i.Member.User.Username
		}
	}
	if i.User != nil {
		return i.User.Username
	}
	return ""
}

// resolveUsername applies the lookup order: explicit option, stored
// preference, Discord display name.
func (m *osuManager) resolveUsername(ctx context.Context, i *discordgo.InteractionCreate, option string) (string, error) {
	if option != "" {
		return option, nil
	}

	userID := interactionUserID(i)
	if userID != "" {
		stored, found, err := m.store.OsuUsername(ctx, userID)
		if err != nil {
			return "", err
		}
		if found {
			return stored, nil
		}
	}
	return interactionDisplayName(i), nil
}

// respondEphemeralError sends a short, human-readable failure message that
// only the invoking user sees.
func (m *osuManager) respondEphemeralError(i *discordgo.InteractionCreate, content string) error {
	return m.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}
