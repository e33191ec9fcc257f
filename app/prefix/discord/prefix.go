// Package prefixdiscord implements the /prefix admin command for the legacy
// text-command prefix.
package prefixdiscord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/SawshaDev/Aswo/app/shared/storage"

	discord "github.com/SawshaDev/Aswo/app/discordgo"
)

const maxPrefixLength = 8

// PrefixManager defines the prefix administration operations.
type PrefixManager interface {
	HandlePrefixCommand(ctx context.Context, i *discordgo.InteractionCreate) (PrefixOperationResult, error)
	Prefix(guildID string) string
}

// PrefixOperationResult represents the result of a prefix operation.
type PrefixOperationResult struct {
	Success interface{}
	Failure interface{}
	Error   error
}

type prefixManager struct {
	session discord.Session
	store   storage.Store
	cache   *storage.PrefixCache
	logger  *slog.Logger
}

// NewPrefixManager creates a new PrefixManager instance.
func NewPrefixManager(session discord.Session, store storage.Store, cache *storage.PrefixCache, logger *slog.Logger) PrefixManager {
	return &prefixManager{
		session: session,
		store:   store,
		cache:   cache,
		logger:  logger,
	}
}

// HandlePrefixCommand handles the /prefix slash command. The write goes to
// the store first; the cache is only updated once the row is durable.
func (m *prefixManager) HandlePrefixCommand(ctx context.Context, i *discordgo.InteractionCreate) (PrefixOperationResult, error) {
	m.logger.InfoContext(ctx, "HandlePrefixCommand triggered", slog.String("operation", "HandlePrefixCommand"))

	if i.GuildID == "" {
		err := m.respondEphemeral(i, "Prefixes can only be set inside a server.")
		if err != nil {
			return PrefixOperationResult{Error: err}, err
		}
		return PrefixOperationResult{Failure: "not in guild"}, nil
	}

	var prefix string
	if options := i.ApplicationCommandData().Options; len(options) > 0 {
		prefix = options[0].StringValue()
	}
	if prefix == "" || len(prefix) > maxPrefixLength {
		err := m.respondEphemeral(i, fmt.Sprintf("Prefixes must be 1 to %d characters.", maxPrefixLength))
		if err != nil {
			return PrefixOperationResult{Error: err}, err
		}
		return PrefixOperationResult{Failure: "invalid prefix"}, nil
	}

	if err := m.store.SetGuildPrefix(ctx, i.GuildID, prefix); err != nil {
		m.logger.ErrorContext(ctx, "Failed to persist guild prefix",
			slog.String("guild_id", i.GuildID),
			slog.Any("error", err),
		)
		if respondErr := m.respondEphemeral(i, "I couldn't save the prefix right now. Try again later."); respondErr != nil {
			return PrefixOperationResult{Error: respondErr}, respondErr
		}
		return PrefixOperationResult{Error: err}, err
	}
	m.cache.Set(i.GuildID, prefix)

	err := m.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("Prefix for this server is now `%s`.", prefix),
		},
	})
	if err != nil {
		return PrefixOperationResult{Error: err}, err
	}
	return PrefixOperationResult{Success: prefix}, nil
}

// Prefix returns the guild's command prefix from the in-memory cache. It is
// called on every message, so it never touches the store.
func (m *prefixManager) Prefix(guildID string) string {
	return m.cache.Get(guildID)
}

func (m *prefixManager) respondEphemeral(i *discordgo.InteractionCreate, content string) error {
	return m.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}
