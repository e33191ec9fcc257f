package replaydiscord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/SawshaDev/Aswo/app/render"

	discord "github.com/SawshaDev/Aswo/app/discordgo"
)

// HandleReplayUpload handles the /replay upload slash command. The initial
// response is a progress message; the registered completion action edits it
// when the render finishes, fails, or times out.
func (m *replayManager) HandleReplayUpload(ctx context.Context, i *discordgo.InteractionCreate) (ReplayOperationResult, error) {
	return m.operationWrapper(ctx, "HandleReplayUpload", func(ctx context.Context) (ReplayOperationResult, error) {
		data := i.ApplicationCommandData()

		attachment := resolveReplayAttachment(&data, i)
		if attachment == nil {
			err := m.respondEphemeral(i, "Please attach a .osr replay file.")
			if err != nil {
				return ReplayOperationResult{Error: err}, err
			}
			return ReplayOperationResult{Failure: "missing attachment"}, nil
		}
		if !strings.HasSuffix(strings.ToLower(attachment.Filename), ".osr") {
			err := m.respondEphemeral(i, "That doesn't look like an osu! replay — I need a .osr file.")
			if err != nil {
				return ReplayOperationResult{Error: err}, err
			}
			return ReplayOperationResult{Failure: "not a replay"}, nil
		}

		userID := interactionUserID(i)
		skinID := m.resolveSkin(ctx, userID)

		submission, err := m.submit(ctx, attachment.URL, skinID)
		if err != nil {
			if respondErr := m.respondEphemeral(i, submitUserError(err)); respondErr != nil {
				return ReplayOperationResult{Error: respondErr}, respondErr
			}
			return ReplayOperationResult{Failure: err}, nil
		}

		// Respond before registering so the user always sees the progress
		// message. The ticket still lands before the handler yields.
		err = m.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: m.progressMessage(),
			},
		})
		if err != nil {
			return ReplayOperationResult{Error: err}, fmt.Errorf("failed to respond with progress message: %w", err)
		}

		mention := interactionMention(i)
		if err := m.correlator.Register(submission.RenderID, m.interactionCompletion(i.Interaction, mention)); err != nil {
			m.logger.ErrorContext(ctx, "Failed to register render ticket",
				slog.Int64("render_id", submission.RenderID),
				slog.Any("error", err),
			)
			return ReplayOperationResult{Error: err}, err
		}

		return ReplayOperationResult{Success: submission.RenderID}, nil
	})
}

// interactionCompletion builds the completion action for an interaction-based
// submission: it edits the original progress response in place.
func (m *replayManager) interactionCompletion(interaction *discordgo.Interaction, mention string) render.CompletionFunc {
	return func(ctx context.Context, outcome render.Outcome) {
		content := outcomeContent(outcome, mention)
		err := discord.RetryDiscordAPI(m.logger, "edit render progress response", func() error {
			_, editErr := m.session.InteractionResponseEdit(interaction, &discordgo.WebhookEdit{
				Content: &content,
			})
			return editErr
		})
		if err != nil {
			m.logger.ErrorContext(ctx, "Failed to edit progress response with render outcome",
				slog.Int64("render_id", outcome.RenderID),
				slog.Any("error", err),
			)
		}
	}
}

// resolveReplayAttachment digs the attachment option out of the interaction.
// Attachment options carry an id; the attachment itself lives in Resolved.
func resolveReplayAttachment(data *discordgo.ApplicationCommandInteractionData, i *discordgo.InteractionCreate) *discordgo.MessageAttachment {
	options := data.Options
	// /replay upload arrives as a subcommand wrapping the real options.
	if len(options) == 1 && options[0].Type == discordgo.ApplicationCommandOptionSubCommand {
		options = options[0].Options
	}

	for _, opt := range options {
		if opt.Type != discordgo.ApplicationCommandOptionAttachment {
			continue
		}
		if data.Resolved == nil {
			return nil
		}
		if attachment, ok := data.Resolved.Attachments[opt.Value.(string)]; ok {
			return attachment
		}
	}
	return nil
}

func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func interactionMention(i *discordgo.InteractionCreate) string {
	if id := interactionUserID(i); id != "" {
		return "<@" + id + ">"
	}
	return "there"
}
