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

// HandleMessageCreate is the passive replay observer: any message carrying a
// .osr attachment is submitted for rendering without a command. The bot posts
// a progress message in the same channel and edits it when the outcome lands.
func (m *replayManager) HandleMessageCreate(ctx context.Context, mc *discordgo.MessageCreate) (ReplayOperationResult, error) {
	attachment := findReplayAttachment(mc)
	if attachment == nil {
		return ReplayOperationResult{Success: "no replay attachment"}, nil
	}

	return m.operationWrapper(ctx, "HandleReplayMessage", func(ctx context.Context) (ReplayOperationResult, error) {
		skinID := m.resolveSkin(ctx, mc.Author.ID)

		progress, err := m.session.ChannelMessageSend(mc.ChannelID, m.progressMessage())
		if err != nil {
			return ReplayOperationResult{Error: err}, fmt.Errorf("failed to send progress message: %w", err)
		}

		submission, err := m.submit(ctx, attachment.URL, skinID)
		if err != nil {
			content := submitUserError(err)
			if _, editErr := m.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
				ID:      progress.ID,
				Channel: progress.ChannelID,
				Content: &content,
			}); editErr != nil {
				m.logger.ErrorContext(ctx, "Failed to edit progress message after submission failure",
					slog.Any("error", editErr),
				)
			}
			return ReplayOperationResult{Failure: err}, nil
		}

		mention := mc.Author.Mention()
		if err := m.correlator.Register(submission.RenderID, m.messageCompletion(progress.ChannelID, progress.ID, mention)); err != nil {
			m.logger.ErrorContext(ctx, "Failed to register render ticket",
				slog.Int64("render_id", submission.RenderID),
				slog.Any("error", err),
			)
			return ReplayOperationResult{Error: err}, err
		}

		return ReplayOperationResult{Success: submission.RenderID}, nil
	})
}

// messageCompletion builds the completion action for an observer submission:
// it edits the progress message the bot posted in the channel.
func (m *replayManager) messageCompletion(channelID, messageID, mention string) render.CompletionFunc {
	return func(ctx context.Context, outcome render.Outcome) {
		content := outcomeContent(outcome, mention)
		err := discord.RetryDiscordAPI(m.logger, "edit render progress message", func() error {
			_, editErr := m.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
				ID:      messageID,
				Channel: channelID,
				Content: &content,
			})
			return editErr
		})
		if err != nil {
			m.logger.ErrorContext(ctx, "Failed to edit progress message with render outcome",
				slog.Int64("render_id", outcome.RenderID),
				slog.Any("error", err),
			)
		}
	}
}

// findReplayAttachment returns the first .osr attachment on a message, or
// nil. Bot messages never count, including our own.
func findReplayAttachment(mc *discordgo.MessageCreate) *discordgo.MessageAttachment {
	if mc.Author == nil || mc.Author.Bot {
		return nil
	}
	for _, attachment := range mc.Attachments {
		if strings.HasSuffix(strings.ToLower(attachment.Filename), ".osr") {
			return attachment
		}
	}
	return nil
}
