// Package replaydiscord implements replay submission: the /replay command
// group (config, upload), the skin autocomplete, and the passive message
// observer that picks up posted .osr files. Submission registers a ticket
// with the render correlator before the handler returns; the completion
// action then edits the progress message whenever the outcome arrives.
package replaydiscord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/SawshaDev/Aswo/app/ordr"
	"github.com/SawshaDev/Aswo/app/ordr/notify"
	"github.com/SawshaDev/Aswo/app/render"
	"github.com/SawshaDev/Aswo/app/shared/apperrors"
	"github.com/SawshaDev/Aswo/app/shared/metrics"
	"github.com/SawshaDev/Aswo/app/shared/storage"
	"github.com/SawshaDev/Aswo/config"

	discord "github.com/SawshaDev/Aswo/app/discordgo"
)

// DefaultSkinID is used when a user has no stored skin preference.
const DefaultSkinID = 1

const (
	progressContent = "osu! replay file detected, a rendered replay will be sent shortly! May take a bit so relax :D\nI'll ping you when it's finished!"

	degradedNote = "\n\n⚠️ I'm currently not connected to the render notification stream, so I may not be able to tell you when it finishes."
)

// ReplayManager defines the replay submission operations.
type ReplayManager interface {
	HandleReplayUpload(ctx context.Context, i *discordgo.InteractionCreate) (ReplayOperationResult, error)
	HandleReplayConfig(ctx context.Context, i *discordgo.InteractionCreate) (ReplayOperationResult, error)
	HandleSkinAutocomplete(ctx context.Context, i *discordgo.InteractionCreate) (ReplayOperationResult, error)
	HandleMessageCreate(ctx context.Context, mc *discordgo.MessageCreate) (ReplayOperationResult, error)
}

// ReplayOperationResult represents the result of a replay operation.
type ReplayOperationResult struct {
	Success interface{}
	Failure interface{}
	Error   error
}

type replayManager struct {
	session          discord.Session
	ordr             ordr.Client
	store            storage.Store
	correlator       render.Correlator
	channelState     func() notify.State
	config           *config.Config
	logger           *slog.Logger
	operationWrapper func(ctx context.Context, opName string, fn func(ctx context.Context) (ReplayOperationResult, error)) (ReplayOperationResult, error)
}

// NewReplayManager creates a new ReplayManager instance. channelState
// reports the notification channel health so handlers can warn the user
// instead of silently promising a follow-up that will never come.
func NewReplayManager(
	session discord.Session,
	ordrClient ordr.Client,
	store storage.Store,
	correlator render.Correlator,
	channelState func() notify.State,
	cfg *config.Config,
	logger *slog.Logger,
) ReplayManager {
	return &replayManager{
		session:      session,
		ordr:         ordrClient,
		store:        store,
		correlator:   correlator,
		channelState: channelState,
		config:       cfg,
		logger:       logger,
		operationWrapper: func(ctx context.Context, opName string, fn func(ctx context.Context) (ReplayOperationResult, error)) (ReplayOperationResult, error) {
			return operationWrapper(ctx, opName, fn, logger)
		},
	}
}

func operationWrapper(
	ctx context.Context,
	opName string,
	fn func(ctx context.Context) (ReplayOperationResult, error),
	logger *slog.Logger,
) (result ReplayOperationResult, err error) {
	logger.InfoContext(ctx, opName+" triggered", slog.String("operation", opName))

	result, err = fn(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Error in "+opName, slog.Any("error", err))
		return result, err
	}
	return result, nil
}

// resolveSkin returns the user's stored skin choice or the default.
func (m *replayManager) resolveSkin(ctx context.Context, userID string) int {
	skinID, found, err := m.store.SkinID(ctx, userID)
	if err != nil {
		m.logger.WarnContext(ctx, "Skin lookup failed, using default",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return DefaultSkinID
	}
	if !found {
		return DefaultSkinID
	}
	return skinID
}

// submit sends the replay to the render service and counts the attempt.
func (m *replayManager) submit(ctx context.Context, replayURL string, skinID int) (*ordr.Submission, error) {
	submission, err := m.ordr.SubmitReplay(ctx, ordr.SubmitRequest{
		ReplayURL:  replayURL,
		Username:   m.config.Ordr.Username,
		Resolution: m.config.Ordr.Resolution,
		SkinID:     skinID,
	})
	if err != nil {
		var domainErr *ordr.DomainError
		if errors.As(err, &domainErr) && metrics.RendersRejected != nil {
			metrics.RendersRejected.Inc()
		}
		return nil, err
	}
	if metrics.RendersSubmitted != nil {
		metrics.RendersSubmitted.Inc()
	}
	return submission, nil
}

// progressMessage is the initial response, with a degraded-mode warning
// when the notification channel is down.
func (m *replayManager) progressMessage() string {
	content := progressContent
	if m.channelState != nil && m.channelState() != notify.StateConnected {
		content += degradedNote
	}
	return content
}

// outcomeContent renders the terminal message for a render outcome.
func outcomeContent(outcome render.Outcome, mention string) string {
	switch {
	case outcome.TimedOut:
		return fmt.Sprintf("Sorry %s, I gave up waiting for your render to finish. The render service may be overloaded — try again later.", mention)
	case outcome.ErrorCode != 0 || outcome.ErrorMessage != "":
		msg := outcome.ErrorMessage
		if msg == "" {
			msg = (&ordr.DomainError{Code: outcome.ErrorCode}).Message()
		}
		return fmt.Sprintf("Sorry %s, your render failed: %s", mention, msg)
	default:
		return fmt.Sprintf("Here's your rendered video %s!\n%s", mention, outcome.VideoURL)
	}
}

// submitUserError maps a submission error to the message the user sees.
func submitUserError(err error) string {
	var domainErr *ordr.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message()
	}

	var transport *apperrors.TransportError
	if errors.As(err, &transport) {
		return "I couldn't reach the render service. Try again in a moment."
	}

	return "Something went wrong submitting your replay. Try again later."
}

// respondEphemeral sends a short ephemeral reply on an interaction.
func (m *replayManager) respondEphemeral(i *discordgo.InteractionCreate, content string) error {
	return m.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}
