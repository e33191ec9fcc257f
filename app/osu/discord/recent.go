package osudiscord

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const (
	recentScoreLimit = 5

	// RecentSelectPrefix prefixes the custom id of the recent-score select
	// menu; the rest of the id carries the username the list was built for.
	RecentSelectPrefix = "aswo-recent-select:"
)

// HandleRecentCommand handles the /recent slash command.
func (m *osuManager) HandleRecentCommand(ctx context.Context, i *discordgo.InteractionCreate) (OsuOperationResult, error) {
	return m.operationWrapper(ctx, "HandleRecentCommand", func(ctx context.Context) (OsuOperationResult, error) {
		var username string
		if options := i.ApplicationCommandData().Options; len(options) > 0 {
			username = options[0].StringValue()
		}

		resolved, err := m.resolveUsername(ctx, i, username)
		if err != nil {
			return OsuOperationResult{Error: err}, err
		}

		user, err := m.osu.FetchUser(ctx, resolved)
		if err != nil {
			if respondErr := m.respondEphemeralError(i, userFacingError(err)); respondErr != nil {
				return OsuOperationResult{Error: respondErr}, respondErr
			}
			return OsuOperationResult{Failure: err}, nil
		}

		scores, err := m.osu.FetchRecentScores(ctx, user.ID, recentScoreLimit, true)
		if err != nil {
			m.logger.WarnContext(ctx, "Recent score lookup failed",
				slog.String("username", user.Username),
				slog.Any("error", err),
			)
			if respondErr := m.respondEphemeralError(i, userFacingError(err)); respondErr != nil {
				return OsuOperationResult{Error: respondErr}, respondErr
			}
			return OsuOperationResult{Failure: err}, nil
		}

		if len(scores) == 0 {
			err := m.respondEphemeralError(i, fmt.Sprintf("%s has no recent plays.", user.Username))
			if err != nil {
				return OsuOperationResult{Error: err}, err
			}
			return OsuOperationResult{Success: "no scores"}, nil
		}

		options := make([]discordgo.SelectMenuOption, 0, len(scores))
		for n, score := range scores {
			options = append(options, discordgo.SelectMenuOption{
				Label: fmt.Sprintf("%d - %s", n+1, score.Beatmapset.Title),
				Value: strconv.Itoa(n),
			})
		}

		err = m.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Embeds: []*discordgo.MessageEmbed{buildRecentEmbed(user.Username, scores)},
				Components: []discordgo.MessageComponent{
					discordgo.ActionsRow{
						Components: []discordgo.MessageComponent{
							discordgo.SelectMenu{
								CustomID: RecentSelectPrefix + user.Username,
								Options:  options,
							},
						},
					},
				},
			},
		})
		if err != nil {
			return OsuOperationResult{Error: err}, fmt.Errorf("failed to respond with recent scores: %w", err)
		}
		return OsuOperationResult{Success: len(scores)}, nil
	})
}

// HandleRecentSelect handles a selection on the recent-score menu. The
// score list is re-fetched rather than held in memory, so a stale menu on
// an old message still resolves against the player's current recents.
func (m *osuManager) HandleRecentSelect(ctx context.Context, i *discordgo.InteractionCreate) (OsuOperationResult, error) {
	return m.operationWrapper(ctx, "HandleRecentSelect", func(ctx context.Context) (OsuOperationResult, error) {
		data := i.MessageComponentData()

		username := strings.TrimPrefix(data.CustomID, RecentSelectPrefix)
		if username == "" || len(data.Values) == 0 {
			err := fmt.Errorf("malformed recent select interaction")
			return OsuOperationResult{Error: err}, err
		}

		index, err := strconv.Atoi(data.Values[0])
		if err != nil {
			return OsuOperationResult{Error: err}, err
		}

		user, err := m.osu.FetchUser(ctx, username)
		if err != nil {
			if respondErr := m.respondEphemeralError(i, userFacingError(err)); respondErr != nil {
				return OsuOperationResult{Error: respondErr}, respondErr
			}
			return OsuOperationResult{Failure: err}, nil
		}

		scores, err := m.osu.FetchRecentScores(ctx, user.ID, recentScoreLimit, true)
		if err != nil {
			if respondErr := m.respondEphemeralError(i, userFacingError(err)); respondErr != nil {
				return OsuOperationResult{Error: respondErr}, respondErr
			}
			return OsuOperationResult{Failure: err}, nil
		}
		if index < 0 || index >= len(scores) {
			err := m.respondEphemeralError(i, "That play is no longer in the recent list.")
			if err != nil {
				return OsuOperationResult{Error: err}, err
			}
			return OsuOperationResult{Failure: "stale selection"}, nil
		}

		err = m.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseUpdateMessage,
			Data: &discordgo.InteractionResponseData{
				Embeds: []*discordgo.MessageEmbed{buildScoreDetailEmbed(&scores[index])},
			},
		})
		if err != nil {
			return OsuOperationResult{Error: err}, err
		}
		return OsuOperationResult{Success: index}, nil
	})
}
