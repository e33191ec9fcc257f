package osudiscord

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"

	"github.com/bwmarrin/discordgo"
)

var digitsRE = regexp.MustCompile(`\d+`)

// parseBeatmapID extracts the beatmap id from raw input. Beatmap URLs carry
// the beatmapset id first and the beatmap id second, so the second match
// wins when both are present.
func parseBeatmapID(input string) (int64, bool) {
	matches := digitsRE.FindAllString(input, -1)
	if len(matches) == 0 {
		return 0, false
	}

	raw := matches[0]
	if len(matches) > 1 {
		raw = matches[1]
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// HandleBeatmapCommand handles the /beatmap slash command.
func (m *osuManager) HandleBeatmapCommand(ctx context.Context, i *discordgo.InteractionCreate) (OsuOperationResult, error) {
	return m.operationWrapper(ctx, "HandleBeatmapCommand", func(ctx context.Context) (OsuOperationResult, error) {
		var input string
		if options := i.ApplicationCommandData().Options; len(options) > 0 {
			input = options[0].StringValue()
		}

		beatmapID, ok := parseBeatmapID(input)
		if !ok {
			err := m.respondEphemeralError(i,
				"No beatmap id found in that input.\nMake sure to use the second id in the beatmap url (that's the beatmap id), not the first one (that's the beatmapset id).")
			if err != nil {
				return OsuOperationResult{Error: err}, err
			}
			return OsuOperationResult{Failure: "no beatmap id"}, nil
		}

		beatmap, err := m.osu.FetchBeatmap(ctx, beatmapID)
		if err != nil {
			m.logger.WarnContext(ctx, "Beatmap lookup failed",
				slog.Int64("beatmap_id", beatmapID),
				slog.Any("error", err),
			)
			if respondErr := m.respondEphemeralError(i, userFacingError(err)); respondErr != nil {
				return OsuOperationResult{Error: respondErr}, respondErr
			}
			return OsuOperationResult{Failure: err}, nil
		}

		// The mapper's profile link is decoration; a failed lookup falls
		// back to the plain creator name.
		creator, err := m.osu.FetchUser(ctx, beatmap.Beatmapset.Creator)
		if err != nil {
			m.logger.DebugContext(ctx, "Beatmap creator lookup failed", slog.Any("error", err))
			creator = nil
		}

		err = m.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Embeds: []*discordgo.MessageEmbed{buildBeatmapEmbed(beatmap, creator)},
			},
		})
		if err != nil {
			return OsuOperationResult{Error: err}, fmt.Errorf("failed to respond with beatmap: %w", err)
		}
		return OsuOperationResult{Success: beatmapID}, nil
	})
}
