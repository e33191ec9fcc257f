package osudiscord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const (
	// ProfileSelectPrefix prefixes the custom id of the profile detail
	// menu; the rest of the id carries the username the card was built for.
	ProfileSelectPrefix = "aswo-profile-select:"

	profileSectionAvatar     = "avatar"
	profileSectionInfo       = "info"
	profileSectionStatistics = "statistics"
	profileSectionBeatmaps   = "beatmaps"

	favoriteBeatmapLimit = 5
)

// HandleUserCommand handles the /user slash command.
func (m *osuManager) HandleUserCommand(ctx context.Context, i *discordgo.InteractionCreate) (OsuOperationResult, error) {
	return m.operationWrapper(ctx, "HandleUserCommand", func(ctx context.Context) (OsuOperationResult, error) {
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
			m.logger.WarnContext(ctx, "User lookup failed",
				slog.String("username", resolved),
				slog.Any("error", err),
			)
			if respondErr := m.respondEphemeralError(i, userFacingError(err)); respondErr != nil {
				return OsuOperationResult{Error: respondErr}, respondErr
			}
			return OsuOperationResult{Failure: err}, nil
		}

		err = m.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Embeds:     []*discordgo.MessageEmbed{buildProfileEmbed(user)},
				Components: []discordgo.MessageComponent{profileSelectRow(user.Username)},
			},
		})
		if err != nil {
			return OsuOperationResult{Error: err}, fmt.Errorf("failed to respond with profile: %w", err)
		}
		return OsuOperationResult{Success: user.Username}, nil
	})
}

// profileSelectRow builds the detail menu attached to the profile card.
func profileSelectRow(username string) discordgo.MessageComponent {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID: ProfileSelectPrefix + username,
				Options: []discordgo.SelectMenuOption{
					{Label: "Account Avatar", Value: profileSectionAvatar, Description: fmt.Sprintf("Shows the avatar of: %s", username)},
					{Label: "Info", Value: profileSectionInfo, Description: fmt.Sprintf("Info about: %s", username)},
					{Label: "Statistics", Value: profileSectionStatistics, Description: fmt.Sprintf("Statistics about %s", username)},
					{Label: "Beatmaps", Value: profileSectionBeatmaps, Description: fmt.Sprintf("Beatmaps %s has.", username)},
				},
			},
		},
	}
}

// HandleProfileSelect handles a selection on the profile detail menu. The
// user is re-fetched from the username in the custom id rather than held in
// memory, so a stale menu on an old message still resolves.
func (m *osuManager) HandleProfileSelect(ctx context.Context, i *discordgo.InteractionCreate) (OsuOperationResult, error) {
	return m.operationWrapper(ctx, "HandleProfileSelect", func(ctx context.Context) (OsuOperationResult, error) {
		data := i.MessageComponentData()

		username := strings.TrimPrefix(data.CustomID, ProfileSelectPrefix)
		if username == "" || len(data.Values) == 0 {
			err := fmt.Errorf("malformed profile select interaction")
			return OsuOperationResult{Error: err}, err
		}
		section := data.Values[0]

		user, err := m.osu.FetchUser(ctx, username)
		if err != nil {
			if respondErr := m.respondEphemeralError(i, userFacingError(err)); respondErr != nil {
				return OsuOperationResult{Error: respondErr}, respondErr
			}
			return OsuOperationResult{Failure: err}, nil
		}

		var embed *discordgo.MessageEmbed
		switch section {
		case profileSectionAvatar:
			embed = buildAvatarEmbed(user)
		case profileSectionInfo:
			embed = buildProfileEmbed(user)
		case profileSectionStatistics:
			embed = buildStatisticsEmbed(user)
		case profileSectionBeatmaps:
			sets, err := m.osu.FetchUserBeatmaps(ctx, user.ID, "favourite", favoriteBeatmapLimit)
			if err != nil {
				if respondErr := m.respondEphemeralError(i, userFacingError(err)); respondErr != nil {
					return OsuOperationResult{Error: respondErr}, respondErr
				}
				return OsuOperationResult{Failure: err}, nil
			}
			embed = buildFavoriteBeatmapsEmbed(sets)
		default:
			err := fmt.Errorf("unknown profile section %q", section)
			return OsuOperationResult{Error: err}, err
		}

		err = m.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseUpdateMessage,
			Data: &discordgo.InteractionResponseData{
				Embeds:     []*discordgo.MessageEmbed{embed},
				Components: []discordgo.MessageComponent{profileSelectRow(user.Username)},
			},
		})
		if err != nil {
			return OsuOperationResult{Error: err}, err
		}
		return OsuOperationResult{Success: section}, nil
	})
}
