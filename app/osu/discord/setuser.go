package osudiscord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// HandleSetUserCommand handles the /set_user slash command.
func (m *osuManager) HandleSetUserCommand(ctx context.Context, i *discordgo.InteractionCreate) (OsuOperationResult, error) {
	return m.operationWrapper(ctx, "HandleSetUserCommand", func(ctx context.Context) (OsuOperationResult, error) {
		var username string
		if options := i.ApplicationCommandData().Options; len(options) > 0 {
			username = options[0].StringValue()
		}
		if username == "" {
			err := m.respondEphemeralError(i, "Please provide an osu! username.")
			if err != nil {
				return OsuOperationResult{Error: err}, err
			}
			return OsuOperationResult{Failure: "empty username"}, nil
		}

		userID := interactionUserID(i)
		if userID == "" {
			err := fmt.Errorf("user ID is missing")
			return OsuOperationResult{Error: err}, err
		}

		if err := m.store.SetOsuUsername(ctx, userID, username); err != nil {
			if respondErr := m.respondEphemeralError(i, "I couldn't save your username right now. Try again later."); respondErr != nil {
				return OsuOperationResult{Error: respondErr}, respondErr
			}
			return OsuOperationResult{Error: err}, err
		}

		err := m.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: fmt.Sprintf("Successfully set your osu username to: %s", username),
			},
		})
		if err != nil {
			return OsuOperationResult{Error: err}, err
		}
		return OsuOperationResult{Success: username}, nil
	})
}
