package replaydiscord

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"github.com/SawshaDev/Aswo/app/ordr"
)

const (
	// skinCataloguePageSize fetches the whole catalogue in one page; o!rdr
	// serves a few hundred skins in total.
	skinCataloguePageSize = 400

	maxAutocompleteChoices = 25
)

// HandleReplayConfig handles the /replay config slash command: it stores the
// chosen skin and echoes back a preview embed from the catalogue.
func (m *replayManager) HandleReplayConfig(ctx context.Context, i *discordgo.InteractionCreate) (ReplayOperationResult, error) {
	return m.operationWrapper(ctx, "HandleReplayConfig", func(ctx context.Context) (ReplayOperationResult, error) {
		skinID, ok := resolveSkinOption(i)
		if !ok {
			err := m.respondEphemeral(i, "Please pick a skin from the list.")
			if err != nil {
				return ReplayOperationResult{Error: err}, err
			}
			return ReplayOperationResult{Failure: "missing skin id"}, nil
		}

		userID := interactionUserID(i)
		if userID == "" {
			err := fmt.Errorf("user ID is missing")
			return ReplayOperationResult{Error: err}, err
		}

		if err := m.store.SetSkinID(ctx, userID, skinID); err != nil {
			if respondErr := m.respondEphemeral(i, "I couldn't save your skin choice right now. Try again later."); respondErr != nil {
				return ReplayOperationResult{Error: respondErr}, respondErr
			}
			return ReplayOperationResult{Error: err}, err
		}

		embed := m.skinEmbed(ctx, skinID)

		response := &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("Replay skin set to `%d`.", skinID),
		}
		if embed != nil {
			response.Embeds = []*discordgo.MessageEmbed{embed}
		}

		err := m.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: response,
		})
		if err != nil {
			return ReplayOperationResult{Error: err}, fmt.Errorf("failed to respond with skin config: %w", err)
		}
		return ReplayOperationResult{Success: skinID}, nil
	})
}

// skinEmbed looks the skin up in the catalogue for a preview. A catalogue
// failure degrades to no embed rather than failing the config change.
func (m *replayManager) skinEmbed(ctx context.Context, skinID int) *discordgo.MessageEmbed {
	page, err := m.ordr.ListSkins(ctx, 1, skinCataloguePageSize)
	if err != nil {
		m.logger.WarnContext(ctx, "Skin catalogue lookup failed",
			slog.Int("skin_id", skinID),
			slog.Any("error", err),
		)
		return nil
	}

	skin, found := ordr.FindSkin(page.Skins, skinID)
	if !found {
		return nil
	}

	return &discordgo.MessageEmbed{
		Title: skin.Name,
		URL:   skin.DownloadURL,
		Color: 0x2F3136,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Author", Value: skin.Author, Inline: true},
			{Name: "Skin ID", Value: strconv.Itoa(skin.ID), Inline: true},
		},
		Image: &discordgo.MessageEmbedImage{URL: skin.HighResPreview},
	}
}

// HandleSkinAutocomplete serves autocomplete for the skin option on
// /replay config. The catalogue page is memoized by the render client, so
// keystroke-rate traffic stays off the network.
func (m *replayManager) HandleSkinAutocomplete(ctx context.Context, i *discordgo.InteractionCreate) (ReplayOperationResult, error) {
	return m.operationWrapper(ctx, "HandleSkinAutocomplete", func(ctx context.Context) (ReplayOperationResult, error) {
		current := focusedOptionValue(i)

		page, err := m.ordr.ListSkins(ctx, 1, skinCataloguePageSize)
		if err != nil {
			m.logger.WarnContext(ctx, "Skin autocomplete lookup failed", slog.Any("error", err))
			// An empty choice list is the only useful degradation here.
			page = &ordr.SkinPage{}
		}

		matched := ordr.FilterSkins(page.Skins, current)
		if len(matched) > maxAutocompleteChoices {
			matched = matched[:maxAutocompleteChoices]
		}

		choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(matched))
		for _, skin := range matched {
			choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
				Name:  fmt.Sprintf("%s (by %s)", skin.Name, skin.Author),
				Value: skin.ID,
			})
		}

		err = m.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionApplicationCommandAutocompleteResult,
			Data: &discordgo.InteractionResponseData{Choices: choices},
		})
		if err != nil {
			return ReplayOperationResult{Error: err}, fmt.Errorf("failed to respond with autocomplete choices: %w", err)
		}
		return ReplayOperationResult{Success: len(choices)}, nil
	})
}

// resolveSkinOption extracts the skin id from a /replay config interaction.
func resolveSkinOption(i *discordgo.InteractionCreate) (int, bool) {
	options := i.ApplicationCommandData().Options
	if len(options) == 1 && options[0].Type == discordgo.ApplicationCommandOptionSubCommand {
		options = options[0].Options
	}

	for _, opt := range options {
		if opt.Name != "skin" {
			continue
		}
		switch opt.Type {
		case discordgo.ApplicationCommandOptionInteger:
			return int(opt.IntValue()), true
		case discordgo.ApplicationCommandOptionString:
			id, err := strconv.Atoi(opt.StringValue())
			if err != nil {
				return 0, false
			}
			return id, true
		}
	}
	return 0, false
}

// focusedOptionValue returns the raw text of the focused autocomplete option.
func focusedOptionValue(i *discordgo.InteractionCreate) string {
	options := i.ApplicationCommandData().Options
	if len(options) == 1 && options[0].Type == discordgo.ApplicationCommandOptionSubCommand {
		options = options[0].Options
	}

	for _, opt := range options {
		if opt.Focused {
			switch v := opt.Value.(type) {
			case string:
				return v
			case float64:
				return strconv.Itoa(int(v))
			}
		}
	}
	return ""
}
