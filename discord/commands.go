package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	appdiscord "github.com/SawshaDev/Aswo/app/discordgo"
)

// Command names as registered with Discord.
const (
	CommandUser    = "user"
	CommandRecent  = "recent"
	CommandBeatmap = "beatmap"
	CommandSetUser = "set_user"
	CommandPrefix  = "prefix"
	CommandReplay  = "replay"

	SubcommandReplayConfig = "config"
	SubcommandReplayUpload = "upload"
)

func commandDefinitions() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        CommandUser,
			Description: "Look up an osu! player profile",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "username",
					Description: "osu! username (defaults to your linked account)",
				},
			},
		},
		{
			Name:        CommandRecent,
			Description: "Show a player's recent osu! plays",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "username",
					Description: "osu! username (defaults to your linked account)",
				},
			},
		},
		{
			Name:        CommandBeatmap,
			Description: "Look up an osu! beatmap by id or url",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "beatmap",
					Description: "Beatmap id or beatmap url",
					Required:    true,
				},
			},
		},
		{
			Name:        CommandSetUser,
			Description: "Link your osu! account to the bot",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "username",
					Description: "Your osu! username",
					Required:    true,
				},
			},
		},
		{
			Name:        CommandPrefix,
			Description: "Change the text-command prefix for this server",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "prefix",
					Description: "The new prefix",
					Required:    true,
				},
			},
		},
		{
			Name:        CommandReplay,
			Description: "Render osu! replays",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandReplayConfig,
					Description: "Choose the skin used for your rendered replays",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:         discordgo.ApplicationCommandOptionInteger,
							Name:         "skin",
							Description:  "The skin to render with",
							Required:     true,
							Autocomplete: true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandReplayUpload,
					Description: "Render a replay file",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionAttachment,
							Name:        "replay",
							Description: "The .osr replay file to render",
							Required:    true,
						},
					},
				},
			},
		},
	}
}

// RegisterCommands registers the bot's slash commands with Discord. An empty
// guildID registers them globally; a test guild id makes them show up
// immediately during development.
func RegisterCommands(s appdiscord.Session, appID, guildID string, logger *slog.Logger) error {
	if appID == "" {
		user, err := s.GetBotUser()
		if err != nil {
			return fmt.Errorf("failed to retrieve bot user: %w", err)
		}
		appID = user.ID
	}

	for _, cmd := range commandDefinitions() {
		if _, err := s.ApplicationCommandCreate(appID, guildID, cmd); err != nil {
			logger.Error("Failed to create command",
				slog.String("command", cmd.Name),
				slog.Any("error", err),
			)
			return fmt.Errorf("failed to create '/%s' command: %w", cmd.Name, err)
		}
		logger.Info("registered command", slog.String("command", "/"+cmd.Name))
	}

	return nil
}
