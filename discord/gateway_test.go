package discord

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/mock/gomock"

	osudiscord "github.com/SawshaDev/Aswo/app/osu/discord"
	prefixdiscord "github.com/SawshaDev/Aswo/app/prefix/discord"
	replaydiscord "github.com/SawshaDev/Aswo/app/replay/discord"

	appdiscord "github.com/SawshaDev/Aswo/app/discordgo"
	"github.com/SawshaDev/Aswo/app/shared/storage"
	"github.com/SawshaDev/Aswo/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubOsuManager struct {
	osudiscord.OsuManager
	profileSelects int
	recentSelects  int
}

func (s *stubOsuManager) HandleProfileSelect(_ context.Context, _ *discordgo.InteractionCreate) (osudiscord.OsuOperationResult, error) {
	s.profileSelects++
	return osudiscord.OsuOperationResult{Success: "ok"}, nil
}

func (s *stubOsuManager) HandleRecentSelect(_ context.Context, _ *discordgo.InteractionCreate) (osudiscord.OsuOperationResult, error) {
	s.recentSelects++
	return osudiscord.OsuOperationResult{Success: "ok"}, nil
}

type stubReplayManager struct {
	replaydiscord.ReplayManager
	observed []*discordgo.MessageCreate
}

func (s *stubReplayManager) HandleMessageCreate(_ context.Context, mc *discordgo.MessageCreate) (replaydiscord.ReplayOperationResult, error) {
	s.observed = append(s.observed, mc)
	return replaydiscord.ReplayOperationResult{Success: "ok"}, nil
}

func newTestGateway(t *testing.T, osu osudiscord.OsuManager, replay replaydiscord.ReplayManager, cache *storage.PrefixCache) *gatewayEventHandler {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	session := appdiscord.NewFakeSession()
	prefix := prefixdiscord.NewPrefixManager(session, mocks.NewMockStore(ctrl), cache, testLogger())

	return NewGatewayEventHandler(session, osu, replay, prefix, testLogger()).(*gatewayEventHandler)
}

func guildMessage(guildID, content string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{
		Message: &discordgo.Message{
			GuildID: guildID,
			Content: content,
			Author:  &discordgo.User{ID: "discord-user-1"},
		},
	}
}

func TestMessageCreateSkipsPrefixedMessages(t *testing.T) {
	replay := &stubReplayManager{}
	cache := storage.NewPrefixCache(">>")
	cache.Set("guild-2", "!")

	h := newTestGateway(t, &stubOsuManager{}, replay, cache)

	// Prefixed messages are bot commands, not replay shares.
	h.messageCreate(nil, guildMessage("guild-1", ">>help"))
	h.messageCreate(nil, guildMessage("guild-2", "!render"))
	if len(replay.observed) != 0 {
		t.Fatalf("observer ran for %d prefixed messages", len(replay.observed))
	}

	// The guild's own prefix applies, not the default.
	h.messageCreate(nil, guildMessage("guild-2", ">>check this out"))
	h.messageCreate(nil, guildMessage("guild-1", "new top play!"))
	if len(replay.observed) != 2 {
		t.Fatalf("got %d observed messages, want 2", len(replay.observed))
	}
}

func TestInteractionCreateRoutesSelectMenus(t *testing.T) {
	osu := &stubOsuManager{}

	h := newTestGateway(t, osu, &stubReplayManager{}, storage.NewPrefixCache(">>"))

	component := func(customID string) *discordgo.InteractionCreate {
		return &discordgo.InteractionCreate{
			Interaction: &discordgo.Interaction{
				Type: discordgo.InteractionMessageComponent,
				Data: discordgo.MessageComponentInteractionData{
					CustomID: customID,
					Values:   []string{"statistics"},
				},
			},
		}
	}

	h.interactionCreate(nil, component(osudiscord.ProfileSelectPrefix+"peppy"))
	if osu.profileSelects != 1 {
		t.Errorf("profile selects = %d, want 1", osu.profileSelects)
	}

	h.interactionCreate(nil, component(osudiscord.RecentSelectPrefix+"peppy"))
	if osu.recentSelects != 1 {
		t.Errorf("recent selects = %d, want 1", osu.recentSelects)
	}

	// Unknown component ids only log.
	h.interactionCreate(nil, component("some-other-bot-menu"))
	if osu.profileSelects != 1 || osu.recentSelects != 1 {
		t.Error("unknown component id reached a manager")
	}
}
