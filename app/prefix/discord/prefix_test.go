package prefixdiscord

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/mock/gomock"

	discord "github.com/SawshaDev/Aswo/app/discordgo"
	"github.com/SawshaDev/Aswo/app/shared/storage"
	"github.com/SawshaDev/Aswo/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func prefixInteraction(guildID, prefix string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name: "prefix",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{Name: "prefix", Type: discordgo.ApplicationCommandOptionString, Value: prefix},
				},
			},
			GuildID: guildID,
			Member:  &discordgo.Member{User: &discordgo.User{ID: "admin-1"}},
		},
	}
}

func TestHandlePrefixCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := discord.NewFakeSession()
	store := mocks.NewMockStore(ctrl)
	cache := storage.NewPrefixCache(">>")

	store.EXPECT().
		SetGuildPrefix(gomock.Any(), "guild-1", "!").
		Return(nil)

	var responded *discordgo.InteractionResponse
	session.InteractionRespondFunc = func(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
		responded = resp
		return nil
	}

	m := NewPrefixManager(session, store, cache, testLogger())

	result, err := m.HandlePrefixCommand(context.Background(), prefixInteraction("guild-1", "!"))
	if err != nil {
		t.Fatalf("HandlePrefixCommand() error = %v", err)
	}
	if result.Success != "!" {
		t.Errorf("result.Success = %v, want !", result.Success)
	}
	if cache.Get("guild-1") != "!" {
		t.Errorf("cache prefix = %q, want !", cache.Get("guild-1"))
	}
	if !strings.Contains(responded.Data.Content, "!") {
		t.Errorf("response content = %q", responded.Data.Content)
	}
}

func TestHandlePrefixCommandOutsideGuild(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := discord.NewFakeSession()
	cache := storage.NewPrefixCache(">>")

	m := NewPrefixManager(session, mocks.NewMockStore(ctrl), cache, testLogger())

	result, err := m.HandlePrefixCommand(context.Background(), prefixInteraction("", "!"))
	if err != nil {
		t.Fatalf("HandlePrefixCommand() error = %v", err)
	}
	if result.Failure == nil {
		t.Error("result.Failure is nil for a DM invocation")
	}
}

func TestHandlePrefixCommandStoreFailureKeepsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := discord.NewFakeSession()
	store := mocks.NewMockStore(ctrl)
	cache := storage.NewPrefixCache(">>")

	store.EXPECT().
		SetGuildPrefix(gomock.Any(), "guild-1", "!").
		Return(context.DeadlineExceeded)

	m := NewPrefixManager(session, store, cache, testLogger())

	if _, err := m.HandlePrefixCommand(context.Background(), prefixInteraction("guild-1", "!")); err == nil {
		t.Error("HandlePrefixCommand() error = nil for a store failure")
	}
	// The cache only changes once the write is durable.
	if cache.Get("guild-1") != ">>" {
		t.Errorf("cache prefix = %q, want untouched default", cache.Get("guild-1"))
	}
}

func TestPrefixReadsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := storage.NewPrefixCache(">>")
	cache.Set("guild-1", "!")

	// No store expectations: per-message reads never hit the database.
	m := NewPrefixManager(discord.NewFakeSession(), mocks.NewMockStore(ctrl), cache, testLogger())

	if got := m.Prefix("guild-1"); got != "!" {
		t.Errorf("Prefix(guild-1) = %q, want !", got)
	}
	if got := m.Prefix("guild-2"); got != ">>" {
		t.Errorf("Prefix(guild-2) = %q, want default", got)
	}
}

func TestHandlePrefixCommandRejectsLongPrefix(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := discord.NewFakeSession()
	m := NewPrefixManager(session, mocks.NewMockStore(ctrl), storage.NewPrefixCache(">>"), testLogger())

	result, err := m.HandlePrefixCommand(context.Background(), prefixInteraction("guild-1", "way-too-long-prefix"))
	if err != nil {
		t.Fatalf("HandlePrefixCommand() error = %v", err)
	}
	if result.Failure == nil {
		t.Error("result.Failure is nil for an oversized prefix")
	}
}
