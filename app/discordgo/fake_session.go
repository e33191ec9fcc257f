package discord

import (
	"github.com/bwmarrin/discordgo"
)

// FakeSession provides a programmable stub for the Session interface.
// It follows the Fake/Stub pattern for testing, where each interface method
// has a corresponding Func field that can be set per-test.
type FakeSession struct {
	trace []string

	InteractionRespondFunc        func(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEditFunc   func(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	FollowupMessageCreateFunc     func(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendFunc        func(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditComplexFunc func(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ApplicationCommandCreateFunc  func(appID, guildID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error)
	GetBotUserFunc                func() (*discordgo.User, error)
	AddHandlerFunc                func(handler interface{}) func()
	OpenFunc                      func() error
	CloseFunc                     func() error
}

// NewFakeSession initializes a new FakeSession with an empty trace.
func NewFakeSession() *FakeSession {
	return &FakeSession{
		trace: []string{},
	}
}

func (f *FakeSession) record(step string) {
	f.trace = append(f.trace, step)
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeSession) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeSession) InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error {
	f.record("InteractionRespond")
	if f.InteractionRespondFunc != nil {
		return f.InteractionRespondFunc(interaction, resp, options...)
	}
	return nil
}

func (f *FakeSession) InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.record("InteractionResponseEdit")
	if f.InteractionResponseEditFunc != nil {
		return f.InteractionResponseEditFunc(interaction, newresp, options...)
	}
	return &discordgo.Message{ID: "fake-msg-123"}, nil
}

func (f *FakeSession) FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.record("FollowupMessageCreate")
	if f.FollowupMessageCreateFunc != nil {
		return f.FollowupMessageCreateFunc(interaction, wait, data, options...)
	}
	return &discordgo.Message{ID: "fake-followup-123"}, nil
}

func (f *FakeSession) ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.record("ChannelMessageSend")
	if f.ChannelMessageSendFunc != nil {
		return f.ChannelMessageSendFunc(channelID, content, options...)
	}
	return &discordgo.Message{ID: "fake-msg-123", ChannelID: channelID, Content: content}, nil
}

func (f *FakeSession) ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.record("ChannelMessageEditComplex")
	if f.ChannelMessageEditComplexFunc != nil {
		return f.ChannelMessageEditComplexFunc(m, options...)
	}
	return &discordgo.Message{ID: m.ID, ChannelID: m.Channel}, nil
}

func (f *FakeSession) ApplicationCommandCreate(appID, guildID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error) {
	f.record("ApplicationCommandCreate")
	if f.ApplicationCommandCreateFunc != nil {
		return f.ApplicationCommandCreateFunc(appID, guildID, cmd, options...)
	}
	return cmd, nil
}

func (f *FakeSession) GetBotUser() (*discordgo.User, error) {
	f.record("GetBotUser")
	if f.GetBotUserFunc != nil {
		return f.GetBotUserFunc()
	}
	return &discordgo.User{ID: "fake-bot-user", Username: "Aswo"}, nil
}

func (f *FakeSession) AddHandler(handler interface{}) func() {
	f.record("AddHandler")
	if f.AddHandlerFunc != nil {
		return f.AddHandlerFunc(handler)
	}
	return func() {}
}

func (f *FakeSession) Open() error {
	f.record("Open")
	if f.OpenFunc != nil {
		return f.OpenFunc()
	}
	return nil
}

func (f *FakeSession) Close() error {
	f.record("Close")
	if f.CloseFunc != nil {
		return f.CloseFunc()
	}
	return nil
}
