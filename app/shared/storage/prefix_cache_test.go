package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/SawshaDev/Aswo/mocks"
)

func TestPrefixCacheDefault(t *testing.T) {
	cache := NewPrefixCache(">>")

	if got := cache.Get("unknown-guild"); got != ">>" {
		t.Errorf("Get() = %q, want default >>", got)
	}

	cache.Set("guild-1", "!")
	if got := cache.Get("guild-1"); got != "!" {
		t.Errorf("Get() = %q, want !", got)
	}
	if got := cache.Get("guild-2"); got != ">>" {
		t.Errorf("Get() = %q, want default for other guilds", got)
	}
}

func TestPrefixCacheLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	store.EXPECT().
		GuildPrefixes(gomock.Any()).
		Return(map[string]string{"guild-1": "?", "guild-2": "$"}, nil)

	cache := NewPrefixCache(">>")
	cache.Set("guild-9", "stale")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := cache.Load(context.Background(), store, logger); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := cache.Get("guild-1"); got != "?" {
		t.Errorf("Get(guild-1) = %q, want ?", got)
	}
	if got := cache.Get("guild-2"); got != "$" {
		t.Errorf("Get(guild-2) = %q, want $", got)
	}
	// Load replaces previous contents wholesale.
	if got := cache.Get("guild-9"); got != ">>" {
		t.Errorf("Get(guild-9) = %q, want default after reload", got)
	}
}

func TestPrefixCacheLoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	store.EXPECT().
		GuildPrefixes(gomock.Any()).
		Return(nil, context.DeadlineExceeded)

	cache := NewPrefixCache(">>")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if err := cache.Load(context.Background(), store, logger); err == nil {
		t.Error("Load() error = nil for a failing store")
	}
}
