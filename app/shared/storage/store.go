// Package storage persists per-user osu usernames, per-user replay skin
// choices and per-guild command prefixes in Postgres.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store defines the preference persistence surface used by the command
// handlers. All writes are upserts; last write wins.
type Store interface {
	OsuUsername(ctx context.Context, userID string) (string, bool, error)
	SetOsuUsername(ctx context.Context, userID, username string) error
	SkinID(ctx context.Context, userID string) (int, bool, error)
	SetSkinID(ctx context.Context, userID string, skinID int) error
	GuildPrefixes(ctx context.Context) (map[string]string, error)
	SetGuildPrefix(ctx context.Context, guildID, prefix string) error
}

// PgStore implements Store on a pgx connection pool.
type PgStore struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// NewPgStore wraps an existing pool.
func NewPgStore(db *pgxpool.Pool, logger *slog.Logger) *PgStore {
	return &PgStore{db: db, logger: logger}
}

// EnsureSchema creates the preference tables if they do not exist.
func (s *PgStore) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS osu_user (
			user_id TEXT PRIMARY KEY,
			osu_username TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS replay_config (
			user_id TEXT PRIMARY KEY,
			skin_id INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS prefix (
			guild_id TEXT PRIMARY KEY,
			prefix TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// OsuUsername returns the stored osu username for a Discord user, with a
// found flag distinguishing "no row" from an empty value.
func (s *PgStore) OsuUsername(ctx context.Context, userID string) (string, bool, error) {
	var username string
	err := s.db.QueryRow(ctx,
		`SELECT osu_username FROM osu_user WHERE user_id = $1`, userID,
	).Scan(&username)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return username, true, nil
}

func (s *PgStore) SetOsuUsername(ctx context.Context, userID, username string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO osu_user (user_id, osu_username) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET osu_username = excluded.osu_username
	`, userID, username)
	return err
}

// SkinID returns the stored replay skin for a Discord user. Callers apply
// the default (skin 1) when no row exists.
func (s *PgStore) SkinID(ctx context.Context, userID string) (int, bool, error) {
	var skinID int
	err := s.db.QueryRow(ctx,
		`SELECT skin_id FROM replay_config WHERE user_id = $1`, userID,
	).Scan(&skinID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return skinID, true, nil
}

func (s *PgStore) SetSkinID(ctx context.Context, userID string, skinID int) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO replay_config (user_id, skin_id) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET skin_id = excluded.skin_id
	`, userID, skinID)
	return err
}

// GuildPrefixes loads all stored prefixes. Called once at startup to seed
// the in-memory prefix cache.
func (s *PgStore) GuildPrefixes(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.Query(ctx, `SELECT guild_id, prefix FROM prefix`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prefixes := make(map[string]string)
	for rows.Next() {
		var guildID, prefix string
		if err := rows.Scan(&guildID, &prefix); err != nil {
			return nil, err
		}
		prefixes[guildID] = prefix
	}
	return prefixes, rows.Err()
}

func (s *PgStore) SetGuildPrefix(ctx context.Context, guildID, prefix string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO prefix (guild_id, prefix) VALUES ($1, $2)
		ON CONFLICT (guild_id) DO UPDATE SET prefix = excluded.prefix
	`, guildID, prefix)
	return err
}
