package osuapi

import "time"

// User is an osu! API v2 user with the statistics expansion.
type User struct {
	ID           int64          `json:"id"`
	Username     string         `json:"username"`
	CountryCode  string         `json:"country_code"`
	AvatarURL    string         `json:"avatar_url"`
	JoinDate     time.Time      `json:"join_date"`
	Playmode     string         `json:"playmode"`
	Playstyle    []string       `json:"playstyle"`
	ProfileOrder []string       `json:"profile_order"`
	Statistics   UserStatistics `json:"statistics"`
}

// UserStatistics holds the ranking block of a user.
type UserStatistics struct {
	GlobalRank  int64       `json:"global_rank"`
	CountryRank int64       `json:"country_rank"`
	PP          float64     `json:"pp"`
	HitAccuracy float64     `json:"hit_accuracy"`
	PlayCount   int64       `json:"play_count"`
	TotalScore  int64       `json:"total_score"`
	TotalHits   int64       `json:"total_hits"`
	MaxCombo    int64       `json:"maximum_combo"`
	GradeCounts GradeCounts `json:"grade_counts"`
}

// GradeCounts is the per-grade score tally.
type GradeCounts struct {
	SS  int64 `json:"ss"`
	SSH int64 `json:"ssh"`
	S   int64 `json:"s"`
	SH  int64 `json:"sh"`
	A   int64 `json:"a"`
}

// Beatmap is a single difficulty of a beatmapset.
type Beatmap struct {
	ID               int64      `json:"id"`
	BeatmapsetID     int64      `json:"beatmapset_id"`
	Version          string     `json:"version"`
	DifficultyRating float64    `json:"difficulty_rating"`
	Mode             string     `json:"mode"`
	Status           string     `json:"status"`
	AR               float64    `json:"ar"`
	CS               float64    `json:"cs"`
	Drain            float64    `json:"drain"`
	BPM              float64    `json:"bpm"`
	MaxCombo         int64      `json:"max_combo"`
	URL              string     `json:"url"`
	Beatmapset       Beatmapset `json:"beatmapset"`
}

// Beatmapset carries the set-level metadata embedded in beatmap lookups.
type Beatmapset struct {
	ID             int64             `json:"id"`
	Title          string            `json:"title"`
	Artist         string            `json:"artist"`
	Creator        string            `json:"creator"`
	FavouriteCount int64             `json:"favourite_count"`
	PlayCount      int64             `json:"play_count"`
	Covers         map[string]string `json:"covers"`
	RankedDate     *time.Time        `json:"ranked_date"`
	SubmittedDate  *time.Time        `json:"submitted_date"`
	LastUpdated    *time.Time        `json:"last_updated"`
}

// Score is one entry of a user's recent plays.
type Score struct {
	ID         int64      `json:"id"`
	Accuracy   float64    `json:"accuracy"`
	Rank       string     `json:"rank"`
	MaxCombo   int64      `json:"max_combo"`
	PP         float64    `json:"pp"`
	Mods       []string   `json:"mods"`
	Passed     bool       `json:"passed"`
	CreatedAt  time.Time  `json:"created_at"`
	Beatmap    Beatmap    `json:"beatmap"`
	Beatmapset Beatmapset `json:"beatmapset"`
}
