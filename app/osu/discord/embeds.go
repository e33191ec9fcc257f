package osudiscord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/SawshaDev/Aswo/app/osuapi"
)

const embedColor = 0x2F3136

// buildProfileEmbed renders the /user profile card.
func buildProfileEmbed(user *osuapi.User) *discordgo.MessageEmbed {
	stats := user.Statistics

	country := user.CountryCode
	if country == "" || strings.EqualFold(country, "xx") {
		country = "No country"
	}

	profileOrder := make([]string, 0, len(user.ProfileOrder))
	for _, section := range user.ProfileOrder {
		profileOrder = append(profileOrder, strings.ReplaceAll(section, "_", " "))
	}

	description := fmt.Sprintf(
		"**%s | Profile for [%s](https://osu.ppy.sh/users/%d)**\n\n"+
			"▹ **Bancho Rank**: #%d (%s#%d)\n"+
			"▹ **Join Date**: <t:%d>\n"+
			"▹ **PP**: %d **Acc**: %.2f%%\n"+
			"▹ **Ranks**: ``SS %d`` | ``SSH %d`` | ``S %d`` | ``SH %d`` | ``A %d``\n"+
			"▹ **Profile Order**: %s",
		country, user.Username, user.ID,
		stats.GlobalRank, country, stats.CountryRank,
		user.JoinDate.Unix(),
		int(stats.PP), stats.HitAccuracy,
		stats.GradeCounts.SS, stats.GradeCounts.SSH, stats.GradeCounts.S, stats.GradeCounts.SH, stats.GradeCounts.A,
		strings.Join(profileOrder, ", "),
	)

	return &discordgo.MessageEmbed{
		Description: description,
		Color:       embedColor,
		Thumbnail:   &discordgo.MessageEmbedThumbnail{URL: user.AvatarURL},
	}
}

// buildAvatarEmbed renders the avatar detail page of the profile menu.
func buildAvatarEmbed(user *osuapi.User) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s's osu! avatar", user.Username),
		Color: embedColor,
		Image: &discordgo.MessageEmbedImage{URL: user.AvatarURL},
	}
}

// buildStatisticsEmbed renders the statistics detail page of the profile
// menu.
func buildStatisticsEmbed(user *osuapi.User) *discordgo.MessageEmbed {
	stats := user.Statistics

	playstyle := strings.Join(user.Playstyle, ", ")
	if playstyle == "" {
		playstyle = fmt.Sprintf("%s has no playstyles selected", user.Username)
	}

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s's Statistics", user.Username),
		Color: embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "Total Statistics",
				Value: fmt.Sprintf(
					"Total Hits: %d\nTotal Score: %d\nMaximum Combo: %d\nPlay Count: %d",
					stats.TotalHits, stats.TotalScore, stats.MaxCombo, stats.PlayCount,
				),
				Inline: true,
			},
			{
				Name:   "Play Styles",
				Value:  fmt.Sprintf("Play Styles: %s\nFavorite Play Mode: %s", playstyle, user.Playmode),
				Inline: true,
			},
		},
	}
}

// buildFavoriteBeatmapsEmbed renders the beatmaps detail page of the
// profile menu.
func buildFavoriteBeatmapsEmbed(sets []osuapi.Beatmapset) *discordgo.MessageEmbed {
	value := "No Favorite Beatmaps!"
	if len(sets) > 0 {
		lines := make([]string, 0, len(sets))
		for _, set := range sets {
			lines = append(lines, fmt.Sprintf("[%s](https://osu.ppy.sh/beatmapsets/%d)", set.Title, set.ID))
		}
		value = strings.Join(lines, "\n")
	}

	return &discordgo.MessageEmbed{
		Color: embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Favorite", Value: value},
		},
	}
}

// buildBeatmapEmbed renders the /beatmap info card.
func buildBeatmapEmbed(beatmap *osuapi.Beatmap, creator *osuapi.User) *discordgo.MessageEmbed {
	set := beatmap.Beatmapset

	ranked := "Not ranked!"
	if set.RankedDate != nil {
		ranked = fmt.Sprintf("<t:%d:R>", set.RankedDate.Unix())
	}
	submitted := "Not submitted!"
	if set.SubmittedDate != nil {
		submitted = fmt.Sprintf("<t:%d:R>", set.SubmittedDate.Unix())
	}
	updated := "Has not been updated"
	if set.LastUpdated != nil {
		updated = fmt.Sprintf("<t:%d:R>", set.LastUpdated.Unix())
	}

	creatorLine := set.Creator
	if creator != nil {
		creatorLine = fmt.Sprintf("[%s](https://osu.ppy.sh/users/%d)", creator.Username, creator.ID)
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Info on %s", set.Title),
		Color: embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "Info",
				Value: fmt.Sprintf(
					"Creator of map: %s\nBeatmap ID: %d\nSong Artist: %s\nStatus: %s\nFavorite count: %d\nPlayed count: %d\nMode: %s",
					creatorLine, beatmap.ID, set.Artist, beatmap.Status, set.FavouriteCount, set.PlayCount, beatmap.Mode,
				),
			},
			{
				Name: "Gameplay",
				Value: fmt.Sprintf(
					"All info below was made for the ``%s (%.2f stars)`` difficulty\nDrain: %.1f\nAR: %.1f\nCS: %.1f\nBPM: %.0f\nMax Combo: %d",
					beatmap.Version, beatmap.DifficultyRating, beatmap.Drain, beatmap.AR, beatmap.CS, beatmap.BPM, beatmap.MaxCombo,
				),
			},
			{
				Name:   "Dates",
				Value:  fmt.Sprintf("Ranked date: %s\nSubmitted date: %s\nLast updated: %s", ranked, submitted, updated),
				Inline: false,
			},
			{
				Name:  "Links",
				Value: fmt.Sprintf("[Link to beatmap](%s) • [kitsu.moe](https://kitsu.moe/d/%d)", beatmap.URL, beatmap.BeatmapsetID),
			},
		},
	}

	if cover, ok := set.Covers["card@2x"]; ok {
		embed.Image = &discordgo.MessageEmbedImage{URL: cover}
	}
	return embed
}

// buildRecentEmbed renders the /recent score list.
func buildRecentEmbed(username string, scores []osuapi.Score) *discordgo.MessageEmbed {
	lines := make([]string, 0, len(scores))
	for n, score := range scores {
		passed := ""
		if !score.Passed {
			passed = " (failed)"
		}
		lines = append(lines, fmt.Sprintf(
			"**%d.** %s [%s] — **%s** %.2f%%%s",
			n+1, score.Beatmapset.Title, score.Beatmap.Version, score.Rank, score.Accuracy*100, passed,
		))
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Recent plays for %s", username),
		Description: strings.Join(lines, "\n"),
		Color:       embedColor,
	}
}

// buildScoreDetailEmbed renders the drill-down for one selected score.
func buildScoreDetailEmbed(score *osuapi.Score) *discordgo.MessageEmbed {
	mods := "None"
	if len(score.Mods) > 0 {
		mods = strings.Join(score.Mods, ", ")
	}

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s [%s]", score.Beatmapset.Title, score.Beatmap.Version),
		Color: embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "Statistics",
				Value: fmt.Sprintf(
					"Accuracy: %.2f%%\nRank: %s\nMax Combo: %d\nPP: %.2f\nMods: %s\nPlayed: <t:%d:R>",
					score.Accuracy*100, score.Rank, score.MaxCombo, score.PP, mods, score.CreatedAt.Unix(),
				),
			},
		},
	}
}
