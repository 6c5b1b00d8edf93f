package domain

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
)

const dayLayout = "2006-01-02"

// WindowedCounts counts users who joined and songs created strictly after
// ref - window.
func WindowedCounts(users []UserStat, songs []SongStat, ref time.Time, window time.Duration) WindowCounts {
	boundary := ref.Add(-window)
	var counts WindowCounts
	for _, u := range users {
		if u.JoinDate.After(boundary) {
			counts.Users++
		}
	}
	for _, s := range songs {
		if s.CreatedAt.After(boundary) {
			counts.Songs++
		}
	}
	return counts
}

// ActiveUserCount counts users seen strictly after ref - window. Users that
// were never seen do not count.
func ActiveUserCount(users []UserStat, ref time.Time, window time.Duration) int {
	boundary := ref.Add(-window)
	n := 0
	for _, u := range users {
		if u.LastActive != nil && u.LastActive.After(boundary) {
			n++
		}
	}
	return n
}

// MostPlayedSong returns the song with the highest play count, the earliest
// one on ties, or nil for an empty catalog.
func MostPlayedSong(songs []SongStat) *MostPlayed {
	if len(songs) == 0 {
		return nil
	}
	best := songs[0]
	for _, s := range songs[1:] {
		if s.PlayCount > best.PlayCount {
			best = s
		}
	}
	return &MostPlayed{Title: best.Title, Plays: best.PlayCount, Artist: best.ArtistID}
}

// TopArtistsByPlays sums plays per artist and returns the n biggest. Songs
// without an artist are ignored.
func TopArtistsByPlays(songs []SongStat, artists []ArtistStat, n int) []ArtistPlays {
	names := make(map[uuid.UUID]string, len(artists))
	for _, a := range artists {
		names[a.ID] = a.Name
	}

	index := make(map[uuid.UUID]int)
	ranked := []ArtistPlays{}
	for _, s := range songs {
		if s.ArtistID == nil {
			continue
		}
		i, ok := index[*s.ArtistID]
		if !ok {
			i = len(ranked)
			index[*s.ArtistID] = i
			ranked = append(ranked, ArtistPlays{ArtistID: *s.ArtistID})
		}
		ranked[i].TotalPlays += s.PlayCount
		ranked[i].SongCount++
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalPlays > ranked[j].TotalPlays
	})
	ranked = truncate(ranked, n)

	for i := range ranked {
		if name, ok := names[ranked[i].ArtistID]; ok {
			ranked[i].Name = name
		} else {
			ranked[i].Name = UnknownArtist
		}
	}
	return ranked
}

// GenreDistribution counts songs per genre. Genres are compared case
// sensitively and empty genres are skipped.
func GenreDistribution(songs []SongStat) map[string]int {
	dist := make(map[string]int)
	for _, s := range songs {
		if s.Genre != "" {
			dist[s.Genre]++
		}
	}
	return dist
}

func ArtistGenreDistribution(artists []ArtistStat) map[string]int {
	dist := make(map[string]int)
	for _, a := range artists {
		if a.Genre != "" {
			dist[a.Genre]++
		}
	}
	return dist
}

// TopGenres ranks song genres by count. Equal counts keep the order in which
// the genre was first seen.
func TopGenres(songs []SongStat, n int) []GenreCount {
	index := make(map[string]int)
	ranked := []GenreCount{}
	for _, s := range songs {
		if s.Genre == "" {
			continue
		}
		i, ok := index[s.Genre]
		if !ok {
			i = len(ranked)
			index[s.Genre] = i
			ranked = append(ranked, GenreCount{Genre: s.Genre})
		}
		ranked[i].Count++
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return truncate(ranked, n)
}

// DailyActivity builds one UTC calendar-day bucket for each of the last days
// days, ending with the day of ref.
func DailyActivity(users []UserStat, songs []SongStat, ref time.Time, days int) DailySeries {
	series := DailySeries{Labels: []string{}, NewUsers: []int{}, NewSongs: []int{}}
	if days <= 0 {
		return series
	}

	joined := make(map[string]int)
	for _, u := range users {
		joined[u.JoinDate.UTC().Format(dayLayout)]++
	}
	created := make(map[string]int)
	for _, s := range songs {
		created[s.CreatedAt.UTC().Format(dayLayout)]++
	}

	today := ref.UTC()
	for i := days - 1; i >= 0; i-- {
		label := today.AddDate(0, 0, -i).Format(dayLayout)
		series.Labels = append(series.Labels, label)
		series.NewUsers = append(series.NewUsers, joined[label])
		series.NewSongs = append(series.NewSongs, created[label])
	}
	return series
}

// RoleDistribution counts users per role, filing users without one under
// DefaultRole.
func RoleDistribution(users []UserStat) map[string]int {
	dist := make(map[string]int)
	for _, u := range users {
		role := u.Role
		if role == "" {
			role = DefaultRole
		}
		dist[role]++
	}
	return dist
}

// PlatformAverages reports membership and play averages rounded to two
// decimals, plus the user owning the most playlists.
func PlatformAverages(songs []SongStat, users []UserStat, playlists []PlaylistStat) PlatformStats {
	var stats PlatformStats

	if len(playlists) > 0 {
		total := 0
		for _, p := range playlists {
			total += p.SongCount
		}
		stats.AvgSongsPerPlaylist = round2(float64(total) / float64(len(playlists)))
	}
	if len(songs) > 0 {
		var plays int64
		for _, s := range songs {
			plays += s.PlayCount
		}
		stats.AvgPlaysPerSong = round2(float64(plays) / float64(len(songs)))
	}

	owners := make(map[uuid.UUID]int)
	var top uuid.UUID
	for _, p := range playlists {
		owners[p.CreatedBy]++
		if owners[p.CreatedBy] > owners[top] {
			top = p.CreatedBy
		}
	}
	if len(playlists) > 0 {
		username := "Unknown"
		for _, u := range users {
			if u.ID == top {
				username = u.Username
				break
			}
		}
		stats.MostActiveUser = &ActiveUser{Username: username, PlaylistCount: owners[top]}
	}
	return stats
}

func truncate[T any](items []T, n int) []T {
	if n >= 0 && len(items) > n {
		return items[:n]
	}
	return items
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
