package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultRole is reported for users stored without a role.
const DefaultRole = "USER"

// UnknownArtist names artists whose id no longer resolves.
const UnknownArtist = "Unknown Artist"

// SongStat is the slice of a song the aggregator reads.
type SongStat struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Title     string     `json:"title" db:"title"`
	ArtistID  *uuid.UUID `json:"artistId" db:"artist_id"`
	Genre     string     `json:"genre" db:"genre"`
	PlayCount int64      `json:"playCount" db:"play_count"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}

// UserStat is the slice of a user the aggregator reads.
type UserStat struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	Username   string     `json:"username" db:"username"`
	Role       string     `json:"role" db:"role"`
	JoinDate   time.Time  `json:"joinDate" db:"join_date"`
	LastActive *time.Time `json:"lastActive" db:"last_active"`
}

type ArtistStat struct {
	ID    uuid.UUID `json:"id" db:"id"`
	Name  string    `json:"name" db:"name"`
	Genre string    `json:"genre" db:"genre"`
}

// PlaylistStat pairs a playlist owner with the size of its membership list.
type PlaylistStat struct {
	CreatedBy uuid.UUID `db:"created_by"`
	SongCount int       `db:"song_count"`
}

// PlatformCounts holds one row count per catalog table.
type PlatformCounts struct {
	Users     int64 `json:"totalUsers" db:"users"`
	Songs     int64 `json:"totalSongs" db:"songs"`
	Artists   int64 `json:"totalArtists" db:"artists"`
	Albums    int64 `json:"totalAlbums" db:"albums"`
	Playlists int64 `json:"totalPlaylists" db:"playlists"`
	Genres    int64 `json:"totalGenres" db:"genres"`
}

type WindowCounts struct {
	Users int `json:"users"`
	Songs int `json:"songs"`
}

type MostPlayed struct {
	Title  string     `json:"title"`
	Plays  int64      `json:"plays"`
	Artist *uuid.UUID `json:"artist"`
}

type ArtistPlays struct {
	ArtistID   uuid.UUID `json:"artistId"`
	Name       string    `json:"name"`
	TotalPlays int64     `json:"totalPlays"`
	SongCount  int       `json:"songCount"`
}

type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

// DailySeries is index-aligned: NewUsers[i] and NewSongs[i] belong to
// Labels[i], an ISO date.
type DailySeries struct {
	Labels   []string `json:"labels"`
	NewUsers []int    `json:"newUsers"`
	NewSongs []int    `json:"newSongs"`
}

// Overview is the admin dashboard summary.
type Overview struct {
	PlatformCounts
	TodayNewUsers      int            `json:"todayNewUsers"`
	TodayNewSongs      int            `json:"todayNewSongs"`
	ActiveUsers        int            `json:"activeUsers"`
	NewUsersLast30Days int            `json:"newUsersLast30Days"`
	MostPlayedSong     *MostPlayed    `json:"mostPlayedSong"`
	RoleDistribution   map[string]int `json:"roleDistribution"`
	GeneratedAt        time.Time      `json:"generatedAt"`
}

type GenreStats struct {
	SongGenres   map[string]int `json:"songGenres"`
	ArtistGenres map[string]int `json:"artistGenres"`
	TopGenres    []GenreCount   `json:"topGenres"`
}

type ArtistStats struct {
	TopArtists   []ArtistPlays `json:"topArtists"`
	TotalArtists int           `json:"totalArtists"`
}

type ActiveUser struct {
	Username      string `json:"username"`
	PlaylistCount int    `json:"playlistCount"`
}

type PlatformStats struct {
	AvgSongsPerPlaylist float64     `json:"avgSongsPerPlaylist"`
	AvgPlaysPerSong     float64     `json:"avgPlaysPerSong"`
	MostActiveUser      *ActiveUser `json:"mostActiveUser"`
}

// StatsRepository loads the projections the aggregator reduces in memory.
type StatsRepository interface {
	Counts(ctx context.Context) (*PlatformCounts, error)
	Songs(ctx context.Context) ([]SongStat, error)
	Users(ctx context.Context) ([]UserStat, error)
	Artists(ctx context.Context) ([]ArtistStat, error)
	Playlists(ctx context.Context) ([]PlaylistStat, error)
}
