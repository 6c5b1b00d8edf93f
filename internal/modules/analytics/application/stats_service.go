package application

import (
	"context"
	"fmt"
	"time"

	"github.com/saransh1220/soundwave/internal/modules/analytics/domain"
	"github.com/saransh1220/soundwave/internal/shared/infrastructure/logging"
)

const (
	OverviewCacheKey = "stats:overview"
	OverviewTTL      = time.Minute

	DefaultDailyDays = 7
	topN             = 5

	day = 24 * time.Hour
)

// Cache is the subset of the shared redis cache the overview needs.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// StatsService loads projections from the repository and reduces them with
// the pure aggregators in the domain package.
type StatsService struct {
	repo  domain.StatsRepository
	cache Cache
	now   func() time.Time
}

func NewStatsService(repo domain.StatsRepository, cache Cache) *StatsService {
	return &StatsService{repo: repo, cache: cache, now: time.Now}
}

// WithClock replaces the reference time source.
func (s *StatsService) WithClock(now func() time.Time) *StatsService {
	s.now = now
	return s
}

func (s *StatsService) PlatformCounts(ctx context.Context) (*domain.PlatformCounts, error) {
	return s.repo.Counts(ctx)
}

// Overview serves the cached dashboard summary, computing it on a miss.
func (s *StatsService) Overview(ctx context.Context) (*domain.Overview, error) {
	var cached domain.Overview
	if s.cache != nil && s.cache.Get(ctx, OverviewCacheKey, &cached) {
		return &cached, nil
	}
	return s.Refresh(ctx)
}

// Refresh recomputes the overview and stores it for OverviewTTL.
func (s *StatsService) Refresh(ctx context.Context) (*domain.Overview, error) {
	counts, err := s.repo.Counts(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.repo.Users(ctx)
	if err != nil {
		return nil, err
	}
	songs, err := s.repo.Songs(ctx)
	if err != nil {
		return nil, err
	}

	ref := s.now()
	today := domain.WindowedCounts(users, songs, ref, day)
	month := domain.WindowedCounts(users, nil, ref, 30*day)

	overview := &domain.Overview{
		PlatformCounts:     *counts,
		TodayNewUsers:      today.Users,
		TodayNewSongs:      today.Songs,
		ActiveUsers:        domain.ActiveUserCount(users, ref, 7*day),
		NewUsersLast30Days: month.Users,
		MostPlayedSong:     domain.MostPlayedSong(songs),
		RoleDistribution:   domain.RoleDistribution(users),
		GeneratedAt:        ref.UTC(),
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, OverviewCacheKey, overview, OverviewTTL); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("failed to cache stats overview")
		}
	}
	logging.FromContext(ctx).Debug().
		Int64("users", counts.Users).
		Int64("songs", counts.Songs).
		Msg("stats overview refreshed")
	return overview, nil
}

func (s *StatsService) GenreStats(ctx context.Context) (*domain.GenreStats, error) {
	songs, err := s.repo.Songs(ctx)
	if err != nil {
		return nil, err
	}
	artists, err := s.repo.Artists(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.GenreStats{
		SongGenres:   domain.GenreDistribution(songs),
		ArtistGenres: domain.ArtistGenreDistribution(artists),
		TopGenres:    domain.TopGenres(songs, topN),
	}, nil
}

func (s *StatsService) ArtistStats(ctx context.Context) (*domain.ArtistStats, error) {
	songs, err := s.repo.Songs(ctx)
	if err != nil {
		return nil, err
	}
	artists, err := s.repo.Artists(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.ArtistStats{
		TopArtists:   domain.TopArtistsByPlays(songs, artists, topN),
		TotalArtists: len(artists),
	}, nil
}

// DailyStats buckets signups and uploads per day. days must be in [1, 365].
func (s *StatsService) DailyStats(ctx context.Context, days int) (*domain.DailySeries, error) {
	if days < 1 || days > 365 {
		return nil, fmt.Errorf("%w: days must be between 1 and 365", ErrInvalidRange)
	}
	users, err := s.repo.Users(ctx)
	if err != nil {
		return nil, err
	}
	songs, err := s.repo.Songs(ctx)
	if err != nil {
		return nil, err
	}
	series := domain.DailyActivity(users, songs, s.now(), days)
	return &series, nil
}

func (s *StatsService) PlatformStats(ctx context.Context) (*domain.PlatformStats, error) {
	songs, err := s.repo.Songs(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.repo.Users(ctx)
	if err != nil {
		return nil, err
	}
	playlists, err := s.repo.Playlists(ctx)
	if err != nil {
		return nil, err
	}
	stats := domain.PlatformAverages(songs, users, playlists)
	return &stats, nil
}

func (s *StatsService) RoleStats(ctx context.Context) (map[string]int, error) {
	users, err := s.repo.Users(ctx)
	if err != nil {
		return nil, err
	}
	return domain.RoleDistribution(users), nil
}
