package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/acadra/gradebook-backend/internal/config"
	"github.com/acadra/gradebook-backend/internal/grading"
	"github.com/acadra/gradebook-backend/internal/model"
	"github.com/acadra/gradebook-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// LeaderboardSize is the fixed size of the public top boards.
const LeaderboardSize = 10

// RankingService runs the batch ranking passes and maintains the cached
// leaderboards.
//
// Both passes are read-then-write over every affected record with no lock
// across requests: when two submissions trigger passes concurrently, the last
// pass to finish determines the persisted ranks. Passes over unchanged data
// are idempotent, so a repeated pass converges to the same assignment.
type RankingService struct {
	studentRepo *repository.StudentRepository
	rdb         *redis.Client
	ttl         time.Duration
	log         zerolog.Logger
}

// NewRankingService creates a new RankingService.
func NewRankingService(studentRepo *repository.StudentRepository, rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *RankingService {
	return &RankingService{
		studentRepo: studentRepo,
		rdb:         rdb,
		ttl:         ttl,
		log:         log.With().Str("component", "ranking_service").Logger(),
	}
}

// RankSGPA re-ranks the cohort of semester records for (semester, year):
// descending SGPA, ranks 1..N, ties kept in insertion order.
func (s *RankingService) RankSGPA(ctx context.Context, semester, year int) error {
	standings, err := s.studentRepo.CohortStandings(ctx, semester, year)
	if err != nil {
		return err
	}
	if len(standings) == 0 {
		return nil
	}

	ranked := grading.RankDescending(standings)
	if err := s.studentRepo.UpdateSGPARanks(ctx, ranked); err != nil {
		return err
	}

	s.log.Debug().
		Int("semester", semester).
		Int("year", year).
		Int("cohort_size", len(ranked)).
		Msg("SGPA ranking pass complete")
	return nil
}

// RankCGPA re-ranks every student by CGPA, including students untouched by
// the triggering update, then refreshes the cached leaderboards.
func (s *RankingService) RankCGPA(ctx context.Context) error {
	standings, err := s.studentRepo.GlobalStandings(ctx)
	if err != nil {
		return err
	}
	if len(standings) == 0 {
		return nil
	}

	ranked := grading.RankDescending(standings)
	if err := s.studentRepo.UpdateCGPARanks(ctx, ranked); err != nil {
		return err
	}

	s.log.Debug().Int("students", len(ranked)).Msg("CGPA ranking pass complete")

	if err := s.RefreshLeaderboards(ctx); err != nil {
		// The boards have a TTL and a reconciliation worker; a lost refresh
		// only delays them.
		s.log.Warn().Err(err).Msg("Leaderboard refresh failed")
	}
	return nil
}

// TopByCGPA returns the global top students by CGPA, served from the cache
// when possible.
func (s *RankingService) TopByCGPA(ctx context.Context) ([]model.StudentSummary, error) {
	key := config.CacheKey.TopCGPAKey(LeaderboardSize)

	if raw, err := s.rdb.Get(ctx, key).Result(); err == nil {
		var cached []model.StudentSummary
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached, nil
		}
	}

	top, err := s.studentRepo.TopByCGPA(ctx, LeaderboardSize)
	if err != nil {
		return nil, err
	}
	if top == nil {
		top = []model.StudentSummary{}
	}
	s.cacheBoard(ctx, key, top)
	return top, nil
}

// TopBySGPA returns the global top semester records by SGPA, served from the
// cache when possible.
func (s *RankingService) TopBySGPA(ctx context.Context) ([]model.SGPAStanding, error) {
	key := config.CacheKey.TopSGPAKey(LeaderboardSize)

	if raw, err := s.rdb.Get(ctx, key).Result(); err == nil {
		var cached []model.SGPAStanding
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached, nil
		}
	}

	top, err := s.studentRepo.TopBySGPA(ctx, LeaderboardSize)
	if err != nil {
		return nil, err
	}
	if top == nil {
		top = []model.SGPAStanding{}
	}
	s.cacheBoard(ctx, key, top)
	return top, nil
}

// RefreshLeaderboards rebuilds both cached boards from PostgreSQL.
func (s *RankingService) RefreshLeaderboards(ctx context.Context) error {
	topCGPA, err := s.studentRepo.TopByCGPA(ctx, LeaderboardSize)
	if err != nil {
		return err
	}
	s.cacheBoard(ctx, config.CacheKey.TopCGPAKey(LeaderboardSize), topCGPA)

	topSGPA, err := s.studentRepo.TopBySGPA(ctx, LeaderboardSize)
	if err != nil {
		return err
	}
	s.cacheBoard(ctx, config.CacheKey.TopSGPAKey(LeaderboardSize), topSGPA)
	return nil
}

func (s *RankingService) cacheBoard(ctx context.Context, key string, board interface{}) {
	payload, err := json.Marshal(board)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, payload, s.ttl).Err(); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Leaderboard cache write failed")
	}
}
