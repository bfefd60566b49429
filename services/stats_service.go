package services

import (
	"context"
	"fmt"

	"wavectf/models"

	"gorm.io/gorm"
)

// StatsService computes the aggregate platform statistics shown to admins
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

type PlatformStats struct {
	TotalUsers             int64          `json:"total_users"`
	TotalTeams             int64          `json:"total_teams"`
	TotalChallenges        int64          `json:"total_challenges"`
	ActiveChallenges       int64          `json:"active_challenges"`
	TotalSolves            int64          `json:"total_solves"`
	ChallengesByCategory   map[string]int `json:"category_stats"`
	ChallengesByDifficulty map[string]int `json:"difficulty_stats"`
}

func (s *StatsService) PlatformStats(ctx context.Context) (*PlatformStats, error) {
	stats := &PlatformStats{}

	counts := []struct {
		model interface{}
		dest  *int64
		query func(*gorm.DB) *gorm.DB
	}{
		{&models.User{}, &stats.TotalUsers, nil},
		{&models.Team{}, &stats.TotalTeams, nil},
		{&models.Challenge{}, &stats.TotalChallenges, nil},
		{&models.Challenge{}, &stats.ActiveChallenges, func(db *gorm.DB) *gorm.DB { return db.Where("is_active = ?", true) }},
		{&models.Solve{}, &stats.TotalSolves, nil},
	}

	for _, c := range counts {
		q := s.db.WithContext(ctx).Model(c.model)
		if c.query != nil {
			q = c.query(q)
		}
		if err := q.Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("count stats: %w", err)
		}
	}

	var err error
	if stats.ChallengesByCategory, err = s.challengesGroupedBy(ctx, "category"); err != nil {
		return nil, err
	}
	if stats.ChallengesByDifficulty, err = s.challengesGroupedBy(ctx, "difficulty"); err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *StatsService) challengesGroupedBy(ctx context.Context, column string) (map[string]int, error) {
	var rows []groupCount
	if err := s.db.WithContext(ctx).Model(&models.Challenge{}).
		Select(column + " as key, count(*) as count").
		Group(column).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("group challenges by %s: %w", column, err)
	}

	result := make(map[string]int, len(rows))
	for _, row := range rows {
		result[row.Key] = row.Count
	}
	return result, nil
}
