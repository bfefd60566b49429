package services

import (
	"context"
	"errors"
	"fmt"

	"wavectf/models"

	"gorm.io/gorm"
)

// DefaultLeaderboardLimit is used when the caller does not specify one
const DefaultLeaderboardLimit = 10

// LeaderboardService computes ranking and per-user statistics. These are pure
// derived views, always read straight from the authoritative store.
type LeaderboardService struct {
	db *gorm.DB
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{db: db}
}

type LeaderboardEntry struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Score    int    `json:"score"`
	Solved   int    `json:"solved_challenges"`
}

type TeamLeaderboardEntry struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Score   int    `json:"score"`
	Members int    `json:"members"`
}

type UserStats struct {
	TotalScore         int            `json:"total_score"`
	TotalSolved        int            `json:"total_solved"`
	SolvedByCategory   map[string]int `json:"solved_by_category"`
	SolvedByDifficulty map[string]int `json:"solved_by_difficulty"`
}

// TopUsers returns users ordered by score descending. Ties break by id so the
// output is stable across calls.
func (s *LeaderboardService) TopUsers(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}

	var entries []LeaderboardEntry
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Select("users.id, users.username, users.score, count(solves.id) as solved").
		Joins("LEFT JOIN solves ON solves.user_id = users.id").
		Group("users.id").
		Order("users.score desc, users.id asc").
		Limit(limit).
		Scan(&entries).Error; err != nil {
		return nil, fmt.Errorf("user leaderboard: %w", err)
	}
	return entries, nil
}

// TopTeams returns teams ordered by score descending
func (s *LeaderboardService) TopTeams(ctx context.Context, limit int) ([]TeamLeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}

	var entries []TeamLeaderboardEntry
	if err := s.db.WithContext(ctx).Model(&models.Team{}).
		Select("teams.id, teams.name, teams.score, count(users.id) as members").
		Joins("LEFT JOIN users ON users.team_id = teams.id").
		Group("teams.id").
		Order("teams.score desc, teams.id asc").
		Limit(limit).
		Scan(&entries).Error; err != nil {
		return nil, fmt.Errorf("team leaderboard: %w", err)
	}
	return entries, nil
}

type groupCount struct {
	Key   string
	Count int
}

// UserStats partitions the user's solves by challenge category and difficulty
func (s *LeaderboardService) UserStats(ctx context.Context, userID uint) (*UserStats, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("fetch user: %w", err)
	}

	var totalSolved int64
	if err := s.db.WithContext(ctx).Model(&models.Solve{}).
		Where("user_id = ?", userID).Count(&totalSolved).Error; err != nil {
		return nil, fmt.Errorf("count solves: %w", err)
	}

	byCategory, err := s.solvesGroupedBy(ctx, userID, "challenges.category")
	if err != nil {
		return nil, err
	}
	byDifficulty, err := s.solvesGroupedBy(ctx, userID, "challenges.difficulty")
	if err != nil {
		return nil, err
	}

	return &UserStats{
		TotalScore:         user.Score,
		TotalSolved:        int(totalSolved),
		SolvedByCategory:   byCategory,
		SolvedByDifficulty: byDifficulty,
	}, nil
}

func (s *LeaderboardService) solvesGroupedBy(ctx context.Context, userID uint, column string) (map[string]int, error) {
	var rows []groupCount
	if err := s.db.WithContext(ctx).Model(&models.Solve{}).
		Select(column+" as key, count(*) as count").
		Joins("JOIN challenges ON challenges.id = solves.challenge_id").
		Where("solves.user_id = ?", userID).
		Group(column).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("group solves by %s: %w", column, err)
	}

	result := make(map[string]int, len(rows))
	for _, row := range rows {
		result[row.Key] = row.Count
	}
	return result, nil
}
