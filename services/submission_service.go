package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wavectf/config"
	"wavectf/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SubmissionService owns flag verification and score accounting. Every
// mutation happens inside a single transaction, so a solve record and its
// score increments are never observable independently.
type SubmissionService struct {
	db       *gorm.DB
	redis    *redis.Client // optional, enables the wrong-flag cooldown
	cooldown config.SubmissionCooldownConfig
}

func NewSubmissionService(db *gorm.DB, rdb *redis.Client) *SubmissionService {
	return &SubmissionService{
		db:       db,
		redis:    rdb,
		cooldown: config.DefaultSubmissionCooldown,
	}
}

// Submit checks candidateFlag against the challenge and, on a match, records
// the solve and credits the user (and their team) atomically. The unique
// (user_id, challenge_id) index guarantees exactly one accepted submission
// even when identical submissions race: the loser's insert fails and is
// reported as ErrAlreadySolved.
func (s *SubmissionService) Submit(ctx context.Context, userID, challengeID uint, candidateFlag string) (int, error) {
	var challenge models.Challenge
	if err := s.db.WithContext(ctx).First(&challenge, "id = ? AND is_active = ?", challengeID, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrChallengeNotFound
		}
		return 0, fmt.Errorf("fetch challenge: %w", err)
	}

	var solved int64
	if err := s.db.WithContext(ctx).Model(&models.Solve{}).
		Where("user_id = ? AND challenge_id = ?", userID, challengeID).
		Count(&solved).Error; err != nil {
		return 0, fmt.Errorf("check prior solve: %w", err)
	}
	if solved > 0 {
		return 0, ErrAlreadySolved
	}

	if blocked, retryAfter := s.cooldownActive(ctx, userID, challengeID); blocked {
		return 0, fmt.Errorf("%w (retry in %s)", ErrSubmissionCooldown, retryAfter.Round(time.Second))
	}

	// Exact, case-sensitive comparison; no normalization
	if candidateFlag != challenge.Flag {
		s.registerWrongFlag(ctx, userID, challengeID)
		return 0, ErrIncorrectFlag
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		solve := models.Solve{UserID: userID, ChallengeID: challengeID}
		if err := tx.Create(&solve).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadySolved
			}
			return fmt.Errorf("record solve: %w", err)
		}

		if err := tx.Model(&models.User{}).Where("id = ?", userID).
			Update("score", gorm.Expr("score + ?", challenge.Points)).Error; err != nil {
			return fmt.Errorf("credit user score: %w", err)
		}

		// Membership is read inside the transaction so a concurrent team
		// join cannot leave the team uncredited.
		var member models.User
		if err := tx.Select("team_id").First(&member, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("fetch user: %w", err)
		}

		if member.TeamID != nil {
			if err := tx.Model(&models.Team{}).Where("id = ?", *member.TeamID).
				Update("score", gorm.Expr("score + ?", challenge.Points)).Error; err != nil {
				return fmt.Errorf("credit team score: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return challenge.Points, nil
}

// HasSolved reports whether the user already has a solve for the challenge
func (s *SubmissionService) HasSolved(ctx context.Context, userID, challengeID uint) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Solve{}).
		Where("user_id = ? AND challenge_id = ?", userID, challengeID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check solve: %w", err)
	}
	return count > 0, nil
}

func cooldownKey(userID, challengeID uint) string {
	return fmt.Sprintf("flag_cooldown:%d:%d", userID, challengeID)
}

func attemptsKey(userID, challengeID uint) string {
	return fmt.Sprintf("flag_attempts:%d:%d", userID, challengeID)
}

// cooldownActive reports whether the user is currently blocked from submitting
// to the challenge and for how much longer.
func (s *SubmissionService) cooldownActive(ctx context.Context, userID, challengeID uint) (bool, time.Duration) {
	if s.redis == nil {
		return false, 0
	}

	ttl, err := s.redis.TTL(ctx, cooldownKey(userID, challengeID)).Result()
	if err != nil || ttl <= 0 {
		return false, 0
	}
	return true, ttl
}

// registerWrongFlag counts a wrong submission and arms a cooldown once the
// attempt thresholds are crossed. Cooldown bookkeeping is best effort: a redis
// failure never blocks a submission.
func (s *SubmissionService) registerWrongFlag(ctx context.Context, userID, challengeID uint) {
	if s.redis == nil {
		return
	}

	key := attemptsKey(userID, challengeID)
	attempts, err := s.redis.Incr(ctx, key).Result()
	if err != nil {
		return
	}
	if attempts == 1 {
		s.redis.Expire(ctx, key, s.cooldown.AttemptsWindow)
	}

	switch {
	case attempts >= int64(s.cooldown.AttemptsThreshold2):
		s.redis.Set(ctx, cooldownKey(userID, challengeID), 1, s.cooldown.CooldownDuration2)
	case attempts >= int64(s.cooldown.AttemptsThreshold1):
		s.redis.Set(ctx, cooldownKey(userID, challengeID), 1, s.cooldown.CooldownDuration1)
	}
}
