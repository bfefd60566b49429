package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wavectf/models"

	"gorm.io/gorm"
)

// MaxTeamSize is the membership cap enforced on join
const MaxTeamSize = 5

// TeamService owns team creation and membership. A user belongs to at most
// one team, membership is permanent, and team score is increment-only.
type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db}
}

// CreateTeam creates a team with score 0 and the creator as sole member. Team
// creation and the first membership commit together or not at all.
func (s *TeamService) CreateTeam(ctx context.Context, userID uint, name string) (*models.Team, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("fetch user: %w", err)
	}
	if user.TeamID != nil {
		return nil, ErrAlreadyTeamed
	}

	var nameCount int64
	if err := s.db.WithContext(ctx).Model(&models.Team{}).Where("name = ?", name).Count(&nameCount).Error; err != nil {
		return nil, fmt.Errorf("check team name: %w", err)
	}
	if nameCount > 0 {
		return nil, ErrTeamNameTaken
	}

	team := models.Team{Name: name}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&team).Error; err != nil {
			// The unique index backstops the precheck when two creations race
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrTeamNameTaken
			}
			return fmt.Errorf("create team: %w", err)
		}

		claim := tx.Model(&models.User{}).
			Where("id = ? AND team_id IS NULL", userID).
			Update("team_id", team.ID)
		if claim.Error != nil {
			return fmt.Errorf("claim creator: %w", claim.Error)
		}
		if claim.RowsAffected == 0 {
			return ErrAlreadyTeamed
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetTeam(ctx, team.ID)
}

// JoinTeam adds the user to the team, enforcing exclusivity and the size cap.
func (s *TeamService) JoinTeam(ctx context.Context, userID, teamID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The update takes a row lock on the team, so concurrent joins to the
		// same team serialize and the member re-count below stays accurate.
		locked := tx.Model(&models.Team{}).Where("id = ?", teamID).Update("updated_at", time.Now())
		if locked.Error != nil {
			return fmt.Errorf("lock team: %w", locked.Error)
		}
		if locked.RowsAffected == 0 {
			return ErrTeamNotFound
		}

		claim := tx.Model(&models.User{}).
			Where("id = ? AND team_id IS NULL", userID).
			Update("team_id", teamID)
		if claim.Error != nil {
			return fmt.Errorf("claim member: %w", claim.Error)
		}
		if claim.RowsAffected == 0 {
			var exists int64
			if err := tx.Model(&models.User{}).Where("id = ?", userID).Count(&exists).Error; err != nil {
				return fmt.Errorf("check user: %w", err)
			}
			if exists == 0 {
				return ErrUserNotFound
			}
			return ErrAlreadyTeamed
		}

		// Re-check capacity after the claim; rolling back here undoes it
		var members int64
		if err := tx.Model(&models.User{}).Where("team_id = ?", teamID).Count(&members).Error; err != nil {
			return fmt.Errorf("count members: %w", err)
		}
		if members > MaxTeamSize {
			return ErrTeamFull
		}
		return nil
	})
}

// GetTeam returns the team with its members preloaded
func (s *TeamService) GetTeam(ctx context.Context, teamID uint) (*models.Team, error) {
	var team models.Team
	if err := s.db.WithContext(ctx).Preload("Members").First(&team, "id = ?", teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("fetch team: %w", err)
	}
	return &team, nil
}

// ListTeams returns all teams ordered by score
func (s *TeamService) ListTeams(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	if err := s.db.WithContext(ctx).Preload("Members").
		Order("score desc, id asc").Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}
