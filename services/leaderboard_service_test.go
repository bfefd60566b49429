package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"wavectf/models"
)

func TestTopUsersOrdering(t *testing.T) {
	db := newTestDB(t)
	submissions := NewSubmissionService(db, nil)
	svc := NewLeaderboardService(db)

	easy := createChallenge(t, db, "easy", 100, "FLAG{E}", true)
	hard := createChallenge(t, db, "hard", 400, "FLAG{H}", true)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	createUser(t, db, "carol")

	// bob solves both, alice one, carol none
	for _, sub := range []struct {
		user uint
		ch   models.Challenge
	}{
		{bob.ID, easy},
		{bob.ID, hard},
		{alice.ID, easy},
	} {
		if _, err := submissions.Submit(context.Background(), sub.user, sub.ch.ID, sub.ch.Flag); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	entries, err := svc.TopUsers(context.Background(), 0)
	if err != nil {
		t.Fatalf("top users: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	if entries[0].Username != "bob" || entries[0].Score != 500 || entries[0].Solved != 2 {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Username != "alice" || entries[1].Score != 100 || entries[1].Solved != 1 {
		t.Fatalf("unexpected second entry: %+v", entries[1])
	}
	if entries[2].Username != "carol" || entries[2].Score != 0 || entries[2].Solved != 0 {
		t.Fatalf("unexpected third entry: %+v", entries[2])
	}
}

func TestTopUsersDefaultLimit(t *testing.T) {
	db := newTestDB(t)
	svc := NewLeaderboardService(db)

	for i := 0; i < DefaultLeaderboardLimit+2; i++ {
		createUser(t, db, fmt.Sprintf("user%02d", i))
	}

	entries, err := svc.TopUsers(context.Background(), 0)
	if err != nil {
		t.Fatalf("top users: %v", err)
	}
	if len(entries) != DefaultLeaderboardLimit {
		t.Fatalf("expected %d entries, got %d", DefaultLeaderboardLimit, len(entries))
	}
}

func TestTopUsersExplicitLimit(t *testing.T) {
	db := newTestDB(t)
	svc := NewLeaderboardService(db)

	for i := 0; i < 5; i++ {
		createUser(t, db, fmt.Sprintf("user%d", i))
	}

	entries, err := svc.TopUsers(context.Background(), 3)
	if err != nil {
		t.Fatalf("top users: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
}

func TestTopUsersTieBreaksByID(t *testing.T) {
	db := newTestDB(t)
	svc := NewLeaderboardService(db)

	first := createUser(t, db, "first")
	createUser(t, db, "second")

	entries, err := svc.TopUsers(context.Background(), 0)
	if err != nil {
		t.Fatalf("top users: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != first.ID {
		t.Fatalf("expected lower id first on tie, got %d", entries[0].ID)
	}
}

func TestTopTeams(t *testing.T) {
	db := newTestDB(t)
	teams := NewTeamService(db)
	submissions := NewSubmissionService(db, nil)
	svc := NewLeaderboardService(db)

	challenge := createChallenge(t, db, "c", 150, "FLAG{X}", true)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")

	alpha, err := teams.CreateTeam(context.Background(), alice.ID, "Alpha")
	if err != nil {
		t.Fatalf("create Alpha: %v", err)
	}
	if _, err := teams.CreateTeam(context.Background(), bob.ID, "Beta"); err != nil {
		t.Fatalf("create Beta: %v", err)
	}
	if err := teams.JoinTeam(context.Background(), carol.ID, alpha.ID); err != nil {
		t.Fatalf("join Alpha: %v", err)
	}

	if _, err := submissions.Submit(context.Background(), alice.ID, challenge.ID, "FLAG{X}"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	entries, err := svc.TopTeams(context.Background(), 0)
	if err != nil {
		t.Fatalf("top teams: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "Alpha" || entries[0].Score != 150 || entries[0].Members != 2 {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Name != "Beta" || entries[1].Score != 0 || entries[1].Members != 1 {
		t.Fatalf("unexpected second entry: %+v", entries[1])
	}
}

func TestUserStats(t *testing.T) {
	db := newTestDB(t)
	submissions := NewSubmissionService(db, nil)
	svc := NewLeaderboardService(db)

	user := createUser(t, db, "alice")

	specs := []struct {
		title      string
		category   string
		difficulty string
		points     int
	}{
		{"wifi-easy", "Wireless", "Easy", 100},
		{"wifi-hard", "Wireless", "Hard", 400},
		{"sdr-easy", "SDR", "Easy", 150},
	}
	for i, spec := range specs {
		challenge := models.Challenge{
			Title:       spec.title,
			Description: "test challenge",
			Category:    spec.category,
			Difficulty:  spec.difficulty,
			Points:      spec.points,
			Flag:        fmt.Sprintf("FLAG{%d}", i),
			IsActive:    true,
		}
		if err := db.Create(&challenge).Error; err != nil {
			t.Fatalf("create challenge: %v", err)
		}
		if _, err := submissions.Submit(context.Background(), user.ID, challenge.ID, challenge.Flag); err != nil {
			t.Fatalf("submit %s: %v", spec.title, err)
		}
	}

	stats, err := svc.UserStats(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("user stats: %v", err)
	}
	if stats.TotalScore != 650 {
		t.Fatalf("expected total score 650, got %d", stats.TotalScore)
	}
	if stats.TotalSolved != 3 {
		t.Fatalf("expected 3 solved, got %d", stats.TotalSolved)
	}
	if stats.SolvedByCategory["Wireless"] != 2 || stats.SolvedByCategory["SDR"] != 1 {
		t.Fatalf("unexpected category partition: %v", stats.SolvedByCategory)
	}
	if stats.SolvedByDifficulty["Easy"] != 2 || stats.SolvedByDifficulty["Hard"] != 1 {
		t.Fatalf("unexpected difficulty partition: %v", stats.SolvedByDifficulty)
	}
}

func TestUserStatsUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewLeaderboardService(db)

	_, err := svc.UserStats(context.Background(), 9999)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
