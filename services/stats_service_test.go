package services

import (
	"context"
	"testing"
)

func TestPlatformStats(t *testing.T) {
	db := newTestDB(t)
	submissions := NewSubmissionService(db, nil)
	teams := NewTeamService(db)
	svc := NewStatsService(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	active := createChallenge(t, db, "active", 100, "FLAG{A}", true)
	createChallenge(t, db, "inactive", 200, "FLAG{B}", false)

	if _, err := teams.CreateTeam(context.Background(), alice.ID, "Alpha"); err != nil {
		t.Fatalf("create team: %v", err)
	}
	if _, err := submissions.Submit(context.Background(), alice.ID, active.ID, "FLAG{A}"); err != nil {
		t.Fatalf("submit alice: %v", err)
	}
	if _, err := submissions.Submit(context.Background(), bob.ID, active.ID, "FLAG{A}"); err != nil {
		t.Fatalf("submit bob: %v", err)
	}

	stats, err := svc.PlatformStats(context.Background())
	if err != nil {
		t.Fatalf("platform stats: %v", err)
	}

	if stats.TotalUsers != 2 {
		t.Fatalf("expected 2 users, got %d", stats.TotalUsers)
	}
	if stats.TotalTeams != 1 {
		t.Fatalf("expected 1 team, got %d", stats.TotalTeams)
	}
	if stats.TotalChallenges != 2 {
		t.Fatalf("expected 2 challenges, got %d", stats.TotalChallenges)
	}
	if stats.ActiveChallenges != 1 {
		t.Fatalf("expected 1 active challenge, got %d", stats.ActiveChallenges)
	}
	if stats.TotalSolves != 2 {
		t.Fatalf("expected 2 solves, got %d", stats.TotalSolves)
	}
	if stats.ChallengesByCategory["Wireless"] != 2 {
		t.Fatalf("unexpected category stats: %v", stats.ChallengesByCategory)
	}
	if stats.ChallengesByDifficulty["Easy"] != 2 {
		t.Fatalf("unexpected difficulty stats: %v", stats.ChallengesByDifficulty)
	}
}
