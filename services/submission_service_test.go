package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"wavectf/models"

	"gorm.io/gorm"
)

func TestSubmitCorrectFlag(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(db, nil)
	user := createUser(t, db, "alice")
	challenge := createChallenge(t, db, "WIFI-101", 100, "FLAG{WIFI_SNIFFING_BASICS}", true)

	points, err := svc.Submit(context.Background(), user.ID, challenge.ID, "FLAG{WIFI_SNIFFING_BASICS}")
	if err != nil {
		t.Fatalf("submit correct flag: %v", err)
	}
	if points != 100 {
		t.Fatalf("expected 100 points awarded, got %d", points)
	}
	if score := userScore(t, db, user.ID); score != 100 {
		t.Fatalf("expected score 100, got %d", score)
	}
	if n := solveCount(t, db, user.ID, challenge.ID); n != 1 {
		t.Fatalf("expected exactly one solve, got %d", n)
	}
}

func TestSubmitIncorrectFlag(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(db, nil)
	user := createUser(t, db, "victor")
	challenge := createChallenge(t, db, "WIFI-101", 100, "FLAG{WIFI_SNIFFING_BASICS}", true)

	_, err := svc.Submit(context.Background(), user.ID, challenge.ID, "wrong")
	if !errors.Is(err, ErrIncorrectFlag) {
		t.Fatalf("expected ErrIncorrectFlag, got %v", err)
	}
	if score := userScore(t, db, user.ID); score != 0 {
		t.Fatalf("expected score unchanged, got %d", score)
	}
	if n := solveCount(t, db, user.ID, challenge.ID); n != 0 {
		t.Fatalf("expected no solve, got %d", n)
	}
}

func TestSubmitFlagComparisonIsCaseSensitive(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(db, nil)
	user := createUser(t, db, "carol")
	challenge := createChallenge(t, db, "WIFI-101", 100, "FLAG{WiFi}", true)

	_, err := svc.Submit(context.Background(), user.ID, challenge.ID, "flag{wifi}")
	if !errors.Is(err, ErrIncorrectFlag) {
		t.Fatalf("expected ErrIncorrectFlag for case mismatch, got %v", err)
	}
}

func TestSubmitAlreadySolvedIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(db, nil)
	user := createUser(t, db, "alice")
	challenge := createChallenge(t, db, "WIFI-101", 100, "FLAG{X}", true)

	if _, err := svc.Submit(context.Background(), user.ID, challenge.ID, "FLAG{X}"); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	for i := 0; i < 3; i++ {
		_, err := svc.Submit(context.Background(), user.ID, challenge.ID, "FLAG{X}")
		if !errors.Is(err, ErrAlreadySolved) {
			t.Fatalf("resubmit %d: expected ErrAlreadySolved, got %v", i, err)
		}
	}

	if score := userScore(t, db, user.ID); score != 100 {
		t.Fatalf("expected score to stay at 100, got %d", score)
	}
	if n := solveCount(t, db, user.ID, challenge.ID); n != 1 {
		t.Fatalf("expected exactly one solve, got %d", n)
	}
}

func TestSubmitInactiveChallenge(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(db, nil)
	user := createUser(t, db, "alice")
	challenge := createChallenge(t, db, "hidden", 50, "FLAG{Y}", false)

	_, err := svc.Submit(context.Background(), user.ID, challenge.ID, "FLAG{Y}")
	if !errors.Is(err, ErrChallengeNotFound) {
		t.Fatalf("expected ErrChallengeNotFound for inactive challenge, got %v", err)
	}
}

func TestSubmitMissingChallenge(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(db, nil)
	user := createUser(t, db, "alice")

	_, err := svc.Submit(context.Background(), user.ID, 9999, "FLAG{Y}")
	if !errors.Is(err, ErrChallengeNotFound) {
		t.Fatalf("expected ErrChallengeNotFound, got %v", err)
	}
}

func TestSubmitCreditsTeamScore(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(db, nil)
	teams := NewTeamService(db)
	user := createUser(t, db, "alice")
	challenge := createChallenge(t, db, "WIFI-101", 100, "FLAG{X}", true)

	team, err := teams.CreateTeam(context.Background(), user.ID, "Alpha")
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	if _, err := svc.Submit(context.Background(), user.ID, challenge.ID, "FLAG{X}"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if score := teamScore(t, db, team.ID); score != 100 {
		t.Fatalf("expected team score 100, got %d", score)
	}
	if score := userScore(t, db, user.ID); score != 100 {
		t.Fatalf("expected user score 100, got %d", score)
	}
}

func TestSubmitCreditsTeamJoinedDuringSubmission(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(db, nil)
	teams := NewTeamService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	challenge := createChallenge(t, db, "WIFI-101", 100, "FLAG{X}", true)

	team, err := teams.CreateTeam(context.Background(), bob.ID, "Alpha")
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	// Move alice onto the team while the solve transaction is in flight,
	// after the pre-transaction checks have already run.
	const callback = "test:join_during_solve"
	err = db.Callback().Create().Before("gorm:create").Register(callback, func(tx *gorm.DB) {
		if tx.Statement.Schema == nil || tx.Statement.Schema.Table != "solves" {
			return
		}
		session := tx.Session(&gorm.Session{NewDB: true})
		if err := session.Model(&models.User{}).Where("id = ?", alice.ID).
			Update("team_id", team.ID).Error; err != nil {
			t.Errorf("join during solve: %v", err)
		}
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}
	defer db.Callback().Create().Remove(callback)

	if _, err := svc.Submit(context.Background(), alice.ID, challenge.ID, "FLAG{X}"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if score := teamScore(t, db, team.ID); score != 100 {
		t.Fatalf("expected team score 100, got %d", score)
	}
}

func TestSubmitWithoutTeamLeavesTeamsUntouched(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(db, nil)
	teams := NewTeamService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	challenge := createChallenge(t, db, "WIFI-101", 100, "FLAG{X}", true)

	team, err := teams.CreateTeam(context.Background(), alice.ID, "Alpha")
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	// bob has no team; his solve must not credit Alpha
	if _, err := svc.Submit(context.Background(), bob.ID, challenge.ID, "FLAG{X}"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if score := teamScore(t, db, team.ID); score != 0 {
		t.Fatalf("expected team score 0, got %d", score)
	}
}

func TestSubmitConcurrentDuplicates(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(db, nil)
	user := createUser(t, db, "alice")
	challenge := createChallenge(t, db, "WIFI-101", 100, "FLAG{X}", true)

	const workers = 8
	results := make(chan error, workers)
	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := svc.Submit(context.Background(), user.ID, challenge.ID, "FLAG{X}")
			results <- err
		}()
	}
	close(start)
	wg.Wait()
	close(results)

	accepted, alreadySolved := 0, 0
	for err := range results {
		switch {
		case err == nil:
			accepted++
		case errors.Is(err, ErrAlreadySolved):
			alreadySolved++
		default:
			t.Fatalf("unexpected submit error: %v", err)
		}
	}

	if accepted != 1 {
		t.Fatalf("expected exactly one accepted submission, got %d", accepted)
	}
	if alreadySolved != workers-1 {
		t.Fatalf("expected %d AlreadySolved rejections, got %d", workers-1, alreadySolved)
	}
	if score := userScore(t, db, user.ID); score != 100 {
		t.Fatalf("expected score credited exactly once (100), got %d", score)
	}
	if n := solveCount(t, db, user.ID, challenge.ID); n != 1 {
		t.Fatalf("expected exactly one solve record, got %d", n)
	}
}

// The user's score must always equal the sum of points over their solves
func TestSubmitScoreMatchesSolvedPoints(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(db, nil)
	user := createUser(t, db, "alice")

	challenges := []models.Challenge{
		createChallenge(t, db, "c1", 100, "FLAG{1}", true),
		createChallenge(t, db, "c2", 250, "FLAG{2}", true),
		createChallenge(t, db, "c3", 300, "FLAG{3}", true),
	}

	expected := 0
	for i, c := range challenges {
		if i == 1 {
			// A wrong flag in the middle must not disturb the accounting
			if _, err := svc.Submit(context.Background(), user.ID, c.ID, "nope"); !errors.Is(err, ErrIncorrectFlag) {
				t.Fatalf("expected ErrIncorrectFlag, got %v", err)
			}
		}
		if _, err := svc.Submit(context.Background(), user.ID, c.ID, c.Flag); err != nil {
			t.Fatalf("submit %s: %v", c.Title, err)
		}
		expected += c.Points
	}

	if score := userScore(t, db, user.ID); score != expected {
		t.Fatalf("expected score %d, got %d", expected, score)
	}
}

func TestHasSolved(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(db, nil)
	user := createUser(t, db, "alice")
	challenge := createChallenge(t, db, "WIFI-101", 100, "FLAG{X}", true)

	solved, err := svc.HasSolved(context.Background(), user.ID, challenge.ID)
	if err != nil {
		t.Fatalf("has solved: %v", err)
	}
	if solved {
		t.Fatal("expected not solved before submission")
	}

	if _, err := svc.Submit(context.Background(), user.ID, challenge.ID, "FLAG{X}"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	solved, err = svc.HasSolved(context.Background(), user.ID, challenge.ID)
	if err != nil {
		t.Fatalf("has solved: %v", err)
	}
	if !solved {
		t.Fatal("expected solved after submission")
	}
}
