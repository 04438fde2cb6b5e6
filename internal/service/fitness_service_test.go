package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Bataa715/Audit/internal/dto"
	"github.com/Bataa715/Audit/internal/model"
	"github.com/Bataa715/Audit/internal/repository"
)

// fitnessUser creates a user whose tool list is exactly tools.
func fitnessUser(t *testing.T, svc *Service, repo *repository.Repository, name string, tools []string, admin bool) string {
	t.Helper()
	ctx := context.Background()

	resp := signupUser(t, svc, name, "Ерөнхий аудитын хэлтэс", "Passw0rd!")
	user, err := repo.User.GetByID(ctx, resp.User.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	user.AllowedTools = model.ToolList(tools)
	user.IsAdmin = admin
	if err := repo.User.Update(ctx, user); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	return user.ID
}

func TestFitness_GateDeniesWithoutTag(t *testing.T) {
	svc, repo := testService()
	ctx := context.Background()

	// has a tool list, just not this tool
	userID := fitnessUser(t, svc, repo, "Бат", []string{"todo"}, false)

	_, err := svc.Fitness.ListExercises(ctx, userID)
	if !errors.Is(err, ErrToolForbidden) {
		t.Errorf("expected ErrToolForbidden, got: %v", err)
	}
	_, err = svc.Fitness.CreateExercise(ctx, userID, &dto.CreateExerciseRequest{Name: "Суниалт"})
	if !errors.Is(err, ErrToolForbidden) {
		t.Errorf("expected ErrToolForbidden, got: %v", err)
	}
}

func TestFitness_GateAllowsTagAndAdmin(t *testing.T) {
	svc, repo := testService()
	ctx := context.Background()

	tagged := fitnessUser(t, svc, repo, "Сараа", []string{"fitness"}, false)
	admin := fitnessUser(t, svc, repo, "Админ", []string{}, true)

	if _, err := svc.Fitness.ListExercises(ctx, tagged); err != nil {
		t.Errorf("tagged user denied: %v", err)
	}
	// admins bypass the tag check entirely
	if _, err := svc.Fitness.ListExercises(ctx, admin); err != nil {
		t.Errorf("admin denied: %v", err)
	}
}

func TestFitness_GateUnknownUser(t *testing.T) {
	svc, _ := testService()

	_, err := svc.Fitness.ListExercises(context.Background(), "no-such-user")
	if !errors.Is(err, ErrToolForbidden) {
		t.Errorf("expected ErrToolForbidden for unknown user, got: %v", err)
	}
}

func TestFitness_RevocationTakesEffectImmediately(t *testing.T) {
	svc, repo := testService()
	ctx := context.Background()

	userID := fitnessUser(t, svc, repo, "Сараа", []string{"fitness"}, false)

	if _, err := svc.Fitness.ListExercises(ctx, userID); err != nil {
		t.Fatalf("expected access before revocation: %v", err)
	}

	if _, err := svc.User.UpdateTools(ctx, userID, []string{"todo"}); err != nil {
		t.Fatalf("UpdateTools failed: %v", err)
	}

	if _, err := svc.Fitness.ListExercises(ctx, userID); !errors.Is(err, ErrToolForbidden) {
		t.Errorf("expected ErrToolForbidden after revocation, got: %v", err)
	}
}

func TestFitness_OwnershipScoping(t *testing.T) {
	svc, repo := testService()
	ctx := context.Background()

	alice := fitnessUser(t, svc, repo, "Сараа", []string{"fitness"}, false)
	bob := fitnessUser(t, svc, repo, "Бат", []string{"fitness"}, false)

	ex, err := svc.Fitness.CreateExercise(ctx, alice, &dto.CreateExerciseRequest{Name: "Гүйлт"})
	if err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}

	// the other user can neither see nor delete it
	list, err := svc.Fitness.ListExercises(ctx, bob)
	if err != nil {
		t.Fatalf("ListExercises failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("foreign exercise visible: %v", list)
	}
	if err := svc.Fitness.DeleteExercise(ctx, bob, ex.ID); !errors.Is(err, ErrExerciseNotFound) {
		t.Errorf("expected ErrExerciseNotFound, got: %v", err)
	}

	// the owner still can
	if err := svc.Fitness.DeleteExercise(ctx, alice, ex.ID); err != nil {
		t.Errorf("owner delete failed: %v", err)
	}
}

func TestCreateWorkoutLog_RejectsForeignExercise(t *testing.T) {
	svc, repo := testService()
	ctx := context.Background()

	alice := fitnessUser(t, svc, repo, "Сараа", []string{"fitness"}, false)
	bob := fitnessUser(t, svc, repo, "Бат", []string{"fitness"}, false)

	ex, err := svc.Fitness.CreateExercise(ctx, alice, &dto.CreateExerciseRequest{Name: "Гүйлт"})
	if err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}

	_, err = svc.Fitness.CreateWorkoutLog(ctx, bob, &dto.CreateWorkoutLogRequest{ExerciseID: ex.ID})
	if !errors.Is(err, ErrExerciseNotFound) {
		t.Errorf("expected ErrExerciseNotFound for foreign exercise, got: %v", err)
	}

	sets := 3
	log, err := svc.Fitness.CreateWorkoutLog(ctx, alice, &dto.CreateWorkoutLogRequest{ExerciseID: ex.ID, Sets: &sets})
	if err != nil {
		t.Fatalf("CreateWorkoutLog failed: %v", err)
	}
	if log.Exercise.Name != "Гүйлт" {
		t.Errorf("joined exercise = %q, want Гүйлт", log.Exercise.Name)
	}
}

func TestDashboard_AggregatesOwnData(t *testing.T) {
	svc, repo := testService()
	ctx := context.Background()

	userID := fitnessUser(t, svc, repo, "Сараа", []string{"fitness"}, false)

	ex, err := svc.Fitness.CreateExercise(ctx, userID, &dto.CreateExerciseRequest{Name: "Гүйлт"})
	if err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}
	if _, err := svc.Fitness.CreateWorkoutLog(ctx, userID, &dto.CreateWorkoutLogRequest{ExerciseID: ex.ID}); err != nil {
		t.Fatalf("CreateWorkoutLog failed: %v", err)
	}
	if _, err := svc.Fitness.CreateBodyStats(ctx, userID, &dto.CreateBodyStatsRequest{Weight: 72.5, Height: 175}); err != nil {
		t.Fatalf("CreateBodyStats failed: %v", err)
	}

	dash, err := svc.Fitness.Dashboard(ctx, userID)
	if err != nil {
		t.Fatalf("Dashboard failed: %v", err)
	}
	if len(dash.Exercises) != 1 || len(dash.WorkoutLogs) != 1 || len(dash.BodyStats) != 1 {
		t.Errorf("dashboard = %d/%d/%d entries, want 1/1/1",
			len(dash.Exercises), len(dash.WorkoutLogs), len(dash.BodyStats))
	}
}
