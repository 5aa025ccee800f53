//go:build integration

package repository

import (
	"context"
	"io"
	"testing"
	"time"

	"self-fitness/internal/domain/entity"
	"self-fitness/internal/infrastructure/database"
	"self-fitness/pkg/pagination"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pg, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("self"),
		tcpostgres.WithUsername("self"),
		tcpostgres.WithPassword("self"),
		tcpostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)
	require.NoError(t, database.RunMigrations(connStr, log))

	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestSeededAdminHasEveryPermission(t *testing.T) {
	db := newPostgres(t)

	admin, err := NewUserRepository().FindByUsername(db, "admin")
	require.NoError(t, err)
	require.NotNil(t, admin)

	authorities := admin.Authorities()
	assert.Contains(t, authorities, "ROLE_ADMIN")
	assert.Contains(t, authorities, "user:manage_roles")
	assert.Contains(t, authorities, "permission:read")

	count, err := NewMuscleRepository().Count(db)
	require.NoError(t, err)
	assert.Positive(t, count)
}

func TestSeededUserRoleOnlyUpdatesSelf(t *testing.T) {
	db := newPostgres(t)

	role, err := NewRoleRepository().FindByName(db, entity.RoleUser)
	require.NoError(t, err)
	require.NotNil(t, role)

	users := NewUserRepository()
	user := &entity.User{Username: "wx_seed", Password: "x"}
	require.NoError(t, users.Create(db, user))
	require.NoError(t, users.AppendRoles(db, user, *role))

	loaded, err := users.FindByID(db, user.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"ROLE_USER", "user:update"}, loaded.Authorities())
}

func TestGymNameIsUnique(t *testing.T) {
	db := newPostgres(t)
	repo := NewGymRepository()

	require.NoError(t, repo.Create(db, &entity.Gym{Name: "Iron Temple", Location: "Shanghai"}))
	err := repo.Create(db, &entity.Gym{Name: "Iron Temple", Location: "Suzhou"})
	require.Error(t, err)

	gyms, total, err := repo.FindPage(db, "IRON", pagination.NewPageable(0, 20, "id,asc"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, gyms, 1)
	assert.Equal(t, "Shanghai", gyms[0].Location)
}

func TestWorkoutWithRoutineRoundTrip(t *testing.T) {
	db := newPostgres(t)

	gym := &entity.Gym{Name: "Barbell Club", Location: "Hangzhou"}
	require.NoError(t, NewGymRepository().Create(db, gym))

	targetRepo := NewTargetRepository()
	legs := &entity.Target{Name: "legs"}
	require.NoError(t, targetRepo.Create(db, legs))

	exercise := &entity.Exercise{Name: "Squat"}
	require.NoError(t, NewExerciseRepository().Create(db, exercise))

	start := time.Date(2024, 5, 2, 7, 15, 0, 0, time.UTC)
	end := start.Add(75 * time.Minute)
	workoutRepo := NewWorkoutRepository()
	workout := &entity.Workout{StartTime: &start, EndTime: &end, GymID: gym.ID}
	require.NoError(t, workoutRepo.Create(db, workout))
	require.NoError(t, workoutRepo.ReplaceTargets(db, workout, []entity.Target{*legs}))

	routineRepo := NewRoutineRepository()
	routine := &entity.Routine{Name: "Leg day", Checklist: entity.Checklist{{Name: "warm up"}}}
	require.NoError(t, routineRepo.Create(db, routine))
	require.NoError(t, workoutRepo.AttachRoutine(db, workout.ID, routine.ID))

	slotRepo := NewSlotRepository()
	require.NoError(t, slotRepo.Create(db, &entity.Slot{RoutineID: routine.ID, ExerciseID: exercise.ID, Sequence: 2, Category: entity.CategoryWorkingSets}))
	require.NoError(t, slotRepo.Create(db, &entity.Slot{RoutineID: routine.ID, ExerciseID: exercise.ID, Sequence: 1, Category: entity.CategoryWarmUp}))

	loaded, err := workoutRepo.FindByID(db, workout.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "Barbell Club", loaded.Gym.Name)
	require.Len(t, loaded.Targets, 1)
	require.NotNil(t, loaded.Routine)
	assert.Len(t, loaded.Routine.Slots, 2)
	assert.Equal(t, 75, loaded.Minutes())

	byRoutine, err := routineRepo.FindByID(db, routine.ID)
	require.NoError(t, err)
	require.NotNil(t, byRoutine.Workout)
	assert.Equal(t, workout.ID, byRoutine.Workout.ID)

	started, err := workoutRepo.FindStartedBetween(db, start.Add(-time.Hour), start.Add(time.Hour))
	require.NoError(t, err)
	assert.Len(t, started, 1)

	slots, err := slotRepo.CountByRoutineIDs(db, []int64{routine.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), slots)

	require.NoError(t, routineRepo.Delete(db, routine.ID))
	detached, err := workoutRepo.FindByID(db, workout.ID)
	require.NoError(t, err)
	assert.Nil(t, detached.RoutineID)
}

func TestPracticeSessionRoundTrip(t *testing.T) {
	db := newPostgres(t)

	tagRepo := NewPianoTagRepository()
	bach := &entity.PianoTag{Name: "bach"}
	scales := &entity.PianoTag{Name: "scales"}
	require.NoError(t, tagRepo.Create(db, bach))
	require.NoError(t, tagRepo.Create(db, scales))

	pieceRepo := NewPieceRepository()
	piece := &entity.Piece{Title: "Prelude in C", Status: entity.PieceLearning}
	require.NoError(t, pieceRepo.Create(db, piece))
	require.NoError(t, pieceRepo.ReplaceTags(db, piece, []entity.PianoTag{*bach}))

	sessionRepo := NewPracticeSessionRepository()
	session := &entity.PracticeSession{StartTime: time.Date(2024, 5, 2, 20, 0, 0, 0, time.UTC)}
	require.NoError(t, sessionRepo.Create(db, session))

	bpm := 72
	practiceRepo := NewPianoPracticeRepository()
	practice := &entity.PianoPractice{SessionID: session.ID, PieceID: &piece.ID, Minutes: 25, BPM: &bpm, Type: entity.PracticeRepertoire}
	require.NoError(t, practiceRepo.Create(db, practice))
	require.NoError(t, practiceRepo.ReplaceTags(db, practice, []entity.PianoTag{*bach, *scales}))

	solfeggioRepo := NewSolfeggioPracticeRepository()
	ear := &entity.SolfeggioPractice{SessionID: session.ID, Minutes: 10, Intervals: []string{"m3", "M3", "P5"}}
	require.NoError(t, solfeggioRepo.Create(db, ear))

	loaded, err := sessionRepo.FindByID(db, session.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Len(t, loaded.PianoPractices, 1)
	require.NotNil(t, loaded.PianoPractices[0].Piece)
	assert.Equal(t, "Prelude in C", loaded.PianoPractices[0].Piece.Title)
	assert.Len(t, loaded.PianoPractices[0].Tags, 2)
	require.Len(t, loaded.SolfeggioPractices, 1)
	assert.Equal(t, []string{"m3", "M3", "P5"}, []string(loaded.SolfeggioPractices[0].Intervals))
	assert.Equal(t, 25, loaded.TotalMinutes())

	require.NoError(t, tagRepo.Delete(db, bach.ID))
	reloaded, err := practiceRepo.FindByID(db, practice.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Tags, 1)
	assert.Equal(t, "scales", reloaded.Tags[0].Name)
	require.NotNil(t, reloaded.Piece)
	assert.Empty(t, reloaded.Piece.Tags)
}
