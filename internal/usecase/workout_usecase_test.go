package usecase

import (
	"context"
	"testing"
	"time"

	"self-fitness/internal/delivery/dto"
	"self-fitness/internal/domain/entity"
	"self-fitness/pkg/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shanghai = time.FixedZone("CST", 8*3600)

type workoutFixture struct {
	usecase  *workoutUsecase
	workouts *fakeWorkoutRepo
	routines *fakeRoutineRepo
	slots    *fakeSlotRepo
	audit    *fakeAuditService
	events   *fakeWorkoutEvents
	mock     sqlmock.Sqlmock
}

func newWorkoutFixture(t *testing.T, now time.Time, workouts ...entity.Workout) *workoutFixture {
	t.Helper()
	db, mock := newMockDB(t)

	gyms := newFakeGymRepo(entity.Gym{ID: 1, Name: "Iron Temple"}, entity.Gym{ID: 2, Name: "Garage"})
	f := &workoutFixture{
		workouts: newFakeWorkoutRepo(gyms, workouts...),
		slots:    &fakeSlotRepo{},
		audit:    &fakeAuditService{},
		events:   &fakeWorkoutEvents{},
		mock:     mock,
	}
	f.routines = newFakeRoutineRepo(f.workouts, entity.Routine{ID: 5, Name: "Legs"}, entity.Routine{ID: 6, Name: "Push"})
	targets := newFakeTargetRepo(entity.Target{ID: 1, Name: "Strength"}, entity.Target{ID: 2, Name: "Conditioning"})

	uc := NewWorkoutUsecase(db, newTestLogger(), f.workouts, gyms, f.routines, targets, f.slots, f.audit, f.events, shanghai).(*workoutUsecase)
	uc.now = func() time.Time { return now }
	f.usecase = uc
	return f
}

func (f *workoutFixture) expectTx(commit bool) {
	f.mock.ExpectBegin()
	if commit {
		f.mock.ExpectCommit()
	} else {
		f.mock.ExpectRollback()
	}
}

func at(value string) *time.Time {
	t, err := time.ParseInLocation(entity.WorkoutTimeLayout, value, shanghai)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestCreateWorkoutDefaultsStartToNow(t *testing.T) {
	now := time.Date(2024, 5, 6, 10, 30, 45, 0, shanghai)
	f := newWorkoutFixture(t, now)
	f.expectTx(true)
	actor := uuid.New()

	got, err := f.usecase.Create(context.Background(), actor, &dto.WorkoutRequest{Gym: 1, Target: []int64{1}, Note: strPtr("heavy")})

	require.NoError(t, err)
	require.NotNil(t, got.StartTime)
	assert.Equal(t, "2024-05-06 10:30", *got.StartTime)
	assert.Nil(t, got.EndTime)
	assert.Equal(t, "Iron Temple", got.Gym.Name)
	assert.Equal(t, "heavy", got.Note)
	assert.Equal(t, []int64{got.ID}, f.events.started)
	assert.Equal(t, []string{entity.AuditActionWorkoutStart}, f.audit.actions())
	require.NoError(t, f.mock.ExpectationsWereMet())
}

func TestCreateWorkoutValidation(t *testing.T) {
	f := newWorkoutFixture(t, time.Now())

	_, err := f.usecase.Create(context.Background(), uuid.New(), &dto.WorkoutRequest{Gym: 1, StartTime: strPtr("06/05/2024")})
	assert.ErrorIs(t, err, ErrInvalidWorkoutTimeFormat)

	_, err = f.usecase.Create(context.Background(), uuid.New(), &dto.WorkoutRequest{
		Gym:       1,
		StartTime: strPtr("2024-05-06 10:00"),
		EndTime:   strPtr("2024-05-06 09:00"),
	})
	assert.ErrorIs(t, err, ErrWorkoutEndBeforeStart)

	f.expectTx(false)
	_, err = f.usecase.Create(context.Background(), uuid.New(), &dto.WorkoutRequest{Gym: 9})
	assert.ErrorIs(t, err, ErrGymNotFound)
	require.NoError(t, f.mock.ExpectationsWereMet())
}

func TestCreateWorkoutRejectsBoundRoutine(t *testing.T) {
	f := newWorkoutFixture(t, time.Now(), entity.Workout{ID: 1, GymID: 1, RoutineID: int64Ptr(5)})
	f.expectTx(false)

	_, err := f.usecase.Create(context.Background(), uuid.New(), &dto.WorkoutRequest{Gym: 1, Routine: int64Ptr(5)})

	assert.ErrorIs(t, err, ErrRoutineAlreadyAttached)
}

func TestStopWorkoutKeepsUnchangedFields(t *testing.T) {
	now := time.Date(2024, 5, 6, 11, 45, 0, 0, shanghai)
	f := newWorkoutFixture(t, now, entity.Workout{
		ID:        3,
		StartTime: at("2024-05-06 10:00"),
		GymID:     2,
		Note:      "before",
		Targets:   []entity.Target{{ID: 2, Name: "Conditioning"}},
	})
	f.expectTx(true)

	got, err := f.usecase.Stop(context.Background(), uuid.New(), &dto.StopWorkoutRequest{ID: 3})

	require.NoError(t, err)
	assert.Equal(t, "2024-05-06 10:00", *got.StartTime)
	assert.Equal(t, "2024-05-06 11:45", *got.EndTime)
	assert.Equal(t, "Garage", got.Gym.Name)
	assert.Equal(t, "before", got.Note)
	require.Len(t, got.Target, 1)
	assert.Equal(t, "Conditioning", got.Target[0].Name)
	assert.Equal(t, []int64{3}, f.events.finished)
	assert.Equal(t, []string{entity.AuditActionWorkoutStop}, f.audit.actions())
	require.NoError(t, f.mock.ExpectationsWereMet())
}

func TestStopWorkoutAppliesChanges(t *testing.T) {
	f := newWorkoutFixture(t, time.Now(), entity.Workout{ID: 3, StartTime: at("2024-05-06 10:00"), GymID: 2})
	f.expectTx(true)

	got, err := f.usecase.Stop(context.Background(), uuid.New(), &dto.StopWorkoutRequest{
		ID:      3,
		EndTime: strPtr("2024-05-06 11:00"),
		Gym:     1,
		Routine: int64Ptr(6),
		Target:  []int64{1},
		Note:    strPtr("done"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Iron Temple", got.Gym.Name)
	assert.Equal(t, "Strength", got.Target[0].Name)
	assert.Equal(t, "done", got.Note)
	assert.Equal(t, int64(6), *f.workouts.workouts[3].RoutineID)
}

func TestStopWorkoutRejectsEndBeforeStart(t *testing.T) {
	f := newWorkoutFixture(t, time.Now(), entity.Workout{ID: 3, StartTime: at("2024-05-06 10:00"), GymID: 2})
	f.expectTx(false)

	_, err := f.usecase.Stop(context.Background(), uuid.New(), &dto.StopWorkoutRequest{ID: 3, EndTime: strPtr("2024-05-06 09:00")})

	assert.ErrorIs(t, err, ErrWorkoutEndBeforeStart)
	assert.Empty(t, f.events.finished)
}

func TestInProcessUsesConfiguredZone(t *testing.T) {
	// 2024-05-06 01:30 in Shanghai is still May 5th in UTC
	now := time.Date(2024, 5, 5, 17, 30, 0, 0, time.UTC)
	f := newWorkoutFixture(t, now,
		entity.Workout{ID: 1, StartTime: at("2024-05-05 20:00"), GymID: 1},
		entity.Workout{ID: 2, StartTime: at("2024-05-06 01:00"), GymID: 1},
	)

	got, err := f.usecase.InProcess(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ID)
}

func TestInProcessNone(t *testing.T) {
	f := newWorkoutFixture(t, time.Now(), entity.Workout{ID: 1, StartTime: at("2020-01-01 08:00"), GymID: 1})

	_, err := f.usecase.InProcess(context.Background())

	assert.ErrorIs(t, err, ErrWorkoutNotInProcess)
	assert.Equal(t, apperror.CodeNotFoundEntity, apperror.From(err).Code)
}

func TestStatsRejectsUnknownInterval(t *testing.T) {
	f := newWorkoutFixture(t, time.Now())

	_, err := f.usecase.Stats(context.Background(), "decade")

	require.Error(t, err)
	assert.Equal(t, apperror.CodeUnsupportedInterval, apperror.From(err).Code)
}

func TestStatsForWeek(t *testing.T) {
	// Wednesday
	now := time.Date(2024, 5, 8, 12, 0, 0, 0, shanghai)
	f := newWorkoutFixture(t, now,
		entity.Workout{ID: 1, StartTime: at("2024-05-06 10:00"), EndTime: at("2024-05-06 11:30"), GymID: 1, RoutineID: int64Ptr(5)},
		entity.Workout{ID: 2, StartTime: at("2024-05-07 18:00"), EndTime: at("2024-05-07 18:45"), GymID: 1, RoutineID: int64Ptr(6)},
		entity.Workout{ID: 3, StartTime: at("2024-05-08 09:00"), GymID: 1},
		entity.Workout{ID: 4, StartTime: at("2024-05-05 09:00"), EndTime: at("2024-05-05 10:00"), GymID: 1, RoutineID: int64Ptr(7)},
	)
	f.slots.slots = []entity.Slot{{RoutineID: 5}, {RoutineID: 5}, {RoutineID: 6}, {RoutineID: 7}}

	got, err := f.usecase.Stats(context.Background(), "Week")

	require.NoError(t, err)
	assert.Equal(t, "week", got.Interval)
	assert.Equal(t, "2024-05-06", got.From)
	assert.Equal(t, "2024-05-13", got.To)
	assert.Equal(t, int64(3), got.WorkoutCount)
	assert.Equal(t, int64(2), got.RoutineCount)
	assert.Equal(t, int64(3), got.ExerciseCount)
	assert.Equal(t, int64(135), got.TotalMinutes)
}

func TestDeleteWorkout(t *testing.T) {
	f := newWorkoutFixture(t, time.Now(), entity.Workout{ID: 1, GymID: 1})
	f.expectTx(true)

	require.NoError(t, f.usecase.Delete(context.Background(), uuid.New(), 1))
	assert.Empty(t, f.workouts.workouts)
	assert.Equal(t, []string{entity.AuditActionWorkoutDelete}, f.audit.actions())

	_, err := f.usecase.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrWorkoutNotFound)
}
