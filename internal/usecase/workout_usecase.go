package usecase

import (
	"context"
	"strings"
	"time"

	"self-fitness/internal/converter"
	"self-fitness/internal/delivery/dto"
	"self-fitness/internal/domain/entity"
	"self-fitness/internal/domain/repository"
	"self-fitness/internal/service"
	"self-fitness/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const statsDateLayout = "2006-01-02"

type WorkoutUsecase interface {
	Create(ctx context.Context, actorID uuid.UUID, req *dto.WorkoutRequest) (*dto.WorkoutResponse, error)
	GetAll(ctx context.Context) ([]dto.WorkoutResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.WorkoutResponse, error)
	Update(ctx context.Context, id int64, req *dto.WorkoutRequest) (*dto.WorkoutResponse, error)
	Delete(ctx context.Context, actorID uuid.UUID, id int64) error
	Stop(ctx context.Context, actorID uuid.UUID, req *dto.StopWorkoutRequest) (*dto.WorkoutResponse, error)
	InProcess(ctx context.Context) (*dto.WorkoutResponse, error)
	Stats(ctx context.Context, interval string) (*dto.WorkoutStatsResponse, error)
}

type workoutUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	workoutRepo  repository.WorkoutRepository
	gymRepo      repository.GymRepository
	routineRepo  repository.RoutineRepository
	targetRepo   repository.TargetRepository
	slotRepo     repository.SlotRepository
	auditService service.AuditService
	events       service.WorkoutEvents
	loc          *time.Location
	now          func() time.Time
}

func NewWorkoutUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	workoutRepo repository.WorkoutRepository,
	gymRepo repository.GymRepository,
	routineRepo repository.RoutineRepository,
	targetRepo repository.TargetRepository,
	slotRepo repository.SlotRepository,
	auditService service.AuditService,
	events service.WorkoutEvents,
	loc *time.Location,
) WorkoutUsecase {
	if loc == nil {
		loc = time.UTC
	}
	return &workoutUsecase{
		db:           db,
		log:          log,
		workoutRepo:  workoutRepo,
		gymRepo:      gymRepo,
		routineRepo:  routineRepo,
		targetRepo:   targetRepo,
		slotRepo:     slotRepo,
		auditService: auditService,
		events:       events,
		loc:          loc,
		now:          time.Now,
	}
}

// Create starts a workout. A missing start time means now.
func (u *workoutUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.WorkoutRequest) (*dto.WorkoutResponse, error) {
	startTime, err := u.parseTime(req.StartTime)
	if err != nil {
		return nil, err
	}
	if startTime == nil {
		now := u.now().In(u.loc).Truncate(time.Minute)
		startTime = &now
	}
	endTime, err := u.parseTime(req.EndTime)
	if err != nil {
		return nil, err
	}
	if endTime != nil && endTime.Before(*startTime) {
		return nil, ErrWorkoutEndBeforeStart
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.checkGym(tx, req.Gym); err != nil {
		return nil, err
	}
	if req.Routine != nil {
		if err := u.checkRoutine(tx, *req.Routine, 0); err != nil {
			return nil, err
		}
	}
	targets, err := resolveTargets(tx, u.log, u.targetRepo, req.Target)
	if err != nil {
		return nil, err
	}

	workout := &entity.Workout{
		StartTime: startTime,
		EndTime:   endTime,
		GymID:     req.Gym,
		RoutineID: req.Routine,
	}
	if req.Note != nil {
		workout.Note = *req.Note
	}

	if err := u.workoutRepo.Create(tx, workout); err != nil {
		if isDuplicateKeyError(err, "routine") {
			return nil, ErrRoutineAlreadyAttached
		}
		u.log.Warnf("Failed to create workout: %+v", err)
		return nil, err
	}

	if err := u.workoutRepo.ReplaceTargets(tx, workout, targets); err != nil {
		u.log.Warnf("Failed to set workout targets: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(ctx, tx, &actorID, entity.AuditActionWorkoutStart, entity.JSON{
		"workout_id": workout.ID,
		"gym_id":     workout.GymID,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.events.Started(ctx, workout)

	return u.load(ctx, workout.ID)
}

func (u *workoutUsecase) GetAll(ctx context.Context) ([]dto.WorkoutResponse, error) {
	workouts, err := u.workoutRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all workouts: %+v", err)
		return nil, err
	}
	return converter.WorkoutsToResponses(workouts, u.loc), nil
}

func (u *workoutUsecase) GetByID(ctx context.Context, id int64) (*dto.WorkoutResponse, error) {
	return u.load(ctx, id)
}

// Update overwrites every field of the workout with the request.
func (u *workoutUsecase) Update(ctx context.Context, id int64, req *dto.WorkoutRequest) (*dto.WorkoutResponse, error) {
	startTime, err := u.parseTime(req.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := u.parseTime(req.EndTime)
	if err != nil {
		return nil, err
	}
	if startTime != nil && endTime != nil && endTime.Before(*startTime) {
		return nil, ErrWorkoutEndBeforeStart
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	workout, err := u.findWorkout(tx, id)
	if err != nil {
		return nil, err
	}
	if err := u.checkGym(tx, req.Gym); err != nil {
		return nil, err
	}
	if req.Routine != nil {
		if err := u.checkRoutine(tx, *req.Routine, workout.ID); err != nil {
			return nil, err
		}
	}
	targets, err := resolveTargets(tx, u.log, u.targetRepo, req.Target)
	if err != nil {
		return nil, err
	}

	workout.StartTime = startTime
	workout.EndTime = endTime
	workout.GymID = req.Gym
	workout.RoutineID = req.Routine
	workout.Note = ""
	if req.Note != nil {
		workout.Note = *req.Note
	}

	if err := u.workoutRepo.Update(tx, workout); err != nil {
		if isDuplicateKeyError(err, "routine") {
			return nil, ErrRoutineAlreadyAttached
		}
		u.log.Warnf("Failed to update workout: %+v", err)
		return nil, err
	}
	if err := u.workoutRepo.ReplaceTargets(tx, workout, targets); err != nil {
		u.log.Warnf("Failed to replace workout targets: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.load(ctx, id)
}

func (u *workoutUsecase) Delete(ctx context.Context, actorID uuid.UUID, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	workout, err := u.findWorkout(tx, id)
	if err != nil {
		return err
	}

	if err := u.workoutRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete workout: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionWorkoutDelete, "workout", idString(id),
		map[string]interface{}{"gym_id": workout.GymID, "routine_id": workout.RoutineID, "note": workout.Note}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}

// Stop finishes a workout. The end time defaults to now; the other fields
// only change when the request carries a different value. A gym of 0
// keeps the current gym and an empty target list keeps the current targets.
func (u *workoutUsecase) Stop(ctx context.Context, actorID uuid.UUID, req *dto.StopWorkoutRequest) (*dto.WorkoutResponse, error) {
	startTime, err := u.parseTime(req.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := u.parseTime(req.EndTime)
	if err != nil {
		return nil, err
	}
	if endTime == nil {
		now := u.now().In(u.loc).Truncate(time.Minute)
		endTime = &now
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	workout, err := u.findWorkout(tx, req.ID)
	if err != nil {
		return nil, err
	}

	if startTime != nil && (workout.StartTime == nil || !startTime.Equal(*workout.StartTime)) {
		workout.StartTime = startTime
	}
	workout.EndTime = endTime
	if workout.StartTime != nil && workout.EndTime.Before(*workout.StartTime) {
		return nil, ErrWorkoutEndBeforeStart
	}

	if req.Gym != 0 && req.Gym != workout.GymID {
		if err := u.checkGym(tx, req.Gym); err != nil {
			return nil, err
		}
		workout.GymID = req.Gym
	}
	if req.Routine != nil && (workout.RoutineID == nil || *req.Routine != *workout.RoutineID) {
		if err := u.checkRoutine(tx, *req.Routine, workout.ID); err != nil {
			return nil, err
		}
		workout.RoutineID = req.Routine
	}
	if req.Note != nil {
		workout.Note = *req.Note
	}

	if err := u.workoutRepo.Update(tx, workout); err != nil {
		if isDuplicateKeyError(err, "routine") {
			return nil, ErrRoutineAlreadyAttached
		}
		u.log.Warnf("Failed to stop workout: %+v", err)
		return nil, err
	}

	if len(req.Target) > 0 {
		targets, err := resolveTargets(tx, u.log, u.targetRepo, req.Target)
		if err != nil {
			return nil, err
		}
		if err := u.workoutRepo.ReplaceTargets(tx, workout, targets); err != nil {
			u.log.Warnf("Failed to replace workout targets: %+v", err)
			return nil, err
		}
	}

	if err := u.auditService.Record(ctx, tx, &actorID, entity.AuditActionWorkoutStop, entity.JSON{
		"workout_id": workout.ID,
		"minutes":    workout.Minutes(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.events.Finished(ctx, workout)

	return u.load(ctx, workout.ID)
}

// InProcess returns the newest workout that started today in the configured zone.
func (u *workoutUsecase) InProcess(ctx context.Context) (*dto.WorkoutResponse, error) {
	workouts, err := u.workoutRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all workouts: %+v", err)
		return nil, err
	}

	today := u.now()
	for i := range workouts {
		if workouts[i].StartedOn(today, u.loc) {
			return converter.WorkoutToResponse(&workouts[i], u.loc), nil
		}
	}
	return nil, ErrWorkoutNotInProcess
}

func (u *workoutUsecase) Stats(ctx context.Context, interval string) (*dto.WorkoutStatsResponse, error) {
	statsInterval := entity.StatsInterval(strings.ToLower(strings.TrimSpace(interval)))
	from, to, ok := statsInterval.Bounds(u.now(), u.loc)
	if !ok {
		return nil, apperror.UnsupportedInterval(interval)
	}

	db := u.db.WithContext(ctx)
	workouts, err := u.workoutRepo.FindStartedBetween(db, from, to)
	if err != nil {
		u.log.Warnf("Failed to find workouts in interval: %+v", err)
		return nil, err
	}

	var stats entity.WorkoutStats
	stats.WorkoutCount = int64(len(workouts))
	seen := make(map[int64]struct{})
	var routineIDs []int64
	for _, w := range workouts {
		stats.TotalMinutes += int64(w.Minutes())
		if w.RoutineID == nil {
			continue
		}
		if _, ok := seen[*w.RoutineID]; !ok {
			seen[*w.RoutineID] = struct{}{}
			routineIDs = append(routineIDs, *w.RoutineID)
		}
	}
	stats.RoutineCount = int64(len(routineIDs))

	stats.ExerciseCount, err = u.slotRepo.CountByRoutineIDs(db, routineIDs)
	if err != nil {
		u.log.Warnf("Failed to count routine slots: %+v", err)
		return nil, err
	}

	return &dto.WorkoutStatsResponse{
		Interval:      string(statsInterval),
		From:          from.Format(statsDateLayout),
		To:            to.Format(statsDateLayout),
		WorkoutCount:  stats.WorkoutCount,
		RoutineCount:  stats.RoutineCount,
		ExerciseCount: stats.ExerciseCount,
		TotalMinutes:  stats.TotalMinutes,
	}, nil
}

func (u *workoutUsecase) load(ctx context.Context, id int64) (*dto.WorkoutResponse, error) {
	workout, err := u.findWorkout(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	return converter.WorkoutToResponse(workout, u.loc), nil
}

func (u *workoutUsecase) findWorkout(db *gorm.DB, id int64) (*entity.Workout, error) {
	workout, err := u.workoutRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find workout by ID: %+v", err)
		return nil, err
	}
	if workout == nil {
		return nil, ErrWorkoutNotFound
	}
	return workout, nil
}

func (u *workoutUsecase) checkGym(db *gorm.DB, id int64) error {
	gym, err := u.gymRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find gym by ID: %+v", err)
		return err
	}
	if gym == nil {
		return ErrGymNotFound
	}
	return nil
}

// checkRoutine ensures the routine exists and is not bound to a workout other than self.
func (u *workoutUsecase) checkRoutine(db *gorm.DB, id, self int64) error {
	routine, err := u.routineRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find routine by ID: %+v", err)
		return err
	}
	if routine == nil {
		return ErrRoutineNotFound
	}
	if routine.Workout != nil && routine.Workout.ID != self {
		return ErrRoutineAlreadyAttached
	}
	return nil
}

func (u *workoutUsecase) parseTime(raw *string) (*time.Time, error) {
	return parseWallTime(raw, u.loc)
}

// parseWallTime reads a "yyyy-MM-dd HH:mm" value in loc.
// Nil and blank values yield nil.
func parseWallTime(raw *string, loc *time.Location) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(entity.WorkoutTimeLayout, strings.TrimSpace(*raw), loc)
	if err != nil {
		return nil, ErrInvalidWorkoutTimeFormat
	}
	return &t, nil
}
