package usecase

import (
	"errors"
	"strconv"
	"strings"

	"self-fitness/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrInvalidCredentials = apperror.Unauthorized("invalid username or password")
	ErrInvalidToken       = apperror.Unauthorized("invalid or expired token")
	ErrTokenRevoked       = apperror.Unauthorized("token has been revoked")
	ErrWeChatLogin        = apperror.Unauthorized("wechat login failed")

	ErrUserNotFound             = apperror.NotFound("user not found")
	ErrUsernameAlreadyExists    = apperror.AlreadyExists("username already exists")
	ErrEmailAlreadyExists       = apperror.AlreadyExists("email already exists")
	ErrRoleNotFound             = apperror.NotFound("role not found")
	ErrRoleAlreadyExists        = apperror.AlreadyExists("role already exists")
	ErrPermissionNotFound       = apperror.NotFound("permission not found")
	ErrPermissionAlreadyExists  = apperror.AlreadyExists("permission already exists")
	ErrAuditLogNotFound         = apperror.NotFound("audit log not found")
	ErrGymNotFound              = apperror.NotFound("gym not found")
	ErrGymAlreadyExists         = apperror.AlreadyExists("gym already exists")
	ErrGymInUse                 = apperror.IllegalArgument("gym is referenced by workouts")
	ErrMuscleNotFound           = apperror.NotFound("muscle not found")
	ErrTargetNotFound           = apperror.NotFound("target not found")
	ErrTargetAlreadyExists      = apperror.AlreadyExists("target already exists")
	ErrExerciseNotFound         = apperror.NotFound("exercise not found")
	ErrExerciseInUse            = apperror.IllegalArgument("exercise is referenced by routine slots")
	ErrRoutineNotFound          = apperror.NotFound("routine not found")
	ErrWorkoutNotFound          = apperror.NotFound("workout not found")
	ErrWorkoutNotInProcess      = apperror.NotFound("no workout in process today")
	ErrRoutineWorkoutRequired   = apperror.IllegalArgument("workoutId is required")
	ErrRoutineAlreadyAttached   = apperror.AlreadyExists("workout already has a routine")
	ErrInvalidSlotCategory      = apperror.IllegalArgument("unknown slot category")
	ErrNegativeSlotWeight       = apperror.IllegalArgument("weight must not be negative")
	ErrInvalidWorkoutTimeFormat = apperror.IllegalArgument("invalid time format, use yyyy-MM-dd HH:mm")
	ErrWorkoutEndBeforeStart    = apperror.IllegalArgument("endTime must not be before startTime")

	ErrPianoTagNotFound        = apperror.NotFound("piano tag not found")
	ErrPieceNotFound           = apperror.NotFound("piece not found")
	ErrPracticeSessionNotFound = apperror.NotFound("practice session not found")
	ErrInvalidPieceStatus      = apperror.IllegalArgument("unknown piece status")
	ErrInvalidPracticeType     = apperror.IllegalArgument("unknown practice type")
)

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation
// on a constraint containing constraintName
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// missingIDs returns the ids that are not present in found.
func missingIDs[T any](ids []int64, found []T, idOf func(T) int64) []int64 {
	present := make(map[int64]struct{}, len(found))
	for _, f := range found {
		present[idOf(f)] = struct{}{}
	}
	var missing []int64
	for _, id := range ids {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

func idString(id int64) string {
	return strconv.FormatInt(id, 10)
}

func errUnknownInterval(name string) *apperror.Error {
	return apperror.IllegalArgument("unknown interval: %s", name)
}

func errMissing(kind string, ids []int64) *apperror.Error {
	return apperror.NotFound("%s not found: %v", kind, ids)
}
