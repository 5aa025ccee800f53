package usecase

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"self-fitness/internal/domain/entity"
	"self-fitness/internal/infrastructure/wechat"
	"self-fitness/pkg/pagination"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB returns a gorm handle whose only traffic is the transaction
// control the usecases issue; the fake repositories never touch it.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func newTestLogger() *logrus.Logger {
	log, _ := test.NewNullLogger()
	return log
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

// users

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ *gorm.DB, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Update(_ *gorm.DB, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ *gorm.DB, id uuid.UUID) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) find(match func(*entity.User) bool) *entity.User {
	for _, u := range r.users {
		if match(u) {
			return u
		}
	}
	return nil
}

func (r *fakeUserRepo) FindByUsername(_ *gorm.DB, username string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Username == username }), nil
}

func (r *fakeUserRepo) FindByEmail(_ *gorm.DB, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Email != nil && *u.Email == email }), nil
}

func (r *fakeUserRepo) FindByOpenID(_ *gorm.DB, openID string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.OpenID != nil && *u.OpenID == openID }), nil
}

func (r *fakeUserRepo) FindAll(*gorm.DB) ([]entity.User, error) {
	var out []entity.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) AppendRoles(_ *gorm.DB, user *entity.User, roles ...entity.Role) error {
	user.Roles = append(user.Roles, roles...)
	return nil
}

func (r *fakeUserRepo) RemoveRole(_ *gorm.DB, user *entity.User, role *entity.Role) error {
	kept := user.Roles[:0]
	for _, existing := range user.Roles {
		if existing.ID != role.ID {
			kept = append(kept, existing)
		}
	}
	user.Roles = kept
	return nil
}

// roles and permissions

type fakeRoleRepo struct {
	roles []*entity.Role
}

func (r *fakeRoleRepo) Create(_ *gorm.DB, role *entity.Role) error {
	role.ID = int64(len(r.roles) + 1)
	r.roles = append(r.roles, role)
	return nil
}

func (r *fakeRoleRepo) FindByID(_ *gorm.DB, id int64) (*entity.Role, error) {
	for _, role := range r.roles {
		if role.ID == id {
			return role, nil
		}
	}
	return nil, nil
}

func (r *fakeRoleRepo) FindByName(_ *gorm.DB, name string) (*entity.Role, error) {
	for _, role := range r.roles {
		if role.Name == name {
			return role, nil
		}
	}
	return nil, nil
}

func (r *fakeRoleRepo) FindByNames(_ *gorm.DB, names []string) ([]entity.Role, error) {
	var out []entity.Role
	for _, role := range r.roles {
		for _, name := range names {
			if role.Name == name {
				out = append(out, *role)
			}
		}
	}
	return out, nil
}

func (r *fakeRoleRepo) FindAll(*gorm.DB) ([]entity.Role, error) {
	out := make([]entity.Role, len(r.roles))
	for i, role := range r.roles {
		out[i] = *role
	}
	return out, nil
}

func (r *fakeRoleRepo) AppendPermissions(_ *gorm.DB, role *entity.Role, permissions ...entity.Permission) error {
	role.Permissions = append(role.Permissions, permissions...)
	return nil
}

func (r *fakeRoleRepo) RemovePermission(_ *gorm.DB, role *entity.Role, permission *entity.Permission) error {
	kept := role.Permissions[:0]
	for _, p := range role.Permissions {
		if p.ID != permission.ID {
			kept = append(kept, p)
		}
	}
	role.Permissions = kept
	return nil
}

type fakePermissionRepo struct {
	permissions []*entity.Permission
}

func (r *fakePermissionRepo) Create(_ *gorm.DB, permission *entity.Permission) error {
	permission.ID = int64(len(r.permissions) + 1)
	r.permissions = append(r.permissions, permission)
	return nil
}

func (r *fakePermissionRepo) FindByID(_ *gorm.DB, id int64) (*entity.Permission, error) {
	for _, p := range r.permissions {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePermissionRepo) FindByName(_ *gorm.DB, name string) (*entity.Permission, error) {
	for _, p := range r.permissions {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePermissionRepo) FindByNames(_ *gorm.DB, names []string) ([]entity.Permission, error) {
	var out []entity.Permission
	for _, p := range r.permissions {
		for _, name := range names {
			if p.Name == name {
				out = append(out, *p)
			}
		}
	}
	return out, nil
}

func (r *fakePermissionRepo) FindAll(*gorm.DB) ([]entity.Permission, error) {
	out := make([]entity.Permission, len(r.permissions))
	for i, p := range r.permissions {
		out[i] = *p
	}
	return out, nil
}

// audit

type recordedAudit struct {
	userID *uuid.UUID
	action string
}

type fakeAuditService struct {
	entries []recordedAudit
}

func (s *fakeAuditService) Record(_ context.Context, _ *gorm.DB, userID *uuid.UUID, action string, _ entity.JSON) error {
	s.entries = append(s.entries, recordedAudit{userID: userID, action: action})
	return nil
}

func (s *fakeAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action, _, _ string, _ interface{}) error {
	return s.Record(ctx, tx, userID, action, nil)
}

func (s *fakeAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action, _, _ string, _, _ interface{}) error {
	return s.Record(ctx, tx, userID, action, nil)
}

func (s *fakeAuditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action, _, _ string, _ interface{}) error {
	return s.Record(ctx, tx, userID, action, nil)
}

func (s *fakeAuditService) actions() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.action
	}
	return out
}

type fakeAuditLogRepo struct {
	logs []entity.AuditLog
}

func (r *fakeAuditLogRepo) Create(_ *gorm.DB, log *entity.AuditLog) error {
	r.logs = append(r.logs, *log)
	return nil
}

func (r *fakeAuditLogRepo) FindAll(_ *gorm.DB, limit int) ([]entity.AuditLog, error) {
	if limit < len(r.logs) {
		return r.logs[:limit], nil
	}
	return r.logs, nil
}

func (r *fakeAuditLogRepo) FindByID(_ *gorm.DB, id int64) (*entity.AuditLog, error) {
	for i := range r.logs {
		if r.logs[i].ID == id {
			return &r.logs[i], nil
		}
	}
	return nil, nil
}

// wechat

type fakeWeChat struct {
	session *wechat.Session
	err     error
}

func (c *fakeWeChat) Code2Session(context.Context, string) (*wechat.Session, error) {
	return c.session, c.err
}

// lifting

type fakeGymRepo struct {
	gyms map[int64]*entity.Gym
}

func newFakeGymRepo(gyms ...entity.Gym) *fakeGymRepo {
	r := &fakeGymRepo{gyms: map[int64]*entity.Gym{}}
	for i := range gyms {
		g := gyms[i]
		r.gyms[g.ID] = &g
	}
	return r
}

func (r *fakeGymRepo) Create(_ *gorm.DB, gym *entity.Gym) error {
	gym.ID = int64(len(r.gyms) + 1)
	r.gyms[gym.ID] = gym
	return nil
}

func (r *fakeGymRepo) Update(_ *gorm.DB, gym *entity.Gym) error {
	r.gyms[gym.ID] = gym
	return nil
}

func (r *fakeGymRepo) Delete(_ *gorm.DB, id int64) error {
	delete(r.gyms, id)
	return nil
}

func (r *fakeGymRepo) FindByID(_ *gorm.DB, id int64) (*entity.Gym, error) {
	return r.gyms[id], nil
}

func (r *fakeGymRepo) FindByName(_ *gorm.DB, name string) (*entity.Gym, error) {
	for _, g := range r.gyms {
		if g.Name == name {
			return g, nil
		}
	}
	return nil, nil
}

func (r *fakeGymRepo) FindPage(_ *gorm.DB, name string, page pagination.Pageable) ([]entity.Gym, int64, error) {
	var out []entity.Gym
	for _, g := range r.gyms {
		if name == "" || strings.Contains(strings.ToLower(g.Name), strings.ToLower(name)) {
			out = append(out, *g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	total := int64(len(out))
	start := page.Offset()
	if start > len(out) {
		start = len(out)
	}
	end := start + page.Size
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], total, nil
}

type fakeTargetRepo struct {
	targets map[int64]*entity.Target
}

func newFakeTargetRepo(targets ...entity.Target) *fakeTargetRepo {
	r := &fakeTargetRepo{targets: map[int64]*entity.Target{}}
	for i := range targets {
		t := targets[i]
		r.targets[t.ID] = &t
	}
	return r
}

func (r *fakeTargetRepo) Create(_ *gorm.DB, target *entity.Target) error {
	target.ID = int64(len(r.targets) + 1)
	r.targets[target.ID] = target
	return nil
}

func (r *fakeTargetRepo) FindByID(_ *gorm.DB, id int64) (*entity.Target, error) {
	return r.targets[id], nil
}

func (r *fakeTargetRepo) FindByIDs(_ *gorm.DB, ids []int64) ([]entity.Target, error) {
	var out []entity.Target
	for _, id := range ids {
		if t, ok := r.targets[id]; ok {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTargetRepo) FindByName(_ *gorm.DB, name string) (*entity.Target, error) {
	for _, t := range r.targets {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeTargetRepo) FindAll(*gorm.DB) ([]entity.Target, error) {
	var out []entity.Target
	for _, t := range r.targets {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeMuscleRepo struct {
	muscles map[int64]*entity.Muscle
}

func newFakeMuscleRepo(muscles ...entity.Muscle) *fakeMuscleRepo {
	r := &fakeMuscleRepo{muscles: map[int64]*entity.Muscle{}}
	for i := range muscles {
		m := muscles[i]
		r.muscles[m.ID] = &m
	}
	return r
}

func (r *fakeMuscleRepo) Create(_ *gorm.DB, muscle *entity.Muscle) error {
	muscle.ID = int64(len(r.muscles) + 1)
	r.muscles[muscle.ID] = muscle
	return nil
}

func (r *fakeMuscleRepo) Update(_ *gorm.DB, muscle *entity.Muscle) error {
	r.muscles[muscle.ID] = muscle
	return nil
}

func (r *fakeMuscleRepo) Delete(_ *gorm.DB, id int64) error {
	delete(r.muscles, id)
	return nil
}

func (r *fakeMuscleRepo) FindByID(_ *gorm.DB, id int64) (*entity.Muscle, error) {
	return r.muscles[id], nil
}

func (r *fakeMuscleRepo) FindByIDs(_ *gorm.DB, ids []int64) ([]entity.Muscle, error) {
	var out []entity.Muscle
	for _, id := range ids {
		if m, ok := r.muscles[id]; ok {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMuscleRepo) FindPage(_ *gorm.DB, _ string, _ pagination.Pageable) ([]entity.Muscle, int64, error) {
	var out []entity.Muscle
	for _, m := range r.muscles {
		out = append(out, *m)
	}
	return out, int64(len(out)), nil
}

func (r *fakeMuscleRepo) Count(*gorm.DB) (int64, error) {
	return int64(len(r.muscles)), nil
}

type fakeExerciseRepo struct {
	exercises map[int64]*entity.Exercise
}

func newFakeExerciseRepo(exercises ...entity.Exercise) *fakeExerciseRepo {
	r := &fakeExerciseRepo{exercises: map[int64]*entity.Exercise{}}
	for i := range exercises {
		e := exercises[i]
		r.exercises[e.ID] = &e
	}
	return r
}

func (r *fakeExerciseRepo) Create(_ *gorm.DB, exercise *entity.Exercise) error {
	exercise.ID = int64(len(r.exercises) + 1)
	r.exercises[exercise.ID] = exercise
	return nil
}

func (r *fakeExerciseRepo) Update(_ *gorm.DB, exercise *entity.Exercise) error {
	r.exercises[exercise.ID] = exercise
	return nil
}

func (r *fakeExerciseRepo) ReplaceMuscles(_ *gorm.DB, exercise *entity.Exercise, main, support []entity.Muscle) error {
	exercise.MainMuscles = main
	exercise.SupportMuscles = support
	return nil
}

func (r *fakeExerciseRepo) Delete(_ *gorm.DB, id int64) error {
	delete(r.exercises, id)
	return nil
}

func (r *fakeExerciseRepo) FindByID(_ *gorm.DB, id int64) (*entity.Exercise, error) {
	return r.exercises[id], nil
}

func (r *fakeExerciseRepo) FindAll(*gorm.DB) ([]entity.Exercise, error) {
	var out []entity.Exercise
	for _, e := range r.exercises {
		out = append(out, *e)
	}
	return out, nil
}

type fakeRoutineRepo struct {
	routines map[int64]*entity.Routine
	workouts *fakeWorkoutRepo
}

func newFakeRoutineRepo(workouts *fakeWorkoutRepo, routines ...entity.Routine) *fakeRoutineRepo {
	r := &fakeRoutineRepo{routines: map[int64]*entity.Routine{}, workouts: workouts}
	for i := range routines {
		rt := routines[i]
		r.routines[rt.ID] = &rt
	}
	return r
}

func (r *fakeRoutineRepo) Create(_ *gorm.DB, routine *entity.Routine) error {
	routine.ID = int64(len(r.routines) + 1)
	r.routines[routine.ID] = routine
	return nil
}

func (r *fakeRoutineRepo) Update(_ *gorm.DB, routine *entity.Routine) error {
	r.routines[routine.ID] = routine
	return nil
}

func (r *fakeRoutineRepo) ReplaceTargets(_ *gorm.DB, routine *entity.Routine, targets []entity.Target) error {
	routine.Targets = targets
	return nil
}

func (r *fakeRoutineRepo) Delete(_ *gorm.DB, id int64) error {
	delete(r.routines, id)
	return nil
}

func (r *fakeRoutineRepo) FindByID(_ *gorm.DB, id int64) (*entity.Routine, error) {
	routine, ok := r.routines[id]
	if !ok {
		return nil, nil
	}
	out := *routine
	out.Workout = nil
	if r.workouts != nil {
		for _, w := range r.workouts.workouts {
			if w.RoutineID != nil && *w.RoutineID == id {
				wc := *w
				out.Workout = &wc
			}
		}
	}
	return &out, nil
}

func (r *fakeRoutineRepo) FindPage(_ *gorm.DB, _ string, _ pagination.Pageable) ([]entity.Routine, int64, error) {
	var out []entity.Routine
	for _, rt := range r.routines {
		out = append(out, *rt)
	}
	return out, int64(len(out)), nil
}

type fakeSlotRepo struct {
	slots []entity.Slot
}

func (r *fakeSlotRepo) Create(_ *gorm.DB, slot *entity.Slot) error {
	slot.ID = int64(len(r.slots) + 1)
	r.slots = append(r.slots, *slot)
	return nil
}

func (r *fakeSlotRepo) FindByID(_ *gorm.DB, id int64) (*entity.Slot, error) {
	for i := range r.slots {
		if r.slots[i].ID == id {
			return &r.slots[i], nil
		}
	}
	return nil, nil
}

func (r *fakeSlotRepo) CountByRoutineIDs(_ *gorm.DB, routineIDs []int64) (int64, error) {
	var n int64
	for _, s := range r.slots {
		for _, id := range routineIDs {
			if s.RoutineID == id {
				n++
			}
		}
	}
	return n, nil
}

type fakeWorkoutRepo struct {
	workouts map[int64]*entity.Workout
	gyms     *fakeGymRepo
	nextID   int64
}

func newFakeWorkoutRepo(gyms *fakeGymRepo, workouts ...entity.Workout) *fakeWorkoutRepo {
	r := &fakeWorkoutRepo{workouts: map[int64]*entity.Workout{}, gyms: gyms}
	for i := range workouts {
		w := workouts[i]
		r.workouts[w.ID] = &w
		if w.ID > r.nextID {
			r.nextID = w.ID
		}
	}
	return r
}

func (r *fakeWorkoutRepo) Create(_ *gorm.DB, workout *entity.Workout) error {
	r.nextID++
	workout.ID = r.nextID
	stored := *workout
	r.workouts[workout.ID] = &stored
	return nil
}

func (r *fakeWorkoutRepo) Update(_ *gorm.DB, workout *entity.Workout) error {
	stored := *workout
	r.workouts[workout.ID] = &stored
	return nil
}

func (r *fakeWorkoutRepo) ReplaceTargets(_ *gorm.DB, workout *entity.Workout, targets []entity.Target) error {
	workout.Targets = targets
	if stored, ok := r.workouts[workout.ID]; ok {
		stored.Targets = targets
	}
	return nil
}

func (r *fakeWorkoutRepo) AttachRoutine(_ *gorm.DB, workoutID, routineID int64) error {
	if w, ok := r.workouts[workoutID]; ok {
		w.RoutineID = &routineID
	}
	return nil
}

func (r *fakeWorkoutRepo) Delete(_ *gorm.DB, id int64) error {
	delete(r.workouts, id)
	return nil
}

func (r *fakeWorkoutRepo) hydrate(w *entity.Workout) entity.Workout {
	out := *w
	if r.gyms != nil {
		if g, ok := r.gyms.gyms[w.GymID]; ok {
			out.Gym = *g
		}
	}
	return out
}

func (r *fakeWorkoutRepo) FindByID(_ *gorm.DB, id int64) (*entity.Workout, error) {
	w, ok := r.workouts[id]
	if !ok {
		return nil, nil
	}
	out := r.hydrate(w)
	return &out, nil
}

func (r *fakeWorkoutRepo) FindAll(*gorm.DB) ([]entity.Workout, error) {
	var out []entity.Workout
	for _, w := range r.workouts {
		out = append(out, r.hydrate(w))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeWorkoutRepo) FindStartedBetween(_ *gorm.DB, from, to time.Time) ([]entity.Workout, error) {
	var out []entity.Workout
	for _, w := range r.workouts {
		if w.StartTime != nil && !w.StartTime.Before(from) && w.StartTime.Before(to) {
			out = append(out, *w)
		}
	}
	return out, nil
}

type fakeWorkoutEvents struct {
	started  []int64
	finished []int64
}

func (e *fakeWorkoutEvents) Started(_ context.Context, w *entity.Workout) {
	e.started = append(e.started, w.ID)
}

func (e *fakeWorkoutEvents) Finished(_ context.Context, w *entity.Workout) {
	e.finished = append(e.finished, w.ID)
}

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

// piano

type fakePianoTagRepo struct {
	tags   map[int64]*entity.PianoTag
	nextID int64
}

func newFakePianoTagRepo(tags ...entity.PianoTag) *fakePianoTagRepo {
	r := &fakePianoTagRepo{tags: map[int64]*entity.PianoTag{}}
	for i := range tags {
		t := tags[i]
		r.tags[t.ID] = &t
		if t.ID > r.nextID {
			r.nextID = t.ID
		}
	}
	return r
}

func (r *fakePianoTagRepo) Create(_ *gorm.DB, tag *entity.PianoTag) error {
	r.nextID++
	tag.ID = r.nextID
	r.tags[tag.ID] = tag
	return nil
}

func (r *fakePianoTagRepo) Delete(_ *gorm.DB, id int64) error {
	delete(r.tags, id)
	return nil
}

func (r *fakePianoTagRepo) FindByID(_ *gorm.DB, id int64) (*entity.PianoTag, error) {
	return r.tags[id], nil
}

func (r *fakePianoTagRepo) FindByIDs(_ *gorm.DB, ids []int64) ([]entity.PianoTag, error) {
	var out []entity.PianoTag
	for _, id := range ids {
		if t, ok := r.tags[id]; ok {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakePianoTagRepo) FindByName(_ *gorm.DB, name string) (*entity.PianoTag, error) {
	for _, t := range r.tags {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakePianoTagRepo) FindAll(*gorm.DB) ([]entity.PianoTag, error) {
	var out []entity.PianoTag
	for _, t := range r.tags {
		out = append(out, *t)
	}
	return out, nil
}

type fakePieceRepo struct {
	pieces map[int64]*entity.Piece
}

func newFakePieceRepo(pieces ...entity.Piece) *fakePieceRepo {
	r := &fakePieceRepo{pieces: map[int64]*entity.Piece{}}
	for i := range pieces {
		p := pieces[i]
		r.pieces[p.ID] = &p
	}
	return r
}

func (r *fakePieceRepo) Create(_ *gorm.DB, piece *entity.Piece) error {
	piece.ID = int64(len(r.pieces) + 1)
	r.pieces[piece.ID] = piece
	return nil
}

func (r *fakePieceRepo) ReplaceTags(_ *gorm.DB, piece *entity.Piece, tags []entity.PianoTag) error {
	r.pieces[piece.ID].Tags = tags
	return nil
}

func (r *fakePieceRepo) FindByID(_ *gorm.DB, id int64) (*entity.Piece, error) {
	p, ok := r.pieces[id]
	if !ok {
		return nil, nil
	}
	out := *p
	return &out, nil
}

func (r *fakePieceRepo) FindAll(*gorm.DB) ([]entity.Piece, error) {
	var out []entity.Piece
	for _, p := range r.pieces {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakePracticeSessionRepo struct {
	sessions  map[int64]*entity.PracticeSession
	piano     *fakePianoPracticeRepo
	solfeggio *fakeSolfeggioPracticeRepo
}

func newFakePracticeSessionRepo(sessions ...entity.PracticeSession) *fakePracticeSessionRepo {
	r := &fakePracticeSessionRepo{sessions: map[int64]*entity.PracticeSession{}}
	for i := range sessions {
		s := sessions[i]
		r.sessions[s.ID] = &s
	}
	return r
}

func (r *fakePracticeSessionRepo) Create(_ *gorm.DB, session *entity.PracticeSession) error {
	session.ID = int64(len(r.sessions) + 1)
	r.sessions[session.ID] = session
	return nil
}

func (r *fakePracticeSessionRepo) hydrate(s *entity.PracticeSession) entity.PracticeSession {
	out := *s
	if r.piano != nil {
		for _, p := range r.piano.practices {
			if p.SessionID == s.ID {
				out.PianoPractices = append(out.PianoPractices, *p)
			}
		}
	}
	if r.solfeggio != nil {
		for _, p := range r.solfeggio.practices {
			if p.SessionID == s.ID {
				out.SolfeggioPractices = append(out.SolfeggioPractices, *p)
			}
		}
	}
	return out
}

func (r *fakePracticeSessionRepo) FindByID(_ *gorm.DB, id int64) (*entity.PracticeSession, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	out := r.hydrate(s)
	return &out, nil
}

func (r *fakePracticeSessionRepo) FindAll(*gorm.DB) ([]entity.PracticeSession, error) {
	var out []entity.PracticeSession
	for _, s := range r.sessions {
		out = append(out, r.hydrate(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.After(out[j].StartTime) })
	return out, nil
}

type fakePianoPracticeRepo struct {
	practices map[int64]*entity.PianoPractice
}

func newFakePianoPracticeRepo() *fakePianoPracticeRepo {
	return &fakePianoPracticeRepo{practices: map[int64]*entity.PianoPractice{}}
}

func (r *fakePianoPracticeRepo) Create(_ *gorm.DB, practice *entity.PianoPractice) error {
	practice.ID = int64(len(r.practices) + 1)
	r.practices[practice.ID] = practice
	return nil
}

func (r *fakePianoPracticeRepo) ReplaceTags(_ *gorm.DB, practice *entity.PianoPractice, tags []entity.PianoTag) error {
	r.practices[practice.ID].Tags = tags
	return nil
}

func (r *fakePianoPracticeRepo) FindByID(_ *gorm.DB, id int64) (*entity.PianoPractice, error) {
	return r.practices[id], nil
}

type fakeSolfeggioPracticeRepo struct {
	practices map[int64]*entity.SolfeggioPractice
}

func newFakeSolfeggioPracticeRepo() *fakeSolfeggioPracticeRepo {
	return &fakeSolfeggioPracticeRepo{practices: map[int64]*entity.SolfeggioPractice{}}
}

func (r *fakeSolfeggioPracticeRepo) Create(_ *gorm.DB, practice *entity.SolfeggioPractice) error {
	practice.ID = int64(len(r.practices) + 1)
	r.practices[practice.ID] = practice
	return nil
}

func (r *fakeSolfeggioPracticeRepo) ReplaceTags(_ *gorm.DB, practice *entity.SolfeggioPractice, tags []entity.PianoTag) error {
	r.practices[practice.ID].Tags = tags
	return nil
}

func (r *fakeSolfeggioPracticeRepo) FindByID(_ *gorm.DB, id int64) (*entity.SolfeggioPractice, error) {
	return r.practices[id], nil
}
