package http

import (
	"net/http"

	"self-fitness/internal/delivery/http/handler"
	"self-fitness/internal/delivery/http/middleware"
	"self-fitness/internal/observability"
	"self-fitness/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Handlers groups every HTTP handler mounted by the router.
type Handlers struct {
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Role       *handler.RoleHandler
	Permission *handler.PermissionHandler
	AuditLog   *handler.AuditLogHandler
	Gym        *handler.GymHandler
	Muscle     *handler.MuscleHandler
	Target     *handler.TargetHandler
	Exercise   *handler.ExerciseHandler
	Routine    *handler.RoutineHandler
	Workout    *handler.WorkoutHandler
	Piano      *handler.PianoHandler
	Health     *handler.HealthHandler
}

type Router struct {
	router         *mux.Router
	log            *logrus.Logger
	handlers       Handlers
	authMiddleware *middleware.AuthMiddleware
	corsMiddleware *middleware.CORSMiddleware
	loginLimiter   *middleware.RateLimiter
	authorities    middleware.AuthorityResolver
	metrics        *observability.Metrics
}

func NewRouter(
	log *logrus.Logger,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loginLimiter *middleware.RateLimiter,
	authorities middleware.AuthorityResolver,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		router:         mux.NewRouter(),
		log:            log,
		handlers:       handlers,
		authMiddleware: authMiddleware,
		corsMiddleware: corsMiddleware,
		loginLimiter:   loginLimiter,
		authorities:    authorities,
		metrics:        metrics,
	}
}

func (r *Router) Setup() *mux.Router {
	h := r.handlers

	// Middleware order: recover -> request log -> metrics -> CORS
	r.router.Use(middleware.Recover(r.log))
	r.router.Use(middleware.NewLoggingMiddleware(r.log).Handle)
	r.router.Use(r.metrics.InstrumentHandler)
	r.router.Use(r.corsMiddleware.Handle)

	r.router.NotFoundHandler = r.corsMiddleware.Handle(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "Route not found")
	}))
	r.router.MethodNotAllowedHandler = r.methodNotAllowed()

	// preflight requests are answered by the CORS middleware. A matcher func
	// instead of Methods keeps other verbs from registering a method mismatch
	// on every path.
	r.router.PathPrefix("/").MatcherFunc(func(req *http.Request, _ *mux.RouteMatch) bool {
		return req.Method == http.MethodOptions
	}).HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.router.Handle("/metrics", r.metrics.Handler()).Methods(http.MethodGet)

	api := r.subrouter(r.router, "/api")
	api.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)

	// Auth routes (public)
	auth := r.subrouter(api, "/auth")
	login := http.HandlerFunc(h.Auth.Authenticate)
	auth.Handle("/authenticate", r.loginLimiter.Handle(login)).Methods(http.MethodPost)
	auth.Handle("/login", r.loginLimiter.Handle(login)).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", h.Auth.RefreshToken).Methods(http.MethodPost)
	auth.HandleFunc("/wechat/login", h.Auth.WeChatLogin).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := r.subrouter(api, "/auth")
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", h.Auth.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", h.Auth.GetCurrentUser).Methods(http.MethodGet)

	// RBAC management
	users := r.subrouter(api, "/users")
	users.Use(r.authMiddleware.Authenticate)
	users.HandleFunc("/current", h.User.GetCurrentUser).Methods(http.MethodGet)
	users.Handle("/current/update", r.require(h.User.UpdateCurrentUser, "user:update")).Methods(http.MethodPost)
	users.Handle("", r.require(h.User.CreateUser, "user:create")).Methods(http.MethodPost)
	users.Handle("", r.require(h.User.GetAllUsers, "user:read")).Methods(http.MethodGet)
	users.Handle("/{id}", r.require(h.User.GetUser, "user:read")).Methods(http.MethodGet)
	users.Handle("/{id}/roles/assign", r.require(h.User.AssignRole, "user:manage_roles")).Methods(http.MethodPost)
	users.Handle("/{id}/roles/remove", r.require(h.User.RemoveRole, "user:manage_roles")).Methods(http.MethodPost)

	roles := r.subrouter(api, "/roles")
	roles.Use(r.authMiddleware.Authenticate)
	roles.Handle("", r.require(h.Role.CreateRole, "role:manage")).Methods(http.MethodPost)
	roles.Handle("", r.require(h.Role.GetAllRoles, "role:manage", "role:read")).Methods(http.MethodGet)
	roles.Handle("/{id}", r.require(h.Role.GetRole, "role:manage", "role:read")).Methods(http.MethodGet)
	roles.Handle("/{id}/permissions/assign", r.require(h.Role.AssignPermission, "role:manage")).Methods(http.MethodPost)
	roles.Handle("/{id}/permissions/remove", r.require(h.Role.RemovePermission, "role:manage")).Methods(http.MethodPost)

	permissions := r.subrouter(api, "/permissions")
	permissions.Use(r.authMiddleware.Authenticate)
	permissions.Handle("", r.require(h.Permission.CreatePermission, "permission:manage")).Methods(http.MethodPost)
	permissions.Handle("", r.require(h.Permission.GetAllPermissions, "permission:manage", "permission:read")).Methods(http.MethodGet)
	permissions.Handle("/{id}", r.require(h.Permission.GetPermission, "permission:manage", "permission:read")).Methods(http.MethodGet)

	// Audit logs (admin only)
	audit := r.subrouter(api, "/audit-logs")
	audit.Use(r.authMiddleware.Authenticate)
	audit.Use(middleware.RequireAdmin(r.authorities))
	audit.HandleFunc("", h.AuditLog.GetAllAuditLogs).Methods(http.MethodGet)
	audit.HandleFunc("/{id}", h.AuditLog.GetAuditLog).Methods(http.MethodGet)

	// Lifting (any authenticated user)
	lifting := r.subrouter(api, "/lifting")
	lifting.Use(r.authMiddleware.Authenticate)

	lifting.HandleFunc("/gym", h.Gym.CreateGym).Methods(http.MethodPost)
	lifting.HandleFunc("/gym", h.Gym.GetAllGyms).Methods(http.MethodGet)
	lifting.HandleFunc("/gym/{id}", h.Gym.GetGym).Methods(http.MethodGet)
	lifting.HandleFunc("/gym/{id}", h.Gym.UpdateGym).Methods(http.MethodPut)
	lifting.HandleFunc("/gym/{id}", h.Gym.DeleteGym).Methods(http.MethodDelete)

	lifting.HandleFunc("/muscle", h.Muscle.CreateMuscle).Methods(http.MethodPost)
	lifting.HandleFunc("/muscle", h.Muscle.GetAllMuscles).Methods(http.MethodGet)
	lifting.HandleFunc("/muscle/{id}", h.Muscle.GetMuscle).Methods(http.MethodGet)
	lifting.HandleFunc("/muscle/{id}", h.Muscle.UpdateMuscle).Methods(http.MethodPut)
	lifting.HandleFunc("/muscle/{id}", h.Muscle.DeleteMuscle).Methods(http.MethodDelete)

	lifting.HandleFunc("/target", h.Target.CreateTarget).Methods(http.MethodPost)
	lifting.HandleFunc("/target", h.Target.GetAllTargets).Methods(http.MethodGet)

	lifting.HandleFunc("/exercise", h.Exercise.CreateExercise).Methods(http.MethodPost)
	lifting.HandleFunc("/exercise", h.Exercise.GetAllExercises).Methods(http.MethodGet)
	lifting.HandleFunc("/exercise/{id}", h.Exercise.GetExercise).Methods(http.MethodGet)
	lifting.HandleFunc("/exercise/{id}", h.Exercise.UpdateExercise).Methods(http.MethodPut)
	lifting.HandleFunc("/exercise/{id}", h.Exercise.DeleteExercise).Methods(http.MethodDelete)

	lifting.HandleFunc("/routine", h.Routine.CreateRoutine).Methods(http.MethodPost)
	lifting.HandleFunc("/routine", h.Routine.GetAllRoutines).Methods(http.MethodGet)
	lifting.HandleFunc("/routine/template", h.Routine.CreateTemplate).Methods(http.MethodPost)
	lifting.HandleFunc("/routine/exercise", h.Routine.AddSlot).Methods(http.MethodPost)
	lifting.HandleFunc("/routine/{id:[0-9]+}", h.Routine.GetRoutine).Methods(http.MethodGet)
	lifting.HandleFunc("/routine/{id:[0-9]+}", h.Routine.UpdateRoutine).Methods(http.MethodPut)
	lifting.HandleFunc("/routine/{id:[0-9]+}", h.Routine.DeleteRoutine).Methods(http.MethodDelete)

	lifting.HandleFunc("/workout", h.Workout.StartWorkout).Methods(http.MethodPost)
	lifting.HandleFunc("/workout", h.Workout.GetAllWorkouts).Methods(http.MethodGet)
	lifting.HandleFunc("/workout/stop", h.Workout.StopWorkout).Methods(http.MethodPost)
	lifting.HandleFunc("/workout/in-process", h.Workout.GetInProcessWorkout).Methods(http.MethodGet)
	lifting.HandleFunc("/workout/stats", h.Workout.GetStats).Methods(http.MethodGet)
	lifting.HandleFunc("/workout/{id:[0-9]+}", h.Workout.GetWorkout).Methods(http.MethodGet)
	lifting.HandleFunc("/workout/{id:[0-9]+}", h.Workout.UpdateWorkout).Methods(http.MethodPut)
	lifting.HandleFunc("/workout/{id:[0-9]+}", h.Workout.DeleteWorkout).Methods(http.MethodDelete)

	// Piano practice (any authenticated user)
	piano := r.subrouter(api, "/piano")
	piano.Use(r.authMiddleware.Authenticate)

	piano.HandleFunc("/tag", h.Piano.CreateTag).Methods(http.MethodPost)
	piano.HandleFunc("/tag", h.Piano.GetAllTags).Methods(http.MethodGet)
	piano.HandleFunc("/tag/{id}", h.Piano.DeleteTag).Methods(http.MethodDelete)

	piano.HandleFunc("/piece", h.Piano.CreatePiece).Methods(http.MethodPost)
	piano.HandleFunc("/piece", h.Piano.GetAllPieces).Methods(http.MethodGet)
	piano.HandleFunc("/piece/{id}", h.Piano.GetPiece).Methods(http.MethodGet)

	piano.HandleFunc("/practice-session", h.Piano.CreatePracticeSession).Methods(http.MethodPost)
	piano.HandleFunc("/practice-session", h.Piano.GetAllPracticeSessions).Methods(http.MethodGet)
	piano.HandleFunc("/practice-session/{id}", h.Piano.GetPracticeSession).Methods(http.MethodGet)

	piano.HandleFunc("/piano-practice", h.Piano.CreatePianoPractice).Methods(http.MethodPost)
	piano.HandleFunc("/solfeggio-practice", h.Piano.CreateSolfeggioPractice).Methods(http.MethodPost)

	return r.router
}

// subrouter mounts prefix under parent. Subrouters answer a method mismatch
// themselves, otherwise mux reports it as an unknown route.
func (r *Router) subrouter(parent *mux.Router, prefix string) *mux.Router {
	sub := parent.PathPrefix(prefix).Subrouter()
	sub.MethodNotAllowedHandler = r.methodNotAllowed()
	return sub
}

func (r *Router) methodNotAllowed() http.Handler {
	return r.corsMiddleware.Handle(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.MethodNotAllowed(w, req.Method+" is not supported on "+req.URL.Path)
	}))
}

func (r *Router) require(fn http.HandlerFunc, authorities ...string) http.Handler {
	return middleware.RequirePermission(r.authorities, authorities...)(fn)
}
