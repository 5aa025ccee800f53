package usecase

import (
	"context"
	"time"

	"self-fitness/internal/converter"
	"self-fitness/internal/delivery/dto"
	"self-fitness/internal/domain/entity"
	"self-fitness/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PracticeSessionUsecase interface {
	Create(ctx context.Context, req *dto.PracticeSessionRequest) (*dto.PracticeSessionResponse, error)
	GetAll(ctx context.Context) ([]dto.PracticeSessionResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.PracticeSessionResponse, error)
}

type practiceSessionUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	sessionRepo repository.PracticeSessionRepository
	loc         *time.Location
	now         func() time.Time
}

func NewPracticeSessionUsecase(db *gorm.DB, log *logrus.Logger, sessionRepo repository.PracticeSessionRepository, loc *time.Location) PracticeSessionUsecase {
	if loc == nil {
		loc = time.UTC
	}
	return &practiceSessionUsecase{
		db:          db,
		log:         log,
		sessionRepo: sessionRepo,
		loc:         loc,
		now:         time.Now,
	}
}

// Create opens a practice session at the given minute, or now when absent.
func (u *practiceSessionUsecase) Create(ctx context.Context, req *dto.PracticeSessionRequest) (*dto.PracticeSessionResponse, error) {
	startTime, err := parseWallTime(req.StartTime, u.loc)
	if err != nil {
		return nil, err
	}
	if startTime == nil {
		now := u.now().In(u.loc)
		startTime = &now
	}

	session := &entity.PracticeSession{StartTime: startTime.Truncate(time.Minute)}
	if err := u.sessionRepo.Create(u.db.WithContext(ctx), session); err != nil {
		u.log.Warnf("Failed to create practice session: %+v", err)
		return nil, err
	}

	return u.GetByID(ctx, session.ID)
}

func (u *practiceSessionUsecase) GetAll(ctx context.Context) ([]dto.PracticeSessionResponse, error) {
	sessions, err := u.sessionRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all practice sessions: %+v", err)
		return nil, err
	}
	return converter.PracticeSessionsToResponses(sessions, u.loc), nil
}

func (u *practiceSessionUsecase) GetByID(ctx context.Context, id int64) (*dto.PracticeSessionResponse, error) {
	session, err := u.sessionRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find practice session by ID: %+v", err)
		return nil, err
	}
	if session == nil {
		return nil, ErrPracticeSessionNotFound
	}
	return converter.PracticeSessionToResponse(session, u.loc), nil
}
