package usecase

import (
	"context"

	"self-fitness/internal/converter"
	"self-fitness/internal/delivery/dto"
	"self-fitness/internal/domain/entity"
	"self-fitness/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PracticeUsecase records what was practiced inside a session.
type PracticeUsecase interface {
	CreatePianoPractice(ctx context.Context, req *dto.PianoPracticeRequest) (*dto.PianoPracticeResponse, error)
	CreateSolfeggioPractice(ctx context.Context, req *dto.SolfeggioPracticeRequest) (*dto.SolfeggioPracticeResponse, error)
}

type practiceUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	sessionRepo   repository.PracticeSessionRepository
	pieceRepo     repository.PieceRepository
	tagRepo       repository.PianoTagRepository
	pianoRepo     repository.PianoPracticeRepository
	solfeggioRepo repository.SolfeggioPracticeRepository
}

func NewPracticeUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	sessionRepo repository.PracticeSessionRepository,
	pieceRepo repository.PieceRepository,
	tagRepo repository.PianoTagRepository,
	pianoRepo repository.PianoPracticeRepository,
	solfeggioRepo repository.SolfeggioPracticeRepository,
) PracticeUsecase {
	return &practiceUsecase{
		db:            db,
		log:           log,
		sessionRepo:   sessionRepo,
		pieceRepo:     pieceRepo,
		tagRepo:       tagRepo,
		pianoRepo:     pianoRepo,
		solfeggioRepo: solfeggioRepo,
	}
}

func (u *practiceUsecase) CreatePianoPractice(ctx context.Context, req *dto.PianoPracticeRequest) (*dto.PianoPracticeResponse, error) {
	practiceType, ok := entity.ParsePracticeType(req.Type)
	if !ok {
		return nil, ErrInvalidPracticeType
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.checkSession(tx, req.Session); err != nil {
		return nil, err
	}
	piece, err := u.pieceRepo.FindByID(tx, req.Piece)
	if err != nil {
		u.log.Warnf("Failed to find piece by ID: %+v", err)
		return nil, err
	}
	if piece == nil {
		return nil, ErrPieceNotFound
	}
	tags, err := knownTags(tx, u.log, u.tagRepo, req.Tags)
	if err != nil {
		return nil, err
	}

	practice := &entity.PianoPractice{
		SessionID: req.Session,
		PieceID:   &piece.ID,
		Minutes:   req.Minutes,
		Note:      req.Note,
		BPM:       req.BPM,
		Type:      practiceType,
	}
	if err := u.pianoRepo.Create(tx, practice); err != nil {
		u.log.Warnf("Failed to create piano practice: %+v", err)
		return nil, err
	}
	if err := u.pianoRepo.ReplaceTags(tx, practice, tags); err != nil {
		u.log.Warnf("Failed to set piano practice tags: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	practice.Piece = piece
	practice.Tags = tags
	return converter.PianoPracticeToResponse(practice), nil
}

// CreateSolfeggioPractice stores the trained intervals as a set ordered by size.
func (u *practiceUsecase) CreateSolfeggioPractice(ctx context.Context, req *dto.SolfeggioPracticeRequest) (*dto.SolfeggioPracticeResponse, error) {
	intervals, bad, ok := entity.NormalizeIntervals(req.Intervals)
	if !ok {
		return nil, errUnknownInterval(bad)
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.checkSession(tx, req.Session); err != nil {
		return nil, err
	}
	tags, err := knownTags(tx, u.log, u.tagRepo, req.Tags)
	if err != nil {
		return nil, err
	}

	practice := &entity.SolfeggioPractice{
		SessionID: req.Session,
		Minutes:   req.Minutes,
		Intervals: intervals,
	}
	if err := u.solfeggioRepo.Create(tx, practice); err != nil {
		u.log.Warnf("Failed to create solfeggio practice: %+v", err)
		return nil, err
	}
	if err := u.solfeggioRepo.ReplaceTags(tx, practice, tags); err != nil {
		u.log.Warnf("Failed to set solfeggio practice tags: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	practice.Tags = tags
	return converter.SolfeggioPracticeToResponse(practice), nil
}

func (u *practiceUsecase) checkSession(db *gorm.DB, id int64) error {
	session, err := u.sessionRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find practice session by ID: %+v", err)
		return err
	}
	if session == nil {
		return ErrPracticeSessionNotFound
	}
	return nil
}
