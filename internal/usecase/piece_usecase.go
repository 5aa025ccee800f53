package usecase

import (
	"context"
	"strings"

	"self-fitness/internal/converter"
	"self-fitness/internal/delivery/dto"
	"self-fitness/internal/domain/entity"
	"self-fitness/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PieceUsecase interface {
	Create(ctx context.Context, req *dto.PieceRequest) (*dto.PieceResponse, error)
	GetAll(ctx context.Context) ([]dto.PieceResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.PieceResponse, error)
}

type pieceUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	pieceRepo repository.PieceRepository
	tagRepo   repository.PianoTagRepository
}

func NewPieceUsecase(db *gorm.DB, log *logrus.Logger, pieceRepo repository.PieceRepository, tagRepo repository.PianoTagRepository) PieceUsecase {
	return &pieceUsecase{
		db:        db,
		log:       log,
		pieceRepo: pieceRepo,
		tagRepo:   tagRepo,
	}
}

// Create adds a piece to the repertoire. Unknown tag ids are dropped.
func (u *pieceUsecase) Create(ctx context.Context, req *dto.PieceRequest) (*dto.PieceResponse, error) {
	status, ok := entity.ParsePieceStatus(req.Status)
	if !ok {
		return nil, ErrInvalidPieceStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	tags, err := knownTags(tx, u.log, u.tagRepo, req.Tags)
	if err != nil {
		return nil, err
	}

	piece := &entity.Piece{
		Title:  strings.TrimSpace(req.Title),
		Status: status,
	}
	if req.Composer != nil && strings.TrimSpace(*req.Composer) != "" {
		composer := strings.TrimSpace(*req.Composer)
		piece.Composer = &composer
	}

	if err := u.pieceRepo.Create(tx, piece); err != nil {
		u.log.Warnf("Failed to create piece: %+v", err)
		return nil, err
	}
	if err := u.pieceRepo.ReplaceTags(tx, piece, tags); err != nil {
		u.log.Warnf("Failed to set piece tags: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.GetByID(ctx, piece.ID)
}

func (u *pieceUsecase) GetAll(ctx context.Context) ([]dto.PieceResponse, error) {
	pieces, err := u.pieceRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all pieces: %+v", err)
		return nil, err
	}
	return converter.PiecesToResponses(pieces), nil
}

func (u *pieceUsecase) GetByID(ctx context.Context, id int64) (*dto.PieceResponse, error) {
	piece, err := u.pieceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find piece by ID: %+v", err)
		return nil, err
	}
	if piece == nil {
		return nil, ErrPieceNotFound
	}
	return converter.PieceToResponse(piece), nil
}
