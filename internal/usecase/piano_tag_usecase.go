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

type PianoTagUsecase interface {
	Create(ctx context.Context, req *dto.PianoTagRequest) (*dto.PianoTagResponse, error)
	GetAll(ctx context.Context) ([]dto.PianoTagResponse, error)
	Delete(ctx context.Context, id int64) error
}

type pianoTagUsecase struct {
	db      *gorm.DB
	log     *logrus.Logger
	tagRepo repository.PianoTagRepository
}

func NewPianoTagUsecase(db *gorm.DB, log *logrus.Logger, tagRepo repository.PianoTagRepository) PianoTagUsecase {
	return &pianoTagUsecase{
		db:      db,
		log:     log,
		tagRepo: tagRepo,
	}
}

// Create returns the tag with the given name, creating it when absent.
func (u *pianoTagUsecase) Create(ctx context.Context, req *dto.PianoTagRequest) (*dto.PianoTagResponse, error) {
	db := u.db.WithContext(ctx)
	name := strings.TrimSpace(req.Name)

	existing, err := u.tagRepo.FindByName(db, name)
	if err != nil {
		u.log.Warnf("Failed to find piano tag by name: %+v", err)
		return nil, err
	}
	if existing != nil {
		return converter.PianoTagToResponse(existing), nil
	}

	tag := &entity.PianoTag{Name: name}
	if err := u.tagRepo.Create(db, tag); err != nil {
		if !isDuplicateKeyError(err, "name") {
			u.log.Warnf("Failed to create piano tag: %+v", err)
			return nil, err
		}
		// lost a race with a concurrent create
		existing, err = u.tagRepo.FindByName(db, name)
		if err != nil {
			u.log.Warnf("Failed to find piano tag by name: %+v", err)
			return nil, err
		}
		if existing == nil {
			return nil, ErrPianoTagNotFound
		}
		tag = existing
	}

	return converter.PianoTagToResponse(tag), nil
}

func (u *pianoTagUsecase) GetAll(ctx context.Context) ([]dto.PianoTagResponse, error) {
	tags, err := u.tagRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all piano tags: %+v", err)
		return nil, err
	}
	return converter.PianoTagsToResponses(tags), nil
}

// Delete removes the tag from every piece and practice. Unknown ids are ignored.
func (u *pianoTagUsecase) Delete(ctx context.Context, id int64) error {
	db := u.db.WithContext(ctx)
	tag, err := u.tagRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find piano tag by ID: %+v", err)
		return err
	}
	if tag == nil {
		return nil
	}
	if err := u.tagRepo.Delete(db, id); err != nil {
		u.log.Warnf("Failed to delete piano tag: %+v", err)
		return err
	}
	return nil
}

// knownTags loads the tags with the given ids, silently dropping unknown ones.
func knownTags(db *gorm.DB, log *logrus.Logger, tagRepo repository.PianoTagRepository, ids []int64) ([]entity.PianoTag, error) {
	if len(ids) == 0 {
		return []entity.PianoTag{}, nil
	}
	tags, err := tagRepo.FindByIDs(db, ids)
	if err != nil {
		log.Warnf("Failed to find piano tags: %+v", err)
		return nil, err
	}
	return tags, nil
}
