package repository

import (
	"self-fitness/internal/domain/entity"
	domainRepo "self-fitness/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type pianoTagRepository struct{}

func NewPianoTagRepository() domainRepo.PianoTagRepository {
	return &pianoTagRepository{}
}

func (r *pianoTagRepository) Create(db *gorm.DB, tag *entity.PianoTag) error {
	return db.Create(tag).Error
}

// Delete removes the tag. Its links to pieces and practices cascade in the schema.
func (r *pianoTagRepository) Delete(db *gorm.DB, id int64) error {
	return db.Where("id = ?", id).Delete(&entity.PianoTag{}).Error
}

func (r *pianoTagRepository) FindByID(db *gorm.DB, id int64) (*entity.PianoTag, error) {
	return first[entity.PianoTag](db.Where("id = ?", id))
}

func (r *pianoTagRepository) FindByIDs(db *gorm.DB, ids []int64) ([]entity.PianoTag, error) {
	var tags []entity.PianoTag
	if len(ids) == 0 {
		return tags, nil
	}
	if err := db.Where("id IN ?", ids).Order("id ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *pianoTagRepository) FindByName(db *gorm.DB, name string) (*entity.PianoTag, error) {
	return first[entity.PianoTag](db.Where("name = ?", name))
}

func (r *pianoTagRepository) FindAll(db *gorm.DB) ([]entity.PianoTag, error) {
	var tags []entity.PianoTag
	if err := db.Order("id ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

type pieceRepository struct{}

func NewPieceRepository() domainRepo.PieceRepository {
	return &pieceRepository{}
}

func (r *pieceRepository) Create(db *gorm.DB, piece *entity.Piece) error {
	return db.Omit(clause.Associations).Create(piece).Error
}

func (r *pieceRepository) ReplaceTags(db *gorm.DB, piece *entity.Piece, tags []entity.PianoTag) error {
	return db.Model(piece).Omit("Tags.*").Association("Tags").Replace(tags)
}

func (r *pieceRepository) FindByID(db *gorm.DB, id int64) (*entity.Piece, error) {
	return first[entity.Piece](db.Preload("Tags").Where("id = ?", id))
}

func (r *pieceRepository) FindAll(db *gorm.DB) ([]entity.Piece, error) {
	var pieces []entity.Piece
	if err := db.Preload("Tags").Order("id ASC").Find(&pieces).Error; err != nil {
		return nil, err
	}
	return pieces, nil
}

type practiceSessionRepository struct{}

func NewPracticeSessionRepository() domainRepo.PracticeSessionRepository {
	return &practiceSessionRepository{}
}

func preloadPracticeSession(db *gorm.DB) *gorm.DB {
	return db.
		Preload("PianoPractices", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("PianoPractices.Piece.Tags").
		Preload("PianoPractices.Tags").
		Preload("SolfeggioPractices", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("SolfeggioPractices.Tags")
}

func (r *practiceSessionRepository) Create(db *gorm.DB, session *entity.PracticeSession) error {
	return db.Omit(clause.Associations).Create(session).Error
}

func (r *practiceSessionRepository) FindByID(db *gorm.DB, id int64) (*entity.PracticeSession, error) {
	return first[entity.PracticeSession](preloadPracticeSession(db).Where("id = ?", id))
}

func (r *practiceSessionRepository) FindAll(db *gorm.DB) ([]entity.PracticeSession, error) {
	var sessions []entity.PracticeSession
	if err := preloadPracticeSession(db).Order("start_time DESC, id DESC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

type pianoPracticeRepository struct{}

func NewPianoPracticeRepository() domainRepo.PianoPracticeRepository {
	return &pianoPracticeRepository{}
}

func (r *pianoPracticeRepository) Create(db *gorm.DB, practice *entity.PianoPractice) error {
	return db.Omit(clause.Associations).Create(practice).Error
}

func (r *pianoPracticeRepository) ReplaceTags(db *gorm.DB, practice *entity.PianoPractice, tags []entity.PianoTag) error {
	return db.Model(practice).Omit("Tags.*").Association("Tags").Replace(tags)
}

func (r *pianoPracticeRepository) FindByID(db *gorm.DB, id int64) (*entity.PianoPractice, error) {
	return first[entity.PianoPractice](db.Preload("Piece.Tags").Preload("Tags").Where("id = ?", id))
}

type solfeggioPracticeRepository struct{}

func NewSolfeggioPracticeRepository() domainRepo.SolfeggioPracticeRepository {
	return &solfeggioPracticeRepository{}
}

func (r *solfeggioPracticeRepository) Create(db *gorm.DB, practice *entity.SolfeggioPractice) error {
	return db.Omit(clause.Associations).Create(practice).Error
}

func (r *solfeggioPracticeRepository) ReplaceTags(db *gorm.DB, practice *entity.SolfeggioPractice, tags []entity.PianoTag) error {
	return db.Model(practice).Omit("Tags.*").Association("Tags").Replace(tags)
}

func (r *solfeggioPracticeRepository) FindByID(db *gorm.DB, id int64) (*entity.SolfeggioPractice, error) {
	return first[entity.SolfeggioPractice](db.Preload("Tags").Where("id = ?", id))
}
