package repository

import (
	"self-fitness/internal/domain/entity"

	"gorm.io/gorm"
)

type PianoTagRepository interface {
	Create(db *gorm.DB, tag *entity.PianoTag) error
	Delete(db *gorm.DB, id int64) error
	FindByID(db *gorm.DB, id int64) (*entity.PianoTag, error)
	FindByIDs(db *gorm.DB, ids []int64) ([]entity.PianoTag, error)
	FindByName(db *gorm.DB, name string) (*entity.PianoTag, error)
	FindAll(db *gorm.DB) ([]entity.PianoTag, error)
}

type PieceRepository interface {
	Create(db *gorm.DB, piece *entity.Piece) error
	ReplaceTags(db *gorm.DB, piece *entity.Piece, tags []entity.PianoTag) error
	FindByID(db *gorm.DB, id int64) (*entity.Piece, error)
	FindAll(db *gorm.DB) ([]entity.Piece, error)
}

type PracticeSessionRepository interface {
	Create(db *gorm.DB, session *entity.PracticeSession) error
	FindByID(db *gorm.DB, id int64) (*entity.PracticeSession, error)
	FindAll(db *gorm.DB) ([]entity.PracticeSession, error)
}

type PianoPracticeRepository interface {
	Create(db *gorm.DB, practice *entity.PianoPractice) error
	ReplaceTags(db *gorm.DB, practice *entity.PianoPractice, tags []entity.PianoTag) error
	FindByID(db *gorm.DB, id int64) (*entity.PianoPractice, error)
}

type SolfeggioPracticeRepository interface {
	Create(db *gorm.DB, practice *entity.SolfeggioPractice) error
	ReplaceTags(db *gorm.DB, practice *entity.SolfeggioPractice, tags []entity.PianoTag) error
	FindByID(db *gorm.DB, id int64) (*entity.SolfeggioPractice, error)
}
