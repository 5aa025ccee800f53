package entity

import (
	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryMobility    Category = "Mobility"
	CategoryWarmUp      Category = "WarmUp"
	CategoryActivation  Category = "Activation"
	CategoryWorkingSets Category = "WorkingSets"
	CategoryCorrective  Category = "Corrective"
	CategoryAerobic     Category = "Aerobic"
	CategoryCoolDown    Category = "CoolDown"
)

var Categories = []Category{
	CategoryMobility,
	CategoryWarmUp,
	CategoryActivation,
	CategoryWorkingSets,
	CategoryCorrective,
	CategoryAerobic,
	CategoryCoolDown,
}

// ParseCategory maps an empty value to WorkingSets and rejects unknown names.
func ParseCategory(raw string) (Category, bool) {
	if raw == "" {
		return CategoryWorkingSets, true
	}
	for _, c := range Categories {
		if string(c) == raw {
			return c, true
		}
	}
	return "", false
}

// Slot is one exercise prescription inside a routine.
type Slot struct {
	ID         int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	RoutineID  int64           `gorm:"not null;index" json:"routine_id"`
	ExerciseID int64           `gorm:"not null;index" json:"exercise_id"`
	Stars      int             `gorm:"not null;default:0" json:"stars"`
	Category   Category        `gorm:"type:varchar(32);not null;default:WorkingSets" json:"category"`
	SetNumber  int             `gorm:"not null;default:0" json:"set_number"`
	Weight     decimal.Decimal `gorm:"type:numeric(8,2);not null;default:0" json:"weight"`
	Reps       int             `gorm:"not null;default:0" json:"reps"`
	Duration   int             `gorm:"not null;default:0" json:"duration"`
	Sequence   int             `gorm:"not null;default:0" json:"sequence"`

	// Relationships
	Exercise Exercise `gorm:"foreignKey:ExerciseID" json:"exercise"`
}

func (Slot) TableName() string {
	return "lifting_slot"
}
