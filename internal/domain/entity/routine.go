package entity

import (
	"database/sql/driver"
	"encoding/json"
	"sort"
)

// Routine is a planned session. Templates are routines not bound to a workout.
type Routine struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Description string    `gorm:"type:varchar(500)" json:"description"`
	Template    bool      `gorm:"not null;default:false" json:"template"`
	Checklist   Checklist `gorm:"type:jsonb;not null;default:'[]'" json:"checklist"`
	Note        string    `gorm:"type:text" json:"note"`

	// Relationships
	Workout *Workout `gorm:"foreignKey:RoutineID" json:"workout,omitempty"`
	Targets []Target `gorm:"many2many:lifting_routine_target;joinForeignKey:RoutineID;joinReferences:TargetID" json:"targets,omitempty"`
	Slots   []Slot   `gorm:"foreignKey:RoutineID;constraint:OnDelete:CASCADE" json:"slots,omitempty"`
}

func (Routine) TableName() string {
	return "lifting_routine"
}

// ResolvedTargets returns the routine targets. A routine without targets
// exposes its checklist items instead, numbered from 1.
func (r *Routine) ResolvedTargets() []Target {
	if len(r.Targets) > 0 || len(r.Checklist) == 0 {
		return r.Targets
	}
	targets := make([]Target, len(r.Checklist))
	for i, item := range r.Checklist {
		targets[i] = Target{ID: int64(i + 1), Name: item.Name}
	}
	return targets
}

// SortedSlots returns the slots ordered by sequence, then id.
func (r *Routine) SortedSlots() []Slot {
	slots := make([]Slot, len(r.Slots))
	copy(slots, r.Slots)
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].Sequence != slots[j].Sequence {
			return slots[i].Sequence < slots[j].Sequence
		}
		return slots[i].ID < slots[j].ID
	})
	return slots
}

type ChecklistItem struct {
	Name       string `json:"name"`
	IsOptional bool   `json:"isOptional"`
}

// Checklist is stored as a JSONB array.
type Checklist []ChecklistItem

func (c Checklist) Value() (driver.Value, error) {
	if c == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]ChecklistItem(c))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (c *Checklist) Scan(value interface{}) error {
	if value == nil {
		*c = Checklist{}
		return nil
	}
	bytes, err := jsonBytes(value)
	if err != nil {
		return err
	}
	var out []ChecklistItem
	if err := json.Unmarshal(bytes, &out); err != nil {
		return err
	}
	*c = out
	return nil
}
