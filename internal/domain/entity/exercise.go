package entity

type Exercise struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string     `gorm:"type:varchar(100);not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Cues        StringList `gorm:"type:jsonb;not null;default:'[]'" json:"cues"`

	// Relationships
	MainMuscles    []Muscle `gorm:"many2many:lifting_main_muscle_exercise;joinForeignKey:ExerciseID;joinReferences:MuscleID" json:"main_muscles,omitempty"`
	SupportMuscles []Muscle `gorm:"many2many:lifting_support_muscle_exercise;joinForeignKey:ExerciseID;joinReferences:MuscleID" json:"support_muscles,omitempty"`
}

func (Exercise) TableName() string {
	return "lifting_exercise"
}
