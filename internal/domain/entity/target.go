package entity

// Target is a training goal shared by workouts and routines.
type Target struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}

func (Target) TableName() string {
	return "lifting_target"
}
