package entity

type Gym struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Location string `gorm:"type:varchar(200);not null" json:"location"`
}

func (Gym) TableName() string {
	return "lifting_gym"
}
