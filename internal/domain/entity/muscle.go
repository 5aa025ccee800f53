package entity

type Muscle struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Description string `gorm:"type:varchar(500)" json:"description"`
	Function    string `gorm:"type:varchar(200)" json:"function"`
	OriginName  string `gorm:"type:varchar(100)" json:"origin_name"`
}

func (Muscle) TableName() string {
	return "lifting_muscle"
}
