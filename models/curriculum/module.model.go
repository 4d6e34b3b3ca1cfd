package curriculum

import "time"

// Module is an ordered group of resources within a curriculum
type Module struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	CurriculumID uint      `json:"curriculum_id" gorm:"index;not null"`
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description" gorm:"type:text"`
	OrderIndex   int       `json:"order" gorm:"column:order_index;default:0"` // module order within curriculum, advisory
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Module) TableName() string {
	return "curriculum_modules"
}
