package curriculum

import "time"

// Resource types produced by the curriculum generator
const (
	TypeVideo       = "video"
	TypeArticle     = "article"
	TypeInteractive = "interactive"
	TypeQuiz        = "quiz"
	TypeSimulation  = "simulation"
)

// Resource completion statuses. Transitions are unrestricted: any status
// may be set at any time, including completed back to pending.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusSkipped    = "skipped"
)

// ValidStatuses lists the statuses accepted by the progress update endpoint
var ValidStatuses = []string{StatusPending, StatusInProgress, StatusCompleted, StatusSkipped}

// IsValidStatus reports whether s is a recognized resource status
func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Resource is a single learning item within a module. Status is the sole
// progress-tracking field; no history of transitions is kept.
type Resource struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	ModuleID     uint      `json:"module_id" gorm:"index;not null"`
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description" gorm:"type:text"`
	URL          string    `json:"url" gorm:"not null"`
	ResourceType string    `json:"resource_type" gorm:"not null"`
	Status       string    `json:"status" gorm:"default:'pending'"`
	OrderIndex   int       `json:"order" gorm:"column:order_index;default:0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Resource) TableName() string {
	return "learning_resources"
}
