package utils

import (
	"math"
	"time"

	curriculumModels "architect/models/curriculum"

	"gorm.io/gorm"
)

// ProgressSummary aggregates a user's resource completion state
type ProgressSummary struct {
	TotalResources       int     `json:"total_resources"`
	CompletedResources   int     `json:"completed_resources"`
	InProgressResources  int     `json:"in_progress_resources"`
	PendingResources     int     `json:"pending_resources"`
	CompletionPercentage float64 `json:"completion_percentage"`
	LearningStyle        string  `json:"learning_style"`
	Pace                 string  `json:"pace"`
}

// RecentProgressItem is one recently-touched resource
type RecentProgressItem struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Status      string    `json:"status"`
	UpdatedAt   time.Time `json:"updated_at"`
	ModuleTitle string    `json:"module_title"`
}

// ownedResources scopes learning_resources to the owning user via the
// module and curriculum joins
func ownedResources(db *gorm.DB, userID uint) *gorm.DB {
	return db.Table("learning_resources").
		Joins("JOIN curriculum_modules ON curriculum_modules.id = learning_resources.module_id").
		Joins("JOIN curriculums ON curriculums.id = curriculum_modules.curriculum_id").
		Where("curriculums.user_id = ?", userID)
}

// BuildProgressSummary computes the user's progress totals. The completion
// percentage is rounded to 2 decimals and is 0 when the user has no
// resources at all.
func BuildProgressSummary(db *gorm.DB, userID uint) ProgressSummary {
	type statusCount struct {
		Status string
		Count  int
	}

	var counts []statusCount
	ownedResources(db, userID).
		Select("learning_resources.status AS status, COUNT(*) AS count").
		Group("learning_resources.status").
		Scan(&counts)

	summary := ProgressSummary{}
	for _, sc := range counts {
		summary.TotalResources += sc.Count
		switch sc.Status {
		case curriculumModels.StatusCompleted:
			summary.CompletedResources = sc.Count
		case curriculumModels.StatusInProgress:
			summary.InProgressResources = sc.Count
		case curriculumModels.StatusPending:
			summary.PendingResources = sc.Count
		}
	}

	if summary.TotalResources > 0 {
		pct := float64(summary.CompletedResources) / float64(summary.TotalResources) * 100
		summary.CompletionPercentage = math.Round(pct*100) / 100
	}

	return summary
}

// RecentProgress lists the most recently updated resources that are
// completed or in progress
func RecentProgress(db *gorm.DB, userID uint, limit int) []RecentProgressItem {
	items := []RecentProgressItem{}
	ownedResources(db, userID).
		Select("learning_resources.id, learning_resources.title, learning_resources.status, learning_resources.updated_at, curriculum_modules.title AS module_title").
		Where("learning_resources.status IN ?", []string{curriculumModels.StatusCompleted, curriculumModels.StatusInProgress}).
		Order("learning_resources.updated_at DESC").
		Limit(limit).
		Scan(&items)

	return items
}

// CompletedSince counts resources the user completed after the given time
func CompletedSince(db *gorm.DB, userID uint, since time.Time) int {
	var count int64
	ownedResources(db, userID).
		Where("learning_resources.status = ? AND learning_resources.updated_at >= ?", curriculumModels.StatusCompleted, since).
		Count(&count)

	return int(count)
}
