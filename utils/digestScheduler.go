package utils

import (
	"log"

	"architect/database"
	"architect/models"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// InitializeDigestScheduler sets up the recurring digest jobs: a weekly
// progress email every Sunday at 9 AM and a daily learning prompt push at
// 8 AM. The cron scheduler replaces minute-window polling so a busy or
// restarted process cannot miss a send window. The returned cron can be
// stopped at shutdown.
func InitializeDigestScheduler() *cron.Cron {
	log.Println("[DIGEST-SCHEDULER] Initializing digest scheduler...")

	c := cron.New()

	c.AddFunc("0 9 * * 0", func() {
		log.Println("[DIGEST-SCHEDULER] Running weekly email digest...")
		SendWeeklyDigests()
	})

	c.AddFunc("0 8 * * *", func() {
		log.Println("[DIGEST-SCHEDULER] Running daily notification batch...")
		SendDailyNotifications()
	})

	c.Start()
	log.Println("[DIGEST-SCHEDULER] Digest scheduler started - weekly email Sunday 9 AM, daily push 8 AM")

	return c
}

// SendWeeklyDigests emails every user their progress summary. A failure for
// one user never aborts the batch for the rest.
func SendWeeklyDigests() {
	db := database.Database.Db

	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		log.Printf("[DIGEST-SCHEDULER] Error fetching users: %v", err)
		return
	}

	weekStart := now.BeginningOfWeek()

	for _, user := range users {
		summary := BuildProgressSummary(db, user.ID)
		completedThisWeek := CompletedSince(db, user.ID, weekStart)

		if err := SendProgressDigestEmail(user.Email, summary, completedThisWeek); err != nil {
			log.Printf("[DIGEST-SCHEDULER] Failed to send weekly email to %s: %v", user.Email, err)
			continue
		}
		log.Printf("[DIGEST-SCHEDULER] Sent weekly email to %s", user.Email)
	}
}

// SendDailyNotifications pushes an LLM-generated learning prompt to every
// user. The prompt is generated once per batch, not per user.
func SendDailyNotifications() {
	db := database.Database.Db

	prompt, err := GenerateText("Generate a daily learning prompt or vocabulary word that would be relevant for a learner. Make it encouraging and educational. Keep it short and engaging.")
	if err != nil {
		log.Printf("[DIGEST-SCHEDULER] Failed to generate daily prompt: %v", err)
		return
	}

	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		log.Printf("[DIGEST-SCHEDULER] Error fetching users: %v", err)
		return
	}

	for _, user := range users {
		if err := SendPushNotification(user.ID, "Daily Learning Prompt", prompt); err != nil {
			log.Printf("[DIGEST-SCHEDULER] Failed to send daily notification to user %d: %v", user.ID, err)
			continue
		}
		log.Printf("[DIGEST-SCHEDULER] Sent daily notification to user %d", user.ID)
	}
}
