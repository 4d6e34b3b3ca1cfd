package utils

import (
	"fmt"
	"net/http"

	"architect/config"
)

type pushPayload struct {
	UserID  uint   `json:"user_id"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// SendPushNotification forwards a notification to the configured push
// provider
func SendPushNotification(userID uint, title, message string) error {
	if config.AppConfig.PushApiURL == "" {
		return fmt.Errorf("push provider is not configured")
	}

	resp, err := llmClient().R().
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+config.AppConfig.PushApiKey).
		SetBody(pushPayload{UserID: userID, Title: title, Message: message}).
		Post(config.AppConfig.PushApiURL)
	if err != nil {
		return fmt.Errorf("push request failed: %v", err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("push provider returned %d: %s", resp.StatusCode(), resp.String())
	}

	return nil
}
