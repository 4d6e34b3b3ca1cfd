package utils

import (
	"fmt"
	"net/http"

	"architect/config"
)

type duckDuckGoResponse struct {
	AbstractText  string `json:"AbstractText"`
	AbstractURL   string `json:"AbstractURL"`
	RelatedTopics []struct {
		Text     string `json:"Text"`
		FirstURL string `json:"FirstURL"`
	} `json:"RelatedTopics"`
}

// SearchWeb runs a web search for learning material and returns the best
// textual snippet found
func SearchWeb(query string) (string, error) {
	var result duckDuckGoResponse
	resp, err := llmClient().R().
		SetQueryParams(map[string]string{
			"q":       query,
			"format":  "json",
			"no_html": "1",
		}).
		SetResult(&result).
		Get(config.AppConfig.SearchApiURL + "/")
	if err != nil {
		return "", fmt.Errorf("web search request failed: %v", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("web search API error: %s", resp.Status())
	}

	if result.AbstractText != "" {
		return result.AbstractText, nil
	}
	if len(result.RelatedTopics) > 0 && result.RelatedTopics[0].Text != "" {
		return result.RelatedTopics[0].Text, nil
	}

	return "", nil
}
