package utils

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"architect/config"

	"github.com/go-resty/resty/v2"
)

type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// llmClient builds a resty client with the configured timeout and retry
// policy. Every outbound LLM call goes through this so a slow provider
// cannot hold a request forever.
func llmClient() *resty.Client {
	return resty.New().
		SetTimeout(time.Duration(config.AppConfig.LLMTimeout) * time.Second).
		SetRetryCount(config.AppConfig.LLMRetries)
}

// GenerateText sends a prompt to the configured LLM provider and returns
// the raw generated text
func GenerateText(prompt string) (string, error) {
	if strings.EqualFold(config.AppConfig.AIProvider, "gemini") {
		return generateGemini(prompt)
	}
	return generateOpenAI(prompt)
}

func generateOpenAI(prompt string) (string, error) {
	request := openAIRequest{
		Model: "gpt-4",
		Messages: []openAIMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
	}

	var result openAIResponse
	resp, err := llmClient().R().
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+config.AppConfig.OpenAIKey).
		SetBody(request).
		SetResult(&result).
		Post(config.AppConfig.OpenAIApiURL + "/v1/chat/completions")
	if err != nil {
		return "", fmt.Errorf("openai request failed: %v", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("openai API error: %s", resp.String())
	}
	if result.Error != nil {
		return "", fmt.Errorf("openai API error: %s", result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}

	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}

func generateGemini(prompt string) (string, error) {
	request := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	}

	var result geminiResponse
	resp, err := llmClient().R().
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", config.AppConfig.GeminiKey).
		SetBody(request).
		SetResult(&result).
		Post(config.AppConfig.GeminiApiURL + "/v1beta/models/gemini-pro:generateContent")
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %v", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("gemini API error: %s", resp.String())
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates returned")
	}

	return strings.TrimSpace(result.Candidates[0].Content.Parts[0].Text), nil
}
