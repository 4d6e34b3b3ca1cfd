package utils

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"architect/config"
	curriculumModels "architect/models/curriculum"
)

// VectorHit is a single semantic-search result from the vector index
type VectorHit struct {
	Title        string  `json:"title"`
	Content      string  `json:"content"`
	URL          string  `json:"url"`
	ResourceType string  `json:"resource_type"`
	Score        float64 `json:"score"`
}

type weaviateObject struct {
	Class      string                 `json:"class"`
	Properties map[string]interface{} `json:"properties"`
}

type weaviateGraphQLRequest struct {
	Query string `json:"query"`
}

type weaviateGraphQLResponse struct {
	Data struct {
		Get struct {
			LearningResource []struct {
				Title        string `json:"title"`
				Content      string `json:"content"`
				URL          string `json:"url"`
				ResourceType string `json:"resource_type"`
				Additional   struct {
					Certainty float64 `json:"certainty"`
				} `json:"_additional"`
			} `json:"LearningResource"`
		} `json:"Get"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// AddResource stores a learning resource in the vector index. Failures are
// logged and reported as false; indexing is best effort and never blocks
// the caller's flow.
func AddResource(title, content, url, resourceType string, tags []string) bool {
	object := weaviateObject{
		Class: "LearningResource",
		Properties: map[string]interface{}{
			"title":         title,
			"content":       content,
			"url":           url,
			"resource_type": resourceType,
			"tags":          tags,
		},
	}

	resp, err := llmClient().R().
		SetHeader("Content-Type", "application/json").
		SetBody(object).
		Post(config.AppConfig.WeaviateURL + "/v1/objects")
	if err != nil {
		log.Printf("[VECTOR] Failed to add resource to vector index: %v", err)
		return false
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		log.Printf("[VECTOR] Vector index rejected resource: %s", resp.String())
		return false
	}

	return true
}

// SearchVector runs a semantic similarity search against the vector index.
// All failures collapse into an empty result set; callers cannot tell "no
// results" from "index unavailable".
func SearchVector(query string, limit int) []VectorHit {
	if limit < 1 {
		limit = 5
	}

	gql := fmt.Sprintf(`{
		Get {
			LearningResource(nearText: {concepts: [%s]}, limit: %d) {
				title
				content
				url
				resource_type
				_additional { certainty }
			}
		}
	}`, strconv.Quote(query), limit)

	var result weaviateGraphQLResponse
	resp, err := llmClient().R().
		SetHeader("Content-Type", "application/json").
		SetBody(weaviateGraphQLRequest{Query: gql}).
		SetResult(&result).
		Post(config.AppConfig.WeaviateURL + "/v1/graphql")
	if err != nil {
		log.Printf("[VECTOR] Vector search failed: %v", err)
		return nil
	}
	if resp.StatusCode() != http.StatusOK || len(result.Errors) > 0 {
		log.Printf("[VECTOR] Vector search error: %s", resp.String())
		return nil
	}

	hits := make([]VectorHit, 0, len(result.Data.Get.LearningResource))
	for _, obj := range result.Data.Get.LearningResource {
		hits = append(hits, VectorHit{
			Title:        obj.Title,
			Content:      obj.Content,
			URL:          obj.URL,
			ResourceType: obj.ResourceType,
			Score:        obj.Additional.Certainty,
		})
	}

	return hits
}

// GetRecommendations builds a similarity query from the user's interests
// and learning style
func GetRecommendations(interests []string, learningStyle string, limit int) []VectorHit {
	if learningStyle == "" {
		learningStyle = "visual"
	}

	query := fmt.Sprintf("learning resources about %s for %s learners",
		strings.Join(interests, " "), learningStyle)

	return SearchVector(query, limit)
}

// IndexExistingResources pushes already-persisted resources into the vector
// index so they become searchable
func IndexExistingResources(resources []curriculumModels.Resource) bool {
	ok := true
	for _, resource := range resources {
		content := resource.Description
		if content == "" {
			content = resource.Title
		}
		if !AddResource(resource.Title, content, resource.URL, resource.ResourceType, nil) {
			ok = false
		}
	}
	return ok
}
