package utils

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"architect/database"
	"architect/models"
	curriculumModels "architect/models/curriculum"
)

// PlannedResource is one learning resource in the LLM's curriculum plan.
// Title, URL and Type are mandatory in the provider response contract.
type PlannedResource struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// PlannedModule is one module in the LLM's curriculum plan
type PlannedModule struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Resources   []PlannedResource `json:"resources"`
}

// CurriculumPlan is the structured output expected from the LLM
type CurriculumPlan struct {
	Modules []PlannedModule `json:"modules"`
}

// SearchResult is a merged web/vector search entry
type SearchResult struct {
	Source    string  `json:"source"`
	Content   string  `json:"content"`
	Relevance float64 `json:"relevance"`
}

const curriculumPromptTemplate = `You are an AI curriculum architect. Generate a personalized learning curriculum based on the user's profile and goals.

User Profile:
- Learning Style: %s
- Pace: %s
- Interests: %s
- Goals: %s

Curriculum Request:
- Title: %s
- Description: %s

Generate a structured curriculum with:
1. 3-5 modules with clear learning objectives
2. 5-8 learning resources per module (mix of videos, articles, interactive content)
3. Resources should be diverse and high-quality
4. Consider the user's learning style and pace

Return the curriculum as a JSON object with a "modules" array. Each module has "title", "description" and a "resources" array. Each resource has "title", "url", "type" (video, article, interactive, quiz or simulation) and "description". Return only JSON.`

const chatPromptTemplate = `You are an AI learning companion. Help the user with their learning journey.

%sUser Message: %s

If the user is asking about their curriculum or progress, provide helpful guidance.
If they need additional resources, suggest relevant materials.
If they have questions about their learning path, provide personalized advice.

Be encouraging, helpful, and personalized in your response.`

// extractJSON strips markdown code fences and any surrounding prose so the
// plan can be unmarshalled even when the model wraps its answer.
func extractJSON(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start >= 0 && end > start {
		cleaned = cleaned[start : end+1]
	}

	return cleaned
}

// ParseCurriculumPlan enforces the structured-response contract on the raw
// LLM output. A response without a modules array, or with resources missing
// title, url or type, is rejected.
func ParseCurriculumPlan(raw string) (*CurriculumPlan, error) {
	var plan CurriculumPlan
	if err := json.Unmarshal([]byte(extractJSON(raw)), &plan); err != nil {
		return nil, fmt.Errorf("malformed curriculum response: %v", err)
	}

	if len(plan.Modules) == 0 {
		return nil, fmt.Errorf("curriculum response contains no modules")
	}

	for i, module := range plan.Modules {
		if module.Title == "" {
			return nil, fmt.Errorf("module %d is missing a title", i)
		}
		if len(module.Resources) == 0 {
			return nil, fmt.Errorf("module %q contains no resources", module.Title)
		}
		for j, resource := range module.Resources {
			if resource.Title == "" || resource.URL == "" || resource.Type == "" {
				return nil, fmt.Errorf("resource %d in module %q is missing title, url or type", j, module.Title)
			}
		}
	}

	return &plan, nil
}

func profileContext(userID uint) (style, pace string, interests, goals []string) {
	style, pace = "visual", "moderate"

	var profile models.UserProfile
	if err := database.Database.Db.Where("user_id = ?", userID).First(&profile).Error; err == nil {
		if profile.LearningStyle != "" {
			style = profile.LearningStyle
		}
		if profile.Pace != "" {
			pace = profile.Pace
		}
		interests = profile.Interests
		goals = profile.Goals
	}

	return style, pace, interests, goals
}

// GenerateCurriculum asks the LLM for a personalized plan and persists it.
// Rows are created in plan order with no spanning transaction: a failure
// partway through leaves the earlier rows in place.
func GenerateCurriculum(userID uint, title, description string) (*curriculumModels.Curriculum, error) {
	db := database.Database.Db

	style, pace, interests, goals := profileContext(userID)
	prompt := fmt.Sprintf(curriculumPromptTemplate,
		style, pace,
		strings.Join(interests, ", "),
		strings.Join(goals, ", "),
		title, description,
	)

	raw, err := GenerateText(prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate curriculum: %v", err)
	}

	plan, err := ParseCurriculumPlan(raw)
	if err != nil {
		return nil, err
	}

	newCurriculum := curriculumModels.Curriculum{
		UserID:      userID,
		Title:       title,
		Description: description,
	}
	if err := db.Create(&newCurriculum).Error; err != nil {
		return nil, fmt.Errorf("failed to save curriculum: %v", err)
	}

	var created []curriculumModels.Resource
	for i, plannedModule := range plan.Modules {
		module := curriculumModels.Module{
			CurriculumID: newCurriculum.ID,
			Title:        plannedModule.Title,
			Description:  plannedModule.Description,
			OrderIndex:   i,
		}
		if err := db.Create(&module).Error; err != nil {
			return nil, fmt.Errorf("failed to save module %q: %v", plannedModule.Title, err)
		}

		for j, plannedResource := range plannedModule.Resources {
			resource := curriculumModels.Resource{
				ModuleID:     module.ID,
				Title:        plannedResource.Title,
				Description:  plannedResource.Description,
				URL:          plannedResource.URL,
				ResourceType: plannedResource.Type,
				Status:       curriculumModels.StatusPending,
				OrderIndex:   j,
			}
			if err := db.Create(&resource).Error; err != nil {
				return nil, fmt.Errorf("failed to save resource %q: %v", plannedResource.Title, err)
			}
			created = append(created, resource)
		}
	}

	// Best-effort indexing; a dead vector backend must not fail generation
	if !IndexExistingResources(created) {
		log.Printf("[AGENT] Some resources for curriculum %d were not indexed", newCurriculum.ID)
	}

	return &newCurriculum, nil
}

// Chat sends a single stateless turn to the LLM, enriched with the user's
// profile and optionally the referenced curriculum
func Chat(userID uint, message string, curriculumID uint) (string, error) {
	var context strings.Builder

	style, pace, interests, goals := profileContext(userID)
	context.WriteString(fmt.Sprintf("User Profile:\n- Learning Style: %s\n- Pace: %s\n", style, pace))
	if len(interests) > 0 {
		context.WriteString(fmt.Sprintf("- Interests: %s\n", strings.Join(interests, ", ")))
	}
	if len(goals) > 0 {
		context.WriteString(fmt.Sprintf("- Goals: %s\n", strings.Join(goals, ", ")))
	}

	if curriculumID != 0 {
		var cur curriculumModels.Curriculum
		if err := database.Database.Db.Where("id = ? AND user_id = ?", curriculumID, userID).First(&cur).Error; err == nil {
			context.WriteString(fmt.Sprintf("Current Curriculum: %s - %s\n", cur.Title, cur.Description))
		}
	}
	context.WriteString("\n")

	prompt := fmt.Sprintf(chatPromptTemplate, context.String(), message)

	return GenerateText(prompt)
}

// SearchResources merges one web-search snippet with up to five vector hits
func SearchResources(query string) []SearchResult {
	results := []SearchResult{}

	webContent, err := SearchWeb(query)
	if err != nil {
		log.Printf("[AGENT] Web search failed: %v", err)
	}
	if webContent != "" {
		if len(webContent) > 500 {
			webContent = webContent[:500]
		}
		results = append(results, SearchResult{
			Source:    "web_search",
			Content:   webContent,
			Relevance: 0.8,
		})
	}

	for _, hit := range SearchVector(query, 5) {
		relevance := hit.Score
		if relevance == 0 {
			relevance = 0.7
		}
		results = append(results, SearchResult{
			Source:    "vector_search",
			Content:   hit.Content,
			Relevance: relevance,
		})
	}

	return results
}
