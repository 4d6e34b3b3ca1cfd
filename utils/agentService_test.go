package utils_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"architect/config"
	"architect/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupConfig() {
	config.AppConfig = &config.Config{
		AIProvider: "openai",
		LLMTimeout: 2,
		LLMRetries: 0,
	}
}

func TestParseCurriculumPlanAcceptsFencedJSON(t *testing.T) {
	raw := "Here is your curriculum:\n```json\n" +
		`{"modules":[{"title":"Basics","resources":[{"title":"Tour","url":"https://go.dev/tour","type":"interactive"}]}]}` +
		"\n```\nEnjoy!"

	plan, err := utils.ParseCurriculumPlan(raw)
	require.NoError(t, err)
	require.Len(t, plan.Modules, 1)
	assert.Equal(t, "Basics", plan.Modules[0].Title)
	require.Len(t, plan.Modules[0].Resources, 1)
	assert.Equal(t, "interactive", plan.Modules[0].Resources[0].Type)
}

func TestParseCurriculumPlanRejectsMissingModules(t *testing.T) {
	_, err := utils.ParseCurriculumPlan(`{"modules":[]}`)
	assert.Error(t, err)

	_, err = utils.ParseCurriculumPlan(`{"something":"else"}`)
	assert.Error(t, err)

	_, err = utils.ParseCurriculumPlan("I'm sorry, I can't produce JSON right now.")
	assert.Error(t, err)
}

func TestParseCurriculumPlanRejectsIncompleteResources(t *testing.T) {
	// url missing
	_, err := utils.ParseCurriculumPlan(`{"modules":[{"title":"Basics","resources":[{"title":"Tour","type":"video"}]}]}`)
	assert.Error(t, err)

	// type missing
	_, err = utils.ParseCurriculumPlan(`{"modules":[{"title":"Basics","resources":[{"title":"Tour","url":"https://x"}]}]}`)
	assert.Error(t, err)

	// module without resources
	_, err = utils.ParseCurriculumPlan(`{"modules":[{"title":"Basics","resources":[]}]}`)
	assert.Error(t, err)
}

func TestSearchResourcesMergesWebAndVector(t *testing.T) {
	setupConfig()

	longAbstract := strings.Repeat("go concurrency patterns ", 30) // well over 500 chars
	searchServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"AbstractText": longAbstract})
	}))
	defer searchServer.Close()

	vectorServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"Get": map[string]interface{}{
					"LearningResource": []map[string]interface{}{
						{"title": "Hit A", "content": "about goroutines", "_additional": map[string]interface{}{"certainty": 0.91}},
						{"title": "Hit B", "content": "about channels"},
					},
				},
			},
		})
	}))
	defer vectorServer.Close()

	config.AppConfig.SearchApiURL = searchServer.URL
	config.AppConfig.WeaviateURL = vectorServer.URL

	results := utils.SearchResources("go concurrency")
	require.Len(t, results, 3)

	assert.Equal(t, "web_search", results[0].Source)
	assert.Len(t, results[0].Content, 500)
	assert.Equal(t, 0.8, results[0].Relevance)

	assert.Equal(t, "vector_search", results[1].Source)
	assert.Equal(t, 0.91, results[1].Relevance)

	// Missing similarity score falls back to 0.7
	assert.Equal(t, 0.7, results[2].Relevance)
}

func TestSearchResourcesSwallowsBackendFailures(t *testing.T) {
	setupConfig()

	deadServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadServer.Close()

	config.AppConfig.SearchApiURL = deadServer.URL
	config.AppConfig.WeaviateURL = deadServer.URL

	// Both backends down looks exactly like no results
	results := utils.SearchResources("anything")
	assert.Empty(t, results)
}
