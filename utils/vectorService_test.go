package utils_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"architect/config"
	curriculumModels "architect/models/curriculum"
	"architect/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddResourceReportsRejection(t *testing.T) {
	setupConfig()

	okServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/objects", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer okServer.Close()

	config.AppConfig.WeaviateURL = okServer.URL
	assert.True(t, utils.AddResource("Tour", "interactive tour", "https://go.dev/tour", curriculumModels.TypeInteractive, nil))

	badServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer badServer.Close()

	config.AppConfig.WeaviateURL = badServer.URL
	assert.False(t, utils.AddResource("Tour", "interactive tour", "https://go.dev/tour", curriculumModels.TypeInteractive, nil))
}

func TestSearchVectorFailureLooksLikeNoResults(t *testing.T) {
	setupConfig()

	deadServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadServer.Close()

	config.AppConfig.WeaviateURL = deadServer.URL
	assert.Empty(t, utils.SearchVector("query", 5))

	errorServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"errors": []map[string]interface{}{{"message": "class not found"}},
		})
	}))
	defer errorServer.Close()

	config.AppConfig.WeaviateURL = errorServer.URL
	assert.Empty(t, utils.SearchVector("query", 5))
}

func TestGetRecommendationsBuildsInterestQuery(t *testing.T) {
	setupConfig()

	var received string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		received = string(raw)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"Get": map[string]interface{}{
					"LearningResource": []map[string]interface{}{
						{"title": "Rec", "content": "x", "_additional": map[string]interface{}{"certainty": 0.8}},
					},
				},
			},
		})
	}))
	defer server.Close()

	config.AppConfig.WeaviateURL = server.URL

	hits := utils.GetRecommendations([]string{"distributed systems", "databases"}, "auditory", 3)
	require.Len(t, hits, 1)
	assert.Contains(t, received, "distributed systems databases")
	assert.Contains(t, received, "auditory learners")
	assert.Contains(t, received, "limit: 3")
}
