package main

import (
	"log"

	"architect/config"
	"architect/database"
	curriculumModels "architect/models/curriculum"
	"architect/utils"
)

// Bulk-indexes every persisted learning resource into the vector store.
// Run once after pointing the app at a fresh Weaviate instance.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	var resources []curriculumModels.Resource
	if err := database.Database.Db.Find(&resources).Error; err != nil {
		log.Fatalf("Failed to load resources: %v", err)
	}

	log.Printf("Indexing %d resources into %s...", len(resources), config.AppConfig.WeaviateURL)

	if !utils.IndexExistingResources(resources) {
		log.Println("Some resources failed to index. Re-run after checking the vector backend.")
		return
	}

	log.Println("All resources indexed successfully.")
}
