package main

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"

	"github.com/joho/godotenv"

	"skillsage/internal/agent"
	"skillsage/internal/api"
	"skillsage/internal/catalog"
	"skillsage/internal/config"
	"skillsage/internal/resume"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Catalogs are fixed at startup; an optional override file replaces the
	// built-in role and learning-resource data.
	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		cat, err = catalog.LoadFrom(cfg.CatalogPath)
		if err != nil {
			log.Fatalf("Failed to load catalog from %s: %v", cfg.CatalogPath, err)
		}
		log.Printf("Loaded catalog overrides from %s", filepath.Clean(cfg.CatalogPath))
	}

	analysisAgent := agent.New(cat, cfg.UploadsDir)
	if cfg.GmailCredentialsPath != "" {
		tokenPath := cfg.GmailTokenPath
		if tokenPath == "" {
			tokenPath = "token.json"
		}
		analysisAgent.SetGmailAuth(cfg.GmailCredentialsPath, tokenPath)
	}

	builder := resume.NewBuilder(cfg.ChromePath)
	server := api.NewServer(analysisAgent, builder)

	fmt.Printf("Starting SkillSage on port %s...\n", cfg.Port)
	fmt.Printf("Endpoints:\n")
	fmt.Printf("  POST /analyze - Upload resume PDFs (or fetch from Gmail) for analysis\n")
	fmt.Printf("  GET /report - Latest skill report (also /report/csv, /report/xlsx)\n")
	fmt.Printf("  POST /compare - Compare two or more resumes\n")
	fmt.Printf("  POST /resume - Generate a resume PDF\n")
	fmt.Printf("  GET /learning, /interview, /roles - Reference data\n")

	if err := http.ListenAndServe(":"+cfg.Port, server.Router()); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
