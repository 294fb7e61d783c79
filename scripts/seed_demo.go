package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("adding demo portfolio into database...")

	err := godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	DSN := os.Getenv("DB_DSN")
	GITHUB_USERNAME := os.Getenv("DEMO_GITHUB_USERNAME")
	if GITHUB_USERNAME == "" {
		GITHUB_USERNAME = "octocat"
	}

	pool, err := pgxpool.New(context.Background(), DSN)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	userID := uuid.New()
	userQuery := `
		INSERT INTO users (id, github_id, github_username, name, email, job_title, field_of_work, skills, is_profile_public)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, TRUE)
		ON CONFLICT (github_id) DO UPDATE SET github_username = EXCLUDED.github_username
		RETURNING id
	`
	err = pool.QueryRow(context.Background(), userQuery,
		userID,
		"demo-"+GITHUB_USERNAME,
		GITHUB_USERNAME,
		"Demo User",
		GITHUB_USERNAME+"@example.com",
		"Software Engineer",
		"Web Development",
		[]string{"Go", "PostgreSQL", "Docker"},
	).Scan(&userID)
	if err != nil {
		log.Fatalf("cannot add demo user: %v", err)
	}

	projectQuery := `
		INSERT INTO projects (id, user_id, title, description, technologies, status, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	projects := []struct {
		title string
		desc  string
		order int
	}{
		{"Portfolio Maker", "Generates and deploys portfolio sites to GitHub Pages.", 0},
		{"Weather CLI", "Terminal weather client with caching.", 1},
	}
	for _, p := range projects {
		_, err = pool.Exec(context.Background(), projectQuery,
			uuid.New(), userID, p.title, p.desc, []string{"Go"}, "completed", p.order)
		if err != nil {
			log.Fatalf("cannot add demo project '%s': %v", p.title, err)
		}
	}

	fmt.Printf("added demo portfolio for '%s' successfully!\n", GITHUB_USERNAME)
}
