package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"

	"github.com/devmahbe/crime-reporting-system/internal/config"
	"github.com/devmahbe/crime-reporting-system/internal/database/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
	)
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close connection: %v", err)
		}
	}()

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}

	sqlBytes, err := migrations.Files.ReadFile("schema.sql")
	if err != nil {
		log.Fatalf("failed to read embedded schema: %v", err)
	}

	log.Println("applying schema...")
	if _, err := db.Exec(string(sqlBytes)); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	rows, err := db.Query(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public'
		  AND table_name IN ('admins', 'categories', 'locations', 'complaints', 'evidence')
		ORDER BY table_name
	`)
	if err != nil {
		log.Fatalf("failed to verify tables: %v", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	log.Println("tables:")
	for rows.Next() {
		var table string
		if err := rows.Scan(&table); err != nil {
			log.Printf("failed to scan table name: %v", err)
			continue
		}
		log.Printf("  %s", table)
	}
	if err := rows.Err(); err != nil {
		log.Fatalf("failed reading table list: %v", err)
	}

	log.Println("migration complete")
}
