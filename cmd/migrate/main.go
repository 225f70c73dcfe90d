// Command migrate applies the embedded schema migrations.
//
// Flags:
//
//	--down    roll back the most recent migration instead of migrating up
//	--status  print migration status and exit
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/foundersapp/founders-backend/internal/config"
	"github.com/foundersapp/founders-backend/migrations"
)

func main() {
	downFlag := flag.Bool("down", false, "roll back the most recent migration")
	statusFlag := flag.Bool("status", false, "print migration status and exit")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	// goose requires database/sql, so connect through the pgx stdlib driver.
	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		log.Fatalf("goose provider: %v", err)
	}

	if *statusFlag {
		statuses, err := provider.Status(ctx)
		if err != nil {
			log.Fatalf("migration status: %v", err)
		}
		for _, s := range statuses {
			state := "pending"
			if s.State == goose.StateApplied {
				state = "applied"
			}
			log.Printf("%-8s %s", state, s.Source.Path)
		}
		return
	}

	if *downFlag {
		if _, err := provider.Down(ctx); err != nil {
			log.Fatalf("migrate down: %v", err)
		}
		log.Println("rolled back one migration")
		return
	}

	results, err := provider.Up(ctx)
	if err != nil {
		log.Fatalf("migrate up: %v", err)
	}
	log.Printf("applied %d migrations", len(results))
}
