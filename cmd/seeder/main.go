// Command seeder populates the database with demo accounts and posts for
// local development. It is intended to be run offline, not as part of the
// main server.
//
// Flags:
//
//	--password  password assigned to every demo account (default "password123")
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/foundersapp/founders-backend/internal/adapter/postgres"
	postrepo "github.com/foundersapp/founders-backend/internal/adapter/postgres/post"
	profilerepo "github.com/foundersapp/founders-backend/internal/adapter/postgres/profile"
	userrepo "github.com/foundersapp/founders-backend/internal/adapter/postgres/user"
	"github.com/foundersapp/founders-backend/internal/app"
	"github.com/foundersapp/founders-backend/internal/config"
	"github.com/foundersapp/founders-backend/internal/domain"
)

type demoAccount struct {
	email    string
	username string
	name     string
	bio      string
	posts    []string
}

var demoAccounts = []demoAccount{
	{
		email:    "ana@founders.dev",
		username: "ana_builds",
		name:     "Ana Moreira",
		bio:      "Building a fintech for freelancers.",
		posts: []string{
			"Day 1 of the journey: incorporated the company today.",
			"First paying customer! Celebrating with instant noodles.",
		},
	},
	{
		email:    "dev@founders.dev",
		username: "devraj",
		name:     "Dev Raj",
		bio:      "Hardware hacker turned SaaS founder.",
		posts: []string{
			"Shipped our MVP after six weekends of work.",
		},
	},
	{
		email:    "mia@founders.dev",
		username: "mia_ships",
		name:     "Mia Chen",
		bio:      "Open source maintainer, now full-time on devtools.",
		posts: []string{
			"Pivoted. Again. Feels right this time.",
			"We crossed 100 GitHub stars today.",
			"Hiring our first engineer next month.",
		},
	},
}

func main() {
	passwordFlag := flag.String("password", "password123", "password for every demo account")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	profiles := profilerepo.New(pool)
	posts := postrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	hash, err := bcrypt.GenerateFromPassword([]byte(*passwordFlag), cfg.Auth.PasswordHashCost)
	if err != nil {
		logger.Error("hash password", slog.String("error", err.Error()))
		os.Exit(1)
	}

	seeded := 0
	for _, acc := range demoAccounts {
		err := txm.RunInTx(ctx, func(txCtx context.Context) error {
			id := uuid.New()

			if _, err := users.Create(txCtx, &domain.User{
				ID:           id,
				Email:        acc.email,
				PasswordHash: string(hash),
			}); err != nil {
				return err
			}

			if _, err := profiles.Create(txCtx, &domain.Profile{
				ID:       id,
				Username: acc.username,
				Name:     acc.name,
				Bio:      acc.bio,
			}); err != nil {
				return err
			}

			for _, content := range acc.posts {
				if _, err := posts.Create(txCtx, id, content); err != nil {
					return err
				}
			}
			return nil
		})

		if errors.Is(err, domain.ErrAlreadyExists) {
			logger.Info("account already seeded, skipping", slog.String("email", acc.email))
			continue
		}
		if err != nil {
			logger.Error("seed account",
				slog.String("email", acc.email),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
		seeded++
	}

	logger.Info("seeding complete", slog.Int("accounts", seeded))
}
