// gentoken mints HS256 bearer tokens for local testing.
// Optionally creates the user first.
//
// Usage:
//
//	go run ./cmd/gentoken -user 1
//	go run ./cmd/gentoken -create -name Ana -email ana@example.com -private
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/naatiworlds/Recetagrm-api/internal/auth"
	"github.com/naatiworlds/Recetagrm-api/internal/config"
	"github.com/naatiworlds/Recetagrm-api/internal/core/users"
	postgresRepo "github.com/naatiworlds/Recetagrm-api/internal/db/postgres"
	"github.com/naatiworlds/Recetagrm-api/internal/logger"
)

func main() {
	userID := flag.Int64("user", 0, "id of an existing user")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	create := flag.Bool("create", false, "create the user before issuing the token")
	name := flag.String("name", "", "name of the user to create")
	email := flag.String("email", "", "email of the user to create")
	private := flag.Bool("private", false, "create the user with a private account")
	flag.Parse()

	if err := godotenv.Load(filepath.Join(config.GetBasePath(), config.EnvFile)); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Log.Warnf("Failed to load %s: %v", config.EnvFile, err)
	}
	logger.InitFromEnv("LOG_LEVEL")

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		exitf("JWT_SECRET is required")
	}

	if *create {
		id, err := createUser(*name, *email, !*private)
		if err != nil {
			exitf("Failed to create user: %v", err)
		}
		*userID = id
	}

	if *userID <= 0 {
		exitf("either -user or -create is required")
	}

	token, err := auth.IssueToken([]byte(secret), *userID, *ttl)
	if err != nil {
		exitf("Failed to issue token: %v", err)
	}

	fmt.Println(token)
}

func createUser(name, email string, isPublic bool) (int64, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		dbURL = config.Default().Database.URL
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return 0, err
	}
	defer func() { _ = db.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	service := users.NewUserService(postgresRepo.NewUserRepository(db))
	user, err := service.CreateUser(ctx, users.CreateUserRequest{
		Name:     name,
		Email:    email,
		IsPublic: isPublic,
	})
	if err != nil {
		return 0, err
	}

	logger.InfoWithFields("user created", logger.Fields{
		"user_id":   user.ID,
		"is_public": user.IsPublic,
	})
	return user.ID, nil
}

func exitf(format string, args ...any) {
	logger.Log.Errorf(format, args...)
	os.Exit(1)
}
