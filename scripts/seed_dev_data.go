//go:build ignore

package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/naatiworlds/Recetagrm-api/internal/config"
	"github.com/naatiworlds/Recetagrm-api/internal/core/comments"
	"github.com/naatiworlds/Recetagrm-api/internal/core/follows"
	"github.com/naatiworlds/Recetagrm-api/internal/core/posts"
	"github.com/naatiworlds/Recetagrm-api/internal/core/users"
	"github.com/naatiworlds/Recetagrm-api/internal/db/migrations"
	postgresRepo "github.com/naatiworlds/Recetagrm-api/internal/db/postgres"
	"github.com/naatiworlds/Recetagrm-api/internal/logger"
)

// Seeds a local database with users, recipes and interactions.
//
//	go run scripts/seed_dev_data.go

var userNames = []string{
	"ana_lopez", "luis_martin", "marta_garcia", "carlos_ruiz",
	"lucia_fernandez", "javier_sanchez", "elena_diaz", "pablo_moreno",
}

type recipe struct {
	Title       string
	Description string
	Ingredients []string
}

var recipes = []recipe{
	{"Tacos al pastor", "Marinated pork with pineapple on corn tortillas.", []string{"pork", "pineapple", "achiote", "tortillas"}},
	{"Tortilla de patatas", "Classic Spanish omelette, slightly runny in the middle.", []string{"eggs", "potatoes", "onion", "olive oil"}},
	{"Gazpacho", "Cold tomato soup for summer.", []string{"tomatoes", "cucumber", "pepper", "garlic", "bread"}},
	{"Paella valenciana", "Rice with chicken, rabbit and green beans.", []string{"rice", "chicken", "rabbit", "beans", "saffron"}},
	{"Churros", "Fried dough served with thick hot chocolate.", []string{"flour", "water", "salt", "chocolate"}},
	{"Guacamole", "Avocado dip with lime and cilantro.", []string{"avocado", "lime", "cilantro", "onion"}},
}

var commentTexts = []string{
	"Made this last night, delicious!",
	"How long do you marinate it?",
	"My grandmother made it exactly like this.",
	"Added a bit of chili, highly recommend.",
	"Saving this one for the weekend.",
}

func main() {
	logger.InitFromEnv("LOG_LEVEL")

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		dbURL = config.Default().Database.URL
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		exitf("Failed to connect to database: %v", err)
	}
	defer func() { _ = db.Close() }()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		exitf("Failed to set goose dialect: %v", err)
	}
	if err := goose.Up(db, migrations.Dir); err != nil {
		exitf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	userRepo := postgresRepo.NewUserRepository(db)
	postRepo := postgresRepo.NewPostRepository(db)
	followRepo := postgresRepo.NewFollowRepository(db)
	likeRepo := postgresRepo.NewLikeRepository(db)
	commentRepo := postgresRepo.NewCommentRepository(db)

	suffix := time.Now().Unix()
	var userIDs []int64
	for i, name := range userNames {
		u, err := userRepo.Create(ctx, &users.User{
			Name:     name,
			Email:    fmt.Sprintf("%s+%d@example.com", name, suffix),
			IsPublic: i%3 != 0,
		})
		if err != nil {
			exitf("Failed to create user %s: %v", name, err)
		}
		userIDs = append(userIDs, u.ID)
	}
	logger.Log.Infof("Created %d users", len(userIDs))

	var postIDs []int64
	for i, rcp := range recipes {
		ingredients, err := json.Marshal(rcp.Ingredients)
		if err != nil {
			exitf("Failed to encode ingredients: %v", err)
		}
		post := &posts.Post{
			UserID:      userIDs[i%len(userIDs)],
			Title:       rcp.Title,
			Description: rcp.Description,
			Ingredients: ingredients,
		}
		if err := postRepo.Create(ctx, post); err != nil {
			exitf("Failed to create post %q: %v", rcp.Title, err)
		}
		postIDs = append(postIDs, post.ID)
	}
	logger.Log.Infof("Created %d posts", len(postIDs))

	statuses := []follows.Status{follows.StatusAccepted, follows.StatusPending, follows.StatusRejected}
	followCount := 0
	for i, follower := range userIDs {
		for j, following := range userIDs {
			if i == j || rng.Intn(3) != 0 {
				continue
			}
			f := &follows.Follow{FollowerID: follower, FollowingID: following, Status: statuses[rng.Intn(len(statuses))]}
			if err := followRepo.Create(ctx, f); err != nil {
				exitf("Failed to create follow: %v", err)
			}
			followCount++
		}
	}
	logger.Log.Infof("Created %d follows", followCount)

	likeCount, commentCount := 0, 0
	for _, postID := range postIDs {
		for _, userID := range userIDs {
			if rng.Intn(2) == 0 {
				if err := likeRepo.Create(ctx, userID, postID); err != nil {
					exitf("Failed to create like: %v", err)
				}
				likeCount++
			}
			if rng.Intn(4) == 0 {
				c := &comments.Comment{PostID: postID, UserID: userID, Content: commentTexts[rng.Intn(len(commentTexts))]}
				if err := commentRepo.Create(ctx, c); err != nil {
					exitf("Failed to create comment: %v", err)
				}
				commentCount++
			}
		}
	}
	logger.Log.Infof("Created %d likes and %d comments", likeCount, commentCount)
}

func exitf(format string, args ...any) {
	logger.Log.Errorf(format, args...)
	os.Exit(1)
}
