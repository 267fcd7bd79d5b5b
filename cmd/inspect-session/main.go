package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/aegis-tracker/internal/domain/sheet"
	"github.com/KirkDiggler/aegis-tracker/internal/repositories/sessions"
)

func main() {
	sessionID := "aegis"
	if len(os.Args) >= 2 {
		sessionID = os.Args[1]
	}
	ctx := context.Background()

	// Set up Redis
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	// Test connection first
	if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}
	defer func() {
		if clientErr := client.Close(); clientErr != nil {
			log.Printf("Failed to close Redis connection: %v", clientErr)
		}
	}()

	repo := sessions.NewRedis(client)

	current, err := repo.GetSheet(ctx, sessionID)
	if err != nil {
		log.Printf("Failed to get sheet: %v", err)
	} else {
		data, encodeErr := sheet.Encode(current)
		if encodeErr != nil {
			log.Printf("Failed to encode sheet: %v", encodeErr)
		} else {
			fmt.Printf("Sheet for session %s:\n%s\n\n", sessionID, data)
		}
	}

	entries, err := repo.ListEntries(ctx, sessionID)
	if err != nil {
		log.Printf("Failed to list narrative entries: %v", err)
		return
	}

	fmt.Printf("Narrative: %d entries\n", len(entries))
	for _, entry := range entries {
		fmt.Printf("  [%s] %-9s %s\n", entry.CreatedAt.Format("2006-01-02 15:04:05"), entry.Role, entry.Text)
	}
}
