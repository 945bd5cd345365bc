package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	dicesession "github.com/KirkDiggler/rpg-tale/internal/repositories/dice_session"
)

// Scans roll records and offers to delete the ones the server can no longer
// read: bad JSON, a mismatched key, or no TTL.
func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning roll records...")

	iter := client.Scan(ctx, 0, "dice_session:*", 0).Iterator()

	var badKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		if problem := inspect(ctx, client, key); problem != "" {
			fmt.Printf("x %s: %s\n", key, problem)
			badKeys = append(badKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d bad records\n", checkedCount, len(badKeys))
	if len(badKeys) == 0 {
		return
	}

	fmt.Print("\nDelete these records? (yes/no): ")
	response, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	if strings.TrimSpace(response) != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	deleted, err := client.Del(ctx, badKeys...).Result()
	if err != nil {
		log.Fatal("Failed to delete records:", err)
	}
	fmt.Printf("Deleted %d records\n", deleted)
}

func inspect(ctx context.Context, client *redis.Client, key string) string {
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return fmt.Sprintf("unreadable: %v", err)
	}

	var record dicesession.DiceSession
	if err := json.Unmarshal(data, &record); err != nil {
		return "corrupted JSON"
	}

	want := fmt.Sprintf("dice_session:%s:%s", record.EntityID, record.Context)
	if want != key {
		return fmt.Sprintf("stored under the wrong key, expected %s", want)
	}

	ttl, err := client.TTL(ctx, key).Result()
	if err != nil {
		return fmt.Sprintf("ttl lookup failed: %v", err)
	}
	// go-redis reports a key without expiry as -1
	if ttl == -1 {
		return "no expiry"
	}
	return ""
}
