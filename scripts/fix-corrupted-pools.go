// Command fix-corrupted-pools scans stored characters for resource
// pools that violate their bounds (spell slot used > max, hit dice
// spent > class level, negative counters) and repairs them in place
// when run with -fix. Without the flag it only reports.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/entities"
)

func main() {
	fix := flag.Bool("fix", false, "write repaired characters back to redis")
	flag.Parse()

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
	fmt.Println("Scanning for out-of-bounds resource pools...")

	iter := client.Scan(ctx, 0, "character:*", 0).Iterator()

	var checked, damaged, repaired int
	for iter.Next(ctx) {
		key := iter.Val()
		// Player index entries live under the same prefix but are sets.
		if strings.HasPrefix(key, "character:player:") {
			continue
		}
		checked++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var char entities.Character
		if err := json.Unmarshal([]byte(data), &char); err != nil {
			fmt.Printf("Unparseable character at %s: %v\n", key, err)
			continue
		}

		problems := repairCharacter(&char)
		if len(problems) == 0 {
			continue
		}
		damaged++
		for _, problem := range problems {
			fmt.Printf("%s: %s\n", key, problem)
		}

		if !*fix {
			continue
		}
		fixed, err := json.Marshal(&char)
		if err != nil {
			fmt.Printf("Error marshaling %s: %v\n", key, err)
			continue
		}
		if err := client.Set(ctx, key, fixed, 0).Err(); err != nil {
			fmt.Printf("Error writing %s: %v\n", key, err)
			continue
		}
		repaired++
	}
	if err := iter.Err(); err != nil {
		log.Fatal("Scan failed:", err)
	}

	fmt.Printf("Checked %d characters, %d with bad pools, %d repaired\n",
		checked, damaged, repaired)
	if damaged > 0 && !*fix {
		fmt.Println("Re-run with -fix to repair.")
	}
}

// repairCharacter clamps every pool back into bounds and returns a
// description of each violation found.
func repairCharacter(char *entities.Character) []string {
	var problems []string

	for _, pool := range char.Slots {
		if pool.Used > pool.Max {
			problems = append(problems, fmt.Sprintf(
				"%s slot level %d: used %d > max %d", pool.Type, pool.Level, pool.Used, pool.Max))
			pool.Used = pool.Max
		}
		if pool.Used < 0 {
			problems = append(problems, fmt.Sprintf(
				"%s slot level %d: negative used %d", pool.Type, pool.Level, pool.Used))
			pool.Used = 0
		}
	}

	for _, cl := range char.Classes {
		if cl.HitDiceSpent > cl.Level {
			problems = append(problems, fmt.Sprintf(
				"class %s: hit dice spent %d > level %d", cl.ClassSlug, cl.HitDiceSpent, cl.Level))
			cl.HitDiceSpent = cl.Level
		}
		if cl.HitDiceSpent < 0 {
			problems = append(problems, fmt.Sprintf(
				"class %s: negative hit dice spent %d", cl.ClassSlug, cl.HitDiceSpent))
			cl.HitDiceSpent = 0
		}
	}

	for _, grant := range char.Features {
		if grant.MaxUses == nil || *grant.MaxUses < 0 {
			continue
		}
		if grant.UsesRemaining > *grant.MaxUses {
			problems = append(problems, fmt.Sprintf(
				"feature %s: uses remaining %d > max %d", grant.FeatureSlug, grant.UsesRemaining, *grant.MaxUses))
			grant.UsesRemaining = *grant.MaxUses
		}
		if grant.UsesRemaining < 0 {
			problems = append(problems, fmt.Sprintf(
				"feature %s: negative uses remaining %d", grant.FeatureSlug, grant.UsesRemaining))
			grant.UsesRemaining = 0
		}
	}

	return problems
}
