package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"anonchat/backend/internal/config"
	"anonchat/backend/internal/storage"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		config.Getenv("DB_HOST", "localhost"),
		config.Getenv("DB_USER", "user"),
		config.Getenv("DB_PASSWORD", "password"),
		config.Getenv("DB_NAME", "anonchatdb"),
		config.Getenv("DB_PORT", "5432"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Getenv("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	store := storage.NewStorageService(db, rdb)

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <stats|rooms|purge> [args]")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "stats":
		counters, err := store.Counters()
		if err != nil {
			log.Fatalf("Error reading counters: %v", err)
		}
		for name, n := range counters {
			fmt.Printf("%-16s %d\n", name, n)
		}
	case "rooms":
		limit := 20
		if len(os.Args) > 2 {
			limit, err = strconv.Atoi(os.Args[2])
			if err != nil {
				fmt.Println("Invalid limit. Please provide an integer.")
				os.Exit(1)
			}
		}
		recs, err := store.RecentRooms(limit)
		if err != nil {
			log.Fatalf("Error listing rooms: %v", err)
		}
		for _, rec := range recs {
			state := "closed"
			if rec.IsActive {
				state = "active"
			}
			fmt.Printf("%s  %s  %s  %dms\n",
				rec.StartedAt.Format(time.RFC3339), rec.RoomID, state, rec.DurationMs)
		}
	case "purge":
		days := config.DefaultRetentionDays
		if len(os.Args) > 2 {
			days, err = strconv.Atoi(os.Args[2])
			if err != nil {
				fmt.Println("Invalid day count. Please provide an integer.")
				os.Exit(1)
			}
		}
		cutoff := time.Now().AddDate(0, 0, -days)
		n, err := store.PurgeBefore(cutoff)
		if err != nil {
			log.Fatalf("Error purging records: %v", err)
		}
		fmt.Printf("Purged %d archived rooms older than %d days.\n", n, days)
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}
