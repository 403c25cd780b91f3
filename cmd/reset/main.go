// Command reset truncates every table and restarts the id sequences.
package main

import (
	"fmt"
	"log"

	"calltrack/internal/config"
	"calltrack/internal/db"
)

func main() {
	log.Println("🧹 Starting database reset...")

	cfg := config.Load()
	gdb, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	tables := []string{"tasks", "call_tags", "calls", "tags", "users"}
	for _, table := range tables {
		stmt := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)
		if err := gdb.Exec(stmt).Error; err != nil {
			log.Fatalf("❌ Database reset failed: %v", err)
		}
		log.Printf("  ✓ Cleared and reset %s", table)
	}

	log.Println("✅ Database reset completed successfully!")
}
