// Command seed loads the development fixtures: two users, five tags,
// five calls and six tasks.
package main

import (
	"context"
	"log"

	"calltrack/internal/config"
	"calltrack/internal/db"
	"calltrack/internal/model"
	"calltrack/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	log.Println("🌱 Starting database seeding...")

	cfg := config.Load()
	gdb, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(gdb)
	tags := repository.NewTagRepository(gdb)
	calls := repository.NewCallRepository(gdb)
	tasks := repository.NewTaskRepository(gdb)

	if err := seedUsers(ctx, users); err != nil {
		log.Fatalf("❌ Database seeding failed: %v", err)
	}
	createdTags, err := seedTags(ctx, tags)
	if err != nil {
		log.Fatalf("❌ Database seeding failed: %v", err)
	}
	createdCalls, err := seedCalls(ctx, calls, createdTags)
	if err != nil {
		log.Fatalf("❌ Database seeding failed: %v", err)
	}
	if err := seedTasks(ctx, tasks, createdCalls); err != nil {
		log.Fatalf("❌ Database seeding failed: %v", err)
	}

	log.Println("✅ Database seeding completed successfully!")
}

func seedUsers(ctx context.Context, users *repository.UserRepository) error {
	log.Println("👤 Seeding users...")

	fixtures := []struct {
		username string
		password string
		role     string
	}{
		{"admin", "1", model.RoleAdmin},
		{"user", "1", model.RoleUser},
	}

	for _, f := range fixtures {
		existing, err := users.FindByUsername(ctx, f.username)
		if err != nil {
			return err
		}
		if existing != nil {
			log.Printf("  - User already exists: %s", f.username)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(f.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := &model.User{Username: f.username, PasswordHash: string(hash), Role: f.role}
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		log.Printf("  ✓ Created user: %s (%s)", f.username, f.role)
	}
	return nil
}

func seedTags(ctx context.Context, tags *repository.TagRepository) ([]model.Tag, error) {
	log.Println("🏷️  Seeding tags...")

	fixtures := []model.Tag{
		{Name: "Urgent", Description: "High priority items", Color: "#ff4444"},
		{Name: "Important", Description: "Important but not urgent", Color: "#ffaa00"},
		{Name: "Follow-up", Description: "Requires follow-up action", Color: "#44ff44"},
		{Name: "Meeting", Description: "Meeting related calls", Color: "#4444ff"},
		{Name: "Customer", Description: "Customer service calls", Color: "#ff44ff"},
	}

	created := make([]model.Tag, 0, len(fixtures))
	for _, tag := range fixtures {
		if err := tags.Create(ctx, &tag); err != nil {
			return nil, err
		}
		created = append(created, tag)
		log.Printf("  ✓ Created tag: %s", tag.Name)
	}
	return created, nil
}

func seedCalls(ctx context.Context, calls *repository.CallRepository, tags []model.Tag) ([]model.Call, error) {
	log.Println("📞 Seeding calls...")

	fixtures := []struct {
		title  string
		userID uint
		tags   []uint
	}{
		{"Client consultation call", 1, []uint{tags[0].ID, tags[1].ID}},
		{"Team standup meeting", 2, []uint{tags[3].ID}},
		{"Product demo session", 1, []uint{tags[1].ID, tags[3].ID}},
		{"Customer support call", 3, []uint{tags[0].ID, tags[4].ID}},
		{"Project review meeting", 4, []uint{tags[2].ID, tags[3].ID}},
	}

	created := make([]model.Call, 0, len(fixtures))
	for _, f := range fixtures {
		call := &model.Call{Title: f.title, UserID: f.userID}
		if err := calls.CreateWithTags(ctx, call, f.tags); err != nil {
			return nil, err
		}
		created = append(created, *call)
		log.Printf("  ✓ Created call: %s", f.title)
	}
	return created, nil
}

func seedTasks(ctx context.Context, tasks *repository.TaskRepository, calls []model.Call) error {
	log.Println("✅ Seeding tasks...")

	fixtures := []struct {
		title  string
		status model.TaskStatus
		callID uint
	}{
		{"Send follow-up email", model.TaskStatusOpen, calls[0].ID},
		{"Update project timeline", model.TaskStatusInProgress, calls[0].ID},
		{"Schedule next meeting", model.TaskStatusCompleted, calls[1].ID},
		{"Prepare demo materials", model.TaskStatusOpen, calls[2].ID},
		{"Review customer feedback", model.TaskStatusInProgress, calls[3].ID},
		{"Document action items", model.TaskStatusOpen, calls[4].ID},
	}

	for _, f := range fixtures {
		task := &model.Task{Title: f.title, Status: f.status, CallID: f.callID}
		if err := tasks.Create(ctx, task); err != nil {
			return err
		}
		log.Printf("  ✓ Created task: %s (%s)", f.title, f.status)
	}
	return nil
}
