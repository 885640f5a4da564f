package main

import (
	"context"
	"log"
	"time"

	"github.com/johnquangdev/teamsync/internal/adapter/repository"
	"github.com/johnquangdev/teamsync/internal/domain/entities"
	"github.com/johnquangdev/teamsync/internal/infrastructure/cache"
	"github.com/johnquangdev/teamsync/pkg/config"
	"github.com/johnquangdev/teamsync/pkg/id"
)

// Seeds a demo meeting with action items so the dashboard and reminder
// sweep have something to work with during local development.
func main() {
	log.Println("🚀 Seeding demo data...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Println("📦 Connecting to Redis...")
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	store := cache.NewRedisStore(redisClient)
	meetings := repository.NewMeetingRepository(store)
	actions := repository.NewActionRepository(store)
	ids := id.NewGenerator()
	ctx := context.Background()

	meeting := entities.NewMeeting(
		ids.MeetingID(),
		"Q3 Launch Planning",
		"Alice will send the budget report by Friday. Bob to review pricing tomorrow. Someone should book the venue.",
		"demo@example.com",
	)
	meeting.Processed = true

	if err := meetings.Create(ctx, meeting); err != nil {
		log.Fatalf("Failed to create meeting: %v", err)
	}
	log.Printf("✅ Created meeting %s", meeting.ID)

	today := entities.DateOnly(time.Now())
	yesterday := today.AddDate(0, 0, -1)
	friday := today.AddDate(0, 0, 3)

	items := []*entities.ActionItem{
		entities.NewActionItem(ids.ActionID(), meeting.ID, entities.ExtractedAction{
			Description: "Send the budget report to finance",
			Assignee:    "Alice",
			DueDate:     &friday,
			Priority:    entities.ActionItemPriorityHigh,
		}),
		entities.NewActionItem(ids.ActionID(), meeting.ID, entities.ExtractedAction{
			Description: "Review pricing proposal",
			Assignee:    "Bob",
			DueDate:     &today,
			Priority:    entities.ActionItemPriorityMedium,
		}),
		entities.NewActionItem(ids.ActionID(), meeting.ID, entities.ExtractedAction{
			Description: "Book the launch venue",
			Assignee:    "",
			DueDate:     &yesterday,
			Priority:    entities.ActionItemPriorityLow,
		}),
	}

	if err := actions.CreateBatch(ctx, items); err != nil {
		log.Fatalf("Failed to create action items: %v", err)
	}
	log.Printf("✅ Created %d action items", len(items))

	log.Println("🎉 Done. Hit GET /v1/dashboard or POST /v1/reminders/trigger to see it.")
}
