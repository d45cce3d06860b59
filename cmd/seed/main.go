package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"civicpulse/internal/config"
	"civicpulse/internal/db"
	"civicpulse/internal/model"
	"civicpulse/internal/repository"
)

// demoPassword is the login password for every seeded citizen.
const demoPassword = "password123"

type seedUser struct {
	Email    string
	FullName string
}

type seedIssue struct {
	ReporterEmail string
	Title         string
	Description   string
	Category      model.IssueCategory
	Location      string
	Priority      model.IssuePriority
}

var seedUsers = []seedUser{
	{Email: "alice@example.com", FullName: "Alice Nguyen"},
	{Email: "bob@example.com", FullName: "Bob Carver"},
	{Email: "carla@example.com", FullName: "Carla Mendez"},
}

var seedIssues = []seedIssue{
	{
		ReporterEmail: "alice@example.com",
		Title:         "Broken streetlight on Elm St",
		Description:   "Light has been out for two weeks, the corner is pitch dark at night.",
		Category:      model.CategoryInfrastructure,
		Location:      "Elm St & 3rd",
		Priority:      model.PriorityHigh,
	},
	{
		ReporterEmail: "alice@example.com",
		Title:         "Overflowing trash bins at Riverside Park",
		Description:   "Bins near the playground have not been emptied since last weekend.",
		Category:      model.CategorySanitation,
		Location:      "Riverside Park, north entrance",
		Priority:      model.PriorityMedium,
	},
	{
		ReporterEmail: "bob@example.com",
		Title:         "Deep pothole on Maple Avenue",
		Description:   "Pothole in the right lane is large enough to damage tires.",
		Category:      model.CategoryInfrastructure,
		Location:      "Maple Avenue 1200 block",
		Priority:      model.PriorityUrgent,
	},
	{
		ReporterEmail: "carla@example.com",
		Title:         "Water main leaking near bus stop",
		Description:   "Steady stream of water running across the sidewalk for days.",
		Category:      model.CategoryUtilities,
		Location:      "5th Ave & Pine St",
		Priority:      model.PriorityHigh,
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Issue{}, &model.Comment{}, &model.Notification{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	issueRepo := repository.NewIssueRepository(gormDB)

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), 10)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	usersByEmail := make(map[string]*model.User, len(seedUsers))
	created := 0
	for _, su := range seedUsers {
		existing, err := userRepo.FindByEmail(ctx, su.Email)
		if err == nil {
			usersByEmail[su.Email] = existing
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to look up user %s: %v", su.Email, err)
		}

		user := &model.User{
			Email:        su.Email,
			PasswordHash: string(hash),
			FullName:     su.FullName,
			Role:         model.RoleCitizen,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create user %s: %v", su.Email, err)
		}
		usersByEmail[su.Email] = user
		created++
	}
	log.Printf("Seeded %d new users (%d already present)", created, len(seedUsers)-created)

	created = 0
	for _, si := range seedIssues {
		reporter, ok := usersByEmail[si.ReporterEmail]
		if !ok {
			log.Printf("Skipping issue %q: unknown reporter %s", si.Title, si.ReporterEmail)
			continue
		}

		// Skip issues the reporter already filed with the same title so the
		// script stays re-runnable.
		existing, err := issueRepo.List(ctx, repository.IssueFilter{Search: si.Title})
		if err != nil {
			log.Fatalf("Failed to check for existing issue %q: %v", si.Title, err)
		}
		duplicate := false
		for _, e := range existing {
			if e.UserID == reporter.ID.String() && e.Title == si.Title {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}

		issue := &model.Issue{
			UserID:      reporter.ID.String(),
			UserName:    reporter.FullName,
			Title:       si.Title,
			Description: si.Description,
			Category:    si.Category,
			Location:    si.Location,
			Status:      model.StatusOpen,
			Priority:    si.Priority,
			PhotoURLs:   []string{},
		}
		if err := issueRepo.Create(ctx, issue); err != nil {
			log.Fatalf("Failed to create issue %q: %v", si.Title, err)
		}
		created++
	}
	log.Printf("Seeded %d new issues", created)
	log.Println("Seed completed")
}
