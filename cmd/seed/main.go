package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"portfolio-go-backend/config"
	"portfolio-go-backend/ent"
	"portfolio-go-backend/ent/education"
	"portfolio-go-backend/ent/experience"
	"portfolio-go-backend/ent/project"
	"portfolio-go-backend/ent/skill"
	"portfolio-go-backend/ent/user"
	"portfolio-go-backend/pkg/infrastructure/datastore"
	"portfolio-go-backend/pkg/util/auth"

	"github.com/hashicorp/go-multierror"
)

type SeedUser struct {
	Email    string
	Name     string
	Password string
}

var seedUsers = []SeedUser{
	{
		Email:    "admin@example.com",
		Name:     "Admin User",
		Password: "admin12345",
	},
}

func main() {
	// Parse command line flags
	env := flag.String("env", "", "Environment (development, test, e2e, staging, production)")
	truncate := flag.Bool("truncate", false, "Truncate data before seeding")
	flag.Parse()

	// Set environment if provided via flag, otherwise rely on APP_ENV or default
	if *env != "" {
		os.Setenv("APP_ENV", *env)
	}

	// Initialize config
	config.ReadConfig(config.ReadConfigOption{})
	log.Printf("Starting seed tool for environment: %s", config.C.AppEnv)

	// Initialize database client
	client, err := datastore.NewClient()
	if err != nil {
		log.Fatalf("Failed to create database client: %v", err)
	}
	defer client.Close()

	ctx := context.Background()

	// Handle truncation
	if *truncate {
		if err := truncateData(ctx, client); err != nil {
			log.Fatalf("Failed to truncate data: %v", err)
		}
		log.Println("Truncation completed successfully!")
	}

	// Run seeds
	if err := seedUsersData(ctx, client); err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	if err := seedPortfolioData(ctx, client); err != nil {
		log.Fatalf("Failed to seed portfolio data: %v", err)
	}

	log.Println("Seeding completed successfully!")
}

// truncateData deletes every table, collecting errors so one failure does
// not hide the others.
func truncateData(ctx context.Context, client *ent.Client) error {
	var result *multierror.Error

	log.Println("Truncating users table...")
	if _, err := client.User.Delete().Exec(ctx); err != nil {
		result = multierror.Append(result, fmt.Errorf("failed to delete users: %w", err))
	}

	log.Println("Truncating profiles table...")
	if _, err := client.Profile.Delete().Exec(ctx); err != nil {
		result = multierror.Append(result, fmt.Errorf("failed to delete profiles: %w", err))
	}

	log.Println("Truncating educations table...")
	if _, err := client.Education.Delete().Exec(ctx); err != nil {
		result = multierror.Append(result, fmt.Errorf("failed to delete educations: %w", err))
	}

	log.Println("Truncating experiences table...")
	if _, err := client.Experience.Delete().Exec(ctx); err != nil {
		result = multierror.Append(result, fmt.Errorf("failed to delete experiences: %w", err))
	}

	log.Println("Truncating skills table...")
	if _, err := client.Skill.Delete().Exec(ctx); err != nil {
		result = multierror.Append(result, fmt.Errorf("failed to delete skills: %w", err))
	}

	log.Println("Truncating certifications table...")
	if _, err := client.Certification.Delete().Exec(ctx); err != nil {
		result = multierror.Append(result, fmt.Errorf("failed to delete certifications: %w", err))
	}

	log.Println("Truncating projects table...")
	if _, err := client.Project.Delete().Exec(ctx); err != nil {
		result = multierror.Append(result, fmt.Errorf("failed to delete projects: %w", err))
	}

	log.Println("Truncating contacts table...")
	if _, err := client.Contact.Delete().Exec(ctx); err != nil {
		result = multierror.Append(result, fmt.Errorf("failed to delete contacts: %w", err))
	}

	log.Println("Truncating site settings table...")
	if _, err := client.SiteSettings.Delete().Exec(ctx); err != nil {
		result = multierror.Append(result, fmt.Errorf("failed to delete site settings: %w", err))
	}

	return result.ErrorOrNil()
}

func seedUsersData(ctx context.Context, client *ent.Client) error {
	log.Println("Seeding users...")

	for _, u := range seedUsers {
		// Check if user already exists
		exists, err := client.User.Query().
			Where(user.EmailEQ(u.Email)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check if user exists: %w", err)
		}

		if exists {
			log.Printf("User %s already exists, skipping", u.Email)
			continue
		}

		// Hash password using auth package (Argon2)
		hashedPassword, err := auth.HashPassword(u.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password for user %s: %w", u.Email, err)
		}

		// Create user
		_, err = client.User.Create().
			SetEmail(u.Email).
			SetName(u.Name).
			SetPassword(hashedPassword).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", u.Email, err)
		}

		log.Printf("Created user: %s", u.Email)
	}

	return nil
}

func seedPortfolioData(ctx context.Context, client *ent.Client) error {
	n, err := client.Profile.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count profiles: %w", err)
	}
	if n > 0 {
		log.Println("Portfolio data already present, skipping")
		return nil
	}

	log.Println("Seeding portfolio data...")

	date := func(year, month, day int) time.Time {
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	}

	if _, err := client.Profile.Create().
		SetName("Jean Dupont").
		SetTitle("Développeur Full Stack").
		SetBio("Développeur passionné avec une expérience en **Go** et *Python*.").
		SetEmail("jean.dupont@example.com").
		SetLocation("Paris, France").
		SetGithub("https://github.com/jdupont").
		SetLinkedin("https://linkedin.com/in/jdupont").
		Save(ctx); err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	if _, err := client.Education.Create().
		SetDegree(education.DegreeMaster).
		SetFieldOfStudy("Informatique").
		SetInstitution("Université Paris-Saclay").
		SetLocation("Paris").
		SetStartDate(date(2018, 9, 1)).
		SetEndDate(date(2020, 6, 30)).
		SetGrade("Mention Bien").
		Save(ctx); err != nil {
		return fmt.Errorf("failed to create education: %w", err)
	}

	if _, err := client.Experience.Create().
		SetTitle("Développeur Backend").
		SetCompany("Acme SAS").
		SetLocation("Paris").
		SetJobType(experience.JobTypeFullTime).
		SetStartDate(date(2020, 9, 1)).
		SetIsCurrent(true).
		SetDescription("Conception et développement d'API REST.").
		SetTechnologies("Go,PostgreSQL,Docker").
		Save(ctx); err != nil {
		return fmt.Errorf("failed to create experience: %w", err)
	}

	skills := []struct {
		name        string
		category    skill.Category
		proficiency skill.Proficiency
		years       int
		featured    bool
	}{
		{"Go", skill.CategoryTechnical, skill.ProficiencyExpert, 5, true},
		{"Python", skill.CategoryTechnical, skill.ProficiencyAdvanced, 4, true},
		{"PostgreSQL", skill.CategoryTool, skill.ProficiencyAdvanced, 5, true},
		{"Anglais", skill.CategoryLanguage, skill.ProficiencyIntermediate, 10, false},
	}
	for _, s := range skills {
		if _, err := client.Skill.Create().
			SetName(s.name).
			SetCategory(s.category).
			SetProficiency(s.proficiency).
			SetYearsOfExperience(s.years).
			SetIsFeatured(s.featured).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to create skill %s: %w", s.name, err)
		}
	}

	if _, err := client.Certification.Create().
		SetName("AWS Certified Solutions Architect").
		SetIssuingOrganization("Amazon Web Services").
		SetIssueDate(date(2022, 3, 15)).
		SetCredentialID("AWS-123456").
		SetCredentialURL("https://aws.amazon.com/verification").
		Save(ctx); err != nil {
		return fmt.Errorf("failed to create certification: %w", err)
	}

	if _, err := client.Project.Create().
		SetTitle("Portfolio Backend").
		SetDescription("API et rendu serveur du site portfolio.").
		SetDetailedDescription("Construit avec **Go**, [ent](https://entgo.io) et Echo.").
		SetTechnologies("Go,Echo,ent,PostgreSQL").
		SetStatus(project.StatusCompleted).
		SetStartDate(date(2023, 1, 10)).
		SetEndDate(date(2023, 6, 30)).
		SetGithubURL("https://github.com/jdupont/portfolio").
		SetIsFeatured(true).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	if _, err := client.SiteSettings.Create().
		SetSiteTitle("Jean Dupont — Portfolio").
		SetSiteDescription("Portfolio de Jean Dupont, développeur full stack.").
		SetFooterText("© Jean Dupont").
		Save(ctx); err != nil {
		return fmt.Errorf("failed to create site settings: %w", err)
	}

	log.Println("Seeded portfolio data")
	return nil
}
