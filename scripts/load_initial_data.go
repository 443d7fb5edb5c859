package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"crm-backend/internal/auth"
	"crm-backend/internal/config"
	"crm-backend/internal/database"
	"crm-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Image    string `yaml:"image,omitempty"`
}

type InteractionData struct {
	Content string `yaml:"content"`
	// DaysAgo backdates the entry so the log has a visible order
	DaysAgo int `yaml:"days_ago"`
}

type CompanyData struct {
	Name                string            `yaml:"name"`
	OwnerEmail          string            `yaml:"owner_email"`
	Status              string            `yaml:"status"`
	Website             string            `yaml:"website,omitempty"`
	Phone               string            `yaml:"phone,omitempty"`
	PrimaryContactName  string            `yaml:"primary_contact_name,omitempty"`
	PrimaryContactEmail string            `yaml:"primary_contact_email,omitempty"`
	PotentialValue      int64             `yaml:"potential_value"`
	LeadSource          string            `yaml:"lead_source"`
	Interactions        []InteractionData `yaml:"interactions,omitempty"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type CompaniesFile struct {
	Companies []CompanyData `yaml:"companies"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress SQL and "record not found" noise while seeding
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var users []UserData
	err := walkYAML(dataDir, "users", func(data []byte) error {
		var file UsersFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		users = append(users, file.Users...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	var companies []CompanyData
	err = walkYAML(dataDir, "companies", func(data []byte) error {
		var file CompaniesFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		companies = append(companies, file.Companies...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to load companies: %w", err)
	}

	// Create users first; companies are attached by owner email
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		userMap[user.Email] = user
		if created {
			userCreated++
		}
	}
	log.Printf("Users: %d created, %d total", userCreated, len(users))

	companyCreated, interactionCreated := 0, 0
	for _, companyData := range companies {
		n, created, err := createCompany(db, companyData, userMap)
		if err != nil {
			log.Printf("Warning: failed to create company %s: %v", companyData.Name, err)
			continue // Continue with other companies
		}
		if created {
			companyCreated++
			interactionCreated += n
		}
	}
	log.Printf("Companies: %d created, %d total", companyCreated, len(companies))
	log.Printf("Interactions: %d created", interactionCreated)

	return nil
}

// walkYAML calls load with the contents of every .yaml file under dataDir whose path mentions kind
func walkYAML(dataDir, kind string, load func([]byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(path, kind) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := load(data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	})
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	email := strings.ToLower(strings.TrimSpace(userData.Email))

	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, false, nil // created = false (existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	hash, err := auth.HashPassword(userData.Password)
	if err != nil {
		return nil, false, err
	}

	user = models.User{Name: userData.Name, Email: email, Image: userData.Image}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&models.Account{
			UserID:     user.ID,
			ProviderID: models.ProviderEmail,
			AccountID:  email,
			Password:   hash,
		}).Error
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, true, nil
}

// createCompany inserts a company with its interaction log. Existing companies
// (same owner and name) are left untouched.
func createCompany(db *gorm.DB, companyData CompanyData, userMap map[string]*models.User) (int, bool, error) {
	owner := userMap[strings.ToLower(companyData.OwnerEmail)]
	if owner == nil {
		return 0, false, fmt.Errorf("owner %s not found for company %s", companyData.OwnerEmail, companyData.Name)
	}

	status := models.CompanyStatus(companyData.Status)
	if status == "" {
		status = models.CompanyStatusLead
	}
	if !status.IsValid() {
		return 0, false, fmt.Errorf("invalid status %q", companyData.Status)
	}
	source := models.LeadSource(companyData.LeadSource)
	if source == "" {
		source = models.LeadSourceOther
	}
	if !source.IsValid() {
		return 0, false, fmt.Errorf("invalid lead source %q", companyData.LeadSource)
	}

	var existing models.Company
	err := db.Where("user_id = ? AND name = ?", owner.ID, companyData.Name).First(&existing).Error
	if err == nil {
		return 0, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, fmt.Errorf("failed to query company: %w", err)
	}

	company := models.Company{
		UserID:              owner.ID,
		Name:                companyData.Name,
		Status:              status,
		Website:             optional(companyData.Website),
		Phone:               optional(companyData.Phone),
		PrimaryContactName:  optional(companyData.PrimaryContactName),
		PrimaryContactEmail: optional(companyData.PrimaryContactEmail),
		PotentialValue:      companyData.PotentialValue,
		LeadSource:          source,
	}

	now := time.Now()
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&company).Error; err != nil {
			return err
		}
		for _, entry := range companyData.Interactions {
			interaction := models.Interaction{
				CompanyID: company.ID,
				Content:   entry.Content,
				CreatedAt: now.AddDate(0, 0, -entry.DaysAgo),
			}
			if err := tx.Create(&interaction).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, false, fmt.Errorf("failed to create company: %w", err)
	}
	return len(companyData.Interactions), true, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
