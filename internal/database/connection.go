// internal/database/connection.go
package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pawanbishnoiii/shineveda-backend/internal/config"
	"github.com/pawanbishnoiii/shineveda-backend/internal/models"
)

var DB *gorm.DB

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var err error
	var gormConfig *gorm.Config

	// Configure GORM logger
	if cfg.LogLevel == "silent" {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		}
	} else {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		}
	}

	// Connect to database
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection established successfully")
	return DB, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting underlying sql.DB: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("Database connection closed successfully")
	}
}

func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	// Enable UUID extension
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error; err != nil {
		return fmt.Errorf("failed to create UUID extension: %w", err)
	}

	// Run auto-migrations
	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Inquiry{},
		&models.Favorite{},
		&models.Testimonial{},
		&models.Page{},
		&models.Media{},
		&models.SeoSetting{},
		&models.PageView{},
		&models.AuditLog{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Create indexes
	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		// Product indexes
		"CREATE INDEX IF NOT EXISTS idx_products_category_active ON products(category_id, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_products_active_rank ON products(is_active, sort_rank, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_products_origin ON products(origin)",
		"CREATE INDEX IF NOT EXISTS idx_products_featured ON products(is_featured) WHERE is_featured = true",
		"CREATE INDEX IF NOT EXISTS idx_products_certifications ON products USING GIN(certifications)",

		// Category indexes
		"CREATE INDEX IF NOT EXISTS idx_categories_active_order ON categories(is_active, sort_order)",

		// Inquiry indexes
		"CREATE INDEX IF NOT EXISTS idx_inquiries_status_created ON inquiries(status, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_inquiries_product ON inquiries(product_id)",

		// Analytics indexes
		"CREATE INDEX IF NOT EXISTS idx_page_views_created ON page_views(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_page_views_product_created ON page_views(product_id, created_at DESC)",

		// Audit indexes
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_user_action ON audit_logs(user_id, action)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_resource ON audit_logs(resource_type, resource_id)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_created ON audit_logs(created_at DESC)",

		// Full-text search index for the catalog search predicate
		"CREATE INDEX IF NOT EXISTS idx_products_search ON products USING GIN(to_tsvector('english', name || ' ' || short_description || ' ' || long_description))",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			log.Printf("Warning: Failed to create index: %s, Error: %v", index, err)
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}

// Seed initial data
func SeedInitialData(db *gorm.DB) error {
	log.Println("Seeding initial data...")

	// Create default admin user
	var adminCount int64
	db.Model(&models.User{}).Where("role = ?", models.UserRoleAdmin).Count(&adminCount)

	if adminCount == 0 {
		admin := &models.User{
			Name:   "Administrator",
			Email:  "admin@shineveda.com",
			Role:   models.UserRoleAdmin,
			Status: models.UserStatusActive,
		}

		if err := admin.SetPassword("ChangeMe123!"); err != nil {
			return fmt.Errorf("failed to set admin password: %w", err)
		}

		if err := db.Create(admin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		log.Println("Default admin user created successfully")
	}

	// Create default SEO settings
	defaultSettings := []models.SeoSetting{
		{
			Key:         models.SeoKeySiteTitle,
			Value:       models.JSONB{"value": "ShineVeda Exports | Premium Agricultural Products from India"},
			Description: "Site title used in meta tags and the sitemap",
		},
		{
			Key:         models.SeoKeySiteDescription,
			Value:       models.JSONB{"value": "Exporter of premium cumin, guar gum, psyllium husk and other agri commodities from Rajasthan, India."},
			Description: "Default meta description",
		},
		{
			Key:         models.SeoKeyKeywords,
			Value:       models.JSONB{"value": "agricultural exports, cumin seeds, guar gum, psyllium husk, India"},
			Description: "Default meta keywords",
		},
		{
			Key:         models.SeoKeyBaseURL,
			Value:       models.JSONB{"value": "https://shineveda.com"},
			Description: "Canonical base URL for sitemap and og tags",
		},
		{
			Key:         models.SeoKeyOgImage,
			Value:       models.JSONB{"value": ""},
			Description: "Default social sharing image URL",
		},
	}

	for _, setting := range defaultSettings {
		var count int64
		db.Model(&models.SeoSetting{}).Where("key = ?", setting.Key).Count(&count)

		if count == 0 {
			var admin models.User
			if err := db.Where("role = ?", models.UserRoleAdmin).First(&admin).Error; err == nil {
				setting.UpdatedBy = admin.ID
			}
			if err := db.Create(&setting).Error; err != nil {
				log.Printf("Warning: Failed to create SEO setting %s: %v", setting.Key, err)
			}
		}
	}

	log.Println("Initial data seeding completed")
	return nil
}

// Transaction helper
func WithTransaction(db *gorm.DB, fn func(*gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
