package database

import (
	"fmt"
	"log"

	"github.com/nahomt24/addis_estates/config"
	"github.com/nahomt24/addis_estates/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.BrokerProfile{},
		&models.Deposit{},
		&models.Property{},
		&models.PropertyImage{},
		&models.Inquiry{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}

	// A broker may hold at most one non-failed deposit. AutoMigrate cannot
	// express a partial index, so it is created directly.
	if err := EnsureDepositConstraint(DB); err != nil {
		log.Fatalf("🔥 Failed to create deposit uniqueness index: %v", err)
	}

	fmt.Println("✅ Database migration successful")
}

// EnsureDepositConstraint installs the partial unique index that serializes
// deposit submission at the storage layer: one PENDING or PAID row per broker.
func EnsureDepositConstraint(db *gorm.DB) error {
	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_deposits_one_outstanding
		 ON deposits (broker_id) WHERE status IN ('PENDING', 'PAID')`,
	).Error
}

func SeedAdmin() {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")

	var count int64
	if err := DB.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error; err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
		return
	}

	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
		return
	}

	adminUser := models.User{
		Name:     config.Config("ADMIN_FULL_NAME"),
		Email:    adminEmail,
		Password: string(hashedPassword),
		Role:     models.RoleAdmin,
	}

	if err := DB.Create(&adminUser).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
		return
	}

	log.Println("✅ Admin user seeded successfully")
}
