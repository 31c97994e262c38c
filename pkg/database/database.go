package database

import (
	"errors"
	"fmt"
	"log"

	"neuro_study_backend/internal/config"
	"neuro_study_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "demo123"
)

func DSN(cfg *config.DatabaseConfig) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)
}

func InitDB(cfg *config.DatabaseConfig, debug bool) (*gorm.DB, error) {
	logLevel := logger.Warn
	if debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.Open(DSN(cfg)), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}
	log.Println("Database migration completed")

	if err := SeedDemoUser(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.CognitiveEvent{},
		&model.EnergyLog{},
		&model.StudyPlan{},
		&model.Feedback{},
	)
}

// SeedDemoUser 默认的演示账号，已存在时跳过
func SeedDemoUser(db *gorm.DB) error {
	var existing model.User
	err := db.Where("email = ?", DemoEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	demo := &model.User{
		Name:           "Demo Student",
		Email:          DemoEmail,
		Password:       string(hashed),
		Subjects:       []string{"Physics", "Math", "Chemistry"},
		ExamDate:       "2026-12-15",
		DailyFreeSlots: []string{"09:00-12:00", "14:00-17:00", "19:00-21:00"},
	}
	if err := db.Create(demo).Error; err != nil {
		return err
	}
	log.Println("Demo user created:", DemoEmail)
	return nil
}
