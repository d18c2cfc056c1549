package models

import (
	"fmt"

	"github.com/RasuriVIGNESH/peerconnect/internal/config"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func InitDB(cfg *config.DatabaseConfig) error {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	case "mysql":
		dialector = mysql.Open(cfg.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}

	DB = db
	return nil
}

func AutoMigrate() error {
	return DB.AutoMigrate(
		&User{},
		&Project{},
		&ProjectMember{},
		&ProjectInvitation{},
		&ProjectJoinRequest{},
		&Skill{},
		&UserSkill{},
		&ProjectSkill{},
		&Notification{},
	)
}

func GetDB() *gorm.DB {
	return DB
}

// predefinedSkills is the starter catalog seeded on first boot. Ids are
// content-addressed, so re-seeding is idempotent.
var predefinedSkills = map[string][]string{
	"Programming Languages": {"Java", "Python", "JavaScript", "TypeScript", "Go", "C++", "C#", "Rust", "Kotlin", "Swift"},
	"Web Development":       {"React", "Angular", "Vue", "Node.js", "Django", "Spring Boot", "HTML", "CSS"},
	"Data":                  {"SQL", "PostgreSQL", "MongoDB", "Redis", "Machine Learning", "Data Analysis"},
	"DevOps":                {"Docker", "Kubernetes", "AWS", "CI/CD", "Linux"},
	"Design":                {"UI Design", "UX Research", "Figma"},
}

// SeedDefaultData creates the predefined skill catalog if absent.
func SeedDefaultData() error {
	for category, names := range predefinedSkills {
		for _, name := range names {
			skill, err := NewSkill(name, category)
			if err != nil {
				return err
			}
			skill.IsPredefined = true

			var count int64
			DB.Model(&Skill{}).Where("id = ?", skill.ID).Count(&count)
			if count == 0 {
				if err := DB.Create(skill).Error; err != nil {
					return err
				}
			}
		}
	}
	return nil
}
