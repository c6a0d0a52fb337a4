package store

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"codeprep/backend/config"
	"codeprep/backend/models"
)

type Gorm struct {
	DB *gorm.DB
}

// NewGorm opens the Postgres connection and migrates the account tables.
func NewGorm(cfg *config.Config) (*Gorm, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.User{}, &models.RecentActivity{}); err != nil {
		return nil, err
	}

	return &Gorm{DB: db}, nil
}

func (s *Gorm) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.DB.Preload("Recent").Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Gorm) Create(user *models.User) error {
	return s.DB.Create(user).Error
}

// Save writes the whole record. Recent rows removed by a toggle are
// deleted explicitly since gorm associations only upsert.
func (s *Gorm) Save(user *models.User) error {
	if err := s.DB.Where("user_id = ?", user.ID).Delete(&models.RecentActivity{}).Error; err != nil {
		return err
	}
	for i := range user.Recent {
		user.Recent[i].ID = 0
		user.Recent[i].UserID = user.ID
	}
	return s.DB.Session(&gorm.Session{FullSaveAssociations: true}).Save(user).Error
}
