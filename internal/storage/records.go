package storage

import (
	"fleetportal/backend/internal/models"

	"gorm.io/gorm"
)

// DriverLogService is the gorm-backed DriverLogStore.
type DriverLogService struct {
	DB *gorm.DB
}

func (s *DriverLogService) Create(log *models.DriverLog) error {
	return s.DB.Create(log).Error
}

func (s *DriverLogService) ListByDate(date string) ([]models.DriverLog, error) {
	logs := []models.DriverLog{}
	if err := s.DB.Where("date = ?", date).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// AnnouncementService is the gorm-backed AnnouncementStore.
type AnnouncementService struct {
	DB *gorm.DB
}

func (s *AnnouncementService) Create(msg *models.Announcement) error {
	return s.DB.Create(msg).Error
}

// ListAll returns announcements newest first.
func (s *AnnouncementService) ListAll() ([]models.Announcement, error) {
	msgs := []models.Announcement{}
	if err := s.DB.Order("created_at desc").Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

// LocationService is the gorm-backed LocationStore.
type LocationService struct {
	DB *gorm.DB
}

func (s *LocationService) Create(photo *models.LocationPhoto) error {
	return s.DB.Create(photo).Error
}

func (s *LocationService) ListByDepartment(department string) ([]models.LocationPhoto, error) {
	photos := []models.LocationPhoto{}
	if err := s.DB.Where("department = ?", department).Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}
