package storage

import (
	"fleetportal/backend/internal/models"

	"gorm.io/gorm"
)

// CourseService is the gorm-backed CourseStore.
type CourseService struct {
	DB *gorm.DB
}

func (s *CourseService) Create(course *models.Course) error {
	return s.DB.Create(course).Error
}

func (s *CourseService) ListAll() ([]models.Course, error) {
	courses := []models.Course{}
	if err := s.DB.Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *CourseService) ListByDepartment(department string) ([]models.Course, error) {
	courses := []models.Course{}
	if err := s.DB.Where("department = ?", department).Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}
