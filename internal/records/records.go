// Package records covers the flat operational record families: driver
// logs, announcements and location photos. These have no state machine;
// each operation is a single insert or a single keyed query.
package records

import (
	"mime/multipart"

	"fleetportal/backend/internal/apperr"
	"fleetportal/backend/internal/models"
	"fleetportal/backend/internal/storage"
	"fleetportal/backend/internal/uploads"
)

// Service bundles the three ancillary stores.
type Service struct {
	Drivers   storage.DriverLogStore
	Messages  storage.AnnouncementStore
	Locations storage.LocationStore
	Files     uploads.Saver
}

// NewService creates a new records service.
func NewService(drivers storage.DriverLogStore, messages storage.AnnouncementStore, locations storage.LocationStore, files uploads.Saver) *Service {
	return &Service{Drivers: drivers, Messages: messages, Locations: locations, Files: files}
}

// AddDriverLog records a driver shift entry.
func (s *Service) AddDriverLog(date, name string) (*models.DriverLog, error) {
	log := &models.DriverLog{Date: date, Name: name}
	if err := s.Drivers.Create(log); err != nil {
		return nil, apperr.Storage(err)
	}
	return log, nil
}

// DriverLogsByDate lists shift entries for one date.
func (s *Service) DriverLogsByDate(date string) ([]models.DriverLog, error) {
	logs, err := s.Drivers.ListByDate(date)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return logs, nil
}

// AddAnnouncement records a portal-wide message.
func (s *Service) AddAnnouncement(title, content, createdBy string) (*models.Announcement, error) {
	msg := &models.Announcement{Title: title, Content: content, CreatedBy: createdBy}
	if err := s.Messages.Create(msg); err != nil {
		return nil, apperr.Storage(err)
	}
	return msg, nil
}

// Announcements lists all messages, newest first.
func (s *Service) Announcements() ([]models.Announcement, error) {
	msgs, err := s.Messages.ListAll()
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return msgs, nil
}

// AddLocationPhoto records a location entry, storing the optional image
// first so a failed write never leaves a record pointing at nothing.
func (s *Service) AddLocationPhoto(department, title string, image *multipart.FileHeader) (*models.LocationPhoto, error) {
	ref, err := s.Files.SaveOptional(image)
	if err != nil {
		return nil, err
	}
	photo := &models.LocationPhoto{Department: department, Title: title, ImageURL: ref}
	if err := s.Locations.Create(photo); err != nil {
		return nil, apperr.Storage(err)
	}
	return photo, nil
}

// LocationPhotosByDepartment lists photos for one department.
func (s *Service) LocationPhotosByDepartment(department string) ([]models.LocationPhoto, error) {
	photos, err := s.Locations.ListByDepartment(department)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return photos, nil
}
