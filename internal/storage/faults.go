package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"fleetportal/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// approvedCacheKey holds the JSON-encoded approved listing in Redis.
const approvedCacheKey = "faults:approved"

// approvedCacheTTL bounds staleness if an invalidation is ever missed.
const approvedCacheTTL = 5 * time.Minute

// FaultService is the gorm-backed FaultStore. When Redis is non-nil the
// approved listing is served read-through from cache and invalidated on
// approval; cache failures degrade to plain database reads.
type FaultService struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// Create inserts a fault report. New reports are always pending.
func (s *FaultService) Create(fault *models.Fault) error {
	fault.Approved = false
	return s.DB.Create(fault).Error
}

// FindByID returns the fault with the given id, or (nil, nil) when absent.
func (s *FaultService) FindByID(id uint) (*models.Fault, error) {
	var fault models.Fault
	err := s.DB.First(&fault, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fault, nil
}

// ListApproved returns approved reports, most recently created first.
func (s *FaultService) ListApproved() ([]models.Fault, error) {
	if cached := s.cachedApproved(); cached != nil {
		return cached, nil
	}

	faults := []models.Fault{}
	if err := s.DB.Where("approved = ?", true).Order("id desc").Find(&faults).Error; err != nil {
		return nil, err
	}
	s.cacheApproved(faults)
	return faults, nil
}

// ListPending returns pending reports in insertion order.
func (s *FaultService) ListPending() ([]models.Fault, error) {
	faults := []models.Fault{}
	if err := s.DB.Where("approved = ?", false).Find(&faults).Error; err != nil {
		return nil, err
	}
	return faults, nil
}

// MarkApproved sets the approved flag on the given report and returns the
// number of rows changed. Approving a missing or already-approved report is
// not an error; gorm reports zero or one affected row either way and the
// update is idempotent.
func (s *FaultService) MarkApproved(id uint) (int64, error) {
	result := s.DB.Model(&models.Fault{}).Where("id = ?", id).Update("approved", true)
	if result.Error != nil {
		return 0, result.Error
	}
	s.invalidateApproved()
	return result.RowsAffected, nil
}

func (s *FaultService) cachedApproved() []models.Fault {
	if s.Redis == nil {
		return nil
	}
	raw, err := s.Redis.Get(s.Ctx, approvedCacheKey).Result()
	if errors.Is(err, redis.Nil) || err != nil {
		return nil
	}
	faults := []models.Fault{}
	if err := json.Unmarshal([]byte(raw), &faults); err != nil {
		return nil
	}
	return faults
}

func (s *FaultService) cacheApproved(faults []models.Fault) {
	if s.Redis == nil {
		return
	}
	raw, err := json.Marshal(faults)
	if err != nil {
		return
	}
	s.Redis.Set(s.Ctx, approvedCacheKey, raw, approvedCacheTTL)
}

func (s *FaultService) invalidateApproved() {
	if s.Redis == nil {
		return
	}
	s.Redis.Del(s.Ctx, approvedCacheKey)
}
