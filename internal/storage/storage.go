// Package storage persists the portal's six entity families. Each family
// lives in its own sqlite database file with its own *gorm.DB handle; no
// query ever crosses partitions, so there are no multi-partition
// transactions to coordinate.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"fleetportal/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// UserStore is the directory partition.
type UserStore interface {
	FindByUsername(username string) (*models.User, error)
	FindByCredentials(username, password string) (*models.User, error)
	Create(user *models.User) error
}

// FaultStore is the fault-report partition.
type FaultStore interface {
	Create(fault *models.Fault) error
	FindByID(id uint) (*models.Fault, error)
	ListApproved() ([]models.Fault, error)
	ListPending() ([]models.Fault, error)
	MarkApproved(id uint) (int64, error)
}

// CourseStore is the course partition.
type CourseStore interface {
	Create(course *models.Course) error
	ListAll() ([]models.Course, error)
	ListByDepartment(department string) ([]models.Course, error)
}

// DriverLogStore is the driver-shift partition.
type DriverLogStore interface {
	Create(log *models.DriverLog) error
	ListByDate(date string) ([]models.DriverLog, error)
}

// AnnouncementStore is the announcements partition.
type AnnouncementStore interface {
	Create(msg *models.Announcement) error
	ListAll() ([]models.Announcement, error)
}

// LocationStore is the location-photo partition.
type LocationStore interface {
	Create(photo *models.LocationPhoto) error
	ListByDepartment(department string) ([]models.LocationPhoto, error)
}

// Partitions bundles the six opened stores.
type Partitions struct {
	Users     *UserService
	Faults    *FaultService
	Courses   *CourseService
	Drivers   *DriverLogService
	Messages  *AnnouncementService
	Locations *LocationService

	handles []*gorm.DB
}

// Open opens one sqlite file per entity family under dataDir and migrates
// each partition's single table. rdb may be nil; when present it backs the
// approved-faults cache.
func Open(dataDir string, rdb *redis.Client) (*Partitions, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	p := &Partitions{}

	usersDB, err := p.open(dataDir, "users.sqlite", &models.User{})
	if err != nil {
		return nil, err
	}
	faultsDB, err := p.open(dataDir, "faults.sqlite", &models.Fault{})
	if err != nil {
		return nil, err
	}
	coursesDB, err := p.open(dataDir, "courses.sqlite", &models.Course{})
	if err != nil {
		return nil, err
	}
	driversDB, err := p.open(dataDir, "drivers.sqlite", &models.DriverLog{})
	if err != nil {
		return nil, err
	}
	messagesDB, err := p.open(dataDir, "messages.sqlite", &models.Announcement{})
	if err != nil {
		return nil, err
	}
	locationsDB, err := p.open(dataDir, "locations.sqlite", &models.LocationPhoto{})
	if err != nil {
		return nil, err
	}

	p.Users = &UserService{DB: usersDB}
	p.Faults = &FaultService{DB: faultsDB, Redis: rdb, Ctx: context.Background()}
	p.Courses = &CourseService{DB: coursesDB}
	p.Drivers = &DriverLogService{DB: driversDB}
	p.Messages = &AnnouncementService{DB: messagesDB}
	p.Locations = &LocationService{DB: locationsDB}
	return p, nil
}

func (p *Partitions) open(dataDir, file string, model any) (*gorm.DB, error) {
	dsn := filepath.Join(dataDir, file) + "?_journal_mode=WAL&_synchronous=NORMAL"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 gormlogger.Discard,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", file, err)
	}
	if err := db.AutoMigrate(model); err != nil {
		return nil, fmt.Errorf("migrate %s: %w", file, err)
	}
	p.handles = append(p.handles, db)
	return db, nil
}

// Close closes every partition handle.
func (p *Partitions) Close() error {
	var firstErr error
	for _, db := range p.handles {
		sqlDB, err := db.DB()
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if err := sqlDB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
