package moderation_test

import (
	"mime/multipart"

	"fleetportal/backend/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockFaultStore struct {
	mock.Mock
}

func (m *MockFaultStore) Create(fault *models.Fault) error {
	args := m.Called(fault)
	return args.Error(0)
}

func (m *MockFaultStore) FindByID(id uint) (*models.Fault, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Fault), args.Error(1)
}

func (m *MockFaultStore) ListApproved() ([]models.Fault, error) {
	args := m.Called()
	return args.Get(0).([]models.Fault), args.Error(1)
}

func (m *MockFaultStore) ListPending() ([]models.Fault, error) {
	args := m.Called()
	return args.Get(0).([]models.Fault), args.Error(1)
}

func (m *MockFaultStore) MarkApproved(id uint) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

type MockCourseStore struct {
	mock.Mock
}

func (m *MockCourseStore) Create(course *models.Course) error {
	args := m.Called(course)
	return args.Error(0)
}

func (m *MockCourseStore) ListAll() ([]models.Course, error) {
	args := m.Called()
	return args.Get(0).([]models.Course), args.Error(1)
}

func (m *MockCourseStore) ListByDepartment(department string) ([]models.Course, error) {
	args := m.Called(department)
	return args.Get(0).([]models.Course), args.Error(1)
}

type MockSaver struct {
	mock.Mock
}

func (m *MockSaver) Save(file *multipart.FileHeader) (string, error) {
	args := m.Called(file)
	return args.String(0), args.Error(1)
}

func (m *MockSaver) SaveOptional(file *multipart.FileHeader) (*string, error) {
	args := m.Called(file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}
