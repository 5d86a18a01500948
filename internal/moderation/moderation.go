// Package moderation owns the fault-report lifecycle and the role-based
// course visibility policy. Fault reports start pending and become visible
// in the general listing only after an administrator approves them; the
// transition is one-way and idempotent.
package moderation

import (
	"mime/multipart"

	"fleetportal/backend/internal/apperr"
	"fleetportal/backend/internal/config"
	"fleetportal/backend/internal/models"
	"fleetportal/backend/internal/storage"
	"fleetportal/backend/internal/uploads"

	"go.uber.org/zap"
)

// ApproveOutcome distinguishes the three ways an approval can land. The
// legacy wire contract collapses this to a numeric update count; callers
// that need the distinction have it here.
type ApproveOutcome int

const (
	// Approved means the report transitioned from pending to approved.
	Approved ApproveOutcome = iota
	// AlreadyApproved means the report was already in its terminal state.
	AlreadyApproved
	// NotFound means no report carries the given id.
	NotFound
)

// UpdatedCount is the backward-compatible wire representation: 1 for a real
// transition, 0 otherwise.
func (o ApproveOutcome) UpdatedCount() int64 {
	if o == Approved {
		return 1
	}
	return 0
}

// Service implements the moderation engine.
type Service struct {
	Faults  storage.FaultStore
	Courses storage.CourseStore
	Files   uploads.Saver
	Log     *zap.Logger
}

// NewService creates a new moderation service.
func NewService(faults storage.FaultStore, courses storage.CourseStore, files uploads.Saver, log *zap.Logger) *Service {
	return &Service{Faults: faults, Courses: courses, Files: files, Log: log}
}

// Submit records a new fault report in the pending state. Field contents
// are not validated; any submitter may file anything.
func (s *Service) Submit(username, issue, solution string, media *multipart.FileHeader) (*models.Fault, error) {
	ref, err := s.Files.SaveOptional(media)
	if err != nil {
		// A failed upload must not leave a dangling record behind it.
		return nil, err
	}

	fault := &models.Fault{
		Username: username,
		Issue:    issue,
		Solution: solution,
		Media:    ref,
	}
	if err := s.Faults.Create(fault); err != nil {
		return nil, apperr.Storage(err)
	}
	s.Log.Info("fault submitted", zap.Uint("id", fault.ID), zap.String("username", username))
	return fault, nil
}

// ListApproved returns approved reports, newest first.
func (s *Service) ListApproved() ([]models.Fault, error) {
	faults, err := s.Faults.ListApproved()
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return faults, nil
}

// ListPending returns reports awaiting approval, in insertion order.
func (s *Service) ListPending() ([]models.Fault, error) {
	faults, err := s.Faults.ListPending()
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return faults, nil
}

// Approve transitions the report to approved. The update itself is
// idempotent; the lookup beforehand only classifies the outcome.
func (s *Service) Approve(id uint) (ApproveOutcome, error) {
	fault, err := s.Faults.FindByID(id)
	if err != nil {
		return NotFound, apperr.Storage(err)
	}
	if fault == nil {
		return NotFound, nil
	}
	if fault.Approved {
		return AlreadyApproved, nil
	}

	if _, err := s.Faults.MarkApproved(id); err != nil {
		return NotFound, apperr.Storage(err)
	}
	s.Log.Info("fault approved", zap.Uint("id", id))
	return Approved, nil
}

// ListCourses applies the role visibility policy: tech_admin and call_admin
// see only their department's courses, every other role sees everything.
func (s *Service) ListCourses(role string) ([]models.Course, error) {
	var (
		courses []models.Course
		err     error
	)
	if dept, restricted := config.CourseVisibility[role]; restricted {
		courses, err = s.Courses.ListByDepartment(dept)
	} else {
		courses, err = s.Courses.ListAll()
	}
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return courses, nil
}

// SubmitCourseByFile creates a file-backed course. The file is mandatory
// and its reference lands in FileURL; Content stays empty.
func (s *Service) SubmitCourseByFile(title, department string, file *multipart.FileHeader) (*models.Course, error) {
	if file == nil {
		return nil, apperr.ErrBadRequest
	}
	ref, err := s.Files.Save(file)
	if err != nil {
		return nil, err
	}

	course := &models.Course{Title: title, Department: department, FileURL: &ref}
	if err := s.Courses.Create(course); err != nil {
		return nil, apperr.Storage(err)
	}
	s.Log.Info("course created from file", zap.Uint("id", course.ID), zap.String("title", title))
	return course, nil
}

// SubmitCourseManually creates an authored course. The optional attachment
// lands in MediaURL, a slot kept distinct from the file path's FileURL.
func (s *Service) SubmitCourseManually(title, department, content string, file *multipart.FileHeader) (*models.Course, error) {
	ref, err := s.Files.SaveOptional(file)
	if err != nil {
		return nil, err
	}

	course := &models.Course{Title: title, Department: department, Content: content, MediaURL: ref}
	if err := s.Courses.Create(course); err != nil {
		return nil, apperr.Storage(err)
	}
	s.Log.Info("course created manually", zap.Uint("id", course.ID), zap.String("title", title))
	return course, nil
}
