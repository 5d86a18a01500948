package moderation_test

import (
	"errors"
	"mime/multipart"
	"testing"

	"fleetportal/backend/internal/apperr"
	"fleetportal/backend/internal/config"
	"fleetportal/backend/internal/models"
	"fleetportal/backend/internal/moderation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newService(faults *MockFaultStore, courses *MockCourseStore, files *MockSaver) *moderation.Service {
	return moderation.NewService(faults, courses, files, zap.NewNop())
}

func TestSubmit_CreatesPendingReport(t *testing.T) {
	faults := new(MockFaultStore)
	files := new(MockSaver)
	files.On("SaveOptional", (*multipart.FileHeader)(nil)).Return(nil, nil)
	faults.On("Create", mock.AnythingOfType("*models.Fault")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*models.Fault).ID = 7
		}).Return(nil)

	fault, err := newService(faults, nil, files).Submit("bob", "printer jam", "restart", nil)

	assert.NoError(t, err)
	assert.Equal(t, uint(7), fault.ID)
	assert.Equal(t, "bob", fault.Username)
	assert.False(t, fault.Approved, "new reports must start pending")
	assert.Nil(t, fault.Media)
}

func TestSubmit_PermissiveAboutContents(t *testing.T) {
	// Empty fields are accepted; nothing validates the submission.
	faults := new(MockFaultStore)
	files := new(MockSaver)
	files.On("SaveOptional", (*multipart.FileHeader)(nil)).Return(nil, nil)
	faults.On("Create", mock.AnythingOfType("*models.Fault")).Return(nil)

	_, err := newService(faults, nil, files).Submit("", "", "", nil)

	assert.NoError(t, err)
}

func TestSubmit_FailedUploadPreventsInsert(t *testing.T) {
	faults := new(MockFaultStore)
	files := new(MockSaver)
	file := &multipart.FileHeader{Filename: "jam.png"}
	files.On("SaveOptional", file).Return(nil, apperr.Storagef("disk full"))

	_, err := newService(faults, nil, files).Submit("bob", "printer jam", "restart", file)

	assert.Error(t, err)
	faults.AssertNotCalled(t, "Create", mock.Anything)
}

func TestApprove_Outcomes(t *testing.T) {
	t.Run("pending report is approved", func(t *testing.T) {
		faults := new(MockFaultStore)
		faults.On("FindByID", uint(3)).Return(&models.Fault{ID: 3}, nil)
		faults.On("MarkApproved", uint(3)).Return(int64(1), nil)

		outcome, err := newService(faults, nil, nil).Approve(3)

		assert.NoError(t, err)
		assert.Equal(t, moderation.Approved, outcome)
		assert.Equal(t, int64(1), outcome.UpdatedCount())
	})

	t.Run("second approval reports zero updates", func(t *testing.T) {
		faults := new(MockFaultStore)
		faults.On("FindByID", uint(3)).Return(&models.Fault{ID: 3, Approved: true}, nil)

		outcome, err := newService(faults, nil, nil).Approve(3)

		assert.NoError(t, err)
		assert.Equal(t, moderation.AlreadyApproved, outcome)
		assert.Equal(t, int64(0), outcome.UpdatedCount())
		faults.AssertNotCalled(t, "MarkApproved", mock.Anything)
	})

	t.Run("unknown id reports zero updates without failing", func(t *testing.T) {
		faults := new(MockFaultStore)
		faults.On("FindByID", uint(99)).Return(nil, nil)

		outcome, err := newService(faults, nil, nil).Approve(99)

		assert.NoError(t, err)
		assert.Equal(t, moderation.NotFound, outcome)
		assert.Equal(t, int64(0), outcome.UpdatedCount())
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		faults := new(MockFaultStore)
		faults.On("FindByID", uint(3)).Return(nil, errors.New("db locked"))

		_, err := newService(faults, nil, nil).Approve(3)

		var storageErr *apperr.StorageError
		assert.ErrorAs(t, err, &storageErr)
	})
}

func TestListCourses_RoleVisibility(t *testing.T) {
	all := []models.Course{
		{ID: 1, Title: "Soldering", Department: "technicians"},
		{ID: 2, Title: "Phone etiquette", Department: "callcenter"},
		{ID: 3, Title: "Safety basics"}, // no department: universally visible
	}

	tests := []struct {
		name       string
		role       string
		department string // non-empty means the restricted branch is expected
	}{
		{"tech_admin sees only technicians", config.RoleTechAdmin, "technicians"},
		{"call_admin sees only callcenter", config.RoleCallAdmin, "callcenter"},
		{"student sees everything", config.RoleStudent, ""},
		{"app_admin sees everything", config.RoleAppAdmin, ""},
		{"sys_admin sees everything", config.RoleSysAdmin, ""},
		{"student_admin sees everything", config.RoleStudentAdmin, ""},
		{"unknown role sees everything", "mystery", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			courses := new(MockCourseStore)
			if tt.department != "" {
				restricted := []models.Course{}
				for _, course := range all {
					if course.Department == tt.department {
						restricted = append(restricted, course)
					}
				}
				courses.On("ListByDepartment", tt.department).Return(restricted, nil)
			} else {
				courses.On("ListAll").Return(all, nil)
			}

			got, err := newService(nil, courses, nil).ListCourses(tt.role)

			assert.NoError(t, err)
			if tt.department != "" {
				assert.Len(t, got, 1)
				assert.Equal(t, tt.department, got[0].Department)
			} else {
				assert.Len(t, got, len(all))
			}
		})
	}
}

func TestSubmitCourseByFile_RequiresFile(t *testing.T) {
	courses := new(MockCourseStore)
	files := new(MockSaver)

	_, err := newService(nil, courses, files).SubmitCourseByFile("Soldering", "technicians", nil)

	assert.ErrorIs(t, err, apperr.ErrBadRequest)
	courses.AssertNotCalled(t, "Create", mock.Anything)
}

func TestSubmitCourseByFile_PopulatesFileSlot(t *testing.T) {
	courses := new(MockCourseStore)
	files := new(MockSaver)
	file := &multipart.FileHeader{Filename: "soldering.pdf"}
	files.On("Save", file).Return("/uploads/abc.pdf", nil)
	courses.On("Create", mock.AnythingOfType("*models.Course")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*models.Course).ID = 4
		}).Return(nil)

	course, err := newService(nil, courses, files).SubmitCourseByFile("Soldering", "technicians", file)

	assert.NoError(t, err)
	assert.Equal(t, uint(4), course.ID)
	assert.NotNil(t, course.FileURL)
	assert.Equal(t, "/uploads/abc.pdf", *course.FileURL)
	assert.Nil(t, course.MediaURL)
	assert.Empty(t, course.Content)
}

func TestSubmitCourseManually_PopulatesMediaSlot(t *testing.T) {
	courses := new(MockCourseStore)
	files := new(MockSaver)
	file := &multipart.FileHeader{Filename: "diagram.png"}
	ref := "/uploads/diagram.png"
	files.On("SaveOptional", file).Return(&ref, nil)
	courses.On("Create", mock.AnythingOfType("*models.Course")).Return(nil)

	course, err := newService(nil, courses, files).SubmitCourseManually("Escalation", "callcenter", "step one...", file)

	assert.NoError(t, err)
	assert.Equal(t, "step one...", course.Content)
	assert.NotNil(t, course.MediaURL)
	assert.Equal(t, ref, *course.MediaURL)
	assert.Nil(t, course.FileURL, "manual path must not touch the file slot")
}

func TestSubmitCourseManually_FileOptional(t *testing.T) {
	courses := new(MockCourseStore)
	files := new(MockSaver)
	files.On("SaveOptional", (*multipart.FileHeader)(nil)).Return(nil, nil)
	courses.On("Create", mock.AnythingOfType("*models.Course")).Return(nil)

	course, err := newService(nil, courses, files).SubmitCourseManually("Escalation", "callcenter", "step one...", nil)

	assert.NoError(t, err)
	assert.Nil(t, course.MediaURL)
}
