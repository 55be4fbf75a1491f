package patients

import (
	"context"
	"testing"
	"time"

	"neuronutrition-service/internal/app/models"
	"neuronutrition-service/internal/pkg/dto/requests"
	"neuronutrition-service/internal/pkg/dto/responses"
	"neuronutrition-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) UpdatePatientFields(ctx context.Context, patientID string, fields map[string]interface{}) error {
	args := m.Called(ctx, patientID, fields)
	return args.Error(0)
}

type MockAssignmentUsecase struct {
	mock.Mock
}

func (m *MockAssignmentUsecase) AssignQuestionnaires(ctx context.Context, patientID string, request *requests.AssignQuestionnairesRequest) (*responses.AssignmentResult, error) {
	args := m.Called(ctx, patientID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.AssignmentResult), args.Error(1)
}

func (m *MockAssignmentUsecase) CheckEligibility(ctx context.Context, patientID string) (*responses.AssignmentEligibility, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.AssignmentEligibility), args.Error(1)
}

func (m *MockAssignmentUsecase) GetAssignmentSummary(ctx context.Context, patientID string) (*models.AssignmentSummary, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AssignmentSummary), args.Error(1)
}

func birthDateForAge(years int) string {
	return time.Now().UTC().AddDate(-years, 0, 0).Format(time.DateOnly)
}

func identificationRequest(age int) *requests.PatientIdentificationRequest {
	return &requests.PatientIdentificationRequest{
		FirstName: "Camille",
		LastName:  "Durand",
		BirthDate: birthDateForAge(age),
		Sex:       "F",
		HeightCm:  170,
		WeightKg:  62,
	}
}

func TestCompleteIdentification(t *testing.T) {
	t.Run("Identification Updates Patient And Triggers Assignment", func(t *testing.T) {
		patientRepository := new(MockPatientRepository)
		assignmentUsecase := new(MockAssignmentUsecase)
		patientRepository.On("FindPatientByID", mock.Anything, "p1").Return(&models.Patient{ID: "p1"}, nil)
		patientRepository.On("UpdatePatientFields", mock.Anything, "p1", mock.Anything).Return(nil)
		assignmentUsecase.On("AssignQuestionnaires", mock.Anything, "p1", &requests.AssignQuestionnairesRequest{AgeVariant: "adult"}).
			Return(&responses.AssignmentResult{Assigned: true, Count: 4, Variant: models.AgeVariantAdult}, nil)
		usecase := NewPatientUsecase(zap.NewNop(), patientRepository, assignmentUsecase)

		result, err := usecase.CompleteIdentification(context.Background(), "p1", identificationRequest(30))

		assert.NoError(t, err)
		assert.Equal(t, 30, result.Age)
		assert.Equal(t, models.AgeVariantAdult, result.AgeGroup)
		assert.NotNil(t, result.Assignment)
		assert.True(t, result.Assignment.Assigned)

		fields := patientRepository.Calls[1].Arguments.Get(2).(map[string]interface{})
		assert.Equal(t, true, fields["identificationCompleted"])
		assert.Equal(t, models.AgeVariantAdult, fields["ageGroup"])
	})

	t.Run("Age Below Six Is Rejected", func(t *testing.T) {
		patientRepository := new(MockPatientRepository)
		patientRepository.On("FindPatientByID", mock.Anything, "p1").Return(&models.Patient{ID: "p1"}, nil)
		usecase := NewPatientUsecase(zap.NewNop(), patientRepository, new(MockAssignmentUsecase))

		result, err := usecase.CompleteIdentification(context.Background(), "p1", identificationRequest(5))

		assert.Nil(t, result)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 400, customErr.StatusCode)
		assert.Contains(t, customErr.ClientMessage, "minimum age")
		patientRepository.AssertNotCalled(t, "UpdatePatientFields")
	})

	t.Run("Age Above One Hundred Is Rejected", func(t *testing.T) {
		patientRepository := new(MockPatientRepository)
		patientRepository.On("FindPatientByID", mock.Anything, "p1").Return(&models.Patient{ID: "p1"}, nil)
		usecase := NewPatientUsecase(zap.NewNop(), patientRepository, new(MockAssignmentUsecase))

		result, err := usecase.CompleteIdentification(context.Background(), "p1", identificationRequest(101))

		assert.Nil(t, result)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 400, customErr.StatusCode)
		assert.Contains(t, customErr.ClientMessage, "maximum age")
	})

	t.Run("Unknown Patient Is Rejected", func(t *testing.T) {
		patientRepository := new(MockPatientRepository)
		patientRepository.On("FindPatientByID", mock.Anything, "p1").Return(nil, nil)
		usecase := NewPatientUsecase(zap.NewNop(), patientRepository, new(MockAssignmentUsecase))

		result, err := usecase.CompleteIdentification(context.Background(), "p1", identificationRequest(30))

		assert.Nil(t, result)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)
	})

	t.Run("Invalid Payload Fails Validation", func(t *testing.T) {
		usecase := NewPatientUsecase(zap.NewNop(), new(MockPatientRepository), new(MockAssignmentUsecase))

		result, err := usecase.CompleteIdentification(context.Background(), "p1", &requests.PatientIdentificationRequest{
			FirstName: "Camille",
			LastName:  "Durand",
			BirthDate: "01/01/1990",
			Sex:       "F",
		})

		assert.Nil(t, result)
		assert.Error(t, err)
	})
}
