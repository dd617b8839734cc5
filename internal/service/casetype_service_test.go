package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lexconnect/internal/domain"
	"lexconnect/internal/service"
	"lexconnect/mocks"
)

func TestCaseTypeService_CreateSubtype_FirstInSequence(t *testing.T) {
	repo := new(mocks.MockCaseTypeRepo)
	svc := service.NewCaseTypeService(repo)

	repo.On("ListSubtypesByBase", mock.Anything, domain.BaseTypeJudicial).Return([]domain.CaseSubtype{}, nil)
	repo.On("CreateSubtype", mock.Anything, mock.AnythingOfType("*domain.CaseSubtype")).Return(nil)

	subtype, err := svc.CreateSubtype(context.Background(), service.CreateSubtypeInput{
		BaseType: domain.BaseTypeJudicial,
		Name:     "Civil",
	})

	assert.NoError(t, err)
	assert.Equal(t, "JU-001", subtype.ID)
}

func TestCaseTypeService_CreateSubtype_SequencePerBaseType(t *testing.T) {
	repo := new(mocks.MockCaseTypeRepo)
	svc := service.NewCaseTypeService(repo)

	repo.On("ListSubtypesByBase", mock.Anything, domain.BaseTypeJudicial).Return([]domain.CaseSubtype{
		{ID: "JU-001", BaseType: domain.BaseTypeJudicial, Name: "Civil"},
	}, nil)
	repo.On("ListSubtypesByBase", mock.Anything, domain.BaseTypeAdministrative).Return([]domain.CaseSubtype{}, nil)
	repo.On("CreateSubtype", mock.Anything, mock.AnythingOfType("*domain.CaseSubtype")).Return(nil)

	ju, err := svc.CreateSubtype(context.Background(), service.CreateSubtypeInput{
		BaseType: domain.BaseTypeJudicial,
		Name:     "Laboral",
	})
	assert.NoError(t, err)
	assert.Equal(t, "JU-002", ju.ID)

	// The administrative sequence is independent of the judicial one.
	ad, err := svc.CreateSubtype(context.Background(), service.CreateSubtypeInput{
		BaseType: domain.BaseTypeAdministrative,
		Name:     "Sanciones",
	})
	assert.NoError(t, err)
	assert.Equal(t, "AD-001", ad.ID)
}

func TestCaseTypeService_CreateSubtype_UnknownBaseType(t *testing.T) {
	repo := new(mocks.MockCaseTypeRepo)
	svc := service.NewCaseTypeService(repo)

	_, err := svc.CreateSubtype(context.Background(), service.CreateSubtypeInput{
		BaseType: "fiscal",
		Name:     "Impuestos",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
	repo.AssertNotCalled(t, "CreateSubtype")
}

func TestCaseTypeService_CreateSubtype_BlankName(t *testing.T) {
	repo := new(mocks.MockCaseTypeRepo)
	svc := service.NewCaseTypeService(repo)

	_, err := svc.CreateSubtype(context.Background(), service.CreateSubtypeInput{
		BaseType: domain.BaseTypeJudicial,
		Name:     "   ",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCaseTypeService_BaseTypes_Fixed(t *testing.T) {
	svc := service.NewCaseTypeService(new(mocks.MockCaseTypeRepo))

	base := svc.BaseTypes()

	assert.Len(t, base, 2)
	assert.Equal(t, "Administrativo", base[0].Label)
	assert.Equal(t, "Judicial", base[1].Label)
}
