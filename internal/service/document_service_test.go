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

func demoDocuments() []domain.Document {
	return []domain.Document{
		{ID: "DOC001", Name: "Contrato de servicios.pdf", CaseID: "CASO001", Status: domain.DocumentAwaitingSignature},
		{ID: "DOC002", Name: "Demanda inicial.pdf", CaseID: "CASO001", Status: domain.DocumentSigned},
		{ID: "DOC003", Name: "Resolución administrativa.pdf", CaseID: "CASO002", Status: domain.DocumentRequiresReview},
		{ID: "DOC004", Name: "Acta de finiquito.pdf", CaseID: "CASO003", Status: domain.DocumentCompleted},
	}
}

func TestDocumentService_List_InheritsCaseScope(t *testing.T) {
	repo := new(mocks.MockDocumentRepo)
	caseRepo := new(mocks.MockCaseRepo)
	svc := service.NewDocumentService(repo, caseRepo)

	repo.On("List", mock.Anything).Return(demoDocuments(), nil)
	caseRepo.On("List", mock.Anything).Return(demoCases(), nil)

	result, err := svc.List(context.Background(), clientIdent("Juan Pérez"), service.DocumentFilter{})

	assert.NoError(t, err)
	// Juan's cases are CASO001 and CASO002; CASO003's document is hidden.
	assert.Len(t, result.Documents, 3)
	assert.Equal(t, 3, result.Counts.All)
	assert.Equal(t, 1, result.Counts.AwaitingSignature)
	assert.Equal(t, 0, result.Counts.Completed)
}

func TestDocumentService_List_StatusTabDoesNotChangeCounts(t *testing.T) {
	repo := new(mocks.MockDocumentRepo)
	caseRepo := new(mocks.MockCaseRepo)
	svc := service.NewDocumentService(repo, caseRepo)

	repo.On("List", mock.Anything).Return(demoDocuments(), nil)
	caseRepo.On("List", mock.Anything).Return(demoCases(), nil)

	all, err := svc.List(context.Background(), clientIdent("Juan Pérez"), service.DocumentFilter{})
	assert.NoError(t, err)
	signed, err := svc.List(context.Background(), clientIdent("Juan Pérez"), service.DocumentFilter{Status: "signed"})
	assert.NoError(t, err)

	assert.Equal(t, all.Counts, signed.Counts)
	assert.Len(t, signed.Documents, 1)
	assert.Equal(t, "DOC002", signed.Documents[0].ID)
}

func TestDocumentService_Sign_Success(t *testing.T) {
	repo := new(mocks.MockDocumentRepo)
	caseRepo := new(mocks.MockCaseRepo)
	svc := service.NewDocumentService(repo, caseRepo)

	stored := demoDocuments()[0]
	repo.On("GetByID", mock.Anything, "DOC001").Return(&stored, nil)
	caseRepo.On("List", mock.Anything).Return(demoCases(), nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Document")).Return(nil)

	d, err := svc.Sign(context.Background(), clientIdent("Juan Pérez"), "DOC001", service.SignDocumentInput{Consent: true})

	assert.NoError(t, err)
	assert.Equal(t, domain.DocumentSigned, d.Status)
}

func TestDocumentService_Sign_WithoutConsent(t *testing.T) {
	repo := new(mocks.MockDocumentRepo)
	caseRepo := new(mocks.MockCaseRepo)
	svc := service.NewDocumentService(repo, caseRepo)

	stored := demoDocuments()[0]
	repo.On("GetByID", mock.Anything, "DOC001").Return(&stored, nil)
	caseRepo.On("List", mock.Anything).Return(demoCases(), nil)

	_, err := svc.Sign(context.Background(), clientIdent("Juan Pérez"), "DOC001", service.SignDocumentInput{})

	assert.ErrorIs(t, err, domain.ErrConsentRequired)
	// The stored status stays awaiting_signature.
	assert.Equal(t, domain.DocumentAwaitingSignature, stored.Status)
	repo.AssertNotCalled(t, "Update")
}

func TestDocumentService_Sign_AlreadySigned(t *testing.T) {
	repo := new(mocks.MockDocumentRepo)
	caseRepo := new(mocks.MockCaseRepo)
	svc := service.NewDocumentService(repo, caseRepo)

	stored := demoDocuments()[1] // signed
	repo.On("GetByID", mock.Anything, "DOC002").Return(&stored, nil)
	caseRepo.On("List", mock.Anything).Return(demoCases(), nil)

	_, err := svc.Sign(context.Background(), clientIdent("Juan Pérez"), "DOC002", service.SignDocumentInput{Consent: true})

	assert.ErrorIs(t, err, domain.ErrPreconditionFailed)
	repo.AssertNotCalled(t, "Update")
}

func TestDocumentService_GetByID_HiddenOutsideScope(t *testing.T) {
	repo := new(mocks.MockDocumentRepo)
	caseRepo := new(mocks.MockCaseRepo)
	svc := service.NewDocumentService(repo, caseRepo)

	stored := demoDocuments()[3] // belongs to Roberto's case
	repo.On("GetByID", mock.Anything, "DOC004").Return(&stored, nil)
	caseRepo.On("List", mock.Anything).Return(demoCases(), nil)

	_, err := svc.GetByID(context.Background(), clientIdent("Juan Pérez"), "DOC004")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
