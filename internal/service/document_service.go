package service

import (
	"context"
	"fmt"

	"lexconnect/internal/domain"
	"lexconnect/internal/port"
	"lexconnect/internal/viewstate"
)

// DocumentFilter is the secondary filter state of the documents page.
type DocumentFilter struct {
	Status string `form:"status"`
	CaseID string `form:"case_id"`
	Search string `form:"q"`
}

// DocumentTabCounts are the per-status tab badges, counted on the
// case-and-search-narrowed subset before the status tab itself applies.
type DocumentTabCounts struct {
	All               int `json:"all"`
	AwaitingSignature int `json:"awaiting_signature"`
	Signed            int `json:"signed"`
	RequiresReview    int `json:"requires_review"`
	Completed         int `json:"completed"`
}

// DocumentListResult is the documents listing plus its tab badges.
type DocumentListResult struct {
	Documents []domain.Document `json:"documents"`
	Counts    DocumentTabCounts `json:"counts"`
}

// SignDocumentInput is the DTO for the e-signature action. Consent is
// an explicit checkbox; signing without it is rejected.
type SignDocumentInput struct {
	Consent bool `json:"consent"`
}

// DocumentService defines the document listing and signing contract.
// Documents inherit visibility from the case they belong to.
type DocumentService interface {
	List(ctx context.Context, ident *domain.Identity, filter DocumentFilter) (*DocumentListResult, error)
	GetByID(ctx context.Context, ident *domain.Identity, id string) (*domain.Document, error)
	Sign(ctx context.Context, ident *domain.Identity, id string, input SignDocumentInput) (*domain.Document, error)
}

type documentService struct {
	repo     port.DocumentRepository
	caseRepo port.CaseRepository
}

// NewDocumentService creates a new DocumentService implementation.
func NewDocumentService(repo port.DocumentRepository, caseRepo port.CaseRepository) DocumentService {
	return &documentService{repo: repo, caseRepo: caseRepo}
}

// visibleCaseIDs resolves the set of case IDs the identity may see.
func (s *documentService) visibleCaseIDs(ctx context.Context, ident *domain.Identity) (map[string]bool, error) {
	cases, err := s.caseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	visible := viewstate.VisibleTo(cases, ident, viewstate.CaseAccessors)
	ids := make(map[string]bool, len(visible))
	for _, c := range visible {
		ids[c.ID] = true
	}
	return ids, nil
}

func (s *documentService) List(ctx context.Context, ident *domain.Identity, filter DocumentFilter) (*DocumentListResult, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	caseIDs, err := s.visibleCaseIDs(ctx, ident)
	if err != nil {
		return nil, err
	}
	visible := viewstate.Apply(all, func(d domain.Document) bool { return caseIDs[d.CaseID] })

	narrowed := viewstate.Apply(visible, viewstate.And(
		viewstate.Equals(filter.CaseID, func(d domain.Document) string { return d.CaseID }),
		viewstate.SearchText(filter.Search,
			func(d domain.Document) string { return d.Name },
		),
	))

	byStatus := func(status domain.DocumentStatus) viewstate.Predicate[domain.Document] {
		return func(d domain.Document) bool { return d.Status == status }
	}
	counts := DocumentTabCounts{
		All:               len(narrowed),
		AwaitingSignature: viewstate.Count(narrowed, byStatus(domain.DocumentAwaitingSignature)),
		Signed:            viewstate.Count(narrowed, byStatus(domain.DocumentSigned)),
		RequiresReview:    viewstate.Count(narrowed, byStatus(domain.DocumentRequiresReview)),
		Completed:         viewstate.Count(narrowed, byStatus(domain.DocumentCompleted)),
	}

	docs := viewstate.Apply(narrowed,
		viewstate.Equals(filter.Status, func(d domain.Document) string { return string(d.Status) }))

	return &DocumentListResult{Documents: docs, Counts: counts}, nil
}

func (s *documentService) GetByID(ctx context.Context, ident *domain.Identity, id string) (*domain.Document, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	caseIDs, err := s.visibleCaseIDs(ctx, ident)
	if err != nil {
		return nil, err
	}
	if !caseIDs[d.CaseID] {
		return nil, domain.ErrNotFound
	}
	return d, nil
}

func (s *documentService) Sign(ctx context.Context, ident *domain.Identity, id string, input SignDocumentInput) (*domain.Document, error) {
	d, err := s.GetByID(ctx, ident, id)
	if err != nil {
		return nil, err
	}
	if !input.Consent {
		return nil, domain.ErrConsentRequired
	}
	if d.Status != domain.DocumentAwaitingSignature {
		return nil, fmt.Errorf("%w: document is %s", domain.ErrPreconditionFailed, d.Status)
	}

	d.Status = domain.DocumentSigned
	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}
