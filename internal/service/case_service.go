package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"lexconnect/internal/domain"
	"lexconnect/internal/port"
	"lexconnect/internal/viewstate"
)

// CaseFilter is the secondary filter state of the cases listing. Zero
// values and the "all" sentinel mean no restriction.
type CaseFilter struct {
	State    string `form:"state"`
	BaseType string `form:"base_type"`
	Subtype  string `form:"subtype"`
	Search   string `form:"q"`
}

// CaseListResult is the cases listing plus its derived filter state.
// EffectiveSubtype echoes the subtype actually applied; a selection that
// is stale for the requested base type resets to "all".
type CaseListResult struct {
	Cases            []domain.Case `json:"cases"`
	EffectiveSubtype string        `json:"effective_subtype"`
	SubtypeChoices   []string      `json:"subtype_choices"`
}

// UpsertCaseInput is the DTO for the admin case editor. An empty ID
// inserts; a known ID replaces that record.
type UpsertCaseInput struct {
	ID           string              `json:"id"`
	CaseNumber   string              `json:"case_number" binding:"required"`
	ClientName   string              `json:"client_name" binding:"required"`
	BaseType     domain.CaseBaseType `json:"base_type" binding:"required"`
	Subtype      string              `json:"subtype"`
	State        domain.CaseState    `json:"state" binding:"required"`
	LastUpdate   string              `json:"last_update"`
	Description  string              `json:"description"`
	AttorneyName string              `json:"attorney_name"`
}

// CaseService defines the case listing contract. Listings are scoped to
// the caller's identity before any secondary filter applies; Upsert is
// reserved for the admin editor.
type CaseService interface {
	List(ctx context.Context, ident *domain.Identity, filter CaseFilter) (*CaseListResult, error)
	GetByID(ctx context.Context, ident *domain.Identity, id string) (*domain.Case, error)
	Upsert(ctx context.Context, input UpsertCaseInput) (*domain.Case, error)
}

type caseService struct {
	caseRepo     port.CaseRepository
	caseTypeRepo port.CaseTypeRepository
}

// NewCaseService creates a new CaseService implementation.
func NewCaseService(caseRepo port.CaseRepository, caseTypeRepo port.CaseTypeRepository) CaseService {
	return &caseService{caseRepo: caseRepo, caseTypeRepo: caseTypeRepo}
}

func (s *caseService) List(ctx context.Context, ident *domain.Identity, filter CaseFilter) (*CaseListResult, error) {
	all, err := s.caseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	visible := viewstate.VisibleTo(all, ident, viewstate.CaseAccessors)

	subtypes, err := s.caseTypeRepo.ListSubtypes(ctx)
	if err != nil {
		return nil, err
	}
	choices := viewstate.SubtypeChoices(subtypes, filter.BaseType)
	subtype := viewstate.NormalizeSubtype(filter.Subtype, choices)

	pred := viewstate.And(
		viewstate.Equals(filter.State, func(c domain.Case) string { return string(c.State) }),
		viewstate.Equals(filter.BaseType, func(c domain.Case) string { return string(c.BaseType) }),
		viewstate.Equals(subtype, func(c domain.Case) string { return c.Subtype }),
		viewstate.SearchText(filter.Search,
			func(c domain.Case) string { return c.CaseNumber },
			func(c domain.Case) string { return c.ClientName },
			func(c domain.Case) string { return c.Description },
		),
	)

	return &CaseListResult{
		Cases:            viewstate.Apply(visible, pred),
		EffectiveSubtype: subtype,
		SubtypeChoices:   choices,
	}, nil
}

// GetByID hides records outside the caller's scope behind ErrNotFound so
// a client cannot probe for other clients' case IDs.
func (s *caseService) GetByID(ctx context.Context, ident *domain.Identity, id string) (*domain.Case, error) {
	c, err := s.caseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	visible := viewstate.VisibleTo([]domain.Case{*c}, ident, viewstate.CaseAccessors)
	if len(visible) == 0 {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (s *caseService) Upsert(ctx context.Context, input UpsertCaseInput) (*domain.Case, error) {
	if !domain.ValidCaseBaseTypes[input.BaseType] {
		return nil, fmt.Errorf("%w: unknown base type %q", domain.ErrValidation, input.BaseType)
	}
	if !domain.ValidCaseStates[input.State] {
		return nil, fmt.Errorf("%w: unknown state %q", domain.ErrValidation, input.State)
	}
	if input.LastUpdate == "" {
		input.LastUpdate = today()
	} else if _, err := time.Parse(domain.DateLayout, input.LastUpdate); err != nil {
		return nil, fmt.Errorf("%w: last_update must use %s", domain.ErrValidation, domain.DateLayout)
	}

	// The subtype, when set, must be registered under the base type.
	if input.Subtype != "" {
		subtypes, err := s.caseTypeRepo.ListSubtypesByBase(ctx, input.BaseType)
		if err != nil {
			return nil, err
		}
		known := false
		for _, st := range subtypes {
			if st.Name == input.Subtype {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("%w: %q under %s", domain.ErrUnknownSubtype, input.Subtype, input.BaseType)
		}
	}

	c := &domain.Case{
		ID:           input.ID,
		CaseNumber:   input.CaseNumber,
		ClientName:   input.ClientName,
		BaseType:     input.BaseType,
		Subtype:      input.Subtype,
		State:        input.State,
		LastUpdate:   input.LastUpdate,
		Description:  input.Description,
		AttorneyName: input.AttorneyName,
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if err := s.caseRepo.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
