package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"lexconnect/internal/domain"
	"lexconnect/internal/port"
)

// CreateSubtypeInput is the DTO for defining a new case subtype.
type CreateSubtypeInput struct {
	BaseType    domain.CaseBaseType `json:"base_type" binding:"required"`
	Name        string              `json:"name" binding:"required"`
	Description string              `json:"description"`
}

// BaseTypeInfo describes one of the two fixed base types.
type BaseTypeInfo struct {
	ID    domain.CaseBaseType `json:"id"`
	Label string              `json:"label"`
}

// CaseTypeService manages the two-level case taxonomy. Base types are
// fixed; subtypes are admin-defined underneath them.
type CaseTypeService interface {
	BaseTypes() []BaseTypeInfo
	ListSubtypes(ctx context.Context, baseType string) ([]domain.CaseSubtype, error)
	CreateSubtype(ctx context.Context, input CreateSubtypeInput) (*domain.CaseSubtype, error)
}

type caseTypeService struct {
	repo port.CaseTypeRepository
}

// NewCaseTypeService creates a new CaseTypeService implementation.
func NewCaseTypeService(repo port.CaseTypeRepository) CaseTypeService {
	return &caseTypeService{repo: repo}
}

func (s *caseTypeService) BaseTypes() []BaseTypeInfo {
	return []BaseTypeInfo{
		{ID: domain.BaseTypeAdministrative, Label: domain.BaseTypeAdministrative.Label()},
		{ID: domain.BaseTypeJudicial, Label: domain.BaseTypeJudicial.Label()},
	}
}

func (s *caseTypeService) ListSubtypes(ctx context.Context, baseType string) ([]domain.CaseSubtype, error) {
	if baseType == "" {
		return s.repo.ListSubtypes(ctx)
	}
	bt := domain.CaseBaseType(baseType)
	if !domain.ValidCaseBaseTypes[bt] {
		return nil, fmt.Errorf("%w: unknown base type %q", domain.ErrValidation, baseType)
	}
	return s.repo.ListSubtypesByBase(ctx, bt)
}

func (s *caseTypeService) CreateSubtype(ctx context.Context, input CreateSubtypeInput) (*domain.CaseSubtype, error) {
	if !domain.ValidCaseBaseTypes[input.BaseType] {
		return nil, fmt.Errorf("%w: unknown base type %q", domain.ErrValidation, input.BaseType)
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: subtype name is required", domain.ErrValidation)
	}

	existing, err := s.repo.ListSubtypesByBase(ctx, input.BaseType)
	if err != nil {
		return nil, err
	}

	subtype := &domain.CaseSubtype{
		ID:          nextSubtypeID(input.BaseType, existing),
		BaseType:    input.BaseType,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
	}
	if err := s.repo.CreateSubtype(ctx, subtype); err != nil {
		return nil, err
	}
	return subtype, nil
}

// nextSubtypeID generates the next sequential ID for a base type:
// JU-001, JU-002, ... The sequence follows the highest existing number,
// so deleting never causes reuse.
func nextSubtypeID(baseType domain.CaseBaseType, existing []domain.CaseSubtype) string {
	prefix := baseType.Prefix() + "-"
	max := 0
	for _, s := range existing {
		num, err := strconv.Atoi(strings.TrimPrefix(s.ID, prefix))
		if err == nil && num > max {
			max = num
		}
	}
	return fmt.Sprintf("%s%03d", prefix, max+1)
}
