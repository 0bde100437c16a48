package mcp

import (
	"context"

	"github.com/custodia-labs/titanic-cli/internal/core/domain"
	"github.com/custodia-labs/titanic-cli/internal/core/ports/driving"
)

// mockDashboardService is a mock implementation of driving.DashboardService.
type mockDashboardService struct {
	info    driving.DatasetInfo
	result  *domain.SectionResult
	err     error
	renders []domain.Section
}

func (m *mockDashboardService) Sections() []domain.Section {
	return domain.Sections()
}

func (m *mockDashboardService) Render(_ context.Context, section domain.Section) (*domain.SectionResult, error) {
	m.renders = append(m.renders, section)
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return &domain.SectionResult{PassID: "pass-1", Section: section}, nil
}

func (m *mockDashboardService) Dataset() driving.DatasetInfo {
	return m.info
}

// survivalResult returns a small Survival Analysis result.
func survivalResult() *domain.SectionResult {
	return &domain.SectionResult{
		PassID:  "pass-42",
		Section: domain.SectionSurvival,
		Survival: &domain.GroupMeans{
			Title:      "Survival Rate by Gender",
			KeyLabel:   "Gender",
			ValueLabel: "Survival rate",
			Groups: []domain.GroupMean{
				{Key: "0", Label: "male", Mean: 0.25, Count: 4},
				{Key: "1", Label: "female", Mean: domain.Undefined(), Count: 0},
			},
		},
	}
}
