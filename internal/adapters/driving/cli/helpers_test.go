package cli

import (
	"context"

	"github.com/custodia-labs/titanic-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/titanic-cli/internal/core/domain"
	"github.com/custodia-labs/titanic-cli/internal/core/ports/driving"
	coreservices "github.com/custodia-labs/titanic-cli/internal/core/services"
)

// mockDashboardService implements driving.DashboardService for CLI tests.
type mockDashboardService struct {
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
	res := &domain.SectionResult{PassID: "pass-1", Section: section}
	if section == domain.SectionSurvival {
		res.Survival = &domain.GroupMeans{
			Title:      "Survival Rate by Gender",
			KeyLabel:   "Gender",
			ValueLabel: "Survival rate",
			Groups: []domain.GroupMean{
				{Key: "0", Label: "male", Mean: 0.2, Count: 5},
				{Key: "1", Label: "female", Mean: 0.75, Count: 4},
			},
		}
	}
	return res, nil
}

func (m *mockDashboardService) Dataset() driving.DatasetInfo {
	return driving.DatasetInfo{Location: "titanic.csv", Format: "csv", Rows: 9, Columns: 12}
}

// setupTestServices installs in-memory services and a mock dashboard.
// The returned func restores the previous package state.
func setupTestServices() func() {
	cleanup, _ := setupTestServicesWith(&mockDashboardService{})
	return cleanup
}

func setupTestServicesWith(dashboard *mockDashboardService) (func(), *memory.ConfigStore) {
	oldServices, oldDashboard, oldFactory := services, dashboardService, factory
	oldPath, oldSheet := datasetPath, datasetSheet

	store := memory.NewConfigStore()
	services = &Services{
		Settings: coreservices.NewSettingsService(store),
		LoadDashboard: func(context.Context, domain.DatasetSettings) (driving.DashboardService, error) {
			return dashboard, nil
		},
	}
	dashboardService = nil
	factory = nil

	return func() {
		services, dashboardService, factory = oldServices, oldDashboard, oldFactory
		datasetPath, datasetSheet = oldPath, oldSheet
	}, store
}
