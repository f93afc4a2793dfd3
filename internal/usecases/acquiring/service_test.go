package acquiring

import (
	"errors"
	"testing"
	"time"

	harvestmocks "github.com/agencydash/analytics-dashboard-api/infrastructure/integrator/harvest/mocks"
	mondaymocks "github.com/agencydash/analytics-dashboard-api/infrastructure/integrator/monday/mocks"
	xeromocks "github.com/agencydash/analytics-dashboard-api/infrastructure/integrator/xero/mocks"
	"github.com/agencydash/analytics-dashboard-api/internal/config"
	"github.com/agencydash/analytics-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func configuredSources() *config.Config {
	return &config.Config{
		Monday:  config.Monday{Token: "token", BoardID: "123"},
		Harvest: config.Harvest{Token: "token", AccountID: "456"},
		Xero:    config.Xero{Token: "token", TenantID: "789"},
	}
}

func TestRefresh(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		cfg      *config.Config
		setup    func(m *mondaymocks.MockMondayIntegrator, h *harvestmocks.MockHarvestIntegrator, x *xeromocks.MockXeroIntegrator)
		validate func(t *testing.T, dataset *domain.Dataset, err error)
	}{
		{
			name: "all sources succeed gives a live snapshot",
			cfg:  configuredSources(),
			setup: func(m *mondaymocks.MockMondayIntegrator, h *harvestmocks.MockHarvestIntegrator, x *xeromocks.MockXeroIntegrator) {
				m.EXPECT().ListDeals().Return([]domain.Deal{{DealName: "Redesign", DealValue: 100}}, nil)
				h.EXPECT().ListTimeEntries().Return([]domain.TimeEntry{{Team: "A", Hours: 2, Date: &now}}, nil)
				x.EXPECT().ListInvoices().Return([]domain.Invoice{{InvoiceNumber: "INV-1", Total: 100}}, nil)
			},
			validate: func(t *testing.T, dataset *domain.Dataset, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.OriginLive, dataset.Origin)
				assert.Empty(t, dataset.FallbackReason)
				assert.NotEmpty(t, dataset.SnapshotID)
				assert.False(t, dataset.FetchedAt.IsZero())
				assert.Len(t, dataset.Deals, 1)
				assert.Len(t, dataset.TimeEntries, 1)
				assert.Len(t, dataset.Invoices, 1)
			},
		},
		{
			name: "missing credentials fall back to demo data without calling the sources",
			cfg:  &config.Config{},
			validate: func(t *testing.T, dataset *domain.Dataset, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.OriginDemo, dataset.Origin)
				assert.Equal(t, "credentials missing for one or more sources", dataset.FallbackReason)
				assert.NotEmpty(t, dataset.Deals)
				assert.NotEmpty(t, dataset.TimeEntries)
				assert.NotEmpty(t, dataset.Invoices)
			},
		},
		{
			name: "one failing source falls back to demo data with the reason",
			cfg:  configuredSources(),
			setup: func(m *mondaymocks.MockMondayIntegrator, h *harvestmocks.MockHarvestIntegrator, x *xeromocks.MockXeroIntegrator) {
				m.EXPECT().ListDeals().Return(nil, nil)
				h.EXPECT().ListTimeEntries().Return(nil, errors.New("401 unauthorized"))
				x.EXPECT().ListInvoices().Return(nil, nil)
			},
			validate: func(t *testing.T, dataset *domain.Dataset, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.OriginDemo, dataset.Origin)
				assert.Equal(t, "harvest fetch failed: 401 unauthorized", dataset.FallbackReason)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockMonday := mondaymocks.NewMockMondayIntegrator(ctrl)
			mockHarvest := harvestmocks.NewMockHarvestIntegrator(ctrl)
			mockXero := xeromocks.NewMockXeroIntegrator(ctrl)

			if tt.setup != nil {
				tt.setup(mockMonday, mockHarvest, mockXero)
			}

			service := NewService(tt.cfg, mockMonday, mockHarvest, mockXero)

			dataset, err := service.Refresh()
			tt.validate(t, dataset, err)
		})
	}
}

func TestCurrentLoadsOnceAndReuses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMonday := mondaymocks.NewMockMondayIntegrator(ctrl)
	mockHarvest := harvestmocks.NewMockHarvestIntegrator(ctrl)
	mockXero := xeromocks.NewMockXeroIntegrator(ctrl)

	mockMonday.EXPECT().ListDeals().Return(nil, nil).Times(1)
	mockHarvest.EXPECT().ListTimeEntries().Return(nil, nil).Times(1)
	mockXero.EXPECT().ListInvoices().Return(nil, nil).Times(1)

	service := NewService(configuredSources(), mockMonday, mockHarvest, mockXero)

	first, err := service.Current()
	assert.NoError(t, err)

	second, err := service.Current()
	assert.NoError(t, err)
	assert.Same(t, first, second)
}

func TestRefreshReplacesTheSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMonday := mondaymocks.NewMockMondayIntegrator(ctrl)
	mockHarvest := harvestmocks.NewMockHarvestIntegrator(ctrl)
	mockXero := xeromocks.NewMockXeroIntegrator(ctrl)

	mockMonday.EXPECT().ListDeals().Return(nil, nil).Times(2)
	mockHarvest.EXPECT().ListTimeEntries().Return(nil, nil).Times(2)
	mockXero.EXPECT().ListInvoices().Return(nil, nil).Times(2)

	service := NewService(configuredSources(), mockMonday, mockHarvest, mockXero)

	first, err := service.Refresh()
	assert.NoError(t, err)

	second, err := service.Refresh()
	assert.NoError(t, err)

	assert.NotEqual(t, first.SnapshotID, second.SnapshotID)

	current, err := service.Current()
	assert.NoError(t, err)
	assert.Same(t, second, current)
}

func TestStatusReflectsTheSnapshot(t *testing.T) {
	service := NewService(&config.Config{}, nil, nil, nil)

	status, err := service.Status()
	assert.NoError(t, err)
	assert.Equal(t, domain.OriginDemo, status.Origin)
	assert.NotZero(t, status.Deals)
	assert.NotZero(t, status.TimeEntries)
	assert.NotZero(t, status.Invoices)
}

func TestDemoDatasetIsDeterministic(t *testing.T) {
	a := DemoDataset("reason")
	b := DemoDataset("reason")

	assert.Equal(t, a.Deals, b.Deals)
	assert.Equal(t, a.TimeEntries, b.TimeEntries)
	assert.Equal(t, a.Invoices, b.Invoices)
}
