package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	repomocks "github.com/agencydash/analytics-dashboard-api/infrastructure/repository/mocks"
	"github.com/agencydash/analytics-dashboard-api/internal/domain"
	acquiringmocks "github.com/agencydash/analytics-dashboard-api/internal/usecases/acquiring/mocks"
	"github.com/agencydash/analytics-dashboard-api/internal/usecases/reporting"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPreviewTeamScorecard(t *testing.T) {
	dataset := &domain.Dataset{
		Deals: []domain.Deal{
			{Team: "A", DealValue: 1000, CostToDeliver: 400},
		},
	}

	tests := []struct {
		name       string
		body       string
		setup      func(loader *acquiringmocks.MockLoader)
		wantStatus int
		validate   func(t *testing.T, body string)
	}{
		{
			name: "preview applies the supplied targets without persisting",
			body: `{"A": {"revenue_target": 2000}}`,
			setup: func(loader *acquiringmocks.MockLoader) {
				loader.EXPECT().Current().Return(dataset, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body string) {
				assert.Contains(t, body, `"revenue_vs_target_pct":50`)
			},
		},
		{
			name:       "negative targets are rejected",
			body:       `{"A": {"revenue_target": -5}}`,
			wantStatus: http.StatusBadRequest,
			validate: func(t *testing.T, body string) {
				assert.Contains(t, body, "VAL_001")
			},
		},
		{
			name:       "malformed body is rejected",
			body:       `{"A": `,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "dataset failure maps to 503",
			body: `{}`,
			setup: func(loader *acquiringmocks.MockLoader) {
				loader.EXPECT().Current().Return(nil, assert.AnError)
			},
			wantStatus: http.StatusServiceUnavailable,
			validate: func(t *testing.T, body string) {
				assert.Contains(t, body, "SRV_004")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			loader := acquiringmocks.NewMockLoader(ctrl)
			if tt.setup != nil {
				tt.setup(loader)
			}

			service := reporting.NewService(loader, repomocks.NewMockTeamTargetsRepository(ctrl))

			req := httptest.NewRequest(http.MethodPost, "/v1/scorecard/preview", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			PreviewTeamScorecard(service).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.validate != nil {
				tt.validate(t, rec.Body.String())
			}
		})
	}
}

func TestGetTeamScorecardUsesStoredTargets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := acquiringmocks.NewMockLoader(ctrl)
	loader.EXPECT().Current().Return(&domain.Dataset{
		Deals: []domain.Deal{{Team: "A", DealValue: 500}},
	}, nil)

	targetsRepo := repomocks.NewMockTeamTargetsRepository(ctrl)
	targetsRepo.EXPECT().GetAll().Return(domain.TargetsByTeam{
		"A": {RevenueTarget: 1000},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/scorecard", nil)
	rec := httptest.NewRecorder()

	GetTeamScorecard(reporting.NewService(loader, targetsRepo)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"revenue_vs_target_pct":50`)
}
