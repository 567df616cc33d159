package update_booking_settings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdminService/internal/service/settings"
	"github.com/m04kA/SMC-AdminService/internal/service/settings/models"
	"github.com/m04kA/SMC-AdminService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Update(ctx context.Context, scope string, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	args := m.Called(ctx, scope, req)
	if r, ok := args.Get(0).(*models.SettingsResponse); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func doRequest(h *Handler, scope, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/settings/"+scope, strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"scope": scope})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc, logger.Nop())

	svc.On("Update", mock.Anything, "global", mock.MatchedBy(func(r *models.UpdateSettingsRequest) bool {
		return r.SlotDurationMinutes != nil && *r.SlotDurationMinutes == 45 && r.MaxConcurrentBookings == nil
	})).Return(&models.SettingsResponse{ID: 1, Scope: "global", SlotDurationMinutes: 45}, nil)

	rec := doRequest(h, "global", `{"slotDurationMinutes":45}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SettingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 45, resp.SlotDurationMinutes)
	svc.AssertExpectations(t)
}

func TestHandle_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", settings.ErrSettingsNotFound, http.StatusNotFound},
		{"invalid", settings.ErrInvalidInput, http.StatusBadRequest},
		{"internal", errors.Join(settings.ErrInternal, errors.New("boom")), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mockService)
			h := NewHandler(svc, logger.Nop())
			svc.On("Update", mock.Anything, "chauffeur", mock.Anything).Return(nil, tc.err)

			assert.Equal(t, tc.status, doRequest(h, "chauffeur", `{"advanceBookingDays":10}`).Code)
		})
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc, logger.Nop())

	assert.Equal(t, http.StatusBadRequest, doRequest(h, "global", `{"unknownField":1}`).Code)
	svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}
