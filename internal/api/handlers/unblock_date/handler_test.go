package unblock_date

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-AdminService/internal/domain"
	"github.com/m04kA/SMC-AdminService/internal/service/calendar"
	"github.com/m04kA/SMC-AdminService/pkg/logger"
	"github.com/m04kA/SMC-AdminService/pkg/types"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, id string) (*domain.BlockedDate, error) {
	args := m.Called(ctx, id)
	if r, ok := args.Get(0).(*domain.BlockedDate); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func doRequest(h *Handler, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/blocked-dates/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_StatusMapping(t *testing.T) {
	uc := new(mockUseCase)
	h := NewHandler(uc, logger.Nop())

	uc.On("Execute", mock.Anything, "ok").
		Return(&domain.BlockedDate{ID: "ok", Date: types.MustParseDate("2025-01-01")}, nil)
	uc.On("Execute", mock.Anything, "bad").Return(nil, calendar.ErrInvalidInput)
	uc.On("Execute", mock.Anything, "missing").Return(nil, calendar.ErrBlockedDateNotFound)
	uc.On("Execute", mock.Anything, "broken").Return(nil, errors.Join(calendar.ErrPersistence, errors.New("eof")))

	assert.Equal(t, http.StatusOK, doRequest(h, "ok").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(h, "bad").Code)
	assert.Equal(t, http.StatusNotFound, doRequest(h, "missing").Code)
	assert.Equal(t, http.StatusInternalServerError, doRequest(h, "broken").Code)
	uc.AssertExpectations(t)
}
