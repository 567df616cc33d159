package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-AdminService/pkg/logger"
)

type mockChecker struct {
	mock.Mock
}

func (m *mockChecker) IsAdmin(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func TestRequireAdmin(t *testing.T) {
	checker := new(mockChecker)
	checker.On("IsAdmin", mock.Anything, "admin-1").Return(true, nil)
	checker.On("IsAdmin", mock.Anything, "user-2").Return(false, nil)
	checker.On("IsAdmin", mock.Anything, "flaky").Return(false, errors.New("timeout"))

	h := Auth(RequireAdmin(checker, logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	do := func(userID string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/blocked-dates", nil)
		if userID != "" {
			req.Header.Set(UserIDHeader, userID)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do("admin-1"))
	assert.Equal(t, http.StatusForbidden, do("user-2"))
	assert.Equal(t, http.StatusInternalServerError, do("flaky"))
	assert.Equal(t, http.StatusUnauthorized, do(""))
}
