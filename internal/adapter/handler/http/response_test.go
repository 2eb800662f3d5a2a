package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/endysusanto13/todo-backend/internal/apperrors"
)

func TestRespondError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "list not found maps to 404",
			err:        apperrors.Newf(apperrors.CodeListNotFound, "List id %d is not found.", 3),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"code":"LIST_NOT_FOUND","error":"List id 3 is not found."}`,
		},
		{
			name:       "forbidden maps to 403",
			err:        apperrors.New(apperrors.CodeForbidden, "You are not authorized to edit this TODO list."),
			wantStatus: http.StatusForbidden,
			wantBody:   `{"code":"FORBIDDEN","error":"You are not authorized to edit this TODO list."}`,
		},
		{
			name:       "no change maps to 400",
			err:        apperrors.Newf(apperrors.CodeNoChange, "There is no change to %s.", "groceries"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"code":"NO_CHANGE","error":"There is no change to groceries."}`,
		},
		{
			name:       "invalid credentials maps to 401",
			err:        apperrors.New(apperrors.CodeInvalidCredentials, "Invalid login credentials."),
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"code":"INVALID_CREDENTIALS","error":"Invalid login credentials."}`,
		},
		{
			name:       "plain error maps to a generic 500",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"code":"INTERNAL","error":"Unknown error has occurred."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := respondError(c, zap.NewNop(), tt.err)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
