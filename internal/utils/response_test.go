package utils

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/upgradehq/upgrade-backend/internal/errs"
)

func TestSendServiceErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", fmt.Errorf("%w: empty content", errs.ErrValidation), http.StatusBadRequest},
		{"not found", fmt.Errorf("%w: product 7", errs.ErrNotFound), http.StatusNotFound},
		{"conflict", fmt.Errorf("%w: duplicate vote", errs.ErrConflict), http.StatusConflict},
		{"unknown", fmt.Errorf("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			SendServiceError(c, "request failed", tt.err)

			if w.Code != tt.want {
				t.Errorf("got status %d, want %d", w.Code, tt.want)
			}
		})
	}
}
