package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func parseQuery(t *testing.T, query string) Params {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	return Parse(c)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", DefaultPage, DefaultLimit},
		{"explicit", "page=2&limit=50", 2, 50},
		{"per_page alias", "page=2&per_page=50", 2, 50},
		{"limit wins over per_page", "limit=10&per_page=50", 1, 10},
		{"negative page resets", "page=-3", DefaultPage, DefaultLimit},
		{"zero limit resets", "limit=0", 1, DefaultLimit},
		{"limit clamped", "limit=500", 1, MaxLimit},
		{"garbage falls back", "page=abc&limit=xyz", DefaultPage, DefaultLimit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			params := parseQuery(t, tc.query)
			assert.Equal(t, tc.wantPage, params.Page)
			assert.Equal(t, tc.wantLimit, params.Limit)
			assert.Equal(t, (tc.wantPage-1)*tc.wantLimit, params.Offset)
		})
	}
}
