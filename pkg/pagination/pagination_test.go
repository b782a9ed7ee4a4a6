package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func paramsFor(t *testing.T, query string) Params {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest("GET", "/?"+query, nil)
	return FromContext(e.NewContext(req, httptest.NewRecorder()))
}

func TestFromContext(t *testing.T) {
	tests := []struct {
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"", DefaultLimit, 0},
		{"limit=5&offset=10", 5, 10},
		{"limit=0", DefaultLimit, 0},
		{"limit=-3&offset=-7", DefaultLimit, 0},
		{"limit=9999", MaxLimit, 0},
		{"limit=abc", DefaultLimit, 0},
	}
	for _, tt := range tests {
		p := paramsFor(t, tt.query)
		if p.Limit != tt.wantLimit || p.Offset != tt.wantOffset {
			t.Errorf("%q: got %+v, want limit %d offset %d", tt.query, p, tt.wantLimit, tt.wantOffset)
		}
	}
}

func TestNewResponseHasMore(t *testing.T) {
	if !NewResponse(nil, 30, 10, 0).HasMore {
		t.Error("expected has_more for first page of 30")
	}
	if NewResponse(nil, 30, 10, 20).HasMore {
		t.Error("expected no has_more on last page")
	}
}
