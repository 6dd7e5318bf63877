package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendora/pkg/response"
)

func TestNearbyHotelsRejectsMissingCoordinates(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "no params", query: ""},
		{name: "missing lon", query: "lat=-6.2"},
		{name: "non-numeric lat", query: "lat=abc&lon=106.8"},
		{name: "non-numeric radius", query: "lat=-6.2&lon=106.8&radius=wide"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/v1/listings/hotels/nearby?"+tt.query, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			h := NewListingHandler(nil)
			require.NoError(t, h.NearbyHotels(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body response.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		})
	}
}
