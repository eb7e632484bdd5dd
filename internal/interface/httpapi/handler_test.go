package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"flight-time-overlay/internal/domain/entity"
	"flight-time-overlay/internal/usecase"
	"flight-time-overlay/pkg/logger"
	"flight-time-overlay/pkg/offsettable"
	"flight-time-overlay/pkg/timeconv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMux() *http.ServeMux {
	log := logger.NewNopLogger()
	svc := usecase.NewOverlayService(offsettable.NewDefault(), timeconv.Settings{}, usecase.OverlaySettings{Enabled: true}, nil, nil, log)

	mux := http.NewServeMux()
	NewHandler(svc, log).Register(mux)
	return mux
}

func do(t *testing.T, mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestConvertEndpoint(t *testing.T) {
	mux := newTestMux()

	tests := []struct {
		name   string
		body   string
		result string
		text   string
		reason string
	}{
		{"converted", `{"time":"19:20","airport":"MNL"}`, "converted", "20:20 (JST)", ""},
		{"code normalized at the edge", `{"time":"19:20","airport":" mnl "}`, "converted", "20:20 (JST)", ""},
		{"equivalent", `{"time":"10:00","airport":"NRT"}`, "already_equivalent", "", ""},
		{"unknown", `{"time":"10:00","airport":"XXX"}`, "unresolvable", "", "unknown airport code"},
		{"unparseable", `{"time":"not a time","airport":"NRT"}`, "unresolvable", "", "unparseable time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, mux, http.MethodPost, "/api/v1/convert", tt.body)
			require.Equal(t, http.StatusOK, rec.Code)

			var resp convertResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.result, resp.Result)
			assert.Equal(t, tt.text, resp.Text)
			assert.Equal(t, tt.reason, resp.Reason)
		})
	}
}

func TestConvertEndpoint_BadBody(t *testing.T) {
	rec := do(t, newTestMux(), http.MethodPost, "/api/v1/convert", `{"time":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnnotateEndpoint(t *testing.T) {
	mux := newTestMux()

	body := `{"url":"https://www.skyscanner.jp/transport/flights/tyoa/ceb/250801/","legs":[
		{"direction":"departure","time":"9:00","airport":"HND"},
		{"direction":"arrival","time":"13:30","airport":"CEB"}]}`

	rec := do(t, mux, http.MethodPost, "/api/v1/annotate", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp annotateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Enabled)
	require.NotNil(t, resp.Route)
	assert.Equal(t, "TYOA", resp.Route.Departure)
	require.Len(t, resp.Annotations, 2)
	assert.False(t, resp.Annotations[0].Inject)
	assert.True(t, resp.Annotations[1].Inject)
	assert.Equal(t, "14:30 (JST)", resp.Annotations[1].Text)
	assert.Equal(t, 1, resp.ConvertedCount)

	rec = do(t, mux, http.MethodGet, "/api/v1/status", "")
	var status statusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, int64(1), status.ConvertedCount)

	rec = do(t, mux, http.MethodPost, "/api/v1/refresh", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, int64(0), status.ConvertedCount)
}

func TestLookupEndpoint(t *testing.T) {
	mux := newTestMux()

	rec := do(t, mux, http.MethodGet, "/api/v1/airports/vie", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp lookupResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, lookupResponse{Code: "VIE", OffsetMinutes: -480}, resp)

	rec = do(t, mux, http.MethodGet, "/api/v1/airports/XXX", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSettingsEndpoint(t *testing.T) {
	mux := newTestMux()

	rec := do(t, mux, http.MethodPut, "/api/v1/settings", `{"enabled":false}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var status statusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.False(t, status.Enabled)
	assert.False(t, status.Debug)

	rec = do(t, mux, http.MethodPost, "/api/v1/annotate", `{"legs":[{"time":"19:20","airport":"MNL"}]}`)
	var resp annotateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Enabled)
	assert.Empty(t, resp.Annotations)
}

type memoryRecords struct {
	saved []*entity.ConversionRecord
}

func (m *memoryRecords) Save(ctx context.Context, record *entity.ConversionRecord) error {
	m.saved = append(m.saved, record)
	return nil
}

func (m *memoryRecords) FindByRouteKey(ctx context.Context, routeKey string, limit int64) ([]*entity.ConversionRecord, error) {
	var out []*entity.ConversionRecord
	for _, r := range m.saved {
		if r.RouteKey == routeKey && int64(len(out)) < limit {
			out = append(out, r)
		}
	}
	return out, nil
}

func TestRecordsEndpoint(t *testing.T) {
	log := logger.NewNopLogger()
	svc := usecase.NewOverlayService(offsettable.NewDefault(), timeconv.Settings{}, usecase.OverlaySettings{Enabled: true}, &memoryRecords{}, nil, log)
	mux := http.NewServeMux()
	NewHandler(svc, log).Register(mux)

	body := `{"url":"https://www.skyscanner.jp/transport/flights/tyoa/ceb/250801/","legs":[
		{"direction":"departure","time":"9:00","airport":"HND"},
		{"direction":"arrival","time":"13:30","airport":"CEB"}]}`
	require.Equal(t, http.StatusOK, do(t, mux, http.MethodPost, "/api/v1/annotate", body).Code)

	rec := do(t, mux, http.MethodGet, "/api/v1/records?route=tyoa-ceb", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp recordsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "TYOA-CEB", resp.Route)
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "CEB", resp.Records[0].Airport)
	assert.Equal(t, "14:30 (JST)", resp.Records[0].Text)
	assert.Equal(t, -60, resp.Records[0].OffsetMinutes)

	assert.Equal(t, http.StatusBadRequest, do(t, mux, http.MethodGet, "/api/v1/records", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, mux, http.MethodGet, "/api/v1/records?route=TYOA-CEB&limit=0", "").Code)
}

func TestRecordsEndpoint_NotConfigured(t *testing.T) {
	rec := do(t, newTestMux(), http.MethodGet, "/api/v1/records?route=TYOA-CEB", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
