package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripkit/internal/config"
	httptransport "tripkit/internal/http"
	"tripkit/internal/modules/planner"
	"tripkit/internal/modules/record"
	"tripkit/internal/modules/trip"
)

// anyArgs builds n wildcard matchers for expectations where only the
// statement and call count matter.
func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func newTestRouter(t *testing.T) (*gin.Engine, pgxmock.PgxPoolIface) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	tripSvc := trip.NewService(trip.NewStore(mock), nil)
	recordSvc := record.NewService(record.NewStore(mock), t.TempDir())
	statusSvc := planner.NewStatusService(config.AIConfig{Service: config.ServiceSimulation}, nil)

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Trips:    tripSvc,
		Records:  recordSvc,
		AIStatus: statusSvc,
	})
	return router, mock
}

func TestCreateTripRejectsBadInput(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/trips", strings.NewReader("not json"))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/trips", strings.NewReader(
		`{"name": "휴가", "destination": "세부", "start_date": "10/01/2026", "end_date": "2026-10-04"}`))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateTripSeedsTemplate(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectExec("INSERT INTO trips").WithArgs(anyArgs(6)...).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectBegin()
	// Two-day trip to an unknown destination: base template only.
	for i := 0; i < 7; i++ {
		mock.ExpectExec("INSERT INTO checklists").WithArgs(anyArgs(7)...).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}
	for i := 0; i < 5; i++ {
		mock.ExpectExec("INSERT INTO items").WithArgs(anyArgs(7)...).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}
	mock.ExpectCommit()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/trips", strings.NewReader(
		`{"name": "휴가", "destination": "레이캬비크", "start_date": "2026-10-01", "end_date": "2026-10-02"}`))
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Trip struct {
			Days int `json:"days"`
		} `json:"trip"`
		ContentSource string `json:"content_source"`
		Generated     struct {
			Checklists int `json:"checklists"`
			Items      int `json:"items"`
		} `json:"generated"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Trip.Days)
	assert.Equal(t, "template", resp.ContentSource)
	assert.Equal(t, 7, resp.Generated.Checklists)
	assert.Equal(t, 5, resp.Generated.Items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleChecklistEndpoint(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery("UPDATE checklists").
		WithArgs("c-1").
		WillReturnRows(pgxmock.NewRows([]string{"is_completed"}).AddRow(true))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checklists/c-1/toggle", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"is_completed": true}`, w.Body.String())
}

func TestDeleteRecordUnknownKind(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/records/bogus/r-1", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAIStatusSimulation(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/ai/status", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var st planner.Status
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	assert.Equal(t, "simulation", st.Service)
	assert.True(t, st.Available)
	assert.True(t, st.Reachable)
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}
