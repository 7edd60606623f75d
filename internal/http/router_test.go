package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yungbote/missions-backend/internal/data/repos"
	"github.com/yungbote/missions-backend/internal/data/repos/testutil"
	types "github.com/yungbote/missions-backend/internal/domain"
	httpH "github.com/yungbote/missions-backend/internal/http/handlers"
	"github.com/yungbote/missions-backend/internal/observability"
	"github.com/yungbote/missions-backend/internal/services"
)

const validationBody = `{"errors":["validation errors"]}`

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.DB(t)
	log := testutil.Logger(t)
	metrics := observability.NewMetrics()

	scientistRepo := repos.NewScientistRepo(db, log)
	planetRepo := repos.NewPlanetRepo(db, log)
	missionRepo := repos.NewMissionRepo(db, log)

	r := NewRouter(RouterConfig{
		Log:              log,
		MaxRequestBytes:  1 << 20,
		Metrics:          metrics,
		ScientistHandler: httpH.NewScientistHandler(log, services.NewScientistService(db, log, metrics, scientistRepo, missionRepo)),
		PlanetHandler:    httpH.NewPlanetHandler(log, services.NewPlanetService(db, log, metrics, planetRepo, missionRepo)),
		MissionHandler:   httpH.NewMissionHandler(log, services.NewMissionService(db, log, metrics, missionRepo)),
		HealthHandler:    httpH.NewHealthHandler(nil),
	})
	return r, db
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %s: %v", rec.Body.String(), err)
	}
	return out
}

func missionCount(t *testing.T, db *gorm.DB, where string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	q := db.Model(&types.Mission{})
	if where != "" {
		q = q.Where(where, args...)
	}
	if err := q.Count(&n).Error; err != nil {
		t.Fatalf("count missions: %v", err)
	}
	return n
}

func TestScientistRoundTrip(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := do(t, r, http.MethodPost, "/scientists", `{"name":"Mel T. Valent","field_of_study":"xenobiology"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST status: want=201 got=%d body=%s", rec.Code, rec.Body.String())
	}
	created := decode[types.ScientistDetail](t, rec)
	if created.ID == 0 || created.Name != "Mel T. Valent" || created.FieldOfStudy != "xenobiology" {
		t.Fatalf("POST: unexpected %+v", created)
	}
	if !strings.Contains(rec.Body.String(), `"missions":[]`) {
		t.Fatalf("POST: missions must be an empty array, body=%s", rec.Body.String())
	}

	rec = do(t, r, http.MethodGet, fmt.Sprintf("/scientists/%d", created.ID), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET status: want=200 got=%d", rec.Code)
	}
	got := decode[types.ScientistDetail](t, rec)
	if got.ID != created.ID || got.Name != created.Name || got.FieldOfStudy != created.FieldOfStudy {
		t.Fatalf("GET: want=%+v got=%+v", created, got)
	}

	rec = do(t, r, http.MethodGet, "/scientists", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status: want=200 got=%d", rec.Code)
	}
	list := decode[[]map[string]any](t, rec)
	if len(list) == 0 {
		t.Fatalf("list: expected rows")
	}
	for _, row := range list {
		if len(row) != 3 {
			t.Fatalf("list: summary must have id, name, field_of_study only, got=%v", row)
		}
		if _, ok := row["missions"]; ok {
			t.Fatalf("list: missions must not be embedded")
		}
	}
}

func TestCreateScientistValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	bodies := []string{
		`{"name":"","field_of_study":"x"}`,
		`{"name":"   ","field_of_study":"x"}`,
		`{"name":"Ada"}`,
		`{"name":"Ada","field_of_study":null}`,
		`{"name":"Ada","field_of_study":"x","rank":"chief"}`,
		`not json`,
		``,
	}
	for _, body := range bodies {
		rec := do(t, r, http.MethodPost, "/scientists", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("POST %q: want=400 got=%d", body, rec.Code)
		}
		if got := rec.Body.String(); got != validationBody {
			t.Fatalf("POST %q: body want=%s got=%s", body, validationBody, got)
		}
	}
}

func TestGetScientistEmbedsMissions(t *testing.T) {
	r, db := newTestRouter(t)
	ctx := context.Background()

	s := testutil.SeedScientist(t, ctx, db, "Ada", "Math")
	p := testutil.SeedPlanet(t, ctx, db, "Mars", 225, "Sun")
	m1 := testutil.SeedMission(t, ctx, db, "Probe", s.ID, p.ID)
	m2 := testutil.SeedMission(t, ctx, db, "Rover", s.ID, p.ID)

	rec := do(t, r, http.MethodGet, fmt.Sprintf("/scientists/%d", s.ID), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: want=200 got=%d", rec.Code)
	}
	got := decode[types.ScientistDetail](t, rec)
	if len(got.Missions) != 2 || got.Missions[0].ID != m1.ID || got.Missions[1].ID != m2.ID {
		t.Fatalf("missions: unexpected %+v", got.Missions)
	}
	if got.Missions[0].ScientistID != s.ID || got.Missions[0].PlanetID != p.ID {
		t.Fatalf("mission view: unexpected %+v", got.Missions[0])
	}
}

func TestMissingOrMalformedIDIsNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, path := range []string{"/scientists/987654", "/scientists/abc", "/scientists/0", "/scientists/-3"} {
		rec := do(t, r, http.MethodGet, path, "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("GET %s: want=404 got=%d", path, rec.Code)
		}
		if got := rec.Body.String(); got != `{"error":"Scientist not found"}` {
			t.Fatalf("GET %s: unexpected body %s", path, got)
		}
	}
	rec := do(t, r, http.MethodGet, "/planets/987654", "")
	if rec.Code != http.StatusNotFound || rec.Body.String() != `{"error":"Planet not found"}` {
		t.Fatalf("GET planet: unexpected %d %s", rec.Code, rec.Body.String())
	}
	rec = do(t, r, http.MethodDelete, "/missions/987654", "")
	if rec.Code != http.StatusNotFound || rec.Body.String() != `{"error":"Mission not found"}` {
		t.Fatalf("DELETE mission: unexpected %d %s", rec.Code, rec.Body.String())
	}
}

func TestPatchScientist(t *testing.T) {
	r, db := newTestRouter(t)
	ctx := context.Background()
	s := testutil.SeedScientist(t, ctx, db, "Ada", "Math")
	path := fmt.Sprintf("/scientists/%d", s.ID)

	rejected := []string{
		`{"name":""}`,
		`{"name":null}`,
		`{"name":"Grace","field_of_study":"  "}`,
		`{"id":99}`,
		`{"name":"Grace","missions":[]}`,
	}
	for _, body := range rejected {
		rec := do(t, r, http.MethodPatch, path, body)
		if rec.Code != http.StatusBadRequest || rec.Body.String() != validationBody {
			t.Fatalf("PATCH %s: want 400 %s got=%d %s", body, validationBody, rec.Code, rec.Body.String())
		}
	}
	var stored types.Scientist
	if err := db.First(&stored, s.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.Name != "Ada" || stored.FieldOfStudy != "Math" {
		t.Fatalf("rejected patches changed the row: %+v", stored)
	}

	rec := do(t, r, http.MethodPatch, path, `{"name":"Grace"}`)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("PATCH: want=202 got=%d body=%s", rec.Code, rec.Body.String())
	}
	got := decode[types.ScientistDetail](t, rec)
	if got.Name != "Grace" || got.FieldOfStudy != "Math" || got.Missions == nil {
		t.Fatalf("PATCH: unexpected %+v", got)
	}

	rec = do(t, r, http.MethodPatch, path, `{}`)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("PATCH empty: want=202 got=%d", rec.Code)
	}
	if got := decode[types.ScientistDetail](t, rec); got.Name != "Grace" {
		t.Fatalf("PATCH empty: unexpected %+v", got)
	}

	rec = do(t, r, http.MethodPatch, "/scientists/987654", `{"name":"Nobody"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("PATCH missing: want=404 got=%d", rec.Code)
	}
	rec = do(t, r, http.MethodPatch, "/scientists/987654", `{"id":1}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("PATCH missing with bad body: want=404 got=%d", rec.Code)
	}
}

func TestDeleteScientistCascades(t *testing.T) {
	r, db := newTestRouter(t)
	ctx := context.Background()

	s := testutil.SeedScientist(t, ctx, db, "Ada", "Math")
	p := testutil.SeedPlanet(t, ctx, db, "Mars", 225, "Sun")
	for i := 0; i < 4; i++ {
		testutil.SeedMission(t, ctx, db, fmt.Sprintf("m%d", i), s.ID, p.ID)
	}

	path := fmt.Sprintf("/scientists/%d", s.ID)
	rec := do(t, r, http.MethodDelete, path, "")
	if rec.Code != http.StatusNoContent || rec.Body.Len() != 0 {
		t.Fatalf("DELETE: want 204 with empty body got=%d %q", rec.Code, rec.Body.String())
	}
	if n := missionCount(t, db, "scientist_id = ?", s.ID); n != 0 {
		t.Fatalf("missions after delete: want=0 got=%d", n)
	}
	rec = do(t, r, http.MethodGet, path, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("GET after delete: want=404 got=%d", rec.Code)
	}
	rec = do(t, r, http.MethodDelete, path, "")
	if rec.Code != http.StatusNotFound || rec.Body.String() != `{"error":"Scientist not found"}` {
		t.Fatalf("DELETE again: unexpected %d %s", rec.Code, rec.Body.String())
	}
}

func TestCreateMission(t *testing.T) {
	r, db := newTestRouter(t)
	ctx := context.Background()

	s := testutil.SeedScientist(t, ctx, db, "Ada", "Math")
	p := testutil.SeedPlanet(t, ctx, db, "Mars", 225, "Sun")

	rec := do(t, r, http.MethodPost, "/missions", fmt.Sprintf(`{"name":"Mars Probe","scientist_id":%d,"planet_id":%d}`, s.ID, p.ID))
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST: want=201 got=%d body=%s", rec.Code, rec.Body.String())
	}
	created := decode[types.MissionView](t, rec)
	want := fmt.Sprintf(`{"id":%d,"name":"Mars Probe","scientist_id":%d,"planet_id":%d}`, created.ID, s.ID, p.ID)
	if got := rec.Body.String(); got != want {
		t.Fatalf("POST body: want=%s got=%s", want, got)
	}

	before := missionCount(t, db, "")
	rejected := []string{
		fmt.Sprintf(`{"name":"Ghost","scientist_id":987654,"planet_id":%d}`, p.ID),
		fmt.Sprintf(`{"name":"Ghost","scientist_id":%d,"planet_id":987654}`, s.ID),
		fmt.Sprintf(`{"name":"","scientist_id":%d,"planet_id":%d}`, s.ID, p.ID),
		fmt.Sprintf(`{"name":"x","planet_id":%d}`, p.ID),
		fmt.Sprintf(`{"name":"x","scientist_id":"one","planet_id":%d}`, p.ID),
	}
	for _, body := range rejected {
		rec := do(t, r, http.MethodPost, "/missions", body)
		if rec.Code != http.StatusBadRequest || rec.Body.String() != validationBody {
			t.Fatalf("POST %s: want 400 got=%d %s", body, rec.Code, rec.Body.String())
		}
	}
	if after := missionCount(t, db, ""); after != before {
		t.Fatalf("mission count changed: before=%d after=%d", before, after)
	}

	rec = do(t, r, http.MethodGet, fmt.Sprintf("/missions/%d", created.ID), "")
	if rec.Code != http.StatusOK || rec.Body.String() != want {
		t.Fatalf("GET mission: unexpected %d %s", rec.Code, rec.Body.String())
	}
	rec = do(t, r, http.MethodGet, "/missions", "")
	if rec.Code != http.StatusOK || len(decode[[]types.MissionView](t, rec)) == 0 {
		t.Fatalf("list missions: unexpected %d %s", rec.Code, rec.Body.String())
	}
	rec = do(t, r, http.MethodDelete, fmt.Sprintf("/missions/%d", created.ID), "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("DELETE mission: want=204 got=%d", rec.Code)
	}
}

func TestPlanetRoutes(t *testing.T) {
	r, db := newTestRouter(t)
	ctx := context.Background()

	rec := do(t, r, http.MethodPost, "/planets", `{"name":"TauCeti IV","distance_from_earth":1234567,"nearest_star":"TauCeti"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST: want=201 got=%d body=%s", rec.Code, rec.Body.String())
	}
	p := decode[types.PlanetView](t, rec)
	want := fmt.Sprintf(`{"id":%d,"name":"TauCeti IV","distance_from_earth":1234567,"nearest_star":"TauCeti"}`, p.ID)
	if rec.Body.String() != want {
		t.Fatalf("POST body: want=%s got=%s", want, rec.Body.String())
	}

	rec = do(t, r, http.MethodGet, fmt.Sprintf("/planets/%d", p.ID), "")
	if rec.Code != http.StatusOK || rec.Body.String() != want {
		t.Fatalf("GET planet: unexpected %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, r, http.MethodPost, "/planets", `{"name":"X","distance_from_earth":"far"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("POST bad distance: want=400 got=%d", rec.Code)
	}

	a := testutil.SeedScientist(t, ctx, db, "A", "x")
	b := testutil.SeedScientist(t, ctx, db, "B", "y")
	testutil.SeedMission(t, ctx, db, "m1", a.ID, p.ID)
	testutil.SeedMission(t, ctx, db, "m2", a.ID, p.ID)
	testutil.SeedMission(t, ctx, db, "m3", b.ID, p.ID)

	rec = do(t, r, http.MethodGet, fmt.Sprintf("/planets/%d/scientists", p.ID), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("scientists proxy: want=200 got=%d", rec.Code)
	}
	if got := decode[[]types.ScientistSummary](t, rec); len(got) != 2 {
		t.Fatalf("scientists proxy: want=2 distinct got=%+v", got)
	}

	rec = do(t, r, http.MethodGet, fmt.Sprintf("/scientists/%d/planets", a.ID), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("planets proxy: want=200 got=%d", rec.Code)
	}
	if got := decode[[]types.PlanetView](t, rec); len(got) != 1 || got[0].ID != p.ID {
		t.Fatalf("planets proxy: unexpected %+v", got)
	}

	rec = do(t, r, http.MethodGet, "/planets", "")
	if rec.Code != http.StatusOK || len(decode[[]types.PlanetView](t, rec)) == 0 {
		t.Fatalf("list planets: unexpected %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, r, http.MethodDelete, fmt.Sprintf("/planets/%d", p.ID), "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("DELETE: want=204 got=%d", rec.Code)
	}
	if n := missionCount(t, db, "planet_id = ?", p.ID); n != 0 {
		t.Fatalf("missions after planet delete: want=0 got=%d", n)
	}
}

func TestHealthMetricsAndMethods(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := do(t, r, http.MethodGet, "/healthcheck", "")
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("healthcheck: unexpected %d %q", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatalf("healthcheck: missing request id header")
	}

	rec = do(t, r, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "missions_http_requests_total") {
		t.Fatalf("metrics: unexpected %d", rec.Code)
	}

	rec = do(t, r, http.MethodPut, "/scientists/1", `{}`)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("PUT: want=405 got=%d", rec.Code)
	}

	rec = do(t, r, http.MethodGet, "/nowhere", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown route: want=404 got=%d", rec.Code)
	}
}
