package inbound

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/michaelosthege/hagelkorn/internal/keygen/entity"
	"github.com/michaelosthege/hagelkorn/internal/keygen/event"
	"github.com/michaelosthege/hagelkorn/internal/keygen/store"
	"github.com/michaelosthege/hagelkorn/internal/keygen/usecase"
	"github.com/michaelosthege/hagelkorn/internal/pkg/pkghagel"
	"github.com/michaelosthege/hagelkorn/internal/pkg/pkgrouter"
	"github.com/michaelosthege/hagelkorn/internal/pkg/pkgroutine"
	"github.com/michaelosthege/hagelkorn/internal/pkg/pkguid"
)

type envelope[T any] struct {
	Message string            `json:"message"`
	Data    T                 `json:"data"`
	Meta    map[string]any    `json:"meta,omitempty"`
	Error   map[string]string `json:"error,omitempty"`
}

type testServer struct {
	router *pkgrouter.Router
	runner *pkgroutine.Manager
	bus    *event.Bus
}

func newTestServer(t *testing.T) testServer {
	t.Helper()

	hagel, err := pkghagel.New(pkghagel.DefaultConfig())
	if err != nil {
		t.Fatalf("pkghagel.New: %v", err)
	}
	random, err := pkghagel.NewRandom(pkghagel.NewSource(1, 2), pkghagel.DefaultRandomDigits, pkghagel.DefaultAlphabet)
	if err != nil {
		t.Fatalf("pkghagel.NewRandom: %v", err)
	}
	nanoid, err := pkguid.NewNanoID(pkguid.DefaultNanoIDSize, pkguid.DefaultNanoIDAlphabet)
	if err != nil {
		t.Fatalf("pkguid.NewNanoID: %v", err)
	}

	uuid := pkguid.NewUUID()
	runner := pkgroutine.NewManager(4)
	bus := event.NewBus(4)

	uc := usecase.New(usecase.Dependency{
		Hagel: hagel,
		Generators: map[entity.Strategy]pkguid.StringID{
			entity.StrategyRandom: random,
			entity.StrategyUUID:   uuid,
			entity.StrategyNanoID: nanoid,
		},
		Parsers: map[entity.Strategy]pkguid.TimeParser{
			entity.StrategyUUID: uuid,
		},
		Store:   store.NewInMemoryStore(),
		Events:  bus,
		Runner:  runner,
		ID:      uuid,
		RootCtx: context.Background(),
	})

	router := pkgrouter.NewRouter(uuid)
	RegisterHTTPEndpoint(router, uc)

	return testServer{router: router, runner: runner, bus: bus}
}

func get[T any](t *testing.T, h http.Handler, target string, wantStatus int) envelope[T] {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != wantStatus {
		t.Fatalf("GET %s: status %d, want %d (%s)", target, rec.Code, wantStatus, rec.Body.String())
	}

	var env envelope[T]
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("GET %s: decode: %v", target, err)
	}
	return env
}

func TestGenerateAndParse(t *testing.T) {
	srv := newTestServer(t)

	mono := get[GenerateResponse](t, srv.router, "/ids/monotonic?at=2018-01-01T00:00:00Z", http.StatusOK)
	if len(mono.Data.IDs) != 1 || mono.Data.IDs[0] != "111111" {
		t.Fatalf("unexpected monotonic ids: %v", mono.Data.IDs)
	}
	if mono.Data.Strategy != entity.StrategyMonotonic || mono.Meta["count"] != float64(1) {
		t.Fatalf("unexpected monotonic response: %+v", mono)
	}

	parsed := get[ParseResponse](t, srv.router, "/ids/monotonic/parse?id=111114", http.StatusOK)
	if parsed.Data.Interval == nil || parsed.Data.Interval.Index != 2 {
		t.Fatalf("unexpected monotonic parse: %+v", parsed.Data)
	}
	if !parsed.Data.Interval.Start.Before(parsed.Data.Interval.End) {
		t.Fatalf("expected a non-empty interval, got %+v", parsed.Data.Interval)
	}

	ids := get[GenerateResponse](t, srv.router, "/ids/uuid?count=3", http.StatusOK)
	if len(ids.Data.IDs) != 3 {
		t.Fatalf("expected 3 uuids, got %v", ids.Data.IDs)
	}

	ts := get[ParseResponse](t, srv.router, "/ids/uuid/parse?id="+ids.Data.IDs[0], http.StatusOK)
	if d := time.Since(ts.Data.Time); d < 0 || d > time.Minute {
		t.Fatalf("unexpected uuid timestamp %s", ts.Data.Time)
	}

	random := get[GenerateResponse](t, srv.router, "/ids/random?count=5", http.StatusOK)
	for _, id := range random.Data.IDs {
		if len(id) != pkghagel.DefaultRandomDigits {
			t.Fatalf("unexpected random id %q", id)
		}
	}

	if err := srv.runner.Wait(); err != nil {
		t.Fatalf("runner wait: %v", err)
	}
}

func TestGenerateErrors(t *testing.T) {
	srv := newTestServer(t)

	cases := []struct {
		target string
		status int
		code   string
	}{
		{"/ids/guid", http.StatusNotFound, "ERROR_CODE_NOT_FOUND"},
		{"/ids/ulid", http.StatusNotFound, "ERROR_CODE_NOT_FOUND"},
		{"/ids/random?count=1001", http.StatusUnprocessableEntity, "ERROR_CODE_INVALID_INPUT"},
		{"/ids/random?count=abc", http.StatusUnprocessableEntity, "ERROR_CODE_INVALID_INPUT"},
		{"/ids/monotonic?at=yesterday", http.StatusUnprocessableEntity, "ERROR_CODE_INVALID_INPUT"},
		{"/ids/uuid?at=2020-01-01T00:00:00Z", http.StatusUnprocessableEntity, "ERROR_CODE_INVALID_INPUT"},
		{"/ids/nanoid/parse?id=abc", http.StatusUnprocessableEntity, "ERROR_CODE_UNSUPPORTED"},
		{"/ids/uuid/parse", http.StatusUnprocessableEntity, "ERROR_CODE_INVALID_INPUT"},
		{"/ids/monotonic/parse?id=0", http.StatusUnprocessableEntity, "ERROR_CODE_INVALID_INPUT"},
	}

	for _, tc := range cases {
		env := get[json.RawMessage](t, srv.router, tc.target, tc.status)
		if env.Error["code"] != tc.code {
			t.Fatalf("GET %s: code %q, want %q", tc.target, env.Error["code"], tc.code)
		}
	}
}

func TestHagelEndpoints(t *testing.T) {
	srv := newTestServer(t)

	info := get[GeneratorResponse](t, srv.router, "/hagel", http.StatusOK)
	if info.Data.Digits != 6 || info.Data.Base != 27 || info.Data.Alphabet != pkghagel.DefaultAlphabet {
		t.Fatalf("unexpected generator info: %+v", info.Data)
	}

	params := get[Parameters](t, srv.router, "/hagel/parameters?overflow_years=1&resolution=86400&base=10", http.StatusOK)
	if params.Data.Digits != 3 || params.Data.Combinations != 1000 || params.Data.Resolution != 31536 {
		t.Fatalf("unexpected parameters: %+v", params.Data)
	}

	defaults := get[Parameters](t, srv.router, "/hagel/parameters", http.StatusOK)
	if defaults.Data.Digits != 6 {
		t.Fatalf("unexpected default parameters: %+v", defaults.Data)
	}

	get[json.RawMessage](t, srv.router, "/hagel/parameters?base=1", http.StatusUnprocessableEntity)
	get[json.RawMessage](t, srv.router, "/hagel/parameters?resolution=fast", http.StatusUnprocessableEntity)

	preview := get[PreviewResponse](t, srv.router,
		"/hagel/preview?at=2019-01-01T00:00:00Z&resolution=86400&alphabet=0123456789&overflow_years=1", http.StatusOK)
	if preview.Data.ID != "1000" || preview.Data.Generator.Digits != 3 {
		t.Fatalf("unexpected preview: %+v", preview.Data)
	}

	get[json.RawMessage](t, srv.router, "/hagel/preview?alphabet=ZYX", http.StatusUnprocessableEntity)
}

func TestStatsAndOverflow(t *testing.T) {
	srv := newTestServer(t)

	get[GenerateResponse](t, srv.router, "/ids/nanoid?count=4", http.StatusOK)
	wide := get[GenerateResponse](t, srv.router, "/ids/monotonic?at=2030-01-01T00:00:00Z", http.StatusOK)
	if got := wide.Data.IDs[0]; len(got) != 7 {
		t.Fatalf("expected a 7 symbol id after the horizon, got %q", got)
	}

	stats := get[StatsResponse](t, srv.router, "/stats", http.StatusOK)
	if len(stats.Data.Strategies) != 2 || stats.Meta["issued"] != float64(5) {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	one := get[StrategyStats](t, srv.router, "/stats/nanoid", http.StatusOK)
	if one.Data.Issued != 4 || one.Data.Batches != 1 {
		t.Fatalf("unexpected nanoid stats: %+v", one.Data)
	}
	get[json.RawMessage](t, srv.router, "/stats/ksuid", http.StatusNotFound)

	if err := srv.runner.Wait(); err != nil {
		t.Fatalf("runner wait: %v", err)
	}

	select {
	case ev := <-srv.bus.Subscribe():
		if ev.Digits != 6 || ev.Width != 7 || ev.EventID == "" {
			t.Fatalf("unexpected overflow event: %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("expected an overflow event")
	}
}
