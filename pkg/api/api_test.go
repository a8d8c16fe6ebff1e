package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/fingerbox/pkg/cache"
	"github.com/matzehuels/fingerbox/pkg/pipeline"
)

const scenarioA = `{
	"type": "basic",
	"width": 100, "depth": 80, "height": 60,
	"thickness": 3, "kerf": 0.15, "clearance": 0.05,
	"lid": "flat",
	"finger": {"mode": "width", "width": 10}
}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	logger := log.NewWithOptions(io.Discard, log.Options{})
	runner := pipeline.NewRunner(c, nil, nil, logger)
	ts := httptest.NewServer(NewServer(runner, logger).Handler())
	t.Cleanup(func() {
		ts.Close()
		runner.Close()
	})
	return ts
}

func post(t *testing.T, ts *httptest.Server, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(ts.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func get(t *testing.T, ts *httptest.Server, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  *ErrorBody      `json:"error"`
}

func decode(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func TestHealthCheck(t *testing.T) {
	resp := get(t, newTestServer(t), "/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "OK", string(body))
}

func TestCreateLayout(t *testing.T) {
	ts := newTestServer(t)
	resp := post(t, ts, "/api/v1/layouts", scenarioA)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decode(t, resp)
	assert.Equal(t, "success", env.Status)

	var data LayoutResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, resp.Header.Get("X-Layout-ID"), data.ID)
	assert.Equal(t, "basic", data.Type)
	require.Len(t, data.Panels, 6)
	assert.Equal(t, "BOTTOM", data.Panels[0].Name)
	assert.Equal(t, 106.0, data.Panels[0].Width)
	assert.Len(t, data.Joins, 12)
	require.NotNil(t, data.Params)
	assert.Equal(t, 100.0, data.Params.Width)
}

func TestCreateLayoutFormat(t *testing.T) {
	ts := newTestServer(t)
	resp := post(t, ts, "/api/v1/layouts?format=svg&labels=true", scenarioA)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".svg")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "<svg "))
	assert.Contains(t, string(body), ">FRONT</text>")
}

func TestGetLayout(t *testing.T) {
	ts := newTestServer(t)
	created := post(t, ts, "/api/v1/layouts", scenarioA)
	require.Equal(t, http.StatusOK, created.StatusCode)
	id := created.Header.Get("X-Layout-ID")
	require.NotEmpty(t, id)

	resp := get(t, ts, "/api/v1/layouts/"+id+"?format=dot")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/vnd.graphviz", resp.Header.Get("Content-Type"))
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.HasPrefix(string(body), "graph assembly {"))

	missing := get(t, ts, "/api/v1/layouts/00000000-0000-0000-0000-000000000000")
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode(t, missing).Error.Code)

	bad := get(t, ts, "/api/v1/layouts/nope")
	assert.Equal(t, http.StatusBadRequest, bad.StatusCode)
	assert.Equal(t, "id", decode(t, bad).Error.Field)
}

func TestCreateLayoutErrors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   string
		status int
		code   string
		field  string
	}{
		{
			name:   "zero width",
			path:   "/api/v1/layouts",
			body:   strings.Replace(scenarioA, `"width": 100`, `"width": 0`, 1),
			status: http.StatusUnprocessableEntity,
			code:   "INVALID_DIMENSION",
			field:  "width",
		},
		{
			name:   "unknown type",
			path:   "/api/v1/layouts",
			body:   strings.Replace(scenarioA, `"basic"`, `"hexagon"`, 1),
			status: http.StatusBadRequest,
			code:   "UNKNOWN_BOX_TYPE",
			field:  "type",
		},
		{
			name:   "bad lid",
			path:   "/api/v1/layouts",
			body:   strings.Replace(scenarioA, `"flat"`, `"hinged"`, 1),
			status: http.StatusUnprocessableEntity,
			code:   "CONFIGURATION",
			field:  "lid",
		},
		{
			name:   "unknown field",
			path:   "/api/v1/layouts",
			body:   strings.Replace(scenarioA, `"lid"`, `"lidd"`, 1),
			status: http.StatusBadRequest,
			code:   "INVALID_INPUT",
		},
		{
			name:   "malformed json",
			path:   "/api/v1/layouts",
			body:   `{"width":`,
			status: http.StatusBadRequest,
			code:   "INVALID_INPUT",
		},
		{
			name:   "bad format",
			path:   "/api/v1/layouts?format=gcode",
			body:   scenarioA,
			status: http.StatusBadRequest,
			code:   "INVALID_FORMAT",
			field:  "format",
		},
		{
			name:   "bad query value",
			path:   "/api/v1/layouts?format=svg&labels=maybe",
			body:   scenarioA,
			status: http.StatusBadRequest,
			code:   "INVALID_INPUT",
			field:  "labels",
		},
		{
			name:   "finger too wide",
			path:   "/api/v1/layouts",
			body:   strings.Replace(scenarioA, `"width": 10}`, `"width": 40}`, 1),
			status: http.StatusUnprocessableEntity,
			code:   "INVALID_DIMENSION",
			field:  "finger.width",
		},
	}

	ts := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, ts, tt.path, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
			env := decode(t, resp)
			assert.Equal(t, "error", env.Status)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
			assert.Equal(t, tt.field, env.Error.Field)
			assert.NotEmpty(t, env.Error.Message)
		})
	}
}

func TestRegistries(t *testing.T) {
	ts := newTestServer(t)

	var types []string
	require.NoError(t, json.Unmarshal(decode(t, get(t, ts, "/api/v1/box-types")).Data, &types))
	assert.Equal(t, []string{"angled", "basic", "flex", "tray"}, types)

	var styles []string
	require.NoError(t, json.Unmarshal(decode(t, get(t, ts, "/api/v1/edge-styles")).Data, &styles))
	assert.Equal(t, []string{"dovetail", "finger", "flex", "plain", "screw"}, styles)

	var formats []string
	require.NoError(t, json.Unmarshal(decode(t, get(t, ts, "/api/v1/formats")).Data, &formats))
	assert.Contains(t, formats, "dxf")
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, statusFor("SOMETHING_ELSE"))
	assert.Equal(t, http.StatusNotImplemented, statusFor("UNSUPPORTED"))
}
