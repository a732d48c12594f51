package api

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/albapepper/scoracle-hockey/docs"
	"github.com/albapepper/scoracle-hockey/internal/cache"
	"github.com/albapepper/scoracle-hockey/internal/config"
	"github.com/albapepper/scoracle-hockey/internal/scoring"
	"github.com/albapepper/scoracle-hockey/internal/snapshot"
)

func testSnapshot(t *testing.T) *snapshot.Snapshot {
	t.Helper()
	skaters := snapshot.RawTable{
		Columns: []string{"Player", "Team", "Pos", "G", "A", "PTS", "PIM", "SOG", "HIT", "BLK"},
		Rows: [][]string{
			{"Auston Matthews", "TOR", "C", "69", "38", "107", "20", "366", "80", "40"},
			{"Zach Hyman", "EDM", "LW", "54", "23", "77", "35", "250", "70", "30"},
			{"Victor Hedman", "TBL", "D", "13", "63", "76", "40", "180", "60", "100"},
		},
	}
	goalies := snapshot.RawTable{
		Columns: []string{"Player", "Team", "W", "SV", "SO", "SV%", "GAA"},
		Rows: [][]string{
			{"Sergei Bobrovsky", "FLA", "36", "1400", "6", ".915", "2.37"},
		},
	}
	snap, err := snapshot.Normalize(skaters, goalies)
	require.NoError(t, err)
	return snap
}

func testConfig() *config.Config {
	return &config.Config{
		SnapshotSource:    config.SourceCSV,
		CORSAllowOrigins:  []string{"http://localhost:3000"},
		RateLimitEnabled:  false,
		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
		CacheEnabled:      true,
		Rounding:          scoring.HalfAwayFromZero,
	}
}

func newTestServer(t *testing.T, cfg *config.Config) *httptest.Server {
	t.Helper()
	return newSnapshotServer(t, cfg, testSnapshot(t))
}

func newSnapshotServer(t *testing.T, cfg *config.Config, snap *snapshot.Snapshot) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := cache.New(cfg.CacheEnabled)
	t.Cleanup(c.Close)
	srv := httptest.NewServer(NewRouter(snap, c, cfg, logger))
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, url, body string, header ...string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, v), string(body))
}

type rankingsBody struct {
	Total    int                    `json:"total"`
	Count    int                    `json:"count"`
	Rounding string                 `json:"rounding"`
	Players  []scoring.ScoredPlayer `json:"players"`
	Weights  map[string]float64     `json:"weights"`
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, testConfig())

	for _, path := range []string{"/", "/health", "/health/snapshot", "/health/cache"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}

	resp, err := http.Get(srv.URL + "/health/snapshot")
	require.NoError(t, err)
	defer resp.Body.Close()
	var body map[string]interface{}
	decode(t, resp, &body)
	assert.Equal(t, 3.0, body["skaters"])
	assert.Equal(t, 1.0, body["goalies"])
}

func TestSwaggerDoc(t *testing.T) {
	srv := newTestServer(t, testConfig())
	resp, err := http.Get(srv.URL + "/docs/doc.json")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]interface{} `json:"paths"`
	}
	decode(t, resp, &doc)
	assert.Equal(t, "Scoracle Hockey Fantasy API", doc.Info.Title)
	assert.Contains(t, doc.Paths, "/api/v1/rankings")
}

func TestGetWeights(t *testing.T) {
	srv := newTestServer(t, testConfig())
	resp, err := http.Get(srv.URL + "/api/v1/weights")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body struct {
		Definitions []scoring.WeightDef `json:"definitions"`
		Defaults    map[string]float64  `json:"defaults"`
	}
	decode(t, resp, &body)
	assert.Len(t, body.Definitions, len(scoring.Definitions))
	assert.Equal(t, 6.0, body.Defaults["G"])
}

func TestPostRankingsDefaults(t *testing.T) {
	srv := newTestServer(t, testConfig())
	resp := post(t, srv.URL+"/api/v1/rankings", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "MISS", resp.Header.Get("X-Cache"))
	assert.NotEmpty(t, resp.Header.Get("ETag"))

	var body rankingsBody
	decode(t, resp, &body)
	assert.Equal(t, 4, body.Total)
	assert.Equal(t, "half_away", body.Rounding)
	require.Len(t, body.Players, 4)
	for i, p := range body.Players {
		assert.Equal(t, i+1, p.Rank)
	}
	assert.Equal(t, 6.0, body.Weights["G"])

	// Matthews: 69*6 + 38*4 + 20 + 366*0.25 + 80*2 + 40*2 = 917.5
	assert.Equal(t, "Auston Matthews", body.Players[0].Player)
	assert.Equal(t, 917.5, body.Players[0].FantasyPoints)

	// Bobrovsky: 36*2 + 1400*0.5 + 6*2 = 784
	assert.Equal(t, "Sergei Bobrovsky", body.Players[1].Player)
	assert.Equal(t, 784.0, body.Players[1].FantasyPoints)
	assert.Equal(t, "G", body.Players[1].Pos)
	assert.Equal(t, 0.915, body.Players[1].Stats["SV%"])
	assert.Equal(t, 0.0, body.Players[1].Stats["G"])
}

func TestPostRankingsCacheAndETag(t *testing.T) {
	srv := newTestServer(t, testConfig())
	payload := `{"weights":{"G":6,"A":4}}`

	first := post(t, srv.URL+"/api/v1/rankings", payload)
	require.Equal(t, http.StatusOK, first.StatusCode)
	etag := first.Header.Get("ETag")

	second := post(t, srv.URL+"/api/v1/rankings", `{"weights":{"A":4,"G":6}}`)
	assert.Equal(t, "HIT", second.Header.Get("X-Cache"))
	assert.Equal(t, etag, second.Header.Get("ETag"))

	notModified := post(t, srv.URL+"/api/v1/rankings", payload, "If-None-Match", etag)
	assert.Equal(t, http.StatusNotModified, notModified.StatusCode)

	other := post(t, srv.URL+"/api/v1/rankings", `{"weights":{"G":5}}`)
	assert.Equal(t, "MISS", other.Header.Get("X-Cache"))
	assert.NotEqual(t, etag, other.Header.Get("ETag"))
}

func TestPostRankingsExplicitWeights(t *testing.T) {
	srv := newTestServer(t, testConfig())
	resp := post(t, srv.URL+"/api/v1/rankings", `{"weights":{"G":1}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body rankingsBody
	decode(t, resp, &body)
	assert.Equal(t, "Auston Matthews", body.Players[0].Player)
	assert.Equal(t, 69.0, body.Players[0].FantasyPoints)

	last := body.Players[len(body.Players)-1]
	assert.Equal(t, "Sergei Bobrovsky", last.Player)
	assert.Equal(t, 0.0, last.FantasyPoints, "omitted weights are worth 0")
}

func TestPostRankingsFilters(t *testing.T) {
	srv := newTestServer(t, testConfig())

	resp := post(t, srv.URL+"/api/v1/rankings?position=D", "")
	var body rankingsBody
	decode(t, resp, &body)
	assert.Equal(t, 4, body.Total)
	require.Equal(t, 1, body.Count)
	assert.Equal(t, "Victor Hedman", body.Players[0].Player)

	resp = post(t, srv.URL+"/api/v1/rankings?position=rw", "")
	body = rankingsBody{}
	decode(t, resp, &body)
	assert.Equal(t, 0, body.Count)
	assert.NotNil(t, body.Players)
	assert.Empty(t, body.Players)

	resp = post(t, srv.URL+"/api/v1/rankings?top=2", "")
	body = rankingsBody{}
	decode(t, resp, &body)
	assert.Equal(t, 2, body.Count)
}

func TestPostRankingsBadInput(t *testing.T) {
	srv := newTestServer(t, testConfig())

	tests := []struct {
		name string
		url  string
		body string
		code string
	}{
		{"malformed", "/api/v1/rankings", `{"weights":`, "INVALID_BODY"},
		{"unknown field", "/api/v1/rankings", `{"weight":{}}`, "INVALID_BODY"},
		{"unknown stat", "/api/v1/rankings", `{"weights":{"FOW":1}}`, "INVALID_WEIGHTS"},
		{"out of range", "/api/v1/rankings", `{"weights":{"SOG":9}}`, "INVALID_WEIGHTS"},
		{"bad top", "/api/v1/rankings?top=-3", "", "INVALID_TOP"},
		{"bad group", "/api/v1/aggregates/league", "", "INVALID_GROUP"},
		{"bad order", "/api/v1/aggregates/team?order=median", "", "INVALID_ORDER"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, srv.URL+tt.url, tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			var body struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			decode(t, resp, &body)
			assert.Equal(t, tt.code, body.Error.Code)
		})
	}
}

func TestPostExportRankings(t *testing.T) {
	srv := newTestServer(t, testConfig())
	resp := post(t, srv.URL+"/api/v1/rankings/export", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "nhl_fantasy_rankings_4_players.csv")

	records, err := csv.NewReader(resp.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Equal(t, "Rank", records[0][0])
	assert.Equal(t, "1", records[1][0])
}

func TestPostAggregate(t *testing.T) {
	srv := newTestServer(t, testConfig())

	resp := post(t, srv.URL+"/api/v1/aggregates/position", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Key    string                 `json:"key"`
		Count  int                    `json:"count"`
		Groups []scoring.GroupSummary `json:"groups"`
	}
	decode(t, resp, &body)
	assert.Equal(t, "position", body.Key)
	assert.Equal(t, 4, body.Count)

	total := 0
	for _, g := range body.Groups {
		total += g.Count
	}
	assert.Equal(t, 4, total)

	resp = post(t, srv.URL+"/api/v1/aggregates/team?order=group&limit=2", "")
	body.Groups = nil
	decode(t, resp, &body)
	require.Len(t, body.Groups, 2)
	assert.Equal(t, "EDM", body.Groups[0].Group)
	assert.Equal(t, "FLA", body.Groups[1].Group)
}

func TestPostDashboard(t *testing.T) {
	srv := newTestServer(t, testConfig())

	resp := post(t, srv.URL+"/api/v1/dashboard", `{}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var preview map[string]interface{}
	decode(t, resp, &preview)
	assert.Equal(t, false, preview["calculated"])
	assert.Contains(t, preview, "preview")
	assert.NotContains(t, preview, "summary")

	resp = post(t, srv.URL+"/api/v1/dashboard", `{"run":true,"weights":{"G":6,"A":4}}`)
	var view struct {
		Calculated bool `json:"calculated"`
		Summary    struct {
			TotalPlayers int `json:"totalPlayers"`
			TopGoalie    struct {
				Found  bool   `json:"found"`
				Player string `json:"player"`
			} `json:"topGoalie"`
		} `json:"summary"`
		Tabs struct {
			RightWing struct {
				Empty bool `json:"empty"`
			} `json:"rightWing"`
		} `json:"tabs"`
	}
	decode(t, resp, &view)
	assert.True(t, view.Calculated)
	assert.Equal(t, 4, view.Summary.TotalPlayers)
	assert.True(t, view.Summary.TopGoalie.Found)
	assert.True(t, view.Tabs.RightWing.Empty)
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitEnabled = true
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Hour
	srv := newTestServer(t, cfg)

	codes := make([]int, 0, 3)
	var retryAfter string
	for range 3 {
		resp, err := http.Get(srv.URL + "/health")
		require.NoError(t, err)
		resp.Body.Close()
		codes = append(codes, resp.StatusCode)
		retryAfter = resp.Header.Get("Retry-After")
	}
	assert.Equal(t, http.StatusOK, codes[0])
	assert.Equal(t, http.StatusTooManyRequests, codes[2])
	assert.Equal(t, "1800", retryAfter)
}

func TestNonFiniteCellsScoreAsMissing(t *testing.T) {
	skaters := snapshot.RawTable{
		Columns: []string{"Player", "Team", "Pos", "G", "A", "SOG"},
		Rows: [][]string{
			{"Bad Cell", "TOR", "C", "inf", "1", "-Infinity"},
		},
	}
	goalies := snapshot.RawTable{
		Columns: []string{"Player", "Team", "W", "SV"},
		Rows:    [][]string{{"Odd Goalie", "BOS", "+Inf", "10"}},
	}
	snap, err := snapshot.Normalize(skaters, goalies)
	require.NoError(t, err)
	srv := newSnapshotServer(t, testConfig(), snap)

	resp := post(t, srv.URL+"/api/v1/rankings", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body rankingsBody
	decode(t, resp, &body)
	require.Len(t, body.Players, 2)
	// Goalie: 10*0.5 = 5; skater: 1*4 = 4
	assert.Equal(t, 5.0, body.Players[0].FantasyPoints)
	assert.Equal(t, 4.0, body.Players[1].FantasyPoints)
	assert.Equal(t, 0.0, body.Players[1].Stats["G"])

	for _, path := range []string{"/api/v1/dashboard", "/api/v1/aggregates/team"} {
		resp := post(t, srv.URL+path, `{"run":true}`)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		var v map[string]interface{}
		decode(t, resp, &v)
		assert.NotEmpty(t, v, path)
	}
}

func TestNonFiniteWeightRejected(t *testing.T) {
	srv := newTestServer(t, testConfig())
	resp := post(t, srv.URL+"/api/v1/rankings", `{"weights":{"G":1e400}}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
