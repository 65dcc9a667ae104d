package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pokedex/internal/cli"
	"github.com/rshade/pokedex/internal/config"
	"github.com/rshade/pokedex/internal/pokedex"
)

type fixture struct {
	name          string
	types         []string
	atk, def, spd int
}

//nolint:gochecknoglobals // Test fixtures.
var fixtures = []fixture{
	{name: "bulbasaur", types: []string{"grass", "poison"}, atk: 49, def: 49, spd: 45},
	{name: "ivysaur", types: []string{"grass", "poison"}, atk: 62, def: 63, spd: 60},
	{name: "charmander", types: []string{"fire"}, atk: 52, def: 43, spd: 65},
}

// newMockAPI serves an index and detail documents for fixtures. failID makes
// that detail return 500.
func newMockAPI(t *testing.T, failID int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/pokemon", func(w http.ResponseWriter, r *http.Request) {
		limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
		require.NoError(t, err)
		limit = min(limit, len(fixtures))

		var results []string
		for i := range limit {
			results = append(results, fmt.Sprintf(`{"name": %q, "url": "/api/v2/pokemon/%d/"}`, fixtures[i].name, i+1))
		}
		fmt.Fprintf(w, `{"count": %d, "next": null, "results": [%s]}`, len(fixtures), strings.Join(results, ","))
	})
	mux.HandleFunc("/api/v2/pokemon/", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/v2/pokemon/"), "/"))
		if err != nil || id < 1 || id > len(fixtures) {
			http.NotFound(w, r)
			return
		}
		if id == failID {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		f := fixtures[id-1]
		types := make([]string, len(f.types))
		for i, ty := range f.types {
			types[i] = fmt.Sprintf(`{"slot": %d, "type": {"name": %q}}`, i+1, ty)
		}
		fmt.Fprintf(w, `{"id": %d, "name": %q, "sprites": {"front_default": "img%d"},
			"types": [%s],
			"stats": [
				{"base_stat": 1, "stat": {"name": "hp"}},
				{"base_stat": %d, "stat": {"name": "attack"}},
				{"base_stat": %d, "stat": {"name": "defense"}},
				{"base_stat": %d, "stat": {"name": "speed"}}
			]}`, id, f.name, id, strings.Join(types, ","), f.atk, f.def, f.spd)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// isolate gives the test its own config home and a clean global config.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	for _, k := range []string{
		config.EnvBaseURL, config.EnvLimit, config.EnvTimeout, config.EnvConcurrency,
		config.EnvRateLimit, config.EnvLogFile, config.EnvOutput,
	} {
		t.Setenv(k, "")
	}
	t.Setenv(config.EnvLogLevel, "error")
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.ResetGlobalConfigForTest()

	lookupEnv := func(key string) (string, bool) {
		if key == "POKEDEX_SKIP_DOTENV" {
			return "1", true
		}
		return os.LookupEnv(key)
	}
	root := cli.NewRootCmdWithArgs("1.2.3", lookupEnv)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func baseURL(srv *httptest.Server) string {
	return srv.URL + "/api/v2"
}

func TestList_Table(t *testing.T) {
	isolate(t)
	srv := newMockAPI(t, 0)

	out, err := executeCmd(t, "--base-url", baseURL(srv), "list")
	require.NoError(t, err)

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "bulbasaur")
	assert.Contains(t, out, "grass, poison")
	assert.Contains(t, out, "charmander")
	assert.Contains(t, out, "3 Pokémon")
	assert.Less(t, strings.Index(out, "bulbasaur"), strings.Index(out, "charmander"))
}

func TestList_SearchJSON(t *testing.T) {
	isolate(t)
	srv := newMockAPI(t, 0)

	out, err := executeCmd(t, "--base-url", baseURL(srv), "list", "--search", "SAUR", "--output", "json")
	require.NoError(t, err)

	var got []pokedex.Pokemon
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "bulbasaur", got[0].Name)
	assert.Equal(t, "img1", got[0].ImageURL)
	assert.Equal(t, []string{"grass", "poison"}, got[0].Types)
	assert.Equal(t, "ivysaur", got[1].Name)
}

func TestList_NoMatchJSONIsEmptyArray(t *testing.T) {
	isolate(t)
	srv := newMockAPI(t, 0)

	out, err := executeCmd(t, "--base-url", baseURL(srv), "list", "-s", "zzz", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestList_SortNDJSON(t *testing.T) {
	isolate(t)
	srv := newMockAPI(t, 0)

	out, err := executeCmd(t, "--base-url", baseURL(srv), "list", "--sort", "speed:desc", "-o", "ndjson")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	var names []string
	for _, line := range lines {
		var p pokedex.Pokemon
		require.NoError(t, json.Unmarshal([]byte(line), &p))
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"charmander", "ivysaur", "bulbasaur"}, names)
}

func TestList_Limit(t *testing.T) {
	isolate(t)
	srv := newMockAPI(t, 0)

	out, err := executeCmd(t, "--base-url", baseURL(srv), "--limit", "1", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "bulbasaur")
	assert.NotContains(t, out, "ivysaur")
	assert.Contains(t, out, "1 Pokémon")
}

func TestList_Errors(t *testing.T) {
	isolate(t)
	srv := newMockAPI(t, 0)

	_, err := executeCmd(t, "--base-url", baseURL(srv), "list", "--output", "xml")
	require.ErrorContains(t, err, "unsupported output format")

	_, err = executeCmd(t, "--base-url", baseURL(srv), "list", "--sort", "hp")
	require.ErrorContains(t, err, "invalid sort field")

	_, err = executeCmd(t, "--limit", "0", "list")
	require.ErrorContains(t, err, "api.limit must be >= 1")
}

func TestList_AllOrNothing(t *testing.T) {
	isolate(t)
	srv := newMockAPI(t, 2)

	out, err := executeCmd(t, "--base-url", baseURL(srv), "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.NotContains(t, out, "bulbasaur")
}

func TestShow(t *testing.T) {
	isolate(t)
	srv := newMockAPI(t, 0)

	out, err := executeCmd(t, "--base-url", baseURL(srv), "show", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "#3 charmander")
	assert.Contains(t, out, "Image: img3")
	assert.Contains(t, out, "Types: fire")
	assert.Contains(t, out, "Attack: 52")
	assert.Contains(t, out, "Defense: 43")
	assert.Contains(t, out, "Speed: 65")

	out, err = executeCmd(t, "--base-url", baseURL(srv), "show", "IvySaur", "-o", "json")
	require.NoError(t, err)
	var got []pokedex.Pokemon
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

func TestShow_NotFound(t *testing.T) {
	isolate(t)
	srv := newMockAPI(t, 0)

	_, err := executeCmd(t, "--base-url", baseURL(srv), "show", "missingno")
	require.ErrorIs(t, err, cli.ErrNotFound)

	_, err = executeCmd(t, "show")
	require.Error(t, err)
}

func TestBrowse_FallsBackToTable(t *testing.T) {
	isolate(t)
	srv := newMockAPI(t, 0)

	for _, args := range [][]string{
		{"--base-url", baseURL(srv)},
		{"--base-url", baseURL(srv), "browse"},
	} {
		out, err := executeCmd(t, args...)
		require.NoError(t, err)
		assert.Contains(t, out, "ivysaur")
		assert.Contains(t, out, "3 Pokémon")
	}
}

func TestVersion(t *testing.T) {
	isolate(t)

	out, err := executeCmd(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)

	out, err = executeCmd(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "pokedex ")
	assert.Contains(t, out, "go: ")
}

func TestConfigCommands(t *testing.T) {
	home := isolate(t)

	out, err := executeCmd(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(home, "config.yaml"))
	assert.FileExists(t, filepath.Join(home, "config.yaml"))

	_, err = executeCmd(t, "config", "init")
	require.ErrorContains(t, err, "already exists")

	_, err = executeCmd(t, "config", "init", "--force")
	require.NoError(t, err)

	_, err = executeCmd(t, "config", "set", "api.limit", "20")
	require.NoError(t, err)

	out, err = executeCmd(t, "config", "get", "api.limit")
	require.NoError(t, err)
	assert.Equal(t, "20\n", out)

	_, err = executeCmd(t, "config", "set", "api.limit", "0")
	require.ErrorContains(t, err, "api.limit must be >= 1")

	_, err = executeCmd(t, "config", "get", "api.nope")
	require.ErrorContains(t, err, "unknown config key")

	out, err = executeCmd(t, "config", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "api.base_url")
	assert.Contains(t, out, config.DefaultBaseURL)
	assert.Contains(t, out, "api.limit")
}

func TestConfigCommands_RepairBrokenFile(t *testing.T) {
	home := isolate(t)
	srv := newMockAPI(t, 0)
	path := filepath.Join(home, "config.yaml")
	broken := []byte("api:\n  limit: 0\n")
	require.NoError(t, os.WriteFile(path, broken, 0o600))

	_, err := executeCmd(t, "--base-url", baseURL(srv), "list")
	require.ErrorContains(t, err, "invalid configuration")

	_, err = executeCmd(t, "config", "get", "api.limit")
	require.NoError(t, err)

	_, err = executeCmd(t, "config", "set", "api.limit", "151")
	require.NoError(t, err)
	out, err := executeCmd(t, "config", "get", "api.limit")
	require.NoError(t, err)
	assert.Equal(t, "151\n", out)

	require.NoError(t, os.WriteFile(path, broken, 0o600))
	_, err = executeCmd(t, "config", "init", "--force")
	require.NoError(t, err)

	out, err = executeCmd(t, "--base-url", baseURL(srv), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "3 Pokémon")
}

func TestList_ForceColor(t *testing.T) {
	isolate(t)
	t.Setenv("NO_COLOR", "")
	require.NoError(t, os.Unsetenv("NO_COLOR"))
	t.Setenv("TERM", "xterm-256color")
	srv := newMockAPI(t, 0)

	out, err := executeCmd(t, "--base-url", baseURL(srv), "--force-color", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Pokédex")
	assert.Contains(t, out, "#001")
	assert.Contains(t, out, "Bulbasaur")
	assert.Contains(t, out, "\x1b[")
	assert.NotContains(t, out, "NAME")

	out, err = executeCmd(t, "--base-url", baseURL(srv), "--force-color", "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "#001 Bulbasaur")
	assert.Contains(t, out, "╭")
}

func TestList_PlainWinsOverForceColor(t *testing.T) {
	isolate(t)
	srv := newMockAPI(t, 0)

	for _, flag := range []string{"--plain", "--no-color"} {
		out, err := executeCmd(t, "--base-url", baseURL(srv), "--force-color", flag, "list")
		require.NoError(t, err, flag)
		assert.Contains(t, out, "NAME", flag)
		assert.NotContains(t, out, "\x1b[", flag)
	}
}
