package ddragon

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/kindred-labs/riotapi/pkg/httpclient"
)

type fakeTransport struct {
	mu     sync.Mutex
	bodies map[string]string
	calls  map[string]int
}

type fakeResponse struct {
	status int
	body   string
}

func (r fakeResponse) Body() []byte        { return []byte(r.body) }
func (r fakeResponse) StatusCode() int     { return r.status }
func (r fakeResponse) Header() http.Header { return nil }

func (f *fakeTransport) Get(_ context.Context, url string, _ map[string]string) (httpclient.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[url]++

	for fragment, body := range f.bodies {
		if strings.Contains(url, fragment) {
			return fakeResponse{status: 200, body: body}, nil
		}
	}
	return fakeResponse{status: 404, body: "not found"}, nil
}

func (f *fakeTransport) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

// memCache is an in-memory storage.Cache for tests.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (m *memCache) Close() error { return nil }

func (m *memCache) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memCache) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = map[string][]byte{}
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

const rosterBody = `{"data":{
	"Aatrox":{"id":"Aatrox","key":"266","name":"Aatrox","title":"the Darkin Blade"},
	"DrMundo":{"id":"DrMundo","key":"36","name":"Dr. Mundo","title":"the Madman of Zaun"},
	"LeeSin":{"id":"LeeSin","key":"64","name":"Lee Sin","title":"the Blind Monk"}
}}`

func newFixtureTransport() *fakeTransport {
	return &fakeTransport{bodies: map[string]string{
		"versions.json":  `["14.3.1","14.2.1"]`,
		"languages.json": `["en_US","it_IT","ko_KR"]`,
		"queues.json": `[
			{"queueId":0,"map":"Custom games","description":null},
			{"queueId":420,"map":"Summoner's Rift","description":"5v5 Ranked Solo games"},
			{"queueId":450,"map":"Howling Abyss","description":"5v5 ARAM games"}
		]`,
		"champion.json": rosterBody,
	}}
}

func TestLatestVersion(t *testing.T) {
	client := New(newFixtureTransport(), nil)

	version, err := client.LatestVersion(context.Background())
	if err != nil {
		t.Fatalf("LatestVersion: %v", err)
	}
	if version != "14.3.1" {
		t.Fatalf("unexpected version: %q", version)
	}
}

func TestQueueDescriptions(t *testing.T) {
	client := New(newFixtureTransport(), nil)

	desc, err := client.QueueDescription(context.Background(), 420)
	if err != nil {
		t.Fatalf("QueueDescription: %v", err)
	}
	if desc != "5v5 Ranked Solo" {
		t.Fatalf("description not cleaned up: %q", desc)
	}

	custom, err := client.QueueDescription(context.Background(), 99999)
	if err != nil {
		t.Fatalf("QueueDescription fallback: %v", err)
	}
	if custom != "Custom" {
		t.Fatalf("unknown queue should fall back to Custom: %q", custom)
	}
}

func TestChampionByID(t *testing.T) {
	client := New(newFixtureTransport(), nil)

	champ, err := client.ChampionByID(context.Background(), 36)
	if err != nil {
		t.Fatalf("ChampionByID: %v", err)
	}
	if champ.ID != "DrMundo" {
		t.Fatalf("unexpected champion: %+v", champ)
	}

	if _, err := client.ChampionByID(context.Background(), 123456); err == nil {
		t.Fatalf("expected error for unknown champion id")
	}
}

func TestChampionBySimilarName(t *testing.T) {
	client := New(newFixtureTransport(), nil)

	cases := map[string]string{
		"mundo":   "DrMundo",
		"lee sin": "LeeSin",
		"atrox":   "Aatrox",
	}
	for search, want := range cases {
		champ, err := client.ChampionBySimilarName(context.Background(), search)
		if err != nil {
			t.Fatalf("ChampionBySimilarName(%q): %v", search, err)
		}
		if champ.ID != want {
			t.Fatalf("ChampionBySimilarName(%q) = %q, want %q", search, champ.ID, want)
		}
	}
}

func TestNearestLanguage(t *testing.T) {
	client := New(newFixtureTransport(), nil)

	lang, err := client.NearestLanguage(context.Background(), "it")
	if err != nil {
		t.Fatalf("NearestLanguage: %v", err)
	}
	if lang != "it_IT" {
		t.Fatalf("unexpected language: %q", lang)
	}

	exact, err := client.NearestLanguage(context.Background(), "en_us")
	if err != nil || exact != "en_US" {
		t.Fatalf("case-insensitive exact match failed: %q %v", exact, err)
	}
}

func TestSnapshotCacheAvoidsRefetch(t *testing.T) {
	transport := newFixtureTransport()
	client := New(transport, &memCache{})

	if _, err := client.Versions(context.Background()); err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	if _, err := client.Versions(context.Background()); err != nil {
		t.Fatalf("second fetch: %v", err)
	}

	if got := transport.total(); got != 1 {
		t.Fatalf("expected a single upstream fetch, got %d", got)
	}
}

func TestFetchNon200IsError(t *testing.T) {
	client := New(&fakeTransport{}, nil)

	if _, err := client.Versions(context.Background()); err == nil {
		t.Fatalf("expected error for non-200 response")
	}
}

func TestChampionSplashURL(t *testing.T) {
	url := ChampionSplashURL("DrMundo", 2, "splash")
	want := "https://ddragon.leagueoflegends.com/cdn/img/champion/splash/DrMundo_2.jpg"
	if url != want {
		t.Fatalf("unexpected url:\n got %s\nwant %s", url, want)
	}
}
