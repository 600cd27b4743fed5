package ddragon

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/kindred-labs/riotapi/internal/storage"
	"github.com/kindred-labs/riotapi/pkg/httpclient"
)

// Package ddragon serves League static data (versions, queues, champions,
// languages) from the Data Dragon CDN, with optional local snapshot caching.

const (
	versionsURL   = "https://ddragon.leagueoflegends.com/api/versions.json"
	languagesURL  = "https://ddragon.leagueoflegends.com/cdn/languages.json"
	queuesURL     = "https://static.developer.riotgames.com/docs/lol/queues.json"
	rosterURLFmt  = "https://ddragon.leagueoflegends.com/cdn/%s/data/en_US/champion.json"
	detailURLFmt  = "https://ddragon.leagueoflegends.com/cdn/%s/data/%s/champion/%s.json"
	profileURLFmt = "https://ddragon.leagueoflegends.com/cdn/%s/img/profileicon/%d.png"
	splashURLFmt  = "https://ddragon.leagueoflegends.com/cdn/img/champion/%s/%s_%d.jpg"

	defaultTimeout = 15 * time.Second
)

// ShortChampion is one entry of the champion roster.
type ShortChampion struct {
	ID      string             `json:"id"`
	Key     string             `json:"key"`
	Name    string             `json:"name"`
	Title   string             `json:"title"`
	Blurb   string             `json:"blurb"`
	Partype string             `json:"partype"`
	Tags    []string           `json:"tags"`
	Version string             `json:"version"`
	Info    ChampionInfo       `json:"info"`
	Image   ChampionImage      `json:"image"`
	Stats   map[string]float64 `json:"stats"`
}

type ChampionInfo struct {
	Attack     int `json:"attack"`
	Defense    int `json:"defense"`
	Magic      int `json:"magic"`
	Difficulty int `json:"difficulty"`
}

type ChampionImage struct {
	Full   string `json:"full"`
	Sprite string `json:"sprite"`
	Group  string `json:"group"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	W      int    `json:"w"`
	H      int    `json:"h"`
}

// FullChampion is the per-champion detail document.
type FullChampion struct {
	ShortChampion
	Lore      string          `json:"lore"`
	AllyTips  []string        `json:"allytips"`
	EnemyTips []string        `json:"enemytips"`
	Skins     []ChampionSkin  `json:"skins"`
	Spells    []ChampionSpell `json:"spells"`
	Passive   ChampionPassive `json:"passive"`
}

type ChampionSkin struct {
	ID      string `json:"id"`
	Num     int    `json:"num"`
	Name    string `json:"name"`
	Chromas bool   `json:"chromas"`
}

type ChampionSpell struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	CooldownBurn string `json:"cooldownBurn"`
	CostBurn     string `json:"costBurn"`
}

type ChampionPassive struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type queueEntry struct {
	QueueID     int     `json:"queueId"`
	Description *string `json:"description"`
}

// Client fetches and caches Data Dragon documents. All lookups are lazy; the
// first call fetches from the CDN, later calls within the cache TTL are
// served locally.
type Client struct {
	http  httpclient.Client
	cache storage.Cache
}

// New builds a Data Dragon client. A nil transport falls back to the default
// resty client; a nil cache disables snapshot caching.
func New(transport httpclient.Client, cache storage.Cache) *Client {
	if transport == nil {
		transport = httpclient.NewRestyClient(defaultTimeout)
	}
	if cache == nil {
		cache, _ = storage.NewCache("none", "", storage.Options{})
	}
	return &Client{http: transport, cache: cache}
}

// fetch returns the document at url, serving from the snapshot cache when possible.
func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	if data, ok, err := c.cache.Get(url); err == nil && ok {
		return data, nil
	}

	resp, err := c.http.Get(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode())
	}

	body := resp.Body()
	if err := c.cache.Put(url, body); err != nil {
		return nil, fmt.Errorf("cache %s: %w", url, err)
	}
	return body, nil
}

func (c *Client) fetchJSON(ctx context.Context, url string, out any) error {
	data, err := c.fetch(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

// Versions returns all game data versions, newest first.
func (c *Client) Versions(ctx context.Context) ([]string, error) {
	var versions []string
	if err := c.fetchJSON(ctx, versionsURL, &versions); err != nil {
		return nil, err
	}
	return versions, nil
}

// LatestVersion returns the newest game data version.
func (c *Client) LatestVersion(ctx context.Context) (string, error) {
	versions, err := c.Versions(ctx)
	if err != nil {
		return "", err
	}
	if len(versions) == 0 {
		return "", fmt.Errorf("version list is empty")
	}
	return versions[0], nil
}

// Languages returns the locales Data Dragon publishes, e.g. "en_US".
func (c *Client) Languages(ctx context.Context) ([]string, error) {
	var languages []string
	if err := c.fetchJSON(ctx, languagesURL, &languages); err != nil {
		return nil, err
	}
	return languages, nil
}

// NearestLanguage resolves a free-form language name ("english", "it") to the
// closest published locale.
func (c *Client) NearestLanguage(ctx context.Context, search string) (string, error) {
	languages, err := c.Languages(ctx)
	if err != nil {
		return "", err
	}
	for _, lang := range languages {
		if strings.EqualFold(lang, search) {
			return lang, nil
		}
	}
	best, ok := bestMatch(search, languages)
	if !ok {
		return "", fmt.Errorf("no locale resembling %q", search)
	}
	return best, nil
}

// Queues returns queue ID to cleaned-up description, e.g. 420 -> "5v5 Ranked Solo".
func (c *Client) Queues(ctx context.Context) (map[int]string, error) {
	var entries []queueEntry
	if err := c.fetchJSON(ctx, queuesURL, &entries); err != nil {
		return nil, err
	}

	queues := make(map[int]string, len(entries))
	for _, q := range entries {
		if q.Description == nil {
			queues[q.QueueID] = "Custom"
			continue
		}
		queues[q.QueueID] = strings.TrimSpace(strings.ReplaceAll(*q.Description, "games", ""))
	}
	return queues, nil
}

// QueueDescription returns the description for a queue ID, falling back to
// the custom-game description for unknown IDs.
func (c *Client) QueueDescription(ctx context.Context, queueID int) (string, error) {
	queues, err := c.Queues(ctx)
	if err != nil {
		return "", err
	}
	if desc, ok := queues[queueID]; ok {
		return desc, nil
	}
	return queues[0], nil
}

// Champions returns the current champion roster keyed by champion ID string
// (e.g. "DrMundo").
func (c *Client) Champions(ctx context.Context) (map[string]ShortChampion, error) {
	version, err := c.LatestVersion(ctx)
	if err != nil {
		return nil, err
	}

	var doc struct {
		Data map[string]ShortChampion `json:"data"`
	}
	if err := c.fetchJSON(ctx, fmt.Sprintf(rosterURLFmt, version), &doc); err != nil {
		return nil, err
	}
	return doc.Data, nil
}

// ChampionByID resolves an integer champion ID to its roster entry.
func (c *Client) ChampionByID(ctx context.Context, championID int) (ShortChampion, error) {
	champions, err := c.Champions(ctx)
	if err != nil {
		return ShortChampion{}, err
	}
	want := fmt.Sprintf("%d", championID)
	for _, champ := range champions {
		if champ.Key == want {
			return champ, nil
		}
	}
	return ShortChampion{}, fmt.Errorf("no champion with id %d", championID)
}

// ChampionBySimilarName resolves a free-form name ("mundo", "Lee sin") to the
// best matching roster entry.
func (c *Client) ChampionBySimilarName(ctx context.Context, search string) (ShortChampion, error) {
	champions, err := c.Champions(ctx)
	if err != nil {
		return ShortChampion{}, err
	}

	names := make([]string, 0, len(champions))
	for name := range champions {
		names = append(names, name)
	}
	best, ok := bestMatch(search, names)
	if !ok {
		return ShortChampion{}, fmt.Errorf("no champion resembling %q", search)
	}
	return champions[best], nil
}

// FullChampion returns the complete champion document in the given language.
func (c *Client) FullChampion(ctx context.Context, name, language string) (FullChampion, error) {
	version, err := c.LatestVersion(ctx)
	if err != nil {
		return FullChampion{}, err
	}
	language, err = c.NearestLanguage(ctx, language)
	if err != nil {
		return FullChampion{}, err
	}

	var doc struct {
		Data map[string]FullChampion `json:"data"`
	}
	if err := c.fetchJSON(ctx, fmt.Sprintf(detailURLFmt, version, language, name), &doc); err != nil {
		return FullChampion{}, err
	}
	champ, ok := doc.Data[name]
	if !ok {
		return FullChampion{}, fmt.Errorf("champion %q missing from detail document", name)
	}
	return champ, nil
}

// ProfileIconURL builds the CDN URL for a profile icon.
func (c *Client) ProfileIconURL(ctx context.Context, iconID int) (string, error) {
	version, err := c.LatestVersion(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(profileURLFmt, version, iconID), nil
}

// ChampionSplashURL builds the CDN URL for a champion splash image. kind is
// "splash" or "loading".
func ChampionSplashURL(championID string, skin int, kind string) string {
	return fmt.Sprintf(splashURLFmt, kind, championID, skin)
}
