package riot

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kindred-labs/riotapi/pkg/httpclient"
	"github.com/kindred-labs/riotapi/pkg/regions"
)

const (
	baseURLFormat  = "https://%s.api.riotgames.com%s"
	apiKeyHeader   = "X-Riot-Token"
	defaultTimeout = 15 * time.Second
)

// Logger is the minimal logging surface the client uses for request tracing.
// *zap.SugaredLogger satisfies it.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
}

// Client is the facade over the Riot API: one method per remote endpoint.
// Every method returns a Result; transport and decode faults are folded into
// the Result, never raised. Methods are safe for concurrent use.
type Client struct {
	apiKey       string
	platform     string
	routingValue string
	http         httpclient.Client
	log          Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithTransport injects the HTTP transport, e.g. a fake in tests.
func WithTransport(t httpclient.Client) Option {
	return func(c *Client) { c.http = t }
}

// WithLogger enables debug request tracing.
func WithLogger(l Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithRoutingValue overrides the regional routing value derived from the platform.
func WithRoutingValue(routing string) Option {
	return func(c *Client) { c.routingValue = strings.ToLower(strings.TrimSpace(routing)) }
}

// New builds a Client for the given platform (e.g. "euw1"). The regional
// routing value for match-v5 endpoints is derived from the platform and can
// be overridden with WithRoutingValue.
func New(apiKey, platform string, opts ...Option) *Client {
	c := &Client{
		apiKey:   strings.TrimSpace(apiKey),
		platform: strings.ToLower(strings.TrimSpace(platform)),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.routingValue == "" {
		if routing, ok := regions.RoutingFor(c.platform); ok {
			c.routingValue = routing
		} else {
			c.routingValue = "europe"
		}
	}
	if c.http == nil {
		c.http = httpclient.NewRestyClient(defaultTimeout)
	}
	return c
}

// Platform returns the platform identifier the client targets.
func (c *Client) Platform() string { return c.platform }

// RoutingValue returns the regional routing value used for match-v5 calls.
func (c *Client) RoutingValue() string { return c.routingValue }

func (c *Client) platformURL(path string) string {
	return fmt.Sprintf(baseURLFormat, c.platform, path)
}

func (c *Client) regionalURL(path string) string {
	return fmt.Sprintf(baseURLFormat, c.routingValue, path)
}

// call performs one authenticated GET and feeds the outcome through the
// normalizer. This is the only place transport faults are converted.
func call[T any](ctx context.Context, c *Client, rawURL string) Result[T] {
	resp, err := c.http.Get(ctx, rawURL, map[string]string{apiKeyHeader: c.apiKey})
	if err != nil {
		if c.log != nil {
			c.log.Debugw("riot api transport fault", "url", rawURL, "error", err.Error())
		}
		return TransportFailure[T](err)
	}
	if c.log != nil {
		c.log.Debugw("riot api response", "status", resp.StatusCode(), "url", rawURL)
	}
	return Normalize[T](resp.StatusCode(), resp.Body(), resp.Header())
}

// CHAMPION-MASTERY-V4

// Masteries returns all champion masteries for a summoner, ordered by points.
func (c *Client) Masteries(ctx context.Context, summonerID string) Result[[]ChampionMastery] {
	return call[[]ChampionMastery](ctx, c,
		c.platformURL("/lol/champion-mastery/v4/champion-masteries/by-summoner/"+url.PathEscape(summonerID)))
}

// ChampionMastery returns the mastery of one champion for a summoner.
func (c *Client) ChampionMastery(ctx context.Context, summonerID string, championID int) Result[ChampionMastery] {
	return call[ChampionMastery](ctx, c, c.platformURL(fmt.Sprintf(
		"/lol/champion-mastery/v4/champion-masteries/by-summoner/%s/by-champion/%d",
		url.PathEscape(summonerID), championID)))
}

// MasteryScore returns the summoner's total mastery score.
func (c *Client) MasteryScore(ctx context.Context, summonerID string) Result[int] {
	return call[int](ctx, c,
		c.platformURL("/lol/champion-mastery/v4/scores/by-summoner/"+url.PathEscape(summonerID)))
}

// CHAMPION-V3

// ChampionRotation returns the current free champion rotation.
func (c *Client) ChampionRotation(ctx context.Context) Result[ChampionRotationInfo] {
	return call[ChampionRotationInfo](ctx, c, c.platformURL("/lol/platform/v3/champion-rotations"))
}

// LEAGUE-V4

// LeagueEntries returns all ranked entries for a summoner.
func (c *Client) LeagueEntries(ctx context.Context, summonerID string) Result[[]LeagueEntry] {
	return call[[]LeagueEntry](ctx, c,
		c.platformURL("/lol/league/v4/entries/by-summoner/"+url.PathEscape(summonerID)))
}

// SoloLeague returns the summoner's solo queue entry.
func (c *Client) SoloLeague(ctx context.Context, summonerID string) Result[LeagueEntry] {
	return c.leagueByQueue(ctx, summonerID, "SOLO")
}

// FlexLeague returns the summoner's flex queue entry.
func (c *Client) FlexLeague(ctx context.Context, summonerID string) Result[LeagueEntry] {
	return c.leagueByQueue(ctx, summonerID, "FLEX")
}

func (c *Client) leagueByQueue(ctx context.Context, summonerID, queue string) Result[LeagueEntry] {
	entries := c.LeagueEntries(ctx, summonerID)
	if !entries.Ok() {
		return Failure[LeagueEntry](entries.Err())
	}
	queue = strings.ToLower(queue)
	for _, entry := range entries.Value() {
		if strings.Contains(strings.ToLower(entry.QueueType), queue) {
			return Success(entry)
		}
	}
	return Failure[LeagueEntry](&APIError{
		StatusCode: http.StatusNotFound,
		Message:    fmt.Sprintf("no %s queue entry for summoner", queue),
	})
}

// LOL-STATUS-V3

// ShardData returns the legacy v3 shard status.
func (c *Client) ShardData(ctx context.Context) Result[ShardStatus] {
	return call[ShardStatus](ctx, c, c.platformURL("/lol/status/v3/shard-data"))
}

// LOL-STATUS-V4

// PlatformStatus returns maintenance and incident data for the platform.
func (c *Client) PlatformStatus(ctx context.Context) Result[PlatformData] {
	return call[PlatformData](ctx, c, c.platformURL("/lol/status/v4/platform-data"))
}

// MATCH-V5 (regionally routed)

// MatchIDs returns up to count match IDs for a player, newest first.
func (c *Client) MatchIDs(ctx context.Context, puuid string, start, count int) Result[[]string] {
	return call[[]string](ctx, c, c.regionalURL(fmt.Sprintf(
		"/lol/match/v5/matches/by-puuid/%s/ids?start=%d&count=%d", url.PathEscape(puuid), start, count)))
}

// Match returns a single match by ID.
func (c *Client) Match(ctx context.Context, matchID string) Result[Match] {
	return call[Match](ctx, c, c.regionalURL("/lol/match/v5/matches/"+url.PathEscape(matchID)))
}

// NthMatch returns the player's nth most recent match, 0 being the latest.
func (c *Client) NthMatch(ctx context.Context, puuid string, n int) Result[Match] {
	ids := c.MatchIDs(ctx, puuid, n, 1)
	if !ids.Ok() {
		return Failure[Match](ids.Err())
	}
	if len(ids.Value()) == 0 {
		return Failure[Match](&APIError{StatusCode: http.StatusNotFound, Message: "no match at requested offset"})
	}
	return c.Match(ctx, ids.Value()[0])
}

// LastMatch returns the player's most recent match.
func (c *Client) LastMatch(ctx context.Context, puuid string) Result[Match] {
	return c.NthMatch(ctx, puuid, 0)
}

// SPECTATOR-V4

// ActiveGame returns the game a summoner is currently playing, if any.
func (c *Client) ActiveGame(ctx context.Context, summonerID string) Result[CurrentGameInfo] {
	return call[CurrentGameInfo](ctx, c,
		c.platformURL("/lol/spectator/v4/active-games/by-summoner/"+url.PathEscape(summonerID)))
}

// FeaturedGames returns the platform's featured game list.
func (c *Client) FeaturedGames(ctx context.Context) Result[FeaturedGames] {
	return call[FeaturedGames](ctx, c, c.platformURL("/lol/spectator/v4/featured-games"))
}

// SUMMONER-V4

// SummonerByAccountID looks up a summoner by encrypted account ID.
func (c *Client) SummonerByAccountID(ctx context.Context, accountID string) Result[Summoner] {
	return call[Summoner](ctx, c,
		c.platformURL("/lol/summoner/v4/summoners/by-account/"+url.PathEscape(accountID)))
}

// SummonerByName looks up a summoner by display name.
func (c *Client) SummonerByName(ctx context.Context, name string) Result[Summoner] {
	return call[Summoner](ctx, c,
		c.platformURL("/lol/summoner/v4/summoners/by-name/"+url.PathEscape(name)))
}

// SummonerByPUUID looks up a summoner by encrypted PUUID.
func (c *Client) SummonerByPUUID(ctx context.Context, puuid string) Result[Summoner] {
	return call[Summoner](ctx, c,
		c.platformURL("/lol/summoner/v4/summoners/by-puuid/"+url.PathEscape(puuid)))
}

// SummonerByID looks up a summoner by encrypted summoner ID.
func (c *Client) SummonerByID(ctx context.Context, summonerID string) Result[Summoner] {
	return call[Summoner](ctx, c,
		c.platformURL("/lol/summoner/v4/summoners/"+url.PathEscape(summonerID)))
}
