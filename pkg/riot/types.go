package riot

import (
	"strconv"
	"strings"
)

// DTOs for the account, summoner, mastery, league and status endpoints.
// Field names and shapes follow https://developer.riotgames.com/apis; unknown
// fields in a response are ignored, absent optional fields decode to zero
// values.

// ACCOUNT-V1
type Account struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// SUMMONER-V4
type Summoner struct {
	ID            string `json:"id"`
	AccountID     string `json:"accountId"`
	PUUID         string `json:"puuid"`
	Name          string `json:"name"`
	ProfileIconID int    `json:"profileIconId"`
	RevisionDate  int64  `json:"revisionDate"`
	SummonerLevel int64  `json:"summonerLevel"`
}

// CHAMPION-MASTERY-V4
type ChampionMastery struct {
	SummonerID                   string `json:"summonerId"`
	ChampionID                   int    `json:"championId"`
	ChampionLevel                int    `json:"championLevel"`
	ChampionPoints               int    `json:"championPoints"`
	ChampionPointsSinceLastLevel int    `json:"championPointsSinceLastLevel"`
	ChampionPointsUntilNextLevel int    `json:"championPointsUntilNextLevel"`
	ChestGranted                 bool   `json:"chestGranted"`
	LastPlayTime                 int64  `json:"lastPlayTime"`
	TokensEarned                 int    `json:"tokensEarned"`
}

// CHAMPION-V3
type ChampionRotationInfo struct {
	FreeChampionIDs              []int `json:"freeChampionIds"`
	FreeChampionIDsForNewPlayers []int `json:"freeChampionIdsForNewPlayers"`
	MaxNewPlayerLevel            int   `json:"maxNewPlayerLevel"`
}

// LEAGUE-V4
type LeagueEntry struct {
	LeagueID     string      `json:"leagueId"`
	SummonerID   string      `json:"summonerId"`
	SummonerName string      `json:"summonerName"`
	QueueType    string      `json:"queueType"`
	Tier         string      `json:"tier"`
	Rank         string      `json:"rank"`
	LeaguePoints int         `json:"leaguePoints"`
	Wins         int         `json:"wins"`
	Losses       int         `json:"losses"`
	HotStreak    bool        `json:"hotStreak"`
	Veteran      bool        `json:"veteran"`
	FreshBlood   bool        `json:"freshBlood"`
	Inactive     bool        `json:"inactive"`
	MiniSeries   *MiniSeries `json:"miniSeries,omitempty"`
}

type MiniSeries struct {
	Losses   int    `json:"losses"`
	Progress string `json:"progress"`
	Target   int    `json:"target"`
	Wins     int    `json:"wins"`
}

// ShortRank compresses tier and division into the usual two-character form:
// GOLD/IV -> "G4", GRANDMASTER/I -> "GM1". Unranked entries yield "??".
func (e LeagueEntry) ShortRank() string {
	if e.Tier == "" || e.Rank == "" {
		return "??"
	}
	tier := string(e.Tier[0])
	if strings.HasPrefix(e.Tier, "GR") {
		tier = "GM"
	}
	division := len(e.Rank)
	if strings.EqualFold(e.Rank, "IV") {
		division = 4
	}
	return tier + strconv.Itoa(division)
}

// LOL-STATUS-V3
type ShardStatus struct {
	Name      string         `json:"name"`
	Slug      string         `json:"slug"`
	Locales   []string       `json:"locales"`
	Hostname  string         `json:"hostname"`
	RegionTag string         `json:"region_tag"`
	Services  []ShardService `json:"services"`
}

type ShardService struct {
	Name      string          `json:"name"`
	Slug      string          `json:"slug"`
	Status    string          `json:"status"`
	Incidents []ShardIncident `json:"incidents"`
}

type ShardIncident struct {
	ID        int64          `json:"id"`
	Active    bool           `json:"active"`
	CreatedAt string         `json:"created_at"`
	Updates   []ShardMessage `json:"updates"`
}

type ShardMessage struct {
	ID           string             `json:"id"`
	Author       string             `json:"author"`
	Heading      string             `json:"heading"`
	Content      string             `json:"content"`
	Severity     string             `json:"severity"`
	CreatedAt    string             `json:"created_at"`
	UpdatedAt    string             `json:"updated_at"`
	Translations []ShardTranslation `json:"translations"`
}

type ShardTranslation struct {
	Locale  string `json:"locale"`
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// LOL-STATUS-V4
type PlatformData struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Locales      []string       `json:"locales"`
	Maintenances []PlatformItem `json:"maintenances"`
	Incidents    []PlatformItem `json:"incidents"`
}

type PlatformItem struct {
	ID                int64            `json:"id"`
	MaintenanceStatus string           `json:"maintenance_status"`
	IncidentSeverity  string           `json:"incident_severity"`
	Titles            []PlatformText   `json:"titles"`
	Updates           []PlatformUpdate `json:"updates"`
	CreatedAt         string           `json:"created_at"`
	ArchiveAt         string           `json:"archive_at"`
	UpdatedAt         string           `json:"updated_at"`
	Platforms         []string         `json:"platforms"`
}

type PlatformText struct {
	Locale  string `json:"locale"`
	Content string `json:"content"`
}

type PlatformUpdate struct {
	ID               int64          `json:"id"`
	Author           string         `json:"author"`
	Publish          bool           `json:"publish"`
	PublishLocations []string       `json:"publish_locations"`
	Translations     []PlatformText `json:"translations"`
	CreatedAt        string         `json:"created_at"`
	UpdatedAt        string         `json:"updated_at"`
}
