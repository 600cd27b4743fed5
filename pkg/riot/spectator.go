package riot

// SPECTATOR-V4 response shapes.

type CurrentGameInfo struct {
	GameID            int64                    `json:"gameId"`
	GameType          string                   `json:"gameType"`
	GameStartTime     int64                    `json:"gameStartTime"`
	MapID             int                      `json:"mapId"`
	GameLength        int64                    `json:"gameLength"`
	PlatformID        string                   `json:"platformId"`
	GameMode          string                   `json:"gameMode"`
	BannedChampions   []BannedChampion         `json:"bannedChampions"`
	GameQueueConfigID int                      `json:"gameQueueConfigId"`
	Observers         Observer                 `json:"observers"`
	Participants      []CurrentGameParticipant `json:"participants"`
}

type BannedChampion struct {
	PickTurn   int `json:"pickTurn"`
	ChampionID int `json:"championId"`
	TeamID     int `json:"teamId"`
}

type Observer struct {
	EncryptionKey string `json:"encryptionKey"`
}

type CurrentGameParticipant struct {
	ChampionID               int                       `json:"championId"`
	Perks                    SpectatorPerks            `json:"perks"`
	ProfileIconID            int                       `json:"profileIconId"`
	Bot                      bool                      `json:"bot"`
	TeamID                   int                       `json:"teamId"`
	SummonerName             string                    `json:"summonerName"`
	SummonerID               string                    `json:"summonerId"`
	Spell1ID                 int                       `json:"spell1Id"`
	Spell2ID                 int                       `json:"spell2Id"`
	GameCustomizationObjects []GameCustomizationObject `json:"gameCustomizationObjects"`
}

type SpectatorPerks struct {
	PerkIDs      []int `json:"perkIds"`
	PerkStyle    int   `json:"perkStyle"`
	PerkSubStyle int   `json:"perkSubStyle"`
}

type GameCustomizationObject struct {
	Category string `json:"category"`
	Content  string `json:"content"`
}

type FeaturedGames struct {
	GameList              []FeaturedGameInfo `json:"gameList"`
	ClientRefreshInterval int                `json:"clientRefreshInterval"`
}

type FeaturedGameInfo struct {
	GameMode          string                `json:"gameMode"`
	GameLength        int64                 `json:"gameLength"`
	MapID             int                   `json:"mapId"`
	GameType          string                `json:"gameType"`
	BannedChampions   []BannedChampion      `json:"bannedChampions"`
	GameID            int64                 `json:"gameId"`
	Observers         Observer              `json:"observers"`
	GameQueueConfigID int                   `json:"gameQueueConfigId"`
	GameStartTime     int64                 `json:"gameStartTime"`
	Participants      []FeaturedParticipant `json:"participants"`
	PlatformID        string                `json:"platformId"`
}

type FeaturedParticipant struct {
	TeamID        int    `json:"teamId"`
	Spell1ID      int    `json:"spell1Id"`
	Spell2ID      int    `json:"spell2Id"`
	ChampionID    int    `json:"championId"`
	ProfileIconID int    `json:"profileIconId"`
	SummonerName  string `json:"summonerName"`
	Bot           bool   `json:"bot"`
}
