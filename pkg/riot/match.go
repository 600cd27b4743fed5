package riot

// MATCH-V5 response shapes.

type Match struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

type MatchMetadata struct {
	DataVersion  string   `json:"dataVersion"`
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

type MatchInfo struct {
	GameCreation       int64         `json:"gameCreation"`
	GameDuration       int64         `json:"gameDuration"`
	GameEndTimestamp   int64         `json:"gameEndTimestamp"`
	GameID             int64         `json:"gameId"`
	GameMode           string        `json:"gameMode"`
	GameName           string        `json:"gameName"`
	GameStartTimestamp int64         `json:"gameStartTimestamp"`
	GameType           string        `json:"gameType"`
	GameVersion        string        `json:"gameVersion"`
	MapID              int           `json:"mapId"`
	Participants       []Participant `json:"participants"`
	PlatformID         string        `json:"platformId"`
	QueueID            int           `json:"queueId"`
	Teams              []Team        `json:"teams"`
	TournamentCode     string        `json:"tournamentCode"`
}

// EndTimestamp returns gameEndTimestamp, falling back to start plus duration
// for matches recorded before the field existed.
func (i MatchInfo) EndTimestamp() int64 {
	if i.GameEndTimestamp != 0 {
		return i.GameEndTimestamp
	}
	return i.GameStartTimestamp + i.GameDuration
}

// DurationSeconds normalizes gameDuration, which older matches report in
// milliseconds and newer ones in seconds.
func (i MatchInfo) DurationSeconds() int64 {
	if i.GameDuration > 10000 {
		return i.GameDuration / 1000
	}
	return i.GameDuration
}

type Participant struct {
	Assists                     int    `json:"assists"`
	BaronKills                  int    `json:"baronKills"`
	ChampExperience             int    `json:"champExperience"`
	ChampLevel                  int    `json:"champLevel"`
	ChampionID                  int    `json:"championId"`
	ChampionName                string `json:"championName"`
	ChampionTransform           int    `json:"championTransform"`
	Deaths                      int    `json:"deaths"`
	DetectorWardsPlaced         int    `json:"detectorWardsPlaced"`
	DoubleKills                 int    `json:"doubleKills"`
	DragonKills                 int    `json:"dragonKills"`
	FirstBloodAssist            bool   `json:"firstBloodAssist"`
	FirstBloodKill              bool   `json:"firstBloodKill"`
	FirstTowerAssist            bool   `json:"firstTowerAssist"`
	FirstTowerKill              bool   `json:"firstTowerKill"`
	GameEndedInEarlySurrender   bool   `json:"gameEndedInEarlySurrender"`
	GameEndedInSurrender        bool   `json:"gameEndedInSurrender"`
	GoldEarned                  int    `json:"goldEarned"`
	GoldSpent                   int    `json:"goldSpent"`
	IndividualPosition          string `json:"individualPosition"`
	InhibitorKills              int    `json:"inhibitorKills"`
	InhibitorTakedowns          int    `json:"inhibitorTakedowns"`
	InhibitorsLost              int    `json:"inhibitorsLost"`
	Item0                       int    `json:"item0"`
	Item1                       int    `json:"item1"`
	Item2                       int    `json:"item2"`
	Item3                       int    `json:"item3"`
	Item4                       int    `json:"item4"`
	Item5                       int    `json:"item5"`
	Item6                       int    `json:"item6"`
	ItemsPurchased              int    `json:"itemsPurchased"`
	KillingSprees               int    `json:"killingSprees"`
	Kills                       int    `json:"kills"`
	Lane                        string `json:"lane"`
	LargestCriticalStrike       int    `json:"largestCriticalStrike"`
	LargestKillingSpree         int    `json:"largestKillingSpree"`
	LargestMultiKill            int    `json:"largestMultiKill"`
	LongestTimeSpentLiving      int    `json:"longestTimeSpentLiving"`
	MagicDamageDealt            int    `json:"magicDamageDealt"`
	MagicDamageDealtToChampions int    `json:"magicDamageDealtToChampions"`
	MagicDamageTaken            int    `json:"magicDamageTaken"`
	NeutralMinionsKilled        int    `json:"neutralMinionsKilled"`
	NexusKills                  int    `json:"nexusKills"`
	NexusTakedowns              int    `json:"nexusTakedowns"`
	NexusLost                   int    `json:"nexusLost"`
	ObjectivesStolen            int    `json:"objectivesStolen"`
	ObjectivesStolenAssists     int    `json:"objectivesStolenAssists"`
	ParticipantID               int    `json:"participantId"`
	PentaKills                  int    `json:"pentaKills"`
	Perks                       Perks  `json:"perks"`
	PhysicalDamageDealt         int    `json:"physicalDamageDealt"`
	PhysicalDamageTaken         int    `json:"physicalDamageTaken"`
	ProfileIcon                 int    `json:"profileIcon"`
	PUUID                       string `json:"puuid"`
	QuadraKills                 int    `json:"quadraKills"`
	RiotIDName                  string `json:"riotIdName"`
	RiotIDTagline               string `json:"riotIdTagline"`
	Role                        string `json:"role"`
	SightWardsBoughtInGame      int    `json:"sightWardsBoughtInGame"`
	Summoner1ID                 int    `json:"summoner1Id"`
	Summoner2ID                 int    `json:"summoner2Id"`
	SummonerID                  string `json:"summonerId"`
	SummonerLevel               int    `json:"summonerLevel"`
	SummonerName                string `json:"summonerName"`
	TeamEarlySurrendered        bool   `json:"teamEarlySurrendered"`
	TeamID                      int    `json:"teamId"`
	TeamPosition                string `json:"teamPosition"`
	TimeCCingOthers             int    `json:"timeCCingOthers"`
	TimePlayed                  int    `json:"timePlayed"`
	TotalDamageDealt            int    `json:"totalDamageDealt"`
	TotalDamageDealtToChampions int    `json:"totalDamageDealtToChampions"`
	TotalDamageTaken            int    `json:"totalDamageTaken"`
	TotalHeal                   int    `json:"totalHeal"`
	TotalMinionsKilled          int    `json:"totalMinionsKilled"`
	TotalTimeCCDealt            int    `json:"totalTimeCCDealt"`
	TotalTimeSpentDead          int    `json:"totalTimeSpentDead"`
	TripleKills                 int    `json:"tripleKills"`
	TrueDamageDealt             int    `json:"trueDamageDealt"`
	TrueDamageTaken             int    `json:"trueDamageTaken"`
	TurretKills                 int    `json:"turretKills"`
	TurretTakedowns             int    `json:"turretTakedowns"`
	TurretsLost                 int    `json:"turretsLost"`
	UnrealKills                 int    `json:"unrealKills"`
	VisionScore                 int    `json:"visionScore"`
	VisionWardsBoughtInGame     int    `json:"visionWardsBoughtInGame"`
	WardsKilled                 int    `json:"wardsKilled"`
	WardsPlaced                 int    `json:"wardsPlaced"`
	Win                         bool   `json:"win"`
}

type Perks struct {
	StatPerks PerkStats   `json:"statPerks"`
	Styles    []PerkStyle `json:"styles"`
}

type PerkStats struct {
	Defense int `json:"defense"`
	Flex    int `json:"flex"`
	Offense int `json:"offense"`
}

type PerkStyle struct {
	Description string               `json:"description"`
	Selections  []PerkStyleSelection `json:"selections"`
	Style       int                  `json:"style"`
}

type PerkStyleSelection struct {
	Perk int `json:"perk"`
	Var1 int `json:"var1"`
	Var2 int `json:"var2"`
	Var3 int `json:"var3"`
}

type Team struct {
	Bans       []Ban      `json:"bans"`
	Objectives Objectives `json:"objectives"`
	TeamID     int        `json:"teamId"`
	Win        bool       `json:"win"`
}

type Ban struct {
	ChampionID int `json:"championId"`
	PickTurn   int `json:"pickTurn"`
}

type Objectives struct {
	Baron      Objective `json:"baron"`
	Champion   Objective `json:"champion"`
	Dragon     Objective `json:"dragon"`
	Inhibitor  Objective `json:"inhibitor"`
	RiftHerald Objective `json:"riftHerald"`
	Tower      Objective `json:"tower"`
}

type Objective struct {
	First bool `json:"first"`
	Kills int  `json:"kills"`
}
