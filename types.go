package lol

import "time"

// Champion is the status of a champion (champion-v1.2).
type Champion struct {
	ID                int32 `json:"id"`
	Active            bool  `json:"active"`
	BotEnabled        bool  `json:"botEnabled"`
	BotMmEnabled      bool  `json:"botMmEnabled"`
	FreeToPlay        bool  `json:"freeToPlay"`
	RankedPlayEnabled bool  `json:"rankedPlayEnabled"`
}

// Game is an entry of the recent games list (game-v1.3).
type Game struct {
	GameID        int64    `json:"gameId"`
	ChampionID    int32    `json:"championId"`
	CreateDate    int64    `json:"createDate"`
	FellowPlayers []Player `json:"fellowPlayers,omitempty"`
	GameMode      string   `json:"gameMode"`
	GameType      string   `json:"gameType"`
	SubType       string   `json:"subType"`
	Invalid       bool     `json:"invalid"`
	IPEarned      int32    `json:"ipEarned"`
	Level         int32    `json:"level"`
	MapID         int32    `json:"mapId"`
	Spell1        int32    `json:"spell1"`
	Spell2        int32    `json:"spell2"`
	TeamID        int32    `json:"teamId"`

	// Stats holds the raw per game statistics. Most fields are numbers,
	// some (win, nexusKilled) are booleans.
	Stats map[string]interface{} `json:"stats,omitempty"`
}

// Created returns CreateDate as time.Time.
func (g *Game) Created() time.Time {
	return ParseEpochMilliseconds(g.CreateDate)
}

// Player is another participant of a Game.
type Player struct {
	SummonerID int64 `json:"summonerId"`
	TeamID     int32 `json:"teamId"`
	ChampionID int32 `json:"championId"`
}

// League (league-v2.5).
type League struct {
	Name          string        `json:"name"`
	Queue         string        `json:"queue"`
	Tier          string        `json:"tier"`
	ParticipantID string        `json:"participantId,omitempty"`
	Entries       []LeagueEntry `json:"entries"`
}

// LeagueEntry is a player or team in a League.
type LeagueEntry struct {
	PlayerOrTeamID   string      `json:"playerOrTeamId"`
	PlayerOrTeamName string      `json:"playerOrTeamName"`
	Division         string      `json:"division"`
	LeaguePoints     int32       `json:"leaguePoints"`
	Wins             int32       `json:"wins"`
	Losses           int32       `json:"losses"`
	IsFreshBlood     bool        `json:"isFreshBlood"`
	IsHotStreak      bool        `json:"isHotStreak"`
	IsInactive       bool        `json:"isInactive"`
	IsVeteran        bool        `json:"isVeteran"`
	MiniSeries       *MiniSeries `json:"miniSeries,omitempty"`
}

// MiniSeries is a promotion series.
type MiniSeries struct {
	Losses   int32  `json:"losses"`
	Progress string `json:"progress"`
	Target   int32  `json:"target"`
	Wins     int32  `json:"wins"`
}

// PlayerStatsSummary (stats-v1.3).
type PlayerStatsSummary struct {
	PlayerStatSummaryType string           `json:"playerStatSummaryType"`
	Wins                  int32            `json:"wins"`
	Losses                int32            `json:"losses"`
	ModifyDate            int64            `json:"modifyDate"`
	AggregatedStats       map[string]int64 `json:"aggregatedStats"`
}

// ChampionStats is the ranked stats of one champion. ID 0 is the total.
type ChampionStats struct {
	ID    int32            `json:"id"`
	Stats map[string]int64 `json:"stats"`
}

// MasteryPage (summoner-v1.4).
type MasteryPage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Current   bool      `json:"current"`
	Masteries []Mastery `json:"masteries,omitempty"`
}

// Mastery is a mastery in a MasteryPage.
type Mastery struct {
	ID   int32 `json:"id"`
	Rank int32 `json:"rank"`
}

// RunePage (summoner-v1.4).
type RunePage struct {
	ID      int64      `json:"id"`
	Name    string     `json:"name"`
	Current bool       `json:"current"`
	Slots   []RuneSlot `json:"slots,omitempty"`
}

// RuneSlot is a rune in a RunePage.
type RuneSlot struct {
	RuneSlotID int32 `json:"runeSlotId"`
	RuneID     int32 `json:"runeId"`
}

// Summoner (summoner-v1.4).
type Summoner struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	ProfileIconID int32  `json:"profileIconId"`
	RevisionDate  int64  `json:"revisionDate"`
	SummonerLevel int64  `json:"summonerLevel"`
}

// Team (team-v2.3).
type Team struct {
	FullID     string  `json:"fullId"`
	Name       string  `json:"name"`
	Tag        string  `json:"tag"`
	Status     string  `json:"status"`
	CreateDate int64   `json:"createDate"`
	ModifyDate int64   `json:"modifyDate"`
	Roster     *Roster `json:"roster,omitempty"`
}

// Roster of a Team.
type Roster struct {
	OwnerID    int64            `json:"ownerId"`
	MemberList []TeamMemberInfo `json:"memberList"`
}

// TeamMemberInfo is a member of a Roster.
type TeamMemberInfo struct {
	PlayerID   int64  `json:"playerId"`
	Status     string `json:"status"`
	InviteDate int64  `json:"inviteDate"`
	JoinDate   int64  `json:"joinDate"`
}

// MatchDetail (match-v2.2). Participants and Timeline are kept raw.
type MatchDetail struct {
	MatchID               int64                    `json:"matchId"`
	MapID                 int32                    `json:"mapId"`
	MatchCreation         int64                    `json:"matchCreation"`
	MatchDuration         int64                    `json:"matchDuration"`
	MatchMode             string                   `json:"matchMode"`
	MatchType             string                   `json:"matchType"`
	MatchVersion          string                   `json:"matchVersion"`
	PlatformID            string                   `json:"platformId"`
	QueueType             string                   `json:"queueType"`
	Region                string                   `json:"region"`
	Season                string                   `json:"season"`
	ParticipantIdentities []ParticipantIdentity    `json:"participantIdentities"`
	Participants          []map[string]interface{} `json:"participants"`
	Timeline              map[string]interface{}   `json:"timeline,omitempty"`
}

// ParticipantIdentity maps a participant of a match to a player.
type ParticipantIdentity struct {
	ParticipantID int32        `json:"participantId"`
	Player        *MatchPlayer `json:"player,omitempty"`
}

// MatchPlayer is the player of a ParticipantIdentity.
type MatchPlayer struct {
	SummonerID   int64  `json:"summonerId"`
	SummonerName string `json:"summonerName"`
	ProfileIcon  int32  `json:"profileIcon"`
}

// GameInfo is a game in progress, as returned by current-game and featured-games.
type GameInfo struct {
	GameID            int64             `json:"gameId"`
	GameLength        int64             `json:"gameLength"`
	GameMode          string            `json:"gameMode"`
	GameType          string            `json:"gameType"`
	GameQueueConfigID int64             `json:"gameQueueConfigId"`
	GameStartTime     int64             `json:"gameStartTime"`
	MapID             int64             `json:"mapId"`
	PlatformID        string            `json:"platformId"`
	Observers         Observer          `json:"observers"`
	Participants      []GameParticipant `json:"participants"`
	BannedChampions   []BannedChampion  `json:"bannedChampions,omitempty"`
}

// Observer holds the key needed to spectate a game.
type Observer struct {
	EncryptionKey string `json:"encryptionKey"`
}

// GameParticipant is a participant of a GameInfo.
type GameParticipant struct {
	Bot           bool   `json:"bot"`
	ChampionID    int64  `json:"championId"`
	ProfileIconID int64  `json:"profileIconId"`
	Spell1ID      int64  `json:"spell1Id"`
	Spell2ID      int64  `json:"spell2Id"`
	SummonerID    int64  `json:"summonerId,omitempty"`
	SummonerName  string `json:"summonerName"`
	TeamID        int64  `json:"teamId"`
}

// BannedChampion of a GameInfo.
type BannedChampion struct {
	ChampionID int64 `json:"championId"`
	PickTurn   int32 `json:"pickTurn"`
	TeamID     int64 `json:"teamId"`
}

// ChampionDataList (lol-static-data-v1.2).
type ChampionDataList struct {
	Type    string                  `json:"type"`
	Version string                  `json:"version"`
	Format  string                  `json:"format,omitempty"`
	Keys    map[string]string       `json:"keys,omitempty"`
	Data    map[string]ChampionData `json:"data"`
}

// ChampionData is the static description of a champion.
// Fields other than ID, Key, Name and Title depend on champData.
type ChampionData struct {
	ID      int32    `json:"id"`
	Key     string   `json:"key"`
	Name    string   `json:"name"`
	Title   string   `json:"title"`
	Blurb   string   `json:"blurb,omitempty"`
	Lore    string   `json:"lore,omitempty"`
	Partype string   `json:"partype,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// Realm holds data dragon versions and cdn location.
type Realm struct {
	CDN            string            `json:"cdn"`
	CSS            string            `json:"css"`
	DD             string            `json:"dd"`
	L              string            `json:"l"`
	LG             string            `json:"lg"`
	N              map[string]string `json:"n"`
	ProfileIconMax int32             `json:"profileiconmax"`
	Store          string            `json:"store,omitempty"`
	V              string            `json:"v"`
}
