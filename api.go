package lol

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	// MaxSummonersPerLeagueCall is the number of summoner ids league calls accept at once.
	MaxSummonersPerLeagueCall = 10
	// MaxSummonersPerNameCall is the number of summoner ids SummonerNames accepts at once.
	MaxSummonersPerNameCall = 40
)

// Champions returns the status of all champions.
// A nil freeToPlay returns every champion, otherwise only those matching it.
func (c *Client) Champions(ctx context.Context, freeToPlay *bool) ([]Champion, error) {
	params := url.Values{}
	if freeToPlay != nil {
		params.Set("freeToPlay", strconv.FormatBool(*freeToPlay))
	}

	var champions []Champion
	if err := c.get(ctx, championsEndpoint, nil, params, &champions); err != nil {
		return nil, err
	}
	return champions, nil
}

// Champion returns the status of a single champion.
func (c *Client) Champion(ctx context.Context, id int32) (*Champion, error) {
	if err := checkID("champion id", int64(id)); err != nil {
		return nil, err
	}

	champion := new(Champion)
	if err := c.get(ctx, championEndpoint, pathValues{"id": id}, nil, champion); err != nil {
		return nil, err
	}
	return champion, nil
}

// RecentGames returns the recent games of a summoner.
func (c *Client) RecentGames(ctx context.Context, summonerID int64) ([]Game, error) {
	if err := checkID("summoner id", summonerID); err != nil {
		return nil, err
	}

	var games []Game
	if err := c.get(ctx, recentGamesEndpoint, pathValues{"summonerId": summonerID}, nil, &games); err != nil {
		return nil, err
	}
	return games, nil
}

// LeaguesBySummoner returns the leagues of up to 10 summoners, keyed by summoner id.
func (c *Client) LeaguesBySummoner(ctx context.Context, summonerIDs ...int64) (map[string][]League, error) {
	return c.leagues(ctx, leaguesEndpoint, summonerIDs)
}

// LeagueEntriesBySummoner is like LeaguesBySummoner, but each league only
// holds the entry of the summoner.
func (c *Client) LeagueEntriesBySummoner(ctx context.Context, summonerIDs ...int64) (map[string][]League, error) {
	return c.leagues(ctx, leagueEntriesEndpoint, summonerIDs)
}

func (c *Client) leagues(ctx context.Context, ep *endpoint, ids []int64) (map[string][]League, error) {
	if err := checkIDs("summoner id", ids, MaxSummonersPerLeagueCall); err != nil {
		return nil, err
	}

	var leagues map[string][]League
	if err := c.get(ctx, ep, pathValues{"summonerIds": ids}, nil, &leagues); err != nil {
		return nil, err
	}
	return leagues, nil
}

// StatsSummary returns the stats summaries of a summoner.
// season 0 means the current season.
func (c *Client) StatsSummary(ctx context.Context, summonerID int64, season int) ([]PlayerStatsSummary, error) {
	params, err := statsParams(summonerID, season)
	if err != nil {
		return nil, err
	}

	var summaries []PlayerStatsSummary
	if err := c.get(ctx, statsSummaryEndpoint, pathValues{"summonerId": summonerID}, params, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

// RankedStats returns the ranked stats of a summoner, one entry per champion.
// season 0 means the current season.
func (c *Client) RankedStats(ctx context.Context, summonerID int64, season int) ([]ChampionStats, error) {
	params, err := statsParams(summonerID, season)
	if err != nil {
		return nil, err
	}

	var stats []ChampionStats
	if err := c.get(ctx, rankedStatsEndpoint, pathValues{"summonerId": summonerID}, params, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func statsParams(summonerID int64, season int) (url.Values, error) {
	if err := checkID("summoner id", summonerID); err != nil {
		return nil, err
	}
	if season < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "season must not be negative, got %d", season)
	}

	params := url.Values{}
	if season > 0 {
		params.Set("season", "SEASON"+strconv.Itoa(season))
	}
	return params, nil
}

// Masteries returns the mastery pages of a summoner.
func (c *Client) Masteries(ctx context.Context, summonerID int64) ([]MasteryPage, error) {
	if err := checkID("summoner id", summonerID); err != nil {
		return nil, err
	}

	var pages []MasteryPage
	if err := c.get(ctx, masteriesEndpoint, pathValues{"summonerId": summonerID}, nil, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

// Runes returns the rune pages of a summoner.
func (c *Client) Runes(ctx context.Context, summonerID int64) ([]RunePage, error) {
	if err := checkID("summoner id", summonerID); err != nil {
		return nil, err
	}

	var pages []RunePage
	if err := c.get(ctx, runesEndpoint, pathValues{"summonerId": summonerID}, nil, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

// SummonerByName returns summoners keyed by their standardized name
// (lower case, without spaces), as sent by the server. Only the fields
// of Summoner are kept.
func (c *Client) SummonerByName(ctx context.Context, name string) (map[string]Summoner, error) {
	if err := checkName("summoner name", name); err != nil {
		return nil, err
	}

	var summoners map[string]Summoner
	if err := c.get(ctx, summonerByNameEndpoint, pathValues{"summonerName": name}, nil, &summoners); err != nil {
		return nil, err
	}
	return summoners, nil
}

// SummonerByID returns summoners keyed by id. Only the fields of Summoner are kept.
func (c *Client) SummonerByID(ctx context.Context, summonerID int64) (map[string]Summoner, error) {
	if err := checkID("summoner id", summonerID); err != nil {
		return nil, err
	}

	var summoners map[string]Summoner
	if err := c.get(ctx, summonerByIDEndpoint, pathValues{"summonerId": summonerID}, nil, &summoners); err != nil {
		return nil, err
	}
	return summoners, nil
}

// SummonerNames returns the names of up to 40 summoners, keyed by id.
func (c *Client) SummonerNames(ctx context.Context, summonerIDs ...int64) (map[int64]string, error) {
	if err := checkIDs("summoner id", summonerIDs, MaxSummonersPerNameCall); err != nil {
		return nil, err
	}

	var names map[int64]string
	if err := c.get(ctx, summonerNamesEndpoint, pathValues{"summonerIds": summonerIDs}, nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// Teams returns the teams of a summoner, keyed by summoner id.
func (c *Client) Teams(ctx context.Context, summonerID int64) (map[string][]Team, error) {
	if err := checkID("summoner id", summonerID); err != nil {
		return nil, err
	}

	var teams map[string][]Team
	if err := c.get(ctx, teamsEndpoint, pathValues{"summonerId": summonerID}, nil, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// Match returns the details of a match.
func (c *Client) Match(ctx context.Context, matchID int64, includeTimeline bool) (*MatchDetail, error) {
	if err := checkID("match id", matchID); err != nil {
		return nil, err
	}

	params := url.Values{}
	if includeTimeline {
		params.Set("includeTimeline", "true")
	}

	match := new(MatchDetail)
	if err := c.get(ctx, matchEndpoint, pathValues{"matchId": matchID}, params, match); err != nil {
		return nil, err
	}
	return match, nil
}

// CurrentGame returns the game a summoner is playing.
// platformID is the platform of the game, e.g. "NA1"; see Region.PlatformID.
func (c *Client) CurrentGame(ctx context.Context, platformID string, summonerID int64) (*GameInfo, error) {
	if _, err := RegionByPlatformID(platformID); err != nil {
		return nil, err
	}
	if err := checkID("summoner id", summonerID); err != nil {
		return nil, err
	}

	game := new(GameInfo)
	values := pathValues{"platformId": platformID, "summonerId": summonerID}
	if err := c.get(ctx, currentGameEndpoint, values, nil, game); err != nil {
		return nil, err
	}
	return game, nil
}

// FeaturedGames returns the games featured in the client.
func (c *Client) FeaturedGames(ctx context.Context) ([]GameInfo, error) {
	var games []GameInfo
	if err := c.get(ctx, featuredGamesEndpoint, nil, nil, &games); err != nil {
		return nil, err
	}
	return games, nil
}

// StaticOptions are optional parameters of static data calls.
type StaticOptions struct {
	Locale  string
	Version string
	// DataByID keys the result by numeric id instead of champion key.
	DataByID bool
	// ChampData selects extra fields, e.g. "tags" or "all".
	ChampData []string
}

func (o *StaticOptions) params() url.Values {
	params := url.Values{}
	if o == nil {
		return params
	}
	if o.Locale != "" {
		params.Set("locale", o.Locale)
	}
	if o.Version != "" {
		params.Set("version", o.Version)
	}
	if o.DataByID {
		params.Set("dataById", "true")
	}
	if len(o.ChampData) != 0 {
		params.Set("champData", strings.Join(o.ChampData, ","))
	}
	return params
}

// StaticChampions returns static data of all champions.
func (c *Client) StaticChampions(ctx context.Context, opts *StaticOptions) (*ChampionDataList, error) {
	list := new(ChampionDataList)
	if err := c.get(ctx, staticChampionsEndpoint, nil, opts.params(), list); err != nil {
		return nil, err
	}
	return list, nil
}

// StaticChampion returns static data of a champion. DataByID is ignored.
func (c *Client) StaticChampion(ctx context.Context, id int32, opts *StaticOptions) (*ChampionData, error) {
	if err := checkID("champion id", int64(id)); err != nil {
		return nil, err
	}

	params := opts.params()
	params.Del("dataById")

	champion := new(ChampionData)
	if err := c.get(ctx, staticChampionEndpoint, pathValues{"id": id}, params, champion); err != nil {
		return nil, err
	}
	return champion, nil
}

// StaticRealm returns the data dragon realm of the current region.
func (c *Client) StaticRealm(ctx context.Context) (*Realm, error) {
	realm := new(Realm)
	if err := c.get(ctx, staticRealmEndpoint, nil, nil, realm); err != nil {
		return nil, err
	}
	return realm, nil
}

// StaticVersions returns the data dragon versions, newest first.
func (c *Client) StaticVersions(ctx context.Context) ([]string, error) {
	var versions []string
	if err := c.get(ctx, staticVersionsEndpoint, nil, nil, &versions); err != nil {
		return nil, err
	}
	return versions, nil
}
