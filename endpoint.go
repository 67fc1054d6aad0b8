package lol

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/mc10/riot-api/uritemplates"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// endpoint describes one upstream GET operation.
type endpoint struct {
	name string
	op   Operation
	// Path relative to the operation template, e.g. "/by-summoner/{summonerId}/recent".
	suffix string
	// Field of the response object holding the payload. Empty means the whole body.
	unwrap string

	tpl *uritemplates.Template
}

func newEndpoint(name string, op Operation, suffix, unwrap string) *endpoint {
	base := op.Path()
	if base == nil {
		panic("lol: unknown operation " + string(op))
	}
	tpl, err := base.Append(suffix)
	if err != nil {
		panic(err)
	}
	return &endpoint{name: name, op: op, suffix: suffix, unwrap: unwrap, tpl: tpl}
}

var (
	championsEndpoint      = newEndpoint("Champions", OpChampion, "", "champions")
	championEndpoint       = newEndpoint("Champion", OpChampion, "/{id}", "")
	recentGamesEndpoint    = newEndpoint("RecentGames", OpGame, "/by-summoner/{summonerId}/recent", "games")
	leaguesEndpoint        = newEndpoint("LeaguesBySummoner", OpLeague, "/by-summoner/{summonerIds}", "")
	leagueEntriesEndpoint  = newEndpoint("LeagueEntriesBySummoner", OpLeague, "/by-summoner/{summonerIds}/entry", "")
	statsSummaryEndpoint   = newEndpoint("StatsSummary", OpStats, "/by-summoner/{summonerId}/summary", "playerStatSummaries")
	rankedStatsEndpoint    = newEndpoint("RankedStats", OpStats, "/by-summoner/{summonerId}/ranked", "champions")
	masteriesEndpoint      = newEndpoint("Masteries", OpSummoner, "/{summonerId}/masteries", "pages")
	runesEndpoint          = newEndpoint("Runes", OpSummoner, "/{summonerId}/runes", "pages")
	summonerByNameEndpoint = newEndpoint("SummonerByName", OpSummoner, "/by-name/{summonerName}", "")
	summonerByIDEndpoint   = newEndpoint("SummonerByID", OpSummoner, "/{summonerId}", "")
	summonerNamesEndpoint  = newEndpoint("SummonerNames", OpSummoner, "/{summonerIds}/name", "summoners")
	teamsEndpoint          = newEndpoint("Teams", OpTeam, "/by-summoner/{summonerId}", "")
	matchEndpoint          = newEndpoint("Match", OpMatch, "/{matchId}", "")
	currentGameEndpoint    = newEndpoint("CurrentGame", OpCurrentGame, "/consumer/getSpectatorGameInfo/{platformId}/{summonerId}", "")
	featuredGamesEndpoint  = newEndpoint("FeaturedGames", OpFeaturedGames, "/featured", "gameList")

	staticChampionsEndpoint = newEndpoint("StaticChampions", OpStaticData, "/champion", "")
	staticChampionEndpoint  = newEndpoint("StaticChampion", OpStaticData, "/champion/{id}", "")
	staticRealmEndpoint     = newEndpoint("StaticRealm", OpStaticData, "/realm", "")
	staticVersionsEndpoint  = newEndpoint("StaticVersions", OpStaticData, "/versions", "")
)

// pathValues are substituted into the endpoint template.
type pathValues map[string]interface{}

// resolve builds the absolute url of ep for region.
func (c *Client) resolve(ep *endpoint, region Region, values pathValues, params url.Values) (*url.URL, error) {
	vals := map[string]string{"region": region.lower()}
	for k, v := range values {
		vals[k] = convertToString(v)
	}

	base, err := c.baseURL.Expand(vals)
	if err != nil {
		return nil, err
	}
	path, err := ep.tpl.Expand(vals)
	if err != nil {
		return nil, err
	}

	u, err := url.Parse(base + path)
	if err != nil {
		return nil, err
	}

	q := make(url.Values, len(params)+1)
	for k, vs := range params {
		q[k] = vs
	}
	q.Set("api_key", c.apiKey)
	u.RawQuery = q.Encode()

	return u, nil
}

// get sends a GET request for ep and decodes the (unwrapped) response into v.
func (c *Client) get(ctx context.Context, ep *endpoint, values pathValues, params url.Values, v interface{}) error {
	region := c.Region()

	u, err := c.resolve(ep, region, values, params)
	if err != nil {
		return errors.Wrapf(err, "%s: building url", ep.name)
	}
	urlStr := redactKey(u)

	entry := c.log.WithFields(logrus.Fields{
		"endpoint":   ep.name,
		"region":     region,
		"request_id": uuid.NewString(),
	})
	entry.WithField("url", urlStr).Debug("Sending request")

	resp, err := c.doRequest(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		var ue *url.Error
		if errors.As(err, &ue) {
			ue.URL = urlStr
		}
		entry.WithError(err).Debug("Request failed")
		return &TransportError{URL: urlStr, Err: err}
	}
	defer closeBody(resp)

	if err := verifyAPIResponse(resp); err != nil {
		entry.WithError(err).Debug("Riot api returned an error")
		return &TransportError{URL: urlStr, Err: err}
	}

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{URL: urlStr, Err: err}
	}

	if ep.unwrap != "" {
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(data, &envelope); err != nil {
			return &DecodeError{URL: urlStr, Err: err}
		}
		payload, ok := envelope[ep.unwrap]
		if !ok {
			return &DecodeError{URL: urlStr, Err: errors.Errorf("response has no %q field", ep.unwrap)}
		}
		data = payload
	}

	if err := json.Unmarshal(data, v); err != nil {
		return &DecodeError{URL: urlStr, Err: err}
	}

	entry.WithField("status", resp.StatusCode).Debug("Request done")
	return nil
}
