package lol

import (
	"sort"

	"github.com/mc10/riot-api/uritemplates"
)

// Operation is an upstream resource category, e.g. "summoner".
type Operation string

// Known operations.
const (
	OpChampion      Operation = "champion"
	OpCurrentGame   Operation = "currentGame"
	OpFeaturedGames Operation = "featuredGames"
	OpGame          Operation = "game"
	OpLeague        Operation = "league"
	OpMatch         Operation = "match"
	OpStaticData    Operation = "staticData"
	OpStats         Operation = "stats"
	OpSummoner      Operation = "summoner"
	OpTeam          Operation = "team"
)

// OperationInfo describes how an operation is addressed.
type OperationInfo struct {
	// Version is the api version without the 'v' prefix.
	Version string
	// StaticData is true for operations under /api/lol/static-data.
	StaticData bool
	// Resource is the id used by the api reference page.
	Resource string
	// Observer is true for spectator endpoints, which are not versioned.
	Observer bool
}

// Keep this in sync with https://developer.riotgames.com/api/methods.
// cmd/lolcheck reports differences.
var operations = map[Operation]OperationInfo{
	OpChampion:      {Version: "1.2", Resource: "champion"},
	OpCurrentGame:   {Version: "1.0", Resource: "current-game", Observer: true},
	OpFeaturedGames: {Version: "1.0", Resource: "featured-games", Observer: true},
	OpGame:          {Version: "1.3", Resource: "game"},
	OpLeague:        {Version: "2.5", Resource: "league"},
	OpMatch:         {Version: "2.2", Resource: "match"},
	OpStaticData:    {Version: "1.2", Resource: "lol-static-data", StaticData: true},
	OpStats:         {Version: "1.3", Resource: "stats"},
	OpSummoner:      {Version: "1.4", Resource: "summoner"},
	OpTeam:          {Version: "2.3", Resource: "team"},
}

const (
	// baseAPIPath is relative to the region host.
	baseAPIPath = "/api/lol{+static-data}/{region}/v{version}{+operation}"
	// observerPath is used by current-game and featured-games.
	observerPath = "/observer-mode/rest"
)

// pathByOperation holds templates with everything but the region bound.
var pathByOperation = func() map[Operation]*uritemplates.Template {
	base := uritemplates.MustParse(baseAPIPath)

	m := make(map[Operation]*uritemplates.Template, len(operations))
	for op, info := range operations {
		if info.Observer {
			m[op] = uritemplates.MustParse(observerPath)
			continue
		}

		staticData, operation := "", "/"+string(op)
		if info.StaticData {
			staticData, operation = "/static-data", ""
		}
		m[op] = base.
			Bind("static-data", staticData).
			Bind("version", info.Version).
			Bind("operation", operation)
	}
	return m
}()

// Info returns the version information of op.
func (op Operation) Info() (OperationInfo, bool) {
	info, ok := operations[op]
	return info, ok
}

// Path returns the path template of op. Only {region} is left unbound.
func (op Operation) Path() *uritemplates.Template {
	return pathByOperation[op]
}

// Operations returns all known operations, sorted by name.
func Operations() []Operation {
	ops := make([]Operation, 0, len(operations))
	for op := range operations {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}
