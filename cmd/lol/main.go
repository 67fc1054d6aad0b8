// Command lol queries the riot api and prints the response as json.
//
//	lol [-config riot.yaml] [-region EUW] summoner Faker
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	lol "github.com/mc10/riot-api"
	"github.com/mc10/riot-api/internal/config"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type command struct {
	args string
	run  func(ctx context.Context, c *lol.Client, args []string) (interface{}, error)
}

var commands = map[string]command{
	"champions": {"[free]", func(ctx context.Context, c *lol.Client, args []string) (interface{}, error) {
		var free *bool
		if len(args) > 0 && args[0] == "free" {
			free = lol.Bool(true)
		}
		return c.Champions(ctx, free)
	}},
	"summoner": {"<name>", func(ctx context.Context, c *lol.Client, args []string) (interface{}, error) {
		return c.SummonerByName(ctx, strings.Join(args, " "))
	}},
	"summoner-id": {"<summonerId>", withID(func(ctx context.Context, c *lol.Client, id int64) (interface{}, error) {
		return c.SummonerByID(ctx, id)
	})},
	"names": {"<summonerId>...", withIDs(func(ctx context.Context, c *lol.Client, ids []int64) (interface{}, error) {
		return c.SummonerNames(ctx, ids...)
	})},
	"recent": {"<summonerId>", withID(func(ctx context.Context, c *lol.Client, id int64) (interface{}, error) {
		return c.RecentGames(ctx, id)
	})},
	"leagues": {"<summonerId>...", withIDs(func(ctx context.Context, c *lol.Client, ids []int64) (interface{}, error) {
		return c.LeaguesBySummoner(ctx, ids...)
	})},
	"entries": {"<summonerId>...", withIDs(func(ctx context.Context, c *lol.Client, ids []int64) (interface{}, error) {
		return c.LeagueEntriesBySummoner(ctx, ids...)
	})},
	"summary": {"<summonerId> [season]", withSeason(func(ctx context.Context, c *lol.Client, id int64, season int) (interface{}, error) {
		return c.StatsSummary(ctx, id, season)
	})},
	"ranked": {"<summonerId> [season]", withSeason(func(ctx context.Context, c *lol.Client, id int64, season int) (interface{}, error) {
		return c.RankedStats(ctx, id, season)
	})},
	"masteries": {"<summonerId>", withID(func(ctx context.Context, c *lol.Client, id int64) (interface{}, error) {
		return c.Masteries(ctx, id)
	})},
	"runes": {"<summonerId>", withID(func(ctx context.Context, c *lol.Client, id int64) (interface{}, error) {
		return c.Runes(ctx, id)
	})},
	"teams": {"<summonerId>", withID(func(ctx context.Context, c *lol.Client, id int64) (interface{}, error) {
		return c.Teams(ctx, id)
	})},
	"match": {"<matchId> [timeline]", func(ctx context.Context, c *lol.Client, args []string) (interface{}, error) {
		if len(args) == 0 || len(args) > 2 {
			return nil, errors.New("expected a match id and an optional \"timeline\"")
		}
		ids, err := parseIDs(args[:1])
		if err != nil {
			return nil, err
		}
		return c.Match(ctx, ids[0], len(args) > 1 && args[1] == "timeline")
	}},
	"current": {"<summonerId>", withID(func(ctx context.Context, c *lol.Client, id int64) (interface{}, error) {
		return c.CurrentGame(ctx, c.Region().PlatformID(), id)
	})},
	"featured": {"", func(ctx context.Context, c *lol.Client, _ []string) (interface{}, error) {
		return c.FeaturedGames(ctx)
	}},
	"static-champions": {"", func(ctx context.Context, c *lol.Client, _ []string) (interface{}, error) {
		return c.StaticChampions(ctx, &lol.StaticOptions{DataByID: true})
	}},
	"realm": {"", func(ctx context.Context, c *lol.Client, _ []string) (interface{}, error) {
		return c.StaticRealm(ctx)
	}},
	"versions": {"", func(ctx context.Context, c *lol.Client, _ []string) (interface{}, error) {
		return c.StaticVersions(ctx)
	}},
}

func withID(fn func(context.Context, *lol.Client, int64) (interface{}, error)) func(context.Context, *lol.Client, []string) (interface{}, error) {
	return func(ctx context.Context, c *lol.Client, args []string) (interface{}, error) {
		if len(args) != 1 {
			return nil, errors.New("expected one id")
		}
		ids, err := parseIDs(args)
		if err != nil {
			return nil, err
		}
		return fn(ctx, c, ids[0])
	}
}

func withIDs(fn func(context.Context, *lol.Client, []int64) (interface{}, error)) func(context.Context, *lol.Client, []string) (interface{}, error) {
	return func(ctx context.Context, c *lol.Client, args []string) (interface{}, error) {
		ids, err := parseIDs(args)
		if err != nil {
			return nil, err
		}
		return fn(ctx, c, ids)
	}
}

func withSeason(fn func(context.Context, *lol.Client, int64, int) (interface{}, error)) func(context.Context, *lol.Client, []string) (interface{}, error) {
	return func(ctx context.Context, c *lol.Client, args []string) (interface{}, error) {
		if len(args) == 0 || len(args) > 2 {
			return nil, errors.New("expected an id and an optional season")
		}
		ids, err := parseIDs(args[:1])
		if err != nil {
			return nil, err
		}
		season := 0
		if len(args) == 2 {
			if season, err = strconv.Atoi(args[1]); err != nil {
				return nil, errors.Wrap(err, "season")
			}
		}
		return fn(ctx, c, ids[0], season)
	}
}

func parseIDs(args []string) ([]int64, error) {
	if len(args) == 0 {
		return nil, errors.New("expected at least one id")
	}
	ids := make([]int64, 0, len(args))
	for _, a := range args {
		for _, s := range strings.Split(a, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "bad id %q", s)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func sortedCommands() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: lol [flags] <command> [args]\n\nflags:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\ncommands:\n")
	for _, name := range sortedCommands() {
		fmt.Fprintf(os.Stderr, "  %-17s %s\n", name, commands[name].args)
	}
}

func main() {
	configPath := flag.String("config", "", "yaml config file")
	region := flag.String("region", "", "region code, overrides the config")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}
	cmd, ok := commands[flag.Arg(0)]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", flag.Arg(0))
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config. %v", err)
	}
	if *region != "" {
		cfg.Region = *region
	}

	logger := cfg.Logger()
	client, err := cfg.NewClient(logger)
	if err != nil {
		logger.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	v, err := cmd.run(ctx, client, flag.Args()[1:])
	if err != nil {
		logger.WithError(err).Fatalf("%s failed", flag.Arg(0))
	}

	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logger.Fatal(err)
	}
	fmt.Println(string(out))
}
