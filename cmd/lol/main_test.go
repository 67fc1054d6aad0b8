package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	lol "github.com/mc10/riot-api"
)

func TestParseIDs(t *testing.T) {
	ids, err := parseIDs([]string{"1,2", " 3"})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ids, []int64{1, 2, 3}) {
		t.Fatalf("Unexpected ids %v", ids)
	}

	for _, args := range [][]string{nil, {"x"}, {"1,"}} {
		if _, err := parseIDs(args); err == nil {
			t.Fatalf("Expected an error for %q", args)
		}
	}
}

func TestCommands(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path+"?"+r.URL.Query().Get("season"))
		fmt.Fprint(w, `{"playerStatSummaries":[]}`)
	}))
	defer server.Close()

	c, err := lol.New("K", "EUW", lol.WithBaseURL(server.URL))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := commands["summary"].run(context.TODO(), c, []string{"42", "4"}); err != nil {
		t.Fatal(err)
	}
	if paths[0] != "/api/lol/euw/v1.3/stats/by-summoner/42/summary?SEASON4" {
		t.Fatalf("Unexpected request %s", paths[0])
	}

	if _, err := commands["summary"].run(context.TODO(), c, []string{"42", "four"}); err == nil {
		t.Fatal("Expected an error for a bad season")
	}
	if _, err := commands["masteries"].run(context.TODO(), c, []string{"1", "2"}); err == nil {
		t.Fatal("Expected an error for two ids")
	}
	if len(paths) != 1 {
		t.Fatalf("Bad arguments should not reach the server, got %v", paths)
	}

	if len(sortedCommands()) != len(commands) {
		t.Fatal("sortedCommands lost entries")
	}
}
