package apidocs

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	lol "github.com/mc10/riot-api"
	"golang.org/x/net/html"
)

const page = `<html><body>
<div id="header">ignored</div>
<div id="resources">
	<div class="resource" id="resource_1" data-version="champion-v1.2" data-regions="[BR, EUNE, NA]">
		<div class="heading">champion</div>
		<div id="inputs-link">x</div>
		<input type="hidden" name="method_id" value="1">
		<input type="text" name="summonerId">
		<a href="#!/1/2">link</a>
	</div>
	<div class="resource" id="resource_9" data-version="lol-static-data-v1.2" data-regions="[ALL]"></div>
	<div class="resource" id="resource_4" data-version="summoner-v1.5" data-regions="[NA]"></div>
	<div class="resource" id="resource_7" data-version="tournament-provider-v1" data-regions="[ALL]"></div>
</div>
</body></html>`

func parse(t *testing.T, s string) *goquery.Document {
	root, err := html.Parse(strings.NewReader(s))
	if err != nil {
		t.Fatal(err)
	}
	return goquery.NewDocumentFromNode(root)
}

func TestResources(t *testing.T) {
	doc, err := Clean(parse(t, page))
	if err != nil {
		t.Fatal(err)
	}

	resources, err := Resources(doc)
	if err != nil {
		t.Fatal(err)
	}

	expected := []Resource{
		{ID: "champion", Version: "1.2", Num: 1, Regions: []string{"BR", "EUNE", "NA"}},
		{ID: "lol-static-data", Version: "1.2", Num: 9, Regions: []string{"ALL"}},
		{ID: "summoner", Version: "1.5", Num: 4, Regions: []string{"NA"}},
		{ID: "tournament-provider", Version: "1", Num: 7, Regions: []string{"ALL"}},
	}
	if !reflect.DeepEqual(resources, expected) {
		t.Fatalf("Expected %+v\ngot %+v", expected, resources)
	}
}

func TestClean(t *testing.T) {
	doc, err := Clean(parse(t, page))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Find(`.heading`).Length() != 0 || doc.Find(`#inputs-link`).Length() != 0 {
		t.Fatal("Useless nodes were not removed")
	}
	if doc.Find(`input`).Length() != 1 || doc.Find(`input[name="summonerId"]`).Length() != 1 {
		t.Fatal("Only the method_id input should be removed")
	}
	if _, ok := doc.Find(`a`).Attr("href"); ok {
		t.Fatal("Fragment links should lose their href")
	}
	if doc.Find(`#header`).Length() != 0 {
		t.Fatal("Only #resources should be kept")
	}

	out, err := Format(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "summoner-v1.5") {
		t.Fatalf("Formatted html lost content: %s", out)
	}

	if _, err := Clean(parse(t, `<html><body></body></html>`)); err == nil {
		t.Fatal("Expected an error without #resources")
	}
}

func TestBadResource(t *testing.T) {
	doc := parse(t, `<div class="resource" data-version="nodash"></div>`)
	if _, err := Resources(doc); err == nil {
		t.Fatal("Expected an error for a bad data-version")
	}
}

func TestCompare(t *testing.T) {
	resources := []Resource{
		{ID: "champion", Version: "1.2"},
		{ID: "summoner", Version: "1.5"},
		{ID: "tournament-provider", Version: "1"},
	}

	mismatches, untracked := Compare([]lol.Operation{lol.OpChampion, lol.OpSummoner, lol.OpGame}, resources)

	expected := []Mismatch{
		{Operation: lol.OpSummoner, Resource: "summoner", Ours: "1.4", Documented: "1.5"},
		{Operation: lol.OpGame, Resource: "game", Ours: "1.3"},
	}
	if !reflect.DeepEqual(mismatches, expected) {
		t.Fatalf("Expected %+v\ngot %+v", expected, mismatches)
	}
	if !reflect.DeepEqual(untracked, []string{"tournament-provider"}) {
		t.Fatalf("Unexpected untracked %v", untracked)
	}
	if !strings.Contains(expected[1].String(), "not documented") {
		t.Fatalf("Unexpected message %s", expected[1])
	}
}

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/methods" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, page)
	}))
	defer server.Close()

	doc, err := Fetch(context.TODO(), server.Client(), server.URL+"/api/methods")
	if err != nil {
		t.Fatal(err)
	}
	if doc.Find(`.resource`).Length() != 4 {
		t.Fatal("Expected 4 resources")
	}

	if _, err := Fetch(context.TODO(), server.Client(), server.URL+"/missing"); err == nil {
		t.Fatal("Expected an error for HTTP 404")
	}
}
