package uritemplates

import (
	"reflect"
	"testing"
)

func TestParseErrors(t *testing.T) {
	for _, raw := range []string{"{", "}", "/a/{b", "/a/b}", "/{}", "/{+}", "/{a{b}"} {
		if _, err := Parse(raw); err == nil {
			t.Errorf("Parse(%q) should fail", raw)
		}
	}
}

func TestExpand(t *testing.T) {
	datas := []struct {
		tpl    string
		values map[string]string
		want   string
	}{
		{"/summoner/by-name/{name}", map[string]string{"name": "Faker"}, "/summoner/by-name/Faker"},
		{"/summoner/by-name/{name}", map[string]string{"name": "Hide on bush"}, "/summoner/by-name/Hide%20on%20bush"},
		{"/league/by-summoner/{ids}", map[string]string{"ids": "1,2,3"}, "/league/by-summoner/1,2,3"},
		{"/by-name/{names}", map[string]string{"names": "a b,c/d,"}, "/by-name/a%20b,c%2Fd,"},
		{"/api/lol{+static-data}/na", map[string]string{"static-data": "/static-data"}, "/api/lol/static-data/na"},
		{"/api/lol{+static-data}/na", map[string]string{"static-data": ""}, "/api/lol/na"},
		{"no placeholders", nil, "no placeholders"},
	}

	for _, d := range datas {
		got, err := Expand(d.tpl, d.values)
		if err != nil {
			t.Fatalf("Expand(%q): %v", d.tpl, err)
		}
		if got != d.want {
			t.Fatalf("Expand(%q) = %q, expected %q", d.tpl, got, d.want)
		}
	}
}

func TestExpandMissingValue(t *testing.T) {
	if _, err := Expand("/{region}/v{version}", map[string]string{"region": "na"}); err == nil {
		t.Fatal("Expected an error for unbound 'version'")
	}
}

func TestValueCannotInjectPlaceholder(t *testing.T) {
	tpl := MustParse("/{name}/{region}")

	got, err := tpl.Expand(map[string]string{"name": "{region}", "region": "na"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "/%7Bregion%7D/na" {
		t.Fatalf("Unexpected expansion %q", got)
	}
}

func TestBindLastWins(t *testing.T) {
	base := MustParse("https://{region}.api.pvp.net/api/lol/{region}/v1.4")

	na := base.Bind("region", "na")
	euw := na.Bind("region", "euw")

	got, err := euw.Expand(nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "https://euw.api.pvp.net/api/lol/euw/v1.4" {
		t.Fatalf("Unexpected expansion %q", got)
	}

	// receiver is untouched
	if got, _ := na.Expand(nil); got != "https://na.api.pvp.net/api/lol/na/v1.4" {
		t.Fatalf("Bind modified its receiver: %q", got)
	}
	if names := base.Names(); !reflect.DeepEqual(names, []string{"region"}) {
		t.Fatalf("Unexpected names %v", names)
	}
}

func TestBindAbsentIsNoop(t *testing.T) {
	tpl := MustParse("/v{version}")
	if tpl.Bind("region", "na") != tpl {
		t.Fatal("Binding an absent name should return the same template")
	}
}

func TestAppend(t *testing.T) {
	tpl := MustParse("/v{version}").Bind("version", "1.3")
	full, err := tpl.Append("/game/by-summoner/{summonerId}/recent")
	if err != nil {
		t.Fatal(err)
	}
	got, err := full.Expand(map[string]string{"summonerId": "12345"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "/v1.3/game/by-summoner/12345/recent" {
		t.Fatalf("Unexpected expansion %q", got)
	}
	if full.String() != "/v{version}/game/by-summoner/{summonerId}/recent" {
		t.Fatalf("Unexpected raw %q", full.String())
	}
}

func TestExpandOnce(t *testing.T) {
	got, err := Expand("https://{region}.api.pvp.net", map[string]string{"region": "kr"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "https://kr.api.pvp.net" {
		t.Fatalf("Expand = %q", got)
	}
	if _, err := Expand("https://{region.api", nil); err == nil {
		t.Fatal("Expected a parse error")
	}
}
