// Package apidocs reads the riot api reference page and compares the
// documented resource versions with the operation table of package lol.
package apidocs

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	lol "github.com/mc10/riot-api"
	"github.com/pkg/errors"
	"github.com/yosssi/gohtml"
	"golang.org/x/net/context/ctxhttp"
)

// Resource is a resource block of the reference page,
// e.g. <div class="resource" id="resource_3" data-version="summoner-v1.4" data-regions="[BR, NA]">.
type Resource struct {
	ID      string
	Version string // without 'v'
	Num     int    // numeric id
	Regions []string
}

// Fetch downloads the reference page and returns the cleaned #resources node.
func Fetch(ctx context.Context, client *http.Client, url string) (*goquery.Document, error) {
	resp, err := ctxhttp.Get(ctx, client, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("GET %s: HTTP %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "parsing reference page")
	}
	return Clean(doc)
}

// Clean narrows the page down to #resources
// and removes some useless stuffs to make debugging easier.
func Clean(pageDoc *goquery.Document) (*goquery.Document, error) {
	root := pageDoc.Find(`#resources`)
	if root.Length() == 0 {
		return nil, errors.New("no #resources element in page")
	}

	doc := goquery.NewDocumentFromNode(root.Nodes[0])
	doc.Find(`table`).RemoveClass(`table`)

	doc.Find(`.response, .sandbox_header, .resource > .heading`).Remove()
	// hidden 'method_id' inputs and the sandbox input links
	doc.Find(`input[name="method_id"], div#inputs-link`).Remove()
	doc.Find(`a[href^="#!/"]`).RemoveAttr(`href`)
	doc.Find(`*`).RemoveAttr(`style`).RemoveAttr(`onclick`)

	return doc, nil
}

// Format returns the document as indented html.
func Format(doc *goquery.Document) (string, error) {
	h, err := doc.Html()
	if err != nil {
		return "", err
	}
	return gohtml.Format(h), nil
}

// Resources parses every .resource block of doc, sorted by id.
func Resources(doc *goquery.Document) ([]Resource, error) {
	var (
		resources []Resource
		err       error
	)

	doc.Find(`.resource`).EachWithBreak(func(i int, s *goquery.Selection) bool {
		var res Resource
		res, err = parseResource(s)
		if err != nil {
			return false
		}
		resources = append(resources, res)
		return true
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(resources, func(i, j int) bool { return resources[i].ID < resources[j].ID })
	return resources, nil
}

func parseResource(s *goquery.Selection) (Resource, error) {
	var res Resource

	a, ok := s.Attr("data-version")
	if !ok {
		return res, errors.New("resource without data-version")
	}
	ts := strings.Split(a, "-")
	if len(ts) < 2 {
		return res, errors.Errorf("bad data-version %q", a)
	}
	res.ID = strings.TrimSpace(strings.Join(ts[:len(ts)-1], "-"))
	res.Version = strings.TrimPrefix(strings.TrimSpace(ts[len(ts)-1]), "v")

	if idAttr, ok := s.Attr("id"); ok {
		num, err := strconv.Atoi(strings.TrimPrefix(idAttr, "resource_"))
		if err != nil {
			return res, errors.Wrapf(err, "resource %s", res.ID)
		}
		res.Num = num
	}

	if a, ok := s.Attr("data-regions"); ok {
		a = strings.TrimPrefix(strings.TrimSuffix(a, "]"), "[")
		for _, r := range strings.Split(a, ",") {
			if r = strings.TrimSpace(r); r != "" {
				res.Regions = append(res.Regions, r)
			}
		}
	}

	return res, nil
}

// Mismatch is an operation whose version differs from the documentation.
type Mismatch struct {
	Operation  lol.Operation
	Resource   string
	Ours       string
	Documented string // empty if the resource is not documented
}

func (m Mismatch) String() string {
	if m.Documented == "" {
		return fmt.Sprintf("%s: resource %q is not documented (we use v%s)", m.Operation, m.Resource, m.Ours)
	}
	return fmt.Sprintf("%s: we use v%s, %s is documented as v%s", m.Operation, m.Ours, m.Resource, m.Documented)
}

// Compare returns mismatches between ops and resources,
// and the ids of documented resources no operation uses.
func Compare(ops []lol.Operation, resources []Resource) (mismatches []Mismatch, untracked []string) {
	byID := make(map[string]Resource, len(resources))
	for _, res := range resources {
		byID[res.ID] = res
	}

	used := make(map[string]bool)
	for _, op := range ops {
		info, ok := op.Info()
		if !ok {
			continue
		}
		used[info.Resource] = true

		res, ok := byID[info.Resource]
		if !ok || res.Version != info.Version {
			mismatches = append(mismatches, Mismatch{
				Operation:  op,
				Resource:   info.Resource,
				Ours:       info.Version,
				Documented: res.Version,
			})
		}
	}

	for _, res := range resources {
		if !used[res.ID] {
			untracked = append(untracked, res.ID)
		}
	}
	return mismatches, untracked
}
