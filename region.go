package lol

import (
	"strings"

	"github.com/pkg/errors"
)

// Region represents a league of legends service area.
// Values are the short codes riot uses, e.g. "NA" or "EUW".
type Region string

// Regions supported by the api.
const (
	BR   Region = "BR"
	EUNE Region = "EUNE"
	EUW  Region = "EUW"
	KR   Region = "KR"
	LAN  Region = "LAN"
	LAS  Region = "LAS"
	NA   Region = "NA"
	OCE  Region = "OCE"
	RU   Region = "RU"
	TR   Region = "TR"
)

// DefaultRegion is used when New is called without a region.
const DefaultRegion = NA

// sorted by code
var regions = []Region{BR, EUNE, EUW, KR, LAN, LAS, NA, OCE, RU, TR}

var platformIDByRegion = map[Region]string{
	BR:   "BR1",
	EUNE: "EUN1",
	EUW:  "EUW1",
	KR:   "KR",
	LAN:  "LA1",
	LAS:  "LA2",
	NA:   "NA1",
	OCE:  "OC1",
	RU:   "RU",
	TR:   "TR1",
}

var regionByPlatformID = func() map[string]Region {
	m := make(map[string]Region, len(platformIDByRegion))
	for r, id := range platformIDByRegion {
		m[id] = r
	}
	return m
}()

// IsRegion returns true if code is one of the known region codes.
// The match is case sensitive.
func IsRegion(code string) bool {
	_, ok := platformIDByRegion[Region(code)]
	return ok
}

// RegionByName gets a region by name.
func RegionByName(name string) (Region, error) {
	if !IsRegion(name) {
		return "", errors.Wrapf(ErrInvalidArgument, "invalid region %q", name)
	}
	return Region(name), nil
}

// RegionByPlatformID gets a region by platform id.
func RegionByPlatformID(id string) (Region, error) {
	r, ok := regionByPlatformID[id]
	if !ok {
		return "", errors.Wrapf(ErrInvalidArgument, "invalid platform id %q", id)
	}
	return r, nil
}

// String implements fmt.Stringer
func (r Region) String() string {
	return string(r)
}

// PlatformID returns the ID for observer api.
func (r Region) PlatformID() string {
	return platformIDByRegion[r]
}

// Host returns hostname for api call.
func (r Region) Host() string {
	return r.lower() + ".api.pvp.net"
}

// lower is the form used inside urls.
func (r Region) lower() string {
	return strings.ToLower(string(r))
}

// Regions returns all regions.
func Regions() []Region {
	rs := make([]Region, len(regions))
	copy(rs, regions)
	return rs
}
