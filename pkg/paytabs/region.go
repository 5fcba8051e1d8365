package paytabs

import (
	"errors"
	"fmt"
)

var ErrUnknownRegion = errors.New("unknown paytabs region")

// Region identifies the PayTabs regional deployment a merchant profile lives on.
type Region string

const (
	RegionARE    Region = "ARE"
	RegionSAU    Region = "SAU"
	RegionOMN    Region = "OMN"
	RegionJOR    Region = "JOR"
	RegionEGY    Region = "EGY"
	RegionKWT    Region = "KWT"
	RegionGlobal Region = "GLOBAL"
)

var regionOrder = []Region{RegionARE, RegionSAU, RegionOMN, RegionJOR, RegionEGY, RegionKWT, RegionGlobal}

var regionEndpoints = map[Region]string{
	RegionARE:    "https://secure.paytabs.com/",
	RegionSAU:    "https://secure.paytabs.sa/",
	RegionOMN:    "https://secure-oman.paytabs.com/",
	RegionJOR:    "https://secure-jordan.paytabs.com/",
	RegionEGY:    "https://secure-egypt.paytabs.com/",
	RegionKWT:    "https://secure-kuwait.paytabs.com/",
	RegionGlobal: "https://secure-global.paytabs.com/",
}

// ResolveEndpoint returns the base URL (with trailing slash) for region.
// Matching is exact and case-sensitive; an unknown region yields ok=false.
func ResolveEndpoint(region Region) (baseURL string, ok bool) {
	baseURL, ok = regionEndpoints[region]
	return baseURL, ok
}

// ParseRegion converts a raw region code into a Region.
func ParseRegion(s string) (Region, error) {
	r := Region(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRegion, s)
	}
	return r, nil
}

func (r Region) Valid() bool {
	_, ok := regionEndpoints[r]
	return ok
}

func (r Region) String() string { return string(r) }

// Regions lists every supported region in a stable order.
func Regions() []Region {
	out := make([]Region, len(regionOrder))
	copy(out, regionOrder)
	return out
}
