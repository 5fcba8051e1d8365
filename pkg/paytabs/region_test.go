package paytabs

import (
	"errors"
	"testing"
)

func TestResolveEndpoint_KnownRegions(t *testing.T) {
	cases := []struct {
		region Region
		want   string
	}{
		{RegionARE, "https://secure.paytabs.com/"},
		{RegionSAU, "https://secure.paytabs.sa/"},
		{RegionOMN, "https://secure-oman.paytabs.com/"},
		{RegionJOR, "https://secure-jordan.paytabs.com/"},
		{RegionEGY, "https://secure-egypt.paytabs.com/"},
		{RegionKWT, "https://secure-kuwait.paytabs.com/"},
		{RegionGlobal, "https://secure-global.paytabs.com/"},
	}

	for _, tc := range cases {
		t.Run(string(tc.region), func(t *testing.T) {
			got, ok := ResolveEndpoint(tc.region)
			if !ok {
				t.Fatalf("expected %s to resolve", tc.region)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}

	if len(Regions()) != len(cases) {
		t.Fatalf("expected %d regions, got %d", len(cases), len(Regions()))
	}
}

func TestResolveEndpoint_UnknownRegion(t *testing.T) {
	for _, r := range []Region{"", "are", "Global", "USA", "ARE "} {
		if got, ok := ResolveEndpoint(r); ok || got != "" {
			t.Fatalf("expected no endpoint for %q, got %q", r, got)
		}
	}
}

func TestParseRegion(t *testing.T) {
	r, err := ParseRegion("SAU")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != RegionSAU {
		t.Fatalf("expected SAU, got %s", r)
	}

	_, err = ParseRegion("sau")
	if !errors.Is(err, ErrUnknownRegion) {
		t.Fatalf("expected ErrUnknownRegion, got %v", err)
	}
}
