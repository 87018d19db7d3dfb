package calendar

import (
	"context"
	"fmt"
	"sort"
	"strings"

	cal "github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

// regions maps a region code to its public holiday rules
var regions = map[string][]*cal.Holiday{
	"us": {
		us.NewYear,
		us.MlkDay,
		us.PresidentsDay,
		us.MemorialDay,
		us.Juneteenth,
		us.IndependenceDay,
		us.LaborDay,
		us.ColumbusDay,
		us.VeteransDay,
		us.ThanksgivingDay,
		us.ChristmasDay,
	},
}

// Regions returns the supported region codes
func Regions() []string {
	codes := make([]string, 0, len(regions))
	for code := range regions {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// RegionSource implements Source from rule-based public holidays of a region.
// Observed dates are reported, so a holiday falling on a weekend moves to
// the adjacent weekday.
type RegionSource struct {
	region   string
	holidays []*cal.Holiday
}

// NewRegionSource creates a RegionSource for a code returned by Regions
func NewRegionSource(region string) (*RegionSource, error) {
	code := strings.ToLower(region)
	holidays, ok := regions[code]
	if !ok {
		return nil, fmt.Errorf("unknown holiday region %q, supported: %s", region, strings.Join(Regions(), ", "))
	}

	return &RegionSource{region: code, holidays: holidays}, nil
}

// Holidays returns the observed public holidays of the year
func (rs *RegionSource) Holidays(_ context.Context, year int) ([]Holiday, error) {
	result := make([]Holiday, 0, len(rs.holidays))
	for _, h := range rs.holidays {
		_, observed := h.Calc(year)
		if observed.IsZero() {
			// rule not in effect that year
			continue
		}
		result = append(result, Holiday{Date: observed, Name: h.Name})
	}
	return result, nil
}
