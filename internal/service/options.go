package service

import (
	"evstat-api/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// RegionOptions lists the wildcard followed by every distinct region name in Korean order.
func RegionOptions(regions []models.Region) models.SelectorOptions {
	names := make([]string, 0, len(regions))
	for _, r := range regions {
		names = append(names, r.Name)
	}
	return models.SelectorOptions{Options: withWildcard(names)}
}

// SubRegionOptions lists the sub-regions of the named region. The control is disabled
// and offers only the wildcard while no region is chosen.
func SubRegionOptions(region string, t models.StationTables) models.SelectorOptions {
	sel := NormalizeSelection(models.Selection{Region: region})
	if ScopeOf(sel) == ScopeAll {
		return models.SelectorOptions{Options: []string{models.All}, Disabled: true}
	}

	code, ok := regionCode(sel.Region, t.Regions)
	if !ok {
		return models.SelectorOptions{Options: []string{models.All}}
	}

	names := []string{}
	for _, d := range t.RegionDetails {
		if d.RegionCode == code {
			names = append(names, d.Name)
		}
	}
	return models.SelectorOptions{Options: withWildcard(names)}
}

func withWildcard(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	uniq := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" || n == models.All {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		uniq = append(uniq, n)
	}
	collate.New(language.Korean).SortStrings(uniq)
	return append([]string{models.All}, uniq...)
}
