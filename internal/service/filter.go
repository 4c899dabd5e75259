package service

import (
	"strings"

	"evstat-api/internal/models"

	"github.com/rs/zerolog/log"
)

// Scope is how specific a region selection is.
type Scope int

const (
	ScopeAll Scope = iota
	ScopeRegion
	ScopeRegionDetail
)

// Free-parking labels shown in the station tooltip.
const (
	ParkingFreeAvailable   = "가능"
	ParkingFreeUnavailable = "불가능"
	ParkingFreeNoInfo      = "정보없음"
)

// NormalizeSelection maps blanks to the wildcard and resets the sub-region whenever the region is the wildcard.
func NormalizeSelection(sel models.Selection) models.Selection {
	region := strings.TrimSpace(sel.Region)
	sub := strings.TrimSpace(sel.SubRegion)
	if region == "" {
		region = models.All
	}
	if sub == "" || region == models.All {
		sub = models.All
	}
	return models.Selection{Region: region, SubRegion: sub}
}

// ScopeOf reports the specificity of a normalized selection.
func ScopeOf(sel models.Selection) Scope {
	switch {
	case sel.Region == models.All:
		return ScopeAll
	case sel.SubRegion == models.All:
		return ScopeRegion
	default:
		return ScopeRegionDetail
	}
}

// ParkingFreeLabel localizes a free-parking code.
func ParkingFreeLabel(p models.ParkingFree) string {
	switch p {
	case models.ParkingFreeYes:
		return ParkingFreeAvailable
	case models.ParkingFreeNo:
		return ParkingFreeUnavailable
	default:
		return ParkingFreeNoInfo
	}
}

// FilterStations returns the stations under the selected region and sub-region, each labelled with
// its localized free-parking text. A selection that does not resolve yields an empty result.
func FilterStations(sel models.Selection, t models.StationTables) []models.Station {
	sel = NormalizeSelection(sel)

	var keep func(models.Station) bool
	switch ScopeOf(sel) {
	case ScopeAll:
		keep = func(models.Station) bool { return true }
	case ScopeRegion:
		code, ok := regionCode(sel.Region, t.Regions)
		if !ok {
			log.Debug().Str("region", sel.Region).Msg("service: unknown region selected")
			return []models.Station{}
		}
		codes := map[string]struct{}{}
		for _, d := range t.RegionDetails {
			if d.RegionCode == code {
				codes[d.Code] = struct{}{}
			}
		}
		keep = func(s models.Station) bool {
			_, ok := codes[s.SubRegionCode]
			return ok
		}
	case ScopeRegionDetail:
		code, ok := regionCode(sel.Region, t.Regions)
		if !ok {
			log.Debug().Str("region", sel.Region).Msg("service: unknown region selected")
			return []models.Station{}
		}
		detail, ok := regionDetailCode(code, sel.SubRegion, t.RegionDetails)
		if !ok {
			log.Debug().
				Str("region", sel.Region).
				Str("sub_region", sel.SubRegion).
				Msg("service: sub-region does not belong to region")
			return []models.Station{}
		}
		keep = func(s models.Station) bool { return s.SubRegionCode == detail }
	}

	out := []models.Station{}
	for _, s := range t.Stations {
		if !keep(s) {
			continue
		}
		s.ParkingFreeLabel = ParkingFreeLabel(s.ParkingFree)
		out = append(out, s)
	}
	return out
}

func regionCode(name string, regions []models.Region) (string, bool) {
	for _, r := range regions {
		if r.Name == name {
			return r.Code, true
		}
	}
	return "", false
}

func regionDetailCode(regionCode, name string, details []models.RegionDetail) (string, bool) {
	for _, d := range details {
		if d.RegionCode == regionCode && d.Name == name {
			return d.Code, true
		}
	}
	return "", false
}
