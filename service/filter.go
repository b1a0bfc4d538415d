package services

import (
	"strings"

	"caffind-server/models"
	"caffind-server/models/cafe"
)

// MaxCandidates caps the filtered list before ranking to bound the cost
// of the remote ranking call.
const MaxCandidates = 15

// FilterCafes returns the subset of cafes satisfying every non-empty
// preference field. Matching is case-insensitive; within a set-valued
// field a single match is enough, across fields all must hold. A cafe
// missing an attribute fails that predicate.
func FilterCafes(cafes []cafe.Cafe, prefs models.Preferences) []cafe.Cafe {
	filtered := make([]cafe.Cafe, 0, len(cafes))
	for _, c := range cafes {
		if MatchesPreferences(c, prefs) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// MatchesPreferences applies each non-empty field predicate to a single
// cafe.
func MatchesPreferences(c cafe.Cafe, prefs models.Preferences) bool {
	if prefs.Location != "" {
		loc := strings.ToLower(prefs.Location)
		if !strings.Contains(strings.ToLower(c.Address), loc) &&
			!strings.Contains(strings.ToLower(c.Location.Address), loc) {
			return false
		}
	}
	if prefs.Cuisine != "" {
		if !strings.Contains(strings.ToLower(c.Cuisine), strings.ToLower(prefs.Cuisine)) {
			return false
		}
	}
	// Price tier is exact-match where everything else is substring; this
	// mirrors observed behavior rather than a unified matching strategy.
	if prefs.PriceRange != "" {
		if !strings.EqualFold(c.PriceRange, prefs.PriceRange) {
			return false
		}
	}
	if prefs.Ambiance != "" {
		if !strings.Contains(strings.ToLower(c.Ambiance), strings.ToLower(prefs.Ambiance)) {
			return false
		}
	}
	if len(prefs.DietaryRestrictions) > 0 {
		if !anyOptionContains(c.DietaryOptions, prefs.DietaryRestrictions) {
			return false
		}
	}
	if len(prefs.Amenities) > 0 {
		if !anyOptionContains(c.Amenities, prefs.Amenities) {
			return false
		}
	}
	return true
}

// anyOptionContains reports whether any requested value is a substring
// of any of the cafe's options (OR across the requested set).
func anyOptionContains(options []string, requested []string) bool {
	for _, want := range requested {
		wantLower := strings.ToLower(want)
		for _, opt := range options {
			if strings.Contains(strings.ToLower(opt), wantLower) {
				return true
			}
		}
	}
	return false
}
