package ranking

import (
	"sort"
	"time"

	"channel-radio/internal/models"
	"channel-radio/internal/stations"
)

// All functions in this package are total over possibly-empty input and never
// mutate their arguments: empty in means empty out, and repeated calls on the
// same input yield the same output.

// FilterUpcomingWithProfile keeps shows worth putting on a discovery card:
// starting after now, with a claimed DJ identity, with something to render,
// and not a machine-run rebroadcast. Input order is preserved.
func FilterUpcomingWithProfile(shows []models.Show, now time.Time) []models.Show {
	var out []models.Show
	for _, s := range shows {
		if !s.StartTime.After(now) {
			continue
		}
		if !s.HasDJIdentity() || !s.HasImage() || s.IsRebroadcast() {
			continue
		}
		out = append(out, s)
	}
	return out
}

// MatchFavorite returns the shows a followed term matches.
//
// A station-scoped favorite matches by exact (case-insensitive) name equality
// against the term or the cached show name, and only on its own station; the
// directory treats a station's id and its metadata key as the same station.
// An unscoped favorite matches the term as a whole word against either the
// show name or the DJ name.
func MatchFavorite(fav models.Favorite, shows []models.Show, dir *stations.Directory) []models.Show {
	var out []models.Show
	for _, s := range shows {
		if fav.StationID != "" {
			if !dir.SameStation(fav.StationID, s.StationID) {
				continue
			}
			if equalFold(s.Name, fav.Term) || (fav.ShowName != "" && equalFold(s.Name, fav.ShowName)) {
				out = append(out, s)
			}
			continue
		}
		if WordMatch(fav.Term, s.Name) || WordMatch(fav.Term, s.DJName) {
			out = append(out, s)
		}
	}
	return out
}

// MatchAnyFavorite runs every favorite against the show list and returns the
// union, deduplicated by show id, in show-list order.
func MatchAnyFavorite(favs []models.Favorite, shows []models.Show, dir *stations.Directory) []models.Show {
	matched := make(map[string]bool)
	for _, fav := range favs {
		for _, s := range MatchFavorite(fav, shows, dir) {
			matched[s.ID] = true
		}
	}

	var out []models.Show
	for _, s := range shows {
		if matched[s.ID] {
			out = append(out, s)
		}
	}
	return out
}

// cadenceTier orders recurrence cadences: regulars first, occasionals later.
func cadenceTier(cadence string) int {
	switch cadence {
	case models.CadenceWeekly, models.CadenceBiweekly:
		return 0
	case models.CadenceMonthly:
		return 1
	default:
		return 2 // one-off or unspecified
	}
}

// RankByCadence stably sorts shows so higher-frequency residencies come
// first, preserving relative order within each tier.
func RankByCadence(shows []models.Show) []models.Show {
	out := make([]models.Show, len(shows))
	copy(out, shows)
	sort.SliceStable(out, func(a, b int) bool {
		return cadenceTier(out[a].Cadence) < cadenceTier(out[b].Cadence)
	})
	return out
}

// DiversifyByKey greedily picks up to cap shows, avoiding two consecutive
// picks with the same key when any alternative remains; it falls back to
// allowing a repeat only when every remaining candidate would repeat.
func DiversifyByKey(shows []models.Show, keyFn func(models.Show) string, cap int) []models.Show {
	if cap <= 0 || len(shows) == 0 {
		return nil
	}

	remaining := make([]models.Show, len(shows))
	copy(remaining, shows)

	var out []models.Show
	lastKey := ""

	for len(out) < cap && len(remaining) > 0 {
		pick := -1
		for i, s := range remaining {
			if len(out) == 0 || keyFn(s) != lastKey {
				pick = i
				break
			}
		}
		if pick == -1 {
			pick = 0 // everything left repeats; take the next in order
		}

		chosen := remaining[pick]
		out = append(out, chosen)
		lastKey = keyFn(chosen)
		remaining = append(remaining[:pick], remaining[pick+1:]...)
	}

	return out
}

// AvoidFeaturedFirst keeps a section from leading with an entry another
// section already featured as its hero: if the first item's key is excluded,
// it is swapped with the first subsequent non-excluded item. Lists of length
// one or less, and lists whose head is not excluded, come back unchanged.
func AvoidFeaturedFirst(items []models.Show, keyFn func(models.Show) string, excluded map[string]bool) []models.Show {
	out := make([]models.Show, len(items))
	copy(out, items)

	if len(out) <= 1 || !excluded[keyFn(out[0])] {
		return out
	}
	for i := 1; i < len(out); i++ {
		if !excluded[keyFn(out[i])] {
			out[0], out[i] = out[i], out[0]
			break
		}
	}
	return out
}

// ScoreProfileCompleteness rewards shows whose DJs filled out their profile:
// +3 for a photo, +2 for a location, +1 for genre tags.
func ScoreProfileCompleteness(s models.Show) int {
	score := 0
	if s.DJPhotoURL != "" {
		score += 3
	}
	if s.City != "" {
		score += 2
	}
	if len(s.GenreList()) > 0 {
		score++
	}
	return score
}

// RankByCompleteness orders the generic "Our Picks" fallback: completeness
// score descending, earlier start time breaking ties.
func RankByCompleteness(shows []models.Show) []models.Show {
	out := make([]models.Show, len(shows))
	copy(out, shows)
	sort.SliceStable(out, func(a, b int) bool {
		sa, sb := ScoreProfileCompleteness(out[a]), ScoreProfileCompleteness(out[b])
		if sa != sb {
			return sa > sb
		}
		return out[a].StartTime.Before(out[b].StartTime)
	})
	return out
}
