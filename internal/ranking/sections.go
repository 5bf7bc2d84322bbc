package ranking

import (
	"time"

	"channel-radio/internal/genres"
	"channel-radio/internal/models"
	"channel-radio/internal/stations"
)

// Section is one landing-page carousel.
type Section struct {
	Name  string        `json:"name"`
	Shows []models.Show `json:"shows"`
}

// SectionInput carries everything the landing page knows at render time.
// The caller supplies now once so the whole build is deterministic.
type SectionInput struct {
	Shows     []models.Show
	Favorites []models.Favorite
	City      string // listener's city, empty if unknown
	Genre     string // selected genre filter, empty if none
	Now       time.Time

	Directory *stations.Directory
	Genres    *genres.Table

	Cap int // per-section cap; defaults to 4
}

const defaultSectionCap = 4

// BuildSections composes the page's carousels from the raw show list:
//
//	"Coming Up Next"   — cadence-ranked upcoming shows, diversified by station
//	"Local DJs"        — upcoming shows from the listener's city
//	"Who Not To Miss"  — favorite matches
//	"Our Picks"        — completeness-scored fallback
//
// Each section hands the keys it featured to the next one, so the same DJ
// never leads two adjacent carousels. Sections that come up empty are
// omitted.
func BuildSections(in SectionInput) []Section {
	sectionCap := in.Cap
	if sectionCap <= 0 {
		sectionCap = defaultSectionCap
	}

	eligible := FilterUpcomingWithProfile(in.Shows, in.Now)

	byStation := func(s models.Show) string { return s.StationID }
	byDJ := func(s models.Show) string {
		if s.DJUsername != "" {
			return s.DJUsername
		}
		return s.DJUserID
	}

	featured := make(map[string]bool)
	var sections []Section

	appendSection := func(name string, shows []models.Show) {
		shows = AvoidFeaturedFirst(shows, byDJ, featured)
		if len(shows) == 0 {
			return
		}
		featured[byDJ(shows[0])] = true
		sections = append(sections, Section{Name: name, Shows: shows})
	}

	// 1. Coming Up Next
	next := DiversifyByKey(RankByCadence(eligible), byStation, sectionCap)
	appendSection("Coming Up Next", next)

	// 2. Local DJs
	if in.City != "" {
		var local []models.Show
		for _, s := range eligible {
			if equalFold(s.City, in.City) {
				local = append(local, s)
			}
		}
		appendSection("Local DJs", DiversifyByKey(local, byDJ, sectionCap))
	}

	// 3. Who Not To Miss (favorites)
	if len(in.Favorites) > 0 {
		matches := MatchAnyFavorite(in.Favorites, eligible, in.Directory)
		if len(matches) > sectionCap {
			matches = matches[:sectionCap]
		}
		appendSection("Who Not To Miss", matches)
	}

	// 4. Our Picks — fallback pool, optionally narrowed by genre
	pool := eligible
	if in.Genre != "" && in.Genres != nil {
		var filtered []models.Show
		for _, s := range pool {
			if in.Genres.Matches(s.GenreList(), in.Genre) {
				filtered = append(filtered, s)
			}
		}
		pool = filtered
	}
	picks := RankByCompleteness(pool)
	if len(picks) > sectionCap {
		picks = picks[:sectionCap]
	}
	appendSection("Our Picks", picks)

	return sections
}
