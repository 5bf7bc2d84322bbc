package ranking

import (
	"testing"
	"time"

	"channel-radio/internal/genres"
	"channel-radio/internal/models"
)

func sectionByName(sections []Section, name string) *Section {
	for i := range sections {
		if sections[i].Name == name {
			return &sections[i]
		}
	}
	return nil
}

func TestBuildSections(t *testing.T) {
	shows := []models.Show{
		eligibleShow("berlin-weekly", func(s *models.Show) {
			s.City = "Berlin"
			s.Cadence = models.CadenceWeekly
			s.StationID = "station-a"
		}),
		eligibleShow("berlin-monthly", func(s *models.Show) {
			s.City = "Berlin"
			s.Cadence = models.CadenceMonthly
			s.StationID = "station-b"
		}),
		eligibleShow("tokyo-weekly", func(s *models.Show) {
			s.City = "Tokyo"
			s.Cadence = models.CadenceWeekly
			s.StationID = "station-a"
		}),
		eligibleShow("past", func(s *models.Show) { s.StartTime = testNow.Add(-time.Hour) }),
	}

	in := SectionInput{
		Shows:     shows,
		Favorites: []models.Favorite{{Term: "DJ berlin-weekly"}},
		City:      "Berlin",
		Now:       testNow,
		Directory: testDirectory(),
		Genres:    genres.Default(),
		Cap:       3,
	}

	sections := BuildSections(in)

	next := sectionByName(sections, "Coming Up Next")
	if next == nil || len(next.Shows) == 0 {
		t.Fatal("Missing 'Coming Up Next' section")
	}
	for _, s := range next.Shows {
		if s.ID == "past" {
			t.Error("Past show leaked into 'Coming Up Next'")
		}
	}

	local := sectionByName(sections, "Local DJs")
	if local == nil {
		t.Fatal("Missing 'Local DJs' section")
	}
	for _, s := range local.Shows {
		if s.City != "Berlin" {
			t.Errorf("Non-local show %s in 'Local DJs'", s.ID)
		}
	}

	// Adjacent sections must not lead with the same DJ
	if next.Shows[0].DJUsername == local.Shows[0].DJUsername {
		t.Errorf("Both sections lead with DJ %q", next.Shows[0].DJUsername)
	}

	miss := sectionByName(sections, "Who Not To Miss")
	if miss == nil {
		t.Fatal("Missing 'Who Not To Miss' section")
	}

	for _, sec := range sections {
		if len(sec.Shows) > 3 {
			t.Errorf("Section %q exceeds cap: %d shows", sec.Name, len(sec.Shows))
		}
	}
}

func TestBuildSections_EmptyInput(t *testing.T) {
	sections := BuildSections(SectionInput{
		Now:       testNow,
		Directory: testDirectory(),
		Genres:    genres.Default(),
	})
	if len(sections) != 0 {
		t.Errorf("Expected no sections for empty input, got %d", len(sections))
	}
}

func TestBuildSections_GenreFilterNarrowsPicks(t *testing.T) {
	shows := []models.Show{
		eligibleShow("house-show", func(s *models.Show) { s.Genres = "House" }),
		eligibleShow("jazz-show", func(s *models.Show) { s.Genres = "Jazz" }),
	}

	sections := BuildSections(SectionInput{
		Shows:     shows,
		Genre:     "Dance", // aliased to House in the default table
		Now:       testNow,
		Directory: testDirectory(),
		Genres:    genres.Default(),
	})

	picks := sectionByName(sections, "Our Picks")
	if picks == nil {
		t.Fatal("Missing 'Our Picks' section")
	}
	for _, s := range picks.Shows {
		if s.ID == "jazz-show" {
			t.Error("Genre filter leaked a non-matching show into 'Our Picks'")
		}
	}
}
