package controllers

import (
	"testing"

	"altairis/models"
)

func TestNormalizeInput(t *testing.T) {
	tests := []struct{ in, want string }{
		{"  Khách Sạn  ", "khach san"},
		{"MADRID", "madrid"},
		{"Champs-Élysées", "champs-elysees"},
	}
	for _, tc := range tests {
		if got := normalizeInput(tc.in); got != tc.want {
			t.Errorf("normalizeInput(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCalculateSimilarity(t *testing.T) {
	if got := calculateSimilarity("madrid", "madrid"); got != 1.0 {
		t.Errorf("expected 1.0 for identical strings, got %v", got)
	}
	if got := calculateSimilarity("", ""); got != 1.0 {
		t.Errorf("expected 1.0 for two empty strings, got %v", got)
	}
	if got := calculateSimilarity("madrid", "madrit"); got < 0.8 {
		t.Errorf("expected high similarity for one edit, got %v", got)
	}
	if got := calculateSimilarity("madrid", "tokyo"); got > 0.4 {
		t.Errorf("expected low similarity, got %v", got)
	}
}

func TestExtractRatingFromQuery(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"khach san 5 sao madrid", 5},
		{"hotel 4 star barcelona", 4},
		{"4 stars", 4},
		{"hotel madrid", -1},
	}
	for _, tc := range tests {
		if got := extractRatingFromQuery(tc.query); got != tc.want {
			t.Errorf("extractRatingFromQuery(%q) = %d, want %d", tc.query, got, tc.want)
		}
	}
}

func TestFilterAndScoreHotels_RanksMatchesFirst(t *testing.T) {
	hotels := []models.Hotel{
		{ID: 1, Name: "Grand Altairis Madrid", City: "Madrid", Country: "Spain", StarRating: 5, IsActive: true},
		{ID: 2, Name: "Altairis Barcelona Beach", City: "Barcelona", Country: "Spain", StarRating: 4, IsActive: true},
		{ID: 3, Name: "Altairis Rome Centro", City: "Rome", Country: "Italy", StarRating: 4, IsActive: true},
	}

	cmCity := createMatcher(prepareUniqueList(hotels, "city"))
	cmCountry := createMatcher(prepareUniqueList(hotels, "country"))

	scored := filterAndScoreHotels("madrid 5 sao", hotels, cmCity, cmCountry)
	if len(scored) == 0 {
		t.Fatal("expected at least one scored hotel")
	}
	if scored[0].Hotel.ID != 1 {
		t.Errorf("expected Madrid hotel ranked first, got %+v", scored[0].Hotel)
	}
	for i := 1; i < len(scored); i++ {
		if scored[i].Score > scored[i-1].Score {
			t.Errorf("scores not descending at %d: %v", i, scored)
		}
	}
}

func TestPrepareUniqueList_DeduplicatesAndNormalizes(t *testing.T) {
	hotels := []models.Hotel{
		{City: "Madrid"},
		{City: "MADRID"},
		{City: ""},
		{City: "Barcelona"},
	}
	list := prepareUniqueList(hotels, "city")
	if len(list) != 2 {
		t.Errorf("expected 2 unique cities, got %v", list)
	}
}
