package services

import (
	"sort"
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"hotel-manager/models"
)

// MinNameSimilarity is how close a guest name must be to a query to match.
const MinNameSimilarity = 0.7

// GuestMatch is a booking whose guest name matched a search.
type GuestMatch struct {
	Record models.Record
	Score  float64
}

// GuestSearch finds bookings by guest name, tolerating accents and typos.
type GuestSearch struct {
	store *RecordStore
}

func NewGuestSearch(store *RecordStore) *GuestSearch {
	return &GuestSearch{store: store}
}

// Find returns matching bookings, best match first, then by room number.
func (g *GuestSearch) Find(query string) []GuestMatch {
	q := normalizeName(query)
	if q == "" {
		return nil
	}

	var matches []GuestMatch
	for _, rec := range g.store.List() {
		if score := nameScore(q, normalizeName(rec.Name)); score >= MinNameSimilarity {
			matches = append(matches, GuestMatch{Record: rec, Score: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Record.RoomNo < matches[j].Record.RoomNo
	})
	return matches
}

// Suggest returns the booked guest name closest to query, or "" with no guests.
func (g *GuestSearch) Suggest(query string) string {
	records := g.store.List()
	if len(records) == 0 {
		return ""
	}

	names := make([]string, 0, len(records))
	original := make(map[string]string, len(records))
	for _, rec := range records {
		n := normalizeName(rec.Name)
		if n == "" {
			continue
		}
		if _, ok := original[n]; !ok {
			names = append(names, n)
			original[n] = rec.Name
		}
	}
	if len(names) == 0 {
		return ""
	}

	cm := closestmatch.New(names, []int{2, 3})
	return original[cm.Closest(normalizeName(query))]
}

func normalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(unidecode.Unidecode(s)), " "))
}

// nameScore is 1 for an exact or substring hit, otherwise the best
// similarity of the query against the full name and each word of it.
func nameScore(query, name string) float64 {
	if name == "" {
		return 0
	}
	if strings.Contains(name, query) {
		return 1
	}
	best := similarity(query, name)
	for _, word := range strings.Fields(name) {
		if s := similarity(query, word); s > best {
			best = s
		}
	}
	return best
}

func similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	if maxLen == 0 {
		return 1
	}
	distance := levenshtein.DistanceForStrings(ra, rb, levenshtein.DefaultOptions)
	return 1 - float64(distance)/float64(maxLen)
}
