package railnet

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stationNameNormaliser = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormaliseStationName strips diacritics, lowercases and collapses every run
// of punctuation or whitespace to a single space, so "Dijon-Ville" and
// "dijon ville" compare equal.
func NormaliseStationName(name string) string {
	stripped, _, err := transform.String(stationNameNormaliser, name)
	if err != nil {
		stripped = name
	}

	stripped = strings.ToLower(stripped)
	stripped = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, stripped)

	return strings.Join(strings.Fields(stripped), " ")
}

func sameStationName(a string, b string) bool {
	normalisedA := NormaliseStationName(a)
	normalisedB := NormaliseStationName(b)

	if normalisedA == "" || normalisedB == "" {
		return false
	}

	if normalisedA == normalisedB {
		return true
	}

	// Collaborators sometimes store partial forms ("Dijon" for
	// "Dijon-Ville"), so one name being contained in the other counts too
	return strings.Contains(normalisedA, normalisedB) || strings.Contains(normalisedB, normalisedA)
}

// SameStation reports whether two loose references point at the same
// station: matching id, matching code (case-insensitive) or matching
// normalised name.
func SameStation(a StationRef, b StationRef) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return false
	}

	if a.ID != 0 && b.ID != 0 && a.ID == b.ID {
		return true
	}

	if a.Code != "" && b.Code != "" && strings.EqualFold(a.Code, b.Code) {
		return true
	}

	return sameStationName(a.Name, b.Name)
}

// SameStationStrict compares with the dedup priority - id decides when both
// are present, else code, else normalised name. Unlike SameStation, two
// records with conflicting ids are never merged even if their codes agree.
func SameStationStrict(a StationRef, b StationRef) bool {
	if a.ID != 0 && b.ID != 0 {
		return a.ID == b.ID
	}

	if a.Code != "" && b.Code != "" {
		return strings.EqualFold(a.Code, b.Code)
	}

	return sameStationName(a.Name, b.Name)
}
