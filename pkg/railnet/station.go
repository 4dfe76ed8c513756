package railnet

import (
	"strconv"
	"strings"
	"unicode"
)

// Station is immutable reference data. The numeric id is authoritative, the
// short code (3-4 letters) is a secondary key and the display name a
// fallback key.
type Station struct {
	ID   int64  `json:"id" groups:"basic,detailed"`
	Name string `json:"nom" groups:"basic,detailed"`
	Code string `json:"code" groups:"basic,detailed"`
}

// StationRef is a loose reference to a station as collaborators provide it -
// any subset of id, code and name may be filled in.
type StationRef struct {
	ID   int64  `json:"id,omitempty" groups:"detailed"`
	Code string `json:"code,omitempty" groups:"detailed"`
	Name string `json:"nom,omitempty" groups:"detailed"`
}

func (ref StationRef) IsEmpty() bool {
	return ref.ID == 0 && ref.Code == "" && ref.Name == ""
}

// ParseStationIdentifier turns a user-supplied identifier into a loose
// reference: a number is an id, a 3-4 letter token doubles as a short code,
// anything else is matched by name.
func ParseStationIdentifier(identifier string) StationRef {
	identifier = strings.TrimSpace(identifier)

	if id, err := strconv.ParseInt(identifier, 10, 64); err == nil {
		return StationRef{ID: id}
	}

	ref := StationRef{Name: identifier}

	if length := len([]rune(identifier)); length >= 3 && length <= 4 {
		allLetters := true
		for _, r := range identifier {
			if !unicode.IsLetter(r) {
				allLetters = false
				break
			}
		}

		if allLetters {
			ref.Code = identifier
		}
	}

	return ref
}

// Directory indexes the station list by id and by uppercased code. It is
// rebuilt wholesale on refresh and never mutated in place.
type Directory struct {
	stations    []Station
	namesByID   map[int64]string
	namesByCode map[string]string
}

func NewDirectory(stations []Station) *Directory {
	directory := &Directory{
		stations:    stations,
		namesByID:   map[int64]string{},
		namesByCode: map[string]string{},
	}

	for _, station := range stations {
		if station.ID != 0 {
			directory.namesByID[station.ID] = station.Name
		}
		if station.Code != "" {
			directory.namesByCode[strings.ToUpper(station.Code)] = station.Name
		}
	}

	return directory
}

func (d *Directory) Stations() []Station {
	return d.stations
}

// ResolveName normalises a loose reference to a canonical display name.
// Resolution order: explicit name, code lookup, id lookup, then the raw code
// as a last resort. An unresolved reference never blocks board computation -
// the caller just shows whatever label we could find.
func (d *Directory) ResolveName(ref StationRef) string {
	if ref.Name != "" {
		return ref.Name
	}

	if ref.Code != "" {
		if name := d.namesByCode[strings.ToUpper(ref.Code)]; name != "" {
			return name
		}
	}

	if ref.ID != 0 {
		if name := d.namesByID[ref.ID]; name != "" {
			return name
		}
	}

	return ref.Code
}

// Canonicalise fills in the missing identity fields of a reference from the
// directory so it can be used as an equality key.
func (d *Directory) Canonicalise(ref StationRef) StationRef {
	for _, station := range d.stations {
		if SameStation(ref, StationRef{ID: station.ID, Code: station.Code, Name: station.Name}) {
			return StationRef{ID: station.ID, Code: station.Code, Name: station.Name}
		}
	}

	return ref
}
