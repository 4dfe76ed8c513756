package railnet

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/gareboard/gareboard/pkg/util"
	"github.com/rs/zerolog/log"
)

// ErrMalformedPayload is returned when a collaborator field is present but in
// no recognised shape. Decoders degrade the field to empty rather than failing
// the whole record.
var ErrMalformedPayload = errors.New("malformed collaborator payload")

// Collaborator records are loosely shaped: list fields can arrive as a native
// JSON array, a single scalar, or a JSON document encoded inside a string.
// unwrapEncodedString peels off the string layer so the decoders below only
// ever see the underlying document.
func unwrapEncodedString(data []byte) []byte {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return trimmed
	}

	var inner string
	if err := json.Unmarshal(trimmed, &inner); err != nil {
		return trimmed
	}

	return bytes.TrimSpace([]byte(inner))
}

func decodeScalarString(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return "", nil
	}

	switch data[0] {
	case '"':
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return "", ErrMalformedPayload
		}
		return strings.TrimSpace(value), nil
	case '[', '{':
		return "", ErrMalformedPayload
	default:
		// Bare number or boolean literal
		return string(data), nil
	}
}

func decodeStringList(data []byte) ([]string, error) {
	payload := unwrapEncodedString(data)
	if len(payload) == 0 || bytes.Equal(payload, []byte("null")) {
		return nil, nil
	}

	switch payload[0] {
	case '[':
		var rawItems []json.RawMessage
		if err := json.Unmarshal(payload, &rawItems); err != nil {
			return nil, ErrMalformedPayload
		}

		var values []string
		for _, item := range rawItems {
			value, err := decodeScalarString(item)
			if err != nil {
				return nil, ErrMalformedPayload
			}
			if value != "" {
				values = append(values, value)
			}
		}
		return values, nil
	case '{':
		return nil, ErrMalformedPayload
	default:
		value, err := decodeScalarString(payload)
		if err != nil || value == "" {
			return nil, err
		}
		if strings.Contains(value, ",") {
			var values []string
			for _, part := range strings.Split(value, ",") {
				if part = strings.TrimSpace(part); part != "" {
					values = append(values, part)
				}
			}
			return values, nil
		}
		return []string{value}, nil
	}
}

// FlexStrings decodes jours_impact style fields - array, single scalar or
// JSON-encoded string all become a plain string slice.
type FlexStrings []string

func (f *FlexStrings) UnmarshalJSON(data []byte) error {
	values, err := decodeStringList(data)
	if err != nil {
		log.Warn().Str("payload", util.TrimString(string(data), 80)).Msg("Discarding malformed string list")
		*f = nil
		return nil
	}

	*f = values
	return nil
}

// FlexMinutes decodes a delay that can arrive as a number or a numeric
// string. Anything that is not a finite number degrades to 0.
type FlexMinutes int

func (m *FlexMinutes) UnmarshalJSON(data []byte) error {
	value, err := decodeScalarString(data)
	if err != nil || value == "" || value == "null" {
		*m = 0
		return nil
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Warn().Str("payload", util.TrimString(string(data), 80)).Msg("Discarding malformed delay value")
		*m = 0
		return nil
	}

	*m = FlexMinutes(int(parsed))
	return nil
}

// StopList decodes the stops field of a schedule entry - array of stop
// objects, a single stop object, or either encoded inside a string.
type StopList []Stop

func (s *StopList) UnmarshalJSON(data []byte) error {
	payload := unwrapEncodedString(data)
	if len(payload) == 0 || bytes.Equal(payload, []byte("null")) {
		*s = nil
		return nil
	}

	switch payload[0] {
	case '[':
		var stops []Stop
		if err := json.Unmarshal(payload, &stops); err != nil {
			break
		}
		*s = stops
		return nil
	case '{':
		var stop Stop
		if err := json.Unmarshal(payload, &stop); err != nil {
			break
		}
		*s = []Stop{stop}
		return nil
	}

	log.Warn().Str("payload", util.TrimString(string(data), 80)).Msg("Discarding malformed stops payload")
	*s = nil
	return nil
}

// ChangeList decodes parcours_changes with the same tolerance as StopList.
type ChangeList []ItineraryChange

func (c *ChangeList) UnmarshalJSON(data []byte) error {
	payload := unwrapEncodedString(data)
	if len(payload) == 0 || bytes.Equal(payload, []byte("null")) {
		*c = nil
		return nil
	}

	switch payload[0] {
	case '[':
		var changes []ItineraryChange
		if err := json.Unmarshal(payload, &changes); err != nil {
			break
		}
		*c = changes
		return nil
	case '{':
		var change ItineraryChange
		if err := json.Unmarshal(payload, &change); err != nil {
			break
		}
		*c = []ItineraryChange{change}
		return nil
	}

	log.Warn().Str("payload", util.TrimString(string(data), 80)).Msg("Discarding malformed parcours_changes payload")
	*c = nil
	return nil
}

// PlatformMap decodes attribution_quais - station code to platform, possibly
// JSON-encoded inside a string, with scalar values of any JSON type.
type PlatformMap map[string]string

func (p *PlatformMap) UnmarshalJSON(data []byte) error {
	payload := unwrapEncodedString(data)
	if len(payload) == 0 || bytes.Equal(payload, []byte("null")) {
		*p = nil
		return nil
	}

	if payload[0] == '{' {
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(payload, &raw); err == nil {
			assignments := PlatformMap{}
			for code, value := range raw {
				platform, err := decodeScalarString(value)
				if err != nil {
					continue
				}
				if platform != "" {
					assignments[strings.ToUpper(code)] = platform
				}
			}
			*p = assignments
			return nil
		}
	}

	log.Warn().Str("payload", util.TrimString(string(data), 80)).Msg("Discarding malformed attribution_quais payload")
	*p = nil
	return nil
}
