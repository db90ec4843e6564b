package whatsapp

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultBaseURL is the click-to-chat endpoint
const DefaultBaseURL = "https://wa.me"

// Linker builds pre-filled chat links to a single destination number
type Linker struct {
	baseURL string
	number  string
}

// NewLinker creates a Linker for number, which is normalised to
// international digits using countryCode
func NewLinker(baseURL, number, countryCode string) (*Linker, error) {
	// Normalize base URL - drop trailing slashes
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	digits, err := NormalizeNumber(number, countryCode)
	if err != nil {
		return nil, err
	}

	return &Linker{
		baseURL: baseURL,
		number:  digits,
	}, nil
}

// Number returns the destination in international digit form
func (l *Linker) Number() string {
	return l.number
}

// Link returns the deep link that opens a chat with message pre-filled
func (l *Linker) Link(message string) string {
	return fmt.Sprintf("%s/%s?text=%s", l.baseURL, l.number, EncodeComponent(message))
}

// NormalizeNumber rewrites a phone number into the digits-only
// international form used in chat links. A leading "+" or "00" marks an
// already international number; national numbers are read in the region
// that owns countryCode. With no countryCode every number is taken as
// international. Numbers that do not match the region's numbering plan are
// rejected.
func NormalizeNumber(raw, countryCode string) (string, error) {
	raw = strings.TrimSpace(raw)

	region, err := regionFor(countryCode)
	if err != nil {
		return "", err
	}
	if region == unknownRegion && !strings.HasPrefix(raw, "+") {
		raw = "+" + strings.TrimPrefix(raw, "00")
	}

	num, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return "", fmt.Errorf("parse number %q: %w", raw, err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("number %q is not a valid phone number", raw)
	}
	return strings.TrimPrefix(phonenumbers.Format(num, phonenumbers.E164), "+"), nil
}

const unknownRegion = "ZZ"

func regionFor(countryCode string) (string, error) {
	cc := strings.TrimPrefix(strings.TrimSpace(countryCode), "+")
	if cc == "" {
		return unknownRegion, nil
	}
	code, err := strconv.Atoi(cc)
	if err != nil {
		return "", fmt.Errorf("invalid country code %q", countryCode)
	}
	region := phonenumbers.GetRegionCodeForCountryCode(code)
	if region == unknownRegion {
		return "", fmt.Errorf("unknown country code %q", countryCode)
	}
	return region, nil
}
