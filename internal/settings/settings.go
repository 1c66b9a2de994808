// Package settings holds the storefront's site settings, one record type per section.
package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// SectionName identifies a settings section
type SectionName string

const (
	SectionStore    SectionName = "store"
	SectionShipping SectionName = "shipping"
	SectionSocial   SectionName = "social"
	SectionSEO      SectionName = "seo"
)

// Names lists every section in display order
var Names = []SectionName{SectionStore, SectionShipping, SectionSocial, SectionSEO}

var (
	// ErrUnknownSection is returned for a section name that does not exist
	ErrUnknownSection = errors.New("unknown settings section")
	// ErrInvalid wraps validation failures
	ErrInvalid = errors.New("invalid settings")
)

// Section is implemented by every settings record
type Section interface {
	Name() SectionName
	Validate() error
}

// StoreSettings is the storefront identity
type StoreSettings struct {
	StoreName     string `json:"storeName"`
	StoreNameAr   string `json:"storeNameAr,omitempty"`
	ContactEmail  string `json:"contactEmail"`
	ContactPhone  string `json:"contactPhone,omitempty"`
	Address       string `json:"address,omitempty"`
	Currency      string `json:"currency"`
	Timezone      string `json:"timezone,omitempty"`
	DefaultLocale string `json:"defaultLocale"`
}

// ShippingSettings configures delivery fees
type ShippingSettings struct {
	FlatRate              float64  `json:"flatRate"`
	FreeShippingThreshold float64  `json:"freeShippingThreshold"`
	EstimatedDaysMin      int      `json:"estimatedDaysMin"`
	EstimatedDaysMax      int      `json:"estimatedDaysMax"`
	Regions               []string `json:"regions"`
}

// SocialSettings holds profile links
type SocialSettings struct {
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	Pinterest string `json:"pinterest,omitempty"`
	WhatsApp  string `json:"whatsapp,omitempty"`
}

// SEOSettings holds default meta tags
type SEOSettings struct {
	MetaTitle       string   `json:"metaTitle"`
	MetaDescription string   `json:"metaDescription"`
	Keywords        []string `json:"keywords"`
	OGImage         string   `json:"ogImage,omitempty"`
}

func (StoreSettings) Name() SectionName    { return SectionStore }
func (ShippingSettings) Name() SectionName { return SectionShipping }
func (SocialSettings) Name() SectionName   { return SectionSocial }
func (SEOSettings) Name() SectionName      { return SectionSEO }

var (
	currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)
	emailPattern    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Validate checks the currency code and contact email
func (s StoreSettings) Validate() error {
	if strings.TrimSpace(s.StoreName) == "" {
		return fmt.Errorf("%w: storeName is required", ErrInvalid)
	}
	if !currencyPattern.MatchString(s.Currency) {
		return fmt.Errorf("%w: currency must be a 3-letter ISO code, got %q", ErrInvalid, s.Currency)
	}
	if s.ContactEmail != "" && !emailPattern.MatchString(s.ContactEmail) {
		return fmt.Errorf("%w: contactEmail %q is not an email address", ErrInvalid, s.ContactEmail)
	}
	return nil
}

// Validate checks that amounts and delivery estimates are non-negative and ordered
func (s ShippingSettings) Validate() error {
	if s.FlatRate < 0 {
		return fmt.Errorf("%w: flatRate must not be negative", ErrInvalid)
	}
	if s.FreeShippingThreshold < 0 {
		return fmt.Errorf("%w: freeShippingThreshold must not be negative", ErrInvalid)
	}
	if s.EstimatedDaysMin < 0 || s.EstimatedDaysMax < s.EstimatedDaysMin {
		return fmt.Errorf("%w: estimated delivery days must satisfy 0 <= min <= max", ErrInvalid)
	}
	return nil
}

// Validate checks that every link is an absolute http(s) URL
func (s SocialSettings) Validate() error {
	links := map[string]string{
		"instagram": s.Instagram,
		"facebook":  s.Facebook,
		"twitter":   s.Twitter,
		"tiktok":    s.TikTok,
		"pinterest": s.Pinterest,
		"whatsapp":  s.WhatsApp,
	}
	for field, link := range links {
		if link == "" {
			continue
		}
		if !strings.HasPrefix(link, "https://") && !strings.HasPrefix(link, "http://") {
			return fmt.Errorf("%w: %s must be an http(s) URL", ErrInvalid, field)
		}
	}
	return nil
}

// Validate enforces search-engine length limits
func (s SEOSettings) Validate() error {
	if len([]rune(s.MetaTitle)) > 70 {
		return fmt.Errorf("%w: metaTitle must be at most 70 characters", ErrInvalid)
	}
	if len([]rune(s.MetaDescription)) > 160 {
		return fmt.Errorf("%w: metaDescription must be at most 160 characters", ErrInvalid)
	}
	return nil
}

// ParseName resolves a section name
func ParseName(name string) (SectionName, error) {
	n := SectionName(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Names {
		if n == known {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, name)
}

// Defaults returns the section with its initial values
func Defaults(name SectionName) (Section, error) {
	switch name {
	case SectionStore:
		return &StoreSettings{StoreName: "Verdante", Currency: "SAR", DefaultLocale: "en"}, nil
	case SectionShipping:
		return &ShippingSettings{EstimatedDaysMin: 2, EstimatedDaysMax: 5, Regions: []string{}}, nil
	case SectionSocial:
		return &SocialSettings{}, nil
	case SectionSEO:
		return &SEOSettings{Keywords: []string{}}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, name)
	}
}

// Decode unmarshals raw JSON into the typed section, starting from its defaults.
// Unknown fields are rejected.
func Decode(name SectionName, raw []byte) (Section, error) {
	section, err := Defaults(name)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(section); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, name, err)
	}
	return section, nil
}
