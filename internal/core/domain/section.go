package domain

import (
	"fmt"
	"strings"
)

// Section identifies one of the dashboard sections.
// The set is fixed; navigation always offers exactly these five.
type Section int

// Dashboard sections in menu order.
const (
	SectionOverview Section = iota
	SectionCleaning
	SectionSurvival
	SectionCorrelation
	SectionAdditional
)

var sectionLabels = [...]string{
	SectionOverview:    "Dataset Overview",
	SectionCleaning:    "Data Cleaning",
	SectionSurvival:    "Survival Analysis",
	SectionCorrelation: "Correlation Analysis",
	SectionAdditional:  "Additional Analysis",
}

var sectionSlugs = [...]string{
	SectionOverview:    "overview",
	SectionCleaning:    "cleaning",
	SectionSurvival:    "survival",
	SectionCorrelation: "correlation",
	SectionAdditional:  "additional",
}

// Sections returns all sections in menu order.
func Sections() []Section {
	return []Section{
		SectionOverview,
		SectionCleaning,
		SectionSurvival,
		SectionCorrelation,
		SectionAdditional,
	}
}

// IsValid returns true if the section is one of the known sections.
func (s Section) IsValid() bool {
	return s >= SectionOverview && s <= SectionAdditional
}

// String returns the case-sensitive navigation label.
func (s Section) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("Section(%d)", int(s))
	}
	return sectionLabels[s]
}

// Slug returns the short identifier used by non-interactive surfaces.
func (s Section) Slug() string {
	if !s.IsValid() {
		return ""
	}
	return sectionSlugs[s]
}

// Next returns the following section, wrapping around.
func (s Section) Next() Section {
	return Section((int(s) + 1) % len(sectionLabels))
}

// Prev returns the preceding section, wrapping around.
func (s Section) Prev() Section {
	n := len(sectionLabels)
	return Section((int(s) - 1 + n) % n)
}

// ParseSection resolves a navigation label or slug. Labels are matched
// exactly; slugs are matched case-insensitively.
func ParseSection(v string) (Section, error) {
	for _, s := range Sections() {
		if v == s.String() {
			return s, nil
		}
	}
	lower := strings.ToLower(strings.TrimSpace(v))
	for _, s := range Sections() {
		if lower == s.Slug() {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSection, v)
}

// MarshalText encodes the section as its slug.
func (s Section) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSection, int(s))
	}
	return []byte(s.Slug()), nil
}

// UnmarshalText decodes a label or slug.
func (s *Section) UnmarshalText(b []byte) error {
	parsed, err := ParseSection(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
