// SPDX-License-Identifier: MIT
// Package: lvhelix/catalog
//
// types.go - one metadata record per strand count.

package catalog

// Entry describes one strand configuration. Scientific fields are always
// present; the esoteric fields are empty for fallback entries.
type Entry struct {
	Strands  int    `yaml:"strands"`
	Name     string `yaml:"name"`
	Subtitle string `yaml:"subtitle"`
	Accent   string `yaml:"accent"` // palette name used for navigation badges

	// Scientific properties.
	ScientificType string `yaml:"scientific_type"`
	HelixTurn      string `yaml:"helix_turn"`
	Diameter       string `yaml:"diameter"`
	ScientificNote string `yaml:"scientific_note"`

	// Spiritual properties.
	SpiritualType    string `yaml:"spiritual_type"`
	Dimensions       string `yaml:"dimensions"`
	HarmonicUniverse string `yaml:"harmonic_universe"`
	Chakras          string `yaml:"chakras"`
	Consciousness    string `yaml:"consciousness"`

	Description        string   `yaml:"description"`
	KeyPoints          []string `yaml:"key_points"`
	AscensionGlossary  string   `yaml:"ascension_glossary"`
	EnergeticSynthesis string   `yaml:"energetic_synthesis"`
	Activation         string   `yaml:"activation"`

	// Fallback is true when the entry was synthesized by Lookup.
	Fallback bool `yaml:"-"`
}

// HasSpiritual reports whether the entry carries the esoteric panel fields.
func (e Entry) HasSpiritual() bool {
	return e.SpiritualType != "" || e.Dimensions != "" || e.Chakras != ""
}
