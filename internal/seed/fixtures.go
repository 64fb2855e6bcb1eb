package seed

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yml
var fixturesYAML []byte

// Palette is a curated style preset applied to seeded posts.
type Palette struct {
	BackgroundColor string `yaml:"background_color"`
	TextColor       string `yaml:"text_color"`
	FontFamily      string `yaml:"font_family"`
}

// MoodPreset is a curated emoji/label pair for seeded moods.
type MoodPreset struct {
	Emoji string `yaml:"emoji"`
	Label string `yaml:"label"`
}

// Fixtures holds the curated seed content shipped with the binary.
type Fixtures struct {
	Palettes  []Palette    `yaml:"palettes"`
	Tags      []string     `yaml:"tags"`
	Moods     []MoodPreset `yaml:"moods"`
	MusicURLs []string     `yaml:"music_urls"`
}

var (
	fixturesOnce sync.Once
	fixturesData Fixtures
	fixturesErr  error
)

// LoadFixtures parses the embedded fixture file once and caches the result.
func LoadFixtures() (Fixtures, error) {
	fixturesOnce.Do(func() {
		if err := yaml.Unmarshal(fixturesYAML, &fixturesData); err != nil {
			fixturesErr = fmt.Errorf("parse embedded fixtures: %w", err)
			return
		}
		if len(fixturesData.Palettes) == 0 {
			fixturesErr = fmt.Errorf("embedded fixtures define no palettes")
		}
	})
	return fixturesData, fixturesErr
}
