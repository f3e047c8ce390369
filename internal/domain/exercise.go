// Package domain contains the practice tracking model: exercises, sessions,
// session entries and weekly plans.
package domain

import (
	"fmt"
	"strings"
)

// Kind identifies the exercise variant
type Kind int

const (
	KindScale Kind = iota
	KindArpeggio
	KindSong
)

// String returns the category name for the kind
func (k Kind) String() string {
	switch k {
	case KindScale:
		return "Scale"
	case KindArpeggio:
		return "Arpeggio"
	case KindSong:
		return "Song"
	default:
		return "Unknown"
	}
}

// ParseKind converts a category name ("scale", "Arpeggio", ...) into a Kind
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scale":
		return KindScale, nil
	case "arpeggio":
		return KindArpeggio, nil
	case "song":
		return KindSong, nil
	default:
		return 0, invalidArg("category", fmt.Sprintf("unknown category %q", s))
	}
}

// ScaleDetail holds the fields specific to scale exercises
type ScaleDetail struct {
	ScaleName      string
	Key            string
	TargetTempoBpm int
}

// ArpeggioDetail holds the fields specific to arpeggio exercises
type ArpeggioDetail struct {
	ChordSymbol    string
	TargetTempoBpm int
}

// SongDetail holds the fields specific to song exercises
type SongDetail struct {
	SongTitle string
	Artist    string
}

// Exercise is a practice activity. Exactly one variant payload is set,
// selected by kind. Values are immutable once constructed.
type Exercise struct {
	name                string
	targetMinutesPerDay int
	kind                Kind

	scale    ScaleDetail
	arpeggio ArpeggioDetail
	song     SongDetail
}

// NewScale creates a scale exercise
func NewScale(name string, targetMinutesPerDay int, scaleName, key string, targetTempoBpm int) (Exercise, error) {
	if err := validateBase(name, targetMinutesPerDay); err != nil {
		return Exercise{}, err
	}
	if isBlank(scaleName) {
		return Exercise{}, invalidArg("scaleName", "must not be blank")
	}
	if isBlank(key) {
		return Exercise{}, invalidArg("key", "must not be blank")
	}
	if targetTempoBpm <= 0 {
		return Exercise{}, invalidArg("targetTempoBpm", "must be > 0")
	}

	return Exercise{
		name:                name,
		targetMinutesPerDay: targetMinutesPerDay,
		kind:                KindScale,
		scale: ScaleDetail{
			ScaleName:      scaleName,
			Key:            key,
			TargetTempoBpm: targetTempoBpm,
		},
	}, nil
}

// NewArpeggio creates an arpeggio exercise
func NewArpeggio(name string, targetMinutesPerDay int, chordSymbol string, targetTempoBpm int) (Exercise, error) {
	if err := validateBase(name, targetMinutesPerDay); err != nil {
		return Exercise{}, err
	}
	if isBlank(chordSymbol) {
		return Exercise{}, invalidArg("chordSymbol", "must not be blank")
	}
	if targetTempoBpm <= 0 {
		return Exercise{}, invalidArg("targetTempoBpm", "must be > 0")
	}

	return Exercise{
		name:                name,
		targetMinutesPerDay: targetMinutesPerDay,
		kind:                KindArpeggio,
		arpeggio: ArpeggioDetail{
			ChordSymbol:    chordSymbol,
			TargetTempoBpm: targetTempoBpm,
		},
	}, nil
}

// NewSong creates a song exercise
func NewSong(name string, targetMinutesPerDay int, songTitle, artist string) (Exercise, error) {
	if err := validateBase(name, targetMinutesPerDay); err != nil {
		return Exercise{}, err
	}
	if isBlank(songTitle) {
		return Exercise{}, invalidArg("songTitle", "must not be blank")
	}
	if isBlank(artist) {
		return Exercise{}, invalidArg("artist", "must not be blank")
	}

	return Exercise{
		name:                name,
		targetMinutesPerDay: targetMinutesPerDay,
		kind:                KindSong,
		song: SongDetail{
			SongTitle: songTitle,
			Artist:    artist,
		},
	}, nil
}

func validateBase(name string, targetMinutesPerDay int) error {
	if isBlank(name) {
		return invalidArg("name", "must not be blank")
	}
	if targetMinutesPerDay <= 0 {
		return invalidArg("targetMinutesPerDay", "must be > 0")
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Name returns the exercise name
func (e Exercise) Name() string { return e.name }

// TargetMinutesPerDay returns the daily practice goal
func (e Exercise) TargetMinutesPerDay() int { return e.targetMinutesPerDay }

// Kind returns the variant tag
func (e Exercise) Kind() Kind { return e.kind }

// Category returns "Scale", "Arpeggio" or "Song"
func (e Exercise) Category() string { return e.kind.String() }

// ScaleName returns the scale type, or "" for other variants
func (e Exercise) ScaleName() string { return e.scale.ScaleName }

// Key returns the musical key, or "" for other variants
func (e Exercise) Key() string { return e.scale.Key }

// ChordSymbol returns the arpeggio chord, or "" for other variants
func (e Exercise) ChordSymbol() string { return e.arpeggio.ChordSymbol }

// SongTitle returns the song title, or "" for other variants
func (e Exercise) SongTitle() string { return e.song.SongTitle }

// Artist returns the song artist, or "" for other variants
func (e Exercise) Artist() string { return e.song.Artist }

// TargetTempoBpm returns the target tempo for scales and arpeggios.
// Songs have no target tempo and return 0.
func (e Exercise) TargetTempoBpm() int {
	switch e.kind {
	case KindScale:
		return e.scale.TargetTempoBpm
	case KindArpeggio:
		return e.arpeggio.TargetTempoBpm
	default:
		return 0
	}
}

// Scale returns the scale payload and whether the exercise is a scale
func (e Exercise) Scale() (ScaleDetail, bool) {
	return e.scale, e.kind == KindScale
}

// Arpeggio returns the arpeggio payload and whether the exercise is an arpeggio
func (e Exercise) Arpeggio() (ArpeggioDetail, bool) {
	return e.arpeggio, e.kind == KindArpeggio
}

// Song returns the song payload and whether the exercise is a song
func (e Exercise) Song() (SongDetail, bool) {
	return e.song, e.kind == KindSong
}

// Summary returns a one-line description, e.g. "Scale: C Major @ 80 bpm"
func (e Exercise) Summary() string {
	switch e.kind {
	case KindScale:
		return fmt.Sprintf("Scale: %s %s @ %d bpm", e.scale.Key, e.scale.ScaleName, e.scale.TargetTempoBpm)
	case KindArpeggio:
		return fmt.Sprintf("Arpeggio: %s @ %d bpm", e.arpeggio.ChordSymbol, e.arpeggio.TargetTempoBpm)
	case KindSong:
		return fmt.Sprintf("Song: %s - %s", e.song.SongTitle, e.song.Artist)
	default:
		return e.kind.String()
	}
}
