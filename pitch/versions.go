// Package pitch holds the slide content of the TAGO Leap pitch deck. Each
// revision is a fixed sequence of slides built from deck primitives.
package pitch

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tsawler/pitchdeck/deck"
	"github.com/tsawler/pitchdeck/model"
)

// ErrUnknownVersion is returned by Lookup for an unregistered name.
var ErrUnknownVersion = errors.New("unknown deck version")

// DefaultOutput is where the first revision is saved when no path is given.
const DefaultOutput = "/Users/kevinapetrei/hyperstack/TAGO_Leap_Pitch_Deck.pptx"

// Version describes one revision of the deck.
type Version struct {
	Name       string
	Slides     int
	OutputPath string
	Background model.Color
	Options    []deck.Option
	AddSlides  func(*deck.Builder)

	// Summary lines printed after a successful save.
	Summary []string
}

func metadata(subject string) model.Metadata {
	return model.Metadata{
		Title:    "TAGO Leap",
		Author:   "TAGO Leap",
		Subject:  subject,
		Keywords: []string{"Hyperliquid", "PEAR", "LIFI", "SALT", "narrative trading"},
	}
}

// Versions maps a version name to its definition.
var Versions = map[string]Version{
	"v1": {
		Name:       "v1",
		Slides:     11,
		OutputPath: DefaultOutput,
		Background: deck.Black,
		Options: []deck.Option{
			deck.WithBadgeWidth(deck.BadgeWidth),
			deck.WithCardRadius(0),
			deck.WithMetadata(metadata("Hyperstack Hackathon 2025 pitch")),
		},
		AddSlides: BuildV1,
	},
	"v2": {
		Name:       "v2",
		Slides:     12,
		OutputPath: "/Users/kevinapetrei/hyperstack/TAGO_Leap_Pitch_Deck_v2.pptx",
		Background: deck.NearBlack,
		Options: []deck.Option{
			deck.WithBadgeWidth(deck.WideBadgeWidth),
			deck.WithCardRadius(deck.DefaultCardRadius),
			deck.WithMetadata(metadata("Hyperstack Hackathon 2025 pitch, revised")),
		},
		AddSlides: BuildV2,
		Summary: []string{
			"12 slides including a new Roadmap slide",
			"Black and yellow palette on a near-black background",
			"Two-tone headings with italic yellow accents",
			"Cards with widened rounded corners",
			"Stat boxes and flow diagrams for key figures",
		},
	},
}

// Lookup returns the version registered under name.
func Lookup(name string) (Version, error) {
	v, ok := Versions[name]
	if !ok {
		return Version{}, fmt.Errorf("%w %q (have %v)", ErrUnknownVersion, name, Names())
	}
	return v, nil
}

// Names returns the registered version names in order.
func Names() []string {
	names := make([]string, 0, len(Versions))
	for name := range Versions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build creates a builder with the version's options followed by opts, adds
// every slide and checks the slide count.
func (v Version) Build(opts ...deck.Option) (*deck.Builder, error) {
	all := make([]deck.Option, 0, len(v.Options)+len(opts))
	all = append(all, v.Options...)
	all = append(all, opts...)

	b, err := deck.New(all...)
	if err != nil {
		return nil, err
	}
	v.AddSlides(b)

	if n := b.Document().SlideCount(); n != v.Slides {
		return nil, fmt.Errorf("version %s: built %d slides, want %d", v.Name, n, v.Slides)
	}
	return b, nil
}
