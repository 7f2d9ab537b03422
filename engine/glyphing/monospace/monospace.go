package monospace

import (
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
)

var setupClasses sync.Once

func graphemeSplitter(text string) *segment.Segmenter {
	setupClasses.Do(func() {
		grapheme.SetupGraphemeClasses()
	})
	onGraphemes := grapheme.NewBreaker(1)
	splitter := segment.NewSegmenter(onGraphemes)
	splitter.Init(strings.NewReader(text))
	return splitter
}

// Graphemes splits a text into grapheme clusters, i.e. user-perceived
// characters.
func Graphemes(text string) []string {
	if text == "" {
		return nil
	}
	splitter := graphemeSplitter(text)
	var clusters []string
	for splitter.Next() {
		clusters = append(clusters, string(splitter.Bytes()))
	}
	return clusters
}

// Count returns the number of grapheme clusters in text. It is the number of
// em-squares the text occupies when set top to bottom.
func Count(text string) int {
	if text == "" {
		return 0
	}
	splitter := graphemeSplitter(text)
	n := 0
	for splitter.Next() {
		n++
	}
	return n
}

// Width returns the width of text set left to right, in half-em units.
func Width(text string) int {
	if text == "" {
		return 0
	}
	splitter := graphemeSplitter(text)
	w := 0
	for splitter.Next() {
		w += uax11.Width(splitter.Bytes(), uax11.LatinContext)
	}
	tracer().Debugf("width of %q = %d", text, w)
	return w
}
