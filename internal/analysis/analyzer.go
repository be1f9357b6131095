// Package analysis derives coarse textual-quality signals for a candidate
// video from whatever descriptive text is available. It is pure: no I/O,
// no failure mode, same input always yields the same output.
package analysis

import "strings"

// Depth and noise share one coarse scale.
const (
	GradeLow    = "Low"
	GradeMedium = "Medium"
	GradeHigh   = "High"
)

// Result holds the derived signals for one video.
type Result struct {
	VideoID       string
	ConceptFlow   []string
	Depth         string
	ClarityRating float64
	HasExamples   bool
	NoiseLevel    string
}

// defaultConceptFlow is a fixed placeholder: real flow extraction would
// need the transcript, which this stage does not fetch.
var defaultConceptFlow = []string{"Introduction", "Theory", "Application", "Conclusion"}

// Analyze derives signals from the video's metadata text.
//
// Rules: depth is High past 500 characters; clarity is 9.0 when the text
// mentions "tutorial" or "guide" (any case), 7.5 otherwise; example
// presence is a substring check; noise stays Low under 2000 characters.
func Analyze(videoID, metadataText string) Result {
	lower := strings.ToLower(metadataText)
	textLen := len(metadataText)

	depth := GradeMedium
	if textLen > 500 {
		depth = GradeHigh
	}

	clarity := 7.5
	if strings.Contains(lower, "tutorial") || strings.Contains(lower, "guide") {
		clarity = 9.0
	}

	noise := GradeMedium
	if textLen < 2000 {
		noise = GradeLow
	}

	return Result{
		VideoID:       videoID,
		ConceptFlow:   defaultConceptFlow,
		Depth:         depth,
		ClarityRating: clarity,
		HasExamples:   strings.Contains(lower, "example"),
		NoiseLevel:    noise,
	}
}
