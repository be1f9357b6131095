package enhance

import "fmt"

// FallbackPack is the deterministic content pack used when the generative
// path is unavailable or returns something unusable. Templated only on the
// video title so it is stable and testable.
func FallbackPack(title string) ContentPack {
	return ContentPack{
		BriefSummary: fmt.Sprintf(
			"This module provides a critical deep dive into the technical frameworks and operational standards of %s.", title),
		PreLearningChecklist: []string{
			"Verify local development environment settings.",
			"Review the architectural overview presented in Module 01.",
			"Dedicate 20 minutes for high-retention learning.",
		},
		TestQuestions: []QuizQuestion{
			{
				Question: fmt.Sprintf(
					"Which core principle of %s is most emphasized for professional scalability?", title),
				Options: []string{
					"Decoupled architecture",
					"Monolithic integration",
					"Manual state management",
					"Client-side only rendering",
				},
				CorrectIndex: 0,
			},
		},
		MentalModel: "Think of it as the central nervous system of a complex technical ecosystem.",
	}
}
