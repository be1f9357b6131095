package curriculum

import "fmt"

// FallbackPath returns the deterministic curriculum skeleton for a level.
// The three known levels each carry their own progression; anything else
// gets a mixed Low→Medium→High path.
func FallbackPath(topic string, level Level) []Step {
	switch level {
	case LevelLow:
		return []Step{
			{
				StepTitle: fmt.Sprintf("%s Basics", topic),
				Focus:     fmt.Sprintf("%s for beginners tutorial", topic),
				Level:     LevelLow,
				Goal:      "Understand core concepts.",
			},
			{
				StepTitle: fmt.Sprintf("%s First Project", topic),
				Focus:     fmt.Sprintf("%s simple project walkthrough", topic),
				Level:     LevelLow,
				Goal:      "Apply basics practical.",
			},
			{
				StepTitle: fmt.Sprintf("%s Common Mistakes", topic),
				Focus:     fmt.Sprintf("%s best practices for beginners", topic),
				Level:     LevelLow,
				Goal:      "Avoid early pitfalls.",
			},
		}
	case LevelMedium:
		return []Step{
			{
				StepTitle: fmt.Sprintf("%s Intermediate Concepts", topic),
				Focus:     fmt.Sprintf("%s intermediate tutorial", topic),
				Level:     LevelMedium,
				Goal:      "Deepen technical understanding.",
			},
			{
				StepTitle: fmt.Sprintf("%s Advanced Patterns", topic),
				Focus:     fmt.Sprintf("%s advanced patterns", topic),
				Level:     LevelMedium,
				Goal:      "Learn professional standards.",
			},
			{
				StepTitle: fmt.Sprintf("%s Performance", topic),
				Focus:     fmt.Sprintf("%s performance optimization", topic),
				Level:     LevelMedium,
				Goal:      "Optimize for scale.",
			},
		}
	case LevelHigh:
		return []Step{
			{
				StepTitle: fmt.Sprintf("%s Expert Internals", topic),
				Focus:     fmt.Sprintf("%s deep dive internal architecture", topic),
				Level:     LevelHigh,
				Goal:      "Master system internals.",
			},
			{
				StepTitle: fmt.Sprintf("%s Scaling Strategies", topic),
				Focus:     fmt.Sprintf("%s scaling at large scale conference", topic),
				Level:     LevelHigh,
				Goal:      "Handle enterprise loads.",
			},
			{
				StepTitle: fmt.Sprintf("%s Future Trends", topic),
				Focus:     fmt.Sprintf("%s future features roadmap", topic),
				Level:     LevelHigh,
				Goal:      "Stay ahead of the curve.",
			},
		}
	}

	// Unrecognized level: mixed progression spanning all three.
	return []Step{
		{
			StepTitle: fmt.Sprintf("%s Foundations", topic),
			Focus:     fmt.Sprintf("%s core fundamentals", topic),
			Level:     LevelLow,
			Goal:      "Establish foundational principles.",
		},
		{
			StepTitle: fmt.Sprintf("%s Architecture", topic),
			Focus:     fmt.Sprintf("%s architecture", topic),
			Level:     LevelMedium,
			Goal:      "Master complex implementations.",
		},
		{
			StepTitle: fmt.Sprintf("%s Optimization", topic),
			Focus:     fmt.Sprintf("%s optimization", topic),
			Level:     LevelHigh,
			Goal:      "Achieve industry-standard mastery.",
		},
	}
}
