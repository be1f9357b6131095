package curriculum

import (
	"fmt"
	"strings"
)

const plannerSystemPrompt = `You are an expert technical curriculum designer. You plan short, focused video learning paths for professionals.`

func buildPlannerUserMessage(topic string, level Level) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Plan a 3-step video learning path for '%s' tailored to a '%s' learner.\n", topic, level))

	b.WriteString(`
STRICT RULES FOR CURRICULUM DESIGN:
1. IF LEVEL = 'Low' (Beginner):
   - Step 1: Core Fundamentals & "How it works"
   - Step 2: Practical Implementation (Code/Examples)
   - Step 3: Best Practices & Common Pitfalls

2. IF LEVEL = 'Medium' (Intermediate):
   - Step 1: Deep Dive into Internals/Architecture (Skip basics)
   - Step 2: Advanced Patterns or Real-world Case Studies
   - Step 3: Performance Tuning or Production Readiness

3. IF LEVEL = 'High' (Expert):
   - Step 1: Advanced architectural trade-offs & System Design
   - Step 2: Extreme Optimization, niche edge-cases, or source-code analysis
   - Step 3: Future trends, Research papers, or Novel approaches
`)

	b.WriteString(fmt.Sprintf(`
OUTPUT FORMAT:
Return a valid JSON LIST of 3 objects. Do not include markdown formatting.
Each object has:
- "step_title": concise title
- "focus": exact video search query (include 'advanced', 'deep dive', 'tutorial' etc based on level)
- "level": "%s"
- "goal": specific learning outcome`, level))

	return b.String()
}
