package enhance

import (
	"fmt"
	"strings"

	"github.com/learnlens/learnlens/internal/discovery"
)

const enhancerSystemPrompt = `You are a professional educational technical editor. You produce crisp, non-fluffy learning aids for engineering videos.`

func buildEnhancerUserMessage(video discovery.VideoCandidate) string {
	context := video.Description
	if len(context) > descriptionContextLimit {
		context = context[:descriptionContextLimit]
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("Video: %s\n", video.Title))
	b.WriteString(fmt.Sprintf("Context: %s\n", context))

	b.WriteString(`
Generate a JSON object with:
1. "brief_summary": A crisp, non-fluffy 2-sentence summary of the skill taught.
2. "pre_learning_checklist": 3 precise prerequisite tasks.
3. "test_questions": 2 high-quality MCQs.
   EACH question must have: "question", "options" (list of 4), and "correct_index" (integer 0-3).
4. "mental_model": A powerful 1-sentence engineering analogy.

Ensure the JSON is perfectly formatted. No markdown.`)

	return b.String()
}
