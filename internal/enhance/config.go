package enhance

// descriptionContextLimit caps how much of the video description goes into
// the prompt. Descriptions routinely carry sponsor blocks and link dumps
// past this point.
const descriptionContextLimit = 1000

// Config holds enhancement generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for content enhancement.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1536,
		Temperature: 0.5,
	}
}
