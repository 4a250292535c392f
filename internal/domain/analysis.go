package domain

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
	DifficultyExpert Difficulty = "Expert"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExpert:
		return true
	default:
		return false
	}
}

// IssueAnalysis is the structured suggestion produced from free-form issue
// text: a proposed title, a one-sentence summary, a fair USDC price, a
// difficulty rating and a few technical tags.
type IssueAnalysis struct {
	Title          string
	Summary        string
	SuggestedPrice int
	Difficulty     Difficulty
	Tags           []string
}

// FallbackAnalysis is the suggestion used when automatic analysis is
// unavailable or fails. The creation form is never blocked on the analyzer.
func FallbackAnalysis() IssueAnalysis {
	return IssueAnalysis{
		Title:          "New Bounty",
		Summary:        "Could not analyze automatically. Please set details manually.",
		SuggestedPrice: 50,
		Difficulty:     DifficultyMedium,
		Tags:           []string{"Manual"},
	}
}
