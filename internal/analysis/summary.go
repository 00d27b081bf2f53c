package analysis

import "math"

const (
	suggestionExcellent  = "Excellent! Your voice sounds clear and steady."
	suggestionGood       = "Good job! Maintain consistent volume and pace."
	suggestionImprove    = "Needs improvement. Focus on clarity and steadiness."
	suggestionConviction = "Work on your confidence. Speak with more conviction."
	suggestionNoData     = "No voice data recorded"
)

type Summary struct {
	AverageScore    int    `json:"average_score"`
	TotalSamples    int    `json:"total_samples"`
	DurationSeconds int    `json:"duration_seconds"`
	Suggestions     string `json:"suggestions"`
}

func summarize(samples []sample) Summary {
	if len(samples) == 0 {
		return Summary{Suggestions: suggestionNoData}
	}

	average := int(math.Round(meanScore(samples)))
	duration := samples[len(samples)-1].at.Sub(samples[0].at)

	return Summary{
		AverageScore:    average,
		TotalSamples:    len(samples),
		DurationSeconds: int(math.Round(duration.Seconds())),
		Suggestions:     suggestionFor(average),
	}
}

func suggestionFor(averageScore int) string {
	switch {
	case averageScore >= 80:
		return suggestionExcellent
	case averageScore >= 60:
		return suggestionGood
	case averageScore >= 40:
		return suggestionImprove
	default:
		return suggestionConviction
	}
}
