package view

// Tone is the color family of a chip or indicator.
type Tone string

const (
	Good    Tone = "good"
	Warn    Tone = "warn"
	Bad     Tone = "bad"
	Neutral Tone = "neutral"
)

func statusTone(status string) Tone {
	switch status {
	case "ok":
		return Good
	case "warn":
		return Warn
	default:
		return Bad
	}
}

func connectionTone(status string) Tone {
	switch status {
	case "connected":
		return Good
	case "degraded":
		return Warn
	default:
		return Bad
	}
}

func projectTone(status string) Tone {
	switch status {
	case "done":
		return Good
	case "blocked":
		return Bad
	default:
		return Neutral
	}
}

func severityTone(severity string) Tone {
	switch severity {
	case "high":
		return Bad
	case "med":
		return Warn
	default:
		return Neutral
	}
}

func accessTone(result string) Tone {
	if result == "success" {
		return Good
	}
	return Bad
}

func apiTone(status string) Tone {
	if status == "ok" {
		return Good
	}
	return Warn
}

// scoreRating maps a 0-100 security score to its tone and label.
func scoreRating(score int) (Tone, string) {
	switch {
	case score >= 85:
		return Good, "STRONG"
	case score >= 70:
		return Warn, "WATCH"
	default:
		return Bad, "RISK"
	}
}

func chipTone(s string) Tone {
	switch Tone(s) {
	case Good, Warn, Bad:
		return Tone(s)
	}
	return Neutral
}
