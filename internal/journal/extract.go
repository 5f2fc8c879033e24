package journal

import (
	"regexp"
	"strings"
)

var (
	energyPattern    = regexp.MustCompile(`(?i)energy.*?(low|medium|high)`)
	gratitudePattern = regexp.MustCompile(`(?is)grateful for:?(.*)`)
	gratitudeSplit   = regexp.MustCompile(`,|\band\b|\n|\*`)
)

// Extract pulls an energy level and up to MaxGratitude gratitude items out of a
// model-written summary. It is a best-effort heuristic: misses yield
// EnergyUnknown and an empty list, never an error.
func Extract(summary string) (Energy, []string) {
	return extractEnergy(summary), extractGratitude(summary)
}

func extractEnergy(summary string) Energy {
	m := energyPattern.FindStringSubmatch(summary)
	if m == nil {
		return EnergyUnknown
	}
	return Energy(strings.ToLower(m[1]))
}

func extractGratitude(summary string) []string {
	items := []string{}

	m := gratitudePattern.FindStringSubmatch(summary)
	if m == nil {
		return items
	}

	for _, part := range gratitudeSplit.Split(m[1], -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		items = append(items, part)
		if len(items) == MaxGratitude {
			break
		}
	}
	return items
}
