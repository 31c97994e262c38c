package engine

import "fmt"

type RationaleGenerator struct {
	tables *Tables
}

func NewRationaleGenerator(tables *Tables) *RationaleGenerator {
	if tables == nil {
		tables = DefaultTables()
	}
	return &RationaleGenerator{tables: tables}
}

// Explain renders "<energy phrase> + <strength> - <profile phrase>".
func (g *RationaleGenerator) Explain(level EnergyLevel, topic ScoredTopic, profile ProfileType) string {
	return fmt.Sprintf("%s + %s - %s",
		g.tables.energyPhrase(level),
		strengthPhrase(topic.Mastery),
		g.tables.ProfilePhrases[profile],
	)
}

func strengthPhrase(mastery float64) string {
	switch {
	case mastery < 0.4:
		return "weak topic"
	case mastery < 0.7:
		return "developing topic"
	default:
		return "strong topic"
	}
}
