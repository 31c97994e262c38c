package engine

// TopicScorer ranks a topic for the current learner state:
//
//	score = (1 - mastery) * weight * energyMatch[level][difficulty] * cognitiveFit[profile][difficulty]
type TopicScorer struct {
	tables *Tables
}

func NewTopicScorer(tables *Tables) *TopicScorer {
	if tables == nil {
		tables = DefaultTables()
	}
	return &TopicScorer{tables: tables}
}

func (s *TopicScorer) Score(topic Topic, mastery float64, level EnergyLevel, profile ProfileType) float64 {
	learningGain := (1 - mastery) * topic.Weight
	return learningGain *
		s.tables.energyMatch(level, topic.Difficulty) *
		s.tables.cognitiveFit(profile, topic.Difficulty)
}
