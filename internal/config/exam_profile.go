package config

// ExamProfile describes one exam format: its subjects, score ceilings and
// duration bounds. The cleaner and the topic engines take the profile of the
// exam type being analyzed.
type ExamProfile struct {
	Type        string
	Subjects    []string
	MaxNets     map[string]float64
	MinDuration int
	MaxDuration int
}

// TYTProfile returns the TYT exam format.
func TYTProfile() ExamProfile {
	return ExamProfile{
		Type:     "TYT",
		Subjects: []string{"Türkçe", "Matematik", "Fen", "Sosyal"},
		MaxNets: map[string]float64{
			"Türkçe Net":    40,
			"Matematik Net": 40,
			"Fen Net":       20,
			"Sosyal Net":    20,
			"Toplam Net":    120,
		},
		MinDuration: 30,
		MaxDuration: 180,
	}
}

// AYTProfile returns the AYT exam format.
func AYTProfile() ExamProfile {
	return ExamProfile{
		Type:     "AYT",
		Subjects: []string{"Matematik", "Fizik", "Kimya", "Biyoloji"},
		MaxNets: map[string]float64{
			"Matematik Net": 40,
			"Fizik Net":     14,
			"Kimya Net":     13,
			"Biyoloji Net":  13,
			"Toplam Net":    80,
		},
		MinDuration: 30,
		MaxDuration: 220,
	}
}

// ProfileFor returns the profile for the given exam type, defaulting to TYT.
func ProfileFor(examType string) ExamProfile {
	if examType == "AYT" {
		return AYTProfile()
	}
	return TYTProfile()
}

// DefaultTargetNet returns the default goal net for an exam type.
func DefaultTargetNet(examType string) float64 {
	if examType == "AYT" {
		return 60
	}
	return 100
}
