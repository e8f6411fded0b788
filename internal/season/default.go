package season

import "time"

// Default returns the 2026 season: pre-season from 19 January to 14 March,
// competition from 15 March to the end of the year.
func Default() Season {
	return Season{
		Start: date(2026, time.January, 19),
		End:   date(2026, time.December, 31),
		Phases: []Phase{
			{
				Name:        "Pre-Season",
				Kind:        KindPreSeason,
				Start:       date(2026, time.January, 19),
				End:         date(2026, time.March, 14),
				Description: "Focus on physical base, technical fundamentals and basic systems.",
				Directive: "The current focus is developing specific endurance and explosive strength. " +
					"Demand that players perform every technical fundamental at the highest possible intensity. " +
					"This is the volume-building and intense physical adaptation phase.",
			},
			{
				Name:        "Competitive Season",
				Kind:        KindCompetitive,
				Start:       date(2026, time.March, 15),
				End:         date(2026, time.December, 31),
				Description: "Focus on game strategy, physical maintenance and set pieces.",
				Directive: "Priority: tactical adjustments and set pieces. Monday sessions are for active recovery " +
					"and correcting the errors seen in the weekend match. Wednesday is the day for strategy " +
					"and mental preparation for the next fixture.",
			},
		},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
