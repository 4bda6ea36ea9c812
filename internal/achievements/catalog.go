package achievements

// DefaultCatalog returns the built-in achievement definitions. The
// catalog is static; callers should treat the returned slice as
// read-only.
func DefaultCatalog() []Definition {
	return []Definition{
		// milestones
		{
			ID: "first-workout", Category: CategoryMilestone,
			Title: "First Rep", Description: "Complete your first workout",
			Icon: "🎉", Points: 10, Rarity: RarityCommon,
			Condition: Condition{MinLifetimeSessions: 1},
		},
		{
			ID: "ten-workouts", Category: CategoryMilestone,
			Title: "Regular", Description: "Complete 10 workouts",
			Icon: "💪", Points: 25, Rarity: RarityCommon,
			Condition: Condition{MinLifetimeSessions: 10},
		},
		{
			ID: "hundred-workouts", Category: CategoryMilestone,
			Title: "Centurion", Description: "Complete 100 workouts",
			Icon: "🏛️", Points: 100, Rarity: RarityEpic,
			Condition: Condition{MinLifetimeSessions: 100},
		},

		// streaks
		{
			ID: "week-streak", Category: CategoryStreak,
			Title: "Full Week", Description: "Train 7 days in a row",
			Icon: "🔥", Points: 50, Rarity: RarityRare,
			Condition: Condition{MinCurrentStreak: 7},
		},
		{
			ID: "month-streak", Category: CategoryStreak,
			Title: "Iron Month", Description: "Train 30 days in a row",
			Icon: "🗓️", Points: 200, Rarity: RarityLegendary,
			Condition: Condition{MinCurrentStreak: 30},
		},

		// performance
		{
			ID: "solid-session", Category: CategoryPerformance,
			Title: "Solid Work", Description: "Score 80 or higher in a session",
			Icon: "⭐", Points: 15, Rarity: RarityCommon,
			Condition: Condition{MinFinalScore: 80},
		},
		{
			ID: "perfect-session", Category: CategoryPerformance,
			Title: "Dialed In", Description: "Score 95+ with every set done and rest on point",
			Icon: "💯", Points: 75, Rarity: RarityEpic,
			Condition: Condition{MinFinalScore: 95, MinCompletionScore: 100, MinConsistencyScore: 100},
		},

		// volume
		{
			ID: "heavy-mover", Category: CategoryVolume,
			Title: "Heavy Mover", Description: "Lift 100,000 kg of lifetime volume",
			Icon: "🏋️", Points: 80, Rarity: RarityRare,
			Condition: Condition{MinLifetimeVolume: 100_000},
		},
		{
			ID: "rep-machine", Category: CategoryVolume,
			Title: "Rep Machine", Description: "Perform 10,000 lifetime reps",
			Icon: "🔁", Points: 80, Rarity: RarityRare,
			Condition: Condition{MinLifetimeReps: 10_000},
		},

		// speed
		{
			ID: "speed-demon", Category: CategorySpeed,
			Title: "Speed Demon", Description: "Finish a workout 10% faster than planned",
			Icon: "⚡", Points: 30, Rarity: RarityRare,
			Condition: Condition{SpeedMarginFraction: 0.1},
		},

		// special
		{
			ID: "early-bird", Category: CategorySpecial,
			Title: "Early Bird", Description: "Start a workout before 6 AM",
			Icon: "🌅", Points: 20, Rarity: RarityRare,
			Condition: Condition{StartBeforeHour: 6},
		},
		{
			ID: "night-owl", Category: CategorySpecial,
			Title: "Night Owl", Description: "Start a workout after 9 PM",
			Icon: "🦉", Points: 20, Rarity: RarityRare,
			Condition: Condition{StartAtOrAfterHour: 21},
		},
	}
}
