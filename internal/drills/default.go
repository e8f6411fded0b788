package drills

// Default returns the built-in futsal drill catalog. Each call returns a
// fresh map so callers cannot alter the shared data.
func Default() Catalog {
	return Catalog{
		CategoryPhysical: {
			{
				Title:       "Aerobic Power Circuit (Intermittent)",
				Description: "30-second stations: sprints with change of direction, hops over low hurdles and lateral defensive shuffles. 15 seconds rest between stations. 3 sets of 6 minutes.",
				VideoQuery:  "futsal interval training sub18 intermittent drills",
			},
			{
				Title:       "Plyometrics and Reactivity",
				Description: "Box jumps followed by a short 5-metre sprint. Focus on minimal ground contact time and muscular explosiveness. Ideal for improving acceleration.",
				VideoQuery:  "futsal plyometric training explosive power",
			},
			{
				Title:       "Core and Functional Stability",
				Description: "Dynamic planks, medicine ball squats and single-leg balance work. Essential for shielding the ball and preventing injuries.",
				VideoQuery:  "futsal core stability injury prevention drills",
			},
			{
				Title:       "Diamond Speed Endurance",
				Description: "Sprints around a diamond shape that mimics court movement. Alternate between jogging and maximum speed (80-100%).",
				VideoQuery:  "futsal speed endurance diamond drills",
			},
		},
		CategoryTechnical: {
			{
				Title:       "Finishing Under Pressure 1v1",
				Description: "The attacker receives with their back to goal, turns the marker and finishes within 2 touches. Emphasises using the body to protect the ball and shooting accuracy.",
				VideoQuery:  "futsal 1v1 finishing drills pivot turn",
			},
			{
				Title:       "Line and Diagonal Passing with Third Man",
				Description: "Passing pattern in threes: the winger plays down the line to the pivot, who lays off to the opposite winger arriving on the diagonal. Focus on timing and passing accuracy.",
				VideoQuery:  "futsal 3rd man run passing patterns",
			},
			{
				Title:       "Directional First Touch and Short Dribble",
				Description: "Exercise in a tight space (2x2m). The player controls the ball straight into open space and performs a quick dribble to escape the marker.",
				VideoQuery:  "futsal close control directional touch",
			},
			{
				Title:       "Cover and Anticipation Technique",
				Description: "Specific work for defenders: reading the ball's path and body positioning to intercept and cover the wings.",
				VideoQuery:  "futsal defensive technique interception drills",
			},
		},
		CategoryTactical: {
			{
				Title:       "4-0 System: Rotations and Mobility",
				Description: "Tactical session without a fixed pivot. Constant figure-of-eight movement, wingers swapping into the defender role. Focus on creating doubt for markers and quick runs in behind.",
				VideoQuery:  "futsal 4-0 rotation tactics movements",
			},
			{
				Title:       "Quadrant High Press",
				Description: "Split the court into quadrants. The defending team must press the ball carrier with local numerical superiority, forcing errors in the build-up.",
				VideoQuery:  "futsal high press defensive tactics",
			},
			{
				Title:       "3v2 Numerical Superiority (Transition)",
				Description: "Fast attack of 3 players against 2 defenders. The goal is choosing correctly between the final pass and a quick finish before the defence recovers.",
				VideoQuery:  "futsal 3v2 counter attack transition",
			},
			{
				Title:       "2-2 Zone Defence and Shifting",
				Description: "Defensive positioning in a mid block. Train players to shift according to the ball side while keeping the lines compact.",
				VideoQuery:  "futsal zone defense 2-2 system",
			},
		},
		CategorySetPiece: {
			{
				Title:       "Corner: Block and First-Time Shot",
				Description: "The winger screens the taker's marker while the defender arrives at speed to strike first time at the edge of the area.",
				VideoQuery:  "futsal corner kick set piece routine blocks",
			},
			{
				Title:       "Direct Free Kick: Dummy and Deflection",
				Description: "Two players run over the ball faking the shot, the third rolls it aside for the designated taker to shoot or look for the deflection at the far post.",
				VideoQuery:  "futsal free kick routines tactical",
			},
			{
				Title:       "Fly Goalkeeper: U-Shaped Circulation",
				Description: "Five players in attack. Fast ball circulation in a U shape to tire the defence and find the through pass at the far post.",
				VideoQuery:  "futsal 5v4 power play tactics",
			},
		},
		CategoryGame: {
			{
				Title:       "Zoned Game (Touch Restrictions)",
				Description: "Court divided into 3 zones. Defence: 2 touches. Midfield: 3 touches. Attack: free. Encourages fast transitions and directness in the final third.",
				VideoQuery:  "futsal conditioned games small sided",
			},
			{
				Title:       "Real Situation: Trailing Score (Last 5 min)",
				Description: "Simulation of the end of a match while losing by one goal. Mandatory fly goalkeeper or all-out press. Focus on emotional control and quick thinking.",
				VideoQuery:  "futsal match simulation pressure situations",
			},
			{
				Title:       "Scrimmage Focused on Defensive Transition",
				Description: "Free play, but every time a team loses the ball it must recover behind the ball line in under 4 seconds. Penalty (free kick) if it fails.",
				VideoQuery:  "futsal defensive transition training",
			},
		},
	}
}
