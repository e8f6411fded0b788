package augment

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an elite futsal coach who designs professional training sessions. You answer with drills only, in the requested JSON structure.`

// SuggestInput is what the coach knows about the session being reworked.
// Only Theme and CategoryLabel are required.
type SuggestInput struct {
	Theme         string
	CategoryLabel string
	Microcycle    string
	LoadLevel     int
}

func buildUserMessage(in SuggestInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Squad: %s\n", in.CategoryLabel)
	fmt.Fprintf(&b, "Session theme: %q\n", in.Theme)
	if in.Microcycle != "" {
		fmt.Fprintf(&b, "Microcycle: %s\n", in.Microcycle)
	}
	if in.LoadLevel > 0 {
		fmt.Fprintf(&b, "Planned load: %d of 5\n", in.LoadLevel)
	}

	fmt.Fprintf(&b, `
Instructions:
Create exactly %d highly detailed, professional drills for this theme and squad. For each drill give:
1. A creative title.
2. A complete step-by-step description covering objective, organization, execution and variations.
3. The suggested duration in whole minutes.
4. The intensity: Low, Medium or High.
5. The category: Physical, Technical, Tactical, Set-Piece or Game.
6. A "videoUrl": a short, precise English phrase for a YouTube search (e.g. "futsal 3v2 counter attack drills").`, SuggestionCount)

	return b.String()
}
