package events

import (
	"slices"

	"github.com/abhisek/casetrack/internal/cases"
	"github.com/abhisek/casetrack/internal/player"
	"github.com/abhisek/casetrack/internal/random"
)

func outcome(o Outcome) *Outcome { return &o }

var deck = []Event{
	{
		ID:          "networking-win",
		Name:        "Networking Happy Hour",
		Type:        TypePositive,
		Description: "You hit it off with a partner at the firm happy hour, and they pass along a few insider tips.",
		Emoji:       "🍻",
		Effect:      outcome(Outcome{Credits: player.Credits{Hint: 1}}),
	},
	{
		ID:          "client-win",
		Name:        "Client Presentation Success",
		Type:        TypePositive,
		Description: "The client loved your deck. The engagement lead is singing your praises.",
		Emoji:       "🎯",
		Effect:      outcome(Outcome{Points: 2}),
	},
	{
		ID:          "mentorship",
		Name:        "Senior Mentor Coaching",
		Type:        TypePositive,
		Description: "A senior partner walks you through their estimation shortcuts. Your next answer gets wider tolerance.",
		Emoji:       "🎓",
		Effect:      outcome(Outcome{ToleranceBoost: true}),
	},
	{
		ID:          "innovation-award",
		Name:        "Innovation Recognition",
		Type:        TypePositive,
		Description: "Your process improvement idea was adopted firm-wide. Move ahead one space.",
		Emoji:       "💡",
		Effect:      outcome(Outcome{Position: 1}),
	},
	{
		ID:          "staffing-crunch",
		Name:        "Staffing Emergency",
		Type:        TypeNegative,
		Description: "Three projects land at once and you are pulled onto all of them. You lose an extra-time credit.",
		Emoji:       "🔥",
		Effect:      outcome(Outcome{Credits: player.Credits{Add60: -1}}),
	},
	{
		ID:          "client-crisis",
		Name:        "Client Escalation",
		Type:        TypeNegative,
		Description: "A furious client escalates to the CEO. Your next question is a full case, no matter what you pick.",
		Emoji:       "⚠️",
		Effect:      outcome(Outcome{DifficultyOverride: cases.DifficultyFull}),
	},
	{
		ID:          "pivot-opportunity",
		Name:        "Career Pivot Decision",
		Type:        TypeChoice,
		Description: "A new practice area is opening up. Do you stay where you are or bet on the move?",
		Emoji:       "🔄",
		Options: []Option{
			{Text: "Play it safe: stay in your current role (+1 point guaranteed)", Outcome: outcome(Outcome{Points: 1})},
			{Text: "Take the risk: pivot to the new practice (50/50: +3 points or -1 space)", Probability: 0.5,
				Success: Outcome{Points: 3}, Fail: Outcome{Position: -1}},
		},
	},
	{
		ID:          "promotion-review",
		Name:        "Early Promotion Offer",
		Type:        TypeChoice,
		Description: "Leadership offers you an early promotion. Take it now or hold out for something better?",
		Emoji:       "📈",
		Options: []Option{
			{Text: "Accept now: guaranteed advancement (+1 space)", Outcome: outcome(Outcome{Position: 1})},
			{Text: "Wait for a better offer (60%: +2 spaces, 40%: nothing)", Probability: 0.6,
				Success: Outcome{Position: 2}},
		},
	},
	{
		ID:          "startup-pivot",
		Name:        "Startup Pivot or Burn",
		Type:        TypeChoice,
		Description: "Your startup is out of runway. Push through one more pivot or head back to consulting?",
		Emoji:       "🚀",
		Options: []Option{
			{Text: "Stay committed: ride or die (70%: +4 points, 30%: -2 spaces)", Probability: 0.7,
				Success: Outcome{Points: 4}, Fail: Outcome{Position: -2}},
			{Text: "Jump ship: return to consulting safely (+1 space)", Outcome: outcome(Outcome{Position: 1})},
		},
	},
	{
		ID:          "deal-closes",
		Name:        "M&A Deal Closing",
		Type:        TypeChoice,
		Description: "The merger you sourced is closing. Leading the integration is high profile and high risk.",
		Emoji:       "💼",
		Options: []Option{
			{Text: "Lead integration (60%: skip to Partner, 40%: back one space)", Probability: 0.6,
				Success: Outcome{SkipToTerminal: true}, Fail: Outcome{Position: -1}},
			{Text: "Hand it off: play it safe (+2 points)", Outcome: outcome(Outcome{Points: 2})},
		},
	},
}

var byID = func() map[string]*Event {
	m := make(map[string]*Event, len(deck))
	for i := range deck {
		m[deck[i].ID] = &deck[i]
	}
	return m
}()

// Get returns the event with the given ID.
func Get(id string) (Event, bool) {
	e, ok := byID[id]
	if !ok {
		return Event{}, false
	}
	return *e, true
}

// All returns every event in deck order.
func All() []Event {
	return slices.Clone(deck)
}

// Random draws an event of type typ, skipping IDs in recent. When every
// event of the type was recent the full set of that type is used.
func Random(src *random.Source, typ Type, recent []string) (Event, bool) {
	var fresh, ofType []Event
	for _, e := range deck {
		if e.Type != typ {
			continue
		}
		ofType = append(ofType, e)
		if !slices.Contains(recent, e.ID) {
			fresh = append(fresh, e)
		}
	}
	if len(fresh) == 0 {
		fresh = ofType
	}
	return random.Choice(src, fresh)
}
