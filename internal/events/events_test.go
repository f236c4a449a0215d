package events

import (
	"testing"

	"github.com/abhisek/casetrack/internal/board"
	"github.com/abhisek/casetrack/internal/cases"
	"github.com/abhisek/casetrack/internal/player"
	"github.com/abhisek/casetrack/internal/random"
)

func TestDeck_BoardEventsExist(t *testing.T) {
	for _, tile := range board.Standard().Tiles() {
		if tile.Kind != board.KindEvent {
			continue
		}
		if _, ok := Get(tile.EventID); !ok {
			t.Errorf("tile %d references unknown event %q", tile.Index, tile.EventID)
		}
	}
}

func TestDeck_Shape(t *testing.T) {
	counts := map[Type]int{}
	for _, e := range All() {
		counts[e.Type]++
		if e.Name == "" || e.Emoji == "" || e.Description == "" {
			t.Errorf("event %q is missing display text", e.ID)
		}
		if e.IsChoice() == (e.Effect != nil) {
			t.Errorf("event %q must have exactly one of effect or options", e.ID)
		}
		if e.IsChoice() != (e.Type == TypeChoice) {
			t.Errorf("event %q type %q disagrees with options", e.ID, e.Type)
		}
		for i, o := range e.Options {
			if o.Outcome == nil && (o.Probability <= 0 || o.Probability >= 1) {
				t.Errorf("event %q option %d has no outcome and probability %v", e.ID, i, o.Probability)
			}
		}
	}
	want := map[Type]int{TypePositive: 4, TypeNegative: 2, TypeChoice: 4}
	for typ, n := range want {
		if counts[typ] != n {
			t.Errorf("%s events = %d, want %d", typ, counts[typ], n)
		}
	}
}

func TestResolve_Deterministic(t *testing.T) {
	e, _ := Get("startup-pivot")
	opt := e.Options[0]
	for seed := uint32(0); seed < 50; seed++ {
		a := opt.Resolve(random.New(seed))
		b := opt.Resolve(random.New(seed))
		if a != b {
			t.Fatalf("seed %d resolved differently: %+v vs %+v", seed, a, b)
		}
	}
}

func TestResolve_OneDrawAgainstProbability(t *testing.T) {
	e, _ := Get("pivot-opportunity")
	opt := e.Options[1]
	for seed := uint32(0); seed < 50; seed++ {
		probe := random.New(seed)
		draw := probe.Float()

		src := random.New(seed)
		got := opt.Resolve(src)
		want := opt.Fail
		if draw < opt.Probability {
			want = opt.Success
		}
		if got != want {
			t.Errorf("seed %d draw %.3f: got %+v, want %+v", seed, draw, got, want)
		}
		if src.State() != probe.State() {
			t.Errorf("seed %d: Resolve consumed more than one draw", seed)
		}
	}
}

func TestResolve_DirectOutcomeUsesNoDraw(t *testing.T) {
	e, _ := Get("deal-closes")
	src := random.New(7)
	got := e.Options[1].Resolve(src)
	if got.Points != 2 {
		t.Errorf("hand-off outcome = %+v, want +2 points", got)
	}
	if src.State() != 7 {
		t.Error("direct outcome advanced the generator")
	}
}

func TestRandom_ExcludesRecent(t *testing.T) {
	recent := []string{"networking-win", "client-win", "mentorship"}
	for seed := uint32(0); seed < 20; seed++ {
		e, ok := Random(random.New(seed), TypePositive, recent)
		if !ok || e.ID != "innovation-award" {
			t.Fatalf("seed %d: got %q, want innovation-award", seed, e.ID)
		}
	}
}

func TestRandom_FallsBackWhenAllRecent(t *testing.T) {
	e, ok := Random(random.New(3), TypeNegative, []string{"staffing-crunch", "client-crisis"})
	if !ok || e.Type != TypeNegative {
		t.Fatalf("Random = %+v, %v; want a negative event", e, ok)
	}
}

func TestApply(t *testing.T) {
	b := board.Standard()
	tests := []struct {
		name  string
		start func(player.Player) player.Player
		o     Outcome
		check func(t *testing.T, p player.Player)
	}{
		{
			name: "points go negative",
			o:    Outcome{Points: -5},
			check: func(t *testing.T, p player.Player) {
				if p.Points != -5 {
					t.Errorf("points = %d, want -5", p.Points)
				}
			},
		},
		{
			name: "credit floor",
			start: func(p player.Player) player.Player {
				p.Credits.Add60 = 0
				return p
			},
			o: Outcome{Credits: player.Credits{Add60: -1}},
			check: func(t *testing.T, p player.Player) {
				if p.Credits.Add60 != 0 {
					t.Errorf("add60 = %d, want 0", p.Credits.Add60)
				}
			},
		},
		{
			name: "skip to terminal",
			start: func(p player.Player) player.Player {
				return p.PlaceOn(b, 23)
			},
			o: Outcome{SkipToTerminal: true},
			check: func(t *testing.T, p player.Player) {
				if p.Position != b.Terminal() || p.Rank != board.RankPartner {
					t.Errorf("pos %d rank %q, want terminal Partner", p.Position, p.Rank)
				}
			},
		},
		{
			name: "retreat clamps at start",
			o:    Outcome{Position: -2},
			check: func(t *testing.T, p player.Player) {
				if p.Position != 0 {
					t.Errorf("pos = %d, want 0", p.Position)
				}
			},
		},
		{
			name: "pending modifiers",
			o:    Outcome{ToleranceBoost: true, DifficultyOverride: cases.DifficultyFull},
			check: func(t *testing.T, p player.Player) {
				if !p.Pending.ToleranceBoost || p.Pending.DifficultyOverride != cases.DifficultyFull {
					t.Errorf("pending = %+v", p.Pending)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := player.New("Ada")
			if tt.start != nil {
				p = tt.start(p)
			}
			tt.check(t, Apply(p, tt.o, b))
		})
	}
}
