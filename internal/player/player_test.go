package player

import (
	"testing"

	"github.com/abhisek/casetrack/internal/board"
)

func TestNew(t *testing.T) {
	p := New("Ada")
	if p.ID == "" || p.Name != "Ada" {
		t.Fatalf("New = %+v", p)
	}
	if p.Credits != StartingCredits || p.Position != 0 || p.Rank != board.RankAssociate {
		t.Errorf("New = %+v, want start tile with starting credits", p)
	}
	if q := New("Ada"); q.ID == p.ID {
		t.Error("two players share an ID")
	}
}

func TestCreditsAdd_ClampsAtZero(t *testing.T) {
	c := Credits{Add60: 1, GooglePeek: 0, Hint: 2}
	got := c.Add(Credits{Add60: -3, GooglePeek: -1, Hint: 1})
	want := Credits{Add60: 0, GooglePeek: 0, Hint: 3}
	if got != want {
		t.Errorf("Add = %+v, want %+v", got, want)
	}
}

func TestMoveOn_RefreshesRank(t *testing.T) {
	b := board.Standard()
	p := New("Ada").PlaceOn(b, 8)
	p = p.MoveOn(b, 1)
	if p.Position != 9 || p.Rank != board.RankSrAnalyst {
		t.Errorf("after move: pos %d rank %q", p.Position, p.Rank)
	}
	p = p.MoveOn(b, -20)
	if p.Position != 0 || p.Rank != board.RankAssociate {
		t.Errorf("after retreat: pos %d rank %q", p.Position, p.Rank)
	}
	if p = p.PlaceOn(b, 500); p.Position != 0 {
		t.Errorf("PlaceOn off board = %d, want 0", p.Position)
	}
}
