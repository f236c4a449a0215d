// Package board defines the career track: a main line of tiles from
// Associate to Retirement with two risk forks whose branches rejoin it.
package board

import "strconv"

// Kind classifies a tile.
type Kind string

const (
	KindNormal    Kind = "normal"
	KindPromotion Kind = "promotion"
	KindEvent     Kind = "event"
	KindRiskFork  Kind = "riskFork"
	KindRiskMerge Kind = "riskMerge"
	KindTerminal  Kind = "terminal"
)

// Tile is one square on the board.
type Tile struct {
	Index int    `json:"index"`
	ID    string `json:"id"`
	Kind  Kind   `json:"kind"`
	Next  []int  `json:"next,omitempty"`
	Prev  int    `json:"prev"`
	// EventID is the card an event tile always deals. Empty means a
	// wildcard draw from the deck.
	EventID string `json:"eventId,omitempty"`
	Label   string `json:"label,omitempty"`
	// Depth is the equivalent main-line index, used for rank.
	Depth int `json:"depth"`
}

// Board is an immutable tile graph. Index 0 is the start.
type Board struct {
	tiles    []Tile
	terminal int
}

// New builds a board from tiles. The terminal is the first tile of
// KindTerminal, or the last tile if none is marked.
func New(tiles []Tile) *Board {
	b := &Board{tiles: make([]Tile, len(tiles)), terminal: len(tiles) - 1}
	copy(b.tiles, tiles)
	for i, t := range b.tiles {
		if t.Kind == KindTerminal {
			b.terminal = i
			break
		}
	}
	return b
}

var standard = New(standardTiles())

// Standard returns the built-in board.
func Standard() *Board { return standard }

func standardTiles() []Tile {
	main := []struct {
		kind  Kind
		label string
		event string
	}{
		{KindNormal, "Start", ""},
		{KindNormal, "", ""},
		{KindPromotion, "Analyst", ""},
		{KindNormal, "", ""},
		{KindEvent, "", "networking-win"},
		{KindNormal, "", ""},
		{KindRiskFork, "Career Crossroads", ""},
		{KindEvent, "", "staffing-crunch"},
		{KindPromotion, "Sr Analyst", ""},
		{KindEvent, "Wildcard", ""},
		{KindEvent, "", "client-crisis"},
		{KindNormal, "", ""},
		{KindRiskFork, "Big Deal", ""},
		{KindRiskMerge, "", ""},
		{KindPromotion, "Manager", ""},
		{KindEvent, "", "promotion-review"},
		{KindPromotion, "Director", ""},
		{KindNormal, "", ""},
		{KindTerminal, "Retirement", ""},
	}

	tiles := make([]Tile, 0, len(main)+6)
	for i, m := range main {
		t := Tile{Index: i, ID: tileID(i), Kind: m.kind, Label: m.label, EventID: m.event, Depth: i, Prev: max(i-1, 0)}
		if m.kind != KindTerminal {
			t.Next = []int{i + 1}
		}
		tiles = append(tiles, t)
	}
	tiles[6].Next = []int{7, 19}
	tiles[12].Next = []int{13, 22}

	branch := func(fork, rejoin int, labels [3]string, event string) {
		start := len(tiles)
		for k := 0; k < 3; k++ {
			idx := start + k
			t := Tile{Index: idx, ID: tileID(idx), Kind: KindNormal, Label: labels[k], Depth: fork + 1 + k, Prev: idx - 1}
			if k == 0 {
				t.Prev = fork
			}
			if k == 1 {
				t.Kind, t.EventID = KindEvent, event
			}
			if k == 2 {
				t.Next = []int{rejoin}
			} else {
				t.Next = []int{idx + 1}
			}
			tiles = append(tiles, t)
		}
	}
	branch(6, 13, [3]string{"Join Startup", "", "Exit Strategy"}, "startup-pivot")
	branch(12, 18, [3]string{"Lead M&A", "", "Partner Track"}, "deal-closes")
	return tiles
}

func tileID(i int) string {
	return "t" + strconv.Itoa(i)
}

// Len returns the number of tiles.
func (b *Board) Len() int { return len(b.tiles) }

// Tiles returns a copy of every tile in index order.
func (b *Board) Tiles() []Tile {
	out := make([]Tile, len(b.tiles))
	copy(out, b.tiles)
	return out
}

// Tile returns the tile at pos.
func (b *Board) Tile(pos int) (Tile, bool) {
	if pos < 0 || pos >= len(b.tiles) {
		return Tile{}, false
	}
	return b.tiles[pos], true
}

// Terminal returns the index of the final tile.
func (b *Board) Terminal() int { return b.terminal }

// IsTerminal reports whether pos is the final tile.
func (b *Board) IsTerminal(pos int) bool { return pos == b.terminal }

// IsFork reports whether pos offers a branch choice.
func (b *Board) IsFork(pos int) bool {
	t, ok := b.Tile(pos)
	return ok && t.Kind == KindRiskFork && len(t.Next) > 1
}

// Advance walks n steps along the first successor of each tile, stopping
// at the terminal.
func (b *Board) Advance(pos, n int) int {
	pos = b.clamp(pos)
	for ; n > 0 && pos != b.terminal; n-- {
		t := b.tiles[pos]
		if len(t.Next) == 0 {
			break
		}
		pos = t.Next[0]
	}
	return pos
}

// Retreat walks n steps back along the path toward the start, stopping at 0.
func (b *Board) Retreat(pos, n int) int {
	pos = b.clamp(pos)
	for ; n > 0 && pos != 0; n-- {
		pos = b.tiles[pos].Prev
	}
	return pos
}

// Move advances for positive delta and retreats for negative delta.
func (b *Board) Move(pos, delta int) int {
	if delta < 0 {
		return b.Retreat(pos, -delta)
	}
	return b.Advance(pos, delta)
}

func (b *Board) clamp(pos int) int {
	if pos < 0 || pos >= len(b.tiles) {
		return 0
	}
	return pos
}

// Rank is a career title derived from progress along the board.
type Rank string

const (
	RankAssociate Rank = "Associate"
	RankAnalyst   Rank = "Analyst"
	RankSrAnalyst Rank = "Sr Analyst"
	RankManager   Rank = "Manager"
	RankDirector  Rank = "Director"
	RankPartner   Rank = "Partner"
	RankRetired   Rank = "Retired"
)

// Ladder lists the titles in the order a player earns them.
func Ladder() []Rank {
	return []Rank{RankAssociate, RankAnalyst, RankSrAnalyst, RankManager, RankDirector, RankPartner}
}

// RankForDepth maps main-line progress to a title.
func RankForDepth(depth int) Rank {
	switch {
	case depth <= 2:
		return RankAssociate
	case depth <= 8:
		return RankAnalyst
	case depth <= 14:
		return RankSrAnalyst
	case depth <= 16:
		return RankManager
	case depth <= 17:
		return RankDirector
	case depth == 18:
		return RankPartner
	default:
		return RankRetired
	}
}

// Rank returns the title for a player standing on pos. Positions off the
// board are Retired.
func (b *Board) Rank(pos int) Rank {
	t, ok := b.Tile(pos)
	if !ok {
		return RankRetired
	}
	return RankForDepth(t.Depth)
}
