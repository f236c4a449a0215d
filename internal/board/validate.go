package board

import (
	"fmt"
	"strings"
)

// Validate performs all structural checks on the board.
// Returns a combined error describing all problems found, or nil if valid.
func (b *Board) Validate() error {
	var errs []string
	n := len(b.tiles)
	if n == 0 {
		return fmt.Errorf("board validation failed: no tiles")
	}

	for i, t := range b.tiles {
		if t.Index != i {
			errs = append(errs, fmt.Sprintf("tile %d has index %d", i, t.Index))
		}
		for _, nx := range t.Next {
			if nx < 0 || nx >= n {
				errs = append(errs, fmt.Sprintf("tile %d points to missing tile %d", i, nx))
			}
		}
		if t.Prev < 0 || t.Prev >= n {
			errs = append(errs, fmt.Sprintf("tile %d has missing predecessor %d", i, t.Prev))
		}
		if t.Kind != KindTerminal && len(t.Next) == 0 {
			errs = append(errs, fmt.Sprintf("tile %d is a dead end", i))
		}
	}
	if len(errs) > 0 {
		return joinErrs(errs)
	}

	// Main line: 0, 1, ..., terminal along first successors.
	mainLine := make(map[int]bool)
	pos := 0
	for steps := 0; ; steps++ {
		mainLine[pos] = true
		if pos == b.terminal {
			break
		}
		next := b.tiles[pos].Next[0]
		if next != pos+1 || steps > n {
			errs = append(errs, fmt.Sprintf("main line breaks at tile %d (next %d)", pos, next))
			break
		}
		pos = next
	}
	if b.tiles[b.terminal].Kind != KindTerminal {
		errs = append(errs, fmt.Sprintf("tile %d is not marked terminal", b.terminal))
	}

	// Forks: two of them, each with two successors, each branch rejoining
	// the main line ahead of its fork.
	forks := 0
	for i, t := range b.tiles {
		if t.Kind != KindRiskFork {
			continue
		}
		forks++
		if len(t.Next) != 2 {
			errs = append(errs, fmt.Sprintf("fork %d has %d successors, want 2", i, len(t.Next)))
			continue
		}
		rejoin, ok := b.followBranch(t.Next[1], mainLine)
		switch {
		case !ok:
			errs = append(errs, fmt.Sprintf("branch from fork %d never rejoins the main line", i))
		case rejoin <= i:
			errs = append(errs, fmt.Sprintf("branch from fork %d rejoins behind it at %d", i, rejoin))
		}
	}
	if forks != 2 {
		errs = append(errs, fmt.Sprintf("board has %d forks, want 2", forks))
	}

	// Reachability from the start over all successors.
	seen := make([]bool, n)
	queue := []int{0}
	seen[0] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nx := range b.tiles[cur].Next {
			if !seen[nx] {
				seen[nx] = true
				queue = append(queue, nx)
			}
		}
	}
	for i, ok := range seen {
		if !ok {
			errs = append(errs, fmt.Sprintf("tile %d is unreachable", i))
		}
	}

	if len(errs) > 0 {
		return joinErrs(errs)
	}
	return nil
}

// followBranch walks first successors from pos until it lands on the main
// line, returning the rejoin index.
func (b *Board) followBranch(pos int, mainLine map[int]bool) (int, bool) {
	for steps := 0; steps <= len(b.tiles); steps++ {
		if mainLine[pos] {
			return pos, true
		}
		next := b.tiles[pos].Next
		if len(next) == 0 {
			return 0, false
		}
		pos = next[0]
	}
	return 0, false
}

func joinErrs(errs []string) error {
	return fmt.Errorf("board validation failed:\n  %s", strings.Join(errs, "\n  "))
}
