package play

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/casetrack/internal/cases"
	"github.com/abhisek/casetrack/internal/events"
	"github.com/abhisek/casetrack/internal/game"
	"github.com/abhisek/casetrack/internal/player"
	"github.com/abhisek/casetrack/internal/ui/components"
	"github.com/abhisek/casetrack/internal/ui/theme"
)

var (
	centered = lipgloss.NewStyle().Align(lipgloss.Center)
	dim      = lipgloss.NewStyle().Foreground(theme.TextDim)
	bold     = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	divider  = lipgloss.NewStyle().Foreground(theme.Border)
)

func (s *PlayScreen) View(width, height int) string {
	st := s.state
	cur, ok := st.Current()
	if !ok {
		return centered.Width(width).Foreground(theme.TextDim).Render("\n\nNo game in progress")
	}
	cw := components.ContentWidth(width)

	var body string
	switch st.Phase {
	case game.PhaseIdle:
		body = s.renderIdle(cur, cw)
	case game.PhaseChoice:
		body = s.renderChoice(cur, cw)
	case game.PhasePrompt:
		body = s.renderPrompt(cur, cw)
	case game.PhaseGrading:
		body = s.renderGrading(cw)
	case game.PhaseResults:
		body = s.renderResults(cur, cw)
	case game.PhaseEvent:
		body = s.renderEvent(cw)
	case game.PhaseFork:
		body = s.renderFork(cur, cw)
	case game.PhaseTransition:
		body = s.renderTransition(cw)
	}

	// The board is shown between questions, never over an open prompt.
	switch st.Phase {
	case game.PhaseIdle, game.PhaseResults, game.PhaseFork, game.PhaseTransition:
		body += "\n\n" + renderTrack(s.engine.Machine().Board(), st.Players, st.TurnIndex)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (s *PlayScreen) renderIdle(cur player.Player, cw int) string {
	round := s.state.PromptsCompleted/len(s.state.Players) + 1
	lines := []string{
		dim.Render(fmt.Sprintf("Round %d", round)),
		"",
		lipgloss.NewStyle().Foreground(theme.PlayerColor(s.state.TurnIndex)).Bold(true).
			Render(fmt.Sprintf("Pass the device to %s", cur.Name)),
		"",
		dim.Render(fmt.Sprintf("%s · tile %d · ★ %d · streak %d", cur.Rank, cur.Position, cur.Points, cur.Streak)),
	}
	return components.ArcadeCard(strings.Join(lines, "\n"), cw) + "\n\n" + s.renderLeaderboard(cw)
}

func (s *PlayScreen) renderChoice(cur player.Player, cw int) string {
	var b strings.Builder
	b.WriteString(bold.Render(cur.Name + ", pick your case"))
	b.WriteString("\n\n")
	b.WriteString(s.picker.View())
	if d := cur.Pending.DifficultyOverride; d != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(
			fmt.Sprintf("A career event has locked your next case to %s.", d)))
	}
	if cur.Pending.ToleranceBoost {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("Mentor boost: wider tolerance on this answer."))
	}
	return components.ArcadeCard(b.String(), cw)
}

func (s *PlayScreen) renderPrompt(cur player.Player, cw int) string {
	q := s.state.Prompt
	var b strings.Builder

	meta := fmt.Sprintf("%s · %s", categoryName(q.Category), q.Difficulty)
	b.WriteString(dim.Render(meta))
	b.WriteString("\n")
	b.WriteString(components.Countdown(s.remaining(), q.TotalTime(), cw).View())
	b.WriteString("\n")
	b.WriteString(divider.Render(strings.Repeat("─", cw)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Render(q.Stem))
	b.WriteString("\n\n")

	if q.IsMCQ() {
		b.WriteString(s.picker.View())
	} else {
		b.WriteString("Answer: " + s.input.View())
	}
	b.WriteString("\n\n")

	c := cur.Credits
	b.WriteString(dim.Render(fmt.Sprintf("Credits  +60s ×%d   Peek ×%d   Hint ×%d   (each costs 1 point)",
		c.Add60, c.GooglePeek, c.Hint)))

	if q.HintShown {
		b.WriteString("\n\n")
		text := "Thinking..."
		if s.hint != nil {
			text = s.hint.Text
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Gold).Render("Hint: " + text))
	}
	if q.PeekShown {
		b.WriteString("\n\n")
		if s.peek == nil {
			b.WriteString(dim.Render("Looking it up..."))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(s.peek.Framework))
			for i, line := range s.peek.Outline {
				b.WriteString("\n")
				b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.Text).
					Render(fmt.Sprintf("%d. %s", i+1, line)))
			}
		}
	}
	return b.String()
}

func (s *PlayScreen) renderGrading(cw int) string {
	g := s.state.LastGrading
	q := s.state.Prompt
	if g == nil || q == nil {
		return ""
	}
	var b strings.Builder
	switch {
	case g.TimedOut:
		b.WriteString(theme.Incorrect.Render("Time's up!"))
	case g.SevereMiss:
		b.WriteString(theme.Incorrect.Render("Way off! That's a severe miss."))
	case g.Points >= 3:
		b.WriteString(theme.Correct.Render(fmt.Sprintf("Sharp! +%d points", g.Points)))
	case g.Points > 0:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Gold).Bold(true).Render(fmt.Sprintf("Close. +%d points", g.Points)))
	default:
		b.WriteString(theme.Incorrect.Render("No points this time"))
	}
	b.WriteString("\n\n")
	if q.IsMCQ() {
		b.WriteString(s.picker.View())
	} else {
		b.WriteString(dim.Render("Answer: " + cases.FormatNumber(q.Truth.Final)))
	}
	return components.ArcadeCard(b.String(), cw)
}

func (s *PlayScreen) renderResults(cur player.Player, cw int) string {
	g := s.state.LastGrading
	q := s.state.Prompt
	if g == nil || q == nil {
		return ""
	}
	var lines []string
	if q.IsMCQ() {
		if g.TimedOut {
			lines = append(lines, "You ran out of time.")
		} else {
			lines = append(lines, fmt.Sprintf("You chose %s. Best answer: %s.",
				components.Label(g.Choice), components.Label(q.Truth.CorrectIndex)))
		}
	} else {
		if g.TimedOut {
			lines = append(lines, "You ran out of time.")
		} else {
			lines = append(lines, fmt.Sprintf("Your answer %s vs truth %s (off by %.0f%%)",
				cases.FormatNumber(g.Answer), cases.FormatNumber(g.Truth), g.RelativeError*100))
		}
		for _, st := range q.Truth.Steps {
			lines = append(lines, dim.Render(fmt.Sprintf("  %s: %s", st.Label, cases.FormatNumber(st.Value))))
		}
	}
	lines = append(lines, "", bold.Render(fmt.Sprintf("+%d points · %s", g.Points, movement(g))))
	if g.Bonus {
		lines = append(lines, theme.Correct.Render(fmt.Sprintf("Streak of %d! Bonus step.", cur.Streak)))
	}
	if g.Boosted {
		lines = append(lines, dim.Render("Graded with the mentor's wider tolerance."))
	}
	return components.ArcadeCard(strings.Join(lines, "\n"), cw) + "\n\n" + s.renderLeaderboard(cw)
}

func movement(g *game.Grading) string {
	switch {
	case g.Moved < 0:
		return fmt.Sprintf("back %d", -g.Moved)
	case g.Moved == 1:
		return "forward 1"
	default:
		return fmt.Sprintf("forward %d", g.Moved)
	}
}

func (s *PlayScreen) renderEvent(cw int) string {
	a := s.state.ActiveEvent
	e, ok := events.Get(a.ID)
	if !ok {
		return ""
	}
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(eventColor(e.Type)).Bold(true).Render(e.Emoji + "  " + e.Name))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(cw - 6).Foreground(theme.Text).Render(e.Description))
	b.WriteString("\n\n")
	switch {
	case a.Resolved():
		if a.Option >= 0 && a.Option < len(e.Options) {
			b.WriteString(dim.Render("You chose: " + e.Options[a.Option].Text))
			b.WriteString("\n")
		}
		b.WriteString(bold.Render(DescribeOutcome(*a.Outcome)))
	case e.IsChoice():
		b.WriteString(s.picker.View())
	case e.Effect != nil:
		b.WriteString(bold.Render(DescribeOutcome(*e.Effect)))
	}
	return components.ArcadeCard(b.String(), cw)
}

func eventColor(t events.Type) color.Color {
	switch t {
	case events.TypePositive:
		return theme.Success
	case events.TypeNegative:
		return theme.Error
	default:
		return theme.Gold
	}
}

// DescribeOutcome renders an outcome as a short sentence.
func DescribeOutcome(o events.Outcome) string {
	var parts []string
	if o.Points != 0 {
		parts = append(parts, fmt.Sprintf("%+d points", o.Points))
	}
	if o.Position > 0 {
		parts = append(parts, fmt.Sprintf("forward %d", o.Position))
	} else if o.Position < 0 {
		parts = append(parts, fmt.Sprintf("back %d", -o.Position))
	}
	if o.SkipToTerminal {
		parts = append(parts, "straight to Retirement")
	}
	credit := func(n int, name string) {
		if n != 0 {
			parts = append(parts, fmt.Sprintf("%+d %s", n, name))
		}
	}
	credit(o.Credits.Add60, "extra-time credit")
	credit(o.Credits.GooglePeek, "peek credit")
	credit(o.Credits.Hint, "hint credit")
	if o.ToleranceBoost {
		parts = append(parts, "wider tolerance on your next answer")
	}
	if o.DifficultyOverride != "" {
		parts = append(parts, fmt.Sprintf("next case is %s", o.DifficultyOverride))
	}
	if len(parts) == 0 {
		return "No effect"
	}
	return strings.Join(parts, ", ")
}

func (s *PlayScreen) renderFork(cur player.Player, cw int) string {
	var b strings.Builder
	b.WriteString(bold.Render(cur.Name + " reached a crossroads"))
	b.WriteString("\n\n")
	b.WriteString(dim.Render("The side path can leapfrog the ladder or stall your career. Either way you take another case right away."))
	b.WriteString("\n\n")
	b.WriteString(s.picker.View())
	return components.ArcadeCard(b.String(), cw)
}

func (s *PlayScreen) renderTransition(cw int) string {
	st := s.state
	next := st.Players[(st.TurnIndex+1)%len(st.Players)]
	return components.ArcadeCard(dim.Render("Turn complete. Next up: ")+bold.Render(next.Name), cw)
}

func (s *PlayScreen) renderLeaderboard(cw int) string {
	standings := s.engine.Machine().Standings(s.state.Players)
	var b strings.Builder
	for i, p := range standings {
		seat := 0
		for j, q := range s.state.Players {
			if q.ID == p.ID {
				seat = j
			}
		}
		name := lipgloss.NewStyle().Foreground(theme.PlayerColor(seat)).Bold(true).Render(padRight(p.Name, 12))
		b.WriteString(fmt.Sprintf("%d. %s  %-10s  tile %2d  ★ %3d", i+1, name, p.Rank, p.Position, p.Points))
		if i < len(standings)-1 {
			b.WriteString("\n")
		}
	}
	return lipgloss.NewStyle().Width(cw).Render(b.String())
}

func categoryName(c cases.Category) string {
	switch c {
	case cases.CategoryQuickMath:
		return "Quick Math"
	case cases.CategoryMarketEntry:
		return "Market Entry"
	case cases.CategoryProfitability:
		return "Profitability"
	case cases.CategoryMarketSizing:
		return "Market Sizing"
	case cases.CategoryPricing:
		return "Pricing"
	case cases.CategoryOps:
		return "Operations"
	default:
		return string(c)
	}
}
