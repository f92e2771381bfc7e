// Package console draws a match in the terminal and reads human wagers.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/holdem-console/internal/deck"
	"github.com/lox/holdem-console/internal/game"
)

// Renderer writes a match to a terminal as it happens. It implements
// game.Observer.
type Renderer struct {
	out    io.Writer
	styles *Styles
	pot    game.Chips
}

var _ game.Observer = (*Renderer)(nil)

// NewRenderer creates a renderer writing to out.
func NewRenderer(out io.Writer, color bool) *Renderer {
	return &Renderer{
		out:    out,
		styles: NewStyles(lipgloss.NewRenderer(out), color),
	}
}

// Styles returns the styles the renderer draws with.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

func (r *Renderer) println(a ...any) {
	fmt.Fprintln(r.out, a...)
}

// Cards formats cards in brackets, red suits in red.
func (r *Renderer) Cards(cards []deck.Card) string {
	formatted := make([]string, len(cards))
	for i, card := range cards {
		if card.IsRed() {
			formatted[i] = r.styles.CardRed.Render(card.String())
		} else {
			formatted[i] = r.styles.CardBlack.Render(card.String())
		}
	}
	return "[" + strings.Join(formatted, " ") + "]"
}

// TableState describes the board and the bet to match.
func (r *Renderer) TableState(community []deck.Card, highestBet game.Chips) string {
	board := "no cards yet"
	if len(community) > 0 {
		board = r.Cards(community)
	}
	return fmt.Sprintf("Board: %s  Highest bet: %s  Pot: %s",
		board,
		r.styles.Pot.Render(highestBet.String()),
		r.styles.Pot.Render(r.pot.String()))
}

// PlayerState describes one player's hand and money.
func (r *Renderer) PlayerState(p game.PlayerView) string {
	var b strings.Builder
	b.WriteString(r.name(p))
	if len(p.Hand) > 0 {
		fmt.Fprintf(&b, "  Hand: %s", r.Cards(p.Hand))
	}
	fmt.Fprintf(&b, "  Stack: %s  Bet: %s", p.Stack, p.Bet)
	return b.String()
}

func (r *Renderer) name(p game.PlayerView) string {
	if p.Kind == game.Human {
		return p.Name + " " + r.styles.Human.Render("(you)")
	}
	return p.Name + " " + r.styles.Automated.Render("(bot)")
}

// Table renders rows under headers as a bordered table.
func (r *Renderer) Table(headers []string, rows ...[]string) string {
	header := r.styles.SubHeader.Padding(0, 1)
	cell := r.styles.Action.UnsetForeground().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.styles.Separator).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}

// RoundStarted prints the seating for a new round.
func (r *Renderer) RoundStarted(number int, players []game.PlayerView) {
	r.pot = 0
	r.println()
	r.println(r.styles.Header.Render(fmt.Sprintf("Round %d", number)))
	for _, p := range players {
		r.println(fmt.Sprintf("Seat %d: %s %s", p.Seat, r.name(p), p.Stack))
	}
}

// StreetDealt announces a street and the board.
func (r *Renderer) StreetDealt(phase game.Phase, community []deck.Card, highestBet game.Chips) {
	r.println()
	r.println(r.styles.SubHeader.Render(streetTitle(phase)))
	r.println(r.TableState(community, highestBet))
}

func streetTitle(phase game.Phase) string {
	switch phase {
	case game.Flop:
		return "*** FLOP ***"
	case game.Turn:
		return "*** TURN ***"
	case game.River:
		return "*** RIVER ***"
	default:
		return "*** PRE-FLOP ***"
	}
}

// PlayerActed prints one action.
func (r *Renderer) PlayerActed(p game.PlayerView, action game.Action, amount, pot game.Chips) {
	r.pot = pot

	var text string
	switch action {
	case game.Blind:
		text = fmt.Sprintf("%s: posts blind %s", p.Name, amount)
	case game.Fold:
		text = fmt.Sprintf("%s: folds", p.Name)
	case game.Check:
		text = fmt.Sprintf("%s: checks", p.Name)
	case game.Call:
		text = fmt.Sprintf("%s: calls %s", p.Name, amount)
	case game.Raise:
		text = fmt.Sprintf("%s: raises %s to %s", p.Name, amount, p.Bet)
	case game.AllIn:
		text = fmt.Sprintf("%s: bets %s and is all-in", p.Name, amount)
	}
	if action == game.Raise || action == game.AllIn {
		text += fmt.Sprintf(" (pot now: %s)", pot)
	}
	r.println(r.styles.Action.Render(text))
}

// RoundSettled shows the hands at showdown, who won what and the chip counts.
func (r *Renderer) RoundSettled(result *game.Result) {
	r.println()
	if result.Showdown {
		r.println(r.styles.Header.Render("*** SHOWDOWN ***"))
		r.println("Final board: " + r.Cards(result.Community))
		for _, shown := range result.Hands {
			r.println(fmt.Sprintf("%s shows %s (%s)", shown.Player.Name, r.Cards(shown.Player.Hand), shown.Score))
		}
	}

	for _, payout := range result.Payouts {
		line := fmt.Sprintf("%s wins %s", r.styles.Winner.Render(payout.Player.Name), payout.Amount)
		if !result.Showdown {
			line += " (all others folded)"
		}
		if len(result.Payouts) > 1 {
			line += " (split pot)"
		}
		r.println(line)
	}

	rows := make([][]string, len(result.Payouts))
	for i, payout := range result.Payouts {
		rows[i] = []string{payout.Player.Name, payout.Player.Stack.String()}
	}
	r.println(r.Table([]string{"Winner", "Stack"}, rows...))
}

// MatchWon announces the overall winner.
func (r *Renderer) MatchWon(winner game.PlayerView) {
	r.println()
	r.println(r.styles.Winner.Render(fmt.Sprintf("Player %s has won the match with %s chips!", winner.Name, winner.Stack)))
}

// Rejected explains why a wager was refused.
func (r *Renderer) Rejected(err error) {
	r.println(r.styles.Error.Render(err.Error()))
}
