package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/quiniela-app/quiniela-go/internal/api"
	"github.com/quiniela-app/quiniela-go/internal/view"
)

// --------------------------------------------------------------------------
// Pure renderers. Commands fetch and derive; these only print.
// --------------------------------------------------------------------------

// renderMatchBuckets prints the grouped match listing. picks maps match id
// to the caller's own prediction so the listing can show it inline;
// collapsed buckets show only their header and a count.
func renderMatchBuckets(w io.Writer, matches []api.Match, buckets []view.RoundBucket, picks map[int]api.Prediction, collapsed map[string]bool) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, b := range buckets {
		if collapsed[b.Label] {
			fmt.Fprintf(tw, "%s (%d partidos ocultos)\n", b.Label, len(b.Items))
			continue
		}
		fmt.Fprintf(tw, "%s\n", b.Label)
		for _, it := range b.Items {
			m := matches[it.Index]
			fmt.Fprintf(tw, "  %d\t%s\t%s - %s\t%s\t%s\n",
				m.MatchID,
				it.Kickoff.Local().Format("02 Jan 15:04"),
				m.HomeTeam, m.AwayTeam,
				scoreColumn(m),
				pickColumn(picks, m.MatchID))
		}
	}
	tw.Flush()
}

func scoreColumn(m api.Match) string {
	st := m.State()
	if st.Status == view.StatusNotStarted {
		return st.Label()
	}
	score := "-"
	if m.ScoreHome != nil && m.ScoreAway != nil {
		score = fmt.Sprintf("%d-%d", *m.ScoreHome, *m.ScoreAway)
	}
	return score + " " + st.Label()
}

func pickColumn(picks map[int]api.Prediction, matchID int) string {
	p, ok := picks[matchID]
	if !ok {
		return ""
	}
	s := fmt.Sprintf("mi pick %d-%d", p.PredHome, p.PredAway)
	if p.Points != nil {
		s += fmt.Sprintf(" (+%d)", *p.Points)
	}
	return s
}

// renderPredictions prints the caller's picks, newest kickoff first already
// being the API order.
func renderPredictions(w io.Writer, preds []api.Prediction, now time.Time) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPartido\tFecha\tPick\tPuntos")
	for _, p := range preds {
		points := "-"
		if p.Points != nil {
			points = fmt.Sprintf("%d", *p.Points)
		}
		date := p.MatchDate
		editable := ""
		if kickoff, err := p.Kickoff(); err == nil {
			date = kickoff.Local().Format("02 Jan 15:04")
			if view.Editable(kickoff, now) {
				editable = " (editable)"
			}
		}
		fmt.Fprintf(tw, "%d\t%s - %s\t%s\t%d-%d%s\t%s\n",
			p.PredictionID, p.HomeTeam, p.AwayTeam, date,
			p.PredHome, p.PredAway, editable, points)
	}
	tw.Flush()
}

// renderRanking prints the standings table: position, name, one column per
// active round, then the total.
func renderRanking(w io.Writer, rounds []string, rows []view.RankingRow, s view.SortState) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	header := []string{"Pos", "Nombre"}
	for _, r := range rounds {
		header = append(header, sortMark(r, r == s.Key, s.Descending))
	}
	header = append(header, sortMark("Total", s.Key == view.SortByTotal, s.Descending))
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, row := range rows {
		cols := []string{fmt.Sprintf("%d", row.Position), row.Name}
		for _, r := range rounds {
			cols = append(cols, fmt.Sprintf("%d", row.Rounds[r]))
		}
		cols = append(cols, fmt.Sprintf("%d", row.TotalPoints))
		fmt.Fprintln(tw, strings.Join(cols, "\t"))
	}
	tw.Flush()
}

func sortMark(col string, active, descending bool) string {
	if !active {
		return col
	}
	if descending {
		return col + " v"
	}
	return col + " ^"
}

// renderMatrix prints the round grid, one row per ranked user.
func renderMatrix(w io.Writer, m view.Matrix) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	header := []string{"Usuario"}
	for _, match := range m.Matches {
		header = append(header, match.HomeTeam+"-"+match.AwayTeam)
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for i, u := range m.Users {
		cols := []string{u.Name}
		for _, c := range m.Cells[i] {
			cols = append(cols, cellGlyph(c))
		}
		fmt.Fprintln(tw, strings.Join(cols, "\t"))
	}
	tw.Flush()
}

// cellGlyph renders one matrix cell: a dot while picks are hidden, a dash
// for a missing pick, otherwise the pick with its points.
func cellGlyph(c view.Cell) string {
	switch c.State {
	case view.CellPending:
		return "·"
	case view.CellNoPick:
		return "-"
	default:
		return fmt.Sprintf("%d-%d +%d", c.PredHome, c.PredAway, c.Points)
	}
}

// renderCompetitions prints the competition listing. Invite codes only
// exist for private competitions; public ones are joined from the open
// listing, so the column stays empty for them.
func renderCompetitions(w io.Writer, comps []api.Competition, selectedID int) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNombre\tTipo\tCódigo\tMiembros\tMis puntos\tPos")
	for _, c := range comps {
		kind := "pública"
		code := ""
		if !c.IsPublic {
			kind = "privada"
			code = c.InviteCode
		}
		pos := "-"
		if c.MyRanking != nil {
			pos = fmt.Sprintf("%d", *c.MyRanking)
		}
		marker := ""
		if c.ID == selectedID {
			marker = " *"
		}
		fmt.Fprintf(tw, "%d\t%s%s\t%s\t%s\t%d\t%d\t%s\n",
			c.ID, c.Name, marker, kind, code, c.MemberCount, c.MyPoints, pos)
	}
	tw.Flush()
}

// renderPublicCompetitions prints the open-join browse listing. Here the
// code is the join handle, so it is always shown.
func renderPublicCompetitions(w io.Writer, comps []api.Competition) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNombre\tCódigo\tLigas")
	for _, c := range comps {
		names := make([]string, len(c.Leagues))
		for i, l := range c.Leagues {
			names[i] = fmt.Sprintf("%s %d", l.LeagueName, l.LeagueSeason)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", c.ID, c.Name, c.InviteCode, strings.Join(names, ", "))
	}
	tw.Flush()
}

// renderLeagues prints the catalog of league/season pairs available when
// creating a competition.
func renderLeagues(w io.Writer, leagues []api.League) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tLiga\tTemporada")
	for _, l := range leagues {
		fmt.Fprintf(tw, "%d\t%s\t%d\n", l.LeagueID, l.LeagueName, l.LeagueSeason)
	}
	tw.Flush()
}
