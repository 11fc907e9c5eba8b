package view

// CellState is the rendered state of one (user, match) cell in the round
// matrix. Pending and NoPick look similar on screen but mean different
// things: Pending is "the match has not started, picks are hidden",
// NoPick is "the match started and this user never submitted one".
type CellState int

const (
	CellPending CellState = iota
	CellNoPick
	CellMiss    // 0 points
	CellOutcome // 1 point: correct winner or draw
	CellExact   // 3 points: exact score
)

func (s CellState) String() string {
	switch s {
	case CellPending:
		return "pending"
	case CellNoPick:
		return "no_pick"
	case CellMiss:
		return "miss"
	case CellOutcome:
		return "outcome"
	default:
		return "exact"
	}
}

// MatrixMatch is one column of the round matrix.
type MatrixMatch struct {
	MatchID  int
	HomeTeam string
	AwayTeam string
	State    MatchState
}

// MatrixUser is one row of the round matrix.
type MatrixUser struct {
	UserID int
	Name   string
}

// MatrixPrediction is one user's pick for one match in the round.
type MatrixPrediction struct {
	UserID   int
	MatchID  int
	PredHome int
	PredAway int
	Points   *int // nil until scoring has run
}

// Cell is one (user, match) entry in the built matrix.
type Cell struct {
	State    CellState
	Points   int
	PredHome int
	PredAway int
}

// Matrix is the built grid: Cells[i][j] is Users[i] against Matches[j].
type Matrix struct {
	Matches []MatrixMatch
	Users   []MatrixUser
	Cells   [][]Cell
}

// BuildMatrix crosses every ranked user against every match in the round.
//
// A match that has not started renders Pending for everyone, even if the
// payload carried prediction data for it: picks must not leak before
// kickoff, and the client does not trust the server to have withheld them.
// Once a match starts, a missing prediction renders NoPick and an existing
// one is tiered by its points (nil points count as 0 until scoring runs).
func BuildMatrix(matches []MatrixMatch, users []MatrixUser, preds []MatrixPrediction) Matrix {
	type key struct{ userID, matchID int }
	byKey := make(map[key]MatrixPrediction, len(preds))
	for _, p := range preds {
		byKey[key{p.UserID, p.MatchID}] = p
	}

	cells := make([][]Cell, len(users))
	for i, u := range users {
		row := make([]Cell, len(matches))
		for j, m := range matches {
			if m.State.Status == StatusNotStarted {
				row[j] = Cell{State: CellPending}
				continue
			}
			p, ok := byKey[key{u.UserID, m.MatchID}]
			if !ok {
				row[j] = Cell{State: CellNoPick}
				continue
			}
			points := 0
			if p.Points != nil {
				points = *p.Points
			}
			row[j] = Cell{
				State:    tierFor(points),
				Points:   points,
				PredHome: p.PredHome,
				PredAway: p.PredAway,
			}
		}
		cells[i] = row
	}
	return Matrix{Matches: matches, Users: users, Cells: cells}
}

func tierFor(points int) CellState {
	switch points {
	case 3:
		return CellExact
	case 1:
		return CellOutcome
	default:
		return CellMiss
	}
}
