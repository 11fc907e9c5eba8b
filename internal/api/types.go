package api

import (
	"time"

	"github.com/quiniela-app/quiniela-go/internal/view"
)

// Match is a fixture row as served by the API. match_date arrives as a
// naive ISO timestamp; use Kickoff to get a real instant.
type Match struct {
	MatchID      int    `json:"match_id"`
	HomeTeam     string `json:"home_team"`
	AwayTeam     string `json:"away_team"`
	HomeTeamLogo string `json:"home_team_logo"`
	AwayTeamLogo string `json:"away_team_logo"`
	MatchDate    string `json:"match_date"`
	LeagueID     int    `json:"league_id"`
	LeagueName   string `json:"league_name"`
	LeagueLogo   string `json:"league_logo"`
	LeagueSeason int    `json:"league_season"`
	LeagueRound  string `json:"league_round"`
	StatusShort  string `json:"status_short"`
	Elapsed      *int   `json:"elapsed"`
	ScoreHome    *int   `json:"score_home"`
	ScoreAway    *int   `json:"score_away"`
}

// Kickoff returns the match start as a UTC instant.
func (m Match) Kickoff() (time.Time, error) {
	return view.ParseServerTime(m.MatchDate)
}

// State classifies the match's raw status code.
func (m Match) State() view.MatchState {
	return view.Classify(m.StatusShort, m.Elapsed)
}

// Prediction is one of the caller's picks joined with its match row.
type Prediction struct {
	PredictionID int    `json:"prediction_id"`
	MatchID      int    `json:"match_id"`
	HomeTeam     string `json:"home_team"`
	AwayTeam     string `json:"away_team"`
	HomeTeamLogo string `json:"home_team_logo"`
	AwayTeamLogo string `json:"away_team_logo"`
	MatchDate    string `json:"match_date"`
	LeagueRound  string `json:"league_round"`
	StatusShort  string `json:"status_short"`
	PredHome     int    `json:"pred_home"`
	PredAway     int    `json:"pred_away"`
	ScoreHome    *int   `json:"score_home"`
	ScoreAway    *int   `json:"score_away"`
	Points       *int   `json:"points"`
}

// Kickoff returns the predicted match's start as a UTC instant.
func (p Prediction) Kickoff() (time.Time, error) {
	return view.ParseServerTime(p.MatchDate)
}

// League identifies one league/season inside a competition.
type League struct {
	LeagueID     int    `json:"league_id"`
	LeagueName   string `json:"league_name"`
	LeagueLogo   string `json:"league_logo"`
	LeagueSeason int    `json:"league_season"`
}

// Competition is a prediction pool. InviteCode is only populated for
// private competitions; public ones are joined from the open listing.
type Competition struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	IsPublic    bool     `json:"is_public"`
	InviteCode  string   `json:"invite_code"`
	MemberCount int      `json:"member_count"`
	MyPoints    int      `json:"my_points"`
	MyRanking   *int     `json:"my_ranking"`
	Leagues     []League `json:"leagues"`
	IsCreator   bool     `json:"is_creator"`
	CreatedAt   string   `json:"created_at"`
}

// RankingResponse is the ranking payload: the active round labels plus
// one row per user. Rows reuse the view type directly since the client
// never stores them, only re-sorts for display.
type RankingResponse struct {
	Rounds  []string          `json:"rounds"`
	Ranking []view.RankingRow `json:"ranking"`
}

// MatrixUser is a ranked user appearing in a round matrix.
type MatrixUser struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
}

// MatrixPrediction is one user's pick inside a round matrix payload.
type MatrixPrediction struct {
	UserID   int  `json:"user_id"`
	MatchID  int  `json:"match_id"`
	PredHome int  `json:"pred_home"`
	PredAway int  `json:"pred_away"`
	Points   *int `json:"points"`
}

// MatrixResponse is the per-round matrix payload: the round's matches and
// every ranked user's predictions for them.
type MatrixResponse struct {
	Round       string             `json:"round"`
	Matches     []Match            `json:"matches"`
	Users       []MatrixUser       `json:"users"`
	Predictions []MatrixPrediction `json:"predictions"`
}

// Profile is the authenticated user's account view.
type Profile struct {
	UserID      int    `json:"user_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	CreatedAt   string `json:"created_at"`
	TotalPoints int    `json:"total_points"`
}

// PushSubscription is the web-push registration payload: where to deliver
// and the keys to encrypt with.
type PushSubscription struct {
	Endpoint  string `json:"endpoint"`
	P256dhKey string `json:"p256dh_key"`
	AuthKey   string `json:"auth_key"`
}
