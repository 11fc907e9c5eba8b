package view

import "fmt"

// Status is the display bucket for a match's raw status code.
type Status int

const (
	StatusNotStarted Status = iota
	StatusLive
	StatusFinished
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusLive:
		return "live"
	default:
		return "finished"
	}
}

// Raw status_short codes from the fixtures feed.
const (
	CodeNotStarted = "NS"

	CodeFullTime       = "FT"
	CodeAfterExtraTime = "AET"
	CodePenalties      = "PEN"
)

// finishedCodes are the terminal codes: regulation, extra time, penalties.
var finishedCodes = map[string]bool{
	CodeFullTime:       true,
	CodeAfterExtraTime: true,
	CodePenalties:      true,
}

// liveCodes are the in-progress codes the feed emits between kickoff and
// the final whistle.
var liveCodes = map[string]bool{
	"1H":   true, // first half
	"HT":   true, // half time
	"2H":   true, // second half
	"ET":   true, // extra time
	"BT":   true, // break before extra time
	"P":    true, // penalty shootout
	"SUSP": true, // suspended
	"INT":  true, // interrupted
	"LIVE": true,
}

// MatchState is a classified match status with its elapsed-minutes display
// value (zero when the feed omits it).
type MatchState struct {
	Status  Status
	Elapsed int
}

// Label returns the display label for the state.
func (m MatchState) Label() string {
	switch m.Status {
	case StatusNotStarted:
		return "Por comenzar"
	case StatusLive:
		return fmt.Sprintf("En vivo %d'", m.Elapsed)
	default:
		return "Finalizado"
	}
}

// Classify maps a raw status code to exactly one bucket. Total: finished
// codes are terminal, NS is not started, and everything else is treated
// as live so an unexpected code can never hide a match.
func Classify(code string, elapsed *int) MatchState {
	switch {
	case code == CodeNotStarted:
		return MatchState{Status: StatusNotStarted}
	case finishedCodes[code]:
		return MatchState{Status: StatusFinished}
	default:
		m := MatchState{Status: StatusLive}
		if elapsed != nil {
			m.Elapsed = *elapsed
		}
		return m
	}
}

// ClassifyStrict is Classify but rejects codes outside the documented
// feed vocabulary. A code we have never seen means the upstream data
// contract changed, which should surface in tests and validation runs
// instead of silently rendering as live.
func ClassifyStrict(code string, elapsed *int) (MatchState, error) {
	if code != CodeNotStarted && !finishedCodes[code] && !liveCodes[code] {
		return MatchState{}, fmt.Errorf("unknown match status code %q", code)
	}
	return Classify(code, elapsed), nil
}
