package entity

import "time"

// Outcome - result of a finished match from the first player's seat.
type Outcome int8

const (
	OutcomeDraw Outcome = iota
	OutcomePlayer1
	OutcomePlayer2
)

const WinnerNone = "-"

func (that Outcome) String() string {
	switch that {
	case OutcomePlayer1:
		return "player 1"
	case OutcomePlayer2:
		return "player 2"
	default:
		return "draw"
	}
}

// Match - record of one finished game.
type Match struct {
	ID         string        `json:"id"`
	Players    []*Player     `json:"players"`
	Moves      []string      `json:"moves"`
	State      string        `json:"state"`
	Winner     string        `json:"winner"`
	Outcome    Outcome       `json:"outcome"`
	ThinkTime  time.Duration `json:"think_time"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
}

func (that *Match) Duration() time.Duration {
	return that.FinishedAt.Sub(that.StartedAt)
}

// Scoreboard - win and draw tally over many matches.
type Scoreboard struct {
	Player1Wins int
	Player2Wins int
	Draws       int
}

func (that *Scoreboard) Add(outcome Outcome) {
	switch outcome {
	case OutcomePlayer1:
		that.Player1Wins++
	case OutcomePlayer2:
		that.Player2Wins++
	default:
		that.Draws++
	}
}

func (that *Scoreboard) Total() int {
	return that.Player1Wins + that.Player2Wins + that.Draws
}

// BatchResult - one row of the showdown results log.
type BatchResult struct {
	ThinkTimeMS int64     `db:"think_time_ms"`
	ElapsedMS   int64     `db:"elapsed_ms"`
	GamesPlayed int       `db:"games_played"`
	Player1Wins int       `db:"player1_wins"`
	Player2Wins int       `db:"player2_wins"`
	Draws       int       `db:"draws"`
	RecordedAt  time.Time `db:"recorded_at"`
}

func NewBatchResult(thinkTime, elapsed time.Duration, board Scoreboard) *BatchResult {
	return &BatchResult{
		ThinkTimeMS: thinkTime.Milliseconds(),
		ElapsedMS:   elapsed.Milliseconds(),
		GamesPlayed: board.Total(),
		Player1Wins: board.Player1Wins,
		Player2Wins: board.Player2Wins,
		Draws:       board.Draws,
		RecordedAt:  time.Now().UTC(),
	}
}
