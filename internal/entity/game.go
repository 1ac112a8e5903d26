package entity

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

// Score keeps the win and draw counters. It survives rounds and is zeroed
// only by an explicit reset.
type Score struct {
	X     int `json:"x"`
	O     int `json:"o"`
	Draws int `json:"draws"`
}

// Game is the whole engine state for one session: the current round plus the
// scoreboard. Turn is empty once the round is finished.
type Game struct {
	ID      string    `json:"id"`
	Board   [9]string `json:"board"`
	Turn    string    `json:"player_turn"`
	Status  string    `json:"status"`
	Winner  string    `json:"winner,omitempty"`
	WinLine []int     `json:"win_line,omitempty"`
	Score   Score     `json:"score"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  [9]string{EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell},
		Turn:   PlayerX,
		Status: StatusOngoing,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) HasWinner() bool {
	return that.Winner == PlayerX || that.Winner == PlayerO
}

func (that *Game) IsTie() bool {
	return that.Winner == PlayerTie
}
