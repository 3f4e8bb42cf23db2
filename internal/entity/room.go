package entity

const (
	StatusWaiting  = "waiting"
	StatusPlaying  = "playing"
	StatusFinished = "finished"

	PlayerX = "X"
	PlayerO = "O"

	WinnerDraw = "draw"

	EmptyCell = ""

	MaxPlayers = 2
)

// Room is one game session: up to two players, a board and cumulative scores.
type Room struct {
	Code     string         `json:"code"`
	Players  []*Player      `json:"players"`
	Board    [9]string      `json:"board"`
	Turn     string         `json:"currentTurn"`
	Status   string         `json:"status"`
	Scores   map[string]int `json:"scores"`
	SoloMode bool           `json:"soloMode,omitempty"`
}

func NewRoom(code string) *Room {
	return &Room{
		Code:   code,
		Turn:   PlayerX,
		Status: StatusWaiting,
		Scores: map[string]int{PlayerX: 0, PlayerO: 0},
	}
}

func (that *Room) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Room) IsPlaying() bool {
	return that.Status == StatusPlaying
}

func (that *Room) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Room) IsFull() bool {
	return len(that.Players) >= MaxPlayers
}

// AddPlayer appends a player; callers check IsFull first.
func (that *Room) AddPlayer(player *Player) {
	that.Players = append(that.Players, player)
}

// PlayerByConnection returns the player owned by the given connection, or nil.
func (that *Room) PlayerByConnection(connectionID string) *Player {
	for _, player := range that.Players {
		if player.ConnectionID == connectionID {
			return player
		}
	}

	return nil
}

// RemovePlayer drops the player owned by the given connection.
// It reports whether a player was actually removed.
func (that *Room) RemovePlayer(connectionID string) bool {
	for i, player := range that.Players {
		if player.ConnectionID != connectionID {
			continue
		}

		that.Players = append(that.Players[:i], that.Players[i+1:]...)

		return true
	}

	return false
}

// FreeSymbol returns the symbol not held by any current player.
// On an empty room the first symbol handed out is X.
func (that *Room) FreeSymbol() string {
	for _, player := range that.Players {
		if player.Symbol == PlayerX {
			return PlayerO
		}
	}

	return PlayerX
}

// ResetBoard clears the cells and hands the turn back to X. Scores are kept.
func (that *Room) ResetBoard() {
	that.Board = [9]string{}
	that.Turn = PlayerX
}
