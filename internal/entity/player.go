package entity

// BotConnectionID marks the synthetic opponent in solo rooms.
// It never maps to a real connection, so nothing may be sent to it.
const BotConnectionID = "bot"

type Player struct {
	ConnectionID string `json:"id"`
	Name         string `json:"name"`
	Symbol       string `json:"symbol"`
}

func NewBotPlayer() *Player {
	return &Player{
		ConnectionID: BotConnectionID,
		Name:         "Bot (Test)",
		Symbol:       PlayerO,
	}
}

func (that *Player) IsBot() bool {
	return that.ConnectionID == BotConnectionID
}
