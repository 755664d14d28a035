package entity

const (
	KindHuman = "human"
	KindBot   = "bot"
)

type Player struct {
	Name string `json:"name"`
	Mark Mark   `json:"mark"`
	Kind string `json:"kind"`
}

func (that *Player) IsBot() bool {
	return that.Kind == KindBot
}
