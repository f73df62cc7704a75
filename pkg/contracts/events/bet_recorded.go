package events

// BetRecorded é emitido pelo bot-service após persistir uma aposta no Postgres.
// Number sempre vem normalizado com dois dígitos ("00".."99").
type BetRecorded struct {
	BetID    string `json:"bet_id"`
	ChatID   string `json:"chat_id"`
	Sender   string `json:"sender"`
	Number   string `json:"number"`
	Amount   int64  `json:"amount"`
	TsUnixMs int64  `json:"ts_unix_ms"`
}
