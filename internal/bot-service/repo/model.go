package repo

import "time"

// BetRecord é o modelo persistido no Postgres: a aposta mais a proveniência
// (quem, onde, quando). Nunca é atualizado, só inserido e lido.
type BetRecord struct {
	ID        string
	ChatID    string
	Sender    string
	Number    string // dois dígitos, "00".."99"
	Amount    int64
	CreatedAt time.Time
}
