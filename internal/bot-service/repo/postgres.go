package repo

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/radieske/twod-bot-poc/internal/bot-service/bet"
)

// Postgres implementa operações de persistência de apostas em banco Postgres
type Postgres struct{ db *sql.DB }

// NewPostgres retorna uma instância do repositório de apostas
func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

// InsertBet insere uma aposta já normalizada; created_at é atribuído pelo banco
func (p *Postgres) InsertBet(ctx context.Context, r *BetRecord) (string, error) {
	id := uuid.NewString()
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO bets (id, chat_id, sender, number, amount)
		VALUES ($1,$2,$3,$4,$5)`,
		id, r.ChatID, r.Sender, r.Number, r.Amount,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// ListByChat retorna os registros do chat em ordem de inserção.
// A ordem importa: o modo por usuário do relatório preserva quem apostou
// primeiro. Amount sai como texto; a agregação tolera valor não numérico.
func (p *Postgres) ListByChat(ctx context.Context, chatID string) ([]bet.Record, error) {
	const q = `
		SELECT number, amount::text, sender, created_at
		FROM bets
		WHERE chat_id = $1
		ORDER BY created_at, id;
	`
	rows, err := p.db.QueryContext(ctx, q, chatID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []bet.Record
	for rows.Next() {
		var r bet.Record
		if err := rows.Scan(&r.Number, &r.Amount, &r.Sender, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
