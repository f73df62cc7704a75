package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/radieske/twod-bot-poc/pkg/contracts/events"
)

// O formato do hash é contrato entre o worker e o leitor no bot-service:
// mudar aqui quebra o endpoint de totais.
func TestLedgerMapping(t *testing.T) {
	k, f, n := mapping(events.BetRecorded{ChatID: "-42", Number: "05", Amount: 500})
	assert.Equal(t, "ledger:-42", k)
	assert.Equal(t, "05", f)
	assert.Equal(t, int64(500), n)
}

func TestLedgerMappingKeepsChatIDOpaque(t *testing.T) {
	k, _, _ := mapping(events.BetRecorded{ChatID: "chat with spaces", Number: "22", Amount: 1})
	assert.Equal(t, "ledger:chat with spaces", k)
}
