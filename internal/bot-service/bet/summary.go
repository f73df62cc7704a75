package bet

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Record é a linha lida do armazenamento para agregação.
// Amount chega como string: um valor que não coagir para número contribui
// zero em vez de abortar o relatório inteiro.
type Record struct {
	Number    string
	Amount    string
	Sender    string
	CreatedAt time.Time // UTC, atribuído na inserção
}

// grouped soma valores por chave preservando a ordem de inserção das chaves.
// Mapas comuns não servem aqui: no modo por usuário, quem apostou primeiro
// aparece primeiro na linha.
type grouped struct {
	keys []string
	sums map[string]int64
}

func (g *grouped) add(key string, v int64) {
	if g.sums == nil {
		g.sums = make(map[string]int64)
	}
	if _, ok := g.sums[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.sums[key] += v
}

// Summarize monta o relatório de apostas. ok=false sinaliza "sem dados" —
// distinto de um relatório vazio; o chamador decide a mensagem.
// perUser=false: uma linha "NN - soma" por número, em ordem crescente.
// perUser=true: "NN -> fulano: x; beltrano: y", números em ordem crescente,
// remetentes na ordem da primeira aposta de cada um naquele número.
func Summarize(records []Record, perUser bool) (string, bool) {
	if len(records) == 0 {
		return "", false
	}
	if perUser {
		return perUserReport(records), true
	}
	return totalReport(records), true
}

func amountOf(r Record) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(r.Amount), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func totalReport(records []Record) string {
	totals := make(map[string]int64)
	numbers := make([]string, 0, 8)
	for _, r := range records {
		if _, ok := totals[r.Number]; !ok {
			numbers = append(numbers, r.Number)
		}
		totals[r.Number] += amountOf(r)
	}
	// ordem lexicográfica crescente == ordem numérica para "00".."99"
	sort.Strings(numbers)

	var b strings.Builder
	for i, n := range numbers {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s - %d", n, totals[n])
	}
	return b.String()
}

func perUserReport(records []Record) string {
	byNumber := make(map[string]*grouped)
	numbers := make([]string, 0, 8)
	for _, r := range records {
		g := byNumber[r.Number]
		if g == nil {
			g = &grouped{}
			byNumber[r.Number] = g
			numbers = append(numbers, r.Number)
		}
		g.add(r.Sender, amountOf(r))
	}
	sort.Strings(numbers)

	var b strings.Builder
	for i, n := range numbers {
		if i > 0 {
			b.WriteByte('\n')
		}
		g := byNumber[n]
		parts := make([]string, 0, len(g.keys))
		for _, sender := range g.keys {
			parts = append(parts, fmt.Sprintf("%s: %d", sender, g.sums[sender]))
		}
		fmt.Fprintf(&b, "%s -> %s", n, strings.Join(parts, "; "))
	}
	return b.String()
}
