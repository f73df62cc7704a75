package bet

import (
	"regexp"
	"strconv"
	"strings"
)

// Gramática das notações de aposta, avaliada em ordem: a primeira regra que
// casar consome o segmento inteiro. Segmentos que não casam com nenhuma regra
// são descartados em silêncio — fragmentos inválidos numa mensagem de várias
// linhas não bloqueiam os válidos.
type rule struct {
	re      *regexp.Regexp
	reverse bool // regra "r": gera também a aposta com o número invertido
}

var rules = []rule{
	// par com delimitador -, _, d ou D (opcional): "22-500", "22_500", "22d 500", "22 500"
	{re: regexp.MustCompile(`^(\d{1,2})\s*[-_dD]?\s*(\d+)$`)},
	// aposta reversa: "15r500" vale 500 no 15 e 500 no 51
	{re: regexp.MustCompile(`^(\d{1,2})\s*[rR]\s*(\d+)$`), reverse: true},
	// par com igual: "22=500"
	{re: regexp.MustCompile(`^(\d{1,2})\s*=\s*(\d+)$`)},
	// fallback "NN VALOR" separado só por espaço
	{re: regexp.MustCompile(`^(\d{1,2})\s+(\d+)$`)},
}

var spaces = regexp.MustCompile(`\s+`)

// Parse converte o texto de uma mensagem em zero ou mais apostas.
// Nunca falha: entrada vazia ou irreconhecível produz uma lista vazia.
// A ordem dos segmentos (separados por nova linha ou vírgula) é preservada;
// um segmento reverso contribui duas entradas consecutivas, a original primeiro.
func Parse(text string) []Bet {
	var out []Bet
	segments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == ','
	})
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		seg = spaces.ReplaceAllString(seg, " ")

		for _, rl := range rules {
			m := rl.re.FindStringSubmatch(seg)
			if m == nil {
				continue
			}
			amount, err := strconv.ParseInt(m[2], 10, 64)
			if err != nil {
				// só acontece por overflow; trata como fragmento inválido
				break
			}
			n := pad(m[1])
			out = append(out, Bet{Number: n, Amount: amount})
			if rl.reverse {
				out = append(out, Bet{Number: Reverse(n), Amount: amount})
			}
			break
		}
	}
	return out
}
