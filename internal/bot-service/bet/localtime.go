package bet

import "time"

// Deslocamento local fixo (+06:30). A região não observa horário de verão,
// então não há dependência de base de fusos — é aritmética pura sobre o
// instante UTC.
const localOffset = 6*time.Hour + 30*time.Minute

// BeforeNoonLocal indica se o instante cai antes do meio-dia no horário local
// de deslocamento fixo.
func BeforeNoonLocal(t time.Time) bool {
	return t.UTC().Add(localOffset).Hour() < 12
}
