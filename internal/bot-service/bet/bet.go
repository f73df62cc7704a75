package bet

// Bet é uma aposta extraída de uma mensagem, ainda sem dono.
// Number tem sempre exatamente dois dígitos ("00".."99") — invariante
// garantida na construção pelo parser, nunca relaxada depois.
type Bet struct {
	Number string
	Amount int64
}

// pad normaliza o número para dois dígitos com zero à esquerda
func pad(n string) string {
	if len(n) == 1 {
		return "0" + n
	}
	return n
}

// Reverse inverte os dígitos de um número já normalizado ("15" -> "51").
// Um palíndromo ("11") retorna ele mesmo.
func Reverse(n string) string {
	return string([]byte{n[1], n[0]})
}
