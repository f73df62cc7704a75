package bet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Bet
	}{
		{
			name: "dash pair",
			text: "22-500",
			want: []Bet{{Number: "22", Amount: 500}},
		},
		{
			name: "underscore pair",
			text: "22_500",
			want: []Bet{{Number: "22", Amount: 500}},
		},
		{
			name: "d delimiter with space",
			text: "22d 500",
			want: []Bet{{Number: "22", Amount: 500}},
		},
		{
			name: "uppercase D delimiter",
			text: "7D100",
			want: []Bet{{Number: "07", Amount: 100}},
		},
		{
			name: "single digit is left padded",
			text: "5-500",
			want: []Bet{{Number: "05", Amount: 500}},
		},
		{
			name: "equals pair",
			text: "22=500",
			want: []Bet{{Number: "22", Amount: 500}},
		},
		{
			name: "equals pair with spaces",
			text: "22 = 500",
			want: []Bet{{Number: "22", Amount: 500}},
		},
		{
			name: "space separated pair",
			text: "22 500",
			want: []Bet{{Number: "22", Amount: 500}},
		},
		{
			name: "run of spaces is collapsed",
			text: "22   500",
			want: []Bet{{Number: "22", Amount: 500}},
		},
		{
			name: "reverse bet yields both numbers",
			text: "15r500",
			want: []Bet{{Number: "15", Amount: 500}, {Number: "51", Amount: 500}},
		},
		{
			name: "reverse bet uppercase with spaces",
			text: "15 R 500",
			want: []Bet{{Number: "15", Amount: 500}, {Number: "51", Amount: 500}},
		},
		{
			name: "palindrome reverse keeps the duplicate",
			text: "11r500",
			want: []Bet{{Number: "11", Amount: 500}, {Number: "11", Amount: 500}},
		},
		{
			name: "single digit reverse pads before reversing",
			text: "5r100",
			want: []Bet{{Number: "05", Amount: 100}, {Number: "50", Amount: 100}},
		},
		{
			name: "newline separated segments keep order",
			text: "22=500\n10 300",
			want: []Bet{{Number: "22", Amount: 500}, {Number: "10", Amount: 300}},
		},
		{
			name: "comma separated segments",
			text: "22-500, 33-200",
			want: []Bet{{Number: "22", Amount: 500}, {Number: "33", Amount: 200}},
		},
		{
			name: "invalid fragment does not block valid ones",
			text: "hello\n22-500\nworld",
			want: []Bet{{Number: "22", Amount: 500}},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "plain text",
			text: "hello",
			want: nil,
		},
		{
			name: "three digit number is rejected",
			text: "123-500",
			want: nil,
		},
		{
			name: "negative amount is rejected",
			text: "22--500",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.text))
		})
	}
}

// Comportamento permissivo documentado: o delimitador da primeira regra é
// opcional, então a concatenação pura "22500" vira número 22 / valor 500,
// mesmo havendo indício de que formas concatenadas deviam ser ambíguas.
// Pelo mesmo motivo (backtracking do \d{1,2} guloso), um segmento de dois
// dígitos sozinho como "33" vira número 03 / valor 3.
// Mantido de propósito; não "corrigir" sem decisão explícita.
func TestParseConcatenatedFormIsPermissive(t *testing.T) {
	assert.Equal(t, []Bet{{Number: "22", Amount: 500}}, Parse("22500"))
	assert.Equal(t, []Bet{{Number: "03", Amount: 3}}, Parse("33"))
	assert.Equal(t, []Bet{{Number: "07", Amount: 7}}, Parse("77"))
}

func TestReverseIsInvolutive(t *testing.T) {
	for _, n := range []string{"00", "05", "15", "51", "99"} {
		assert.Equal(t, n, Reverse(Reverse(n)))
	}
	// palíndromo é ponto fixo
	assert.Equal(t, "11", Reverse("11"))
}
