package title

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Breaking Bad", "breaking bad"},
		{"strips english article", "The Office", "office"},
		{"strips spanish article", "El Ministerio del Tiempo", "ministerio del tiempo"},
		{"only one article stripped", "The La Brea Story", "la brea story"},
		{"removes accents", "Águila Roja", "aguila roja"},
		{"ampersand to and", "Mr. & Mrs. Smith", "mr and mrs smith"},
		{"punctuation dropped", "WALL·E", "wall e"},
		{"whitespace collapsed", "  Breaking   Bad  ", "breaking bad"},
		{"digits preserved", "Fargo 2014", "fargo 2014"},
		{"roman numeral converted", "Rocky III", "rocky 3"},
		{"leading numeral untouched", "V for Vendetta", "v for vendetta"},
		{"standalone x untouched", "American History X", "american history x"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.input))
		})
	}
}
