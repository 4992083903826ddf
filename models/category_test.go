package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Peluches", "peluches"},
		{"Juegos de Mesa", "juegos-de-mesa"},
		{"Figuras   de Acción", "figuras---de-accin"}, // each space becomes a hyphen; non-ASCII is stripped
		{"Toys & Games!", "toys--games"},
		{"already-slugged", "already-slugged"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "Slugify(%q)", tt.in)
	}
}
