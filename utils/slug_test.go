package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain title", "Piso luminoso en el centro", "piso-luminoso-en-el-centro"},
		{"accents and eñe", "Ático con vistas a la Montaña", "atico-con-vistas-a-la-montana"},
		{"cedilla", "Casa a Sant Joan de Moró ç", "casa-a-sant-joan-de-moro-c"},
		{"punctuation collapses", "Local -- comercial!!  (planta baja)", "local-comercial-planta-baja"},
		{"leading and trailing symbols", "  ¡Oportunidad!  ", "oportunidad"},
		{"only symbols", "!!!", "property"},
		{"empty", "", "property"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestSlugify_Truncates(t *testing.T) {
	long := ""
	for i := 0; i < 30; i++ {
		long += "casa "
	}

	slug := Slugify(long)
	assert.LessOrEqual(t, len(slug), slugMaxLen)
	assert.NotEqual(t, '-', rune(slug[len(slug)-1]))
}

func TestFold(t *testing.T) {
	assert.Equal(t, "atico", Fold("Ático"))
	assert.Equal(t, "balafia, lleida", Fold("Balàfia, Lleida"))
	assert.Equal(t, "montana", Fold("MONTAÑA"))
	assert.Equal(t, "50% _x_", Fold("50% _X_"))
}

func TestPropertySlug(t *testing.T) {
	t.Run("appends first eight characters of id", func(t *testing.T) {
		slug := PropertySlug("Piso en Castellón", "3F2A9C1B-77aa-4c1e-9d7e-1234567890ab")
		assert.Equal(t, "piso-en-castellon-3f2a9c1b", slug)
	})

	t.Run("same title different ids are distinct", func(t *testing.T) {
		a := PropertySlug("Casa", "aaaaaaaa-0000")
		b := PropertySlug("Casa", "bbbbbbbb-0000")
		assert.NotEqual(t, a, b)
	})

	t.Run("short id is used whole", func(t *testing.T) {
		assert.Equal(t, "casa-abc", PropertySlug("Casa", "abc"))
	})

	t.Run("empty id", func(t *testing.T) {
		assert.Equal(t, "casa", PropertySlug("Casa", ""))
	})
}
