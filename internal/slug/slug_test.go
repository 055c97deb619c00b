package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Тест длины и алфавита сгенерированного слага
func TestGenerate_LengthAndAlphabet(t *testing.T) {
	for _, length := range []int{1, 7, 16, 62, 100} {
		got, err := Generate(length)
		require.NoError(t, err)
		assert.Len(t, got, length)
		for _, r := range got {
			assert.Contains(t, Alphabet, string(r))
		}
	}
}

func TestGenerate_InvalidLength(t *testing.T) {
	_, err := Generate(0)
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = Generate(-5)
	assert.ErrorIs(t, err, ErrInvalidLength)
}

// Повторные вызовы не должны выдавать одинаковые слаги
func TestGenerate_Independent(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		got, err := Generate(DefaultLength)
		require.NoError(t, err)
		assert.False(t, seen[got], "duplicate slug %q after %d generations", got, i)
		seen[got] = true
	}
}

func BenchmarkGenerate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Generate(DefaultLength); err != nil {
			b.Fatal(err)
		}
	}
}

// Все 62 символа алфавита должны встречаться
func TestGenerate_CoversAlphabet(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 200; i++ {
		got, err := Generate(DefaultLength)
		require.NoError(t, err)
		sb.WriteString(got)
	}
	all := sb.String()
	for _, r := range Alphabet {
		assert.Contains(t, all, string(r))
	}
}
