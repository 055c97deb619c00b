// Package slug генерирует случайные идентификаторы коротких ссылок.
package slug

import (
	"crypto/rand"
	"errors"
	"fmt"
)

// Alphabet — 62 символа: цифры, строчные и заглавные латинские буквы.
const Alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// DefaultLength — длина слага по умолчанию (62^7 ≈ 3.5e12 комбинаций).
const DefaultLength = 7

// acceptableMax — наибольшее кратное len(Alphabet), помещающееся в байт.
// Байты выше отбрасываются, иначе остаток от деления даёт смещённое распределение.
const acceptableMax = 256 / len(Alphabet) * len(Alphabet)

// ErrInvalidLength возвращается при запросе слага нулевой или отрицательной длины.
var ErrInvalidLength = errors.New("slug length must be greater than 0")

// Generate возвращает случайную строку из length символов алфавита.
// Использует crypto/rand: слаги непубличных ссылок не должны перебираться.
func Generate(length int) (string, error) {
	if length <= 0 {
		return "", ErrInvalidLength
	}

	out := make([]byte, 0, length)
	buf := make([]byte, length)

	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		for _, b := range buf {
			if len(out) == length {
				break
			}
			if int(b) >= acceptableMax {
				continue
			}
			out = append(out, Alphabet[int(b)%len(Alphabet)])
		}
	}

	return string(out), nil
}
