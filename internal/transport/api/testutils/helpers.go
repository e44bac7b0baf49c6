package testutils

import "strings"

// GenerateOverBytesUnderRunes строка из count рун, каждая по 4 байта. Проходит проверку max по рунам,
// но не проходит max_bytes, например для пароля bcrypt (72 байта) или названия бизнеса.
func GenerateOverBytesUnderRunes(count int) string {
	return strings.Repeat("😁", count)
}
