package colis

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	referencePrefix = "COL"
	suffixLength    = 5
	codeLength      = 6
)

// newReference генерирует человекочитаемую ссылку формата COL-<ts36>-<rand5>.
// Временная метка сама по себе коллизии не исключает, поэтому случайная часть
// берется из uuid, а уникальность окончательно гарантирует констрейнт в БД
// (с ограниченным повтором генерации на 23505).
func newReference(now time.Time) string {
	timestamp := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	random := randomToken(suffixLength)
	return referencePrefix + "-" + timestamp + "-" + random
}

// newConfirmationCode - код подтверждения для передачи/получения колиса.
func newConfirmationCode() string {
	return randomToken(codeLength)
}

func randomToken(length int) string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	if len(token) < length {
		return token
	}
	return token[:length]
}
