package utils

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// GenerateOrderNumber creates a unique order number with timestamp.
// Format: ORD-<unix millis>-<9 random base36 chars, uppercased>.
// Uniqueness is enforced by the orders.order_number unique index; the
// random suffix only keeps collisions negligible within one millisecond.
func GenerateOrderNumber() string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

	buf := make([]byte, 9)
	rand.Read(buf)

	var sb strings.Builder
	for _, b := range buf {
		sb.WriteByte(alphabet[int(b)%len(alphabet)])
	}

	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), strings.ToUpper(sb.String()))
}
