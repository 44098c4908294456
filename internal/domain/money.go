package domain

import (
	"fmt"
	"strings"
)

// FormatAmount renders an amount in paise as rupees with Indian digit
// grouping, e.g. 150000000 -> "15,00,000.00".
func FormatAmount(paise int64) string {
	negative := paise < 0
	if negative {
		paise = -paise
	}

	rupees := paise / 100
	fraction := paise % 100

	grouped := groupIndian(fmt.Sprintf("%d", rupees))
	out := fmt.Sprintf("%s.%02d", grouped, fraction)
	if negative {
		return "-" + out
	}

	return out
}

// groupIndian inserts separators in the 3-then-2 Indian pattern.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	parts = append(parts, tail)

	return strings.Join(parts, ",")
}
