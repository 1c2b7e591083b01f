package utils

import "strings"

// FormatPhone renders an 11-digit number as +7 (XXX) XXX-XX-XX.
// Anything else is returned trimmed but otherwise unchanged.
func FormatPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	digits := make([]byte, 0, 11)
	for i := 0; i < len(phone); i++ {
		if phone[i] >= '0' && phone[i] <= '9' {
			digits = append(digits, phone[i])
		}
	}
	if len(digits) != 11 {
		return phone
	}
	d := string(digits)
	return "+" + d[0:1] + " (" + d[1:4] + ") " + d[4:7] + "-" + d[7:9] + "-" + d[9:11]
}
