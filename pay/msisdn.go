package pay

import "strings"

// NormalizeMSISDN rewrites a Kenyan phone number into Daraja's expected
// 254XXXXXXXXX form: a leading '+' is stripped, a national trunk '0' is
// rewritten to '254', and an already-international number passes
// through unchanged.
func NormalizeMSISDN(phone string) string {
	p := strings.TrimSpace(phone)
	p = strings.TrimPrefix(p, "+")
	if strings.HasPrefix(p, "0") {
		p = "254" + p[1:]
	}
	return p
}

// ValidMSISDN reports whether a normalized number looks like a Kenyan
// mobile number (254 followed by nine digits).
func ValidMSISDN(phone string) bool {
	if len(phone) != 12 || !strings.HasPrefix(phone, "254") {
		return false
	}
	for _, c := range phone[3:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
