package utils

import (
	"regexp"
	"strings"
)

var (
	nigeriaPhone = regexp.MustCompile(`^(?:\+?234|0)([789][01]\d{8})$`)
	ghanaPhone   = regexp.MustCompile(`^(?:\+?233|0)([235]\d{8})$`)
	phoneNoise   = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")
)

// NormalizePhone validates a Nigerian or Ghanaian mobile number and returns
// it in E.164 form. country is "NG", "GH" or empty to accept either.
func NormalizePhone(raw, country string) (string, bool) {
	p := phoneNoise.Replace(strings.TrimSpace(raw))
	if country == "" || country == "NG" {
		if m := nigeriaPhone.FindStringSubmatch(p); m != nil {
			return "+234" + m[1], true
		}
	}
	if country == "" || country == "GH" {
		if m := ghanaPhone.FindStringSubmatch(p); m != nil {
			return "+233" + m[1], true
		}
	}
	return "", false
}

func IsValidPhone(raw string) bool {
	_, ok := NormalizePhone(raw, "")
	return ok
}
