package validator

import (
	"regexp"
	"strings"
)

var (
	idCard18Regex = regexp.MustCompile(`^\d{6}(18|19|20)\d{2}(0[1-9]|1[012])(0[1-9]|[12]\d|3[01])\d{3}[\dXx]$`)
	idCard15Regex = regexp.MustCompile(`^\d{8}(0[1-9]|1[012])(0[1-9]|[12]\d|3[01])\d{3}$`)

	// First two digits of the administrative division code.
	idCardRegions = map[string]struct{}{
		"11": {}, "12": {}, "13": {}, "14": {}, "15": {},
		"21": {}, "22": {}, "23": {},
		"31": {}, "32": {}, "33": {}, "34": {}, "35": {}, "36": {}, "37": {},
		"41": {}, "42": {}, "43": {}, "44": {}, "45": {}, "46": {},
		"50": {}, "51": {}, "52": {}, "53": {}, "54": {},
		"61": {}, "62": {}, "63": {}, "64": {}, "65": {},
		"71": {}, "81": {}, "82": {}, "91": {},
	}

	idCardWeights = [17]int{7, 9, 10, 5, 8, 4, 2, 1, 6, 3, 7, 9, 10, 5, 8, 4, 2}
)

const idCardParity = "10X98765432"

// IDCard validates a mainland China resident ID number: 15 digits, or 18
// characters whose last one is an ISO 7064 MOD 11-2 check character. Empty
// values are accepted; combine with a length check to require one.
func IDCard(value string) string {
	if IsEmpty(value) {
		return ""
	}

	switch {
	case idCard18Regex.MatchString(value):
		if !idCardChecksumOK(value) {
			return MsgIDCard
		}
	case idCard15Regex.MatchString(value):
	default:
		return MsgIDCard
	}

	if _, ok := idCardRegions[value[:2]]; !ok {
		return MsgIDCard
	}
	return ""
}

func idCardChecksumOK(value string) bool {
	sum := 0
	for i, w := range idCardWeights {
		sum += int(value[i]-'0') * w
	}
	return idCardParity[sum%11] == strings.ToUpper(value[17:])[0]
}
