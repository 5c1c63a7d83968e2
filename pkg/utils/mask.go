package utils

import (
	"fmt"
	"strings"
)

const maskVisible = 4

// MaskSecret hides all but the first few characters of a secret value so it
// can appear in logs and dry-run output. Multi-line values (PEM keys) are
// reduced to their first line before masking.
func MaskSecret(value string) string {
	if value == "" {
		return ""
	}
	first, _, multiline := strings.Cut(value, "\n")
	if len(first) <= maskVisible {
		return "***"
	}
	masked := first[:maskVisible] + "***"
	if multiline {
		masked += fmt.Sprintf(" (%d lines)", strings.Count(value, "\n")+1)
	}
	return masked
}

// MaskEmail keeps the domain of an address and masks the local part.
func MaskEmail(addr string) string {
	local, domain, ok := strings.Cut(addr, "@")
	if !ok {
		return MaskSecret(addr)
	}
	if len(local) <= 2 {
		return "***@" + domain
	}
	return local[:2] + "***@" + domain
}
