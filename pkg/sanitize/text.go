package sanitize

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/unicode/norm"
)

// maxCleanPasses bounds the strip/unescape loop for pathological input.
const maxCleanPasses = 8

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

// CleanText NFC-normalises raw and strips any markup from it. Stripping is
// repeated until the text stops changing so a cleaned value is returned as is
// when cleaned again. Text without a '<' is never touched by the policy.
func CleanText(raw string) string {
	s := norm.NFC.String(raw)
	policy := textSanitizer()
	for i := 0; i < maxCleanPasses && strings.ContainsRune(s, '<'); i++ {
		next := norm.NFC.String(html.UnescapeString(policy.Sanitize(s)))
		if next == s {
			break
		}
		s = next
	}
	return s
}
