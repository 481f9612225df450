package flutter

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Classes every generated file declares besides the screens.
var reservedClasses = []string{"MyApp", "AppSidebar"}

// classNames derives one unique Dart class name per screen, in order.
func classNames(names []string) []string {
	used := make(map[string]struct{}, len(names)+len(reservedClasses))
	for _, name := range reservedClasses {
		used[name] = struct{}{}
	}
	out := make([]string, len(names))
	for i, name := range names {
		base := className(name)
		candidate := base
		for n := 2; ; n++ {
			if _, taken := used[candidate]; !taken {
				break
			}
			candidate = base + strconv.Itoa(n)
		}
		used[candidate] = struct{}{}
		out[i] = candidate
	}
	return out
}

// className turns a display name into a PascalCase identifier ending in
// "Screen". Accents are folded to their base letter; anything outside
// [A-Za-z0-9] separates words.
func className(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range norm.NFD.String(name) {
		switch {
		case r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if upper {
				r = unicode.ToUpper(r)
				upper = false
			}
			b.WriteRune(r)
		case unicode.Is(unicode.Mn, r):
		default:
			upper = true
		}
	}
	id := b.String()
	if id == "" {
		id = "Untitled"
	}
	if id[0] >= '0' && id[0] <= '9' {
		id = "Screen" + id
	}
	if !strings.HasSuffix(id, "Screen") {
		id += "Screen"
	}
	return id
}

// dartString quotes s as a single-quoted Dart literal.
func dartString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '$':
			b.WriteString(`\$`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\x%02X`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// iconIdent reduces a Material icon name to a Dart member identifier.
func iconIdent(name, fallback string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	id := b.String()
	if id == "" || (id[0] >= '0' && id[0] <= '9') {
		return fallback
	}
	return id
}

// comment flattens s onto a single line for a // comment.
func comment(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// fixed formats v with exactly one decimal place.
func fixed(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
