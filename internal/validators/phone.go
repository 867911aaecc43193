package validators

import "strings"

// NormalizePhone cleans up a guest-entered phone number: surrounding
// whitespace is dropped and internal runs of spaces collapse to one, so
// "+36 30  123 4567" and " +36 30 123 4567 " store identically. An empty
// result means no phone was given; anything else is accepted as-is, the
// salon dials whatever the guest wrote.
func NormalizePhone(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}
