package cli

import "strings"

// splitLogin decides whether the user typed an alias or an email.
// Anything with an '@' is an email; everything else is an alias.
func splitLogin(login string) (alias string, email string) {
	if strings.Contains(login, "@") {
		return "", login
	}
	return login, ""
}
