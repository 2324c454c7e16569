package cli

import (
	"context"
	"fmt"
	"strings"
)

// AuthenticatedArea is the screen behind the login. Returns true when the
// user logged out (back to the login screen), false on exit.
func (a *App) AuthenticatedArea(ctx context.Context) bool {
	if u := a.store.Current(); u != nil {
		fmt.Fprintf(a.out, "Welcome, %s\n", u.Name)
	}
	fmt.Fprintln(a.out, "Commands: whoami, ping, logout, exit")

	for {
		line, err := GetSimpleText(a.reader, "", a.out)
		if err != nil {
			return false
		}

		switch strings.TrimSpace(line) {
		case "whoami":
			u := a.store.Current()
			if u == nil {
				fmt.Fprintln(a.out, "not authenticated")
				continue
			}
			fmt.Fprintf(a.out, "%s <%s> (id %s)\n", u.Name, u.Email, u.ID)

		case "ping":
			if err := a.client.Ping(ctx); err != nil {
				fmt.Fprintf(a.out, "server unreachable: %v\n", err)
			} else {
				fmt.Fprintln(a.out, "ok")
			}

		case "logout":
			a.login.SignOut(ctx)
			fmt.Fprintln(a.out, "Logged out")
			return true

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return false

		case "":
			continue

		default:
			fmt.Fprintln(a.out, "Unknown command:", line)
		}
	}
}
