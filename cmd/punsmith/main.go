// Command punsmith generates "What do you call a ...?" compound-noun puns.
//
// Usage:
//
//	punsmith [theme]            generate one riddle, themed or untargeted
//	punsmith dataset            generate riddles for a theme list and export them
//	punsmith migrate [up|down|status]
//	punsmith inspect similarity|verb|related ...
//	punsmith version
//
// Exit codes: 0 = success (including "no pun found"), 1 = error.
package main

import (
	"os"

	"github.com/heartmarshall/punsmith/cmd/punsmith/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
