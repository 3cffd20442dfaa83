// Command overlaysim replays disclosure scenarios on a simulated clock.
package main

import "github.com/go-drift/disclosure/cmd/overlaysim/cmd"

func main() {
	cmd.Execute()
}
