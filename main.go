// The wordcloud package seeds the global math/rand source via rand.Seed,
// which Go 1.24 turned into a no-op by default; restore the seeded behavior.
//go:debug randseednop=0

package main

import "github.com/Vijay8143/lyrics-explorer/cmd"

func main() {
	cmd.Execute()
}
