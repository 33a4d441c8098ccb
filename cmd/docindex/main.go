// Command docindex is a thin CLI front end over the in-memory document
// index. All logic lives in internal/search; this file only starts the
// command tree.
package main

import "github.com/anthropics/docindex/internal/cli"

func main() {
	cli.Execute()
}
