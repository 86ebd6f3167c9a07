/*
Copyright © 2026 Flowsmith Authors
*/
package main

import "Flowsmith/internal/cli"

func main() {
	cli.Execute()
}
