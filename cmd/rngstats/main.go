package main

import "github.com/grafana/rngstats/cmd/rngstats/cmd"

func main() {
	cmd.Execute()
}
