package main

import "github.com/vfg2006/roi-collector-api/internal/cli"

func main() {
	cli.Execute()
}
