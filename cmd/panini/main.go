// Package main is the panini command itself.
package main

import (
	"log"
	"os"

	"github.com/lcr-robotics/lilpanini/cli"
)

func main() {
	app := cli.NewApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
