package main

import (
	"log"

	"github.com/dynajs-dev/dynajs/cmd"
)

func main() {
	log.Default().SetFlags(0)
	cmd.Execute()
}
