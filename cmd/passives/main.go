package main

import "github.com/OpenTraceLab/OpenTracePassives/cmd/passives/cmd"

func main() {
	cmd.Execute()
}
