package main

import "github.com/eirnym-learn/promptline/cmd"

func main() {
	cmd.Execute()
}
