package main

import "github.com/inovacc/timejar/cmd"

func main() {
	cmd.Execute()
}
