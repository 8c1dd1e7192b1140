package main

import "github.com/DimitriosCha/sudoku-solver/cmd"

func main() {
	cmd.Execute()
}
