/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/tbaxter17/coursetable/cmd"

func main() {
	cmd.Execute()
}
