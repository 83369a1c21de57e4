/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/mkarlsen/cvsym/cmd/cvsym/cmd"
)

func main() {
	cmd.Execute()
}
