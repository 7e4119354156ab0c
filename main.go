// Package main provides the entry point for the vypiska-csv CLI application.
package main

import (
	"dpetrov/vypiska-csv/cmd/batch"
	"dpetrov/vypiska-csv/cmd/process"
	"dpetrov/vypiska-csv/cmd/root"
)

func main() {
	root.Init()
	root.Cmd.AddCommand(process.Cmd)
	root.Cmd.AddCommand(batch.Cmd)

	if err := root.Cmd.Execute(); err != nil {
		root.Log.Fatal(err)
	}
}
