// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command robddtest runs the conformance scenario battery against the robdd
// package and reports pass/fail. It takes no arguments: exit code 0 when
// every scenario passes, 1 otherwise.
package main

import (
	"fmt"
	"os"

	"github.com/bddkit/robdd/internal/cli"
)

func main() {
	root := cli.NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
