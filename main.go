package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ole-thoeb/rusty-solver/config"
	"github.com/ole-thoeb/rusty-solver/solver"
)

// A small demo of the embedded API. The real CLI lives in cmd/rusty-solver.
func main() {
	printBanner()

	conf := config.New()
	conf.Logger = logrus.New()

	sat := solver.New(conf)
	if err := sat.AddClause([]int{-1, -3, 5}); err != nil {
		logrus.Fatal(err)
	}
	if err := sat.AddClause([]int{-1, -3, -5}); err != nil {
		logrus.Fatal(err)
	}

	res, err := sat.Solve(context.Background())
	if err != nil {
		logrus.Fatal(err)
	}

	fmt.Println("\n" + res.Status.String())
	if res.Status == solver.Satisfiable {
		for _, p := range sat.Answer() {
			fmt.Println(p)
		}
	}
}

func printBanner() {
	fmt.Printf("rusty-solver %s\n", solver.Version())
	fmt.Println("")
}
