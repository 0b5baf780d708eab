package main

import (
	"fmt"
	"strings"

	"github.com/hfal/kursdoc"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	question := strings.Join(c.Question, " ")

	answer, err := deps.Asker.Ask(deps.Ctx, question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kursdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
