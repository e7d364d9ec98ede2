package main

import (
	"errors"
	"os"
	"strings"

	"github.com/flarebyte/getitem/cmd/getitem/root"
	"github.com/flarebyte/getitem/internal/catalog"
)

type exitCoder interface {
	ExitCode() int
}

func main() {
	if err := root.Execute(os.Args[1:]); err != nil {
		_, _ = os.Stderr.WriteString(errorLine(err) + "\n")
		code := 1
		if ec, ok := err.(exitCoder); ok {
			if c := ec.ExitCode(); c != 0 {
				code = c
			}
		}
		os.Exit(code)
	}
}

// errorLine is the stderr text for err. Catalog errors name user input and
// paths, so they are printed unchanged; anything else is collapsed to one
// line with no usage dump.
func errorLine(err error) string {
	var (
		nf  *catalog.NotFoundError
		me  *catalog.MalformedError
		inf *catalog.ItemNotFoundError
	)
	if errors.As(err, &nf) || errors.As(err, &me) || errors.As(err, &inf) {
		return err.Error()
	}
	msg := strings.Join(strings.Fields(err.Error()), " ")
	if msg == "" {
		msg = "error"
	}
	return msg
}
