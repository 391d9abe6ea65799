package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// report is a command result that can render itself as plain text. YAML
// output marshals the report struct instead.
type report interface {
	Text() string
}

func (a *app) emit(cmd *cobra.Command, r report) error {
	w := cmd.OutOrStdout()
	if a.settings.Output == outputYAML {
		out, err := yaml.Marshal(r)
		if err != nil {
			return errors.Wrap(err, "could not encode yaml")
		}
		_, err = w.Write(out)
		return err
	}
	_, err := fmt.Fprintln(w, r.Text())
	return err
}
