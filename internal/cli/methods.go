package cli

import (
	"fmt"
	"strconv"

	"github.com/deencli/deen/internal/display"
	"github.com/deencli/deen/internal/islamic"
	"github.com/spf13/cobra"
)

func newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List the supported calculation methods",
		Long:  "List the prayer time calculation methods accepted by --method and `config set method`.",
		RunE:  runMethods,
	}
}

func runMethods(cmd *cobra.Command, args []string) error {
	if FlagJSON {
		return printJSON(islamic.Methods)
	}

	tbl := display.NewTable([]string{"ID", "Method"})
	for _, m := range islamic.Methods {
		tbl.AddRow([]string{strconv.Itoa(m.ID), m.Name})
	}
	fmt.Fprint(outWriter, tbl.Render())

	fmt.Fprintf(outWriter, "\n  %s\n", display.Gray("Asr school: 1 = Shafi, 2 = Hanafi"))
	return nil
}
