package main

import (
	"fmt"
	"strconv"

	"github.com/Veraticus/aashto-classifier/internal/classification"
	"github.com/Veraticus/aashto-classifier/internal/cli"
	"github.com/Veraticus/aashto-classifier/internal/model"
	"github.com/spf13/cobra"
)

func rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Show the classification decision table",
		Long: `Show the AASHTO decision table in evaluation order. The first rule whose
criteria all hold assigns the code; later rules are not consulted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules := classification.Default().Rules()
			rows := make([][]string, 0, len(rules)+1)
			for i, r := range rules {
				rows = append(rows, []string{strconv.Itoa(i + 1), cli.FormatCode(r.Code), r.Criteria})
			}
			rows = append(rows, []string{"-", cli.FormatCode(model.CodeUnclassifiable), "no rule matched"})

			_, err := fmt.Fprint(cmd.OutOrStdout(),
				cli.FormatTitle("AASHTO Decision Table")+"\n",
				cli.RenderTable([]string{"Order", "Code", "Criteria"}, rows))
			return err
		},
	}
}

func codesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "List AASHTO group codes and their constituents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			codes := model.Codes()
			rows := make([][]string, 0, len(codes))
			for _, c := range codes {
				rows = append(rows, []string{
					cli.FormatCode(c),
					classification.Group(c),
					classification.GroupMaterial(c).Label(),
					classification.ConstituentsFor(c),
				})
			}

			_, err := fmt.Fprint(cmd.OutOrStdout(),
				cli.RenderTable([]string{"Code", "Group", "Material", "Constituents"}, rows))
			return err
		},
	}
}
