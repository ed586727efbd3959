package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/neogo/model"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspect a single near-Earth object",
	Long: "Inspect a near-Earth object by primary designation or by IAU name. " +
		"Matching is exact and case-sensitive.",
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().String("pdes", "", "primary designation of the object")
	inspectCmd.Flags().String("name", "", "IAU name of the object")
	inspectCmd.MarkFlagsMutuallyExclusive("pdes", "name")
	inspectCmd.MarkFlagsOneRequired("pdes", "name")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	store, err := loadStore(cmd)
	if err != nil {
		return err
	}

	var (
		body *model.Body
		ok   bool
	)
	if pdes, _ := cmd.Flags().GetString("pdes"); pdes != "" {
		body, ok = store.LookupByDesignation(pdes)
	} else {
		name, _ := cmd.Flags().GetString("name")
		body, ok = store.LookupByName(name)
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "No matching NEO found. Matching is exact - check spelling and capitalization.")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), body)
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		for _, a := range body.Approaches {
			fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", a)
		}
	}
	return nil
}
