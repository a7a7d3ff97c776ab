// internal/cli/resource.go
package cli

import (
	"bufio"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/javajoker/store-admin/internal/dashboard"
)

func newResourceCommand(resource dashboard.Resource, v *viper.Viper, opts Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   resource.Path,
		Short: fmt.Sprintf("Row actions for %s", resource.Path),
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: fmt.Sprintf("List %s", resource.Path),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := currentSettings(v)
				if err != nil {
					return err
				}
				return listRows(cmd, newClient(s, opts), s.Store, resource)
			},
		},
		&cobra.Command{
			Use:   "copy-id <id>",
			Short: "Copy a row id to the clipboard",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := currentSettings(v)
				if err != nil {
					return err
				}
				newAction(cmd, s, opts, resource, args[0], nil).Copy()
				return nil
			},
		},
		&cobra.Command{
			Use:   "edit <id>",
			Short: "Print the edit page of a row",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := currentSettings(v)
				if err != nil {
					return err
				}
				newAction(cmd, s, opts, resource, args[0], nil).Edit()
				return nil
			},
		},
		newDeleteCommand(resource, v, opts),
	)

	return cmd
}

func newDeleteCommand(resource dashboard.Resource, v *viper.Viper, opts Options) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a row after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := currentSettings(v)
			if err != nil {
				return err
			}

			client := newClient(s, opts)
			action := newAction(cmd, s, opts, resource, args[0], func() {
				_ = listRows(cmd, client, s.Store, resource)
			})

			action.OpenDelete()
			if !yes && !confirm(cmd, fmt.Sprintf("Delete %s %s? This action cannot be undone. [y/N] ", resource.Name, args[0])) {
				action.Cancel()
				return nil
			}

			if err := action.Confirm(cmd.Context()); err != nil {
				return fmt.Errorf("delete failed: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func newClient(s settings, opts Options) *dashboard.Client {
	return dashboard.NewClient(s.APIURL, s.Token, opts.HTTPClient)
}

func newAction(cmd *cobra.Command, s settings, opts Options, resource dashboard.Resource, id string, onRefresh func()) *dashboard.CellAction {
	out := cmd.OutOrStdout()
	return dashboard.NewCellAction(
		resource, s.Store, id,
		newClient(s, opts),
		dashboard.OSC52Clipboard{Out: out},
		dashboard.ConsoleNotifier{Out: out},
		dashboard.ConsoleNavigator{Out: out, BaseURL: s.DashboardURL, OnRefresh: onRefresh},
	)
}

func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func listRows(cmd *cobra.Command, client *dashboard.Client, storeID string, resource dashboard.Resource) error {
	rows, err := client.List(cmd.Context(), storeID, resource)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tVALUE\tCREATED")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", row.ID, row.Title(), row.Value, row.CreatedAt.Format(time.DateOnly))
	}
	return w.Flush()
}
