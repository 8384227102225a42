package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kitforge-io/convertkit/pkg/convertkit"
)

// NewFormsCommand creates the forms command group.
func NewFormsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forms",
		Short: "Manage opt-in forms",
		Long:  "List forms and subscribe email addresses to them",
	}

	cmd.AddCommand(newFormsListCommand())
	cmd.AddCommand(newFormsFindCommand())
	cmd.AddCommand(newSubscribeCommand("form", func(client convertkit.Client) func(int64, *convertkit.SubscribeRequest) (*convertkit.Subscription, error) {
		return func(formID int64, request *convertkit.SubscribeRequest) (*convertkit.Subscription, error) {
			return client.Forms().Subscribe(context.Background(), formID, request)
		}
	}))
	cmd.AddCommand(newSubscriptionsCommand("form", func(client convertkit.Client) func(int64, *convertkit.SubscriptionListOptions) (*convertkit.SubscriptionList, error) {
		return func(formID int64, opts *convertkit.SubscriptionListOptions) (*convertkit.SubscriptionList, error) {
			return client.Forms().ListSubscriptions(context.Background(), formID, opts)
		}
	}))

	return cmd
}

func newFormsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List forms",
		Long:  "List all forms in the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			forms, err := client.Forms().List(context.Background())
			if err != nil {
				return fmt.Errorf("listing forms: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(forms)
			case OutputFormatYAML:
				return renderYAML(forms)
			default:
				return renderFormsTable(forms)
			}
		},
	}
}

func newFormsFindCommand() *cobra.Command {
	var (
		formID   int64
		formName string
	)

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find a single form",
		Long:  "Find a single form by id, name, or both",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			form, err := client.Forms().Find(context.Background(), convertkit.FindFormOptions{
				ID:   formID,
				Name: formName,
			})
			if err != nil {
				return fmt.Errorf("finding form: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(form)
			case OutputFormatYAML:
				return renderYAML(form)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", strconv.FormatInt(form.ID, 10))
				_ = table.Append("Name", form.Name)
				_ = table.Append("Type", form.Type)
				_ = table.Append("Embed URL", form.EmbedURL)
				_ = table.Append("Created", formatTime(form.CreatedAt))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}

	cmd.Flags().Int64Var(&formID, "id", 0, "form id")
	cmd.Flags().StringVar(&formName, "name", "", "form name")

	return cmd
}

func renderFormsTable(forms []convertkit.Form) error {
	if len(forms) == 0 {
		_, _ = os.Stdout.WriteString("No forms found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Type", "Created")

	for _, form := range forms {
		_ = table.Append(
			strconv.FormatInt(form.ID, 10),
			form.Name,
			form.Type,
			formatTime(form.CreatedAt),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
