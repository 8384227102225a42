package commands

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kitforge-io/convertkit/pkg/convertkit"
)

// NewSubscribersCommand creates the subscribers command group.
func NewSubscribersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subscribers",
		Short: "Manage subscribers",
		Long:  "List and inspect subscribers (requires the API secret)",
	}

	cmd.AddCommand(newSubscribersListCommand())
	cmd.AddCommand(newSubscribersGetCommand())

	return cmd
}

func newSubscribersListCommand() *cobra.Command {
	var (
		page      int
		email     string
		sortOrder string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subscribers",
		Long:  "List subscribers in the account, optionally filtered by email address",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			opts := &convertkit.SubscriberListOptions{
				Page:         page,
				EmailAddress: email,
				SortOrder:    sortOrder,
			}

			list, err := client.Subscribers().List(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("listing subscribers: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(list)
			case OutputFormatYAML:
				return renderYAML(list)
			default:
				if len(list.Subscribers) == 0 {
					_, _ = os.Stdout.WriteString("No subscribers found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Email", "First Name", "State", "Created")

				for _, subscriber := range list.Subscribers {
					_ = table.Append(
						strconv.FormatInt(subscriber.ID, 10),
						subscriber.EmailAddress,
						subscriber.FirstName,
						formatState(subscriber.State),
						formatTime(subscriber.CreatedAt),
					)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				_, _ = fmt.Fprintf(os.Stdout, "Page %d of %d (%d total)\n",
					list.Page, list.TotalPages, list.TotalSubscribers)

				return nil
			}
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page to fetch")
	cmd.Flags().StringVar(&email, "email", "", "filter by email address")
	cmd.Flags().StringVar(&sortOrder, "sort-order", "", "sort order (asc, desc)")

	return cmd
}

func newSubscribersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SUBSCRIBER_ID",
		Short: "Show a subscriber",
		Long:  "Show a single subscriber by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriberID, err := parseResourceID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			subscriber, err := client.Subscribers().Get(context.Background(), subscriberID)
			if err != nil {
				return fmt.Errorf("getting subscriber: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(subscriber)
			case OutputFormatYAML:
				return renderYAML(subscriber)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", strconv.FormatInt(subscriber.ID, 10))
				_ = table.Append("Email", subscriber.EmailAddress)
				_ = table.Append("First Name", subscriber.FirstName)
				_ = table.Append("State", formatState(subscriber.State))
				_ = table.Append("Created", formatTime(subscriber.CreatedAt))

				fieldNames := make([]string, 0, len(subscriber.Fields))
				for name := range subscriber.Fields {
					fieldNames = append(fieldNames, name)
				}

				sort.Strings(fieldNames)

				for _, name := range fieldNames {
					_ = table.Append("Field: "+name, subscriber.Fields[name])
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}
