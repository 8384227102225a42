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

// NewTagsCommand creates the tags command group.
func NewTagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Manage tags",
		Long:  "List and create tags, and tag subscribers",
	}

	cmd.AddCommand(newTagsListCommand())
	cmd.AddCommand(newTagsCreateCommand())
	cmd.AddCommand(newSubscribeCommand("tag", func(client convertkit.Client) func(int64, *convertkit.SubscribeRequest) (*convertkit.Subscription, error) {
		return func(tagID int64, request *convertkit.SubscribeRequest) (*convertkit.Subscription, error) {
			return client.Tags().Subscribe(context.Background(), tagID, request)
		}
	}))
	cmd.AddCommand(newSubscriptionsCommand("tag", func(client convertkit.Client) func(int64, *convertkit.SubscriptionListOptions) (*convertkit.SubscriptionList, error) {
		return func(tagID int64, opts *convertkit.SubscriptionListOptions) (*convertkit.SubscriptionList, error) {
			return client.Tags().ListSubscriptions(context.Background(), tagID, opts)
		}
	}))

	return cmd
}

func newTagsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tags",
		Long:  "List all tags in the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			tags, err := client.Tags().List(context.Background())
			if err != nil {
				return fmt.Errorf("listing tags: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(tags)
			case OutputFormatYAML:
				return renderYAML(tags)
			default:
				if len(tags) == 0 {
					_, _ = os.Stdout.WriteString("No tags found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Created")

				for _, tag := range tags {
					_ = table.Append(
						strconv.FormatInt(tag.ID, 10),
						tag.Name,
						formatTime(tag.CreatedAt),
					)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newTagsCreateCommand() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "create TAG_NAME",
		Short: "Create a tag",
		Long:  "Create a new tag in the account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			tag, err := client.Tags().Create(context.Background(), &convertkit.TagCreateRequest{
				Name:        args[0],
				Description: description,
			})
			if err != nil {
				return fmt.Errorf("creating tag: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(tag)
			case OutputFormatYAML:
				return renderYAML(tag)
			default:
				_, _ = fmt.Fprintf(os.Stdout, "Successfully created tag '%s' with ID %d\n", tag.Name, tag.ID)

				return nil
			}
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "tag description")

	return cmd
}
