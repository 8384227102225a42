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

// NewSequencesCommand creates the sequences command group.
func NewSequencesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sequences",
		Aliases: []string{"courses"},
		Short:   "Manage email sequences",
		Long:    "List email sequences and subscribe email addresses to them",
	}

	cmd.AddCommand(newSequencesListCommand())
	cmd.AddCommand(newSubscribeCommand("sequence", func(client convertkit.Client) func(int64, *convertkit.SubscribeRequest) (*convertkit.Subscription, error) {
		return func(sequenceID int64, request *convertkit.SubscribeRequest) (*convertkit.Subscription, error) {
			return client.Sequences().Subscribe(context.Background(), sequenceID, request)
		}
	}))
	cmd.AddCommand(newSubscriptionsCommand("sequence", func(client convertkit.Client) func(int64, *convertkit.SubscriptionListOptions) (*convertkit.SubscriptionList, error) {
		return func(sequenceID int64, opts *convertkit.SubscriptionListOptions) (*convertkit.SubscriptionList, error) {
			return client.Sequences().ListSubscriptions(context.Background(), sequenceID, opts)
		}
	}))

	return cmd
}

func newSequencesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sequences",
		Long:  "List all email sequences in the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			sequences, err := client.Sequences().List(context.Background())
			if err != nil {
				return fmt.Errorf("listing sequences: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(sequences)
			case OutputFormatYAML:
				return renderYAML(sequences)
			default:
				if len(sequences) == 0 {
					_, _ = os.Stdout.WriteString("No sequences found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Hold", "Repeat", "Created")

				for _, sequence := range sequences {
					_ = table.Append(
						strconv.FormatInt(sequence.ID, 10),
						sequence.Name,
						strconv.FormatBool(sequence.Hold),
						strconv.FormatBool(sequence.Repeat),
						formatTime(sequence.CreatedAt),
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
