// Package commands implements the convertkit CLI commands.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/kitforge-io/convertkit/pkg/ckclient"
	"github.com/kitforge-io/convertkit/pkg/convertkit"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	Masked = "***"
)

// Common static errors used throughout the commands package.
var (
	ErrAPIKeyNotConfigured = errors.New("API key not configured (use 'convertkit config set-credentials' or --api-key)")
	ErrInvalidResourceID   = errors.New("resource id must be a number")
	ErrUnknownConfigKey    = errors.New("unknown config key")
)

// CreateClient builds an API client from the effective configuration
// (flags, environment, config file).
func CreateClient() (convertkit.Client, error) {
	apiKey := viper.GetString("api-key")
	if apiKey == "" {
		return nil, ErrAPIKeyNotConfigured
	}

	config := &convertkit.Config{
		APIKey:    apiKey,
		APISecret: viper.GetString("api-secret"),
		BaseURL:   viper.GetString("api"),
		Debug:     viper.GetBool("verbose"),
	}

	client, err := ckclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating API client: %w", err)
	}

	return client, nil
}

// parseResourceID converts a positional argument to a numeric resource id.
func parseResourceID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidResourceID, arg)
	}

	return id, nil
}

// renderJSON writes data to stdout as indented JSON.
func renderJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding to JSON: %w", err)
	}

	return nil
}

// renderYAML writes data to stdout as YAML.
func renderYAML(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding to YAML: %w", err)
	}

	return nil
}

// formatTime renders an optional timestamp for table output.
func formatTime(t *time.Time) string {
	if t == nil {
		return NotAvailable
	}

	return t.Format("2006-01-02 15:04:05")
}

// formatState title-cases a subscriber or subscription state for table
// output ("active" -> "Active").
func formatState(state string) string {
	if state == "" {
		return NotAvailable
	}

	return cases.Title(language.English).String(state)
}

// renderSubscription prints a single subscription in the configured
// output format.
func renderSubscription(subscription *convertkit.Subscription) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return renderJSON(subscription)
	case OutputFormatYAML:
		return renderYAML(subscription)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("Subscription ID", strconv.FormatInt(subscription.ID, 10))
		_ = table.Append("State", formatState(subscription.State))
		_ = table.Append("Subscriber ID", strconv.FormatInt(subscription.Subscriber.ID, 10))
		_ = table.Append("Email", subscription.Subscriber.EmailAddress)
		_ = table.Append("First Name", subscription.Subscriber.FirstName)
		_ = table.Append("Created", formatTime(subscription.CreatedAt))

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

// renderSubscriptionList prints a paged subscription listing in the
// configured output format.
func renderSubscriptionList(list *convertkit.SubscriptionList) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return renderJSON(list)
	case OutputFormatYAML:
		return renderYAML(list)
	default:
		if len(list.Subscriptions) == 0 {
			_, _ = os.Stdout.WriteString("No subscriptions found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Email", "State", "Source", "Created")

		for _, subscription := range list.Subscriptions {
			_ = table.Append(
				strconv.FormatInt(subscription.ID, 10),
				subscription.Subscriber.EmailAddress,
				formatState(subscription.State),
				subscription.Source,
				formatTime(subscription.CreatedAt),
			)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		_, _ = fmt.Fprintf(os.Stdout, "Page %d of %d (%d total)\n",
			list.Page, list.TotalPages, list.TotalSubscriptions)

		return nil
	}
}

// newSubscribeCommand builds the shared "subscribe" subcommand used by
// forms, sequences, and tags.
func newSubscribeCommand(
	entityType string,
	subscribe func(client convertkit.Client) func(int64, *convertkit.SubscribeRequest) (*convertkit.Subscription, error),
) *cobra.Command {
	var (
		firstName string
		fields    map[string]string
	)

	cmd := &cobra.Command{
		Use:   "subscribe " + strings.ToUpper(entityType) + "_ID EMAIL",
		Short: "Subscribe an email address to a " + entityType,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resourceID, err := parseResourceID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			subscription, err := subscribe(client)(resourceID, &convertkit.SubscribeRequest{
				Email:     args[1],
				FirstName: firstName,
				Fields:    fields,
			})
			if err != nil {
				return fmt.Errorf("subscribing to %s: %w", entityType, err)
			}

			return renderSubscription(subscription)
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "subscriber first name")
	cmd.Flags().StringToStringVar(&fields, "field", nil, "custom fields (key=value)")

	return cmd
}

// newSubscriptionsCommand builds the shared "subscriptions" subcommand
// used by forms, sequences, and tags.
func newSubscriptionsCommand(
	entityType string,
	list func(client convertkit.Client) func(int64, *convertkit.SubscriptionListOptions) (*convertkit.SubscriptionList, error),
) *cobra.Command {
	var (
		page            int
		sortOrder       string
		subscriberState string
	)

	cmd := &cobra.Command{
		Use:   "subscriptions " + strings.ToUpper(entityType) + "_ID",
		Short: "List subscriptions to a " + entityType,
		Long:  "List subscriptions to a " + entityType + " (requires the API secret)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resourceID, err := parseResourceID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			opts := &convertkit.SubscriptionListOptions{
				Page:            page,
				SortOrder:       sortOrder,
				SubscriberState: subscriberState,
			}

			subscriptions, err := list(client)(resourceID, opts)
			if err != nil {
				return fmt.Errorf("listing %s subscriptions: %w", entityType, err)
			}

			return renderSubscriptionList(subscriptions)
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page to fetch")
	cmd.Flags().StringVar(&sortOrder, "sort-order", "", "sort order (asc, desc)")
	cmd.Flags().StringVar(&subscriberState, "state", "", "filter by subscriber state (active, cancelled)")

	return cmd
}
