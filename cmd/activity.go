package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/serviqo/internal/activity"
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Inspect and prune theme activity",
}

var activityListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent theme activity",
	RunE:  runActivityList,
}

var activityPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete activity older than a given age",
	RunE:  runActivityPrune,
}

func init() {
	activityListCmd.Flags().String("client", "", "only show this visitor id")
	activityListCmd.Flags().String("action", "", "only show this action")
	activityListCmd.Flags().Int("limit", 20, "maximum entries to show")
	activityPruneCmd.Flags().Duration("older-than", 0, "age cutoff (defaults to activity.retention)")

	activityCmd.AddCommand(activityListCmd)
	activityCmd.AddCommand(activityPruneCmd)
	rootCmd.AddCommand(activityCmd)
}

func runActivityList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	database, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	client, _ := cmd.Flags().GetString("client")
	action, _ := cmd.Flags().GetString("action")
	limit, _ := cmd.Flags().GetInt("limit")

	entries, err := activity.NewStore(database).Query(context.Background(), activity.QueryFilter{
		ClientID: client,
		Action:   activity.Action(action),
		Limit:    limit,
	})
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No activity recorded.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tCLIENT\tACTION\tSOURCE\tCHANGE\tDETAIL")
	for _, e := range entries {
		change := "-"
		if e.PreviousValue != "" || e.NewValue != "" {
			change = e.PreviousValue + " -> " + e.NewValue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Timestamp.Format(time.DateTime), e.ClientID, e.Action, e.Source, change, e.Detail)
	}
	w.Flush()
	return nil
}

func runActivityPrune(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	olderThan, _ := cmd.Flags().GetDuration("older-than")
	if olderThan <= 0 {
		olderThan = cfg.Activity.Retention
	}
	if olderThan <= 0 {
		return fmt.Errorf("no retention configured; pass --older-than")
	}

	database, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	deleted, err := activity.NewStore(database).DeleteBefore(context.Background(), time.Now().Add(-olderThan))
	if err != nil {
		return err
	}
	fmt.Printf("Deleted %d activity entries older than %s\n", deleted, olderThan)
	return nil
}
