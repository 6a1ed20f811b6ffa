package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/serviqo/internal/subscribers"
)

var subscribersCmd = &cobra.Command{
	Use:   "subscribers",
	Short: "Manage newsletter subscribers",
}

var subscribersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List newsletter subscribers, newest first",
	RunE:  runSubscribersList,
}

var subscribersRemoveCmd = &cobra.Command{
	Use:   "remove <email>",
	Short: "Remove a newsletter subscriber",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubscribersRemove,
}

func init() {
	subscribersCmd.AddCommand(subscribersListCmd)
	subscribersCmd.AddCommand(subscribersRemoveCmd)
	rootCmd.AddCommand(subscribersCmd)
}

func runSubscribersList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	database, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	store := subscribers.NewStore(database)
	subs, err := store.List(context.Background())
	if err != nil {
		return fmt.Errorf("listing subscribers: %w", err)
	}

	if len(subs) == 0 {
		fmt.Println("No subscribers yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "EMAIL\tSOURCE\tSUBSCRIBED")
	for _, s := range subs {
		fmt.Fprintf(w, "%s\t%s\t%s\n", s.Email, s.Source, s.CreatedAt.Format("2006-01-02 15:04"))
	}
	w.Flush()

	fmt.Printf("\n%d subscriber(s)\n", len(subs))
	return nil
}

func runSubscribersRemove(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	database, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	removed, err := subscribers.NewStore(database).Unsubscribe(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("removing subscriber: %w", err)
	}
	if !removed {
		fmt.Printf("%s was not subscribed\n", args[0])
		return nil
	}
	fmt.Printf("Removed %s\n", args[0])
	return nil
}
