package cmd

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"starauto/internal/docstore"
)

var errNoDriver = errors.New("DB_DRIVER не настроен или база недоступна")

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Перенос записей между JSON-файлом и базой",
}

var dbPushCmd = &cobra.Command{
	Use:   "push",
	Short: "JSON-файл → база",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := requireDriver(); err != nil {
			return err
		}
		counts, err := docstore.CopyAll(cmd.Context(), stores.JSON, stores.Driver)
		printCounts(cmd.OutOrStdout(), counts)
		return err
	},
}

var dbPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "База → JSON-файл",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := requireDriver(); err != nil {
			return err
		}
		counts, err := docstore.CopyAll(cmd.Context(), stores.Driver, stores.JSON)
		printCounts(cmd.OutOrStdout(), counts)
		return err
	},
}

func requireDriver() error {
	if stores.Driver == nil || stores.Monitor == nil || !stores.Monitor.Connected() {
		return errNoDriver
	}
	return nil
}

func printCounts(w io.Writer, counts map[string]int) {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%-10s %d\n", name, counts[name])
	}
}
