package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nvquang/vnpit/internal/config"
)

func defaultSnapshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".vnpit"
	}
	return filepath.Join(home, ".vnpit", "snapshots")
}

func snapshotStore(cmd *cobra.Command) (*config.SnapshotStore, error) {
	dir, _ := cmd.Flags().GetString("dir")
	return config.NewSnapshotStore(dir)
}

func snapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage saved calculator inputs",
	}
	cmd.PersistentFlags().String("dir", defaultSnapshotDir(), "snapshot directory")

	save := &cobra.Command{
		Use:   "save [name]",
		Short: "Save the salary inputs under a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := snapshotStore(cmd)
			if err != nil {
				return err
			}
			salary, err := salaryInputFromFlags(cmd)
			if err != nil {
				return err
			}
			snap := config.Snapshot{Name: args[0], Salary: &salary}
			if err := st.Save(snap); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved snapshot %q\n", args[0])
			return nil
		},
	}
	addSalaryFlags(save)

	show := &cobra.Command{
		Use:   "show [name]",
		Short: "Print a saved snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := snapshotStore(cmd)
			if err != nil {
				return err
			}
			snap, err := st.Load(args[0])
			if err != nil {
				return err
			}
			return emit(cmd, fmt.Sprintf("%s (saved %s)\n", snap.Name, snap.SavedAt.Format("2006-01-02 15:04")), snap)
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List saved snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := snapshotStore(cmd)
			if err != nil {
				return err
			}
			names, err := st.List()
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a saved snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := snapshotStore(cmd)
			if err != nil {
				return err
			}
			if err := st.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted snapshot %q\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(save, show, list, del)
	return cmd
}
