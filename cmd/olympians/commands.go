// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"fmt"
	"io"
	"log"

	"github.com/mdhender/olympians"
	"github.com/mdhender/olympians/model"
	store "github.com/mdhender/olympians/stores/sqlite"
	"github.com/spf13/cobra"
)

func cmdAdd(w io.Writer) *cobra.Command {
	var energy float64
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().Float64Var(&energy, "energy", olympians.DefaultEnergy, "starting energy")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "add <name>",
		Short:        "add an Olympian",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, verbose, _ := logLevels(cmd)
			e := model.NewEntrant(args[0])
			if cmd.Flags().Changed("energy") {
				e.SetEnergy(energy)
			}
			return withStore(cmd, func(s model.Store) error {
				id, err := s.InsertOlympian(cmd.Context(), e.Record())
				if err != nil {
					return err
				}
				e.ID = id
				if verbose {
					log.Printf("add: %q: id %d\n", e.Name(), id)
				}
				return e.DisplayInfo(w)
			})
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdRename() *cobra.Command {
	var cmd = &cobra.Command{
		Use:          "rename <id> <name>",
		Short:        "change the name of an Olympian",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return updateEntrant(cmd, id, func(e *model.Entrant) {
				e.SetName(args[1])
			})
		},
	}
	return cmd
}

func cmdSetEnergy() *cobra.Command {
	var cmd = &cobra.Command{
		Use:          "set-energy <id> <energy>",
		Short:        "change the energy of an Olympian",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			energy, err := parseEnergy(args[1])
			if err != nil {
				return err
			}
			return updateEntrant(cmd, id, func(e *model.Entrant) {
				e.SetEnergy(energy)
			})
		},
	}
	return cmd
}

func updateEntrant(cmd *cobra.Command, id int64, fn func(e *model.Entrant)) error {
	_, verbose, _ := logLevels(cmd)
	return withStore(cmd, func(s model.Store) error {
		r, err := s.GetOlympian(cmd.Context(), id)
		if err != nil {
			return err
		}
		e := model.FromRecord(r)
		fn(e)
		if err := s.UpdateOlympian(cmd.Context(), e.Record()); err != nil {
			return err
		}
		if verbose {
			log.Printf("%s: %d: updated\n", cmd.Name(), id)
		}
		return nil
	})
}

func cmdShow(w io.Writer) *cobra.Command {
	var cmd = &cobra.Command{
		Use:          "show <id>",
		Short:        "display one Olympian",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withStore(cmd, func(s model.Store) error {
				r, err := s.GetOlympian(cmd.Context(), id)
				if err != nil {
					return err
				}
				return display(w, model.FromRecord(r))
			})
		},
	}
	return cmd
}

func cmdList(w io.Writer) *cobra.Command {
	showStats := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&showStats, "stats", showStats, "show totals after the list")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "list",
		Short:        "display all Olympians",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(s model.Store) error {
				records, err := s.ListOlympians(cmd.Context())
				if err != nil {
					return err
				}
				for _, r := range records {
					if err := display(w, model.FromRecord(r)); err != nil {
						return err
					}
				}
				if showStats {
					stats := model.Summarize(records)
					if _, err := fmt.Fprintf(w, "olympians: %d, total energy: %.1f\n", stats.Olympians, stats.TotalEnergy); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

// display accepts any Olympian so the commands never depend on the concrete type.
func display(w io.Writer, o olympians.Olympian) error {
	return o.DisplayInfo(w)
}

func cmdDelete() *cobra.Command {
	var cmd = &cobra.Command{
		Use:          "delete <id>",
		Short:        "remove an Olympian",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withStore(cmd, func(s model.Store) error {
				return s.DeleteOlympian(cmd.Context(), id)
			})
		},
	}
	return cmd
}

func cmdInitDB() *cobra.Command {
	var cmd = &cobra.Command{
		Use:          "init-db <path>",
		Short:        "create a new database file",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.InitDatabase(args[0]); err != nil {
				return err
			}
			if quiet, _, _ := logLevels(cmd); !quiet {
				log.Printf("%s: created\n", args[0])
			}
			return nil
		},
	}
	return cmd
}

func cmdCompactDB() *cobra.Command {
	var cmd = &cobra.Command{
		Use:          "compact-db <path>",
		Short:        "checkpoint and vacuum a database file",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.CompactDatabase(args[0]); err != nil {
				return err
			}
			if quiet, _, _ := logLevels(cmd); !quiet {
				log.Printf("%s: compacted\n", args[0])
			}
			return nil
		},
	}
	return cmd
}

func cmdVersion(w io.Writer) *cobra.Command {
	showBuildInfo := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&showBuildInfo, "build-info", showBuildInfo, "show build information")
		return nil
	}
	var cmd = &cobra.Command{
		Use:   "version",
		Short: "display the application's version number",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showBuildInfo {
				fmt.Fprintln(w, olympians.Version().String())
				return nil
			}
			fmt.Fprintln(w, olympians.Version().Core())
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}
