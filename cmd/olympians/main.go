// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/mdhender/olympians"
	"github.com/mdhender/olympians/model"
	store "github.com/mdhender/olympians/stores/sqlite"
	"github.com/spf13/cobra"
)

// ErrNoDatabase is returned by the store commands when --db is not set.
var ErrNoDatabase = errors.New("--db is required (run init-db to create a database file)")

// openStore returns the store for --db. The file must already exist.
var openStore = func(path string) (model.Store, error) {
	return store.NewSQLiteStoreWithConfig(store.StoreConfig{Path: path})
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(w io.Writer) *cobra.Command {
	addFlags := func(cmd *cobra.Command) error {
		cmd.PersistentFlags().String("db", "", "path to database file (required by the store commands)")
		cmd.PersistentFlags().Bool("debug", false, "log debugging information")
		cmd.PersistentFlags().Bool("log-with-default-flags", false, "log with default flags")
		cmd.PersistentFlags().Bool("log-with-shortfile", true, "log with short file name")
		cmd.PersistentFlags().Bool("log-with-timestamp", false, "log with timestamp")
		cmd.PersistentFlags().Bool("quiet", false, "log less information")
		cmd.PersistentFlags().Bool("show-version", false, "show version")
		cmd.PersistentFlags().Bool("verbose", false, "log more information")
		return nil
	}
	var cmdRoot = &cobra.Command{
		Use:   "olympians",
		Short: "Olympians command line utility",
		Long:  `Create, update, and display Olympians`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logWithDefaultFlags, _ := cmd.Flags().GetBool("log-with-default-flags")
			logWithShortFileName, _ := cmd.Flags().GetBool("log-with-shortfile")
			logWithTimestamp, _ := cmd.Flags().GetBool("log-with-timestamp")
			logFlags := 0
			if logWithShortFileName {
				logFlags |= log.Lshortfile
			}
			if logWithTimestamp {
				logFlags |= log.Ltime
			}
			if logWithDefaultFlags || logFlags == 0 {
				logFlags = log.LstdFlags
			}
			log.SetFlags(logFlags)

			if showVersion, _ := cmd.Flags().GetBool("show-version"); showVersion {
				fmt.Fprintf(w, "olympians: version %q\n", olympians.Version().Core())
			}

			return nil
		},
	}
	cmdRoot.SetOut(w)
	cmdRoot.AddCommand(cmdAdd(w))
	cmdRoot.AddCommand(cmdCompactDB())
	cmdRoot.AddCommand(cmdDelete())
	cmdRoot.AddCommand(cmdInitDB())
	cmdRoot.AddCommand(cmdList(w))
	cmdRoot.AddCommand(cmdRename())
	cmdRoot.AddCommand(cmdSetEnergy())
	cmdRoot.AddCommand(cmdShow(w))
	cmdRoot.AddCommand(cmdVersion(w))
	if err := addFlags(cmdRoot); err != nil {
		log.Fatal(err)
	}
	return cmdRoot
}

// logLevels reads the shared logging flags. quiet wins over verbose.
func logLevels(cmd *cobra.Command) (quiet, verbose, debug bool) {
	quiet, _ = cmd.Flags().GetBool("quiet")
	verbose, _ = cmd.Flags().GetBool("verbose")
	debug, _ = cmd.Flags().GetBool("debug")
	if quiet {
		verbose = false
	}
	return quiet, verbose, debug
}

func withStore(cmd *cobra.Command, fn func(s model.Store) error) error {
	path, _ := cmd.Flags().GetString("db")
	if path == "" {
		return ErrNoDatabase
	}
	if _, _, debug := logLevels(cmd); debug {
		log.Printf("db: %s\n", path)
	}
	s, err := openStore(path)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Close(); err != nil {
			log.Printf("db: close: %v\n", err)
		}
	}()
	return fn(s)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", arg, err)
	}
	return id, nil
}

func parseEnergy(arg string) (float64, error) {
	energy, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid energy %q: %w", arg, err)
	}
	return energy, nil
}
