package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nxterminal/protocol-wars/config"
	"github.com/nxterminal/protocol-wars/engine"
	"github.com/nxterminal/protocol-wars/storage"
)

var rootCmd = &cobra.Command{
	Use:   "nxctl",
	Short: "NX Terminal maintenance CLI",
	Long:  `Command line interface for seeding and maintaining the simulation database.`,
}

var dbPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", config.Env("NX_DB_PATH", "nxterminal.db"), "Path to the sqlite database")
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(salaryCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(eventCmd)
	rootCmd.AddCommand(statsCmd)
}

// openEngine opens the store and builds a feed-less engine around it.
// The caller must close the store.
func openEngine() (*storage.Store, *engine.Engine, error) {
	store, err := storage.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open store at %s: %w", dbPath, err)
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return store, engine.New(store, nil, rng, logger.Sugar()), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
