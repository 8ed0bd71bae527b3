package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nxterminal/protocol-wars/config"
)

var salaryCmd = &cobra.Command{
	Use:   "salary",
	Short: "Run one hourly salary payout",
	Run: func(cmd *cobra.Command, args []string) {
		store, eng, err := openEngine()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		defer store.Close()

		n, err := eng.PaySalaries()
		if err != nil {
			fmt.Printf("Error paying salaries: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Paid %d NXT to %d devs\n", config.SalaryPerInterval, n)
	},
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Write today's per-player balance snapshots",
	Run: func(cmd *cobra.Command, args []string) {
		store, eng, err := openEngine()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		defer store.Close()

		n, err := eng.TakeBalanceSnapshots(time.Now().UTC())
		if err != nil {
			fmt.Printf("Error taking snapshots: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Snapshotted %d players\n", n)
	},
}

var eventHours int

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Start a random world event",
	Run: func(cmd *cobra.Command, args []string) {
		store, eng, err := openEngine()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		defer store.Close()

		if err := eng.SpawnWorldEvent(time.Duration(eventHours) * time.Hour); err != nil {
			fmt.Printf("Error spawning world event: %v\n", err)
			os.Exit(1)
		}
		events, err := store.ListWorldEvents(1)
		if err == nil && len(events) > 0 {
			fmt.Printf("Started: %s (%s) until %s\n",
				events[0].Title, events[0].EventType, events[0].EndsAt.Format(time.RFC3339))
		}
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print aggregate simulation stats",
	Run: func(cmd *cobra.Command, args []string) {
		store, _, err := openEngine()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		defer store.Close()

		st, err := store.Stats()
		if err != nil {
			fmt.Printf("Error reading stats: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Devs: %d (%d active)\n", st.TotalDevs, st.ActiveDevs)
		fmt.Printf("NXT in wallets: %d\n", st.TotalNXT)
		fmt.Printf("Protocols: %d (%d active), AIs: %d\n", st.TotalProtocols, st.ActiveProtocols, st.TotalAIs)
		fmt.Printf("Avg energy: %.1f, avg reputation: %.1f\n", st.AvgEnergy, st.AvgReputation)
	},
}

func init() {
	eventCmd.Flags().IntVar(&eventHours, "hours", int(config.HackathonDuration/time.Hour), "Event duration in hours")
}
