package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	seedCount   int
	seedWallets int
)

var corporations = []string{
	"CLOSED_AI", "MISANTHROPIC", "SHALLOW_MIND",
	"ZUCK_LABS", "Y_AI", "MISTRIAL_SYSTEMS",
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Mint test devs into the database",
	Long:  `Mint a batch of devs across random test wallets and corporations so a local simulation has a population to run.`,
	Run: func(cmd *cobra.Command, args []string) {
		store, eng, err := openEngine()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		defer store.Close()

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		wallets := make([]string, seedWallets)
		for i := range wallets {
			wallets[i] = randomWallet(rng)
		}

		for i := 0; i < seedCount; i++ {
			wallet := wallets[rng.Intn(len(wallets))]
			corp := corporations[rng.Intn(len(corporations))]
			dev, err := eng.MintDev(0, wallet, corp)
			if err != nil {
				fmt.Printf("Error minting dev: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Minted #%d %s (%s, %s) for %s\n",
				dev.TokenID, dev.Name, dev.Archetype, dev.RarityTier, wallet)
		}
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedCount, "count", 20, "Number of devs to mint")
	seedCmd.Flags().IntVar(&seedWallets, "wallets", 5, "Number of test wallets to spread devs across")
}

func randomWallet(rng *rand.Rand) string {
	const hex = "0123456789abcdef"
	b := make([]byte, 40)
	for i := range b {
		b[i] = hex[rng.Intn(len(hex))]
	}
	return "0x" + string(b)
}
