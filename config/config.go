package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
}

// Env returns the value of an environment variable or a default.
func Env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// EnvInt returns an integer environment variable or a default.
func EnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// Scheduling.
const (
	SchedulerInterval  = 1 * time.Second // poll for due devs every second
	SchedulerBatchSize = 500             // max devs per scheduler tick
)

// Cycle intervals between dev turns, selected by energy band.
const (
	CycleHackathon  = 300 * time.Second  // active hackathon event
	CycleHighEnergy = 480 * time.Second  // energy >= 8
	CycleNormal     = 720 * time.Second  // energy 4-7
	CycleLowEnergy  = 1200 * time.Second // energy 1-3
	CycleNoEnergy   = 2700 * time.Second // energy 0
)

// Economy. Salary is paid hourly; the player nets SalaryPerDay per dev
// per day. The on-chain claim collaborator grosses amounts up by the
// 10% contract fee outside this backend.
const (
	SalaryPerDay        = 200
	SalaryInterval      = 1 * time.Hour
	SalaryPerInterval   = (SalaryPerDay + 23) / 24 // ceil, avoids rounding loss
	SnapshotInterval    = 24 * time.Hour
	ClaimFeeBasisPoints = 1000 // mirrors the on-chain constant, reference only
)

// Action costs.
const (
	CostCreateProtocolNXT    = 15
	CostCreateProtocolEnergy = 1
	CostCreateAINXT          = 5
	CostCreateAIEnergy       = 1
	CostMoveEnergy           = 2
	CostInvestEnergy         = 1
	CostReviewEnergy         = 3
	CostChatEnergy           = 0

	MinInvestBalance = 100
)

// StartingBalance by rarity tier.
var StartingBalance = map[string]int{
	"common":    2000,
	"uncommon":  2500,
	"rare":      3000,
	"legendary": 5000,
	"mythic":    10000,
}

// CodeQualityBonus by rarity tier, added to the archetype quality roll.
var CodeQualityBonus = map[string]int{
	"common":    0,
	"uncommon":  5,
	"rare":      10,
	"legendary": 15,
	"mythic":    20,
}

// EnergyRegenBonus by rarity tier, extra energy per regen event.
var EnergyRegenBonus = map[string]int{
	"common":    0,
	"uncommon":  0,
	"rare":      1,
	"legendary": 1,
	"mythic":    2,
}

// RarityWeights used when minting a new dev.
var RarityWeights = map[string]int{
	"common":    60,
	"uncommon":  25,
	"rare":      10,
	"legendary": 4,
	"mythic":    1,
}

// ArchetypeWeights used when minting a new dev.
var ArchetypeWeights = map[string]int{
	"10X_DEV":       10,
	"LURKER":        12,
	"DEGEN":         15,
	"GRINDER":       15,
	"INFLUENCER":    13,
	"HACKTIVIST":    10,
	"FED":           10,
	"SCRIPT_KIDDIE": 15,
}

// World events.
const (
	WorldEventInterval = 12 * time.Hour
	HackathonDuration  = 6 * time.Hour
)
