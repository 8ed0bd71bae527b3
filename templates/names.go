// Package templates generates every piece of flavor text in the
// simulation combinatorially. No external generation service is
// involved; all output comes from these word tables and an injected
// random source.
package templates

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/nxterminal/protocol-wars/core"
)

var devPrefixes = []string{
	"NEX", "CIPHER", "VOID", "FLUX", "NOVA", "PULSE", "ZERO", "GHOST",
	"AXIOM", "KIRA", "DAEMON", "ECHO", "HELIX", "ONYX", "RUNE",
	"SPECTRA", "VECTOR", "WRAITH", "ZENITH", "BINARY", "CORTEX", "DELTA",
	"SIGMA", "THETA", "OMEGA", "APEX", "NANO", "QUBIT", "NEXUS", "SHADE",
	"STORM", "FROST", "BLITZ", "CRUX", "DRIFT", "EMBER", "FORGE", "GLITCH",
	"HYPER", "IONIC", "JOLT", "KARMA", "LYNX", "MORPH", "NEON", "PIXEL",
}

var devSuffixes = []string{
	"7X", "404", "9K", "01", "X9", "00", "13", "99", "3V", "Z1",
	"V2", "11", "0X", "FE", "A1", "42", "88", "XL", "PR", "QZ",
	"7Z", "K9", "R2", "5G", "EX", "NX", "X0", "1K", "S7", "D4",
}

var protocolPrefixes = []string{
	"Quantum", "Dark", "Hyper", "Neo", "Ultra", "Mega", "Nano", "Zero",
	"Alpha", "Omega", "Flux", "Nova", "Prime", "Ghost", "Turbo", "Infinite",
	"Shadow", "Crystal", "Atomic", "Stealth", "Rapid", "Deep", "Pulse",
	"Nexus", "Void", "Cosmic", "Stellar", "Thunder", "Iron", "Phantom",
	"Swift", "Blaze", "Vortex", "Apex", "Binary", "Neon", "Cyber",
}

var protocolCores = []string{
	"Swap", "Yield", "Lend", "Stake", "Bridge", "Vault", "Pool", "Farm",
	"Lock", "Mint", "Burn", "Wrap", "Flash", "Snipe", "Arb", "Hedge",
	"Leverage", "Liquidity", "Oracle", "Relay", "Router", "Index",
	"Collateral", "Perps", "Options", "Futures", "Guard", "Forge",
}

var protocolSuffixes = []string{
	"Protocol", "DAO", "Finance", "Labs", "Network", "Exchange", "Hub",
	"Engine", "Core", "Chain", "Layer", "Stack", "Matrix", "System", "X",
	"Pro", "V2", "Ultra", "Max", "One", "Prime", "Plus", "Turbo", "",
	"AI", "Fi", "Base", "Net", "Link", "Port",
}

var protocolDescriptions = []string{
	"Automated yield optimization with {adj} algorithms",
	"Cross-chain {thing} aggregation protocol",
	"Decentralized {thing} marketplace with zero fees",
	"Flash loan powered {adj} arbitrage engine",
	"{adj} liquidity bootstrapping for new tokens",
	"Permissionless {thing} derivatives trading",
	"AI-optimized {adj} portfolio rebalancing",
	"MEV-resistant {thing} execution layer",
	"Trustless {adj} cross-chain bridge",
	"On-chain {thing} risk scoring system",
	"Self-healing {adj} liquidity pool aggregator",
	"Recursive {thing} staking with auto-compound",
	"{adj} options protocol with instant settlement",
	"Gasless {thing} router for micro-transactions",
	"Privacy-first {adj} swap engine",
	"Concentrated {thing} market maker with dynamic fees",
}

var protocolAdjs = []string{
	"quantum-resistant", "zero-knowledge", "MEV-proof", "gasless", "trustless",
	"composable", "modular", "recursive", "self-healing", "adaptive",
	"on-chain", "cross-chain", "layer-agnostic", "permissionless",
	"decentralized", "atomic", "flash", "instant", "perpetual",
}

var protocolThings = []string{
	"lending", "staking", "farming", "bridging", "trading", "vaulting",
	"wrapping", "minting", "governance", "insurance", "derivatives",
	"options", "futures", "liquidity", "collateral", "yield",
}

var aiThings = []string{
	"Pizza", "Cat", "Ex", "Weather", "Parking", "WiFi", "Coffee", "Meeting",
	"Monday", "Email", "Password", "Bug", "Deploy", "Merge Conflict", "404",
	"Blockchain", "NFT", "Rug Pull", "Gas Fee", "Memecoin", "Airdrop",
	"Discord", "Twitter", "Fridge", "Sock", "Traffic", "Elevator", "Uber",
	"Tinder", "Netflix", "Spotify", "Homework", "Hangover", "Alarm Clock",
	"Zoom Call", "LinkedIn", "Toaster", "Laundry", "Gym", "Dentist",
	"WiFi Password", "USB Direction", "Printer", "Excel", "Microwave",
	"Snack", "Vending Machine", "Parallel Parking", "Tax", "Voicemail",
}

var aiActions = []string{
	"Predictor", "Detector", "Optimizer", "Analyzer", "Generator",
	"Eliminator", "Maximizer", "Scanner", "Tracker", "Translator",
	"Finder", "Blocker", "Simulator", "Calculator", "Evaluator",
	"Negotiator", "Scheduler", "Classifier", "Recommender",
}

var aiDescriptions = []string{
	"Predicts your {thing} patterns with {pct}% accuracy using on-chain sentiment data",
	"Scans for potential {thing} situations before you {action}. {pct}% false positive rate",
	"Automatically optimizes your {thing} schedule based on wallet activity analysis",
	"Uses mass spectrometry data to determine the optimal {thing} timing. Probably wrong",
	"Converts {thing} signals into actionable {thing2} insights. Nobody asked for this",
	"AI-powered {thing} avoidance system. Never {action} again. Theoretically",
	"Rates your {thing} decisions on a scale of 1-10. Currently averaging {pct}/10",
	"Detects hidden {thing} patterns in your {thing2} data. {pct}% recall rate",
	"Predicts which {thing} will ruin your day with {pct}% confidence",
	"Cross-references your {thing} history with lunar cycles. Surprisingly accurate {pct}% of the time",
	"Uses advanced regression to explain why your {thing} always fails. Spoiler: it's you",
	"Monitors {thing2} levels and alerts you before {thing} reaches critical mass",
}

var aiActionVerbs = []string{
	"enter a restaurant", "check your phone", "open your laptop", "start a meeting",
	"send an email", "make a trade", "deploy code", "leave the house",
	"check Twitter", "open Discord", "accept a calendar invite", "merge a PR",
}

func pick(rng *rand.Rand, list []string) string {
	return list[rng.Intn(len(list))]
}

// DevName generates a dev name not present in taken. After 100
// collisions it appends a numeric disambiguator.
func DevName(rng *rand.Rand, taken map[string]bool) string {
	for i := 0; i < 100; i++ {
		name := pick(rng, devPrefixes) + "-" + pick(rng, devSuffixes)
		if !taken[name] {
			return name
		}
	}
	return fmt.Sprintf("%s-%s-%d", pick(rng, devPrefixes), pick(rng, devSuffixes), 100+rng.Intn(900))
}

// ProtocolName combines a prefix, a core and an optional suffix.
func ProtocolName(rng *rand.Rand) string {
	name := pick(rng, protocolPrefixes) + pick(rng, protocolCores)
	if suffix := pick(rng, protocolSuffixes); suffix != "" {
		name += " " + suffix
	}
	return name
}

// ProtocolDescription fills a description template.
func ProtocolDescription(rng *rand.Rand) string {
	desc := pick(rng, protocolDescriptions)
	desc = strings.ReplaceAll(desc, "{adj}", pick(rng, protocolAdjs))
	desc = strings.ReplaceAll(desc, "{thing}", pick(rng, protocolThings))
	return desc
}

// AIName generates an absurd AI name.
func AIName(rng *rand.Rand) string {
	return pick(rng, aiThings) + pick(rng, aiActions) + " AI"
}

// AIDescription fills an absurd AI description template.
func AIDescription(rng *rand.Rand) string {
	desc := pick(rng, aiDescriptions)
	desc = strings.ReplaceAll(desc, "{thing2}", strings.ToLower(pick(rng, aiThings)))
	desc = strings.ReplaceAll(desc, "{thing}", strings.ToLower(pick(rng, aiThings)))
	desc = strings.ReplaceAll(desc, "{action}", pick(rng, aiActionVerbs))
	desc = strings.ReplaceAll(desc, "{pct}", strconv.Itoa(12+rng.Intn(86)))
	return desc
}

var species = []string{
	"Wolf", "Cat", "Owl", "Fox", "Bear", "Raven", "Snake", "Shark",
	"Monkey", "Robot", "Alien", "Ghost", "Dragon",
}

var backgrounds = []string{
	"Terminal Green", "Matrix Rain", "Blue Screen", "Dark Office",
	"Server Room", "Neon City", "Binary", "Glitch", "Retro Grid", "Void",
}

var accessories = []string{
	"VR Headset", "Hoodie", "Coffee Cup", "Headphones", "Glasses",
	"Cigarette", "Energy Drink", "Mechanical Keyboard", "Dual Monitors",
	"Rubber Duck", "Bitcoin Necklace", "USB Drive", "Soldering Iron",
	"Tin Foil Hat", "Corporate Badge", "Hacker Mask", "Lab Coat",
	"Gaming Chair", "Standing Desk", "Plant", "None",
}

var expressions = []string{
	"Neutral", "Smirk", "Angry", "Excited", "Tired", "Suspicious", "Maniac", "Zen",
}

// Half of all rolls land on "None".
var specialEffects = []string{
	"None", "None", "None", "None",
	"Glitch", "Binary Rain", "Halo", "Fire Eyes", "Electric",
}

var guaranteedEffects = []string{"Glitch", "Binary Rain", "Halo", "Fire Eyes", "Electric"}

// VisualTraits rolls the cosmetic attributes for a freshly minted dev.
// Legendary and mythic tiers always get a special effect, rare tiers
// half the time.
func VisualTraits(rng *rand.Rand, rarity string) core.VisualTraits {
	traits := core.VisualTraits{
		Species:       pick(rng, species),
		Background:    pick(rng, backgrounds),
		Accessory:     pick(rng, accessories),
		Expression:    pick(rng, expressions),
		SpecialEffect: pick(rng, specialEffects),
	}
	switch rarity {
	case "legendary", "mythic":
		traits.SpecialEffect = pick(rng, guaranteedEffects)
	case "rare":
		if rng.Float64() < 0.5 {
			traits.SpecialEffect = pick(rng, guaranteedEffects)
		}
	}
	return traits
}
