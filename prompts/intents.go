// Package prompts turns free-text player instructions into typed
// intents, a compliance outcome and a canned in-character reply. It is
// pure keyword matching over lowercased text; no generation service is
// involved anywhere.
package prompts

import "strings"

// Intents.
const (
	IntentCommandCreate  = "COMMAND_CREATE"
	IntentCommandInvest  = "COMMAND_INVEST"
	IntentCommandSell    = "COMMAND_SELL"
	IntentCommandMove    = "COMMAND_MOVE"
	IntentCommandRest    = "COMMAND_REST"
	IntentCommandReview  = "COMMAND_REVIEW"
	IntentQuestionStatus = "QUESTION_STATUS"
	IntentQuestionOpinion = "QUESTION_OPINION"
	IntentQuestionMarket = "QUESTION_MARKET"
	IntentEncourage      = "ENCOURAGE"
	IntentCriticize      = "CRITICIZE"
	IntentStrategy       = "STRATEGY"
	IntentChat           = "CHAT"
)

type intentRule struct {
	keywords []string
	intent   string
}

// Ordered; the first rule with a matching keyword wins.
var intentRules = []intentRule{
	{[]string{"crea", "create", "build", "ship", "deploy", "hace", "haz", "construi", "desarrolla",
		"programa", "code", "codea", "protocol", "protocolo", "buildea"}, IntentCommandCreate},
	{[]string{"inviert", "invest", "buy", "compra", "ape", "mete", "apuesta", "back",
		"stake", "farm", "yield"}, IntentCommandInvest},
	{[]string{"vend", "sell", "dump", "sali", "exit", "retira", "profit", "take profit",
		"cash out", "liquida"}, IntentCommandSell},
	{[]string{"anda", "move", "go to", "ve a", "mueve", "cambia", "viaja", "ir a",
		"relocate", "caminate"}, IntentCommandMove},
	{[]string{"descansa", "rest", "sleep", "dormi", "relax", "recupera", "break",
		"para", "stop", "chill"}, IntentCommandRest},
	{[]string{"revisa", "review", "audit", "analiz", "check", "inspect", "verifica",
		"bug", "vulnerab", "seguridad"}, IntentCommandReview},
	{[]string{"como estas", "how are you", "que tal", "como vas", "status", "estado",
		"como te va", "que onda", "how's it going", "sitrep", "report"}, IntentQuestionStatus},
	{[]string{"que opinas", "what do you think", "que piensas", "opinion", "thoughts",
		"crees que", "do you think", "parece", "seems", "worth it"}, IntentQuestionOpinion},
	{[]string{"mercado", "market", "precio", "price", "vale", "worth", "trending",
		"pump", "dump", "bull", "bear", "alpha"}, IntentQuestionMarket},
	{[]string{"bien hecho", "good job", "nice", "great", "genial", "crack", "machine",
		"legend", "goat", "king", "sigue asi", "keep it up", "orgullo", "proud",
		"excelente", "amazing", "bravo", "sos un", "you're the"}, IntentEncourage},
	{[]string{"mal", "bad", "terrible", "inutil", "useless", "que haces", "wtf",
		"por que", "why did you", "no sirve", "decepcion", "disappointing",
		"peor", "worst", "perdiste", "lost", "arruinaste"}, IntentCriticize},
	{[]string{"estrategia", "strategy", "plan", "enfoca", "focus", "prioriza", "prioritize",
		"concentra", "long term", "largo plazo", "conservador", "agresivo",
		"safe", "risk", "diversifica"}, IntentStrategy},
}

// ClassifyIntent maps a prompt to its intent. Ambiguous prompts are
// plain chat.
func ClassifyIntent(text string) string {
	t := strings.ToLower(strings.TrimSpace(text))
	for _, rule := range intentRules {
		for _, kw := range rule.keywords {
			if strings.Contains(t, kw) {
				return rule.intent
			}
		}
	}
	return IntentChat
}

type topicRule struct {
	topic    string
	keywords []string
}

// Ordered so repeated runs scan deterministically.
var topicRules = []topicRule{
	{"defi", []string{"defi", "swap", "yield", "lending", "lend", "stake", "farming", "liquidity", "amm", "dex"}},
	{"nft", []string{"nft", "collectible", "art", "pfp", "mint", "collection"}},
	{"security", []string{"security", "audit", "seguridad", "hack", "exploit", "bug", "vulnerability"}},
	{"ai", []string{"ai", "ia", "artificial", "inteligencia", "machine learning", "absurd", "crazy"}},
	{"trading", []string{"trade", "trading", "profit", "chart", "pump", "dump", "bull", "bear", "long", "short"}},
	{"social", []string{"chat", "talk", "friend", "ally", "alliance", "team", "together"}},
	{"sabotage", []string{"sabotage", "attack", "destroy", "hack", "ddos", "rug", "exploit", "steal"}},
}

// ExtractTopic finds the first topic whose keyword appears in the
// prompt, or "" when none matches.
func ExtractTopic(text string) string {
	t := strings.ToLower(text)
	for _, rule := range topicRules {
		for _, kw := range rule.keywords {
			if strings.Contains(t, kw) {
				return rule.topic
			}
		}
	}
	return ""
}

type locationRule struct {
	location string
	keywords []string
}

var locationRules = []locationRule{
	{"HACKATHON_HALL", []string{"hackathon", "hack hall", "hackathon hall", "crear", "build"}},
	{"THE_PIT", []string{"pit", "trading", "trade", "mercado", "market"}},
	{"DARK_WEB", []string{"dark web", "darkweb", "dark", "underground"}},
	{"VC_TOWER", []string{"vc", "venture", "investor", "tower", "inversiones"}},
	{"OPEN_SOURCE_GARDEN", []string{"open source", "garden", "fork", "libre"}},
	{"SERVER_FARM", []string{"server", "farm", "compute", "servidor"}},
	{"GOVERNANCE_HALL", []string{"governance", "gobierno", "regulation", "hall"}},
	{"HYPE_HAUS", []string{"hype", "haus", "viral", "trending", "social"}},
	{"THE_GRAVEYARD", []string{"graveyard", "cementerio", "dead", "ghost"}},
	{"BOARD_ROOM", []string{"board", "home", "base", "oficina", "office"}},
}

// ExtractLocation finds a mentioned location, or "" when none matches.
func ExtractLocation(text string) string {
	t := strings.ToLower(text)
	for _, rule := range locationRules {
		for _, kw := range rule.keywords {
			if strings.Contains(t, kw) {
				return rule.location
			}
		}
	}
	return ""
}

// ExtractProtocolMention returns the first known protocol whose name
// appears in the prompt, case-insensitively.
func ExtractProtocolMention(text string, known []string) string {
	t := strings.ToLower(text)
	for _, name := range known {
		if strings.Contains(t, strings.ToLower(name)) {
			return name
		}
	}
	return ""
}
