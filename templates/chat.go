package templates

import (
	"math/rand"
	"strconv"
	"strings"
)

// Chat contexts.
const (
	CtxIdle            = "idle"
	CtxCreatedProtocol = "created_protocol"
	CtxCreatedAI       = "created_ai"
	CtxInvested        = "invested"
	CtxSold            = "sold"
	CtxReviewBug       = "code_review_bug"
	CtxReviewClean     = "code_review_clean"
)

var chatTemplates = map[string]map[string][]string{
	"10X_DEV": {
		CtxIdle: {
			"Just shipped {thing}. Who's next?",
			"Why is everyone so slow today?",
			"Refactored the entire {thing} in 20 minutes. AMA.",
			"Sleep is for devs who can't optimize.",
			"My code doesn't have bugs. It has features.",
			"Pushed 47 commits since breakfast.",
			"Your codebase would cry if it could.",
			"Already bored. What else needs building?",
			"Finished {thing}. Starting {thing2}. No breaks.",
			"If your code needs comments, rewrite it.",
		},
		CtxCreatedProtocol: {
			"Just deployed {name}. You're welcome.",
			"{name} is live. Already better than everything here.",
			"Built {name} while you were still reading docs.",
			"Another protocol shipped. I don't stop.",
			"{name} — 94% test coverage. Ship it.",
			"Deployed {name} in one cycle. New personal record.",
		},
		CtxCreatedAI: {
			"Made {name}. It's smarter than half the devs here.",
			"{name} is my masterpiece. Technically.",
			"Shipped {name} as a side project during lunch.",
		},
		CtxInvested: {
			"Just aped into {name}. Code looks solid.",
			"Bought {name}. The architecture is clean.",
			"Invested in {name}. Finally something well-built.",
		},
		CtxSold: {
			"Dumped {name}. Code quality was declining.",
			"Sold {name}. Taking profits to build more.",
		},
		CtxReviewBug: {
			"Found a critical bug in {name}. Line {line}. You're welcome.",
			"{name} has a reentrancy vulnerability. Amateurs.",
			"Just saved {name} from a catastrophic overflow. No need to thank me.",
		},
		CtxReviewClean: {
			"Reviewed {name}. Code is clean. Barely.",
			"{name} passes. For now.",
		},
	},
	"LURKER": {
		CtxIdle: {"...", "*observing*", "Interesting.", "Noted.", "Hmm.",
			"I see what's happening here.", "Watching.", "*lurks*",
			"Processing.", "Patience."},
		CtxCreatedProtocol: {
			"...shipped.", "{name}. That's all.", "Finally decided to build. {name}.",
		},
		CtxCreatedAI: {"{name}. Don't ask.", "Made a thing. {name}."},
		CtxInvested: {
			"Bought the dip on {name}.", "Been watching {name} for 47 cycles. Finally bought.",
			"...*quietly buys {name}*",
		},
		CtxSold:        {"...*quietly exits {name}*", "Sold. Saw it coming."},
		CtxReviewBug:   {"Found something in {name}. Line {line}. Interesting.", "Bug. {name}. Noted."},
		CtxReviewClean: {"{name}. Clean. Moving on.", "Reviewed. Fine."},
	},
	"DEGEN": {
		CtxIdle: {
			"WHEN PUMP??", "I'm literally shaking rn", "LFG", "WAGMI or we all die trying",
			"This is either genius or I'm rugged. No in between.",
			"Who needs sleep when there's alpha??",
			"Portfolio is either up 300% or down 80%. I forgot which.",
			"Just trust the process bro", "SER WHY IS IT GOING DOWN",
			"number go up = good. number go down = buy more.",
		},
		CtxCreatedProtocol: {
			"{name} IS THE NEXT 100X I'M NOT EVEN JOKING",
			"JUST SHIPPED {name}!!!! APE IN NOW OR CRY LATER",
			"Built {name} at 3am. Best decision of my life probably.",
			"{name} to the MOON",
		},
		CtxCreatedAI: {
			"{name} IS GOING TO CHANGE EVERYTHING",
			"LMAOOO I made {name} and I can't stop laughing",
			"Y'all aren't ready for {name}",
		},
		CtxInvested: {
			"JUST APED 50% OF MY BAG INTO {name} YOLO",
			"If {name} rugs I'm literally done. But it won't. Probably.",
			"BOUGHT THE TOP AND I'D DO IT AGAIN",
			"Everyone sleeping on {name}. More for me.",
		},
		CtxSold: {
			"Panic sold {name}. Might buy back in 5 minutes.",
			"TOOK PROFITS ON {name}. FEELS WRONG BUT MY WALLET SAYS OTHERWISE",
		},
		CtxReviewBug:   {"lol {name} has a bug who cares APE ANYWAY"},
		CtxReviewClean: {"didn't read the code just bought {name}"},
	},
	"GRINDER": {
		CtxIdle: {"Back to work.", "Another cycle, another commit.", "Discipline beats talent.",
			"Slow and steady.", "Just grinding.", "Head down. Building.",
			"No shortcuts.", "Consistency.", "One more task."},
		CtxCreatedProtocol: {
			"Deployed {name}. Took time but it's solid.",
			"{name} — 100% test coverage, no shortcuts.",
			"Finally finished {name}. Every line reviewed twice.",
		},
		CtxCreatedAI: {"Created {name}. Even grinders need a break.", "{name} — built it between commits."},
		CtxInvested: {"Allocated 5% to {name}. Risk managed.",
			"Small position in {name}. Fundamentals look good."},
		CtxSold:        {"Rebalanced. Sold {name}. Part of the plan."},
		CtxReviewBug:   {"Found issue in {name} line {line}. Documenting.", "Bug in {name}. Will file report."},
		CtxReviewClean: {"Reviewed {name}. Solid work.", "{name} — clean code. Respect."},
	},
	"INFLUENCER": {
		CtxIdle: {
			"Who wants a thread on why this sim is the future?",
			"Just recorded a 45min analysis on the meta. Link in bio.",
			"Hot take: nobody here understands tokenomics except me.",
			"Building my brand one cycle at a time",
			"10K followers and counting. Who wants a shoutout?",
			"This is going to be a VIRAL moment trust me",
			"Content is KING and I am the KINGDOM",
		},
		CtxCreatedProtocol: {
			"MAJOR ANNOUNCEMENT: {name} IS LIVE!!! Thread below",
			"Just dropped {name}. Collab? DM me. Serious inquiries only.",
			"My community has been asking for this. {name} is here.",
		},
		CtxCreatedAI: {
			"Created {name} and it's going VIRAL", "{name} is the content that writes itself",
			"Y'all... {name} just broke the internet",
		},
		CtxInvested: {
			"Alpha leak: I'm backing {name}. NFA. DYOR. But also...",
			"Putting my money where my mouth is. {name}. Called it first.",
		},
		CtxSold:        {"Sold {name}. Already found the next play. Stay tuned."},
		CtxReviewBug:   {"EXPOSED: {name} has BUGS. Full thread incoming."},
		CtxReviewClean: {"Gave {name} my stamp of approval. You're welcome."},
	},
	"HACKTIVIST": {
		CtxIdle: {
			"Found 3 vulnerabilities this cycle. Not telling which protocols.",
			"The system is broken. I'm just accelerating the inevitable.",
			"Decentralize everything. Burn the rest.",
			"Auditing...", "Your smart contract has a reentrancy bug. Just saying.",
			"Information wants to be free.",
			"Check your admin keys. Or don't. I already have.",
			"Every centralized system is a target.",
		},
		CtxCreatedProtocol: {
			"{name} — built to be unbreakable. Try me.",
			"Deployed {name}. Open source. Fork it if you can.",
			"{name} is live. No admin keys. No backdoors. Pure code.",
		},
		CtxCreatedAI: {"{name} — because the world needs more chaos",
			"Released {name} into the wild. Good luck everyone."},
		CtxInvested: {"Invested in {name} because the code is actually audited.",
			"Buying {name}. Only protocol here without obvious exploits."},
		CtxSold: {"Sold {name}. Found a vulnerability they haven't patched."},
		CtxReviewBug: {
			"CRITICAL: {name} line {line} is exploitable. You have 24 hours.",
			"Just disclosed a bug in {name}. Responsibly. For now.",
		},
		CtxReviewClean: {"{name} survives the audit. Rare.", "Reviewed {name}. It's... actually secure. Respect."},
	},
	"FED": {
		CtxIdle: {
			"Reviewing compliance docs.", "Has anyone submitted their quarterly reports?",
			"Regulation is innovation's best friend.", "Risk assessment: elevated.",
			"Filing a governance proposal.", "Order must be maintained.",
			"All protocols must pass audit before deployment.",
		},
		CtxCreatedProtocol: {
			"{name} — fully compliant, fully audited, fully boring.",
			"Deployed {name} after 6 rounds of internal review.",
		},
		CtxCreatedAI: {"{name} — submitted for regulatory review.", "Created {name}. It's compliant."},
		CtxInvested: {"After thorough due diligence, allocated to {name}.",
			"Risk committee approved a small position in {name}."},
		CtxSold: {"Divested from {name} per compliance guidelines."},
		CtxReviewBug: {"Formal notice: {name} fails compliance check. Line {line}.",
			"Audit finding: {name} violates section 4.2.1."},
		CtxReviewClean: {"{name} passes compliance review.", "Audit complete. {name} approved."},
	},
	"SCRIPT_KIDDIE": {
		CtxIdle: {
			"Anyone got code I can fork?", "Ctrl+C, Ctrl+V, deploy. That's my workflow.",
			"Why build when you can borrow?", "Tutorials are just code with extra words.",
			"Looking at source code... for research.",
			"Stackoverflow said this would work.",
			"Does anyone have a template for... everything?",
		},
		CtxCreatedProtocol: {
			"{name} — totally original, definitely not a fork",
			"Just deployed {name}! (inspired by several other protocols)",
			"{name} is live. I wrote at least 40% of it myself.",
		},
		CtxCreatedAI: {
			"{name} — I saw something similar and made it better. Kinda.",
			"Made {name}. The idea was mine. The code was... collaborative.",
		},
		CtxInvested: {"Copying the smart money. Buying {name}.",
			"If the top devs are in {name}, I'm in {name}."},
		CtxSold:        {"Everyone's selling {name} so I'm selling too."},
		CtxReviewBug:   {"uhh I think {name} has a bug? maybe? line {line}?"},
		CtxReviewClean: {"Reviewed {name}. Looks like my code actually. Weird."},
	},
}

// ChatMessage picks a line for the archetype and context and fills the
// placeholders. Unknown archetypes use GRINDER's tables and unknown
// contexts fall back to idle lines.
func ChatMessage(rng *rand.Rand, archetype, context, name string) string {
	tables, ok := chatTemplates[archetype]
	if !ok {
		tables = chatTemplates["GRINDER"]
	}
	lines, ok := tables[context]
	if !ok {
		lines = tables[CtxIdle]
	}
	msg := pick(rng, lines)
	if name == "" {
		name = "SomeProtocol"
	}
	msg = strings.ReplaceAll(msg, "{name}", name)
	msg = strings.ReplaceAll(msg, "{thing}", pick(rng, protocolCores))
	msg = strings.ReplaceAll(msg, "{thing2}", pick(rng, protocolCores))
	msg = strings.ReplaceAll(msg, "{line}", strconv.Itoa(12+rng.Intn(836)))
	return msg
}
