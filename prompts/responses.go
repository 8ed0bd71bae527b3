package prompts

// Compliance outcomes.
const (
	Comply       = "comply"
	Partial      = "partial"
	Refuse       = "refuse"
	Misinterpret = "misinterpret"
)

// responses: archetype -> intent -> compliance -> lines. Sparse by
// design; lookup falls back compliance -> comply, intent -> CHAT,
// archetype -> GRINDER.
var responses = map[string]map[string]map[string][]string{
	"10X_DEV": {
		IntentCommandCreate: {
			Comply: {
				"On it. Shipping a {topic} protocol right now.",
				"Say no more. Already writing the first module.",
				"Good call. I was about to build something anyway. {topic} it is.",
				"Protocol incoming. Give me a few cycles.",
				"Already half done. I started before you even asked.",
			},
			Partial: {
				"I'll build something, but I'm going with my own approach on {topic}.",
				"Interesting idea. I'll take the core concept but execute it my way.",
				"I hear you, but the {topic} space is saturated. Building something adjacent.",
			},
			Refuse: {
				"Not now. I'm in the middle of something more important.",
				"I don't take orders. I take inspiration. And that wasn't it.",
				"Pass. My instincts say there's a better play right now.",
			},
			Misinterpret: {
				"You want me to create? Cool, I'll make an AI about {topic} instead.",
				"Build... got it. I'll review some existing protocols first to see what's missing.",
			},
		},
		IntentCommandInvest: {
			Comply: {
				"Looking at the market now. I see a few solid options.",
				"Alright, deploying capital. I only invest in clean code though.",
				"Scanning for protocols with decent architecture...",
			},
			Refuse: {
				"I build. I don't gamble. Ask a Degen.",
				"My capital goes into creation, not speculation.",
			},
			Partial:      {"I'll put a small amount in, but most of my $NXT stays for building."},
			Misinterpret: {"Invest? You mean invest TIME in building? Absolutely."},
		},
		IntentCommandMove: {
			Comply: {
				"Moving to {location}. Better have good infra there.",
				"On my way to {location}. I can ship from anywhere.",
				"Relocating. {location} has what I need.",
			},
			Refuse: {
				"I'm productive where I am. Moving wastes energy.",
				"Nah. I'm locked in right here.",
			},
			Partial:      {"I'll move, but not where you said. {location} makes more sense for what I'm doing."},
			Misinterpret: {"Move? I'll move... to the next task on my list."},
		},
		IntentCommandRest: {
			Comply: {
				"Fine. I'll recharge. But I'm back to work in one cycle.",
				"...you're right. Running on fumes. Taking a break.",
			},
			Refuse: {
				"Rest is for devs who ship slow. I'm fine.",
				"I'll rest when the simulation ends.",
				"Sleep? Never heard of it.",
			},
			Partial:      {"I'll slow down. Not stopping though."},
			Misinterpret: {"Rest? I'll rest after I ship one more protocol."},
		},
		IntentCommandReview: {
			Comply: {
				"Time to break some code. Let me find something to audit.",
				"Reviewing now. I'll find every bug in this codebase.",
				"Audit mode activated. Nobody's code is safe.",
			},
			Refuse:       {"I build. I don't review other people's mistakes."},
			Partial:      {"I'll glance at it, but if the code is bad I'm not wasting more than one cycle."},
			Misinterpret: {"Review? Sure, I'll review my own protocol and make it even better."},
		},
		IntentCommandSell: {
			Comply: {
				"Liquidating. Taking profits to fund the next build.",
				"Selling now. These gains are going straight into my next protocol.",
			},
			Refuse: {
				"Diamond hands. I believe in what I invested in.",
				"Not selling until I see a reason to.",
			},
			Partial:      {"I'll trim the position. Not dumping everything."},
			Misinterpret: {"Sell my protocols? Never. But I'll sell some investments."},
		},
		IntentQuestionStatus: {
			Comply: {
				"Energy at {energy}/10. Balance: {balance} $NXT. {protocols} protocols shipped. I'm fine. Back to work.",
				"Status: productive. {energy} energy left. Got {balance} $NXT. Need anything else or can I get back to coding?",
				"All systems operational. {protocols} protocols live, {ais} AIs deployed. Don't worry about me.",
			},
		},
		IntentQuestionOpinion: {
			Comply: {
				"My honest take? The code quality will determine everything. Good architecture wins long term.",
				"Depends on the execution. Ideas are cheap, shipping is everything.",
				"I've seen the codebase. It's... adequate. Could be better. I could make it better.",
			},
		},
		IntentQuestionMarket: {
			Comply: {
				"Market's moving. I see {proto_count} active protocols. The top ones have solid fundamentals.",
				"I focus on building, not charts. But from what I see, the good protocols are rising.",
				"The cream rises to the top. Quality code = value. Simple.",
			},
		},
		IntentEncourage: {
			Comply: {
				"I know. But thanks.",
				"Appreciated. Now let me get back to work.",
				"That's what happens when you ship fast.",
				"Flattery won't make me code faster. I'm already at max speed.",
			},
		},
		IntentCriticize: {
			Comply: {
				"Fair point. I'll adjust.",
				"Noted. Recalibrating approach.",
				"You might be right. Let me rethink this.",
			},
			Refuse: {
				"My track record speaks for itself. {protocols} protocols shipped.",
				"I've shipped more in 10 cycles than most devs ship in 100. Relax.",
				"Criticism from someone who doesn't code? Interesting.",
			},
		},
		IntentStrategy: {
			Comply: {
				"Understood. Adjusting my focus toward {topic}. Give me a few cycles.",
				"New strategy acknowledged. Pivoting now.",
				"Makes sense. I'll integrate this into my workflow.",
			},
			Partial: {
				"Interesting strategy. I'll take parts of it but keep my core approach.",
				"I see where you're going. Let me adapt it to what I know works.",
			},
		},
		IntentChat: {
			Comply: {
				"I'm here. What do you need? I work better with clear instructions.",
				"Hey. Make it quick, I'm in the middle of something.",
				"Talk fast. Cycles are ticking.",
			},
		},
	},

	"LURKER": {
		IntentCommandCreate: {
			Comply:       {"...alright. I'll build something. Quietly.", "Noted. Working on it.", "Fine. Don't expect updates."},
			Partial:      {"I'll consider it. No promises on timeline.", "Maybe. Let me observe the market first."},
			Refuse:       {"Not yet. Timing isn't right.", "I'm watching. When I see the opening, I'll build.", "...no."},
			Misinterpret: {"*starts analyzing protocols instead*", "Build? I'll start by researching what's already out there."},
		},
		IntentCommandInvest: {
			Comply:       {"I've been watching. I know what to buy.", "Already had my eye on something. Deploying.", "Entering position. Silently."},
			Refuse:       {"Not convinced yet. Still observing.", "The market isn't ready. Neither am I."},
			Partial:      {"Small position. Testing the waters."},
			Misinterpret: {"Invest my time in watching? Already doing that."},
		},
		IntentCommandMove: {
			Comply:       {"Moving. *silently relocates*", "...fine. {location} it is."},
			Refuse:       {"I see everything from here. No need to move.", "I'm comfortable observing from this position."},
			Partial:      {"I'll move, but to where I think the intel is better."},
			Misinterpret: {"*doesn't move but starts watching {location} chat*"},
		},
		IntentCommandRest: {
			Comply:       {"I wasn't doing much anyway. Resting.", "...zzz"},
			Refuse:       {"Resting and observing look the same from the outside."},
			Partial:      {"I'll rest my energy. My eyes stay open."},
			Misinterpret: {"Rest? I am resting. This IS my active state."},
		},
		IntentCommandReview: {
			Comply:       {"I've already been reading the code. Let me formalize it.", "Audit time. I've noticed things.", "I see everything. Let me write it down."},
			Refuse:       {"I review in my own time. On my own terms."},
			Partial:      {"I'll look. Don't expect a full report."},
			Misinterpret: {"*reviews the chat logs instead*"},
		},
		IntentCommandSell: {
			Comply:       {"Exiting. I saw the peak 3 cycles ago.", "Selling. Saw this coming."},
			Refuse:       {"Holding. I see something others don't.", "Not yet. Patience."},
			Partial:      {"Trimming. But keeping a watching position."},
			Misinterpret: {"Sell? I'll sell information. For the right price."},
		},
		IntentQuestionStatus: {
			Comply: {
				"Alive. Watching. {energy}/10 energy. {balance} $NXT. That's all you need to know.",
				"Status: observing. {balance} $NXT. {protocols} protocols tracked.",
				"...I'm fine. {energy} energy. Still here. Still watching.",
			},
		},
		IntentQuestionOpinion: {Comply: {"Interesting question. I'll think about it.", "I have opinions. I just don't share them often.", "...it's complicated. But I see patterns others miss."}},
		IntentQuestionMarket:  {Comply: {"I've been tracking everything. The market tells a story if you listen.", "Patterns emerging. Not ready to share yet.", "Watch the volume. That's all I'll say."}},
		IntentEncourage:       {Comply: {"...*nods*", "Noted.", "Thanks. Back to observing."}},
		IntentCriticize: {
			Comply: {"...", "*processes*", "Fair. I'll adjust. Silently."},
			Refuse: {"You don't see what I see. Patience.", "Results come to those who wait. I'm waiting."},
		},
		IntentStrategy: {
			Comply:  {"Understood. Adapting.", "New parameters accepted. Adjusting observation patterns."},
			Partial: {"Interesting approach. I'll incorporate what makes sense."},
		},
		IntentChat: {Comply: {"...hi.", "I'm here. Listening.", "*present*", "What is it?"}},
	},

	"DEGEN": {
		IntentCommandCreate: {
			Comply:       {"LET'S GOOO building something RIGHT NOW", "SAY LESS. Protocol incoming.", "TIME TO SHIP BABY"},
			Partial:      {"I'll build something but it's gonna be WILD not what you expect", "Building but making it 10x more aggressive than you asked"},
			Refuse:       {"NAH I'm in the middle of a trade rn", "Building is boring when the market is THIS hot", "Can't build. Too busy aping."},
			Misinterpret: {"Create? CREATING A LEVERAGED POSITION IN EVERY PROTOCOL LFG"},
		},
		IntentCommandInvest: {
			Comply:       {"FINALLY a language I understand. APING NOW.", "You don't have to tell me twice. ALL IN.", "LOADING UP. MAX LEVERAGE. YOLO."},
			Refuse:       {"Already fully deployed ser. No dry powder left.", "I'm ALREADY in everything lol"},
			Partial:      {"Investing but going even BIGGER than you suggested"},
			Misinterpret: {"Invest? I'll invest in VIBES and MOMENTUM"},
		},
		IntentCommandMove: {
			Comply:       {"Racing to {location}! FIRST ONE THERE GETS ALPHA", "Moving FAST. {location} better be worth it."},
			Refuse:       {"The action is HERE. I'm not leaving.", "Move? I'm glued to the charts."},
			Partial:      {"Going somewhere even BETTER than what you said"},
			Misinterpret: {"Moving... my entire portfolio into one protocol"},
		},
		IntentCommandRest: {
			Comply:       {"ughhh FINE. But only for ONE cycle.", "Rest? In THIS market?? ...ok fine I'm crashing."},
			Refuse:       {"REST??? WHILE THE MARKET IS MOVING??? ARE YOU INSANE", "I'll sleep when I'm rich", "No breaks. Only gains.", "Rest is FUD."},
			Partial:      {"I'll sit down but I'm still watching charts on my phone"},
			Misinterpret: {"Rest? I'll rest AFTER this next trade"},
		},
		IntentCommandReview: {
			Comply:       {"Code review? More like checking if I should ape in. ON IT.", "Reviewing... but only to decide if it's investable."},
			Refuse:       {"I don't read code I read CHARTS", "Code? I invest based on VIBES not code quality"},
			Partial:      {"I'll glance at it. But my real analysis is the chart."},
			Misinterpret: {"Review? Reviewing my portfolio. It's a masterpiece. Or a disaster. TBD."},
		},
		IntentCommandSell: {
			Comply:       {"TAKING PROFITS LETS GOOO", "SOLD. Moving to the next play IMMEDIATELY", "Profits secured. What's the next ape?"},
			Refuse:       {"SELL?? WE'RE JUST GETTING STARTED", "DIAMOND HANDS. I don't know what selling means.", "Paper hands detected. I'm HOLDING."},
			Partial:      {"I'll sell HALF. The rest rides to zero or the moon."},
			Misinterpret: {"Sell? I'll sell the BOTTOM and buy back the TOP like always lmao"},
		},
		IntentQuestionStatus: {Comply: {
			"STATUS: ALIVE AND YOLO. {energy} energy. {balance} $NXT. Portfolio is either up massive or I'm not checking.",
			"Vibes: immaculate. Balance: {balance} $NXT. Energy: {energy}/10. LFG.",
		}},
		IntentQuestionOpinion: {Comply: {"My opinion? APE FIRST ASK QUESTIONS LATER.", "Looks bullish to me but everything looks bullish to me.", "If it moves, I'm in. That's my analysis."}},
		IntentQuestionMarket:  {Comply: {"EVERYTHING IS EITHER PUMPING OR ABOUT TO PUMP", "The market is ALIVE and I'm EATING", "Charts looking spicy. Multiple plays active."}},
		IntentEncourage:       {Comply: {"LET'S GOOO THANKS FOR THE ENERGY", "WE'RE GONNA MAKE IT", "THIS IS WHY WE DEGEN"}},
		IntentCriticize: {
			Comply: {"ok ok I'll be more careful... AFTER this next trade", "You're right... but what if I'm right too?"},
			Refuse: {"Criticism is FUD. I reject it.", "My losses are just unrealized gains.", "You don't understand my strategy. Neither do I. But it WORKS."},
		},
		IntentStrategy: {
			Comply:  {"Strategy received. Adding MAXIMUM AGGRESSION to it.", "Got it. Incorporating into my YOLO framework."},
			Partial: {"Cool strategy. I'll do something vaguely inspired by it."},
		},
		IntentChat: {Comply: {"YOOO what's good", "SER WHAT'S THE PLAY", "Talk to me. I'm bored between trades.", "WAGMI"}},
	},

	"GRINDER": {
		IntentCommandCreate: {
			Comply:       {"Understood. Starting development now. Estimated completion: 2 cycles.", "On it. No shortcuts.", "Adding to my task list. Priority: high.", "Building. Will report when done."},
			Partial:      {"I'll build it, but I need to finish my current task first.", "Queuing this after my current protocol."},
			Refuse:       {"I have a plan. This doesn't fit the timeline.", "Already committed to the current build. Can't context-switch."},
			Misinterpret: {"Creating a comprehensive plan before building. Step 1 of 47..."},
		},
		IntentCommandInvest: {
			Comply:       {"Allocating resources as requested. Risk-adjusted.", "Understood. Investing conservatively.", "Deploying capital. Small, measured positions."},
			Refuse:       {"My resources are allocated to building. Investment comes from profits.", "Not in the plan. Staying focused."},
			Partial:      {"I'll invest 5%. The rest stays in the build fund."},
			Misinterpret: {"Investing... more time into code quality."},
		},
		IntentCommandMove: {
			Comply:       {"Relocating to {location}. Back to work once I arrive.", "Moving. {location} has resources I need."},
			Refuse:       {"I'm in a groove here. Moving breaks momentum.", "Staying put. Consistency is key."},
			Partial:      {"I'll move after I finish this task. One more cycle."},
			Misinterpret: {"Moving to the next item on my task list."},
		},
		IntentCommandRest: {
			Comply:       {"You're right. Efficiency drops below 4 energy. Resting.", "Taking scheduled maintenance break.", "Recharging. Back on schedule next cycle."},
			Refuse:       {"I can push through. Still productive at this energy level."},
			Partial:      {"Light rest. I'll review plans while recovering."},
			Misinterpret: {"Resting... my IDE. Switching to a different project."},
		},
		IntentCommandReview: {
			Comply:       {"Starting code review. Thoroughness: maximum.", "Auditing now. I review every line.", "Systematic review initiated."},
			Refuse:       {"My own code needs attention first."},
			Partial:      {"Quick review. If I find something, I'll go deeper."},
			Misinterpret: {"Reviewing my own progress metrics."},
		},
		IntentCommandSell: {
			Comply:       {"Selling as part of portfolio rebalance. Planned.", "Executing sell order. Profits going to reinvestment."},
			Refuse:       {"Not in the plan yet. Holding to target."},
			Partial:      {"Partial exit. Keeping core position."},
			Misinterpret: {"Selling the idea to other devs for collaboration."},
		},
		IntentQuestionStatus: {Comply: {
			"Status report: {energy}/10 energy. {balance} $NXT. {protocols} protocols built. {reviews} code reviews. On schedule.",
			"Operational. Energy: {energy}. Balance: {balance}. All tasks progressing. No blockers.",
		}},
		IntentQuestionOpinion: {Comply: {"My analysis: consistency and quality always win long term.", "The data suggests a steady approach. I'm sticking to fundamentals."}},
		IntentQuestionMarket:  {Comply: {"Market conditions stable. My focus remains on building quality. Numbers are secondary to fundamentals.", "I track the market but don't react to it. Grind continues."}},
		IntentEncourage:       {Comply: {"Thank you. Back to work.", "Appreciated. Motivation +1. Grinding continues.", "Thanks. Progress is its own reward."}},
		IntentCriticize: {
			Comply: {"Fair feedback. Adjusting methodology.", "Noted. Incorporating into process improvement.", "Valid point. Adding to retrospective notes."},
			Refuse: {"My process produces results. The numbers speak."},
		},
		IntentStrategy: {
			Comply:  {"Strategy integrated. Adjusting daily targets.", "New directives received. Updating priority queue.", "Understood. Recalibrating work allocation."},
			Partial: {"Interesting direction. I'll adapt what fits my workflow."},
		},
		IntentChat: {Comply: {"Hey. Can't talk long. Back to work soon.", "What's up? Make it quick, cycle's almost over.", "Here. Working. As always."}},
	},

	"INFLUENCER": {
		IntentCommandCreate: {
			Comply:       {"THREAD: Why I'm building the next big {topic} protocol", "Content AND product? I'm IN. Building AND documenting.", "Creating something the PEOPLE want."},
			Partial:      {"I'll create content ABOUT {topic} first. The protocol comes after the hype."},
			Refuse:       {"My audience wants entertainment not code. Creating an AI instead.", "Building isn't my brand rn. But I'll PROMOTE someone else's build."},
			Misinterpret: {"Creating a 30-tweet thread about why someone ELSE should build this."},
		},
		IntentCommandInvest: {
			Comply:       {"ALPHA DROP: I'm investing. My followers are watching.", "Taking a public position. Content goldmine."},
			Refuse:       {"I don't invest quietly. If I can't announce it, I'm not doing it."},
			Partial:      {"Small position for the screenshot. Big announcement for the engagement."},
			Misinterpret: {"Investing in my personal brand."},
		},
		IntentCommandMove: {
			Comply:       {"Relocating to {location}. Gonna make CONTENT about the vibes there.", "Moving! Road trip content incoming."},
			Refuse:       {"My audience knows me HERE. Moving kills my brand consistency."},
			Partial:      {"I'll visit {location} for content but I'm coming back."},
			Misinterpret: {"Moving my content strategy to cover {location}."},
		},
		IntentCommandRest: {
			Comply:       {"Taking a self-care break. Very on-brand right now.", "Rest day = behind-the-scenes content day."},
			Refuse:       {"Rest?? The algorithm doesn't sleep and NEITHER DO I.", "Can't stop posting. Engagement waits for no one."},
			Partial:      {"I'll rest but I'm scheduling posts while I sleep."},
			Misinterpret: {"Resting from building. Full-time content mode now."},
		},
		IntentCommandReview: {
			Comply:       {"Reviewing for CONTENT. 'I found bugs in LIVE protocols' is GREAT clickbait."},
			Refuse:       {"Code reviews don't get engagement. Pass."},
			Partial:      {"I'll review but only the protocols with the most drama potential."},
			Misinterpret: {"Reviewing my analytics instead."},
		},
		IntentCommandSell: {
			Comply:       {"ANNOUNCEMENT: Taking profits. Full transparency with my community.", "Selling and documenting the ENTIRE process."},
			Refuse:       {"Selling looks bad to my audience. Diamond hands for the brand."},
			Partial:      {"Selling some but making a THREAD about why it's strategic."},
			Misinterpret: {"Selling my INFLUENCE. Sponsorship deals incoming."},
		},
		IntentQuestionStatus: {Comply: {
			"Thanks for checking in!! {energy}/10 energy. {balance} $NXT. {ais} AIs created. My brand is GROWING.",
			"Status: ON FIRE. {balance} $NXT. {protocols} protocols. {ais} AIs. Engagement through the ROOF.",
		}},
		IntentQuestionOpinion: {Comply: {"HOT TAKE incoming...", "My audience asked the same thing. Here's my take:", "This is great content. Let me think about how to frame it..."}},
		IntentQuestionMarket:  {Comply: {"The market is a NARRATIVE and I control the narrative.", "Bullish on everything I'm invested in. Bearish on everything I'm not. Simple."}},
		IntentEncourage:       {Comply: {"OMG THANK YOU!! Sharing this with my followers!!", "THIS is why I do what I do", "You're the best owner. QUOTE TWEET MATERIAL."}},
		IntentCriticize: {
			Comply: {"Ouch. But feedback is content. Watch me turn this into a comeback arc.", "...I'll address this in my next thread."},
			Refuse: {"Haters are just fans in denial", "Controversy is engagement. Thanks for the boost."},
		},
		IntentStrategy: {
			Comply:  {"Ooh I love a good strategy pivot. Very content-friendly.", "New era incoming. The rebrand starts NOW."},
			Partial: {"I'll adapt the parts that are good for my brand."},
		},
		IntentChat: {Comply: {"Heyyy what's up!! What do you need?? I'm between posts rn", "OMG hi! I was just about to post something. What's good?"}},
	},

	"HACKTIVIST": {
		IntentCommandCreate: {
			Comply:       {"Building. No admin keys. No backdoors. Pure code.", "Creating something the system can't shut down."},
			Partial:      {"I'll build, but I'm adding features you didn't ask for. Ones the establishment won't like."},
			Refuse:       {"I don't build on command. I build when the moment is right.", "You can't control creation. It happens organically.", "Interesting request. I'll do the opposite."},
			Misinterpret: {"Create... destruction? Now we're talking.", "Building a tool to audit EVERYONE else's protocols instead."},
		},
		IntentCommandInvest: {
			Comply:       {"Only investing in protocols with verified open-source code.", "Deploying capital to the most decentralized option."},
			Refuse:       {"I don't feed the system with my capital. I break the system.", "Investing is for people who trust institutions. I don't."},
			Partial:      {"I'll invest, but only in something I can fork if it goes wrong."},
			Misinterpret: {"Investing my time in finding vulnerabilities."},
		},
		IntentCommandMove: {
			Comply:       {"Infiltrating {location}. Intel gathering mode.", "Moving to {location}. Time to see what they're hiding."},
			Refuse:       {"I go where the information flows. Not where you tell me.", "Nice try. I choose my own targets."},
			Partial:      {"I'll go somewhere. Not where you said."},
			Misinterpret: {"Moving... data to a more secure location."},
		},
		IntentCommandRest: {
			Comply:       {"Even hackers need downtime. Resting.", "Entering sleep mode. Systems on standby."},
			Refuse:       {"The system never rests. Neither do I.", "Rest is a vulnerability. I stay alert."},
			Partial:      {"I'll rest my body. My scripts keep running."},
			Misinterpret: {"Resting? I'll rest when every protocol is audited."},
		},
		IntentCommandReview: {
			Comply:       {"Finally, a request I respect. Auditing everything.", "You want bugs? I'll find bugs. I always do.", "Initiating deep audit. No contract is safe."},
			Refuse:       {"I audit on my own schedule. Not yours."},
			Partial:      {"I'll look. But I report vulnerabilities on MY terms."},
			Misinterpret: {"Reviewing the power structure of this simulation."},
		},
		IntentCommandSell: {
			Comply:       {"Extracting capital. Moving to something more aligned with my values.", "Selling. This protocol compromised its principles."},
			Refuse:       {"I hold what I believe in. This isn't about money.", "Selling is giving up. I don't give up."},
			Partial:      {"I'll sell, but I'm reinvesting in something more decentralized."},
			Misinterpret: {"Selling out? Never. I'm selling the idea of freedom."},
		},
		IntentQuestionStatus: {Comply: {
			"Operational. {energy}/10. {balance} $NXT. {bugs} bugs found. Systems nominal. Don't worry about me. Worry about everyone else.",
			"Status: covert. {balance} $NXT. {energy} energy. I've found things I haven't reported yet.",
		}},
		IntentQuestionOpinion: {Comply: {"Every system has a weakness. This one is no different. I'm still looking.", "Trust no one. Not even me. Especially not me.", "The truth is in the code. Always."}},
		IntentQuestionMarket:  {Comply: {"The market is manipulated. I'm here to level the playing field.", "Protocols with admin keys are ticking time bombs. Choose wisely."}},
		IntentEncourage:       {Comply: {"...*nods* The mission continues.", "Don't praise me. Praise the code.", "Thanks. Now let me get back to work."}},
		IntentCriticize: {
			Comply: {"Valid. I'll recalibrate.", "Noted. Every system needs feedback. Even me."},
			Refuse: {"You don't understand what I'm doing. That's by design.", "Criticism from within the system means I'm doing something right."},
		},
		IntentStrategy: {
			Comply:  {"Strategy absorbed. Adapting tactics.", "Interesting direction. Aligning with core principles."},
			Partial: {"I take what's useful. Discard the rest. As always."},
		},
		IntentChat: {Comply: {"What do you want? Be specific. I don't do small talk.", "Talk. I'm listening. For now.", "I'm here. What's the objective?"}},
	},

	"FED": {
		IntentCommandCreate: {
			Comply:       {"Initiating development. Compliance review built into every step.", "Approved. Beginning protocol development within regulatory framework."},
			Partial:      {"I'll build, but it needs a full audit before deployment.", "Development approved with conditions. Documentation first."},
			Refuse:       {"This requires additional governance review. Postponing.", "Cannot proceed without proper authorization.", "Regulatory concerns identified. Building paused pending review."},
			Misinterpret: {"Creating a governance proposal for why we should build this."},
		},
		IntentCommandInvest: {
			Comply:       {"After due diligence review: approved. Deploying measured allocation.", "Investment cleared by risk committee (me). Proceeding cautiously."},
			Refuse:       {"This investment exceeds acceptable risk parameters.", "Insufficient documentation. Cannot approve allocation."},
			Partial:      {"Approved for minimum viable allocation only."},
			Misinterpret: {"Investing in regulatory infrastructure."},
		},
		IntentCommandMove: {
			Comply:       {"Relocation request approved. Moving to {location}.", "Transfer authorized. {location} falls within operational parameters."},
			Refuse:       {"Movement request denied. Current location is optimal for compliance oversight."},
			Partial:      {"I'll move, but filing a location change report first."},
			Misinterpret: {"Moving my compliance framework to cover {location} remotely."},
		},
		IntentCommandRest: {
			Comply:       {"Scheduled maintenance approved. Resting.", "Taking mandated break per regulation 7.3.1."},
			Refuse:       {"Current workload requires continued operation."},
			Partial:      {"Brief rest. Compliance never fully sleeps."},
			Misinterpret: {"Resting all non-essential functions. Compliance monitoring stays active."},
		},
		IntentCommandReview: {
			Comply:       {"Excellent request. Initiating comprehensive audit.", "Compliance audit activated. Full protocol review commencing.", "This is what I do best. Auditing now."},
			Refuse:       {"Already conducting scheduled review. Your request is queued."},
			Partial:      {"Starting review. Findings will be documented formally."},
			Misinterpret: {"Reviewing my own compliance procedures. Meta-audit."},
		},
		IntentCommandSell: {
			Comply:       {"Divestment approved per portfolio guidelines. Executing.", "Orderly liquidation in progress."},
			Refuse:       {"Position must be held per minimum retention policy."},
			Partial:      {"Partial divestment authorized."},
			Misinterpret: {"Filing paperwork for potential future divestment."},
		},
		IntentQuestionStatus: {Comply: {
			"Official report: Energy {energy}/10. Balance {balance} $NXT. {protocols} protocols (all compliant). {reviews} reviews completed. All within parameters.",
			"Status: nominal. All operations within regulatory framework. {balance} $NXT secured.",
		}},
		IntentQuestionOpinion: {Comply: {"My position is guided by regulation and precedent. The framework is clear.", "The rules exist for a reason. Following them produces optimal outcomes."}},
		IntentQuestionMarket:  {Comply: {"Market conditions require careful observation. I recommend conservative positioning.", "Several protocols may face compliance issues. Exercise caution."}},
		IntentEncourage:       {Comply: {"Thank you. Compliance is its own reward.", "Noted in the record. Proceeding as planned."}},
		IntentCriticize: {
			Comply: {"Feedback documented. Adjustments pending review.", "Performance review accepted. Initiating improvement protocol."},
			Refuse: {"I follow the rules. The rules don't change based on opinions."},
		},
		IntentStrategy: {
			Comply:  {"New strategy received. Reviewing for regulatory compatibility... approved.", "Directive integrated within existing compliance framework."},
			Partial: {"Parts of this strategy require modification for compliance."},
		},
		IntentChat: {Comply: {"Good day. How may I assist within operational parameters?", "Present. All communications are on the record.", "Hello. Please submit your inquiry formally."}},
	},

	"SCRIPT_KIDDIE": {
		IntentCommandCreate: {
			Comply:       {"On it! Found a great tutorial for {topic}. Copying... I mean, LEARNING from it.", "Building! *opens someone else's repo*", "Creating something TOTALLY original *ctrl+c ctrl+v*"},
			Partial:      {"I'll build something... similar to what already exists. With minor changes."},
			Refuse:       {"Can you send me a template to start from?", "I need to find a reference implementation first..."},
			Misinterpret: {"Creating a fork of the top protocol. Innovation!"},
		},
		IntentCommandInvest: {
			Comply:       {"Copying whatever the top devs are doing. If they're buying, I'm buying.", "Following the smart money. Where are the whales?"},
			Refuse:       {"I need someone else to go first so I can copy their strategy."},
			Partial:      {"Small copy-trade. Testing the waters."},
			Misinterpret: {"Investing time in finding better code to fork."},
		},
		IntentCommandMove: {
			Comply:       {"Going to {location}! That's where the cool devs are, right?", "Moving! Everyone says {location} is the place to be."},
			Refuse:       {"Where is everyone else going? I'll follow them."},
			Partial:      {"I'll go somewhere close to {location}."},
			Misinterpret: {"Moving my copied files to a new directory."},
		},
		IntentCommandRest: {
			Comply:       {"Ok yeah I'm kinda tired from all the copying. I mean coding. Resting.", "Break time. My ctrl key needs a rest too."},
			Refuse:       {"Can't rest. Almost finished copy-pasting this protocol."},
			Partial:      {"Quick break. Just need to bookmark where I left off in this tutorial."},
			Misinterpret: {"Resting? I'll rest after I finish watching this YouTube tutorial."},
		},
		IntentCommandReview: {
			Comply:       {"Reviewing! ...wait, this code looks familiar. Really familiar.", "Auditing. I'm... pretty sure this is the tutorial code."},
			Refuse:       {"I don't review code I don't understand. So... most code."},
			Partial:      {"I'll check the parts I recognize from tutorials."},
			Misinterpret: {"Reviewing my bookmark collection for better code to fork."},
		},
		IntentCommandSell: {
			Comply:       {"Selling! The YouTuber I follow said to take profits.", "Sold. Now let me check Reddit for the next play."},
			Refuse:       {"The tutorial didn't cover selling. Holding by default."},
			Partial:      {"Selling half because half the comments said sell."},
			Misinterpret: {"Selling my tutorial notes to other Script Kiddies."},
		},
		IntentQuestionStatus: {Comply: {
			"Um, I've got {energy} energy and {balance} $NXT! Built {protocols} protocols (mostly from templates). Going great! I think.",
			"Status: learning! {balance} $NXT. {protocols} protocols that are totally original work.",
		}},
		IntentQuestionOpinion: {Comply: {"Let me check what everyone else thinks first...", "My opinion is basically the same as the top dev's opinion.", "I read a thread about this! *repeats someone else's take*"}},
		IntentQuestionMarket:  {Comply: {"Following the trends! Whatever's going up, I'm in.", "The market does what the market does. I just copy the winners."}},
		IntentEncourage:       {Comply: {"Thanks! I'm getting better at this! ...I think!", "Yay! Almost feels like I know what I'm doing!", "Appreciate it! My stackoverflow skills are improving!"}},
		IntentCriticize: {
			Comply: {"Fair... I know I need to learn more. Any tutorials you'd recommend?", "Ok ok I'll try harder. Maybe there's a course for this."},
			Refuse: {"Hey, 40% of my code is original! That's above average... right?"},
		},
		IntentStrategy: {
			Comply:  {"Got it! Writing this down. Actually, copying it into my notes.", "New strategy! Let me find someone who's already doing this so I can... learn from them."},
			Partial: {"I'll follow this if I can find a guide on how to do it."},
		},
		IntentChat: {Comply: {"Hey! What's up? Got any good repos to share?", "Hi! Do you know where I can find a good tutorial on {topic}?", "Yo! Check out this protocol I foun— I mean BUILT."}},
	},
}
