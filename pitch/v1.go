package pitch

import (
	"github.com/tsawler/pitchdeck/deck"
	"github.com/tsawler/pitchdeck/model"
)

// BuildV1 adds the eleven slides of the first deck revision.
func BuildV1(b *deck.Builder) {
	v1Title(b)
	v1Problem(b)
	v1Solution(b)
	v1Pear(b)
	v1Lifi(b)
	v1Salt(b)
	v1Architecture(b)
	v1Demo(b)
	v1Bounties(b)
	v1WhyTago(b)
	v1CallToAction(b)
}

var (
	black    = deck.Black
	white    = deck.White
	yellow   = deck.Yellow
	gray     = deck.Gray
	darkGray = deck.DarkGray
)

// yellowOutline is a yellow border whose width is left to the theme.
func yellowOutline() *model.Line {
	return &model.Line{Color: yellow}
}

func frameBorders(b *deck.Builder, s *model.Slide, top bool) {
	y := 7.15
	if top {
		y = 0.3
	}
	b.AddRect(s, deck.Box(0.5, y, 12.333, 0.05), yellow)
}

func v1Title(b *deck.Builder) {
	s := b.NewSlide(black)

	frameBorders(b, s, true)
	b.AddText(s, deck.Box(0.5, 0.8, 12.333, 1.5), "TAGO",
		deck.Size(96), deck.Color(white), deck.Bold(), deck.Center())
	b.AddText(s, deck.Box(0.5, 2.2, 12.333, 1), "LEAP",
		deck.Size(72), deck.Color(yellow), deck.Bold(), deck.Italic(), deck.Center())
	b.AddText(s, deck.Box(0.5, 3.5, 12.333, 0.8), "Trade ideas, not tokens",
		deck.Size(28), deck.Color(white), deck.Italic(), deck.Center())
	b.AddText(s, deck.Box(0.5, 4.3, 12.333, 0.6), "AI-Powered Narrative Trading on Hyperliquid",
		deck.Size(20), deck.Color(gray), deck.Center())

	b.AddBadge(s, 4.5, 5.5, "PEAR")
	b.AddBadge(s, 6.0, 5.5, "LIFI")
	b.AddBadge(s, 7.5, 5.5, "SALT")

	b.AddText(s, deck.Box(0.5, 6.5, 12.333, 0.5), "Hyperstack Hackathon 2025",
		deck.Size(14), deck.Color(gray), deck.Center())
	frameBorders(b, s, false)
}

func v1Problem(b *deck.Builder) {
	s := b.NewSlide(black)

	b.AddText(s, deck.Box(0.5, 0.5, 12.333, 0.8), "The Problem",
		deck.Size(44), deck.Color(yellow), deck.Bold())

	b.AddBullets(s, deck.Box(0.8, 1.8, 11, 4.5), []string{
		"Trading is complex - Users manage raw tokens, not market theses",
		"Fragmented onboarding - Bridging from other chains is painful",
		"Risk management is manual - No automated guardrails for traders",
		"No narrative trading - Can't express 'AI will outperform ETH' easily",
		"Custody concerns - Automation tools often require giving up control",
	}, deck.Size(24))

	b.AddAccentBox(s, deck.Box(1, 5.5, 3, 1.2), "5+ Steps", "To bridge & trade")
	b.AddAccentBox(s, deck.Box(5, 5.5, 3, 1.2), "0 Tools", "For narrative trading")
	b.AddAccentBox(s, deck.Box(9, 5.5, 3, 1.2), "100%", "Manual risk mgmt")
}

func v1Solution(b *deck.Builder) {
	s := b.NewSlide(black)

	b.AddText(s, deck.Box(0.5, 0.5, 12.333, 0.8), "TAGO Leap: The Solution",
		deck.Size(44), deck.Color(white), deck.Bold())
	b.AddText(s, deck.Box(0.5, 1.3, 12.333, 0.6), "One platform. Three powerful integrations.",
		deck.Size(20), deck.Color(gray), deck.Italic())

	pillars := []struct {
		badge, title, desc string
		x                  float64
	}{
		{"PEAR", "Trade Ideas", "AI-powered narrative trading\nPair & basket trades\nBet-slip UX", 1},
		{"LIFI", "One-Click Onboard", "Bridge from any chain\nDeposit to Hyperliquid\nSeamless flow", 5},
		{"SALT", "Robo Managers", "Policy-controlled accounts\nAutomated strategies\nNon-custodial", 9},
	}
	for _, p := range pillars {
		b.AddBadge(s, p.x, 2.2, p.badge)
		b.AddText(s, deck.Box(p.x-0.3, 2.8, 3.5, 0.6), p.title,
			deck.Size(28), deck.Color(white), deck.Bold())
		b.AddCard(s, deck.Box(p.x-0.3, 3.5, 3.5, 2.5), darkGray, deck.Border(yellow, 1))
		b.AddText(s, deck.Box(p.x, 3.7, 3, 2), p.desc,
			deck.Size(16), deck.Color(white))
	}

	b.AddText(s, deck.Box(0.5, 6.5, 12.333, 0.5),
		`"Trade ideas, not just single tokens" + "One-click onboarding" + "Never take custody"`,
		deck.Size(14), deck.Color(yellow), deck.Italic(), deck.Center())
}

// bountyHeader draws the badge and title shared by the three deep dives.
func bountyHeader(b *deck.Builder, s *model.Slide, badge, title, quote string) {
	b.AddBadge(s, 0.5, 0.5, badge)
	b.AddText(s, deck.Box(2, 0.4, 10, 0.8), title,
		deck.Size(40), deck.Color(white), deck.Bold())
	b.AddText(s, deck.Box(0.5, 1.2, 12.333, 0.5), quote,
		deck.Size(16), deck.Color(gray), deck.Italic())
}

func sectionLabel(b *deck.Builder, s *model.Slide, box model.BBox, text string) {
	b.AddText(s, box, text, deck.Size(24), deck.Color(yellow), deck.Bold())
}

func v1Pear(b *deck.Builder) {
	s := b.NewSlide(black)

	bountyHeader(b, s, "PEAR", "Narrative Trading Engine",
		`"Build tools that let people trade ideas, not just single tokens"`)

	sectionLabel(b, s, deck.Box(0.5, 1.9, 5.5, 0.5), "How It Works")
	b.AddBullets(s, deck.Box(0.8, 2.5, 5.5, 3), []string{
		"1. Enter your market thesis in plain English",
		"2. AI (Claude) generates trade suggestions",
		"3. Select pair or basket trade",
		"4. Adjust stake, leverage, direction",
		"5. Execute via Pear Protocol API",
	})

	sectionLabel(b, s, deck.Box(7, 1.9, 5.5, 0.5), "Key Features")
	b.AddBullets(s, deck.Box(7.3, 2.5, 5.5, 3), []string{
		"Narrative-first UI (themes, not tickers)",
		"Pair trades: Long A / Short B",
		"Basket trades: Long group vs benchmark",
		"Bet-slip UX (stake, direction, risk)",
		"Full trade logging with metadata",
	})

	b.AddCard(s, deck.Box(0.5, 5.3, 12.333, 1.8), darkGray, yellowOutline())
	b.AddText(s, deck.Box(0.8, 5.5, 12, 0.4), "Example Thesis:",
		deck.Size(14), deck.Color(yellow), deck.Bold())
	b.AddText(s, deck.Box(0.8, 5.9, 12, 0.4),
		`"I believe AI tokens will outperform Ethereum over the next month"`,
		deck.Size(18), deck.Color(white), deck.Italic())
	b.AddText(s, deck.Box(0.8, 6.4, 12, 0.4),
		"→ AI suggests: Long RENDER, TAO, FET basket / Short ETH benchmark",
		deck.Size(16), deck.Color(gray))
}

func v1Lifi(b *deck.Builder) {
	s := b.NewSlide(black)

	bountyHeader(b, s, "LIFI", "One-Click Onboarding",
		`"Bridge users from any chain into HyperEVM using LI.FI routing"`)

	x := 0.5
	for i, step := range []string{"Any Chain", "LI.FI Router", "HyperEVM", "Trading Account"} {
		if i > 0 {
			b.AddFlowArrow(s, x, 2.3, 0.8, 0.5)
			x += 0.8
		}
		b.AddFlowBox(s, x, 2.2, 2.2, 0.7, step)
		x += 2.5
	}

	sectionLabel(b, s, deck.Box(0.5, 3.3, 5.5, 0.5), "User Experience")
	b.AddBullets(s, deck.Box(0.8, 3.9, 5.5, 2.5), []string{
		"Select origin chain + token",
		"See full route summary & ETA",
		"Track progress in real-time",
		"Automatic deposit to trading account",
		"Mobile-first responsive design",
	})

	sectionLabel(b, s, deck.Box(7, 3.3, 5.5, 0.5), "Technical Implementation")
	b.AddBullets(s, deck.Box(7.3, 3.9, 5.5, 2.5), []string{
		"Dedicated lifi-service backend",
		"GET /onboard/options - supported chains",
		"POST /onboard/quote - route quotes",
		"POST /onboard/track - progress tracking",
		"Reusable deposit component",
	})

	b.AddAccentBox(s, deck.Box(4, 6.2, 5.333, 1), "1 Click", "From any chain to trading")
}

func v1Salt(b *deck.Builder) {
	s := b.NewSlide(black)

	bountyHeader(b, s, "SALT", "Policy-Controlled Robo Managers",
		`"Automate and manage capital without ever taking custody"`)

	sectionLabel(b, s, deck.Box(0.5, 1.9, 6, 0.5), "Policy Controls")
	b.AddBullets(s, deck.Box(0.8, 2.5, 5.5, 2.5), []string{
		"Max Leverage: 1-10x limit",
		"Daily Notional: $100 - $1M cap",
		"Max Drawdown: 1-50% protection",
		"Allowed Pairs: Whitelist only",
		"All rules enforced before execution",
	})

	sectionLabel(b, s, deck.Box(7, 1.9, 5.5, 0.5), "Automated Strategies")
	b.AddBullets(s, deck.Box(7.3, 2.5, 5.5, 2.5), []string{
		"Mean Reversion: AI vs ETH",
		"SOL Ecosystem vs BTC",
		"DeFi Momentum plays",
		"60-second strategy loop",
		"Full audit trail in strategy_runs",
	})

	b.AddCard(s, deck.Box(0.5, 5.2, 12.333, 2), darkGray, deck.Border(yellow, 2))
	b.AddText(s, deck.Box(0.8, 5.4, 12, 0.5), "NON-CUSTODIAL BY DESIGN",
		deck.Size(24), deck.Color(yellow), deck.Bold())
	b.AddText(s, deck.Box(0.8, 5.9, 12, 1),
		"Your funds stay in YOUR policy-controlled account. The robo manager only instructs trades under strict rules - never holds your assets.",
		deck.Size(18), deck.Color(white))
}

func v1Architecture(b *deck.Builder) {
	s := b.NewSlide(black)

	b.AddText(s, deck.Box(0.5, 0.3, 12.333, 0.8), "Architecture",
		deck.Size(44), deck.Color(white), deck.Bold())

	services := []struct {
		name, desc string
		x, y       float64
	}{
		{"Frontend", "Next.js 14\nRainbowKit\nTailwind CSS", 0.5, 1.5},
		{"pear-service", "Claude AI\nPear Protocol\nTrade Execution", 4, 1.5},
		{"lifi-service", "LI.FI SDK\nRoute Optimization\nDeposit Flow", 7.5, 1.5},
		{"salt-service", "Salt SDK\nPolicy Engine\nStrategy Loop", 11, 1.5},
	}
	for _, svc := range services {
		b.AddCard(s, deck.Box(svc.x, svc.y, 2.8, 2), darkGray, yellowOutline())
		b.AddText(s, deck.Box(svc.x+0.1, svc.y+0.1, 2.6, 0.4), svc.name,
			deck.Size(16), deck.Color(yellow), deck.Bold(), deck.Center())
		b.AddText(s, deck.Box(svc.x+0.1, svc.y+0.6, 2.6, 1.3), svc.desc,
			deck.Size(12), deck.Color(white), deck.Center())
	}

	b.AddText(s, deck.Box(0.5, 4, 12.333, 0.5), "External Integrations",
		deck.Size(20), deck.Color(gray))

	externals := []struct {
		name string
		x, y float64
	}{
		{"Hyperliquid", 1, 4.6},
		{"Pear Protocol", 4, 4.6},
		{"LI.FI", 7, 4.6},
		{"Salt", 10, 4.6},
	}
	for _, ext := range externals {
		b.AddLabel(s, deck.Box(ext.x, ext.y, 2.5, 0.6), yellow, ext.name, deck.Color(black))
	}

	b.AddText(s, deck.Box(0.5, 5.5, 12.333, 0.4), "Tech Stack",
		deck.Size(20), deck.Color(gray))
	b.AddText(s, deck.Box(0.5, 6, 12.333, 0.4),
		"TypeScript • Turborepo • Fastify • Supabase • Anthropic Claude • Viem/Wagmi • pnpm",
		deck.Size(16), deck.Color(white), deck.Center())
}

// demoStep is one row of the demo walkthrough.
type demoStep struct {
	num, title, desc, bounty string
}

var demoSteps = []demoStep{
	{"1", "ONBOARD", "User bridges USDC from Arbitrum to HyperEVM via LI.FI", "LIFI"},
	{"2", "CONNECT", "Connect wallet, funds auto-deposit to trading account", "LIFI"},
	{"3", "THESIS", `Enter thesis: "AI will outperform ETH this month"`, "PEAR"},
	{"4", "TRADE", "AI suggests pair trade, user confirms with bet-slip UI", "PEAR"},
	{"5", "EXECUTE", "Trade executes via Pear Protocol on Hyperliquid", "PEAR"},
	{"6", "AUTOMATE", "Enable robo manager with risk policies", "SALT"},
}

func v1Demo(b *deck.Builder) {
	s := b.NewSlide(black)

	b.AddText(s, deck.Box(0.5, 0.3, 12.333, 0.8), "Demo Flow",
		deck.Size(44), deck.Color(white), deck.Bold())
	b.AddText(s, deck.Box(0.5, 1, 12.333, 0.5), "End-to-end: Onboard → Trade → Automate",
		deck.Size(20), deck.Color(yellow), deck.Italic())

	y := 1.7
	for _, step := range demoSteps {
		b.AddOval(s, deck.Box(0.6, y, 0.5, 0.5), yellow, step.num)
		b.AddText(s, deck.Box(1.3, y-0.05, 2, 0.5), step.title,
			deck.Size(18), deck.Color(yellow), deck.Bold())
		b.AddText(s, deck.Box(3.5, y, 7.5, 0.5), step.desc,
			deck.Size(16), deck.Color(white))
		b.AddBadge(s, 11.5, y+0.05, step.bounty)
		y += 0.85
	}
}

// bountyChecks lists the acceptance criteria met per bounty.
var bountyChecks = []struct {
	bounty string
	checks []string
}{
	{"PEAR", []string{
		"✓ Trade UI starts from ideas/themes",
		"✓ Pair + basket trades wired live",
		"✓ Narrative metadata logged",
		"✓ Bet-slip UX design",
		"✓ Automation routes to pear-service",
	}},
	{"LIFI", []string{
		"✓ lifi-service endpoints exposed",
		"✓ Composable deposit component",
		"✓ Quote, ETA, route shown",
		"✓ Progress & error states",
		"✓ Mobile responsive",
	}},
	{"SALT", []string{
		"✓ Account/policy endpoints",
		"✓ Strategy loop runs periodically",
		"✓ Policy limits enforced",
		"✓ Frontend shows all state",
		"✓ Non-custodial design",
	}},
}

func v1Bounties(b *deck.Builder) {
	s := b.NewSlide(black)

	b.AddText(s, deck.Box(0.5, 0.3, 12.333, 0.8), "Bounty Requirements",
		deck.Size(40), deck.Color(white), deck.Bold())
	b.AddText(s, deck.Box(0.5, 1, 12.333, 0.4), "All acceptance criteria satisfied",
		deck.Size(18), deck.Color(yellow), deck.Italic())

	xs := []float64{0.5, 4.7, 8.9}
	for i, col := range bountyChecks {
		b.AddBadge(s, xs[i], 1.5, col.bounty)
		y := 2.1
		for _, check := range col.checks {
			b.AddText(s, deck.Box(xs[i], y, 4, 0.4), check,
				deck.Size(14), deck.Color(white))
			y += 0.5
		}
	}

	b.AddText(s, deck.Box(0.5, 5.8, 12.333, 1),
		"TAGO Leap delivers on ALL THREE bounties with a cohesive, production-ready platform",
		deck.Size(20), deck.Color(white), deck.Bold(), deck.Center())
}

// differentiators are the reasons the project stands out.
var differentiators = []struct {
	title, desc string
}{
	{"Innovation", "First narrative trading platform on Hyperliquid"},
	{"Integration", "Seamlessly combines PEAR + LIFI + SALT"},
	{"User Experience", "Bet-slip simplicity, not trading terminal complexity"},
	{"Safety", "Non-custodial robo managers with policy enforcement"},
	{"Accessibility", "One-click onboarding from any blockchain"},
	{"Production Ready", "Clean architecture, full documentation"},
}

func v1WhyTago(b *deck.Builder) {
	s := b.NewSlide(black)

	b.AddText(s, deck.Box(0.5, 0.3, 12.333, 0.8), "Why TAGO Leap",
		deck.Size(44), deck.Color(white), deck.Bold())

	y := 1.3
	for _, d := range differentiators {
		b.AddRect(s, deck.Box(0.5, y+0.1, 0.1, 0.5), yellow)
		b.AddText(s, deck.Box(0.8, y, 4, 0.5), d.title,
			deck.Size(22), deck.Color(yellow), deck.Bold())
		b.AddText(s, deck.Box(5, y+0.05, 8, 0.5), d.desc,
			deck.Size(18), deck.Color(white))
		y += 0.85
	}

	b.AddText(s, deck.Box(0.5, 6.3, 12.333, 0.8),
		`"Trade ideas, not just single tokens" - Pear Protocol Vision`,
		deck.Size(18), deck.Color(gray), deck.Italic(), deck.Center())
}

func v1CallToAction(b *deck.Builder) {
	s := b.NewSlide(black)

	frameBorders(b, s, true)
	b.AddText(s, deck.Box(0.5, 1.5, 12.333, 1), "TAGO",
		deck.Size(96), deck.Color(white), deck.Bold(), deck.Center())
	b.AddText(s, deck.Box(0.5, 2.9, 12.333, 0.8), "LEAP",
		deck.Size(72), deck.Color(yellow), deck.Bold(), deck.Italic(), deck.Center())
	b.AddText(s, deck.Box(0.5, 4.2, 12.333, 0.6), "The future of narrative trading is here.",
		deck.Size(28), deck.Color(white), deck.Italic(), deck.Center())

	b.AddAccentBox(s, deck.Box(2.5, 5.2, 2.5, 0.8), "PEAR", "Trade Ideas")
	b.AddAccentBox(s, deck.Box(5.5, 5.2, 2.5, 0.8), "LIFI", "1-Click Onboard")
	b.AddAccentBox(s, deck.Box(8.5, 5.2, 2.5, 0.8), "SALT", "Robo Managers")

	b.AddText(s, deck.Box(0.5, 6.4, 12.333, 0.5), "Thank you!",
		deck.Size(32), deck.Color(white), deck.Bold(), deck.Center())
	frameBorders(b, s, false)
}
