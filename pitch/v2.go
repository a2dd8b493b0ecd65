package pitch

import (
	"github.com/tsawler/pitchdeck/deck"
	"github.com/tsawler/pitchdeck/model"
)

// BuildV2 adds the twelve slides of the second deck revision. It relies on
// the richer primitives: styled headings, widened cards, stat boxes and flow
// diagrams.
func BuildV2(b *deck.Builder) {
	v2Title(b)
	v2Problem(b)
	v2Solution(b)
	v2Pear(b)
	v2Lifi(b)
	v2Salt(b)
	v2Architecture(b)
	v2Demo(b)
	v2Bounties(b)
	v2WhyTago(b)
	v2Roadmap(b)
	v2CallToAction(b)
}

var (
	nearBlack = deck.NearBlack
	panel     = deck.Panel
)

// heading renders a two-tone slide title with the accent in yellow.
func heading(b *deck.Builder, s *model.Slide, prefix, accent, suffix string) *model.Shape {
	return b.AddStyledHeading(s, deck.Box(0.6, 0.4, 12.133, 0.9), prefix, accent, suffix, yellow,
		deck.Size(40), deck.Color(white), deck.Bold())
}

func subheading(b *deck.Builder, s *model.Slide, text string) *model.Shape {
	return b.AddText(s, deck.Box(0.6, 1.25, 12.133, 0.5), text,
		deck.Size(18), deck.Color(gray), deck.Italic())
}

// accentRule is the short yellow bar under each title.
func accentRule(b *deck.Builder, s *model.Slide) {
	b.AddRect(s, deck.Box(0.6, 1.8, 1.2, 0.06), yellow)
}

func v2Title(b *deck.Builder) {
	s := b.NewSlide(nearBlack)

	b.AddRect(s, deck.Box(0, 0, 0.25, 7.5), yellow)
	b.AddStyledHeading(s, deck.Box(1, 1.6, 11.333, 1.6), "TAGO ", "LEAP", "", yellow,
		deck.Size(88), deck.Color(white), deck.Bold(), deck.Center())
	b.AddStyledHeading(s, deck.Box(1, 3.3, 11.333, 0.8), "Trade ", "ideas", ", not tokens", yellow,
		deck.Size(32), deck.Color(white), deck.Center())
	b.AddText(s, deck.Box(1, 4.1, 11.333, 0.6), "AI-Powered Narrative Trading on Hyperliquid",
		deck.Size(20), deck.Color(gray), deck.Center())

	x := 4.4
	for _, badge := range []string{"PEAR", "LIFI", "SALT"} {
		b.AddBadge(s, x, 5.1, badge)
		x += 1.6
	}

	b.AddText(s, deck.Box(1, 6.5, 11.333, 0.5), "Hyperstack Hackathon 2025",
		deck.Size(14), deck.Color(gray), deck.Center())
}

func v2Problem(b *deck.Builder) {
	s := b.NewSlide(nearBlack)

	heading(b, s, "The ", "Problem", "")
	subheading(b, s, "On-chain trading still asks users to think in tokens, not ideas")
	accentRule(b, s)

	problems := []struct{ title, desc string }{
		{"Complex", "Users manage raw tokens, not market theses"},
		{"Fragmented", "Bridging from other chains is painful"},
		{"Manual", "No automated guardrails for risk"},
		{"Custodial", "Automation tools require giving up control"},
	}
	y := 2.2
	for _, p := range problems {
		b.AddRect(s, deck.Box(0.6, y+0.08, 0.08, 0.45), yellow)
		b.AddText(s, deck.Box(0.9, y, 2.6, 0.6), p.title,
			deck.Size(22), deck.Color(yellow), deck.Bold())
		b.AddText(s, deck.Box(3.5, y+0.05, 8.5, 0.6), p.desc,
			deck.Size(18), deck.Color(white))
		y += 0.75
	}

	stats := []struct{ number, label string }{
		{"5+", "steps to bridge & trade"},
		{"0", "tools for narrative trading"},
		{"100%", "manual risk management"},
	}
	x := 0.9
	for _, st := range stats {
		b.AddStatBox(s, deck.Box(x, 5.35, 3.6, 1.6), st.number, st.label, yellow)
		x += 4
	}
}

func v2Solution(b *deck.Builder) {
	s := b.NewSlide(nearBlack)

	heading(b, s, "TAGO Leap: The ", "Solution", "")
	subheading(b, s, "One platform. Three powerful integrations.")
	accentRule(b, s)

	pillars := []struct{ badge, title, desc string }{
		{"PEAR", "Trade Ideas", "AI-powered narrative trading\nPair & basket trades\nBet-slip UX"},
		{"LIFI", "One-Click Onboard", "Bridge from any chain\nDeposit to Hyperliquid\nSeamless flow"},
		{"SALT", "Robo Managers", "Policy-controlled accounts\nAutomated strategies\nNon-custodial"},
	}
	x := 0.6
	for _, p := range pillars {
		b.AddCard(s, deck.Box(x, 2.2, 3.8, 3.9), panel, deck.Border(yellow, 1.5))
		b.AddBadge(s, x+0.3, 2.5, p.badge)
		b.AddText(s, deck.Box(x+0.3, 3.1, 3.2, 0.6), p.title,
			deck.Size(26), deck.Color(white), deck.Bold())
		b.AddText(s, deck.Box(x+0.3, 3.9, 3.2, 2), p.desc,
			deck.Size(16), deck.Color(gray))
		x += 4.167
	}

	b.AddText(s, deck.Box(0.6, 6.45, 12.133, 0.5),
		"Trade ideas  •  Onboard in one click  •  Never take custody",
		deck.Size(16), deck.Color(yellow), deck.Italic(), deck.Center())
}

// v2BountyHeader draws the badge, two-tone title and quote shared by the
// three deep dives.
func v2BountyHeader(b *deck.Builder, s *model.Slide, badge, prefix, accent, quote string) {
	b.AddBadge(s, 0.6, 0.6, badge)
	b.AddStyledHeading(s, deck.Box(2.2, 0.4, 10.5, 0.9), prefix, accent, "", yellow,
		deck.Size(36), deck.Color(white), deck.Bold())
	subheading(b, s, quote)
	accentRule(b, s)
}

// column is a titled bullet list on a card.
func column(b *deck.Builder, s *model.Slide, x, y, w, h float64, title string, items []string) {
	b.AddCard(s, deck.Box(x, y, w, h), panel, deck.Border(darkGray, 1))
	b.AddText(s, deck.Box(x+0.3, y+0.2, w-0.6, 0.5), title,
		deck.Size(22), deck.Color(yellow), deck.Bold())
	b.AddBullets(s, deck.Box(x+0.3, y+0.8, w-0.6, h-1), items)
}

func v2Pear(b *deck.Builder) {
	s := b.NewSlide(nearBlack)

	v2BountyHeader(b, s, "PEAR", "Narrative ", "Trading Engine",
		`"Build tools that let people trade ideas, not just single tokens"`)

	column(b, s, 0.6, 2.1, 5.9, 3.1, "How It Works", []string{
		"Enter your market thesis in plain English",
		"Claude generates pair & basket suggestions",
		"Adjust stake, leverage and direction",
		"Execute via the Pear Protocol API",
	})
	column(b, s, 6.833, 2.1, 5.9, 3.1, "Key Features", []string{
		"Narrative-first UI: themes, not tickers",
		"Pair trades: Long A / Short B",
		"Baskets vs a benchmark",
		"Full trade logging with metadata",
	})

	b.AddCard(s, deck.Box(0.6, 5.45, 12.133, 1.6), panel, deck.Border(yellow, 2))
	b.AddText(s, deck.Box(0.9, 5.6, 11.5, 0.4), "Example thesis",
		deck.Size(14), deck.Color(yellow), deck.Bold())
	b.AddText(s, deck.Box(0.9, 5.95, 11.5, 0.5),
		`"AI tokens will outperform Ethereum over the next month"`,
		deck.Size(20), deck.Color(white), deck.Italic())
	b.AddText(s, deck.Box(0.9, 6.45, 11.5, 0.4),
		"→ Long RENDER, TAO, FET basket / Short ETH benchmark",
		deck.Size(16), deck.Color(gray))
}

func v2Lifi(b *deck.Builder) {
	s := b.NewSlide(nearBlack)

	v2BountyHeader(b, s, "LIFI", "One-Click ", "Onboarding",
		`"Bridge users from any chain into HyperEVM using LI.FI routing"`)

	x := 0.6
	for i, step := range []string{"Any Chain", "LI.FI Router", "HyperEVM", "Trading Account"} {
		if i > 0 {
			b.AddFlowArrow(s, x, 2.35, 0.7, 0.6)
			x += 0.7
		}
		b.AddFlowBox(s, x, 2.2, 2.5, 0.9, step)
		x += 2.5
	}

	column(b, s, 0.6, 3.5, 5.9, 2.6, "User Experience", []string{
		"Pick origin chain + token",
		"Route summary, fees & ETA up front",
		"Live progress tracking",
		"Automatic deposit to trading account",
	})
	column(b, s, 6.833, 3.5, 5.9, 2.6, "Under the Hood", []string{
		"Dedicated lifi-service backend",
		"GET /onboard/options",
		"POST /onboard/quote",
		"POST /onboard/track",
	})

	b.AddAccentBox(s, deck.Box(4.167, 6.35, 5, 0.9), "1 Click", "From any chain to trading")
}

func v2Salt(b *deck.Builder) {
	s := b.NewSlide(nearBlack)

	v2BountyHeader(b, s, "SALT", "Policy-Controlled ", "Robo Managers",
		`"Automate and manage capital without ever taking custody"`)

	limits := []struct{ number, label string }{
		{"10x", "max leverage"},
		{"$1M", "daily notional cap"},
		{"50%", "max drawdown stop"},
		{"60s", "strategy loop"},
	}
	x := 0.6
	for _, l := range limits {
		b.AddStatBox(s, deck.Box(x, 2.1, 2.8, 1.5), l.number, l.label, yellow)
		x += 3.111
	}

	column(b, s, 0.6, 3.85, 5.9, 2.1, "Automated Strategies", []string{
		"Mean reversion: AI vs ETH",
		"SOL ecosystem vs BTC",
		"DeFi momentum",
	})
	column(b, s, 6.833, 3.85, 5.9, 2.1, "Enforcement", []string{
		"Allowed pairs whitelist",
		"Every rule checked before execution",
		"Audit trail in strategy_runs",
	})

	b.AddStyledHeading(s, deck.Box(0.6, 6.3, 12.133, 0.8), "Non-custodial ", "by design", ": funds never leave your policy account",
		yellow, deck.Size(22), deck.Color(white), deck.Bold(), deck.Center())
}

func v2Architecture(b *deck.Builder) {
	s := b.NewSlide(nearBlack)

	heading(b, s, "", "Architecture", "")
	subheading(b, s, "A Turborepo monorepo: one frontend, three focused services")
	accentRule(b, s)

	services := []struct{ name, desc string }{
		{"Frontend", "Next.js 14\nRainbowKit\nTailwind CSS"},
		{"pear-service", "Claude AI\nPear Protocol\nTrade Execution"},
		{"lifi-service", "LI.FI SDK\nRoute Optimization\nDeposit Flow"},
		{"salt-service", "Salt SDK\nPolicy Engine\nStrategy Loop"},
	}
	x := 0.6
	for _, svc := range services {
		b.AddCard(s, deck.Box(x, 2.1, 2.85, 2.1), panel, deck.Border(yellow, 1))
		b.AddText(s, deck.Box(x+0.1, 2.25, 2.65, 0.45), svc.name,
			deck.Size(18), deck.Color(yellow), deck.Bold(), deck.Center())
		b.AddText(s, deck.Box(x+0.1, 2.8, 2.65, 1.3), svc.desc,
			deck.Size(13), deck.Color(white), deck.Center())
		x += 3.094
	}

	b.AddText(s, deck.Box(0.6, 4.45, 12.133, 0.4), "External Integrations",
		deck.Size(18), deck.Color(gray))
	x = 0.6
	for _, ext := range []string{"Hyperliquid", "Pear Protocol", "LI.FI", "Salt"} {
		b.AddBadge(s, x, 4.95, ext, deck.BadgeWidthOf(2.85))
		x += 3.094
	}

	b.AddText(s, deck.Box(0.6, 5.75, 12.133, 0.4), "Tech Stack",
		deck.Size(18), deck.Color(gray))
	b.AddText(s, deck.Box(0.6, 6.2, 12.133, 0.5),
		"TypeScript • Turborepo • Fastify • Supabase • Anthropic Claude • Viem/Wagmi • pnpm",
		deck.Size(16), deck.Color(white), deck.Center())
}

func v2Demo(b *deck.Builder) {
	s := b.NewSlide(nearBlack)

	heading(b, s, "Demo ", "Flow", "")
	b.AddStyledHeading(s, deck.Box(0.6, 1.25, 12.133, 0.5), "End-to-end: ", "Onboard → Trade → Automate", "",
		yellow, deck.Size(18), deck.Color(gray))
	accentRule(b, s)

	y := 2.05
	for _, step := range demoSteps {
		b.AddOval(s, deck.Box(0.6, y, 0.6, 0.6), yellow, step.num)
		b.AddText(s, deck.Box(1.45, y+0.05, 2.2, 0.5), step.title,
			deck.Size(18), deck.Color(yellow), deck.Bold())
		b.AddText(s, deck.Box(3.7, y+0.07, 7.4, 0.5), step.desc,
			deck.Size(16), deck.Color(white))
		b.AddBadge(s, 11.333, y+0.1, step.bounty)
		y += 0.82
	}
}

func v2Bounties(b *deck.Builder) {
	s := b.NewSlide(nearBlack)

	heading(b, s, "Bounty ", "Requirements", "")
	subheading(b, s, "All acceptance criteria satisfied")
	accentRule(b, s)

	x := 0.6
	for _, col := range bountyChecks {
		b.AddCard(s, deck.Box(x, 2.1, 3.9, 3.5), panel, deck.Border(darkGray, 1))
		b.AddBadge(s, x+0.25, 2.3, col.bounty)
		y := 2.9
		for _, check := range col.checks {
			b.AddText(s, deck.Box(x+0.25, y, 3.5, 0.45), check,
				deck.Size(14), deck.Color(white))
			y += 0.5
		}
		x += 4.117
	}

	b.AddStyledHeading(s, deck.Box(0.6, 5.9, 12.133, 1), "TAGO Leap delivers on ", "all three", " bounties with one cohesive platform",
		yellow, deck.Size(22), deck.Color(white), deck.Bold(), deck.Center())
}

func v2WhyTago(b *deck.Builder) {
	s := b.NewSlide(nearBlack)

	heading(b, s, "Why ", "TAGO Leap", "")
	accentRule(b, s)

	for i, d := range differentiators {
		col, row := i%2, i/2
		x := 0.6 + float64(col)*6.233
		y := 2.1 + float64(row)*1.35
		b.AddCard(s, deck.Box(x, y, 5.9, 1.15), panel, deck.Border(darkGray, 1))
		b.AddRect(s, deck.Box(x+0.2, y+0.25, 0.08, 0.65), yellow)
		b.AddText(s, deck.Box(x+0.45, y+0.12, 5.2, 0.45), d.title,
			deck.Size(20), deck.Color(yellow), deck.Bold())
		b.AddText(s, deck.Box(x+0.45, y+0.55, 5.2, 0.5), d.desc,
			deck.Size(15), deck.Color(white))
	}

	b.AddText(s, deck.Box(0.6, 6.3, 12.133, 0.6),
		`"Trade ideas, not just single tokens" - Pear Protocol Vision`,
		deck.Size(18), deck.Color(gray), deck.Italic(), deck.Center())
}

// milestones are the phases shown on the roadmap.
var milestones = []struct {
	phase, when string
	items       []string
}{
	{"Hackathon", "Now", []string{"Narrative pair & basket trades", "One-click LI.FI onboarding", "Policy-bound robo managers"}},
	{"Beta", "Q1 2026", []string{"Strategy marketplace", "Portfolio analytics", "Mobile app"}},
	{"Launch", "Q2 2026", []string{"Social thesis sharing", "More chains & venues", "Copy-trading with policies"}},
}

func v2Roadmap(b *deck.Builder) {
	s := b.NewSlide(nearBlack)

	heading(b, s, "", "Roadmap", "")
	subheading(b, s, "From hackathon build to production platform")
	accentRule(b, s)

	x := 0.6
	for i, m := range milestones {
		if i > 0 {
			b.AddFlowArrow(s, x, 2.25, 0.7, 0.6)
			x += 0.7
		}
		b.AddFlowBox(s, x, 2.2, 3.44, 0.7, m.phase)
		b.AddText(s, deck.Box(x, 3, 3.44, 0.4), m.when,
			deck.Size(14), deck.Color(yellow), deck.Italic(), deck.Center())
		b.AddCard(s, deck.Box(x, 3.5, 3.44, 2.4), panel, deck.Border(darkGray, 1))
		b.AddBullets(s, deck.Box(x+0.2, 3.65, 3.04, 2.1), m.items, deck.Size(15))
		x += 3.44
	}

	b.AddText(s, deck.Box(0.6, 6.3, 12.133, 0.6), "Every phase stays non-custodial.",
		deck.Size(18), deck.Color(gray), deck.Italic(), deck.Center())
}

func v2CallToAction(b *deck.Builder) {
	s := b.NewSlide(nearBlack)

	b.AddRect(s, deck.Box(13.083, 0, 0.25, 7.5), yellow)
	b.AddStyledHeading(s, deck.Box(1, 1.2, 11.333, 1.6), "TAGO ", "LEAP", "", yellow,
		deck.Size(88), deck.Color(white), deck.Bold(), deck.Center())
	b.AddText(s, deck.Box(1, 3, 11.333, 0.7), "The future of narrative trading is here.",
		deck.Size(28), deck.Color(white), deck.Italic(), deck.Center())

	pillars := []struct{ badge, label string }{
		{"PEAR", "Trade Ideas"},
		{"LIFI", "1-Click Onboard"},
		{"SALT", "Robo Managers"},
	}
	x := 1.9
	for _, p := range pillars {
		b.AddStatBox(s, deck.Box(x, 4.1, 2.9, 1.5), p.badge, p.label, yellow)
		x += 3.3
	}

	b.AddText(s, deck.Box(1, 6.2, 11.333, 0.7), "Thank you!",
		deck.Size(32), deck.Color(white), deck.Bold(), deck.Center())
}
