package cases

// mcqTemplate completes a strategy question. MCQs are always full cases and
// their truth is the best-scoring option.
func mcqTemplate(t Template, points []int, options ...string) Template {
	t.Difficulty = DifficultyFull
	t.Decision = MCQ(points, options...)
	t.Compute = bestOption(points)
	return t
}

var mcqTemplates = []Template{
	mcqTemplate(Template{
		ID: "mcq-market-entry-decision", Category: CategoryMarketEntry,
		Title: "Market Entry Strategy",
		Stem: "QuickBite, a food delivery startup, has hired you to advise on entering a new city. The CEO wants a clear recommendation. Market size: ${marketSize}M. " +
			"Competition: {competitors} established players holding {competitorShare}% combined market share. Customer acquisition costs are high due to saturated digital channels. What's the best market entry strategy?",
		Params:    []Param{P("marketSize", 10, 50, 10), P("competitors", 2, 5, 1), P("competitorShare", 60, 85, 5)},
		TimeLimit: 70,
		Hint:      "Win a niche before scaling",
		Approach:  "With entrenched rivals and expensive acquisition, a focused beachhead segment lets you win share cheaply before expanding.",
		HowTo:     "best option: niche beachhead",
	}, []int{2, 4, 1, 3},
		"Enter immediately with aggressive discounting to gain market share quickly",
		"Start with a niche segment (e.g., healthy food only) to build a beachhead",
		"Wait and enter when a competitor fails or market grows significantly",
		"Launch in suburbs first where competition is lower",
	),
	mcqTemplate(Template{
		ID: "mcq-pricing-psychology", Category: CategoryPricing,
		Title: "Pricing Strategy Choice",
		Stem: "ArtisanBrew, a premium coffee brand, has engaged you for pricing advice. Current price: ${currentPrice}. Recent market research confirms customers strongly associate quality with price in this category. " +
			"Competitive landscape: {competitorsPct}% of competitors price below ${compPrice}. Sales growing at {growthPct}% annually. Should you adjust pricing?",
		Params:    []Param{P("currentPrice", 15, 25, 5), P("compPrice", 10, 18, 2), P("competitorsPct", 60, 85, 5), P("growthPct", 10, 30, 5)},
		TimeLimit: 75,
		Hint:      "Price signals quality here",
		Approach:  "Customers read price as quality and sales are growing. Cutting price erodes the positioning, so hold the premium.",
		HowTo:     "best option: maintain premium pricing",
	}, []int{0, 4, 3, 2},
		"Reduce price to match competitors and increase market share",
		"Maintain current premium pricing to reinforce quality positioning",
		"Introduce a lower-priced 'value' line to capture price-sensitive customers",
		"Increase price by 10-15% to further differentiate and improve margins",
	),
	mcqTemplate(Template{
		ID: "mcq-profitability-lever", Category: CategoryProfitability,
		Title: "Profit Improvement Priority",
		Stem: "ValueMart, a retail chain, has called you in for a profitability turnaround. The CFO shows you: profit margin dropped from {oldMargin}% to {newMargin}%. " +
			"Your analysis reveals: (1) Revenue down {revDown}% due to traffic decline, (2) Costs up {costUp}% from supplier price increases, (3) Average transaction value down {ticketDown}%. What should be the top priority?",
		Params:    []Param{P("oldMargin", 8, 15, 2), P("newMargin", 3, 8, 1), P("revDown", 10, 25, 5), P("costUp", 8, 18, 5), P("ticketDown", 5, 15, 5)},
		TimeLimit: 70,
		Hint:      "Fix the biggest driver first",
		Approach:  "The revenue decline from lost traffic is the largest driver of the margin drop. Restoring traffic addresses the root cause.",
		HowTo:     "best option: drive store traffic",
	}, []int{4, 3, 2, 1},
		"Focus on driving store traffic through marketing and promotions",
		"Renegotiate supplier contracts to reduce cost increases",
		"Increase average transaction size through upselling and bundling",
		"Cut operating expenses like staff and store hours",
	),
	mcqTemplate(Template{
		ID: "mcq-customer-segment", Category: CategoryMarketSizing,
		Title: "Target Segment Selection",
		Stem: "SalesForce360, a SaaS product startup, needs go-to-market guidance. Three potential segments: SMB ({smbSize}k companies, ${smbPrice}/month willingness to pay), " +
			"Mid-market ({midSize}k companies, ${midPrice}/month), Enterprise ({entSize}k companies, ${entPrice}/month). Sales team is lean with limited resources. Which segment should you prioritize?",
		Params:    []Param{P("smbSize", 500, 2000, 500), P("smbPrice", 50, 200, 50), P("midSize", 50, 200, 50), P("midPrice", 500, 2000, 500), P("entSize", 5, 20, 5), P("entPrice", 5000, 20000, 5000)},
		TimeLimit: 75,
		Hint:      "Balance deal size and reach",
		Approach:  "A lean team cannot run long enterprise cycles or high-volume SMB sales. Mid-market balances deal value against cycle length.",
		HowTo:     "best option: mid-market",
	}, []int{2, 4, 3, 3},
		"SMB - largest market size and fastest sales cycle",
		"Mid-market - balance of deal size and market size",
		"Enterprise - highest deal value and lowest churn",
		"Build self-serve for SMB, sales team for Enterprise",
	),
	mcqTemplate(Template{
		ID: "mcq-capacity-constraint", Category: CategoryOps,
		Title: "Capacity Bottleneck Solution",
		Stem: "IndustrialCo's VP of Operations faces a capacity crunch. Current plant running at {utilizationPct}% capacity utilization. Demand growing {demandGrowth}%/quarter. " +
			"Lead time to add new capacity: {leadTime} months. Investment required: ${capexCost}M. Lost sales from stockouts: ${lostSaleCost}k per month. What should you recommend?",
		Params:    []Param{P("utilizationPct", 85, 95, 5), P("demandGrowth", 5, 15, 5), P("leadTime", 6, 12, 3), P("capexCost", 2, 10, 2), P("lostSaleCost", 50, 200, 50)},
		TimeLimit: 70,
		Hint:      "Lead time beats waiting here",
		Approach:  "Demand will outrun capacity before new capacity arrives. Starting expansion now avoids compounding stockout losses.",
		HowTo:     "best option: expand immediately",
	}, []int{4, 3, 2, 3},
		"Start capacity expansion immediately before hitting 100%",
		"Optimize current operations to squeeze out 10-15% more capacity",
		"Raise prices to slow demand growth and improve margins",
		"Outsource overflow production to contract manufacturers",
	),
	mcqTemplate(Template{
		ID: "mcq-product-launch", Category: CategoryMarketEntry,
		Title: "New Product Launch Strategy",
		Stem: "InnovateTech is ready to launch a new product and the CEO needs your strategic recommendation. Development cost: ${devCost}k (already sunk). Marketing budget: ${marketingBudget}k. " +
			"Early testing results: {npsScore} NPS score, {churnRate}% monthly churn rate. Intelligence shows a competitor launching similar product in {competitorMonths} months. What's the best move?",
		Params:    []Param{P("devCost", 100, 500, 100), P("marketingBudget", 50, 200, 50), P("npsScore", 20, 60, 10), P("churnRate", 8, 20, 3), P("competitorMonths", 3, 9, 3)},
		TimeLimit: 75,
		Hint:      "Learn fast without burning reputation",
		Approach:  "High churn says the product is not ready, but the competitor clock is ticking. A limited beta gathers feedback while staking an early claim.",
		HowTo:     "best option: limited beta",
	}, []int{2, 3, 4, 0},
		"Launch immediately to beat competitor and gain first-mover advantage",
		"Delay launch 2-3 months to improve product and reduce churn",
		"Launch in limited beta to top customers only, gather feedback",
		"Cancel launch and focus resources on existing products",
	),
	mcqTemplate(Template{
		ID: "mcq-sales-strategy", Category: CategoryProfitability,
		Title: "Sales Team Allocation",
		Stem: "DualProduct Inc's VP of Sales needs to optimize team allocation. Current team: {salesReps} sales reps. Product A metrics: ${productAValue}k average deal size, {productAWinRate}% win rate, {productACycle}-month sales cycle. " +
			"Product B metrics: ${productBValue}k deal size, {productBWinRate}% win rate, {productBCycle}-month cycle. How should you allocate the sales team?",
		Params:    []Param{P("salesReps", 10, 30, 10), P("productAValue", 50, 200, 50), P("productAWinRate", 20, 40, 10), P("productACycle", 3, 6, 1), P("productBValue", 100, 400, 100), P("productBWinRate", 10, 25, 5), P("productBCycle", 6, 12, 3)},
		TimeLimit: 75,
		Hint:      "Different cycles need specialists",
		Approach:  "The products have very different deal sizes and cycles. Specialized reps build expertise and keep pipelines predictable.",
		HowTo:     "best option: specialize reps",
	}, []int{2, 4, 3, 2},
		"All reps sell both products to maximize flexibility",
		"Specialize: assign reps to either Product A or Product B",
		"80% on Product A (higher win rate), 20% on Product B",
		"80% on Product B (higher value), 20% on Product A",
	),
	mcqTemplate(Template{
		ID: "mcq-churn-reduction", Category: CategoryProfitability,
		Title: "Customer Retention Investment",
		Stem: "SubscribeCo's CFO is concerned about churn and wants to invest in retention. Current base: {customers} customers at ${mrr}/month. Churn rate: {churnPct}% monthly. Budget: ${budget}k to invest. " +
			"Three options: (A) Customer success team (reduce churn to {optionAChurn}%), (B) Product improvements (reduce to {optionBChurn}%), (C) Loyalty program (reduce to {optionCChurn}%). Which has the best 12-month ROI?",
		Params:    []Param{P("customers", 500, 2000, 500), P("mrr", 50, 200, 50), P("churnPct", 5, 12, 2), P("budget", 50, 200, 50), P("optionAChurn", 2, 5, 1), P("optionBChurn", 3, 6, 1), P("optionCChurn", 4, 7, 1)},
		TimeLimit: 75,
		Hint:      "Lowest churn within twelve months",
		Approach:  "Over twelve months the option with the lowest resulting churn retains the most revenue, and customer success acts fastest.",
		HowTo:     "best option: customer success team",
	}, []int{4, 3, 2, 2},
		"Customer success team - direct customer relationships and proactive support",
		"Product improvements - fixes root cause of churn long-term",
		"Loyalty program - rewards and incentives for staying",
		"Split budget across all three approaches",
	),
	mcqTemplate(Template{
		ID: "mcq-competitive-response", Category: CategoryPricing,
		Title: "Competitor Price Cut Response",
		Stem: "BrandLeader is facing an aggressive competitive move. You're the market leader with {marketShare}% share at ${yourPrice} price point. Competitor #2 ({compShare}% share) just slashed price from ${compOldPrice} to ${compNewPrice}. " +
			"Your advantages: {brandLoyalty}% loyal customer base and {costAdvantage}% cost advantage. The CEO needs an immediate recommendation. How should you respond?",
		Params:    []Param{P("marketShare", 30, 50, 10), P("yourPrice", 100, 200, 25), P("compShare", 15, 30, 5), P("compOldPrice", 90, 180, 30), P("compNewPrice", 60, 120, 20), P("brandLoyalty", 40, 70, 10), P("costAdvantage", 10, 25, 5)},
		TimeLimit: 75,
		Hint:      "Protect only the at-risk customers",
		Approach:  "Loyal customers will not switch. Targeting promotions at the at-risk segment defends share without a price war.",
		HowTo:     "best option: targeted promotions",
	}, []int{2, 3, 3, 4},
		"Match their price immediately to protect market share",
		"Maintain premium pricing, emphasize quality and brand value",
		"Introduce a 'fighter brand' at their price point",
		"Offer limited-time promotions only to at-risk customers",
	),
	mcqTemplate(Template{
		ID: "mcq-expansion-priority", Category: CategoryMarketEntry,
		Title: "Growth Investment Priority",
		Stem: "GrowthCorp's board has allocated ${budget}M for expansion and needs your recommendation on where to invest. Three options: (A) New geographic market (${geoTAM}M TAM, {geoRisk}% execution risk), " +
			"(B) New customer segment (${segmentTAM}M TAM, {segmentRisk}% risk), (C) New product line (${productTAM}M TAM, {productRisk}% risk). Core business currently growing {coreGrowth}%/year. What should you prioritize?",
		Params:    []Param{P("budget", 5, 20, 5), P("geoTAM", 50, 200, 50), P("geoRisk", 30, 60, 10), P("segmentTAM", 30, 150, 30), P("segmentRisk", 20, 50, 10), P("productTAM", 100, 300, 50), P("productRisk", 40, 70, 10), P("coreGrowth", 15, 35, 10)},
		TimeLimit: 75,
		Hint:      "Weigh opportunity against execution risk",
		Approach:  "Risk-adjust each option. The new segment has the lowest execution risk and leverages the existing market presence.",
		HowTo:     "best option: new customer segment",
	}, []int{3, 4, 2, 3},
		"New geography - expand proven model to new markets",
		"New customer segment - leverage existing market presence",
		"New product line - biggest TAM and diversification",
		"Reinvest in core business to accelerate existing growth",
	),
}
