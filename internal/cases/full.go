package cases

import "math"

var fullTemplates = []Template{
	{
		ID: "fc-food-truck-breakeven", Category: CategoryMarketEntry, Difficulty: DifficultyFull,
		Title: "Food Truck Break-Even Analysis",
		Stem: "Your client, TacoTrek, is considering launching a food truck business. The CEO wants to understand the payback period before committing capital. " +
			"Startup costs: ${startup}k. Projected daily revenue: ${dailyRev}, daily operating costs: ${dailyCost}. Operating {daysPerMonth} days/month. How many months until break-even?",
		Params: []Param{P("startup", 50, 150, 25), P("dailyRev", 1400, 2000, 200), P("dailyCost", 400, 1200, 200), P("daysPerMonth", 20, 25, 5)},
		Compute: stepped(func(v Values) []Step {
			monthly := (v.Get("dailyRev") - v.Get("dailyCost")) * v.Get("daysPerMonth")
			return []Step{
				{Label: "monthly profit", Value: monthly},
				{Label: "months to break even", Value: v.Get("startup") * 1000 / monthly},
			}
		}),
		TimeLimit: 75, Bands: tightBands,
		Hint:     "Startup cost over monthly profit",
		Approach: "Daily profit is revenue minus operating cost. Multiply by operating days for monthly profit, then divide the startup cost in dollars by it.",
		HowTo:    "monthsToBreakEven = (startup x 1000) / ((dailyRev - dailyCost) x daysPerMonth)",
	},
	{
		ID: "fc-saas-ltv", Category: CategoryProfitability, Difficulty: DifficultyFull,
		Title: "SaaS Customer Lifetime Value",
		Stem: "CloudFlow, a B2B software company, has asked you to calculate customer lifetime value (LTV) to inform their customer acquisition strategy. " +
			"Monthly subscription: ${monthly}. Average customer tenure: {months} months. Cost to serve each customer: ${serveCost}/month. What's the LTV per customer?",
		Params: []Param{P("monthly", 50, 200, 25), P("months", 12, 36, 6), P("serveCost", 10, 50, 10)},
		Compute: numeric(func(v Values) float64 {
			return (v.Get("monthly") - v.Get("serveCost")) * v.Get("months")
		}),
		TimeLimit: 60, Bands: tightBands,
		Hint:     "Monthly margin times customer tenure",
		Approach: "Subtract the cost to serve from the subscription price and multiply that monthly margin by the average tenure.",
		HowTo:    "ltv = (monthly - serveCost) x months",
	},
	{
		ID: "fc-retail-expansion-tam", Category: CategoryMarketSizing, Difficulty: DifficultyFull,
		Title: "Retail Market Opportunity",
		Stem: "StyleCo, an apparel retailer, is evaluating a new city for expansion. The CFO needs a quick total addressable market (TAM) estimate. " +
			"City population: {population}k. Target demographic: {targetPct}% of population. Annual purchase rate among targets: {purchasePct}%. Average purchase value: ${avgPurchase}. What's the TAM in millions?",
		Params: []Param{P("population", 200, 1000, 200), P("targetPct", 20, 50, 10), P("purchasePct", 30, 70, 10), P("avgPurchase", 100, 500, 100)},
		Compute: stepped(func(v Values) []Step {
			buyers := v.Get("population") * 1000 * v.Get("targetPct") / 100 * v.Get("purchasePct") / 100
			return []Step{
				{Label: "annual buyers", Value: buyers},
				{Label: "TAM ($M)", Value: buyers * v.Get("avgPurchase") / 1e6},
			}
		}),
		TimeLimit: 75, Bands: tightBands, SevereMiss: ruleOvershootX2,
		Hint:     "Funnel population down, then value",
		Approach: "Scale population to people, apply the target share and purchase rate to get buyers, multiply by average purchase, and convert to millions.",
		HowTo:    "tam = (population x 1000 x (targetPct/100) x (purchasePct/100) x avgPurchase) / 1000000",
	},
	{
		ID: "fc-subscription-churn-impact", Category: CategoryProfitability, Difficulty: DifficultyFull,
		Title: "Subscription Revenue Projection",
		Stem: "StreamFit's CFO needs a revenue projection for their upcoming board meeting. Current base: {startingSubs} subscribers at ${monthly}/month. " +
			"New customer growth: {newSubs} subscribers/month. Monthly churn rate: {churnPct}%. What will month 12 monthly revenue be?",
		Params: []Param{P("startingSubs", 1000, 5000, 1000), P("monthly", 20, 100, 20), P("newSubs", 100, 500, 100), P("churnPct", 5, 15, 5)},
		Compute: stepped(func(v Values) []Step {
			start := v.Get("startingSubs")
			subs := start + v.Get("newSubs")*12 - start*v.Get("churnPct")/100*12
			return []Step{
				{Label: "month 12 subscribers", Value: subs},
				{Label: "month 12 revenue", Value: subs * v.Get("monthly")},
			}
		}),
		TimeLimit: 90, Bands: looseBands,
		Hint:     "Project subscribers, then multiply price",
		Approach: "Add twelve months of new subscribers, subtract twelve months of churn measured on the starting base, then multiply by the monthly price.",
		HowTo:    "month12Subs = startingSubs + (newSubs x 12) - (startingSubs x (churnPct/100) x 12); month12Rev = month12Subs x monthly",
	},
	{
		ID: "fc-pricing-optimization", Category: CategoryPricing, Difficulty: DifficultyFull,
		Title: "Price Point Comparison",
		Stem: "TechiePro leadership is testing two pricing strategies for their new product. Option A: Price at ${priceA}, projected volume {volumeA} units, variable cost ${costA}/unit. " +
			"Option B: Price at ${priceB}, volume {volumeB} units, cost ${costB}/unit. Which option maximizes total contribution margin?",
		Params: []Param{P("priceA", 30, 60, 10), P("volumeA", 1000, 2000, 500), P("costA", 15, 35, 5), P("priceB", 40, 80, 10), P("volumeB", 600, 1500, 300), P("costB", 20, 45, 5)},
		Compute: stepped(func(v Values) []Step {
			a := (v.Get("priceA") - v.Get("costA")) * v.Get("volumeA")
			b := (v.Get("priceB") - v.Get("costB")) * v.Get("volumeB")
			return []Step{
				{Label: "option A margin", Value: a},
				{Label: "option B margin", Value: b},
				{Label: "best total margin", Value: math.Max(a, b)},
			}
		}),
		TimeLimit: 75, Bands: tightBands,
		Hint:     "Compare unit margin times volume",
		Approach: "For each option multiply unit margin (price minus cost) by volume. Answer with the larger total contribution.",
		HowTo:    "profitA = (priceA - costA) x volumeA; profitB = (priceB - costB) x volumeB; max(profitA, profitB)",
	},
	{
		ID: "fc-warehouse-roi", Category: CategoryOps, Difficulty: DifficultyFull,
		Title: "Warehouse Automation ROI",
		Stem: "LogiCo is evaluating warehouse automation to improve margins. The COO wants to see the business case. Upfront investment: ${upfront}k. " +
			"Annual labor savings: ${savings}k. Annual maintenance costs: ${maintenance}k. Useful life: {years} years. What's the total net benefit over the investment period?",
		Params: []Param{P("upfront", 200, 600, 100), P("savings", 80, 200, 40), P("maintenance", 20, 60, 20), P("years", 5, 10, 5)},
		Compute: stepped(func(v Values) []Step {
			annual := v.Get("savings") - v.Get("maintenance")
			return []Step{
				{Label: "annual net savings", Value: annual},
				{Label: "net benefit", Value: annual*v.Get("years") - v.Get("upfront")},
			}
		}),
		TimeLimit: 70, Bands: tightBands, SevereMiss: ruleOppositeSign,
		Hint:     "Lifetime net savings minus investment",
		Approach: "Annual net savings are labor savings minus maintenance. Multiply by useful life and subtract the upfront investment.",
		HowTo:    "netBenefit = ((savings - maintenance) x years) - upfront",
	},
	{
		ID: "fc-marketing-channel-roi", Category: CategoryProfitability, Difficulty: DifficultyFull,
		Title: "Marketing Channel Returns",
		Stem: "GrowthLabs is comparing two customer acquisition channels to allocate next quarter's budget. Channel A: ${costA}k spend, acquired {customersA} customers, LTV ${ltvA} each. " +
			"Channel B: ${costB}k spend, acquired {customersB} customers, LTV ${ltvB} each. Which channel delivers better ROI percentage?",
		Params: []Param{P("costA", 20, 80, 20), P("customersA", 100, 500, 100), P("ltvA", 200, 800, 200), P("costB", 30, 100, 20), P("customersB", 50, 300, 50), P("ltvB", 400, 1200, 200)},
		Compute: stepped(func(v Values) []Step {
			roi := func(cost, customers, ltv float64) float64 {
				spend := cost * 1000
				return (customers*ltv - spend) / spend * 100
			}
			a := roi(v.Get("costA"), v.Get("customersA"), v.Get("ltvA"))
			b := roi(v.Get("costB"), v.Get("customersB"), v.Get("ltvB"))
			return []Step{
				{Label: "channel A ROI %", Value: a},
				{Label: "channel B ROI %", Value: b},
				{Label: "best ROI %", Value: math.Max(a, b)},
			}
		}),
		TimeLimit: 90, Bands: looseBands,
		Hint:     "Value minus spend over spend",
		Approach: "For each channel, customer value is customers times LTV. ROI is value minus spend, divided by spend. Report the better channel's ROI.",
		HowTo:    "roi = ((customers x ltv) - (cost x 1000)) / (cost x 1000) x 100; max(roiA, roiB)",
	},
	{
		ID: "fc-product-mix", Category: CategoryProfitability, Difficulty: DifficultyFull,
		Title: "Product Portfolio Profit",
		Stem: "SnackCo needs a profitability analysis across their two-product portfolio for the CFO's quarterly review. Product A: {unitsA} units sold at ${marginA} contribution margin per unit. " +
			"Product B: {unitsB} units at ${marginB} margin per unit. Shared fixed costs: ${fixed}k. What's total profit in thousands?",
		Params: []Param{P("unitsA", 500, 2000, 500), P("marginA", 20, 60, 10), P("unitsB", 300, 1500, 300), P("marginB", 30, 80, 10), P("fixed", 50, 150, 25)},
		Compute: stepped(func(v Values) []Step {
			contribution := (v.Get("unitsA")*v.Get("marginA") + v.Get("unitsB")*v.Get("marginB")) / 1000
			return []Step{
				{Label: "total contribution ($k)", Value: contribution},
				{Label: "total profit ($k)", Value: contribution - v.Get("fixed")},
			}
		}),
		TimeLimit: 70, Bands: tightBands, SevereMiss: ruleOppositeSign,
		Hint:     "Sum contributions, subtract fixed costs",
		Approach: "Multiply each product's units by its margin, add them, convert to thousands, and subtract the shared fixed costs.",
		HowTo:    "totalProfit = ((unitsA x marginA) + (unitsB x marginB)) / 1000 - fixed",
	},
	{
		ID: "fc-customer-cohort", Category: CategoryMarketSizing, Difficulty: DifficultyFull,
		Title: "Cohort Retention Revenue",
		Stem: "AppCo's product team is tracking the January customer cohort to understand retention economics. Cohort size: {customers} customers at ${monthly}/month subscription. " +
			"First 6 months: {retentionEarly}% retention rate. Months 7-12: {retentionLate}% retention. What's the total Year 1 revenue from this cohort?",
		Params: []Param{P("customers", 100, 500, 100), P("monthly", 30, 100, 20), P("retentionEarly", 80, 95, 5), P("retentionLate", 60, 85, 5)},
		Compute: stepped(func(v Values) []Step {
			half := v.Get("customers") * v.Get("monthly") * 6
			early := half * v.Get("retentionEarly") / 100
			late := half * v.Get("retentionLate") / 100
			return []Step{
				{Label: "months 1-6 revenue", Value: early},
				{Label: "months 7-12 revenue", Value: late},
				{Label: "year 1 revenue", Value: early + late},
			}
		}),
		TimeLimit: 85, Bands: looseBands,
		Hint:     "Two half-years at retention rates",
		Approach: "Six months of full cohort revenue is customers times price times six. Apply each half's retention rate and add the two halves.",
		HowTo:    "early = customers x monthly x 6 x (retentionEarly/100); late = customers x monthly x 6 x (retentionLate/100); total = early + late",
	},
	{
		ID: "fc-capacity-expansion", Category: CategoryOps, Difficulty: DifficultyFull,
		Title: "Manufacturing Capacity Decision",
		Stem: "ManufactureCo is planning capacity expansion but wants to time it right. The VP Operations needs to know when they'll hit constraints. " +
			"Current capacity: {currentCap} units/month at {utilizationPct}% utilization. Demand growth: {growthPct}% per month. In what month will you reach 100% capacity utilization?",
		Params: []Param{P("currentCap", 5000, 20000, 5000), P("utilizationPct", 60, 85, 5), P("growthPct", 3, 8, 1)},
		Compute: stepped(func(v Values) []Step {
			capacity := v.Get("currentCap")
			demand := capacity * v.Get("utilizationPct") / 100
			return []Step{
				{Label: "current demand", Value: demand},
				{Label: "months to 100%", Value: math.Log(capacity/demand) / math.Log(1+v.Get("growthPct")/100)},
			}
		}),
		TimeLimit: 90, Bands: wideBands,
		Hint:     "Compound demand growth to capacity",
		Approach: "Demand grows geometrically. Solve demand x (1+g)^n = capacity, so n = ln(capacity/demand) / ln(1+g). The rule of 72 gives a quick estimate.",
		HowTo:    "monthsTo100 = ln(currentCap / currentDemand) / ln(1 + growthPct/100)",
	},
	{
		ID: "fc-discount-volume-tradeoff", Category: CategoryPricing, Difficulty: DifficultyFull,
		Title: "Volume Discount Impact",
		Stem: "RetailCo's VP of Sales is proposing a promotional discount to drive volume growth. Current pricing: ${basePrice} per unit at {baseVolume} units sold. " +
			"Proposed discount: {discountPct}%, expected to boost volume by {volumeBoost}%. Variable cost per unit: ${cost}. The CFO wants to know the profit impact. What's the change in profit?",
		Params: []Param{P("basePrice", 50, 150, 25), P("baseVolume", 1000, 5000, 1000), P("discountPct", 10, 25, 5), P("volumeBoost", 20, 50, 10), P("cost", 20, 80, 20)},
		Compute: stepped(func(v Values) []Step {
			price, volume, cost := v.Get("basePrice"), v.Get("baseVolume"), v.Get("cost")
			base := (price - cost) * volume
			newPrice := price * (1 - v.Get("discountPct")/100)
			newVolume := volume * (1 + v.Get("volumeBoost")/100)
			next := (newPrice - cost) * newVolume
			return []Step{
				{Label: "current profit", Value: base},
				{Label: "profit after discount", Value: next},
				{Label: "profit change", Value: next - base},
			}
		}),
		TimeLimit: 90, Bands: looseBands, SevereMiss: ruleOppositeSign,
		Hint:     "New profit minus current profit",
		Approach: "Compute current profit as unit margin times volume. Apply the discount to price and the boost to volume, recompute profit, and take the difference.",
		HowTo:    "profitChange = (basePrice x (1 - d) - cost) x baseVolume x (1 + b) - (basePrice - cost) x baseVolume",
	},
	{
		ID: "fc-hiring-productivity", Category: CategoryOps, Difficulty: DifficultyFull,
		Title: "Headcount ROI Analysis",
		Stem: "TalentCo's CEO is evaluating a team expansion proposal. Current team: {currentTeam} people generating ${currentRevenue}k/month in revenue. " +
			"Plan: hire {newHires} new employees at ${salary}k annual salary each. Projected revenue boost: {revBoost}%. What's the net annual financial impact?",
		Params: []Param{P("currentTeam", 10, 50, 10), P("currentRevenue", 100, 500, 100), P("newHires", 2, 8, 2), P("salary", 60, 120, 20), P("revBoost", 15, 40, 5)},
		Compute: stepped(func(v Values) []Step {
			more := v.Get("currentRevenue") * 12 * v.Get("revBoost") / 100
			cost := v.Get("newHires") * v.Get("salary")
			return []Step{
				{Label: "additional revenue ($k)", Value: more},
				{Label: "additional cost ($k)", Value: cost},
				{Label: "net impact ($k)", Value: more - cost},
			}
		}),
		TimeLimit: 80, Bands: looseBands, SevereMiss: ruleOppositeSign,
		Hint:     "Annual revenue boost minus salaries",
		Approach: "Annualize monthly revenue, apply the boost percentage, and subtract the total salary of the new hires.",
		HowTo:    "netImpact = currentRevenue x 12 x (revBoost/100) - newHires x salary",
	},
	{
		ID: "fc-market-penetration", Category: CategoryMarketSizing, Difficulty: DifficultyFull,
		Title: "Market Penetration Growth",
		Stem: "MarketLeader's board wants a growth projection to set investor expectations. Total addressable market (TAM): ${tam}M. Year 1 market penetration: {year1Pct}%. " +
			"Year 2 target penetration: {year2Pct}%. Average revenue per customer: ${arpc}. What will Year 2 revenue be in millions?",
		Params: []Param{P("tam", 100, 500, 100), P("year1Pct", 2, 8, 2), P("year2Pct", 5, 15, 5), P("arpc", 100, 500, 100)},
		Compute: stepped(func(v Values) []Step {
			customers := v.Get("tam") * 1e6 / v.Get("arpc") * v.Get("year2Pct") / 100
			return []Step{
				{Label: "year 2 customers", Value: customers},
				{Label: "year 2 revenue ($M)", Value: customers * v.Get("arpc") / 1e6},
			}
		}),
		TimeLimit: 75, Bands: looseBands, SevereMiss: ruleOvershootX2,
		Hint:     "TAM times year two penetration",
		Approach: "Year 1 penetration is a distractor. Revenue is the TAM multiplied by the year 2 penetration rate, already in millions.",
		HowTo:    "year2Revenue = tam x (year2Pct/100)",
	},
	{
		ID: "fc-store-cannibalization", Category: CategoryMarketEntry, Difficulty: DifficultyFull,
		Title: "New Store Cannibalization",
		Stem: "ShopCo is considering opening a second location but worries about cannibalization. Existing store revenue: ${existingRev}k/month. Projected new store revenue: ${newRev}k/month. " +
			"However, market research shows {cannibalPct}% of new store sales would come from existing customers. What's the true net monthly revenue increase?",
		Params: []Param{P("existingRev", 100, 300, 50), P("newRev", 80, 250, 50), P("cannibalPct", 20, 50, 10)},
		Compute: stepped(func(v Values) []Step {
			cannibalized := v.Get("newRev") * v.Get("cannibalPct") / 100
			return []Step{
				{Label: "cannibalized ($k)", Value: cannibalized},
				{Label: "net increase ($k)", Value: v.Get("newRev") - cannibalized},
			}
		}),
		TimeLimit: 65, Bands: tightBands,
		Hint:     "New revenue minus cannibalized share",
		Approach: "Only the new store's sales from new customers add revenue. Remove the cannibalized share from the new store revenue.",
		HowTo:    "netIncrease = newRev - newRev x (cannibalPct/100)",
	},
	{
		ID: "fc-freemium-conversion", Category: CategoryProfitability, Difficulty: DifficultyFull,
		Title: "Freemium Model Economics",
		Stem: "FreemiumApp's CFO needs to justify the freemium model to the board. Current user base: {freeUsers} free users. Conversion rate to paid tier: {conversionPct}% at ${paid}/month subscription. " +
			"Cost to serve each free user: ${freeCost}/month. What's the monthly net revenue from this model?",
		Params: []Param{P("freeUsers", 5000, 20000, 5000), P("conversionPct", 2, 8, 2), P("paid", 20, 100, 20), P("freeCost", 1, 5, 1)},
		Compute: stepped(func(v Values) []Step {
			users := v.Get("freeUsers")
			revenue := users * v.Get("conversionPct") / 100 * v.Get("paid")
			costs := users * v.Get("freeCost")
			return []Step{
				{Label: "paid revenue", Value: revenue},
				{Label: "free user costs", Value: costs},
				{Label: "net revenue", Value: revenue - costs},
			}
		}),
		TimeLimit: 75, Bands: looseBands, SevereMiss: ruleOppositeSign,
		Hint:     "Paid revenue minus free costs",
		Approach: "Paid users are the conversion share of the base. Multiply them by the price, then subtract the serving cost of the entire free base.",
		HowTo:    "netRevenue = freeUsers x (conversionPct/100) x paid - freeUsers x freeCost",
	},
	{
		ID: "fc-supply-chain-savings", Category: CategoryOps, Difficulty: DifficultyFull,
		Title: "Supplier Negotiation Impact",
		Stem: "SupplyCo's procurement team has negotiated new supplier terms and needs to quantify the value. Annual purchases: ${annualSpend}M. Negotiated discount: {savingsPct}%. " +
			"Implementation cost: ${impCost}k. What's the net first-year benefit in thousands?",
		Params: []Param{P("annualSpend", 5, 20, 5), P("savingsPct", 5, 15, 5), P("impCost", 50, 200, 50)},
		Compute: stepped(func(v Values) []Step {
			savings := v.Get("annualSpend") * 1000 * v.Get("savingsPct") / 100
			return []Step{
				{Label: "gross savings ($k)", Value: savings},
				{Label: "net benefit ($k)", Value: savings - v.Get("impCost")},
			}
		}),
		TimeLimit: 60, Bands: tightBands,
		Hint:     "Spend times discount minus implementation",
		Approach: "Convert annual spend to thousands, apply the negotiated discount, and subtract the one-off implementation cost.",
		HowTo:    "netBenefit = annualSpend x 1000 x (savingsPct/100) - impCost",
	},
	{
		ID: "fc-ab-test-results", Category: CategoryProfitability, Difficulty: DifficultyFull,
		Title: "A/B Test Revenue Impact",
		Stem: "EcommerceCo's product team ran an A/B test on their checkout page and needs to decide which version to launch. Version A: {visitorsA} visitors, {conversionA}% conversion rate, ${aovA} average order value. " +
			"Version B: {visitorsB} visitors, {conversionB}% conversion, ${aovB} average order value. Which version generates more revenue?",
		Params: []Param{P("visitorsA", 1000, 5000, 1000), P("conversionA", 2, 6, 1), P("aovA", 50, 150, 25), P("visitorsB", 1000, 5000, 1000), P("conversionB", 3, 8, 1), P("aovB", 40, 120, 20)},
		Compute: stepped(func(v Values) []Step {
			a := v.Get("visitorsA") * v.Get("conversionA") / 100 * v.Get("aovA")
			b := v.Get("visitorsB") * v.Get("conversionB") / 100 * v.Get("aovB")
			return []Step{
				{Label: "version A revenue", Value: a},
				{Label: "version B revenue", Value: b},
				{Label: "best revenue", Value: math.Max(a, b)},
			}
		}),
		TimeLimit: 75, Bands: looseBands,
		Hint:     "Compare revenue of both versions",
		Approach: "For each version multiply visitors by conversion rate and average order value. Answer with the higher revenue.",
		HowTo:    "revenue = visitors x (conversion/100) x aov; max(revenueA, revenueB)",
	},
	{
		ID: "fc-referral-program-roi", Category: CategoryProfitability, Difficulty: DifficultyFull,
		Title: "Referral Program Economics",
		Stem: "ViralCo's marketing team is pitching a referral program to the CFO. Customer base: {customers} customers. Expected referral rate: {referralRate}%. Conversion rate for referrals: {conversionPct}%. " +
			"Referral reward cost: ${reward} per referral. Customer LTV: ${ltv}. What's the net value of this program?",
		Params: []Param{P("customers", 1000, 5000, 1000), P("referralRate", 10, 30, 5), P("conversionPct", 20, 50, 10), P("reward", 20, 100, 20), P("ltv", 200, 800, 200)},
		Compute: stepped(func(v Values) []Step {
			referrals := v.Get("customers") * v.Get("referralRate") / 100
			converted := referrals * v.Get("conversionPct") / 100
			return []Step{
				{Label: "referrals", Value: referrals},
				{Label: "new customers", Value: converted},
				{Label: "net value", Value: converted*v.Get("ltv") - referrals*v.Get("reward")},
			}
		}),
		TimeLimit: 85, Bands: looseBands, SevereMiss: ruleOppositeSign,
		Hint:     "Converted LTV minus all rewards",
		Approach: "Referrals are the referral rate of the base. Converted referrals earn LTV, but every referral costs the reward. Subtract total rewards from total LTV.",
		HowTo:    "netValue = referrals x (conversionPct/100) x ltv - referrals x reward",
	},
	{
		ID: "fc-inventory-optimization", Category: CategoryOps, Difficulty: DifficultyFull,
		Title: "Inventory Holding Costs",
		Stem: "WarehouseCo's COO wants to optimize working capital by reducing inventory. Current average inventory: ${inventory}k. Holding cost: {holdingPct}% per year. " +
			"Target inventory reduction: {reductionPct}%. What are the annual savings?",
		Params: []Param{P("inventory", 100, 500, 100), P("holdingPct", 15, 30, 5), P("reductionPct", 20, 40, 10)},
		Compute: stepped(func(v Values) []Step {
			holding := v.Get("inventory") * v.Get("holdingPct") / 100
			return []Step{
				{Label: "annual holding cost ($k)", Value: holding},
				{Label: "annual savings ($k)", Value: holding * v.Get("reductionPct") / 100},
			}
		}),
		TimeLimit: 60, Bands: tightBands,
		Hint:     "Holding cost times reduction rate",
		Approach: "Annual holding cost is inventory times the holding rate. Savings are the reduction share of that cost.",
		HowTo:    "savings = inventory x (holdingPct/100) x (reductionPct/100)",
	},
	{
		ID: "fc-upsell-impact", Category: CategoryProfitability, Difficulty: DifficultyFull,
		Title: "Upsell Revenue Potential",
		Stem: "UpgradeCo's product team is launching a premium tier to drive revenue growth. Current customer base: {customers} customers at ${base}/month. New premium tier: ${premium}/month. " +
			"Expected upgrade rate: {upsellPct}%. What's the monthly revenue increase?",
		Params: []Param{P("customers", 1000, 5000, 1000), P("base", 20, 60, 10), P("premium", 50, 150, 25), P("upsellPct", 10, 30, 5)},
		Compute: stepped(func(v Values) []Step {
			upgrades := v.Get("customers") * v.Get("upsellPct") / 100
			return []Step{
				{Label: "upgrades", Value: upgrades},
				{Label: "monthly increase", Value: upgrades * (v.Get("premium") - v.Get("base"))},
			}
		}),
		TimeLimit: 65, Bands: tightBands,
		Hint:     "Upgrades times the price gap",
		Approach: "Upgraded customers are the upsell share of the base. Each adds only the difference between premium and base price.",
		HowTo:    "increase = customers x (upsellPct/100) x (premium - base)",
	},
}
