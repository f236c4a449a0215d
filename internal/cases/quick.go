package cases

var (
	tightBands = []float64{0.05, 0.10, 0.20, 0.30}
	looseBands = []float64{0.10, 0.20, 0.30, 0.40}
	wideBands  = []float64{0.15, 0.25, 0.35, 0.45}
)

const (
	ruleOppositeSign = "opposite_sign"
	ruleOvershootX2  = "overshoot_x2"
)

var quickTemplates = []Template{
	{
		ID: "qm-coffee-revenue-2step", Category: CategoryQuickMath, Difficulty: DifficultyQuick,
		Title:  "Coffee Shop Daily Revenue",
		Stem:   "A coffee shop has {customers} customers per day. {buyPct}% buy coffee at ${price} each. What's the daily coffee revenue?",
		Params: []Param{P("customers", 200, 500, 50), P("buyPct", 40, 70, 5), P("price", 4, 6, 0.5)},
		Compute: numeric(func(v Values) float64 {
			return v.Get("customers") * v.Get("buyPct") / 100 * v.Get("price")
		}),
		TimeLimit: 45, Bands: tightBands,
		Hint:     "Buyers times the coffee price",
		Approach: "Convert the buy percentage to a fraction, multiply by daily customers to get buyers, then multiply buyers by the coffee price.",
		HowTo:    "revenue = customers x (buyPct/100) x price",
	},
	{
		ID: "qm-profit-margin-2step", Category: CategoryQuickMath, Difficulty: DifficultyQuick,
		Title:  "Product Profit Margin %",
		Stem:   "A product sells for ${price} with production cost of ${cost} and overhead of ${overhead} per unit. What's the profit margin percentage?",
		Params: []Param{P("price", 50, 150, 10), P("cost", 20, 60, 5), P("overhead", 5, 20, 5)},
		Compute: numeric(func(v Values) float64 {
			p := v.Get("price")
			return (p - v.Get("cost") - v.Get("overhead")) / p * 100
		}),
		TimeLimit: 50, Bands: tightBands,
		Hint:     "Calculate margin percentage from components",
		Approach: "Subtract both per-unit costs from the price to get unit profit, divide by the price, and express the ratio as a percentage.",
		HowTo:    "margin = ((price - cost - overhead) / price) x 100",
	},
	{
		ID: "qm-growth-rate", Category: CategoryQuickMath, Difficulty: DifficultyQuick,
		Title:  "Year-over-Year Growth",
		Stem:   "Last year revenue was ${lastYear}k. This year it's ${thisYear}k. What's the growth rate as a percentage?",
		Params: []Param{P("lastYear", 100, 300, 50), P("thisYear", 120, 400, 50)},
		Compute: numeric(func(v Values) float64 {
			last := v.Get("lastYear")
			return (v.Get("thisYear") - last) / last * 100
		}),
		TimeLimit: 45, Bands: tightBands, SevereMiss: ruleOppositeSign,
		Hint:     "Change divided by last year",
		Approach: "Take the difference between this year and last year, divide it by last year, and convert to a percentage. A decline is negative growth.",
		HowTo:    "growthPct = ((thisYear - lastYear) / lastYear) x 100",
	},
	{
		ID: "qm-blended-price", Category: CategoryQuickMath, Difficulty: DifficultyQuick,
		Title:  "Average Order Value",
		Stem:   "A store sells {item1Units} units at ${item1Price} and {item2Units} units at ${item2Price}. What's the average price per item sold?",
		Params: []Param{P("item1Units", 100, 300, 50), P("item1Price", 10, 30, 5), P("item2Units", 50, 200, 50), P("item2Price", 20, 50, 5)},
		Compute: numeric(func(v Values) float64 {
			u1, u2 := v.Get("item1Units"), v.Get("item2Units")
			return (u1*v.Get("item1Price") + u2*v.Get("item2Price")) / (u1 + u2)
		}),
		TimeLimit: 50, Bands: tightBands,
		Hint:     "Total revenue over total units",
		Approach: "Compute revenue for each item, add them, then divide by the combined unit count. Do not average the two prices directly.",
		HowTo:    "avgPrice = (item1Units x item1Price + item2Units x item2Price) / (item1Units + item2Units)",
	},
	{
		ID: "qm-customer-acquisition", Category: CategoryQuickMath, Difficulty: DifficultyQuick,
		Title:  "Customer Acquisition Cost",
		Stem:   "Spent ${marketing}k on marketing and ${sales}k on sales. Acquired {customers} new customers. What's the cost per customer?",
		Params: []Param{P("marketing", 20, 80, 10), P("sales", 10, 50, 10), P("customers", 100, 500, 100)},
		Compute: numeric(func(v Values) float64 {
			return (v.Get("marketing") + v.Get("sales")) * 1000 / v.Get("customers")
		}),
		TimeLimit: 45, Bands: tightBands,
		Hint:     "Total costs divided by customers",
		Approach: "Add marketing and sales spend, convert thousands to dollars, and divide by the number of customers acquired.",
		HowTo:    "cac = (marketing + sales) x 1000 / customers",
	},
	{
		ID: "qm-retention-value", Category: CategoryQuickMath, Difficulty: DifficultyQuick,
		Title:  "Revenue Impact of Churn",
		Stem:   "You have {customers} customers paying ${monthly} per month. {churnPct}% cancel each month. How much monthly revenue is lost?",
		Params: []Param{P("customers", 500, 2000, 500), P("monthly", 20, 100, 10), P("churnPct", 5, 15, 5)},
		Compute: numeric(func(v Values) float64 {
			return v.Get("customers") * v.Get("monthly") * v.Get("churnPct") / 100
		}),
		TimeLimit: 45, Bands: tightBands,
		Hint:     "Customers times price times churn",
		Approach: "Monthly revenue is customers times price. The lost share is the churn percentage of that revenue.",
		HowTo:    "lostRevenue = customers x monthly x (churnPct/100)",
	},
	{
		ID: "qm-inventory-turnover", Category: CategoryQuickMath, Difficulty: DifficultyQuick,
		Title:  "Inventory Days on Hand",
		Stem:   "Annual cost of goods sold is ${cogs}k. Average inventory is ${inventory}k. How many days of inventory on hand? (Use 365 days)",
		Params: []Param{P("cogs", 500, 2000, 250), P("inventory", 50, 300, 50)},
		Compute: numeric(func(v Values) float64 {
			return v.Get("inventory") / v.Get("cogs") * 365
		}),
		TimeLimit: 50, Bands: tightBands,
		Hint:     "Inventory divided by daily COGS",
		Approach: "Divide annual COGS by 365 to get daily usage, then divide average inventory by that daily figure.",
		HowTo:    "daysOnHand = (inventory / cogs) x 365",
	},
	{
		ID: "qm-price-elasticity", Category: CategoryQuickMath, Difficulty: DifficultyQuick,
		Title:  "Revenue After Price Change",
		Stem:   "Current: ${currentPrice} price, {currentVolume} units sold. Increase price to ${newPrice}. Volume drops to {newVolume}. What's new revenue?",
		Params: []Param{P("currentPrice", 20, 50, 5), P("currentVolume", 1000, 3000, 500), P("newPrice", 25, 60, 5), P("newVolume", 700, 2500, 300)},
		Compute: numeric(func(v Values) float64 {
			return v.Get("newPrice") * v.Get("newVolume")
		}),
		TimeLimit: 40, Bands: tightBands,
		Hint:     "New price times new volume",
		Approach: "Ignore the current figures. Revenue after the change is simply the new price multiplied by the new volume.",
		HowTo:    "newRevenue = newPrice x newVolume",
	},
	{
		ID: "qm-fixed-variable-costs", Category: CategoryQuickMath, Difficulty: DifficultyQuick,
		Title:  "Total Cost Structure",
		Stem:   "Fixed costs: ${fixed}k/month. Variable cost: ${variable} per unit. Producing {units} units. What's total monthly cost in thousands?",
		Params: []Param{P("fixed", 20, 100, 20), P("variable", 5, 25, 5), P("units", 500, 3000, 500)},
		Compute: numeric(func(v Values) float64 {
			return v.Get("fixed") + v.Get("variable")*v.Get("units")/1000
		}),
		TimeLimit: 45, Bands: tightBands,
		Hint:     "Fixed plus variable times units",
		Approach: "Multiply the variable cost by units, convert that to thousands, and add the fixed cost.",
		HowTo:    "totalCost = fixed + (variable x units) / 1000",
	},
	{
		ID: "qm-payback-period", Category: CategoryQuickMath, Difficulty: DifficultyQuick,
		Title:  "Investment Payback Time",
		Stem:   "Investment costs ${upfront}k. Generates ${monthly}k profit per month for {months} months. What's the net profit after payback?",
		Params: []Param{P("upfront", 50, 200, 50), P("monthly", 10, 30, 5), P("months", 12, 24, 6)},
		Compute: numeric(func(v Values) float64 {
			return v.Get("monthly")*v.Get("months") - v.Get("upfront")
		}),
		TimeLimit: 45, Bands: tightBands, SevereMiss: ruleOppositeSign,
		Hint:     "Total profit minus upfront cost",
		Approach: "Multiply monthly profit by the number of months, then subtract the upfront investment. The result can be negative.",
		HowTo:    "netProfit = (monthly x months) - upfront",
	},
	{
		ID: "qm-contribution-margin", Category: CategoryQuickMath, Difficulty: DifficultyQuick,
		Title:  "Contribution Margin per Unit",
		Stem:   "Selling price: ${price}. Direct materials: ${materials}. Direct labor: ${labor}. What's the contribution margin per unit?",
		Params: []Param{P("price", 50, 150, 10), P("materials", 15, 50, 5), P("labor", 10, 40, 5)},
		Compute: numeric(func(v Values) float64 {
			return v.Get("price") - v.Get("materials") - v.Get("labor")
		}),
		TimeLimit: 40, Bands: tightBands,
		Hint:     "Price minus direct unit costs",
		Approach: "Subtract materials and labor from the selling price. Both are variable per-unit costs.",
		HowTo:    "contribution = price - materials - labor",
	},
	{
		ID: "qm-conversion-funnel", Category: CategoryQuickMath, Difficulty: DifficultyQuick,
		Title:  "Funnel Conversion Math",
		Stem:   "{visitors} website visitors, {leadPct}% become leads, {customerPct}% of leads become customers. How many customers?",
		Params: []Param{P("visitors", 5000, 20000, 5000), P("leadPct", 10, 30, 5), P("customerPct", 15, 40, 5)},
		Compute: numeric(func(v Values) float64 {
			return v.Get("visitors") * v.Get("leadPct") / 100 * v.Get("customerPct") / 100
		}),
		TimeLimit: 50, Bands: tightBands,
		Hint:     "Visitors times both conversion rates",
		Approach: "Apply the lead rate to visitors to get leads, then apply the customer rate to leads.",
		HowTo:    "customers = visitors x (leadPct/100) x (customerPct/100)",
	},
	{
		ID: "qm-market-share", Category: CategoryQuickMath, Difficulty: DifficultyQuick,
		Title:  "Market Share Calculation",
		Stem:   "Total market size: ${market}M. Your revenue: ${revenue}M. Competitor A: ${compA}M, Competitor B: ${compB}M. What's your market share %?",
		Params: []Param{P("market", 100, 500, 100), P("revenue", 10, 80, 10), P("compA", 15, 100, 15), P("compB", 10, 80, 10)},
		Compute: numeric(func(v Values) float64 {
			return v.Get("revenue") / v.Get("market") * 100
		}),
		TimeLimit: 45, Bands: tightBands,
		Hint:     "Your revenue over total market",
		Approach: "Competitor figures are distractors. Divide your revenue by the total market size and convert to a percentage.",
		HowTo:    "marketShare = (revenue / market) x 100",
	},
	{
		ID: "qm-staff-productivity", Category: CategoryQuickMath, Difficulty: DifficultyQuick,
		Title:  "Revenue Per Employee",
		Stem:   "Company has {employees} employees generating ${revenue}M annually. What's revenue per employee in thousands?",
		Params: []Param{P("employees", 50, 300, 50), P("revenue", 10, 100, 10)},
		Compute: numeric(func(v Values) float64 {
			return v.Get("revenue") * 1000 / v.Get("employees")
		}),
		TimeLimit: 40, Bands: tightBands,
		Hint:     "Revenue in thousands per head",
		Approach: "Convert revenue from millions to thousands, then divide by the number of employees.",
		HowTo:    "revenuePerEmp = (revenue x 1000) / employees",
	},
	{
		ID: "qm-break-even-volume", Category: CategoryQuickMath, Difficulty: DifficultyQuick,
		Title:  "Break-Even Units Needed",
		Stem:   "Fixed costs: ${fixed}k. Selling price: ${price} per unit. Variable cost: ${variable} per unit. Units needed to break even?",
		Params: []Param{P("fixed", 50, 200, 25), P("price", 60, 100, 10), P("variable", 10, 50, 5)},
		Compute: numeric(func(v Values) float64 {
			return v.Get("fixed") * 1000 / (v.Get("price") - v.Get("variable"))
		}),
		TimeLimit: 50, Bands: tightBands,
		Hint:     "Fixed costs over unit margin",
		Approach: "Unit contribution is price minus variable cost. Divide fixed costs in dollars by that contribution.",
		HowTo:    "breakEvenUnits = (fixed x 1000) / (price - variable)",
	},
	{
		ID: "qm-discount-impact", Category: CategoryQuickMath, Difficulty: DifficultyQuick,
		Title:  "Discount Revenue Impact",
		Stem:   "Original price ${original}, selling {volume} units. Give {discount}% off. How much revenue is lost?",
		Params: []Param{P("original", 50, 200, 25), P("volume", 500, 2000, 500), P("discount", 10, 30, 5)},
		Compute: numeric(func(v Values) float64 {
			return v.Get("original") * v.Get("volume") * v.Get("discount") / 100
		}),
		TimeLimit: 45, Bands: tightBands,
		Hint:     "Revenue times the discount rate",
		Approach: "Original revenue is price times volume. At constant volume the loss is the discount share of that revenue.",
		HowTo:    "lostRevenue = original x volume x (discount/100)",
	},
	{
		ID: "qm-capacity-utilization", Category: CategoryQuickMath, Difficulty: DifficultyQuick,
		Title:  "Factory Utilization Rate",
		Stem:   "Factory can produce {maxUnits} units/day working {maxHours} hours. Currently producing {currentUnits} units in {currentHours} hours. What's utilization %?",
		Params: []Param{P("maxUnits", 1000, 5000, 1000), P("maxHours", 16, 24, 4), P("currentUnits", 600, 4000, 600), P("currentHours", 12, 20, 4)},
		Compute: numeric(func(v Values) float64 {
			return v.Get("currentUnits") / v.Get("maxUnits") * 100
		}),
		TimeLimit: 45, Bands: tightBands,
		Hint:     "Current output over max output",
		Approach: "Utilization compares output, not hours. Divide current daily units by maximum daily units.",
		HowTo:    "utilization = (currentUnits / maxUnits) x 100",
	},
	{
		ID: "qm-price-floor", Category: CategoryQuickMath, Difficulty: DifficultyQuick,
		Title:  "Minimum Viable Price",
		Stem:   "Variable cost ${variable} per unit. Fixed costs ${fixed}k to cover. Selling {units} units. What minimum price per unit?",
		Params: []Param{P("variable", 10, 40, 5), P("fixed", 20, 100, 20), P("units", 500, 2000, 500)},
		Compute: numeric(func(v Values) float64 {
			return v.Get("variable") + v.Get("fixed")*1000/v.Get("units")
		}),
		TimeLimit: 50, Bands: tightBands,
		Hint:     "Variable cost plus fixed share",
		Approach: "Spread fixed costs over the units sold to get a per-unit share, then add the variable cost.",
		HowTo:    "minPrice = variable + (fixed x 1000 / units)",
	},
	{
		ID: "qm-operating-leverage", Category: CategoryQuickMath, Difficulty: DifficultyQuick,
		Title:  "Operating Profit Change",
		Stem:   "Revenue increased {revGrowth}%. Fixed costs ${fixed}k, variable costs are {varPct}% of revenue. Old revenue ${oldRev}k. What's new operating profit?",
		Params: []Param{P("revGrowth", 10, 30, 5), P("fixed", 50, 150, 25), P("varPct", 40, 70, 5), P("oldRev", 200, 600, 100)},
		Compute: stepped(func(v Values) []Step {
			newRev := v.Get("oldRev") * (1 + v.Get("revGrowth")/100)
			return []Step{
				{Label: "new revenue", Value: newRev},
				{Label: "new operating profit", Value: newRev*(1-v.Get("varPct")/100) - v.Get("fixed")},
			}
		}),
		TimeLimit: 50, Bands: tightBands, SevereMiss: ruleOppositeSign,
		Hint:     "Grow revenue then subtract costs",
		Approach: "Grow old revenue by the stated rate, keep the non-variable share, and subtract fixed costs.",
		HowTo:    "newProfit = oldRev x (1 + revGrowth/100) x (1 - varPct/100) - fixed",
	},
	{
		ID: "qm-net-promoter", Category: CategoryQuickMath, Difficulty: DifficultyQuick,
		Title:  "NPS Score Calculation",
		Stem:   "Surveyed {total} customers: {promoters} rated 9-10 (promoters), {detractors} rated 0-6 (detractors). What's the NPS score?",
		Params: []Param{P("total", 100, 300, 50), P("promoters", 40, 150, 10), P("detractors", 10, 50, 10)},
		Compute: numeric(func(v Values) float64 {
			return (v.Get("promoters") - v.Get("detractors")) / v.Get("total") * 100
		}),
		TimeLimit: 50, Bands: tightBands, SevereMiss: ruleOppositeSign,
		Hint:     "Promoters minus detractors, percent",
		Approach: "Subtract detractors from promoters, divide by everyone surveyed, and scale to a percentage. Passives only count in the total.",
		HowTo:    "nps = ((promoters - detractors) / total) x 100",
	},
}
