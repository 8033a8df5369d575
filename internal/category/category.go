// Package category classifies merchant category codes (MCCs) into the
// spending categories used by card benefits.
package category

// Category is a spending classification derived from an MCC.
type Category string

// The closed set of spending categories.
const (
	Dining             Category = "dining"
	Grocery            Category = "grocery"
	Petrol             Category = "petrol"
	Travel             Category = "travel"
	Entertainment      Category = "entertainment"
	Shopping           Category = "shopping"
	Transport          Category = "transport"
	Telecommunications Category = "telecommunications"
	Education          Category = "education"
	Electricity        Category = "electricity"
	Others             Category = "others"
)

// MCC membership tables per category, taken from card-issuer categorization
// data. A few codes appear in more than one table (e.g. 5499), so the lookup
// order in Classify is part of the contract.
var (
	diningMCCs = []int{5812, 5814, 5813, 5811, 5499}

	groceryMCCs = []int{5411, 5422, 5441, 5451, 5462, 5499}

	petrolMCCs = []int{5541, 5542}

	travelMCCs = []int{3000, 3001, 3002, 3003, 3004, 3005, 3006, 3007}

	entertainmentMCCs = []int{
		7832, 7932, 7991, 7993, 7994, 7995, 7996, 7997, 7998, 7999,
	}

	shoppingMCCs = []int{
		5310, 5311, 5331, 5399, 5611, 5621, 5631, 5641, 5651, 5655, 5661, 5681,
		5691, 5697, 5698, 5699, 5931, 5932, 5933, 5935, 5937, 5940, 5941, 5942,
		5943, 5944, 5945, 5946, 5947, 5948, 5949, 5950, 5960, 5962, 5963, 5964,
		5965, 5966, 5967, 5968, 5969, 5970, 5971, 5972, 5973, 5975, 5976, 5977,
		5978, 5983, 5992, 5993, 5994, 5995, 5996, 5997, 5998, 5999,
	}

	transportMCCs = []int{4111, 4011, 4112, 4121, 4131}

	telecommunicationsMCCs = []int{4812, 4813, 4814, 4815, 4816, 4821, 4829}

	educationMCCs = []int{8211, 8220, 8241, 8244, 8249, 8299}

	electricityMCCs = []int{4900}
)

// ordered pairs each category with its MCC table in classification priority
// order. First match wins.
var ordered = []struct {
	category Category
	mccs     []int
}{
	{Dining, diningMCCs},
	{Grocery, groceryMCCs},
	{Petrol, petrolMCCs},
	{Travel, travelMCCs},
	{Entertainment, entertainmentMCCs},
	{Shopping, shoppingMCCs},
	{Transport, transportMCCs},
	{Telecommunications, telecommunicationsMCCs},
	{Education, educationMCCs},
	{Electricity, electricityMCCs},
}

// Classify returns the spending category for an MCC. MCCs not present in any
// table classify as Others.
func Classify(mcc int) Category {
	for _, entry := range ordered {
		for _, m := range entry.mccs {
			if m == mcc {
				return entry.category
			}
		}
	}
	return Others
}
