package normalize

// Indian states and union territories with common misspellings and abbreviations
var stateTerms = []Term{
	{Alias: "Andhra Pradesh", Canonical: "Andhra Pradesh"},
	{Alias: "Arunachal Pradesh", Canonical: "Arunachal Pradesh"},
	{Alias: "Assam", Canonical: "Assam"},
	{Alias: "Bihar", Canonical: "Bihar"},
	{Alias: "Chhattisgarh", Canonical: "Chhattisgarh"},
	{Alias: "Chattisgarh", Canonical: "Chhattisgarh"},
	{Alias: "Goa", Canonical: "Goa"},
	{Alias: "Gujarat", Canonical: "Gujarat"},
	{Alias: "Gujrat", Canonical: "Gujarat"},
	{Alias: "Haryana", Canonical: "Haryana"},
	{Alias: "Himachal Pradesh", Canonical: "Himachal Pradesh"},
	{Alias: "Jharkhand", Canonical: "Jharkhand"},
	{Alias: "Karnataka", Canonical: "Karnataka"},
	{Alias: "Kerala", Canonical: "Kerala"},
	{Alias: "Madhya Pradesh", Canonical: "Madhya Pradesh"},
	{Alias: "Maharashtra", Canonical: "Maharashtra"},
	{Alias: "Maharastra", Canonical: "Maharashtra"},
	{Alias: "Manipur", Canonical: "Manipur"},
	{Alias: "Meghalaya", Canonical: "Meghalaya"},
	{Alias: "Mizoram", Canonical: "Mizoram"},
	{Alias: "Nagaland", Canonical: "Nagaland"},
	{Alias: "Odisha", Canonical: "Odisha"},
	{Alias: "Orissa", Canonical: "Odisha"},
	{Alias: "Punjab", Canonical: "Punjab"},
	{Alias: "Rajasthan", Canonical: "Rajasthan"},
	{Alias: "Sikkim", Canonical: "Sikkim"},
	{Alias: "Tamil Nadu", Canonical: "Tamil Nadu"},
	{Alias: "Tamilnadu", Canonical: "Tamil Nadu"},
	{Alias: "Telangana", Canonical: "Telangana"},
	{Alias: "Telengana", Canonical: "Telangana"},
	{Alias: "Tripura", Canonical: "Tripura"},
	{Alias: "Uttar Pradesh", Canonical: "Uttar Pradesh"},
	{Alias: "Uttarakhand", Canonical: "Uttarakhand"},
	{Alias: "Uttaranchal", Canonical: "Uttarakhand"},
	{Alias: "West Bengal", Canonical: "West Bengal"},
	{Alias: "Andaman and Nicobar Islands", Canonical: "Andaman and Nicobar Islands"},
	{Alias: "Dadra and Nagar Haveli and Daman and Diu", Canonical: "Dadra and Nagar Haveli and Daman and Diu"},
	{Alias: "Jammu and Kashmir", Canonical: "Jammu and Kashmir"},
	{Alias: "Jammu & Kashmir", Canonical: "Jammu and Kashmir"},
	{Alias: "Ladakh", Canonical: "Ladakh"},
	{Alias: "Lakshadweep", Canonical: "Lakshadweep"},

	// Abbreviations only count when written in capitals
	{Alias: "AP", Canonical: "Andhra Pradesh", CaseSensitive: true},
	{Alias: "BR", Canonical: "Bihar", CaseSensitive: true},
	{Alias: "CG", Canonical: "Chhattisgarh", CaseSensitive: true},
	{Alias: "GJ", Canonical: "Gujarat", CaseSensitive: true},
	{Alias: "HR", Canonical: "Haryana", CaseSensitive: true},
	{Alias: "HP", Canonical: "Himachal Pradesh", CaseSensitive: true},
	{Alias: "JH", Canonical: "Jharkhand", CaseSensitive: true},
	{Alias: "JK", Canonical: "Jammu and Kashmir", CaseSensitive: true},
	{Alias: "KA", Canonical: "Karnataka", CaseSensitive: true},
	{Alias: "KL", Canonical: "Kerala", CaseSensitive: true},
	{Alias: "MP", Canonical: "Madhya Pradesh", CaseSensitive: true},
	{Alias: "MH", Canonical: "Maharashtra", CaseSensitive: true},
	{Alias: "OD", Canonical: "Odisha", CaseSensitive: true},
	{Alias: "PB", Canonical: "Punjab", CaseSensitive: true},
	{Alias: "RJ", Canonical: "Rajasthan", CaseSensitive: true},
	{Alias: "TN", Canonical: "Tamil Nadu", CaseSensitive: true},
	{Alias: "TS", Canonical: "Telangana", CaseSensitive: true},
	{Alias: "TG", Canonical: "Telangana", CaseSensitive: true},
	{Alias: "UP", Canonical: "Uttar Pradesh", CaseSensitive: true},
	{Alias: "WB", Canonical: "West Bengal", CaseSensitive: true},
	{Alias: "DL", Canonical: "Delhi", CaseSensitive: true},
	{Alias: "PY", Canonical: "Puducherry", CaseSensitive: true},
}

// Cities that are also a state or union territory. A state hit on one of
// these leaves the text in place so the city stage can claim it too.
var cityStateTerms = []Term{
	{Alias: "New Delhi", Canonical: "Delhi"},
	{Alias: "Delhi", Canonical: "Delhi"},
	{Alias: "NCR Delhi", Canonical: "Delhi"},
	{Alias: "Chandigarh", Canonical: "Chandigarh"},
	{Alias: "Puducherry", Canonical: "Puducherry"},
	{Alias: "Pondicherry", Canonical: "Puducherry"},
}

var countryTerms = []Term{
	{Alias: "United States of America", Canonical: "USA"},
	{Alias: "United States", Canonical: "USA"},
	{Alias: "USA", Canonical: "USA"},
	{Alias: "U.S.A", Canonical: "USA"},
	{Alias: "America", Canonical: "USA"},
	{Alias: "US", Canonical: "USA", CaseSensitive: true},
	{Alias: "United Kingdom", Canonical: "UK"},
	{Alias: "Great Britain", Canonical: "UK"},
	{Alias: "England", Canonical: "UK"},
	{Alias: "Scotland", Canonical: "UK"},
	{Alias: "UK", Canonical: "UK"},
	{Alias: "U.K", Canonical: "UK"},
	{Alias: "GB", Canonical: "UK", CaseSensitive: true},
	{Alias: "United Arab Emirates", Canonical: "UAE"},
	{Alias: "UAE", Canonical: "UAE"},
	{Alias: "Dubai", Canonical: "UAE"},
	{Alias: "Abu Dhabi", Canonical: "UAE"},
	{Alias: "Sharjah", Canonical: "UAE"},
	{Alias: "Saudi Arabia", Canonical: "Saudi Arabia"},
	{Alias: "KSA", Canonical: "Saudi Arabia"},
	{Alias: "Canada", Canonical: "Canada"},
	{Alias: "Australia", Canonical: "Australia"},
	{Alias: "New Zealand", Canonical: "New Zealand"},
	{Alias: "Singapore", Canonical: "Singapore"},
	{Alias: "Malaysia", Canonical: "Malaysia"},
	{Alias: "Germany", Canonical: "Germany"},
	{Alias: "Ireland", Canonical: "Ireland"},
	{Alias: "Netherlands", Canonical: "Netherlands"},
	{Alias: "France", Canonical: "France"},
	{Alias: "Sweden", Canonical: "Sweden"},
	{Alias: "Switzerland", Canonical: "Switzerland"},
	{Alias: "Japan", Canonical: "Japan"},
	{Alias: "Qatar", Canonical: "Qatar"},
	{Alias: "Oman", Canonical: "Oman"},
	{Alias: "Kuwait", Canonical: "Kuwait"},
	{Alias: "Bahrain", Canonical: "Bahrain"},
	{Alias: "India", Canonical: "India"},
	{Alias: "Bharat", Canonical: "India"},
}

// cityInfo maps a city alias to its canonical name and home state
type cityInfo struct {
	alias string
	city  string
	state string
}

var cityEntries = []cityInfo{
	{"Bengaluru", "Bengaluru", "Karnataka"},
	{"Bangalore", "Bengaluru", "Karnataka"},
	{"Bangaluru", "Bengaluru", "Karnataka"},
	{"Mysuru", "Mysuru", "Karnataka"},
	{"Mysore", "Mysuru", "Karnataka"},
	{"Mangaluru", "Mangaluru", "Karnataka"},
	{"Mangalore", "Mangaluru", "Karnataka"},
	{"Hubballi", "Hubballi", "Karnataka"},
	{"Hubli", "Hubballi", "Karnataka"},
	{"Dharwad", "Dharwad", "Karnataka"},
	{"Belagavi", "Belagavi", "Karnataka"},
	{"Belgaum", "Belagavi", "Karnataka"},
	{"Davanagere", "Davanagere", "Karnataka"},
	{"Shivamogga", "Shivamogga", "Karnataka"},
	{"Shimoga", "Shivamogga", "Karnataka"},
	{"Tumakuru", "Tumakuru", "Karnataka"},
	{"Tumkur", "Tumakuru", "Karnataka"},
	{"Udupi", "Udupi", "Karnataka"},
	{"Chennai", "Chennai", "Tamil Nadu"},
	{"Madras", "Chennai", "Tamil Nadu"},
	{"Coimbatore", "Coimbatore", "Tamil Nadu"},
	{"Madurai", "Madurai", "Tamil Nadu"},
	{"Tiruchirappalli", "Tiruchirappalli", "Tamil Nadu"},
	{"Trichy", "Tiruchirappalli", "Tamil Nadu"},
	{"Salem", "Salem", "Tamil Nadu"},
	{"Vellore", "Vellore", "Tamil Nadu"},
	{"Hyderabad", "Hyderabad", "Telangana"},
	{"Secunderabad", "Secunderabad", "Telangana"},
	{"Warangal", "Warangal", "Telangana"},
	{"Visakhapatnam", "Visakhapatnam", "Andhra Pradesh"},
	{"Vizag", "Visakhapatnam", "Andhra Pradesh"},
	{"Vijayawada", "Vijayawada", "Andhra Pradesh"},
	{"Guntur", "Guntur", "Andhra Pradesh"},
	{"Tirupati", "Tirupati", "Andhra Pradesh"},
	{"Nellore", "Nellore", "Andhra Pradesh"},
	{"Mumbai", "Mumbai", "Maharashtra"},
	{"Bombay", "Mumbai", "Maharashtra"},
	{"Navi Mumbai", "Navi Mumbai", "Maharashtra"},
	{"Thane", "Thane", "Maharashtra"},
	{"Pune", "Pune", "Maharashtra"},
	{"Poona", "Pune", "Maharashtra"},
	{"Nagpur", "Nagpur", "Maharashtra"},
	{"Nashik", "Nashik", "Maharashtra"},
	{"Nasik", "Nashik", "Maharashtra"},
	{"Aurangabad", "Aurangabad", "Maharashtra"},
	{"Kolhapur", "Kolhapur", "Maharashtra"},
	{"New Delhi", "New Delhi", "Delhi"},
	{"Delhi", "Delhi", "Delhi"},
	{"Noida", "Noida", "Uttar Pradesh"},
	{"Greater Noida", "Greater Noida", "Uttar Pradesh"},
	{"Ghaziabad", "Ghaziabad", "Uttar Pradesh"},
	{"Gurugram", "Gurugram", "Haryana"},
	{"Gurgaon", "Gurugram", "Haryana"},
	{"Faridabad", "Faridabad", "Haryana"},
	{"Kolkata", "Kolkata", "West Bengal"},
	{"Calcutta", "Kolkata", "West Bengal"},
	{"Howrah", "Howrah", "West Bengal"},
	{"Ahmedabad", "Ahmedabad", "Gujarat"},
	{"Surat", "Surat", "Gujarat"},
	{"Vadodara", "Vadodara", "Gujarat"},
	{"Baroda", "Vadodara", "Gujarat"},
	{"Rajkot", "Rajkot", "Gujarat"},
	{"Gandhinagar", "Gandhinagar", "Gujarat"},
	{"Jaipur", "Jaipur", "Rajasthan"},
	{"Jodhpur", "Jodhpur", "Rajasthan"},
	{"Udaipur", "Udaipur", "Rajasthan"},
	{"Lucknow", "Lucknow", "Uttar Pradesh"},
	{"Kanpur", "Kanpur", "Uttar Pradesh"},
	{"Varanasi", "Varanasi", "Uttar Pradesh"},
	{"Banaras", "Varanasi", "Uttar Pradesh"},
	{"Agra", "Agra", "Uttar Pradesh"},
	{"Prayagraj", "Prayagraj", "Uttar Pradesh"},
	{"Allahabad", "Prayagraj", "Uttar Pradesh"},
	{"Patna", "Patna", "Bihar"},
	{"Ranchi", "Ranchi", "Jharkhand"},
	{"Jamshedpur", "Jamshedpur", "Jharkhand"},
	{"Bhubaneswar", "Bhubaneswar", "Odisha"},
	{"Bhubaneshwar", "Bhubaneswar", "Odisha"},
	{"Cuttack", "Cuttack", "Odisha"},
	{"Bhopal", "Bhopal", "Madhya Pradesh"},
	{"Indore", "Indore", "Madhya Pradesh"},
	{"Gwalior", "Gwalior", "Madhya Pradesh"},
	{"Jabalpur", "Jabalpur", "Madhya Pradesh"},
	{"Raipur", "Raipur", "Chhattisgarh"},
	{"Kochi", "Kochi", "Kerala"},
	{"Cochin", "Kochi", "Kerala"},
	{"Ernakulam", "Kochi", "Kerala"},
	{"Thiruvananthapuram", "Thiruvananthapuram", "Kerala"},
	{"Trivandrum", "Thiruvananthapuram", "Kerala"},
	{"Kozhikode", "Kozhikode", "Kerala"},
	{"Calicut", "Kozhikode", "Kerala"},
	{"Thrissur", "Thrissur", "Kerala"},
	{"Chandigarh", "Chandigarh", "Chandigarh"},
	{"Mohali", "Mohali", "Punjab"},
	{"Ludhiana", "Ludhiana", "Punjab"},
	{"Amritsar", "Amritsar", "Punjab"},
	{"Dehradun", "Dehradun", "Uttarakhand"},
	{"Shimla", "Shimla", "Himachal Pradesh"},
	{"Guwahati", "Guwahati", "Assam"},
	{"Panaji", "Panaji", "Goa"},
	{"Srinagar", "Srinagar", "Jammu and Kashmir"},
	{"Puducherry", "Puducherry", "Puducherry"},
	{"Pondicherry", "Puducherry", "Puducherry"},
}

// localitySuffixes mark the remainder as an area rather than a street.
// Matched as substrings so "Jayanagar" counts through "nagar".
var localitySuffixes = []string{
	"layout", "nagar", "road", "colony", "cross", "main", "sector", "block",
	"phase", "extension", "enclave", "vihar", "puram", "palya", "halli",
	"garden", "apartment", "residency", "society", "tower", "lane", "marg",
	"chowk", "circle", "township", "village", "taluk", "district", "bagh",
	"ganj", "peth", "wadi",
}

var (
	stateVocabulary   = NewAliasVocabulary(append(append([]Term{}, stateTerms...), cityStateTerms...))
	countryVocabulary = NewAliasVocabulary(countryTerms)
	cityVocabulary    = buildCityVocabulary()
	cityHomeState     = buildCityHomeState()
	cityStateAliases  = buildCityStateSet()
)

func buildCityVocabulary() Vocabulary {
	terms := make([]Term, 0, len(cityEntries))
	for _, c := range cityEntries {
		terms = append(terms, Term{Alias: c.alias, Canonical: c.city})
	}
	return NewAliasVocabulary(terms)
}

func buildCityHomeState() map[string]string {
	m := make(map[string]string, len(cityEntries))
	for _, c := range cityEntries {
		m[c.city] = c.state
	}
	return m
}

func buildCityStateSet() map[string]bool {
	m := make(map[string]bool, len(cityStateTerms))
	for _, t := range cityStateTerms {
		m[t.Alias] = true
	}
	return m
}
