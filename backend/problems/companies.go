package problems

import "strings"

// Companies is the catalog of company problem lists available upstream.
// Each name maps to a <name>.csv file under the configured CSV base URL.
var Companies = []string{
	"APT Portfolio", "Accenture", "Activision", "Adobe", "Affirm", "Airbnb",
	"Akamai", "Akuna Capital", "Alation", "Alibaba", "AllinCall", "Amazon",
	"American Express", "Apple", "Arcesium", "Arista Networks", "Asana",
	"Athenahealth", "Atlassian", "Baidu", "Barclays", "BlackRock", "Bloomberg",
	"Bolt", "Booking.com", "Box", "ByteDance", "C3 IoT", "Canonical",
	"Capital One", "Cashfree", "Cisco", "Citadel", "Citrix", "Cohesity",
	"Commvault", "Coursera", "Cruise Automation", "DE Shaw", "DJI", "DRW",
	"Databricks", "Dataminr", "Dell", "Deutsche Bank", "Directi", "Docusign",
	"DoorDash", "Drawbridge", "Dropbox", "Druva", "Dunzo", "Duolingo",
	"Epic Systems", "Expedia", "FPT", "Facebook", "FactSet", "Flipkart",
	"Gilt Groupe", "GoDaddy", "Goldman Sachs", "Google", "Grab", "HBO",
	"HRT", "Honeywell", "Hotstar", "Huawei", "Hulu", "IBM", "IIT Bombay",
	"IMC", "IXL", "Indeed", "Info Edge", "Infosys", "Intel", "Intuit",
	"JPMorgan", "Jane Street", "Jeavio", "Karat", "Leap Motion", "LinkedIn",
	"LiveRamp", "Lyft", "MAQ Software", "MakeMyTrip", "Mathworks", "Mercari",
	"Microsoft", "MindTickle", "MindTree", "Moengage", "Morgan Stanley",
	"National Instruments", "Netflix", "Netsuite", "Nuro", "Nutanix",
	"Nvidia", "OT", "Opendoor", "Optum", "Oracle", "Palantir Technologies",
	"PayTM", "Paypal", "PhonePe", "Pinterest", "Pocket Gems", "Postmates",
	"Pure Storage", "Qualcomm", "Qualtrics", "Quora", "Rakuten", "Reddit",
	"Redfin", "Riot Games", "Robinhood", "Roblox", "Rubrik", "Rupeek",
	"SAP", "Salesforce", "Samsung", "Sapient", "ServiceNow", "Shopee",
	"Snapchat", "Softwire", "Sony", "Splunk", "Spotify", "Sprinklr",
	"Square", "Sumologic", "Swiggy", "T System", "TIAA", "Tencent", "Tesla",
	"Thumbtack", "Tiger Analytics", "Toptal", "TripleByte", "TuSimple",
	"Twilio", "Twitch", "Twitter", "Two Sigma", "Uber", "United Health Group",
	"VMware", "Valve", "Virtu Financial", "Visa", "Walmart Global Tech",
	"Wayfair", "Wealthfront", "Wish", "Works Applications", "Yahoo", "Yandex",
	"Yelp", "ZScaler", "Zenefits", "Zillow", "Zoho", "Zomato", "Zoom",
	"Zopsmart", "eBay", "edabit", "instacart", "payu", "peak6",
	"persistent systems", "razorpay", "tcs", "tiktok", "zeta suite",
}

// FilterCompanies returns the companies whose name contains the search
// term, case-insensitively. An empty term returns the full catalog.
func FilterCompanies(search string) []string {
	if search == "" {
		return Companies
	}
	search = strings.ToLower(search)
	var matched []string
	for _, c := range Companies {
		if strings.Contains(strings.ToLower(c), search) {
			matched = append(matched, c)
		}
	}
	return matched
}

// KnownCompany reports whether the catalog contains the given name.
func KnownCompany(name string) bool {
	for _, c := range Companies {
		if c == name {
			return true
		}
	}
	return false
}
