package catalog

// Word pools for synthetic people, company and place names.

var FirstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Christopher", "Lisa", "Daniel", "Nancy",
	"Matthew", "Betty", "Anthony", "Margaret", "Mark", "Sandra", "Donald", "Ashley",
	"Steven", "Dorothy", "Paul", "Kimberly", "Andrew", "Emily", "Joshua", "Donna",
	"Kenneth", "Michelle", "Kevin", "Carol", "Brian", "Amanda", "George", "Melissa",
	"Timothy", "Deborah", "Ronald", "Stephanie", "Edward", "Rebecca", "Jason", "Sharon",
	"Jeffrey", "Laura", "Ryan", "Cynthia", "Jacob", "Kathleen", "Gary", "Amy",
	"Nicholas", "Angela", "Eric", "Shirley", "Jonathan", "Anna", "Stephen", "Brenda",
}

var LastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson",
	"White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker",
	"Young", "Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill",
	"Flores", "Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell",
	"Mitchell", "Carter", "Roberts", "Gomez", "Phillips", "Evans", "Turner", "Diaz",
}

var CompanyWords = []string{
	"Summit", "Harbor", "Cedar", "Lakeside", "Pinnacle", "Heritage", "Liberty",
	"Crestview", "Meridian", "Evergreen", "Granite", "Beacon", "Willow", "Sterling",
	"Horizon", "Redwood", "Cascade", "Harvest", "Prairie", "Canyon", "Magnolia",
	"Anchor", "Copper", "Ridgeline", "Juniper",
}

var CompanySuffixes = []string{"Group", "Holdings", "Hospitality", "Partners", "Ventures", "Services"}

var EmailDomains = []string{
	"sysmail.com", "fieldnet.org", "salescorp.net", "repmail.com", "dealdesk.io",
}

var CuisineTypes = []string{
	"American", "Italian", "Mexican", "Asian", "Mediterranean",
	"Steakhouse", "Seafood", "Fast Casual", "Fine Dining",
	"Breakfast/Brunch", "BBQ", "Pizza", "Sushi", "Indian",
}

var OperatorNameStyles = []string{"Urban", "Classic", "Modern", "Old Town"}
var OperatorNameVenues = []string{"Grill", "Bistro", "Eatery", "Kitchen"}

// CitiesByState maps a state to its common operator cities. States without
// an entry fall back to "Metro Area".
var CitiesByState = map[string][]string{
	"NY": {"New York", "Brooklyn", "Queens", "Buffalo", "Rochester", "Albany"},
	"CA": {"Los Angeles", "San Francisco", "San Diego", "Sacramento", "San Jose", "Oakland"},
	"TX": {"Houston", "Dallas", "Austin", "San Antonio", "Fort Worth", "El Paso"},
	"FL": {"Miami", "Orlando", "Tampa", "Jacksonville", "Fort Lauderdale"},
	"IL": {"Chicago", "Aurora", "Naperville", "Joliet", "Rockford"},
	"PA": {"Philadelphia", "Pittsburgh", "Allentown", "Erie"},
	"OH": {"Columbus", "Cleveland", "Cincinnati", "Toledo"},
	"GA": {"Atlanta", "Augusta", "Columbus", "Savannah"},
	"NC": {"Charlotte", "Raleigh", "Greensboro", "Durham"},
	"MI": {"Detroit", "Grand Rapids", "Warren", "Ann Arbor"},
	"MA": {"Boston", "Worcester", "Springfield", "Cambridge"},
	"NJ": {"Newark", "Jersey City", "Paterson", "Elizabeth"},
	"WA": {"Seattle", "Spokane", "Tacoma", "Vancouver"},
	"AZ": {"Phoenix", "Tucson", "Mesa", "Chandler", "Scottsdale"},
	"CO": {"Denver", "Colorado Springs", "Aurora", "Fort Collins"},
	"MN": {"Minneapolis", "Saint Paul", "Rochester", "Duluth"},
	"NV": {"Las Vegas", "Henderson", "Reno", "North Las Vegas"},
}

// CRM pick lists.
var LeadSources = []string{
	"Trade Show", "Referral", "Cold Call", "Website", "Partner",
	"LinkedIn", "Industry Event", "Existing Customer",
}

var Competitors = []string{
	"Sysco", "US Foods", "Performance Food Group", "Gordon Food Service",
	"Regional Competitor", "Local Supplier", "Direct from Manufacturer",
}

var LossReasons = []string{
	"Price", "Competitor", "No Decision", "Budget Constraints",
	"Changed Requirements", "Poor Fit", "Timing",
}

var ActivityOutcomes = []string{
	"Connected", "Left Voicemail", "No Answer", "Completed",
	"Rescheduled", "Cancelled",
}

var NextStepPhrases = []string{
	"Send updated pricing sheet", "Schedule tasting with head chef",
	"Follow up after budget review", "Loop in regional manager",
	"Confirm delivery windows", "Share case studies from similar operators",
	"Prepare contract draft", "Check back next quarter",
}
