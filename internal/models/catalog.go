package models

// ServiceOptions is the catalog of services a citizen may demand.
var ServiceOptions = []string{
	"Pharmacy",
	"Medical Clinic",
	"Primary School",
	"Kindergarten",
	"Playground",
	"Library",
	"Bakery",
	"Cafe",
	"Restaurant",
	"Gym",
	"Park",
	"Clothing Store",
	"Beauty Salon",
	"Car Workshop",
	"Gas Station",
	"Post Office",
	"Bank/ATM",
	"Dry Cleaning",
	"Electronics Store",
	"Cultural Center",
	"Pet Store",
	"Veterinary Clinic",
	"Hardware Store",
	"Marketplace",
	"Senior Home",
	"Bicycle Service",
	"Book and Movie Rental",
	"Tailoring Services",
	"Phone/Electronics Repair",
	"Other",
}

// DemandPriorities are the accepted urgency levels for a service demand.
var DemandPriorities = []string{"Low", "Medium", "High"}

var (
	serviceOptionSet  = toSet(ServiceOptions)
	demandPrioritySet = toSet(DemandPriorities)
)

// IsServiceOption reports whether the service is in the catalog.
func IsServiceOption(service string) bool {
	return serviceOptionSet[service]
}

// IsDemandPriority reports whether the priority level is valid.
func IsDemandPriority(priority string) bool {
	return demandPrioritySet[priority]
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
