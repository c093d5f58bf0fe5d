package keywords

// curatedRole holds hand-maintained vocabulary for a recognized role family.
// An entry matches when every trigger word appears in the normalized target
// role. Entries are checked in order; the first match wins.
type curatedRole struct {
	triggers []string
	core     []string
	adjacent []string
	nearby   []string
	exclude  []string
}

var curatedRoles = []curatedRole{
	{
		triggers: []string{"community", "partnership"},
		core: []string{
			"community", "partnership", "partnerships", "stakeholder engagement",
			"outreach", "community engagement", "relationship management", "CSR",
			"fundraising", "volunteer management",
		},
		adjacent: []string{
			"Community Partnerships Executive",
			"Partnerships Executive",
			"Community Engagement Executive",
			"Stakeholder Management Executive",
			"Community Outreach Executive",
			"Partnership Officer",
			"Strategic Partnerships Executive",
			"Partnership Development Executive",
		},
		nearby: []string{
			"Programme Executive",
			"Programme Coordinator",
			"Corporate Relations Executive",
			"Business Development Executive",
			"CSR Executive",
			"Events Executive",
			"Stakeholder Engagement Officer",
		},
		exclude: []string{
			"HR business partner",
			"legal partner",
			"audit partner",
			"equity partner",
		},
	},
	{
		triggers: []string{"procurement"},
		core: []string{
			"procurement", "purchasing", "sourcing", "vendor management",
			"supply chain", "tender", "contract management",
		},
		adjacent: []string{
			"Procurement Executive",
			"Procurement Officer",
			"Purchasing Executive",
			"Sourcing Specialist",
			"Procurement Specialist",
			"Senior Procurement Executive",
		},
		nearby: []string{
			"Supply Chain Executive",
			"Buyer",
			"Contracts Executive",
			"Logistics Executive",
			"Vendor Management Executive",
		},
		exclude: []string{
			"procurement lawyer",
		},
	},
	{
		triggers: []string{"receptionist"},
		core: []string{
			"receptionist", "front desk", "front office", "admin support",
			"customer service", "office administration",
		},
		adjacent: []string{
			"Front Desk Receptionist",
			"Front Office Executive",
			"Receptionist cum Admin Assistant",
			"Guest Services Officer",
			"Clinic Receptionist",
		},
		nearby: []string{
			"Admin Assistant",
			"Customer Service Officer",
			"Office Administrator",
			"Concierge",
		},
	},
}

// matchCurated returns the first curated entry whose trigger words all
// appear in the normalized role, if any.
func matchCurated(normalizedRole string) (curatedRole, bool) {
	for _, entry := range curatedRoles {
		matched := true
		for _, trigger := range entry.triggers {
			if !containsWordish(normalizedRole, trigger) {
				matched = false
				break
			}
		}
		if matched {
			return entry, true
		}
	}
	return curatedRole{}, false
}
