package knowledge

// BuiltinCorpus returns the curated knowledge snippets the retriever serves
// when no external corpus is loaded. Drawn from Indian government schemes,
// legal provisions, and scholarship programs.
func BuiltinCorpus() []Document {
	return []Document{
		{
			ID:       "legal-posh-icc",
			Category: "legal",
			Source:   "POSH Act 2013",
			Text: "Under the Sexual Harassment of Women at Workplace (Prevention, Prohibition and " +
				"Redressal) Act 2013, every employer with 10 or more employees must constitute an " +
				"Internal Complaints Committee (ICC). A written complaint can be filed within 3 months " +
				"of the incident; the ICC must complete its inquiry within 90 days. Section 17 " +
				"prohibits retaliation against the complainant.",
		},
		{
			ID:       "legal-maternity",
			Category: "legal",
			Source:   "Maternity Benefit (Amendment) Act 2017",
			Text: "Women employed in establishments with 10 or more employees are entitled to 26 weeks " +
				"of paid maternity leave for the first two children, and 12 weeks thereafter. " +
				"Establishments with 50 or more employees must provide creche facilities. Dismissal " +
				"during maternity leave is unlawful.",
		},
		{
			ID:       "legal-equal-pay",
			Category: "legal",
			Source:   "Equal Remuneration Act 1976",
			Text: "The Equal Remuneration Act mandates equal pay for equal work regardless of gender. " +
				"Complaints about pay discrimination can be escalated to the Labour Commissioner. " +
				"The Code on Wages 2019 subsumes these protections and extends them to all employees.",
		},
		{
			ID:       "legal-free-aid",
			Category: "legal",
			Source:   "NALSA",
			Text: "The National Legal Services Authority (NALSA) provides free legal services to all " +
				"women irrespective of income, under the Legal Services Authorities Act 1987. " +
				"Helpline 15100 connects to District Legal Services Authorities for free consultation " +
				"and representation.",
		},
		{
			ID:       "grants-mudra",
			Category: "grants",
			Source:   "PM Mudra Yojana",
			Text: "PM Mudra Yojana offers collateral-free business loans through three tiers: Shishu " +
				"(up to Rs. 50,000), Kishore (Rs. 50,001 to Rs. 5 lakh), and Tarun (Rs. 5 lakh to " +
				"Rs. 10 lakh). Women entrepreneurs receive interest concessions at most lender banks. " +
				"Applications go through any PSU bank, RRB, or registered NBFC.",
		},
		{
			ID:       "grants-standup",
			Category: "grants",
			Source:   "Stand-Up India",
			Text: "Stand-Up India facilitates bank loans between Rs. 10 lakh and Rs. 1 crore to at " +
				"least one woman borrower per bank branch for setting up a greenfield enterprise in " +
				"manufacturing, services, or trading. Margin money requirement is up to 15%, with " +
				"convergence support from state schemes permitted.",
		},
		{
			ID:       "grants-seed-fund",
			Category: "grants",
			Source:   "Startup India Seed Fund",
			Text: "The Startup India Seed Fund Scheme provides up to Rs. 20 lakh as grant for proof of " +
				"concept and up to Rs. 50 lakh through convertible debentures for market entry. " +
				"DPIIT-recognised startups less than 2 years old are eligible; applications are made " +
				"through approved incubators.",
		},
		{
			ID:       "schemes-mssc",
			Category: "schemes",
			Source:   "Mahila Samman Savings Certificate",
			Text: "The Mahila Samman Savings Certificate is a small-savings scheme exclusively for " +
				"women: deposits up to Rs. 2 lakh for a 2-year tenure at 7.5% interest compounded " +
				"quarterly, available at post offices and authorised banks. Partial withdrawal of " +
				"40% is allowed after one year.",
		},
		{
			ID:       "schemes-wep",
			Category: "schemes",
			Source:   "Women Entrepreneurship Platform",
			Text: "NITI Aayog's Women Entrepreneurship Platform (wep.gov.in) aggregates mentorship, " +
				"incubation, funding access, and compliance support for women entrepreneurs. " +
				"Registration is free and unlocks partner programs from SIDBI, banks, and industry " +
				"bodies.",
		},
		{
			ID:       "education-nsp",
			Category: "education",
			Source:   "National Scholarship Portal",
			Text: "The National Scholarship Portal (scholarships.gov.in) hosts 104 central scholarship " +
				"schemes. One-time registration with Aadhaar, bank account, and academic records " +
				"covers all applicable schemes. The application window typically opens between " +
				"August and October each year.",
		},
		{
			ID:       "education-pragati",
			Category: "education",
			Source:   "AICTE Pragati",
			Text: "The AICTE Pragati scholarship awards Rs. 50,000 per annum to women students in " +
				"AICTE-approved technical degree and diploma programs, with two scholarships " +
				"permitted per family. Family income must be below Rs. 8 lakh per annum.",
		},
		{
			ID:       "education-pmkvy",
			Category: "education",
			Source:   "PMKVY",
			Text: "Pradhan Mantri Kaushal Vikas Yojana (PMKVY) provides free short-term skill training " +
				"and certification aligned to National Skill Qualification Framework standards, with " +
				"special provisions and stipends for women candidates at many training centres.",
		},
	}
}
