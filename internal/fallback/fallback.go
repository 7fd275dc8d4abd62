// Package fallback holds the curated static plan library served when the
// reasoning oracle is unavailable. Every plan is a complete SynthesizedPlan,
// so the UI and downstream consumers need no special error handling.
//
// These are not generic placeholders. They are actionable, India-specific
// strategic plans drawn from real government schemes, legal provisions, and
// career data.
package fallback

import (
	"math/rand"

	"github.com/she-oracle/orchestrator/models"
)

// Note is the footer embedded in every fallback plan's tool insights.
const Note = "Note: This plan was generated from SHE-ORACLE's curated knowledge base " +
	"because the AI service is temporarily unavailable. Core guidance is fully " +
	"valid. Restart your query once service resumes for a personalised plan."

// Domains lists every domain the library covers, general last.
func Domains() []string {
	return []string{"career", "legal", "financial", "education", "grants", "general"}
}

// Plan returns a curated fallback plan for the given domain. Picks randomly
// among the domain's plans so repeated requests don't always return identical
// content. Unknown domains fall back to general; a non-empty goal overrides
// the plan's goal field.
func Plan(domain, goal string) models.SynthesizedPlan {
	plans, ok := library[domain]
	if !ok {
		plans = library["general"]
	}
	plan := plans[rand.Intn(len(plans))]
	if goal != "" {
		plan.Goal = goal
	}
	plan.Artifacts = []models.Artifact{}
	return plan
}

// PlansFor exposes the raw library entries for a domain, used by tests to
// verify a served plan matches a pre-authored one.
func PlansFor(domain string) []models.SynthesizedPlan {
	plans, ok := library[domain]
	if !ok {
		plans = library["general"]
	}
	out := make([]models.SynthesizedPlan, len(plans))
	copy(out, plans)
	return out
}

func note() map[string]interface{} {
	return map[string]interface{}{"note": Note}
}

// sharedResources is appended to every plan's resource list.
var sharedResources = []models.Resource{
	{Name: "MyScheme Portal", Type: "Platform", URLOrContact: "https://myscheme.gov.in", HowItHelps: "Official one-stop portal to find all central and state government schemes you are eligible for."},
	{Name: "iSaathi Helpline", Type: "Contact", URLOrContact: "1800-180-1551", HowItHelps: "Free government helpline for women in distress connecting to legal aid, counselling, and shelter."},
	{Name: "National Commission for Women", Type: "Contact", URLOrContact: "ncwapps.nic.in / 7827-170-170", HowItHelps: "File complaints, get legal support, and access welfare programs for women."},
}

func withShared(resources ...models.Resource) []models.Resource {
	return append(resources, sharedResources...)
}

var library = map[string][]models.SynthesizedPlan{
	"career":    careerPlans,
	"legal":     legalPlans,
	"financial": financialPlans,
	"education": educationPlans,
	"grants":    grantsPlans,
	"general":   generalPlans,
}

var careerPlans = []models.SynthesizedPlan{
	{
		Goal:   "Career growth and advancement for women in India",
		Domain: "career",
		ExecutiveSummary: "India's job market has expanded significantly for skilled women professionals. " +
			"The strategy focuses on skill certification, targeted networking, and negotiation " +
			"to move from where you are now to your target role within 90 days.",
		SituationAnalysis: "Women in India face a structural pay gap of 19-34% and are under-represented in " +
			"senior roles. Addressing this requires a deliberate combination of upskilling, " +
			"visibility building, and leveraging legal protections. The good news: demand for " +
			"skilled women professionals is at an all-time high across tech, finance, and healthcare.",
		Subgoals: []models.Subgoal{
			{ID: 1, Subgoal: "Identify and close the top 2-3 skill gaps for your target role", Why: "Skill gaps are the #1 reason women get passed over in promotions", Timeline: "Weeks 1-4"},
			{ID: 2, Subgoal: "Build a credible professional profile on LinkedIn and resume", Why: "60% of hiring decisions are made before the interview based on profile strength", Timeline: "Week 1"},
			{ID: 3, Subgoal: "Get certified in one high-demand skill (cloud, data, PM, finance)", Why: "Certifications add 15-30% to salary negotiations", Timeline: "Days 30-60"},
			{ID: 4, Subgoal: "Apply to 10 targeted roles with a tailored application", Why: "Targeted applications have 4x higher response rates than mass applying", Timeline: "Day 45 onwards"},
			{ID: 5, Subgoal: "Negotiate salary using market data benchmarks", Why: "Women who negotiate earn 7-13% more over their lifetime", Timeline: "At offer stage"},
		},
		ImmediateActions: []models.ImmediateAction{
			{Action: "Go to LinkedIn and set 'Open to Work' with your target role", Resource: "linkedin.com/jobs", ExpectedOutcome: "Recruiters start finding you within 48 hours"},
			{Action: "Enroll in one free certification: Google, AWS, or NASSCOM FutureSkills", Resource: "grow.google / aws.amazon.com/training / futureskills.nasscom.in", ExpectedOutcome: "Certification in 4-8 weeks that directly boosts your resume"},
			{Action: "Research your target role salary on AmbitionBox and Glassdoor", Resource: "ambitionbox.com / glassdoor.co.in", ExpectedOutcome: "Know your market value before any negotiation"},
		},
		Roadmap: []models.RoadmapPhase{
			{Phase: "30 Days", Focus: "Profile and skill foundation", Milestones: []string{"Updated LinkedIn and resume", "Enrolled in certification", "Identified 20 target companies"}, ResourcesNeeded: []string{"LinkedIn Premium (optional)", "Free certification platform"}},
			{Phase: "60 Days", Focus: "Applications and networking", Milestones: []string{"Certification complete", "Applied to 10-15 roles", "3 informational interviews done"}, ResourcesNeeded: []string{"Job portals: Naukri, LinkedIn, Indeed"}},
			{Phase: "90 Days", Focus: "Offers and negotiation", Milestones: []string{"At least 2 interview processes active", "Salary negotiation done", "Offer accepted or pipeline clear"}, ResourcesNeeded: []string{"Salary data from AmbitionBox", "Offer letter review"}},
		},
		KeyResources: withShared(
			models.Resource{Name: "NASSCOM FutureSkills Prime", Type: "Platform", URLOrContact: "futureskills.nasscom.in", HowItHelps: "Free and subsidised tech certification for working professionals"},
			models.Resource{Name: "AmbitionBox Salary Tool", Type: "Platform", URLOrContact: "ambitionbox.com", HowItHelps: "Verified salary data by role, company, and city for negotiation"},
			models.Resource{Name: "Sheroes Community", Type: "Platform", URLOrContact: "sheroes.com", HowItHelps: "Women's career community with mentors, job listings, and peer support"},
		),
		RiskMitigation: []models.Risk{
			{Risk: "Rejection from multiple applications", Mitigation: "Diversify: apply to startups and mid-size companies, not just top brands. Get feedback from recruiters."},
			{Risk: "Gender bias in hiring", Mitigation: "Use anonymous application platforms where possible. Focus on merit-based proof: certifications, portfolio, GitHub."},
			{Risk: "Skill course takes longer than expected", Mitigation: "Choose courses with self-paced options so job applications aren't blocked."},
		},
		SuccessMetrics: []string{
			"Certification obtained within 60 days",
			"Minimum 5 interview calls generated within 90 days",
			"Final offer at or above market rate",
			"New role started within 120 days",
		},
		ToolInsights: note(),
	},
	{
		Goal:   "Women re-entering the workforce after a career break",
		Domain: "career",
		ExecutiveSummary: "Career re-entry after a break (maternity, caregiving, health) is fully achievable " +
			"with the right sequencing. Several large Indian employers now have structured " +
			"returnship programs specifically for women. This plan guides you through " +
			"refreshing skills, targeting return-friendly employers, and closing the gap.",
		SituationAnalysis: "India has over 120 million women outside the formal workforce, many of whom left " +
			"due to family responsibilities. Returnship programs at companies like Infosys, TCS, " +
			"Goldman Sachs, and Accenture India actively recruit experienced women after breaks. " +
			"The key barriers are confidence, skill currency, and gaps on the resume, all solvable.",
		Subgoals: []models.Subgoal{
			{ID: 1, Subgoal: "Update skills to current market standards in your field", Why: "A 2-3 year break creates a skills delta; closing it signals readiness to employers", Timeline: "Weeks 1-6"},
			{ID: 2, Subgoal: "Apply to formal returnship programs at large companies", Why: "Returnship programs are designed for exactly your profile and have 60-80% conversion to full-time", Timeline: "Week 3 onwards"},
			{ID: 3, Subgoal: "Build a network in your previous domain", Why: "Referral hires account for 40% of senior placements", Timeline: "Week 2 onwards"},
		},
		ImmediateActions: []models.ImmediateAction{
			{Action: "Check returnship programs: Infosys Rekindle, TCS BPS Returnship, Goldman Sachs Returnship India", Resource: "infosys.com/careers / tcs.com/careers", ExpectedOutcome: "Applications submitted to structured programs with mentorship support"},
			{Action: "Join the 'Women Back to Work' group on LinkedIn", Resource: "linkedin.com", ExpectedOutcome: "Connect with others in the same journey and get referrals"},
			{Action: "Take a 4-week refresher course on Coursera or Udemy in your domain", Resource: "coursera.org / udemy.com", ExpectedOutcome: "Skills updated, can confidently discuss recent developments in interviews"},
		},
		Roadmap: []models.RoadmapPhase{
			{Phase: "30 Days", Focus: "Skills refresh and applications", Milestones: []string{"Refresher course enrolled", "3 returnship applications submitted", "LinkedIn updated"}, ResourcesNeeded: []string{"Coursera / NPTEL", "LinkedIn"}},
			{Phase: "60 Days", Focus: "Interviews and networking", Milestones: []string{"2+ returnship interviews", "5 reconnections with prior colleagues"}, ResourcesNeeded: []string{"Interview prep resources"}},
			{Phase: "90 Days", Focus: "Placement and onboarding", Milestones: []string{"Returnship or direct hire offer", "Transition plan for home responsibilities"}, ResourcesNeeded: []string{"Offer negotiation support"}},
		},
		KeyResources: withShared(
			models.Resource{Name: "Infosys Rekindle Program", Type: "Returnship", URLOrContact: "infosys.com/careers", HowItHelps: "6-month paid returnship for experienced women in tech"},
			models.Resource{Name: "NPTEL Online Courses", Type: "Platform", URLOrContact: "nptel.ac.in", HowItHelps: "Free IIT-quality courses with certification for skill refresher"},
			models.Resource{Name: "Sheroes Returnship Board", Type: "Platform", URLOrContact: "sheroes.com/jobs", HowItHelps: "Job board specifically for women returning to work"},
		),
		RiskMitigation: []models.Risk{
			{Risk: "Employers question the career break", Mitigation: "Frame the break as a life management achievement. Highlight any freelance, volunteer, or learning activity during it."},
			{Risk: "Salary offered is below pre-break level", Mitigation: "Negotiate based on market rate, not break duration. Your experience still commands market value."},
		},
		SuccessMetrics: []string{
			"At least one returnship or direct application accepted within 90 days",
			"Salary within 15% of pre-break level",
			"Skills refresher completed within 45 days",
		},
		ToolInsights: note(),
	},
}

var legalPlans = []models.SynthesizedPlan{
	{
		Goal:   "Understanding and exercising workplace legal rights in India",
		Domain: "legal",
		ExecutiveSummary: "Indian women have strong legal protections under multiple acts: POSH, Maternity " +
			"Benefit Act, Equal Remuneration Act, and the new Bharatiya Nyaya Sanhita. " +
			"This plan covers how to document violations, escalate through the right channels, " +
			"and access free legal aid.",
		SituationAnalysis: "Workplace violations against women in India range from sexual harassment (covered " +
			"by POSH Act 2013) to maternity benefit denial, pay discrimination, and wrongful " +
			"termination. Most women are unaware that every company with 10+ employees is " +
			"legally required to have an Internal Complaints Committee (ICC). Filing a complaint " +
			"is the first step, and you are legally protected from retaliation.",
		Subgoals: []models.Subgoal{
			{ID: 1, Subgoal: "Document every incident with dates, times, witnesses, and screenshots", Why: "Documentation is the foundation of any legal case; without it, claims are hard to prove", Timeline: "Immediately"},
			{ID: 2, Subgoal: "Identify and approach your company's ICC or HR", Why: "POSH mandates a 90-day investigation; formal reporting triggers this clock", Timeline: "Within 1 week"},
			{ID: 3, Subgoal: "Consult a free legal aid lawyer if internal process fails", Why: "NALSA provides free legal services to women; use this before spending on private lawyers", Timeline: "If ICC fails or is biased"},
			{ID: 4, Subgoal: "File with the Labour Commissioner or NCW if employer is unresponsive", Why: "External escalation has real consequences for employers: penalties and public record", Timeline: "30 days after internal complaint if unresolved"},
		},
		ImmediateActions: []models.ImmediateAction{
			{Action: "Write down every incident with exact date, time, location, what was said/done, and who witnessed it", Resource: "Secure private document (Google Drive with 2FA)", ExpectedOutcome: "Legal-grade evidence record that can be submitted to any authority"},
			{Action: "Email HR formally requesting confirmation of your ICC details and complaint process", Resource: "Company email, keep all copies", ExpectedOutcome: "Creates a paper trail and puts the company on notice"},
			{Action: "Call NALSA (National Legal Services Authority) for free legal advice", Resource: "nalsa.gov.in / 15100", ExpectedOutcome: "Free consultation with a qualified lawyer within 48 hours"},
		},
		Roadmap: []models.RoadmapPhase{
			{Phase: "30 Days", Focus: "Document, report internally, get legal advice", Milestones: []string{"Complete incident log", "ICC complaint filed", "Free legal consultation done"}, ResourcesNeeded: []string{"NALSA 15100", "Company ICC"}},
			{Phase: "60 Days", Focus: "ICC investigation period", Milestones: []string{"ICC investigation underway", "Interim relief requested if needed", "Evidence submitted"}, ResourcesNeeded: []string{"Legal aid lawyer", "NCW if ICC is biased"}},
			{Phase: "90 Days", Focus: "Resolution or external escalation", Milestones: []string{"ICC verdict received", "Labour Commissioner complaint if unsatisfied", "Compensation or remedial action"}, ResourcesNeeded: []string{"Labour Commissioner office", "High Court if needed"}},
		},
		KeyResources: withShared(
			models.Resource{Name: "NALSA Free Legal Aid", Type: "Contact", URLOrContact: "nalsa.gov.in / 15100", HowItHelps: "Free legal services for women: consultation, representation, documentation"},
			models.Resource{Name: "NCW Online Complaint", Type: "Platform", URLOrContact: "ncwapps.nic.in", HowItHelps: "National Commission for Women: file complaints about harassment, discrimination, rights violations"},
			models.Resource{Name: "SHe-Box Portal", Type: "Platform", URLOrContact: "shebox.nic.in", HowItHelps: "Official government portal to file POSH complaints against central government employees"},
			models.Resource{Name: "Labour Commissioner", Type: "Contact", URLOrContact: "labour.gov.in", HowItHelps: "Handles pay discrimination, wrongful termination, and labor law violations"},
		),
		RiskMitigation: []models.Risk{
			{Risk: "Employer retaliation after complaint", Mitigation: "Retaliation is illegal under POSH Section 17. Document any adverse action after filing; it strengthens your case significantly."},
			{Risk: "ICC is biased or employer-controlled", Mitigation: "POSH requires an external member on every ICC. If biased, escalate to the Local Complaints Committee (LCC) through the District Collector."},
			{Risk: "Fear of job loss", Mitigation: "While genuine, the law protects you. Simultaneously, start a quiet job search so you have options."},
		},
		SuccessMetrics: []string{
			"Incident log completed within 48 hours",
			"Formal complaint filed within 7 days",
			"ICC investigation completed within 90 days (legal requirement)",
			"Violation acknowledged or remedied, or external escalation underway",
		},
		ToolInsights: note(),
	},
	{
		Goal:   "Claiming maternity benefits and protecting employment during pregnancy",
		Domain: "legal",
		ExecutiveSummary: "The Maternity Benefit (Amendment) Act 2017 guarantees 26 weeks of paid leave and " +
			"job protection. This plan walks through notifying your employer correctly, securing " +
			"full benefits, and responding if the employer denies or retaliates.",
		SituationAnalysis: "Maternity benefit denial is one of the most common workplace violations in India. " +
			"The law applies to every establishment with 10+ employees, covers 26 weeks of paid " +
			"leave for the first two children, mandates creche facilities at 50+ employee " +
			"establishments, and makes dismissal during maternity leave unlawful.",
		Subgoals: []models.Subgoal{
			{ID: 1, Subgoal: "Serve written notice of maternity leave with expected dates", Why: "A written notice under Section 6 locks in your statutory entitlement", Timeline: "As early as possible"},
			{ID: 2, Subgoal: "Collect salary slips and employment proof before leave starts", Why: "Benefit is computed on average daily wage; records prevent under-payment", Timeline: "Week 1"},
			{ID: 3, Subgoal: "Escalate any denial to the Inspector under the Act", Why: "Inspectors can order payment and prosecute non-compliant employers", Timeline: "Within 60 days of denial"},
		},
		ImmediateActions: []models.ImmediateAction{
			{Action: "Email HR a formal maternity leave notice citing the Maternity Benefit Act 1961 (as amended 2017)", Resource: "Company email", ExpectedOutcome: "Statutory clock starts; employer cannot claim lack of notice"},
			{Action: "Download your last 12 months of salary slips and your appointment letter", Resource: "HR portal / payroll", ExpectedOutcome: "Evidence base for computing the exact benefit owed"},
			{Action: "Call NALSA 15100 if the employer resists or hints at termination", Resource: "nalsa.gov.in / 15100", ExpectedOutcome: "Free legal guidance on inspector complaints and interim relief"},
		},
		Roadmap: []models.RoadmapPhase{
			{Phase: "30 Days", Focus: "Notice and documentation", Milestones: []string{"Written notice served", "Records collected", "Benefit amount computed"}, ResourcesNeeded: []string{"Salary records", "HR policy document"}},
			{Phase: "60 Days", Focus: "Benefit disbursal tracking", Milestones: []string{"Advance payment received where applicable", "Creche/nursing breaks confirmed"}, ResourcesNeeded: []string{"Maternity Benefit Act text"}},
			{Phase: "90 Days", Focus: "Enforcement if denied", Milestones: []string{"Inspector complaint filed if needed", "NCW complaint filed in parallel"}, ResourcesNeeded: []string{"Labour department office", "NALSA lawyer"}},
		},
		KeyResources: withShared(
			models.Resource{Name: "Labour Department Inspector", Type: "Contact", URLOrContact: "labour.gov.in", HowItHelps: "Statutory authority that enforces maternity benefit payment"},
			models.Resource{Name: "NALSA Free Legal Aid", Type: "Contact", URLOrContact: "nalsa.gov.in / 15100", HowItHelps: "Free representation for benefit recovery claims"},
		),
		RiskMitigation: []models.Risk{
			{Risk: "Quiet termination or forced resignation during leave", Mitigation: "Dismissal during maternity leave is void under Section 12. Never resign under pressure; document every conversation."},
			{Risk: "Employer claims establishment is too small", Mitigation: "The 10-employee threshold counts all branches. Payroll records and PF filings establish true headcount."},
		},
		SuccessMetrics: []string{
			"Written notice acknowledged within 7 days",
			"Full 26-week paid leave confirmed in writing",
			"No adverse employment action during leave",
		},
		ToolInsights: note(),
	},
}

var financialPlans = []models.SynthesizedPlan{
	{
		Goal:   "Financial independence and wealth building for women in India",
		Domain: "financial",
		ExecutiveSummary: "Financial independence for Indian women requires three parallel tracks: income " +
			"growth, debt elimination, and systematic investment. Government schemes provide " +
			"substantial support through subsidised loans, insurance, and pension programs " +
			"specifically for women.",
		SituationAnalysis: "Only 20% of Indian women have independent financial accounts, and fewer than 10% " +
			"actively invest. Cultural barriers, income gaps, and limited financial literacy " +
			"contribute to this. However, multiple government schemes (Mahila Samman, PM Jan " +
			"Dhan, Sukanya Samriddhi) plus growing fintech access are creating real pathways " +
			"to financial sovereignty.",
		Subgoals: []models.Subgoal{
			{ID: 1, Subgoal: "Open a dedicated savings account and emergency fund (3-6 months expenses)", Why: "Emergency fund prevents debt spirals and gives negotiating power", Timeline: "Week 1"},
			{ID: 2, Subgoal: "Start a monthly SIP in a diversified mutual fund (even Rs. 500/month)", Why: "Compounding over 10 years turns Rs. 1000/month into Rs. 2.3 lakh at 12% returns", Timeline: "Week 2"},
			{ID: 3, Subgoal: "Enroll in Mahila Samman Savings Certificate for guaranteed 7.5% returns", Why: "Government-backed, higher rate than FD, specifically for women", Timeline: "Month 1"},
			{ID: 4, Subgoal: "Get a term life insurance and health insurance policy in your own name", Why: "Women with dependents are severely under-insured; one health emergency erases savings", Timeline: "Month 1-2"},
		},
		ImmediateActions: []models.ImmediateAction{
			{Action: "Open a zero-balance Jan Dhan account if you don't have one, or upgrade to a full savings account at any PSU bank", Resource: "Nearest SBI/PNB branch or PM Jan Dhan Yojana portal", ExpectedOutcome: "Dedicated account that is yours alone, linked to your Aadhaar"},
			{Action: "Download Groww or Zerodha Kite and start a SIP of whatever you can afford", Resource: "groww.in / zerodha.com", ExpectedOutcome: "Investing habit formed; even Rs. 500/month builds discipline"},
			{Action: "Check your Post Office for the Mahila Samman Savings Certificate (MSSC), deposit up to Rs. 2 lakh at 7.5% for 2 years", Resource: "India Post nearest branch", ExpectedOutcome: "Guaranteed return higher than any FD, government-backed"},
		},
		Roadmap: []models.RoadmapPhase{
			{Phase: "30 Days", Focus: "Foundation accounts and emergency fund", Milestones: []string{"Savings account opened", "Emergency fund started", "MSSC account opened", "SIP started"}, ResourcesNeeded: []string{"Any PSU bank", "India Post", "Groww/Zerodha"}},
			{Phase: "60 Days", Focus: "Insurance and tax planning", Milestones: []string{"Term insurance policy active", "Health insurance active", "Tax-saving investments identified (80C, 80D)"}, ResourcesNeeded: []string{"LIC / HDFC Life", "Star Health / Niva Bupa"}},
			{Phase: "90 Days", Focus: "Income growth and debt clearing", Milestones: []string{"High-interest debt plan in place", "Income increased by upskilling or side income", "3-month expenses in emergency fund"}, ResourcesNeeded: []string{"Skill platforms", "Debt consolidation guidance"}},
		},
		KeyResources: withShared(
			models.Resource{Name: "Mahila Samman Savings Certificate", Type: "Scheme", URLOrContact: "India Post / indiapost.gov.in", HowItHelps: "7.5% guaranteed interest for 2 years, up to Rs. 2 lakh, only for women"},
			models.Resource{Name: "PM Jan Dhan Yojana", Type: "Scheme", URLOrContact: "pmjdy.gov.in", HowItHelps: "Zero-balance account with Rs. 10,000 overdraft, Rs. 2 lakh accident insurance, Rs. 30,000 life cover"},
			models.Resource{Name: "Groww Mutual Fund Platform", Type: "Platform", URLOrContact: "groww.in", HowItHelps: "Start SIP from Rs. 100/month, zero commission, direct plans"},
			models.Resource{Name: "NPS Swavalamban (Atal Pension Yojana)", Type: "Scheme", URLOrContact: "npscra.nsdl.co.in", HowItHelps: "Government co-contributes to your pension, especially valuable for informal sector workers"},
		),
		RiskMitigation: []models.Risk{
			{Risk: "Not enough money to start investing", Mitigation: "Start with Rs. 100/month SIP; the habit matters more than the amount in the first 6 months."},
			{Risk: "Family pressure to hand over control of finances", Mitigation: "Keep at least one account solely in your name. Legal right to your own income is protected under Indian law."},
			{Risk: "Investment losses in market downturns", Mitigation: "Keep emergency fund in FD/MSSC (guaranteed), invest only surplus in equity SIPs for long-term (10+ year) goals."},
		},
		SuccessMetrics: []string{
			"Emergency fund of 3 months expenses built within 6 months",
			"SIP running consistently for 3+ months",
			"At least one insurance policy active in your own name",
			"Net worth tracking started (simple spreadsheet is fine)",
		},
		ToolInsights: note(),
	},
	{
		Goal:   "Getting out of high-interest debt and rebuilding credit",
		Domain: "financial",
		ExecutiveSummary: "High-interest debt (credit cards, informal lenders, app loans) compounds faster " +
			"than any investment can outpace. This plan sequences repayment by interest rate, " +
			"uses consolidation where it genuinely helps, and rebuilds your CIBIL score so " +
			"affordable credit becomes available again.",
		SituationAnalysis: "Informal and app-based lending traps disproportionately affect women with limited " +
			"credit history. RBI-regulated consolidation options, bank balance-transfer products, " +
			"and structured repayment sequencing can cut effective interest dramatically. Harassment " +
			"by recovery agents is illegal and actionable.",
		Subgoals: []models.Subgoal{
			{ID: 1, Subgoal: "List every debt with balance, rate, and minimum payment", Why: "You cannot sequence repayment without a complete picture", Timeline: "Day 1-3"},
			{ID: 2, Subgoal: "Attack the highest-rate debt first while paying minimums on the rest", Why: "Avalanche ordering minimises total interest paid", Timeline: "Month 1 onwards"},
			{ID: 3, Subgoal: "Move credit card balances to a lower-rate consolidation loan if eligible", Why: "Cutting 36% card interest to 14% personal loan interest halves the payoff time", Timeline: "Month 1-2"},
		},
		ImmediateActions: []models.ImmediateAction{
			{Action: "Pull your free annual CIBIL report and list all open accounts", Resource: "cibil.com", ExpectedOutcome: "Complete debt inventory plus visibility into score damage"},
			{Action: "Stop borrowing from unregulated loan apps immediately; report harassment to RBI Sachet", Resource: "sachet.rbi.org.in", ExpectedOutcome: "Regulatory complaint on record; harassment typically stops"},
			{Action: "Ask your bank about a balance transfer or consolidation personal loan", Resource: "Your salary account bank", ExpectedOutcome: "Single EMI at materially lower interest"},
		},
		Roadmap: []models.RoadmapPhase{
			{Phase: "30 Days", Focus: "Inventory and stabilisation", Milestones: []string{"Debt list complete", "Minimum payments automated", "Highest-rate debt identified"}, ResourcesNeeded: []string{"CIBIL report", "Bank statements"}},
			{Phase: "60 Days", Focus: "Consolidation and negotiation", Milestones: []string{"Consolidation decision made", "Settlement negotiated on any defaulted account"}, ResourcesNeeded: []string{"Bank loan officer", "Written settlement letters"}},
			{Phase: "90 Days", Focus: "Repayment rhythm and credit rebuild", Milestones: []string{"Avalanche payments running", "No new unsecured borrowing", "CIBIL score trend positive"}, ResourcesNeeded: []string{"Budget tracker"}},
		},
		KeyResources: withShared(
			models.Resource{Name: "RBI Sachet Portal", Type: "Platform", URLOrContact: "sachet.rbi.org.in", HowItHelps: "Report unregistered lenders and recovery agent harassment"},
			models.Resource{Name: "CIBIL Free Report", Type: "Platform", URLOrContact: "cibil.com", HowItHelps: "One free credit report per year to track rebuild progress"},
		),
		RiskMitigation: []models.Risk{
			{Risk: "Recovery agent harassment", Mitigation: "RBI rules prohibit calls outside 8am-7pm and any abuse. Record calls, file at sachet.rbi.org.in and with local police if threatened."},
			{Risk: "Consolidation loan rejected due to low score", Mitigation: "Try a secured option: loan against FD or gold at a PSU bank carries no score requirement."},
		},
		SuccessMetrics: []string{
			"Complete debt inventory within 3 days",
			"Effective average interest rate reduced within 60 days",
			"At least one debt fully closed within 90 days",
		},
		ToolInsights: note(),
	},
}

var educationPlans = []models.SynthesizedPlan{
	{
		Goal:   "Scholarships and education pathways for women in India",
		Domain: "education",
		ExecutiveSummary: "India has over 50 central government scholarship programs specifically for women, " +
			"plus state-level and private scholarships. The key is knowing which ones you are " +
			"eligible for and applying systematically before deadlines. This plan covers the " +
			"top scholarships by category and application strategy.",
		SituationAnalysis: "Women in India are eligible for scholarships from NSP (National Scholarship " +
			"Portal), UGC, AICTE, state governments, and private foundations. Many go " +
			"unclaimed because applicants don't know about them or miss deadlines. The " +
			"National Scholarship Portal alone has 104 scholarship schemes with combined " +
			"coverage of over 1 crore students annually.",
		Subgoals: []models.Subgoal{
			{ID: 1, Subgoal: "Register on the National Scholarship Portal and check eligibility for all applicable schemes", Why: "NSP is the single gateway to 104 central government scholarships: one registration, multiple applications", Timeline: "Week 1"},
			{ID: 2, Subgoal: "Apply to at least 3 scholarships you are eligible for before their deadlines", Why: "Multiple applications increase the probability of receiving at least one", Timeline: "Weeks 1-3"},
			{ID: 3, Subgoal: "Explore free skill development programs under PMKVY and NSDC", Why: "Free certified training worth Rs. 10,000-50,000 available to eligible candidates", Timeline: "Month 1"},
		},
		ImmediateActions: []models.ImmediateAction{
			{Action: "Register on scholarships.gov.in with your Aadhaar, bank account, and academic documents", Resource: "scholarships.gov.in (National Scholarship Portal)", ExpectedOutcome: "Access to all 104 central government scholarships in one place"},
			{Action: "Check AICTE Pragati Scholarship for technical education (Rs. 50,000/year for women)", Resource: "aicte-pragati-saksham-gov.in", ExpectedOutcome: "Annual scholarship covering tuition and expenses for tech programs"},
			{Action: "Apply to Begum Hazrat Mahal National Scholarship for Class 9-12 minority girls", Resource: "maef.nic.in", ExpectedOutcome: "Rs. 10,000-12,000 annual scholarship for minority community students"},
		},
		Roadmap: []models.RoadmapPhase{
			{Phase: "30 Days", Focus: "Registration and applications", Milestones: []string{"NSP registered", "3+ scholarship applications submitted", "PMKVY enrollment checked"}, ResourcesNeeded: []string{"Aadhaar", "Bank account", "Marksheets", "Income certificate"}},
			{Phase: "60 Days", Focus: "Results and skill programs", Milestones: []string{"Scholarship results checked", "Free skill program enrolled", "State-level scholarships applied"}, ResourcesNeeded: []string{"State scholarship portal", "NSDC portal"}},
			{Phase: "90 Days", Focus: "Funding received and next cycle", Milestones: []string{"Scholarship amount disbursed", "Academic plan updated", "Next year scholarships identified"}, ResourcesNeeded: []string{"Bank account linked to NSP"}},
		},
		KeyResources: withShared(
			models.Resource{Name: "National Scholarship Portal", Type: "Platform", URLOrContact: "scholarships.gov.in", HowItHelps: "104 central government scholarships; one registration covers all"},
			models.Resource{Name: "AICTE Pragati Scholarship", Type: "Scheme", URLOrContact: "aicte-pragati-saksham-gov.in", HowItHelps: "Rs. 50,000/year for women in AICTE-approved technical programs"},
			models.Resource{Name: "PMKVY Free Skill Training", Type: "Scheme", URLOrContact: "pmkvyofficial.org", HowItHelps: "Free industry-certified skill training with stipend for eligible candidates"},
			models.Resource{Name: "SWAYAM Free University Courses", Type: "Platform", URLOrContact: "swayam.gov.in", HowItHelps: "Free UGC-credit courses from IITs, IIMs, and central universities"},
		),
		RiskMitigation: []models.Risk{
			{Risk: "Missing scholarship deadlines", Mitigation: "Set phone reminders for each scholarship deadline. NSP typically opens August-October every year."},
			{Risk: "Application rejected due to document issues", Mitigation: "Get income certificate, caste certificate, and domicile certificate from your local tehsildar in advance; they take 1-2 weeks."},
			{Risk: "Scholarship amount not sufficient for full fees", Mitigation: "Stack multiple scholarships; you can receive state + central + private scholarships simultaneously in many cases."},
		},
		SuccessMetrics: []string{
			"NSP registration completed within 7 days",
			"Minimum 3 scholarship applications submitted before deadlines",
			"At least one scholarship received",
			"Free skill certification completed",
		},
		ToolInsights: note(),
	},
	{
		Goal:   "Resuming formal education as an adult learner",
		Domain: "education",
		ExecutiveSummary: "Open and distance education in India makes it possible to finish school or a " +
			"degree at any age, at minimal cost, without quitting work or family duties. This " +
			"plan sequences credential completion through NIOS and IGNOU with free digital " +
			"learning support.",
		SituationAnalysis: "NIOS lets adults complete Class 10 and 12 with flexible exam schedules, and " +
			"IGNOU degrees are recognised for all government and private employment. SWAYAM " +
			"courses carry transferable UGC credits. Fee waivers and reserved-category " +
			"concessions apply to most women applicants.",
		Subgoals: []models.Subgoal{
			{ID: 1, Subgoal: "Choose the credential that unlocks your next step: Class 12, diploma, or degree", Why: "Employers and schemes gate on specific credentials; picking the right one avoids wasted semesters", Timeline: "Week 1"},
			{ID: 2, Subgoal: "Enroll in NIOS or IGNOU for the chosen credential", Why: "Both accept adult learners year-round with distance and online modes", Timeline: "Weeks 2-4"},
			{ID: 3, Subgoal: "Add one SWAYAM course per semester for credit and skills", Why: "Free IIT/IIM content that counts toward UGC credit requirements", Timeline: "Ongoing"},
		},
		ImmediateActions: []models.ImmediateAction{
			{Action: "Check the NIOS admission calendar and block the next stream deadline", Resource: "nios.ac.in", ExpectedOutcome: "Enrollment window secured for Class 10/12 completion"},
			{Action: "Browse IGNOU's programme list and download the prospectus for your field", Resource: "ignou.ac.in", ExpectedOutcome: "Clear picture of fees, duration, and study centre options"},
			{Action: "Create a SWAYAM account and enroll in one foundational course", Resource: "swayam.gov.in", ExpectedOutcome: "Immediate start on free credit-bearing learning"},
		},
		Roadmap: []models.RoadmapPhase{
			{Phase: "30 Days", Focus: "Enrollment", Milestones: []string{"Credential chosen", "NIOS/IGNOU application submitted", "Study schedule drafted"}, ResourcesNeeded: []string{"Aadhaar", "Previous marksheets"}},
			{Phase: "60 Days", Focus: "Study rhythm", Milestones: []string{"First assignments submitted", "SWAYAM course at 50%", "Study group or mentor found"}, ResourcesNeeded: []string{"Smartphone or shared computer"}},
			{Phase: "90 Days", Focus: "First assessment", Milestones: []string{"First exam or assessment taken", "Next semester planned"}, ResourcesNeeded: []string{"Exam centre details"}},
		},
		KeyResources: withShared(
			models.Resource{Name: "NIOS Open Schooling", Type: "Platform", URLOrContact: "nios.ac.in", HowItHelps: "Complete Class 10/12 at any age with flexible exams"},
			models.Resource{Name: "IGNOU", Type: "Platform", URLOrContact: "ignou.ac.in", HowItHelps: "Recognised distance degrees and diplomas at low fees"},
		),
		RiskMitigation: []models.Risk{
			{Risk: "Study time squeezed by family responsibilities", Mitigation: "Distance programmes have no attendance requirement; block two fixed hours daily and treat exam weeks as non-negotiable."},
			{Risk: "Fees unaffordable in a given term", Mitigation: "IGNOU and NIOS both allow semester-wise payment and offer SC/ST/EWS fee exemptions; NSP scholarships apply to distance learners too."},
		},
		SuccessMetrics: []string{
			"Enrollment confirmed within 30 days",
			"First assessment completed within 90 days",
			"One SWAYAM certificate earned per semester",
		},
		ToolInsights: note(),
	},
}

var grantsPlans = []models.SynthesizedPlan{
	{
		Goal:   "Government grants and startup funding for women entrepreneurs in India",
		Domain: "grants",
		ExecutiveSummary: "India has a robust ecosystem of grants, loans, and incubators for women " +
			"entrepreneurs, from PM Mudra Yojana (up to Rs. 10 lakh, no collateral) to " +
			"Startup India Seed Fund (up to Rs. 20 lakh) and WEP (Women Entrepreneurship " +
			"Platform). The key is knowing which scheme fits your business stage.",
		SituationAnalysis: "Women-led businesses in India face a funding gap of $158 billion, yet the " +
			"government has deployed over Rs. 1.5 lakh crore through Mudra alone. The " +
			"problem is awareness and application quality: most eligible women either don't " +
			"know the schemes exist, or their business plans don't meet the basic criteria. " +
			"This plan solves both problems.",
		Subgoals: []models.Subgoal{
			{ID: 1, Subgoal: "Identify the right funding scheme for your business stage and size", Why: "Different schemes have different eligibility; applying to the wrong one wastes time and affects your CIBIL", Timeline: "Week 1"},
			{ID: 2, Subgoal: "Prepare a basic business plan (1-2 pages) with cost breakdown and revenue model", Why: "All schemes require a business plan; even a simple one dramatically improves approval rates", Timeline: "Weeks 1-2"},
			{ID: 3, Subgoal: "Apply to PM Mudra Yojana through any PSU bank branch", Why: "Mudra loans up to Rs. 10 lakh with no collateral, specifically designed for micro-entrepreneurs", Timeline: "Week 2"},
			{ID: 4, Subgoal: "Register on Women Entrepreneurship Platform (WEP) for mentorship and network", Why: "WEP connects you to incubators, investors, and market linkages beyond just funding", Timeline: "Week 1"},
		},
		ImmediateActions: []models.ImmediateAction{
			{Action: "Register on WEP (wep.gov.in): free, takes 10 minutes, gives access to mentors, loans, and incubators", Resource: "wep.gov.in", ExpectedOutcome: "Access to government-curated mentors, schemes, and women-specific opportunities"},
			{Action: "Visit your nearest PSU bank branch and ask specifically for PM Mudra Yojana: Shishu (up to Rs. 50,000), Kishore (up to Rs. 5 lakh), or Tarun (up to Rs. 10 lakh)", Resource: "mudra.org.in / any SBI, PNB, Bank of Baroda branch", ExpectedOutcome: "Collateral-free business loan with subsidised interest rate"},
			{Action: "Write a 1-page business plan: what you sell, who buys it, how much it costs to start, expected monthly revenue", Resource: "Template at sidbi.in or any MSME Development Centre", ExpectedOutcome: "Required document for all funding applications; your single most important asset"},
		},
		Roadmap: []models.RoadmapPhase{
			{Phase: "30 Days", Focus: "Registration and documentation", Milestones: []string{"WEP registered", "Udyam registration done (free, for MSME benefits)", "Business plan drafted", "Mudra application submitted"}, ResourcesNeeded: []string{"udyamregistration.gov.in", "mudra.org.in", "wep.gov.in"}},
			{Phase: "60 Days", Focus: "Loan processing and incubator applications", Milestones: []string{"Mudra loan decision received", "Applied to 1-2 state-level women entrepreneur schemes", "Incubator application submitted if eligible"}, ResourcesNeeded: []string{"State MSME department", "Startup India portal"}},
			{Phase: "90 Days", Focus: "Funding received and deployment", Milestones: []string{"Funding in hand", "Business officially launched or scaled", "Monthly revenue tracking started", "Next funding round planned"}, ResourcesNeeded: []string{"Bank account", "GST registration if applicable"}},
		},
		KeyResources: withShared(
			models.Resource{Name: "PM Mudra Yojana", Type: "Scheme", URLOrContact: "mudra.org.in", HowItHelps: "Up to Rs. 10 lakh, no collateral, low interest: the most accessible business loan for women"},
			models.Resource{Name: "Women Entrepreneurship Platform (WEP)", Type: "Platform", URLOrContact: "wep.gov.in", HowItHelps: "Government platform for mentorship, funding access, incubators, and skill development"},
			models.Resource{Name: "Startup India Seed Fund", Type: "Scheme", URLOrContact: "startupindia.gov.in/seedfund", HowItHelps: "Up to Rs. 20 lakh grant for early-stage tech startups; no repayment required"},
			models.Resource{Name: "CGTMSE Scheme", Type: "Scheme", URLOrContact: "cgtmse.in", HowItHelps: "Credit guarantee for collateral-free loans up to Rs. 2 crore for MSMEs"},
			models.Resource{Name: "Stand-Up India", Type: "Scheme", URLOrContact: "standupmitra.in", HowItHelps: "Rs. 10 lakh to Rs. 1 crore loans for SC/ST and women entrepreneurs; one loan per bank branch guaranteed"},
		),
		RiskMitigation: []models.Risk{
			{Risk: "Loan application rejected", Mitigation: "Apply to multiple banks simultaneously for Mudra; each bank has independent discretion. SIDBI also has a direct lending arm."},
			{Risk: "Business plan is weak", Mitigation: "Contact your nearest MSME Development and Facilitation Office (MSME-DFO); they provide free business plan support."},
			{Risk: "No CIBIL score or poor CIBIL", Mitigation: "Mudra Shishu (up to Rs. 50,000) is accessible even with no credit history. Start there, repay on time, and graduate to higher amounts."},
			{Risk: "Business fails after taking loan", Mitigation: "CGFMU insurance covers micro-enterprise loans. Restructuring options available through bank; communicate early rather than defaulting."},
		},
		SuccessMetrics: []string{
			"WEP and Udyam registration completed within 7 days",
			"Business plan document completed within 14 days",
			"At least one funding application submitted within 30 days",
			"Funding received and business operational within 90 days",
		},
		ToolInsights: note(),
	},
	{
		Goal:   "Funding a self-help-group or rural micro-enterprise",
		Domain: "grants",
		ExecutiveSummary: "Rural women's enterprises have dedicated funding channels that urban schemes " +
			"don't match: SHG bank linkage at 7% effective interest, NRLM revolving funds, and " +
			"PMFME subsidies for food businesses. This plan routes you through the SHG system " +
			"to progressively larger funding.",
		SituationAnalysis: "Over 80 million Indian women are organised in self-help groups under DAY-NRLM. " +
			"A functioning SHG unlocks a Rs. 15,000-30,000 revolving fund, community investment " +
			"funds up to Rs. 2.5 lakh, and bank linkage loans at interest-subvented rates. " +
			"Individual micro-entrepreneurs can layer PMFME's 35% capital subsidy on top.",
		Subgoals: []models.Subgoal{
			{ID: 1, Subgoal: "Join or form a self-help group registered with DAY-NRLM", Why: "SHG membership is the entry ticket to the cheapest institutional credit in India", Timeline: "Weeks 1-4"},
			{ID: 2, Subgoal: "Complete 6 months of regular savings and meetings for bank linkage", Why: "Banks lend to SHGs with demonstrated savings discipline (Panchasutra norms)", Timeline: "Months 1-6"},
			{ID: 3, Subgoal: "Apply for PMFME subsidy if the enterprise is food-based", Why: "35% credit-linked capital subsidy up to Rs. 10 lakh for food processing units", Timeline: "Month 2"},
		},
		ImmediateActions: []models.ImmediateAction{
			{Action: "Visit your Gram Panchayat or block NRLM office and ask for active SHGs accepting members", Resource: "Block Mission Management Unit (DAY-NRLM)", ExpectedOutcome: "SHG membership or formation process started"},
			{Action: "Open a joint SHG savings account at the nearest bank branch", Resource: "Any PSU bank or RRB", ExpectedOutcome: "Savings track record begins; required for all SHG credit"},
			{Action: "Check PMFME eligibility for your product at pmfme.mofpi.gov.in", Resource: "pmfme.mofpi.gov.in", ExpectedOutcome: "Know the subsidy and documents before investing"},
		},
		Roadmap: []models.RoadmapPhase{
			{Phase: "30 Days", Focus: "SHG onboarding", Milestones: []string{"SHG joined or formed", "Savings account opened", "Weekly savings started"}, ResourcesNeeded: []string{"NRLM block office", "Bank branch"}},
			{Phase: "60 Days", Focus: "Fund applications", Milestones: []string{"Revolving fund application via SHG", "PMFME application drafted if applicable"}, ResourcesNeeded: []string{"SHG records", "Enterprise cost estimate"}},
			{Phase: "90 Days", Focus: "Deployment", Milestones: []string{"First funds received", "Enterprise stocked or equipped", "Repayment schedule tracked in SHG register"}, ResourcesNeeded: []string{"SHG bookkeeper"}},
		},
		KeyResources: withShared(
			models.Resource{Name: "DAY-NRLM", Type: "Scheme", URLOrContact: "aajeevika.gov.in", HowItHelps: "SHG formation, revolving funds, and subsidised bank linkage for rural women"},
			models.Resource{Name: "PMFME Scheme", Type: "Scheme", URLOrContact: "pmfme.mofpi.gov.in", HowItHelps: "35% capital subsidy for micro food processing enterprises"},
		),
		RiskMitigation: []models.Risk{
			{Risk: "SHG in the area is inactive or poorly run", Mitigation: "NRLM community resource persons can revive or re-form groups; ask the block office for a CRP visit."},
			{Risk: "Loan diverted to household consumption", Mitigation: "Keep enterprise funds in a separate account and record every expense in the SHG register from day one."},
		},
		SuccessMetrics: []string{
			"SHG membership active within 30 days",
			"Revolving fund or linkage application submitted within 90 days",
			"Enterprise generating first revenue within 120 days",
		},
		ToolInsights: note(),
	},
}

var generalPlans = []models.SynthesizedPlan{
	{
		Goal:   "Comprehensive empowerment strategy for women in India",
		Domain: "general",
		ExecutiveSummary: "SHE-ORACLE's general empowerment framework covers four pillars: financial " +
			"independence, legal awareness, career growth, and access to government schemes. " +
			"This plan gives you a foundation across all four so you can identify and act on " +
			"your most pressing priority.",
		SituationAnalysis: "Empowerment for Indian women requires simultaneous action across career, legal, " +
			"financial, and social dimensions. Government support is substantial but fragmented " +
			"across 50+ ministries. This plan helps you navigate the ecosystem and take " +
			"immediate, concrete steps regardless of where you are starting from.",
		Subgoals: []models.Subgoal{
			{ID: 1, Subgoal: "Assess your current position on 4 pillars: career, legal rights, finances, and support network", Why: "You cannot plan what you cannot measure; a clear baseline reveals where to act first", Timeline: "Day 1"},
			{ID: 2, Subgoal: "Identify and connect with one government support structure in your area", Why: "Mahila Police Volunteers, District Legal Services Authority, and Women's Help Desks are free and underutilised", Timeline: "Week 1"},
			{ID: 3, Subgoal: "Set up basic financial independence: own bank account, savings habit, basic insurance", Why: "Financial autonomy is the foundation; it gives you options in every other domain", Timeline: "Week 2"},
			{ID: 4, Subgoal: "Know your top 3 legal rights as a woman and how to exercise them", Why: "Most violations go unchallenged because women don't know their rights are being violated", Timeline: "Week 1"},
		},
		ImmediateActions: []models.ImmediateAction{
			{Action: "Call the Women's Helpline 181 to understand what government support is available in your district", Resource: "181 (nationwide, free, 24/7)", ExpectedOutcome: "Awareness of local resources and immediate support if needed"},
			{Action: "Register on MyScheme.gov.in with your Aadhaar to see all government schemes you are eligible for", Resource: "myscheme.gov.in", ExpectedOutcome: "Personalised list of 10-50 government schemes you can apply for right now"},
			{Action: "Open a Mahila Samman Savings Certificate at your post office for guaranteed 7.5% returns", Resource: "India Post nearest branch", ExpectedOutcome: "Savings growing at higher rate than any bank FD, in your name"},
		},
		Roadmap: []models.RoadmapPhase{
			{Phase: "30 Days", Focus: "Foundation: know your rights, open your accounts, connect with support", Milestones: []string{"MyScheme eligibility check done", "Bank account in own name", "181 helpline contact noted", "Top legal rights understood"}, ResourcesNeeded: []string{"Aadhaar", "MyScheme portal", "India Post"}},
			{Phase: "60 Days", Focus: "Growth: apply to relevant schemes, build income, start investing", Milestones: []string{"1-2 scheme applications submitted", "Skill course enrolled", "SIP started at any amount"}, ResourcesNeeded: []string{"NSP scholarships portal", "PMKVY", "Groww/Zerodha"}},
			{Phase: "90 Days", Focus: "Independence: career growth, financial buffer, legal literacy", Milestones: []string{"Emergency fund started", "Career next step defined", "Network of 3+ mentors or peers built"}, ResourcesNeeded: []string{"Sheroes community", "LinkedIn", "NALSA free legal aid"}},
		},
		KeyResources: withShared(
			models.Resource{Name: "Women's Helpline 181", Type: "Contact", URLOrContact: "181", HowItHelps: "24/7 free helpline connecting women to police, legal aid, shelter, and counselling"},
			models.Resource{Name: "NALSA Free Legal Services", Type: "Contact", URLOrContact: "nalsa.gov.in / 15100", HowItHelps: "Free legal advice and representation for women"},
			models.Resource{Name: "Sheroes Women's Community", Type: "Platform", URLOrContact: "sheroes.com", HowItHelps: "Peer support, mentors, jobs, and resources for women at every stage"},
		),
		RiskMitigation: []models.Risk{
			{Risk: "Overwhelmed by too many options", Mitigation: "Pick ONE action from immediate_actions and complete it today. Momentum matters more than comprehensiveness."},
			{Risk: "Family or social resistance", Mitigation: "Start with actions that are private and don't require permission: bank account, online learning, helpline calls."},
			{Risk: "Geographic barriers (rural areas)", Mitigation: "181, NALSA, and MyScheme all work via phone. Post office and PSU bank branches exist in every taluka."},
		},
		SuccessMetrics: []string{
			"MyScheme eligibility check completed within 3 days",
			"At least one government scheme applied to within 30 days",
			"Financial account in own name opened within 7 days",
			"One concrete next step defined and acted on within the first week",
		},
		ToolInsights: note(),
	},
	{
		Goal:   "Building a personal support and safety net from scratch",
		Domain: "general",
		ExecutiveSummary: "A durable safety net has four layers: emergency contacts, financial buffer, legal " +
			"awareness, and a peer network. This plan builds each layer with free, immediately " +
			"accessible resources so that no single setback can cascade.",
		SituationAnalysis: "Women navigating difficult transitions (relocation, separation, job loss) often " +
			"lack a pre-built support structure. Government helplines, One Stop Centres, and " +
			"community platforms provide institutional backstops that work even without family " +
			"support, but only if set up before a crisis hits.",
		Subgoals: []models.Subgoal{
			{ID: 1, Subgoal: "Save the three critical helplines and locate your district One Stop Centre", Why: "In a crisis, looking up numbers costs time you may not have", Timeline: "Today"},
			{ID: 2, Subgoal: "Build a starter emergency fund of one month's expenses", Why: "A small buffer converts emergencies from catastrophes into inconveniences", Timeline: "Months 1-3"},
			{ID: 3, Subgoal: "Join one women's peer community online or locally", Why: "Peer networks surface jobs, housing, and advice no portal can", Timeline: "Week 1"},
		},
		ImmediateActions: []models.ImmediateAction{
			{Action: "Save 181 (Women's Helpline), 112 (Emergency), and 15100 (Legal Aid) in your phone under quick dial", Resource: "Phone contacts", ExpectedOutcome: "Instant access to institutional support in any situation"},
			{Action: "Find your district's One Stop Centre (Sakhi Centre) address", Resource: "wcd.nic.in / district collectorate", ExpectedOutcome: "Known physical refuge offering shelter, legal, medical, and police facilitation"},
			{Action: "Open a recurring deposit of any amount at your bank or post office", Resource: "Bank / India Post", ExpectedOutcome: "Automatic emergency fund accumulation without willpower"},
		},
		Roadmap: []models.RoadmapPhase{
			{Phase: "30 Days", Focus: "Contacts and accounts", Milestones: []string{"Helplines saved", "One Stop Centre located", "RD started"}, ResourcesNeeded: []string{"Phone", "Bank account"}},
			{Phase: "60 Days", Focus: "Community", Milestones: []string{"Peer community joined", "Two trusted local contacts identified"}, ResourcesNeeded: []string{"Sheroes / local groups"}},
			{Phase: "90 Days", Focus: "Consolidation", Milestones: []string{"One month expenses saved", "Documents (Aadhaar, certificates) digitised in DigiLocker"}, ResourcesNeeded: []string{"digilocker.gov.in"}},
		},
		KeyResources: withShared(
			models.Resource{Name: "One Stop Centre (Sakhi)", Type: "Contact", URLOrContact: "wcd.nic.in", HowItHelps: "District-level integrated support: shelter, legal aid, medical help, police facilitation"},
			models.Resource{Name: "DigiLocker", Type: "Platform", URLOrContact: "digilocker.gov.in", HowItHelps: "Government document wallet so critical papers are never lost or withheld"},
		),
		RiskMitigation: []models.Risk{
			{Risk: "Crisis hits before the net is built", Mitigation: "The helpline layer takes one day; do it first. 181 and One Stop Centres work regardless of preparation."},
			{Risk: "Savings repeatedly raided for household needs", Mitigation: "Use a recurring deposit with a lock-in rather than a savings balance; friction protects the fund."},
		},
		SuccessMetrics: []string{
			"All three helplines saved today",
			"One Stop Centre address known within 7 days",
			"One month expense buffer within 90 days",
		},
		ToolInsights: note(),
	},
}
