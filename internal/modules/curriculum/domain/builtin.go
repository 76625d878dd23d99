package domain

import (
	"fmt"
	"time"
)

// DefaultPlan returns the built-in 30-day cybersecurity sprint curriculum
// anchored at start. A shorter sprint truncates the table; a longer one needs
// a plan file, since the table cannot invent tasks.
func DefaultPlan(start time.Time, totalDays int) (Plan, error) {
	days := builtinDays()
	if totalDays < 1 || totalDays > len(days) {
		return Plan{}, fmt.Errorf("built-in plan covers 1..%d days, got %d; provide a plan file for longer sprints", len(days), totalDays)
	}
	return Plan{StartDate: start, Days: days[:totalDays]}, nil
}

func day(n int, tasks ...Task) Day {
	return Day{Number: n, Tasks: tasks}
}

func task(category, description string) Task {
	return Task{Description: description, Category: category}
}

// The daily table below is sized for roughly two focused hours per day:
// about an hour of cert coursework, half an hour of exam prep, half an hour
// of labs, with job-search touches folded into lighter days.
func builtinDays() []Day {
	return []Day{
		// Week 1: foundations and initial momentum.
		day(1,
			task(CategoryGoogleCert, "Foundations of Cybersecurity (Course 1) - Week 1, Module 1"),
			task(CategorySecurityPlus, "Professor Messer SY0-701 (Videos 1-5) - Threats, Attacks, Vulnerabilities"),
			task(CategoryTryHackMe, "Pre-Security Path - Intro to Cyber Security (Complete)"),
			task(CategoryJobSearch, "Update LinkedIn profile summary"),
		),
		day(2,
			task(CategoryGoogleCert, "Foundations of Cybersecurity (Course 1) - Week 1, Module 2"),
			task(CategorySecurityPlus, "Professor Messer SY0-701 (Videos 6-10) - Threats, Attacks, Vulnerabilities"),
			task(CategoryTryHackMe, "Pre-Security Path - Network Fundamentals (Complete)"),
		),
		day(3,
			task(CategoryGoogleCert, "Foundations of Cybersecurity (Course 1) - Week 2, Module 1"),
			task(CategorySecurityPlus, "Professor Messer SY0-701 (Videos 11-15) - Threats, Attacks, Vulnerabilities"),
			task(CategoryTryHackMe, "Pre-Security Path - Linux Fundamentals Part 1 (Complete)"),
		),
		day(4,
			task(CategoryGoogleCert, "Foundations of Cybersecurity (Course 1) - Week 2, Module 2 (Aim to finish Course 1)"),
			task(CategorySecurityPlus, "Professor Messer SY0-701 (Videos 16-20) - Threats, Attacks, Vulnerabilities"),
			task(CategoryTryHackMe, "Pre-Security Path - Windows Fundamentals 1 (Complete)"),
		),
		day(5,
			task(CategoryGoogleCert, "Play It Safe: Manage Security Risks (Course 2) - Week 1, Module 1"),
			task(CategorySecurityPlus, "Review Domain 1 & practice questions"),
			task(CategoryTryHackMe, "Pre-Security Path - Linux Fundamentals Part 2 (Complete)"),
			task(CategoryJobSearch, "Identify 2-3 target companies/roles"),
		),
		day(6,
			task(CategoryGoogleCert, "Play It Safe: Manage Security Risks (Course 2) - Week 1, Module 2"),
			task(CategorySecurityPlus, "Professor Messer SY0-701 (Videos 21-25) - Architecture & Design"),
			task(CategoryTryHackMe, "Pre-Security Path - Windows Fundamentals 2 (Complete)"),
		),
		day(7,
			task(CategoryGoogleCert, "Play It Safe: Manage Security Risks (Course 2) - Week 2, Module 1 (Aim to finish Course 2)"),
			task(CategorySecurityPlus, "Professor Messer SY0-701 (Videos 26-30) - Architecture & Design"),
			task(CategoryTryHackMe, "Intro to Cyber Defense (Complete)"),
			task(CategoryReview, "Weekly Review: Catch-up on any missed tasks"),
		),
		// Week 2: deep dive and practical application.
		day(8,
			task(CategoryGoogleCert, "Protect Company Assets (Course 3) - Week 1, Module 1"),
			task(CategorySecurityPlus, "Professor Messer SY0-701 (Videos 31-35) - Implementation"),
			task(CategoryTryHackMe, "SOC Level 1 Path - Blue Team (Part 1)"),
			task(CategoryJobSearch, "Apply to 1 entry-level job"),
		),
		day(9,
			task(CategoryGoogleCert, "Protect Company Assets (Course 3) - Week 1, Module 2"),
			task(CategorySecurityPlus, "Professor Messer SY0-701 (Videos 36-40) - Implementation"),
			task(CategoryTryHackMe, "SOC Level 1 Path - Blue Team (Part 2)"),
		),
		day(10,
			task(CategoryGoogleCert, "Protect Company Assets (Course 3) - Week 2, Module 1 (Aim to finish Course 3)"),
			task(CategorySecurityPlus, "Review Domains 2 & 3 & practice questions"),
			task(CategoryTryHackMe, "SOC Level 1 Path - Investigating Windows (Part 1)"),
		),
		day(11,
			task(CategoryGoogleCert, "Become a Cybersecurity Analyst (Course 4) - Week 1, Module 1"),
			task(CategorySecurityPlus, "Professor Messer SY0-701 (Videos 41-45) - Operations & Incident Response"),
			task(CategoryTryHackMe, "SOC Level 1 Path - Investigating Windows (Part 2)"),
		),
		day(12,
			task(CategoryGoogleCert, "Become a Cybersecurity Analyst (Course 4) - Week 1, Module 2"),
			task(CategorySecurityPlus, "Professor Messer SY0-701 (Videos 46-50) - Operations & Incident Response"),
			task(CategoryTryHackMe, "SOC Level 1 Path - Investigating Linux (Part 1)"),
			task(CategoryJobSearch, "Network on LinkedIn (connect with 2-3 professionals)"),
		),
		day(13,
			task(CategoryGoogleCert, "Become a Cybersecurity Analyst (Course 4) - Week 2, Module 1 (Aim to finish Course 4)"),
			task(CategorySecurityPlus, "Professor Messer SY0-701 (Videos 51-55) - Governance, Risk, Compliance"),
			task(CategoryTryHackMe, "SOC Level 1 Path - Investigating Linux (Part 2)"),
		),
		day(14,
			task(CategoryGoogleCert, "Blue Team Practices (Course 5) - Week 1, Module 1"),
			task(CategorySecurityPlus, "Professor Messer SY0-701 (Videos 56-60) - Governance, Risk, Compliance"),
			task(CategoryTryHackMe, "SOC Level 1 Path - Investigating with Splunk (Part 1)"),
			task(CategoryReview, "Weekly Review: Catch-up on any missed tasks"),
		),
		// Week 3: incident response and governance.
		day(15,
			task(CategoryGoogleCert, "Blue Team Practices (Course 5) - Week 1, Module 2"),
			task(CategorySecurityPlus, "Review all domains & take a short practice quiz"),
			task(CategoryTryHackMe, "SOC Level 1 Path - Investigating with Splunk (Part 2)"),
			task(CategoryJobSearch, "Apply to 1 entry-level job"),
		),
		day(16,
			task(CategoryGoogleCert, "Blue Team Practices (Course 5) - Week 2, Module 1 (Aim to finish Course 5)"),
			task(CategorySecurityPlus, "Focus on weak areas identified from quiz/review"),
			task(CategoryTryHackMe, "SOC Level 1 Path - Investigating with Splunk (Part 3)"),
		),
		day(17,
			task(CategoryGoogleCert, "Respond to Threats and Defend Systems (Course 6) - Week 1, Module 1"),
			task(CategorySecurityPlus, "Professor Messer SY0-701 (Videos 61-65) - General Review/Deep Dive"),
			task(CategoryTryHackMe, "SOC Level 1 Path - Investigating with Splunk (Part 4)"),
		),
		day(18,
			task(CategoryGoogleCert, "Respond to Threats and Defend Systems (Course 6) - Week 1, Module 2"),
			task(CategorySecurityPlus, "Professor Messer SY0-701 (Videos 66-70) - General Review/Deep Dive"),
			task(CategoryTryHackMe, "SOC Level 1 Path - Investigating with Splunk (Part 5)"),
			task(CategoryJobSearch, "Research visa sponsorship policies of potential employers"),
		),
		day(19,
			task(CategoryGoogleCert, "Respond to Threats and Defend Systems (Course 6) - Week 2, Module 1 (Aim to finish Course 6)"),
			task(CategorySecurityPlus, "Take a full practice exam (or compile questions)"),
			task(CategoryTryHackMe, "SOC Level 1 Path - Investigating with Splunk (Part 6)"),
		),
		day(20,
			task(CategoryGoogleCert, "Automate Cybersecurity Tasks with Python (Course 7) - Week 1, Module 1"),
			task(CategorySecurityPlus, "Review practice exam results, identify weakest domain"),
			task(CategoryTryHackMe, "SOC Level 1 Path - Investigating with Splunk (Part 7)"),
		),
		day(21,
			task(CategoryGoogleCert, "Automate Cybersecurity Tasks with Python (Course 7) - Week 1, Module 2 (Aim to finish Course 7)"),
			task(CategorySecurityPlus, "Deep dive into weakest Security+ domain"),
			task(CategoryTryHackMe, "SOC Level 1 Path - Investigating with Splunk (Part 8)"),
			task(CategoryReview, "Weekly Review: Catch-up on any missed tasks"),
		),
		// Week 4: certification finalization and job-search acceleration.
		day(22,
			task(CategoryGoogleCert, "Capstone: Apply Your Skills (Course 8) - Week 1, Module 1"),
			task(CategorySecurityPlus, "Practice performance-based question (PBQ) concepts"),
			task(CategoryTryHackMe, "Explore a room related to your weakest Security+ domain"),
			task(CategoryJobSearch, "Apply to 2 entry-level jobs"),
		),
		day(23,
			task(CategoryGoogleCert, "Capstone: Apply Your Skills (Course 8) - Week 1, Module 2"),
			task(CategorySecurityPlus, "Final review of all Professor Messer videos (skim weak areas)"),
			task(CategoryTryHackMe, "Complete a new room from the Cyber Defense or Security Engineer path"),
		),
		day(24,
			task(CategoryGoogleCert, "Capstone: Apply Your Skills (Course 8) - Week 2, Module 1 (Aim to finish Course 8 & the cert!)"),
			task(CategorySecurityPlus, "Take another full practice exam"),
			task(CategoryTryHackMe, "Re-do a room you found challenging for mastery"),
		),
		day(25,
			task(CategoryGoogleCert, "Review all cert material for final understanding"),
			task(CategorySecurityPlus, "Review practice exam results & last-minute weak points"),
			task(CategoryTryHackMe, "Complete a new room or an easy CTF challenge"),
			task(CategoryJobSearch, "Tailor resume/cover letter for specific roles"),
		),
		day(26,
			task(CategoryGoogleCert, "Consolidate notes and key concepts from all courses"),
			task(CategorySecurityPlus, "Quick review of all Security+ domains"),
			task(CategoryTryHackMe, "Explore a new tool or concept (Nmap basics, Wireshark basics)"),
		),
		day(27,
			task(CategoryGoogleCert, "Prepare for final assessments or project submissions"),
			task(CategorySecurityPlus, "Final review of acronyms and port numbers"),
			task(CategoryTryHackMe, "Complete a room on the topic you enjoyed most"),
			task(CategoryJobSearch, "Apply to 2 more entry-level jobs"),
		),
		day(28,
			task(CategoryGoogleCert, "Celebrate cert completion!"),
			task(CategorySecurityPlus, "Take one last comprehensive practice exam (if time allows)"),
			task(CategoryTryHackMe, "Revisit a foundational room to solidify knowledge"),
		),
		day(29,
			task(CategoryReview, "Sprint Review: Summarize key learnings from the cert & Security+"),
			task(CategoryTryHackMe, "Document your favorite rooms/learnings"),
			task(CategoryFuturePlanning, "Research next steps for the Security+ exam & advanced studies"),
		),
		day(30,
			task(CategoryReview, "Sprint Retrospective: What went well, what to improve?"),
			task(CategoryJobSearch, "Update resume/LinkedIn with new certifications and skills"),
			task(CategoryJobSearch, "Send thank-you notes/follow-ups to connections made"),
			task(CategoryMotivation, "Celebrate your 30-day sprint achievement!"),
		),
	}
}
