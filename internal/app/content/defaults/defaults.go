// Package defaults merges a possibly-nil page settings document with
// per-page default content, producing a fully populated view record.
// Nothing downstream sees a nil section or an empty required field; an
// editor clearing a field simply surfaces the default again.
package defaults

import (
	"github.com/meridian-compliance/meridian/internal/domain/models"
)

// Hero is the fully populated banner section.
type Hero struct {
	Eyebrow  string
	Title    string
	Subtitle string
	Image    string
}

// Stat is one entry in the statistics strip.
type Stat struct {
	Value string
	Label string
}

// Value is a card in the values grid. Icon has been resolved through
// the icon table and is always a known name.
type Value struct {
	Icon        string
	Title       string
	Description string
}

// Button is a call-to-action link.
type Button struct {
	Text string
	Link string
}

// CTA is the closing call-to-action band with a normalized button list.
type CTA struct {
	Title    string
	Subtitle string
	Buttons  []Button
}

// Founder is one team member biography.
type Founder struct {
	Name  string
	Title string
	Bio   string
	Photo string
}

// Founders introduces the team.
type Founders struct {
	Heading string
	Intro   string
	Members []Founder
}

// FAQItem is one question/answer pair.
type FAQItem struct {
	Question string
	Answer   string
}

// FAQ is a heading plus ordered Q&A entries.
type FAQ struct {
	Heading string
	Items   []FAQItem
}

// Contact holds the contact details block.
type Contact struct {
	Heading string
	Email   string
	Phone   string
	Address string
}

// HomeView is everything the home page renders.
type HomeView struct {
	Hero   Hero
	Stats  []Stat
	Values []Value
	CTA    CTA
}

// AboutView is everything the about page renders.
type AboutView struct {
	Hero     Hero
	Founders Founders
	Values   []Value
	CTA      CTA
}

// TeamView is everything the team page renders.
type TeamView struct {
	Hero     Hero
	Founders Founders
}

// ServicesView is the static framing of the services listing page.
type ServicesView struct {
	Hero Hero
	CTA  CTA
}

// BlogView is the static framing of the blog listing page.
type BlogView struct {
	Hero Hero
}

// ContactView is everything the contact page renders.
type ContactView struct {
	Hero    Hero
	Contact Contact
	FAQ     FAQ
}

// Home merges the home page settings with defaults.
func Home(s *models.PageSettings) HomeView {
	view := HomeView{
		Hero: Hero{
			Eyebrow:  "Compliance, handled.",
			Title:    "Reach audit readiness without slowing down",
			Subtitle: "We take SOC 2, ISO 27001, and HIPAA off your plate so your team can keep shipping.",
		},
		Stats: []Stat{
			{Value: "7+", Label: "Years of audit experience"},
			{Value: "120+", Label: "Audits passed"},
			{Value: "98%", Label: "First-attempt pass rate"},
		},
		Values: []Value{
			{Icon: "shield", Title: "Audit readiness", Description: "Know exactly where you stand before the auditor does."},
			{Icon: "clipboard", Title: "Gap assessments", Description: "A prioritized, practical remediation plan."},
			{Icon: "refresh", Title: "Continuous compliance", Description: "Stay compliant between audits, not just during them."},
		},
		CTA: CTA{
			Title:    "Ready to get compliant?",
			Subtitle: "Talk to us about your next audit.",
			Buttons: []Button{
				{Text: "Get in touch", Link: "/contact"},
				{Text: "Our services", Link: "/services"},
			},
		},
	}
	if s == nil {
		return view
	}

	view.Hero = mergeHero(s.Hero, view.Hero)
	view.Stats = mergeStats(s.Stats, view.Stats)
	view.Values = mergeValues(s.Values, view.Values)
	view.CTA = mergeCTA(s.CTA, view.CTA)
	return view
}

// About merges the about page settings with defaults.
func About(s *models.PageSettings) AboutView {
	view := AboutView{
		Hero: Hero{
			Title:    "About Meridian Compliance",
			Subtitle: "We started Meridian because compliance should enable growth, not block it.",
		},
		Founders: Founders{
			Heading: "Who We Are",
			Intro:   "A team of former auditors and engineers who have sat on both sides of the table.",
		},
		Values: []Value{
			{Icon: "handshake", Title: "Straight answers", Description: "No audit theater. We tell you what matters and what can wait."},
			{Icon: "chart", Title: "Evidence over opinion", Description: "Every recommendation traces to a control and a finding."},
			{Icon: "globe", Title: "Built for growth", Description: "Programs that scale with your company, not against it."},
		},
		CTA: CTA{
			Title:    "Work with us",
			Subtitle: "See how we can help your next audit.",
			Buttons: []Button{
				{Text: "Get in touch", Link: "/contact"},
			},
		},
	}
	if s == nil {
		return view
	}

	view.Hero = mergeHero(s.Hero, view.Hero)
	view.Founders = mergeFounders(s.Founders, view.Founders)
	view.Values = mergeValues(s.Values, view.Values)
	view.CTA = mergeCTA(s.CTA, view.CTA)
	return view
}

// Team merges the team page settings with defaults.
func Team(s *models.PageSettings) TeamView {
	view := TeamView{
		Hero: Hero{
			Title:    "Our Team",
			Subtitle: "Auditors, engineers, and program managers who live this work.",
		},
		Founders: Founders{
			Heading: "Who We Are",
		},
	}
	if s == nil {
		return view
	}

	view.Hero = mergeHero(s.Hero, view.Hero)
	view.Founders = mergeFounders(s.Founders, view.Founders)
	return view
}

// Services merges the services page settings with defaults.
func Services(s *models.PageSettings) ServicesView {
	view := ServicesView{
		Hero: Hero{
			Title:    "Services",
			Subtitle: "From first gap assessment to continuous compliance.",
		},
		CTA: CTA{
			Title:    "Not sure where to start?",
			Subtitle: "Tell us where you are and we'll map the shortest path.",
			Buttons: []Button{
				{Text: "Get in touch", Link: "/contact"},
			},
		},
	}
	if s == nil {
		return view
	}

	view.Hero = mergeHero(s.Hero, view.Hero)
	view.CTA = mergeCTA(s.CTA, view.CTA)
	return view
}

// Blog merges the blog page settings with defaults.
func Blog(s *models.PageSettings) BlogView {
	view := BlogView{
		Hero: Hero{
			Title:    "Blog",
			Subtitle: "Practical guidance on frameworks, audits, and compliance operations.",
		},
	}
	if s == nil {
		return view
	}

	view.Hero = mergeHero(s.Hero, view.Hero)
	return view
}

// ContactPage merges the contact page settings with defaults.
func ContactPage(s *models.PageSettings) ContactView {
	view := ContactView{
		Hero: Hero{
			Title:    "Contact Us",
			Subtitle: "Tell us where you are and where you need to be.",
		},
		Contact: Contact{
			Heading: "Get in touch",
			Email:   "hello@meridiancompliance.com",
		},
		FAQ: FAQ{
			Heading: "Frequently asked questions",
			Items: []FAQItem{
				{Question: "How long does a SOC 2 audit take?", Answer: "A Type I typically lands in 6-8 weeks; a Type II observation window runs 3-12 months."},
				{Question: "Do you work with auditors directly?", Answer: "Yes. We coordinate evidence requests and sit in on audit sessions with you."},
			},
		},
	}
	if s == nil {
		return view
	}

	view.Hero = mergeHero(s.Hero, view.Hero)
	view.Contact = mergeContact(s.Contact, view.Contact)
	view.FAQ = mergeFAQ(s.FAQ, view.FAQ)
	return view
}

/* ------------------------------ section merges ---------------------------- */

func mergeHero(stored *models.HeroSection, def Hero) Hero {
	if stored == nil {
		return def
	}
	out := def
	if stored.Eyebrow != "" {
		out.Eyebrow = stored.Eyebrow
	}
	if stored.Title != "" {
		out.Title = stored.Title
	}
	if stored.Subtitle != "" {
		out.Subtitle = stored.Subtitle
	}
	if stored.Image != "" {
		out.Image = stored.Image
	}
	return out
}

func mergeStats(stored []models.Stat, def []Stat) []Stat {
	if len(stored) == 0 {
		return def
	}
	out := make([]Stat, 0, len(stored))
	for _, s := range stored {
		if s.Value == "" && s.Label == "" {
			continue
		}
		out = append(out, Stat{Value: s.Value, Label: s.Label})
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func mergeValues(stored []models.ValueItem, def []Value) []Value {
	if len(stored) == 0 {
		return def
	}
	out := make([]Value, 0, len(stored))
	for _, v := range stored {
		if v.Title == "" && v.Description == "" {
			continue
		}
		out = append(out, Value{
			Icon:        ResolveIcon(v.Icon),
			Title:       v.Title,
			Description: v.Description,
		})
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func mergeFounders(stored *models.FoundersSection, def Founders) Founders {
	if stored == nil {
		return def
	}
	out := def
	if stored.Heading != "" {
		out.Heading = stored.Heading
	}
	if stored.Intro != "" {
		out.Intro = stored.Intro
	}
	if len(stored.Members) > 0 {
		members := make([]Founder, 0, len(stored.Members))
		for _, m := range stored.Members {
			if m.Name == "" {
				continue
			}
			members = append(members, Founder{
				Name:  m.Name,
				Title: m.Title,
				Bio:   m.Bio,
				Photo: m.Photo,
			})
		}
		if len(members) > 0 {
			out.Members = members
		}
	}
	return out
}

func mergeFAQ(stored *models.FAQSection, def FAQ) FAQ {
	if stored == nil {
		return def
	}
	out := def
	if stored.Heading != "" {
		out.Heading = stored.Heading
	}
	if len(stored.Items) > 0 {
		items := make([]FAQItem, 0, len(stored.Items))
		for _, item := range stored.Items {
			if item.Question == "" {
				continue
			}
			items = append(items, FAQItem{Question: item.Question, Answer: item.Answer})
		}
		if len(items) > 0 {
			out.Items = items
		}
	}
	return out
}

// mergeCTA normalizes both stored button shapes into the Buttons slice.
// Documents written before the buttons migration carry flat
// primary_button_*/secondary_button_* fields instead of buttons[].
func mergeCTA(stored *models.CTASection, def CTA) CTA {
	if stored == nil {
		return def
	}
	out := def
	if stored.Title != "" {
		out.Title = stored.Title
	}
	if stored.Subtitle != "" {
		out.Subtitle = stored.Subtitle
	}

	if len(stored.Buttons) > 0 {
		buttons := make([]Button, 0, len(stored.Buttons))
		for _, b := range stored.Buttons {
			if b.Text == "" {
				continue
			}
			buttons = append(buttons, Button{Text: b.Text, Link: b.Link})
		}
		if len(buttons) > 0 {
			out.Buttons = buttons
		}
		return out
	}

	// Legacy flat shape
	var legacy []Button
	if stored.PrimaryButtonText != "" {
		legacy = append(legacy, Button{Text: stored.PrimaryButtonText, Link: stored.PrimaryButtonLink})
	}
	if stored.SecondaryButtonText != "" {
		legacy = append(legacy, Button{Text: stored.SecondaryButtonText, Link: stored.SecondaryButtonLink})
	}
	if len(legacy) > 0 {
		out.Buttons = legacy
	}
	return out
}

func mergeContact(stored *models.ContactSection, def Contact) Contact {
	if stored == nil {
		return def
	}
	out := def
	if stored.Heading != "" {
		out.Heading = stored.Heading
	}
	if stored.Email != "" {
		out.Email = stored.Email
	}
	if stored.Phone != "" {
		out.Phone = stored.Phone
	}
	if stored.Address != "" {
		out.Address = stored.Address
	}
	return out
}
