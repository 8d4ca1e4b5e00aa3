package defaults

import (
	"testing"

	"github.com/meridian-compliance/meridian/internal/domain/models"
)

func TestHome_NilSettings(t *testing.T) {
	view := Home(nil)

	if view.Hero.Title == "" {
		t.Error("nil settings should yield a default hero title")
	}
	if len(view.Stats) == 0 {
		t.Error("nil settings should yield default stats")
	}
	if len(view.Values) == 0 {
		t.Error("nil settings should yield default values")
	}
	if len(view.CTA.Buttons) == 0 {
		t.Error("nil settings should yield default CTA buttons")
	}
}

func TestHome_PartialHero(t *testing.T) {
	view := Home(&models.PageSettings{
		Hero: &models.HeroSection{Title: "Custom Title"},
	})

	if view.Hero.Title != "Custom Title" {
		t.Errorf("Hero.Title = %q, want %q", view.Hero.Title, "Custom Title")
	}
	// Unset fields fall back field-by-field, not section-wide
	if view.Hero.Subtitle == "" {
		t.Error("unset Hero.Subtitle should fall back to the default")
	}
}

func TestHome_EmptyFieldRevealsDefault(t *testing.T) {
	// An editor clearing a field surfaces the default again.
	view := Home(&models.PageSettings{
		Hero: &models.HeroSection{Title: ""},
	})
	if view.Hero.Title == "" {
		t.Error("cleared Hero.Title should surface the default")
	}
}

func TestMergeCTA_ButtonsShape(t *testing.T) {
	view := Home(&models.PageSettings{
		CTA: &models.CTASection{
			Title: "Custom CTA",
			Buttons: []models.CTAButton{
				{Text: "One", Link: "/one"},
				{Text: "Two", Link: "/two"},
			},
		},
	})

	if view.CTA.Title != "Custom CTA" {
		t.Errorf("CTA.Title = %q, want %q", view.CTA.Title, "Custom CTA")
	}
	if len(view.CTA.Buttons) != 2 {
		t.Fatalf("CTA.Buttons = %d entries, want 2", len(view.CTA.Buttons))
	}
	if view.CTA.Buttons[0].Link != "/one" {
		t.Errorf("Buttons[0].Link = %q, want %q", view.CTA.Buttons[0].Link, "/one")
	}
}

func TestMergeCTA_LegacyFlatShape(t *testing.T) {
	view := Home(&models.PageSettings{
		CTA: &models.CTASection{
			PrimaryButtonText:   "Start now",
			PrimaryButtonLink:   "/contact",
			SecondaryButtonText: "Learn more",
			SecondaryButtonLink: "/services",
		},
	})

	if len(view.CTA.Buttons) != 2 {
		t.Fatalf("legacy CTA should normalize to 2 buttons, got %d", len(view.CTA.Buttons))
	}
	if view.CTA.Buttons[0].Text != "Start now" || view.CTA.Buttons[0].Link != "/contact" {
		t.Errorf("Buttons[0] = %+v, want primary button first", view.CTA.Buttons[0])
	}
	if view.CTA.Buttons[1].Text != "Learn more" {
		t.Errorf("Buttons[1].Text = %q, want %q", view.CTA.Buttons[1].Text, "Learn more")
	}
}

func TestMergeCTA_LegacyPrimaryOnly(t *testing.T) {
	view := Home(&models.PageSettings{
		CTA: &models.CTASection{
			PrimaryButtonText: "Go",
			PrimaryButtonLink: "/go",
		},
	})
	if len(view.CTA.Buttons) != 1 {
		t.Fatalf("primary-only legacy CTA should yield 1 button, got %d", len(view.CTA.Buttons))
	}
}

func TestMergeValues_IconResolution(t *testing.T) {
	view := Home(&models.PageSettings{
		Values: []models.ValueItem{
			{Icon: "lock", Title: "Security"},
			{Icon: "no-such-icon", Title: "Mystery"},
			{Icon: "", Title: "Unset"},
		},
	})

	if len(view.Values) != 3 {
		t.Fatalf("Values = %d entries, want 3", len(view.Values))
	}
	if view.Values[0].Icon != "lock" {
		t.Errorf("known icon should pass through, got %q", view.Values[0].Icon)
	}
	if view.Values[1].Icon != DefaultIcon {
		t.Errorf("unknown icon should resolve to %q, got %q", DefaultIcon, view.Values[1].Icon)
	}
	if view.Values[2].Icon != DefaultIcon {
		t.Errorf("empty icon should resolve to %q, got %q", DefaultIcon, view.Values[2].Icon)
	}
}

func TestAbout_FoundersDefaultHeading(t *testing.T) {
	view := About(&models.PageSettings{
		Founders: &models.FoundersSection{
			Members: []models.FounderBio{{Name: "Dana Li", Title: "CEO"}},
		},
	})

	if view.Founders.Heading != "Who We Are" {
		t.Errorf("Founders.Heading = %q, want default %q", view.Founders.Heading, "Who We Are")
	}
	if len(view.Founders.Members) != 1 || view.Founders.Members[0].Name != "Dana Li" {
		t.Errorf("Founders.Members = %+v, want the stored member", view.Founders.Members)
	}
}

func TestContactPage_Merge(t *testing.T) {
	view := ContactPage(&models.PageSettings{
		Contact: &models.ContactSection{Email: "team@example.com"},
		FAQ: &models.FAQSection{
			Items: []models.FAQItem{{Question: "Q1", Answer: "A1"}},
		},
	})

	if view.Contact.Email != "team@example.com" {
		t.Errorf("Contact.Email = %q, want stored value", view.Contact.Email)
	}
	if view.Contact.Heading == "" {
		t.Error("unset Contact.Heading should fall back to the default")
	}
	if len(view.FAQ.Items) != 1 || view.FAQ.Items[0].Question != "Q1" {
		t.Errorf("FAQ.Items = %+v, want the stored item", view.FAQ.Items)
	}
	if view.FAQ.Heading == "" {
		t.Error("unset FAQ.Heading should fall back to the default")
	}
}

func TestResolveIcon(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"shield", "shield"},
		{"chart", "chart"},
		{"bogus", DefaultIcon},
		{"", DefaultIcon},
	}
	for _, tt := range tests {
		if got := ResolveIcon(tt.in); got != tt.want {
			t.Errorf("ResolveIcon(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
