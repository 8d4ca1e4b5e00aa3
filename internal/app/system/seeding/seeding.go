// Package seeding creates the default documents a fresh install needs:
// per-page SEO and content, company and theme settings, and an admin
// account. Every task is idempotent and only writes when the target
// document does not exist yet.
package seeding

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	companystore "github.com/meridian-compliance/meridian/internal/app/store/companysettings"
	pagesettingsstore "github.com/meridian-compliance/meridian/internal/app/store/pagesettings"
	pageseostore "github.com/meridian-compliance/meridian/internal/app/store/pageseo"
	themestore "github.com/meridian-compliance/meridian/internal/app/store/themesettings"
	userstore "github.com/meridian-compliance/meridian/internal/app/store/users"
	"github.com/meridian-compliance/meridian/internal/app/system/authutil"
	"github.com/meridian-compliance/meridian/internal/domain/models"
)

// Task is one named seeding step.
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

// Result records the outcome of one task.
type Result struct {
	Name string
	Err  error
}

// Summary aggregates a full seeding run.
type Summary struct {
	Total   int
	Failed  int
	Results []Result
}

// RunAll executes every task in order, continuing past failures so one
// broken seed does not block the rest. The summary reports which tasks
// failed; callers decide whether that is fatal.
func RunAll(ctx context.Context, logger *zap.Logger, tasks []Task) Summary {
	summary := Summary{Total: len(tasks)}

	for _, task := range tasks {
		err := task.Run(ctx)
		summary.Results = append(summary.Results, Result{Name: task.Name, Err: err})
		if err != nil {
			summary.Failed++
			logger.Error("seed task failed",
				zap.String("task", task.Name),
				zap.Error(err))
			continue
		}
		logger.Info("seed task completed", zap.String("task", task.Name))
	}

	return summary
}

// AdminSeed holds the credentials for the initial admin account.
type AdminSeed struct {
	FullName string
	Email    string
	Password string
}

// Tasks returns the standard seeding tasks for a database.
func Tasks(db *mongo.Database, admin AdminSeed) []Task {
	return []Task{
		{Name: "page-seo", Run: func(ctx context.Context) error {
			return seedPageSEO(ctx, db)
		}},
		{Name: "page-settings", Run: func(ctx context.Context) error {
			return seedPageSettings(ctx, db)
		}},
		{Name: "company-settings", Run: func(ctx context.Context) error {
			return seedCompanySettings(ctx, db)
		}},
		{Name: "theme-settings", Run: func(ctx context.Context) error {
			return seedThemeSettings(ctx, db)
		}},
		{Name: "admin-user", Run: func(ctx context.Context) error {
			return seedAdminUser(ctx, db, admin)
		}},
	}
}

// defaultPageSEO is the starting SEO document for each public page.
// The dashboard editor takes over from here.
var defaultPageSEO = map[string]models.PageSEO{
	models.PageKeyHome: {
		MetaTitle:       "Meridian Compliance | Compliance, handled.",
		MetaDescription: "Meridian Compliance helps growing companies reach and maintain SOC 2, ISO 27001, and HIPAA compliance without slowing down.",
		Keywords:        "compliance, SOC 2, ISO 27001, HIPAA, audit readiness",
	},
	models.PageKeyAbout: {
		MetaTitle:       "About Us | Meridian Compliance",
		MetaDescription: "Learn who we are and why we started Meridian Compliance.",
		Keywords:        "about, compliance consultants",
	},
	models.PageKeyTeam: {
		MetaTitle:       "Our Team | Meridian Compliance",
		MetaDescription: "Meet the auditors and engineers behind Meridian Compliance.",
		Keywords:        "team, compliance experts",
	},
	models.PageKeyServices: {
		MetaTitle:       "Services | Meridian Compliance",
		MetaDescription: "Audit readiness, gap assessments, and continuous compliance services.",
		Keywords:        "services, audit readiness, gap assessment",
	},
	models.PageKeyBlog: {
		MetaTitle:       "Blog | Meridian Compliance",
		MetaDescription: "Practical guidance on security frameworks, audits, and compliance operations.",
		Keywords:        "blog, compliance, security",
	},
	models.PageKeyContact: {
		MetaTitle:       "Contact | Meridian Compliance",
		MetaDescription: "Get in touch with the Meridian Compliance team.",
		Keywords:        "contact, compliance help",
	},
}

func seedPageSEO(ctx context.Context, db *mongo.Database) error {
	store := pageseostore.New(db)

	for _, key := range models.AllPageKeys() {
		existing, err := store.GetByPageKey(ctx, key)
		if err != nil {
			return fmt.Errorf("check %s: %w", key, err)
		}
		if existing != nil {
			continue
		}

		seo := defaultPageSEO[key]
		seo.PageKey = key
		if err := store.Upsert(ctx, seo); err != nil {
			return fmt.Errorf("seed %s: %w", key, err)
		}
		zap.L().Info("seeded page seo", zap.String("page_key", key))
	}
	return nil
}

// defaultPageSettings gives each page enough starter content to render.
func defaultPageSettings() []models.PageSettings {
	return []models.PageSettings{
		{
			PageKey: models.PageKeyHome,
			Hero: &models.HeroSection{
				Eyebrow:  "Compliance, handled.",
				Title:    "Reach audit readiness without slowing down",
				Subtitle: "We take SOC 2, ISO 27001, and HIPAA off your plate so your team can keep shipping.",
			},
			Stats: []models.Stat{
				{Value: "7+", Label: "Years of audit experience"},
				{Value: "120+", Label: "Audits passed"},
				{Value: "98%", Label: "First-attempt pass rate"},
			},
			Values: []models.ValueItem{
				{Icon: "shield", Title: "Audit readiness", Description: "Know exactly where you stand before the auditor does."},
				{Icon: "clipboard", Title: "Gap assessments", Description: "A prioritized, practical remediation plan, not a wall of findings."},
				{Icon: "refresh", Title: "Continuous compliance", Description: "Stay compliant between audits, not just during them."},
			},
			CTA: &models.CTASection{
				Title:    "Ready to get compliant?",
				Subtitle: "Talk to us about your next audit.",
				Buttons: []models.CTAButton{
					{Text: "Get in touch", Link: "/contact"},
					{Text: "Our services", Link: "/services"},
				},
			},
		},
		{
			PageKey: models.PageKeyAbout,
			Hero: &models.HeroSection{
				Title:    "About Meridian Compliance",
				Subtitle: "We started Meridian because compliance should enable growth, not block it.",
			},
			Founders: &models.FoundersSection{
				Heading: "Who We Are",
				Intro:   "A team of former auditors and engineers who have sat on both sides of the table.",
			},
		},
		{
			PageKey: models.PageKeyTeam,
			Hero: &models.HeroSection{
				Title:    "Our Team",
				Subtitle: "Auditors, engineers, and program managers who live this work.",
			},
		},
		{
			PageKey: models.PageKeyServices,
			Hero: &models.HeroSection{
				Title:    "Services",
				Subtitle: "From first gap assessment to continuous compliance.",
			},
		},
		{
			PageKey: models.PageKeyBlog,
			Hero: &models.HeroSection{
				Title:    "Blog",
				Subtitle: "Practical guidance on frameworks, audits, and compliance operations.",
			},
		},
		{
			PageKey: models.PageKeyContact,
			Hero: &models.HeroSection{
				Title:    "Contact Us",
				Subtitle: "Tell us where you are and where you need to be.",
			},
			Contact: &models.ContactSection{
				Heading: "Get in touch",
				Email:   "hello@meridiancompliance.com",
			},
		},
	}
}

func seedPageSettings(ctx context.Context, db *mongo.Database) error {
	store := pagesettingsstore.New(db)

	for _, settings := range defaultPageSettings() {
		existing, err := store.GetByPageKey(ctx, settings.PageKey)
		if err != nil {
			return fmt.Errorf("check %s: %w", settings.PageKey, err)
		}
		if existing != nil {
			continue
		}
		if err := store.Upsert(ctx, settings); err != nil {
			return fmt.Errorf("seed %s: %w", settings.PageKey, err)
		}
		zap.L().Info("seeded page settings", zap.String("page_key", settings.PageKey))
	}
	return nil
}

func seedCompanySettings(ctx context.Context, db *mongo.Database) error {
	store := companystore.New(db)

	exists, err := store.Exists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return store.Save(ctx, models.CompanySettings{
		CompanyName: models.DefaultCompanyName,
		Tagline:     models.DefaultTagline,
		FooterHTML:  models.DefaultFooterHTML,
	})
}

func seedThemeSettings(ctx context.Context, db *mongo.Database) error {
	store := themestore.New(db)

	exists, err := store.Exists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return store.Save(ctx, models.ThemeSettings{
		PrimaryColor:   models.DefaultPrimaryColor,
		SecondaryColor: models.DefaultSecondaryColor,
		AccentColor:    models.DefaultAccentColor,
	})
}

func seedAdminUser(ctx context.Context, db *mongo.Database, admin AdminSeed) error {
	if admin.Email == "" || admin.Password == "" {
		return fmt.Errorf("admin email and password are required")
	}
	if admin.FullName == "" {
		admin.FullName = "Administrator"
	}

	hash, err := authutil.HashPassword(admin.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	created, err := userstore.New(db).EnsureAdmin(ctx, admin.FullName, admin.Email, hash)
	if err != nil {
		return err
	}
	if created {
		zap.L().Info("seeded admin user", zap.String("email", admin.Email))
	}
	return nil
}
