package seeder

import (
	"context"
	"time"

	"skillmatrix/internal/domain/skill"
)

func text(s string) *string { return &s }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var demoVerifications = []skill.Verification{
	{
		ID:               "verification-1",
		PersonSkillID:    "ps-1",
		VerificationType: "ManagerVerification",
		VerifiedBy:       text("Sarah Wilson"),
		Note:             text("Verified based on project performance"),
		VerificationDate: day(2024, time.December, 15),
	},
	{
		ID:               "verification-2",
		PersonSkillID:    "ps-4",
		VerificationType: "CertificationUpload",
		Note:             text("Microsoft Certified C# Developer"),
		CertificationURL: text("https://example.com/certifications/jane-smith-csharp"),
		VerificationDate: day(2024, time.October, 5),
	},
	{
		ID:               "verification-3",
		PersonSkillID:    "ps-10",
		VerificationType: "PeerEndorsement",
		VerifiedBy:       text("John Doe"),
		Note:             text("Collaborated on API design project"),
		VerificationDate: day(2025, time.January, 20),
	},
}

type VerificationsSeeder struct{}

func (VerificationsSeeder) Name() string { return "verifications" }

func (VerificationsSeeder) Run(ctx context.Context, store skill.Store) error {
	repo := store.Verifications()
	for _, v := range demoVerifications {
		v := v
		err := createMissing(ctx,
			func(ctx context.Context) error { _, err := repo.GetByID(ctx, v.ID); return err },
			func(ctx context.Context) error { return repo.Create(ctx, v) },
		)
		if err != nil {
			return err
		}
	}
	return nil
}
