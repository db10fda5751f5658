package seeder

import (
	"context"

	"skillmatrix/internal/domain/skill"
)

var demoSkills = []skill.Skill{
	{ID: "skill-1", Name: "React", Description: "A JavaScript library for building user interfaces", Category: "Frontend"},
	{ID: "skill-2", Name: "TypeScript", Description: "A strongly typed programming language that builds on JavaScript", Category: "Programming Language"},
	{ID: "skill-3", Name: "C#", Description: "A modern object-oriented programming language", Category: "Backend"},
	{ID: "skill-4", Name: "Azure SQL", Description: "Microsoft cloud database solution", Category: "Database"},
	{ID: "skill-5", Name: "Tailwind CSS", Description: "A utility-first CSS framework", Category: "Frontend"},
	{ID: "skill-6", Name: "Entity Framework", Description: "An ORM framework for .NET applications", Category: "Backend"},
	{ID: "skill-7", Name: "REST API Design", Description: "Designing RESTful APIs", Category: "Backend"},
	{ID: "skill-8", Name: "HATEOAS", Description: "Hypermedia as the Engine of Application State", Category: "API Design"},
}

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, store skill.Store) error {
	repo := store.Skills()
	for _, s := range demoSkills {
		s := s
		err := createMissing(ctx,
			func(ctx context.Context) error { _, err := repo.GetByID(ctx, s.ID); return err },
			func(ctx context.Context) error { return repo.Create(ctx, s) },
		)
		if err != nil {
			return err
		}
	}
	return nil
}
