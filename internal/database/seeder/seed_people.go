package seeder

import (
	"context"

	"skillmatrix/internal/domain/skill"
)

func photo(url string) *string { return &url }

var demoPeople = []skill.Person{
	{ID: "person-1", FirstName: "John", LastName: "Doe", JobTitle: "Senior Frontend Developer", Department: "Engineering", Email: "john.doe@example.com", PhotoURL: photo("https://randomuser.me/api/portraits/men/1.jpg")},
	{ID: "person-2", FirstName: "Jane", LastName: "Smith", JobTitle: "Backend Developer", Department: "Engineering", Email: "jane.smith@example.com", PhotoURL: photo("https://randomuser.me/api/portraits/women/2.jpg")},
	{ID: "person-3", FirstName: "Mike", LastName: "Johnson", JobTitle: "Full Stack Developer", Department: "Engineering", Email: "mike.johnson@example.com", PhotoURL: photo("https://randomuser.me/api/portraits/men/3.jpg")},
	{ID: "person-4", FirstName: "Emily", LastName: "Davis", JobTitle: "API Designer", Department: "Architecture", Email: "emily.davis@example.com", PhotoURL: photo("https://randomuser.me/api/portraits/women/4.jpg")},
	{ID: "person-5", FirstName: "Robert", LastName: "Brown", JobTitle: "Database Administrator", Department: "IT Operations", Email: "robert.brown@example.com", PhotoURL: photo("https://randomuser.me/api/portraits/men/5.jpg")},
}

type PeopleSeeder struct{}

func (PeopleSeeder) Name() string { return "people" }

func (PeopleSeeder) Run(ctx context.Context, store skill.Store) error {
	repo := store.People()
	for _, p := range demoPeople {
		p := p
		err := createMissing(ctx,
			func(ctx context.Context) error { _, err := repo.GetByID(ctx, p.ID); return err },
			func(ctx context.Context) error { return repo.Create(ctx, p) },
		)
		if err != nil {
			return err
		}
	}
	return nil
}
