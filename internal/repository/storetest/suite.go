// Package storetest holds the behavioural suite every skill.Store
// implementation must pass.
package storetest

import (
	"context"
	"errors"
	"time"

	"skillmatrix/internal/domain/skill"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type StoreSuite struct {
	suite.Suite

	// NewStore returns an empty store for each test.
	NewStore func() skill.Store

	store skill.Store
	ctx   context.Context
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.NewStore()
}

func (s *StoreSuite) person(first string) skill.Person {
	p := skill.Person{
		ID:         uuid.NewString(),
		FirstName:  first,
		LastName:   "Tester",
		JobTitle:   "Engineer",
		Department: "Engineering",
		Email:      first + "@example.com",
	}
	s.Require().NoError(s.store.People().Create(s.ctx, p))
	return p
}

func (s *StoreSuite) skill(name string) skill.Skill {
	sk := skill.Skill{ID: uuid.NewString(), Name: name, Description: name + " desc", Category: "Backend"}
	s.Require().NoError(s.store.Skills().Create(s.ctx, sk))
	return sk
}

func (s *StoreSuite) personSkill(p skill.Person, sk skill.Skill, level skill.ProficiencyLevel) skill.PersonSkill {
	years := 2
	ps := skill.PersonSkill{
		ID:                uuid.NewString(),
		PersonID:          p.ID,
		SkillID:           sk.ID,
		ProficiencyLevel:  level,
		YearsOfExperience: &years,
	}
	s.Require().NoError(s.store.PersonSkills().Create(s.ctx, ps))
	return ps
}

func (s *StoreSuite) verification(ps skill.PersonSkill) skill.Verification {
	by := "Sarah Wilson"
	v := skill.Verification{
		ID:               uuid.NewString(),
		PersonSkillID:    ps.ID,
		VerificationType: "ManagerVerification",
		VerifiedBy:       &by,
		VerificationDate: time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.store.Verifications().Create(s.ctx, v))
	return v
}

func (s *StoreSuite) TestPeopleCRUD() {
	s.Run("lists in insertion order", func() {
		a := s.person("ada")
		b := s.person("brian")

		items, err := s.store.People().List(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(items, 2)
		s.Equal(a.ID, items[0].ID)
		s.Equal(b.ID, items[1].ID)
	})

	s.Run("keeps optional photo url absent", func() {
		p := s.person("carla")
		got, err := s.store.People().GetByID(s.ctx, p.ID)
		s.Require().NoError(err)
		s.Nil(got.PhotoURL)
	})

	s.Run("updates profile fields", func() {
		p := s.person("dora")
		photo := "https://example.com/dora.jpg"
		p.JobTitle = "Lead"
		p.PhotoURL = &photo
		s.Require().NoError(s.store.People().Update(s.ctx, p))

		got, err := s.store.People().GetByID(s.ctx, p.ID)
		s.Require().NoError(err)
		s.Equal("Lead", got.JobTitle)
		s.Require().NotNil(got.PhotoURL)
		s.Equal(photo, *got.PhotoURL)
	})

	s.Run("reports missing ids", func() {
		_, err := s.store.People().GetByID(s.ctx, "missing")
		s.ErrorIs(err, skill.ErrNotFound)
		s.ErrorIs(s.store.People().Update(s.ctx, skill.Person{ID: "missing", FirstName: "x", LastName: "y", Email: "x@y.z"}), skill.ErrNotFound)
		s.ErrorIs(s.store.People().Delete(s.ctx, "missing"), skill.ErrNotFound)
	})
}

func (s *StoreSuite) TestSkillsLookup() {
	a := s.skill("Go")
	b := s.skill("Rust")

	got, err := s.store.Skills().GetByIDs(s.ctx, []string{a.ID, b.ID, "missing"})
	s.Require().NoError(err)
	s.Len(got, 2)
	s.Equal("Rust", got[b.ID].Name)

	a.Category = "Systems"
	s.Require().NoError(s.store.Skills().Update(s.ctx, a))
	reloaded, err := s.store.Skills().GetByID(s.ctx, a.ID)
	s.Require().NoError(err)
	s.Equal("Systems", reloaded.Category)
}

func (s *StoreSuite) TestPersonSkillPairIsUnique() {
	p := s.person("eve")
	sk := s.skill("React")
	s.personSkill(p, sk, skill.Intermediate)

	err := s.store.PersonSkills().Create(s.ctx, skill.PersonSkill{
		ID:               uuid.NewString(),
		PersonID:         p.ID,
		SkillID:          sk.ID,
		ProficiencyLevel: skill.Expert,
	})
	s.ErrorIs(err, skill.ErrDuplicate)

	items, err := s.store.PersonSkills().ListByPerson(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Len(items, 1)
}

func (s *StoreSuite) TestPersonSkillRequiresOwners() {
	sk := s.skill("Docker")
	err := s.store.PersonSkills().Create(s.ctx, skill.PersonSkill{
		ID:               uuid.NewString(),
		PersonID:         "missing",
		SkillID:          sk.ID,
		ProficiencyLevel: skill.Novice,
	})
	s.ErrorIs(err, skill.ErrNotFound)
}

func (s *StoreSuite) TestPersonSkillUpdateKeepsIdentityAndFlag() {
	p := s.person("fred")
	sk := s.skill("SQL")
	ps := s.personSkill(p, sk, skill.Beginner)
	s.Require().NoError(s.store.PersonSkills().SetVerified(s.ctx, ps.ID, true))

	ps.ProficiencyLevel = skill.Advanced
	ps.YearsOfExperience = nil
	ps.IsVerified = false
	s.Require().NoError(s.store.PersonSkills().Update(s.ctx, ps))

	got, err := s.store.PersonSkills().GetByPair(s.ctx, p.ID, sk.ID)
	s.Require().NoError(err)
	s.Equal(skill.Advanced, got.ProficiencyLevel)
	s.Nil(got.YearsOfExperience)
	s.True(got.IsVerified)
}

func (s *StoreSuite) TestListByPeopleAndSkill() {
	a := s.person("gina")
	b := s.person("hank")
	goSkill := s.skill("Go")
	sqlSkill := s.skill("SQL")
	s.personSkill(a, goSkill, skill.Expert)
	s.personSkill(a, sqlSkill, skill.Novice)
	s.personSkill(b, goSkill, skill.Beginner)

	byPerson, err := s.store.PersonSkills().ListByPeople(s.ctx, []string{a.ID, b.ID})
	s.Require().NoError(err)
	s.Len(byPerson[a.ID], 2)
	s.Len(byPerson[b.ID], 1)
	s.Equal(goSkill.ID, byPerson[a.ID][0].SkillID)

	holders, err := s.store.PersonSkills().ListBySkill(s.ctx, goSkill.ID)
	s.Require().NoError(err)
	s.Require().Len(holders, 2)
	s.Equal(a.ID, holders[0].PersonID)
	s.Equal(b.ID, holders[1].PersonID)
}

func (s *StoreSuite) TestVerifications() {
	p := s.person("ivy")
	sk := s.skill("Kubernetes")
	ps := s.personSkill(p, sk, skill.Advanced)

	exists, err := s.store.Verifications().ExistsForPersonSkill(s.ctx, ps.ID)
	s.Require().NoError(err)
	s.False(exists)

	v := s.verification(ps)
	got, err := s.store.Verifications().GetByID(s.ctx, v.ID)
	s.Require().NoError(err)
	s.Equal(ps.ID, got.PersonSkillID)
	s.Nil(got.Note)
	s.True(v.VerificationDate.Equal(got.VerificationDate))

	grouped, err := s.store.Verifications().ListByPersonSkills(s.ctx, []string{ps.ID})
	s.Require().NoError(err)
	s.Len(grouped[ps.ID], 1)

	s.Require().NoError(s.store.Verifications().Delete(s.ctx, v.ID))
	exists, err = s.store.Verifications().ExistsForPersonSkill(s.ctx, ps.ID)
	s.Require().NoError(err)
	s.False(exists)
	s.ErrorIs(s.store.Verifications().Delete(s.ctx, v.ID), skill.ErrNotFound)
}

func (s *StoreSuite) TestDeletePersonCascades() {
	p := s.person("jack")
	sk := s.skill("Terraform")
	ps := s.personSkill(p, sk, skill.Expert)
	v := s.verification(ps)

	s.Require().NoError(s.store.People().Delete(s.ctx, p.ID))

	_, err := s.store.PersonSkills().GetByID(s.ctx, ps.ID)
	s.ErrorIs(err, skill.ErrNotFound)
	_, err = s.store.Verifications().GetByID(s.ctx, v.ID)
	s.ErrorIs(err, skill.ErrNotFound)

	_, err = s.store.Skills().GetByID(s.ctx, sk.ID)
	s.NoError(err)
}

func (s *StoreSuite) TestDeleteSkillCascades() {
	p := s.person("kate")
	sk := s.skill("GraphQL")
	ps := s.personSkill(p, sk, skill.Beginner)
	s.verification(ps)

	s.Require().NoError(s.store.Skills().Delete(s.ctx, sk.ID))

	items, err := s.store.PersonSkills().ListByPerson(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Empty(items)
	exists, err := s.store.Verifications().ExistsForPersonSkill(s.ctx, ps.ID)
	s.Require().NoError(err)
	s.False(exists)
}

func (s *StoreSuite) TestGetForUpdateHoldsLockUntilCommit() {
	p := s.person("nora")
	sk := s.skill("Postgres")
	ps := s.personSkill(p, sk, skill.Intermediate)

	locked := make(chan struct{})
	release := make(chan struct{})
	first := make(chan error, 1)
	go func() {
		first <- s.store.WithinTx(s.ctx, func(tx skill.Store) error {
			if _, err := tx.PersonSkills().GetForUpdate(s.ctx, ps.ID); err != nil {
				close(locked)
				return err
			}
			close(locked)
			<-release
			return tx.PersonSkills().SetVerified(s.ctx, ps.ID, true)
		})
	}()
	<-locked

	second := make(chan skill.PersonSkill, 1)
	secondErr := make(chan error, 1)
	go func() {
		secondErr <- s.store.WithinTx(s.ctx, func(tx skill.Store) error {
			got, err := tx.PersonSkills().GetForUpdate(s.ctx, ps.ID)
			if err != nil {
				return err
			}
			second <- got
			return nil
		})
	}()

	select {
	case <-second:
		s.Fail("second locking read returned while the first transaction was open")
	case <-time.After(200 * time.Millisecond):
	}

	close(release)
	s.Require().NoError(<-first)

	select {
	case got := <-second:
		s.True(got.IsVerified)
	case <-time.After(5 * time.Second):
		s.FailNow("second locking read never returned")
	}
	s.Require().NoError(<-secondErr)
}

func (s *StoreSuite) TestWithinTx() {
	s.Run("commits on success", func() {
		p := s.person("liam")
		sk := s.skill("Kafka")
		ps := s.personSkill(p, sk, skill.Advanced)

		err := s.store.WithinTx(s.ctx, func(tx skill.Store) error {
			return tx.PersonSkills().SetVerified(s.ctx, ps.ID, true)
		})
		s.Require().NoError(err)

		got, err := s.store.PersonSkills().GetByID(s.ctx, ps.ID)
		s.Require().NoError(err)
		s.True(got.IsVerified)
	})

	s.Run("rolls back on error", func() {
		p := s.person("mona")
		sk := s.skill("Redis")
		ps := s.personSkill(p, sk, skill.Advanced)
		boom := errors.New("boom")

		err := s.store.WithinTx(s.ctx, func(tx skill.Store) error {
			v := skill.Verification{
				ID:               uuid.NewString(),
				PersonSkillID:    ps.ID,
				VerificationType: "PeerEndorsement",
				VerificationDate: time.Now().UTC(),
			}
			if err := tx.Verifications().Create(s.ctx, v); err != nil {
				return err
			}
			if err := tx.PersonSkills().SetVerified(s.ctx, ps.ID, true); err != nil {
				return err
			}
			return boom
		})
		s.ErrorIs(err, boom)

		exists, err := s.store.Verifications().ExistsForPersonSkill(s.ctx, ps.ID)
		s.Require().NoError(err)
		s.False(exists)
		got, err := s.store.PersonSkills().GetByID(s.ctx, ps.ID)
		s.Require().NoError(err)
		s.False(got.IsVerified)
	})
}
