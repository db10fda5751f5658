package usecase_test

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	"skillmatrix/internal/metrics"
	"skillmatrix/internal/usecase"
	"skillmatrix/internal/usecase/mocks"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VerificationSuite struct {
	suite.Suite
	ctx     context.Context
	fx      fixture
	ctrl    *gomock.Controller
	events  *mocks.MockEventPublisher
	metrics *metrics.Metrics
	now     time.Time
	uc      *usecase.Verifications
}

func TestVerificationSuite(t *testing.T) {
	suite.Run(t, new(VerificationSuite))
}

func (s *VerificationSuite) SetupTest() {
	s.ctx = context.Background()
	s.fx = newFixture(s.T())
	s.ctrl = gomock.NewController(s.T())
	s.events = mocks.NewMockEventPublisher(s.ctrl)
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.now = time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	s.uc = s.fx.verifications(
		usecase.WithEvents(s.events),
		usecase.WithMetrics(s.metrics),
		usecase.WithClock(func() time.Time { return s.now }),
	)
}

func (s *VerificationSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *VerificationSuite) expectEvents(types ...string) {
	for _, typ := range types {
		s.events.EXPECT().Publish(gomock.Any(), eventOfType(typ))
	}
}

func (s *VerificationSuite) TestRecordFlipsFlag() {
	s.expectEvents(usecase.EventVerificationRecorded, usecase.EventPersonSkillVerified)

	v, err := s.uc.Record(s.ctx, "ps-1", usecase.VerificationInput{
		VerificationType: "ManagerVerification",
		VerifiedBy:       strPtr("Sarah Wilson"),
		Note:             strPtr("  "),
	})
	s.Require().NoError(err)
	s.Equal("ps-1", v.PersonSkillID)
	s.Equal(s.now, v.VerificationDate)
	s.Equal(strPtr("Sarah Wilson"), v.VerifiedBy)
	s.Nil(v.Note)
	s.NotEmpty(v.ID)

	s.True(s.fx.personSkill(s.T(), "ps-1").IsVerified)
	s.fx.assertConsistent(s.T())
	s.Equal(1.0, testutil.ToFloat64(s.metrics.VerificationsRecorded))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.VerifiedFlagChanges.WithLabelValues("true")))
}

func (s *VerificationSuite) TestRecordKeepsSuppliedDate() {
	s.events.EXPECT().Publish(gomock.Any(), gomock.Any()).AnyTimes()
	when := time.Date(2024, 12, 15, 0, 0, 0, 0, time.FixedZone("WIB", 7*3600))

	v, err := s.uc.Record(s.ctx, "ps-1", usecase.VerificationInput{
		VerificationType: "PeerEndorsement",
		VerificationDate: &when,
	})
	s.Require().NoError(err)
	s.True(when.Equal(v.VerificationDate))
	s.Equal(time.UTC, v.VerificationDate.Location())
}

func (s *VerificationSuite) TestSecondRecordDoesNotFlipAgain() {
	s.expectEvents(usecase.EventVerificationRecorded, usecase.EventPersonSkillVerified, usecase.EventVerificationRecorded)

	_, err := s.uc.Record(s.ctx, "ps-1", usecase.VerificationInput{VerificationType: "PeerEndorsement"})
	s.Require().NoError(err)
	_, err = s.uc.Record(s.ctx, "ps-1", usecase.VerificationInput{VerificationType: "SkillChallenge"})
	s.Require().NoError(err)

	s.True(s.fx.personSkill(s.T(), "ps-1").IsVerified)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.VerifiedFlagChanges.WithLabelValues("true")))
}

func (s *VerificationSuite) TestRecordUnknownPersonSkill() {
	_, err := s.uc.Record(s.ctx, "ps-missing", usecase.VerificationInput{VerificationType: "PeerEndorsement"})
	s.ErrorIs(err, usecase.ErrNotFound)

	n, err := s.fx.store.Verifications().ListByPersonSkill(s.ctx, "ps-missing")
	s.Require().NoError(err)
	s.Empty(n)
}

func (s *VerificationSuite) TestRecordValidation() {
	tests := []struct {
		name  string
		in    usecase.VerificationInput
		field string
	}{
		{name: "missing type", in: usecase.VerificationInput{VerificationType: " "}, field: "verificationType"},
		{name: "long type", in: usecase.VerificationInput{VerificationType: longString(51)}, field: "verificationType"},
		{name: "long verifier", in: usecase.VerificationInput{VerificationType: "x", VerifiedBy: strPtr(longString(101))}, field: "verifiedBy"},
		{name: "long note", in: usecase.VerificationInput{VerificationType: "x", Note: strPtr(longString(501))}, field: "note"},
		{name: "long url", in: usecase.VerificationInput{VerificationType: "x", CertificationURL: strPtr(longString(256))}, field: "certificationUrl"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.uc.Record(s.ctx, "ps-1", tt.in)
			s.Require().ErrorIs(err, usecase.ErrValidation)
			var verr *usecase.ValidationError
			s.Require().ErrorAs(err, &verr)
			s.Equal(tt.field, verr.Field)
		})
	}
	s.False(s.fx.personSkill(s.T(), "ps-1").IsVerified)
}

func (s *VerificationSuite) TestRemoveOnlyVerificationClearsFlag() {
	s.expectEvents(
		usecase.EventVerificationRecorded, usecase.EventPersonSkillVerified,
		usecase.EventVerificationRemoved, usecase.EventPersonSkillUnverified,
	)

	v, err := s.uc.Record(s.ctx, "ps-2", usecase.VerificationInput{VerificationType: "CertificationUpload"})
	s.Require().NoError(err)
	s.Require().NoError(s.uc.Remove(s.ctx, "ps-2", v.ID))

	s.False(s.fx.personSkill(s.T(), "ps-2").IsVerified)
	s.fx.assertConsistent(s.T())
	s.Equal(1.0, testutil.ToFloat64(s.metrics.VerificationsRemoved))
}

func (s *VerificationSuite) TestRemoveOneOfTwoKeepsFlag() {
	s.events.EXPECT().Publish(gomock.Any(), gomock.Any()).AnyTimes()

	first, err := s.uc.Record(s.ctx, "ps-2", usecase.VerificationInput{VerificationType: "PeerEndorsement"})
	s.Require().NoError(err)
	_, err = s.uc.Record(s.ctx, "ps-2", usecase.VerificationInput{VerificationType: "ManagerVerification"})
	s.Require().NoError(err)

	s.Require().NoError(s.uc.Remove(s.ctx, "ps-2", first.ID))
	s.True(s.fx.personSkill(s.T(), "ps-2").IsVerified)

	left, err := s.uc.List(s.ctx, "ps-2")
	s.Require().NoError(err)
	s.Len(left, 1)
	s.Equal("ManagerVerification", left[0].VerificationType)
}

func (s *VerificationSuite) TestConcurrentRemovalsOfLastTwoClearFlag() {
	s.events.EXPECT().Publish(gomock.Any(), gomock.Any()).AnyTimes()

	first, err := s.uc.Record(s.ctx, "ps-2", usecase.VerificationInput{VerificationType: "PeerEndorsement"})
	s.Require().NoError(err)
	second, err := s.uc.Record(s.ctx, "ps-2", usecase.VerificationInput{VerificationType: "ManagerVerification"})
	s.Require().NoError(err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []string{first.ID, second.ID} {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			errs[i] = s.uc.Remove(s.ctx, "ps-2", id)
		}(i, id)
	}
	wg.Wait()

	s.NoError(errs[0])
	s.NoError(errs[1])
	s.False(s.fx.personSkill(s.T(), "ps-2").IsVerified)
	s.fx.assertConsistent(s.T())
}

func (s *VerificationSuite) TestRemoveMissingOrForeign() {
	s.events.EXPECT().Publish(gomock.Any(), gomock.Any()).AnyTimes()

	s.ErrorIs(s.uc.Remove(s.ctx, "ps-1", "nope"), usecase.ErrNotFound)

	v, err := s.uc.Record(s.ctx, "ps-1", usecase.VerificationInput{VerificationType: "PeerEndorsement"})
	s.Require().NoError(err)
	s.ErrorIs(s.uc.Remove(s.ctx, "ps-2", v.ID), usecase.ErrNotFound)

	s.True(s.fx.personSkill(s.T(), "ps-1").IsVerified)
	s.Equal(0.0, testutil.ToFloat64(s.metrics.VerificationsRemoved))
}

func (s *VerificationSuite) TestVerifyDirectlyNeedsNoRecord() {
	s.expectEvents(usecase.EventPersonSkillVerified)

	view, err := s.uc.VerifyDirectly(s.ctx, "ps-3")
	s.Require().NoError(err)
	s.True(view.IsVerified)
	s.Empty(view.Verifications)
	s.Equal("Go", view.SkillName)

	s.True(s.fx.personSkill(s.T(), "ps-3").IsVerified)
	exists, err := s.fx.store.Verifications().ExistsForPersonSkill(s.ctx, "ps-3")
	s.Require().NoError(err)
	s.False(exists)

	// already verified: no second flip
	_, err = s.uc.VerifyDirectly(s.ctx, "ps-3")
	s.Require().NoError(err)
	s.Equal(2.0, testutil.ToFloat64(s.metrics.DirectVerifications))
}

func (s *VerificationSuite) TestVerifyDirectlyThenRecordAndRemoveRecomputes() {
	s.events.EXPECT().Publish(gomock.Any(), gomock.Any()).AnyTimes()

	_, err := s.uc.VerifyDirectly(s.ctx, "ps-3")
	s.Require().NoError(err)
	v, err := s.uc.Record(s.ctx, "ps-3", usecase.VerificationInput{VerificationType: "PeerEndorsement"})
	s.Require().NoError(err)
	s.Require().NoError(s.uc.Remove(s.ctx, "ps-3", v.ID))

	s.False(s.fx.personSkill(s.T(), "ps-3").IsVerified)
}

func (s *VerificationSuite) TestVerifyDirectlyUnknown() {
	_, err := s.uc.VerifyDirectly(s.ctx, "ps-missing")
	s.ErrorIs(err, usecase.ErrNotFound)
}

func (s *VerificationSuite) TestListUnknownPersonSkill() {
	_, err := s.uc.List(s.ctx, "ps-missing")
	s.ErrorIs(err, usecase.ErrNotFound)
}

func (s *VerificationSuite) TestInvariantHoldsAcrossRandomMutations() {
	s.events.EXPECT().Publish(gomock.Any(), gomock.Any()).AnyTimes()

	rng := rand.New(rand.NewSource(42))
	targets := []string{"ps-1", "ps-2", "ps-3", "ps-4"}
	recorded := map[string][]string{}

	for i := 0; i < 200; i++ {
		ps := targets[rng.Intn(len(targets))]
		if len(recorded[ps]) == 0 || rng.Intn(2) == 0 {
			v, err := s.uc.Record(s.ctx, ps, usecase.VerificationInput{VerificationType: fmt.Sprintf("t%d", i)})
			s.Require().NoError(err)
			recorded[ps] = append(recorded[ps], v.ID)
		} else {
			idx := rng.Intn(len(recorded[ps]))
			s.Require().NoError(s.uc.Remove(s.ctx, ps, recorded[ps][idx]))
			recorded[ps] = append(recorded[ps][:idx], recorded[ps][idx+1:]...)
		}
		s.fx.assertConsistent(s.T())
	}
}

func TestRecompute(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)

	// flag set with no records is corrected
	ps := fx.personSkill(t, "ps-4")
	if err := fx.store.PersonSkills().SetVerified(ctx, ps.ID, true); err != nil {
		t.Fatal(err)
	}
	ps.IsVerified = true

	changed, err := usecase.Recompute(ctx, fx.store, ps)
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Fatalf("expected flag change")
	}
	if fx.personSkill(t, "ps-4").IsVerified {
		t.Fatalf("expected ps-4 unverified")
	}

	changed, err = usecase.Recompute(ctx, fx.store, fx.personSkill(t, "ps-4"))
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Fatalf("expected no change on consistent person skill")
	}
}

type eventTypeMatcher string

func eventOfType(typ string) gomock.Matcher { return eventTypeMatcher(typ) }

func (m eventTypeMatcher) Matches(x any) bool {
	evt, ok := x.(usecase.Event)
	return ok && evt.Type == string(m) && !evt.OccurredAt.IsZero()
}

func (m eventTypeMatcher) String() string { return "event of type " + string(m) }

func longString(n int) string {
	return strings.Repeat("a", n)
}
