package usecase

import (
	"context"
	"time"

	"skillmatrix/internal/domain/skill"
	"skillmatrix/internal/readmodel"

	"github.com/google/uuid"
)

const (
	maxVerificationTypeLen = 50
	maxVerifiedByLen       = 100
	maxNoteLen             = 500
)

type VerificationInput struct {
	VerificationType string
	VerifiedBy       *string
	Note             *string
	CertificationURL *string
	// VerificationDate defaults to the current time when nil.
	VerificationDate *time.Time
}

type VerificationUsecase interface {
	List(ctx context.Context, personSkillID string) ([]readmodel.VerificationView, error)
	Record(ctx context.Context, personSkillID string, in VerificationInput) (readmodel.VerificationView, error)
	Remove(ctx context.Context, personSkillID, verificationID string) error
	VerifyDirectly(ctx context.Context, personSkillID string) (readmodel.PersonSkillView, error)
}

// Verifications owns the verification records of person skills and
// keeps PersonSkill.IsVerified equal to "at least one record exists" after
// every record or remove. Both writes of each mutation share one store
// transaction.
type Verifications struct {
	store skill.Store
	asm   *readmodel.Assembler
	hooks
}

func NewVerificationUsecase(store skill.Store, asm *readmodel.Assembler, opts ...Option) *Verifications {
	return &Verifications{store: store, asm: asm, hooks: newHooks(opts)}
}

func (u *Verifications) List(ctx context.Context, personSkillID string) ([]readmodel.VerificationView, error) {
	if _, err := u.store.PersonSkills().GetByID(ctx, personSkillID); err != nil {
		return nil, storeError(err, "person skill", personSkillID)
	}
	vs, err := u.store.Verifications().ListByPersonSkill(ctx, personSkillID)
	if err != nil {
		return nil, storeError(err, "verifications", "")
	}
	return u.asm.Verifications(vs), nil
}

// Record stores a new verification for the person skill and marks the person
// skill verified if it was not.
func (u *Verifications) Record(ctx context.Context, personSkillID string, in VerificationInput) (readmodel.VerificationView, error) {
	v, err := u.validate(in)
	if err != nil {
		return readmodel.VerificationView{}, err
	}
	v.ID = uuid.NewString()
	v.PersonSkillID = personSkillID

	var flipped bool
	err = u.store.WithinTx(ctx, func(tx skill.Store) error {
		ps, err := tx.PersonSkills().GetForUpdate(ctx, personSkillID)
		if err != nil {
			return storeError(err, "person skill", personSkillID)
		}
		if err := tx.Verifications().Create(ctx, v); err != nil {
			return storeError(err, "person skill", personSkillID)
		}
		flipped, err = Recompute(ctx, tx, ps)
		return err
	})
	if err != nil {
		return readmodel.VerificationView{}, err
	}

	u.metrics.IncVerificationRecorded()
	out := u.asm.Verification(v)
	events := []Event{{Type: EventVerificationRecorded, ResourceID: v.ID, Data: out}}
	if flipped {
		u.metrics.IncVerifiedFlagChange(true)
		events = append(events, Event{Type: EventPersonSkillVerified, ResourceID: personSkillID})
	}
	u.changed(ctx, events...)
	return out, nil
}

// Remove deletes one verification of the person skill and clears the
// verified flag when it was the last one. A verification that belongs to a
// different person skill is reported as not found.
func (u *Verifications) Remove(ctx context.Context, personSkillID, verificationID string) error {
	var (
		owner   string
		flipped bool
	)
	err := u.store.WithinTx(ctx, func(tx skill.Store) error {
		v, err := tx.Verifications().GetByID(ctx, verificationID)
		if err != nil {
			return storeError(err, "verification", verificationID)
		}
		if personSkillID != "" && v.PersonSkillID != personSkillID {
			return notFound("verification", verificationID)
		}
		owner = v.PersonSkillID
		// lock before deleting so concurrent removals recompute one at a time
		ps, err := tx.PersonSkills().GetForUpdate(ctx, v.PersonSkillID)
		if err != nil {
			return storeError(err, "person skill", v.PersonSkillID)
		}
		if err := tx.Verifications().Delete(ctx, v.ID); err != nil {
			return storeError(err, "verification", verificationID)
		}
		flipped, err = Recompute(ctx, tx, ps)
		return err
	})
	if err != nil {
		return err
	}

	u.metrics.IncVerificationRemoved()
	events := []Event{{Type: EventVerificationRemoved, ResourceID: verificationID}}
	if flipped {
		u.metrics.IncVerifiedFlagChange(false)
		events = append(events, Event{Type: EventPersonSkillUnverified, ResourceID: owner})
	}
	u.changed(ctx, events...)
	return nil
}

// VerifyDirectly forces the verified flag on without creating a
// verification record. The flag can then be true with no records behind it
// until the next Record or Remove recomputes it.
func (u *Verifications) VerifyDirectly(ctx context.Context, personSkillID string) (readmodel.PersonSkillView, error) {
	ps, err := u.store.PersonSkills().GetByID(ctx, personSkillID)
	if err != nil {
		return readmodel.PersonSkillView{}, storeError(err, "person skill", personSkillID)
	}
	flipped := !ps.IsVerified
	if flipped {
		if err := u.store.PersonSkills().SetVerified(ctx, ps.ID, true); err != nil {
			return readmodel.PersonSkillView{}, storeError(err, "person skill", ps.ID)
		}
		ps.IsVerified = true
	}

	out, err := personSkillView(ctx, u.store, u.asm, ps)
	if err != nil {
		return readmodel.PersonSkillView{}, err
	}

	u.metrics.IncDirectVerification()
	if flipped {
		u.metrics.IncVerifiedFlagChange(true)
		u.changed(ctx, Event{Type: EventPersonSkillVerified, ResourceID: ps.ID, Data: out})
	}
	return out, nil
}

// Recompute brings ps.IsVerified in line with the existence of verification
// records and persists it when it differs. It reports whether the flag
// changed.
func Recompute(ctx context.Context, store skill.Store, ps skill.PersonSkill) (bool, error) {
	exists, err := store.Verifications().ExistsForPersonSkill(ctx, ps.ID)
	if err != nil {
		return false, storeError(err, "verifications", "")
	}
	if ps.IsVerified == exists {
		return false, nil
	}
	if err := store.PersonSkills().SetVerified(ctx, ps.ID, exists); err != nil {
		return false, storeError(err, "person skill", ps.ID)
	}
	return true, nil
}

func (u *Verifications) validate(in VerificationInput) (skill.Verification, error) {
	var (
		v   skill.Verification
		err error
	)
	if v.VerificationType, err = requiredText("verificationType", in.VerificationType, maxVerificationTypeLen); err != nil {
		return v, err
	}
	if v.VerifiedBy, err = optionalPtr("verifiedBy", in.VerifiedBy, maxVerifiedByLen); err != nil {
		return v, err
	}
	if v.Note, err = optionalPtr("note", in.Note, maxNoteLen); err != nil {
		return v, err
	}
	if v.CertificationURL, err = optionalPtr("certificationUrl", in.CertificationURL, maxURLLen); err != nil {
		return v, err
	}
	if in.VerificationDate != nil && !in.VerificationDate.IsZero() {
		v.VerificationDate = in.VerificationDate.UTC()
	} else {
		v.VerificationDate = u.now().UTC()
	}
	return v, nil
}
