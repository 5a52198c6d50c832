package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestStartupIdea_PublicIdeaViewableByAnyone(t *testing.T) {
	owner := uuid.New()
	idea := StartupIdea{IsPublic: true}
	idea.UserID = owner

	if !idea.ViewableBy(uuid.New()) {
		t.Fatalf("public idea must be viewable by a non-owner")
	}
	if !idea.ViewableBy(owner) {
		t.Fatalf("public idea must be viewable by its owner")
	}
}

func TestStartupIdea_PrivateIdeaViewableOnlyByOwner(t *testing.T) {
	owner := uuid.New()
	idea := StartupIdea{IsPublic: false}
	idea.UserID = owner

	if !idea.ViewableBy(owner) {
		t.Fatalf("owner must always see full detail")
	}
	if idea.ViewableBy(uuid.New()) {
		t.Fatalf("private idea must not be viewable by a non-owner")
	}
}

func TestStartupIdea_NdaRequestDoesNotChangeVisibility(t *testing.T) {
	owner := uuid.New()
	requester := uuid.New()
	idea := StartupIdea{IsPublic: false, RequiresNda: true}
	idea.UserID = owner

	// Recording an NDA request attaches a row but must not touch the
	// idea's flags or the predicate's outcome for the requester.
	idea.NdaAgreements = append(idea.NdaAgreements, NdaAgreement{
		StartupIdeaID: idea.ID,
		RequesterID:   requester,
		OwnerID:       owner,
		Status:        "pending",
	})

	if idea.IsPublic {
		t.Fatalf("NDA request must not mutate is_public")
	}
	if !idea.RequiresNda {
		t.Fatalf("NDA request must not mutate requires_nda")
	}
	if idea.ViewableBy(requester) {
		t.Fatalf("pending NDA request must not grant detail access")
	}
}

func TestStartupIdea_OwnedBy(t *testing.T) {
	owner := uuid.New()
	idea := StartupIdea{}
	idea.UserID = owner

	if !idea.OwnedBy(owner) {
		t.Fatalf("expected OwnedBy true for owner")
	}
	if idea.OwnedBy(uuid.New()) {
		t.Fatalf("expected OwnedBy false for stranger")
	}
}
