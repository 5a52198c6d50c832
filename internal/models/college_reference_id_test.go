package models

import "testing"

func TestReferenceID_RedeemableForMatchingRole(t *testing.T) {
	ref := CollegeReferenceID{ReferenceID: "STU001", UserType: "student"}

	if !ref.Redeemable("student") {
		t.Fatalf("unused token with matching role must be redeemable")
	}
	if ref.Redeemable("alumni") {
		t.Fatalf("token must not be redeemable for a different role")
	}
	if !ref.Redeemable("") {
		t.Fatalf("role-agnostic check must pass for an unused token")
	}
}

func TestReferenceID_UsedTokenFailsEveryRole(t *testing.T) {
	ref := CollegeReferenceID{ReferenceID: "ALM001", UserType: "alumni", IsUsed: true}

	for _, role := range []string{"", "student", "alumni", "admin"} {
		if ref.Redeemable(role) {
			t.Fatalf("used token must fail verification for role %q", role)
		}
	}
}
