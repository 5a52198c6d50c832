package types

import (
	"os"
	"strings"
)

const ContextUserKey = "user"

// User roles. Students, alumni and admins sign up through reference-id gated
// flows; investor/partner/intern roles exist for startup-hub connections.
const (
	RoleStudent  = "student"
	RoleAlumni   = "alumni"
	RoleAdmin    = "admin"
	RoleInvestor = "investor"
	RolePartner  = "partner"
	RoleIntern   = "intern"
)

var UserRoles = []string{RoleStudent, RoleAlumni, RoleAdmin, RoleInvestor, RolePartner, RoleIntern}

func IsValidRole(role string) bool {
	for _, r := range UserRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Startup idea stages. Not enforced as a strict progression.
const (
	StageIdea      = "idea"
	StagePrototype = "prototype"
	StageMVP       = "mvp"
	StageGrowth    = "growth"
)

var IdeaStages = []string{StageIdea, StagePrototype, StageMVP, StageGrowth}

func IsValidStage(stage string) bool {
	for _, s := range IdeaStages {
		if s == stage {
			return true
		}
	}
	return false
}

// Connection types for expressing interest in a startup idea.
var ConnectionTypes = []string{RoleInvestor, RolePartner, RoleIntern, "mentor"}

func IsValidConnectionType(ct string) bool {
	for _, c := range ConnectionTypes {
		if c == ct {
			return true
		}
	}
	return false
}

// Validation states for submitted student projects.
const (
	ValidationPending  = "pending"
	ValidationApproved = "approved"
	ValidationRejected = "rejected"
)

// NDA agreement status. Requests are created as pending; the visibility
// predicate on startup ideas does not consult these rows.
const (
	NdaPending  = "pending"
	NdaApproved = "approved"
	NdaRejected = "rejected"
)

var (
	// Default allowed origins for development
	defaultOrigins = []string{
		"http://localhost:3000",
		"http://localhost:5173",
	}

	AllowedOrigins = initAllowedOrigins()
)

func initAllowedOrigins() []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	if allowedOrigins := os.Getenv("ALLOWED_ORIGINS"); allowedOrigins != "" {
		envOrigins := strings.Split(allowedOrigins, ",")
		for _, origin := range envOrigins {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return origins
}
