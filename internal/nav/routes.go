// Package nav declares the application's route table and evaluates the
// route guard on every navigation. Screens compose only through the routes
// here; none of them makes access decisions of its own.
package nav

import "arena/internal/guard"

// Route is one navigable screen.
type Route struct {
	Path string
	Name string
	// Public routes render without any auth state.
	Public       bool
	Requirements guard.Requirements
}

// Paths of all screens. Kept as constants so redirect targets and the route
// table cannot drift apart.
const (
	PathLanding        = "/"
	PathLogin          = guard.PathLogin
	PathSignup         = "/signup"
	PathVerifyEmail    = guard.PathVerifyEmail
	PathCreateProfile  = guard.PathCreateProfile
	PathDashboard      = guard.PathDashboard
	PathProfile        = "/profile"
	PathSaved          = "/saved"
	PathPlans          = "/plans"
	PathAdminUsers     = "/admin/users"
	PathPaymentSuccess = "/payment/success"
	PathPaymentCancel  = "/payment/cancel"
)

// Routes returns the full route table. Dashboard, profile and saved are
// profile-gated; the create-profile screen itself is protected but not
// gated, or new users could never reach it.
func Routes() []Route {
	return []Route{
		{Path: PathLanding, Name: "landing", Public: true},
		{Path: PathLogin, Name: "login", Public: true},
		{Path: PathSignup, Name: "signup", Public: true},
		{Path: PathVerifyEmail, Name: "verify-email", Public: true},
		{Path: PathCreateProfile, Name: "create-profile"},
		{Path: PathDashboard, Name: "dashboard", Requirements: guard.Requirements{RequiresProfile: true}},
		{Path: PathProfile, Name: "profile", Requirements: guard.Requirements{RequiresProfile: true}},
		{Path: PathSaved, Name: "saved", Requirements: guard.Requirements{RequiresProfile: true}},
		{Path: PathPlans, Name: "plans"},
		{Path: PathAdminUsers, Name: "admin-users", Requirements: guard.Requirements{AdminOnly: true}},
		{Path: PathPaymentSuccess, Name: "payment-success"},
		{Path: PathPaymentCancel, Name: "payment-cancel"},
	}
}
