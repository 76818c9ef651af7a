package authz

// Outcome is the terminal result of a guard evaluation.
type Outcome int

const (
	// OutcomeAllow renders the protected view.
	OutcomeAllow Outcome = iota
	// OutcomeRedirect issues exactly one redirect.
	OutcomeRedirect
)

// Decision is the result of evaluating a route access. Exactly one of
// the two outcomes applies; Target is set only for redirects.
type Decision struct {
	Outcome Outcome
	Target  string
}

// Allowed reports whether the decision renders the protected view.
func (d Decision) Allowed() bool {
	return d.Outcome == OutcomeAllow
}

// Decide evaluates a route access for a session. authenticated is false
// when there is no active session (no token, or incomplete identity).
//
// Unauthenticated access always redirects to login. An authenticated
// session whose role satisfies the requirement renders; otherwise it is
// redirected to its own role's default landing route. Those landing
// routes satisfy the guard for their own role, so a redirect never
// chains into another redirect.
func Decide(authenticated bool, have Role, need Role) Decision {
	if !authenticated {
		return Decision{Outcome: OutcomeRedirect, Target: LoginRoute}
	}

	if Satisfies(have, need) {
		return Decision{Outcome: OutcomeAllow}
	}

	return Decision{Outcome: OutcomeRedirect, Target: DefaultRoute(have)}
}
