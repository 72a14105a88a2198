package jwt

const (
	ClaimRole = "role"

	RoleAnon        = "anon"
	RoleServiceRole = "service_role"
)

// AnonClaims returns the claim set of the anonymous role.
func AnonClaims() map[string]any {
	return map[string]any{ClaimRole: RoleAnon}
}

// ServiceRoleClaims returns the claim set of the service role.
func ServiceRoleClaims() map[string]any {
	return map[string]any{ClaimRole: RoleServiceRole}
}
