package auth

import (
	"sort"
	"strings"
)

const (
	ScopePrefix = "SCOPE_"
	RolePrefix  = "ROLE_"

	RoleMonitoring = RolePrefix + "MONITORING"

	// MonitoringPrincipal is the identity bound to every API-key grant. It is
	// never derived from request data so distinct monitoring callers cannot be
	// told apart, or impersonate one another, through it.
	MonitoringPrincipal = "health-check-service"
)

// Authorities is a set of authority strings such as "SCOPE_read:items" or
// "ROLE_admin".
type Authorities map[string]struct{}

func NewAuthorities(values ...string) Authorities {
	a := make(Authorities, len(values))
	for _, v := range values {
		a.Add(v)
	}
	return a
}

func (a Authorities) Add(value string) {
	if value == "" {
		return
	}
	a[value] = struct{}{}
}

func (a Authorities) Has(value string) bool {
	_, ok := a[value]
	return ok
}

// Sorted returns the authorities in lexical order.
func (a Authorities) Sorted() []string {
	out := make([]string, 0, len(a))
	for v := range a {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// AuthorityGrant binds a principal to the authorities it holds for the
// lifetime of one request.
type AuthorityGrant struct {
	Principal   string
	Authorities Authorities
	Domain      RouteClass
	// Claims is set for bearer-token grants only.
	Claims *Claims
}

func (g *AuthorityGrant) HasAuthority(authority string) bool {
	if g == nil {
		return false
	}
	return g.Authorities.Has(authority)
}

// Roles returns the role names held by the grant without the ROLE_ prefix.
func (g *AuthorityGrant) Roles() []string {
	if g == nil {
		return nil
	}
	roles := make([]string, 0)
	for _, a := range g.Authorities.Sorted() {
		if role, ok := strings.CutPrefix(a, RolePrefix); ok {
			roles = append(roles, role)
		}
	}
	return roles
}

// MonitoringGrant is the fixed grant issued after a successful API-key check.
func MonitoringGrant() *AuthorityGrant {
	return &AuthorityGrant{
		Principal:   MonitoringPrincipal,
		Authorities: NewAuthorities(RoleMonitoring),
		Domain:      RouteMonitoring,
	}
}
