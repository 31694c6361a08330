package statsapi

// Person is an upstream person reference. The display name appears under
// one of several mutually exclusive shapes depending on the endpoint:
// a combined fullName, first/last at the top level, first/last nested one
// level down, or a flat name.
type Person struct {
	ID        int64       `json:"id,omitempty"`
	FullName  string      `json:"fullName,omitempty"`
	FirstName string      `json:"firstName,omitempty"`
	LastName  string      `json:"lastName,omitempty"`
	Person    *PersonName `json:"person,omitempty"`
	Name      string      `json:"name,omitempty"`
}

// PersonName is the nested name variant some payloads use.
type PersonName struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// DisplayName resolves a person's display name with a fixed precedence:
// combined full name, then first+last (either nesting level), then the
// flat name, else the given fallback. Every caller that renders a person
// must go through this so all upstream shapes behave identically.
func (p Person) DisplayName(fallback string) string {
	if p.FullName != "" {
		return p.FullName
	}
	if p.FirstName != "" && p.LastName != "" {
		return p.FirstName + " " + p.LastName
	}
	if p.Person != nil && p.Person.FirstName != "" && p.Person.LastName != "" {
		return p.Person.FirstName + " " + p.Person.LastName
	}
	if p.Name != "" {
		return p.Name
	}
	return fallback
}
