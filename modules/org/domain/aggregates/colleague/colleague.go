package colleague

import "strings"

// Colleague is a single person in the reporting hierarchy. ManagerID links to
// another colleague's ID; a missing, dangling or self-referencing link makes
// the person a top-level root rather than an error.
type Colleague struct {
	id        int64
	name      string
	role      string
	avatar    string
	managerID *int64
	searchKey string
}

func New(id int64, name, role, avatar string, managerID *int64) Colleague {
	name = strings.TrimSpace(name)
	role = strings.TrimSpace(role)
	return Colleague{
		id:        id,
		name:      name,
		role:      role,
		avatar:    avatar,
		managerID: managerID,
		searchKey: strings.ToLower(name + " " + role),
	}
}

func (c Colleague) ID() int64      { return c.id }
func (c Colleague) Name() string   { return c.name }
func (c Colleague) Role() string   { return c.role }
func (c Colleague) Avatar() string { return c.avatar }

func (c Colleague) ManagerID() (int64, bool) {
	if c.managerID == nil {
		return 0, false
	}
	return *c.managerID, true
}

// SearchKey is the lowercase "name role" string the org search matches against.
func (c Colleague) SearchKey() string { return c.searchKey }

func (c Colleague) IsZero() bool { return c.id == 0 && c.name == "" }
