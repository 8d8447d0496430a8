package tdx

import (
	"errors"
	"log/slog"
)

// Organization is the in-memory aggregate of all entities and tickets
// derived from one report. Registries are keyed by natural identity;
// insertion order is kept so query output is deterministic.
//
// Lookup* methods never mutate a registry. GetOrCreate* methods register
// and return a new entity when no match exists. Back-reference lists on
// entities are maintained by AddTicket during ingestion, not by the
// entities themselves.
type Organization struct {
	Buildings   map[string]*Building
	Users       map[string][]*User
	Departments map[string]*Department
	Groups      map[string]*Group
	Tickets     map[int]*Ticket

	buildingOrder []*Building
	userOrder     []*User
	ticketOrder   []*Ticket
}

func NewOrganization() *Organization {
	return &Organization{
		Buildings:   make(map[string]*Building),
		Users:       make(map[string][]*User),
		Departments: make(map[string]*Department),
		Groups:      make(map[string]*Group),
		Tickets:     make(map[int]*Ticket),
	}
}

// AddTicket registers a ticket in the main table and appends it to the
// back-reference lists of its room, requestor, group, and department. The
// ticket must have every relational field resolved; a duplicate id
// overwrites the previous table entry (last write wins) with a warning.
func (o *Organization) AddTicket(t *Ticket) error {
	if t.Room == nil || t.Requestor == nil || t.ResponsibleGroup == nil || t.Department == nil {
		return ContractError{Op: "AddTicket", Msg: "ticket has unresolved entity references"}
	}

	if prev, ok := o.Tickets[t.Id]; ok {
		slog.Warn("duplicate ticket id in report, keeping latest", "id", t.Id, "previousTitle", prev.Title)
	}
	o.Tickets[t.Id] = t
	o.ticketOrder = append(o.ticketOrder, t)
	t.Room.Tickets = append(t.Room.Tickets, t)
	t.Requestor.Tickets = append(t.Requestor.Tickets, t)
	t.ResponsibleGroup.Tickets = append(t.ResponsibleGroup.Tickets, t)
	t.Department.Tickets = append(t.Department.Tickets, t)
	return nil
}

// TicketsInOrder returns all tickets in ingestion order. Tickets replaced
// by a duplicate id are still listed once per ingestion.
func (o *Organization) TicketsInOrder() []*Ticket {
	return o.ticketOrder
}

// BuildingsInOrder returns all buildings in first-seen order.
func (o *Organization) BuildingsInOrder() []*Building {
	return o.buildingOrder
}

// UsersInOrder flattens the email-keyed user registry in first-seen order.
func (o *Organization) UsersInOrder() []*User {
	return o.userOrder
}

// LookupGroup returns the group with the given name, or nil.
func (o *Organization) LookupGroup(name string) *Group {
	return o.Groups[orUndefined(name)]
}

// GetOrCreateGroup returns the group with the given name, creating and
// registering it if absent. A blank name resolves to "Undefined".
func (o *Organization) GetOrCreateGroup(name string) *Group {
	name = orUndefined(name)
	if g, ok := o.Groups[name]; ok {
		return g
	}
	g := &Group{Name: name}
	o.Groups[name] = g
	return g
}

// LookupDepartment returns the department with the given name, or nil.
func (o *Organization) LookupDepartment(name string) *Department {
	return o.Departments[orUndefined(name)]
}

// GetOrCreateDepartment returns the department with the given name,
// creating and registering it if absent.
func (o *Organization) GetOrCreateDepartment(name string) *Department {
	name = orUndefined(name)
	if d, ok := o.Departments[name]; ok {
		return d
	}
	d := &Department{Name: name}
	o.Departments[name] = d
	return d
}

// LookupBuilding returns the building with the given name, or nil.
func (o *Organization) LookupBuilding(name string) *Building {
	return o.Buildings[orUndefined(name)]
}

// GetOrCreateBuilding returns the building with the given name, creating
// and registering it if absent.
func (o *Organization) GetOrCreateBuilding(name string) *Building {
	name = orUndefined(name)
	if b, ok := o.Buildings[name]; ok {
		return b
	}
	b := &Building{Name: name, Rooms: make(map[string]*Room)}
	o.Buildings[name] = b
	o.buildingOrder = append(o.buildingOrder, b)
	return b
}

// LookupRoom returns the room identified by (building name, room
// identifier), or nil if either the building or the room is unknown.
func (o *Organization) LookupRoom(buildingName, identifier string) *Room {
	b := o.LookupBuilding(buildingName)
	if b == nil {
		return nil
	}
	return b.Rooms[orUndefined(identifier)]
}

// GetOrCreateRoom returns the room identified by (building name, room
// identifier), transitively creating the building if absent.
func (o *Organization) GetOrCreateRoom(buildingName, identifier string) *Room {
	identifier = orUndefined(identifier)
	b := o.GetOrCreateBuilding(buildingName)
	if r, ok := b.Rooms[identifier]; ok {
		return r
	}
	r := &Room{Building: b, Identifier: identifier}
	b.Rooms[identifier] = r
	b.roomOrder = append(b.roomOrder, r)
	return r
}

// LookupUsers returns every registered user matching the given fields,
// in registration order. Fields are AND-combined; a blank field matches
// anything. An email gives a fast bucket lookup, otherwise the whole
// registry is scanned. Blank everything returns no users.
func (o *Organization) LookupUsers(email, name, phone string) []*User {
	var matched []*User
	if email != "" {
		for _, u := range o.Users[email] {
			if (name == "" || u.Name == name) && (phone == "" || u.Phone == phone) {
				matched = append(matched, u)
			}
		}
		return matched
	}
	if name == "" && phone == "" {
		return nil
	}
	for _, u := range o.userOrder {
		if name != "" && u.Name != name {
			continue
		}
		if phone != "" && u.Phone != phone {
			continue
		}
		matched = append(matched, u)
	}
	return matched
}

// GetOrCreateUser resolves a user by the full (email, name, phone) tuple,
// creating one if absent. Blank components resolve to "Undefined" before
// matching so that two tickets missing a phone number never partially
// match a user that has one. Resolution to more than one user is a
// contract violation.
func (o *Organization) GetOrCreateUser(email, name, phone string) (*User, error) {
	email = orUndefined(email)
	name = orUndefined(name)
	phone = orUndefined(phone)

	matched := o.LookupUsers(email, name, phone)
	switch len(matched) {
	case 1:
		return matched[0], nil
	case 0:
		u := &User{Email: email, Name: name, Phone: phone}
		o.Users[email] = append(o.Users[email], u)
		o.userOrder = append(o.userOrder, u)
		return u, nil
	default:
		return nil, ContractError{Op: "GetOrCreateUser", Msg: "user registry holds duplicate (email, name, phone) tuples"}
	}
}

// IsContractError reports whether err is a registry invariant violation.
func IsContractError(err error) bool {
	var ce ContractError
	return errors.As(err, &ce)
}

func orUndefined(s string) string {
	if s == "" {
		return Undefined
	}
	return s
}
