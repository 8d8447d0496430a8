package tdx

import (
	"fmt"
	"time"
)

// TicketURL is the base URL for viewing a ticket in TeamDynamix.
const TicketURL = "https://service.uoregon.edu/TDNext/Apps/430/Tickets/TicketDet.aspx?TicketID="

// Undefined is the sentinel identity value for blank source fields. Tickets
// missing an attribute all collapse into one shared "Undefined" entity
// instead of creating many ambiguous ones.
const Undefined = "Undefined"

type Building struct {
	Name  string
	Rooms map[string]*Room

	roomOrder []*Room
}

// RoomsInOrder returns the building's rooms in first-seen order.
func (b *Building) RoomsInOrder() []*Room {
	return b.roomOrder
}

func (b *Building) String() string {
	return fmt.Sprintf("Building %s", b.Name)
}

// Room belongs to exactly one Building. Rooms are identified by the pair
// (building name, room identifier); two buildings may each have a room "1".
type Room struct {
	Building   *Building
	Identifier string
	Tickets    []*Ticket
}

func (r *Room) String() string {
	return fmt.Sprintf("%s %s", r.Building.Name, r.Identifier)
}

// User is a TDX user, typically the requestor on a ticket. Several distinct
// User records may share an email; they are distinguished by the full
// (email, name, phone) tuple.
type User struct {
	Email   string
	Name    string
	Phone   string
	Tickets []*Ticket
}

func (u *User) String() string {
	return fmt.Sprintf("%s (%s, %s)", u.Name, u.Email, u.Phone)
}

// Group is a TDX responsible group (the "Resp Group" on a ticket).
type Group struct {
	Name    string
	Tickets []*Ticket
}

func (g *Group) String() string {
	return g.Name
}

// Department is a TDX department, listed under the requestor on a ticket.
type Department struct {
	Name    string
	Tickets []*Ticket
}

func (d *Department) String() string {
	return d.Name
}

type Ticket struct {
	Id               int
	Title            string
	ResponsibleGroup *Group
	Requestor        *User
	Department       *Department
	Room             *Room
	Created          time.Time
	Modified         time.Time
	Diagnoses        []Diagnosis
	DiagnosesNote    string
	Status           string
}

func (t *Ticket) String() string {
	return fmt.Sprintf(`%s
%s%d
ID: %d
Responsible: %s
Requestor: %s
Department: %s
Room: %s
Created: %s
Modified: %s
Status: %s`,
		t.Title, TicketURL, t.Id, t.Id, t.ResponsibleGroup, t.Requestor,
		t.Department, t.Room, formatStamp(t.Created), formatStamp(t.Modified), t.Status)
}

func formatStamp(t time.Time) string {
	if t.IsZero() {
		return "None"
	}
	return t.Format("2006-01-02 15:04")
}
