package ticket

import (
	"time"

	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

type SubmitTicketInput struct {
	User         string  `json:"user" binding:"required"`
	TicketID     string  `json:"ticketID"`
	ProjNumber   string  `json:"projNumber" binding:"required,max=50"`
	ProjName     string  `json:"projName" binding:"required,max=200"`
	ProjManager  string  `json:"projManager"`
	Budget       float64 `json:"budget" binding:"gte=0"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	Priority     string  `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	AssignedTeam string  `json:"assignedTeam"`
	Remarks      string  `json:"remarks"`
}

type TicketIDInput struct {
	TicketID string `json:"ticketID" binding:"required"`
}

type UserInput struct {
	User string `json:"user" binding:"required"`
}

// SearchInput omits the user when the caller authenticates with a token;
// the dispatcher then scopes the search to the token's subject.
type SearchInput struct {
	User  string `json:"user"`
	Query string `json:"query"`
}

// TicketDTO is the wire form of a ticket. Dates are formatted as plain
// yyyy-mm-dd strings, the timestamp the way the legacy sheet stored it.
type TicketDTO struct {
	Timestamp      string  `json:"Timestamp"`
	TicketID       string  `json:"TicketID"`
	Username       string  `json:"Username"`
	ProjectNumber  string  `json:"ProjectNumber"`
	ProjectName    string  `json:"ProjectName"`
	ProjectManager string  `json:"ProjectManager"`
	Budget         float64 `json:"Budget"`
	StartDate      string  `json:"StartDate"`
	EndDate        string  `json:"EndDate"`
	Priority       string  `json:"Priority"`
	AssignedTeam   string  `json:"AssignedTeam"`
	Remarks        string  `json:"Remarks"`
	Status         string  `json:"Status"`
}

func ToTicketDTO(t Ticket) TicketDTO {
	return TicketDTO{
		Timestamp:      t.CreatedAt.Format("2006-01-02 15:04:05"),
		TicketID:       t.TicketID,
		Username:       t.Username,
		ProjectNumber:  t.ProjectNumber,
		ProjectName:    t.ProjectName,
		ProjectManager: t.ProjectManager,
		Budget:         t.Budget,
		StartDate:      formatDate(t.StartDate),
		EndDate:        formatDate(t.EndDate),
		Priority:       string(t.Priority),
		AssignedTeam:   t.AssignedTeam,
		Remarks:        t.Remarks,
		Status:         string(t.Status),
	}
}

// formatDate renders an unset date as the empty string the detail page
// expects, not year one.
func formatDate(d datatypes.Date) string {
	if time.Time(d).IsZero() {
		return ""
	}
	return time.Time(d).Format(dateLayout)
}

func ToTicketDTOs(tickets []Ticket) []TicketDTO {
	out := make([]TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, ToTicketDTO(t))
	}
	return out
}
