package http

import (
	"fmt"

	"slack-routine-bot/internal/model"
	"slack-routine-bot/internal/routine"
	"slack-routine-bot/pkg/daytime"
)

// --- Request DTOs ---

type createTaskReq struct {
	Name     string   `json:"name"     binding:"required,min=1,max=255"`
	Deadline string   `json:"deadline" binding:"omitempty"`
	Days     []string `json:"days"     binding:"omitempty"`
	Period   string   `json:"period"   binding:"omitempty,oneof=morning evening"`
	AsanaURL string   `json:"asana_url" binding:"omitempty,url"`
	Comments string   `json:"comments" binding:"max=1000"`
}

func (r createTaskReq) validate() error {
	if r.Deadline != "" {
		if _, err := daytime.ParseClockTime(r.Deadline); err != nil {
			return fmt.Errorf("invalid deadline %q: expected HH:MM", r.Deadline)
		}
	}
	for _, day := range r.Days {
		if day == model.DaysAll {
			continue
		}
		if _, ok := daytime.NormalizeWeekday(day); !ok {
			return fmt.Errorf("unknown weekday %q", day)
		}
	}
	return nil
}

func (r createTaskReq) toDefinition() model.TaskDefinition {
	def := model.TaskDefinition{
		Name:     r.Name,
		Days:     r.Days,
		Period:   model.Period(r.Period),
		AsanaURL: r.AsanaURL,
		Comments: r.Comments,
	}
	if r.Deadline != "" {
		ct, _ := daytime.ParseClockTime(r.Deadline)
		def.Deadline = &ct
	}
	return def
}

// ---

type assignReq struct {
	TaskName string `json:"task_name" binding:"required"`
	UserID   string `json:"user_id"` // empty clears the assignment
}

func (r assignReq) validate() error { return nil }

// ---

type openSessionReq struct {
	Mode string `json:"mode" binding:"omitempty,oneof=production debug"`
	Day  string `json:"day"  binding:"omitempty"`
}

func (r openSessionReq) mode() model.Mode {
	if r.Mode == "" {
		return model.ModeDebug
	}
	return model.Mode(r.Mode)
}

// --- Response DTOs ---

type taskResp struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Deadline string   `json:"deadline,omitempty"`
	Days     []string `json:"days,omitempty"`
	Period   string   `json:"period,omitempty"`
	AsanaURL string   `json:"asana_url,omitempty"`
	Comments string   `json:"comments,omitempty"`
	Assignee string   `json:"assignee,omitempty"`
}

func newTaskResp(t model.TaskDefinition) taskResp {
	resp := taskResp{
		ID:       t.ID,
		Name:     t.Name,
		Days:     t.Days,
		Period:   string(t.Period),
		AsanaURL: t.AsanaURL,
		Comments: t.Comments,
		Assignee: t.Assignee,
	}
	if t.Deadline != nil {
		resp.Deadline = t.Deadline.String()
	}
	return resp
}

type openSessionResp struct {
	Mode     string `json:"mode"`
	ThreadTS string `json:"thread_ts"`
	Date     string `json:"date"`
	Message  string `json:"message"`
}

func newOpenSessionResp(mode model.Mode, out routine.OpenSessionOutput) openSessionResp {
	return openSessionResp{
		Mode:     string(mode),
		ThreadTS: out.ThreadTS,
		Date:     out.Checklist.Date,
		Message:  out.Message,
	}
}

type outstandingResp struct {
	Overdue []taskResp `json:"overdue"`
	Pending []taskResp `json:"pending"`
}

func newOutstandingResp(out routine.Outstanding) outstandingResp {
	resp := outstandingResp{
		Overdue: make([]taskResp, 0, len(out.Overdue)),
		Pending: make([]taskResp, 0, len(out.Pending)),
	}
	for _, t := range out.Overdue {
		resp.Overdue = append(resp.Overdue, newTaskResp(t))
	}
	for _, t := range out.Pending {
		resp.Pending = append(resp.Pending, newTaskResp(t))
	}
	return resp
}
