package models

import "time"

type TaskState string

const (
	TaskStatePending  TaskState = "P"
	TaskStateWaiting  TaskState = "W"
	TaskStateAssigned TaskState = "A"
	TaskStateDone     TaskState = "D"
)

// Response codes a charity may send for a waiting task.
const (
	TaskResponseAccept = "A"
	TaskResponseReject = "R"
)

// Task is a unit of charitable work owned by a charity. A benefactor is
// attached while the task is waiting or assigned; rejecting a waiting task
// detaches it again. A done task keeps its benefactor.
type Task struct {
	TID                  uint       `gorm:"primaryKey;column:t_id" json:"t_id"`
	Title                string     `gorm:"size:60;not null" json:"title"`
	Description          *string    `json:"description"`
	Date                 *time.Time `json:"date"`
	AgeLimitFrom         *int       `json:"age_limit_from"`
	AgeLimitTo           *int       `json:"age_limit_to"`
	GenderLimit          *string    `gorm:"size:1" json:"gender_limit"`
	State                TaskState  `gorm:"size:1;not null;default:'P'" json:"state"`
	CharityID            uint       `gorm:"column:c_id;not null" json:"charity_id"`
	Charity              Charity    `gorm:"foreignKey:CharityID;references:CID" json:"-"`
	AssignedBenefactorID *uint      `gorm:"column:assigned_b_id" json:"assigned_benefactor_id"`
	CreatedAt            time.Time  `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt            time.Time  `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

// AssignToBenefactor moves a pending task to waiting and attaches the
// requesting benefactor. The caller checks the pending precondition.
func (t *Task) AssignToBenefactor(b *Benefactor) {
	t.State = TaskStateWaiting
	t.AssignedBenefactorID = &b.BID
}

// RespondToBenefactorRequest applies the charity's answer to a waiting task:
// accept keeps the benefactor and assigns the task, reject reopens it and
// clears the benefactor. The caller checks the waiting precondition.
func (t *Task) RespondToBenefactorRequest(response string) {
	switch response {
	case TaskResponseAccept:
		t.State = TaskStateAssigned
	case TaskResponseReject:
		t.State = TaskStatePending
		t.AssignedBenefactorID = nil
	}
}

// Done marks an assigned task as completed. Terminal state.
func (t *Task) Done() {
	t.State = TaskStateDone
}
