package repositories

import (
	"github.com/navacharity/charity-go/db"
	"github.com/navacharity/charity-go/models"
	"gorm.io/gorm"
)

type queryLookup struct {
	param string
	apply func(q *gorm.DB, value string) *gorm.DB
}

// Allow-listed query parameters for task listing. Parameters not named here
// are ignored.
var filteringLookups = []queryLookup{
	{"title", func(q *gorm.DB, v string) *gorm.DB { return q.Where("title LIKE ?", "%"+v+"%") }},
	{"state", func(q *gorm.DB, v string) *gorm.DB { return q.Where("state = ?", v) }},
	{"gender", func(q *gorm.DB, v string) *gorm.DB { return q.Where("gender_limit = ?", v) }},
	{"charity", func(q *gorm.DB, v string) *gorm.DB { return q.Where("c_id = ?", v) }},
}

var excludingLookups = []queryLookup{
	{"exclude_state", func(q *gorm.DB, v string) *gorm.DB { return q.Not("state = ?", v) }},
	{"exclude_gender", func(q *gorm.DB, v string) *gorm.DB { return q.Not("gender_limit = ?", v) }},
	{"exclude_charity", func(q *gorm.DB, v string) *gorm.DB { return q.Not("c_id = ?", v) }},
}

func GetTaskByID(id uint) (models.Task, error) {
	var task models.Task
	err := db.DB.First(&task, id).Error
	return task, err
}

func CreateTask(t *models.Task) error {
	return db.DB.Create(t).Error
}

func SaveTask(t *models.Task) error {
	return db.DB.Save(t).Error
}

// ListVisibleTasks returns the tasks related to the caller: every pending
// task, plus tasks owned by the caller's charity and tasks attached to the
// caller's benefactor, narrowed by the allow-listed filter parameters.
func ListVisibleTasks(charityID, benefactorID *uint, params map[string]string) ([]models.Task, error) {
	visible := db.DB.Where("state = ?", models.TaskStatePending)
	if charityID != nil {
		visible = visible.Or("c_id = ?", *charityID)
	}
	if benefactorID != nil {
		visible = visible.Or("assigned_b_id = ?", *benefactorID)
	}

	q := db.DB.Model(&models.Task{}).Where(visible)
	for _, lookup := range filteringLookups {
		if v, ok := params[lookup.param]; ok && v != "" {
			q = lookup.apply(q, v)
		}
	}
	for _, lookup := range excludingLookups {
		if v, ok := params[lookup.param]; ok && v != "" {
			q = lookup.apply(q, v)
		}
	}

	var tasks []models.Task
	err := q.Order("t_id").Find(&tasks).Error
	return tasks, err
}
