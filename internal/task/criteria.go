package task

import "time"

// DateRange bounds are inclusive; a nil bound is open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Filters describes the active filter combination. Zero values mean
// "no filter": nil status/priority, empty search, empty tag list.
type Filters struct {
	Status       *Status
	Priority     *Priority
	Search       string
	Tags         []string
	DueDateRange *DateRange
}

type SortField string

const (
	SortByID          SortField = "id"
	SortByTitle       SortField = "title"
	SortByDescription SortField = "description"
	SortByStatus      SortField = "status"
	SortByPriority    SortField = "priority"
	SortByDueDate     SortField = "dueDate"
	SortByCreatedAt   SortField = "createdAt"
	SortByUpdatedAt   SortField = "updatedAt"
)

type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

type Sort struct {
	Field SortField
	Order SortOrder
}

// DefaultSort matches the initial sort of the criteria store.
func DefaultSort() Sort {
	return Sort{Field: SortByCreatedAt, Order: Desc}
}
