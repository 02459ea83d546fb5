package models

const (
	RewardTypeReward     = "reward"
	RewardTypeDiscipline = "discipline"
)

// RewardDiscipline rows are hard-deleted; there is no soft-delete flag.
type RewardDiscipline struct {
	ID         int64   `db:"id" json:"id"`
	EmployeeID int64   `db:"employee_id" json:"employee_id"`
	Type       string  `db:"type" json:"type"` // reward, discipline
	Title      string  `db:"title" json:"title"`
	Amount     string  `db:"amount" json:"amount"`
	Date       Date    `db:"date" json:"date"`
	Note       *string `db:"note" json:"note,omitempty"`
}

type CreateRewardInput struct {
	EmployeeID int64   `json:"employee_id" binding:"required"`
	Type       string  `json:"type" binding:"required,oneof=reward discipline"`
	Title      string  `json:"title" binding:"required"`
	Amount     *string `json:"amount"`
	Date       Date    `json:"date" binding:"required"`
	Note       *string `json:"note"`
}

type UpdateRewardInput struct {
	Type   *string `json:"type" binding:"omitempty,oneof=reward discipline"`
	Title  *string `json:"title"`
	Amount *string `json:"amount"`
	Date   *Date   `json:"date"`
	Note   *string `json:"note"`
}

func (r *RewardDiscipline) Apply(in UpdateRewardInput) {
	if in.Type != nil {
		r.Type = *in.Type
	}
	if in.Title != nil {
		r.Title = *in.Title
	}
	if in.Amount != nil {
		r.Amount = *in.Amount
	}
	if in.Date != nil {
		r.Date = *in.Date
	}
	if in.Note != nil {
		r.Note = in.Note
	}
}
