package models

import "time"

type Position struct {
	ID          int64      `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	Description *string    `db:"description" json:"description,omitempty"`
	Level       int        `db:"level" json:"level"`
	Deleted     bool       `db:"deleted" json:"deleted"`
	DeletedAt   *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

type CreatePositionInput struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Level       *int    `json:"level"`
}

type UpdatePositionInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Level       *int    `json:"level"`
}

func (p *Position) Apply(in UpdatePositionInput) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = in.Description
	}
	if in.Level != nil {
		p.Level = *in.Level
	}
}
