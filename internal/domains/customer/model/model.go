package model

import "hotelier/shared/model"

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID     = "id"
	FieldName   = "name"
	FieldEmail  = "email"
	FieldPhone  = "phone"
	FieldGender = "gender"
)

const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)

type Customer struct {
	ID     string `db:"id"`
	Name   string `db:"name"`
	Email  string `db:"email"`
	Phone  string `db:"phone"`
	Gender string `db:"gender"`
	model.Metadata
}
