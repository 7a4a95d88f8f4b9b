// Copyright 2025 Nhat-Nguyen Nguyen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rest

import (
	"errors"
	"reflect"
	"strings"

	"studentapi/core/student/domain"

	"github.com/go-playground/validator/v10"
)

// StudentDTO is the wire representation exchanged with clients. It
// never carries an identifier; on update the id arrives as a path
// parameter.
type StudentDTO struct {
	Name  string `json:"name"  validate:"required,min=2,max=30"`
	Email string `json:"email" validate:"required,email"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report json field names, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the DTO's structural constraints and returns one
// message per violated field, or nil when the DTO is valid.
func (d StudentDTO) Validate() map[string]string {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	fields := make(map[string]string)
	if !errors.As(err, &verrs) {
		fields["body"] = "Invalid request body"
		return fields
	}

	for _, e := range verrs {
		fields[e.Field()] = fieldMessage(e)
	}
	return fields
}

func fieldMessage(e validator.FieldError) string {
	switch e.Field() {
	case "name":
		if e.Tag() == "required" {
			return "Name is required"
		}
		return "Name must be between 2 and 30 characters"
	case "email":
		if e.Tag() == "required" {
			return "Email is required"
		}
		return "Invalid email"
	default:
		return "Invalid value"
	}
}

// toDTO drops the identifier; the DTO never carries one.
func toDTO(s domain.Student) StudentDTO {
	return StudentDTO{Name: s.Name, Email: s.Email}
}

func toDTOs(students []domain.Student) []StudentDTO {
	out := make([]StudentDTO, 0, len(students))
	for _, s := range students {
		out = append(out, toDTO(s))
	}
	return out
}
