package models

import "github.com/go-playground/validator/v10"

// Shared validator instance for struct-tag checks on persisted entities.
var validate = validator.New()
