package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Transaction errors
var (
	ErrAmountNegative   = errors.New("transaction amounts must not be negative, the direction carries the sign")
	ErrDirectionInvalid = errors.New("the transaction direction must be one of: incoming, outgoing")
)

// Budget errors
var (
	ErrAllocatedNegative       = errors.New("the allocated amount for a budget must not be negative")
	ErrBudgetCategoryRequired  = errors.New("budgets must have a category")
	ErrBudgetCategoryNotUnique = errors.New("you can not create multiple budgets for the same category")
)

// Receipt errors
var (
	ErrReceiptOwnerRequired = errors.New("receipts must have an owner")
)
