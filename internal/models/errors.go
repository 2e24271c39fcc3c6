package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrAmountNegative        = errors.New("the amount of a purchase must not be negative")
	ErrCategoryNameNotUnique = errors.New("the category name is already in use for this user")
	ErrCategoryNotOwned      = errors.New("the category does not belong to this user")
	ErrCategoryReferenced    = errors.New("the category is still referenced by purchases")
	ErrPaymentMethodInvalid  = errors.New("the payment method is not valid")
	ErrWeekStartInvalid      = errors.New("the week start must be the english name of a weekday")
	ErrUserIDRequired        = errors.New("a user ID must be set for this resource")
)
