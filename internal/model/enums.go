package model

import (
	"fmt"
	"strings"
)

// ValidationError reports a rejected input value along with the accepted
// choices, so the CLI can print a corrective message.
type ValidationError struct {
	Field string
	Value string
	Valid []string
}

func (e *ValidationError) Error() string {
	if len(e.Valid) == 0 {
		return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
	}
	return fmt.Sprintf("invalid %s %q (choose from: %s)", e.Field, e.Value, strings.Join(e.Valid, ", "))
}

// Role is an owner's permission level.
type Role string

const (
	RoleViewer Role = "viewer"
	RoleEditor Role = "editor"
)

// Roles lists the valid role literals.
func Roles() []string {
	return []string{string(RoleViewer), string(RoleEditor)}
}

// ParseRole converts a string to a Role, rejecting unknown literals.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleViewer, RoleEditor:
		return Role(s), nil
	}
	return "", &ValidationError{Field: "role", Value: s, Valid: Roles()}
}

// PropertyType classifies the property being flipped.
type PropertyType string

const (
	SingleFamily PropertyType = "single_family"
	Multifamily  PropertyType = "multifamily"
)

// PropertyTypes lists the valid property type literals.
func PropertyTypes() []string {
	return []string{string(SingleFamily), string(Multifamily)}
}

// ParsePropertyType converts a string to a PropertyType.
func ParsePropertyType(s string) (PropertyType, error) {
	switch PropertyType(s) {
	case SingleFamily, Multifamily:
		return PropertyType(s), nil
	}
	return "", &ValidationError{Field: "property type", Value: s, Valid: PropertyTypes()}
}

// PropertyClass is the price-bracket tier of a property.
type PropertyClass string

const (
	// Single family tiers.
	SFClassA PropertyClass = "sf_class_a" // $2.5-4M ultra-luxury
	SFClassB PropertyClass = "sf_class_b" // $1-2M luxury
	SFClassC PropertyClass = "sf_class_c" // $700K-999K
	SFClassD PropertyClass = "sf_class_d" // <$550K

	// Multifamily tiers.
	MFClassA PropertyClass = "mf_class_a" // $1-1.5M
	MFClassB PropertyClass = "mf_class_b" // $750K-900K
	MFClassC PropertyClass = "mf_class_c" // $500K-749K
)

// PropertyClasses lists the valid property class literals.
func PropertyClasses() []string {
	return []string{
		string(SFClassA), string(SFClassB), string(SFClassC), string(SFClassD),
		string(MFClassA), string(MFClassB), string(MFClassC),
	}
}

// ParsePropertyClass converts a string to a PropertyClass.
func ParsePropertyClass(s string) (PropertyClass, error) {
	switch PropertyClass(s) {
	case SFClassA, SFClassB, SFClassC, SFClassD, MFClassA, MFClassB, MFClassC:
		return PropertyClass(s), nil
	}
	return "", &ValidationError{Field: "property class", Value: s, Valid: PropertyClasses()}
}

// ProjectStatus is the lifecycle state of a project. Any recognized status
// may follow any other; there is no enforced transition table.
type ProjectStatus string

const (
	StatusPlanning   ProjectStatus = "planning"
	StatusInProgress ProjectStatus = "in_progress"
	StatusCompleted  ProjectStatus = "completed"
	StatusOnHold     ProjectStatus = "on_hold"
)

// ProjectStatuses lists the valid status literals.
func ProjectStatuses() []string {
	return []string{
		string(StatusPlanning), string(StatusInProgress),
		string(StatusCompleted), string(StatusOnHold),
	}
}

// ParseProjectStatus converts a string to a ProjectStatus.
func ParseProjectStatus(s string) (ProjectStatus, error) {
	switch ProjectStatus(s) {
	case StatusPlanning, StatusInProgress, StatusCompleted, StatusOnHold:
		return ProjectStatus(s), nil
	}
	return "", &ValidationError{Field: "status", Value: s, Valid: ProjectStatuses()}
}

// Priority ranks how urgent a project is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Priorities lists the valid priority literals.
func Priorities() []string {
	return []string{
		string(PriorityLow), string(PriorityMedium),
		string(PriorityHigh), string(PriorityUrgent),
	}
}

// ParsePriority converts a string to a Priority.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return Priority(s), nil
	}
	return "", &ValidationError{Field: "priority", Value: s, Valid: Priorities()}
}

// ExpenseCategory splits spend into material and labor.
type ExpenseCategory string

const (
	CategoryMaterial ExpenseCategory = "material"
	CategoryLabor    ExpenseCategory = "labor"
)

// ExpenseCategories lists the valid category literals.
func ExpenseCategories() []string {
	return []string{string(CategoryMaterial), string(CategoryLabor)}
}

// ParseExpenseCategory converts a string to an ExpenseCategory.
func ParseExpenseCategory(s string) (ExpenseCategory, error) {
	switch ExpenseCategory(s) {
	case CategoryMaterial, CategoryLabor:
		return ExpenseCategory(s), nil
	}
	return "", &ValidationError{Field: "category", Value: s, Valid: ExpenseCategories()}
}
