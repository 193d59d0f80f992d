package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// ConfirmDeletion prompts before a destructive operation. Returns false on
// decline or prompt failure.
func ConfirmDeletion(itemName, itemType string) bool {
	fmt.Println(Warning(fmt.Sprintf("About to delete %s: %s", itemType, itemName)))
	fmt.Println(Muted("This action cannot be undone!"))

	var confirmed bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Are you sure you want to delete this %s?", itemType)).
			Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		return false
	}
	return confirmed
}

// ConfirmProjectDeletion requires typing the exact project name before the
// irreversible cascade delete proceeds.
func ConfirmProjectDeletion(projectName string) bool {
	fmt.Println(Warning(fmt.Sprintf("About to delete project: %s", projectName)))
	fmt.Println(Muted("All rooms and expenses of this project will be deleted. This action cannot be undone!"))

	var typed string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Type the exact project name to confirm").
			Value(&typed),
	))
	if err := form.Run(); err != nil {
		return false
	}
	return typed == projectName
}

// Confirm asks a yes/no question.
func Confirm(question string) bool {
	var confirmed bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(question).
			Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		return false
	}
	return confirmed
}
