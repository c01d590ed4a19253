package cmd

import (
	"errors"

	"github.com/manifoldco/promptui"
	"github.com/vagrantlab/vlab/cli/util"
)

// suggestedBoxes are the base boxes offered by the interactive selection.
var suggestedBoxes = []string{
	"debian/bookworm64",
	"debian/bullseye64",
	"ubuntu/jammy64",
	"generic/rocky9",
	"generic/alma9",
}

// boxItems returns the interactive selection items with defaultBox on top.
func boxItems(defaultBox string) []string {
	items := []string{defaultBox}
	for _, box := range suggestedBoxes {
		if box != defaultBox {
			items = append(items, box)
		}
	}
	return items
}

// chooseBox shows a menu in terminal to choose a base box for the machines.
func chooseBox(defaultBox string) (string, error) {
	boxSelect := promptui.Select{
		Label:        util.Bold("Select base box"),
		Items:        boxItems(defaultBox),
		HideSelected: true,
	}
	_, box, err := boxSelect.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) {
			return "", util.ErrCmdAbort
		}
		return "", err
	}

	return box, nil
}
