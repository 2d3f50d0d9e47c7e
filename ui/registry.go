package ui

import (
	"github.com/OpticalFlyer/tableau/model"
	"github.com/OpticalFlyer/tableau/property"
)

func init() {
	model.Register("label", func(decl property.Fields, scene model.Scene) (model.Model, error) {
		return NewLabel(decl, scene)
	})
	model.Register("menu", func(decl property.Fields, scene model.Scene) (model.Model, error) {
		return NewMenu(decl, scene)
	})
	model.Register("grid_drawer", func(decl property.Fields, scene model.Scene) (model.Model, error) {
		return NewGridDrawer(decl, scene)
	})
}
