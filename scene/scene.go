// Package scene hosts the models of one game screen: it attaches them to the
// rendering context, routes input signals to their bindings, runs named
// actions for them and drives their per-frame update and draw.
package scene

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/OpticalFlyer/tableau/model"
	"github.com/OpticalFlyer/tableau/property"
)

var _ model.Scene = (*Scene)(nil)

type entry struct {
	role  string
	model model.Model
}

// Scene manages the models and actions of one screen.
type Scene struct {
	name    string
	ctx     model.Context
	models  []entry
	roles   map[string]model.Model
	actions map[string]func() error
}

// New creates an empty scene.
func New(name string) *Scene {
	return &Scene{
		name:    name,
		models:  make([]entry, 0),
		roles:   make(map[string]model.Model),
		actions: make(map[string]func() error),
	}
}

// Name returns the scene name.
func (s *Scene) Name() string {
	return s.name
}

// Handle registers the behavior performed for an action name.
func (s *Scene) Handle(action string, fn func() error) {
	s.actions[action] = fn
}

// Perform runs the named action. Unknown actions are a *model.DispatchError.
func (s *Scene) Perform(action string) error {
	fn, ok := s.actions[action]
	if !ok {
		return &model.DispatchError{Action: action}
	}
	slog.Debug("scene action", "scene", s.name, "action", action)
	return fn()
}

// Add places m in the scene under role. An empty role gets a generated one.
// Models added after Attach are attached and shown immediately.
func (s *Scene) Add(role string, m model.Model) (string, error) {
	if role == "" {
		role = uuid.NewString()
	}
	if _, exists := s.roles[role]; exists {
		return "", fmt.Errorf("scene %s: role %q already in use", s.name, role)
	}
	if s.ctx != nil {
		if err := model.Attach(m, s.ctx); err != nil {
			return "", fmt.Errorf("attaching %s: %w", role, err)
		}
		model.Show(m)
	}
	s.models = append(s.models, entry{role: role, model: m})
	s.roles[role] = m
	return role, nil
}

// Create builds a model of the given kind with this scene as its owner and
// adds it under role.
func (s *Scene) Create(role, kind string, decl property.Fields) (model.Model, error) {
	m, err := model.Create(kind, decl, s)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %s: %w", s.name, role, err)
	}
	if _, err := s.Add(role, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Model returns the model playing role, nil if none.
func (s *Scene) Model(role string) model.Model {
	return s.roles[role]
}

// Models returns the models in the order they were added.
func (s *Scene) Models() []model.Model {
	out := make([]model.Model, len(s.models))
	for i, e := range s.models {
		out[i] = e.model
	}
	return out
}

// Attach binds every model to ctx and then shows them. A scene attaches
// once.
func (s *Scene) Attach(ctx model.Context) error {
	if s.ctx != nil {
		return model.ErrAlreadyAttached
	}
	s.ctx = ctx
	for _, e := range s.models {
		if err := model.Attach(e.model, ctx); err != nil {
			return fmt.Errorf("scene %s: attaching %s: %w", s.name, e.role, err)
		}
	}
	for _, e := range s.models {
		model.Show(e.model)
	}
	return nil
}

// ButtonDown dispatches a pressed signal.
func (s *Scene) ButtonDown(sig model.Signal) error {
	return s.dispatch(model.ButtonDown, sig)
}

// ButtonUp dispatches a released signal.
func (s *Scene) ButtonUp(sig model.Signal) error {
	return s.dispatch(model.ButtonUp, sig)
}

// FireHeld dispatches a held event for every signal still pressed.
func (s *Scene) FireHeld(pressed []model.Signal) error {
	for _, sig := range pressed {
		if err := s.dispatch(model.ButtonHeld, sig); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scene) dispatch(kind model.EventKind, sig model.Signal) error {
	for _, e := range s.models {
		h, ok := e.model.(model.Handler)
		if !ok {
			continue
		}
		if _, err := h.HandleEvent(kind, sig); err != nil {
			return fmt.Errorf("%s %s on %s: %w", sig, kind, e.role, err)
		}
	}
	return nil
}

// Press sends a pointer press to every model containing the point.
func (s *Scene) Press(x, y float64) error {
	for _, e := range s.models {
		p, ok := e.model.(model.Pressable)
		if !ok || !p.Contains(x, y) {
			continue
		}
		if err := p.Press(x, y); err != nil {
			return fmt.Errorf("press on %s: %w", e.role, err)
		}
	}
	return nil
}

// Update updates all models. The first error ends the frame and is returned.
func (s *Scene) Update() error {
	for _, e := range s.models {
		if err := e.model.Update(); err != nil {
			return fmt.Errorf("updating %s: %w", e.role, err)
		}
	}
	return nil
}

// Draw draws all models.
func (s *Scene) Draw() {
	for _, e := range s.models {
		e.model.Draw()
	}
}

// View returns the declarations of every saveable model by role.
func (s *Scene) View() map[string]map[string]any {
	view := make(map[string]map[string]any)
	for _, e := range s.models {
		b := e.model.Core()
		if !b.Saveable() {
			continue
		}
		view[e.role] = b.Declaration()
	}
	return view
}
