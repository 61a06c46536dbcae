// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"fmt"
	"log/slog"

	"github.com/bureau-foundation/flightcompare/lib/flight"
	"github.com/bureau-foundation/flightcompare/lib/flightfilter"
	"github.com/bureau-foundation/flightcompare/lib/selection"
	"github.com/bureau-foundation/flightcompare/lib/share"
)

// State is the controller lifecycle state.
type State int

const (
	Loading State = iota
	Ready
)

func (state State) String() string {
	switch state {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	default:
		return fmt.Sprintf("State(%d)", int(state))
	}
}

// Options configures a Controller.
type Options struct {
	// BaseLocation is the absolute URL that share references are
	// built on.
	BaseLocation string

	// Inbound is the encoded identifier list from an inbound share
	// reference ("A,B,C"). Empty means no seeding.
	Inbound string

	// InboundIDs is an already decoded identifier list. When non-nil
	// it is used instead of Inbound, so ids containing the separator
	// survive intact.
	InboundIDs []string

	// Logger receives session events. Nil discards them.
	Logger *slog.Logger
}

// Controller holds the state of one session. Methods are not safe for
// concurrent use; callers serialize intents on one goroutine.
type Controller struct {
	catalog flight.Catalog
	options Options
	logger  *slog.Logger

	state State

	bounds   flight.PriceRange
	airlines []string
	defaults flightfilter.Criteria
	criteria flightfilter.Criteria
	view     []flight.Offer

	selected   selection.Selection
	unresolved []string
}

// New returns a controller in the Loading state.
func New(catalog flight.Catalog, options Options) *Controller {
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		catalog: catalog,
		options: options,
		logger:  logger,
		state:   Loading,
	}
}

// Load computes the derived session state and moves to Ready. An
// empty catalog returns a *ConfigurationError and leaves the
// controller in Loading. Inbound identifiers that match no offer are
// dropped and logged; they never fail the load. Calling Load on a
// ready controller does nothing.
func (controller *Controller) Load() error {
	if controller.state == Ready {
		return nil
	}

	bounds, err := controller.catalog.PriceBounds()
	if err != nil {
		return &ConfigurationError{Err: err}
	}
	defaults, err := flightfilter.Defaults(controller.catalog)
	if err != nil {
		return &ConfigurationError{Err: err}
	}

	inbound := controller.options.InboundIDs
	if inbound == nil {
		inbound = share.Decode(controller.options.Inbound)
	}
	seeded, unresolved := selection.Seed(inbound, controller.catalog)
	if len(unresolved) > 0 {
		controller.logger.Info("dropped unresolved shared flights",
			"unresolved", unresolved,
			"seeded", seeded.IDs(),
		)
	}

	controller.bounds = bounds
	controller.airlines = controller.catalog.Airlines()
	controller.defaults = defaults
	controller.criteria = defaults.Clone()
	controller.view = flightfilter.ApplyCatalog(controller.catalog, defaults)
	controller.selected = seeded
	controller.unresolved = unresolved
	controller.state = Ready

	controller.logger.Info("session ready",
		"offers", controller.catalog.Len(),
		"price_min", bounds.Min,
		"price_max", bounds.Max,
		"airlines", len(controller.airlines),
		"selected", seeded.Len(),
	)
	return nil
}

// ApplyChange merges change into the current criteria and recomputes
// the view over the whole catalog.
func (controller *Controller) ApplyChange(change flightfilter.Change) error {
	if controller.state != Ready {
		return ErrNotReady
	}
	controller.criteria = controller.criteria.Merge(change)
	controller.view = flightfilter.ApplyCatalog(controller.catalog, controller.criteria)
	controller.logger.Debug("filter changed",
		"change", change,
		"matching", len(controller.view),
	)
	return nil
}

// Clear restores the default criteria and the full view. The
// selection is untouched.
func (controller *Controller) Clear() error {
	if controller.state != Ready {
		return ErrNotReady
	}
	controller.criteria = controller.defaults.Clone()
	controller.view = flightfilter.ApplyCatalog(controller.catalog, controller.criteria)
	controller.logger.Debug("filters cleared", "matching", len(controller.view))
	return nil
}

// Toggle adds or removes the offer with purchasingID from the
// selection. A rejection at capacity is an outcome with a warning
// notice, not an error.
func (controller *Controller) Toggle(purchasingID string) (selection.Outcome, Notice, error) {
	if controller.state != Ready {
		return 0, Notice{}, ErrNotReady
	}
	offer, ok := controller.catalog.Lookup(purchasingID)
	if !ok {
		return 0, Notice{}, fmt.Errorf("%w: %q", ErrUnknownOffer, purchasingID)
	}

	updated, outcome := controller.selected.Toggle(offer)
	controller.selected = updated
	controller.logger.Debug("selection toggled",
		"offer", purchasingID,
		"outcome", outcome,
		"selected", updated.Len(),
	)

	if outcome == selection.RejectedAtCapacity {
		return outcome, capacityNotice(), nil
	}
	return outcome, Notice{}, nil
}

// ShareReference encodes the selection and builds the shareable
// location on the configured base.
func (controller *Controller) ShareReference() (string, error) {
	if controller.state != Ready {
		return "", ErrNotReady
	}
	if controller.selected.Len() == 0 {
		return "", ErrNothingToShare
	}
	reference, err := share.BuildReferenceIDs(controller.options.BaseLocation, controller.selected.IDs())
	if err != nil {
		return "", fmt.Errorf("building share reference: %w", err)
	}
	return reference, nil
}

// State returns the lifecycle state.
func (controller *Controller) State() State { return controller.state }

// Catalog returns the session catalog.
func (controller *Controller) Catalog() flight.Catalog { return controller.catalog }

// View returns a copy of the offers passing the current criteria, in
// catalog order.
func (controller *Controller) View() []flight.Offer {
	result := make([]flight.Offer, len(controller.view))
	copy(result, controller.view)
	return result
}

// Criteria returns a copy of the current criteria.
func (controller *Controller) Criteria() flightfilter.Criteria {
	return controller.criteria.Clone()
}

// Defaults returns a copy of the criteria Clear restores.
func (controller *Controller) Defaults() flightfilter.Criteria {
	return controller.defaults.Clone()
}

// Bounds returns the catalog price range computed at load.
func (controller *Controller) Bounds() flight.PriceRange { return controller.bounds }

// Airlines returns the catalog airlines in first-appearance order.
func (controller *Controller) Airlines() []string {
	return append([]string(nil), controller.airlines...)
}

// Selection returns the current selection.
func (controller *Controller) Selection() selection.Selection { return controller.selected }

// Unresolved returns the inbound identifiers that matched no offer.
func (controller *Controller) Unresolved() []string {
	return append([]string(nil), controller.unresolved...)
}

// IsSelected reports whether purchasingID is in the selection.
func (controller *Controller) IsSelected(purchasingID string) bool {
	return controller.selected.Contains(purchasingID)
}
