package models

import (
	"slices"

	dErrors "paynet/pkg/domain-errors"
	"paynet/pkg/platform/validation"
)

// State is the position of the two-level selector.
type State string

const (
	NoParentSelected       State = "no_parent_selected"
	ParentSelected         State = "parent_selected"
	ParentAndChildSelected State = "parent_and_child_selected"
)

// Field names used for parent gating errors.
const (
	FieldMasterDistributorID = "master_distributor_id"
	FieldDistributorID       = "distributor_id"
)

// Selection tracks the chosen master distributor (parent) and distributor
// (child). A child is never held without its parent.
type Selection struct {
	MasterDistributorID string `json:"master_distributor_id"`
	DistributorID       string `json:"distributor_id"`
}

// NewSelection builds a selection from untrusted input, dropping a child
// that arrives without a parent.
func NewSelection(parentID, childID string) Selection {
	if parentID == "" {
		return Selection{}
	}
	return Selection{MasterDistributorID: parentID, DistributorID: childID}
}

func (s Selection) State() State {
	switch {
	case s.MasterDistributorID == "":
		return NoParentSelected
	case s.DistributorID == "":
		return ParentSelected
	default:
		return ParentAndChildSelected
	}
}

// SelectParent sets the parent and always clears the child, even when the
// same parent is re-selected.
func (s *Selection) SelectParent(id string) {
	s.MasterDistributorID = id
	s.DistributorID = ""
}

// SelectChild is only valid once a parent is selected.
func (s *Selection) SelectChild(id string) error {
	if s.MasterDistributorID == "" {
		return dErrors.New(dErrors.CodeInvariantViolation, "select master distributor before distributor")
	}
	s.DistributorID = id
	return nil
}

// SyncParents reconciles the selection with a freshly loaded parent list.
// A parent that disappeared resets the selector; a single available parent
// is selected automatically when none is chosen.
func (s *Selection) SyncParents(ids []string) {
	if s.MasterDistributorID != "" && !slices.Contains(ids, s.MasterDistributorID) {
		*s = Selection{}
	}
	if s.MasterDistributorID == "" && len(ids) == 1 {
		s.SelectParent(ids[0])
	}
}

// SyncChildren drops a child that is no longer in the reloaded child list.
func (s *Selection) SyncChildren(ids []string) {
	if s.DistributorID != "" && !slices.Contains(ids, s.DistributorID) {
		s.DistributorID = ""
	}
}

// RequireParent returns the field error shown when a form needs a master
// distributor and none is selected.
func (s Selection) RequireParent() validation.FieldErrors {
	if s.MasterDistributorID == "" {
		return validation.FieldErrors{FieldMasterDistributorID: "select master distributor"}
	}
	return nil
}

// RequireChild extends RequireParent to forms that also need a distributor.
func (s Selection) RequireChild() validation.FieldErrors {
	errs := s.RequireParent()
	if s.DistributorID == "" {
		if errs == nil {
			errs = validation.FieldErrors{}
		}
		errs[FieldDistributorID] = "select distributor"
	}
	return errs
}
